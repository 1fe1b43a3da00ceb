package dto

import "clmi/internal/listing"

// ListMeta is the pagination block every listing endpoint returns,
// with the derived filter options riding alongside so the client can
// populate its dropdowns from one round trip.
type ListMeta struct {
	listing.PageState
	Facets any `json:"facets,omitempty"`
}
