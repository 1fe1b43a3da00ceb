// Package listing derives filtered, sorted, paginated views over
// in-memory record collections. The engine is pure: it never fetches,
// never mutates its input, and an empty result is a valid state rather
// than an error.
package listing

import (
	"sort"
	"strings"
)

// AllValues is the filter value that means "no constraint". An empty
// value means the same thing.
const AllValues = "All"

// FilterSpec maps filter keys to the user's selected values. Keys the
// schema does not know are ignored; values equal to AllValues or empty
// impose no constraint. Active filters are conjunctive.
type FilterSpec map[string]string

// PageState describes the slice of the filtered collection a page shows.
// It matches the upstream meta shape so both listing modes report the
// same structure.
type PageState struct {
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
	Total   int `json:"total"`
	Pages   int `json:"pages"`
}

// Matcher reports whether a record satisfies a filter value.
type Matcher[T any] func(rec T, value string) bool

// Less orders two records for a sort key.
type Less[T any] func(a, b T) bool

// Schema binds an entity's filterable fields and sort keys to the
// engine. One schema per collection type lives alongside the engine.
type Schema[T any] struct {
	Filters map[string]Matcher[T]
	Sorts   map[string]Less[T]
}

// Exact matches a field by case-sensitive equality.
func Exact[T any](get func(T) string) Matcher[T] {
	return func(rec T, value string) bool {
		return get(rec) == value
	}
}

// Search matches when any of the given fields contains the value,
// case-insensitively.
func Search[T any](gets ...func(T) string) Matcher[T] {
	return func(rec T, value string) bool {
		needle := strings.ToLower(value)
		for _, get := range gets {
			if strings.Contains(strings.ToLower(get(rec)), needle) {
				return true
			}
		}
		return false
	}
}

// SearchSlice matches when any element of a string-slice field contains
// the value, case-insensitively.
func SearchSlice[T any](get func(T) []string) Matcher[T] {
	return func(rec T, value string) bool {
		needle := strings.ToLower(value)
		for _, s := range get(rec) {
			if strings.Contains(strings.ToLower(s), needle) {
				return true
			}
		}
		return false
	}
}

// StringAsc orders by a string field, ascending.
func StringAsc[T any](get func(T) string) Less[T] {
	return func(a, b T) bool { return get(a) < get(b) }
}

// StringDesc orders by a string field, descending. ISO dates compare
// correctly as strings, so "recent" sorts use this.
func StringDesc[T any](get func(T) string) Less[T] {
	return func(a, b T) bool { return get(a) > get(b) }
}

// NumberDesc orders by a numeric field, descending.
func NumberDesc[T any](get func(T) float64) Less[T] {
	return func(a, b T) bool { return get(a) > get(b) }
}

// List applies the filter spec, the sort key, and pagination to records.
// Sorting is stable: ties keep original collection order, and listing the
// same inputs twice yields identical output. An unknown or empty sort key
// leaves the collection in its original order. Out-of-range pages clamp
// instead of erroring.
func List[T any](records []T, schema Schema[T], filters FilterSpec, sortBy string, page, perPage int) ([]T, PageState) {
	filtered := filter(records, schema, filters)

	if less, ok := schema.Sorts[sortBy]; ok {
		sort.SliceStable(filtered, func(i, j int) bool { return less(filtered[i], filtered[j]) })
	}

	return Paginate(filtered, page, perPage)
}

// Paginate slices records to the requested 1-based page, clamping the
// page into [1, max(1, ceil(total/perPage))].
func Paginate[T any](records []T, page, perPage int) ([]T, PageState) {
	if perPage < 1 {
		perPage = 1
	}

	total := len(records)
	pages := (total + perPage - 1) / perPage

	maxPage := pages
	if maxPage < 1 {
		maxPage = 1
	}
	if page < 1 {
		page = 1
	}
	if page > maxPage {
		page = maxPage
	}

	start := (page - 1) * perPage
	end := start + perPage
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	items := make([]T, end-start)
	copy(items, records[start:end])

	return items, PageState{Page: page, PerPage: perPage, Total: total, Pages: pages}
}

func filter[T any](records []T, schema Schema[T], filters FilterSpec) []T {
	out := make([]T, 0, len(records))
	for _, rec := range records {
		if matches(rec, schema, filters) {
			out = append(out, rec)
		}
	}
	return out
}

func matches[T any](rec T, schema Schema[T], filters FilterSpec) bool {
	for key, value := range filters {
		if value == "" || value == AllValues {
			continue
		}
		m, ok := schema.Filters[key]
		if !ok {
			continue
		}
		if !m(rec, value) {
			return false
		}
	}
	return true
}
