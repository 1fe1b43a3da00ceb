package usecase

// Mode selects how a listing is derived. In client mode the full
// unfiltered snapshot is fetched once and every view is recomputed
// locally; in delegated mode the filter/sort/page parameters go upstream
// and the returned page plus meta counts are trusted verbatim. Both
// behaviors exist in the platform's history, so the choice belongs to
// configuration, not to the engine.
type Mode string

const (
	ModeClient    Mode = "client"
	ModeDelegated Mode = "delegated"
)

// ParseMode maps a config string to a Mode, defaulting to client.
func ParseMode(s string) Mode {
	if Mode(s) == ModeDelegated {
		return ModeDelegated
	}
	return ModeClient
}
