// Package facets computes the distinct filter-option sets and the
// demand/age classifications shown as filter options and badges.
// Everything here is a pure function over a collection.
package facets

import "time"

// Demand levels for skills.
const (
	DemandHigh   = "High"
	DemandMedium = "Medium"
	DemandLow    = "Low"
)

// Age categories for universities.
const (
	AgeNew         = "New"
	AgeEstablished = "Established"
	AgeVeteran     = "Veteran"
)

// Config holds the banding thresholds. They are collection-specific
// tuning, not universal truths, so they come from configuration.
type Config struct {
	DemandHighMin   int
	DemandMediumMin int
}

// DefaultConfig returns the thresholds calibrated for the current
// upstream collection.
func DefaultConfig() Config {
	return Config{DemandHighMin: 1400, DemandMediumMin: 1350}
}

// DemandLevel bands a skill's job count.
func (c Config) DemandLevel(jobCount int) string {
	switch {
	case jobCount >= c.DemandHighMin:
		return DemandHigh
	case jobCount >= c.DemandMediumMin:
		return DemandMedium
	default:
		return DemandLow
	}
}

// AgeCategory bands a university by years since establishment.
func AgeCategory(establishedYear int, now time.Time) string {
	age := now.Year() - establishedYear
	switch {
	case age < 10:
		return AgeNew
	case age < 30:
		return AgeEstablished
	default:
		return AgeVeteran
	}
}

// ProgramBand bands a university's program count.
func ProgramBand(programCount int) string {
	switch {
	case programCount > 8:
		return DemandHigh
	case programCount > 4:
		return DemandMedium
	default:
		return DemandLow
	}
}

// DistinctValues returns the unique values of a field in first-seen
// order, with "All" prepended, ready to populate a filter dropdown.
// Empty values are skipped.
func DistinctValues[T any](records []T, get func(T) string) []string {
	out := []string{"All"}
	seen := make(map[string]struct{}, len(records))
	for _, rec := range records {
		v := get(rec)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
