// Package validation holds the pure field checks shared by the auth flow.
package validation

import (
	"regexp"
	"sort"
	"strings"
)

// MinPasswordLength is the weakest password the signup form accepts.
const MinPasswordLength = 6

// Matches local@domain.tld: non-empty local part and domain, at least one
// dot in the domain segment, no whitespace and no extra @ anywhere.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func Email(s string) bool {
	return emailPattern.MatchString(s)
}

func Password(s string) bool {
	return len(s) >= MinPasswordLength
}

// Required returns the names of fields whose value is empty or blank,
// sorted so callers get deterministic messages. An empty result means the
// form is fully populated.
func Required(fields map[string]string) []string {
	var missing []string
	for name, value := range fields {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}
	sort.Strings(missing)
	return missing
}
