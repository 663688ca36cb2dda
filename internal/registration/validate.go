package registration

import (
	"regexp"
	"strconv"
	"strings"
)

// nameRegex accepts whitespace-separated tokens of Unicode letters plus
// apostrophe, backtick, and hyphen. Token count is checked separately.
var nameRegex = regexp.MustCompile("^[\\p{L}'`-]+(?:\\s+[\\p{L}'`-]+)+$")

// phoneRegex is the canonical Uzbek mobile format.
var phoneRegex = regexp.MustCompile(`^\+998\d{9}$`)

// ValidFullName reports whether s is a plausible full name: 2 to 5 tokens of
// letters, apostrophes, backticks, or hyphens.
func ValidFullName(s string) bool {
	s = strings.TrimSpace(s)
	if !nameRegex.MatchString(s) {
		return false
	}
	n := len(strings.Fields(s))
	return n >= 2 && n <= 5
}

// ValidAge reports whether s is an all-digit age in [3, 100].
func ValidAge(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return false
	}
	return n >= 3 && n <= 100
}

// NormalizePhone strips whitespace and normalizes a bare "998..." number to
// the "+998XXXXXXXXX" form. It returns false when the result does not match
// the canonical format. Contact-shared numbers go through the same path.
func NormalizePhone(s string) (string, bool) {
	t := strings.Join(strings.Fields(s), "")
	if strings.HasPrefix(t, "998") && len(t) == 12 {
		t = "+" + t
	}
	if !phoneRegex.MatchString(t) {
		return "", false
	}
	return t, true
}
