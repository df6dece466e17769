package domain

import "strings"

// NormalizePhone brings a client phone number to canonical form: digits
// with a single leading "+". Spaces, dashes and parentheses are dropped.
// An empty input stays empty.
func NormalizePhone(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	digits := b.String()
	if digits == "" {
		return ""
	}
	return "+" + digits
}
