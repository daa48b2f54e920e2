package validate

import (
	"regexp"
	"strconv"
	"strings"
)

// Product and seed ids: uuids and slug-style seed identifiers.
var reID = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// ID validates a product identifier.
func ID(s string) (string, bool) {
	s = strings.TrimSpace(s)
	return s, s != "" && reID.MatchString(s)
}

// Q normalizes a search query: trimmed, clamped to a sane length. Any
// characters are allowed since matching is a plain substring test.
func Q(s string) string {
	s = strings.TrimSpace(s)
	if len(s) > 80 {
		s = s[:80]
	}
	return s
}

// Name validates a displayable product name.
func Name(s string) (string, bool) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > 80 {
		return "", false
	}
	return s, true
}

// Price parses a user-entered price as a non-negative decimal.
func Price(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 {
		return 0, false
	}
	return v, true
}

// Qty parses an absolute cart quantity. Non-positive values are meaningful
// (they remove the line), so the parse only fails on non-numeric input.
func Qty(s string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, false
	}
	if n > 999 {
		n = 999 // clamp to avoid abuse
	}
	return n, true
}
