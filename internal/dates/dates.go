// Package dates normalises calendar dates to their canonical YYYY-MM-DD form.
// All storage and range comparisons in the service happen on canonical
// strings, which sort chronologically; raw input strings are never compared.
package dates

import (
	"errors"
	"time"
)

// Layout is the canonical calendar-date form.
const Layout = "2006-01-02"

// ErrInvalidDate is returned when an input cannot be parsed as a calendar date.
var ErrInvalidDate = errors.New("invalid date")

// layouts accepted at the boundary, canonical form first. Anything with a
// time component is truncated to its date.
var layouts = []string{
	Layout,
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// Canonical formats a time as a canonical date string.
func Canonical(t time.Time) string {
	return t.Format(Layout)
}

// Today returns the current date at the server, UTC-normalised.
func Today() string {
	return Canonical(time.Now().UTC())
}

// Parse converts an input date string to canonical form. Invalid calendar
// dates (e.g. 2020-13-40) are rejected, not coerced.
func Parse(s string) (string, error) {
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Canonical(t), nil
		}
	}
	return "", ErrInvalidDate
}

// InRange reports whether a canonical date lies in [from, to] inclusive.
// Empty bounds are open. Lexicographic comparison is chronological for
// canonical strings.
func InRange(date, from, to string) bool {
	if from != "" && date < from {
		return false
	}
	if to != "" && date > to {
		return false
	}
	return true
}
