package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCanonical(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"iso date", "2020-02-01", "2020-02-01"},
		{"rfc3339 timestamp", "2020-02-01T10:30:00Z", "2020-02-01"},
		{"timestamp without zone", "2020-02-01T10:30:00", "2020-02-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRejectsInvalidDates(t *testing.T) {
	inputs := []string{
		"2020-13-40", // month and day out of range
		"2020-02-30", // not a real calendar day
		"Mon Jan 02 2020",
		"not-a-date",
		"2020/01/02",
	}

	for _, input := range inputs {
		_, err := Parse(input)
		assert.ErrorIs(t, err, ErrInvalidDate, "input %q", input)
	}
}

func TestTodayIsCanonical(t *testing.T) {
	got := Today()
	parsed, err := time.Parse(Layout, got)
	require.NoError(t, err)
	assert.Equal(t, got, Canonical(parsed))
}

func TestInRange(t *testing.T) {
	tests := []struct {
		name     string
		date     string
		from, to string
		want     bool
	}{
		{"inside", "2020-02-01", "2020-01-15", "2020-02-15", true},
		{"before from", "2020-01-01", "2020-01-15", "2020-02-15", false},
		{"after to", "2020-03-01", "2020-01-15", "2020-02-15", false},
		{"on from bound", "2020-01-15", "2020-01-15", "2020-02-15", true},
		{"on to bound", "2020-02-15", "2020-01-15", "2020-02-15", true},
		{"open bounds", "1999-12-31", "", "", true},
		{"only from", "2020-06-01", "2020-01-01", "", true},
		{"only to", "2020-06-01", "", "2020-01-01", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, InRange(tt.date, tt.from, tt.to))
		})
	}
}
