package domain

import (
	"errors"
	"strings"
	"time"

	"github.com/AlibekovAA/exercise-tracker/internal/common/clock"
)

// DayFormat is the API's display format for entry dates,
// e.g. "Thu Jan 05 2023".
const DayFormat = "Mon Jan 02 2006"

var ErrInvalidDate = errors.New("invalid date")

// Layouts accepted on input. The display layout is included so a date
// read from the API can be fed back in unchanged.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	DayFormat,
}

// ParseDate parses raw into a calendar day. Anything that is not a
// real calendar date yields ErrInvalidDate.
func ParseDate(raw string) (time.Time, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return time.Time{}, ErrInvalidDate
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return Day(t), nil
		}
	}

	return time.Time{}, ErrInvalidDate
}

// NormalizeDate applies the default-to-today policy: an absent raw
// value resolves to the clock's current day, anything else must parse.
func NormalizeDate(raw string, clk clock.Clock) (time.Time, error) {
	if strings.TrimSpace(raw) == "" {
		return Day(clk.Now()), nil
	}
	return ParseDate(raw)
}

// Day truncates t to its calendar day in UTC.
func Day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FormatDay renders a calendar day in the API's display format.
// Formatting is idempotent: re-parsing and re-formatting the output
// yields the same string.
func FormatDay(t time.Time) string {
	return Day(t).Format(DayFormat)
}
