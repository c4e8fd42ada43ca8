// Package datex handles the calendar-date convention used across the API:
// dates are whole days in the YYYY-MM-DD wire format, no time component.
package datex

import (
	"errors"
	"time"
)

const Layout = "2006-01-02"

var ErrBadRange = errors.New("start date must be before or equal to end date")

// Parse reads a YYYY-MM-DD string into a UTC date.
func Parse(s string) (time.Time, error) {
	return time.Parse(Layout, s)
}

// Format renders a date back to YYYY-MM-DD.
func Format(t time.Time) string { return t.Format(Layout) }

// Today is the current calendar date, truncated to midnight UTC.
func Today() time.Time {
	return time.Now().UTC().Truncate(24 * time.Hour)
}

// DaysBetween counts whole days from start to end (end - start).
// A same-day pair yields 0.
func DaysBetween(start, end time.Time) int {
	return int(end.Sub(start).Hours() / 24)
}

// ParseRange validates a start/end query pair. Both must parse and
// start must not come after end.
func ParseRange(start, end string) (time.Time, time.Time, error) {
	s, err := Parse(start)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	e, err := Parse(end)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	if s.After(e) {
		return time.Time{}, time.Time{}, ErrBadRange
	}
	return s, e, nil
}
