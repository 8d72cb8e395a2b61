package models

import (
	"time"
)

// DateLayout is the calendar-day format used on loads and route entries
const DateLayout = "2006-01-02"

// Clock returns the current time. Usecases take one so tests can pin "today".
type Clock func() time.Time

// Now returns the current time in UTC
func Now() time.Time {
	return time.Now().UTC()
}

// FormatDate renders t as a calendar day
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Today returns the calendar day of the given clock, falling back to Now
func Today(clock Clock) string {
	if clock == nil {
		clock = Now
	}
	return FormatDate(clock())
}
