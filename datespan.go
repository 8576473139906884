// Package datespan provides deterministic calendar-boundary arithmetic for
// time.Time values: the start, end, next and previous boundaries of the
// calendar period containing an instant, with the month as the primary unit.
//
// Naive operations (StartOfMonth, EndOfMonth, ...) work on the civil fields of
// their input and preserve its location, so a caller operating in a known
// fixed frame gets results back in that same frame. Timezone-aware operations
// (StartOfMonthIn, StartOfMonthProjected, ...) round-trip through a zone's
// civil time and always return UTC-normalized instants, which is what keeps
// "start of month in Eastern time" correct across DST transitions.
//
// All boundary arithmetic derives month lengths from calendar rollover, never
// from a day table, so February is 28 or 29 days without special-casing.
// End-of-period instants sit one nanosecond before the next period's start,
// the finest resolution time.Time carries.
package datespan

import "time"

// StartOfMonth returns the first instant of the calendar month containing t:
// day 1 at 00:00:00 in t's location. The location is preserved unchanged; no
// timezone conversion happens here.
func StartOfMonth(t time.Time) time.Time {
	year, month, _ := t.Date()
	return time.Date(year, month, 1, 0, 0, 0, 0, t.Location())
}

// EndOfMonth returns the last representable instant of the calendar month
// containing t, one nanosecond before the start of the following month.
func EndOfMonth(t time.Time) time.Time {
	return StartOfNextMonth(t).Add(-time.Nanosecond)
}

// StartOfNextMonth returns the first instant of the month after the one
// containing t. The month field is advanced on the already-truncated start of
// month, so a day-31 input can never overflow into the wrong month.
func StartOfNextMonth(t time.Time) time.Time {
	year, month, _ := t.Date()
	if month == time.December {
		return time.Date(year+1, time.January, 1, 0, 0, 0, 0, t.Location())
	}
	return time.Date(year, month+1, 1, 0, 0, 0, 0, t.Location())
}

// StartOfPreviousMonth returns the first instant of the month before the one
// containing t, carrying the year on January.
func StartOfPreviousMonth(t time.Time) time.Time {
	year, month, _ := t.Date()
	if month == time.January {
		return time.Date(year-1, time.December, 1, 0, 0, 0, 0, t.Location())
	}
	return time.Date(year, month-1, 1, 0, 0, 0, 0, t.Location())
}

// EndOfNextMonth returns the last instant of the month after the one
// containing t.
func EndOfNextMonth(t time.Time) time.Time {
	return EndOfMonth(StartOfNextMonth(t))
}

// EndOfPreviousMonth returns the last instant of the month before the one
// containing t.
func EndOfPreviousMonth(t time.Time) time.Time {
	return EndOfMonth(StartOfPreviousMonth(t))
}
