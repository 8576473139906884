package datespan

import "time"

// Span is an inclusive [Start, End] pair of instants bracketing a calendar
// period.
type Span struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether t falls inside the span, boundaries included.
func (s Span) Contains(t time.Time) bool {
	return !t.Before(s.Start) && !t.After(s.End)
}

// Duration returns the length of the span, End minus Start.
func (s Span) Duration() time.Duration {
	return s.End.Sub(s.Start)
}

// MonthSpan returns the boundary pair of the calendar month containing t, in
// t's own location.
func MonthSpan(t time.Time) Span {
	return Span{Start: StartOfMonth(t), End: EndOfMonth(t)}
}

// MonthSpanIn returns the UTC-normalized boundary pair of the calendar month
// containing t as observed in loc.
func MonthSpanIn(t time.Time, loc *time.Location) Span {
	return Span{Start: StartOfMonthIn(t, loc), End: EndOfMonthIn(t, loc)}
}

// PreviousMonth returns the year and month immediately before the given
// year/month, carrying the year on January.
func PreviousMonth(year int, month time.Month) (int, time.Month) {
	if month == time.January {
		return year - 1, time.December
	}
	return year, month - 1
}

// NextMonth returns the year and month immediately after the given
// year/month, carrying the year on December.
func NextMonth(year int, month time.Month) (int, time.Month) {
	if month == time.December {
		return year + 1, time.January
	}
	return year, month + 1
}

// DaysInMonth returns the number of calendar days in the month containing t.
func DaysInMonth(t time.Time) int {
	return EndOfMonth(t).Day()
}

// ActualDate returns midnight in loc on targetDay of the given month,
// clamping days past the month's end to its last day (day 31 in February
// yields Feb 28 or 29). Useful for schedules pinned to a day-of-month.
func ActualDate(year int, month time.Month, targetDay int, loc *time.Location) time.Time {
	// Day 0 of the next month is the last day of this one.
	lastDay := time.Date(year, month+1, 0, 0, 0, 0, 0, loc).Day()
	if targetDay > lastDay {
		targetDay = lastDay
	}
	return time.Date(year, month, targetDay, 0, 0, 0, 0, loc)
}
