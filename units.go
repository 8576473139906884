package datespan

import "time"

// Boundary operations for the remaining calendar units, following the same
// discipline as the month engine: truncate first, advance the unit field on
// the truncated value, derive ends as one nanosecond before the next start.
// All of them preserve the input's location.

// StartOfDay returns midnight of the calendar day containing t.
func StartOfDay(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// EndOfDay returns the last instant of the calendar day containing t.
func EndOfDay(t time.Time) time.Time {
	return StartOfNextDay(t).Add(-time.Nanosecond)
}

// StartOfNextDay returns midnight of the day after the one containing t.
// AddDate on the truncated value keeps the wall clock at midnight even when
// the civil day is 23 or 25 hours long in t's location.
func StartOfNextDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1)
}

// StartOfWeek returns midnight of the Monday of the ISO week containing t.
func StartOfWeek(t time.Time) time.Time {
	day := StartOfDay(t)
	offset := (int(day.Weekday()) + 6) % 7 // Monday = 0
	return day.AddDate(0, 0, -offset)
}

// EndOfWeek returns the last instant of the ISO week containing t, just
// before the following Monday's midnight.
func EndOfWeek(t time.Time) time.Time {
	return StartOfWeek(t).AddDate(0, 0, 7).Add(-time.Nanosecond)
}

// StartOfQuarter returns the first instant of the calendar quarter
// (Jan/Apr/Jul/Oct 1) containing t.
func StartOfQuarter(t time.Time) time.Time {
	year, month, _ := t.Date()
	first := month - (month-1)%3
	return time.Date(year, first, 1, 0, 0, 0, 0, t.Location())
}

// EndOfQuarter returns the last instant of the calendar quarter containing t.
func EndOfQuarter(t time.Time) time.Time {
	return StartOfNextQuarter(t).Add(-time.Nanosecond)
}

// StartOfNextQuarter returns the first instant of the quarter after the one
// containing t.
func StartOfNextQuarter(t time.Time) time.Time {
	start := StartOfQuarter(t)
	year, month, _ := start.Date()
	if month == time.October {
		return time.Date(year+1, time.January, 1, 0, 0, 0, 0, t.Location())
	}
	return time.Date(year, month+3, 1, 0, 0, 0, 0, t.Location())
}

// StartOfPreviousQuarter returns the first instant of the quarter before the
// one containing t.
func StartOfPreviousQuarter(t time.Time) time.Time {
	start := StartOfQuarter(t)
	year, month, _ := start.Date()
	if month == time.January {
		return time.Date(year-1, time.October, 1, 0, 0, 0, 0, t.Location())
	}
	return time.Date(year, month-3, 1, 0, 0, 0, 0, t.Location())
}

// StartOfYear returns the first instant of the calendar year containing t.
func StartOfYear(t time.Time) time.Time {
	return time.Date(t.Year(), time.January, 1, 0, 0, 0, 0, t.Location())
}

// EndOfYear returns the last instant of the calendar year containing t.
func EndOfYear(t time.Time) time.Time {
	return StartOfNextYear(t).Add(-time.Nanosecond)
}

// StartOfNextYear returns the first instant of the year after the one
// containing t.
func StartOfNextYear(t time.Time) time.Time {
	return time.Date(t.Year()+1, time.January, 1, 0, 0, 0, 0, t.Location())
}

// StartOfPreviousYear returns the first instant of the year before the one
// containing t.
func StartOfPreviousYear(t time.Time) time.Time {
	return time.Date(t.Year()-1, time.January, 1, 0, 0, 0, 0, t.Location())
}

// StartOfDayIn returns the UTC instant at which the calendar day containing t
// begins on loc's wall clock.
func StartOfDayIn(t time.Time, loc *time.Location) time.Time {
	p := ZoneProjection(loc)
	return p.ToAbsolute(StartOfDay(p.ToLocal(t)))
}

// EndOfDayIn returns the UTC instant at which the calendar day containing t
// ends on loc's wall clock.
func EndOfDayIn(t time.Time, loc *time.Location) time.Time {
	p := ZoneProjection(loc)
	return p.ToAbsolute(EndOfDay(p.ToLocal(t)))
}

// StartOfYearIn returns the UTC instant at which the calendar year containing
// t begins on loc's wall clock.
func StartOfYearIn(t time.Time, loc *time.Location) time.Time {
	p := ZoneProjection(loc)
	return p.ToAbsolute(StartOfYear(p.ToLocal(t)))
}

// EndOfYearIn returns the UTC instant at which the calendar year containing t
// ends on loc's wall clock.
func EndOfYearIn(t time.Time, loc *time.Location) time.Time {
	p := ZoneProjection(loc)
	return p.ToAbsolute(EndOfYear(p.ToLocal(t)))
}
