package datespan

import (
	"time"

	"github.com/dafibh/datespan/zoneid"
)

// Month boundaries are civil-calendar concepts: "the 1st at midnight" is only
// meaningful on a local wall clock, and a UTC day boundary does not coincide
// with a local one unless the offset is zero. Every operation here therefore
// projects the input into the zone's civil time, runs the naive engine there,
// and projects the result back to an absolute instant. Results are always
// UTC-normalized.

// StartOfMonthProjected returns the UTC instant at which the month containing
// t begins on p's wall clock.
func StartOfMonthProjected(t time.Time, p Projection) time.Time {
	return p.ToAbsolute(StartOfMonth(p.ToLocal(t)))
}

// EndOfMonthProjected returns the UTC instant one nanosecond before the next
// month begins on p's wall clock.
func EndOfMonthProjected(t time.Time, p Projection) time.Time {
	return p.ToAbsolute(EndOfMonth(p.ToLocal(t)))
}

// StartOfNextMonthProjected returns the UTC instant at which the month after
// the one containing t begins on p's wall clock.
func StartOfNextMonthProjected(t time.Time, p Projection) time.Time {
	return p.ToAbsolute(StartOfNextMonth(p.ToLocal(t)))
}

// StartOfPreviousMonthProjected returns the UTC instant at which the month
// before the one containing t begins on p's wall clock.
func StartOfPreviousMonthProjected(t time.Time, p Projection) time.Time {
	return p.ToAbsolute(StartOfPreviousMonth(p.ToLocal(t)))
}

// EndOfNextMonthProjected returns the UTC instant at which the month after
// the one containing t ends on p's wall clock.
func EndOfNextMonthProjected(t time.Time, p Projection) time.Time {
	return p.ToAbsolute(EndOfNextMonth(p.ToLocal(t)))
}

// EndOfPreviousMonthProjected returns the UTC instant at which the month
// before the one containing t ends on p's wall clock.
func EndOfPreviousMonthProjected(t time.Time, p Projection) time.Time {
	return p.ToAbsolute(EndOfPreviousMonth(p.ToLocal(t)))
}

// StartOfMonthIn is StartOfMonthProjected through loc's rules.
func StartOfMonthIn(t time.Time, loc *time.Location) time.Time {
	return StartOfMonthProjected(t, ZoneProjection(loc))
}

// EndOfMonthIn is EndOfMonthProjected through loc's rules.
func EndOfMonthIn(t time.Time, loc *time.Location) time.Time {
	return EndOfMonthProjected(t, ZoneProjection(loc))
}

// StartOfNextMonthIn is StartOfNextMonthProjected through loc's rules.
func StartOfNextMonthIn(t time.Time, loc *time.Location) time.Time {
	return StartOfNextMonthProjected(t, ZoneProjection(loc))
}

// StartOfPreviousMonthIn is StartOfPreviousMonthProjected through loc's rules.
func StartOfPreviousMonthIn(t time.Time, loc *time.Location) time.Time {
	return StartOfPreviousMonthProjected(t, ZoneProjection(loc))
}

// EndOfNextMonthIn is EndOfNextMonthProjected through loc's rules.
func EndOfNextMonthIn(t time.Time, loc *time.Location) time.Time {
	return EndOfNextMonthProjected(t, ZoneProjection(loc))
}

// EndOfPreviousMonthIn is EndOfPreviousMonthProjected through loc's rules.
func EndOfPreviousMonthIn(t time.Time, loc *time.Location) time.Time {
	return EndOfPreviousMonthProjected(t, ZoneProjection(loc))
}

// StartOfMonthInZone resolves zone by name (IANA identifier or Windows zone
// ID) and returns StartOfMonthIn for it. A failed lookup returns the
// resolver's error untouched.
func StartOfMonthInZone(t time.Time, zone string) (time.Time, error) {
	loc, err := zoneid.Load(zone)
	if err != nil {
		return time.Time{}, err
	}
	return StartOfMonthIn(t, loc), nil
}

// EndOfMonthInZone resolves zone by name (IANA identifier or Windows zone ID)
// and returns EndOfMonthIn for it. A failed lookup returns the resolver's
// error untouched.
func EndOfMonthInZone(t time.Time, zone string) (time.Time, error) {
	loc, err := zoneid.Load(zone)
	if err != nil {
		return time.Time{}, err
	}
	return EndOfMonthIn(t, loc), nil
}
