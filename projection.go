package datespan

import "time"

// Projection converts instants between an absolute frame and a zone's civil
// time. The timezone-aware operations in this package are written entirely
// against this interface, so boundary logic stays independent of any specific
// timezone implementation and tests can substitute a fake.
type Projection interface {
	// ToLocal projects an absolute instant into the zone's civil time.
	ToLocal(t time.Time) time.Time
	// ToAbsolute re-resolves t's civil fields (year, month, day, clock)
	// against the zone's rules and returns the UTC instant they denote.
	ToAbsolute(t time.Time) time.Time
}

// ZoneProjection returns the production Projection for loc, backed by the
// standard library's timezone handling.
//
// ToAbsolute rebuilds the civil fields with time.Date in loc, so a civil time
// that is skipped or repeated around a DST transition resolves however
// time.Date resolves it for that zone. That choice is treated as
// authoritative: a month boundary near a spring-forward may legitimately land
// at a local 01:00 wall clock, and callers get that instant, not an error.
func ZoneProjection(loc *time.Location) Projection {
	return zoneProjection{loc: loc}
}

type zoneProjection struct {
	loc *time.Location
}

func (p zoneProjection) ToLocal(t time.Time) time.Time {
	return t.In(p.loc)
}

func (p zoneProjection) ToAbsolute(t time.Time) time.Time {
	year, month, day := t.Date()
	hour, min, sec := t.Clock()
	return time.Date(year, month, day, hour, min, sec, t.Nanosecond(), p.loc).UTC()
}
