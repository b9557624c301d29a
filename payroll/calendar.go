package payroll

import (
	"time"
)

// =============================================================================
// WORK DATE - Calendar-day abstraction used throughout the engine
// =============================================================================

// WorkDate is a calendar day, normalized to midnight UTC. Using a dedicated
// type keeps day arithmetic and map keys honest; raw time.Time values with
// stray clock components never enter the engine.
type WorkDate struct {
	t time.Time
}

// NewWorkDate builds a WorkDate for the given calendar day.
func NewWorkDate(year int, month time.Month, day int) WorkDate {
	return WorkDate{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates an instant to its calendar day.
func DateOf(at time.Time) WorkDate {
	return NewWorkDate(at.Year(), at.Month(), at.Day())
}

// ParseWorkDate parses a YYYY-MM-DD string.
func ParseWorkDate(s string) (WorkDate, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return WorkDate{}, err
	}
	return DateOf(t), nil
}

// Comparison
func (d WorkDate) Before(other WorkDate) bool { return d.t.Before(other.t) }
func (d WorkDate) After(other WorkDate) bool  { return d.t.After(other.t) }
func (d WorkDate) Equal(other WorkDate) bool  { return d.t.Equal(other.t) }

// Arithmetic
func (d WorkDate) AddDays(n int) WorkDate { return WorkDate{t: d.t.AddDate(0, 0, n)} }
func (d WorkDate) Next() WorkDate         { return d.AddDays(1) }
func (d WorkDate) Prev() WorkDate         { return d.AddDays(-1) }

// Properties
func (d WorkDate) Weekday() time.Weekday { return d.t.Weekday() }
func (d WorkDate) IsWeekend() bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}
func (d WorkDate) IsSunday() bool { return d.Weekday() == time.Sunday }
func (d WorkDate) IsZero() bool   { return d.t.IsZero() }

// Bounds of the day as instants, for inclusive event filtering.
func (d WorkDate) StartOfDay() time.Time { return d.t }
func (d WorkDate) EndOfDay() time.Time   { return d.t.AddDate(0, 0, 1).Add(-time.Nanosecond) }

// At combines the date with a time of day.
func (d WorkDate) At(hour, min, sec int) time.Time {
	return time.Date(d.t.Year(), d.t.Month(), d.t.Day(), hour, min, sec, 0, time.UTC)
}

func (d WorkDate) Time() time.Time { return d.t }

func (d WorkDate) String() string { return d.t.Format("2006-01-02") }

// =============================================================================
// DATE RANGE GENERATOR
// =============================================================================

// DateRange returns the ascending sequence of days from start to end,
// inclusive. The engine applies the strict range policy: a reversed range is
// a caller error, not something to silently normalize.
func DateRange(start, end WorkDate) ([]WorkDate, error) {
	if end.Before(start) {
		return nil, &InvalidRangeError{Start: start, End: end}
	}
	var days []WorkDate
	for d := start; !d.After(end); d = d.Next() {
		days = append(days, d)
	}
	return days, nil
}
