package domain

import "time"

// Calendar owns the single definition of a day boundary used across the
// engine, so aggregation, streaks, and auditing never disagree about which
// events belong to the same day.
type Calendar struct {
	loc *time.Location
}

// NewCalendar constructs a Calendar in the given location. A nil location
// falls back to UTC.
func NewCalendar(loc *time.Location) Calendar {
	if loc == nil {
		loc = time.UTC
	}
	return Calendar{loc: loc}
}

// DayOf truncates a timestamp to midnight of its calendar day.
func (c Calendar) DayOf(t time.Time) time.Time {
	local := t.In(c.loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, c.loc)
}

// SameDay reports whether two timestamps fall on the same calendar day.
func (c Calendar) SameDay(a, b time.Time) bool {
	return c.DayOf(a).Equal(c.DayOf(b))
}

// DayKey renders the day of a timestamp as YYYY-MM-DD for grouping.
func (c Calendar) DayKey(t time.Time) string {
	return c.DayOf(t).Format(time.DateOnly)
}

// DaysBetween returns the whole calendar days from earlier to later.
func (c Calendar) DaysBetween(earlier, later time.Time) int {
	return int(c.DayOf(later).Sub(c.DayOf(earlier)) / (24 * time.Hour))
}

// WorkdayFunc decides whether a calendar day counts as a working day for
// streak purposes. The engine never assumes a weekend policy on its own;
// callers inject one when their domain needs it.
type WorkdayFunc func(day time.Time) bool

// EveryDay treats all calendar days as working days.
func EveryDay(time.Time) bool { return true }

// WeekdaysOnly treats Monday through Friday as working days.
func WeekdaysOnly(day time.Time) bool {
	wd := day.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}
