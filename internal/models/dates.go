package models

import "time"

// DateOf returns the calendar date of t (read in t's own location) as
// midnight UTC. Obligation dates and ledger entry dates are stored in this
// form so they compare as plain calendar dates.
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// WallTime re-expresses the wall clock reading of t in UTC.
func WallTime(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
}

// AddMonths adds calendar months to t. When the day of month does not exist
// in the target month it is clamped to that month's last day, so Jan 31 plus
// one month is Feb 28 (or 29).
func AddMonths(t time.Time, months int) time.Time {
	y, m, d := t.Date()
	first := time.Date(y, m+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	if last := first.AddDate(0, 1, -1).Day(); d > last {
		d = last
	}
	return time.Date(first.Year(), first.Month(), d, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// DayRange returns [start of day, start of next day) for the calendar date of t.
func DayRange(t time.Time) (time.Time, time.Time) {
	start := DateOf(t)
	return start, start.AddDate(0, 0, 1)
}
