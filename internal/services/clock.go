package services

import "time"

type systemClock struct {
	location *time.Location
}

// NewSystemClock returns a clock reading the wall time in location. A nil
// location means UTC.
func NewSystemClock(location *time.Location) Clock {
	if location == nil {
		location = time.UTC
	}
	return &systemClock{location: location}
}

func (c *systemClock) Now() time.Time {
	return time.Now().In(c.location)
}

// FixedClock always reports the same instant.
type FixedClock struct {
	At time.Time
}

func (c FixedClock) Now() time.Time {
	return c.At
}
