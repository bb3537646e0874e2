package utils

import "time"

// SystemClock reads the wall clock in a fixed location.
type SystemClock struct {
	location *time.Location
}

func NewSystemClock(location *time.Location) *SystemClock {
	if location == nil {
		location = time.Local
	}
	return &SystemClock{location: location}
}

func (c *SystemClock) Now() time.Time {
	return time.Now().In(c.location)
}

// FixedClock always reports the same instant.
type FixedClock struct {
	At time.Time
}

func (c FixedClock) Now() time.Time {
	return c.At
}
