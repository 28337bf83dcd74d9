package timeparse

import "time"

// Clock is the source of the current time
type Clock interface {
	Now() time.Time
}

// SystemClock is a Clock reading the system time
type SystemClock struct{}

// Now returns the current system time
func (SystemClock) Now() time.Time {
	return time.Now()
}

// FixedClock is a Clock which always returns the same time
type FixedClock time.Time

// Now returns the fixed time
func (fc FixedClock) Now() time.Time {
	return time.Time(fc)
}
