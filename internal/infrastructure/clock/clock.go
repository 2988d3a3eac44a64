package clock

import "time"

// SystemClock implements port.Clock with the wall clock.
type SystemClock struct{}

// NewSystemClock creates a system clock adapter.
func NewSystemClock() SystemClock {
	return SystemClock{}
}

// Now returns the current time.
func (SystemClock) Now() time.Time {
	return time.Now()
}
