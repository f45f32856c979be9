package clock

import (
	"time"

	"github.com/layer-3/gavel/ports"
)

// SystemClock reads the wall clock
type SystemClock struct{}

// NewSystemClock creates a clock backed by time.Now
func NewSystemClock() ports.Clock {
	return &SystemClock{}
}

// Now returns the current UTC time
func (c *SystemClock) Now() time.Time {
	return time.Now().UTC()
}
