// Package timer provides the time sources and interval gates used to pace
// animation, shooting and spawning.
package timer

import "time"

// Clock is a monotonic time source.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the process clock. time.Now carries a monotonic reading,
// so differences between two calls are unaffected by wall clock changes.
type SystemClock struct{}

// NewSystemClock creates a clock backed by time.Now.
func NewSystemClock() *SystemClock {
	return &SystemClock{}
}

// Now returns the current time with monotonic clock reading.
func (SystemClock) Now() time.Time {
	return time.Now()
}

// ManualClock only moves when told to. The game advances it by each frame's
// delta so that pausing freezes every cooldown, and tests drive it directly.
type ManualClock struct {
	current time.Time
}

// NewManualClock creates a clock frozen at start.
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{current: start}
}

// Now returns the current manual time.
func (c *ManualClock) Now() time.Time {
	return c.current
}

// Advance moves the clock forward by d. Negative values are ignored so the
// clock stays monotonic.
func (c *ManualClock) Advance(d time.Duration) {
	if d <= 0 {
		return
	}
	c.current = c.current.Add(d)
}

// Set jumps to t if it is not before the current time.
func (c *ManualClock) Set(t time.Time) {
	if t.Before(c.current) {
		return
	}
	c.current = t
}
