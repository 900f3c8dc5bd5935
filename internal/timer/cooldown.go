package timer

import (
	"time"

	"go-space-invaders/internal/utils"
)

// Cooldown gates a periodic action: it is finished once its duration has
// elapsed since the last Reset. The interval starts at construction.
type Cooldown struct {
	clock    Clock
	start    time.Time
	base     time.Duration
	variance time.Duration
	duration time.Duration
	rng      *utils.PRNGService
}

// NewCooldown creates a fixed interval gate. A negative duration is finished
// immediately.
func NewCooldown(clock Clock, d time.Duration) *Cooldown {
	c := &Cooldown{clock: clock, base: d, duration: d}
	c.start = clock.Now()
	return c
}

// NewFinishedCooldown creates a gate that is already open: the first
// CheckFinished succeeds without waiting.
func NewFinishedCooldown(clock Clock, d time.Duration) *Cooldown {
	c := &Cooldown{clock: clock, base: d, duration: d}
	c.start = clock.Now().Add(-d)
	return c
}

// NewRandomCooldown creates a gate whose duration is redrawn on every Reset,
// uniformly from [d-variance, d+variance].
func NewRandomCooldown(clock Clock, d, variance time.Duration, rng *utils.PRNGService) *Cooldown {
	c := &Cooldown{clock: clock, base: d, duration: d, rng: rng}
	if variance < 0 {
		variance = -variance
	}
	c.variance = variance
	c.Reset()
	return c
}

// Reset starts a new interval at the current time.
func (c *Cooldown) Reset() {
	c.start = c.clock.Now()
	if c.variance > 0 && c.rng != nil {
		span := int64(2*c.variance) / int64(time.Millisecond)
		offset := time.Duration(c.rng.Int63n(span+1)) * time.Millisecond
		c.duration = c.base - c.variance + offset
	}
}

// CheckFinished reports whether the interval has fully elapsed.
func (c *Cooldown) CheckFinished() bool {
	if c.duration <= 0 {
		return true
	}
	return c.clock.Now().Sub(c.start) >= c.duration
}

// Duration is the length of the current interval.
func (c *Cooldown) Duration() time.Duration {
	return c.duration
}

// Remaining is the time left until the interval finishes, never negative.
func (c *Cooldown) Remaining() time.Duration {
	left := c.duration - c.clock.Now().Sub(c.start)
	if left < 0 {
		return 0
	}
	return left
}
