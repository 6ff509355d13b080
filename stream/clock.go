package stream

import (
	"time"

	"github.com/jonboulle/clockwork"
)

// Clock measures seconds elapsed since the scene was mounted. The Scheduler
// advances it once per frame; everything else reads the frame's value.
type Clock struct {
	clock   clockwork.Clock
	start   time.Time
	elapsed float64
}

// NewClock creates a Clock reading time from clock, or the real clock if nil.
func NewClock(clock clockwork.Clock) *Clock {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	c := new(Clock)
	c.clock = clock
	c.start = clock.Now()
	return c
}

// Mount resets elapsed time to zero.
func (c *Clock) Mount() {
	c.start = c.clock.Now()
	c.elapsed = 0
}

// Tick samples the time source for a new frame. The result never decreases.
func (c *Clock) Tick() float64 {
	if e := c.clock.Since(c.start).Seconds(); e > c.elapsed {
		c.elapsed = e
	}
	return c.elapsed
}

// Now returns the value of the last Tick.
func (c *Clock) Now() float64 {
	return c.elapsed
}
