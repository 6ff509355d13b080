package stream

import (
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
)

func TestClockElapsed(t *testing.T) {
	fc := clockwork.NewFakeClockAt(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC))
	c := NewClock(fc)
	c.Mount()

	if c.Now() != 0 {
		t.Errorf("Expected 0 at mount, got %v", c.Now())
	}

	fc.Advance(1500 * time.Millisecond)
	if c.Now() != 0 {
		t.Errorf("Expected Now to hold until the next tick, got %v", c.Now())
	}
	if got := c.Tick(); got != 1.5 {
		t.Errorf("Expected 1.5 after tick, got %v", got)
	}
	if c.Now() != 1.5 {
		t.Errorf("Expected Now to return the tick value, got %v", c.Now())
	}
}

func TestClockNeverDecreases(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	fc := clockwork.NewFakeClockAt(start)
	c := NewClock(fc)
	c.Mount()

	fc.Advance(2 * time.Second)
	c.Tick()

	// A fake clock can be wound back; real wall clocks occasionally are.
	back := clockwork.NewFakeClockAt(start.Add(-time.Hour))
	c.clock = back
	if got := c.Tick(); got != 2 {
		t.Errorf("Expected elapsed to hold at 2, got %v", got)
	}
}

func TestClockMountResets(t *testing.T) {
	fc := clockwork.NewFakeClock()
	c := NewClock(fc)
	fc.Advance(time.Minute)
	c.Tick()

	c.Mount()
	if c.Now() != 0 {
		t.Errorf("Expected reset to 0, got %v", c.Now())
	}
	fc.Advance(time.Second)
	if got := c.Tick(); got != 1 {
		t.Errorf("Expected 1 after remount, got %v", got)
	}
}
