package testing

import (
	"sync"
	"time"
)

// FakeClock provides controllable time for deterministic animation tests.
// All methods are safe for concurrent use.
type FakeClock struct {
	mu  sync.Mutex
	now time.Time
}

// NewFakeClock returns a FakeClock starting at a fixed epoch.
func NewFakeClock() *FakeClock {
	return &FakeClock{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

// Now returns the current fake time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Advance moves the clock forward by d.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// Set sets the clock to an exact time.
func (c *FakeClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

// Step advances the clock by n frames at the given rate and calls tick
// with the time after each frame. It drives a manager one frame at a
// time:
//
//	clk.Step(30, 60, func(now time.Time) { mgr.Tick(now) })
func (c *FakeClock) Step(n, fps int, tick func(now time.Time)) {
	frame := time.Second / time.Duration(fps)
	for i := 0; i < n; i++ {
		c.Advance(frame)
		tick(c.Now())
	}
}
