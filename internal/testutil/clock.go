package testutil

import (
	"sync"
	"time"
)

// StepClock is a deterministic clock for timing tests. Every call to Now
// advances it by Step, so a timed block bracketed by two readings always
// measures exactly Step.
type StepClock struct {
	mu    sync.Mutex
	now   time.Time
	Step  time.Duration
	calls int
}

// NewStepClock returns a clock starting at the Unix epoch.
func NewStepClock(step time.Duration) *StepClock {
	return &StepClock{now: time.Unix(0, 0), Step: step}
}

// Now advances the clock by Step and returns the new time.
func (c *StepClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(c.Step)
	c.calls++
	return c.now
}

// Calls returns how many times Now was called.
func (c *StepClock) Calls() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.calls
}
