package testing

import (
	"sync"
	"time"
)

// Stepper advances a frame scheduler. *frame.Loop satisfies it.
type Stepper interface {
	Step(dt time.Duration)
}

// FakeClock is a manual time source for frame-driven tests. Advancing it
// steps every attached Stepper by the same delta. All methods are safe for
// concurrent use.
type FakeClock struct {
	mu       sync.Mutex
	start    time.Time
	now      time.Time
	steppers []Stepper
}

// NewFakeClock returns a FakeClock starting at a fixed epoch.
func NewFakeClock() *FakeClock {
	epoch := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return &FakeClock{start: epoch, now: epoch}
}

// Now returns the current fake time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

// Elapsed returns the time advanced since the clock was created.
func (c *FakeClock) Elapsed() time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now.Sub(c.start)
}

// Attach makes s step whenever the clock advances.
func (c *FakeClock) Attach(s Stepper) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.steppers = append(c.steppers, s)
}

// Advance moves the clock forward by d as a single frame.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.now = c.now.Add(d)
	steppers := append([]Stepper(nil), c.steppers...)
	c.mu.Unlock()

	for _, s := range steppers {
		s.Step(d)
	}
}

// AdvanceFrames moves the clock forward n frames of length frame each.
func (c *FakeClock) AdvanceFrames(n int, frame time.Duration) {
	for i := 0; i < n; i++ {
		c.Advance(frame)
	}
}
