package testutil

import "sync/atomic"

// DeterministicClock is a resettable logical clock.
//
// The harness stamps every calculation with Next(), so the same scenario
// always yields the same seq values and therefore the same calculation IDs.
// Safe for concurrent use.
type DeterministicClock struct {
	seq atomic.Int64
}

// NewDeterministicClock returns a clock whose first Next() is 1.
func NewDeterministicClock() *DeterministicClock {
	return &DeterministicClock{}
}

// Next advances the clock and returns the new seq.
func (c *DeterministicClock) Next() int64 {
	return c.seq.Add(1)
}

// Current returns the last seq handed out, or 0.
func (c *DeterministicClock) Current() int64 {
	return c.seq.Load()
}

// Reset rewinds the clock to 0.
func (c *DeterministicClock) Reset() {
	c.seq.Store(0)
}
