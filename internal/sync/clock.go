package sync

import (
	"sync"
	"time"
)

// Clock supplies the current time to the sync core. It is injected so that
// tests can drive staleness decisions deterministically. Cursor values
// exchanged over the wire always come from the server's clock; a client
// clock only ever feeds the staleness check.
type Clock interface {
	// Now returns the current time, monotonic non-decreasing within a process.
	Now() time.Time
}

// systemClock wraps the wall clock and pins it so that two consecutive
// reads never go backwards, even across an NTP step.
type systemClock struct {
	mu   sync.Mutex
	last time.Time
}

// NewSystemClock returns a Clock backed by the system wall clock.
func NewSystemClock() Clock {
	return &systemClock{}
}

func (c *systemClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now().UTC()
	if now.Before(c.last) {
		now = c.last
	}
	c.last = now
	return now
}
