package frame

import (
	"sync"
	"time"
)

// Clock supplies monotonic timestamps measured from an arbitrary origin.
type Clock interface {
	Now() time.Duration
}

// SystemClock reads the process monotonic clock, relative to when it was created.
type SystemClock struct {
	origin time.Time
}

// NewSystemClock returns a clock whose zero is the moment of the call.
func NewSystemClock() *SystemClock {
	return &SystemClock{origin: time.Now()}
}

// Now returns the elapsed monotonic time since the clock was created.
func (c *SystemClock) Now() time.Duration {
	return time.Since(c.origin)
}

// FuncClock adapts a seconds-returning function (e.g. a window library's timer) to Clock.
type FuncClock func() float64

// Now converts the function's seconds to a Duration.
func (f FuncClock) Now() time.Duration {
	return time.Duration(f() * float64(time.Second))
}

// ManualClock is a controllable clock for tests and replays of recorded input.
type ManualClock struct {
	mu  sync.RWMutex
	now time.Duration
}

// NewManualClock returns a clock reading start.
func NewManualClock(start time.Duration) *ManualClock {
	return &ManualClock{now: start}
}

// Now returns the current manual time.
func (m *ManualClock) Now() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.now
}

// Set moves the clock to t, which may be earlier than the current reading.
func (m *ManualClock) Set(t time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now = t
}

// Advance moves the clock forward by d.
func (m *ManualClock) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.now += d
}
