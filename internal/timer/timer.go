package timer

import (
	"fmt"
	"slices"
	"time"
)

// MaxCatchUp bounds how many times one timer fires in a single Advance. A 1ms auto-spawner
// behind a 100ms frame would otherwise dump a hundred bodies at once.
const MaxCatchUp = 64

// Timer fires fn every Interval of advanced time while started.
type Timer struct {
	Interval time.Duration

	fn      func()
	running bool
	elapsed time.Duration
}

// Set holds named interval timers advanced by the frame loop. Timers never run on their own
// goroutine, so their callbacks may touch simulation state without locking.
type Set struct {
	timers map[string]*Timer
	order  []string
}

// NewSet returns an empty timer set.
func NewSet() *Set {
	return &Set{timers: make(map[string]*Timer)}
}

// Every registers (or replaces) a stopped timer under name. interval must be positive.
func (s *Set) Every(name string, interval time.Duration, fn func()) error {
	if interval <= 0 {
		return fmt.Errorf("timer %q: interval must be positive, got %s", name, interval)
	}
	if _, ok := s.timers[name]; !ok {
		s.order = append(s.order, name)
	}
	s.timers[name] = &Timer{Interval: interval, fn: fn}
	return nil
}

// SetInterval changes a timer's interval and keeps its running state. Elapsed time is kept too,
// so a shorter interval may fire on the next Advance.
func (s *Set) SetInterval(name string, interval time.Duration) error {
	if interval <= 0 {
		return fmt.Errorf("timer %q: interval must be positive, got %s", name, interval)
	}
	t, ok := s.timers[name]
	if !ok {
		return fmt.Errorf("timer %q: not registered", name)
	}
	t.Interval = interval
	return nil
}

// Start begins firing the named timer. Starting a running timer does nothing, so repeated
// start requests never stack spawners. Returns false for unknown names.
func (s *Set) Start(name string) bool {
	t, ok := s.timers[name]
	if !ok {
		return false
	}
	if !t.running {
		t.running = true
		t.elapsed = 0
	}
	return true
}

// Stop halts the named timer. Unknown names and stopped timers are ignored.
func (s *Set) Stop(name string) {
	if t, ok := s.timers[name]; ok {
		t.running = false
		t.elapsed = 0
	}
}

// StopAll halts every timer.
func (s *Set) StopAll() {
	for _, t := range s.timers {
		t.running = false
		t.elapsed = 0
	}
}

// Running reports whether the named timer is started.
func (s *Set) Running(name string) bool {
	t, ok := s.timers[name]
	return ok && t.running
}

// Active returns the names of started timers in registration order.
func (s *Set) Active() []string {
	var names []string
	for _, name := range s.order {
		if s.timers[name].running {
			names = append(names, name)
		}
	}
	return names
}

// Advance adds d to every running timer and fires each once per whole interval elapsed, capped at
// MaxCatchUp. A callback that stops timers (e.g. a reset) takes effect immediately, also for the
// rest of this Advance. Negative d is ignored.
func (s *Set) Advance(d time.Duration) {
	if d <= 0 {
		return
	}
	for _, name := range slices.Clone(s.order) {
		t, ok := s.timers[name]
		if !ok || !t.running {
			continue
		}
		t.elapsed += d
		fired := 0
		for t.running && t.elapsed >= t.Interval {
			t.elapsed -= t.Interval
			if fired == MaxCatchUp {
				t.elapsed %= t.Interval
				break
			}
			fired++
			t.fn()
		}
	}
}
