package frame

import (
	"context"
	"math"
	"sync"
	"sync/atomic"
	"time"
)

// DefaultMaxDT caps a single step so a stalled window (drag, breakpoint, suspend) does not
// launch every body through the walls on resume.
const DefaultMaxDT = 0.1

// Stepper advances the simulation by dt seconds inside a width x height surface.
type Stepper interface {
	Step(dt, width, height float64)
}

// Surface is the drawable target. Size is read fresh every frame; Render draws the current state.
type Surface interface {
	Size() (width, height float64)
	Render()
}

// Pacer blocks until the next frame should run. It returns false when the front end is being
// torn down (window closed, quit key) or ctx is done.
type Pacer interface {
	Wait(ctx context.Context) bool
}

// Scheduler drives the frame loop: each frame it computes dt from the clock, steps the
// simulation with the current surface size, then renders. One frame is in flight at a time.
type Scheduler struct {
	clock   Clock
	stepper Stepper
	surface Surface

	// MaxDT clamps large gaps between frames, in seconds. Zero disables the clamp.
	MaxDT float64

	last    time.Duration
	hasLast bool
	frames  uint64

	running atomic.Bool
	mu      sync.Mutex
	stop    chan struct{}
}

// NewScheduler returns a stopped scheduler with DefaultMaxDT.
func NewScheduler(clock Clock, stepper Stepper, surface Surface) *Scheduler {
	return &Scheduler{
		clock:   clock,
		stepper: stepper,
		surface: surface,
		MaxDT:   DefaultMaxDT,
	}
}

// Frame runs one iteration and returns the dt (seconds) handed to the stepper.
// The first frame after Start, a clock that went backwards, and non-finite gaps all yield 0.
func (s *Scheduler) Frame() float64 {
	now := s.clock.Now()
	dt := 0.0
	if s.hasLast {
		dt = (now - s.last).Seconds()
	}
	s.last = now
	s.hasLast = true
	dt = s.clampDT(dt)

	w, h := s.surface.Size()
	s.stepper.Step(dt, w, h)
	s.surface.Render()
	s.frames++
	return dt
}

func (s *Scheduler) clampDT(dt float64) float64 {
	if dt < 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		return 0
	}
	if s.MaxDT > 0 && dt > s.MaxDT {
		return s.MaxDT
	}
	return dt
}

// Frames returns how many frames have run.
func (s *Scheduler) Frames() uint64 {
	return s.frames
}

// Start marks the scheduler running and forgets the previous timestamp, so the first frame
// after a restart does not see the paused interval as dt. Start on a running scheduler is a no-op.
func (s *Scheduler) Start() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.running.Load() {
		return
	}
	s.stop = make(chan struct{})
	s.hasLast = false
	s.running.Store(true)
}

// Stop ends the loop after the current frame. Safe to call from any goroutine, and more than once.
func (s *Scheduler) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.running.Load() {
		return
	}
	s.running.Store(false)
	close(s.stop)
}

// Running reports whether the loop is active.
func (s *Scheduler) Running() bool {
	return s.running.Load()
}

func (s *Scheduler) stopChan() <-chan struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stop
}

// Run starts the scheduler and calls Frame each time pacer allows, until the pacer reports
// teardown, ctx is cancelled, or Stop is called. Returns ctx.Err() when cancelled, nil otherwise.
func (s *Scheduler) Run(ctx context.Context, pacer Pacer) error {
	s.Start()
	defer s.Stop()

	stop := s.stopChan()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-stop:
			return nil
		default:
		}

		if !pacer.Wait(ctx) {
			if err := ctx.Err(); err != nil {
				return err
			}
			return nil
		}

		select {
		case <-stop:
			return nil
		default:
		}
		s.Frame()
	}
}
