package tui

import (
	"context"
	"sync"

	"github.com/gdamore/tcell/v2"

	"physics-playground/internal/frame"
	"physics-playground/internal/playground"
)

// Input forwards tcell events to the session on the frame loop goroutine and paces the loop
// with a frame.TickerPacer. It implements frame.Pacer.
type Input struct {
	screen  tcell.Screen
	session *playground.Session
	events  chan tcell.Event
	pacer   *frame.TickerPacer
	done    chan struct{}
	once    sync.Once

	held bool
	quit bool
}

// NewInput starts polling screen for events and returns a pacer ticking at fps.
func NewInput(screen tcell.Screen, session *playground.Session, fps int) *Input {
	in := &Input{
		screen:  screen,
		session: session,
		events:  make(chan tcell.Event, 100),
		pacer:   frame.NewTickerPacer(fps),
		done:    make(chan struct{}),
	}
	go in.poll()
	return in
}

// poll runs on its own goroutine; it only hands events over, never touches the session.
func (in *Input) poll() {
	for {
		ev := in.screen.PollEvent()
		if ev == nil {
			return
		}
		select {
		case in.events <- ev:
		case <-in.done:
			return
		}
	}
}

// Wait blocks until the next tick, then applies every queued event. It returns false once a quit
// key was pressed or ctx is done.
func (in *Input) Wait(ctx context.Context) bool {
	select {
	case <-in.done:
		return false
	default:
	}
	if !in.pacer.Wait(ctx) {
		return false
	}
	for {
		select {
		case ev := <-in.events:
			in.Handle(ev)
		default:
			return !in.quit
		}
	}
}

// Close stops the ticker and the event forwarding.
func (in *Input) Close() {
	in.once.Do(func() {
		in.pacer.Close()
		close(in.done)
	})
}

// Quit reports whether a quit key was pressed.
func (in *Input) Quit() bool {
	return in.quit
}

// Handle applies one event to the session.
func (in *Input) Handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		in.handleKey(ev)
	case *tcell.EventMouse:
		in.handleMouse(ev)
	case *tcell.EventResize:
		in.screen.Sync()
	}
}

func (in *Input) handleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		in.quit = true
		return
	case tcell.KeyRune:
	default:
		return
	}
	s := in.session
	switch ev.Rune() {
	case 'q':
		in.quit = true
	case 'c':
		s.SetCollisions(!s.Collisions())
	case 'd':
		s.SetDragSpawn(!s.DragSpawn())
	case 'a':
		if s.AutoSpawning() {
			s.StopAutoSpawn()
		} else {
			s.StartAutoSpawn()
		}
	case 'r':
		s.Reset()
	case 'v':
		s.SetAltVisual(!s.AltVisual())
	}
}

// handleMouse spawns on press and, while the left button stays down, on every move.
func (in *Input) handleMouse(ev *tcell.EventMouse) {
	col, row := ev.Position()
	down := ev.Buttons()&tcell.Button1 != 0
	x, y, inside := WorldOf(col, row)

	switch {
	case down && !in.held:
		in.held = true
		in.session.PointerDown()
		if inside {
			in.session.Click(x, y)
		}
	case down && in.held:
		if inside {
			in.session.PointerMove(x, y)
		}
	case !down && in.held:
		in.held = false
		in.session.PointerUp()
	}
}
