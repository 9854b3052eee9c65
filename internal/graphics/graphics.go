package graphics

import (
	"context"

	rl "github.com/gen2brain/raylib-go/raylib"

	"physics-playground/internal/config"
	"physics-playground/internal/frame"
)

// Window owns the raylib window. It is the frame.Pacer of the raylib front end: every Wait polls
// input on the loop thread, so input handlers may touch the session directly.
type Window struct {
	poll func()
}

// Open creates the window from cfg. ESC is left to the console; close via the window button.
func Open(cfg config.Window) *Window {
	flags := uint32(rl.FlagMsaa4xHint)
	if cfg.Resizable {
		flags |= rl.FlagWindowResizable
	}
	rl.SetConfigFlags(flags)
	rl.InitWindow(int32(cfg.Width), int32(cfg.Height), cfg.Title)
	rl.SetExitKey(rl.KeyNull)
	if cfg.TargetFPS > 0 {
		rl.SetTargetFPS(int32(cfg.TargetFPS))
	}
	return &Window{}
}

// Close closes the window.
func (w *Window) Close() {
	rl.CloseWindow()
}

// OnPoll sets the input handler run before every frame.
func (w *Window) OnPoll(poll func()) {
	w.poll = poll
}

// Wait implements frame.Pacer. Frame pacing itself happens in EndDrawing (SetTargetFPS);
// Wait only reports teardown and runs the input handler.
func (w *Window) Wait(ctx context.Context) bool {
	if ctx.Err() != nil || rl.WindowShouldClose() {
		return false
	}
	if w.poll != nil {
		w.poll()
	}
	return true
}

// Clock returns raylib's monotonic timer as a frame.Clock.
func (w *Window) Clock() frame.Clock {
	return frame.FuncClock(rl.GetTime)
}
