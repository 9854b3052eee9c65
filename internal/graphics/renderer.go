package graphics

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"physics-playground/internal/physics"
	"physics-playground/internal/playground"
)

var background = rl.NewColor(18, 18, 24, 255)

// Visual draws the bodies for one visual mode. Implementations keep whatever per-frame state
// they need (trails, shake); Forget drops it when the mode is switched away.
type Visual interface {
	Draw(bodies []*physics.Body, stats physics.StepStats, dt float32)
	Forget()
}

// Renderer is the frame.Surface of the raylib front end. It draws the session's bodies with the
// visual matching the current mode, then the overlay layers (buttons, console, debug) in order.
type Renderer struct {
	session *playground.Session
	visuals map[playground.Mode]Visual
	layers  []func()
	mode    playground.Mode
}

// NewRenderer returns a renderer with the plain and alternate visuals.
func NewRenderer(session *playground.Session) *Renderer {
	return &Renderer{
		session: session,
		visuals: map[playground.Mode]Visual{
			playground.ModePlain: PlainVisual{},
			playground.ModeAlt:   NewAltVisual(),
		},
		mode: session.Settings().Mode(),
	}
}

// AddLayer appends an overlay drawn after the bodies. Layers draw in the order added.
func (r *Renderer) AddLayer(draw func()) {
	r.layers = append(r.layers, draw)
}

// Size returns the current screen size; it changes when the window is resized.
func (r *Renderer) Size() (float64, float64) {
	return float64(rl.GetScreenWidth()), float64(rl.GetScreenHeight())
}

// Render draws one frame.
func (r *Renderer) Render() {
	mode := r.session.Settings().Mode()
	if mode != r.mode {
		r.visuals[r.mode].Forget()
		r.mode = mode
	}

	rl.BeginDrawing()
	rl.ClearBackground(background)
	r.visuals[mode].Draw(r.session.World().Bodies(), r.session.LastStep(), rl.GetFrameTime())
	for _, draw := range r.layers {
		draw()
	}
	rl.EndDrawing()
}
