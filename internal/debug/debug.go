package debug

import (
	"fmt"
	"runtime"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const (
	fontSize   = 18
	padding    = 12
	lineHeight = fontSize + 4
	// updateInterval: only refresh the text every N frames to reduce allocations.
	updateInterval = 30
)

// Debug draws the FPS / body count / heap overlay at the bottom-left. Off by default.
type Debug struct {
	ShowFPS bool

	frameCount uint32
	text       string
	memStats   runtime.MemStats
}

// New returns a Debug overlay, shown when show is true.
func New(show bool) *Debug {
	return &Debug{ShowFPS: show}
}

// SetShowFPS sets whether the overlay is drawn.
func (d *Debug) SetShowFPS(show bool) {
	d.ShowFPS = show
	d.text = ""
}

// Format builds the overlay line.
func Format(fps int32, bodies int, heapBytes uint64) string {
	return fmt.Sprintf("FPS: %d  bodies: %d  heap: %.2f MiB", fps, bodies, float64(heapBytes)/(1024*1024))
}

// Draw renders the overlay when enabled. bodies is the current body count.
func (d *Debug) Draw(bodies int) {
	if !d.ShowFPS {
		return
	}
	d.frameCount++
	if d.text == "" || d.frameCount%updateInterval == 0 {
		runtime.ReadMemStats(&d.memStats)
		d.text = Format(rl.GetFPS(), bodies, d.memStats.HeapAlloc)
	}
	y := int32(rl.GetScreenHeight()) - lineHeight - padding
	rl.DrawText(d.text, padding, y, fontSize, rl.Green)
}
