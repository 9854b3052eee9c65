package ui

import "fmt"

// DefaultCSS styles the control bar along the top-left and the stats panel at the top-right.
const DefaultCSS = `
.bar { left: 0; top: 0; width: 760; height: 40; background: #000000a0; }
.button { width: 84; height: 28; top: 6; background: #2a2a34; color: #d0d0d8; border: #50505c; padding: 7; font-size: 14; }
.active { background: #3d7be0; color: #ffffff; border: #8fb4f0; }
#collide-on { left: 6; }   #collide-off { left: 94; }
#drag-on { left: 190; }    #drag-off { left: 278; }
#auto-start { left: 374; } #auto-stop { left: 462; } #reset { left: 550; }
#alt { left: 646; width: 108; }
.stats { right: 8; top: 48; width: 220; height: 26; color: #a0a0b0; font-size: 14; }
`

// Controls is the session surface the buttons drive.
type Controls interface {
	SetCollisions(on bool)
	SetDragSpawn(on bool)
	SetAltVisual(on bool)
	StartAutoSpawn()
	StopAutoSpawn()
	Reset()
}

// State reports the toggles the buttons light up for and the stats panel shows.
type State interface {
	Collisions() bool
	DragSpawn() bool
	AltVisual() bool
	AutoSpawning() bool
	Bodies() int
}

// ControlBar returns the button bar: collide on/off, drag on/off, auto start/stop, reset and
// the alternate visual toggle.
func ControlBar(c Controls, s State) []*Node {
	return []*Node{
		NewNode("panel", "bar", "", ""),
		NewButton("collide-on", "Collide", func() { c.SetCollisions(true) }, s.Collisions),
		NewButton("collide-off", "No collide", func() { c.SetCollisions(false) }, func() bool { return !s.Collisions() }),
		NewButton("drag-on", "Drag", func() { c.SetDragSpawn(true) }, s.DragSpawn),
		NewButton("drag-off", "No drag", func() { c.SetDragSpawn(false) }, func() bool { return !s.DragSpawn() }),
		NewButton("auto-start", "Start", c.StartAutoSpawn, s.AutoSpawning),
		NewButton("auto-stop", "Stop", c.StopAutoSpawn, nil),
		NewButton("reset", "Reset", c.Reset, nil),
		NewButton("alt", "Alt visual", func() { c.SetAltVisual(!s.AltVisual()) }, s.AltVisual),
	}
}

// StatsPanel is a label showing the live body count and auto-spawn state.
type StatsPanel struct {
	label *Node
	state State
}

// NewStatsPanel returns a panel reading from s.
func NewStatsPanel(s State) *StatsPanel {
	return &StatsPanel{label: NewNode("label", "stats", "", ""), state: s}
}

// Node returns the label node to add to the engine.
func (p *StatsPanel) Node() *Node {
	return p.label
}

// Update refreshes the label text. Call once per frame before Draw.
func (p *StatsPanel) Update() {
	auto := "off"
	if p.state.AutoSpawning() {
		auto = "on"
	}
	p.label.Text = fmt.Sprintf("bodies: %d  auto: %s", p.state.Bodies(), auto)
}
