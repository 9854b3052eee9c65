package ui

import (
	"os"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const defaultFontSize = 20

// Engine holds the current stylesheet and nodes, lays them out against the screen and draws
// them with raylib. Draw order is node order. Resolved styles are cached per node (normal and
// .active) and only recomputed when the sheet or nodes change.
type Engine struct {
	sheet  *Stylesheet
	nodes  []*Node
	styles [][2]ComputedStyle
	valid  bool
}

// New creates an engine with the given stylesheet (may be nil) and no nodes.
func New(sheet *Stylesheet) *Engine {
	return &Engine{sheet: sheet}
}

// LoadCSS loads and parses a CSS file from path, replacing the current stylesheet.
func (e *Engine) LoadCSS(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	sheet, err := ParseCSS(string(data))
	if err != nil {
		return err
	}
	e.SetStylesheet(sheet)
	return nil
}

// SetStylesheet sets the stylesheet directly (e.g. the embedded default).
func (e *Engine) SetStylesheet(sheet *Stylesheet) {
	e.sheet = sheet
	e.valid = false
}

// AddNode appends a node. Nodes are drawn in order.
func (e *Engine) AddNode(nodes ...*Node) {
	e.nodes = append(e.nodes, nodes...)
	e.valid = false
}

// Nodes returns the nodes in draw order.
func (e *Engine) Nodes() []*Node {
	return e.nodes
}

// resolveProps returns merged properties for a node: .class rules, then #id rules, then .active
// rules when active is true. Within each group the last matching rule wins.
func (e *Engine) resolveProps(n *Node, active bool) map[string]string {
	merged := make(map[string]string)
	if e.sheet == nil {
		return merged
	}
	apply := func(sel string) {
		for _, rule := range e.sheet.Rules {
			if rule.Selector == sel {
				for k, v := range rule.Props {
					merged[k] = v
				}
			}
		}
	}
	if n.Class != "" {
		apply("." + n.Class)
	}
	if n.ID != "" {
		apply("#" + n.ID)
	}
	if active {
		apply(".active")
	}
	return merged
}

func (e *Engine) ensureStyles() {
	if e.valid {
		return
	}
	e.styles = make([][2]ComputedStyle, len(e.nodes))
	for i, n := range e.nodes {
		e.styles[i][0] = ResolveProps(e.resolveProps(n, false))
		e.styles[i][1] = ResolveProps(e.resolveProps(n, true))
	}
	e.valid = true
}

// layoutBounds places a node of the given style on a screenW x screenH screen.
func layoutBounds(style ComputedStyle, screenW, screenH int32) rl.Rectangle {
	x, y := style.Left, style.Top
	if style.Right >= 0 {
		x = screenW - style.Right - style.Width
	}
	if style.Bottom >= 0 {
		y = screenH - style.Bottom - style.Height
	}
	return rl.NewRectangle(float32(x), float32(y), float32(style.Width), float32(style.Height))
}

// Layout resolves every node's Bounds for the given screen size.
func (e *Engine) Layout(screenW, screenH int32) {
	e.ensureStyles()
	for i, n := range e.nodes {
		n.Bounds = layoutBounds(e.styles[i][0], screenW, screenH)
	}
}

// HandleClick dispatches a click at (x, y) to the topmost button containing it.
// Returns true when a button took the click, so the caller does not also spawn a body there.
func (e *Engine) HandleClick(x, y float32) bool {
	p := rl.NewVector2(x, y)
	for i := len(e.nodes) - 1; i >= 0; i-- {
		n := e.nodes[i]
		if n.OnClick == nil || n.Bounds.Width <= 0 || n.Bounds.Height <= 0 {
			continue
		}
		if rl.CheckCollisionPointRec(p, n.Bounds) {
			n.OnClick()
			return true
		}
	}
	return false
}

// Contains reports whether (x, y) is over any laid-out node.
func (e *Engine) Contains(x, y float32) bool {
	p := rl.NewVector2(x, y)
	for _, n := range e.nodes {
		if n.Bounds.Width > 0 && n.Bounds.Height > 0 && rl.CheckCollisionPointRec(p, n.Bounds) {
			return true
		}
	}
	return false
}

// Draw lays out against the current screen and draws background, border and text of each node.
func (e *Engine) Draw() {
	e.Layout(int32(rl.GetScreenWidth()), int32(rl.GetScreenHeight()))
	for i, n := range e.nodes {
		style := e.styles[i][0]
		if n.isActive() {
			style = e.styles[i][1]
		}
		x, y := int32(n.Bounds.X), int32(n.Bounds.Y)
		w, h := int32(n.Bounds.Width), int32(n.Bounds.Height)

		if style.Background.A > 0 {
			rl.DrawRectangle(x, y, w, h, style.Background)
		}
		if style.HasBorder && w > 0 && h > 0 {
			rl.DrawRectangleLines(x, y, w, h, style.Border)
		}
		if n.Text != "" {
			rl.DrawText(n.Text, x+style.Padding, y+style.Padding, style.FontSize, style.Color)
		}
	}
}
