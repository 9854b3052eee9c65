package ui

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Node is a single UI element: panel, label or button. It has optional class and id for CSS
// matching, bounds (position and size) resolved from the stylesheet, and optional text.
type Node struct {
	Type   string // "panel", "label", "button"
	Class  string // e.g. "button" for .button
	ID     string // e.g. "collide-on" for #collide-on
	Bounds rl.Rectangle
	Text   string

	// OnClick runs when a left click lands inside Bounds. Only buttons get clicks.
	OnClick func()
	// Active, when set and true, adds the .active rules on top (e.g. the lit toggle).
	Active func() bool
}

// NewNode creates a node with type and optional class, id, and text.
func NewNode(typ, class, id, text string) *Node {
	return &Node{
		Type:  typ,
		Class: class,
		ID:    id,
		Text:  text,
	}
}

// NewButton creates a .button node that calls onClick and lights up while active returns true.
// active may be nil.
func NewButton(id, text string, onClick func(), active func() bool) *Node {
	n := NewNode("button", "button", id, text)
	n.OnClick = onClick
	n.Active = active
	return n
}

func (n *Node) isActive() bool {
	return n.Active != nil && n.Active()
}
