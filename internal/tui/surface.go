// Package tui is the terminal front end: a tcell surface the frame scheduler renders to and a
// pacer that feeds keyboard and mouse input to the session between frames.
package tui

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"

	"physics-playground/internal/physics"
	"physics-playground/internal/playground"
)

// One terminal cell covers CellWidth x CellHeight world units, so the physics behaves the same
// as in the window at roughly the same on-screen scale.
const (
	CellWidth  = 8.0
	CellHeight = 16.0
	// Rows reserved at the top for the status line.
	statusRows = 1
)

var (
	statusStyle = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorSilver)
	bodyStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
)

// Surface draws the session's bodies into a tcell screen. It implements frame.Surface.
type Surface struct {
	screen  tcell.Screen
	session *playground.Session
}

// NewSurface returns a surface drawing session into screen.
func NewSurface(screen tcell.Screen, session *playground.Session) *Surface {
	return &Surface{screen: screen, session: session}
}

// Size returns the playable area in world units. It is read every frame, so terminal resizes
// take effect on the next step.
func (s *Surface) Size() (float64, float64) {
	cols, rows := s.screen.Size()
	return float64(cols) * CellWidth, float64(max(0, rows-statusRows)) * CellHeight
}

// CellOf maps a world position to a screen cell, below the status line.
func CellOf(x, y float64) (col, row int) {
	return int(math.Floor(x / CellWidth)), int(math.Floor(y/CellHeight)) + statusRows
}

// WorldOf maps a screen cell to the world position of its center. ok is false on the status line.
func WorldOf(col, row int) (x, y float64, ok bool) {
	if row < statusRows {
		return 0, 0, false
	}
	return (float64(col) + 0.5) * CellWidth, (float64(row-statusRows) + 0.5) * CellHeight, true
}

// Render clears the screen and draws the status line and every body.
func (s *Surface) Render() {
	s.screen.Clear()
	cols, rows := s.screen.Size()

	s.drawStatus(cols)

	alt := s.session.Settings().Mode() == playground.ModeAlt
	for _, b := range s.session.World().Bodies() {
		col, row := CellOf(b.Position.X, b.Position.Y)
		if col < 0 || col >= cols || row < statusRows || row >= rows {
			continue
		}
		if alt {
			s.screen.SetContent(col, row, Glyph(b), nil, tcell.StyleDefault.Foreground(Tint(b.Speed())))
		} else {
			s.screen.SetContent(col, row, 'o', nil, bodyStyle)
		}
	}
	s.screen.Show()
}

func (s *Surface) drawStatus(cols int) {
	st := s.session.Settings()
	line := fmt.Sprintf(" bodies:%d  [c]ollide:%s  [d]rag:%s  [a]uto:%s  [v]isual:%s  [r]eset  [q]uit",
		s.session.Bodies(), onOff(st.Collisions), onOff(st.DragSpawn), onOff(s.session.AutoSpawning()),
		visualName(st.Mode()))
	col := 0
	for _, r := range line {
		if col >= cols {
			break
		}
		s.screen.SetContent(col, 0, r, nil, statusStyle)
		col++
	}
	for ; col < cols; col++ {
		s.screen.SetContent(col, 0, ' ', nil, statusStyle)
	}
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}

func visualName(m playground.Mode) string {
	if m == playground.ModeAlt {
		return "alt"
	}
	return "plain"
}

// Glyph picks a heavier rune for faster bodies.
func Glyph(b *physics.Body) rune {
	switch speed := b.Speed(); {
	case speed < 100:
		return '.'
	case speed < 300:
		return 'o'
	case speed < 600:
		return 'O'
	default:
		return '@'
	}
}

// Tint blends from cool blue at rest to orange at 900 units/s and above, like the window visual.
func Tint(speed float64) tcell.Color {
	t := math.Sqrt(math.Min(1, math.Max(0, speed/900)))
	lerp := func(a, b float64) int32 { return int32(math.Floor(a + (b-a)*t + 0.5)) }
	return tcell.NewRGBColor(lerp(90, 255), lerp(160, 140), lerp(255, 40))
}
