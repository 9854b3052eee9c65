package ui

import (
	"testing"

	rl "github.com/gen2brain/raylib-go/raylib"
)

func TestParseCSS(t *testing.T) {
	sheet, err := ParseCSS(`
/* comment */
.button, #reset { width: 80px; color: #fff; }
div { color: #000; }
#reset { background: #ff000080; }
`)
	if err != nil {
		t.Fatal(err)
	}
	if len(sheet.Rules) != 3 {
		t.Fatalf("Expected 3 rules, got %d: %+v", len(sheet.Rules), sheet.Rules)
	}
	if sheet.Rules[0].Selector != ".button" || sheet.Rules[1].Selector != "#reset" {
		t.Errorf("Expected comma list split in order, got %+v", sheet.Rules[:2])
	}
	if sheet.Rules[2].Props["background"] != "#ff000080" {
		t.Errorf("Expected background prop, got %v", sheet.Rules[2].Props)
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want rl.Color
		ok   bool
	}{
		{"#fff", rl.NewColor(255, 255, 255, 255), true},
		{"#102030", rl.NewColor(16, 32, 48, 255), true},
		{"#10203040", rl.NewColor(16, 32, 48, 64), true},
		{"#12", rl.Black, false},
		{"red", rl.Black, false},
		{"#zzzzzz", rl.Black, false},
	}
	for _, tt := range tests {
		got, ok := ParseHexColor(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseHexColor(%q) = %v,%v; want %v,%v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestLayoutAnchors(t *testing.T) {
	style := ResolveProps(map[string]string{"width": "100", "height": "20", "right": "10", "bottom": "5"})
	r := layoutBounds(style, 800, 600)
	if r != rl.NewRectangle(690, 575, 100, 20) {
		t.Errorf("Expected bottom-right anchored rect, got %+v", r)
	}

	style = ResolveProps(map[string]string{"width": "100", "height": "20", "left": "7px", "top": "9"})
	r = layoutBounds(style, 800, 600)
	if r != rl.NewRectangle(7, 9, 100, 20) {
		t.Errorf("Expected top-left rect, got %+v", r)
	}
}

type fakeSession struct {
	collide, drag, alt, auto bool
	bodies                   int
	resets                   int
}

func (f *fakeSession) SetCollisions(on bool) { f.collide = on }
func (f *fakeSession) SetDragSpawn(on bool)  { f.drag = on }
func (f *fakeSession) SetAltVisual(on bool)  { f.alt = on }
func (f *fakeSession) StartAutoSpawn()       { f.auto = true }
func (f *fakeSession) StopAutoSpawn()        { f.auto = false }
func (f *fakeSession) Reset()                { f.resets++ }
func (f *fakeSession) Collisions() bool      { return f.collide }
func (f *fakeSession) DragSpawn() bool       { return f.drag }
func (f *fakeSession) AltVisual() bool       { return f.alt }
func (f *fakeSession) AutoSpawning() bool    { return f.auto }
func (f *fakeSession) Bodies() int           { return f.bodies }

func TestControlBarClicks(t *testing.T) {
	sheet, _ := ParseCSS(DefaultCSS)
	fs := &fakeSession{collide: true}
	e := New(sheet)
	e.AddNode(ControlBar(fs, fs)...)
	e.Layout(1024, 768)

	click := func(id string) bool {
		for _, n := range e.Nodes() {
			if n.ID == id {
				return e.HandleClick(n.Bounds.X+2, n.Bounds.Y+2)
			}
		}
		t.Fatalf("no node %s", id)
		return false
	}

	if !click("collide-off") || fs.collide {
		t.Error("Expected collide-off to disable collisions")
	}
	if !click("drag-on") || !fs.drag {
		t.Error("Expected drag-on to enable drag")
	}
	if !click("auto-start") || !fs.auto {
		t.Error("Expected auto-start to start spawning")
	}
	if !click("reset") || fs.resets != 1 {
		t.Error("Expected reset click")
	}
	click("alt")
	click("alt")
	if fs.alt {
		t.Error("Expected alt to toggle back off")
	}

	if e.HandleClick(500, 500) {
		t.Error("Expected click outside buttons to fall through")
	}
	if !e.Contains(2, 2) {
		t.Error("Expected bar to cover the top-left corner")
	}
}

func TestStatsPanel(t *testing.T) {
	fs := &fakeSession{bodies: 42, auto: true}
	p := NewStatsPanel(fs)
	p.Update()
	if p.Node().Text != "bodies: 42  auto: on" {
		t.Errorf("Unexpected stats text %q", p.Node().Text)
	}
}
