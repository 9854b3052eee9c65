package commands

import (
	"errors"
	"strings"
	"testing"
	"time"

	"physics-playground/internal/physics"
)

type fakeControls struct {
	calls    []string
	interval time.Duration
	gravity  physics.Vec2
	bp       physics.Broadphase
}

func (f *fakeControls) record(s string) { f.calls = append(f.calls, s) }

func (f *fakeControls) SetCollisions(on bool) {
	if on {
		f.record("collide on")
	} else {
		f.record("collide off")
	}
}
func (f *fakeControls) SetDragSpawn(on bool) {
	if on {
		f.record("drag on")
	} else {
		f.record("drag off")
	}
}
func (f *fakeControls) SetAltVisual(on bool) {
	if on {
		f.record("alt on")
	} else {
		f.record("alt off")
	}
}
func (f *fakeControls) StartAutoSpawn() { f.record("auto start") }
func (f *fakeControls) StopAutoSpawn()  { f.record("auto stop") }
func (f *fakeControls) SetAutoSpawnInterval(d time.Duration) error {
	if d <= 0 {
		return errors.New("bad interval")
	}
	f.interval = d
	return nil
}
func (f *fakeControls) Reset() { f.record("reset") }
func (f *fakeControls) Click(x, y float64) *physics.Body {
	f.record("spawn")
	return physics.NewBody(x, y, 0)
}
func (f *fakeControls) SetGravity(x, y float64)             { f.gravity = physics.V(x, y) }
func (f *fakeControls) SetBroadphase(bp physics.Broadphase) { f.bp = bp }

func TestParse(t *testing.T) {
	tests := []struct {
		line string
		args []string
		ok   bool
	}{
		{"cmd collide --on", []string{"collide", "--on"}, true},
		{"cmd   spawn  1 2 ", []string{"spawn", "1", "2"}, true},
		{"cmd ", nil, true},
		{"hello", nil, false},
		{"CMD reset", nil, false},
	}
	for _, tt := range tests {
		args, ok := Parse(tt.line)
		if ok != tt.ok || strings.Join(args, "|") != strings.Join(tt.args, "|") {
			t.Errorf("Parse(%q) = %v,%v; want %v,%v", tt.line, args, ok, tt.args, tt.ok)
		}
	}
}

func TestPlaygroundCommands(t *testing.T) {
	tests := []struct {
		line    string
		want    string
		wantErr bool
	}{
		{"cmd collide --on", "collide on", false},
		{"cmd collide --off", "collide off", false},
		{"cmd collide", "", true},
		{"cmd collide --on --off", "", true},
		{"cmd drag --on", "drag on", false},
		{"cmd alt --off", "alt off", false},
		{"cmd auto --start", "auto start", false},
		{"cmd auto --stop", "auto stop", false},
		{"cmd auto", "", true},
		{"cmd auto --start --stop", "", true},
		{"cmd reset", "reset", false},
		{"cmd spawn 10 20", "spawn", false},
		{"cmd spawn 10", "", true},
		{"cmd spawn x y", "", true},
		{"cmd nope", "", true},
		{"cmd collide --bogus", "", true},
		{"cmd", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			fc := &fakeControls{}
			r := NewRegistry()
			RegisterPlayground(r, fc, Hooks{})

			handled, err := r.ExecuteLine(tt.line)
			if tt.line == "cmd" {
				if handled {
					t.Error("Expected bare 'cmd' without trailing space to be chat, not a command")
				}
				return
			}
			if !handled {
				t.Fatal("Expected line handled as command")
			}
			if (err != nil) != tt.wantErr {
				t.Fatalf("Expected error=%v, got %v", tt.wantErr, err)
			}
			got := strings.Join(fc.calls, ",")
			if got != tt.want {
				t.Errorf("Expected calls %q, got %q", tt.want, got)
			}
		})
	}
}

func TestFlagsResetBetweenExecutions(t *testing.T) {
	fc := &fakeControls{}
	r := NewRegistry()
	RegisterPlayground(r, fc, Hooks{})

	if err := r.Execute([]string{"collide", "--on"}); err != nil {
		t.Fatal(err)
	}
	if err := r.Execute([]string{"collide", "--off"}); err != nil {
		t.Fatalf("Expected --off to work after --on, got %v", err)
	}
	if strings.Join(fc.calls, ",") != "collide on,collide off" {
		t.Errorf("Unexpected calls %v", fc.calls)
	}
}

func TestAutoInterval(t *testing.T) {
	fc := &fakeControls{}
	r := NewRegistry()
	RegisterPlayground(r, fc, Hooks{})

	if err := r.Execute([]string{"auto", "--interval", "250ms", "--start"}); err != nil {
		t.Fatal(err)
	}
	if fc.interval != 250*time.Millisecond {
		t.Errorf("Expected 250ms, got %s", fc.interval)
	}
	if err := r.Execute([]string{"auto", "--interval", "-1s"}); err == nil {
		t.Error("Expected error for negative interval")
	}
	if err := r.Execute([]string{"auto", "--interval", "1s"}); err != nil {
		t.Errorf("Expected interval-only change to succeed, got %v", err)
	}
}

func TestGravityAndBroadphase(t *testing.T) {
	fc := &fakeControls{}
	r := NewRegistry()
	RegisterPlayground(r, fc, Hooks{})

	if err := r.Execute([]string{"gravity", "0", "980"}); err != nil {
		t.Fatal(err)
	}
	if fc.gravity != physics.V(0, 980) {
		t.Errorf("Expected gravity (0,980), got %+v", fc.gravity)
	}
	if err := r.Execute([]string{"broadphase", "grid"}); err != nil {
		t.Fatal(err)
	}
	if fc.bp != physics.BroadphaseGrid {
		t.Error("Expected grid broadphase")
	}
	if err := r.Execute([]string{"broadphase", "octree"}); err == nil {
		t.Error("Expected error for unknown broadphase")
	}
}

func TestHooks(t *testing.T) {
	fc := &fakeControls{}
	r := NewRegistry()
	if err := r.Execute([]string{"fps", "--show"}); err == nil {
		t.Error("Expected unknown command before registration")
	}
	RegisterPlayground(r, fc, Hooks{})
	if err := r.Execute([]string{"fps", "--show"}); err == nil {
		t.Error("Expected error without ShowFPS hook")
	}
	if err := r.Execute([]string{"save"}); err == nil {
		t.Error("Expected error without Save hook")
	}

	var shown bool
	saved := 0
	var printed string
	r = NewRegistry()
	RegisterPlayground(r, fc, Hooks{
		ShowFPS: func(show bool) { shown = show },
		Save:    func() error { saved++; return nil },
		Print:   func(line string) { printed = line },
	})
	if err := r.Execute([]string{"fps", "--show"}); err != nil || !shown {
		t.Errorf("Expected overlay shown, err=%v", err)
	}
	if err := r.Execute([]string{"save"}); err != nil || saved != 1 {
		t.Errorf("Expected one save, err=%v", err)
	}
	if err := r.Execute([]string{"help"}); err != nil || !strings.Contains(printed, "cmd collide --on|--off") {
		t.Errorf("Expected help listing, got %q", printed)
	}
}
