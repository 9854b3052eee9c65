package debug

import "testing"

func TestFormat(t *testing.T) {
	got := Format(60, 12, 3*1024*1024/2)
	want := "FPS: 60  bodies: 12  heap: 1.50 MiB"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestSetShowFPSClearsText(t *testing.T) {
	d := New(false)
	d.text = "stale"
	d.SetShowFPS(true)
	if !d.ShowFPS || d.text != "" {
		t.Error("Expected overlay enabled with text refreshed on next draw")
	}
}
