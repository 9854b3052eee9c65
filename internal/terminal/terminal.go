package terminal

import (
	"unicode/utf8"

	rl "github.com/gen2brain/raylib-go/raylib"

	"physics-playground/internal/commands"
	"physics-playground/internal/logger"
)

const (
	BarHeight = 36
	prompt    = "> "
	fontSize  = 18
	padding   = 8
	// Number of log lines drawn above the input bar when the console is open.
	maxLinesOnScreen = 12
	lineHeight       = fontSize + 4
	maxLineChars     = 160
)

var (
	barColor  = rl.NewColor(40, 40, 40, 255)
	lineColor = rl.NewColor(80, 80, 80, 255)
	logBg     = rl.NewColor(24, 24, 24, 230)
)

// Terminal is the command console at the bottom of the screen, shown/hidden with ESC.
// When open it captures the keyboard; lines starting with "cmd " run through the command
// registry and everything else is just logged. Command errors are logged too.
type Terminal struct {
	log      *logger.Logger
	reg      *commands.Registry
	inputBuf string
	open     bool
}

// New returns a closed console that logs to log and runs commands through reg.
func New(log *logger.Logger, reg *commands.Registry) *Terminal {
	return &Terminal{log: log, reg: reg}
}

// IsOpen returns true when the console is visible and capturing the keyboard.
func (t *Terminal) IsOpen() bool {
	return t.open
}

// Toggle opens or closes the console.
func (t *Terminal) Toggle() {
	t.open = !t.open
}

// Input returns the current input line.
func (t *Terminal) Input() string {
	return t.inputBuf
}

// Type appends r to the input line.
func (t *Terminal) Type(r rune) {
	t.inputBuf += string(r)
}

// Backspace removes the last rune of the input line.
func (t *Terminal) Backspace() {
	if len(t.inputBuf) > 0 {
		_, size := utf8.DecodeLastRuneInString(t.inputBuf)
		t.inputBuf = t.inputBuf[:len(t.inputBuf)-size]
	}
}

// Submit logs the input line, runs it if it is a command and clears it.
func (t *Terminal) Submit() {
	line := t.inputBuf
	if line == "" {
		return
	}
	t.inputBuf = ""
	t.log.Log(line)

	handled, err := t.reg.ExecuteLine(line)
	if err != nil {
		t.log.Log(err.Error())
		return
	}
	if !handled {
		t.log.Log(`not a command; try "cmd help"`)
	}
}

// Update handles ESC and, when open, typing, paste, backspace and enter. Call once per frame
// on the window thread. Returns true when the console consumed the keyboard this frame.
func (t *Terminal) Update() bool {
	if rl.IsKeyPressed(rl.KeyEscape) {
		t.Toggle()
		return true
	}
	if !t.open {
		return false
	}
	if rl.IsKeyPressed(rl.KeyV) && (rl.IsKeyDown(rl.KeyLeftControl) || rl.IsKeyDown(rl.KeyRightControl) || rl.IsKeyDown(rl.KeyLeftSuper) || rl.IsKeyDown(rl.KeyRightSuper)) {
		t.inputBuf += rl.GetClipboardText()
	} else {
		for c := rl.GetCharPressed(); c != 0; c = rl.GetCharPressed() {
			t.Type(rune(c))
		}
	}
	if rl.IsKeyPressed(rl.KeyBackspace) {
		t.Backspace()
	}
	if rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeyKpEnter) {
		t.Submit()
	}
	return true
}

// truncate shortens line to at most n runes, ending in "..." when cut.
func truncate(line string, n int) string {
	if utf8.RuneCountInString(line) <= n {
		return line
	}
	runes := []rune(line)
	return string(runes[:n-3]) + "..."
}

// Draw draws the input bar and the recent log lines above it when open.
func (t *Terminal) Draw() {
	if !t.open {
		return
	}
	screenW := int32(rl.GetScreenWidth())
	barY := int32(rl.GetScreenHeight()) - BarHeight

	lines := t.log.Tail(maxLinesOnScreen)
	logHeight := int32(len(lines))*lineHeight + 2*padding
	logY := max(0, barY-logHeight)
	rl.DrawRectangle(0, logY, screenW, barY-logY, logBg)
	for i, line := range lines {
		line = truncate(line, maxLineChars)
		rl.DrawText(line, padding, logY+padding+int32(i)*lineHeight, fontSize, rl.LightGray)
	}

	rl.DrawRectangle(0, barY, screenW, BarHeight, barColor)
	rl.DrawRectangle(0, barY, screenW, 1, lineColor)
	rl.DrawText(prompt+t.inputBuf+"|", padding, barY+padding, fontSize, rl.White)
}
