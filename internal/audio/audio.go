package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	clickFreq     = 660.0
	clickDuration = 40 * time.Millisecond

	// MinGap is the shortest interval between two clicks. A pile of resting balls reports a
	// floor hit every frame; one click per gap is plenty.
	MinGap = 60 * time.Millisecond
)

// Player plays a short click on bounces. Every method is fire-and-forget: if the speaker could
// not be opened the player stays silent and the simulation carries on.
type Player struct {
	mu          sync.Mutex
	initialized bool
	muted       bool
	last        time.Time
	now         func() time.Time
	play        func(beep.Streamer)
}

// New returns a silent player. Call Init to open the speaker.
func New() *Player {
	return &Player{now: time.Now, play: func(s beep.Streamer) { speaker.Play(s) }}
}

// Init opens the speaker with a 100ms buffer. On error the player stays silent.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	p.initialized = true
	return nil
}

// Close stops playback and releases the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.initialized = false
}

// SetMuted silences or restores clicks without closing the speaker.
func (p *Player) SetMuted(muted bool) {
	p.mu.Lock()
	p.muted = muted
	p.mu.Unlock()
}

// Bounce queues a click whose loudness follows strength (0..1, clamped). Reports whether a
// click was queued; callers normally ignore the result.
func (p *Player) Bounce(strength float64) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized || p.muted {
		return false
	}
	now := p.now()
	if !p.last.IsZero() && now.Sub(p.last) < MinGap {
		return false
	}
	s, err := Click(strength)
	if err != nil {
		return false
	}
	p.last = now
	p.play(s)
	return true
}

// Click builds the bounce click: a short sine tone scaled by strength.
func Click(strength float64) (beep.Streamer, error) {
	strength = math.Max(0, math.Min(1, strength))
	sine, err := generators.SineTone(sampleRate, clickFreq)
	if err != nil {
		return nil, err
	}
	tone := beep.Take(sampleRate.N(clickDuration), sine)
	if strength == 0 {
		return &effects.Volume{Streamer: tone, Base: 2, Silent: true}, nil
	}
	// quiet overall: full strength is -2 (a quarter amplitude)
	return &effects.Volume{Streamer: tone, Base: 2, Volume: math.Log2(strength) - 2}, nil
}
