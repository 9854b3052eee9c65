package graphics

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"physics-playground/internal/physics"
)

// PlainVisual draws every body as a white disc.
type PlainVisual struct{}

// Draw implements Visual.
func (PlainVisual) Draw(bodies []*physics.Body, _ physics.StepStats, _ float32) {
	for _, b := range bodies {
		rl.DrawCircleV(rl.NewVector2(float32(b.Position.X), float32(b.Position.Y)), float32(b.Radius), rl.White)
	}
}

// Forget implements Visual.
func (PlainVisual) Forget() {}

const (
	trailLength = 8
	// shakePerHit is the shake amplitude (pixels) added per wall hit, capped at shakeMax.
	shakePerHit = 1.5
	shakeMax    = 8
	// shakeDecay is how much amplitude is lost per second.
	shakeDecay = 40
	// tintSpeed is the speed at which a body is drawn fully hot.
	tintSpeed = 900
)

// AltVisual tints bodies by speed, draws a fading trail behind each, and shakes the view a
// little on wall hits.
type AltVisual struct {
	trails map[*physics.Body]*trail
	shake  float32
	phase  float32
}

type trail struct {
	points [trailLength]rl.Vector2
	n      int
	head   int
	seen   bool
}

func (t *trail) push(p rl.Vector2) {
	t.points[t.head] = p
	t.head = (t.head + 1) % trailLength
	t.n = min(t.n+1, trailLength)
}

// at returns the i-th oldest point, 0 <= i < n.
func (t *trail) at(i int) rl.Vector2 {
	start := (t.head - t.n + trailLength) % trailLength
	return t.points[(start+i)%trailLength]
}

// NewAltVisual returns an alternate visual with no trails.
func NewAltVisual() *AltVisual {
	return &AltVisual{trails: make(map[*physics.Body]*trail)}
}

// Forget drops all trails and shake.
func (v *AltVisual) Forget() {
	clear(v.trails)
	v.shake = 0
}

// Tint maps a speed to a color from cool blue (at rest) to hot orange (tintSpeed and above).
func Tint(speed float32) rl.Color {
	t := math32.Min(1, math32.Max(0, speed/tintSpeed))
	// ease so slow bodies still show some warmth
	t = math32.Sqrt(t)
	lerp := func(a, b uint8) uint8 {
		return uint8(math32.Floor(float32(a) + (float32(b)-float32(a))*t + 0.5))
	}
	return rl.NewColor(lerp(90, 255), lerp(160, 140), lerp(255, 40), 255)
}

// nextShake returns the shake amplitude after a frame of dt seconds with hits wall hits.
func nextShake(current float32, hits int, dt float32) float32 {
	s := math32.Max(0, current-shakeDecay*dt)
	s += shakePerHit * float32(hits)
	return math32.Min(s, shakeMax)
}

// shakeOffset returns the view offset for amplitude a at oscillation phase p.
func shakeOffset(a, p float32) rl.Vector2 {
	return rl.NewVector2(a*math32.Sin(p*53), a*math32.Cos(p*47))
}

// track records each body's position and drops trails of bodies no longer present.
func (v *AltVisual) track(bodies []*physics.Body) {
	for _, t := range v.trails {
		t.seen = false
	}
	for _, b := range bodies {
		t, ok := v.trails[b]
		if !ok {
			t = &trail{}
			v.trails[b] = t
		}
		t.seen = true
		t.push(rl.NewVector2(float32(b.Position.X), float32(b.Position.Y)))
	}
	for b, t := range v.trails {
		if !t.seen {
			delete(v.trails, b)
		}
	}
}

// Draw implements Visual.
func (v *AltVisual) Draw(bodies []*physics.Body, stats physics.StepStats, dt float32) {
	v.shake = nextShake(v.shake, stats.WallHits, dt)
	v.phase += dt
	off := shakeOffset(v.shake, v.phase)
	v.track(bodies)

	for _, b := range bodies {
		c := Tint(float32(b.Speed()))
		r := float32(b.Radius)
		t := v.trails[b]
		for i := 0; i < t.n-1; i++ {
			p := t.at(i)
			alpha := float32(i+1) / float32(trailLength+1)
			rl.DrawCircleV(rl.Vector2Add(p, off), r*(0.4+0.5*alpha), rl.Fade(c, alpha*0.5))
		}
		pos := rl.NewVector2(float32(b.Position.X)+off.X, float32(b.Position.Y)+off.Y)
		rl.DrawCircleV(pos, r, c)
	}
}
