package playground

import (
	"math"
	"math/rand"
	"time"

	"physics-playground/internal/config"
	"physics-playground/internal/logger"
	"physics-playground/internal/physics"
	"physics-playground/internal/timer"
)

// autoSpawnTimer is the timer name of the auto-spawner.
const autoSpawnTimer = "auto-spawn"

// bounceSpeed is the impact speed (units/s) that maps to a full-strength click.
const bounceSpeed = 600.0

// Sound receives bounce notifications. Implementations must not block.
type Sound interface {
	Bounce(strength float64) bool
}

type silent struct{}

func (silent) Bounce(float64) bool { return false }

// Session is one running playground: the World, its Settings, the auto-spawn timer and the
// pointer state. All methods run on the frame-loop goroutine; front ends that receive input on
// another goroutine forward it to the loop first.
type Session struct {
	world    *physics.World
	settings Settings
	timers   *timer.Set
	radius   float64

	log   *logger.Logger
	sound Sound
	rng   *rand.Rand

	pointerDown bool
	// last pointer position seen by Click or PointerMove while held
	pointer    physics.Vec2
	hasPointer bool
	width       float64
	height      float64
	last        physics.StepStats
	spawned     uint64
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the spawn/control logger. Default is an in-memory logger.
func WithLogger(l *logger.Logger) Option {
	return func(s *Session) { s.log = l }
}

// WithSound sets the bounce sound sink. Default is silent.
func WithSound(snd Sound) Option {
	return func(s *Session) {
		if snd != nil {
			s.sound = snd
		}
	}
}

// WithRand sets the random source for auto-spawn positions.
func WithRand(r *rand.Rand) Option {
	return func(s *Session) { s.rng = r }
}

// New builds a Session from prefs. The auto-spawner is registered stopped unless
// prefs.AutoSpawnOnStart is set.
func New(prefs config.Prefs, opts ...Option) *Session {
	bp, ok := physics.ParseBroadphase(prefs.Broadphase)
	if !ok {
		bp = physics.BroadphasePairs
	}

	w := physics.NewWorld()
	w.SetGravity(physics.V(prefs.GravityX, prefs.GravityY))
	if prefs.Restitution > 0 {
		w.Restitution = prefs.Restitution
	}

	s := &Session{
		world: w,
		settings: Settings{
			Collisions:        prefs.Collisions,
			DragSpawn:         prefs.DragSpawn,
			AltVisual:         prefs.AltVisual,
			AutoSpawnInterval: prefs.AutoSpawnInterval(),
			Broadphase:        bp,
		},
		timers: timer.NewSet(),
		radius: prefs.Radius,
		sound:  silent{},
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.log == nil {
		s.log = logger.New("")
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if s.radius <= 0 {
		s.radius = physics.DefaultRadius
	}
	if s.settings.AutoSpawnInterval <= 0 {
		s.settings.AutoSpawnInterval = config.Default().AutoSpawnInterval()
	}

	if err := s.timers.Every(autoSpawnTimer, s.settings.AutoSpawnInterval, s.autoSpawn); err != nil {
		// the interval was forced positive above
		panic(err)
	}
	if prefs.AutoSpawnOnStart {
		s.timers.Start(autoSpawnTimer)
	}
	s.syncWorld()
	return s
}

// World returns the simulated world. Renderers read bodies from it.
func (s *Session) World() *physics.World {
	return s.world
}

// Settings returns a copy of the current toggles.
func (s *Session) Settings() Settings {
	return s.settings
}

// Logger returns the session logger.
func (s *Session) Logger() *logger.Logger {
	return s.log
}

// LastStep returns the corrections made by the most recent Step.
func (s *Session) LastStep() physics.StepStats {
	return s.last
}

// Spawned returns how many bodies have been spawned since the session began, resets included.
func (s *Session) Spawned() uint64 {
	return s.spawned
}

func (s *Session) syncWorld() {
	s.world.SetCollisionsEnabled(s.settings.Collisions)
	s.world.SetBroadphase(s.settings.Broadphase)
}

// Step advances auto-spawn timers by dt, then the world. It implements frame.Stepper.
func (s *Session) Step(dt, width, height float64) {
	s.width, s.height = width, height

	s.timers.Advance(time.Duration(dt * float64(time.Second)))
	s.syncWorld()

	s.last = s.world.Step(dt, width, height)
	if s.last.WallHits > 0 || s.last.PairHits > 0 {
		s.sound.Bounce(s.impactStrength())
	}
}

// impactStrength maps the fastest body speed this frame to 0..1 for the click volume.
func (s *Session) impactStrength() float64 {
	fastest := 0.0
	for _, b := range s.world.Bodies() {
		fastest = max(fastest, b.Speed())
	}
	return math.Min(1, fastest/bounceSpeed)
}

func (s *Session) spawn(x, y float64) *physics.Body {
	s.spawned++
	return s.world.Spawn(x, y, s.radius)
}

// Click spawns one body at the pointer position.
func (s *Session) Click(x, y float64) *physics.Body {
	b := s.spawn(x, y)
	s.pointer, s.hasPointer = physics.V(x, y), true
	s.log.Logf("Ball spawned at x: %.1f, y: %.1f", x, y)
	return b
}

// PointerDown marks the pointer as held (for drag spawning).
func (s *Session) PointerDown() {
	s.pointerDown = true
}

// PointerUp releases the pointer.
func (s *Session) PointerUp() {
	s.pointerDown = false
	s.hasPointer = false
}

// PointerMove spawns a body at (x, y) when drag mode is on, the pointer is held and it has
// actually moved since the last press or move. Front ends that poll the pointer every frame can
// call it unconditionally. Returns nil when nothing was spawned.
func (s *Session) PointerMove(x, y float64) *physics.Body {
	if !s.settings.DragSpawn || !s.pointerDown {
		return nil
	}
	p := physics.V(x, y)
	if s.hasPointer && p == s.pointer {
		return nil
	}
	s.pointer, s.hasPointer = p, true
	return s.spawn(x, y)
}

func (s *Session) autoSpawn() {
	x := s.rng.Float64() * s.width
	y := s.rng.Float64() * s.height / 2
	s.spawn(x, y)
	s.log.Logf("Ball auto-spawned at x: %.1f, y: %.1f", x, y)
}

// SetCollisions turns body-body collisions on or off.
func (s *Session) SetCollisions(on bool) {
	s.settings.Collisions = on
	s.world.SetCollisionsEnabled(on)
}

// SetDragSpawn turns drag-to-spawn on or off.
func (s *Session) SetDragSpawn(on bool) {
	s.settings.DragSpawn = on
}

// SetAltVisual switches the alternate visual mode.
func (s *Session) SetAltVisual(on bool) {
	s.settings.AltVisual = on
}

// SetBroadphase selects the collision pair search.
func (s *Session) SetBroadphase(bp physics.Broadphase) {
	s.settings.Broadphase = bp
	s.world.SetBroadphase(bp)
}

// SetGravity replaces the world gravity.
func (s *Session) SetGravity(x, y float64) {
	s.world.SetGravity(physics.V(x, y))
}

// StartAutoSpawn starts the auto-spawner. Starting it twice does not add a second spawner.
func (s *Session) StartAutoSpawn() {
	s.timers.Start(autoSpawnTimer)
}

// StopAutoSpawn stops the auto-spawner.
func (s *Session) StopAutoSpawn() {
	s.timers.Stop(autoSpawnTimer)
}

// AutoSpawning reports whether the auto-spawner runs.
func (s *Session) AutoSpawning() bool {
	return s.timers.Running(autoSpawnTimer)
}

// SetAutoSpawnInterval changes the auto-spawn period. d must be positive.
func (s *Session) SetAutoSpawnInterval(d time.Duration) error {
	if err := s.timers.SetInterval(autoSpawnTimer, d); err != nil {
		return err
	}
	s.settings.AutoSpawnInterval = d
	return nil
}

// Reset stops every timer, then removes all bodies, so no spawner can refill the cleared world
// within the same frame.
func (s *Session) Reset() {
	s.timers.StopAll()
	s.world.Reset()
	s.log.Log("World reset")
}

// Prefs returns prefs reflecting the current runtime state, for saving.
func (s *Session) Prefs(base config.Prefs) config.Prefs {
	base.Collisions = s.settings.Collisions
	base.DragSpawn = s.settings.DragSpawn
	base.AltVisual = s.settings.AltVisual
	base.AutoSpawnMS = int(s.settings.AutoSpawnInterval / time.Millisecond)
	base.Broadphase = s.settings.Broadphase.String()
	base.GravityX = s.world.Gravity.X
	base.GravityY = s.world.Gravity.Y
	return base
}

// Collisions reports whether body-body collisions are on.
func (s *Session) Collisions() bool { return s.settings.Collisions }

// DragSpawn reports whether drag-to-spawn is on.
func (s *Session) DragSpawn() bool { return s.settings.DragSpawn }

// AltVisual reports whether the alternate visual is selected.
func (s *Session) AltVisual() bool { return s.settings.AltVisual }

// Bodies returns the live body count.
func (s *Session) Bodies() int { return s.world.Len() }
