package physics

// DefaultRestitution is the fraction of velocity kept (with sign flip) after a wall bounce.
const DefaultRestitution = 0.7

// DefaultGravity is the downward acceleration in surface units per second squared (y grows down).
var DefaultGravity = Vec2{X: 0, Y: 500}

// StepStats counts the corrections made during one Step. Bounce audio and screen shake key off it.
type StepStats struct {
	WallHits int
	PairHits int
}

// World holds the bodies and runs one step of the simulation: gravity, integration, wall bounces
// against the surface rectangle, then pairwise circle collisions when enabled.
// Order of Bodies is insertion order; it only matters for deterministic iteration.
type World struct {
	Gravity     Vec2
	Restitution float64

	bodies            []*Body
	collisionsEnabled bool
	broadphase        Broadphase
}

// NewWorld returns an empty world with DefaultGravity, DefaultRestitution, and collisions on.
func NewWorld() *World {
	return &World{
		Gravity:           DefaultGravity,
		Restitution:       DefaultRestitution,
		collisionsEnabled: true,
		broadphase:        BroadphasePairs,
	}
}

// SetGravity sets the gravity vector applied to every body each step.
func (w *World) SetGravity(g Vec2) {
	w.Gravity = g
}

// SetCollisionsEnabled toggles the pairwise collision pass. Read at the start of every Step.
func (w *World) SetCollisionsEnabled(on bool) {
	w.collisionsEnabled = on
}

// CollisionsEnabled reports whether the pairwise pass runs.
func (w *World) CollisionsEnabled() bool {
	return w.collisionsEnabled
}

// SetBroadphase selects how candidate pairs are found. Results are the same either way.
func (w *World) SetBroadphase(bp Broadphase) {
	w.broadphase = bp
}

// Broadphase returns the current pair search strategy.
func (w *World) Broadphase() Broadphase {
	return w.broadphase
}

// Spawn appends a body at rest at (x, y) and returns it. This is the only way bodies enter the world.
func (w *World) Spawn(x, y, radius float64) *Body {
	b := NewBody(x, y, radius)
	w.bodies = append(w.bodies, b)
	return b
}

// Reset removes every body. The backing array is kept for the next bodies.
func (w *World) Reset() {
	clear(w.bodies)
	w.bodies = w.bodies[:0]
}

// Bodies returns the bodies in insertion order. Callers must not append to or retain the slice.
func (w *World) Bodies() []*Body {
	return w.bodies
}

// Len returns the number of bodies.
func (w *World) Len() int {
	return len(w.bodies)
}

// Step advances the simulation by dt seconds inside the rectangle [0,width] x [0,height].
// The size is passed every step because the surface can be resized between frames.
func (w *World) Step(dt, width, height float64) StepStats {
	var stats StepStats

	for _, b := range w.bodies {
		b.ApplyForce(w.Gravity)
		b.Integrate(dt)
	}

	for _, b := range w.bodies {
		stats.WallHits += w.bounce(b, width, height)
	}

	if w.collisionsEnabled {
		switch w.broadphase {
		case BroadphaseGrid:
			stats.PairHits = ResolveCollisionsGrid(w.bodies)
		default:
			stats.PairHits = ResolveCollisions(w.bodies)
		}
	}
	return stats
}

// bounce clamps b inside the floor, left and right walls (in that order) and reflects the
// matching velocity component. There is no ceiling. Returns how many walls were hit.
func (w *World) bounce(b *Body, width, height float64) int {
	hits := 0

	// floor
	if b.Position.Y+b.Radius > height {
		b.Position.Y = height - b.Radius
		b.Velocity.Y *= -w.Restitution
		hits++
	}

	// left wall
	if b.Position.X-b.Radius < 0 {
		b.Position.X = b.Radius
		b.Velocity.X *= -w.Restitution
		hits++
	}

	// right wall
	if b.Position.X+b.Radius > width {
		b.Position.X = width - b.Radius
		b.Velocity.X *= -w.Restitution
		hits++
	}
	return hits
}
