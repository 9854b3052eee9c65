package physics

// DefaultRadius is the radius every spawn path uses (click, drag, auto-spawn).
const DefaultRadius = 12

// Body is a circular particle with position, velocity, and an acceleration accumulator.
// Forces applied during a step are consumed by that step's Integrate and then cleared.
type Body struct {
	Position     Vec2
	Velocity     Vec2
	Acceleration Vec2
	Radius       float64
	Mass         float64
}

// NewBody returns a body at rest at (x, y). Mass is 1; radius <= 0 falls back to DefaultRadius.
func NewBody(x, y, radius float64) *Body {
	if radius <= 0 {
		radius = DefaultRadius
	}
	return &Body{
		Position: V(x, y),
		Radius:   radius,
		Mass:     1,
	}
}

// ApplyForce adds force/mass to the acceleration accumulator. Velocity and position are untouched
// until Integrate; the caller's vector is never modified.
func (b *Body) ApplyForce(force Vec2) {
	b.Acceleration = b.Acceleration.Add(force.Clone().Scale(1 / b.Mass))
}

// Integrate advances the body by dt seconds with explicit Euler: velocity first, then position
// from the new velocity. The acceleration accumulator is reset afterwards.
func (b *Body) Integrate(dt float64) {
	b.Velocity = b.Velocity.Add(b.Acceleration.Scale(dt))
	b.Position = b.Position.Add(b.Velocity.Scale(dt))
	b.Acceleration = Vec2{}
}

// Speed returns the magnitude of the velocity.
func (b *Body) Speed() float64 {
	return b.Velocity.Len()
}
