package physics

import "math"

// Broadphase selects how the collision pass finds candidate pairs.
type Broadphase uint8

const (
	// BroadphasePairs tests every unordered pair (i < j). O(n²).
	BroadphasePairs Broadphase = iota
	// BroadphaseGrid buckets bodies into a uniform grid and only tests neighbouring cells.
	BroadphaseGrid
)

// String returns the name used by commands and config files.
func (bp Broadphase) String() string {
	switch bp {
	case BroadphaseGrid:
		return "grid"
	default:
		return "pairs"
	}
}

// ParseBroadphase maps "pairs" or "grid" to a Broadphase. ok is false for anything else.
func ParseBroadphase(s string) (bp Broadphase, ok bool) {
	switch s {
	case "pairs", "":
		return BroadphasePairs, true
	case "grid":
		return BroadphaseGrid, true
	}
	return BroadphasePairs, false
}

// ResolveCollisions runs circle-circle resolution over every pair (i, j), i < j, in slice order.
// Returns the number of pairs that received an impulse.
func ResolveCollisions(bodies []*Body) int {
	resolved := 0
	for i := 0; i < len(bodies); i++ {
		for j := i + 1; j < len(bodies); j++ {
			if resolvePair(bodies[i], bodies[j]) {
				resolved++
			}
		}
	}
	return resolved
}

// resolvePair applies the equal-mass impulse and positional correction to one overlapping,
// approaching pair. Both bodies are treated as unit mass whatever their Mass field says.
// Coincident centers have no normal and are skipped, as are separating pairs.
func resolvePair(a, b *Body) bool {
	dx := b.Position.X - a.Position.X
	dy := b.Position.Y - a.Position.Y
	dist := math.Hypot(dx, dy)
	minDist := a.Radius + b.Radius

	if dist == 0 || dist >= minDist {
		return false
	}

	nx := dx / dist
	ny := dy / dist

	// relative velocity along the normal
	dot := (b.Velocity.X-a.Velocity.X)*nx + (b.Velocity.Y-a.Velocity.Y)*ny
	if dot > 0 {
		return false
	}

	impulse := dot
	a.Velocity.X += nx * impulse
	a.Velocity.Y += ny * impulse
	b.Velocity.X -= nx * impulse
	b.Velocity.Y -= ny * impulse

	overlap := minDist - dist
	a.Position.X -= nx * overlap / 2
	a.Position.Y -= ny * overlap / 2
	b.Position.X += nx * overlap / 2
	b.Position.Y += ny * overlap / 2
	return true
}
