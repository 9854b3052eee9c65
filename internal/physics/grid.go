package physics

import (
	"cmp"
	"math"
	"slices"
)

type cellKey struct {
	x, y int
}

type pair struct {
	i, j int
}

// ResolveCollisionsGrid finds candidate pairs with a uniform grid whose cell is the largest
// diameter, then resolves them in the same (i, j) order ResolveCollisions would use.
// Candidates come from positions at the start of the pass, so a pair pushed into contact by an
// earlier correction in the same pass waits for the next step.
func ResolveCollisionsGrid(bodies []*Body) int {
	if len(bodies) < 2 {
		return 0
	}

	maxRadius := 0.0
	for _, b := range bodies {
		maxRadius = max(maxRadius, b.Radius)
	}
	cell := 2 * maxRadius
	if cell <= 0 {
		return ResolveCollisions(bodies)
	}

	cells := make(map[cellKey][]int, len(bodies))
	keys := make([]cellKey, len(bodies))
	for i, b := range bodies {
		k := cellKey{
			x: int(math.Floor(b.Position.X / cell)),
			y: int(math.Floor(b.Position.Y / cell)),
		}
		keys[i] = k
		cells[k] = append(cells[k], i)
	}

	var pairs []pair
	for i, k := range keys {
		for dy := -1; dy <= 1; dy++ {
			for dx := -1; dx <= 1; dx++ {
				for _, j := range cells[cellKey{x: k.x + dx, y: k.y + dy}] {
					if j > i {
						pairs = append(pairs, pair{i: i, j: j})
					}
				}
			}
		}
	}

	slices.SortFunc(pairs, func(a, b pair) int {
		if c := cmp.Compare(a.i, b.i); c != 0 {
			return c
		}
		return cmp.Compare(a.j, b.j)
	})

	resolved := 0
	for _, p := range pairs {
		if resolvePair(bodies[p.i], bodies[p.j]) {
			resolved++
		}
	}
	return resolved
}
