package scene

import (
	"math/rand"

	"chosenoffset.com/sightline/internal/sight"
)

// RandomWalls scatters count walls with integer endpoints drawn uniformly
// inside the w by h playfield. Candidates with matching endpoints are
// re-rolled so every wall can actually block a ray.
func RandomWalls(rng *rand.Rand, count int, w, h float64) []sight.Segment {
	walls := make([]sight.Segment, 0, count)
	for len(walls) < count {
		a := sight.Point{X: float64(rng.Intn(int(w) + 1)), Y: float64(rng.Intn(int(h) + 1))}
		b := sight.Point{X: float64(rng.Intn(int(w) + 1)), Y: float64(rng.Intn(int(h) + 1))}
		if a == b {
			continue
		}
		walls = append(walls, sight.NewSegment(a, b))
	}
	return walls
}

// BoundaryWalls encloses the w by h playfield so no ray escapes it.
func BoundaryWalls(w, h float64) []sight.Segment {
	return []sight.Segment{
		sight.NewSegment(sight.Point{X: 0, Y: 0}, sight.Point{X: 0, Y: h}),
		sight.NewSegment(sight.Point{X: 0, Y: h}, sight.Point{X: w, Y: h}),
		sight.NewSegment(sight.Point{X: w, Y: h}, sight.Point{X: w, Y: 0}),
		sight.NewSegment(sight.Point{X: w, Y: 0}, sight.Point{X: 0, Y: 0}),
	}
}
