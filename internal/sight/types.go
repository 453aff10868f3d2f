package sight

import "math"

// Point represents a 2D point in space
type Point struct {
	X, Y float64
}

// Vec represents a 2D direction
type Vec struct {
	X, Y float64
}

// Len returns the length of v.
func (v Vec) Len() float64 { return math.Sqrt(v.X*v.X + v.Y*v.Y) }

// Norm returns v scaled to unit length. A zero vector is returned unchanged.
func (v Vec) Norm() Vec {
	l := v.Len()
	if l == 0 {
		return v
	}
	return Vec{X: v.X / l, Y: v.Y / l}
}

// Segment represents a wall that blocks sight between its two endpoints.
type Segment struct {
	A, B Point
}

// NewSegment creates a wall from a to b. The endpoints are expected to
// differ; a zero-length wall is parallel to everything and never reports a
// crossing.
func NewSegment(a, b Point) Segment {
	return Segment{A: a, B: b}
}

// Hit records the nearest wall crossing found along one ray.
type Hit struct {
	Point Point // crossing location, meaningful only when OK
	Wall  int   // index of the winning wall in the swept slice, -1 when none
	OK    bool
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b Point) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	return math.Sqrt(dx*dx + dy*dy)
}
