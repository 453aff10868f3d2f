package sight

import "math"

// Ray is a half-line anchored at an observer position.
type Ray struct {
	Origin Point
	Dir    Vec
}

// NewRay creates a ray from origin pointing along angle, in radians.
func NewRay(origin Point, angle float64) Ray {
	return Ray{
		Origin: origin,
		Dir:    Vec{X: math.Cos(angle), Y: math.Sin(angle)},
	}
}

// Cast reports where r first crosses wall, if it does.
//
// The test solves the wall/ray line intersection directly. The determinant d
// is compared against zero with exact equality: truly parallel or coincident
// lines report no crossing, even when the coincident lines overlap, while a
// near-parallel pair with a tiny nonzero determinant still resolves to a
// far-away crossing.
//
// The wall parameter t is accepted on (0, 1]: a crossing exactly at wall.B
// counts, one exactly at wall.A does not. The ray parameter u is accepted on
// (0, +Inf), so a ray whose origin sits on the wall does not hit it. The
// magnitude of Dir has no effect on the outcome.
func (r Ray) Cast(wall Segment) (Point, bool) {
	x1, y1 := wall.A.X, wall.A.Y
	x2, y2 := wall.B.X, wall.B.Y
	x3, y3 := r.Origin.X, r.Origin.Y
	x4, y4 := r.Origin.X+r.Dir.X, r.Origin.Y+r.Dir.Y

	d := (x1-x2)*(y3-y4) - (y1-y2)*(x3-x4)
	if d == 0 {
		return Point{}, false
	}

	t := ((x1-x3)*(y3-y4) - (y1-y3)*(x3-x4)) / d
	u := -((x1-x2)*(y1-y3) - (y1-y2)*(x1-x3)) / d

	if t > 0 && t <= 1 && u > 0 {
		return Point{
			X: x1 + t*(x2-x1),
			Y: y1 + t*(y2-y1),
		}, true
	}
	return Point{}, false
}

// LookAt aims the ray at target. The caller must not pass the ray's own
// origin; a zero-length direction has no defined aim.
func (r *Ray) LookAt(target Point) {
	r.Dir = Vec{X: target.X - r.Origin.X, Y: target.Y - r.Origin.Y}.Norm()
}

// MoveTo relocates the ray's origin, keeping its direction.
func (r *Ray) MoveTo(p Point) {
	r.Origin = p
}
