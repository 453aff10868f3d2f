// Package scene drives the demo playfield: wall generation, the drifting
// observer, and the per-step visibility sweep.
package scene

import (
	"math/rand"

	"chosenoffset.com/sightline/internal/sight"
)

// Scene owns the walls and the observer's ray fan, advancing both each step.
type Scene struct {
	width, height float64
	wallCount     int
	rng           *rand.Rand
	drift         *Drift
	field         *sight.Field
	authored      []sight.Segment // fixed walls from a layout, nil when random
	walls         []sight.Segment
	hits          []sight.Hit
}

// New builds a w by h playfield with count random walls plus the enclosing
// boundary, observed through a fan stepped at stepDegrees.
func New(w, h float64, count int, stepDegrees float64, rng *rand.Rand, drift *Drift) (*Scene, error) {
	field, err := sight.NewField(stepDegrees, sight.Point{X: w / 2, Y: h / 2})
	if err != nil {
		return nil, err
	}

	s := &Scene{
		width:     w,
		height:    h,
		wallCount: count,
		rng:       rng,
		drift:     drift,
		field:     field,
	}
	s.Reset()
	return s, nil
}

// NewFromLayout builds the playfield from an authored layout instead of
// random walls. The boundary is still appended so no ray escapes.
func NewFromLayout(l *Layout, stepDegrees float64, drift *Drift) (*Scene, error) {
	field, err := sight.NewField(stepDegrees, sight.Point{X: l.Width / 2, Y: l.Height / 2})
	if err != nil {
		return nil, err
	}

	s := &Scene{
		width:    l.Width,
		height:   l.Height,
		drift:    drift,
		field:    field,
		authored: l.Segments(),
	}
	s.Reset()
	return s, nil
}

// Reset rebuilds the wall set and re-sweeps the fan. Random playfields get a
// fresh arrangement; authored layouts keep their walls. The boundary is
// always present.
func (s *Scene) Reset() {
	var walls []sight.Segment
	if s.authored != nil {
		walls = append(walls, s.authored...)
	} else {
		walls = append(walls, RandomWalls(s.rng, s.wallCount, s.width, s.height)...)
	}
	s.walls = append(walls, BoundaryWalls(s.width, s.height)...)
	s.hits = s.field.Sweep(s.walls)
}

// Advance runs one simulation step: the observer drifts to its next position
// and the fan is swept against the current walls.
func (s *Scene) Advance() {
	s.moveTo(s.drift.Step(s.width, s.height))
}

// MoveObserverTo places the observer by hand, clamped to the playfield, and
// re-sweeps the fan.
func (s *Scene) MoveObserverTo(p sight.Point) {
	if p.X < 0 {
		p.X = 0
	}
	if p.X > s.width {
		p.X = s.width
	}
	if p.Y < 0 {
		p.Y = 0
	}
	if p.Y > s.height {
		p.Y = s.height
	}
	s.moveTo(p)
}

func (s *Scene) moveTo(p sight.Point) {
	s.field.MoveTo(p)
	s.hits = s.field.Sweep(s.walls)
}

// Walls returns the current wall set, boundary included.
func (s *Scene) Walls() []sight.Segment { return s.walls }

// Field exposes the observer's ray fan.
func (s *Scene) Field() *sight.Field { return s.field }

// Hits returns the latest sweep results, aligned with the fan's rays.
func (s *Scene) Hits() []sight.Hit { return s.hits }

// Observer returns the current observer position.
func (s *Scene) Observer() sight.Point { return s.field.Origin() }

// Size reports the playfield dimensions.
func (s *Scene) Size() (w, h float64) { return s.width, s.height }
