// Package sight computes what a point observer can see among 2D wall
// segments. A Field casts a fixed full-circle fan of rays from the observer
// and records the nearest wall crossing along each ray, in fan order.
package sight

import (
	"fmt"
	"math"
)

// Field is a full-circle ray fan around one observer.
//
// The fan is fixed at construction: rays sit at multiples of the angular
// step, ascending from zero. Moving the observer repositions the rays but
// never re-aims them. A Field is not safe for concurrent use; the step loop
// that created it owns it.
type Field struct {
	origin Point
	step   float64 // degrees between neighboring rays
	rays   []Ray
	hits   []Hit
}

// NewField creates the fan for an observer at origin. step is the angular
// spacing in degrees and must be in (0, 360]; the fan holds ceil(360/step)
// rays.
func NewField(step float64, origin Point) (*Field, error) {
	if math.IsNaN(step) || step <= 0 || step > 360 {
		return nil, fmt.Errorf("angular step %v degrees outside (0, 360]", step)
	}

	n := int(math.Ceil(360 / step))
	f := &Field{
		origin: origin,
		step:   step,
		rays:   make([]Ray, n),
		hits:   make([]Hit, n),
	}
	for i := range f.rays {
		f.rays[i] = NewRay(origin, float64(i)*step*math.Pi/180)
	}
	for i := range f.hits {
		f.hits[i] = Hit{Wall: -1}
	}
	return f, nil
}

// MoveTo places the observer at p and brings every ray along with it.
func (f *Field) MoveTo(p Point) {
	f.origin = p
	for i := range f.rays {
		f.rays[i].MoveTo(p)
	}
}

// Sweep recasts every ray against walls and stores the nearest crossing per
// ray. Previous hits are fully replaced, including on rays that now cross
// nothing. When two walls cross a ray at exactly the same distance, the one
// earlier in the slice wins. The returned slice is the field's own storage
// and stays valid until the next Sweep.
func (f *Field) Sweep(walls []Segment) []Hit {
	for i := range f.rays {
		best := math.Inf(1)
		hit := Hit{Wall: -1}

		for w, wall := range walls {
			pt, ok := f.rays[i].Cast(wall)
			if !ok {
				continue
			}
			if dist := Distance(f.origin, pt); dist < best {
				best = dist
				hit = Hit{Point: pt, Wall: w, OK: true}
			}
		}
		f.hits[i] = hit
	}
	return f.hits
}

// Origin returns the current observer position.
func (f *Field) Origin() Point { return f.origin }

// Step returns the angular spacing between neighboring rays, in degrees.
func (f *Field) Step() float64 { return f.step }

// Rays returns the fan in ascending-angle order.
func (f *Field) Rays() []Ray { return f.rays }

// Hits returns the result of the latest Sweep, aligned index for index with
// Rays.
func (f *Field) Hits() []Hit { return f.hits }
