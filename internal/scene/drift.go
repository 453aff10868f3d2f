package scene

import (
	opensimplex "github.com/ojrac/opensimplex-go"

	"chosenoffset.com/sightline/internal/sight"
)

// axisOffset separates the two noise samples so the X and Y coordinates
// wander independently.
const axisOffset = 100

// Drift steers the observer along a smooth pseudo-random path. Normalized
// noise keeps every sample inside the unit square before scaling to the
// playfield, so the path can never leave it.
type Drift struct {
	noise opensimplex.Noise
	speed float64
	t     float64
}

// NewDrift creates a path generator that advances by speed per step.
func NewDrift(seed int64, speed float64) *Drift {
	return &Drift{
		noise: opensimplex.NewNormalized(seed),
		speed: speed,
	}
}

// Step advances the path and returns the next observer position inside the
// w by h playfield.
func (d *Drift) Step(w, h float64) sight.Point {
	d.t += d.speed
	return sight.Point{
		X: d.noise.Eval2(d.t, 0) * w,
		Y: d.noise.Eval2(d.t+axisOffset, 0) * h,
	}
}
