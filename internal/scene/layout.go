package scene

import (
	"encoding/json"
	"fmt"
	"os"

	"chosenoffset.com/sightline/internal/sight"
)

// Layout is an authored wall arrangement loaded from a JSON file.
type Layout struct {
	Name   string    `json:"name"`
	Width  float64   `json:"width"`
	Height float64   `json:"height"`
	Walls  []WallDef `json:"walls"`
}

// WallDef is one wall entry in a layout file.
type WallDef struct {
	X1 float64 `json:"x1"`
	Y1 float64 `json:"y1"`
	X2 float64 `json:"x2"`
	Y2 float64 `json:"y2"`
}

// LoadLayout reads a wall layout from a JSON file and validates it.
func LoadLayout(filename string) (*Layout, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout file %s: %w", filename, err)
	}

	var layout Layout
	if err := json.Unmarshal(data, &layout); err != nil {
		return nil, fmt.Errorf("failed to parse layout JSON: %w", err)
	}

	if err := validateLayout(&layout); err != nil {
		return nil, fmt.Errorf("invalid layout %s: %w", filename, err)
	}

	return &layout, nil
}

// validateLayout checks that a layout describes a usable playfield.
func validateLayout(l *Layout) error {
	if l.Width <= 0 || l.Height <= 0 {
		return fmt.Errorf("playfield %gx%g is not positive", l.Width, l.Height)
	}
	for i, w := range l.Walls {
		if w.X1 == w.X2 && w.Y1 == w.Y2 {
			return fmt.Errorf("wall %d has zero length at (%g, %g)", i, w.X1, w.Y1)
		}
	}
	return nil
}

// Segments converts the layout's wall entries to wall segments.
func (l *Layout) Segments() []sight.Segment {
	segs := make([]sight.Segment, len(l.Walls))
	for i, w := range l.Walls {
		segs[i] = sight.NewSegment(
			sight.Point{X: w.X1, Y: w.Y1},
			sight.Point{X: w.X2, Y: w.Y2},
		)
	}
	return segs
}
