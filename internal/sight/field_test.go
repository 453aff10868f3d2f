package sight

import (
	"math"
	"testing"
)

func TestNewFieldRayCount(t *testing.T) {
	cases := []struct {
		step float64
		want int
	}{
		{360, 1},
		{90, 4},
		{100, 4},
		{1, 360},
		{0.5, 720},
		{0.7, 515},
	}

	for _, c := range cases {
		f, err := NewField(c.step, Point{})
		if err != nil {
			t.Fatalf("Step %v: unexpected error: %v", c.step, err)
		}
		if len(f.Rays()) != c.want {
			t.Errorf("Step %v: expected %d rays, got %d", c.step, c.want, len(f.Rays()))
		}
		if len(f.Hits()) != len(f.Rays()) {
			t.Errorf("Step %v: expected hits aligned with rays, got %d hits for %d rays",
				c.step, len(f.Hits()), len(f.Rays()))
		}
	}
}

func TestNewFieldRejectsBadStep(t *testing.T) {
	for _, step := range []float64{0, -1, 360.1, 720, math.NaN(), math.Inf(1), math.Inf(-1)} {
		if _, err := NewField(step, Point{}); err == nil {
			t.Errorf("Step %v: expected an error, got none", step)
		}
	}
}

func TestNewFieldAnglesAscendBelowFullCircle(t *testing.T) {
	f, err := NewField(90, Point{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	want := []Vec{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}
	for i, ray := range f.Rays() {
		if math.Abs(ray.Dir.X-want[i].X) > tol || math.Abs(ray.Dir.Y-want[i].Y) > tol {
			t.Errorf("Ray %d: expected direction (%v, %v), got (%v, %v)",
				i, want[i].X, want[i].Y, ray.Dir.X, ray.Dir.Y)
		}
	}
}

func TestFieldMoveToRepositionsRays(t *testing.T) {
	f, err := NewField(120, Point{1, 2})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	dirs := make([]Vec, len(f.Rays()))
	for i, ray := range f.Rays() {
		dirs[i] = ray.Dir
	}

	f.MoveTo(Point{5, 6})
	if f.Origin() != (Point{5, 6}) {
		t.Errorf("Expected origin (5, 6), got (%v, %v)", f.Origin().X, f.Origin().Y)
	}
	for i, ray := range f.Rays() {
		if ray.Origin != (Point{5, 6}) {
			t.Errorf("Ray %d: expected origin (5, 6), got (%v, %v)", i, ray.Origin.X, ray.Origin.Y)
		}
		if ray.Dir != dirs[i] {
			t.Errorf("Ray %d: expected direction unchanged after move", i)
		}
	}
}

func TestSweepWithNoWalls(t *testing.T) {
	f, err := NewField(45, Point{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	hits := f.Sweep(nil)
	if len(hits) != 8 {
		t.Fatalf("Expected 8 hits, got %d", len(hits))
	}
	for i, h := range hits {
		if h.OK {
			t.Errorf("Hit %d: expected no crossing, got (%v, %v)", i, h.Point.X, h.Point.Y)
		}
		if h.Wall != -1 {
			t.Errorf("Hit %d: expected wall index -1, got %d", i, h.Wall)
		}
	}
}

func TestSweepKeepsNearestWall(t *testing.T) {
	far := NewSegment(Point{10, -10}, Point{10, 10})
	near := NewSegment(Point{5, -10}, Point{5, 10})

	f, err := NewField(90, Point{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	// The +x ray must find the near wall whichever order the walls come in.
	for _, walls := range [][]Segment{{far, near}, {near, far}} {
		hits := f.Sweep(walls)
		if !hits[0].OK {
			t.Fatalf("Expected the +x ray to cross, got none")
		}
		if !nearlyEqual(hits[0].Point, Point{5, 0}) {
			t.Errorf("Expected crossing at (5, 0), got (%v, %v)", hits[0].Point.X, hits[0].Point.Y)
		}
	}
}

func TestSweepTieKeepsFirstWall(t *testing.T) {
	// Both walls cross the +x ray at exactly (10, 0).
	vertical := NewSegment(Point{10, -10}, Point{10, 10})
	diagonal := NewSegment(Point{5, -5}, Point{15, 5})

	f, err := NewField(90, Point{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	for _, walls := range [][]Segment{{vertical, diagonal}, {diagonal, vertical}} {
		hits := f.Sweep(walls)
		if !hits[0].OK {
			t.Fatalf("Expected the +x ray to cross, got none")
		}
		if hits[0].Wall != 0 {
			t.Errorf("Expected the first wall to win the tie, got index %d", hits[0].Wall)
		}
	}
}

func TestSweepEnclosedBoxHasNoGaps(t *testing.T) {
	walls := []Segment{
		NewSegment(Point{0, 0}, Point{0, 720}),
		NewSegment(Point{0, 720}, Point{1024, 720}),
		NewSegment(Point{1024, 720}, Point{1024, 0}),
		NewSegment(Point{1024, 0}, Point{0, 0}),
	}

	for _, step := range []float64{90, 7.5, 1} {
		f, err := NewField(step, Point{512, 360})
		if err != nil {
			t.Fatalf("Step %v: unexpected error: %v", step, err)
		}

		hits := f.Sweep(walls)
		if len(hits) != len(f.Rays()) {
			t.Fatalf("Step %v: expected %d hits, got %d", step, len(f.Rays()), len(hits))
		}
		for i, h := range hits {
			if !h.OK {
				t.Errorf("Step %v: ray %d escaped the enclosing box", step, i)
			}
		}
	}
}

func TestSweepReplacesStaleHits(t *testing.T) {
	wall := NewSegment(Point{10, -10}, Point{10, 10})

	f, err := NewField(90, Point{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	hits := f.Sweep([]Segment{wall})
	if !hits[0].OK {
		t.Fatalf("Expected the +x ray to cross the wall")
	}

	hits = f.Sweep(nil)
	for i, h := range hits {
		if h.OK || h.Wall != -1 {
			t.Errorf("Hit %d: expected stale crossing to be cleared, got %+v", i, h)
		}
	}
}

func TestSweepAfterMove(t *testing.T) {
	wall := NewSegment(Point{10, -10}, Point{10, 10})

	f, err := NewField(90, Point{})
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	hits := f.Sweep([]Segment{wall})
	if !hits[0].OK || !nearlyEqual(hits[0].Point, Point{10, 0}) {
		t.Fatalf("Expected the +x ray to cross at (10, 0), got %+v", hits[0])
	}

	// From the far side the wall sits behind the +x ray and ahead of the
	// 180 degree one.
	f.MoveTo(Point{20, 0})
	hits = f.Sweep([]Segment{wall})
	if hits[0].OK {
		t.Errorf("Expected the +x ray to miss after moving past the wall, got %+v", hits[0])
	}
	if !hits[2].OK || !nearlyEqual(hits[2].Point, Point{10, 0}) {
		t.Errorf("Expected the -x ray to cross at (10, 0), got %+v", hits[2])
	}
}
