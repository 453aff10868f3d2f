package game

import (
	"fmt"
	"image/color"
	"math"

	"chosenoffset.com/sightline/internal/render"
)

const (
	observerRadius = 8
	stubLength     = 10 // reach of the direction stub drawn for rays that hit nothing
)

var (
	wallColor    = color.RGBA{255, 255, 255, 255}
	rayColor     = color.RGBA{200, 200, 200, 200}
	stubColor    = color.RGBA{120, 120, 120, 160}
	fillColor    = color.RGBA{60, 60, 80, 70}
	observerRing = color.RGBA{160, 160, 160, 255}
	hudColor     = color.RGBA{220, 220, 220, 255}
	hudDimColor  = color.RGBA{140, 140, 140, 255}
)

// Draw renders the playfield to the screen.
func (g *Game) Draw(screen render.Image) {
	screen.Fill(color.Black)

	// Step 1: Shade the area the observer can see
	if g.fillVisible {
		g.drawVisibleArea(screen)
	}

	// Step 2: Walls
	for _, wall := range g.scn.Walls() {
		g.renderer.StrokeLine(screen,
			float32(wall.A.X), float32(wall.A.Y),
			float32(wall.B.X), float32(wall.B.Y),
			1, wallColor)
	}

	// Step 3: The ray fan
	g.drawRays(screen)

	// Step 4: The observer on top
	obs := g.scn.Observer()
	g.renderer.FillCircle(screen, float32(obs.X), float32(obs.Y), observerRadius, color.White)
	g.renderer.StrokeCircle(screen, float32(obs.X), float32(obs.Y), observerRadius, 1, observerRing)

	// Step 5: HUD text
	if g.showHUD {
		g.drawHUD(screen)
	}
}

// drawVisibleArea fills the polygon traced by the fan's crossings into an
// offscreen mask and composites it under everything else.
func (g *Game) drawVisibleArea(screen render.Image) {
	if g.overlay == nil {
		w, h := g.scn.Size()
		g.overlay = g.renderer.NewImage(int(w), int(h))
	}
	g.overlay.Clear()

	hits := g.scn.Hits()
	obs := g.scn.Observer()

	allHit := true
	for _, h := range hits {
		if !h.OK {
			allHit = false
			break
		}
	}

	if allHit && len(hits) >= 3 {
		// Fully enclosed: the crossings alone outline the visible area.
		xs := make([]float32, len(hits))
		ys := make([]float32, len(hits))
		for i, h := range hits {
			xs[i] = float32(h.Point.X)
			ys[i] = float32(h.Point.Y)
		}
		g.renderer.FillPolygon(g.overlay, xs, ys, fillColor)
	} else {
		// Runs of consecutive crossings become fans anchored at the
		// observer; rays that struck nothing split the fill.
		var xs, ys []float32
		flush := func() {
			if len(xs) >= 3 {
				g.renderer.FillPolygon(g.overlay, xs, ys, fillColor)
			}
			xs, ys = xs[:0], ys[:0]
		}
		for _, h := range hits {
			if !h.OK {
				flush()
				continue
			}
			if len(xs) == 0 {
				xs = append(xs, float32(obs.X))
				ys = append(ys, float32(obs.Y))
			}
			xs = append(xs, float32(h.Point.X))
			ys = append(ys, float32(h.Point.Y))
		}
		flush()
	}

	screen.DrawImage(g.overlay)
}

// drawRays draws a translucent line from the observer to each crossing. Rays
// that struck nothing get a short direction stub instead, mapped through a
// local transform anchored at the observer.
func (g *Game) drawRays(screen render.Image) {
	obs := g.scn.Observer()
	step := g.scn.Field().Step()
	tr := render.NewGeoM()

	for i, h := range g.scn.Hits() {
		if h.OK {
			g.renderer.StrokeLine(screen,
				float32(obs.X), float32(obs.Y),
				float32(h.Point.X), float32(h.Point.Y),
				1, rayColor)
			continue
		}

		tr.Reset()
		tr.Scale(stubLength, stubLength)
		tr.Rotate(float64(i) * step * math.Pi / 180)
		tr.Translate(obs.X, obs.Y)
		tipX, tipY := tr.Apply(1, 0)
		g.renderer.StrokeLine(screen,
			float32(obs.X), float32(obs.Y),
			float32(tipX), float32(tipY),
			1, stubColor)
	}
}

// drawHUD prints the sweep stats and the key help line.
func (g *Game) drawHUD(screen render.Image) {
	hits := g.scn.Hits()
	crossings := 0
	for _, h := range hits {
		if h.OK {
			crossings++
		}
	}

	mode := "drift"
	if g.steering {
		mode = "steer"
	}
	status := fmt.Sprintf("walls %d  rays %d  crossings %d  step %.2f  mode %s",
		len(g.scn.Walls()), len(hits), crossings, g.scn.Field().Step(), mode)
	g.renderer.DrawText(screen, status, 8, 16, hudColor)

	help := "space/click steer   r rescatter   v fill   h hud   esc quit"
	w, _ := g.renderer.MeasureText(help)
	sw, _ := g.scn.Size()
	g.renderer.DrawText(screen, help, int(sw)-w-8, 16, hudDimColor)
}
