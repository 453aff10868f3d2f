// Package game runs the interactive demo loop: input handling, observer
// steering, and drawing the playfield with its visibility fan.
package game

import (
	"chosenoffset.com/sightline/internal/config"
	"chosenoffset.com/sightline/internal/render"
	"chosenoffset.com/sightline/internal/scene"
	"chosenoffset.com/sightline/internal/sight"
)

// Game holds the demo state and implements render.Game.
type Game struct {
	scn      *scene.Scene
	renderer render.Renderer
	input    render.InputManager

	fillVisible bool
	showHUD     bool
	steering    bool // observer pinned to the cursor this step

	overlay render.Image // offscreen mask for the visible-area fill
}

// New wires the demo loop around an already built scene.
func New(scn *scene.Scene, renderer render.Renderer, input render.InputManager, view config.ViewConfig) *Game {
	return &Game{
		scn:         scn,
		renderer:    renderer,
		input:       input,
		fillVisible: view.FillVisible,
		showHUD:     view.ShowHUD,
	}
}

// Update handles input and advances the playfield one step.
func (g *Game) Update() error {
	if g.input.IsKeyJustPressed(render.KeyEscape) {
		return render.Termination
	}
	if g.input.IsKeyJustPressed(render.KeyR) {
		g.scn.Reset()
	}
	if g.input.IsKeyJustPressed(render.KeyH) {
		g.showHUD = !g.showHUD
	}
	if g.input.IsKeyJustPressed(render.KeyV) {
		g.fillVisible = !g.fillVisible
		if !g.fillVisible && g.overlay != nil {
			g.overlay.Dispose()
			g.overlay = nil
		}
	}

	// Holding space or the left mouse button pins the observer to the
	// cursor; otherwise it drifts on its noise path. Either way the fan is
	// re-swept every step.
	g.steering = g.input.IsKeyPressed(render.KeySpace) ||
		g.input.IsMouseButtonPressed(render.MouseButtonLeft)
	if g.steering {
		x, y := g.input.GetCursorPosition()
		g.scn.MoveObserverTo(sight.Point{X: float64(x), Y: float64(y)})
	} else {
		g.scn.Advance()
	}

	return nil
}

// Layout reports the playfield as the fixed logical resolution.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w, h := g.scn.Size()
	return int(w), int(h)
}
