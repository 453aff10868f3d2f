package render

import (
	"errors"
	"image/color"
)

// Renderer draws the demo's primitives without exposing the underlying
// graphics engine, so the drawing backend can be swapped without touching
// the loop that decides what to draw.
type Renderer interface {
	// Offscreen surfaces
	NewImage(width, height int) Image

	// Shape drawing: walls and rays are stroked lines, the observer is a
	// circle, the visible area is a filled polygon
	StrokeLine(dst Image, x1, y1, x2, y2, strokeWidth float32, clr color.Color)
	FillCircle(dst Image, x, y, radius float32, clr color.Color)
	StrokeCircle(dst Image, x, y, radius float32, strokeWidth float32, clr color.Color)
	FillPolygon(dst Image, xs, ys []float32, clr color.RGBA)

	// HUD text
	DrawText(dst Image, text string, x, y int, clr color.Color)
	MeasureText(text string) (width, height int)
}

// Image is a drawable surface: the screen handed to Draw, or an offscreen
// mask the visible-area fill is composited through.
type Image interface {
	// Fill operations
	Fill(clr color.Color)
	Clear()

	// DrawImage draws the source image onto this image at the origin.
	DrawImage(src Image)

	// Dispose releases the surface once it is no longer drawn.
	Dispose()
}

// GeoM is a local 2D affine transform. Draw code builds one where it needs
// it and passes points through Apply; no transform state is shared.
type GeoM interface {
	// Translate shifts the space by (tx, ty).
	Translate(tx, ty float64)

	// Scale scales the space by (sx, sy).
	Scale(sx, sy float64)

	// Rotate rotates the space by the given angle in radians.
	Rotate(angle float64)

	// Reset resets the matrix to identity.
	Reset()

	// Apply maps a point through the matrix.
	Apply(x, y float64) (float64, float64)
}

// NewGeoM creates a new geometric transformation matrix.
// This is implemented by the specific renderer backend.
var NewGeoM func() GeoM

// Termination stops Engine.RunGame without reporting an error. Game.Update
// returns it to quit cleanly.
var Termination = errors.New("terminated")

// InputManager handles input from the user (keyboard, mouse, etc).
type InputManager interface {
	IsKeyPressed(key Key) bool
	IsKeyJustPressed(key Key) bool
	GetCursorPosition() (x, y int)
	IsMouseButtonPressed(button MouseButton) bool
}

// Key represents a keyboard key.
type Key int

// Key constants for the demo's controls
const (
	KeyR Key = iota // rescatter walls
	KeyV            // toggle visible-area fill
	KeyH            // toggle HUD
	KeySpace
	KeyEscape
)

// MouseButton represents a mouse button.
type MouseButton int

// Mouse button constants
const (
	MouseButtonLeft MouseButton = iota
	MouseButtonRight
	MouseButtonMiddle
)

// Game is the loop contract the engine calls into: one Update per tick to
// advance the playfield, one Draw per frame.
type Game interface {
	// Update advances the simulation one step. It is called every tick
	// (typically 60 times per second).
	Update() error

	// Draw draws the playfield. It is called every frame.
	Draw(screen Image)

	// Layout accepts the outside size (e.g., window size) and returns the logical screen size.
	// The logical screen size is used for rendering and input coordinates.
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine represents the game engine that manages the game loop and window.
type Engine interface {
	// SetWindowSize sets the window size in pixels.
	SetWindowSize(width, height int)

	// SetWindowTitle sets the window title.
	SetWindowTitle(title string)

	// SetWindowResizable enables or disables window resizing.
	SetWindowResizable(resizable bool)

	// RunGame runs the game loop with the provided game.
	// This is a blocking call that runs until the game ends.
	RunGame(game Game) error
}
