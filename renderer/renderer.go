// Package renderer defines the backend-neutral presentation interfaces.
// The rasterization core works on its own flat buffers and never touches a
// backend directly; a host application picks a concrete backend (ebiten
// window, terminal) at construction time and feeds it finished frames.
package renderer

import (
	"errors"
	"image"
)

// Termination is returned from Game.Update to end the presentation loop
// cleanly. Backends translate it into their own shutdown path.
var Termination = errors.New("termination requested")

// Image represents a presentable pixel surface owned by a backend.
type Image interface {
	// Bounds returns the surface bounds.
	Bounds() image.Rectangle

	// WritePixels replaces the surface contents with RGBA bytes, 4 per
	// pixel, row-major, exactly covering the bounds.
	WritePixels(rgba []uint8)

	// Dispose releases backend resources held by the surface.
	Dispose()
}

// Game is the host loop callback the backend drives. Update runs once per
// tick, Draw once per frame, and Layout maps the outside (window) size to
// the logical screen size used for rendering.
type Game interface {
	Update() error
	Draw(screen Image)
	Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int)
}

// Engine manages the presentation loop and window for one backend.
type Engine interface {
	// SetWindowSize sets the outer window size in display pixels.
	SetWindowSize(width, height int)

	// SetWindowTitle sets the window or terminal title.
	SetWindowTitle(title string)

	// RunGame runs the loop with the provided game. Blocks until the game
	// ends or the backend shuts down.
	RunGame(game Game) error
}

// Key identifies the few keys the viewer cares about.
type Key int

// Key constants.
const (
	KeyTab Key = iota // cycle debug overlays
	KeyEscape
)

// InputManager reports input state from the active backend.
type InputManager interface {
	// IsKeyJustPressed reports whether the key went down this tick.
	IsKeyJustPressed(key Key) bool
}
