// Package ebiten implements the presentation interfaces on top of the
// Ebiten game engine: a resizable window with integer-friendly upscaling of
// the 320x200 logical frame.
package ebiten

import (
	"errors"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/ferndale-games/picaro/renderer"
)

// Engine runs the presentation loop through ebiten.RunGame.
type Engine struct{}

// NewEngine creates the ebiten-backed presentation engine.
func NewEngine() *Engine {
	return &Engine{}
}

// SetWindowSize sets the window size in pixels.
func (e *Engine) SetWindowSize(width, height int) {
	ebiten.SetWindowSize(width, height)
}

// SetWindowTitle sets the window title.
func (e *Engine) SetWindowTitle(title string) {
	ebiten.SetWindowTitle(title)
}

// RunGame runs the game loop. Blocks until the game ends.
func (e *Engine) RunGame(game renderer.Game) error {
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(&gameAdapter{game: game})
}

// gameAdapter bridges renderer.Game to ebiten.Game.
type gameAdapter struct {
	game renderer.Game
}

func (a *gameAdapter) Update() error {
	if err := a.game.Update(); err != nil {
		if errors.Is(err, renderer.Termination) {
			return ebiten.Termination
		}
		return err
	}
	return nil
}

func (a *gameAdapter) Draw(screen *ebiten.Image) {
	a.game.Draw(&Image{img: screen})
}

func (a *gameAdapter) Layout(outsideWidth, outsideHeight int) (int, int) {
	return a.game.Layout(outsideWidth, outsideHeight)
}

// Image wraps an ebiten.Image to implement renderer.Image. Ebiten scales
// the logical screen to the window automatically, so WritePixels at the
// logical resolution is all a frame needs.
type Image struct {
	img *ebiten.Image
}

// NewImage creates an offscreen surface with the given dimensions.
func NewImage(width, height int) *Image {
	return &Image{img: ebiten.NewImage(width, height)}
}

// Bounds returns the bounds of the surface.
func (i *Image) Bounds() image.Rectangle {
	return i.img.Bounds()
}

// WritePixels replaces the surface contents with RGBA bytes.
func (i *Image) WritePixels(rgba []uint8) {
	i.img.WritePixels(rgba)
}

// Dispose releases the underlying ebiten image.
func (i *Image) Dispose() {
	i.img.Deallocate()
}

// InputManager reports input through ebiten's input utilities.
type InputManager struct{}

// NewInputManager creates the ebiten-backed input manager.
func NewInputManager() *InputManager {
	return &InputManager{}
}

// keyMap translates backend-neutral keys to ebiten keys.
var keyMap = map[renderer.Key]ebiten.Key{
	renderer.KeyTab:    ebiten.KeyTab,
	renderer.KeyEscape: ebiten.KeyEscape,
}

// IsKeyJustPressed reports whether the key went down this tick.
func (m *InputManager) IsKeyJustPressed(key renderer.Key) bool {
	k, ok := keyMap[key]
	if !ok {
		return false
	}
	return inpututil.IsKeyJustPressed(k)
}
