// Package term implements the presentation interfaces on a terminal using
// tcell. Each character cell shows two vertically stacked pixels via the
// upper-half-block rune, so the 320x200 logical frame needs a 320x100
// terminal. Smaller terminals show the top-left portion of the frame.
package term

import (
	"errors"
	"image"
	"sync"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/ferndale-games/picaro/renderer"
)

const framesPerSecond = 30

// Engine runs the presentation loop on a tcell screen.
type Engine struct {
	title string
	input *InputManager
}

// NewEngine creates the terminal presentation engine.
func NewEngine() *Engine {
	return &Engine{input: &InputManager{pressed: make(map[renderer.Key]bool)}}
}

// Input returns the input manager fed by this engine's event loop.
func (e *Engine) Input() *InputManager {
	return e.input
}

// SetWindowSize is a no-op: the terminal dictates its own size.
func (e *Engine) SetWindowSize(width, height int) {}

// SetWindowTitle records the title; tcell has no portable title support.
func (e *Engine) SetWindowTitle(title string) {
	e.title = title
}

// RunGame runs the loop: poll input, tick the game, draw the frame as
// half-block cells. Blocks until the game returns an error or the user
// quits with Escape or Ctrl-C.
func (e *Engine) RunGame(game renderer.Game) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.HideCursor()

	events := make(chan tcell.Event, 16)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			events <- ev
		}
	}()

	ticker := time.NewTicker(time.Second / framesPerSecond)
	defer ticker.Stop()

	var frame *Image
	for {
		select {
		case ev := <-events:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC || ev.Rune() == 'q':
					e.input.press(renderer.KeyEscape)
				case ev.Key() == tcell.KeyTab:
					e.input.press(renderer.KeyTab)
				}
			case *tcell.EventResize:
				screen.Sync()
			}
		case <-ticker.C:
			cols, rows := screen.Size()
			w, h := game.Layout(cols, rows*2)
			if frame == nil || frame.w != w || frame.h != h {
				frame = NewImage(w, h)
			}
			if err := game.Update(); err != nil {
				if errors.Is(err, renderer.Termination) {
					return nil
				}
				return err
			}
			e.input.tick()
			game.Draw(frame)
			blit(screen, frame, cols, rows)
			if e.input.quitRequested() {
				return nil
			}
		}
	}
}

// blit writes a frame to the terminal, two pixels per cell.
func blit(screen tcell.Screen, frame *Image, cols, rows int) {
	for cy := 0; cy < rows; cy++ {
		yTop := cy * 2
		yBot := yTop + 1
		for cx := 0; cx < cols; cx++ {
			if cx >= frame.w || yTop >= frame.h {
				continue
			}
			top := frame.at(cx, yTop)
			bot := top
			if yBot < frame.h {
				bot = frame.at(cx, yBot)
			}
			style := tcell.StyleDefault.Foreground(top).Background(bot)
			screen.SetContent(cx, cy, '▀', nil, style)
		}
	}
	screen.Show()
}

// Image is an in-memory RGBA surface the game draws into before the engine
// blits it to the terminal.
type Image struct {
	w, h int
	rgba []uint8
}

// NewImage creates a terminal frame surface with the given dimensions.
func NewImage(width, height int) *Image {
	return &Image{w: width, h: height, rgba: make([]uint8, width*height*4)}
}

// Bounds returns the surface bounds.
func (i *Image) Bounds() image.Rectangle {
	return image.Rect(0, 0, i.w, i.h)
}

// WritePixels replaces the surface contents with RGBA bytes.
func (i *Image) WritePixels(rgba []uint8) {
	copy(i.rgba, rgba)
}

// Dispose releases the pixel storage.
func (i *Image) Dispose() {
	i.rgba = nil
}

// at returns the pixel at (x, y) as a tcell color.
func (i *Image) at(x, y int) tcell.Color {
	o := (y*i.w + x) * 4
	return tcell.NewRGBColor(int32(i.rgba[o]), int32(i.rgba[o+1]), int32(i.rgba[o+2]))
}

// InputManager reports keys pressed since the last tick. The engine's
// event loop feeds it; Escape additionally flags a quit request.
type InputManager struct {
	mu      sync.Mutex
	pressed map[renderer.Key]bool
	quit    bool
}

// press records a key press from the event loop.
func (m *InputManager) press(key renderer.Key) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pressed[key] = true
	if key == renderer.KeyEscape {
		m.quit = true
	}
}

// tick clears the just-pressed set, after the game has observed it.
func (m *InputManager) tick() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k := range m.pressed {
		delete(m.pressed, k)
	}
}

// quitRequested reports whether the user asked to exit.
func (m *InputManager) quitRequested() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.quit
}

// IsKeyJustPressed reports whether the key went down since the last tick.
func (m *InputManager) IsKeyJustPressed(key renderer.Key) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.pressed[key]
}
