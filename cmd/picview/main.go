// Command picview renders a scene descriptor and displays it, either in an
// ebiten window (default) or directly in the terminal with -term. Tab
// cycles between the composited frame, the priority heat-map and the
// control-map overlay; Escape quits.
package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/ferndale-games/picaro/engine"
	"github.com/ferndale-games/picaro/pic"
	"github.com/ferndale-games/picaro/renderer"
	ebitenrender "github.com/ferndale-games/picaro/renderer/ebiten"
	termrender "github.com/ferndale-games/picaro/renderer/term"
	"github.com/ferndale-games/picaro/scene"
	"github.com/ferndale-games/picaro/spritesheet"
)

// display modes cycled by Tab.
const (
	modeVisual = iota
	modePriority
	modeControl
	modeCount
)

// viewer implements renderer.Game over a rendered scene.
type viewer struct {
	eng   *engine.Engine
	input renderer.InputManager
	mode  int
	frame []uint8
}

func (v *viewer) Update() error {
	if v.input.IsKeyJustPressed(renderer.KeyEscape) {
		return renderer.Termination
	}
	if v.input.IsKeyJustPressed(renderer.KeyTab) {
		v.mode = (v.mode + 1) % modeCount
		v.frame = nil
	}
	if v.frame == nil {
		switch v.mode {
		case modePriority:
			v.frame = v.eng.PriorityHeatmap()
		case modeControl:
			v.frame = v.eng.ControlOverlay()
		default:
			v.frame = v.eng.Visual()
		}
	}
	return nil
}

func (v *viewer) Draw(screen renderer.Image) {
	if v.frame != nil {
		screen.WritePixels(v.frame)
	}
}

func (v *viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return pic.Width, pic.Height
}

// loadSprites resolves positional "cell@x,y" arguments against a sprite
// sheet. Placements without a sheet are an error; a sheet with no
// placements is allowed and yields no sprites.
func loadSprites(sheetPath string, placements []string) ([]pic.Sprite, error) {
	if len(placements) == 0 {
		return nil, nil
	}
	if sheetPath == "" {
		return nil, fmt.Errorf("sprite placements given without -sheet")
	}

	sheet, err := spritesheet.Load(sheetPath)
	if err != nil {
		return nil, err
	}

	sprites := make([]pic.Sprite, 0, len(placements))
	for _, placement := range placements {
		var name string
		var x, y float64
		at := strings.IndexByte(placement, '@')
		if at < 0 {
			return nil, fmt.Errorf("invalid placement %q, want cell@x,y", placement)
		}
		name = placement[:at]
		if _, err := fmt.Sscanf(placement[at+1:], "%f,%f", &x, &y); err != nil {
			return nil, fmt.Errorf("invalid placement %q, want cell@x,y", placement)
		}

		sprite, err := sheet.Sprite(name, x, y)
		if err != nil {
			return nil, err
		}
		sprites = append(sprites, sprite)
	}
	return sprites, nil
}

func main() {
	useTerm := flag.Bool("term", false, "display in the terminal instead of a window")
	verbose := flag.Bool("v", false, "log skipped primitives and render events to stderr")
	sheetPath := flag.String("sheet", "", "sprite sheet config to composite sprites from")
	flag.Parse()

	if flag.NArg() < 1 {
		log.Fatalf("usage: picview [-term] [-v] [-sheet sheet.json] scene.json [cell@x,y ...]")
	}
	scenePath := flag.Arg(0)

	if *verbose {
		pic.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	sc, err := scene.Load(scenePath)
	if err != nil {
		log.Fatalf("Failed to load scene: %v", err)
	}

	sprites, err := loadSprites(*sheetPath, flag.Args()[1:])
	if err != nil {
		log.Fatalf("Failed to load sprites: %v", err)
	}

	eng := engine.New()
	eng.RenderScene(scenePath, sc, sprites)

	v := &viewer{eng: eng}

	var presenter renderer.Engine
	if *useTerm {
		termEngine := termrender.NewEngine()
		v.input = termEngine.Input()
		presenter = termEngine
	} else {
		v.input = ebitenrender.NewInputManager()
		presenter = ebitenrender.NewEngine()
	}

	presenter.SetWindowSize(pic.Width*3, pic.Height*3)
	presenter.SetWindowTitle("picview - " + scenePath)
	if err := presenter.RunGame(v); err != nil {
		log.Fatal(err)
	}
}
