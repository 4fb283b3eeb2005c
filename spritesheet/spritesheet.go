// Package spritesheet loads sprite images from a sheet: a PNG holding a
// grid of cells plus a JSON configuration naming each cell. Loaded cells
// come out as pic.Sprite pixel data, ready for the sprite compositor; the
// package has no presentation dependency.
package spritesheet

import (
	"encoding/json"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"

	"github.com/ferndale-games/picaro/pic"
)

// CellDefinition names one cell within a sheet.
type CellDefinition struct {
	Name          string `json:"name"`                     // semantic name (e.g. "hero_walk_0")
	SheetX        int    `json:"sheet_x"`                  // X position in the sheet (in cells)
	SheetY        int    `json:"sheet_y"`                  // Y position in the sheet (in cells)
	FixedPriority *int   `json:"fixed_priority,omitempty"` // omitted = band gradient at runtime
}

// SheetConfig is the JSON configuration for a sprite sheet.
type SheetConfig struct {
	Name       string           `json:"name"`        // sheet name
	ImagePath  string           `json:"image_path"`  // path to the sheet PNG
	CellWidth  int              `json:"cell_width"`  // width of each cell in pixels
	CellHeight int              `json:"cell_height"` // height of each cell in pixels
	Cells      []CellDefinition `json:"cells"`       // cell definitions
}

// Sheet is a loaded sprite sheet with its decoded image.
type Sheet struct {
	Config      *SheetConfig
	img         *image.RGBA
	cellsByName map[string]*CellDefinition
}

// Load reads a sheet configuration and decodes its image.
func Load(configPath string) (*Sheet, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet config %s: %w", configPath, err)
	}

	var config SheetConfig
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse sheet config %s: %w", configPath, err)
	}
	if config.CellWidth <= 0 || config.CellHeight <= 0 {
		return nil, fmt.Errorf("invalid cell dimensions: %dx%d", config.CellWidth, config.CellHeight)
	}
	if config.ImagePath == "" {
		return nil, fmt.Errorf("image_path is required in sheet config")
	}

	f, err := os.Open(config.ImagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open sheet image %s: %w", config.ImagePath, err)
	}
	defer f.Close()

	decoded, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode sheet image %s: %w", config.ImagePath, err)
	}
	rgba := image.NewRGBA(decoded.Bounds())
	draw.Draw(rgba, rgba.Bounds(), decoded, decoded.Bounds().Min, draw.Src)

	cellsByName := make(map[string]*CellDefinition)
	for i := range config.Cells {
		cell := &config.Cells[i]
		if cell.Name != "" {
			cellsByName[cell.Name] = cell
		}
	}

	return &Sheet{
		Config:      &config,
		img:         rgba,
		cellsByName: cellsByName,
	}, nil
}

// Cell returns a cell definition by name.
func (s *Sheet) Cell(name string) (*CellDefinition, bool) {
	cell, ok := s.cellsByName[name]
	return cell, ok
}

// Sprite extracts a named cell as a sprite positioned at (x, y). The pixel
// data is copied out of the sheet, so sprites stay valid independently.
func (s *Sheet) Sprite(name string, x, y float64) (pic.Sprite, error) {
	cell, ok := s.cellsByName[name]
	if !ok {
		return pic.Sprite{}, fmt.Errorf("cell not found: %s", name)
	}

	w := s.Config.CellWidth
	h := s.Config.CellHeight
	x0 := cell.SheetX * w
	y0 := cell.SheetY * h
	if x0+w > s.img.Rect.Dx() || y0+h > s.img.Rect.Dy() {
		return pic.Sprite{}, fmt.Errorf("cell %s at (%d, %d) is outside the sheet image",
			name, cell.SheetX, cell.SheetY)
	}

	pixels := make([]uint8, w*h*4)
	for row := 0; row < h; row++ {
		src := s.img.PixOffset(x0, y0+row)
		copy(pixels[row*w*4:(row+1)*w*4], s.img.Pix[src:src+w*4])
	}

	fixed := -1
	if cell.FixedPriority != nil {
		fixed = *cell.FixedPriority
	}
	return pic.Sprite{X: x, Y: y, W: w, H: h, Pixels: pixels, FixedPriority: fixed}, nil
}
