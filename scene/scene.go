// Package scene defines the JSON scene descriptor consumed by the rendering
// engine and its translation into resolved primitives and control zones.
// Descriptors arrive from external collaborators (world generation, the
// editor) and are validated defensively: malformed entries are skipped with
// a warning so one bad primitive never takes down a whole location render.
package scene

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ferndale-games/picaro/palette"
	"github.com/ferndale-games/picaro/pic"
)

// Scene is one location's complete render description. Primitives draw in
// array order. An omitted control_zones list leaves the location fully
// walkable.
type Scene struct {
	Background   string         `json:"background"`              // background color spec
	Primitives   []PrimitiveDef `json:"primitives"`              // drawn in array order
	ControlZones []ZoneDef      `json:"control_zones,omitempty"` // terrain semantics
}

// PrimitiveDef is one shape entry as it appears on the wire. Which fields
// are required depends on Type; Resolve enforces that.
type PrimitiveDef struct {
	Type     string          `json:"type"`               // rect|polygon|circle|ellipse|line|star|path
	Color    json.RawMessage `json:"color,omitempty"`    // name, hex string, or palette index
	Priority *int            `json:"priority,omitempty"` // 0-15; omitted = band gradient
	Filled   *bool           `json:"filled,omitempty"`   // default true (lines and paths default false)

	// rect
	X *float64 `json:"x,omitempty"`
	Y *float64 `json:"y,omitempty"`
	W *float64 `json:"w,omitempty"`
	H *float64 `json:"h,omitempty"`

	// polygon, path
	Points [][]float64 `json:"points,omitempty"`

	// circle, ellipse, star
	CX *float64 `json:"cx,omitempty"`
	CY *float64 `json:"cy,omitempty"`
	R  *float64 `json:"r,omitempty"`
	RX *float64 `json:"rx,omitempty"`
	RY *float64 `json:"ry,omitempty"`

	// line
	X1    *float64 `json:"x1,omitempty"`
	Y1    *float64 `json:"y1,omitempty"`
	X2    *float64 `json:"x2,omitempty"`
	Y2    *float64 `json:"y2,omitempty"`
	Width *int     `json:"width,omitempty"` // stroke brush width

	// star
	Outer   *float64 `json:"outer,omitempty"`
	Inner   *float64 `json:"inner,omitempty"` // default 40% of outer
	PointsN *int     `json:"points_n,omitempty"`
}

// ZoneDef is one control zone entry: a zone type plus either a rect
// [x, y, w, h] or a polygon point list.
type ZoneDef struct {
	Type    string      `json:"type"`              // walkable|blocked|water|trigger|special
	Rect    []float64   `json:"rect,omitempty"`    // [x, y, w, h]
	Polygon [][]float64 `json:"polygon,omitempty"` // [[x, y], ...]
}

// zoneCodes maps descriptor zone names to control codes. The reserved edge
// codes are intentionally absent: descriptors cannot produce them.
var zoneCodes = map[string]pic.ZoneCode{
	"walkable": pic.ZoneWalkable,
	"blocked":  pic.ZoneBlocked,
	"water":    pic.ZoneWater,
	"trigger":  pic.ZoneTrigger,
	"special":  pic.ZoneSpecial,
}

// Load reads and parses a scene descriptor from a JSON file.
func Load(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene: %w", err)
	}
	return Parse(data)
}

// Parse decodes a scene descriptor from JSON bytes.
func Parse(data []byte) (*Scene, error) {
	var s Scene
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse scene: %w", err)
	}
	return &s, nil
}

// BackgroundColor resolves the scene's background spec, defaulting to black
// for an empty or unrecognizable value.
func (s *Scene) BackgroundColor() palette.Index {
	idx, _ := palette.Parse(s.Background)
	return idx
}

// resolveColor turns a raw color field into a palette index. It accepts a
// JSON string (name or hex) or a JSON number (palette index). A missing or
// unrecognizable color falls back to white so the shape stays visible.
func resolveColor(raw json.RawMessage) palette.Index {
	if len(raw) == 0 {
		return palette.White
	}
	var str string
	if err := json.Unmarshal(raw, &str); err == nil {
		if idx, ok := palette.Parse(str); ok {
			return idx
		}
		return palette.White
	}
	var num float64
	if err := json.Unmarshal(raw, &num); err == nil {
		n := int(num)
		if n >= 0 && n < palette.Size {
			return palette.Index(n)
		}
	}
	return palette.White
}

// Resolve converts a wire primitive into a rasterizer primitive, reporting
// an error for unknown types or missing required geometry.
func (d *PrimitiveDef) Resolve() (pic.Primitive, error) {
	p := pic.Primitive{
		Color:    resolveColor(d.Color),
		Priority: -1,
		Filled:   true,
	}
	if d.Priority != nil {
		p.Priority = *d.Priority
	}
	if d.Filled != nil {
		p.Filled = *d.Filled
	}

	switch d.Type {
	case "rect":
		if d.X == nil || d.Y == nil || d.W == nil || d.H == nil {
			return p, fmt.Errorf("rect requires x, y, w, h")
		}
		p.Kind = pic.KindRect
		p.X, p.Y, p.W, p.H = *d.X, *d.Y, *d.W, *d.H
	case "polygon":
		pts, err := toPoints(d.Points, 3)
		if err != nil {
			return p, fmt.Errorf("polygon: %w", err)
		}
		p.Kind = pic.KindPolygon
		p.Points = pts
	case "circle":
		if d.CX == nil || d.CY == nil || d.R == nil {
			return p, fmt.Errorf("circle requires cx, cy, r")
		}
		p.Kind = pic.KindCircle
		p.CX, p.CY, p.RX = *d.CX, *d.CY, *d.R
	case "ellipse":
		if d.CX == nil || d.CY == nil || d.RX == nil || d.RY == nil {
			return p, fmt.Errorf("ellipse requires cx, cy, rx, ry")
		}
		p.Kind = pic.KindEllipse
		p.CX, p.CY, p.RX, p.RY = *d.CX, *d.CY, *d.RX, *d.RY
	case "line":
		if d.X1 == nil || d.Y1 == nil || d.X2 == nil || d.Y2 == nil {
			return p, fmt.Errorf("line requires x1, y1, x2, y2")
		}
		p.Kind = pic.KindLine
		p.X1, p.Y1, p.X2, p.Y2 = *d.X1, *d.Y1, *d.X2, *d.Y2
		p.Filled = false
		if d.Width != nil {
			p.Width = *d.Width
		}
	case "star":
		if d.CX == nil || d.CY == nil || d.Outer == nil || d.PointsN == nil {
			return p, fmt.Errorf("star requires cx, cy, outer, points_n")
		}
		p.Kind = pic.KindStar
		p.CX, p.CY, p.Outer = *d.CX, *d.CY, *d.Outer
		p.NumPoints = *d.PointsN
		if d.Inner != nil {
			p.Inner = *d.Inner
		}
	case "path":
		pts, err := toPoints(d.Points, 2)
		if err != nil {
			return p, fmt.Errorf("path: %w", err)
		}
		p.Kind = pic.KindPath
		p.Points = pts
		if d.Filled == nil {
			p.Filled = false
		}
	default:
		return p, fmt.Errorf("unknown primitive type %q", d.Type)
	}
	return p, nil
}

// Resolve converts a wire zone into a rasterizer zone.
func (z *ZoneDef) Resolve() (pic.Zone, error) {
	code, ok := zoneCodes[z.Type]
	if !ok {
		return pic.Zone{}, fmt.Errorf("unknown zone type %q", z.Type)
	}
	switch {
	case len(z.Rect) == 4:
		return pic.Zone{
			Code: code,
			X:    z.Rect[0], Y: z.Rect[1], W: z.Rect[2], H: z.Rect[3],
		}, nil
	case len(z.Polygon) > 0:
		pts, err := toPoints(z.Polygon, 3)
		if err != nil {
			return pic.Zone{}, err
		}
		return pic.Zone{Code: code, Points: pts}, nil
	}
	return pic.Zone{}, fmt.Errorf("zone %q has neither a rect nor a polygon", z.Type)
}

// toPoints converts a wire point list, requiring a minimum count and two
// coordinates per point.
func toPoints(raw [][]float64, minPoints int) ([]pic.Point, error) {
	if len(raw) < minPoints {
		return nil, fmt.Errorf("requires at least %d points, got %d", minPoints, len(raw))
	}
	pts := make([]pic.Point, len(raw))
	for i, xy := range raw {
		if len(xy) != 2 {
			return nil, fmt.Errorf("point %d has %d coordinates, want 2", i, len(xy))
		}
		pts[i] = pic.Point{X: xy[0], Y: xy[1]}
	}
	return pts, nil
}
