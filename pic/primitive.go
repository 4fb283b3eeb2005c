package pic

import "github.com/ferndale-games/picaro/palette"

// Kind tags the shape variant carried by a Primitive. Scene descriptors
// resolve their "type" strings to a Kind once at parse time; the rasterizer
// dispatches on the tag, never on strings.
type Kind int

// Shape variants.
const (
	KindRect Kind = iota
	KindPolygon
	KindCircle
	KindEllipse
	KindLine
	KindStar
	KindPath
)

// String returns the descriptor name of the kind.
func (k Kind) String() string {
	switch k {
	case KindRect:
		return "rect"
	case KindPolygon:
		return "polygon"
	case KindCircle:
		return "circle"
	case KindEllipse:
		return "ellipse"
	case KindLine:
		return "line"
	case KindStar:
		return "star"
	case KindPath:
		return "path"
	}
	return "unknown"
}

// Point is a position in the 320x200 logical pixel space. Coordinates may
// be fractional; rasterization snaps to the pixel grid.
type Point struct {
	X float64
	Y float64
}

// Primitive is one resolved shape ready for rasterization. It is a tagged
// union: Kind selects which geometry fields are meaningful. Primitives are
// transient inputs to Draw and are not retained afterwards.
type Primitive struct {
	Kind     Kind
	Color    palette.Index
	Priority int  // 0-15 explicit depth, or -1 to derive from the band gradient
	Filled   bool // fill the shape; false strokes the outline only

	// Rect geometry.
	X, Y, W, H float64

	// Polygon and Path vertices.
	Points []Point

	// Circle, Ellipse and Star center. Circle uses RX as its radius;
	// Ellipse uses RX and RY.
	CX, CY, RX, RY float64

	// Line endpoints and brush width.
	X1, Y1, X2, Y2 float64
	Width          int

	// Star radii and point count. Inner defaults to 40% of Outer when zero.
	Outer, Inner float64
	NumPoints    int
}

// effectivePriority resolves the depth rank a primitive draws at: its
// explicit priority when set, else the gradient band at its lowest
// (closest to the viewer) row.
func (p *Primitive) effectivePriority() uint8 {
	if p.Priority >= 0 {
		if p.Priority > MaxPriority {
			return MaxPriority
		}
		return uint8(p.Priority)
	}
	return PriorityAtY(int(p.bottomY()))
}

// bottomY returns the lowest row the primitive's geometry reaches.
func (p *Primitive) bottomY() float64 {
	switch p.Kind {
	case KindRect:
		return p.Y + p.H - 1
	case KindPolygon, KindPath:
		bottom := 0.0
		for i, pt := range p.Points {
			if i == 0 || pt.Y > bottom {
				bottom = pt.Y
			}
		}
		return bottom
	case KindCircle:
		return p.CY + p.RX
	case KindEllipse:
		return p.CY + p.RY
	case KindLine:
		if p.Y1 > p.Y2 {
			return p.Y1
		}
		return p.Y2
	case KindStar:
		return p.CY + p.Outer
	}
	return 0
}
