package pic

import "math"

// ZoneCode classifies the terrain semantics of a pixel in the control
// plane. Unlike the visual plane, control stamping has no depth ordering:
// the last zone stamped at a pixel wins.
type ZoneCode uint8

// Zone codes. The two edge codes are reserved for engine-specific screen
// boundary handling and are never produced by scene descriptors.
const (
	ZoneWalkable ZoneCode = 0 // default after clear
	ZoneBlocked  ZoneCode = 1
	ZoneWater    ZoneCode = 2
	ZoneTrigger  ZoneCode = 3
	ZoneSpecial  ZoneCode = 4
	ZoneEdgeNear ZoneCode = 5 // reserved
	ZoneEdgeFar  ZoneCode = 6 // reserved
)

// ControlOutOfBounds is the sentinel ControlAt returns for coordinates
// outside the canvas.
const ControlOutOfBounds = -1

// Zone is one semantic region to stamp into the control plane: either a
// rectangle (W and H positive) or a polygon (three or more points).
type Zone struct {
	Code       ZoneCode
	X, Y, W, H float64 // rectangle region, used when Points is empty
	Points     []Point // polygon region
}

// StampZone writes a zone's code over its region in the control plane.
// Polygon regions reuse the even-odd scanline decomposition of the visual
// rasterizer. There is no priority test; later stamps overwrite earlier
// ones. Degenerate regions are a no-op.
func (b *Buffer) StampZone(z Zone) {
	code := uint8(z.Code)
	if len(z.Points) > 0 {
		scanPolygon(z.Points, func(y, x0, x1 int) {
			b.stampRun(y, x0, x1, code)
		})
		return
	}
	x0, y0 := int(math.Round(z.X)), int(math.Round(z.Y))
	w, h := int(math.Round(z.W)), int(math.Round(z.H))
	if w <= 0 || h <= 0 {
		return
	}
	for y := y0; y < y0+h; y++ {
		b.stampRun(y, x0, x0+w-1, code)
	}
}

// stampRun writes a code over one inclusive horizontal run, clipped.
func (b *Buffer) stampRun(y, x0, x1 int, code uint8) {
	if y < 0 || y >= Height {
		return
	}
	if x0 < 0 {
		x0 = 0
	}
	if x1 >= Width {
		x1 = Width - 1
	}
	for x := x0; x <= x1; x++ {
		b.Control[y*Width+x] = code
	}
}

// ControlAt returns the raw zone code at (x, y), or ControlOutOfBounds for
// coordinates outside the canvas.
func (b *Buffer) ControlAt(x, y int) int {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return ControlOutOfBounds
	}
	return int(b.Control[y*Width+x])
}

// IsWalkable reports whether (x, y) carries no movement-restricting zone.
// Out-of-bounds coordinates are not walkable.
func (b *Buffer) IsWalkable(x, y int) bool {
	return b.ControlAt(x, y) == int(ZoneWalkable)
}
