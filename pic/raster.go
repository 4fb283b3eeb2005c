package pic

import (
	"math"
	"sort"

	"github.com/ferndale-games/picaro/palette"
)

// Draw rasterizes one primitive into the visual and priority planes.
// Unknown kinds and degenerate geometry are skipped; Draw never fails.
func (b *Buffer) Draw(p Primitive) {
	prio := p.effectivePriority()
	switch p.Kind {
	case KindRect:
		b.fillRect(p.X, p.Y, p.W, p.H, p.Color, prio, p.Filled)
	case KindPolygon:
		if p.Filled {
			b.fillPolygon(p.Points, p.Color, prio)
		} else {
			b.strokePolygon(p.Points, p.Color, prio, true)
		}
	case KindCircle:
		b.fillEllipse(p.CX, p.CY, p.RX, p.RX, p.Color, prio, p.Filled)
	case KindEllipse:
		b.fillEllipse(p.CX, p.CY, p.RX, p.RY, p.Color, prio, p.Filled)
	case KindLine:
		b.line(p.X1, p.Y1, p.X2, p.Y2, p.Color, prio, p.Width)
	case KindStar:
		b.star(p, prio)
	case KindPath:
		if p.Filled {
			b.fillPolygon(p.Points, p.Color, prio)
		} else {
			b.strokePolygon(p.Points, p.Color, prio, false)
		}
	default:
		logger().Warn("skipping primitive of unknown kind", "kind", int(p.Kind))
	}
}

// fillRect rasterizes an axis-aligned rectangle. A zero-area rectangle is
// a no-op. The outline variant draws the four edge runs only.
func (b *Buffer) fillRect(fx, fy, fw, fh float64, c palette.Index, prio uint8, filled bool) {
	x0, y0 := int(math.Round(fx)), int(math.Round(fy))
	w, h := int(math.Round(fw)), int(math.Round(fh))
	if w <= 0 || h <= 0 {
		return
	}
	if filled {
		for y := y0; y < y0+h; y++ {
			for x := x0; x < x0+w; x++ {
				b.plot(x, y, c, prio)
			}
		}
		return
	}
	for x := x0; x < x0+w; x++ {
		b.plot(x, y0, c, prio)
		b.plot(x, y0+h-1, c, prio)
	}
	for y := y0; y < y0+h; y++ {
		b.plot(x0, y, c, prio)
		b.plot(x0+w-1, y, c, prio)
	}
}

// scanPolygon decomposes a polygon into horizontal spans under the even-odd
// rule and calls span(y, x0, x1) for each inclusive pixel run. Horizontal
// edges contribute nothing; vertices are handled with the half-open edge
// rule so shared corners are counted once. Degenerate polygons (fewer than
// three vertices) produce no spans.
func scanPolygon(pts []Point, span func(y, x0, x1 int)) {
	if len(pts) < 3 {
		return
	}
	minY, maxY := pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		minY = math.Min(minY, p.Y)
		maxY = math.Max(maxY, p.Y)
	}
	yTop := int(math.Ceil(minY))
	yBot := int(math.Floor(maxY))
	if yTop < 0 {
		yTop = 0
	}
	if yBot >= Height {
		yBot = Height - 1
	}

	var xs []float64
	for y := yTop; y <= yBot; y++ {
		xs = xs[:0]
		fy := float64(y)
		for i := range pts {
			a := pts[i]
			bb := pts[(i+1)%len(pts)]
			if a.Y == bb.Y {
				continue // horizontal edge
			}
			// Half-open in y: each edge owns its lower-y endpoint.
			if (a.Y <= fy && fy < bb.Y) || (bb.Y <= fy && fy < a.Y) {
				t := (fy - a.Y) / (bb.Y - a.Y)
				xs = append(xs, a.X+t*(bb.X-a.X))
			}
		}
		sort.Float64s(xs)
		for k := 0; k+1 < len(xs); k += 2 {
			x0 := int(math.Ceil(xs[k]))
			x1 := int(math.Floor(xs[k+1]))
			if x1 >= x0 {
				span(y, x0, x1)
			}
		}
	}
}

// fillPolygon rasterizes a filled polygon via even-odd scanline spans.
func (b *Buffer) fillPolygon(pts []Point, c palette.Index, prio uint8) {
	scanPolygon(pts, func(y, x0, x1 int) {
		for x := x0; x <= x1; x++ {
			b.plot(x, y, c, prio)
		}
	})
}

// strokePolygon draws the outline of a vertex list as line segments.
// When closed, the last vertex connects back to the first.
func (b *Buffer) strokePolygon(pts []Point, c palette.Index, prio uint8, closed bool) {
	if len(pts) < 2 {
		return
	}
	n := len(pts)
	last := n - 1
	if closed {
		last = n
	}
	for i := 0; i < last; i++ {
		a := pts[i]
		bb := pts[(i+1)%n]
		b.line(a.X, a.Y, bb.X, bb.Y, c, prio, 1)
	}
}

// fillEllipse rasterizes a filled or stroked ellipse by testing every pixel
// of the bounding box against the normalized center distance. A zero radius
// is a no-op. The stroked variant keeps only boundary pixels: covered
// pixels with at least one uncovered 4-neighbor.
func (b *Buffer) fillEllipse(cx, cy, rx, ry float64, c palette.Index, prio uint8, filled bool) {
	if rx <= 0 || ry <= 0 {
		return
	}
	inside := func(x, y int) bool {
		nx := (float64(x) - cx) / rx
		ny := (float64(y) - cy) / ry
		return nx*nx+ny*ny <= 1
	}
	x0 := int(math.Floor(cx - rx))
	x1 := int(math.Ceil(cx + rx))
	y0 := int(math.Floor(cy - ry))
	y1 := int(math.Ceil(cy + ry))
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if !inside(x, y) {
				continue
			}
			if !filled {
				if inside(x-1, y) && inside(x+1, y) && inside(x, y-1) && inside(x, y+1) {
					continue
				}
			}
			b.plot(x, y, c, prio)
		}
	}
}

// line rasterizes a segment with integer Bresenham stepping. A width above
// one stamps a centered square brush at every stepped pixel.
func (b *Buffer) line(fx1, fy1, fx2, fy2 float64, c palette.Index, prio uint8, width int) {
	x1, y1 := int(math.Round(fx1)), int(math.Round(fy1))
	x2, y2 := int(math.Round(fx2)), int(math.Round(fy2))

	stamp := func(x, y int) {
		if width <= 1 {
			b.plot(x, y, c, prio)
			return
		}
		half := width / 2
		for dy := -half; dy <= half; dy++ {
			for dx := -half; dx <= half; dx++ {
				b.plot(x+dx, y+dy, c, prio)
			}
		}
	}

	dx := absInt(x2 - x1)
	dy := -absInt(y2 - y1)
	sx := 1
	if x1 > x2 {
		sx = -1
	}
	sy := 1
	if y1 > y2 {
		sy = -1
	}
	err := dx + dy
	for {
		stamp(x1, y1)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x1 += sx
		}
		if e2 <= dx {
			err += dx
			y1 += sy
		}
	}
}

// star builds a closed polygon alternating outer and inner vertices at
// evenly spaced angles, then fills or strokes it like any polygon. The
// first outer point faces up.
func (b *Buffer) star(p Primitive, prio uint8) {
	n := p.NumPoints
	if n < 2 || p.Outer <= 0 {
		return
	}
	inner := p.Inner
	if inner <= 0 {
		inner = p.Outer * 0.4
	}
	pts := make([]Point, 0, n*2)
	for i := 0; i < n*2; i++ {
		r := p.Outer
		if i%2 == 1 {
			r = inner
		}
		angle := float64(i)*math.Pi/float64(n) - math.Pi/2
		pts = append(pts, Point{
			X: p.CX + r*math.Cos(angle),
			Y: p.CY + r*math.Sin(angle),
		})
	}
	if p.Filled {
		b.fillPolygon(pts, p.Color, prio)
	} else {
		b.strokePolygon(pts, p.Color, prio, true)
	}
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
