package pic

import "github.com/ferndale-games/picaro/palette"

// DitherPattern selects one of the fixed repeating bit patterns used to
// blend two palette colors over a region. Pattern bits index with
// (x mod w, y mod h) in screen space, so adjacent dithered regions tile
// seamlessly regardless of where each fill started.
type DitherPattern int

// Available patterns. The percentage names give the share of colorB pixels.
const (
	DitherChecker DitherPattern = iota // 50/50 checkerboard
	Dither25                          // one in four pixels is colorB
	Dither75                          // three in four pixels are colorB
	DitherHStripes                    // alternating horizontal rows
	DitherVStripes                    // alternating vertical columns
)

// ditherGrid is one repeating bit tile; set bits select colorB.
type ditherGrid struct {
	w, h int
	bits []uint8
}

var ditherGrids = map[DitherPattern]ditherGrid{
	DitherChecker:  {2, 2, []uint8{1, 0, 0, 1}},
	Dither25:       {2, 2, []uint8{1, 0, 0, 0}},
	Dither75:       {2, 2, []uint8{0, 1, 1, 1}},
	DitherHStripes: {1, 2, []uint8{1, 0}},
	DitherVStripes: {2, 1, []uint8{1, 0}},
}

// DitherFill fills a rectangular region with colorA and overlays colorB
// wherever the pattern bit at (x mod w, y mod h) is set. Every pixel obeys
// the standard priority test, so dithered regions occlude and are occluded
// exactly like solid draws. Unknown patterns fall back to the checkerboard.
func (b *Buffer) DitherFill(x, y, w, h int, colorA, colorB palette.Index, pattern DitherPattern, prio uint8) {
	grid, ok := ditherGrids[pattern]
	if !ok {
		logger().Warn("unknown dither pattern, using checkerboard", "pattern", int(pattern))
		grid = ditherGrids[DitherChecker]
	}
	for py := y; py < y+h; py++ {
		for px := x; px < x+w; px++ {
			c := colorA
			if grid.bits[mod(py, grid.h)*grid.w+mod(px, grid.w)] != 0 {
				c = colorB
			}
			b.plot(px, py, c, prio)
		}
	}
}

// mod is a floor modulus, safe for negative coordinates.
func mod(v, m int) int {
	r := v % m
	if r < 0 {
		r += m
	}
	return r
}
