package pic

import (
	"math"
	"sort"
)

// Sprite is one movable object composited onto a rendered scene. The pixel
// source is RGBA, 4 bytes per pixel, row-major, W*H pixels; zero-alpha
// pixels are skipped during the blit. Sprites are owned by the caller and
// only read during one composite pass.
type Sprite struct {
	X, Y          float64 // top-left position, may be fractional
	W, H          int
	Pixels        []uint8 // RGBA source, len W*H*4
	FixedPriority int     // explicit depth 0-15, or -1 to derive from the band gradient
}

// priority resolves the depth a sprite composites at: its fixed priority
// when set, else the gradient band at its bottom edge.
func (s *Sprite) priority() uint8 {
	if s.FixedPriority >= 0 {
		if s.FixedPriority > MaxPriority {
			return MaxPriority
		}
		return uint8(s.FixedPriority)
	}
	return PriorityAtY(int(math.Round(s.Y)) + s.H - 1)
}

// CompositeSprites blits a set of sprites onto the visual plane. Sprites
// without a fixed priority are placed first, ordered by ascending screen Y;
// fixed-priority sprites follow, ordered by ascending priority. The list
// order is only a tie-break: occlusion between sprites is decided by the
// per-pixel priority test, the same one primitives use, so a sprite never
// overdraws content of strictly higher priority regardless of order.
func (b *Buffer) CompositeSprites(sprites []Sprite) {
	for _, s := range sortSprites(sprites) {
		b.blitSprite(s)
	}
}

// sortSprites produces the compositing order: gradient-derived sprites by
// ascending Y, then fixed-priority sprites by ascending priority.
func sortSprites(sprites []Sprite) []*Sprite {
	order := make([]*Sprite, len(sprites))
	for i := range sprites {
		order[i] = &sprites[i]
	}
	sort.SliceStable(order, func(i, j int) bool {
		a, c := order[i], order[j]
		aFixed := a.FixedPriority >= 0
		cFixed := c.FixedPriority >= 0
		if aFixed != cFixed {
			return !aFixed // gradient-derived sprites come first
		}
		if aFixed {
			return a.FixedPriority < c.FixedPriority
		}
		return a.Y < c.Y
	})
	return order
}

// blitSprite draws one sprite with per-pixel alpha skip and priority test.
// Malformed pixel data (short slice) is skipped with a warning rather than
// aborting the pass.
func (b *Buffer) blitSprite(s *Sprite) {
	if s.W <= 0 || s.H <= 0 {
		return
	}
	if len(s.Pixels) < s.W*s.H*4 {
		logger().Warn("skipping sprite with short pixel data",
			"want", s.W*s.H*4, "have", len(s.Pixels))
		return
	}
	prio := s.priority()
	x0 := int(math.Round(s.X))
	y0 := int(math.Round(s.Y))
	for sy := 0; sy < s.H; sy++ {
		for sx := 0; sx < s.W; sx++ {
			o := (sy*s.W + sx) * 4
			if s.Pixels[o+3] == 0 {
				continue
			}
			b.plotRGB(x0+sx, y0+sy, s.Pixels[o], s.Pixels[o+1], s.Pixels[o+2], prio)
		}
	}
}
