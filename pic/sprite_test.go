package pic

import (
	"testing"

	"github.com/ferndale-games/picaro/palette"
)

// solidSprite builds a w*h sprite filled with one opaque color.
func solidSprite(x, y float64, w, h int, r, g, b uint8, fixed int) Sprite {
	pix := make([]uint8, w*h*4)
	for i := 0; i < w*h; i++ {
		pix[i*4] = r
		pix[i*4+1] = g
		pix[i*4+2] = b
		pix[i*4+3] = 0xFF
	}
	return Sprite{X: x, Y: y, W: w, H: h, Pixels: pix, FixedPriority: fixed}
}

func TestFixedPriorityOcclusion(t *testing.T) {
	// Two sprites at the same position with fixed priorities 2 and 9:
	// the priority-9 sprite must be visible wherever both overlap,
	// regardless of input order.
	for _, swap := range []bool{false, true} {
		b := NewBuffer()
		b.Clear(palette.Black)
		low := solidSprite(50, 50, 8, 8, 0x00, 0x00, 0xAA, 2)  // blue
		high := solidSprite(50, 50, 8, 8, 0xFF, 0xFF, 0xFF, 9) // white
		sprites := []Sprite{low, high}
		if swap {
			sprites = []Sprite{high, low}
		}
		b.CompositeSprites(sprites)

		r, g, bl, _ := b.VisualAt(52, 52)
		if r != 0xFF || g != 0xFF || bl != 0xFF {
			t.Errorf("swap=%v: expected priority-9 sprite visible, got rgb(%d, %d, %d)",
				swap, r, g, bl)
		}
	}
}

func TestGradientDerivedPriority(t *testing.T) {
	b := NewBuffer()
	b.Clear(palette.Black)
	s := solidSprite(10, 150, 8, 30, 0xAA, 0x00, 0x00, -1)
	b.CompositeSprites([]Sprite{s})

	want := PriorityAtY(150 + 30 - 1)
	if got := b.PriorityAt(12, 160); got != want {
		t.Errorf("Expected derived band %d at sprite pixel, got %d", want, got)
	}
}

func TestAlphaSkip(t *testing.T) {
	b := NewBuffer()
	b.Clear(palette.Black)
	s := solidSprite(10, 10, 4, 4, 0xFF, 0xFF, 0xFF, 5)
	// Punch a transparent hole at sprite-local (1, 1).
	s.Pixels[(1*4+1)*4+3] = 0
	b.CompositeSprites([]Sprite{s})

	if b.PriorityAt(11, 11) != 0 {
		t.Errorf("Expected transparent sprite pixel to leave buffer untouched")
	}
	if b.PriorityAt(10, 10) != 5 {
		t.Errorf("Expected opaque sprite pixel drawn")
	}
}

func TestSpriteRespectsScenePriority(t *testing.T) {
	b := NewBuffer()
	b.Clear(palette.Black)
	// A foreground primitive at priority 10 must occlude a priority-4 sprite.
	b.Draw(Primitive{Kind: KindRect, Color: palette.Green, Priority: 10, Filled: true,
		X: 0, Y: 0, W: 40, H: 40})
	b.CompositeSprites([]Sprite{solidSprite(10, 10, 8, 8, 0xAA, 0x00, 0x00, 4)})

	r, g, _, _ := b.VisualAt(12, 12)
	if r != 0x00 || g != 0xAA {
		t.Errorf("Expected foreground to occlude sprite, got rgb(%d, %d, _)", r, g)
	}
}

func TestCompositeOrdering(t *testing.T) {
	// Gradient sprites order by ascending Y and precede fixed sprites,
	// which order by ascending priority.
	sprites := []Sprite{
		{Y: 50, FixedPriority: 9},
		{Y: 10, FixedPriority: -1},
		{Y: 80, FixedPriority: 2},
		{Y: 5, FixedPriority: -1},
	}
	got := sortSprites(sprites)
	wantY := []float64{5, 10, 80, 50}
	for i, s := range got {
		if s.Y != wantY[i] {
			t.Fatalf("position %d: expected sprite with Y=%v, got Y=%v", i, wantY[i], s.Y)
		}
	}
}

func TestShortPixelDataSkipped(t *testing.T) {
	b := NewBuffer()
	b.Clear(palette.Black)
	b.CompositeSprites([]Sprite{{X: 0, Y: 0, W: 8, H: 8, Pixels: []uint8{1, 2, 3}, FixedPriority: 5}})
	for i, v := range b.Priority {
		if v != 0 {
			t.Fatalf("malformed sprite wrote priority at pixel %d", i)
		}
	}
}

func TestSpriteClipsAtEdges(t *testing.T) {
	b := NewBuffer()
	b.Clear(palette.Black)
	b.CompositeSprites([]Sprite{
		solidSprite(-4, -4, 8, 8, 0xFF, 0xFF, 0xFF, 5),
		solidSprite(316, 196, 8, 8, 0xFF, 0xFF, 0xFF, 5),
	})
	if b.PriorityAt(0, 0) != 5 {
		t.Errorf("Expected in-bounds corner of top-left sprite drawn")
	}
	if b.PriorityAt(319, 199) != 5 {
		t.Errorf("Expected in-bounds corner of bottom-right sprite drawn")
	}
}
