// Package pic implements the priority-compositing pixel core: the visual,
// priority and control buffers over a fixed 320x200 grid, the primitive
// rasterizer, dithered fills, control-map stamping and sprite compositing.
//
// Every draw operation obeys the same per-pixel rule: a pixel is written
// only when the draw priority is greater than or equal to the priority
// already recorded for that pixel, and writing raises the recorded priority
// to the draw priority. Priorities only ever go up between clears.
package pic

import (
	"github.com/ferndale-games/picaro/palette"
)

// Logical canvas dimensions. Display upscaling is a presentation concern
// and happens outside this package.
const (
	Width  = 320
	Height = 200
)

// MaxPriority is the highest depth rank a pixel can hold.
const MaxPriority = 15

// Buffer owns the three parallel per-pixel planes for one frame.
// Visual is RGBA, 4 bytes per pixel; Priority and Control are one byte per
// pixel. All three are allocated once and reused across frames.
type Buffer struct {
	Visual   []uint8 // RGBA, Width*Height*4 bytes
	Priority []uint8 // depth rank 0-15 per pixel
	Control  []uint8 // terrain zone code per pixel
}

// NewBuffer allocates a zeroed buffer set. This is the only allocation the
// engine performs per instance; a failed allocation panics, which is the
// sole unrecoverable condition in the renderer.
func NewBuffer() *Buffer {
	return &Buffer{
		Visual:   make([]uint8, Width*Height*4),
		Priority: make([]uint8, Width*Height),
		Control:  make([]uint8, Width*Height),
	}
}

// Clear resets all three planes: the visual plane to the given background
// color, the priority and control planes to zero. Clearing twice is
// indistinguishable from clearing once.
func (b *Buffer) Clear(background palette.Index) {
	r, g, bl := palette.RGB(background)
	for i := 0; i < Width*Height; i++ {
		o := i * 4
		b.Visual[o] = r
		b.Visual[o+1] = g
		b.Visual[o+2] = bl
		b.Visual[o+3] = 0xFF
		b.Priority[i] = 0
		b.Control[i] = 0
	}
}

// plot writes one pixel under the priority test. Out-of-bounds coordinates
// are clipped silently.
func (b *Buffer) plot(x, y int, c palette.Index, prio uint8) {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return
	}
	i := y*Width + x
	if b.Priority[i] > prio {
		return
	}
	b.Priority[i] = prio
	r, g, bl := palette.RGB(c)
	o := i * 4
	b.Visual[o] = r
	b.Visual[o+1] = g
	b.Visual[o+2] = bl
	b.Visual[o+3] = 0xFF
}

// plotRGB writes one raw RGBA pixel under the priority test, quantizing the
// color through the palette so the visual plane always round-trips to the
// 16 entries. Used by the sprite compositor.
func (b *Buffer) plotRGB(x, y int, r, g, bl uint8, prio uint8) {
	b.plot(x, y, palette.Quantize(r, g, bl), prio)
}

// PriorityAt returns the depth rank recorded at (x, y), or 0 for
// out-of-bounds coordinates.
func (b *Buffer) PriorityAt(x, y int) uint8 {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return 0
	}
	return b.Priority[y*Width+x]
}

// VisualAt returns the RGBA value recorded at (x, y). Out-of-bounds
// coordinates read as transparent black.
func (b *Buffer) VisualAt(x, y int) (r, g, bl, a uint8) {
	if x < 0 || x >= Width || y < 0 || y >= Height {
		return 0, 0, 0, 0
	}
	o := (y*Width + x) * 4
	return b.Visual[o], b.Visual[o+1], b.Visual[o+2], b.Visual[o+3]
}
