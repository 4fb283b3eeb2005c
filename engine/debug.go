package engine

import "github.com/ferndale-games/picaro/pic"

// Debug visualizations. These are presentation conveniences layered on the
// query API: they read buffer state through the same accessors external
// collaborators use and never touch the planes directly.

// heatColors maps each of the 16 priority ranks to an RGBA color running
// cold (deep blue) to hot (white).
var heatColors = [16][4]uint8{
	{0x00, 0x00, 0x20, 0xFF},
	{0x00, 0x00, 0x60, 0xFF},
	{0x00, 0x00, 0xA0, 0xFF},
	{0x00, 0x20, 0xE0, 0xFF},
	{0x00, 0x60, 0xFF, 0xFF},
	{0x00, 0xA0, 0xE0, 0xFF},
	{0x00, 0xE0, 0xA0, 0xFF},
	{0x40, 0xFF, 0x40, 0xFF},
	{0xA0, 0xFF, 0x00, 0xFF},
	{0xE0, 0xE0, 0x00, 0xFF},
	{0xFF, 0xA0, 0x00, 0xFF},
	{0xFF, 0x60, 0x00, 0xFF},
	{0xFF, 0x20, 0x00, 0xFF},
	{0xFF, 0x60, 0x60, 0xFF},
	{0xFF, 0xA0, 0xA0, 0xFF},
	{0xFF, 0xFF, 0xFF, 0xFF},
}

// controlColors maps zone codes to overlay colors. Walkable pixels stay
// dark so stamped zones stand out.
var controlColors = map[int][4]uint8{
	int(pic.ZoneWalkable): {0x10, 0x10, 0x10, 0xFF},
	int(pic.ZoneBlocked):  {0xE0, 0x20, 0x20, 0xFF},
	int(pic.ZoneWater):    {0x20, 0x60, 0xE0, 0xFF},
	int(pic.ZoneTrigger):  {0xE0, 0xE0, 0x20, 0xFF},
	int(pic.ZoneSpecial):  {0xC0, 0x20, 0xE0, 0xFF},
	int(pic.ZoneEdgeNear): {0x20, 0xE0, 0xE0, 0xFF},
	int(pic.ZoneEdgeFar):  {0xE0, 0x80, 0x20, 0xFF},
}

// PriorityHeatmap renders the priority plane as a 320x200 RGBA heat-map.
func (e *Engine) PriorityHeatmap() []uint8 {
	out := make([]uint8, pic.Width*pic.Height*4)
	for y := 0; y < pic.Height; y++ {
		for x := 0; x < pic.Width; x++ {
			c := heatColors[e.PixelPriority(x, y)&0x0F]
			o := (y*pic.Width + x) * 4
			copy(out[o:o+4], c[:])
		}
	}
	return out
}

// ControlOverlay renders the control plane as a 320x200 RGBA zone map.
func (e *Engine) ControlOverlay() []uint8 {
	out := make([]uint8, pic.Width*pic.Height*4)
	for y := 0; y < pic.Height; y++ {
		for x := 0; x < pic.Width; x++ {
			c, ok := controlColors[e.ControlAt(x, y)]
			if !ok {
				c = [4]uint8{0x80, 0x80, 0x80, 0xFF}
			}
			o := (y*pic.Width + x) * 4
			copy(out[o:o+4], c[:])
		}
	}
	return out
}
