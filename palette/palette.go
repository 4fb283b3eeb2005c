// Package palette provides the fixed 16-entry indexed color palette used by
// the rendering engine, together with color-spec parsing and nearest-color
// quantization. All functions are pure so that identical inputs always map
// to identical palette indices.
package palette

import (
	"image/color"
	"strconv"
	"strings"
)

// Size is the number of entries in the palette.
const Size = 16

// Index identifies one of the 16 palette entries.
type Index uint8

// The canonical palette entries.
const (
	Black Index = iota
	Blue
	Green
	Cyan
	Red
	Magenta
	Brown
	LightGray
	DarkGray
	LightBlue
	LightGreen
	LightCyan
	LightRed
	LightMagenta
	Yellow
	White
)

// rgb is a palette entry's color value.
type rgb struct {
	R, G, B uint8
}

// entries holds the RGB value for each palette index.
var entries = [Size]rgb{
	Black:        {0x00, 0x00, 0x00},
	Blue:         {0x00, 0x00, 0xAA},
	Green:        {0x00, 0xAA, 0x00},
	Cyan:         {0x00, 0xAA, 0xAA},
	Red:          {0xAA, 0x00, 0x00},
	Magenta:      {0xAA, 0x00, 0xAA},
	Brown:        {0xAA, 0x55, 0x00},
	LightGray:    {0xAA, 0xAA, 0xAA},
	DarkGray:     {0x55, 0x55, 0x55},
	LightBlue:    {0x55, 0x55, 0xFF},
	LightGreen:   {0x55, 0xFF, 0x55},
	LightCyan:    {0x55, 0xFF, 0xFF},
	LightRed:     {0xFF, 0x55, 0x55},
	LightMagenta: {0xFF, 0x55, 0xFF},
	Yellow:       {0xFF, 0xFF, 0x55},
	White:        {0xFF, 0xFF, 0xFF},
}

// names maps color names accepted in scene descriptors to palette indices.
// The canonical names plus a few common aliases.
var names = map[string]Index{
	"black":        Black,
	"blue":         Blue,
	"green":        Green,
	"cyan":         Cyan,
	"red":          Red,
	"magenta":      Magenta,
	"brown":        Brown,
	"lightgray":    LightGray,
	"light_gray":   LightGray,
	"gray":         LightGray,
	"grey":         LightGray,
	"darkgray":     DarkGray,
	"dark_gray":    DarkGray,
	"lightblue":    LightBlue,
	"light_blue":   LightBlue,
	"lightgreen":   LightGreen,
	"light_green":  LightGreen,
	"lightcyan":    LightCyan,
	"light_cyan":   LightCyan,
	"lightred":     LightRed,
	"light_red":    LightRed,
	"pink":         LightMagenta,
	"lightmagenta": LightMagenta,
	"purple":       Magenta,
	"yellow":       Yellow,
	"orange":       Brown,
	"white":        White,
}

// RGB returns the red, green and blue components of a palette entry.
// Out-of-range indices are masked to the low four bits.
func RGB(idx Index) (r, g, b uint8) {
	e := entries[idx&0x0F]
	return e.R, e.G, e.B
}

// Color returns the palette entry as an opaque color.RGBA, for presentation
// backends that work with the standard library color model.
func Color(idx Index) color.RGBA {
	e := entries[idx&0x0F]
	return color.RGBA{R: e.R, G: e.G, B: e.B, A: 0xFF}
}

// Quantize maps an arbitrary RGB color to the nearest palette index by
// squared Euclidean distance. Ties break toward the lowest index.
func Quantize(r, g, b uint8) Index {
	best := Index(0)
	bestDist := -1
	for i := 0; i < Size; i++ {
		e := entries[i]
		dr := int(e.R) - int(r)
		dg := int(e.G) - int(g)
		db := int(e.B) - int(b)
		d := dr*dr + dg*dg + db*db
		if bestDist < 0 || d < bestDist {
			bestDist = d
			best = Index(i)
		}
	}
	return best
}

// Parse resolves a color spec from a scene descriptor to a palette index.
// Accepted forms: "#RRGGBB", "#RGB" (with or without the leading '#'),
// a named color ("red", "light_blue"), or a decimal palette index ("4").
// Anything that parses to a color but is not an exact palette entry falls
// back to nearest-color quantization. Unrecognizable specs resolve to Black
// with ok=false; callers decide whether that warrants a warning.
func Parse(spec string) (Index, bool) {
	s := strings.ToLower(strings.TrimSpace(spec))
	if s == "" {
		return Black, false
	}
	if idx, found := names[s]; found {
		return idx, true
	}
	if n, err := strconv.Atoi(s); err == nil {
		if n >= 0 && n < Size {
			return Index(n), true
		}
		return Black, false
	}
	hex := strings.TrimPrefix(s, "#")
	switch len(hex) {
	case 3:
		r, okR := hexNibble(hex[0])
		g, okG := hexNibble(hex[1])
		b, okB := hexNibble(hex[2])
		if okR && okG && okB {
			return Quantize(r*0x11, g*0x11, b*0x11), true
		}
	case 6:
		if v, err := strconv.ParseUint(hex, 16, 32); err == nil {
			return Quantize(uint8(v>>16), uint8(v>>8), uint8(v)), true
		}
	}
	return Black, false
}

// hexNibble decodes one hex digit.
func hexNibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	}
	return 0, false
}
