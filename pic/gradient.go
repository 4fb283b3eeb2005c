package pic

// The priority gradient maps a screen row to the default depth band used
// when a sprite or primitive carries no explicit priority. Rows lower on
// screen are closer to the viewer and land in higher bands. Band 0 is
// reserved for the untouched background and band 15 for always-on-top
// content, so derived priorities span 1 through 14.

const (
	minBand = 1
	maxBand = 14
)

// bandTable is the fixed y -> band lookup, filled once at init.
var bandTable [Height]uint8

func init() {
	for y := 0; y < Height; y++ {
		band := minBand + y*(maxBand-minBand+1)/Height
		if band > maxBand {
			band = maxBand
		}
		bandTable[y] = uint8(band)
	}
}

// PriorityAtY returns the default depth band for screen row y. Rows above
// the canvas clamp to the top band, rows below to the bottom band.
func PriorityAtY(y int) uint8 {
	if y < 0 {
		return bandTable[0]
	}
	if y >= Height {
		return bandTable[Height-1]
	}
	return bandTable[y]
}
