package palette

import "testing"

func TestParseHexExact(t *testing.T) {
	idx, ok := Parse("#00AA00")
	if !ok {
		t.Fatalf("Expected #00AA00 to parse")
	}
	if idx != Green {
		t.Errorf("Expected Green (%d), got %d", Green, idx)
	}
}

func TestParseShortHex(t *testing.T) {
	idx, ok := Parse("#fff")
	if !ok {
		t.Fatalf("Expected #fff to parse")
	}
	if idx != White {
		t.Errorf("Expected White (%d), got %d", White, idx)
	}
}

func TestParseNames(t *testing.T) {
	cases := map[string]Index{
		"red":        Red,
		"RED":        Red,
		"light_blue": LightBlue,
		"lightblue":  LightBlue,
		"grey":       LightGray,
		"pink":       LightMagenta,
	}
	for name, want := range cases {
		idx, ok := Parse(name)
		if !ok {
			t.Errorf("Expected %q to parse", name)
			continue
		}
		if idx != want {
			t.Errorf("Expected %q -> %d, got %d", name, want, idx)
		}
	}
}

func TestParseNumericIndex(t *testing.T) {
	idx, ok := Parse("4")
	if !ok || idx != Red {
		t.Errorf("Expected index 4 -> Red, got %d (ok=%v)", idx, ok)
	}
	if _, ok := Parse("16"); ok {
		t.Errorf("Expected out-of-range index 16 to fail")
	}
}

func TestParseGarbage(t *testing.T) {
	for _, s := range []string{"", "#12", "#GGGGGG", "notacolor"} {
		if idx, ok := Parse(s); ok {
			t.Errorf("Expected %q to fail, got index %d", s, idx)
		}
	}
}

func TestQuantizeNearest(t *testing.T) {
	// Pure bright red is closer to Red (AA0000) than LightRed (FF5555).
	if idx := Quantize(0xFF, 0x00, 0x00); idx != Red {
		t.Errorf("Expected FF0000 -> Red, got %d", idx)
	}
	// Near-black quantizes to Black.
	if idx := Quantize(0x10, 0x10, 0x10); idx != Black {
		t.Errorf("Expected 101010 -> Black, got %d", idx)
	}
}

func TestQuantizeExactEntries(t *testing.T) {
	for i := 0; i < Size; i++ {
		r, g, b := RGB(Index(i))
		if got := Quantize(r, g, b); got != Index(i) {
			t.Errorf("Expected palette entry %d to quantize to itself, got %d", i, got)
		}
	}
}

func TestQuantizeFixedPoint(t *testing.T) {
	// quantize(toRGB(quantize(c))) == quantize(c) for arbitrary colors.
	colors := [][3]uint8{
		{0x12, 0x34, 0x56},
		{0xFE, 0x01, 0x80},
		{0x77, 0x77, 0x77},
		{0x00, 0xFF, 0x00},
	}
	for _, c := range colors {
		first := Quantize(c[0], c[1], c[2])
		r, g, b := RGB(first)
		second := Quantize(r, g, b)
		if first != second {
			t.Errorf("Quantize not a fixed point for %v: %d then %d", c, first, second)
		}
	}
}

func TestColorAlpha(t *testing.T) {
	c := Color(Blue)
	if c.A != 0xFF {
		t.Errorf("Expected opaque palette color, got alpha %d", c.A)
	}
}
