package pic

import (
	"testing"

	"github.com/ferndale-games/picaro/palette"
)

func TestWalkableByDefault(t *testing.T) {
	b := NewBuffer()
	b.Clear(palette.Black)
	for _, p := range [][2]int{{0, 0}, {160, 100}, {319, 199}, {10, 10}} {
		if !b.IsWalkable(p[0], p[1]) {
			t.Errorf("Expected (%d, %d) walkable after clear", p[0], p[1])
		}
	}
}

func TestStampRectZone(t *testing.T) {
	b := NewBuffer()
	b.Clear(palette.Black)
	b.StampZone(Zone{Code: ZoneBlocked, X: 100, Y: 100, W: 50, H: 50})

	if b.IsWalkable(120, 120) {
		t.Errorf("Expected (120, 120) blocked")
	}
	if !b.IsWalkable(10, 10) {
		t.Errorf("Expected (10, 10) walkable")
	}
	// Zone edges are inclusive of origin, exclusive of origin+size.
	if b.IsWalkable(100, 100) {
		t.Errorf("Expected zone origin blocked")
	}
	if !b.IsWalkable(150, 150) {
		t.Errorf("Expected pixel past zone extent walkable")
	}
}

func TestStampPolygonZone(t *testing.T) {
	b := NewBuffer()
	b.Clear(palette.Black)
	b.StampZone(Zone{Code: ZoneWater, Points: []Point{
		{0, 180}, {320, 180}, {320, 200}, {0, 200},
	}})
	if got := b.ControlAt(160, 190); got != int(ZoneWater) {
		t.Errorf("Expected water (%d) at (160, 190), got %d", ZoneWater, got)
	}
	if got := b.ControlAt(160, 100); got != int(ZoneWalkable) {
		t.Errorf("Expected walkable above the water, got %d", got)
	}
}

func TestLastZoneWins(t *testing.T) {
	// Control stamping has no depth ordering: later stamps overwrite.
	b := NewBuffer()
	b.Clear(palette.Black)
	b.StampZone(Zone{Code: ZoneBlocked, X: 0, Y: 0, W: 50, H: 50})
	b.StampZone(Zone{Code: ZoneTrigger, X: 0, Y: 0, W: 50, H: 50})
	if got := b.ControlAt(25, 25); got != int(ZoneTrigger) {
		t.Errorf("Expected last stamp to win, got code %d", got)
	}
}

func TestZoneDoesNotTouchVisual(t *testing.T) {
	b := NewBuffer()
	b.Clear(palette.Black)
	before := make([]uint8, len(b.Visual))
	copy(before, b.Visual)
	prio := make([]uint8, len(b.Priority))
	copy(prio, b.Priority)

	b.StampZone(Zone{Code: ZoneBlocked, X: 10, Y: 10, W: 100, H: 100})

	for i := range b.Visual {
		if b.Visual[i] != before[i] {
			t.Fatalf("zone stamp touched visual plane at byte %d", i)
		}
	}
	for i := range b.Priority {
		if b.Priority[i] != prio[i] {
			t.Fatalf("zone stamp touched priority plane at pixel %d", i)
		}
	}
}

func TestControlQueriesOutOfBounds(t *testing.T) {
	b := NewBuffer()
	b.Clear(palette.Black)
	if got := b.ControlAt(-1, 50); got != ControlOutOfBounds {
		t.Errorf("Expected sentinel for out-of-bounds, got %d", got)
	}
	if b.IsWalkable(320, 0) {
		t.Errorf("Expected out-of-bounds not walkable")
	}
}

func TestDegenerateZoneIsNoOp(t *testing.T) {
	b := NewBuffer()
	b.Clear(palette.Black)
	b.StampZone(Zone{Code: ZoneBlocked, X: 10, Y: 10, W: 0, H: 50})
	b.StampZone(Zone{Code: ZoneBlocked, Points: []Point{{1, 1}, {2, 2}}})
	for i, v := range b.Control {
		if v != 0 {
			t.Fatalf("degenerate zone wrote control at pixel %d", i)
		}
	}
}
