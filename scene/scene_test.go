package scene

import (
	"testing"

	"github.com/ferndale-games/picaro/palette"
	"github.com/ferndale-games/picaro/pic"
)

func TestParseFullScene(t *testing.T) {
	jsonData := `{
		"background": "#000000",
		"primitives": [
			{"type": "rect", "color": "#00AA00", "priority": 5, "x": 0, "y": 100, "w": 320, "h": 100},
			{"type": "circle", "color": "red", "cx": 160, "cy": 150, "r": 20},
			{"type": "polygon", "color": 4, "points": [[10,10],[50,10],[30,40]]},
			{"type": "line", "x1": 0, "y1": 0, "x2": 100, "y2": 50, "width": 2},
			{"type": "star", "cx": 60, "cy": 30, "outer": 20, "points_n": 5},
			{"type": "path", "points": [[0,0],[10,5],[20,0]]}
		],
		"control_zones": [
			{"type": "blocked", "rect": [100, 100, 50, 50]},
			{"type": "water", "polygon": [[0,180],[320,180],[320,200],[0,200]]}
		]
	}`

	s, err := Parse([]byte(jsonData))
	if err != nil {
		t.Fatalf("Failed to parse scene: %v", err)
	}
	if len(s.Primitives) != 6 {
		t.Fatalf("Expected 6 primitives, got %d", len(s.Primitives))
	}
	if len(s.ControlZones) != 2 {
		t.Fatalf("Expected 2 control zones, got %d", len(s.ControlZones))
	}
	if s.BackgroundColor() != palette.Black {
		t.Errorf("Expected black background, got %d", s.BackgroundColor())
	}

	rect, err := s.Primitives[0].Resolve()
	if err != nil {
		t.Fatalf("Failed to resolve rect: %v", err)
	}
	if rect.Kind != pic.KindRect {
		t.Errorf("Expected rect kind, got %v", rect.Kind)
	}
	if rect.Color != palette.Green {
		t.Errorf("Expected green rect, got %d", rect.Color)
	}
	if rect.Priority != 5 {
		t.Errorf("Expected priority 5, got %d", rect.Priority)
	}
	if !rect.Filled {
		t.Errorf("Expected rect to default to filled")
	}

	circle, err := s.Primitives[1].Resolve()
	if err != nil {
		t.Fatalf("Failed to resolve circle: %v", err)
	}
	if circle.Priority != -1 {
		t.Errorf("Expected omitted priority to resolve to -1, got %d", circle.Priority)
	}
	if circle.Color != palette.Red {
		t.Errorf("Expected named color red, got %d", circle.Color)
	}

	poly, err := s.Primitives[2].Resolve()
	if err != nil {
		t.Fatalf("Failed to resolve polygon: %v", err)
	}
	if poly.Color != palette.Red {
		t.Errorf("Expected numeric color index 4 (red), got %d", poly.Color)
	}
	if len(poly.Points) != 3 {
		t.Errorf("Expected 3 polygon points, got %d", len(poly.Points))
	}

	line, err := s.Primitives[3].Resolve()
	if err != nil {
		t.Fatalf("Failed to resolve line: %v", err)
	}
	if line.Filled {
		t.Errorf("Expected lines to be strokes")
	}
	if line.Width != 2 {
		t.Errorf("Expected line width 2, got %d", line.Width)
	}

	path, err := s.Primitives[5].Resolve()
	if err != nil {
		t.Fatalf("Failed to resolve path: %v", err)
	}
	if path.Filled {
		t.Errorf("Expected paths to default to stroked")
	}
}

func TestResolveMissingGeometry(t *testing.T) {
	defs := []PrimitiveDef{
		{Type: "rect"},
		{Type: "circle"},
		{Type: "line"},
		{Type: "polygon", Points: [][]float64{{1, 2}}},
		{Type: "star"},
	}
	for _, d := range defs {
		if _, err := d.Resolve(); err == nil {
			t.Errorf("Expected %q with missing geometry to fail", d.Type)
		}
	}
}

func TestResolveUnknownType(t *testing.T) {
	d := PrimitiveDef{Type: "hexagon"}
	if _, err := d.Resolve(); err == nil {
		t.Errorf("Expected unknown primitive type to fail")
	}
}

func TestZoneResolve(t *testing.T) {
	z := ZoneDef{Type: "blocked", Rect: []float64{100, 100, 50, 50}}
	zone, err := z.Resolve()
	if err != nil {
		t.Fatalf("Failed to resolve zone: %v", err)
	}
	if zone.Code != pic.ZoneBlocked {
		t.Errorf("Expected blocked code, got %d", zone.Code)
	}

	bad := ZoneDef{Type: "lava", Rect: []float64{0, 0, 10, 10}}
	if _, err := bad.Resolve(); err == nil {
		t.Errorf("Expected unknown zone type to fail")
	}

	empty := ZoneDef{Type: "water"}
	if _, err := empty.Resolve(); err == nil {
		t.Errorf("Expected zone without a region to fail")
	}
}

func TestMalformedColorFallsBack(t *testing.T) {
	d := PrimitiveDef{Type: "rect", Color: []byte(`"notacolor"`),
		X: fp(0), Y: fp(0), W: fp(10), H: fp(10)}
	p, err := d.Resolve()
	if err != nil {
		t.Fatalf("Failed to resolve rect: %v", err)
	}
	if p.Color != palette.White {
		t.Errorf("Expected unknown color to fall back to white, got %d", p.Color)
	}
}

func TestParseBadJSON(t *testing.T) {
	if _, err := Parse([]byte(`{"primitives": [`)); err == nil {
		t.Errorf("Expected truncated JSON to fail")
	}
}

func fp(v float64) *float64 { return &v }
