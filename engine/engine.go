// Package engine provides the frame manager: it owns the pixel buffers,
// drives a full scene render from descriptor to presentable frame, caches
// composited results per location, and exposes the read-only query API that
// movement and interaction logic build on.
package engine

import (
	"github.com/ferndale-games/picaro/palette"
	"github.com/ferndale-games/picaro/pic"
	"github.com/ferndale-games/picaro/scene"
)

// State is the frame manager lifecycle state.
type State int

// Lifecycle states. A render drives Idle -> Rendering -> Ready; Clear
// returns to Idle.
const (
	StateIdle State = iota
	StateRendering
	StateReady
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRendering:
		return "rendering"
	case StateReady:
		return "ready"
	}
	return "unknown"
}

// snapshot is a frozen copy of a composited scene's planes, stored in the
// cache as an immutable value. Sprites are per-frame and never cached.
type snapshot struct {
	visual   []uint8
	priority []uint8
	control  []uint8
}

// Engine is the frame manager. It is single-threaded and synchronous:
// RenderScene completes fully before returning and nothing outside the
// engine mutates the buffers. The host must not invoke renders concurrently.
type Engine struct {
	buf   *pic.Buffer
	state State
	cache map[string]*snapshot

	// rasterized counts full (non-cached) scene rasterizations, used to
	// verify cache hits skip rasterization.
	rasterized int
}

// New creates an engine with freshly allocated buffers in the Idle state.
func New() *Engine {
	return &Engine{
		buf:   pic.NewBuffer(),
		state: StateIdle,
		cache: make(map[string]*snapshot),
	}
}

// State returns the current lifecycle state.
func (e *Engine) State() State {
	return e.state
}

// Clear zeroes all buffers and returns the engine to Idle. The scene cache
// is kept; use Invalidate to drop stale entries.
func (e *Engine) Clear() {
	e.buf.Clear(palette.Black)
	e.state = StateIdle
}

// RenderScene composites one location: clear, background, primitives in
// descriptor order, control zones, then sprites. When sceneID has a cached
// snapshot the static planes are restored from it instead of re-rasterizing
// and only the sprites are composited on top. The engine is Ready when
// RenderScene returns.
//
// Cached inputs are treated as immutable: call Invalidate when a location's
// source primitives change.
func (e *Engine) RenderScene(sceneID string, sc *scene.Scene, sprites []pic.Sprite) {
	e.state = StateRendering

	if snap, ok := e.cache[sceneID]; ok {
		pic.Logger().Debug("scene cache hit", "scene", sceneID)
		e.restore(snap)
	} else {
		e.rasterize(sc)
		e.rasterized++
		if sceneID != "" {
			e.cache[sceneID] = e.freeze()
		}
	}

	e.buf.CompositeSprites(sprites)
	e.state = StateReady
}

// rasterize runs the full static pass for a scene descriptor.
func (e *Engine) rasterize(sc *scene.Scene) {
	e.buf.Clear(sc.BackgroundColor())
	for i := range sc.Primitives {
		p, err := sc.Primitives[i].Resolve()
		if err != nil {
			pic.Logger().Warn("skipping primitive", "index", i, "err", err)
			continue
		}
		e.buf.Draw(p)
	}
	for i := range sc.ControlZones {
		z, err := sc.ControlZones[i].Resolve()
		if err != nil {
			pic.Logger().Warn("skipping control zone", "index", i, "err", err)
			continue
		}
		e.buf.StampZone(z)
	}
}

// freeze copies the current planes into an immutable snapshot.
func (e *Engine) freeze() *snapshot {
	s := &snapshot{
		visual:   make([]uint8, len(e.buf.Visual)),
		priority: make([]uint8, len(e.buf.Priority)),
		control:  make([]uint8, len(e.buf.Control)),
	}
	copy(s.visual, e.buf.Visual)
	copy(s.priority, e.buf.Priority)
	copy(s.control, e.buf.Control)
	return s
}

// restore copies a snapshot back into the working planes.
func (e *Engine) restore(s *snapshot) {
	copy(e.buf.Visual, s.visual)
	copy(e.buf.Priority, s.priority)
	copy(e.buf.Control, s.control)
}

// Invalidate drops the cached snapshot for a location, forcing the next
// RenderScene for it to re-rasterize.
func (e *Engine) Invalidate(sceneID string) {
	delete(e.cache, sceneID)
}

// Visual returns a copy of the presentable RGBA frame at 320x200. The copy
// keeps callers from aliasing the engine's mutable plane.
func (e *Engine) Visual() []uint8 {
	out := make([]uint8, len(e.buf.Visual))
	copy(out, e.buf.Visual)
	return out
}

// PixelPriority returns the depth rank at (x, y); 0 out of bounds.
func (e *Engine) PixelPriority(x, y int) int {
	return int(e.buf.PriorityAt(x, y))
}

// IsWalkable reports whether movement logic may occupy (x, y).
func (e *Engine) IsWalkable(x, y int) bool {
	return e.buf.IsWalkable(x, y)
}

// ControlAt returns the raw control code at (x, y), or
// pic.ControlOutOfBounds outside the canvas.
func (e *Engine) ControlAt(x, y int) int {
	return e.buf.ControlAt(x, y)
}

// PriorityAtY returns the default priority band for screen row y.
func (e *Engine) PriorityAtY(y int) int {
	return int(pic.PriorityAtY(y))
}
