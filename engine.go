package ink

import (
	"math"

	"github.com/google/uuid"
)

// Engine is the outer façade composing the stroke pipeline: it owns a
// viewport, a layer manager, a history, the current brush and, while a
// stroke is in flight, a Builder. Every method is synchronous and
// non-blocking; the engine makes no atomicity promises across method
// calls, so a host calling it from more than one goroutine must guard it
// with its own sync.RWMutex — a reader suffices for FullRender/Save/State,
// a writer is required for every mutating method.
type Engine struct {
	Width, Height float64
	Background    Color

	viewport Viewport
	layers   *LayerManager
	history  *History
	brush    Brush
	builder  *Builder
}

// NewEngine returns a new engine over a canvas of the given size, with a
// default pen brush, a fresh single-layer document and empty history.
func NewEngine(width, height float64) *Engine {
	return &Engine{
		Width:      width,
		Height:     height,
		Background: White,
		viewport:   NewViewport(),
		layers:     NewLayerManager(),
		history:    NewHistory(),
		brush:      PenBrush(),
	}
}

// SetBrush installs the brush used by the next BeginStroke. Changing the
// brush while a stroke is in flight is undefined behavior; the
// engine does not guard against it.
func (e *Engine) SetBrush(b Brush) {
	e.brush = b
}

// Brush returns the currently installed brush.
func (e *Engine) Brush() Brush {
	return e.brush
}

// sanitizeSample clamps pressure to [0,1] and rejects non-finite input by
// returning ok=false; the core builder/geometry code never has to deal with
// NaN or infinite values.
func sanitizeSample(x, y, pressure, timestamp float64) (StrokePoint, bool) {
	if math.IsNaN(x) || math.IsInf(x, 0) || math.IsNaN(y) || math.IsInf(y, 0) {
		return StrokePoint{}, false
	}
	if math.IsNaN(timestamp) || math.IsInf(timestamp, 0) {
		return StrokePoint{}, false
	}
	p := StrokePoint{
		Position:  Point{X: x, Y: y},
		Pressure:  clampPressure(pressure),
		Timestamp: timestamp,
	}
	return p, true
}

func clampPressure(p float64) float64 {
	if math.IsNaN(p) {
		return 0
	}
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// BeginStroke starts a new stroke at the given screen-space sample. A
// second BeginStroke without a matching EndStroke silently discards the
// abandoned in-flight builder, matching the library's generally permissive
// posture elsewhere.
// It always returns an empty command list.
func (e *Engine) BeginStroke(sx, sy, pressure, timestamp float64) []RenderCommand {
	sample, ok := sanitizeSample(sx, sy, pressure, timestamp)
	if !ok {
		return nil
	}
	sample.Position = e.viewport.ScreenToCanvas(sample.Position)
	e.builder = NewBuilder(sample, e.brush)
	return nil
}

// AddPoint ingests the next sample of the in-flight stroke and returns the
// incremental render commands for the segment(s) it produced. Eraser
// strokes never paint, so they always return an empty command list; the
// actual erasure happens at EndStroke. If no stroke is in flight, AddPoint
// is a no-op.
func (e *Engine) AddPoint(sx, sy, pressure, timestamp float64) []RenderCommand {
	if e.builder == nil {
		return nil
	}
	sample, ok := sanitizeSample(sx, sy, pressure, timestamp)
	if !ok {
		return nil
	}
	sample.Position = e.viewport.ScreenToCanvas(sample.Position)
	segs := e.builder.AddPoint(sample)

	if e.brush.Type == BrushEraser {
		return nil
	}
	return Incremental(segs, e.brush.Color, false)
}

// EndStroke finalizes the in-flight stroke. Pen/highlighter strokes with at
// least one segment are appended to the active layer and pushed onto
// history as an AddStroke action. Eraser strokes are never stored; instead,
// every sample along the eraser path is hit-tested against the active
// layer's strokes, the union of hit strokes (deduplicated,
// first-hit order) is removed, and one RemoveStroke action is pushed per
// removed stroke. Either way, it returns a full re-render. If no stroke is
// in flight, EndStroke still returns a full render of the current scene.
func (e *Engine) EndStroke() []RenderCommand {
	b := e.builder
	e.builder = nil
	if b == nil {
		return e.FullRender()
	}

	stroke := b.Finish()

	if stroke.IsEraser {
		e.applyEraser(b)
	} else if len(stroke.Segments) > 0 {
		layer := e.layers.ActiveLayer()
		layer.Strokes = append(layer.Strokes, stroke)
		e.history.Push(HistoryAction{
			Kind:       ActionAddStroke,
			LayerIndex: e.layers.ActiveIndex,
			Stroke:     stroke.Clone(),
		})
	}

	return e.FullRender()
}

// applyEraser hit-tests every sample of an erasing builder against the
// active layer and removes every stroke that was touched.
func (e *Engine) applyEraser(b *Builder) {
	layerIdx := e.layers.ActiveIndex
	layer := e.layers.ActiveLayer()

	var hits []uuid.UUID
	for i, sample := range b.Points() {
		radius := b.EraserRadiusAt(i)
		hits = append(hits, FindStrokesToErase(layer.Strokes, sample.Position, radius)...)
	}
	hits = dedupeUUIDs(hits)

	for _, id := range hits {
		for _, s := range layer.Strokes {
			if s.ID == id {
				e.history.Push(HistoryAction{
					Kind:       ActionRemoveStroke,
					LayerIndex: layerIdx,
					Stroke:     s.Clone(),
				})
				break
			}
		}
		layer.removeStrokeByID(id)
	}
}

// applyAction mutates the document to reflect action.
func (e *Engine) applyAction(action HistoryAction) {
	layer := &e.layers.Layers[action.LayerIndex]
	switch action.Kind {
	case ActionAddStroke:
		layer.Strokes = append(layer.Strokes, action.Stroke.Clone())
	case ActionRemoveStroke:
		layer.removeStrokeByID(action.Stroke.ID)
	}
}

// Undo pops the most recent history entry, applies its inverse, and returns
// a full re-render. If there's nothing to undo, it still returns a full
// render of the unchanged scene.
func (e *Engine) Undo() []RenderCommand {
	if action, ok := e.history.Undo(); ok {
		e.applyAction(action)
	}
	return e.FullRender()
}

// Redo reapplies the most recently undone entry and returns a full
// re-render. If there's nothing to redo, it still returns a full render of
// the unchanged scene.
func (e *Engine) Redo() []RenderCommand {
	if action, ok := e.history.Redo(); ok {
		e.applyAction(action)
	}
	return e.FullRender()
}

// Zoom multiplies the viewport scale by factor around the given screen-space
// focal point and returns a full re-render.
func (e *Engine) Zoom(factor, focalX, focalY float64) []RenderCommand {
	e.viewport = e.viewport.Zoom(factor, Point{X: focalX, Y: focalY})
	return e.FullRender()
}

// Pan translates the viewport and returns a full re-render.
func (e *Engine) Pan(dx, dy float64) []RenderCommand {
	e.viewport = e.viewport.Pan(dx, dy)
	return e.FullRender()
}

// ResetViewport restores the identity transform and returns a full
// re-render.
func (e *Engine) ResetViewport() []RenderCommand {
	e.viewport = e.viewport.Reset()
	return e.FullRender()
}

// FullRender renders the complete current scene.
func (e *Engine) FullRender() []RenderCommand {
	strokes := e.layers.AllVisibleStrokes()
	return FullRender(strokes, e.Background, e.viewport.Scale, e.viewport.OffsetX, e.viewport.OffsetY)
}

// State summarizes the engine's current status for a host's UI chrome.
type State struct {
	StrokeCount   int
	CanUndo       bool
	CanRedo       bool
	Scale         float64
	OffsetX       float64
	OffsetY       float64
	ActiveLayerID uuid.UUID
	LayerCount    int
	HistorySize   int
}

// State returns a snapshot of the engine's status.
func (e *Engine) State() State {
	count := 0
	for _, l := range e.layers.Layers {
		count += len(l.Strokes)
	}
	return State{
		StrokeCount:   count,
		CanUndo:       e.history.CanUndo(),
		CanRedo:       e.history.CanRedo(),
		Scale:         e.viewport.Scale,
		OffsetX:       e.viewport.OffsetX,
		OffsetY:       e.viewport.OffsetY,
		ActiveLayerID: e.layers.ActiveLayer().ID,
		LayerCount:    len(e.layers.Layers),
		HistorySize:   e.history.Size(),
	}
}

// Viewport returns a copy of the engine's current viewport.
func (e *Engine) Viewport() Viewport {
	return e.viewport
}

// Layers returns the engine's layer manager, giving a host direct access to
// the layer list and active index it needs to drive a layers panel.
func (e *Engine) Layers() *LayerManager {
	return e.layers
}

// SetHistoryLimit rebounds the engine's undo/redo depth to maxSize,
// evicting the oldest entries if the existing history already exceeds it.
func (e *Engine) SetHistoryLimit(maxSize int) {
	e.history.MaxSize = maxSize
	if maxSize > 0 && len(e.history.undo) > maxSize {
		e.history.undo = e.history.undo[len(e.history.undo)-maxSize:]
	}
}
