package ink

import "github.com/google/uuid"

// Layer holds an ordered sequence of strokes. Stroke order is paint order:
// the first stroke in Strokes is painted first (furthest back).
type Layer struct {
	ID      uuid.UUID
	Name    string
	Visible bool
	Opacity float32
	Strokes []Stroke
}

// NewLayer returns a freshly named, visible, fully opaque layer.
func NewLayer(name string) Layer {
	return Layer{
		ID:      uuid.New(),
		Name:    name,
		Visible: true,
		Opacity: 1,
	}
}

// removeStrokeByID removes the first stroke in l whose ID matches id. It
// reports whether a stroke was removed.
func (l *Layer) removeStrokeByID(id uuid.UUID) bool {
	for i, s := range l.Strokes {
		if s.ID == id {
			l.Strokes = append(l.Strokes[:i], l.Strokes[i+1:]...)
			return true
		}
	}
	return false
}

// LayerManager owns an ordered, never-empty list of layers and tracks which
// one is active.
type LayerManager struct {
	Layers      []Layer
	ActiveIndex int
}

// NewLayerManager returns a manager seeded with a single default layer,
// "Layer 1", active.
func NewLayerManager() *LayerManager {
	return &LayerManager{
		Layers:      []Layer{NewLayer("Layer 1")},
		ActiveIndex: 0,
	}
}

// ActiveLayer returns a pointer to the currently active layer. It panics if
// ActiveIndex is out of range, which the manager's own mutators never allow
// to happen — a missing active layer is a structural invariant violation,
// not a recoverable error.
func (m *LayerManager) ActiveLayer() *Layer {
	if m.ActiveIndex < 0 || m.ActiveIndex >= len(m.Layers) {
		panic("ink: active_layer_index out of range")
	}
	return &m.Layers[m.ActiveIndex]
}

// AllVisibleStrokes returns the strokes of every visible layer, in paint
// order: layer order first, then each layer's own stroke order.
func (m *LayerManager) AllVisibleStrokes() []Stroke {
	var out []Stroke
	for _, l := range m.Layers {
		if !l.Visible {
			continue
		}
		out = append(out, l.Strokes...)
	}
	return out
}

// restoreFromDocument replaces the manager's layers wholesale, falling back
// to a single fresh default layer if layers is empty.
func (m *LayerManager) restoreFromDocument(layers []Layer) {
	if len(layers) == 0 {
		m.Layers = []Layer{NewLayer("Layer 1")}
	} else {
		m.Layers = layers
	}
	m.ActiveIndex = 0
}
