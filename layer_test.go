package ink

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewLayer_DefaultsToVisibleAndFullyOpaque(t *testing.T) {
	l := NewLayer("Sketch")
	assert.Equal(t, "Sketch", l.Name)
	assert.True(t, l.Visible)
	assert.Equal(t, float32(1), l.Opacity)
}

func TestLayer_RemoveStrokeByID(t *testing.T) {
	s1, s2 := Stroke{ID: uuid.New()}, Stroke{ID: uuid.New()}
	l := Layer{Strokes: []Stroke{s1, s2}}

	assert.True(t, l.removeStrokeByID(s1.ID))
	assert.Equal(t, []Stroke{s2}, l.Strokes)
	assert.False(t, l.removeStrokeByID(s1.ID))
}

func TestNewLayerManager_SeedsSingleDefaultLayer(t *testing.T) {
	m := NewLayerManager()
	assert.Len(t, m.Layers, 1)
	assert.Equal(t, "Layer 1", m.Layers[0].Name)
	assert.Equal(t, 0, m.ActiveIndex)
}

func TestLayerManager_ActiveLayerPanicsOnOutOfRangeIndex(t *testing.T) {
	m := &LayerManager{ActiveIndex: 5}
	assert.Panics(t, func() { m.ActiveLayer() })
}

func TestLayerManager_AllVisibleStrokesSkipsHiddenLayersButKeepsOrder(t *testing.T) {
	s1, s2, s3 := Stroke{ID: uuid.New()}, Stroke{ID: uuid.New()}, Stroke{ID: uuid.New()}
	m := &LayerManager{Layers: []Layer{
		{Visible: true, Strokes: []Stroke{s1}},
		{Visible: false, Strokes: []Stroke{s2}},
		{Visible: true, Strokes: []Stroke{s3}},
	}}

	assert.Equal(t, []Stroke{s1, s3}, m.AllVisibleStrokes())
}

func TestLayerManager_RestoreFromDocument_FallsBackToDefaultWhenEmpty(t *testing.T) {
	m := NewLayerManager()
	m.ActiveIndex = 0
	m.restoreFromDocument(nil)

	assert.Len(t, m.Layers, 1)
	assert.Equal(t, "Layer 1", m.Layers[0].Name)
	assert.Equal(t, 0, m.ActiveIndex)
}

func TestLayerManager_RestoreFromDocument_ReplacesLayersWholesale(t *testing.T) {
	m := NewLayerManager()
	restored := []Layer{NewLayer("A"), NewLayer("B")}
	m.restoreFromDocument(restored)

	assert.Equal(t, restored, m.Layers)
	assert.Equal(t, 0, m.ActiveIndex)
}
