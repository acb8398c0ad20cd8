package ink

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestViewport_ScreenCanvasRoundTrip(t *testing.T) {
	v := Viewport{Scale: 2.5, OffsetX: 10, OffsetY: -5, MinScale: 0.1, MaxScale: 10}
	p := Point{X: 123.4, Y: -56.7}

	roundTripped := v.CanvasToScreen(v.ScreenToCanvas(p))
	assert.InDelta(t, p.X, roundTripped.X, 1e-9)
	assert.InDelta(t, p.Y, roundTripped.Y, 1e-9)
}

func TestViewport_Zoom_ClampsToBounds(t *testing.T) {
	v := NewViewport()
	v = v.Zoom(1000, Point{X: 0, Y: 0})
	assert.Equal(t, v.MaxScale, v.Scale)

	v = v.Zoom(0.00001, Point{X: 0, Y: 0})
	assert.Equal(t, v.MinScale, v.Scale)
}

func TestViewport_Zoom_PreservesFocalPoint(t *testing.T) {
	v := NewViewport()
	focal := Point{X: 960, Y: 540}

	before := v.ScreenToCanvas(focal)
	v = v.Zoom(2.0, focal)
	after := v.CanvasToScreen(before)

	assert.InDelta(t, focal.X, after.X, 1e-9)
	assert.InDelta(t, focal.Y, after.Y, 1e-9)
	assert.InDelta(t, 2.0, v.Scale, 1e-9)
}

func TestViewport_Pan(t *testing.T) {
	v := NewViewport()
	v = v.Pan(5, -3)
	assert.Equal(t, 5.0, v.OffsetX)
	assert.Equal(t, -3.0, v.OffsetY)
}

func TestViewport_Reset(t *testing.T) {
	v := NewViewport()
	v = v.Zoom(3, Point{X: 10, Y: 10}).Pan(100, 100)
	v = v.Reset()

	assert.Equal(t, 1.0, v.Scale)
	assert.Equal(t, 0.0, v.OffsetX)
	assert.Equal(t, 0.0, v.OffsetY)
}
