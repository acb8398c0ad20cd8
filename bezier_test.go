package ink

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluate_Endpoints(t *testing.T) {
	seg := BezierSegment{
		P0: Point{X: 0, Y: 0}, P1: Point{X: 1, Y: 3},
		P2: Point{X: 4, Y: 3}, P3: Point{X: 5, Y: 0},
	}
	assert.InDelta(t, seg.P0.X, Evaluate(seg, 0).X, 1e-9)
	assert.InDelta(t, seg.P0.Y, Evaluate(seg, 0).Y, 1e-9)
	assert.InDelta(t, seg.P3.X, Evaluate(seg, 1).X, 1e-9)
	assert.InDelta(t, seg.P3.Y, Evaluate(seg, 1).Y, 1e-9)
}

func TestWidthAt_LinearInterpolation(t *testing.T) {
	seg := BezierSegment{StartWidth: 2, EndWidth: 10}
	assert.InDelta(t, 2.0, WidthAt(seg, 0), 1e-9)
	assert.InDelta(t, 10.0, WidthAt(seg, 1), 1e-9)
	assert.InDelta(t, 6.0, WidthAt(seg, 0.5), 1e-9)
}

func TestLinearSegment_DegeneratesToAStraightLine(t *testing.T) {
	p0 := Point{X: 0, Y: 0}
	p1 := Point{X: 9, Y: 0}
	seg := linearSegment(p0, p1, 1, 3)

	mid := Evaluate(seg, 0.5)
	assert.InDelta(t, 4.5, mid.X, 1e-9)
	assert.InDelta(t, 0.0, mid.Y, 1e-9)
	assert.InDelta(t, 2.0, WidthAt(seg, 0.5), 1e-9)
}

func TestCatmullRomToBezier_EndpointsMatchTheCenterControlPoints(t *testing.T) {
	p0 := Point{X: 0, Y: 0}
	p1 := Point{X: 10, Y: 0}
	p2 := Point{X: 20, Y: 10}
	p3 := Point{X: 30, Y: 10}

	seg := CatmullRomToBezier(p0, p1, p2, p3, 0.5)
	assert.Equal(t, p1, seg.P0)
	assert.Equal(t, p2, seg.P3)
}

func TestCatmullRomToBezier_HandlesCoincidentNeighbors(t *testing.T) {
	p0 := Point{X: 5, Y: 5}
	p1 := Point{X: 5, Y: 5}
	p2 := Point{X: 10, Y: 5}
	p3 := Point{X: 15, Y: 5}

	assert.NotPanics(t, func() {
		seg := CatmullRomToBezier(p0, p1, p2, p3, 0.5)
		assert.True(t, seg.P0.IsFinite())
		assert.True(t, seg.P1.IsFinite())
		assert.True(t, seg.P2.IsFinite())
		assert.True(t, seg.P3.IsFinite())
	})
}

func TestSmooth_LeavesEndpointsUntouched(t *testing.T) {
	pts := []Point{{X: 0, Y: 0}, {X: 5, Y: 10}, {X: 10, Y: 0}}
	out := Smooth(pts, 0.5)

	assert.Equal(t, pts[0], out[0])
	assert.Equal(t, pts[len(pts)-1], out[len(out)-1])
	assert.NotEqual(t, pts[1], out[1])
}

func TestSmooth_NoOpBelowThreeSamples(t *testing.T) {
	pts := []Point{{X: 0, Y: 0}, {X: 1, Y: 1}}
	out := Smooth(pts, 0.9)
	assert.Equal(t, pts, out)
}

func TestVelocity_ZeroOnNegligibleTimeDelta(t *testing.T) {
	v := Velocity(Point{X: 0, Y: 0}, 1.0, Point{X: 10, Y: 0}, 1.0)
	assert.Equal(t, 0.0, v)
}

func TestVelocity_DistanceOverTime(t *testing.T) {
	v := Velocity(Point{X: 0, Y: 0}, 0, Point{X: 10, Y: 0}, 2)
	assert.InDelta(t, 5.0, v, 1e-9)
}
