package ink

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoint_AddSubScale(t *testing.T) {
	p := Point{X: 1, Y: 2}
	q := Point{X: 3, Y: 4}

	assert.Equal(t, Point{X: 4, Y: 6}, p.Add(q))
	assert.Equal(t, Point{X: -2, Y: -2}, p.Sub(q))
	assert.Equal(t, Point{X: 2, Y: 4}, p.Scale(2))
}

func TestPoint_Dist(t *testing.T) {
	p := Point{X: 0, Y: 0}
	q := Point{X: 3, Y: 4}
	assert.InDelta(t, 5.0, p.Dist(q), 1e-9)
}

func TestPoint_Lerp(t *testing.T) {
	p := Point{X: 0, Y: 0}
	q := Point{X: 10, Y: 20}
	assert.Equal(t, Point{X: 0, Y: 0}, p.Lerp(q, 0))
	assert.Equal(t, Point{X: 10, Y: 20}, p.Lerp(q, 1))
	assert.Equal(t, Point{X: 5, Y: 10}, p.Lerp(q, 0.5))
}

func TestPoint_IsFinite(t *testing.T) {
	assert.True(t, Point{X: 1, Y: 2}.IsFinite())
	assert.False(t, Point{X: math.NaN(), Y: 2}.IsFinite())
	assert.False(t, Point{X: math.Inf(1), Y: 2}.IsFinite())
}

func TestClampColor(t *testing.T) {
	c := ClampColor(Color{R: -1, G: 0.5, B: 2, A: 1.5})
	assert.Equal(t, Color{R: 0, G: 0.5, B: 1, A: 1}, c)
}

func TestColor_WithAlpha(t *testing.T) {
	c := Black.WithAlpha(0.3)
	assert.Equal(t, float32(0.3), c.A)
	assert.Equal(t, float32(0), c.R)
}

func TestEmptyBoundingBox_IsInvalid(t *testing.T) {
	assert.False(t, EmptyBoundingBox().IsValid())
}

func TestBoundingBox_ExpandPointAndUnion(t *testing.T) {
	b := EmptyBoundingBox().ExpandPoint(Point{X: 1, Y: 1}).ExpandPoint(Point{X: -1, Y: 3})
	assert.Equal(t, BoundingBox{MinX: -1, MinY: 1, MaxX: 1, MaxY: 3}, b)

	other := BoundingBox{MinX: 5, MinY: 5, MaxX: 6, MaxY: 6}
	union := b.Union(other)
	assert.Equal(t, BoundingBox{MinX: -1, MinY: 1, MaxX: 6, MaxY: 6}, union)
}

func TestBoundingBox_UnionWithInvalidOperandReturnsOther(t *testing.T) {
	valid := BoundingBox{MinX: 0, MinY: 0, MaxX: 1, MaxY: 1}
	invalid := EmptyBoundingBox()

	assert.Equal(t, valid, invalid.Union(valid))
	assert.Equal(t, valid, valid.Union(invalid))
}

func TestBoundingBox_Inflate(t *testing.T) {
	b := BoundingBox{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}
	inflated := b.Inflate(2)
	assert.Equal(t, BoundingBox{MinX: -2, MinY: -2, MaxX: 12, MaxY: 12}, inflated)
}

func TestBoundingBox_IntersectsAndContains(t *testing.T) {
	a := BoundingBox{MinX: 0, MinY: 0, MaxX: 10, MaxY: 10}
	b := BoundingBox{MinX: 5, MinY: 5, MaxX: 15, MaxY: 15}
	c := BoundingBox{MinX: 20, MinY: 20, MaxX: 30, MaxY: 30}

	assert.True(t, a.Intersects(b))
	assert.False(t, a.Intersects(c))
	assert.True(t, a.Contains(Point{X: 5, Y: 5}))
	assert.False(t, a.Contains(Point{X: 20, Y: 20}))
}

func TestStrokePoint_IsValid(t *testing.T) {
	valid := StrokePoint{Position: Point{X: 1, Y: 1}, Pressure: 0.5, Timestamp: 1.0}
	assert.True(t, valid.IsValid())

	invalid := StrokePoint{Position: Point{X: math.NaN(), Y: 1}, Timestamp: 1.0}
	assert.False(t, invalid.IsValid())

	badTime := StrokePoint{Position: Point{X: 1, Y: 1}, Timestamp: math.Inf(1)}
	assert.False(t, badTime.IsValid())
}
