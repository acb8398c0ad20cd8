package ink

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestStroke_CloneIsDeep(t *testing.T) {
	original := Stroke{
		ID:     uuid.New(),
		Points: []StrokePoint{{Position: Point{X: 1, Y: 1}}},
	}
	clone := original.Clone()
	clone.Points[0].Position.X = 999

	assert.Equal(t, 1.0, original.Points[0].Position.X)
	assert.Equal(t, original.ID, clone.ID)
}

func TestRecomputeBoundingBox_ContainsEverySampledPoint(t *testing.T) {
	s := Stroke{
		Segments: []BezierSegment{{
			P0: Point{X: 0, Y: 0}, P1: Point{X: 5, Y: 10},
			P2: Point{X: 10, Y: 10}, P3: Point{X: 15, Y: 0},
			StartWidth: 2, EndWidth: 6,
		}},
	}
	s.recomputeBoundingBox()

	for i := 0; i <= 10; i++ {
		t2 := float64(i) / 10
		p := Evaluate(s.Segments[0], t2)
		half := WidthAt(s.Segments[0], t2) / 2
		assert.True(t, s.BoundingBox.Contains(Point{X: p.X + half, Y: p.Y}))
		assert.True(t, s.BoundingBox.Contains(Point{X: p.X - half, Y: p.Y}))
	}
}

func TestRecomputeBoundingBox_EmptySegmentsLeavesPreviousBoxUntouched(t *testing.T) {
	s := Stroke{BoundingBox: BoundingBox{MinX: 1, MinY: 1, MaxX: 2, MaxY: 2}}
	s.recomputeBoundingBox()
	assert.Equal(t, BoundingBox{MinX: 1, MinY: 1, MaxX: 2, MaxY: 2}, s.BoundingBox)
}
