package ink

import "github.com/google/uuid"

// Stroke is one continuous mark from pen-down to pen-up: the raw samples
// that produced it plus the derived, variable-width Bézier segments that
// render it.
type Stroke struct {
	ID          uuid.UUID
	Points      []StrokePoint
	Segments    []BezierSegment
	Color       Color
	Brush       Brush
	BoundingBox BoundingBox
	IsEraser    bool
}

// Clone returns a deep copy of s, safe to store in a HistoryAction without
// aliasing live layer state.
func (s Stroke) Clone() Stroke {
	c := s
	c.Points = append([]StrokePoint(nil), s.Points...)
	c.Segments = append([]BezierSegment(nil), s.Segments...)
	return c
}

// bezierBoundingBoxSteps is the number of equal t intervals used when
// inflating a segment's geometric extent by its width; t is sampled at
// bezierBoundingBoxSteps+1 points, inclusive of both endpoints.
const bezierBoundingBoxSteps = 10

// segmentBoundingBox returns the bounding box of seg, inflated at each
// sampled point by half the stroke width at that point.
func segmentBoundingBox(seg BezierSegment) BoundingBox {
	bb := EmptyBoundingBox()
	for i := 0; i <= bezierBoundingBoxSteps; i++ {
		t := float64(i) / float64(bezierBoundingBoxSteps)
		p := Evaluate(seg, t)
		halfWidth := WidthAt(seg, t) / 2
		bb = bb.Union(BoundingBox{
			MinX: p.X - halfWidth, MinY: p.Y - halfWidth,
			MaxX: p.X + halfWidth, MaxY: p.Y + halfWidth,
		})
	}
	return bb
}

// recomputeBoundingBox folds the extent of every segment into s.BoundingBox.
// A recomputed box only replaces the cached one if it's valid; an empty
// segment list leaves the previous box untouched.
func (s *Stroke) recomputeBoundingBox() {
	next := EmptyBoundingBox()
	for _, seg := range s.Segments {
		next = next.Union(segmentBoundingBox(seg))
	}
	if next.IsValid() {
		s.BoundingBox = next
	}
}
