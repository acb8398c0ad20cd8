package ink

import "github.com/google/uuid"

// catmullRomAlpha is the parameterization exponent used by the live
// pipeline. 0.5 is centripetal: cusp-free tangents without the self-loops
// uniform (alpha=0) parameterization can produce on sharp corners.
const catmullRomAlpha = 0.5

// Builder incrementally turns a stream of StrokePoint samples into a Stroke
// made of variable-width Bézier segments. It exists only between a
// BeginStroke/EndStroke pair on Engine; see the package doc for the
// single-threaded contract.
//
// The published tail of the segment list is deliberately not append-only:
// once 4 samples have arrived, the most recently appended segment is a
// disposable linear placeholder, replaced by the smooth Catmull-Rom curve as
// soon as one more sample arrives. AddPoint returns exactly the segment(s)
// that changed so a host can render incrementally without redrawing the
// whole stroke.
type Builder struct {
	stroke       Stroke
	widths       []float64
	lastVelocity float64
}

// NewBuilder starts a new stroke using brush, seeded with the first sample.
func NewBuilder(first StrokePoint, brush Brush) *Builder {
	b := &Builder{
		stroke: Stroke{
			ID:       uuid.New(),
			Color:    brush.Color,
			Brush:    brush,
			IsEraser: brush.Type == BrushEraser,
		},
	}
	b.appendSample(first)
	return b
}

// appendSample computes the sample's width from pressure and velocity and
// appends both the sample and its width, without touching segments.
func (b *Builder) appendSample(p StrokePoint) {
	velocity := 0.0
	if n := len(b.stroke.Points); n > 0 {
		prev := b.stroke.Points[n-1]
		velocity = Velocity(prev.Position, prev.Timestamp, p.Position, p.Timestamp)
	}
	width := b.stroke.Brush.ComputeWidth(p.Pressure, velocity)

	b.stroke.Points = append(b.stroke.Points, p)
	b.widths = append(b.widths, width)
	b.lastVelocity = velocity
}

// AddPoint ingests the next sample and returns the segment(s) that are new
// or changed as a result, so a host can render incrementally.
func (b *Builder) AddPoint(p StrokePoint) []BezierSegment {
	b.appendSample(p)
	n := len(b.stroke.Points)

	var changed []BezierSegment
	switch {
	case n == 1:
		return nil
	case n == 2:
		seg := linearSegment(b.stroke.Points[0].Position, b.stroke.Points[1].Position, b.widths[0], b.widths[1])
		b.stroke.Segments = append(b.stroke.Segments, seg)
		changed = []BezierSegment{seg}
	default:
		if n >= 4 {
			smoothed := b.catmullRomSegment(n-4, n-3, n-2, n-1)
			b.stroke.Segments[len(b.stroke.Segments)-1] = smoothed
			changed = append(changed, smoothed)
		}
		placeholder := linearSegment(
			b.stroke.Points[n-2].Position, b.stroke.Points[n-1].Position,
			b.widths[n-2], b.widths[n-1],
		)
		b.stroke.Segments = append(b.stroke.Segments, placeholder)
		changed = append(changed, placeholder)
	}

	b.stroke.recomputeBoundingBox()
	return changed
}

// catmullRomSegment builds the final smooth segment over samples i0..i3,
// with widths taken from the two center samples (i1, i2).
func (b *Builder) catmullRomSegment(i0, i1, i2, i3 int) BezierSegment {
	seg := CatmullRomToBezier(
		b.stroke.Points[i0].Position,
		b.stroke.Points[i1].Position,
		b.stroke.Points[i2].Position,
		b.stroke.Points[i3].Position,
		catmullRomAlpha,
	)
	seg.StartWidth = b.widths[i1]
	seg.EndWidth = b.widths[i2]
	return seg
}

// Finish freezes the stroke: if at least 4 samples were collected, the
// trailing segment is replaced once more with the Catmull-Rom curve over the
// last four samples, which runs from sample n-3 to sample n-2 (the same curve
// as the segment before it), then the bounding box is recomputed. It returns
// the completed Stroke.
func (b *Builder) Finish() Stroke {
	n := len(b.stroke.Points)
	if n >= 4 {
		final := b.catmullRomSegment(n-4, n-3, n-2, n-1)
		b.stroke.Segments[len(b.stroke.Segments)-1] = final
	}
	b.stroke.recomputeBoundingBox()
	return b.stroke
}

// SampleCount returns the number of samples ingested so far.
func (b *Builder) SampleCount() int {
	return len(b.stroke.Points)
}

// Points returns the raw samples ingested so far. Used by the eraser path,
// which needs every original sample rather than the derived segments.
func (b *Builder) Points() []StrokePoint {
	return b.stroke.Points
}

// LastVelocity returns the velocity computed for the most recently added
// sample (0 for the first sample of a stroke).
func (b *Builder) LastVelocity() float64 {
	return b.lastVelocity
}

// EraserRadiusAt returns the eraser disk radius for sample index i, derived
// from that sample's pressure: half the width the brush would paint at that
// pressure with zero velocity.
func (b *Builder) EraserRadiusAt(i int) float64 {
	return b.stroke.Brush.ComputeWidth(b.stroke.Points[i].Pressure, 0) / 2
}
