package ink

import (
	"math"

	"github.com/inkstream/ink/utils"
)

// epsilon guards every division in the kernel against a zero denominator
// (coincident samples, zero dt). It is small enough not to distort any
// realistic stroke geometry.
const epsilon = 1e-6

// BezierSegment is a single cubic Bézier curve with a linearly interpolated
// width, the atomic unit of a rendered stroke.
type BezierSegment struct {
	P0, P1, P2, P3       Point
	StartWidth, EndWidth float64
}

// Evaluate returns the point on seg at parameter t (t is not clamped; callers
// are expected to pass t in [0,1]).
func Evaluate(seg BezierSegment, t float64) Point {
	mt := 1 - t
	mt2 := mt * mt
	mt3 := mt2 * mt
	t2 := t * t
	t3 := t2 * t

	x := mt3*seg.P0.X + 3*mt2*t*seg.P1.X + 3*mt*t2*seg.P2.X + t3*seg.P3.X
	y := mt3*seg.P0.Y + 3*mt2*t*seg.P1.Y + 3*mt*t2*seg.P2.Y + t3*seg.P3.Y
	return Point{X: x, Y: y}
}

// WidthAt returns the stroke width at parameter t, linearly interpolated
// between seg.StartWidth and seg.EndWidth.
func WidthAt(seg BezierSegment, t float64) float64 {
	return seg.StartWidth + t*(seg.EndWidth-seg.StartWidth)
}

// linearSegment builds the cubic-Bézier stand-in for a plain line from p0 to
// p1: control points trisecting the segment, so the cubic degenerates to a
// straight line while still fitting the BezierSegment shape used everywhere
// else in the pipeline.
func linearSegment(p0, p1 Point, w0, w1 float64) BezierSegment {
	return BezierSegment{
		P0:         p0,
		P1:         p0.Lerp(p1, 1.0/3.0),
		P2:         p0.Lerp(p1, 2.0/3.0),
		P3:         p1,
		StartWidth: w0,
		EndWidth:   w1,
	}
}

// CatmullRomToBezier converts four Catmull-Rom control points into the cubic
// Bézier covering the center segment p1->p2, using the generalized
// (uniform/centripetal/chordal) parameterization controlled by alpha.
// alpha=0.5 (centripetal) is the default used by the live stroke pipeline.
func CatmullRomToBezier(p0, p1, p2, p3 Point, alpha float64) BezierSegment {
	d1 := utils.Max(p0.Dist(p1), epsilon)
	d2 := utils.Max(p1.Dist(p2), epsilon)
	d3 := utils.Max(p2.Dist(p3), epsilon)

	d1a := math.Pow(d1, alpha)
	d2a := math.Pow(d2, alpha)
	d3a := math.Pow(d3, alpha)
	d1a2 := d1a * d1a
	d2a2 := d2a * d2a
	d3a2 := d3a * d3a

	b1 := p1
	b1Denom := 3 * d1a * (d1a + d2a)
	if b1Denom > epsilon {
		num := p2.Scale(d1a2).Sub(p0.Scale(d2a2)).Add(p1.Scale(2*d1a2 + 3*d1a*d2a + d2a2))
		b1 = num.Scale(1 / b1Denom)
	}

	b2 := p2
	b2Denom := 3 * d3a * (d3a + d2a)
	if b2Denom > epsilon {
		num := p1.Scale(d3a2).Sub(p3.Scale(d2a2)).Add(p2.Scale(2*d3a2 + 3*d3a*d2a + d2a2))
		b2 = num.Scale(1 / b2Denom)
	}

	return BezierSegment{P0: p1, P1: b1, P2: b2, P3: p2}
}

// Smooth performs a single averaging pass over pts, leaving the endpoints
// untouched and blending every interior point toward the midpoint of its
// neighbors by factor. It returns pts unchanged when there are fewer than 3
// points or factor is negligible. Not used by the live builder pipeline
// (the builder already smooths via Catmull-Rom); kept for hosts that want to
// pre-smooth a batch of samples before streaming them in.
func Smooth(pts []Point, factor float64) []Point {
	if len(pts) < 3 || factor < 1e-9 {
		return pts
	}
	out := make([]Point, len(pts))
	out[0] = pts[0]
	out[len(pts)-1] = pts[len(pts)-1]
	for i := 1; i < len(pts)-1; i++ {
		mid := pts[i-1].Add(pts[i+1]).Scale(0.5)
		out[i] = pts[i].Scale(1 - factor).Add(mid.Scale(factor))
	}
	return out
}

// Velocity returns the instantaneous speed between two timestamped points,
// in position units per second. It returns 0 when the time delta is
// negligible, avoiding a division blowup on duplicate timestamps.
func Velocity(p1 Point, t1 float64, p2 Point, t2 float64) float64 {
	dt := math.Abs(t2 - t1)
	if dt < epsilon {
		return 0
	}
	return p1.Dist(p2) / dt
}
