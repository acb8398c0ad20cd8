package ink

import "math"

// Point is a 2D coordinate in either screen or canvas space, depending on
// the context it's used in.
type Point struct {
	X, Y float64
}

// Add returns p+q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Sub returns p-q.
func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

// Scale returns p scaled by s.
func (p Point) Scale(s float64) Point {
	return Point{p.X * s, p.Y * s}
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Lerp returns the linear interpolation between p and q at parameter t.
func (p Point) Lerp(q Point, t float64) Point {
	return Point{
		X: p.X + (q.X-p.X)*t,
		Y: p.Y + (q.Y-p.Y)*t,
	}
}

// IsFinite reports whether both coordinates are finite (not NaN or +-Inf).
func (p Point) IsFinite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// Color is a straight-alpha RGBA color with components in [0,1]. The engine
// never clamps components itself; callers are expected to pass valid values
// (see ClampColor for a helper that does).
type Color struct {
	R, G, B, A float32
}

// ClampColor clamps every component of c to [0,1].
func ClampColor(c Color) Color {
	clamp := func(v float32) float32 {
		if v < 0 {
			return 0
		}
		if v > 1 {
			return 1
		}
		return v
	}
	return Color{clamp(c.R), clamp(c.G), clamp(c.B), clamp(c.A)}
}

// WithAlpha returns c with its alpha channel replaced by a.
func (c Color) WithAlpha(a float32) Color {
	c.A = a
	return c
}

var (
	// Black is an opaque black color, the default pen color.
	Black = Color{0, 0, 0, 1}
	// White is an opaque white color.
	White = Color{1, 1, 1, 1}
)

// StrokePoint is a single pointer sample: a position, a pressure in [0,1]
// and a timestamp in seconds, monotonically non-decreasing within a stroke.
type StrokePoint struct {
	Position  Point
	Pressure  float64
	Timestamp float64
}

// IsValid reports whether the sample's position and timestamp are finite.
// Pressure is not checked here: the façade clamps it to [0,1] before the
// sample ever reaches a builder.
func (s StrokePoint) IsValid() bool {
	return s.Position.IsFinite() && !math.IsNaN(s.Timestamp) && !math.IsInf(s.Timestamp, 0)
}

// BoundingBox is an axis-aligned bounding box. A zero-valued BoundingBox (Min
// all zero, Max all zero) is NOT automatically invalid — validity is decided
// purely by Min<=Max per axis; use EmptyBoundingBox for the canonical
// invalid sentinel used as an accumulator seed.
type BoundingBox struct {
	MinX, MinY, MaxX, MaxY float64
}

// EmptyBoundingBox returns the canonical invalid bounding box, suitable as
// the zero value to grow via Union.
func EmptyBoundingBox() BoundingBox {
	return BoundingBox{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
}

// IsValid reports whether the box has non-inverted extents on both axes.
func (b BoundingBox) IsValid() bool {
	return b.MinX <= b.MaxX && b.MinY <= b.MaxY
}

// ExpandPoint grows b, if needed, so it contains p.
func (b BoundingBox) ExpandPoint(p Point) BoundingBox {
	return BoundingBox{
		MinX: math.Min(b.MinX, p.X),
		MinY: math.Min(b.MinY, p.Y),
		MaxX: math.Max(b.MaxX, p.X),
		MaxY: math.Max(b.MaxY, p.Y),
	}
}

// Inflate grows b by amount in every direction.
func (b BoundingBox) Inflate(amount float64) BoundingBox {
	return BoundingBox{
		MinX: b.MinX - amount,
		MinY: b.MinY - amount,
		MaxX: b.MaxX + amount,
		MaxY: b.MaxY + amount,
	}
}

// Union returns the smallest box containing both b and o. If either operand
// is invalid, the other is returned unchanged.
func (b BoundingBox) Union(o BoundingBox) BoundingBox {
	if !b.IsValid() {
		return o
	}
	if !o.IsValid() {
		return b
	}
	return BoundingBox{
		MinX: math.Min(b.MinX, o.MinX),
		MinY: math.Min(b.MinY, o.MinY),
		MaxX: math.Max(b.MaxX, o.MaxX),
		MaxY: math.Max(b.MaxY, o.MaxY),
	}
}

// Intersects reports whether b and o overlap, including touching edges.
func (b BoundingBox) Intersects(o BoundingBox) bool {
	if !b.IsValid() || !o.IsValid() {
		return false
	}
	return b.MinX <= o.MaxX && b.MaxX >= o.MinX &&
		b.MinY <= o.MaxY && b.MaxY >= o.MinY
}

// Contains reports whether p lies within b (inclusive of the boundary).
func (b BoundingBox) Contains(p Point) bool {
	return b.IsValid() && p.X >= b.MinX && p.X <= b.MaxX && p.Y >= b.MinY && p.Y <= b.MaxY
}
