package ink

import "github.com/inkstream/ink/utils"

// BrushType selects one of the three built-in brush behaviors.
type BrushType int

const (
	// BrushPen is the default, pressure-responsive drawing brush.
	BrushPen BrushType = iota
	// BrushHighlighter is a flat, semi-transparent wide brush.
	BrushHighlighter
	// BrushEraser never paints; its stroke samples drive removals instead.
	BrushEraser
)

// String implements fmt.Stringer, matching the wire representation used by
// the serialize package.
func (t BrushType) String() string {
	switch t {
	case BrushPen:
		return "Pen"
	case BrushHighlighter:
		return "Highlighter"
	case BrushEraser:
		return "Eraser"
	default:
		return "Pen"
	}
}

// maxCalibratedVelocity is the fixed 1000px/s cap baked into the width
// calculation. It's a package constant rather than a Brush field since
// nothing currently needs per-brush velocity calibration.
const maxCalibratedVelocity = 1000.0

// Brush parameterizes width computation from pressure and velocity.
type Brush struct {
	Type                BrushType
	Color               Color
	BaseWidth           float64
	MinWidthFactor      float64
	MaxWidthFactor      float64
	PressureSensitivity float64
	VelocitySensitivity float64
	Smoothing           float64
}

// PenBrush returns the default pen preset.
func PenBrush() Brush {
	return Brush{
		Type:                BrushPen,
		Color:               Black,
		BaseWidth:           3,
		MinWidthFactor:      0.3,
		MaxWidthFactor:      1.5,
		PressureSensitivity: 0.8,
		VelocitySensitivity: 0.3,
		Smoothing:           0.5,
	}
}

// HighlighterBrush returns the default highlighter preset for the given
// base color; the color's alpha is always overridden to 0.3.
func HighlighterBrush(base Color) Brush {
	return Brush{
		Type:                BrushHighlighter,
		Color:               base.WithAlpha(0.3),
		BaseWidth:           12,
		MinWidthFactor:      0.9,
		MaxWidthFactor:      1.1,
		PressureSensitivity: 0.1,
		VelocitySensitivity: 0.05,
		Smoothing:           0.2,
	}
}

// EraserBrush returns the default eraser preset for the given diameter.
func EraserBrush(diameter float64) Brush {
	return Brush{
		Type:                BrushEraser,
		Color:               White,
		BaseWidth:           diameter,
		MinWidthFactor:      0.8,
		MaxWidthFactor:      1.2,
		PressureSensitivity: 0,
		VelocitySensitivity: 0,
		Smoothing:           0.3,
	}
}

// ComputeWidth returns the stroke width for a given pressure ([0,1]) and
// velocity (position units per second).
func (b Brush) ComputeWidth(pressure, velocity float64) float64 {
	pressureFactor := 1 + (pressure-0.5)*b.PressureSensitivity
	velocityFactor := 1 - (utils.Min(velocity, maxCalibratedVelocity)/maxCalibratedVelocity)*b.VelocitySensitivity
	factor := utils.Clamp(pressureFactor*velocityFactor, b.MinWidthFactor, b.MaxWidthFactor)
	return b.BaseWidth * factor
}
