package ink

import "github.com/inkstream/ink/utils"

// Viewport is an affine, uniform-scale-plus-translation transform between
// screen pixels and canvas units.
type Viewport struct {
	Scale              float64
	OffsetX, OffsetY   float64
	MinScale, MaxScale float64
}

// NewViewport returns an identity viewport with the default zoom bounds.
func NewViewport() Viewport {
	return Viewport{
		Scale:    1,
		MinScale: 0.1,
		MaxScale: 10,
	}
}

// ScreenToCanvas maps a screen-space point to canvas space.
func (v Viewport) ScreenToCanvas(s Point) Point {
	return Point{
		X: (s.X - v.OffsetX) / v.Scale,
		Y: (s.Y - v.OffsetY) / v.Scale,
	}
}

// CanvasToScreen maps a canvas-space point to screen space.
func (v Viewport) CanvasToScreen(c Point) Point {
	return Point{
		X: c.X*v.Scale + v.OffsetX,
		Y: c.Y*v.Scale + v.OffsetY,
	}
}

// Zoom multiplies the current scale by factor, clamped to [MinScale,
// MaxScale], and adjusts the offsets so focal (in screen space) maps to the
// same canvas point before and after the zoom.
func (v Viewport) Zoom(factor float64, focal Point) Viewport {
	newScale := utils.Clamp(v.Scale*factor, v.MinScale, v.MaxScale)
	actual := newScale / v.Scale

	v.OffsetX = focal.X - (focal.X-v.OffsetX)*actual
	v.OffsetY = focal.Y - (focal.Y-v.OffsetY)*actual
	v.Scale = newScale
	return v
}

// Pan translates the viewport by (dx, dy) screen pixels.
func (v Viewport) Pan(dx, dy float64) Viewport {
	v.OffsetX += dx
	v.OffsetY += dy
	return v
}

// Reset restores the identity transform, keeping the configured zoom bounds.
func (v Viewport) Reset() Viewport {
	v.Scale = 1
	v.OffsetX = 0
	v.OffsetY = 0
	return v
}
