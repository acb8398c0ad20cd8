// Package raster implements a small headless software rasterizer for
// ink.RenderCommand sequences, built on golang.org/x/image/vector — the
// same rasterizer the wider Go image ecosystem uses for vector fills. It
// exists so tests and the "-software" mode of cmd/inkviewer can check that
// a stroke actually painted pixels where it was supposed to, without
// needing a window or a GPU.
//
// It approximates a variable-width Bézier segment as a filled polygon: the
// centerline is sampled and offset left/right by half the interpolated
// width at each sample, closing the outline into a single fillable path.
// This is a coverage approximation, not a faithful stroke renderer (no
// miter joins, no antialiased caps) — good enough to assert "this region is
// covered" in a test.
package raster

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/math/f32"
	"golang.org/x/image/vector"

	"github.com/inkstream/ink"
)

// outlineSteps is the number of centerline samples per segment used to
// build the offset outline polygon.
const outlineSteps = 16

// segmentOutline returns the closed left/right offset polygon approximating
// seg's painted area.
func segmentOutline(seg ink.BezierSegment) []ink.Point {
	left := make([]ink.Point, 0, outlineSteps+1)
	right := make([]ink.Point, 0, outlineSteps+1)

	for i := 0; i <= outlineSteps; i++ {
		t := float64(i) / float64(outlineSteps)
		p := ink.Evaluate(seg, t)
		tangent := segmentTangent(seg, t)
		normal := ink.Point{X: -tangent.Y, Y: tangent.X}
		half := ink.WidthAt(seg, t) / 2

		left = append(left, p.Add(normal.Scale(half)))
		right = append(right, p.Add(normal.Scale(-half)))
	}

	outline := make([]ink.Point, 0, len(left)+len(right))
	outline = append(outline, left...)
	for i := len(right) - 1; i >= 0; i-- {
		outline = append(outline, right[i])
	}
	return outline
}

// segmentTangent returns the unit tangent of seg at t via a symmetric finite
// difference; cheap and accurate enough for normal offsetting.
func segmentTangent(seg ink.BezierSegment, t float64) ink.Point {
	const dt = 1e-3
	t0, t1 := t-dt, t+dt
	if t0 < 0 {
		t0 = 0
	}
	if t1 > 1 {
		t1 = 1
	}
	d := ink.Evaluate(seg, t1).Sub(ink.Evaluate(seg, t0))
	length := math.Hypot(d.X, d.Y)
	if length < 1e-9 {
		return ink.Point{X: 1, Y: 0}
	}
	return ink.Point{X: d.X / length, Y: d.Y / length}
}

func toVec2(p ink.Point) f32.Vec2 {
	return f32.Vec2{float32(p.X), float32(p.Y)}
}

// Rasterize draws cmds into a freshly allocated width x height NRGBA image:
// CmdClear fills the background, and every CmdDrawVariableWidthPath fills
// its approximated outline with the command's color. SetTransform commands
// are honored by scaling/translating the coordinates fed to the
// rasterizer; SaveState/RestoreState are no-ops (this renderer has no
// nested clip/transform stack).
func Rasterize(cmds []ink.RenderCommand, width, height int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	scale, tx, ty := 1.0, 0.0, 0.0

	for _, cmd := range cmds {
		switch cmd.Kind {
		case ink.CmdClear:
			draw.Draw(img, img.Bounds(), &image.Uniform{C: toNRGBA(cmd.ClearColor)}, image.Point{}, draw.Src)
		case ink.CmdSetTransform:
			scale, tx, ty = cmd.Scale, cmd.TX, cmd.TY
		case ink.CmdDrawVariableWidthPath:
			if cmd.IsEraser {
				continue
			}
			fillPath(img, cmd.Segments, cmd.Color, scale, tx, ty)
		}
	}
	return img
}

// fillPath rasterizes the union of every segment's outline polygon, filled
// with color, into dst.
func fillPath(dst *image.NRGBA, segments []ink.BezierSegment, c ink.Color, scale, tx, ty float64) {
	bounds := dst.Bounds()
	z := vector.NewRasterizer(bounds.Dx(), bounds.Dy())

	for _, seg := range segments {
		outline := segmentOutline(seg)
		if len(outline) == 0 {
			continue
		}
		toScreen := func(p ink.Point) f32.Vec2 {
			return toVec2(ink.Point{X: p.X*scale + tx, Y: p.Y*scale + ty})
		}
		z.MoveTo(toScreen(outline[0]))
		for _, p := range outline[1:] {
			z.LineTo(toScreen(p))
		}
		z.ClosePath()
	}

	mask := image.NewAlpha(bounds)
	z.Draw(mask, bounds, image.NewUniform(color.Alpha{A: 255}), image.Point{})

	src := image.NewUniform(toNRGBA(c))
	draw.DrawMask(dst, bounds, src, image.Point{}, mask, image.Point{}, draw.Over)
}

func toNRGBA(c ink.Color) color.NRGBA {
	return color.NRGBA{
		R: uint8(ink.ClampColor(c).R * 255),
		G: uint8(ink.ClampColor(c).G * 255),
		B: uint8(ink.ClampColor(c).B * 255),
		A: uint8(ink.ClampColor(c).A * 255),
	}
}
