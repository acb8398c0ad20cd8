// Package blend implements a small subset of the Porter-Duff / CSS
// compositing formulas for combining a stroke's color with whatever is
// already painted on the canvas beneath it. It operates on straight-alpha
// RGB values (a color's channels, with its alpha passed separately) rather
// than raster images: it's meant for a host
// renderer (see cmd/inkviewer) that wants to composite a
// DrawVariableWidthPath command's color the way a real ink app would —
// highlighters multiply over the backdrop instead of just alpha-blending,
// which is what makes overlapping highlighter strokes look like ink instead
// of stacked opaque tape.
package blend

import "fmt"

// Mode names one of the supported blend formulas.
type Mode string

const (
	// Normal is plain source-over alpha compositing.
	Normal Mode = "normal"
	// Multiply darkens the backdrop by the source, used for highlighters.
	Multiply Mode = "multiply"
	// Screen lightens the backdrop by the source's complement.
	Screen Mode = "screen"
	// Darken keeps the darker of the two colors per channel.
	Darken Mode = "darken"
	// Lighten keeps the lighter of the two colors per channel.
	Lighten Mode = "lighten"
)

// RGB is a straight (non-premultiplied) color in [0,1] per channel, used as
// the blend formulas' working representation.
type RGB struct {
	R, G, B float64
}

// Modes lists every supported blend mode, in the order a host UI might
// present them.
var Modes = []Mode{Normal, Multiply, Screen, Darken, Lighten}

// Compositor applies a single active blend Mode to pairs of colors.
type Compositor struct {
	mode Mode
}

// NewCompositor returns a Compositor using mode, or an error if mode is not
// one of the supported Modes.
func NewCompositor(mode Mode) (*Compositor, error) {
	for _, m := range Modes {
		if m == mode {
			return &Compositor{mode: mode}, nil
		}
	}
	return nil, fmt.Errorf("blend: unsupported mode %q", mode)
}

// Mode returns the compositor's active blend mode.
func (c *Compositor) Mode() Mode { return c.mode }

// blendChannel applies the active mode's per-channel formula to a single
// backdrop/source channel pair.
func (c *Compositor) blendChannel(backdrop, source float64) float64 {
	switch c.mode {
	case Multiply:
		return backdrop * source
	case Screen:
		return 1 - (1-backdrop)*(1-source)
	case Darken:
		if source < backdrop {
			return source
		}
		return backdrop
	case Lighten:
		if source > backdrop {
			return source
		}
		return backdrop
	default: // Normal
		return source
	}
}

// Over composites source over backdrop at the given source alpha (in
// [0,1]), first applying the active mode's per-channel blend formula and
// then the standard alpha-compositing mix.
func (c *Compositor) Over(backdrop, source RGB, sourceAlpha float64) RGB {
	blended := RGB{
		R: c.blendChannel(backdrop.R, source.R),
		G: c.blendChannel(backdrop.G, source.G),
		B: c.blendChannel(backdrop.B, source.B),
	}
	mix := func(bd, bl float64) float64 {
		return bd*(1-sourceAlpha) + bl*sourceAlpha
	}
	return RGB{
		R: mix(backdrop.R, blended.R),
		G: mix(backdrop.G, blended.G),
		B: mix(backdrop.B, blended.B),
	}
}
