// Package serialize implements the versioned, structural document codec
// for an ink document. It knows nothing about the live engine types in
// package ink — it only defines the wire shape and converts it to and from
// JSON — so that the engine (which does know how to build and consume a
// Document) can depend on it without an import cycle.
package serialize

import (
	"encoding/json"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// CurrentVersion is the only document version this codec accepts on load.
const CurrentVersion = 1

// ErrUnknownVersion is returned by Unmarshal when a document declares a
// version other than CurrentVersion.
var ErrUnknownVersion = errors.New("serialize: unknown document version")

// Point mirrors ink.Point on the wire.
type Point struct {
	X, Y float64
}

// Color mirrors ink.Color on the wire.
type Color struct {
	R, G, B, A float32
}

// StrokePoint mirrors ink.StrokePoint on the wire.
type StrokePoint struct {
	Position  Point
	Pressure  float64
	Timestamp float64
}

// Bezier mirrors ink.BezierSegment on the wire.
type Bezier struct {
	P0, P1, P2, P3       Point
	StartWidth, EndWidth float64
}

// BoundingBox mirrors ink.BoundingBox on the wire.
type BoundingBox struct {
	MinX, MinY, MaxX, MaxY float64
}

// BrushConfig mirrors ink.Brush on the wire, with the brush type spelled
// out as a string.
type BrushConfig struct {
	BrushType           string
	Color               Color
	BaseWidth           float64
	MinWidthFactor      float64
	MaxWidthFactor      float64
	PressureSensitivity float64
	VelocitySensitivity float64
	Smoothing           float64
}

// Stroke mirrors ink.Stroke on the wire.
type Stroke struct {
	ID          uuid.UUID
	Points      []StrokePoint
	Segments    []Bezier
	Color       Color
	Brush       BrushConfig
	BoundingBox BoundingBox
	IsEraser    bool
}

// Layer mirrors ink.Layer on the wire.
type Layer struct {
	ID      uuid.UUID
	Name    string
	Visible bool
	Opacity float32
	Strokes []Stroke
}

// Document is the top-level wire record for a whole canvas.
type Document struct {
	Version         uint32
	Width, Height   float64
	BackgroundColor Color
	Layers          []Layer
}

// Marshal encodes doc as indented JSON, matching the "human-readable"
// requirement of a human-readable wire format. The engine always calls it with Version set to
// CurrentVersion.
func Marshal(doc Document) (string, error) {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "serialize: failed to marshal document")
	}
	return string(data), nil
}

// Unmarshal decodes data into a Document. It fails closed on a malformed
// payload or an unrecognized version; it does NOT repair a zero-layer
// document — that structural fallback is the caller's (engine's)
// responsibility, since only the caller knows how to mint a fresh
// default layer tied to its own layer-identity scheme.
func Unmarshal(data string) (Document, error) {
	var doc Document
	if err := json.Unmarshal([]byte(data), &doc); err != nil {
		return Document{}, errors.Wrap(err, "serialize: failed to parse document")
	}
	if doc.Version != CurrentVersion {
		return Document{}, errors.Wrapf(ErrUnknownVersion, "got version %d, want %d", doc.Version, CurrentVersion)
	}
	return doc, nil
}
