package ink

import (
	"github.com/inkstream/ink/serialize"
)

func toWirePoint(p Point) serialize.Point { return serialize.Point{X: p.X, Y: p.Y} }
func fromWirePoint(p serialize.Point) Point { return Point{X: p.X, Y: p.Y} }

func toWireColor(c Color) serialize.Color { return serialize.Color{R: c.R, G: c.G, B: c.B, A: c.A} }
func fromWireColor(c serialize.Color) Color { return Color{R: c.R, G: c.G, B: c.B, A: c.A} }

func toWireBezier(b BezierSegment) serialize.Bezier {
	return serialize.Bezier{
		P0: toWirePoint(b.P0), P1: toWirePoint(b.P1), P2: toWirePoint(b.P2), P3: toWirePoint(b.P3),
		StartWidth: b.StartWidth, EndWidth: b.EndWidth,
	}
}

func fromWireBezier(b serialize.Bezier) BezierSegment {
	return BezierSegment{
		P0: fromWirePoint(b.P0), P1: fromWirePoint(b.P1), P2: fromWirePoint(b.P2), P3: fromWirePoint(b.P3),
		StartWidth: b.StartWidth, EndWidth: b.EndWidth,
	}
}

func toWireBrush(b Brush) serialize.BrushConfig {
	return serialize.BrushConfig{
		BrushType:           b.Type.String(),
		Color:               toWireColor(b.Color),
		BaseWidth:           b.BaseWidth,
		MinWidthFactor:      b.MinWidthFactor,
		MaxWidthFactor:      b.MaxWidthFactor,
		PressureSensitivity: b.PressureSensitivity,
		VelocitySensitivity: b.VelocitySensitivity,
		Smoothing:           b.Smoothing,
	}
}

func brushTypeFromWire(s string) BrushType {
	switch s {
	case "Highlighter":
		return BrushHighlighter
	case "Eraser":
		return BrushEraser
	default:
		return BrushPen
	}
}

func fromWireBrush(b serialize.BrushConfig) Brush {
	return Brush{
		Type:                brushTypeFromWire(b.BrushType),
		Color:               fromWireColor(b.Color),
		BaseWidth:           b.BaseWidth,
		MinWidthFactor:      b.MinWidthFactor,
		MaxWidthFactor:      b.MaxWidthFactor,
		PressureSensitivity: b.PressureSensitivity,
		VelocitySensitivity: b.VelocitySensitivity,
		Smoothing:           b.Smoothing,
	}
}

func toWireStroke(s Stroke) serialize.Stroke {
	points := make([]serialize.StrokePoint, len(s.Points))
	for i, p := range s.Points {
		points[i] = serialize.StrokePoint{Position: toWirePoint(p.Position), Pressure: p.Pressure, Timestamp: p.Timestamp}
	}
	segments := make([]serialize.Bezier, len(s.Segments))
	for i, seg := range s.Segments {
		segments[i] = toWireBezier(seg)
	}
	return serialize.Stroke{
		ID:       s.ID,
		Points:   points,
		Segments: segments,
		Color:    toWireColor(s.Color),
		Brush:    toWireBrush(s.Brush),
		BoundingBox: serialize.BoundingBox{
			MinX: s.BoundingBox.MinX, MinY: s.BoundingBox.MinY,
			MaxX: s.BoundingBox.MaxX, MaxY: s.BoundingBox.MaxY,
		},
		IsEraser: s.IsEraser,
	}
}

func fromWireStroke(s serialize.Stroke) Stroke {
	points := make([]StrokePoint, len(s.Points))
	for i, p := range s.Points {
		points[i] = StrokePoint{Position: fromWirePoint(p.Position), Pressure: p.Pressure, Timestamp: p.Timestamp}
	}
	segments := make([]BezierSegment, len(s.Segments))
	for i, seg := range s.Segments {
		segments[i] = fromWireBezier(seg)
	}
	return Stroke{
		ID:       s.ID,
		Points:   points,
		Segments: segments,
		Color:    fromWireColor(s.Color),
		Brush:    fromWireBrush(s.Brush),
		BoundingBox: BoundingBox{
			MinX: s.BoundingBox.MinX, MinY: s.BoundingBox.MinY,
			MaxX: s.BoundingBox.MaxX, MaxY: s.BoundingBox.MaxY,
		},
		IsEraser: s.IsEraser,
	}
}

func toWireLayer(l Layer) serialize.Layer {
	strokes := make([]serialize.Stroke, len(l.Strokes))
	for i, s := range l.Strokes {
		strokes[i] = toWireStroke(s)
	}
	return serialize.Layer{
		ID: l.ID, Name: l.Name, Visible: l.Visible, Opacity: l.Opacity, Strokes: strokes,
	}
}

func fromWireLayer(l serialize.Layer) Layer {
	strokes := make([]Stroke, len(l.Strokes))
	for i, s := range l.Strokes {
		strokes[i] = fromWireStroke(s)
	}
	return Layer{
		ID: l.ID, Name: l.Name, Visible: l.Visible, Opacity: l.Opacity, Strokes: strokes,
	}
}

// Save serializes the document to the JSON wire format.
func (e *Engine) Save() (string, error) {
	layers := make([]serialize.Layer, len(e.layers.Layers))
	for i, l := range e.layers.Layers {
		layers[i] = toWireLayer(l)
	}
	doc := serialize.Document{
		Version:         serialize.CurrentVersion,
		Width:           e.Width,
		Height:          e.Height,
		BackgroundColor: toWireColor(e.Background),
		Layers:          layers,
	}
	return serialize.Marshal(doc)
}

// Load replaces the engine's document with the one encoded in data. On
// failure the engine's state is left completely untouched. On success,
// history is cleared and a zero-layer document falls back to a single
// fresh default layer.
func (e *Engine) Load(data string) error {
	doc, err := serialize.Unmarshal(data)
	if err != nil {
		return err
	}

	layers := make([]Layer, len(doc.Layers))
	for i, l := range doc.Layers {
		layers[i] = fromWireLayer(l)
	}

	e.Width = doc.Width
	e.Height = doc.Height
	e.Background = fromWireColor(doc.BackgroundColor)
	e.layers.restoreFromDocument(layers)
	e.history.Clear()
	e.builder = nil
	return nil
}
