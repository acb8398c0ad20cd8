// Command inkviewer is a toy host renderer for the ink engine. It opens a
// Gio window, drives an ink.Engine from raw pointer input, and turns each
// returned ink.RenderCommand list into drawn pixels — the same contract a
// real tablet app's renderer would implement, minus persistence and a tool
// palette. It exists to exercise the engine end to end with a human holding
// the mouse.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"log"
	"math"
	"os"

	"gioui.org/app"
	"gioui.org/f32"
	"gioui.org/io/key"
	"gioui.org/io/pointer"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/unit"

	"github.com/inkstream/ink"
	"github.com/inkstream/ink/blend"
	"github.com/inkstream/ink/raster"
	"github.com/inkstream/ink/utils"
)

func main() {
	width := flag.Int("width", 1024, "canvas width in pixels")
	height := flag.Int("height", 768, "canvas height in pixels")
	software := flag.Bool("software", false, "render with the software rasterizer instead of Gio's GPU path")
	flag.Parse()

	if *software {
		runSoftwarePreview(*width, *height)
		return
	}

	go func() {
		w := app.NewWindow(
			app.Title("inkviewer"),
			app.Size(unit.Dp(*width), unit.Dp(*height)),
		)
		if err := run(w, *width, *height); err != nil {
			log.Fatal(err)
		}
		os.Exit(0)
	}()
	app.Main()
}

// strokeTag identifies the canvas's pointer input area.
type strokeTag struct{}

// viewer owns the engine and the highlighter compositor used to preview
// strokes the way a real ink surface would.
type viewer struct {
	engine    *ink.Engine
	commands  []ink.RenderCommand
	comp      *blend.Compositor
	drawing   bool
	highlight bool
}

func newViewer(width, height int) *viewer {
	e := ink.NewEngine(float64(width), float64(height))
	comp, err := blend.NewCompositor(blend.Normal)
	if err != nil {
		// Normal is always a valid Mode; this can't happen.
		panic(err)
	}
	v := &viewer{engine: e, comp: comp}
	v.commands = e.FullRender()
	return v
}

func (v *viewer) setBrush(isHighlighter bool) {
	v.highlight = isHighlighter
	if isHighlighter {
		v.engine.SetBrush(ink.HighlighterBrush(ink.Color{R: 1, G: 0.9, B: 0, A: 1}))
		v.comp, _ = blend.NewCompositor(blend.Multiply)
	} else {
		v.engine.SetBrush(ink.PenBrush())
		v.comp, _ = blend.NewCompositor(blend.Normal)
	}
}

func run(w *app.Window, width, height int) error {
	v := newViewer(width, height)
	v.setBrush(false)

	var ops op.Ops
	for e := range w.Events() {
		switch e := e.(type) {
		case system.DestroyEvent:
			return e.Err
		case system.FrameEvent:
			gtx := layout.NewContext(&ops, e)
			v.handleInput(gtx)
			v.layout(gtx)
			e.Frame(gtx.Ops)
		}
	}
	return nil
}

// handleInput reads pointer and key events queued against the canvas and
// drives the engine's stroke lifecycle, and toggles the active brush with
// the H key (highlighter) and P key (pen).
func (v *viewer) handleInput(gtx layout.Context) {
	pointer.InputOp{
		Tag:   strokeTag{},
		Types: pointer.Press | pointer.Drag | pointer.Release,
	}.Add(gtx.Ops)
	key.InputOp{Tag: strokeTag{}, Keys: "H|P|Z|Y"}.Add(gtx.Ops)

	for _, e := range gtx.Queue.Events(strokeTag{}) {
		switch ev := e.(type) {
		case pointer.Event:
			v.handlePointer(ev, gtx.Now.UnixNano())
		case key.Event:
			if ev.State != key.Press {
				continue
			}
			switch ev.Name {
			case "H":
				v.setBrush(true)
			case "P":
				v.setBrush(false)
			case "Z":
				v.commands = v.engine.Undo()
			case "Y":
				v.commands = v.engine.Redo()
			}
		}
	}
}

func (v *viewer) handlePointer(e pointer.Event, nanos int64) {
	t := float64(nanos) / 1e9
	x, y := float64(e.Position.X), float64(e.Position.Y)
	const pressure = 1.0

	switch e.Type {
	case pointer.Press:
		v.drawing = true
		v.commands = v.engine.BeginStroke(x, y, pressure, t)
	case pointer.Drag:
		if v.drawing {
			cmds := v.engine.AddPoint(x, y, pressure, t)
			if len(cmds) > 0 {
				v.commands = cmds
			}
		}
	case pointer.Release, pointer.Cancel:
		if v.drawing {
			v.drawing = false
			v.commands = v.engine.EndStroke()
		}
	}
}

// layout turns the most recent command batch into Gio draw ops. Each
// DrawVariableWidthPath segment becomes a filled clip.Path outline: the
// centerline is sampled and offset by half the interpolated width on each
// side, joined with LineTo calls, and the fill color is composited through
// the active blend.Compositor so highlighter strokes multiply instead of
// painting opaquely.
func (v *viewer) layout(gtx layout.Context) {
	for _, cmd := range v.commands {
		switch cmd.Kind {
		case ink.CmdClear:
			paint.Fill(gtx.Ops, toNRGBA(cmd.ClearColor))
		case ink.CmdDrawVariableWidthPath:
			v.paintPath(gtx, cmd)
		}
	}

	defer clip.Rect(image.Rectangle{Max: gtx.Constraints.Max}).Push(gtx.Ops).Pop()
	pointer.InputOp{Tag: strokeTag{}, Types: pointer.Press | pointer.Drag | pointer.Release}.Add(gtx.Ops)
}

func (v *viewer) paintPath(gtx layout.Context, cmd ink.RenderCommand) {
	if cmd.IsEraser || len(cmd.Segments) == 0 {
		return
	}

	backdrop := blend.RGB{R: 1, G: 1, B: 1}
	composited := v.comp.Over(backdrop, blend.RGB{R: float64(cmd.Color.R), G: float64(cmd.Color.G), B: float64(cmd.Color.B)}, float64(cmd.Color.A))
	c := color.NRGBA{
		R: uint8(composited.R * 255), G: uint8(composited.G * 255), B: uint8(composited.B * 255),
		A: uint8(cmd.Color.A * 255),
	}

	for _, seg := range cmd.Segments {
		var path clip.Path
		path.Begin(gtx.Ops)

		left, right := offsetOutline(seg)
		if len(left) == 0 {
			continue
		}
		path.MoveTo(toF32(left[0]))
		for _, p := range left[1:] {
			path.LineTo(toF32(p))
		}
		for i := len(right) - 1; i >= 0; i-- {
			path.LineTo(toF32(right[i]))
		}
		path.Close()

		paint.FillShape(gtx.Ops, c, clip.Outline{Path: path.End()}.Op())
	}
}

const pathOutlineSteps = 12

func offsetOutline(seg ink.BezierSegment) (left, right []ink.Point) {
	for i := 0; i <= pathOutlineSteps; i++ {
		t := float64(i) / float64(pathOutlineSteps)
		p := ink.Evaluate(seg, t)
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
		var nx, ny float64
		if length > 1e-6 {
			nx, ny = -d.Y/length, d.X/length
		} else {
			nx, ny = 0, 1
		}
		half := ink.WidthAt(seg, t) / 2
		left = append(left, ink.Point{X: p.X + nx*half, Y: p.Y + ny*half})
		right = append(right, ink.Point{X: p.X - nx*half, Y: p.Y - ny*half})
	}
	return left, right
}

func toF32(p ink.Point) f32.Point {
	return f32.Point{X: float32(p.X), Y: float32(p.Y)}
}

func toNRGBA(c ink.Color) color.NRGBA {
	cc := ink.ClampColor(c)
	return color.NRGBA{R: uint8(cc.R * 255), G: uint8(cc.G * 255), B: uint8(cc.B * 255), A: uint8(cc.A * 255)}
}

// runSoftwarePreview drives a short scripted session and rasterizes the
// final frame with the raster package instead of opening a window, for
// environments without a display server (CI, headless containers).
func runSoftwarePreview(width, height int) {
	v := newViewer(width, height)
	v.setBrush(false)

	fmt.Println(utils.DecorateText("inkviewer -software", utils.StatusMessage))
	v.engine.BeginStroke(10, 10, 1, 0)
	v.engine.AddPoint(100, 100, 1, 0.1)
	v.engine.AddPoint(200, 50, 1, 0.2)
	cmds := v.engine.EndStroke()

	img := raster.Rasterize(cmds, width, height)

	out, err := os.Create("inkviewer-preview.png")
	if err != nil {
		log.Fatal(err)
	}
	defer out.Close()
	if err := png.Encode(out, img); err != nil {
		log.Fatal(err)
	}

	fmt.Printf("rendered %d commands over a %dx%d canvas into inkviewer-preview.png\n", len(cmds), width, height)
}
