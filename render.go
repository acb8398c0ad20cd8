package ink

// CommandKind tags a RenderCommand's payload. Hosts branch on this tag;
// it's the stable contract between the engine and whatever toolkit
// ultimately rasterizes a scene.
type CommandKind int

const (
	// CmdClear paints the whole surface with a background color.
	CmdClear CommandKind = iota
	// CmdSaveState asks the host to push its current transform/clip state.
	CmdSaveState
	// CmdRestoreState asks the host to pop a previously saved state.
	CmdRestoreState
	// CmdSetTransform installs the engine's viewport transform on the host.
	CmdSetTransform
	// CmdDrawVariableWidthPath draws one stroke's segments.
	CmdDrawVariableWidthPath
)

// RenderCommand is one abstract drawing instruction. Only the fields
// relevant to Kind are populated; the rest are zero.
type RenderCommand struct {
	Kind CommandKind

	// CmdClear
	ClearColor Color

	// CmdSetTransform
	Scale  float64
	TX, TY float64

	// CmdDrawVariableWidthPath
	Segments []BezierSegment
	Color    Color
	IsEraser bool
}

// FullRender emits a complete scene redraw: Clear, SaveState, SetTransform,
// one DrawVariableWidthPath per non-empty stroke (preserving paint order),
// then RestoreState. An empty scene is exactly 4 commands.
func FullRender(strokes []Stroke, background Color, scale, tx, ty float64) []RenderCommand {
	cmds := make([]RenderCommand, 0, len(strokes)+4)
	cmds = append(cmds, RenderCommand{Kind: CmdClear, ClearColor: background})
	cmds = append(cmds, RenderCommand{Kind: CmdSaveState})
	cmds = append(cmds, RenderCommand{Kind: CmdSetTransform, Scale: scale, TX: tx, TY: ty})

	for _, s := range strokes {
		if len(s.Segments) == 0 {
			continue
		}
		cmds = append(cmds, RenderCommand{
			Kind:     CmdDrawVariableWidthPath,
			Segments: s.Segments,
			Color:    s.Color,
			IsEraser: s.IsEraser,
		})
	}

	cmds = append(cmds, RenderCommand{Kind: CmdRestoreState})
	return cmds
}

// Incremental emits the minimal update for newly produced segments: nothing
// if segments is empty, otherwise a single DrawVariableWidthPath in the
// coordinate space already established by a prior FullRender.
func Incremental(segments []BezierSegment, color Color, isEraser bool) []RenderCommand {
	if len(segments) == 0 {
		return nil
	}
	return []RenderCommand{{
		Kind:     CmdDrawVariableWidthPath,
		Segments: segments,
		Color:    color,
		IsEraser: isEraser,
	}}
}
