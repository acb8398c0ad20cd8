package ink

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFullRender_EmptySceneIsExactlyFourCommands(t *testing.T) {
	cmds := FullRender(nil, Color{}, 1, 0, 0)
	assert.Len(t, cmds, 4)
	assert.Equal(t, CmdClear, cmds[0].Kind)
	assert.Equal(t, CmdSaveState, cmds[1].Kind)
	assert.Equal(t, CmdSetTransform, cmds[2].Kind)
	assert.Equal(t, CmdRestoreState, cmds[3].Kind)
}

func TestFullRender_SkipsStrokesWithNoSegments(t *testing.T) {
	strokes := []Stroke{
		{Color: Color{R: 1}},
		{Color: Color{R: 2}, Segments: []BezierSegment{{}}},
	}
	cmds := FullRender(strokes, Color{}, 1, 0, 0)

	var drawCmds []RenderCommand
	for _, c := range cmds {
		if c.Kind == CmdDrawVariableWidthPath {
			drawCmds = append(drawCmds, c)
		}
	}
	assert.Len(t, drawCmds, 1)
	assert.Equal(t, float32(2), drawCmds[0].Color.R)
}

func TestFullRender_PreservesPaintOrder(t *testing.T) {
	strokes := []Stroke{
		{Color: Color{R: 1}, Segments: []BezierSegment{{}}},
		{Color: Color{R: 2}, Segments: []BezierSegment{{}}},
		{Color: Color{R: 3}, Segments: []BezierSegment{{}}},
	}
	cmds := FullRender(strokes, Color{}, 1, 0, 0)

	var colors []float32
	for _, c := range cmds {
		if c.Kind == CmdDrawVariableWidthPath {
			colors = append(colors, c.Color.R)
		}
	}
	assert.Equal(t, []float32{1, 2, 3}, colors)
}

func TestFullRender_CarriesTransformAndBackground(t *testing.T) {
	cmds := FullRender(nil, Color{R: 0.5}, 2.0, 10, -5)
	assert.Equal(t, Color{R: 0.5}, cmds[0].ClearColor)
	assert.Equal(t, 2.0, cmds[2].Scale)
	assert.Equal(t, 10.0, cmds[2].TX)
	assert.Equal(t, -5.0, cmds[2].TY)
}

func TestIncremental_EmptySegmentsReturnsNil(t *testing.T) {
	assert.Nil(t, Incremental(nil, Color{}, false))
}

func TestIncremental_ReturnsSingleDrawCommand(t *testing.T) {
	segs := []BezierSegment{{}}
	cmds := Incremental(segs, Color{R: 1}, true)

	assert.Len(t, cmds, 1)
	assert.Equal(t, CmdDrawVariableWidthPath, cmds[0].Kind)
	assert.True(t, cmds[0].IsEraser)
	assert.Equal(t, Color{R: 1}, cmds[0].Color)
}
