package renderer

import (
	"errors"
	"testing"

	"github.com/Carmen-Shannon/wirecube/engine/frame"
	"github.com/Carmen-Shannon/wirecube/engine/graphics"
	"github.com/Carmen-Shannon/wirecube/engine/graphics/headless"
	"github.com/Carmen-Shannon/wirecube/engine/renderer/shader"
	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestState(t *testing.T, options ...RenderStateBuilderOption) (*RenderState, *headless.Context, *frame.ManualScheduler) {
	t.Helper()
	ctx := headless.NewContext()
	sched := frame.NewManualScheduler()
	s, err := NewRenderState(ctx, sched, options...)
	require.NoError(t, err)
	return s, ctx, sched
}

func TestRenderStateStartup(t *testing.T) {
	s, ctx, sched := newTestState(t)

	assert.True(t, ctx.HasActiveProgram())
	assert.Equal(t, 0, ctx.LiveShaders(), "shaders are discarded once linked")
	assert.Equal(t, [4]float32{0, 0, 0, 1}, ctx.ClearColorValue())
	assert.Len(t, ctx.Clears(), 1)
	assert.Empty(t, ctx.Draws())
	assert.Equal(t, 0, sched.Pending(), "nothing is scheduled before Start")

	data, _ := ctx.ArrayBufferData()
	assert.Len(t, data, 72)
	assert.Equal(t, Rotation{}, s.Rotation())
	assert.Equal(t, BuildModelView(0, 0), s.ModelView())
	assert.Empty(t, ctx.Errors())
}

func TestRenderStateFirstTick(t *testing.T) {
	s, ctx, sched := newTestState(t)
	s.Start()
	require.Equal(t, 1, sched.Pending())
	require.True(t, sched.Step())

	rot := s.Rotation()
	assert.InDelta(t, 0.01, rot.AngleX, 1e-7)
	assert.InDelta(t, 0.02, rot.AngleY, 1e-7)

	sx, cx := math32.Sin(rot.AngleX), math32.Cos(rot.AngleX)
	sy, cy := math32.Sin(rot.AngleY), math32.Cos(rot.AngleY)
	want := [16]float32{
		cy, 0, sy, 0,
		sx * sy, cx, -sx * cy, 0,
		-cx * sy, sx, cx * cy, 0,
		0, 0, -6, 1,
	}
	assertMatrixInDelta(t, want, s.ModelView(), matrixTol)

	mv, ok := ctx.UniformValue(shader.ModelViewUniform)
	require.True(t, ok)
	assert.Equal(t, s.ModelView(), [16]float32(mv))

	proj, ok := ctx.UniformValue(shader.ProjectionUniform)
	require.True(t, ok)
	assert.Equal(t, ProjectionMatrix(), [16]float32(proj))

	draws := ctx.Draws()
	require.Len(t, draws, 1)
	assert.Equal(t, graphics.PrimitiveLines, draws[0].Mode)
	assert.Equal(t, 0, draws[0].First)
	assert.Equal(t, VertexCount, draws[0].Count)

	clears := ctx.Clears()
	require.Len(t, clears, 2)
	assert.Equal(t, graphics.ClearColorBuffer|graphics.ClearDepthBuffer, clears[1])

	assert.Equal(t, 1, sched.Pending(), "tick re-submits itself")
	assert.Equal(t, uint64(1), s.Frames())
	assert.Empty(t, ctx.Errors())
}

func TestRenderStateStartIsIdempotent(t *testing.T) {
	s, ctx, sched := newTestState(t)
	s.Start()
	s.Start()
	require.Equal(t, 1, sched.Pending())

	require.True(t, sched.Step())
	assert.Equal(t, uint64(1), s.Frames())
	assert.InDelta(t, 0.01, s.Rotation().AngleX, 1e-7)
	assert.InDelta(t, 0.02, s.Rotation().AngleY, 1e-7)
	assert.Len(t, ctx.Draws(), 1)

	// restarting a running loop must not add a second tick per frame
	s.Start()
	require.True(t, sched.Step())
	assert.Equal(t, uint64(2), s.Frames())
	assert.InDelta(t, 0.02, s.Rotation().AngleX, 1e-7)
	assert.Equal(t, 1, sched.Pending())
}

func TestRenderStateManyTicks(t *testing.T) {
	s, ctx, sched := newTestState(t)
	s.Start()

	const n = 50
	require.Equal(t, n, sched.Run(n))

	rot := s.Rotation()
	assert.InDelta(t, 0.01*n, rot.AngleX, 1e-4)
	assert.InDelta(t, 0.02*n, rot.AngleY, 1e-4)
	assert.Equal(t, BuildModelView(rot.AngleX, rot.AngleY), s.ModelView())
	assert.Equal(t, ProjectionMatrix(), s.Projection())
	assert.Equal(t, uint64(n), s.Frames())
	assert.Len(t, ctx.Draws(), n)
	assert.Equal(t, 2*n, ctx.UniformUploads())
	for _, d := range ctx.Draws() {
		assert.Equal(t, VertexCount, d.Count)
	}
	data, _ := ctx.ArrayBufferData()
	assert.Equal(t, CubeVertices[:], data, "vertex buffer is never rewritten")
}

func TestRenderStateClearColor(t *testing.T) {
	_, ctx, _ := newTestState(t, WithClearColor(0.1, 0.2, 0.3, 1))
	assert.Equal(t, [4]float32{0.1, 0.2, 0.3, 1}, ctx.ClearColorValue())
}

func TestRenderStateCompileFailure(t *testing.T) {
	ctx := headless.NewContext()
	badFragment := func(s *RenderState) { s.fragmentSource = "void main() {" }

	s, err := NewRenderState(ctx, frame.NewManualScheduler(), badFragment)
	assert.Nil(t, s)

	var compileErr *ShaderCompileError
	require.True(t, errors.As(err, &compileErr))
	assert.Equal(t, graphics.ShaderStageFragment, compileErr.Stage)
	assert.Equal(t, 0, ctx.LiveShaders())
	assert.False(t, ctx.HasActiveProgram())
}

func TestRenderStateMissingUniform(t *testing.T) {
	ctx := headless.NewContext()
	noProjection := func(s *RenderState) {
		s.vertexSource = `
attribute vec4 a_position;
uniform mat4 u_model_view_matrix;
void main() {
    gl_Position = u_model_view_matrix * a_position;
}
`
	}

	_, err := NewRenderState(ctx, frame.NewManualScheduler(), noProjection)
	var lookupErr *UniformLookupError
	require.True(t, errors.As(err, &lookupErr))
	assert.Equal(t, shader.ProjectionUniform, lookupErr.Name)
	assert.Equal(t, LocationUniform, lookupErr.Kind)
	assert.EqualError(t, err, `program has no active uniform "u_projection_matrix"`)
}

func TestRenderStateSharedUniformDeclaration(t *testing.T) {
	sharedDecl := func(s *RenderState) {
		s.vertexSource = `
attribute vec4 a_position;
uniform mat4 u_model_view_matrix, u_projection_matrix;
void main() {
    gl_Position = u_projection_matrix * u_model_view_matrix * a_position;
}
`
	}
	s, ctx, sched := newTestState(t, sharedDecl)
	s.Start()
	require.True(t, sched.Step())

	_, ok := ctx.UniformValue(shader.ProjectionUniform)
	assert.True(t, ok)
	assert.Empty(t, ctx.Errors())
}

func TestRenderStateBufferFailure(t *testing.T) {
	_, err := NewRenderState(headless.NewContext(headless.WithFailBufferAllocation()), frame.NewManualScheduler())
	var bufErr *BufferAllocationError
	assert.True(t, errors.As(err, &bufErr))
}

func TestRenderStateRequiresHost(t *testing.T) {
	_, err := NewRenderState(nil, frame.NewManualScheduler())
	assert.Error(t, err)

	_, err = NewRenderState(headless.NewContext(), nil)
	assert.Error(t, err)
}
