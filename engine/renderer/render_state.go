package renderer

import (
	"fmt"

	"github.com/Carmen-Shannon/wirecube/common"
	"github.com/Carmen-Shannon/wirecube/engine/frame"
	"github.com/Carmen-Shannon/wirecube/engine/graphics"
	"github.com/Carmen-Shannon/wirecube/engine/renderer/shader"
)

// RenderState owns everything the frame loop touches: the drawing surface, the linked
// program, the vertex buffer, the resolved locations and the rotation angles.
// It implements frame.Ticker; each Tick draws one frame and re-submits the state to
// its scheduler, so the loop runs until the host stops invoking the scheduler.
// Not safe for concurrent use; all calls happen on the surface's thread.
type RenderState struct {
	ctx       graphics.Context
	scheduler frame.Scheduler

	program graphics.Program
	buffer  graphics.Buffer

	positionLocation   int
	modelViewLocation  graphics.Uniform
	projectionLocation graphics.Uniform

	rotation   Rotation
	modelView  [16]float32
	projection [16]float32

	clearColor     [4]float32
	vertexSource   string
	fragmentSource string

	frames  uint64
	started bool
}

var _ frame.Ticker = &RenderState{}

// NewRenderState runs the startup sequence against ctx: clear the surface, compile both
// shader stages, link and activate the program, upload the cube geometry and resolve the
// matrix uniforms. The first failure aborts startup and is returned unchanged.
//
// Parameters:
//   - ctx: the drawing surface
//   - scheduler: the host frame clock the loop re-submits itself to
//   - options: functional options applied before startup
//
// Returns:
//   - *RenderState: the ready render state, not yet scheduled (see Start)
//   - error: a *ShaderCompileError, *ProgramLinkError, *BufferAllocationError or *UniformLookupError
func NewRenderState(ctx graphics.Context, scheduler frame.Scheduler, options ...RenderStateBuilderOption) (*RenderState, error) {
	if ctx == nil {
		return nil, fmt.Errorf("render state requires a graphics context")
	}
	if scheduler == nil {
		return nil, fmt.Errorf("render state requires a frame scheduler")
	}

	s := &RenderState{
		ctx:            ctx,
		scheduler:      scheduler,
		clearColor:     [4]float32{0, 0, 0, 1},
		vertexSource:   shader.VertexSource,
		fragmentSource: shader.FragmentSource,
		projection:     ProjectionMatrix(),
	}
	for _, opt := range options {
		opt(s)
	}

	ctx.ClearColor(s.clearColor[0], s.clearColor[1], s.clearColor[2], s.clearColor[3])
	ctx.Clear(graphics.ClearColorBuffer | graphics.ClearDepthBuffer)

	vs, err := CompileShader(ctx, graphics.ShaderStageVertex, s.vertexSource)
	if err != nil {
		return nil, err
	}
	fs, err := CompileShader(ctx, graphics.ShaderStageFragment, s.fragmentSource)
	if err != nil {
		ctx.DeleteShader(vs)
		return nil, err
	}

	s.program, err = LinkProgram(ctx, vs, fs)
	// shaders are no longer needed once linked; the program keeps what it uses
	ctx.DeleteShader(vs)
	ctx.DeleteShader(fs)
	if err != nil {
		return nil, err
	}
	ctx.UseProgram(s.program)

	s.buffer, s.positionLocation, err = UploadGeometry(ctx, s.program)
	if err != nil {
		return nil, err
	}

	if s.modelViewLocation = ctx.UniformLocation(s.program, shader.ModelViewUniform); s.modelViewLocation == nil {
		return nil, &UniformLookupError{Name: shader.ModelViewUniform, Kind: LocationUniform}
	}
	if s.projectionLocation = ctx.UniformLocation(s.program, shader.ProjectionUniform); s.projectionLocation == nil {
		return nil, &UniformLookupError{Name: shader.ProjectionUniform, Kind: LocationUniform}
	}

	s.modelView = s.rotation.ModelView()
	common.Logger().Debug("render state ready", "position", s.positionLocation)
	return s, nil
}

// Start registers the render state with its scheduler for the first frame.
// The loop keeps itself scheduled from then on; later calls do nothing.
func (s *RenderState) Start() {
	if s.started {
		return
	}
	s.started = true
	s.scheduler.RequestFrame(s)
}

// Tick draws one frame: advance the rotation, rebuild both matrices, clear color and depth,
// upload the matrices, draw the 24-vertex line list and request the next frame.
func (s *RenderState) Tick() {
	s.rotation.Advance()
	s.modelView = s.rotation.ModelView()
	s.projection = ProjectionMatrix()

	s.ctx.Clear(graphics.ClearColorBuffer | graphics.ClearDepthBuffer)
	s.ctx.UniformMatrix4fv(s.modelViewLocation, false, s.modelView[:])
	s.ctx.UniformMatrix4fv(s.projectionLocation, false, s.projection[:])
	s.ctx.DrawArrays(graphics.PrimitiveLines, 0, VertexCount)

	s.frames++
	s.scheduler.RequestFrame(s)
}

// Rotation returns the current rotation angles.
func (s *RenderState) Rotation() Rotation {
	return s.rotation
}

// ModelView returns the model-view matrix uploaded by the last frame
// (the identity rotation before the first frame).
func (s *RenderState) ModelView() [16]float32 {
	return s.modelView
}

// Projection returns the projection matrix uploaded by the last frame.
func (s *RenderState) Projection() [16]float32 {
	return s.projection
}

// Frames returns the number of frames drawn.
func (s *RenderState) Frames() uint64 {
	return s.frames
}

// Program returns the active program.
func (s *RenderState) Program() graphics.Program {
	return s.program
}

// PositionLocation returns the attribute index the cube vertices are bound to.
func (s *RenderState) PositionLocation() int {
	return s.positionLocation
}
