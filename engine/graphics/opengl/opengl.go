//go:build !js

package opengl

import (
	"strings"

	"github.com/Carmen-Shannon/wirecube/common"
	"github.com/Carmen-Shannon/wirecube/engine/graphics"
	"github.com/Carmen-Shannon/wirecube/engine/renderer/shader"
	"github.com/go-gl/gl/v2.1/gl"
)

type shaderHandle uint32
type programHandle uint32
type bufferHandle uint32
type uniformHandle int32

// Context is a graphics.Context on the desktop OpenGL 2.1 API.
// An OpenGL context must be current on the calling thread for every method,
// including NewContext.
type Context struct {
	pre shader.PreProcessor

	// preprocessing failures keyed by shader, reported as compile failures
	sourceErrors map[shaderHandle]string
}

var _ graphics.Context = &Context{}

// NewContext loads the OpenGL function pointers for the current context.
//
// Returns:
//   - *Context: the desktop backend
//   - error: a *graphics.ContextCreationError if the GL entry points could not be loaded
func NewContext() (*Context, error) {
	if err := gl.Init(); err != nil {
		return nil, &graphics.ContextCreationError{API: "opengl 2.1", Err: err}
	}
	common.Logger().Info("opengl context ready",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)),
	)
	return &Context{
		pre:          shader.NewPreProcessor(shader.DesktopGLSLVersion),
		sourceErrors: make(map[shaderHandle]string),
	}, nil
}

func (c *Context) CreateShader(stage graphics.ShaderStage) graphics.Shader {
	kind := uint32(gl.VERTEX_SHADER)
	if stage == graphics.ShaderStageFragment {
		kind = gl.FRAGMENT_SHADER
	}
	id := gl.CreateShader(kind)
	if id == 0 {
		return nil
	}
	return shaderHandle(id)
}

func (c *Context) ShaderSource(s graphics.Shader, source string) {
	h, ok := s.(shaderHandle)
	if !ok {
		return
	}
	processed, err := c.pre.Process(source)
	if err != nil {
		c.sourceErrors[h] = err.Error()
		return
	}
	delete(c.sourceErrors, h)
	common.Logger().Debug("shader source rewritten for desktop GL",
		"version", shader.DesktopGLSLVersion,
		"precision_stripped", c.pre.Stripped(),
	)

	csources, free := gl.Strs(processed + "\x00")
	gl.ShaderSource(uint32(h), 1, csources, nil)
	free()
}

func (c *Context) CompileShader(s graphics.Shader) {
	h, ok := s.(shaderHandle)
	if !ok {
		return
	}
	if _, failed := c.sourceErrors[h]; failed {
		return
	}
	gl.CompileShader(uint32(h))
}

func (c *Context) ShaderCompileStatus(s graphics.Shader) bool {
	h, ok := s.(shaderHandle)
	if !ok {
		return false
	}
	if _, failed := c.sourceErrors[h]; failed {
		return false
	}
	var status int32
	gl.GetShaderiv(uint32(h), gl.COMPILE_STATUS, &status)
	return status == gl.TRUE
}

func (c *Context) ShaderInfoLog(s graphics.Shader) string {
	h, ok := s.(shaderHandle)
	if !ok {
		return ""
	}
	if msg, failed := c.sourceErrors[h]; failed {
		return msg
	}
	var logLength int32
	gl.GetShaderiv(uint32(h), gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(uint32(h), logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (c *Context) DeleteShader(s graphics.Shader) {
	if h, ok := s.(shaderHandle); ok {
		delete(c.sourceErrors, h)
		gl.DeleteShader(uint32(h))
	}
}

func (c *Context) CreateProgram() graphics.Program {
	id := gl.CreateProgram()
	if id == 0 {
		return nil
	}
	return programHandle(id)
}

func (c *Context) AttachShader(p graphics.Program, s graphics.Shader) {
	ph, ok := p.(programHandle)
	sh, ok2 := s.(shaderHandle)
	if ok && ok2 {
		gl.AttachShader(uint32(ph), uint32(sh))
	}
}

func (c *Context) LinkProgram(p graphics.Program) {
	if h, ok := p.(programHandle); ok {
		gl.LinkProgram(uint32(h))
	}
}

func (c *Context) ProgramLinkStatus(p graphics.Program) bool {
	h, ok := p.(programHandle)
	if !ok {
		return false
	}
	var status int32
	gl.GetProgramiv(uint32(h), gl.LINK_STATUS, &status)
	return status == gl.TRUE
}

func (c *Context) ProgramInfoLog(p graphics.Program) string {
	h, ok := p.(programHandle)
	if !ok {
		return ""
	}
	var logLength int32
	gl.GetProgramiv(uint32(h), gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return ""
	}
	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetProgramInfoLog(uint32(h), logLength, nil, gl.Str(log))
	return strings.TrimRight(log, "\x00")
}

func (c *Context) DeleteProgram(p graphics.Program) {
	if h, ok := p.(programHandle); ok {
		gl.DeleteProgram(uint32(h))
	}
}

func (c *Context) UseProgram(p graphics.Program) {
	if h, ok := p.(programHandle); ok {
		gl.UseProgram(uint32(h))
	}
}

func (c *Context) CreateBuffer() graphics.Buffer {
	var id uint32
	gl.GenBuffers(1, &id)
	if id == 0 {
		return nil
	}
	return bufferHandle(id)
}

func (c *Context) BindArrayBuffer(b graphics.Buffer) {
	h, _ := b.(bufferHandle)
	gl.BindBuffer(gl.ARRAY_BUFFER, uint32(h))
}

func (c *Context) BufferData(data []float32, usage graphics.BufferUsage) {
	hint := uint32(gl.STATIC_DRAW)
	if usage == graphics.BufferUsageDynamicDraw {
		hint = gl.DYNAMIC_DRAW
	}
	if len(data) == 0 {
		gl.BufferData(gl.ARRAY_BUFFER, 0, nil, hint)
		return
	}
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*4, gl.Ptr(data), hint)
}

func (c *Context) AttribLocation(p graphics.Program, name string) int {
	h, ok := p.(programHandle)
	if !ok {
		return -1
	}
	return int(gl.GetAttribLocation(uint32(h), gl.Str(name+"\x00")))
}

func (c *Context) VertexAttribPointer(index, size int, normalized bool, stride, offset int) {
	gl.VertexAttribPointer(uint32(index), int32(size), gl.FLOAT, normalized, int32(stride), gl.PtrOffset(offset))
}

func (c *Context) EnableVertexAttribArray(index int) {
	gl.EnableVertexAttribArray(uint32(index))
}

func (c *Context) UniformLocation(p graphics.Program, name string) graphics.Uniform {
	h, ok := p.(programHandle)
	if !ok {
		return nil
	}
	loc := gl.GetUniformLocation(uint32(h), gl.Str(name+"\x00"))
	if loc < 0 {
		return nil
	}
	return uniformHandle(loc)
}

func (c *Context) UniformMatrix4fv(u graphics.Uniform, transpose bool, m []float32) {
	h, ok := u.(uniformHandle)
	if !ok || len(m) < 16 {
		return
	}
	gl.UniformMatrix4fv(int32(h), 1, transpose, &m[0])
}

func (c *Context) ClearColor(r, g, b, a float32) {
	gl.ClearColor(r, g, b, a)
}

func (c *Context) Clear(mask graphics.ClearMask) {
	var bits uint32
	if mask&graphics.ClearColorBuffer != 0 {
		bits |= gl.COLOR_BUFFER_BIT
	}
	if mask&graphics.ClearDepthBuffer != 0 {
		bits |= gl.DEPTH_BUFFER_BIT
	}
	gl.Clear(bits)
}

func (c *Context) DrawArrays(mode graphics.Primitive, first, count int) {
	prim := uint32(gl.LINES)
	if mode == graphics.PrimitiveTriangles {
		prim = gl.TRIANGLES
	}
	gl.DrawArrays(prim, int32(first), int32(count))
}
