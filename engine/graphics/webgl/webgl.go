//go:build js && wasm

package webgl

import (
	"syscall/js"

	"github.com/Carmen-Shannon/wirecube/common"
	"github.com/Carmen-Shannon/wirecube/engine/graphics"
)

// Context is a graphics.Context backed by a WebGLRenderingContext.
// Handles are js.Value wrappers around the WebGL objects; a JS null maps to a nil handle.
type Context struct {
	gl js.Value

	// constants read once from the rendering context
	vertexShader   js.Value
	fragmentShader js.Value
	compileStatus  js.Value
	linkStatus     js.Value
	arrayBuffer    js.Value
	staticDraw     js.Value
	dynamicDraw    js.Value
	float          js.Value
	colorBit       int
	depthBit       int
	lines          js.Value
	triangles      js.Value

	float32Array js.Value
	uint8Array   js.Value
}

var _ graphics.Context = &Context{}

// NewContext looks up the canvas element with the given id and acquires its "webgl" context.
//
// Parameters:
//   - canvasID: the id attribute of the target canvas element
//
// Returns:
//   - *Context: the wrapped rendering context
//   - error: a *graphics.ElementLookupError or *graphics.ContextCreationError
func NewContext(canvasID string) (*Context, error) {
	doc := js.Global().Get("document")
	canvas := doc.Call("getElementById", canvasID)
	if isNull(canvas) {
		return nil, &graphics.ElementLookupError{ID: canvasID, Reason: "no such element"}
	}
	if canvas.Get("getContext").Type() != js.TypeFunction {
		return nil, &graphics.ElementLookupError{ID: canvasID, Reason: "element is not a canvas"}
	}

	gl := canvas.Call("getContext", "webgl")
	if isNull(gl) {
		return nil, &graphics.ContextCreationError{API: "webgl"}
	}

	c := &Context{
		gl:             gl,
		vertexShader:   gl.Get("VERTEX_SHADER"),
		fragmentShader: gl.Get("FRAGMENT_SHADER"),
		compileStatus:  gl.Get("COMPILE_STATUS"),
		linkStatus:     gl.Get("LINK_STATUS"),
		arrayBuffer:    gl.Get("ARRAY_BUFFER"),
		staticDraw:     gl.Get("STATIC_DRAW"),
		dynamicDraw:    gl.Get("DYNAMIC_DRAW"),
		float:          gl.Get("FLOAT"),
		colorBit:       gl.Get("COLOR_BUFFER_BIT").Int(),
		depthBit:       gl.Get("DEPTH_BUFFER_BIT").Int(),
		lines:          gl.Get("LINES"),
		triangles:      gl.Get("TRIANGLES"),
		float32Array:   js.Global().Get("Float32Array"),
		uint8Array:     js.Global().Get("Uint8Array"),
	}
	common.Logger().Debug("webgl context acquired", "canvas", canvasID)
	return c, nil
}

func isNull(v js.Value) bool {
	return v.IsNull() || v.IsUndefined()
}

// handle converts a JS object into a graphics handle, mapping null to nil.
func handle(v js.Value) any {
	if isNull(v) {
		return nil
	}
	return v
}

// value unwraps a graphics handle; nil becomes JS null.
func value(h any) js.Value {
	if v, ok := h.(js.Value); ok {
		return v
	}
	return js.Null()
}

// float32s copies data into a new Float32Array.
func (c *Context) float32s(data []float32) js.Value {
	raw := common.SliceToBytes(data)
	bytes := c.uint8Array.New(len(raw))
	js.CopyBytesToJS(bytes, raw)
	return c.float32Array.New(bytes.Get("buffer"))
}

func (c *Context) CreateShader(stage graphics.ShaderStage) graphics.Shader {
	kind := c.vertexShader
	if stage == graphics.ShaderStageFragment {
		kind = c.fragmentShader
	}
	return handle(c.gl.Call("createShader", kind))
}

func (c *Context) ShaderSource(s graphics.Shader, source string) {
	c.gl.Call("shaderSource", value(s), source)
}

func (c *Context) CompileShader(s graphics.Shader) {
	c.gl.Call("compileShader", value(s))
}

func (c *Context) ShaderCompileStatus(s graphics.Shader) bool {
	return c.gl.Call("getShaderParameter", value(s), c.compileStatus).Truthy()
}

func (c *Context) ShaderInfoLog(s graphics.Shader) string {
	log := c.gl.Call("getShaderInfoLog", value(s))
	if isNull(log) {
		return ""
	}
	return log.String()
}

func (c *Context) DeleteShader(s graphics.Shader) {
	c.gl.Call("deleteShader", value(s))
}

func (c *Context) CreateProgram() graphics.Program {
	return handle(c.gl.Call("createProgram"))
}

func (c *Context) AttachShader(p graphics.Program, s graphics.Shader) {
	c.gl.Call("attachShader", value(p), value(s))
}

func (c *Context) LinkProgram(p graphics.Program) {
	c.gl.Call("linkProgram", value(p))
}

func (c *Context) ProgramLinkStatus(p graphics.Program) bool {
	return c.gl.Call("getProgramParameter", value(p), c.linkStatus).Truthy()
}

func (c *Context) ProgramInfoLog(p graphics.Program) string {
	log := c.gl.Call("getProgramInfoLog", value(p))
	if isNull(log) {
		return ""
	}
	return log.String()
}

func (c *Context) DeleteProgram(p graphics.Program) {
	c.gl.Call("deleteProgram", value(p))
}

func (c *Context) UseProgram(p graphics.Program) {
	c.gl.Call("useProgram", value(p))
}

func (c *Context) CreateBuffer() graphics.Buffer {
	return handle(c.gl.Call("createBuffer"))
}

func (c *Context) BindArrayBuffer(b graphics.Buffer) {
	c.gl.Call("bindBuffer", c.arrayBuffer, value(b))
}

func (c *Context) BufferData(data []float32, usage graphics.BufferUsage) {
	hint := c.staticDraw
	if usage == graphics.BufferUsageDynamicDraw {
		hint = c.dynamicDraw
	}
	c.gl.Call("bufferData", c.arrayBuffer, c.float32s(data), hint)
}

func (c *Context) AttribLocation(p graphics.Program, name string) int {
	return c.gl.Call("getAttribLocation", value(p), name).Int()
}

func (c *Context) VertexAttribPointer(index, size int, normalized bool, stride, offset int) {
	c.gl.Call("vertexAttribPointer", index, size, c.float, normalized, stride, offset)
}

func (c *Context) EnableVertexAttribArray(index int) {
	c.gl.Call("enableVertexAttribArray", index)
}

func (c *Context) UniformLocation(p graphics.Program, name string) graphics.Uniform {
	return handle(c.gl.Call("getUniformLocation", value(p), name))
}

func (c *Context) UniformMatrix4fv(u graphics.Uniform, transpose bool, m []float32) {
	c.gl.Call("uniformMatrix4fv", value(u), transpose, c.float32s(m))
}

func (c *Context) ClearColor(r, g, b, a float32) {
	c.gl.Call("clearColor", r, g, b, a)
}

func (c *Context) Clear(mask graphics.ClearMask) {
	bits := 0
	if mask&graphics.ClearColorBuffer != 0 {
		bits |= c.colorBit
	}
	if mask&graphics.ClearDepthBuffer != 0 {
		bits |= c.depthBit
	}
	c.gl.Call("clear", bits)
}

func (c *Context) DrawArrays(mode graphics.Primitive, first, count int) {
	prim := c.lines
	if mode == graphics.PrimitiveTriangles {
		prim = c.triangles
	}
	c.gl.Call("drawArrays", prim, first, count)
}
