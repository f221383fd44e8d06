// Package headless provides an in-memory graphics.Context. It validates shader
// structure, links programs, stores buffer contents and records every clear,
// uniform upload and draw call, without touching a GPU. Tests and headless
// hosts use it in place of a browser or desktop surface.
package headless

import (
	"fmt"
	"slices"
	"strings"

	"github.com/Carmen-Shannon/wirecube/engine/graphics"
)

type shaderObject struct {
	id       int
	stage    graphics.ShaderStage
	source   string
	compiled bool
	log      string
	decls    declarations
	deleted  bool
}

type programObject struct {
	id         int
	attached   []*shaderObject
	linked     bool
	log        string
	attributes map[string]int
	uniforms   map[string]*uniformLocation
	values     map[string][]float32
	deleted    bool
}

type uniformLocation struct {
	program *programObject
	name    string
}

type bufferObject struct {
	id    int
	data  []float32
	usage graphics.BufferUsage
}

// AttribPointer is the recorded configuration of one vertex attribute index.
type AttribPointer struct {
	// BufferID identifies the array buffer bound when the pointer was configured.
	BufferID int

	// Size is the number of float components read per vertex.
	Size int

	// Normalized is the normalization flag passed with the pointer.
	Normalized bool

	// Stride and Offset are the byte stride and byte offset passed with the pointer.
	Stride, Offset int

	// Enabled reports whether the attribute array was enabled.
	Enabled bool
}

// DrawCall is one recorded DrawArrays invocation.
type DrawCall struct {
	// Mode is the primitive assembly mode.
	Mode graphics.Primitive

	// First and Count are the vertex range that was drawn.
	First, Count int

	// ProgramID identifies the active program at draw time.
	ProgramID int
}

// Context is the headless implementation of graphics.Context.
// It is not safe for concurrent use, matching the single-threaded surfaces it stands in for.
type Context struct {
	nextID int

	failShaders  bool
	failPrograms bool
	failBuffers  bool

	shaders    []*shaderObject
	buffers    map[int]*bufferObject
	active     *programObject
	boundArray *bufferObject
	attribs    map[int]*AttribPointer
	clearColor [4]float32
	clears     []graphics.ClearMask
	draws      []DrawCall
	uploads    int
	errors     []string
}

var _ graphics.Context = &Context{}

// NewContext creates an empty headless Context with all options applied.
//
// Parameters:
//   - options: functional options for failure injection
//
// Returns:
//   - *Context: the new context
func NewContext(options ...ContextBuilderOption) *Context {
	c := &Context{
		attribs: make(map[int]*AttribPointer),
		buffers: make(map[int]*bufferObject),
	}
	for _, opt := range options {
		opt(c)
	}
	return c
}

// invalid records a GL-style error instead of failing the call.
func (c *Context) invalid(format string, args ...any) {
	c.errors = append(c.errors, fmt.Sprintf(format, args...))
}

func (c *Context) id() int {
	c.nextID++
	return c.nextID
}

func (c *Context) shader(s graphics.Shader, op string) *shaderObject {
	obj, ok := s.(*shaderObject)
	if !ok || obj == nil || obj.deleted {
		c.invalid("%s: invalid shader", op)
		return nil
	}
	return obj
}

func (c *Context) program(p graphics.Program, op string) *programObject {
	obj, ok := p.(*programObject)
	if !ok || obj == nil || obj.deleted {
		c.invalid("%s: invalid program", op)
		return nil
	}
	return obj
}

func (c *Context) CreateShader(stage graphics.ShaderStage) graphics.Shader {
	if c.failShaders {
		return nil
	}
	if stage != graphics.ShaderStageVertex && stage != graphics.ShaderStageFragment {
		c.invalid("createShader: invalid stage %d", stage)
		return nil
	}
	s := &shaderObject{id: c.id(), stage: stage}
	c.shaders = append(c.shaders, s)
	return s
}

func (c *Context) ShaderSource(s graphics.Shader, source string) {
	if obj := c.shader(s, "shaderSource"); obj != nil {
		obj.source = source
	}
}

func (c *Context) CompileShader(s graphics.Shader) {
	obj := c.shader(s, "compileShader")
	if obj == nil {
		return
	}
	decls, err := validate(obj.stage, obj.source)
	if err != nil {
		obj.compiled = false
		obj.log = err.Error()
		obj.decls = declarations{}
		return
	}
	obj.compiled = true
	obj.log = ""
	obj.decls = decls
}

func (c *Context) ShaderCompileStatus(s graphics.Shader) bool {
	obj := c.shader(s, "getShaderParameter")
	return obj != nil && obj.compiled
}

func (c *Context) ShaderInfoLog(s graphics.Shader) string {
	if obj := c.shader(s, "getShaderInfoLog"); obj != nil {
		return obj.log
	}
	return ""
}

func (c *Context) DeleteShader(s graphics.Shader) {
	if obj := c.shader(s, "deleteShader"); obj != nil {
		obj.deleted = true
	}
}

func (c *Context) CreateProgram() graphics.Program {
	if c.failPrograms {
		return nil
	}
	return &programObject{id: c.id()}
}

func (c *Context) AttachShader(p graphics.Program, s graphics.Shader) {
	prog := c.program(p, "attachShader")
	obj := c.shader(s, "attachShader")
	if prog == nil || obj == nil {
		return
	}
	if slices.Contains(prog.attached, obj) {
		c.invalid("attachShader: shader %d already attached", obj.id)
		return
	}
	prog.attached = append(prog.attached, obj)
}

func (c *Context) LinkProgram(p graphics.Program) {
	prog := c.program(p, "linkProgram")
	if prog == nil {
		return
	}
	prog.linked = false
	prog.attributes = nil
	prog.uniforms = nil
	prog.values = nil

	var vertex, fragment []*shaderObject
	for _, s := range prog.attached {
		if !s.compiled {
			prog.log = fmt.Sprintf("ERROR: %s shader %d is not compiled", s.stage, s.id)
			return
		}
		if s.stage == graphics.ShaderStageVertex {
			vertex = append(vertex, s)
		} else {
			fragment = append(fragment, s)
		}
	}
	if len(vertex) != 1 || len(fragment) != 1 {
		prog.log = fmt.Sprintf("ERROR: program needs exactly one vertex and one fragment shader, has %d vertex and %d fragment", len(vertex), len(fragment))
		return
	}

	prog.attributes = make(map[string]int)
	for i, name := range vertex[0].decls.attributes {
		prog.attributes[name] = i
	}
	prog.uniforms = make(map[string]*uniformLocation)
	for _, name := range append(slices.Clone(vertex[0].decls.uniforms), fragment[0].decls.uniforms...) {
		if _, ok := prog.uniforms[name]; !ok {
			prog.uniforms[name] = &uniformLocation{program: prog, name: name}
		}
	}
	prog.values = make(map[string][]float32)
	prog.linked = true
	prog.log = ""
}

func (c *Context) ProgramLinkStatus(p graphics.Program) bool {
	prog := c.program(p, "getProgramParameter")
	return prog != nil && prog.linked
}

func (c *Context) ProgramInfoLog(p graphics.Program) string {
	if prog := c.program(p, "getProgramInfoLog"); prog != nil {
		return prog.log
	}
	return ""
}

func (c *Context) DeleteProgram(p graphics.Program) {
	prog := c.program(p, "deleteProgram")
	if prog == nil {
		return
	}
	prog.attached = nil
	prog.deleted = true
	if c.active == prog {
		c.active = nil
	}
}

func (c *Context) UseProgram(p graphics.Program) {
	prog := c.program(p, "useProgram")
	if prog == nil {
		return
	}
	if !prog.linked {
		c.invalid("useProgram: program %d is not linked", prog.id)
		return
	}
	c.active = prog
}

func (c *Context) CreateBuffer() graphics.Buffer {
	if c.failBuffers {
		return nil
	}
	b := &bufferObject{id: c.id()}
	c.buffers[b.id] = b
	return b
}

func (c *Context) BindArrayBuffer(b graphics.Buffer) {
	if b == nil {
		c.boundArray = nil
		return
	}
	buf, ok := b.(*bufferObject)
	if !ok {
		c.invalid("bindBuffer: invalid buffer")
		return
	}
	c.boundArray = buf
}

func (c *Context) BufferData(data []float32, usage graphics.BufferUsage) {
	if c.boundArray == nil {
		c.invalid("bufferData: no array buffer bound")
		return
	}
	c.boundArray.data = slices.Clone(data)
	c.boundArray.usage = usage
}

func (c *Context) AttribLocation(p graphics.Program, name string) int {
	prog := c.program(p, "getAttribLocation")
	if prog == nil || !prog.linked {
		return -1
	}
	if idx, ok := prog.attributes[name]; ok {
		return idx
	}
	return -1
}

func (c *Context) VertexAttribPointer(index, size int, normalized bool, stride, offset int) {
	if index < 0 {
		c.invalid("vertexAttribPointer: invalid index %d", index)
		return
	}
	if c.boundArray == nil {
		c.invalid("vertexAttribPointer: no array buffer bound")
		return
	}
	if size < 1 || size > 4 {
		c.invalid("vertexAttribPointer: invalid size %d", size)
		return
	}
	ap := c.attribs[index]
	if ap == nil {
		ap = &AttribPointer{}
		c.attribs[index] = ap
	}
	ap.BufferID = c.boundArray.id
	ap.Size = size
	ap.Normalized = normalized
	ap.Stride = stride
	ap.Offset = offset
}

func (c *Context) EnableVertexAttribArray(index int) {
	if index < 0 {
		c.invalid("enableVertexAttribArray: invalid index %d", index)
		return
	}
	ap := c.attribs[index]
	if ap == nil {
		ap = &AttribPointer{}
		c.attribs[index] = ap
	}
	ap.Enabled = true
}

func (c *Context) UniformLocation(p graphics.Program, name string) graphics.Uniform {
	prog := c.program(p, "getUniformLocation")
	if prog == nil || !prog.linked {
		return nil
	}
	if loc, ok := prog.uniforms[name]; ok {
		return loc
	}
	return nil
}

func (c *Context) UniformMatrix4fv(u graphics.Uniform, transpose bool, m []float32) {
	loc, ok := u.(*uniformLocation)
	if !ok || loc == nil {
		c.invalid("uniformMatrix4fv: invalid location")
		return
	}
	if loc.program != c.active {
		c.invalid("uniformMatrix4fv: location %q does not belong to the active program", loc.name)
		return
	}
	if transpose {
		c.invalid("uniformMatrix4fv: transpose must be false")
		return
	}
	if len(m) != 16 {
		c.invalid("uniformMatrix4fv: expected 16 values, got %d", len(m))
		return
	}
	loc.program.values[loc.name] = slices.Clone(m)
	c.uploads++
}

func (c *Context) ClearColor(r, g, b, a float32) {
	c.clearColor = [4]float32{r, g, b, a}
}

func (c *Context) Clear(mask graphics.ClearMask) {
	c.clears = append(c.clears, mask)
}

func (c *Context) DrawArrays(mode graphics.Primitive, first, count int) {
	if c.active == nil {
		c.invalid("drawArrays: no active program")
		return
	}
	if first < 0 || count < 0 {
		c.invalid("drawArrays: negative range")
		return
	}
	for idx, ap := range c.attribs {
		if !ap.Enabled {
			continue
		}
		buf := c.buffers[ap.BufferID]
		if buf == nil {
			c.invalid("drawArrays: attribute %d has no buffer", idx)
			return
		}
		stride := ap.Stride
		if stride == 0 {
			stride = ap.Size * 4
		}
		if need := ap.Offset + (first+count-1)*stride + ap.Size*4; count > 0 && need > len(buf.data)*4 {
			c.invalid("drawArrays: attribute %d reads %d bytes from a %d byte buffer", idx, need, len(buf.data)*4)
			return
		}
	}
	c.draws = append(c.draws, DrawCall{Mode: mode, First: first, Count: count, ProgramID: c.active.id})
}

// ArrayBufferData returns a copy of the contents of the bound array buffer.
//
// Returns:
//   - []float32: the uploaded floats, nil if no buffer is bound
//   - graphics.BufferUsage: the usage hint of the last upload
func (c *Context) ArrayBufferData() ([]float32, graphics.BufferUsage) {
	if c.boundArray == nil {
		return nil, 0
	}
	return slices.Clone(c.boundArray.data), c.boundArray.usage
}

// Attrib returns the recorded configuration of an attribute index.
func (c *Context) Attrib(index int) (AttribPointer, bool) {
	ap, ok := c.attribs[index]
	if !ok {
		return AttribPointer{}, false
	}
	return *ap, true
}

// UniformValue returns the last matrix uploaded to a uniform of the active program.
func (c *Context) UniformValue(name string) ([]float32, bool) {
	if c.active == nil {
		return nil, false
	}
	v, ok := c.active.values[name]
	return slices.Clone(v), ok
}

// UniformUploads returns the total number of successful uniform uploads.
func (c *Context) UniformUploads() int {
	return c.uploads
}

// HasActiveProgram reports whether a linked program is in use.
func (c *Context) HasActiveProgram() bool {
	return c.active != nil
}

// ClearColorValue returns the current clear color.
func (c *Context) ClearColorValue() [4]float32 {
	return c.clearColor
}

// Clears returns the mask of every Clear call, in order.
func (c *Context) Clears() []graphics.ClearMask {
	return slices.Clone(c.clears)
}

// Draws returns every recorded draw call, in order.
func (c *Context) Draws() []DrawCall {
	return slices.Clone(c.draws)
}

// LiveShaders returns the number of shader objects not flagged for deletion.
func (c *Context) LiveShaders() int {
	n := 0
	for _, s := range c.shaders {
		if !s.deleted {
			n++
		}
	}
	return n
}

// Errors returns the invalid operations recorded so far, like a drained glGetError queue.
func (c *Context) Errors() []string {
	return slices.Clone(c.errors)
}

// String summarizes the recorded state for test failure output.
func (c *Context) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "headless.Context{shaders: %d live, draws: %d, clears: %d, uploads: %d", c.LiveShaders(), len(c.draws), len(c.clears), c.uploads)
	if len(c.errors) > 0 {
		fmt.Fprintf(&sb, ", errors: %q", c.errors)
	}
	sb.WriteString("}")
	return sb.String()
}
