// Package graphics defines the drawing surface capability the renderer consumes.
// Backends (WebGL in the browser, OpenGL on the desktop, an in-memory headless
// context for tests) implement Context; the renderer never touches a GPU API directly.
package graphics

// ShaderStage identifies the pipeline stage a shader object is compiled for.
type ShaderStage int

const (
	// ShaderStageVertex is the vertex processing stage.
	ShaderStageVertex ShaderStage = iota

	// ShaderStageFragment is the fragment processing stage.
	ShaderStageFragment
)

func (s ShaderStage) String() string {
	switch s {
	case ShaderStageVertex:
		return "vertex"
	case ShaderStageFragment:
		return "fragment"
	default:
		return "unknown"
	}
}

// Primitive selects how DrawArrays assembles vertices.
type Primitive int

const (
	// PrimitiveLines draws each consecutive pair of vertices as one line segment.
	PrimitiveLines Primitive = iota

	// PrimitiveTriangles draws each consecutive triple of vertices as one triangle.
	PrimitiveTriangles
)

// BufferUsage is the usage hint passed with a buffer upload.
type BufferUsage int

const (
	// BufferUsageStaticDraw marks data that is uploaded once and drawn many times.
	BufferUsageStaticDraw BufferUsage = iota

	// BufferUsageDynamicDraw marks data that is rewritten often.
	BufferUsageDynamicDraw
)

// ClearMask selects which frame buffer planes Clear resets.
type ClearMask uint32

const (
	// ClearColorBuffer clears the color plane to the current clear color.
	ClearColorBuffer ClearMask = 1 << iota

	// ClearDepthBuffer clears the depth plane.
	ClearDepthBuffer
)

// Shader, Program, Buffer and Uniform are opaque backend object handles.
// A nil handle means the backend could not provide the object.
type (
	Shader  any
	Program any
	Buffer  any
	Uniform any
)

// Context is the host drawing surface. Methods mirror the WebGL 1 rendering context.
// Calls are assumed to run on the thread that owns the surface.
type Context interface {
	// CreateShader allocates a new shader object for the given stage.
	//
	// Returns:
	//   - Shader: the new shader object, or nil if allocation failed
	CreateShader(stage ShaderStage) Shader

	// ShaderSource replaces the source text of a shader object.
	ShaderSource(s Shader, source string)

	// CompileShader compiles the current source of a shader object.
	CompileShader(s Shader)

	// ShaderCompileStatus reports whether the last compile succeeded.
	ShaderCompileStatus(s Shader) bool

	// ShaderInfoLog returns the driver's compile log, empty if unavailable.
	ShaderInfoLog(s Shader) string

	// DeleteShader flags a shader object for deletion. Attached shaders are freed once detached.
	DeleteShader(s Shader)

	// CreateProgram allocates a new program object.
	//
	// Returns:
	//   - Program: the new program object, or nil if allocation failed
	CreateProgram() Program

	// AttachShader attaches a shader object to a program.
	AttachShader(p Program, s Shader)

	// LinkProgram links all attached shaders of a program.
	LinkProgram(p Program)

	// ProgramLinkStatus reports whether the last link succeeded.
	ProgramLinkStatus(p Program) bool

	// ProgramInfoLog returns the driver's link log, empty if unavailable.
	ProgramInfoLog(p Program) string

	// DeleteProgram frees a program object.
	DeleteProgram(p Program)

	// UseProgram makes a program the active pipeline.
	UseProgram(p Program)

	// CreateBuffer allocates a new buffer object.
	//
	// Returns:
	//   - Buffer: the new buffer object, or nil if allocation failed
	CreateBuffer() Buffer

	// BindArrayBuffer binds a buffer as the current array buffer.
	BindArrayBuffer(b Buffer)

	// BufferData uploads float data into the bound array buffer.
	BufferData(data []float32, usage BufferUsage)

	// AttribLocation resolves a vertex attribute by name.
	//
	// Returns:
	//   - int: the attribute index, or -1 if the program has no active attribute with that name
	AttribLocation(p Program, name string) int

	// VertexAttribPointer configures attribute index to read size floats per vertex from the bound array buffer.
	// stride and offset are in bytes.
	VertexAttribPointer(index, size int, normalized bool, stride, offset int)

	// EnableVertexAttribArray enables reading attribute index from its configured buffer.
	EnableVertexAttribArray(index int)

	// UniformLocation resolves a uniform by name.
	//
	// Returns:
	//   - Uniform: the uniform location, or nil if the program has no active uniform with that name
	UniformLocation(p Program, name string) Uniform

	// UniformMatrix4fv uploads a 4x4 column-major matrix to a uniform of the active program.
	UniformMatrix4fv(u Uniform, transpose bool, m []float32)

	// ClearColor sets the color used when clearing the color plane.
	ClearColor(r, g, b, a float32)

	// Clear resets the selected frame buffer planes.
	Clear(mask ClearMask)

	// DrawArrays draws count vertices starting at first from the enabled attribute arrays.
	DrawArrays(mode Primitive, first, count int)
}
