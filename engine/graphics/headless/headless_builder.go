package headless

// ContextBuilderOption is a functional option for configuring a headless Context.
type ContextBuilderOption func(*Context)

// WithFailShaderAllocation makes CreateShader return nil, as a context that has run out of objects does.
//
// Returns:
//   - ContextBuilderOption: option function to apply
func WithFailShaderAllocation() ContextBuilderOption {
	return func(c *Context) {
		c.failShaders = true
	}
}

// WithFailProgramAllocation makes CreateProgram return nil.
//
// Returns:
//   - ContextBuilderOption: option function to apply
func WithFailProgramAllocation() ContextBuilderOption {
	return func(c *Context) {
		c.failPrograms = true
	}
}

// WithFailBufferAllocation makes CreateBuffer return nil.
//
// Returns:
//   - ContextBuilderOption: option function to apply
func WithFailBufferAllocation() ContextBuilderOption {
	return func(c *Context) {
		c.failBuffers = true
	}
}
