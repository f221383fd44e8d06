package renderer

// RenderStateBuilderOption is a functional option applied to a RenderState during construction via NewRenderState.
type RenderStateBuilderOption func(*RenderState)

// WithClearColor sets the color the frame buffer is cleared to. Defaults to opaque black.
//
// Parameters:
//   - r, g, b, a: color components in [0, 1]
//
// Returns:
//   - RenderStateBuilderOption: a function that applies the clear color to a render state
func WithClearColor(r, g, b, a float32) RenderStateBuilderOption {
	return func(s *RenderState) {
		s.clearColor = [4]float32{r, g, b, a}
	}
}
