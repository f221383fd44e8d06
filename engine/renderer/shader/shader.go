// Package shader holds the GLSL sources of the wireframe pipeline and the
// pre-processor that adapts GLSL ES 1.00 source for desktop OpenGL drivers.
package shader

// VertexSource is the vertex stage. Positions are transformed by the projection
// and model-view uniforms uploaded every frame.
const VertexSource = `
attribute vec4 a_position;
uniform mat4 u_model_view_matrix;
uniform mat4 u_projection_matrix;
void main() {
    gl_Position = u_projection_matrix * u_model_view_matrix * a_position;
}
`

// FragmentSource is the fragment stage. Every fragment is solid green.
const FragmentSource = `
precision mediump float;
void main() {
    gl_FragColor = vec4(0.0, 1.0, 0.0, 1.0);
}
`

// Names declared by VertexSource and resolved against the linked program.
const (
	// PositionAttribute is the per-vertex position input.
	PositionAttribute = "a_position"

	// ModelViewUniform receives the per-frame rotation and view translation.
	ModelViewUniform = "u_model_view_matrix"

	// ProjectionUniform receives the constant projection matrix.
	ProjectionUniform = "u_projection_matrix"
)
