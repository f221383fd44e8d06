package renderer

import (
	"github.com/chewxy/math32"
)

const (
	// AngleStepX is the X rotation advance per frame, in radians.
	AngleStepX float32 = 0.01

	// AngleStepY is the Y rotation advance per frame, in radians.
	AngleStepY float32 = 0.02

	// viewDistance translates the cube along the view axis.
	viewDistance float32 = -6
)

// projection is the fixed pseudo-projection of the demo. It is not a perspective or
// orthographic matrix and is kept exactly as the demo defines it.
var projection = [16]float32{
	1, 0, 0, 0,
	0, 1, 0, 0,
	0, 0, -1, -1,
	0, 0, -0.02, 0,
}

// Rotation holds the two accumulated rotation angles in radians.
// Angles grow without bound; sine and cosine make wraparound unnecessary.
type Rotation struct {
	AngleX float32
	AngleY float32
}

// Advance moves both angles forward by one frame step.
func (r *Rotation) Advance() {
	r.AngleX += AngleStepX
	r.AngleY += AngleStepY
}

// ModelView builds the model-view matrix for the current angles. See BuildModelView.
func (r Rotation) ModelView() [16]float32 {
	return BuildModelView(r.AngleX, r.AngleY)
}

// BuildModelView builds the column-major model-view matrix for the given angles:
// the cube rotated about Y then X and pushed 6 units down the view axis.
// It is a pure function of its arguments.
//
// Parameters:
//   - angleX: rotation about the X axis in radians
//   - angleY: rotation about the Y axis in radians
//
// Returns:
//   - [16]float32: the model-view matrix in column-major order
func BuildModelView(angleX, angleY float32) [16]float32 {
	sx, cx := math32.Sin(angleX), math32.Cos(angleX)
	sy, cy := math32.Sin(angleY), math32.Cos(angleY)

	return [16]float32{
		cy, 0, sy, 0,
		sx * sy, cx, -sx * cy, 0,
		-cx * sy, sx, cx * cy, 0,
		0, 0, viewDistance, 1,
	}
}

// ProjectionMatrix returns the constant projection matrix in column-major order.
//
// Returns:
//   - [16]float32: a copy of the projection matrix
func ProjectionMatrix() [16]float32 {
	return projection
}
