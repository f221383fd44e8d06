package renderer

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

// Reference matrix constructors used to check BuildModelView against an explicit composition.

// identity resets a 4x4 matrix (flat slice) to the identity matrix.
// The matrix is stored in column-major order.
func identity(m []float32) {
	for i := range m {
		m[i] = 0
	}
	m[0], m[5], m[10], m[15] = 1, 1, 1, 1
}

// mul4 multiplies two 4x4 matrices and stores the result in out.
// All matrices are stored in column-major order (OpenGL/WebGL convention).
// Result: out = a * b
func mul4(out, a, b []float32) {
	var buf [16]float32
	for i := 0; i < 4; i++ { // column of B
		for j := 0; j < 4; j++ { // row of A
			sum := float32(0)
			for k := 0; k < 4; k++ {
				sum += a[k*4+j] * b[i*4+k]
			}
			buf[i*4+j] = sum
		}
	}
	copy(out, buf[:])
}

// rotationX writes a right-handed rotation of angle radians about the X axis into out.
func rotationX(out []float32, angle float32) {
	s, c := math32.Sin(angle), math32.Cos(angle)
	identity(out)
	out[5], out[6] = c, s
	out[9], out[10] = -s, c
}

// rotationY writes a right-handed rotation of angle radians about the Y axis into out.
func rotationY(out []float32, angle float32) {
	s, c := math32.Sin(angle), math32.Cos(angle)
	identity(out)
	out[0], out[2] = c, -s
	out[8], out[10] = s, c
}

// translation writes a translation matrix into out.
func translation(out []float32, x, y, z float32) {
	identity(out)
	out[12], out[13], out[14] = x, y, z
}

func mulVec4(m []float32, v [4]float32) [4]float32 {
	var out [4]float32
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			out[row] += m[col*4+row] * v[col]
		}
	}
	return out
}

func TestIdentity(t *testing.T) {
	m := make([]float32, 16)
	for i := range m {
		m[i] = 7
	}
	identity(m)
	for i, v := range m {
		if i%5 == 0 {
			assert.Equal(t, float32(1), v)
		} else {
			assert.Equal(t, float32(0), v)
		}
	}
}

func TestMul4Identity(t *testing.T) {
	a := make([]float32, 16)
	for i := range a {
		a[i] = float32(i + 1)
	}
	id := make([]float32, 16)
	identity(id)

	out := make([]float32, 16)
	mul4(out, a, id)
	assert.Equal(t, a, out)
	mul4(out, id, a)
	assert.Equal(t, a, out)
}

func TestMul4InPlace(t *testing.T) {
	a := make([]float32, 16)
	translation(a, 1, 2, 3)
	b := make([]float32, 16)
	translation(b, 4, 5, 6)

	mul4(a, a, b)
	assert.Equal(t, []float32{5, 7, 9}, a[12:15])
}

func TestRotationX(t *testing.T) {
	m := make([]float32, 16)
	rotationX(m, math32.Pi/2)
	got := mulVec4(m, [4]float32{0, 1, 0, 1})
	assert.InDelta(t, 0, got[0], matrixTol)
	assert.InDelta(t, 0, got[1], matrixTol)
	assert.InDelta(t, 1, got[2], matrixTol)
}

func TestRotationY(t *testing.T) {
	m := make([]float32, 16)
	rotationY(m, math32.Pi/2)
	got := mulVec4(m, [4]float32{0, 0, 1, 1})
	assert.InDelta(t, 1, got[0], matrixTol)
	assert.InDelta(t, 0, got[1], matrixTol)
	assert.InDelta(t, 0, got[2], matrixTol)
}

func TestTranslation(t *testing.T) {
	m := make([]float32, 16)
	translation(m, 0, 0, -6)
	got := mulVec4(m, [4]float32{1, 1, 1, 1})
	assert.Equal(t, [4]float32{1, 1, -5, 1}, got)
}
