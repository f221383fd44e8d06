package renderer

import (
	"github.com/Carmen-Shannon/wirecube/common"
	"github.com/Carmen-Shannon/wirecube/engine/graphics"
	"github.com/Carmen-Shannon/wirecube/engine/renderer/shader"
)

const (
	// ComponentsPerVertex is the number of floats per cube vertex (x, y, z).
	ComponentsPerVertex = 3

	// VertexCount is the number of line-list endpoints: 12 edges, 2 endpoints each.
	VertexCount = 24
)

// CubeVertices are the cube edge endpoints drawn as a line list. The table is the
// fixed demo data; consecutive pairs form one edge of the wireframe.
var CubeVertices = [VertexCount * ComponentsPerVertex]float32{
	-1, -1, -1, 1, -1, -1,
	1, 1, -1, -1, 1, -1,
	-1, -1, 1, 1, -1, 1,
	1, 1, 1, -1, 1, 1,
	-1, -1, -1, -1, 1, -1,
	-1, 1, 1, -1, -1, 1,
	1, -1, -1, 1, 1, -1,
	1, 1, 1, 1, -1, 1,
	-1, -1, -1, -1, -1, 1,
	1, -1, -1, 1, -1, 1,
	-1, 1, -1, -1, 1, 1,
	1, 1, -1, 1, 1, 1,
}

// UploadGeometry creates the cube vertex buffer, uploads CubeVertices with a static-draw hint
// and points the program's position attribute at it. The buffer stays bound as the array buffer.
//
// Parameters:
//   - ctx: the drawing surface
//   - program: the linked program declaring shader.PositionAttribute
//
// Returns:
//   - graphics.Buffer: the vertex buffer
//   - int: the position attribute index
//   - error: a *BufferAllocationError or *UniformLookupError on failure
func UploadGeometry(ctx graphics.Context, program graphics.Program) (graphics.Buffer, int, error) {
	buf := ctx.CreateBuffer()
	if buf == nil {
		return nil, -1, &BufferAllocationError{Purpose: "vertex"}
	}
	ctx.BindArrayBuffer(buf)
	ctx.BufferData(CubeVertices[:], graphics.BufferUsageStaticDraw)

	loc := ctx.AttribLocation(program, shader.PositionAttribute)
	if loc < 0 {
		return nil, -1, &UniformLookupError{Name: shader.PositionAttribute, Kind: LocationAttribute}
	}
	ctx.VertexAttribPointer(loc, ComponentsPerVertex, false, 0, 0)
	ctx.EnableVertexAttribArray(loc)

	common.Logger().Debug("geometry uploaded", "floats", len(CubeVertices), "vertices", VertexCount, "attribute", loc)
	return buf, loc, nil
}
