package renderer

import (
	"strings"

	"github.com/Carmen-Shannon/wirecube/common"
	"github.com/Carmen-Shannon/wirecube/engine/graphics"
)

// LinkProgram allocates a program object, attaches the vertex and fragment shaders and links them.
// Making the program active is left to the caller. A program that fails to link is deleted
// before the error is returned.
//
// Parameters:
//   - ctx: the drawing surface the shaders were compiled on
//   - vertex: a compiled vertex shader
//   - fragment: a compiled fragment shader
//
// Returns:
//   - graphics.Program: the linked program object
//   - error: a *ProgramLinkError if allocation or linking fails
func LinkProgram(ctx graphics.Context, vertex, fragment graphics.Shader) (graphics.Program, error) {
	if vertex == nil || fragment == nil {
		return nil, &ProgramLinkError{Log: "both a vertex and a fragment shader are required"}
	}

	p := ctx.CreateProgram()
	if p == nil {
		return nil, &ProgramLinkError{Log: unknownProgramError}
	}
	ctx.AttachShader(p, vertex)
	ctx.AttachShader(p, fragment)
	ctx.LinkProgram(p)

	if !ctx.ProgramLinkStatus(p) {
		log := ctx.ProgramInfoLog(p)
		ctx.DeleteProgram(p)
		return nil, &ProgramLinkError{Log: common.Coalesce(strings.TrimSpace(log), unknownProgramError)}
	}

	common.Logger().Debug("program linked")
	return p, nil
}
