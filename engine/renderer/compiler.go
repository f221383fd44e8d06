package renderer

import (
	"strings"

	"github.com/Carmen-Shannon/wirecube/common"
	"github.com/Carmen-Shannon/wirecube/engine/graphics"
)

// CompileShader allocates a shader object for the given stage, submits the source and compiles it.
// A shader that fails to compile is deleted before the error is returned, so callers only
// ever hold compiled shaders.
//
// Parameters:
//   - ctx: the drawing surface to compile on
//   - stage: the pipeline stage of the source
//   - source: GLSL source text (must not be blank)
//
// Returns:
//   - graphics.Shader: the compiled shader object
//   - error: a *ShaderCompileError if allocation or compilation fails
func CompileShader(ctx graphics.Context, stage graphics.ShaderStage, source string) (graphics.Shader, error) {
	if strings.TrimSpace(source) == "" {
		return nil, &ShaderCompileError{Stage: stage, Log: "shader source is empty"}
	}

	s := ctx.CreateShader(stage)
	if s == nil {
		return nil, &ShaderCompileError{Stage: stage, Log: unknownShaderError}
	}
	ctx.ShaderSource(s, source)
	ctx.CompileShader(s)

	if !ctx.ShaderCompileStatus(s) {
		log := ctx.ShaderInfoLog(s)
		ctx.DeleteShader(s)
		return nil, &ShaderCompileError{Stage: stage, Log: common.Coalesce(strings.TrimSpace(log), unknownShaderError)}
	}

	common.Logger().Debug("shader compiled", "stage", stage.String())
	return s, nil
}
