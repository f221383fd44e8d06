package renderer

import (
	"errors"
	"testing"

	"github.com/Carmen-Shannon/wirecube/engine/graphics"
	"github.com/Carmen-Shannon/wirecube/engine/graphics/headless"
	"github.com/Carmen-Shannon/wirecube/engine/renderer/shader"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// silentContext is a headless context whose driver never reports info logs.
type silentContext struct {
	*headless.Context
}

func (silentContext) ShaderInfoLog(graphics.Shader) string   { return "" }
func (silentContext) ProgramInfoLog(graphics.Program) string { return "" }

func TestCompileShaderSources(t *testing.T) {
	ctx := headless.NewContext()

	vs, err := CompileShader(ctx, graphics.ShaderStageVertex, shader.VertexSource)
	require.NoError(t, err)
	assert.NotNil(t, vs)

	fs, err := CompileShader(ctx, graphics.ShaderStageFragment, shader.FragmentSource)
	require.NoError(t, err)
	assert.NotNil(t, fs)
	assert.Equal(t, 2, ctx.LiveShaders())
}

func TestCompileShaderInvalidSource(t *testing.T) {
	ctx := headless.NewContext()

	s, err := CompileShader(ctx, graphics.ShaderStageVertex, "void main( { gl_Position = ; ")
	assert.Nil(t, s)

	var compileErr *ShaderCompileError
	require.True(t, errors.As(err, &compileErr))
	assert.Equal(t, graphics.ShaderStageVertex, compileErr.Stage)
	assert.NotEmpty(t, compileErr.Log)
	assert.NotEqual(t, unknownShaderError, compileErr.Log)
	assert.Equal(t, 0, ctx.LiveShaders(), "failed shader must not outlive the error")
}

func TestCompileShaderEmptySource(t *testing.T) {
	ctx := headless.NewContext()

	_, err := CompileShader(ctx, graphics.ShaderStageFragment, "  \n\t")
	var compileErr *ShaderCompileError
	require.True(t, errors.As(err, &compileErr))
	assert.Equal(t, graphics.ShaderStageFragment, compileErr.Stage)
	assert.Equal(t, 0, ctx.LiveShaders())
}

func TestCompileShaderAllocationFailure(t *testing.T) {
	ctx := headless.NewContext(headless.WithFailShaderAllocation())

	_, err := CompileShader(ctx, graphics.ShaderStageVertex, shader.VertexSource)
	var compileErr *ShaderCompileError
	require.True(t, errors.As(err, &compileErr))
	assert.Equal(t, unknownShaderError, compileErr.Log)
}

func TestCompileShaderMissingLogFallsBack(t *testing.T) {
	ctx := silentContext{headless.NewContext()}

	_, err := CompileShader(ctx, graphics.ShaderStageVertex, "not glsl")
	var compileErr *ShaderCompileError
	require.True(t, errors.As(err, &compileErr))
	assert.Equal(t, unknownShaderError, compileErr.Log)
	assert.EqualError(t, err, "failed to compile vertex shader: Unknown error creating shader")
}
