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

func compileStages(t *testing.T, ctx graphics.Context) (graphics.Shader, graphics.Shader) {
	t.Helper()
	vs, err := CompileShader(ctx, graphics.ShaderStageVertex, shader.VertexSource)
	require.NoError(t, err)
	fs, err := CompileShader(ctx, graphics.ShaderStageFragment, shader.FragmentSource)
	require.NoError(t, err)
	return vs, fs
}

func TestLinkProgram(t *testing.T) {
	ctx := headless.NewContext()
	vs, fs := compileStages(t, ctx)

	p, err := LinkProgram(ctx, vs, fs)
	require.NoError(t, err)
	assert.True(t, ctx.ProgramLinkStatus(p))
	assert.Empty(t, ctx.Errors())
}

func TestLinkProgramSameStage(t *testing.T) {
	ctx := headless.NewContext()
	vs1, _ := compileStages(t, ctx)
	vs2, _ := compileStages(t, ctx)

	p, err := LinkProgram(ctx, vs1, vs2)
	assert.Nil(t, p)

	var linkErr *ProgramLinkError
	require.True(t, errors.As(err, &linkErr))
	assert.NotEmpty(t, linkErr.Log)
	assert.NotEqual(t, unknownProgramError, linkErr.Log)
}

func TestLinkProgramAllocationFailure(t *testing.T) {
	ctx := headless.NewContext(headless.WithFailProgramAllocation())
	vs, fs := compileStages(t, ctx)

	_, err := LinkProgram(ctx, vs, fs)
	var linkErr *ProgramLinkError
	require.True(t, errors.As(err, &linkErr))
	assert.Equal(t, unknownProgramError, linkErr.Log)
}

func TestLinkProgramMissingLogFallsBack(t *testing.T) {
	ctx := silentContext{headless.NewContext()}
	vs, _ := compileStages(t, ctx)

	_, err := LinkProgram(ctx, vs, vs)
	assert.EqualError(t, err, "failed to link program: Unknown error creating program object")
}

func TestLinkProgramNilShader(t *testing.T) {
	ctx := headless.NewContext()
	vs, _ := compileStages(t, ctx)

	_, err := LinkProgram(ctx, vs, nil)
	var linkErr *ProgramLinkError
	assert.True(t, errors.As(err, &linkErr))
}
