package renderer

import (
	"fmt"

	"github.com/Carmen-Shannon/wirecube/engine/graphics"
)

// Fallback messages used when the driver provides no info log.
const (
	unknownShaderError  = "Unknown error creating shader"
	unknownProgramError = "Unknown error creating program object"
)

// ShaderCompileError reports that a shader object could not be allocated or compiled.
type ShaderCompileError struct {
	// Stage is the stage that failed.
	Stage graphics.ShaderStage

	// Log is the driver info log, or a fallback message when none was available.
	Log string
}

func (e *ShaderCompileError) Error() string {
	return fmt.Sprintf("failed to compile %s shader: %s", e.Stage, e.Log)
}

// ProgramLinkError reports that a program object could not be allocated or linked.
type ProgramLinkError struct {
	// Log is the driver program info log, or a fallback message when none was available.
	Log string
}

func (e *ProgramLinkError) Error() string {
	return fmt.Sprintf("failed to link program: %s", e.Log)
}

// BufferAllocationError reports that the context could not allocate a buffer object.
type BufferAllocationError struct {
	// Purpose names what the buffer was for.
	Purpose string
}

func (e *BufferAllocationError) Error() string {
	return fmt.Sprintf("failed to create %s buffer", e.Purpose)
}

// LocationKind distinguishes attribute and uniform lookups.
type LocationKind int

const (
	// LocationAttribute is a vertex attribute lookup.
	LocationAttribute LocationKind = iota

	// LocationUniform is a uniform lookup.
	LocationUniform
)

func (k LocationKind) String() string {
	if k == LocationAttribute {
		return "attribute"
	}
	return "uniform"
}

// UniformLookupError reports that the linked program has no active attribute or uniform with a required name.
type UniformLookupError struct {
	// Name is the attribute or uniform name.
	Name string

	// Kind is the kind of location that was requested.
	Kind LocationKind
}

func (e *UniformLookupError) Error() string {
	return fmt.Sprintf("program has no active %s %q", e.Kind, e.Name)
}
