package shader

import (
	"fmt"
	"strings"
)

// DesktopGLSLVersion is the GLSL version targeted by desktop OpenGL 2.1 contexts.
const DesktopGLSLVersion = 120

// preProcessor is the implementation of the PreProcessor interface.
type preProcessor struct {
	// version is emitted as the #version directive of every processed source.
	version int

	// stripped is the number of precision statements removed by the last Process call.
	stripped int
}

// PreProcessor rewrites GLSL ES 1.00 source so that a desktop GLSL compiler accepts it.
// It prepends a #version directive and removes ES-only precision statements, keeping
// every other line unchanged so driver log line numbers match the input.
type PreProcessor interface {
	// Process rewrites the given source.
	//
	// Parameters:
	//   - source: GLSL ES 1.00 source text
	//
	// Returns:
	//   - string: source text for the desktop compiler
	//   - error: an error if the source declares a version other than GLSL ES 1.00
	Process(source string) (string, error)

	// Stripped returns how many precision statements the last Process call removed.
	//
	// Returns:
	//   - int: number of removed precision statements
	Stripped() int
}

var _ PreProcessor = &preProcessor{}

// NewPreProcessor creates a PreProcessor emitting the given desktop GLSL version.
//
// Parameters:
//   - version: the desktop GLSL version number (e.g. DesktopGLSLVersion)
//
// Returns:
//   - PreProcessor: a ready-to-use pre-processor
func NewPreProcessor(version int) PreProcessor {
	return &preProcessor{version: version}
}

func (p *preProcessor) Process(source string) (string, error) {
	p.stripped = 0

	lines := strings.Split(source, "\n")
	out := make([]string, 0, len(lines)+1)
	out = append(out, fmt.Sprintf("#version %d", p.version))

	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		switch {
		case strings.HasPrefix(trimmed, "#version"):
			if fields := strings.Fields(trimmed); len(fields) != 2 || fields[1] != "100" {
				return "", fmt.Errorf("line %d: unsupported version directive %q", i+1, trimmed)
			}
			out = append(out, "")
		case strings.HasPrefix(trimmed, "precision ") && strings.HasSuffix(trimmed, ";"):
			// desktop GLSL 1.20 has no precision qualifiers
			p.stripped++
			out = append(out, "")
		default:
			out = append(out, line)
		}
	}
	return strings.Join(out, "\n"), nil
}

func (p *preProcessor) Stripped() int {
	return p.stripped
}
