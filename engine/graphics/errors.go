package graphics

import "fmt"

// ElementLookupError reports that the host document has no usable drawing element with the given id.
type ElementLookupError struct {
	// ID is the element id that was requested.
	ID string

	// Reason describes why the element could not be used.
	Reason string
}

func (e *ElementLookupError) Error() string {
	if e.Reason == "" {
		return fmt.Sprintf("element %q not found", e.ID)
	}
	return fmt.Sprintf("element %q: %s", e.ID, e.Reason)
}

// ContextCreationError reports that the host could not create a rendering context.
type ContextCreationError struct {
	// API names the requested context type (e.g. "webgl", "opengl 2.1").
	API string

	// Err is the underlying host error, if any.
	Err error
}

func (e *ContextCreationError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("failed to create %s context", e.API)
	}
	return fmt.Sprintf("failed to create %s context: %v", e.API, e.Err)
}

func (e *ContextCreationError) Unwrap() error {
	return e.Err
}
