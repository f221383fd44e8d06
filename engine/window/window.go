//go:build !js

package window

import (
	"fmt"
	"runtime"

	"github.com/Carmen-Shannon/wirecube/engine/frame"
)

// Window provides a platform window with a current OpenGL context and acts as the
// frame clock for the render loop: every message loop iteration runs the pending
// frame, presents it and polls events.
type Window interface {
	frame.Scheduler

	// IsRunning returns true if the window is still active.
	//
	// Returns:
	//   - bool: true if window is running, false if closed
	IsRunning() bool

	// Close closes the window and releases platform resources.
	//
	// Returns:
	//   - error: error if close operation fails
	Close() error

	// ProcessMessages runs the window message loop.
	// Blocks until the window is closed. Runs the pending frame each iteration.
	ProcessMessages()

	// Width returns the window client area width in pixels.
	//
	// Returns:
	//   - int: width in pixels
	Width() int

	// Height returns the window client area height in pixels.
	//
	// Returns:
	//   - int: height in pixels
	Height() int
}

// engineWindow is the implementation of the Window interface.
// Holds window configuration, GLFW state and the pending frame.
type engineWindow struct {
	// title is the window title displayed in the title bar.
	title string

	// width is the window client area width in pixels.
	width int

	// height is the window client area height in pixels.
	height int

	// vsync synchronizes buffer swaps with the display refresh.
	vsync bool

	// internalWindow holds the platform-specific window data (glfwWindow).
	internalWindow any

	// pending is the ticker to run on the next loop iteration.
	pending frame.Ticker
}

var _ Window = &engineWindow{}

// NewWindow creates a new Window with the specified options and makes its OpenGL
// context current on the calling goroutine's OS thread.
// Applies default values first, then each option in order.
//
// Parameters:
//   - options: functional options to configure the window
//
// Returns:
//   - Window: the spawned window
func NewWindow(options ...WindowBuilderOption) Window {
	w := newEngineWindow(options...)
	if err := newPlatformWindow(w); err != nil {
		panic(fmt.Sprintf("failed to create platform window: %v", err))
	}
	return w
}

func newEngineWindow(options ...WindowBuilderOption) *engineWindow {
	w := &engineWindow{
		title:  "wirecube",
		width:  640,
		height: 480,
		vsync:  true,
	}
	for _, opt := range options {
		opt(w)
	}
	return w
}

// RequestFrame schedules t for the next loop iteration, replacing any frame not yet run.
func (w *engineWindow) RequestFrame(t frame.Ticker) {
	if t == nil {
		return
	}
	w.pending = t
}

// runPending runs the pending ticker, if any, and reports whether one ran.
// The slot is cleared first so the ticker can request the next frame.
func (w *engineWindow) runPending() bool {
	t := w.pending
	if t == nil {
		return false
	}
	w.pending = nil
	t.Tick()
	return true
}

func (w *engineWindow) IsRunning() bool {
	return platformIsRunningCheck(w)
}

func (w *engineWindow) Close() error {
	return platformCloseWindow(w)
}

func (w *engineWindow) ProcessMessages() {
	for w.IsRunning() {
		if w.runPending() {
			platformSwapBuffers(w)
		}

		if succ := platformProcessMessages(w); !succ {
			break
		}

		runtime.Gosched()
	}
}

func (w *engineWindow) Width() int {
	return w.width
}

func (w *engineWindow) Height() int {
	return w.height
}
