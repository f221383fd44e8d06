//go:build js && wasm

package webgl

import (
	"syscall/js"

	"github.com/Carmen-Shannon/wirecube/engine/frame"
)

// AnimationFrameScheduler implements frame.Scheduler on top of window.requestAnimationFrame.
// One js.Func is created for the lifetime of the scheduler and reused for every frame.
type AnimationFrameScheduler struct {
	pending  frame.Ticker
	callback js.Func
	raf      js.Value
}

var _ frame.Scheduler = &AnimationFrameScheduler{}

// NewAnimationFrameScheduler returns a scheduler bound to the global window.
func NewAnimationFrameScheduler() *AnimationFrameScheduler {
	s := &AnimationFrameScheduler{}
	window := js.Global()
	s.raf = window.Get("requestAnimationFrame").Call("bind", window)
	s.callback = js.FuncOf(func(this js.Value, args []js.Value) any {
		t := s.pending
		s.pending = nil
		if t != nil {
			t.Tick()
		}
		return nil
	})
	return s
}

// RequestFrame arranges for t to run before the browser's next repaint.
// A second request before the frame fires replaces the pending ticker.
func (s *AnimationFrameScheduler) RequestFrame(t frame.Ticker) {
	if t == nil {
		return
	}
	first := s.pending == nil
	s.pending = t
	if first {
		s.raf.Invoke(s.callback)
	}
}
