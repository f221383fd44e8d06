//go:build !js

package window

import (
	"testing"

	"github.com/Carmen-Shannon/wirecube/engine/frame"
	"github.com/stretchr/testify/assert"
)

func TestNewEngineWindowDefaults(t *testing.T) {
	w := newEngineWindow()
	assert.Equal(t, "wirecube", w.title)
	assert.Equal(t, 640, w.Width())
	assert.Equal(t, 480, w.Height())
	assert.True(t, w.vsync)
}

func TestNewEngineWindowOptions(t *testing.T) {
	w := newEngineWindow(WithTitle("cube"), WithWidth(800), WithHeight(600), WithVSync(false))
	assert.Equal(t, "cube", w.title)
	assert.Equal(t, 800, w.Width())
	assert.Equal(t, 600, w.Height())
	assert.False(t, w.vsync)
}

func TestUnspawnedWindowIsNotRunning(t *testing.T) {
	w := newEngineWindow()
	assert.False(t, w.IsRunning())
	assert.Error(t, w.Close())
}

// resubmitting requests the next frame from inside every tick.
type resubmitting struct {
	s     frame.Scheduler
	ticks int
}

func (r *resubmitting) Tick() {
	r.ticks++
	r.s.RequestFrame(r)
}

func TestRunPendingResubmits(t *testing.T) {
	w := newEngineWindow()
	loop := &resubmitting{s: w}

	assert.False(t, w.runPending())
	w.RequestFrame(loop)
	w.RequestFrame(loop)
	w.RequestFrame(nil)
	for range 3 {
		assert.True(t, w.runPending())
	}
	assert.Equal(t, 3, loop.ticks, "a repeated request still runs once per iteration")
	assert.NotNil(t, w.pending)
}
