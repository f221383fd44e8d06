package frame

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type tickFunc func()

func (f tickFunc) Tick() { f() }

// selfScheduling re-requests itself every tick, like an animation loop.
type selfScheduling struct {
	s     Scheduler
	ticks int
}

func (r *selfScheduling) Tick() {
	r.ticks++
	r.s.RequestFrame(r)
}

func TestStepRunsOncePerRequest(t *testing.T) {
	m := NewManualScheduler()
	calls := 0
	m.RequestFrame(tickFunc(func() { calls++ }))

	assert.Equal(t, 1, m.Pending())
	assert.True(t, m.Step())
	assert.Equal(t, 1, calls)
	assert.False(t, m.Step())
	assert.Equal(t, 1, calls)
	assert.Equal(t, uint64(1), m.Frames())
}

func TestSelfReschedulingLoop(t *testing.T) {
	m := NewManualScheduler()
	loop := &selfScheduling{s: m}
	m.RequestFrame(loop)

	assert.Equal(t, 10, m.Run(10))
	assert.Equal(t, 10, loop.ticks)
	assert.Equal(t, 1, m.Pending())
}

func TestRunStopsWhenIdle(t *testing.T) {
	m := NewManualScheduler()
	m.RequestFrame(tickFunc(func() {}))

	assert.Equal(t, 1, m.Run(5))
	assert.Equal(t, 0, m.Pending())
}

func TestRequestFrameIgnoresNil(t *testing.T) {
	m := NewManualScheduler()
	m.RequestFrame(nil)
	assert.Equal(t, 0, m.Pending())
}

func TestRequestReplacesPending(t *testing.T) {
	m := NewManualScheduler()
	var ran []int
	m.RequestFrame(tickFunc(func() { ran = append(ran, 1) }))
	m.RequestFrame(tickFunc(func() { ran = append(ran, 2) }))
	assert.Equal(t, 1, m.Pending())

	assert.True(t, m.Step())
	assert.Equal(t, []int{2}, ran)
	assert.False(t, m.Step())
}

func TestRepeatedRequestRunsOncePerFrame(t *testing.T) {
	m := NewManualScheduler()
	loop := &selfScheduling{s: m}
	m.RequestFrame(loop)
	m.RequestFrame(loop)

	assert.Equal(t, 1, m.Pending())
	assert.Equal(t, 3, m.Run(3))
	assert.Equal(t, 3, loop.ticks)
	assert.Equal(t, 1, m.Pending())
}
