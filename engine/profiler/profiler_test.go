package profiler

import (
	"bytes"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func TestProfilerReportsAtInterval(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	var buf bytes.Buffer
	p := NewProfiler(
		WithClock(clock.now),
		WithInterval(time.Second),
		WithLogger(slog.New(slog.NewTextHandler(&buf, nil))),
	)

	for range 49 {
		clock.advance(time.Second / 50)
		assert.False(t, p.Tick())
	}
	clock.advance(time.Second / 50)
	require.True(t, p.Tick())

	s := p.Last()
	assert.Equal(t, 50, s.Frames)
	assert.InDelta(t, 50, s.FPS, 0.01)
	assert.Contains(t, buf.String(), "msg=profiler")
	assert.Contains(t, buf.String(), "fps=")

	// the next window starts empty
	clock.advance(time.Millisecond)
	assert.False(t, p.Tick())
}

func TestProfilerIgnoresNonPositiveInterval(t *testing.T) {
	p := NewProfiler(WithInterval(0), WithInterval(-time.Second))
	assert.Equal(t, time.Second, p.updateInterval)
}

func TestProfilerReset(t *testing.T) {
	clock := &fakeClock{t: time.Unix(0, 0)}
	p := NewProfiler(WithClock(clock.now), WithInterval(time.Second), WithLogger(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))))

	clock.advance(900 * time.Millisecond)
	assert.False(t, p.Tick())
	p.Reset()
	clock.advance(200 * time.Millisecond)
	assert.False(t, p.Tick(), "reset restarts the window")
	clock.advance(800 * time.Millisecond)
	require.True(t, p.Tick())
	assert.Equal(t, 2, p.Last().Frames)
}
