package engine

import (
	"errors"
	"fmt"
	"time"

	"github.com/Carmen-Shannon/wirecube/common"
	"github.com/Carmen-Shannon/wirecube/engine/frame"
	"github.com/Carmen-Shannon/wirecube/engine/graphics"
	"github.com/Carmen-Shannon/wirecube/engine/profiler"
	"github.com/Carmen-Shannon/wirecube/engine/renderer"
)

// ErrAlreadyStarted is returned by Start on an engine that has already started.
var ErrAlreadyStarted = errors.New("engine already started")

// engine implements the Engine interface.
// Binds a drawing surface and a host frame clock to a render state.
type engine struct {
	ctx       graphics.Context
	scheduler frame.Scheduler

	state   *renderer.RenderState
	started bool

	profiler         *profiler.Profiler
	profilingEnabled bool
	profileInterval  time.Duration

	renderOptions []renderer.RenderStateBuilderOption

	// frames routes every frame through the engine so profiling can observe it
	frames *engineScheduler
}

// Engine is the main entry point for the engine.
// It runs the startup sequence against the configured surface and hands the
// render loop to the configured frame clock.
type Engine interface {
	// Start compiles and links the shaders, uploads the geometry and schedules the first frame.
	// The frame loop then runs for as long as the host keeps driving its scheduler.
	//
	// Returns:
	//   - error: the wrapped startup error, or ErrAlreadyStarted
	Start() error

	// RenderState returns the running render state, nil before a successful Start.
	//
	// Returns:
	//   - *renderer.RenderState: the render state
	RenderState() *renderer.RenderState

	// Context returns the drawing surface.
	//
	// Returns:
	//   - graphics.Context: the configured context
	Context() graphics.Context

	// Scheduler returns the host frame clock.
	//
	// Returns:
	//   - frame.Scheduler: the configured scheduler
	Scheduler() frame.Scheduler

	// Profiler returns the frame profiler.
	//
	// Returns:
	//   - *profiler.Profiler: the profiler instance
	Profiler() *profiler.Profiler

	// EnableProfiler enables performance profiling output to the log.
	EnableProfiler()

	// DisableProfiler disables performance profiling output.
	DisableProfiler()
}

// NewEngine creates a new Engine instance with the provided options.
// Options are applied directly to the engine struct via the option-builder pattern.
//
// Parameters:
//   - options: functional options for engine configuration (surface, scheduler, profiling, etc.)
//
// Returns:
//   - Engine: the newly created engine
func NewEngine(options ...EngineBuilderOption) Engine {
	e := &engine{
		profilingEnabled: false,
		profileInterval:  time.Second,
	}
	for _, opt := range options {
		opt(e)
	}
	e.profiler = profiler.NewProfiler(profiler.WithInterval(e.profileInterval))
	e.frames = &engineScheduler{engine: e}
	return e
}

func (e *engine) Start() error {
	if e.started {
		return ErrAlreadyStarted
	}
	if e.ctx == nil {
		return fmt.Errorf("failed to start engine: no graphics context configured")
	}
	if e.scheduler == nil {
		return fmt.Errorf("failed to start engine: no frame scheduler configured")
	}

	state, err := renderer.NewRenderState(e.ctx, e.frames, e.renderOptions...)
	if err != nil {
		return fmt.Errorf("failed to start render state: %w", err)
	}
	e.state = state
	e.started = true

	e.profiler.Reset()
	e.state.Start()
	common.Logger().Info("engine started", "profiling", e.profilingEnabled)
	return nil
}

func (e *engine) RenderState() *renderer.RenderState {
	return e.state
}

func (e *engine) Context() graphics.Context {
	return e.ctx
}

func (e *engine) Scheduler() frame.Scheduler {
	return e.scheduler
}

func (e *engine) Profiler() *profiler.Profiler {
	return e.profiler
}

// EnableProfiler enables performance profiling output to the log.
func (e *engine) EnableProfiler() {
	if !e.profilingEnabled {
		e.profiler.Reset()
	}
	e.profilingEnabled = true
}

// DisableProfiler disables performance profiling output.
func (e *engine) DisableProfiler() {
	e.profilingEnabled = false
}

// engineScheduler sits between the render state and the host scheduler.
// It forwards each request to the host with itself as the ticker and runs the
// profiler after the frame completes.
type engineScheduler struct {
	engine *engine
	next   frame.Ticker
}

var (
	_ frame.Scheduler = &engineScheduler{}
	_ frame.Ticker    = &engineScheduler{}
)

func (s *engineScheduler) RequestFrame(t frame.Ticker) {
	if t == nil {
		return
	}
	s.next = t
	s.engine.scheduler.RequestFrame(s)
}

func (s *engineScheduler) Tick() {
	t := s.next
	if t == nil {
		return
	}
	s.next = nil
	t.Tick()

	if s.engine.profilingEnabled {
		s.engine.profiler.Tick()
	}
}
