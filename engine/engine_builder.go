package engine

import (
	"log/slog"
	"time"

	"github.com/Carmen-Shannon/wirecube/common"
	"github.com/Carmen-Shannon/wirecube/engine/frame"
	"github.com/Carmen-Shannon/wirecube/engine/graphics"
	"github.com/Carmen-Shannon/wirecube/engine/renderer"
)

// EngineBuilderOption is a functional option for configuring an Engine.
// Use the With* functions to create options that are applied directly to the engine instance.
type EngineBuilderOption func(*engine)

// WithContext sets the drawing surface the engine renders to.
//
// Parameters:
//   - ctx: a webgl, opengl or headless context
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithContext(ctx graphics.Context) EngineBuilderOption {
	return func(e *engine) {
		e.ctx = ctx
	}
}

// WithScheduler sets the host frame clock that drives the render loop.
//
// Parameters:
//   - s: a window, animation frame or manual scheduler
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithScheduler(s frame.Scheduler) EngineBuilderOption {
	return func(e *engine) {
		e.scheduler = s
	}
}

// WithProfiling enables or disables performance profiling output.
//
// Parameters:
//   - enabled: if true, enables performance profiling
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfiling(enabled bool) EngineBuilderOption {
	return func(e *engine) {
		e.profilingEnabled = enabled
	}
}

// WithProfileInterval sets how often the profiler reports.
// Values <= 0 keep the default of one second.
//
// Parameters:
//   - interval: the reporting interval
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithProfileInterval(interval time.Duration) EngineBuilderOption {
	return func(e *engine) {
		if interval > 0 {
			e.profileInterval = interval
		}
	}
}

// WithClearColor sets the color the surface is cleared to.
//
// Parameters:
//   - r, g, b, a: color components in [0, 1]
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithClearColor(r, g, b, a float32) EngineBuilderOption {
	return func(e *engine) {
		e.renderOptions = append(e.renderOptions, renderer.WithClearColor(r, g, b, a))
	}
}

// WithLogger installs logger as the package-wide logger.
//
// Parameters:
//   - logger: the structured logger; nil restores the silent default
//
// Returns:
//   - EngineBuilderOption: option function to apply
func WithLogger(logger *slog.Logger) EngineBuilderOption {
	return func(e *engine) {
		common.SetLogger(logger)
	}
}
