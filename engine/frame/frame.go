// Package frame defines the host frame clock: a Scheduler runs a Ticker once
// before the next frame is presented, and tickers re-submit themselves to keep
// an animation loop alive.
package frame

// Ticker is a single-method frame callback.
type Ticker interface {
	// Tick runs one frame to completion.
	Tick()
}

// Scheduler is the host's "run this again before the next frame" primitive.
// A scheduler holds at most one pending ticker. A request schedules exactly one
// invocation; a second request made before that invocation runs replaces the
// pending ticker instead of adding another, so a ticker runs at most once per frame.
// A ticker that wants to keep running must request again from inside Tick.
type Scheduler interface {
	// RequestFrame schedules t to run before the next frame, replacing any
	// ticker that is still pending. Nil is ignored.
	//
	// Parameters:
	//   - t: the ticker to invoke once
	RequestFrame(t Ticker)
}
