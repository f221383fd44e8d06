package frame

// ManualScheduler is a Scheduler whose frames advance only when stepped.
// Headless hosts and tests use it in place of a display refresh clock.
type ManualScheduler struct {
	pending Ticker
	frames  uint64
}

var _ Scheduler = &ManualScheduler{}

// NewManualScheduler creates a ManualScheduler with no pending ticker.
//
// Returns:
//   - *ManualScheduler: the new scheduler
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// RequestFrame makes t the ticker of the next Step, replacing one not yet run.
func (m *ManualScheduler) RequestFrame(t Ticker) {
	if t == nil {
		return
	}
	m.pending = t
}

// Step runs one frame: the pending ticker is invoked once. A ticker requested
// while the frame runs waits for the next Step.
//
// Returns:
//   - bool: true if a ticker ran
func (m *ManualScheduler) Step() bool {
	t := m.pending
	if t == nil {
		return false
	}
	m.pending = nil
	t.Tick()
	m.frames++
	return true
}

// Run steps up to n frames, stopping early when nothing is pending.
//
// Parameters:
//   - n: maximum number of frames to run
//
// Returns:
//   - int: the number of frames that ran
func (m *ManualScheduler) Run(n int) int {
	ran := 0
	for ran < n && m.Step() {
		ran++
	}
	return ran
}

// Pending returns the number of tickers waiting for the next frame, 0 or 1.
func (m *ManualScheduler) Pending() int {
	if m.pending == nil {
		return 0
	}
	return 1
}

// Frames returns the number of frames stepped so far.
func (m *ManualScheduler) Frames() uint64 {
	return m.frames
}
