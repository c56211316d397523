package timing

import "time"

// Limiter controls frame rate timing for emulation.
type Limiter interface {
	// WaitForNextFrame blocks until it's time for the next frame.
	// Returns immediately if timing is behind schedule.
	WaitForNextFrame()

	// Reset resets the timing state, useful after pauses.
	Reset()
}

// NewNoOpLimiter returns a limiter that doesn't limit (for headless mode).
func NewNoOpLimiter() Limiter {
	return &noOpLimiter{}
}

type noOpLimiter struct{}

func (n *noOpLimiter) WaitForNextFrame() {}
func (n *noOpLimiter) Reset()            {}

const (
	// TimerFrequency is the rate at which the delay and sound timers
	// decrement. Fixed by the hardware convention regardless of the
	// instruction rate.
	TimerFrequency = 60

	// DefaultClockSpeed is the default instruction rate in Hz. The
	// legacy convention runs interpreters somewhere in 500-1000Hz.
	DefaultClockSpeed = 500
)

// CyclesPerFrame returns how many instructions run per 60Hz frame at
// the given clock speed.
func CyclesPerFrame(clockSpeed int) int {
	cycles := clockSpeed / TimerFrequency
	if cycles < 1 {
		cycles = 1
	}
	return cycles
}

// FrameDuration returns the target duration of a single 60Hz frame.
func FrameDuration() time.Duration {
	return time.Second / TimerFrequency
}
