package loop

import "time"

// Clock supplies frame timestamps
type Clock interface {
	Now() time.Time
}

// SystemClock provides the real system time with monotonic clock readings
type SystemClock struct{}

// Now returns the current time with monotonic clock reading
func (SystemClock) Now() time.Time {
	return time.Now()
}

// ManualClock is a controllable time source for testing
// Single-goroutine use, matching the frame loop it drives
type ManualClock struct {
	current time.Time
}

// NewManualClock creates a clock frozen at start
func NewManualClock(start time.Time) *ManualClock {
	return &ManualClock{current: start}
}

// Now returns the current mocked time
func (m *ManualClock) Now() time.Time {
	return m.current
}

// Set sets the current time
func (m *ManualClock) Set(t time.Time) {
	m.current = t
}

// Advance advances the current time by d
func (m *ManualClock) Advance(d time.Duration) {
	m.current = m.current.Add(d)
}
