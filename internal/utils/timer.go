package utils

import "time"

// Timer measures the elapsed wall-clock time of one operation. [NewTimer]
// starts it immediately; [Timer.Stop] captures the elapsed duration, which
// stays available through [Timer.GetDuration].
type Timer struct {
	start    time.Time
	duration time.Duration
}

// NewTimer creates a Timer with the current time as its start instant.
func NewTimer() *Timer {
	return &Timer{start: time.Now()}
}

// Stop captures the time elapsed since construction. Calling it again
// replaces the captured value.
func (t *Timer) Stop() {
	t.duration = time.Since(t.start)
}

// GetDuration returns the duration captured by the most recent [Timer.Stop],
// or zero when Stop has not been called.
func (t *Timer) GetDuration() time.Duration {
	return t.duration
}
