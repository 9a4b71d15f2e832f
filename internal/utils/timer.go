package utils

import "time"

// Timer measures the wall-clock time of one operation.
type Timer struct {
	startTime time.Time
	duration  time.Duration
}

// NewTimer returns a running Timer.
func NewTimer() *Timer {
	return &Timer{startTime: time.Now()}
}

// Stop captures the time elapsed since NewTimer.
func (t *Timer) Stop() {
	t.duration = time.Since(t.startTime)
}

// GetDuration returns the duration captured by Stop, or zero before Stop.
func (t *Timer) GetDuration() time.Duration {
	return t.duration
}

// Seconds is GetDuration as float seconds, the unit histograms record.
func (t *Timer) Seconds() float64 {
	return t.duration.Seconds()
}
