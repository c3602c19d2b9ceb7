package crossing

import "time"

// Timer is a repeating timer driven by simulated time instead of the wall
// clock. The session advances it once per tick.
type Timer struct {
	interval float64 // seconds
	elapsed  float64
	armed    bool
}

// NewTimer creates a disarmed timer that fires every interval.
func NewTimer(interval time.Duration) *Timer {
	return &Timer{interval: interval.Seconds()}
}

// Arm starts the timer from zero. Arming an armed timer restarts it, so at
// most one schedule is ever active.
func (t *Timer) Arm() {
	t.elapsed = 0
	t.armed = true
}

// Cancel stops the timer.
func (t *Timer) Cancel() {
	t.armed = false
	t.elapsed = 0
}

// Armed reports whether the timer is running.
func (t *Timer) Armed() bool {
	return t.armed
}

// Advance moves the timer forward by dt seconds and returns how many times
// it fired.
func (t *Timer) Advance(dt float64) int {
	if !t.armed || t.interval <= 0 || dt <= 0 {
		return 0
	}
	t.elapsed += dt
	fires := 0
	for t.elapsed >= t.interval {
		t.elapsed -= t.interval
		fires++
	}
	return fires
}
