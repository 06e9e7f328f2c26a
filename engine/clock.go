package engine

import "time"

// Timer is a single scheduled wake-up.
type Timer interface {
	C() <-chan time.Time
	Stop() bool
}

// Clock creates timers for the step scheduler.
type Clock interface {
	NewTimer(d time.Duration) Timer
}

type realClock struct{}

type realTimer struct {
	t *time.Timer
}

func (realClock) NewTimer(d time.Duration) Timer {
	return &realTimer{t: time.NewTimer(d)}
}

func (r *realTimer) C() <-chan time.Time {
	return r.t.C
}

func (r *realTimer) Stop() bool {
	return r.t.Stop()
}
