package view

import "time"

// Scheduler defers callbacks by a fixed duration. The navigator schedules
// both transition phases through it so tests can drive virtual time instead
// of waiting on wall-clock timers.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func())
}

// NewScheduler returns a Scheduler backed by the runtime timer.
func NewScheduler() Scheduler {
	return timerScheduler{}
}

type timerScheduler struct{}

func (timerScheduler) AfterFunc(d time.Duration, fn func()) {
	time.AfterFunc(d, fn)
}
