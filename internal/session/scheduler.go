package session

import "time"

// Scheduler runs f once after d.
type Scheduler interface {
	AfterFunc(d time.Duration, f func())
}

// ClockScheduler schedules on the wall clock.
type ClockScheduler struct{}

func (ClockScheduler) AfterFunc(d time.Duration, f func()) {
	time.AfterFunc(d, f)
}
