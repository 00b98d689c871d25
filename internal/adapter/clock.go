package adapter

import "time"

// Clock is the time source of the host and the event relay
//
//go:generate mockgen -source=clock.go -destination=../mocks/clock.go -package=mocks -mock_names=Clock=MockClock
type Clock interface {
	// Now returns the current time, used to stamp journaled events
	Now() time.Time
	// After waits for the duration to elapse, used between relay polls
	After(d time.Duration) <-chan time.Time
}

// RealClock is the wall clock
type RealClock struct{}

// NewClock returns the wall clock
func NewClock() Clock {
	return &RealClock{}
}

func (c *RealClock) Now() time.Time {
	return time.Now()
}

func (c *RealClock) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}
