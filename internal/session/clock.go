package session

import (
	"context"
	"time"
)

// Clock abstracts timers so draw pacing can be tested without sleeping.
type Clock interface {
	After(d time.Duration) <-chan time.Time
}

// SystemClock is the wall clock.
type SystemClock struct{}

// After waits for d on the wall clock.
func (SystemClock) After(d time.Duration) <-chan time.Time {
	return time.After(d)
}

// Sleep returns a task that completes after d on clock, or earlier with
// ctx's error if ctx is cancelled first.
func Sleep(clock Clock, d time.Duration) func(context.Context) error {
	return func(ctx context.Context) error {
		select {
		case <-clock.After(d):
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
