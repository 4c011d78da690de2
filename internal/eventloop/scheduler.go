// Package eventloop provides the single-owner task queues that numeric inputs
// use for deferred work and step-hold timers.
package eventloop

import "time"

// Timer is a pending callback created by Scheduler.AfterFunc.
type Timer interface {
	// Stop cancels the callback. It reports whether the call prevented it from running.
	Stop() bool
}

// Scheduler runs callbacks on the goroutine that owns an input instance.
// Callbacks never run concurrently with each other, and deferred callbacks run
// in the order they were issued.
type Scheduler interface {
	// Defer queues fn to run after the current task.
	Defer(fn func())
	// AfterFunc queues fn to run once d has elapsed.
	AfterFunc(d time.Duration, fn func()) Timer
}
