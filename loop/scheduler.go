package loop

import (
	"errors"
	"time"
)

var (
	ErrRunning = errors.New("loop: already running")
	ErrStopped = errors.New("loop: stopped")
)

// Scheduler defers work to a later turn of a single-threaded event loop.
// Every callback handed to a Scheduler runs on the loop's goroutine, one at a
// time, so code reachable only from callbacks needs no further locking.
type Scheduler interface {
	// Asap runs fn after the current call stack has unwound. It never runs fn
	// synchronously inside the caller.
	Asap(fn func())
	// AfterFunc runs fn once d has elapsed.
	AfterFunc(d time.Duration, fn func()) Timer
	// Now is the scheduler's notion of the current time.
	Now() time.Time
}

// Timer is a pending AfterFunc callback.
type Timer interface {
	// Stop prevents the callback from running. It reports false if the
	// callback already ran or was already stopped.
	Stop() bool
}

// PanicHandler receives the value recovered from a panicking callback.
type PanicHandler func(recovered any)

type taskState int32

const (
	taskPending taskState = iota
	taskQueued
	taskCancelled
	taskDone
)
