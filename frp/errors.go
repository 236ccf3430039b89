package frp

import (
	"errors"
	"fmt"
)

// ErrUsage is wrapped by every programmer error. Usage errors are raised with
// panic at the call site that detects them and are never converted into
// error emissions.
var ErrUsage = errors.New("frp: usage error")

var (
	ErrNilMount     = fmt.Errorf("%w: nil mount function", ErrUsage)
	ErrNilScheduler = fmt.Errorf("%w: nil scheduler", ErrUsage)
	ErrNilSignal    = fmt.Errorf("%w: nil signal", ErrUsage)
	ErrNoSignals    = fmt.Errorf("%w: no input signals", ErrUsage)
	ErrNotSignal    = fmt.Errorf("%w: mapper returned no signal", ErrUsage)
	ErrNilTarget    = fmt.Errorf("%w: nil event target", ErrUsage)
	ErrInterval     = fmt.Errorf("%w: interval must be positive", ErrUsage)
)

// ErrMountPanic wraps a panic recovered from a mount function.
var ErrMountPanic = errors.New("frp: mount panicked")

func mountPanicError(r any) error {
	if err, ok := r.(error); ok {
		return fmt.Errorf("%w: %w", ErrMountPanic, err)
	}
	return fmt.Errorf("%w: %v", ErrMountPanic, r)
}

func isUsageError(r any) bool {
	err, ok := r.(error)
	return ok && errors.Is(err, ErrUsage)
}

func mustSignal[T any](s *Signal[T]) {
	if s == nil {
		panic(ErrNilSignal)
	}
}

func mustSignals[T any](ss []*Signal[T]) {
	if len(ss) == 0 {
		panic(ErrNoSignals)
	}
	for i, s := range ss {
		if s == nil {
			panic(fmt.Errorf("%w at position %d", ErrNilSignal, i))
		}
	}
}
