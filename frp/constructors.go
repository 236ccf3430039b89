package frp

import (
	"context"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/delaneyj/pushparty/loop"
)

// Of emits values on the next turn of the loop, then completes.
func Of[T any](sched loop.Scheduler, values ...T) *Signal[T] {
	return FromSlice(sched, values)
}

// FromSlice emits the elements of values on the next turn of the loop, then
// completes. The slice is copied.
func FromSlice[T any](sched loop.Scheduler, values []T) *Signal[T] {
	values = slices.Clone(values)
	return New(sched, func(emit Emitter[T]) func() {
		var cancelled atomic.Bool
		sched.Asap(func() {
			for _, v := range values {
				if cancelled.Load() {
					return
				}
				emit.Value(v)
			}
			if !cancelled.Load() {
				emit.Complete()
			}
		})
		return func() { cancelled.Store(true) }
	})
}

// Empty completes on the next turn without emitting.
func Empty[T any](sched loop.Scheduler) *Signal[T] {
	return New(sched, func(emit Emitter[T]) func() {
		sched.Asap(emit.Complete)
		return nil
	})
}

// Never neither emits nor terminates.
func Never[T any](sched loop.Scheduler) *Signal[T] {
	return New(sched, func(Emitter[T]) func() {
		return nil
	})
}

// Throw errors with err on the next turn.
func Throw[T any](sched loop.Scheduler, err error) *Signal[T] {
	return New(sched, func(emit Emitter[T]) func() {
		sched.Asap(func() { emit.Error(err) })
		return nil
	})
}

// Callback is the error-first completion callback given to a FromCallback
// executor.
type Callback[T any] func(value T, err error)

// FromCallback adapts an error-first callback API. The executor runs on every
// mount; the first invocation of its callback emits the value and completes,
// or errors. The callback may be invoked from any goroutine.
func FromCallback[T any](sched loop.Scheduler, executor func(done Callback[T])) *Signal[T] {
	if executor == nil {
		panic(ErrNilMount)
	}
	return New(sched, func(emit Emitter[T]) func() {
		var (
			cancelled atomic.Bool
			once      sync.Once
		)
		executor(func(v T, err error) {
			once.Do(func() {
				sched.Asap(func() {
					if cancelled.Load() {
						return
					}
					if err != nil {
						emit.Error(err)
						return
					}
					emit.Value(v)
					emit.Complete()
				})
			})
		})
		return func() { cancelled.Store(true) }
	})
}

// FromFuture runs fn on its own goroutine for every mount and emits its
// result. The context passed to fn is cancelled on unmount.
func FromFuture[T any](sched loop.Scheduler, fn func(ctx context.Context) (T, error)) *Signal[T] {
	if fn == nil {
		panic(ErrNilMount)
	}
	return New(sched, func(emit Emitter[T]) func() {
		ctx, cancel := context.WithCancel(context.Background())
		go func() {
			v, err := fn(ctx)
			sched.Asap(func() {
				if ctx.Err() != nil {
					return
				}
				if err != nil {
					emit.Error(err)
					return
				}
				emit.Value(v)
				emit.Complete()
			})
		}()
		return cancel
	})
}

// FromChannel emits every value received from ch and completes when ch is
// closed. Unmounting stops the reader but leaves ch open.
func FromChannel[T any](sched loop.Scheduler, ch <-chan T) *Signal[T] {
	return New(sched, func(emit Emitter[T]) func() {
		done := make(chan struct{})
		var stopped atomic.Bool
		go func() {
			for {
				select {
				case <-done:
					return
				case v, ok := <-ch:
					if !ok {
						sched.Asap(func() {
							if !stopped.Load() {
								emit.Complete()
							}
						})
						return
					}
					sched.Asap(func() {
						if !stopped.Load() {
							emit.Value(v)
						}
					})
				}
			}
		}()
		return func() {
			stopped.Store(true)
			close(done)
		}
	})
}

// EventTarget is anything that can deliver named events to listeners, such as
// an input device or a UI surface.
type EventTarget[E any] interface {
	// AddEventListener registers listener and returns the function that
	// removes exactly that registration.
	AddEventListener(typ string, listener func(E), useCapture bool) (remove func())
}

// EventOptions configures FromEvent.
type EventOptions struct {
	UseCapture bool
}

// FromEvent emits every event of type typ dispatched by target. Events are
// delivered synchronously on the dispatching goroutine, which must be the
// scheduler's loop.
func FromEvent[E any](sched loop.Scheduler, typ string, target EventTarget[E], opts EventOptions) *Signal[E] {
	if target == nil {
		panic(ErrNilTarget)
	}
	return New(sched, func(emit Emitter[E]) func() {
		return target.AddEventListener(typ, emit.Value, opts.UseCapture)
	})
}

// Periodic emits 0, 1, 2, ... every interval, starting one interval after
// mount.
func Periodic(sched loop.Scheduler, interval time.Duration) *Signal[int] {
	if interval <= 0 {
		panic(ErrInterval)
	}
	return New(sched, func(emit Emitter[int]) func() {
		p := &periodic{sched: sched, interval: interval, emit: emit}
		p.arm()
		return p.stop
	})
}

type periodic struct {
	sched    loop.Scheduler
	interval time.Duration
	emit     Emitter[int]

	timer   loop.Timer
	n       int
	stopped bool
}

func (p *periodic) arm() {
	p.timer = p.sched.AfterFunc(p.interval, p.tick)
}

func (p *periodic) tick() {
	if p.stopped {
		return
	}
	n := p.n
	p.n++
	p.arm()
	p.emit.Value(n)
}

func (p *periodic) stop() {
	p.stopped = true
	if p.timer != nil {
		p.timer.Stop()
	}
}
