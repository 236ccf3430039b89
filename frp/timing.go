package frp

import (
	"time"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/delaneyj/pushparty/loop"
)

// Debounce emits a value only after d of silence following it; every new
// value restarts the wait. A pending value is flushed before completion.
func Debounce[T any](s *Signal[T], d time.Duration) *Signal[T] {
	mustSignal(s)
	return New(s.sched, func(emit Emitter[T]) func() {
		db := &debounce[T]{sched: s.sched, wait: d, emit: emit}
		sub := s.Subscribe(Observer[T]{
			OnValue: db.value,
			OnError: func(err error) {
				db.cancel()
				emit.Error(err)
			},
			OnComplete: func() {
				db.flush()
				emit.Complete()
			},
		})
		return func() {
			db.cancel()
			sub.Unsubscribe()
		}
	})
}

type debounce[T any] struct {
	sched loop.Scheduler
	wait  time.Duration
	emit  Emitter[T]

	timer   loop.Timer
	pending T
	has     bool
}

func (db *debounce[T]) value(v T) {
	db.stopTimer()
	db.pending, db.has = v, true
	db.timer = db.sched.AfterFunc(db.wait, func() {
		db.timer = nil
		db.flush()
	})
}

func (db *debounce[T]) flush() {
	db.stopTimer()
	if !db.has {
		return
	}
	v := db.pending
	var zero T
	db.pending, db.has = zero, false
	db.emit.Value(v)
}

func (db *debounce[T]) cancel() {
	db.stopTimer()
	var zero T
	db.pending, db.has = zero, false
}

func (db *debounce[T]) stopTimer() {
	if db.timer != nil {
		db.timer.Stop()
		db.timer = nil
	}
}

// Throttle passes a value only if at least d has elapsed since the last
// value it passed; everything in between is dropped.
func Throttle[T any](s *Signal[T], d time.Duration) *Signal[T] {
	mustSignal(s)
	return New(s.sched, func(emit Emitter[T]) func() {
		var (
			last     time.Time
			accepted bool
		)
		return s.Subscribe(Derive(emit, func(v T) {
			now := s.sched.Now()
			if accepted && now.Sub(last) < d {
				return
			}
			last, accepted = now, true
			emit.Value(v)
		})).Unsubscribe
	})
}

// Delay shifts every value and the completion of s later by d. Errors are
// delivered immediately and discard anything still in flight.
func Delay[T any](s *Signal[T], d time.Duration) *Signal[T] {
	mustSignal(s)
	return New(s.sched, func(emit Emitter[T]) func() {
		dl := &delay{sched: s.sched, wait: d, timers: mapset.NewThreadUnsafeSet[loop.Timer]()}
		sub := s.Subscribe(Observer[T]{
			OnValue: func(v T) {
				dl.after(func() { emit.Value(v) })
			},
			OnError: func(err error) {
				dl.cancel()
				emit.Error(err)
			},
			OnComplete: func() {
				dl.after(emit.Complete)
			},
		})
		return func() {
			dl.cancel()
			sub.Unsubscribe()
		}
	})
}

type delay struct {
	sched  loop.Scheduler
	wait   time.Duration
	timers mapset.Set[loop.Timer]
}

func (dl *delay) after(fn func()) {
	var t loop.Timer
	t = dl.sched.AfterFunc(dl.wait, func() {
		dl.timers.Remove(t)
		fn()
	})
	dl.timers.Add(t)
}

func (dl *delay) cancel() {
	dl.timers.Each(func(t loop.Timer) bool {
		t.Stop()
		return false
	})
	dl.timers.Clear()
}

// Buffer emits chunks of n values. A partial chunk is flushed when s
// completes. With n <= 0 everything is buffered until completion.
func Buffer[T any](s *Signal[T], n int) *Signal[[]T] {
	mustSignal(s)
	return New(s.sched, func(emit Emitter[[]T]) func() {
		var chunk []T
		return s.Subscribe(Observer[T]{
			OnValue: func(v T) {
				chunk = append(chunk, v)
				if n > 0 && len(chunk) >= n {
					out := chunk
					chunk = nil
					emit.Value(out)
				}
			},
			OnError: emit.Error,
			OnComplete: func() {
				if len(chunk) > 0 {
					out := chunk
					chunk = nil
					emit.Value(out)
				}
				emit.Complete()
			},
		}).Unsubscribe
	})
}
