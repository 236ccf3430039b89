package frp

import (
	"fmt"

	"github.com/delaneyj/pushparty/loop"
)

func mustInner[T any](s *Signal[T]) *Signal[T] {
	if s == nil {
		panic(ErrNotSignal)
	}
	return s
}

// SwitchMap maps every value of s to a Signal and mirrors the most recent
// one, unsubscribing from its predecessor. Inner completions are ignored;
// only completion or error of s, or an inner error, end the result.
// A nil Signal from f panics with ErrNotSignal.
func SwitchMap[A, B any](s *Signal[A], f func(A) *Signal[B]) *Signal[B] {
	mustSignal(s)
	return New(s.sched, func(emit Emitter[B]) func() {
		var inner *Subscription
		outer := s.Subscribe(Derive(emit, func(a A) {
			next := mustInner(f(a))
			if inner != nil {
				inner.Unsubscribe()
			}
			inner = next.Subscribe(Observer[B]{
				OnValue: emit.Value,
				OnError: emit.Error,
			})
		}))
		return func() {
			outer.Unsubscribe()
			if inner != nil {
				inner.Unsubscribe()
			}
		}
	})
}

// SwitchLatest mirrors the most recent Signal emitted by s.
func SwitchLatest[T any](s *Signal[*Signal[T]]) *Signal[T] {
	return SwitchMap(s, func(inner *Signal[T]) *Signal[T] { return inner })
}

// Encode switches to table[k] for every key k emitted by s. A key missing
// from the table is a usage error.
func Encode[K comparable, T any](s *Signal[K], table map[K]*Signal[T]) *Signal[T] {
	return SwitchMap(s, func(k K) *Signal[T] {
		inner, ok := table[k]
		if !ok {
			panic(fmt.Errorf("%w: no signal for key %v", ErrNotSignal, k))
		}
		return inner
	})
}

// ConcatMap maps every value of s to a Signal and plays those Signals one at
// a time in emission order. It completes once s and every queued inner have
// completed.
func ConcatMap[A, B any](s *Signal[A], f func(A) *Signal[B]) *Signal[B] {
	mustSignal(s)
	return New(s.sched, func(emit Emitter[B]) func() {
		c := &concatMap[B]{emit: emit}
		outer := s.Subscribe(Observer[A]{
			OnValue: func(a A) {
				c.queue = append(c.queue, mustInner(f(a)))
				c.drain()
			},
			OnError: emit.Error,
			OnComplete: func() {
				c.outerDone = true
				c.drain()
			},
		})
		return func() {
			outer.Unsubscribe()
			c.stop()
		}
	})
}

type concatMap[B any] struct {
	emit      Emitter[B]
	queue     []*Signal[B]
	inner     *Subscription
	active    bool
	seq       uint64
	outerDone bool
}

func (c *concatMap[B]) drain() {
	for !c.active && len(c.queue) > 0 {
		next := c.queue[0]
		c.queue = c.queue[1:]
		c.start(next)
	}
	if !c.active && len(c.queue) == 0 && c.outerDone {
		c.emit.Complete()
	}
}

func (c *concatMap[B]) start(next *Signal[B]) {
	c.seq++
	seq := c.seq
	c.active = true
	sub := next.Subscribe(Observer[B]{
		OnValue: c.emit.Value,
		OnError: c.emit.Error,
		OnComplete: func() {
			if seq != c.seq {
				return
			}
			c.active = false
			c.inner = nil
			c.drain()
		},
	})
	if c.active && seq == c.seq {
		c.inner = sub
	}
}

func (c *concatMap[B]) stop() {
	c.queue = nil
	if c.inner != nil {
		c.inner.Unsubscribe()
		c.inner = nil
	}
}

// Window slices target into consecutive panes. A pane is open from mount and
// every control value closes the current pane and emits a new one. Panes are
// hot: values are seen only by pane subscribers present when they arrive.
// Subscribing to a pane that already closed delivers its terminal event on
// the next turn. The result completes when target completes.
func Window[C, T any](control *Signal[C], target *Signal[T]) *Signal[*Signal[T]] {
	mustSignal(control)
	mustSignal(target)
	return New(target.sched, func(emit Emitter[*Signal[T]]) func() {
		var pane *windowPane[T]
		open := func() {
			if pane != nil {
				pane.complete()
			}
			pane = newWindowPane[T](target.sched)
			emit.Value(pane.signal)
		}
		fail := func(err error) {
			pane.fail(err)
			emit.Error(err)
		}

		open()
		targetSub := target.Subscribe(Observer[T]{
			OnValue: func(v T) { pane.subject.Value(v) },
			OnError: fail,
			OnComplete: func() {
				pane.complete()
				emit.Complete()
			},
		})
		controlSub := control.Subscribe(Observer[C]{
			OnValue: func(C) { open() },
			OnError: fail,
		})
		return func() {
			targetSub.Unsubscribe()
			controlSub.Unsubscribe()
			pane.complete()
		}
	})
}

type windowPane[T any] struct {
	subject *Subject[T]
	signal  *Signal[T]
	ended   func(Emitter[T])
}

func newWindowPane[T any](sched loop.Scheduler) *windowPane[T] {
	p := &windowPane[T]{subject: NewSubject[T](sched)}
	p.signal = New(sched, func(emit Emitter[T]) func() {
		if ended := p.ended; ended != nil {
			sched.Asap(func() { ended(emit) })
			return nil
		}
		return p.subject.Subscribe(Forward(emit)).Unsubscribe
	})
	return p
}

func (p *windowPane[T]) complete() {
	if p.ended != nil {
		return
	}
	p.ended = func(emit Emitter[T]) { emit.Complete() }
	p.subject.Complete()
}

func (p *windowPane[T]) fail(err error) {
	if p.ended != nil {
		return
	}
	p.ended = func(emit Emitter[T]) { emit.Error(err) }
	p.subject.Error(err)
}

// CatchError mirrors s until it errors, then switches to the Signal returned
// by f for that error. Errors from the replacement are not caught.
func CatchError[T any](s *Signal[T], f func(error) *Signal[T]) *Signal[T] {
	mustSignal(s)
	return New(s.sched, func(emit Emitter[T]) func() {
		var replacement *Subscription
		source := s.Subscribe(Observer[T]{
			OnValue:    emit.Value,
			OnComplete: emit.Complete,
			OnError: func(err error) {
				next := mustInner(f(err))
				replacement = next.Subscribe(Forward(emit))
			},
		})
		return func() {
			source.Unsubscribe()
			if replacement != nil {
				replacement.Unsubscribe()
			}
		}
	})
}
