package frp

func unsubscribeAll(subs []*Subscription) {
	for _, sub := range subs {
		sub.Unsubscribe()
	}
}

// Merge subscribes to every input at once and interleaves their values. It
// completes when all inputs have completed; the first error ends it.
func Merge[T any](ss ...*Signal[T]) *Signal[T] {
	mustSignals(ss)
	return New(ss[0].sched, func(emit Emitter[T]) func() {
		remaining := len(ss)
		subs := make([]*Subscription, 0, len(ss))
		for _, s := range ss {
			subs = append(subs, s.Subscribe(Observer[T]{
				OnValue: emit.Value,
				OnError: emit.Error,
				OnComplete: func() {
					remaining--
					if remaining == 0 {
						emit.Complete()
					}
				},
			}))
		}
		return func() { unsubscribeAll(subs) }
	})
}

// Concat plays the inputs one after another. The next input is subscribed
// only once the previous one completed, so at most one input is live.
func Concat[T any](ss ...*Signal[T]) *Signal[T] {
	mustSignals(ss)
	return New(ss[0].sched, func(emit Emitter[T]) func() {
		var (
			current *Subscription
			next    int
			advance func()
		)
		advance = func() {
			if next >= len(ss) {
				emit.Complete()
				return
			}
			i := next
			next++
			sub := ss[i].Subscribe(Observer[T]{
				OnValue:    emit.Value,
				OnError:    emit.Error,
				OnComplete: advance,
			})
			if next == i+1 {
				current = sub
			}
		}
		advance()
		return func() {
			if current != nil {
				current.Unsubscribe()
			}
		}
	})
}

// Zip pairs up the n-th values of every input.
func Zip[T any](ss ...*Signal[T]) *Signal[[]T] {
	return ZipWith(func(vs []T) []T { return vs }, ss...)
}

// ZipWith queues values per input and, whenever every queue holds at least
// one value, takes the head of each and emits f of them. It completes as soon
// as any input completes.
func ZipWith[T, R any](f func(vs []T) R, ss ...*Signal[T]) *Signal[R] {
	mustSignals(ss)
	return New(ss[0].sched, func(emit Emitter[R]) func() {
		queues := make([][]T, len(ss))
		ready := func() bool {
			for _, q := range queues {
				if len(q) == 0 {
					return false
				}
			}
			return true
		}

		subs := make([]*Subscription, 0, len(ss))
		for i, s := range ss {
			subs = append(subs, s.Subscribe(Derive(emit, func(v T) {
				queues[i] = append(queues[i], v)
				if !ready() {
					return
				}
				vs := make([]T, len(queues))
				for j := range queues {
					vs[j] = queues[j][0]
					queues[j] = queues[j][1:]
				}
				emit.Value(f(vs))
			})))
		}
		return func() { unsubscribeAll(subs) }
	})
}

// ZipLatestWith emits f of the latest value of every input, first once all
// inputs have produced a value and then on every value from any of them. It
// completes when all inputs have completed.
func ZipLatestWith[T, R any](f func(vs []T) R, ss ...*Signal[T]) *Signal[R] {
	mustSignals(ss)
	return New(ss[0].sched, func(emit Emitter[R]) func() {
		var (
			latest    = make([]T, len(ss))
			has       = make([]bool, len(ss))
			missing   = len(ss)
			remaining = len(ss)
		)

		subs := make([]*Subscription, 0, len(ss))
		for i, s := range ss {
			subs = append(subs, s.Subscribe(Observer[T]{
				OnValue: func(v T) {
					latest[i] = v
					if !has[i] {
						has[i] = true
						missing--
					}
					if missing == 0 {
						vs := make([]T, len(latest))
						copy(vs, latest)
						emit.Value(f(vs))
					}
				},
				OnError: emit.Error,
				OnComplete: func() {
					remaining--
					if remaining == 0 {
						emit.Complete()
					}
				},
			}))
		}
		return func() { unsubscribeAll(subs) }
	})
}

// Apply emits fn(v) for the latest function and latest value once both have
// arrived, and again whenever either changes. It completes when either input
// completes.
func Apply[A, B any](fns *Signal[func(A) B], values *Signal[A]) *Signal[B] {
	mustSignal(fns)
	mustSignal(values)
	return New(values.sched, func(emit Emitter[B]) func() {
		var (
			fn    func(A) B
			v     A
			hasFn bool
			hasV  bool
		)
		try := func() {
			if hasFn && hasV {
				emit.Value(fn(v))
			}
		}
		fnSub := fns.Subscribe(Derive(emit, func(f func(A) B) {
			fn, hasFn = f, true
			try()
		}))
		valueSub := values.Subscribe(Derive(emit, func(a A) {
			v, hasV = a, true
			try()
		}))
		return func() {
			fnSub.Unsubscribe()
			valueSub.Unsubscribe()
		}
	})
}

// Sample emits the latest value of target each time control emits. Control
// ticks before target's first value emit nothing. Either input completing
// completes the result.
func Sample[C, T any](control *Signal[C], target *Signal[T]) *Signal[T] {
	mustSignal(control)
	mustSignal(target)
	return New(target.sched, func(emit Emitter[T]) func() {
		var (
			latest T
			has    bool
		)
		targetSub := target.Subscribe(Derive(emit, func(v T) {
			latest, has = v, true
		}))
		controlSub := control.Subscribe(Derive(emit, func(C) {
			if has {
				emit.Value(latest)
			}
		}))
		return func() {
			targetSub.Unsubscribe()
			controlSub.Unsubscribe()
		}
	})
}

// Hold passes target values through while the latest control value is false.
// Either input completing completes the result.
func Hold[T any](control *Signal[bool], target *Signal[T]) *Signal[T] {
	mustSignal(control)
	mustSignal(target)
	return New(target.sched, func(emit Emitter[T]) func() {
		held := false
		controlSub := control.Subscribe(Derive(emit, func(h bool) {
			held = h
		}))
		targetSub := target.Subscribe(Derive(emit, func(v T) {
			if !held {
				emit.Value(v)
			}
		}))
		return func() {
			controlSub.Unsubscribe()
			targetSub.Unsubscribe()
		}
	})
}

// erase widens s to Signal[any] so inputs of different types can share one
// of the slice-based combinators.
func erase[T any](s *Signal[T]) *Signal[any] {
	mustSignal(s)
	return Map(s, func(v T) any { return v })
}

// as narrows v back to T. A nil interface value yields the zero T.
func as[T any](v any) T {
	t, _ := v.(T)
	return t
}
