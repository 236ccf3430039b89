package frp

func Map[A, B any](s *Signal[A], f func(A) B) *Signal[B] {
	mustSignal(s)
	return New(s.sched, func(emit Emitter[B]) func() {
		return s.Subscribe(Derive(emit, func(a A) {
			emit.Value(f(a))
		})).Unsubscribe
	})
}

// MapTo replaces every value of s with v.
func MapTo[A, B any](s *Signal[A], v B) *Signal[B] {
	return Map(s, func(A) B { return v })
}

func Filter[T any](s *Signal[T], pred func(T) bool) *Signal[T] {
	mustSignal(s)
	return New(s.sched, func(emit Emitter[T]) func() {
		return s.Subscribe(Derive(emit, func(v T) {
			if pred(v) {
				emit.Value(v)
			}
		})).Unsubscribe
	})
}

// Tap calls fn with every value before passing it on.
func Tap[T any](s *Signal[T], fn func(T)) *Signal[T] {
	return Map(s, func(v T) T {
		fn(v)
		return v
	})
}

// Scan emits the running accumulation of s. The seed itself is not emitted.
func Scan[T, Acc any](s *Signal[T], f func(acc Acc, v T) Acc, seed Acc) *Signal[Acc] {
	return StateMachine(s, seed, func(acc Acc, v T, emit Emitter[Acc]) Acc {
		acc = f(acc, v)
		emit.Value(acc)
		return acc
	})
}

// Fold accumulates s silently and emits the result once s completes.
func Fold[T, Acc any](s *Signal[T], f func(acc Acc, v T) Acc, seed Acc) *Signal[Acc] {
	mustSignal(s)
	return New(s.sched, func(emit Emitter[Acc]) func() {
		acc := seed
		return s.Subscribe(Observer[T]{
			OnValue: func(v T) { acc = f(acc, v) },
			OnError: emit.Error,
			OnComplete: func() {
				emit.Value(acc)
				emit.Complete()
			},
		}).Unsubscribe
	})
}

// StartWith emits values on the next turn, then everything s emits.
func StartWith[T any](s *Signal[T], values ...T) *Signal[T] {
	mustSignal(s)
	return Concat(FromSlice(s.sched, values), s)
}
