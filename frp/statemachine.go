package frp

// Reducer computes the next state from the current one and a parent value.
// It may emit any number of events on emit as a side effect.
type Reducer[S, A, B any] func(state S, value A, emit Emitter[B]) S

// StateMachine folds parent values through f, carrying state between values.
// Every mount starts again from initial. Errors and completion of s pass
// through unchanged.
func StateMachine[S, A, B any](s *Signal[A], initial S, f Reducer[S, A, B]) *Signal[B] {
	mustSignal(s)
	return New(s.sched, func(emit Emitter[B]) func() {
		state := initial
		sub := s.Subscribe(Derive(emit, func(a A) {
			state = f(state, a, emit)
		}))
		return sub.Unsubscribe
	})
}

// Take emits the first n values of s, then completes. With n <= 0 it never
// subscribes to s and completes on the next turn, not synchronously.
func Take[T any](s *Signal[T], n int) *Signal[T] {
	mustSignal(s)
	if n <= 0 {
		return Empty[T](s.sched)
	}
	return StateMachine(s, 0, func(taken int, v T, emit Emitter[T]) int {
		taken++
		emit.Value(v)
		if taken >= n {
			emit.Complete()
		}
		return taken
	})
}

// TakeWhile emits values while pred holds and completes on the first value
// that fails it.
func TakeWhile[T any](s *Signal[T], pred func(T) bool) *Signal[T] {
	return StateMachine(s, struct{}{}, func(st struct{}, v T, emit Emitter[T]) struct{} {
		if pred(v) {
			emit.Value(v)
		} else {
			emit.Complete()
		}
		return st
	})
}

// Drop skips the first n values of s.
func Drop[T any](s *Signal[T], n int) *Signal[T] {
	return StateMachine(s, 0, func(dropped int, v T, emit Emitter[T]) int {
		if dropped < n {
			return dropped + 1
		}
		emit.Value(v)
		return dropped
	})
}

// DropWhile skips values until pred first fails, then passes everything.
func DropWhile[T any](s *Signal[T], pred func(T) bool) *Signal[T] {
	return StateMachine(s, true, func(dropping bool, v T, emit Emitter[T]) bool {
		if dropping && pred(v) {
			return true
		}
		emit.Value(v)
		return false
	})
}

// Cycle emits the elements of values round-robin, one per parent value.
func Cycle[A, B any](s *Signal[A], values ...B) *Signal[B] {
	mustSignal(s)
	if len(values) == 0 {
		return Empty[B](s.sched)
	}
	return StateMachine(s, 0, func(i int, _ A, emit Emitter[B]) int {
		emit.Value(values[i])
		return (i + 1) % len(values)
	})
}

// Sequential emits the elements of values in order, one per parent value,
// and completes after the last.
func Sequential[A, B any](s *Signal[A], values ...B) *Signal[B] {
	mustSignal(s)
	if len(values) == 0 {
		return Empty[B](s.sched)
	}
	return StateMachine(s, 0, func(i int, _ A, emit Emitter[B]) int {
		emit.Value(values[i])
		i++
		if i == len(values) {
			emit.Complete()
		}
		return i
	})
}

type dedupeState[T any] struct {
	last T
	seen bool
}

// DedupeWith drops values equal to their predecessor according to eq.
func DedupeWith[T any](s *Signal[T], eq func(a, b T) bool) *Signal[T] {
	return StateMachine(s, dedupeState[T]{}, func(st dedupeState[T], v T, emit Emitter[T]) dedupeState[T] {
		if st.seen && eq(st.last, v) {
			return st
		}
		emit.Value(v)
		return dedupeState[T]{last: v, seen: true}
	})
}

// Dedupe drops consecutive duplicates.
func Dedupe[T comparable](s *Signal[T]) *Signal[T] {
	return DedupeWith(s, func(a, b T) bool { return a == b })
}
