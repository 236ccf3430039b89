package frp

import "time"

// Method forms of the combinators that keep the element type, for chaining.

func (s *Signal[T]) Filter(pred func(T) bool) *Signal[T] {
	return Filter(s, pred)
}

func (s *Signal[T]) Tap(fn func(T)) *Signal[T] {
	return Tap(s, fn)
}

func (s *Signal[T]) Take(n int) *Signal[T] {
	return Take(s, n)
}

func (s *Signal[T]) TakeWhile(pred func(T) bool) *Signal[T] {
	return TakeWhile(s, pred)
}

func (s *Signal[T]) Drop(n int) *Signal[T] {
	return Drop(s, n)
}

func (s *Signal[T]) DropWhile(pred func(T) bool) *Signal[T] {
	return DropWhile(s, pred)
}

func (s *Signal[T]) DedupeWith(eq func(a, b T) bool) *Signal[T] {
	return DedupeWith(s, eq)
}

func (s *Signal[T]) Debounce(d time.Duration) *Signal[T] {
	return Debounce(s, d)
}

func (s *Signal[T]) Throttle(d time.Duration) *Signal[T] {
	return Throttle(s, d)
}

func (s *Signal[T]) Delay(d time.Duration) *Signal[T] {
	return Delay(s, d)
}

func (s *Signal[T]) StartWith(values ...T) *Signal[T] {
	return StartWith(s, values...)
}

func (s *Signal[T]) CatchError(f func(error) *Signal[T]) *Signal[T] {
	return CatchError(s, f)
}

// Merge merges s with others.
func (s *Signal[T]) Merge(others ...*Signal[T]) *Signal[T] {
	return Merge(append([]*Signal[T]{s}, others...)...)
}

// Concat plays others after s.
func (s *Signal[T]) Concat(others ...*Signal[T]) *Signal[T] {
	return Concat(append([]*Signal[T]{s}, others...)...)
}
