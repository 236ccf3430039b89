package frp

// TakeUntil mirrors target until control emits its first value, then
// completes. Completion of either input also completes the result.
func TakeUntil[C, T any](control *Signal[C], target *Signal[T]) *Signal[T] {
	mustSignal(control)
	mustSignal(target)
	return New(target.sched, func(emit Emitter[T]) func() {
		controlSub := control.Subscribe(Derive(emit, func(C) {
			emit.Complete()
		}))
		targetSub := target.Subscribe(Forward(emit))
		return func() {
			controlSub.Unsubscribe()
			targetSub.Unsubscribe()
		}
	})
}

// DropUntil ignores target until control emits its first value, then mirrors
// it. Completion of either input completes the result.
func DropUntil[C, T any](control *Signal[C], target *Signal[T]) *Signal[T] {
	mustSignal(control)
	mustSignal(target)
	return New(target.sched, func(emit Emitter[T]) func() {
		open := false
		controlSub := control.Subscribe(Derive(emit, func(C) {
			open = true
		}))
		targetSub := target.Subscribe(Derive(emit, func(v T) {
			if open {
				emit.Value(v)
			}
		}))
		return func() {
			controlSub.Unsubscribe()
			targetSub.Unsubscribe()
		}
	})
}
