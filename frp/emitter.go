package frp

// Emitter is the capability a mount function uses to push events to the
// Signal's subscribers.
type Emitter[T any] interface {
	Value(T)
	Error(error)
	Complete()
}

// Observer is a set of optional callbacks. Nil slots are skipped, so an
// Observer is always a valid Emitter.
type Observer[T any] struct {
	OnValue    func(T)
	OnError    func(error)
	OnComplete func()
}

func (o Observer[T]) Value(v T) {
	if o.OnValue != nil {
		o.OnValue(v)
	}
}

func (o Observer[T]) Error(err error) {
	if o.OnError != nil {
		o.OnError(err)
	}
}

func (o Observer[T]) Complete() {
	if o.OnComplete != nil {
		o.OnComplete()
	}
}

// WithValue returns a copy of o with the value slot replaced.
func (o Observer[T]) WithValue(fn func(T)) Observer[T] {
	o.OnValue = fn
	return o
}

// WithError returns a copy of o with the error slot replaced.
func (o Observer[T]) WithError(fn func(error)) Observer[T] {
	o.OnError = fn
	return o
}

// WithComplete returns a copy of o with the complete slot replaced.
func (o Observer[T]) WithComplete(fn func()) Observer[T] {
	o.OnComplete = fn
	return o
}

// Forward relays all three slots to emit unchanged.
func Forward[T any](emit Emitter[T]) Observer[T] {
	return Observer[T]{
		OnValue:    emit.Value,
		OnError:    emit.Error,
		OnComplete: emit.Complete,
	}
}

// Derive builds an observer of a parent Signal that intercepts values and
// forwards error and completion to emit. It is the building block of nearly
// every combinator.
func Derive[A, B any](emit Emitter[B], onValue func(A)) Observer[A] {
	return Observer[A]{
		OnValue:    onValue,
		OnError:    emit.Error,
		OnComplete: emit.Complete,
	}
}
