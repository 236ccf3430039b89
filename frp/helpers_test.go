package frp_test

import (
	"time"

	"github.com/delaneyj/pushparty/frp"
	"github.com/delaneyj/pushparty/loop"
)

func newVirtual() *loop.Virtual {
	return loop.NewVirtual(time.Unix(0, 0))
}

type recorder[T any] struct {
	values    []T
	errs      []error
	completes int
}

func record[T any](s *frp.Signal[T]) (*recorder[T], *frp.Subscription) {
	r := &recorder[T]{}
	sub := s.Subscribe(frp.Observer[T]{
		OnValue:    func(v T) { r.values = append(r.values, v) },
		OnError:    func(err error) { r.errs = append(r.errs, err) },
		OnComplete: func() { r.completes++ },
	})
	return r, sub
}

// source is a hand-driven Signal that counts its mounts and unmounts.
type source[T any] struct {
	signal   *frp.Signal[T]
	emit     frp.Emitter[T]
	mounts   int
	unmounts int
}

func newSource[T any](sched loop.Scheduler) *source[T] {
	src := &source[T]{}
	src.signal = frp.New(sched, func(emit frp.Emitter[T]) func() {
		src.mounts++
		src.emit = emit
		return func() {
			src.unmounts++
			src.emit = nil
		}
	})
	return src
}

func (s *source[T]) live() bool {
	return s.emit != nil
}

func (s *source[T]) value(vs ...T) {
	for _, v := range vs {
		if s.emit != nil {
			s.emit.Value(v)
		}
	}
}

func (s *source[T]) fail(err error) {
	if s.emit != nil {
		s.emit.Error(err)
	}
}

func (s *source[T]) complete() {
	if s.emit != nil {
		s.emit.Complete()
	}
}
