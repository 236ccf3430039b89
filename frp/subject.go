package frp

import (
	"sync"

	"github.com/delaneyj/pushparty/loop"
)

// Subject is a Signal fed imperatively. Events pushed while the Subject is
// not mounted are dropped.
type Subject[T any] struct {
	*Signal[T]

	mu   sync.Mutex
	emit Emitter[T]
}

func NewSubject[T any](sched loop.Scheduler) *Subject[T] {
	s := &Subject[T]{}
	s.Signal = New(sched, func(emit Emitter[T]) func() {
		s.mu.Lock()
		s.emit = emit
		s.mu.Unlock()

		return func() {
			s.mu.Lock()
			if s.emit == emit {
				s.emit = nil
			}
			s.mu.Unlock()
		}
	})
	return s
}

func (s *Subject[T]) current() Emitter[T] {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.emit
}

func (s *Subject[T]) Value(v T) {
	if emit := s.current(); emit != nil {
		emit.Value(v)
	}
}

func (s *Subject[T]) Error(err error) {
	if emit := s.current(); emit != nil {
		emit.Error(err)
	}
}

func (s *Subject[T]) Complete() {
	if emit := s.current(); emit != nil {
		emit.Complete()
	}
}
