package frp

import (
	"slices"
	"sync"
	"sync/atomic"

	"github.com/delaneyj/pushparty/loop"
)

// MountFunc wires a Signal to its true source and returns the function that
// releases it. It is called when the first subscriber arrives and its result
// is called when the last one leaves or the Signal terminates.
type MountFunc[T any] func(emit Emitter[T]) (unmount func())

type lifecycle uint8

const (
	unmounted lifecycle = iota
	mounting
	mounted
)

// Signal is a lazily mounted, multicast, push-based source of values.
//
// A Signal is a reusable descriptor: subscribing after it completed, errored
// or lost all subscribers mounts it again from scratch. All subscribers
// present at the same time share a single mount and see only values emitted
// after they subscribed.
//
// Callbacks of a Signal graph are expected to run on its Scheduler's loop.
// The subscriber registry is locked, but per-mount combinator state relies on
// the loop to serialise access.
type Signal[T any] struct {
	sched loop.Scheduler
	mount MountFunc[T]

	mu      sync.Mutex
	subs    []*subscriber[T]
	state   lifecycle
	gen     uint64
	unmount func()
}

type subscriber[T any] struct {
	sub *Subscription
	obs Observer[T]
}

// Subscription is the handle returned by Subscribe.
type Subscription struct {
	closed  atomic.Bool
	release func()
}

// Unsubscribe detaches the subscriber. Calling it again is a no-op.
func (s *Subscription) Unsubscribe() {
	if s.closed.CompareAndSwap(false, true) {
		s.release()
	}
}

// Closed reports whether the subscription was unsubscribed or its Signal
// delivered a terminal event.
func (s *Subscription) Closed() bool {
	return s.closed.Load()
}

// New creates a Signal that runs mount on its first subscriber.
func New[T any](sched loop.Scheduler, mount MountFunc[T]) *Signal[T] {
	if sched == nil {
		panic(ErrNilScheduler)
	}
	if mount == nil {
		panic(ErrNilMount)
	}
	return &Signal[T]{sched: sched, mount: mount}
}

// Scheduler returns the scheduler the Signal and everything derived from it
// run on.
func (s *Signal[T]) Scheduler() loop.Scheduler {
	return s.sched
}

// Subscribe registers o and mounts the Signal if o is its first subscriber.
func (s *Signal[T]) Subscribe(o Observer[T]) *Subscription {
	entry := &subscriber[T]{obs: o}
	sub := &Subscription{}
	sub.release = func() { s.remove(entry) }
	entry.sub = sub

	s.mu.Lock()
	s.subs = append(s.subs, entry)
	first := s.state == unmounted
	var gen uint64
	if first {
		s.state = mounting
		s.gen++
		gen = s.gen
	}
	s.mu.Unlock()

	if first {
		s.activate(gen)
	}
	return sub
}

// SubscribeFunc is Subscribe with positional callbacks, any of which may be nil.
func (s *Signal[T]) SubscribeFunc(onValue func(T), onError func(error), onComplete func()) *Subscription {
	return s.Subscribe(Observer[T]{
		OnValue:    onValue,
		OnError:    onError,
		OnComplete: onComplete,
	})
}

// Subscribers is the number of active subscriptions.
func (s *Signal[T]) Subscribers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}

// Mounted reports whether the underlying source is currently wired up.
func (s *Signal[T]) Mounted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state != unmounted
}

func (s *Signal[T]) activate(gen uint64) {
	emit := &broadcaster[T]{signal: s, gen: gen}
	unmount := s.runMount(emit)

	s.mu.Lock()
	if s.gen != gen || s.state != mounting {
		// terminated or abandoned while mounting
		s.mu.Unlock()
		if unmount != nil {
			unmount()
		}
		return
	}
	s.state = mounted
	s.unmount = unmount
	s.mu.Unlock()
}

func (s *Signal[T]) runMount(emit *broadcaster[T]) (unmount func()) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		if isUsageError(r) {
			s.terminate(emit.gen)
			panic(r)
		}
		unmount = nil
		emit.Error(mountPanicError(r))
	}()
	return s.mount(emit)
}

func (s *Signal[T]) remove(entry *subscriber[T]) {
	s.mu.Lock()
	idx := slices.Index(s.subs, entry)
	if idx < 0 {
		s.mu.Unlock()
		return
	}
	s.subs = slices.Delete(s.subs, idx, idx+1)

	var unmount func()
	if len(s.subs) == 0 && s.state != unmounted {
		unmount = s.unmount
		s.unmount = nil
		s.state = unmounted
		s.gen++
	}
	s.mu.Unlock()

	if unmount != nil {
		unmount()
	}
}

// snapshot copies the registry for one broadcast pass. It fails when gen no
// longer names the live mount.
func (s *Signal[T]) snapshot(gen uint64) ([]*subscriber[T], bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.gen != gen || s.state == unmounted {
		return nil, false
	}
	return slices.Clone(s.subs), true
}

// terminate detaches every subscriber and hands back the unmount function.
// The ended mount is released before subscribers hear the terminal event so
// that resubscribing from OnComplete or OnError mounts from scratch.
func (s *Signal[T]) terminate(gen uint64) ([]*subscriber[T], func(), bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.gen != gen || s.state == unmounted {
		return nil, nil, false
	}
	subs := s.subs
	unmount := s.unmount
	s.subs = nil
	s.unmount = nil
	s.state = unmounted
	s.gen++
	for _, e := range subs {
		e.sub.closed.Store(true)
	}
	return subs, unmount, true
}

// broadcaster is the Emitter handed to mount. It is bound to one mount
// generation and goes inert once that mount ends.
type broadcaster[T any] struct {
	signal *Signal[T]
	gen    uint64
}

func (b *broadcaster[T]) Value(v T) {
	subs, ok := b.signal.snapshot(b.gen)
	if !ok {
		return
	}
	for _, e := range subs {
		if !e.sub.Closed() {
			e.obs.Value(v)
		}
	}
}

func (b *broadcaster[T]) Error(err error) {
	subs, unmount, ok := b.signal.terminate(b.gen)
	if !ok {
		return
	}
	if unmount != nil {
		unmount()
	}
	for _, e := range subs {
		e.obs.Error(err)
	}
}

func (b *broadcaster[T]) Complete() {
	subs, unmount, ok := b.signal.terminate(b.gen)
	if !ok {
		return
	}
	if unmount != nil {
		unmount()
	}
	for _, e := range subs {
		e.obs.Complete()
	}
}
