// Package device turns keyboard and mouse events into Signals.
//
// Every factory takes the scheduler the Signals run on, the EventTarget that
// dispatches the events and Options. Events must be dispatched on the
// scheduler's loop.
package device

import (
	mapset "github.com/deckarep/golang-set/v2"

	"github.com/delaneyj/pushparty/frp"
	"github.com/delaneyj/pushparty/loop"
)

const (
	KeyDown   = "keydown"
	KeyUp     = "keyup"
	MouseMove = "mousemove"
	MouseDown = "mousedown"
	MouseUp   = "mouseup"
)

// Options configures the device Signals.
type Options struct {
	// PreventDefault calls PreventDefault on every event the Signal sees.
	PreventDefault bool
}

func events(sched loop.Scheduler, target frp.EventTarget[*Event], typ string, opts Options) *frp.Signal[*Event] {
	s := frp.FromEvent(sched, typ, target, frp.EventOptions{})
	if opts.PreventDefault {
		s = s.Tap((*Event).PreventDefault)
	}
	return s
}

// Keys emits the key name of every keydown, including auto-repeats.
func Keys(sched loop.Scheduler, target frp.EventTarget[*Event], opts Options) *frp.Signal[string] {
	return frp.Map(events(sched, target, KeyDown, opts), func(e *Event) string {
		return e.Key
	})
}

type keyChange struct {
	key  string
	down bool
}

// KeyState emits the set of keys held down whenever it changes. Each emitted
// set is a snapshot the receiver may keep.
func KeyState(sched loop.Scheduler, target frp.EventTarget[*Event], opts Options) *frp.Signal[mapset.Set[string]] {
	changes := frp.Merge(
		frp.Map(events(sched, target, KeyDown, opts), func(e *Event) keyChange {
			return keyChange{key: e.Key, down: true}
		}),
		frp.Map(events(sched, target, KeyUp, opts), func(e *Event) keyChange {
			return keyChange{key: e.Key}
		}),
	)

	return frp.StateMachine(changes, mapset.NewThreadUnsafeSet[string](),
		func(pressed mapset.Set[string], c keyChange, emit frp.Emitter[mapset.Set[string]]) mapset.Set[string] {
			if pressed.Contains(c.key) == c.down {
				return pressed
			}
			next := pressed.Clone()
			if c.down {
				next.Add(c.key)
			} else {
				next.Remove(c.key)
			}
			emit.Value(next)
			return next
		})
}
