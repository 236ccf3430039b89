package device

import (
	"slices"
	"sync"
)

// Event is an input event delivered by a Target.
type Event struct {
	Type string

	// Keyboard
	Key string

	// Mouse
	X, Y    int
	Button  int
	Buttons int

	defaultPrevented bool
}

// PreventDefault marks the event as handled so the dispatcher skips the
// default action.
func (e *Event) PreventDefault() {
	e.defaultPrevented = true
}

func (e *Event) DefaultPrevented() bool {
	return e.defaultPrevented
}

// Target is an in-memory event dispatcher. Capture listeners run before
// bubble listeners; within each phase listeners run in registration order.
type Target struct {
	mu        sync.Mutex
	listeners map[string][]*listener
}

type listener struct {
	fn      func(*Event)
	capture bool
}

func NewTarget() *Target {
	return &Target{listeners: make(map[string][]*listener)}
}

// AddEventListener registers fn for events of type typ.
func (t *Target) AddEventListener(typ string, fn func(*Event), useCapture bool) (remove func()) {
	l := &listener{fn: fn, capture: useCapture}

	t.mu.Lock()
	t.listeners[typ] = append(t.listeners[typ], l)
	t.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { t.removeListener(typ, l) })
	}
}

func (t *Target) removeListener(typ string, l *listener) {
	t.mu.Lock()
	defer t.mu.Unlock()

	ls := t.listeners[typ]
	if idx := slices.Index(ls, l); idx >= 0 {
		ls = slices.Delete(ls, idx, idx+1)
	}
	if len(ls) == 0 {
		delete(t.listeners, typ)
	} else {
		t.listeners[typ] = ls
	}
}

// Listeners is the number of listeners registered for typ.
func (t *Target) Listeners(typ string) int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.listeners[typ])
}

// Dispatch delivers ev synchronously and reports whether the default action
// should run, i.e. no listener called PreventDefault.
func (t *Target) Dispatch(ev *Event) bool {
	t.mu.Lock()
	ls := slices.Clone(t.listeners[ev.Type])
	t.mu.Unlock()

	for _, phase := range []bool{true, false} {
		for _, l := range ls {
			if l.capture == phase {
				l.fn(ev)
			}
		}
	}
	return !ev.defaultPrevented
}
