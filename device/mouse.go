package device

import (
	"github.com/delaneyj/pushparty/frp"
	"github.com/delaneyj/pushparty/loop"
)

type Point struct {
	X, Y int
}

// MouseState is the pointer position together with the pressed buttons
// bitmask.
type MouseState struct {
	Position Point
	Buttons  int
}

func position(e *Event) Point {
	return Point{X: e.X, Y: e.Y}
}

// MousePosition emits the pointer position on every move.
func MousePosition(sched loop.Scheduler, target frp.EventTarget[*Event], opts Options) *frp.Signal[Point] {
	return frp.Map(events(sched, target, MouseMove, opts), position)
}

// MouseButtons emits the pressed buttons bitmask on every press and release.
func MouseButtons(sched loop.Scheduler, target frp.EventTarget[*Event], opts Options) *frp.Signal[int] {
	return frp.Map(
		frp.Merge(
			events(sched, target, MouseDown, opts),
			events(sched, target, MouseUp, opts),
		),
		func(e *Event) int { return e.Buttons },
	)
}

// MouseStates emits the combined pointer state on every move, press and
// release.
func MouseStates(sched loop.Scheduler, target frp.EventTarget[*Event], opts Options) *frp.Signal[MouseState] {
	all := frp.Merge(
		events(sched, target, MouseMove, opts),
		events(sched, target, MouseDown, opts),
		events(sched, target, MouseUp, opts),
	)
	return frp.Scan(all, func(st MouseState, e *Event) MouseState {
		st.Position = position(e)
		st.Buttons = e.Buttons
		return st
	}, MouseState{})
}
