package frp_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/delaneyj/pushparty/frp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// should emit nothing until the loop turns
func TestOfIsAsynchronous(t *testing.T) {
	v := newVirtual()
	r, _ := record(frp.Of(v, 1, 2, 3))

	assert.Empty(t, r.values)
	v.Flush()
	assert.Equal(t, []int{1, 2, 3}, r.values)
	assert.Equal(t, 1, r.completes)
}

// should stop emitting once unsubscribed before the loop turns
func TestOfCancelled(t *testing.T) {
	v := newVirtual()
	r, sub := record(frp.Of(v, 1, 2, 3))
	sub.Unsubscribe()
	v.Flush()

	assert.Empty(t, r.values)
	assert.Equal(t, 0, r.completes)
}

// should copy the slice given to FromSlice
func TestFromSliceCopies(t *testing.T) {
	v := newVirtual()
	values := []string{"a", "b"}
	s := frp.FromSlice(v, values)
	values[0] = "z"

	r, _ := record(s)
	v.Flush()
	assert.Equal(t, []string{"a", "b"}, r.values)
}

// should terminate empty and throwing signals on the next turn
func TestEmptyNeverThrow(t *testing.T) {
	v := newVirtual()
	boom := errors.New("boom")

	empty, _ := record(frp.Empty[int](v))
	never, neverSub := record(frp.Never[int](v))
	thrown, _ := record(frp.Throw[int](v, boom))

	assert.Equal(t, 0, empty.completes)
	assert.Empty(t, thrown.errs)

	v.Flush()
	assert.Equal(t, 1, empty.completes)
	assert.Equal(t, 0, never.completes)
	assert.False(t, neverSub.Closed())
	require.Len(t, thrown.errs, 1)
	assert.ErrorIs(t, thrown.errs[0], boom)
}

// should emit the first callback result and ignore later ones
func TestFromCallback(t *testing.T) {
	v := newVirtual()
	boom := errors.New("boom")

	ok, _ := record(frp.FromCallback(v, func(done frp.Callback[int]) {
		done(5, nil)
		done(6, nil)
	}))
	failed, _ := record(frp.FromCallback(v, func(done frp.Callback[int]) {
		done(0, boom)
	}))

	assert.Empty(t, ok.values)
	v.Flush()

	assert.Equal(t, []int{5}, ok.values)
	assert.Equal(t, 1, ok.completes)
	require.Len(t, failed.errs, 1)
	assert.ErrorIs(t, failed.errs[0], boom)
	assert.Empty(t, failed.values)
}

// should deliver a future's result on the loop
func TestFromFuture(t *testing.T) {
	v := newVirtual()
	r, _ := record(frp.FromFuture(v, func(context.Context) (int, error) {
		return 7, nil
	}))

	require.Eventually(t, func() bool {
		return v.Pending() > 0
	}, time.Second, time.Millisecond)
	v.Flush()

	assert.Equal(t, []int{7}, r.values)
	assert.Equal(t, 1, r.completes)
}

// should cancel the future's context on unmount
func TestFromFutureCancel(t *testing.T) {
	v := newVirtual()
	cancelled := make(chan struct{})
	r, sub := record(frp.FromFuture(v, func(ctx context.Context) (int, error) {
		<-ctx.Done()
		close(cancelled)
		return 0, ctx.Err()
	}))
	sub.Unsubscribe()

	select {
	case <-cancelled:
	case <-time.After(time.Second):
		t.Fatal("context not cancelled")
	}
	require.Eventually(t, func() bool {
		return v.Pending() > 0
	}, time.Second, time.Millisecond)
	v.Flush()
	assert.Empty(t, r.errs)
}

// should emit channel values in order and complete when it closes
func TestFromChannel(t *testing.T) {
	v := newVirtual()
	ch := make(chan int, 3)
	ch <- 1
	ch <- 2
	ch <- 3
	close(ch)

	r, _ := record(frp.FromChannel(v, ch))
	require.Eventually(t, func() bool {
		v.Flush()
		return r.completes == 1
	}, time.Second, time.Millisecond)
	assert.Equal(t, []int{1, 2, 3}, r.values)
}

type listenerTarget struct {
	listeners map[string][]func(string)
	captures  int
}

func (lt *listenerTarget) AddEventListener(typ string, fn func(string), useCapture bool) func() {
	if useCapture {
		lt.captures++
	}
	lt.listeners[typ] = append(lt.listeners[typ], fn)
	return func() { delete(lt.listeners, typ) }
}

func (lt *listenerTarget) dispatch(typ, ev string) {
	for _, fn := range lt.listeners[typ] {
		fn(ev)
	}
}

// should register one listener per mount and remove it on unmount
func TestFromEvent(t *testing.T) {
	v := newVirtual()
	target := &listenerTarget{listeners: map[string][]func(string){}}
	s := frp.FromEvent[string](v, "click", target, frp.EventOptions{UseCapture: true})

	assert.Empty(t, target.listeners)
	r1, sub1 := record(s)
	r2, sub2 := record(s)
	assert.Len(t, target.listeners["click"], 1)
	assert.Equal(t, 1, target.captures)

	target.dispatch("click", "a")
	target.dispatch("other", "b")
	sub1.Unsubscribe()
	target.dispatch("click", "c")
	sub2.Unsubscribe()

	assert.Equal(t, []string{"a"}, r1.values)
	assert.Equal(t, []string{"a", "c"}, r2.values)
	assert.Empty(t, target.listeners)

	assert.PanicsWithError(t, frp.ErrNilTarget.Error(), func() {
		frp.FromEvent[string](v, "click", nil, frp.EventOptions{})
	})
}

// should count up from zero once per interval
func TestPeriodic(t *testing.T) {
	v := newVirtual()
	r, sub := record(frp.Periodic(v, time.Second))

	v.Advance(999 * time.Millisecond)
	assert.Empty(t, r.values)
	v.Advance(2*time.Second + time.Millisecond)
	assert.Equal(t, []int{0, 1, 2}, r.values)

	sub.Unsubscribe()
	assert.Equal(t, 0, v.Pending())

	r2, _ := record(frp.Periodic(v, time.Second).Take(2))
	v.Advance(5 * time.Second)
	assert.Equal(t, []int{0, 1}, r2.values)
	assert.Equal(t, 1, r2.completes)
	assert.Equal(t, 0, v.Pending())

	assert.Panics(t, func() { frp.Periodic(v, 0) })
}
