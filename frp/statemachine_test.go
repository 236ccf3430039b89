package frp_test

import (
	"strings"
	"testing"

	"github.com/delaneyj/pushparty/frp"
	"github.com/stretchr/testify/assert"
)

func ints(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i + 1
	}
	return out
}

// should honour the take and drop boundaries
func TestTakeDrop(t *testing.T) {
	tests := []struct {
		name string
		op   func(*frp.Signal[int]) *frp.Signal[int]
		want []int
	}{
		{"take0", func(s *frp.Signal[int]) *frp.Signal[int] { return s.Take(0) }, nil},
		{"take3", func(s *frp.Signal[int]) *frp.Signal[int] { return s.Take(3) }, []int{1, 2, 3}},
		{"take5", func(s *frp.Signal[int]) *frp.Signal[int] { return s.Take(5) }, []int{1, 2, 3, 4, 5}},
		{"take9", func(s *frp.Signal[int]) *frp.Signal[int] { return s.Take(9) }, []int{1, 2, 3, 4, 5}},
		{"drop0", func(s *frp.Signal[int]) *frp.Signal[int] { return s.Drop(0) }, []int{1, 2, 3, 4, 5}},
		{"drop2", func(s *frp.Signal[int]) *frp.Signal[int] { return s.Drop(2) }, []int{3, 4, 5}},
		{"drop5", func(s *frp.Signal[int]) *frp.Signal[int] { return s.Drop(5) }, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := newVirtual()
			r, _ := record(tt.op(frp.FromSlice(v, ints(5))))
			v.Flush()
			assert.Equal(t, tt.want, r.values)
			assert.Equal(t, 1, r.completes)
		})
	}
}

// should complete take early and release the source
func TestTakeUnmountsSource(t *testing.T) {
	v := newVirtual()
	src := newSource[int](v)

	r, sub := record(src.signal.Take(2))
	src.value(1, 2, 3)

	assert.Equal(t, []int{1, 2}, r.values)
	assert.Equal(t, 1, r.completes)
	assert.True(t, sub.Closed())
	assert.Equal(t, 1, src.unmounts)
}

// should stop or start on the first value failing the predicate
func TestTakeWhileDropWhile(t *testing.T) {
	v := newVirtual()
	below3 := func(n int) bool { return n < 3 }
	s := frp.Of(v, 1, 2, 3, 1, 2)

	taken, _ := record(s.TakeWhile(below3))
	dropped, _ := record(s.DropWhile(below3))
	v.Flush()

	assert.Equal(t, []int{1, 2}, taken.values)
	assert.Equal(t, 1, taken.completes)
	assert.Equal(t, []int{3, 1, 2}, dropped.values)
}

// should walk the value list once per parent value
func TestCycleSequential(t *testing.T) {
	v := newVirtual()
	ticks := frp.FromSlice(v, ints(5))

	cycled, _ := record(frp.Cycle(ticks, "a", "b"))
	seq, _ := record(frp.Sequential(ticks, "x", "y", "z"))
	empty, _ := record(frp.Sequential[int, string](ticks))
	v.Flush()

	assert.Equal(t, []string{"a", "b", "a", "b", "a"}, cycled.values)
	assert.Equal(t, []string{"x", "y", "z"}, seq.values)
	assert.Equal(t, 1, seq.completes)
	assert.Empty(t, empty.values)
	assert.Equal(t, 1, empty.completes)
}

// should drop consecutive duplicates only
func TestDedupe(t *testing.T) {
	v := newVirtual()
	r, _ := record(frp.Dedupe(frp.Of(v, 1, 1, 2, 2, 2, 1, 3, 3)))
	folded, _ := record(frp.Of(v, "a", "A", "b", "B", "a").DedupeWith(strings.EqualFold))
	v.Flush()

	assert.Equal(t, []int{1, 2, 1, 3}, r.values)
	assert.Equal(t, []string{"a", "b", "a"}, folded.values)
}

// should restart from the initial state on every mount
func TestStateMachineRestarts(t *testing.T) {
	v := newVirtual()
	counted := frp.StateMachine(frp.Of(v, "a", "b"), 0, func(n int, s string, emit frp.Emitter[string]) int {
		n++
		emit.Value(strings.Repeat(s, n))
		return n
	})

	first, _ := record(counted)
	v.Flush()
	second, _ := record(counted)
	v.Flush()

	assert.Equal(t, []string{"a", "bb"}, first.values)
	assert.Equal(t, []string{"a", "bb"}, second.values)
}

// should map filter tap and accumulate
func TestTransforms(t *testing.T) {
	v := newVirtual()
	s := frp.FromSlice(v, ints(5))

	var tapped []int
	mapped, _ := record(frp.Map(s, func(n int) string { return strings.Repeat("*", n) }))
	even, _ := record(s.Filter(func(n int) bool { return n%2 == 0 }).Tap(func(n int) { tapped = append(tapped, n) }))
	sums, _ := record(frp.Scan(s, func(acc, n int) int { return acc + n }, 100))
	total, _ := record(frp.Fold(s, func(acc, n int) int { return acc + n }, 0))
	constant, _ := record(frp.MapTo(s, true))
	v.Flush()

	assert.Equal(t, []string{"*", "**", "***", "****", "*****"}, mapped.values)
	assert.Equal(t, []int{2, 4}, even.values)
	assert.Equal(t, []int{2, 4}, tapped)
	assert.Equal(t, []int{101, 103, 106, 110, 115}, sums.values)
	assert.Equal(t, []int{15}, total.values)
	assert.Equal(t, 1, total.completes)
	assert.Equal(t, []bool{true, true, true, true, true}, constant.values)
}

// should emit start values before the source
func TestStartWith(t *testing.T) {
	v := newVirtual()
	src := newSource[int](v)

	r, _ := record(src.signal.StartWith(-1, 0))
	assert.Equal(t, 0, src.mounts)
	v.Flush()
	assert.Equal(t, 1, src.mounts)
	src.value(1)
	src.complete()

	assert.Equal(t, []int{-1, 0, 1}, r.values)
	assert.Equal(t, 1, r.completes)
}
