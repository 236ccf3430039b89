package loop_test

import (
	"testing"
	"time"

	"github.com/delaneyj/pushparty/loop"
	"github.com/stretchr/testify/assert"
)

var epoch = time.Unix(0, 0)

// should never run asap callbacks synchronously
func TestVirtualAsapIsDeferred(t *testing.T) {
	v := loop.NewVirtual(epoch)
	ran := false
	v.Asap(func() { ran = true })

	assert.False(t, ran)
	assert.Equal(t, 1, v.Pending())
	assert.Equal(t, 1, v.Flush())
	assert.True(t, ran)
	assert.Equal(t, 0, v.Pending())
}

// should run callbacks in due order, ties in scheduling order
func TestVirtualOrdering(t *testing.T) {
	v := loop.NewVirtual(epoch)
	var order []string
	v.AfterFunc(20*time.Millisecond, func() { order = append(order, "c") })
	v.AfterFunc(10*time.Millisecond, func() { order = append(order, "a") })
	v.AfterFunc(10*time.Millisecond, func() { order = append(order, "b") })
	v.Asap(func() {
		order = append(order, "first")
		v.Asap(func() { order = append(order, "nested") })
	})

	v.Advance(15 * time.Millisecond)
	assert.Equal(t, []string{"first", "nested", "a", "b"}, order)
	assert.Equal(t, epoch.Add(15*time.Millisecond), v.Now())

	v.Advance(5 * time.Millisecond)
	assert.Equal(t, []string{"first", "nested", "a", "b", "c"}, order)
}

// should expose the due time as the current time while a timer runs
func TestVirtualClockDuringCallback(t *testing.T) {
	v := loop.NewVirtual(epoch)
	var seen time.Time
	v.AfterFunc(time.Second, func() { seen = v.Now() })

	v.Advance(time.Minute)
	assert.Equal(t, epoch.Add(time.Second), seen)
	assert.Equal(t, epoch.Add(time.Minute), v.Now())
}

// should report whether Stop cancelled anything
func TestVirtualStop(t *testing.T) {
	v := loop.NewVirtual(epoch)
	ran := false
	timer := v.AfterFunc(time.Second, func() { ran = true })

	assert.True(t, timer.Stop())
	assert.False(t, timer.Stop())
	v.Advance(2 * time.Second)
	assert.False(t, ran)

	fired := v.AfterFunc(time.Second, func() {})
	v.Advance(time.Second)
	assert.False(t, fired.Stop())
}

// should stop draining at the limit
func TestVirtualDrainLimit(t *testing.T) {
	v := loop.NewVirtual(epoch)
	ticks := 0
	var tick func()
	tick = func() {
		ticks++
		v.AfterFunc(time.Second, tick)
	}
	v.AfterFunc(time.Second, tick)

	assert.Equal(t, 5, v.Drain(5))
	assert.Equal(t, 5, ticks)
	assert.Equal(t, epoch.Add(5*time.Second), v.Now())
	assert.Equal(t, 1, v.Pending())
}
