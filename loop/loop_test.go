package loop_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/delaneyj/pushparty/loop"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runLoop(t *testing.T, l *loop.Loop) (stop func()) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- l.Run(ctx) }()
	return func() {
		cancel()
		assert.ErrorIs(t, <-done, context.Canceled)
	}
}

// should run queued callbacks in FIFO order on the loop goroutine
func TestLoopAsapOrder(t *testing.T) {
	l := loop.New()
	defer runLoop(t, l)()

	var (
		mu    sync.Mutex
		order []int
		wg    sync.WaitGroup
	)
	wg.Add(100)
	for i := 0; i < 100; i++ {
		l.Asap(func() {
			mu.Lock()
			order = append(order, i)
			mu.Unlock()
			wg.Done()
		})
	}
	wg.Wait()

	require.Len(t, order, 100)
	for i, v := range order {
		assert.Equal(t, i, v)
	}
}

// should fire timers and allow them to be stopped
func TestLoopAfterFunc(t *testing.T) {
	l := loop.New()
	defer runLoop(t, l)()

	fired := make(chan struct{})
	l.AfterFunc(5*time.Millisecond, func() { close(fired) })

	cancelled := l.AfterFunc(time.Hour, func() { t.Error("stopped timer fired") })
	assert.True(t, cancelled.Stop())
	assert.False(t, cancelled.Stop())

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("timer did not fire")
	}

	require.Eventually(t, func() bool {
		return l.Stats().PendingTimers == 0
	}, time.Second, time.Millisecond)
}

// should refuse a second concurrent Run
func TestLoopRunTwice(t *testing.T) {
	l := loop.New()
	started := make(chan struct{})
	l.Asap(func() { close(started) })
	defer runLoop(t, l)()
	<-started

	assert.ErrorIs(t, l.Run(context.Background()), loop.ErrRunning)
}

// should return nil from Run after Stop and refuse to run again
func TestLoopStop(t *testing.T) {
	l := loop.New(loop.WithQueueCapacity(1))
	l.Asap(l.Stop)
	assert.NoError(t, l.Run(context.Background()))
	assert.ErrorIs(t, l.Run(context.Background()), loop.ErrStopped)
}

// should hand panics to the configured handler and keep running
func TestLoopPanicHandler(t *testing.T) {
	recovered := make(chan any, 1)
	l := loop.New(loop.WithPanicHandler(func(r any) { recovered <- r }))
	defer runLoop(t, l)()

	after := make(chan struct{})
	l.Asap(func() { panic("boom") })
	l.Asap(func() { close(after) })

	assert.Equal(t, "boom", <-recovered)
	<-after
}

// should record executed callbacks in the registry
func TestLoopMetrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	l := loop.New(loop.WithMetrics(reg))
	defer runLoop(t, l)()

	var wg sync.WaitGroup
	wg.Add(3)
	for i := 0; i < 3; i++ {
		l.Asap(wg.Done)
	}
	wg.Wait()

	require.Eventually(t, func() bool {
		return l.Stats().Executed == 3
	}, time.Second, time.Millisecond)

	families, err := reg.Gather()
	require.NoError(t, err)

	counters := map[string]float64{}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			if c := m.GetCounter(); c != nil {
				counters[mf.GetName()] = c.GetValue()
			}
		}
	}
	assert.Equal(t, 3.0, counters["pushparty_loop_tasks_total"])
}

// should let several loops share a registry under distinct labels
func TestLoopMetricsLabels(t *testing.T) {
	reg := prometheus.NewRegistry()
	a := loop.New(loop.WithMetrics(reg, loop.WithNamespace("app"), loop.WithConstLabels(prometheus.Labels{"loop": "a"})))
	b := loop.New(loop.WithMetrics(reg, loop.WithNamespace("app"), loop.WithConstLabels(prometheus.Labels{"loop": "b"})))

	a.AfterFunc(time.Hour, func() {}).Stop()
	pending := b.AfterFunc(time.Hour, func() {})
	defer pending.Stop()

	families, err := reg.Gather()
	require.NoError(t, err)

	scheduled := map[string]float64{}
	for _, mf := range families {
		if mf.GetName() != "app_loop_timers_scheduled_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			for _, lp := range m.GetLabel() {
				scheduled[lp.GetValue()] = m.GetCounter().GetValue()
			}
		}
	}
	assert.Equal(t, map[string]float64{"a": 1, "b": 1}, scheduled)
}
