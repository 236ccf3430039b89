package loop

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"
)

// Loop is a real-time event loop. Callbacks are queued from any goroutine and
// executed one at a time on the goroutine that calls Run.
type Loop struct {
	mu       sync.Mutex
	queue    []*task
	timers   int
	executed uint64

	wake     chan struct{}
	stop     chan struct{}
	stopOnce sync.Once
	running  atomic.Bool

	logger       *slog.Logger
	metrics      *metrics
	panicHandler PanicHandler
	queueCap     int
}

// Stats is a point-in-time view of the loop.
type Stats struct {
	Queued        int
	PendingTimers int
	Executed      uint64
}

type task struct {
	fn    func()
	state atomic.Int32
}

func newTask(fn func(), state taskState) *task {
	t := &task{fn: fn}
	t.state.Store(int32(state))
	return t
}

func (t *task) transition(from, to taskState) bool {
	return t.state.CompareAndSwap(int32(from), int32(to))
}

// New creates a Loop. It does nothing until Run is called.
func New(opts ...Option) *Loop {
	l := &Loop{
		wake:     make(chan struct{}, 1),
		stop:     make(chan struct{}),
		logger:   discardLogger(),
		queueCap: defaultQueueCapacity,
	}
	for _, opt := range opts {
		opt(l)
	}
	l.queue = make([]*task, 0, l.queueCap)
	return l
}

func (l *Loop) Now() time.Time {
	return time.Now()
}

func (l *Loop) Asap(fn func()) {
	l.enqueue(newTask(fn, taskQueued))
}

func (l *Loop) AfterFunc(d time.Duration, fn func()) Timer {
	lt := &loopTimer{loop: l, task: newTask(fn, taskPending)}

	l.mu.Lock()
	l.timers++
	l.mu.Unlock()
	l.metrics.timerScheduled()

	lt.timer = time.AfterFunc(d, func() {
		if lt.task.transition(taskPending, taskQueued) {
			l.timerDone()
			l.enqueue(lt.task)
		}
	})
	return lt
}

func (l *Loop) enqueue(t *task) {
	l.mu.Lock()
	l.queue = append(l.queue, t)
	depth := len(l.queue)
	l.mu.Unlock()
	l.metrics.setQueueDepth(depth)

	select {
	case l.wake <- struct{}{}:
	default:
	}
}

func (l *Loop) timerDone() {
	l.mu.Lock()
	l.timers--
	l.mu.Unlock()
}

// Run executes callbacks until ctx is cancelled or Stop is called. A loop
// that was stopped returns ErrStopped.
func (l *Loop) Run(ctx context.Context) error {
	if !l.running.CompareAndSwap(false, true) {
		return ErrRunning
	}
	defer l.running.Store(false)

	select {
	case <-l.stop:
		return ErrStopped
	default:
	}

	l.logger.Debug("loop started")
	defer l.logger.Debug("loop finished")

	for {
		select {
		case <-l.stop:
			return nil
		default:
		}

		for l.runBatch() {
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-l.stop:
			return nil
		case <-l.wake:
		}
	}
}

// Stop makes Run return after the callback currently executing. Safe to call
// multiple times; a stopped loop cannot be restarted.
func (l *Loop) Stop() {
	l.stopOnce.Do(func() {
		close(l.stop)
	})
}

// Stats returns queue and timer counters.
func (l *Loop) Stats() Stats {
	l.mu.Lock()
	defer l.mu.Unlock()

	return Stats{
		Queued:        len(l.queue),
		PendingTimers: l.timers,
		Executed:      l.executed,
	}
}

// runBatch executes the tasks queued so far. Tasks queued while the batch runs
// are left for the next batch so FIFO order holds across turns.
func (l *Loop) runBatch() bool {
	l.mu.Lock()
	batch := l.queue
	l.queue = make([]*task, 0, l.queueCap)
	l.mu.Unlock()
	l.metrics.setQueueDepth(0)

	if len(batch) == 0 {
		return false
	}
	for _, t := range batch {
		select {
		case <-l.stop:
			return false
		default:
		}
		l.execute(t)
	}
	return true
}

func (l *Loop) execute(t *task) {
	if !t.transition(taskQueued, taskDone) {
		return
	}

	start := time.Now()
	defer func() {
		l.metrics.taskRan(time.Since(start))
		l.mu.Lock()
		l.executed++
		l.mu.Unlock()

		if l.panicHandler == nil {
			return
		}
		if r := recover(); r != nil {
			l.logger.Error("callback panicked", slog.Any("recovered", r))
			l.panicHandler(r)
		}
	}()
	t.fn()
}

type loopTimer struct {
	loop  *Loop
	task  *task
	timer *time.Timer
}

func (t *loopTimer) Stop() bool {
	if t.task.transition(taskPending, taskCancelled) {
		t.timer.Stop()
		t.loop.timerDone()
		t.loop.metrics.timerCancelled()
		return true
	}
	if t.task.transition(taskQueued, taskCancelled) {
		t.loop.metrics.timerCancelled()
		return true
	}
	return false
}
