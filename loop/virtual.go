package loop

import (
	"container/heap"
	"sync"
	"time"
)

// Virtual is a Scheduler driven by simulated time. Nothing runs until the
// owner calls Flush, Advance or Drain, which makes time-based behaviour
// deterministic in tests and simulations.
type Virtual struct {
	mu    sync.Mutex
	now   time.Time
	seq   uint64
	queue timerQueue
}

// NewVirtual creates a virtual scheduler whose clock starts at start.
func NewVirtual(start time.Time) *Virtual {
	return &Virtual{now: start}
}

func (v *Virtual) Now() time.Time {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.now
}

func (v *Virtual) Asap(fn func()) {
	v.schedule(0, fn)
}

func (v *Virtual) AfterFunc(d time.Duration, fn func()) Timer {
	return v.schedule(d, fn)
}

func (v *Virtual) schedule(d time.Duration, fn func()) *virtualTimer {
	if d < 0 {
		d = 0
	}

	v.mu.Lock()
	defer v.mu.Unlock()

	v.seq++
	t := &virtualTimer{
		v:   v,
		due: v.now.Add(d),
		seq: v.seq,
		fn:  fn,
	}
	heap.Push(&v.queue, t)
	return t
}

// Pending is the number of callbacks waiting to run.
func (v *Virtual) Pending() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.queue)
}

// Flush runs every callback that is due at the current instant, including
// ones scheduled by the callbacks themselves.
func (v *Virtual) Flush() int {
	return v.Advance(0)
}

// Advance moves the clock forward by d, running callbacks in due order. The
// clock reads each callback's due time while it runs. Returns the number of
// callbacks executed.
func (v *Virtual) Advance(d time.Duration) int {
	v.mu.Lock()
	target := v.now.Add(d)
	v.mu.Unlock()

	ran := v.runUntil(func(next *virtualTimer) bool {
		return !next.due.After(target)
	}, -1)

	v.mu.Lock()
	if target.After(v.now) {
		v.now = target
	}
	v.mu.Unlock()
	return ran
}

// Drain runs callbacks, jumping the clock to each one's due time, until the
// queue is empty or limit callbacks have run. A limit below zero means no
// limit, which never returns while a periodic source is mounted.
func (v *Virtual) Drain(limit int) int {
	return v.runUntil(func(*virtualTimer) bool { return true }, limit)
}

func (v *Virtual) runUntil(ok func(next *virtualTimer) bool, limit int) int {
	ran := 0
	for limit < 0 || ran < limit {
		v.mu.Lock()
		if len(v.queue) == 0 || !ok(v.queue[0]) {
			v.mu.Unlock()
			break
		}
		t := heap.Pop(&v.queue).(*virtualTimer)
		if t.due.After(v.now) {
			v.now = t.due
		}
		v.mu.Unlock()

		t.fn()
		ran++
	}
	return ran
}

type virtualTimer struct {
	v     *Virtual
	due   time.Time
	seq   uint64
	fn    func()
	index int
}

func (t *virtualTimer) Stop() bool {
	t.v.mu.Lock()
	defer t.v.mu.Unlock()

	if t.index < 0 {
		return false
	}
	heap.Remove(&t.v.queue, t.index)
	return true
}

// timerQueue orders callbacks by due time, then by scheduling order.
type timerQueue []*virtualTimer

func (q timerQueue) Len() int { return len(q) }

func (q timerQueue) Less(i, j int) bool {
	if q[i].due.Equal(q[j].due) {
		return q[i].seq < q[j].seq
	}
	return q[i].due.Before(q[j].due)
}

func (q timerQueue) Swap(i, j int) {
	q[i], q[j] = q[j], q[i]
	q[i].index = i
	q[j].index = j
}

func (q *timerQueue) Push(x any) {
	t := x.(*virtualTimer)
	t.index = len(*q)
	*q = append(*q, t)
}

func (q *timerQueue) Pop() any {
	old := *q
	n := len(old)
	t := old[n-1]
	old[n-1] = nil
	t.index = -1
	*q = old[:n-1]
	return t
}
