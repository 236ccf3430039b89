package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/delaneyj/pushparty/frp"
	"github.com/delaneyj/pushparty/loop"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
)

var (
	profile = flag.String("profile", "default.pgo", "write a CPU profile to this file, empty to disable")

	ww    = []int{1, 10, 100, 1_000}
	hh    = []int{1, 10, 100, 1_000}
	iters = 100
)

func main() {
	flag.Parse()

	if *profile != "" {
		f, err := os.Create(*profile)
		if err != nil {
			log.Fatal(err)
		}
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatal(err)
		}
		defer pprof.StopCPUProfile()
	}

	log.Printf("warming up")
	benchmarkPropagate(false)
	benchmarkPropagate(true)
	benchmarkFanIn(true)
}

func addOne(v int) int {
	return v + 1
}

func newRow(name string, tach *tachymeter.Tachymeter) table.Row {
	calc := tach.Calc()
	return table.Row{
		name,
		calc.Time.Avg,
		calc.Time.Min,
		calc.Time.P75,
		calc.Time.P99,
		calc.Time.Max,
	}
}

func newTable(title string) table.Writer {
	tbl := table.NewWriter()
	tbl.SetTitle(title)
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})
	return tbl
}

// benchmarkPropagate pushes one value through w chains of h Maps each.
func benchmarkPropagate(shouldRender bool) {
	tbl := newTable("Push propagation")

	for _, w := range ww {
		for _, h := range hh {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})

			sched := loop.NewVirtual(time.Now())
			src := frp.NewSubject[int](sched)

			received := 0
			subs := make([]*frp.Subscription, 0, w)
			for i := 0; i < w; i++ {
				last := src.Signal
				for j := 0; j < h; j++ {
					last = frp.Map(last, addOne)
				}
				subs = append(subs, last.SubscribeFunc(func(int) { received++ }, nil, nil))
			}

			for i := 0; i < iters; i++ {
				start := time.Now()
				src.Value(i)
				tach.AddTime(time.Since(start))
			}

			if received != w*iters {
				log.Panicf("propagate %d * %d: received %d values, want %d", w, h, received, w*iters)
			}
			for _, sub := range subs {
				sub.Unsubscribe()
			}

			tbl.AppendRow(newRow(fmt.Sprintf("propagate: %d * %d", w, h), tach))
		}
	}

	if shouldRender {
		tbl.Render()
	}
}

// benchmarkFanIn merges w sources and measures one value per source.
func benchmarkFanIn(shouldRender bool) {
	tbl := newTable("Merge fan-in")

	for _, w := range ww {
		tach := tachymeter.New(&tachymeter.Config{Size: iters})

		sched := loop.NewVirtual(time.Now())
		sources := make([]*frp.Subject[int], w)
		signals := make([]*frp.Signal[int], w)
		for i := range sources {
			sources[i] = frp.NewSubject[int](sched)
			signals[i] = sources[i].Signal
		}

		total := 0
		sub := frp.Scan(frp.Merge(signals...), func(acc, v int) int {
			return acc + v
		}, 0).SubscribeFunc(func(v int) { total = v }, nil, nil)

		for i := 0; i < iters; i++ {
			start := time.Now()
			for _, s := range sources {
				s.Value(1)
			}
			tach.AddTime(time.Since(start))
		}
		sub.Unsubscribe()

		if total != w*iters {
			log.Panicf("fan-in %d: total %d, want %d", w, total, w*iters)
		}
		tbl.AppendRow(newRow(fmt.Sprintf("merge: %d", w), tach))
	}

	if shouldRender {
		tbl.Render()
	}
}
