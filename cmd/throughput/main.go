package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"math"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v3"

	"github.com/delaneyj/pushparty/frp"
	"github.com/delaneyj/pushparty/loop"
)

const (
	schedulerKey = "scheduler"
	repeatsKey   = "repeats"
	onlyKey      = "only"
	debugKey     = "debug"
)

type graphConfig struct {
	name         string  // friendly name for the test, should be unique
	width        int     // number of sources and of nodes per layer
	totalLayers  int     // depth of the graph including the source layer
	nSources     int     // inputs per node
	readFraction float64 // fraction of leaves that are subscribed
	iterations   int     // source writes per run
}

var configs = []graphConfig{
	{name: "simple component", width: 10, totalLayers: 5, nSources: 2, readFraction: 0.2, iterations: 60_000},
	{name: "wide", width: 1000, totalLayers: 4, nSources: 3, readFraction: 1, iterations: 3_000},
	{name: "deep", width: 5, totalLayers: 500, nSources: 1, readFraction: 1, iterations: 2_000},
	{name: "narrow dense", width: 6, totalLayers: 6, nSources: 4, readFraction: 1, iterations: 2_000},
}

func main() {
	cmd := &cli.Command{
		Name:  "throughput",
		Usage: "Measure value propagation through layered ZipLatest graphs",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  schedulerKey,
				Usage: "virtual or loop",
				Value: "virtual",
			},
			&cli.UintFlag{
				Name:  repeatsKey,
				Usage: "Timed runs per config; the best one is reported",
				Value: 5,
			},
			&cli.StringFlag{
				Name:  onlyKey,
				Usage: "Run only configs whose name contains this",
			},
			&cli.BoolFlag{
				Name:  debugKey,
				Usage: "Log loop lifecycle to stderr",
			},
		},
		Action: run,
	}
	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	log.Print("Starting pushparty throughput, please wait...")
	defer log.Print("Finished pushparty throughput")

	level := slog.LevelInfo
	if cmd.Bool(debugKey) {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	ex, err := newExecutor(ctx, cmd.String(schedulerKey), logger)
	if err != nil {
		return err
	}
	defer ex.stop()
	exec := ex.exec

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{
		"scheduler", "size", "nSources", "read%",
		"nTimes", "test", "time", "emissions", "updateRate",
	})

	repeats := int(cmd.Uint(repeatsKey))
	for _, cfg := range configs {
		if only := cmd.String(onlyKey); only != "" && !strings.Contains(cfg.name, only) {
			continue
		}
		log.Printf("Running '%s' config", cfg.name)

		var g *graph
		exec(func() { g = buildGraph(ex.sched, cfg) })

		// run once to warm up
		exec(func() { g.run(cfg.iterations) })
		if err := g.verify(); err != nil {
			return fmt.Errorf("%s: %w", cfg.name, err)
		}

		best := time.Duration(math.MaxInt64)
		var bestCount int64
		for i := 0; i < repeats; i++ {
			log.Printf("Running '%s' config, iteration %d/%d %d%%", cfg.name, i+1, repeats, (i+1)*100/repeats)
			g.counter = 0
			start := time.Now()
			exec(func() { g.run(cfg.iterations) })
			if d := time.Since(start); d < best {
				best, bestCount = d, g.counter
			}
		}
		if err := g.verify(); err != nil {
			return fmt.Errorf("%s: %w", cfg.name, err)
		}
		exec(g.close)

		updateRate := float64(bestCount) / (float64(best) / float64(time.Millisecond))
		table.Append([]string{
			cmd.String(schedulerKey),
			fmt.Sprintf("%dx%d", cfg.width, cfg.totalLayers),
			fmt.Sprint(cfg.nSources),
			fmt.Sprint(cfg.readFraction),
			humanize.Comma(int64(cfg.iterations)),
			cfg.name,
			fmt.Sprint(best),
			humanize.Comma(bestCount),
			humanize.Comma(int64(updateRate)),
		})
	}
	table.Render()

	if ex.reg != nil {
		return reportLoop(ex.reg)
	}
	return nil
}

// executor runs graph work on one scheduler's loop and waits for it.
type executor struct {
	sched loop.Scheduler
	exec  func(fn func())
	reg   *prometheus.Registry
	stop  func()
}

func newExecutor(ctx context.Context, kind string, logger *slog.Logger) (*executor, error) {
	switch kind {
	case "virtual":
		v := loop.NewVirtual(time.Now())
		return &executor{
			sched: v,
			exec: func(fn func()) {
				v.Asap(fn)
				v.Flush()
			},
			stop: func() {},
		}, nil

	case "loop":
		reg := prometheus.NewRegistry()
		l := loop.New(loop.WithMetrics(reg), loop.WithLogger(logger))
		ctx, cancel := context.WithCancel(ctx)
		done := make(chan struct{})
		go func() {
			defer close(done)
			if err := l.Run(ctx); err != nil && ctx.Err() == nil {
				log.Printf("loop stopped: %v", err)
			}
		}()
		return &executor{
			sched: l,
			exec: func(fn func()) {
				finished := make(chan struct{})
				l.Asap(func() {
					defer close(finished)
					fn()
				})
				<-finished
			},
			reg: reg,
			stop: func() {
				cancel()
				<-done
			},
		}, nil

	default:
		return nil, fmt.Errorf("unknown scheduler %q", kind)
	}
}

type graph struct {
	cfg     graphConfig
	sources []*frp.Subject[int]
	subs    []*frp.Subscription

	readLeaves []int
	leaves     []int
	values     []int
	counter    int64
}

func buildGraph(sched loop.Scheduler, cfg graphConfig) *graph {
	g := &graph{
		cfg:     cfg,
		sources: make([]*frp.Subject[int], cfg.width),
		leaves:  make([]int, cfg.width),
		values:  make([]int, cfg.width),
	}

	prev := make([]*frp.Signal[int], cfg.width)
	for i := range g.sources {
		g.sources[i] = frp.NewSubject[int](sched)
		prev[i] = g.sources[i].Signal
	}

	sum := func(vs []int) int {
		g.counter++
		total := 0
		for _, v := range vs {
			total += v
		}
		return total
	}

	for l := 1; l < cfg.totalLayers; l++ {
		row := make([]*frp.Signal[int], cfg.width)
		for i := range row {
			inputs := make([]*frp.Signal[int], cfg.nSources)
			for k := range inputs {
				inputs[k] = prev[(i+k)%cfg.width]
			}
			row[i] = frp.ZipLatestWith(sum, inputs...)
		}
		prev = row
	}

	random := rand.New(rand.NewSource(0))
	skip := int(math.Round(float64(cfg.width) * (1 - cfg.readFraction)))
	g.readLeaves = removeElems(random.Perm(cfg.width), skip)
	for _, i := range g.readLeaves {
		g.subs = append(g.subs, prev[i].SubscribeFunc(func(v int) {
			g.leaves[i] = v
		}, nil, nil))
	}

	// every node needs a value on each input before it emits
	for i, src := range g.sources {
		g.values[i] = i
		src.Value(i)
	}
	return g
}

func removeElems(src []int, rmCount int) []int {
	if rmCount > len(src) {
		rmCount = len(src)
	}
	return src[:len(src)-rmCount]
}

func (g *graph) run(iterations int) {
	for i := 0; i < iterations; i++ {
		dex := i % len(g.sources)
		g.values[dex] = i + dex
		g.sources[dex].Value(i + dex)
	}
}

// verify recomputes the read leaves directly from the source values.
func (g *graph) verify() error {
	row := append([]int(nil), g.values...)
	for l := 1; l < g.cfg.totalLayers; l++ {
		next := make([]int, len(row))
		for i := range next {
			for k := 0; k < g.cfg.nSources; k++ {
				next[i] += row[(i+k)%len(row)]
			}
		}
		row = next
	}
	for _, i := range g.readLeaves {
		if g.leaves[i] != row[i] {
			return fmt.Errorf("leaf %d is %d, want %d", i, g.leaves[i], row[i])
		}
	}
	return nil
}

func (g *graph) close() {
	for _, sub := range g.subs {
		sub.Unsubscribe()
	}
}

func reportLoop(reg *prometheus.Registry) error {
	families, err := reg.Gather()
	if err != nil {
		return err
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			if c := m.GetCounter(); c != nil {
				log.Printf("%s: %s", mf.GetName(), humanize.Comma(int64(c.GetValue())))
			}
		}
	}
	return nil
}
