package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/delaneyj/pulseparty/pulse"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
)

type benchmarkTestConfig struct {
	name       string // friendly name for the test, should be unique
	strategy   pulse.ReentrantStrategy
	chainDepth int   // how many re-entrant sets each trigger cascades into
	listeners  int   // passive listeners observing every transition
	iterations int64 // number of test iterations
}

func main() {
	log.Print("Starting re-entrancy benchmark, please wait...")
	defer log.Print("Finished re-entrancy benchmark")

	cfgs := []benchmarkTestConfig{
		{name: "shallow queue", strategy: pulse.ReentrantQueue, chainDepth: 4, listeners: 4, iterations: 200_000},
		{name: "shallow stack", strategy: pulse.ReentrantStack, chainDepth: 4, listeners: 4, iterations: 200_000},
		{name: "deep queue", strategy: pulse.ReentrantQueue, chainDepth: 64, listeners: 4, iterations: 20_000},
		{name: "deep stack", strategy: pulse.ReentrantStack, chainDepth: 64, listeners: 4, iterations: 20_000},
		{name: "wide queue", strategy: pulse.ReentrantQueue, chainDepth: 8, listeners: 128, iterations: 20_000},
		{name: "wide stack", strategy: pulse.ReentrantStack, chainDepth: 8, listeners: 128, iterations: 20_000},
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{
		"test", "strategy", "depth", "listeners", "nTimes", "time", "transitionRate",
	})

	testRepeats := 5
	for _, cfg := range cfgs {
		log.Printf("Running '%s' config", cfg.name)

		best := time.Hour
		var transitions int64
		for i := 0; i < testRepeats; i++ {
			count, duration := runOnce(cfg)
			if duration < best {
				best = duration
				transitions = count
			}
		}

		strategy := "queue"
		if cfg.strategy == pulse.ReentrantStack {
			strategy = "stack"
		}
		rate := float64(transitions) / (float64(best) / float64(time.Millisecond))
		table.Append([]string{
			cfg.name,
			strategy,
			fmt.Sprint(cfg.chainDepth),
			fmt.Sprint(cfg.listeners),
			humanize.Comma(cfg.iterations),
			fmt.Sprint(best),
			humanize.Comma(int64(rate)),
		})
	}
	table.Render()
}

// runOnce drives one holder through iterations re-entrant cascades, each
// chainDepth transitions long, and reports observed transitions and elapsed
// time.
func runOnce(cfg benchmarkTestConfig) (transitions int64, duration time.Duration) {
	p := pulse.NewTinyProperty(0, pulse.WithReentrantStrategy[int](cfg.strategy))

	limit := 0
	chain := pulse.ChangeListener[int](func(tr pulse.Transition[int]) {
		if tr.New < limit {
			p.Set(tr.New + 1)
		}
	})
	p.LazyLink(&chain)

	for i := 0; i < cfg.listeners; i++ {
		l := pulse.ChangeListener[int](func(pulse.Transition[int]) {
			transitions++
		})
		p.LazyLink(&l)
	}

	start := time.Now()
	for i := int64(0); i < cfg.iterations; i++ {
		base := p.Get()
		limit = base + cfg.chainDepth
		p.Set(base + 1)
	}
	return transitions, time.Since(start)
}
