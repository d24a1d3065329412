package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"github.com/delaneyj/pulseparty/pulse"
	"github.com/jamiealquiza/tachymeter"
	"github.com/jedib0t/go-pretty/v6/table"
)

var (
	fanouts = []int{1, 10, 100, 1_000}
	depths  = []int{1, 10, 100}
	iters   = 100
)

func main() {
	flag.Parse()

	f, err := os.Create("default.pgo")
	if err != nil {
		log.Fatal(err)
	}
	pprof.StartCPUProfile(f)
	defer pprof.StopCPUProfile()

	log.Printf("warming up")

	benchmarkEmitter(true)
	benchmarkPropertyFanout(true)
	benchmarkDerivedChains(true)
}

func benchmarkEmitter(shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("Emitter dispatch")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, n := range fanouts {
		tach := tachymeter.New(&tachymeter.Config{Size: iters})

		em := pulse.NewEmitter[int]()
		sink := 0
		for i := 0; i < n; i++ {
			l := pulse.Listener[int](func(v int) { sink += v })
			em.AddListener(&l)
		}

		for i := 0; i < iters; i++ {
			start := time.Now()
			em.Emit(i)
			tach.AddTime(time.Since(start))
		}
		_ = sink

		calc := tach.Calc()
		tbl.AppendRows([]table.Row{
			{
				fmt.Sprintf("emit to %d listeners", n),
				calc.Time.Avg,
				calc.Time.Min,
				calc.Time.P75,
				calc.Time.P99,
				calc.Time.Max,
			},
		})
	}

	if shouldRender {
		tbl.Render()
	}
}

func benchmarkPropertyFanout(shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("Property set")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, n := range fanouts {
		tach := tachymeter.New(&tachymeter.Config{Size: iters})

		p := pulse.NewTinyProperty(0)
		sink := 0
		for i := 0; i < n; i++ {
			l := pulse.ChangeListener[int](func(tr pulse.Transition[int]) { sink += tr.New })
			p.LazyLink(&l)
		}

		for i := 0; i < iters; i++ {
			start := time.Now()
			p.Set(i + 1)
			tach.AddTime(time.Since(start))
		}
		_ = sink

		calc := tach.Calc()
		tbl.AppendRows([]table.Row{
			{
				fmt.Sprintf("set with %d listeners", n),
				calc.Time.Avg,
				calc.Time.Min,
				calc.Time.P75,
				calc.Time.P99,
				calc.Time.Max,
			},
		})
	}

	if shouldRender {
		tbl.Render()
	}
}

func benchmarkDerivedChains(shouldRender bool) {
	tbl := table.NewWriter()
	tbl.SetTitle("Derived chains")
	tbl.SetOutputMirror(os.Stdout)
	tbl.AppendHeader(table.Row{"benchmark", "avg", "min", "p75", "p99", "max"})

	for _, w := range fanouts {
		for _, h := range depths {
			tach := tachymeter.New(&tachymeter.Config{Size: iters})

			src := pulse.NewTinyProperty(1)
			for i := 0; i < w; i++ {
				var last pulse.Source[int] = src
				for j := 0; j < h; j++ {
					last = pulse.NewDerived1(last, func(v int) int { return v + 1 })
				}
				pulse.NewMultilink1(last, func(int) {})
			}

			for i := 0; i < iters; i++ {
				start := time.Now()
				src.Set(src.Get() + 1)
				tach.AddTime(time.Since(start))
			}

			calc := tach.Calc()
			tbl.AppendRows([]table.Row{
				{
					fmt.Sprintf("propagate: %d * %d", w, h),
					calc.Time.Avg,
					calc.Time.Min,
					calc.Time.P75,
					calc.Time.P99,
					calc.Time.Max,
				},
			})
		}
	}

	if shouldRender {
		tbl.Render()
	}
}
