package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"
	"strings"
	"time"

	"ropeswing/internal/pilot"
	"ropeswing/internal/swing"
)

func main() {
	name := flag.String("pilot", "greedy", "pilot to fly ("+strings.Join(pilot.Names(), ", ")+")")
	from := flag.Int64("seed", 1, "first seed")
	count := flag.Int("seeds", 64, "number of consecutive seeds to fly")
	ticks := flag.Int("ticks", 20000, "tick limit per flight")
	workers := flag.Int("workers", runtime.NumCPU(), "number of worker goroutines")
	top := flag.Int("top", 5, "results to list")
	params := map[string]string{}
	pilotParams := map[string]string{}
	flag.Func("param", "physics override as key=value (repeatable)", keyValue(params))
	flag.Func("pilot-param", "pilot setting as key=value (repeatable)", keyValue(pilotParams))
	flag.Parse()

	factory, ok := pilot.Pilots()[*name]
	if !ok {
		log.Fatalf("unknown pilot %q", *name)
	}

	seeds := make([]int64, *count)
	for i := range seeds {
		seeds[i] = *from + int64(i)
	}

	fmt.Printf("Flying %d seeds with %q (%d workers, %d tick limit)\n", len(seeds), *name, *workers, *ticks)
	start := time.Now()
	results := pilot.Sweep(swing.FromMap(params), factory, pilotParams, seeds, *ticks, *workers)
	elapsed := time.Since(start)

	fmt.Printf("\nTop %d results (elapsed %s):\n", *top, elapsed.Round(time.Millisecond))
	for i := 0; i < len(results) && i < *top; i++ {
		r := results[i]
		fmt.Printf("%2d) seed=%d distance=%dm ticks=%d taps=%d finished=%t\n", i+1, r.Seed, r.Score, r.Ticks, r.Taps, r.Finished)
	}

	st := pilot.Summarize(results)
	fmt.Printf("\nruns=%d finished=%d best=%dm mean=%.1fm\n", st.Runs, st.Finished, st.Best, st.Mean)
}

func keyValue(dst map[string]string) func(string) error {
	return func(s string) error {
		k, v, ok := strings.Cut(s, "=")
		if !ok || k == "" {
			return fmt.Errorf("%q: want key=value", s)
		}
		dst[k] = v
		return nil
	}
}
