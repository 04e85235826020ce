package pilot

import (
	"io"
	"log"
	"sort"
	"sync"

	"ropeswing/internal/swing"
)

// Sweep flies one game per seed across workers goroutines and returns the
// results sorted by descending score, then ascending seed. Each worker gets
// its own Pilot from factory.
func Sweep(base swing.Config, factory Factory, pilotCfg map[string]string, seeds []int64, maxTicks, workers int) []Result {
	if workers < 1 {
		workers = 1
	}
	base.Store = nil
	base.Notifier = nil
	if base.Logger == nil {
		base.Logger = log.New(io.Discard, "", 0)
	}

	jobs := make(chan int64)
	results := make(chan Result)
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			p := factory(pilotCfg)
			for seed := range jobs {
				cfg := base
				cfg.Seed = seed
				results <- Fly(swing.New(cfg), p, maxTicks)
			}
		}()
	}

	go func() {
		wg.Wait()
		close(results)
	}()

	go func() {
		for _, seed := range seeds {
			jobs <- seed
		}
		close(jobs)
	}()

	all := make([]Result, 0, len(seeds))
	for res := range results {
		all = append(all, res)
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Score != all[j].Score {
			return all[i].Score > all[j].Score
		}
		return all[i].Seed < all[j].Seed
	})
	return all
}

// Stats summarises a sweep.
type Stats struct {
	Runs     int
	Finished int
	Best     int
	Mean     float64
}

// Summarize computes Stats over results.
func Summarize(results []Result) Stats {
	var st Stats
	total := 0
	for _, r := range results {
		st.Runs++
		if r.Finished {
			st.Finished++
		}
		if r.Score > st.Best {
			st.Best = r.Score
		}
		total += r.Score
	}
	if st.Runs > 0 {
		st.Mean = float64(total) / float64(st.Runs)
	}
	return st
}
