package solver

import (
	"runtime"
	"sync"

	"github.com/edgarcosta92/fibbing/lsa"
)

// destFunc solves one destination, returning the LSAs it contributes.
type destFunc func(dest string) ([]lsa.LSA, error)

// runDestinations calls fn once per entry in dests. When parallel is
// false it runs sequentially, in order. When true, it fans the calls out
// over a worker pool bounded by GOMAXPROCS goroutines (the same
// sync.WaitGroup-and-bounded-channel shape core.Graph's own concurrency
// tests exercise) — one destination's graft of the shared working graph
// never collides with another's, since each graft only ever adds nodes
// and edges keyed by its own destination label. Results are reassembled
// in dests order so output stays deterministic regardless of completion
// order.
func runDestinations(dests []string, parallel bool, fn destFunc) ([][]lsa.LSA, []error) {
	results := make([][]lsa.LSA, len(dests))
	errs := make([]error, len(dests))

	if !parallel {
		for i, d := range dests {
			results[i], errs[i] = fn(d)
		}

		return results, errs
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > len(dests) {
		workers = len(dests)
	}
	if workers < 1 {
		workers = 1
	}

	jobs := make(chan int)
	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				results[i], errs[i] = fn(dests[i])
			}
		}()
	}
	for i := range dests {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return results, errs
}
