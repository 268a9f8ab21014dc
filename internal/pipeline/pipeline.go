// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"sync"
	"time"

	"hmmassign-core/catalog"
	"hmmassign-core/observe"
	"hmmassign-core/scores"
)

// Config controls parallel score collection.
type Config struct {
	Threads int // number of worker goroutines (>=1)
}

// CollectScores parses the result shards of every cataloged model and
// returns the ranked per-query scores. Models are dealt to workers by
// catalog position; each worker writes only its own slots, and the slots
// are merged in catalog order afterward, so the result is independent of
// scheduling. The first error aborts the run (no partial output).
func CollectScores(
	ctx context.Context,
	cfg Config,
	cat *catalog.Catalog,
	obs observe.Observer,
) (scores.Ranked, error) {
	if obs == nil {
		obs = observe.Nop{}
	}
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}
	obs.Logf("collecting search results for %d models", cat.Len())
	start := time.Now()

	jobs := make(chan int, cfg.Threads*2)
	perModel := make([][]scores.Match, cat.Len())

	var (
		mu   sync.Mutex
		cerr error
	)
	fail := func(err error) {
		mu.Lock()
		if cerr == nil {
			cerr = err
		}
		mu.Unlock()
	}
	failed := func() bool {
		mu.Lock()
		defer mu.Unlock()
		return cerr != nil
	}

	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case i, ok := <-jobs:
					if !ok {
						return
					}
					// Keep draining after a failure so the feeder
					// never blocks; the run is aborted afterward.
					if failed() {
						continue
					}
					ms, err := scores.CollectModel(cat.Entries[i])
					if err != nil {
						fail(err)
						continue
					}
					perModel[i] = ms
				}
			}
		}()
	}

feed:
	for i := range cat.Entries {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}
	if cerr != nil {
		return nil, cerr
	}

	ranked := scores.MergeRanked(perModel)
	obs.Logf("done collecting search results: %d queries scored", len(ranked))
	obs.Timing("collect and rank search results", time.Since(start))
	return ranked, nil
}
