package search

import (
	"context"
	"fmt"
	"math"
	"sync"

	"github.com/osse101/BlendBot_Go/internal/domain"
	"github.com/osse101/BlendBot_Go/internal/logger"
)

// Options configures a search run.
type Options struct {
	// Algorithm selects the enumeration strategy. Defaults to depth-first.
	Algorithm domain.Algorithm

	// Workers bounds the number of concurrent search goroutines. Zero means
	// min(substance count, domain.MaxSearchThreads). A value of 1 runs the
	// whole search sequentially on the calling goroutine.
	Workers int

	// EnableCaching toggles the hashing memo in the effects cache.
	EnableCaching bool

	// OnProgress, when non-nil, receives batched progress samples. It must
	// be safe to call from multiple goroutines; the engine serializes
	// emission, but the sink is the callback's problem.
	OnProgress ProgressFunc

	// OnBestMix, when non-nil, receives each new global best as it is
	// found. Callbacks are delivered under the best-slot lock in
	// acceptance order, so observed profits never regress; the callback
	// should return quickly.
	OnBestMix func(domain.SearchResult)
}

// Coordinator partitions a search across a bounded set of worker
// goroutines, one starting substance per partition, and owns the only two
// pieces of cross-worker mutable state: the best-result slot and the
// processed counter. Workers are created per run and joined before Run
// returns; there is no long-lived pool and no work stealing.
type Coordinator struct {
	env  Env
	opts Options
}

// NewCoordinator creates a coordinator for one search invocation. The
// environment is treated as immutable for the duration of the run.
func NewCoordinator(product *domain.Product, substances []domain.Substance, multipliers map[string]int, maxDepth int, opts Options) *Coordinator {
	if opts.Algorithm == "" {
		opts.Algorithm = domain.AlgorithmDepthFirst
	}
	return &Coordinator{
		env: Env{
			Product:       product,
			Substances:    substances,
			Multipliers:   multipliers,
			MaxDepth:      maxDepth,
			EnableCaching: opts.EnableCaching,
		},
		opts: opts,
	}
}

// Run executes the search and returns the global optimum, or the best
// partial result when ctx is cancelled mid-search. A search that has begun
// emitting progress finishes or is cancelled; it does not fail.
func (c *Coordinator) Run(ctx context.Context) (*domain.SearchResult, error) {
	log := logger.FromContext(ctx)

	substanceCount := len(c.env.Substances)
	if substanceCount == 0 {
		return nil, fmt.Errorf("%w: empty substance catalog", domain.ErrInvalidRequest)
	}
	if c.env.MaxDepth <= 0 {
		return nil, fmt.Errorf("%w: max depth must be positive, got %d", domain.ErrInvalidRequest, c.env.MaxDepth)
	}

	total := EstimateTotalStates(substanceCount, c.env.MaxDepth)
	if total == math.MaxInt64 {
		log.Warn(LogMsgTotalSaturated, "substances", substanceCount, "maxDepth", c.env.MaxDepth)
	}

	shared := &sharedState{
		best:     newBestSlot(),
		reporter: newReporter(c.opts.OnProgress, total),
		onBest:   c.opts.OnBestMix,
	}

	// Initial report before any state is visited.
	if c.opts.OnProgress != nil {
		c.opts.OnProgress(domain.ProgressSample{Depth: 1, ProcessedCount: 0, EstimatedTotal: total})
	}

	workers := c.workerCount(substanceCount)
	log.Info(LogMsgSearchStarted,
		"algorithm", c.opts.Algorithm,
		"substances", substanceCount,
		"maxDepth", c.env.MaxDepth,
		"workers", workers,
		"estimatedTotal", total)

	// Propagate ctx cancellation into the cooperative flag the strategies
	// poll. The watcher exits when the run does.
	watchDone := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			shared.cancelled.Store(true)
		case <-watchDone:
		}
	}()

	if workers == 1 {
		// Sequential fallback: one pass over all starting substances on
		// the calling goroutine, same behavior, throughput aside.
		strat := c.newStrategy()
		for root := 0; root < substanceCount && !shared.cancelled.Load(); root++ {
			strat.searchFrom(&c.env, root, shared)
		}
	} else {
		var wg sync.WaitGroup
		for w := 0; w < workers; w++ {
			wg.Add(1)
			go func(worker int) {
				defer wg.Done()
				strat := c.newStrategy()
				// Starting substances beyond the worker cap are folded
				// round-robin onto the capped worker set so every root
				// is explored.
				for root := worker; root < substanceCount; root += workers {
					if shared.cancelled.Load() {
						return
					}
					strat.searchFrom(&c.env, root, shared)
				}
			}(w)
		}
		wg.Wait()
	}
	close(watchDone)

	processed := shared.processed.Load()
	shared.reporter.report(c.env.MaxDepth, processed)

	result, ok := shared.best.snapshot()
	if !ok {
		// Cancelled before the first state was evaluated.
		result = domain.SearchResult{Mix: []string{}}
	}

	if shared.cancelled.Load() {
		log.Info(LogMsgSearchCancelled, "processed", processed, "profitCents", result.ProfitCents)
	} else {
		log.Info(LogMsgSearchCompleted, "processed", processed, "profitCents", result.ProfitCents, "mix", result.Mix)
	}
	return &result, nil
}

// strategy is one enumeration algorithm bound to a single worker.
type strategy interface {
	searchFrom(env *Env, root int, shared *sharedState)
}

func (c *Coordinator) newStrategy() strategy {
	if c.opts.Algorithm == domain.AlgorithmBreadthFirst {
		return breadthFirst{}
	}
	return newDepthFirst(&c.env)
}

// workerCount resolves the configured bound against the catalog size and
// the engine's hard thread cap.
func (c *Coordinator) workerCount(substanceCount int) int {
	workers := c.opts.Workers
	if workers <= 0 {
		workers = domain.MaxSearchThreads
	}
	if workers > domain.MaxSearchThreads {
		workers = domain.MaxSearchThreads
	}
	if workers > substanceCount {
		workers = substanceCount
	}
	return workers
}
