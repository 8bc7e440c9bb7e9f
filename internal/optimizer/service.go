package optimizer

import (
	"context"
	"errors"
	"time"

	"github.com/osse101/BlendBot_Go/internal/domain"
	"github.com/osse101/BlendBot_Go/internal/logger"
	"github.com/osse101/BlendBot_Go/internal/metrics"
	"github.com/osse101/BlendBot_Go/internal/search"
)

// Callbacks carries the optional per-search observers. Both may be invoked
// from multiple worker goroutines; the engine serializes progress emission,
// best-mix emission follows global-best acceptance order.
type Callbacks struct {
	OnProgress search.ProgressFunc
	OnBestMix  func(domain.SearchResult)
}

// Service is the synchronous engine entry point shared by the HTTP
// handlers, the background search worker, and direct in-process callers.
type Service interface {
	// FindBestMix validates the request, runs the search to completion or
	// cancellation, and returns the best result found. Once progress has
	// been emitted the search does not fail; cancellation yields the
	// partial best with a nil error.
	FindBestMix(ctx context.Context, req Request, cb Callbacks) (*domain.SearchResult, error)
}

type service struct {
	workers int
}

// NewService creates an optimizer service. workers bounds search
// concurrency per invocation; zero means the engine default.
func NewService(workers int) Service {
	return &service{workers: workers}
}

func (s *service) FindBestMix(ctx context.Context, req Request, cb Callbacks) (*domain.SearchResult, error) {
	log := logger.FromContext(ctx)

	// Fail fast: no partial work on a malformed request.
	if err := req.Validate(); err != nil {
		log.Warn("Rejected search request", "error", err)
		return nil, err
	}

	product, substances, multipliers := req.compile()
	algorithm := req.algorithm()

	onProgress := cb.OnProgress
	if !req.ReportProgress {
		onProgress = nil
	}

	// Track states visited through the progress stream so the counter does
	// not need a third piece of shared engine state. The engine serializes
	// progress emission, so lastProcessed needs no further locking.
	var lastProcessed int64
	progress := func(sample domain.ProgressSample) {
		if delta := sample.ProcessedCount - lastProcessed; delta > 0 {
			metrics.StatesVisited.Add(float64(delta))
			lastProcessed = sample.ProcessedCount
		}
		if onProgress != nil {
			onProgress(sample)
		}
	}

	coordinator := search.NewCoordinator(product, substances, multipliers, req.MaxDepth, search.Options{
		Algorithm:     algorithm,
		Workers:       s.workers,
		EnableCaching: req.enableCaching(),
		OnProgress:    progress,
		OnBestMix:     cb.OnBestMix,
	})

	metrics.SearchesStarted.WithLabelValues(string(algorithm)).Inc()
	metrics.SearchesActive.Inc()
	defer metrics.SearchesActive.Dec()

	started := time.Now()
	result, err := coordinator.Run(ctx)
	elapsed := time.Since(started)

	outcome := metrics.OutcomeCompleted
	switch {
	case err != nil:
		outcome = metrics.OutcomeFailed
	case errors.Is(ctx.Err(), context.Canceled) || errors.Is(ctx.Err(), context.DeadlineExceeded):
		outcome = metrics.OutcomeCancelled
	}
	metrics.SearchesCompleted.WithLabelValues(string(algorithm), outcome).Inc()
	metrics.SearchDuration.WithLabelValues(string(algorithm)).Observe(elapsed.Seconds())

	if err != nil {
		return nil, err
	}
	metrics.BestProfitCents.Set(float64(result.ProfitCents))
	return result, nil
}
