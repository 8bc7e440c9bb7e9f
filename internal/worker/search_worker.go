package worker

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/BlendBot_Go/internal/domain"
	"github.com/osse101/BlendBot_Go/internal/event"
	"github.com/osse101/BlendBot_Go/internal/logger"
	"github.com/osse101/BlendBot_Go/internal/optimizer"
)

// SearchJob is the externally visible state of one asynchronous search.
// GetSearch returns copies; the worker owns the canonical record.
type SearchJob struct {
	ID         uuid.UUID             `json:"id"`
	Status     domain.SearchStatus   `json:"status"`
	Algorithm  domain.Algorithm      `json:"algorithm"`
	MaxDepth   int                   `json:"max_depth"`
	Progress   domain.ProgressSample `json:"progress"`
	Result     *domain.SearchResult  `json:"result,omitempty"`
	Error      string                `json:"error,omitempty"`
	StartedAt  time.Time             `json:"started_at"`
	FinishedAt *time.Time            `json:"finished_at,omitempty"`
}

// SearchWorker runs searches in the background, one goroutine per job, and
// pushes lifecycle events to the bus. Per job, progress and best-mix events
// precede exactly one terminal event.
type SearchWorker struct {
	service optimizer.Service
	bus     event.Bus

	mu       sync.Mutex
	jobs     map[uuid.UUID]*SearchJob
	cancels  map[uuid.UUID]context.CancelFunc
	draining bool

	shutdown chan struct{}
	wg       sync.WaitGroup
}

// NewSearchWorker creates a SearchWorker.
func NewSearchWorker(service optimizer.Service, bus event.Bus) *SearchWorker {
	return &SearchWorker{
		service:  service,
		bus:      bus,
		jobs:     make(map[uuid.UUID]*SearchJob),
		cancels:  make(map[uuid.UUID]context.CancelFunc),
		shutdown: make(chan struct{}),
	}
}

// StartSearch validates the request, registers a job, and begins the search
// in a tracked goroutine. Validation failures are returned synchronously;
// no job record is created for them.
func (w *SearchWorker) StartSearch(ctx context.Context, req optimizer.Request) (uuid.UUID, error) {
	log := logger.FromContext(ctx)

	if err := req.Validate(); err != nil {
		return uuid.Nil, err
	}

	w.mu.Lock()
	if w.draining {
		w.mu.Unlock()
		return uuid.Nil, domain.ErrWorkerShuttingDown
	}

	job := &SearchJob{
		ID:        uuid.New(),
		Status:    domain.SearchStatusPending,
		Algorithm: requestAlgorithm(req),
		MaxDepth:  req.MaxDepth,
		StartedAt: time.Now(),
	}
	jobCtx, cancel := context.WithCancel(logger.WithRequestID(context.Background(), logger.GetRequestID(ctx)))
	w.jobs[job.ID] = job
	w.cancels[job.ID] = cancel
	w.mu.Unlock()

	log.Info(LogMsgSearchJobAccepted, "searchID", job.ID, "algorithm", job.Algorithm, "maxDepth", job.MaxDepth)
	w.publish(jobCtx, event.NewSearchStartedEvent(job.ID, job.Algorithm, job.MaxDepth))

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer cancel()
		w.run(jobCtx, job.ID, req)
	}()

	return job.ID, nil
}

// run executes one search job to a terminal state.
func (w *SearchWorker) run(ctx context.Context, id uuid.UUID, req optimizer.Request) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgSearchJobStarted, "searchID", id)

	w.updateJob(id, func(job *SearchJob) {
		job.Status = domain.SearchStatusRunning
	})

	// Async callers always get progress over the bus; the flag in the
	// request only gates the synchronous callback path.
	req.ReportProgress = true

	started := time.Now()
	result, err := w.service.FindBestMix(ctx, req, optimizer.Callbacks{
		OnProgress: func(sample domain.ProgressSample) {
			w.updateJob(id, func(job *SearchJob) {
				job.Progress = sample
			})
			w.publish(ctx, event.NewSearchProgressEvent(id, sample))
		},
		OnBestMix: func(best domain.SearchResult) {
			w.publish(ctx, event.NewSearchBestMixEvent(id, best))
		},
	})
	elapsed := time.Since(started)

	status := domain.SearchStatusCompleted
	switch {
	case err != nil:
		status = domain.SearchStatusFailed
	case ctx.Err() != nil:
		status = domain.SearchStatusCancelled
	}

	now := time.Now()
	w.updateJob(id, func(job *SearchJob) {
		job.Status = status
		job.Result = result
		job.FinishedAt = &now
		if err != nil {
			job.Error = err.Error()
		}
	})

	w.mu.Lock()
	delete(w.cancels, id)
	w.mu.Unlock()

	// Terminal event goes out even when ctx was cancelled.
	w.publish(context.WithoutCancel(ctx), event.NewSearchCompletedEvent(id, status, result, err, elapsed))
	log.Info(LogMsgSearchJobFinished, "searchID", id, "status", status, "elapsed", elapsed)
}

// GetSearch returns a snapshot of the job, or domain.ErrSearchNotFound.
func (w *SearchWorker) GetSearch(id uuid.UUID) (*SearchJob, error) {
	w.mu.Lock()
	defer w.mu.Unlock()
	job, ok := w.jobs[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrSearchNotFound, id)
	}
	snapshot := *job
	return &snapshot, nil
}

// CancelSearch requests cooperative cancellation of a running job. The job
// reaches its terminal state asynchronously with a partial best result.
func (w *SearchWorker) CancelSearch(ctx context.Context, id uuid.UUID) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if _, ok := w.jobs[id]; !ok {
		return fmt.Errorf("%w: %s", domain.ErrSearchNotFound, id)
	}
	cancel, running := w.cancels[id]
	if !running {
		return fmt.Errorf("%w: %s", domain.ErrSearchNotRunning, id)
	}

	logger.FromContext(ctx).Info(LogMsgSearchJobCancelled, "searchID", id)
	cancel()
	return nil
}

// CheckHealth reports whether the worker accepts new searches.
func (w *SearchWorker) CheckHealth(_ context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.draining {
		return domain.ErrWorkerShuttingDown
	}
	return nil
}

// Shutdown cancels every running job and waits for them to drain, bounded
// by ctx.
func (w *SearchWorker) Shutdown(ctx context.Context) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgShutdownStarted)

	close(w.shutdown)

	w.mu.Lock()
	w.draining = true
	for _, cancel := range w.cancels {
		cancel()
	}
	w.mu.Unlock()

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info(LogMsgShutdownComplete)
		return nil
	case <-ctx.Done():
		log.Warn(LogMsgShutdownTimeout)
		return ctx.Err()
	}
}

func (w *SearchWorker) updateJob(id uuid.UUID, fn func(*SearchJob)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if job, ok := w.jobs[id]; ok {
		fn(job)
	}
}

func (w *SearchWorker) publish(ctx context.Context, e event.Event) {
	if w.bus == nil {
		return
	}
	if err := w.bus.Publish(ctx, e); err != nil {
		logger.FromContext(ctx).Error(LogMsgEventPublishFailed, "error", err, "type", e.Type)
	}
}

func requestAlgorithm(req optimizer.Request) domain.Algorithm {
	if req.Algorithm == string(domain.AlgorithmBreadthFirst) {
		return domain.AlgorithmBreadthFirst
	}
	return domain.AlgorithmDepthFirst
}
