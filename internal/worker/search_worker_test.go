package worker

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BlendBot_Go/internal/domain"
	"github.com/osse101/BlendBot_Go/internal/event"
	"github.com/osse101/BlendBot_Go/internal/optimizer"
	"github.com/osse101/BlendBot_Go/internal/testing/leaktest"
)

// eventRecorder collects bus events in delivery order.
type eventRecorder struct {
	mu     sync.Mutex
	events []event.Event
}

func (r *eventRecorder) subscribe(bus event.Bus) {
	handler := func(_ context.Context, e event.Event) error {
		r.mu.Lock()
		defer r.mu.Unlock()
		r.events = append(r.events, e)
		return nil
	}
	for _, t := range []event.Type{
		event.SearchStarted,
		event.SearchProgress,
		event.SearchBestMix,
		event.SearchCompleted,
		event.SearchFailed,
	} {
		bus.Subscribe(t, handler)
	}
}

func (r *eventRecorder) snapshot() []event.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]event.Event, len(r.events))
	copy(out, r.events)
	return out
}

func workerRequest(maxDepth int) optimizer.Request {
	return optimizer.Request{
		Product: optimizer.ProductInput{Name: "OG Kush", InitialEffect: "Calming"},
		Substances: []optimizer.SubstanceInput{
			{Name: "Cuke", Cost: 200, DefaultEffect: "Energizing"},
			{Name: "Banana", Cost: 200, DefaultEffect: "Gingeritis"},
			{Name: "Donut", Cost: 300, DefaultEffect: "Calorie-Dense"},
		},
		EffectMultipliers: map[string]float64{
			"Calming": 0.10, "Energizing": 0.22, "Gingeritis": 0.20, "Calorie-Dense": 0.28,
		},
		MaxDepth:       maxDepth,
		ReportProgress: true,
	}
}

func waitForTerminal(t *testing.T, w *SearchWorker, id uuid.UUID) *SearchJob {
	t.Helper()
	var job *SearchJob
	require.Eventually(t, func() bool {
		var err error
		job, err = w.GetSearch(id)
		if err != nil {
			return false
		}
		switch job.Status {
		case domain.SearchStatusCompleted, domain.SearchStatusCancelled, domain.SearchStatusFailed:
			return true
		}
		return false
	}, 30*time.Second, 10*time.Millisecond)
	return job
}

func TestSearchWorkerLifecycle(t *testing.T) {
	bus := event.NewMemoryBus()
	recorder := &eventRecorder{}
	recorder.subscribe(bus)

	w := NewSearchWorker(optimizer.NewService(2), bus)

	id, err := w.StartSearch(context.Background(), workerRequest(3))
	require.NoError(t, err)
	require.NotEqual(t, uuid.Nil, id)

	job := waitForTerminal(t, w, id)
	assert.Equal(t, domain.SearchStatusCompleted, job.Status)
	require.NotNil(t, job.Result)
	assert.NotEmpty(t, job.Result.Mix)
	assert.Empty(t, job.Error)
	assert.NotNil(t, job.FinishedAt)

	events := recorder.snapshot()
	require.NotEmpty(t, events)
	assert.Equal(t, event.SearchStarted, events[0].Type)

	terminals := 0
	for i, e := range events {
		if e.Type == event.SearchCompleted || e.Type == event.SearchFailed {
			terminals++
			assert.Equal(t, len(events)-1, i, "terminal event must be last")
		}
	}
	assert.Equal(t, 1, terminals)
}

func TestSearchWorkerValidationIsSynchronous(t *testing.T) {
	bus := event.NewMemoryBus()
	w := NewSearchWorker(optimizer.NewService(1), bus)

	req := workerRequest(3)
	req.MaxDepth = domain.MaxMixDepth + 1

	id, err := w.StartSearch(context.Background(), req)
	assert.ErrorIs(t, err, domain.ErrDepthExceeded)
	assert.Equal(t, uuid.Nil, id)

	// No job record is created for a rejected request.
	_, err = w.GetSearch(id)
	assert.ErrorIs(t, err, domain.ErrSearchNotFound)
}

func TestSearchWorkerCancel(t *testing.T) {
	bus := event.NewMemoryBus()
	w := NewSearchWorker(optimizer.NewService(2), bus)

	// Deep enough to still be running when the cancel lands.
	id, err := w.StartSearch(context.Background(), workerRequest(domain.MaxMixDepth))
	require.NoError(t, err)

	require.NoError(t, w.CancelSearch(context.Background(), id))

	job := waitForTerminal(t, w, id)
	// The search may finish on its own before observing the flag; either
	// terminal state is legal, failed is not.
	assert.Contains(t, []domain.SearchStatus{
		domain.SearchStatusCancelled,
		domain.SearchStatusCompleted,
	}, job.Status)
	assert.NotNil(t, job.Result)
}

func TestSearchWorkerCancelErrors(t *testing.T) {
	bus := event.NewMemoryBus()
	w := NewSearchWorker(optimizer.NewService(1), bus)

	t.Run("unknown search", func(t *testing.T) {
		err := w.CancelSearch(context.Background(), uuid.New())
		assert.ErrorIs(t, err, domain.ErrSearchNotFound)
	})

	t.Run("already finished", func(t *testing.T) {
		id, err := w.StartSearch(context.Background(), workerRequest(2))
		require.NoError(t, err)
		waitForTerminal(t, w, id)

		err = w.CancelSearch(context.Background(), id)
		assert.ErrorIs(t, err, domain.ErrSearchNotRunning)
	})
}

func TestSearchWorkerShutdown(t *testing.T) {
	bus := event.NewMemoryBus()
	w := NewSearchWorker(optimizer.NewService(2), bus)

	checker := leaktest.NewGoroutineChecker(t)

	id, err := w.StartSearch(context.Background(), workerRequest(domain.MaxMixDepth))
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, w.Shutdown(ctx))

	// All job goroutines are joined before Shutdown returns.
	checker.Check(0)

	// Running jobs were cancelled and drained.
	job, err := w.GetSearch(id)
	require.NoError(t, err)
	assert.Contains(t, []domain.SearchStatus{
		domain.SearchStatusCancelled,
		domain.SearchStatusCompleted,
	}, job.Status)

	// A draining worker refuses new work and reports unready.
	_, err = w.StartSearch(context.Background(), workerRequest(2))
	assert.ErrorIs(t, err, domain.ErrWorkerShuttingDown)
	assert.ErrorIs(t, w.CheckHealth(context.Background()), domain.ErrWorkerShuttingDown)
}
