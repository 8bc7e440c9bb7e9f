package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/BlendBot_Go/internal/domain"
	"github.com/osse101/BlendBot_Go/internal/metrics"
)

// Type represents the type of an event
type Type string

// Search lifecycle event types. Per search, progress and best-mix events
// are delivered before the single terminal event (completed or failed).
const (
	SearchStarted   Type = "search.started"
	SearchProgress  Type = "search.progress"
	SearchBestMix   Type = "search.best_mix"
	SearchCompleted Type = "search.completed"
	SearchFailed    Type = "search.failed"
)

// Event represents a generic event in the system
type Event struct {
	Version string      `json:"version"` // Event schema version (e.g., "1.0")
	Type    Type        `json:"type"`
	Payload interface{} `json:"payload"`
}

// Typed event payloads for type safety

// SearchStartedPayloadV1 is the typed payload for search start events
type SearchStartedPayloadV1 struct {
	SearchID  uuid.UUID `json:"search_id"`
	Algorithm string    `json:"algorithm"`
	MaxDepth  int       `json:"max_depth"`
	Timestamp int64     `json:"timestamp"`
}

// SearchProgressPayloadV1 is the typed payload for search progress events
type SearchProgressPayloadV1 struct {
	SearchID  uuid.UUID `json:"search_id"`
	Depth     int       `json:"depth"`
	Processed int64     `json:"processed"`
	Total     int64     `json:"total"`
}

// SearchBestMixPayloadV1 is the typed payload for improved-best events
type SearchBestMixPayloadV1 struct {
	SearchID       uuid.UUID `json:"search_id"`
	Mix            []string  `json:"mix"`
	ProfitCents    int       `json:"profit_cents"`
	SellPriceCents int       `json:"sell_price_cents"`
	CostCents      int       `json:"cost_cents"`
}

// SearchCompletedPayloadV1 is the typed payload for terminal search events
type SearchCompletedPayloadV1 struct {
	SearchID  uuid.UUID            `json:"search_id"`
	Status    domain.SearchStatus  `json:"status"`
	Result    *domain.SearchResult `json:"result,omitempty"`
	Error     string               `json:"error,omitempty"`
	ElapsedMS int64                `json:"elapsed_ms"`
}

// Type-safe event constructors

// NewSearchStartedEvent creates a search started event
func NewSearchStartedEvent(searchID uuid.UUID, algorithm domain.Algorithm, maxDepth int) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    SearchStarted,
		Payload: SearchStartedPayloadV1{
			SearchID:  searchID,
			Algorithm: string(algorithm),
			MaxDepth:  maxDepth,
			Timestamp: time.Now().Unix(),
		},
	}
}

// NewSearchProgressEvent creates a search progress event
func NewSearchProgressEvent(searchID uuid.UUID, sample domain.ProgressSample) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    SearchProgress,
		Payload: SearchProgressPayloadV1{
			SearchID:  searchID,
			Depth:     sample.Depth,
			Processed: sample.ProcessedCount,
			Total:     sample.EstimatedTotal,
		},
	}
}

// NewSearchBestMixEvent creates an improved-best event from a result snapshot
func NewSearchBestMixEvent(searchID uuid.UUID, best domain.SearchResult) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    SearchBestMix,
		Payload: SearchBestMixPayloadV1{
			SearchID:       searchID,
			Mix:            best.Mix,
			ProfitCents:    best.ProfitCents,
			SellPriceCents: best.SellPriceCents,
			CostCents:      best.CostCents,
		},
	}
}

// NewSearchCompletedEvent creates the terminal event for a search
func NewSearchCompletedEvent(searchID uuid.UUID, status domain.SearchStatus, result *domain.SearchResult, searchErr error, elapsed time.Duration) Event {
	payload := SearchCompletedPayloadV1{
		SearchID:  searchID,
		Status:    status,
		Result:    result,
		ElapsedMS: elapsed.Milliseconds(),
	}
	if searchErr != nil {
		payload.Error = searchErr.Error()
	}
	eventType := SearchCompleted
	if status == domain.SearchStatusFailed {
		eventType = SearchFailed
	}
	return Event{
		Version: EventSchemaVersion,
		Type:    eventType,
		Payload: payload,
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish publishes an event to all subscribers. Handlers run synchronously
// on the publishing goroutine, which preserves per-search event ordering.
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	b.mu.RUnlock()

	metrics.EventsPublished.WithLabelValues(string(event.Type)).Inc()

	if !ok {
		return nil
	}

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			metrics.EventHandlerErrors.WithLabelValues(string(event.Type)).Inc()
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
