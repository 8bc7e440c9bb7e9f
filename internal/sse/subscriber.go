package sse

import (
	"context"
	"log/slog"

	"github.com/osse101/BlendBot_Go/internal/event"
)

// Subscriber bridges the internal event bus to the SSE hub. Bus payloads
// are already typed, so they are forwarded as-is; the hub's per-client
// filters handle event-type selection.
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// Subscribe registers handlers for all search lifecycle event types
func (s *Subscriber) Subscribe() {
	types := []event.Type{
		event.SearchStarted,
		event.SearchProgress,
		event.SearchBestMix,
		event.SearchCompleted,
		event.SearchFailed,
	}
	for _, t := range types {
		s.bus.Subscribe(t, s.forward)
	}

	slog.Info(LogMsgSubscriberReady, "types", types)
}

func (s *Subscriber) forward(_ context.Context, evt event.Event) error {
	s.hub.Broadcast(string(evt.Type), evt.Payload)

	slog.Debug(LogMsgEventBroadcast, "event_type", evt.Type)
	return nil
}
