package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/BlendBot_Go/internal/config"
	"github.com/osse101/BlendBot_Go/internal/event"
	"github.com/osse101/BlendBot_Go/internal/optimizer"
	"github.com/osse101/BlendBot_Go/internal/server"
	"github.com/osse101/BlendBot_Go/internal/sse"
	"github.com/osse101/BlendBot_Go/internal/worker"
)

const shutdownTimeout = 30 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	initLogger(cfg)

	// Event plumbing: search lifecycle events flow worker -> bus -> SSE hub.
	bus := event.NewMemoryBus()
	hub := sse.NewHub()
	hub.Start()
	sse.NewSubscriber(hub, bus).Subscribe()

	optimizerService := optimizer.NewService(cfg.SearchWorkers)
	searchWorker := worker.NewSearchWorker(optimizerService, bus)

	srv := server.NewServer(cfg.Port, optimizerService, searchWorker, hub)

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed to start: %v", err)
		}
	case sig := <-stop:
		slog.Info("Shutdown signal received", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	// Stop accepting requests first, then drain running searches, then the
	// event stream.
	if err := srv.Stop(ctx); err != nil {
		slog.Error("HTTP server shutdown failed", "error", err)
	}
	if err := searchWorker.Shutdown(ctx); err != nil {
		slog.Error("Search worker shutdown failed", "error", err)
	}
	hub.Stop()

	slog.Info("Shutdown complete")
}
