package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/osse101/BlendBot_Go/internal/handler"
	"github.com/osse101/BlendBot_Go/internal/metrics"
	"github.com/osse101/BlendBot_Go/internal/optimizer"
	"github.com/osse101/BlendBot_Go/internal/sse"
	"github.com/osse101/BlendBot_Go/internal/worker"
)

type Server struct {
	httpServer       *http.Server
	optimizerService optimizer.Service
	searchWorker     *worker.SearchWorker
}

// NewServer creates a new Server instance
func NewServer(port int, optimizerService optimizer.Service, searchWorker *worker.SearchWorker, hub *sse.Hub) *Server {
	r := chi.NewRouter()

	// Middleware stack
	// Chi middleware executes in order defined (outermost to innermost)
	r.Use(SecurityHeadersMiddleware())
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(searchWorker))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		searchHandler := handler.NewSearchJobHandler(searchWorker)

		r.Route("/mix", func(r chi.Router) {
			r.Post("/optimize", handler.HandleOptimizeMix(optimizerService))
			r.Post("/search", searchHandler.HandleStartSearch)
			r.Get("/search/{id}", searchHandler.HandleGetSearch)
			r.Post("/search/{id}/cancel", searchHandler.HandleCancelSearch)
		})

		// Live search lifecycle stream
		r.Get("/events", sse.Handler(hub))
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		optimizerService: optimizerService,
		searchWorker:     searchWorker,
	}
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
