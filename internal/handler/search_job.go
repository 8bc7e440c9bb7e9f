package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/osse101/BlendBot_Go/internal/domain"
	"github.com/osse101/BlendBot_Go/internal/logger"
	"github.com/osse101/BlendBot_Go/internal/optimizer"
	"github.com/osse101/BlendBot_Go/internal/worker"
)

// StartSearchResponse acknowledges an accepted asynchronous search.
type StartSearchResponse struct {
	ID     uuid.UUID           `json:"id"`
	Status domain.SearchStatus `json:"status"`
}

// SearchJobService is the slice of the search worker the handlers need.
type SearchJobService interface {
	StartSearch(ctx context.Context, req optimizer.Request) (uuid.UUID, error)
	GetSearch(id uuid.UUID) (*worker.SearchJob, error)
	CancelSearch(ctx context.Context, id uuid.UUID) error
}

// SearchJobHandler serves the asynchronous search job endpoints.
type SearchJobHandler struct {
	worker SearchJobService
}

// NewSearchJobHandler creates a SearchJobHandler backed by the given worker.
func NewSearchJobHandler(w SearchJobService) *SearchJobHandler {
	return &SearchJobHandler{worker: w}
}

// HandleStartSearch accepts a search request and starts it in the background.
// Validation happens synchronously; a 202 means the search is registered and
// its lifecycle is observable via GET and the event stream.
func (h *SearchJobHandler) HandleStartSearch(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	var req optimizer.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Error("Failed to decode search request", "error", err)
		respondError(w, http.StatusBadRequest, ErrMsgInvalidRequest)
		return
	}

	id, err := h.worker.StartSearch(r.Context(), req)
	if err != nil {
		log.Warn("Failed to start search", "error", err)
		status, msg := mapServiceErrorToUserMessage(err)
		respondError(w, status, msg)
		return
	}

	log.Info("Search accepted",
		"search_id", id,
		"product", req.Product.Name,
		"max_depth", req.MaxDepth)

	respondJSON(w, http.StatusAccepted, StartSearchResponse{
		ID:     id,
		Status: domain.SearchStatusPending,
	})
}

// HandleGetSearch returns the current snapshot of a search job.
func (h *SearchJobHandler) HandleGetSearch(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	id, ok := searchID(w, r)
	if !ok {
		return
	}

	job, err := h.worker.GetSearch(id)
	if err != nil {
		log.Debug("Search lookup failed", "search_id", id, "error", err)
		status, msg := mapServiceErrorToUserMessage(err)
		respondError(w, status, msg)
		return
	}

	respondJSON(w, http.StatusOK, job)
}

// HandleCancelSearch requests cooperative cancellation of a running search.
// The job finishes with status cancelled and its best-so-far result once the
// search goroutines observe the flag.
func (h *SearchJobHandler) HandleCancelSearch(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	id, ok := searchID(w, r)
	if !ok {
		return
	}

	if err := h.worker.CancelSearch(r.Context(), id); err != nil {
		log.Debug("Cancel failed", "search_id", id, "error", err)
		status, msg := mapServiceErrorToUserMessage(err)
		respondError(w, status, msg)
		return
	}

	log.Info("Search cancellation requested", "search_id", id)
	respondJSON(w, http.StatusAccepted, SuccessResponse{Message: MsgCancelRequested})
}

// searchID parses the {id} URL parameter, responding with 400 on failure.
func searchID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := chi.URLParam(r, "id")
	id, err := uuid.Parse(raw)
	if err != nil {
		respondError(w, http.StatusBadRequest, ErrMsgInvalidSearchID)
		return uuid.Nil, false
	}
	return id, true
}
