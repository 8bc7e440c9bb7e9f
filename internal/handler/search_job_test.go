package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/BlendBot_Go/internal/domain"
	"github.com/osse101/BlendBot_Go/internal/optimizer"
	"github.com/osse101/BlendBot_Go/internal/worker"
)

// MockSearchJobService mocks the SearchJobService interface
type MockSearchJobService struct {
	mock.Mock
}

func (m *MockSearchJobService) StartSearch(ctx context.Context, req optimizer.Request) (uuid.UUID, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(uuid.UUID), args.Error(1)
}

func (m *MockSearchJobService) GetSearch(id uuid.UUID) (*worker.SearchJob, error) {
	args := m.Called(id)
	if job := args.Get(0); job != nil {
		return job.(*worker.SearchJob), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockSearchJobService) CancelSearch(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// searchRouter mounts the handler on the routes the server uses so
// chi.URLParam resolves {id}.
func searchRouter(h *SearchJobHandler) *chi.Mux {
	r := chi.NewRouter()
	r.Post("/search", h.HandleStartSearch)
	r.Get("/search/{id}", h.HandleGetSearch)
	r.Post("/search/{id}/cancel", h.HandleCancelSearch)
	return r
}

func TestHandleStartSearch(t *testing.T) {
	t.Run("Accepted", func(t *testing.T) {
		id := uuid.New()
		svc := &MockSearchJobService{}
		svc.On("StartSearch", mock.Anything, mock.Anything).Return(id, nil)

		req := httptest.NewRequest("POST", "/search", optimizeRequestBody(t))
		w := httptest.NewRecorder()

		searchRouter(NewSearchJobHandler(svc)).ServeHTTP(w, req)

		assert.Equal(t, http.StatusAccepted, w.Code)

		var resp StartSearchResponse
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, id, resp.ID)
		assert.Equal(t, domain.SearchStatusPending, resp.Status)
		svc.AssertExpectations(t)
	})

	t.Run("Invalid JSON Body", func(t *testing.T) {
		svc := &MockSearchJobService{}

		req := httptest.NewRequest("POST", "/search", bytes.NewBufferString("nope"))
		w := httptest.NewRecorder()

		searchRouter(NewSearchJobHandler(svc)).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "StartSearch")
	})

	t.Run("Validation Failure", func(t *testing.T) {
		svc := &MockSearchJobService{}
		svc.On("StartSearch", mock.Anything, mock.Anything).
			Return(uuid.Nil, fmt.Errorf("%w: missing substances", domain.ErrInvalidRequest))

		req := httptest.NewRequest("POST", "/search", optimizeRequestBody(t))
		w := httptest.NewRecorder()

		searchRouter(NewSearchJobHandler(svc)).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgInvalidSearchRequest)
	})

	t.Run("Worker Draining", func(t *testing.T) {
		svc := &MockSearchJobService{}
		svc.On("StartSearch", mock.Anything, mock.Anything).
			Return(uuid.Nil, domain.ErrWorkerShuttingDown)

		req := httptest.NewRequest("POST", "/search", optimizeRequestBody(t))
		w := httptest.NewRecorder()

		searchRouter(NewSearchJobHandler(svc)).ServeHTTP(w, req)

		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgShuttingDown)
	})
}

func TestHandleGetSearch(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		id := uuid.New()
		job := &worker.SearchJob{
			ID:        id,
			Status:    domain.SearchStatusRunning,
			Algorithm: domain.AlgorithmDepthFirst,
			MaxDepth:  5,
			StartedAt: time.Now(),
		}
		svc := &MockSearchJobService{}
		svc.On("GetSearch", id).Return(job, nil)

		req := httptest.NewRequest("GET", "/search/"+id.String(), nil)
		w := httptest.NewRecorder()

		searchRouter(NewSearchJobHandler(svc)).ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var resp worker.SearchJob
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
		assert.Equal(t, id, resp.ID)
		assert.Equal(t, domain.SearchStatusRunning, resp.Status)
		svc.AssertExpectations(t)
	})

	t.Run("Not Found", func(t *testing.T) {
		id := uuid.New()
		svc := &MockSearchJobService{}
		svc.On("GetSearch", id).Return(nil, fmt.Errorf("%w: %s", domain.ErrSearchNotFound, id))

		req := httptest.NewRequest("GET", "/search/"+id.String(), nil)
		w := httptest.NewRecorder()

		searchRouter(NewSearchJobHandler(svc)).ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgSearchNotFound)
	})

	t.Run("Malformed ID", func(t *testing.T) {
		svc := &MockSearchJobService{}

		req := httptest.NewRequest("GET", "/search/not-a-uuid", nil)
		w := httptest.NewRecorder()

		searchRouter(NewSearchJobHandler(svc)).ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgInvalidSearchID)
		svc.AssertNotCalled(t, "GetSearch")
	})
}

func TestHandleCancelSearch(t *testing.T) {
	t.Run("Accepted", func(t *testing.T) {
		id := uuid.New()
		svc := &MockSearchJobService{}
		svc.On("CancelSearch", mock.Anything, id).Return(nil)

		req := httptest.NewRequest("POST", "/search/"+id.String()+"/cancel", nil)
		w := httptest.NewRecorder()

		searchRouter(NewSearchJobHandler(svc)).ServeHTTP(w, req)

		assert.Equal(t, http.StatusAccepted, w.Code)
		assert.Contains(t, w.Body.String(), MsgCancelRequested)
		svc.AssertExpectations(t)
	})

	t.Run("Already Finished", func(t *testing.T) {
		id := uuid.New()
		svc := &MockSearchJobService{}
		svc.On("CancelSearch", mock.Anything, id).
			Return(fmt.Errorf("%w: %s", domain.ErrSearchNotRunning, id))

		req := httptest.NewRequest("POST", "/search/"+id.String()+"/cancel", nil)
		w := httptest.NewRecorder()

		searchRouter(NewSearchJobHandler(svc)).ServeHTTP(w, req)

		assert.Equal(t, http.StatusConflict, w.Code)
		assert.Contains(t, w.Body.String(), ErrMsgSearchNotRunning)
	})
}
