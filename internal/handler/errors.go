package handler

import (
	"errors"
	"net/http"

	"github.com/osse101/BlendBot_Go/internal/domain"
)

// User-facing error messages. These intentionally do not expose internal
// error details; handlers and tests should both reference these constants.
const (
	ErrMsgGenericServerError = "Something went wrong"
	ErrMsgUnknownError       = "Unknown error"
	ErrMsgInvalidRequest     = "Invalid request body"

	ErrMsgInvalidSearchRequest = "Invalid search request. Please check your inputs."
	ErrMsgUnknownSubstance     = "Substance rules reference an unknown substance"
	ErrMsgDepthExceeded        = "Requested depth exceeds the engine limit"
	ErrMsgUnknownAlgorithm     = "Unknown search algorithm"
	ErrMsgSearchNotFound       = "Search not found"
	ErrMsgSearchNotRunning     = "Search is not running"
	ErrMsgShuttingDown         = "Server is shutting down. Please try again later."
	ErrMsgInvalidSearchID      = "Invalid search ID"
	ErrMsgOptimizeFailed       = "Failed to optimize mix"
	ErrMsgStartSearchFailed    = "Failed to start search"
)

// Success messages for API responses
const (
	MsgCancelRequested = "Cancellation requested"
)

// mapServiceErrorToUserMessage maps domain errors to HTTP status codes and
// messages users can act upon.
func mapServiceErrorToUserMessage(err error) (int, string) {
	if err == nil {
		return http.StatusInternalServerError, ErrMsgUnknownError
	}

	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		return http.StatusBadRequest, ErrMsgInvalidSearchRequest
	case errors.Is(err, domain.ErrUnknownSubstance):
		return http.StatusBadRequest, ErrMsgUnknownSubstance
	case errors.Is(err, domain.ErrDepthExceeded):
		return http.StatusBadRequest, ErrMsgDepthExceeded
	case errors.Is(err, domain.ErrUnknownAlgorithm):
		return http.StatusBadRequest, ErrMsgUnknownAlgorithm
	case errors.Is(err, domain.ErrSearchNotFound):
		return http.StatusNotFound, ErrMsgSearchNotFound
	case errors.Is(err, domain.ErrSearchNotRunning):
		return http.StatusConflict, ErrMsgSearchNotRunning
	case errors.Is(err, domain.ErrWorkerShuttingDown):
		return http.StatusServiceUnavailable, ErrMsgShuttingDown
	}

	return http.StatusInternalServerError, ErrMsgGenericServerError
}
