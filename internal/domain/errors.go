package domain

import "errors"

// Error message string constants - single source of truth for error messages.
// Use these in assert.Contains() checks when testing error messages.
const (
	ErrMsgInvalidRequest    = "invalid request"
	ErrMsgUnknownSubstance  = "unknown substance reference"
	ErrMsgDepthExceeded     = "max depth exceeds engine limit"
	ErrMsgUnknownAlgorithm  = "unknown algorithm"
	ErrMsgSearchNotFound    = "search not found"
	ErrMsgSearchNotRunning  = "search is not running"
	ErrMsgWorkerShuttingDown = "worker is shutting down"
)

// Common domain errors.
// Wrap these with fmt.Errorf("%w: %s", domain.ErrXxx, details) for context.
var (
	// ErrInvalidRequest means the request was malformed or missing required
	// fields. Surfaced before any search work begins.
	ErrInvalidRequest = errors.New(ErrMsgInvalidRequest)

	// ErrUnknownSubstance means a rule set referenced a substance name that
	// is absent from the catalog. Never silently skipped.
	ErrUnknownSubstance = errors.New(ErrMsgUnknownSubstance)

	// ErrDepthExceeded means the requested max depth is above MaxMixDepth.
	ErrDepthExceeded = errors.New(ErrMsgDepthExceeded)

	// ErrUnknownAlgorithm means the request named an enumeration strategy
	// the engine does not implement.
	ErrUnknownAlgorithm = errors.New(ErrMsgUnknownAlgorithm)

	// ErrSearchNotFound means no async search job exists for the given ID.
	ErrSearchNotFound = errors.New(ErrMsgSearchNotFound)

	// ErrSearchNotRunning means a cancel was requested for a job that has
	// already reached a terminal state.
	ErrSearchNotRunning = errors.New(ErrMsgSearchNotRunning)

	// ErrWorkerShuttingDown means the search worker is draining and no new
	// jobs are accepted.
	ErrWorkerShuttingDown = errors.New(ErrMsgWorkerShuttingDown)
)
