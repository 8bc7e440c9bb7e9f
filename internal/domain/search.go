package domain

import "time"

// Algorithm selects the enumeration strategy used by the engine.
type Algorithm string

const (
	AlgorithmBreadthFirst Algorithm = "breadth-first"
	AlgorithmDepthFirst   Algorithm = "depth-first"
)

// SearchResult is the best recipe found by a search. Monetary values are
// integer cents; ProfitCents is always SellPriceCents - CostCents.
type SearchResult struct {
	Mix            []string `json:"mix"`
	ProfitCents    int      `json:"profitCents"`
	SellPriceCents int      `json:"sellPriceCents"`
	CostCents      int      `json:"costCents"`
}

// ProgressSample is one progress observation pushed by the engine during a
// search. Read-only to the caller, never persisted.
type ProgressSample struct {
	Depth          int           `json:"depth"`
	ProcessedCount int64         `json:"processed"`
	EstimatedTotal int64         `json:"total"`
	Elapsed        time.Duration `json:"elapsed"`
}

// SearchStatus is the lifecycle state of an asynchronous search job.
type SearchStatus string

const (
	SearchStatusPending   SearchStatus = "pending"
	SearchStatusRunning   SearchStatus = "running"
	SearchStatusCompleted SearchStatus = "completed"
	SearchStatusCancelled SearchStatus = "cancelled"
	SearchStatusFailed    SearchStatus = "failed"
)
