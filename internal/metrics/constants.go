package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Engine metric names
const (
	MetricNameSearchesStarted   = "mix_searches_started_total"
	MetricNameSearchesCompleted = "mix_searches_completed_total"
	MetricNameSearchDuration    = "mix_search_duration_seconds"
	MetricNameSearchesActive    = "mix_searches_active"
	MetricNameStatesVisited     = "mix_states_visited_total"
	MetricNameBestProfitCents   = "mix_best_profit_cents"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Engine metric help text
const (
	HelpTextSearchesStarted   = "Total number of mix searches started"
	HelpTextSearchesCompleted = "Total number of mix searches reaching a terminal state"
	HelpTextSearchDuration    = "Mix search wall-clock duration in seconds"
	HelpTextSearchesActive    = "Current number of running mix searches"
	HelpTextStatesVisited     = "Total number of candidate recipes evaluated"
	HelpTextBestProfitCents   = "Profit in cents of the most recently completed search"
)

// Label names
const (
	LabelMethod    = "method"
	LabelPath      = "path"
	LabelStatus    = "status"
	LabelType      = "type"
	LabelAlgorithm = "algorithm"
	LabelOutcome   = "outcome"
)

// Outcome label values for completed searches
const (
	OutcomeCompleted = "completed"
	OutcomeCancelled = "cancelled"
	OutcomeFailed    = "failed"
)

// HTTPLatencyBuckets are the histogram buckets for HTTP request latency
var HTTPLatencyBuckets = []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10}

// SearchDurationBuckets are the histogram buckets for search duration;
// deep searches legitimately run for minutes
var SearchDurationBuckets = []float64{0.01, 0.1, 0.5, 1, 5, 15, 60, 300, 900}
