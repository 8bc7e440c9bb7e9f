package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP Metrics
var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameHTTPRequestsTotal,
			Help: HelpTextHTTPRequestsTotal,
		},
		[]string{LabelMethod, LabelPath, LabelStatus},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameHTTPRequestDuration,
			Help:    HelpTextHTTPRequestDuration,
			Buckets: HTTPLatencyBuckets,
		},
		[]string{LabelMethod, LabelPath},
	)

	HTTPRequestsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameHTTPRequestsInFlight,
			Help: HelpTextHTTPRequestsInFlight,
		},
	)
)

// Event Metrics
var (
	EventsPublished = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventsPublished,
			Help: HelpTextEventsPublished,
		},
		[]string{LabelType},
	)

	EventHandlerErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameEventHandlerErrors,
			Help: HelpTextEventHandlerErrors,
		},
		[]string{LabelType},
	)
)

// Engine Metrics
var (
	SearchesStarted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSearchesStarted,
			Help: HelpTextSearchesStarted,
		},
		[]string{LabelAlgorithm},
	)

	SearchesCompleted = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: MetricNameSearchesCompleted,
			Help: HelpTextSearchesCompleted,
		},
		[]string{LabelAlgorithm, LabelOutcome},
	)

	SearchDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    MetricNameSearchDuration,
			Help:    HelpTextSearchDuration,
			Buckets: SearchDurationBuckets,
		},
		[]string{LabelAlgorithm},
	)

	SearchesActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameSearchesActive,
			Help: HelpTextSearchesActive,
		},
	)

	StatesVisited = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: MetricNameStatesVisited,
			Help: HelpTextStatesVisited,
		},
	)

	BestProfitCents = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: MetricNameBestProfitCents,
			Help: HelpTextBestProfitCents,
		},
	)
)
