package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Pipeline metrics
var (
	// SearchesTotal tracks analysis requests by outcome (ok, empty, error)
	SearchesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "searches_total",
			Help: "Total analysis requests by outcome",
		},
		[]string{"outcome"},
	)

	// PipelineStageDuration tracks per-stage pipeline latency in seconds
	PipelineStageDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "pipeline_stage_duration_seconds",
			Help:    "Pipeline stage duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		},
		[]string{"stage"},
	)

	// SamplePosts tracks how many posts each analyzed sample carried
	SamplePosts = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "sample_posts",
			Help:    "Posts per analyzed sample",
			Buckets: []float64{0, 1, 10, 25, 50, 75, 100, 150},
		},
	)

	// SkippedRecordsTotal tracks raw records dropped during normalization
	SkippedRecordsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "skipped_records_total",
			Help: "Raw records skipped during normalization",
		},
	)
)

// Cache metrics
var (
	// ReportCacheOpsTotal tracks report cache operations by op and result
	ReportCacheOpsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "report_cache_operations_total",
			Help: "Report cache operations by operation and result",
		},
		[]string{"operation", "result"},
	)

	// ReportCacheEvictions tracks expired entries removed from the memory cache
	ReportCacheEvictions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "report_cache_evictions_total",
			Help: "Expired report cache entries evicted",
		},
	)

	// ReportCacheSize tracks current memory cache entries (including expired)
	ReportCacheSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "report_cache_size",
			Help: "Current report cache entries",
		},
	)
)

// Redis metrics
var (
	// RedisOpsTotal tracks total Redis operations by operation type and status
	RedisOpsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "redis_operations_total",
			Help: "Total Redis operations by operation and status",
		},
		[]string{"operation", "status"},
	)

	// RedisOpDuration tracks Redis operation latency in seconds
	RedisOpDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "redis_operation_duration_seconds",
			Help:    "Redis operation duration in seconds",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		},
		[]string{"operation"},
	)

	// RedisConnectionErrors tracks Redis connection errors
	RedisConnectionErrors = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "redis_connection_errors_total",
			Help: "Total Redis connection errors",
		},
	)

	// CircuitBreakerStateChanges tracks circuit breaker state transitions
	CircuitBreakerStateChanges = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_state_changes_total",
			Help: "Circuit breaker state transitions by component and new state",
		},
		[]string{"component", "state"},
	)

	// CircuitBreakerState tracks current circuit breaker state (0=closed, 1=half-open, 2=open)
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Current circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"component"},
	)
)

// Search API metrics
var (
	// SearchAPIRequestsTotal tracks upstream search API calls by status code class
	SearchAPIRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "search_api_requests_total",
			Help: "Upstream search API requests by status",
		},
		[]string{"status"},
	)

	// SearchAPIDuration tracks upstream search API latency in seconds
	SearchAPIDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "search_api_request_duration_seconds",
			Help:    "Upstream search API request duration in seconds",
			Buckets: []float64{.05, .1, .25, .5, 1, 2.5, 5, 10},
		},
	)
)
