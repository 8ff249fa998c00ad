// Package metrics provides Prometheus metrics for the atmosphere simulator.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Simulation outcome labels.
const (
	OutcomeSuccess          = "success"
	OutcomeValidationError  = "validation_error"
	OutcomeComputationError = "computation_error"
	OutcomeCanceled         = "canceled"
)

var (
	// HTTPRequestDuration tracks HTTP request duration by method, path, and status code.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status_code"},
	)

	// HTTPRequestTotal tracks total HTTP requests by method, path, and status code.
	HTTPRequestTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status_code"},
	)

	// SimulationsTotal counts simulation runs by outcome.
	SimulationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mapsim_simulations_total",
			Help: "Total number of simulation runs",
		},
		[]string{"outcome"},
	)

	// SimulationDuration tracks engine run time. A 15-day run is on the order of a second.
	SimulationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "mapsim_simulation_duration_seconds",
			Help:    "Simulation run duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
	)

	// SimulationSteps tracks the number of integration steps per successful run.
	SimulationSteps = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "mapsim_simulation_steps",
			Help:    "Integration steps per simulation run",
			Buckets: []float64{1e3, 1e4, 86400, 432000, 864000, 1296000},
		},
	)

	// SimulationsInFlight tracks engine runs currently executing.
	SimulationsInFlight = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "mapsim_simulations_in_flight",
			Help: "Simulation runs currently executing",
		},
	)

	// CircuitBreakerState exposes breaker state (0 closed, 1 open, 2 half-open).
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state: 0 closed, 1 open, 2 half-open",
		},
		[]string{"name"},
	)

	// AuditLogDropped counts audit entries dropped because the queue was full.
	AuditLogDropped = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "audit_log_dropped_total",
			Help: "Audit log entries dropped because the queue was full",
		},
	)

	// CacheOperationsTotal tracks cache operations.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of cache operations",
		},
		[]string{"operation", "result"},
	)

	// CacheSize tracks current cache size.
	CacheSize = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Current cache size",
		},
	)

	// CacheCapacity tracks cache capacity.
	CacheCapacity = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_capacity",
			Help: "Cache capacity",
		},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = "unmatched"
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordSimulation records the outcome of one simulation run.
// steps is ignored unless the run succeeded.
func RecordSimulation(duration time.Duration, outcome string, steps int) {
	SimulationDuration.Observe(duration.Seconds())
	SimulationsTotal.WithLabelValues(outcome).Inc()
	if outcome == OutcomeSuccess {
		SimulationSteps.Observe(float64(steps))
	}
}

// RecordCacheOperation records metrics for a cache operation.
func RecordCacheOperation(operation, result string) {
	CacheOperationsTotal.WithLabelValues(operation, result).Inc()
}

// UpdateCacheMetrics updates cache size and capacity metrics.
func UpdateCacheMetrics(size, capacity int) {
	CacheSize.Set(float64(size))
	CacheCapacity.Set(float64(capacity))
}
