// Package metrics provides Prometheus metrics collection for the compression service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Compression outcome labels.
const (
	OutcomeCompressed = "compressed"
	OutcomeCacheHit   = "cache_hit"
	OutcomeSkipped    = "skipped"
	OutcomeFailed     = "failed"
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

	// CompressionsTotal tracks compression outcomes by algorithm.
	CompressionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "compressions_total",
			Help: "Total number of response compression attempts",
		},
		[]string{"algorithm", "outcome"},
	)

	// CompressionRatio tracks achieved compression ratios (compressed/original).
	CompressionRatio = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "compression_ratio",
			Help:    "Compressed size divided by original size",
			Buckets: []float64{0.1, 0.2, 0.3, 0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 1.0},
		},
	)

	// CompressionDuration tracks time spent compressing a response body.
	CompressionDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "compression_duration_seconds",
			Help:    "Response body compression duration in seconds",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1.0},
		},
	)

	// BytesSavedTotal tracks bytes saved by compression.
	BytesSavedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "compression_bytes_saved_total",
			Help: "Total bytes saved by response compression",
		},
	)

	// CacheOperationsTotal tracks compressed-payload cache operations.
	CacheOperationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Total number of cache operations",
		},
		[]string{"operation", "result"},
	)
)

// PrometheusMiddleware returns a Gin middleware that collects HTTP metrics.
func PrometheusMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}

		c.Next()

		duration := time.Since(start).Seconds()
		statusCode := strconv.Itoa(c.Writer.Status())
		method := c.Request.Method

		HTTPRequestDuration.WithLabelValues(method, path, statusCode).Observe(duration)
		HTTPRequestTotal.WithLabelValues(method, path, statusCode).Inc()
	}
}

// RecordCompression records a single compression outcome. Ratio, duration and
// saved bytes are only observed for the compressed outcome.
func RecordCompression(algorithm, outcome string, ratio float64, duration time.Duration, savedBytes int) {
	CompressionsTotal.WithLabelValues(algorithm, outcome).Inc()
	if outcome == OutcomeCompressed {
		CompressionRatio.Observe(ratio)
		CompressionDuration.Observe(duration.Seconds())
		if savedBytes > 0 {
			BytesSavedTotal.Add(float64(savedBytes))
		}
	}
}

// RecordCacheOperation records a cache get or set and its result.
func RecordCacheOperation(operation, result string) {
	CacheOperationsTotal.WithLabelValues(operation, result).Inc()
}
