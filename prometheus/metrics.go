package prometheus

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"storefront-bff/pkg/config"
)

var (
	// HTTP request metrics
	HttpRequestsTotal   prometheus.CounterVec
	HttpRequestDuration prometheus.HistogramVec

	// Outbound platform request metrics
	PlatformRequestsTotal   prometheus.CounterVec
	PlatformRequestDuration prometheus.HistogramVec
	PlatformErrorsCounter   prometheus.CounterVec

	// Storefront metrics
	ProductViewsCounter       prometheus.CounterVec
	CartOperationsCounter     prometheus.CounterVec
	CheckoutCompletionCounter prometheus.Counter
)

// InitMetrics initializes Prometheus metrics with configuration
func InitMetrics(config *config.Config) {
	prefix := config.Metrics.Prefix

	HttpRequestsTotal = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HttpRequestDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	PlatformRequestsTotal = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_platform_requests_total",
			Help: "Total number of outbound requests to the commerce platform",
		},
		[]string{"method", "status"},
	)

	PlatformRequestDuration = *promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_platform_request_duration_seconds",
			Help:    "Duration of outbound platform requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	PlatformErrorsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_platform_errors_total",
			Help: "Total number of failed platform requests",
		},
		[]string{"method", "status"},
	)

	ProductViewsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_product_views_total",
			Help: "Total number of product detail views",
		},
		[]string{"product_id"},
	)

	CartOperationsCounter = *promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_cart_operations_total",
			Help: "Total number of cart operations",
		},
		[]string{"operation"},
	)

	CheckoutCompletionCounter = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: prefix + "_checkout_completions_total",
			Help: "Total number of completed checkouts",
		},
	)
}

// ObservePlatformRequest records one completed outbound platform request.
// Status 0 means the platform was unreachable. Matches the signature of the
// gateway's OnResult hook so the server can wire it in directly.
func ObservePlatformRequest(method string, status int, duration time.Duration) {
	label := http.StatusText(status)
	if label == "" {
		label = "unreachable"
	}
	PlatformRequestsTotal.WithLabelValues(method, label).Inc()
	PlatformRequestDuration.WithLabelValues(method).Observe(duration.Seconds())
	if status == 0 || status >= http.StatusBadRequest {
		PlatformErrorsCounter.WithLabelValues(method, label).Inc()
	}
}

// RecordCartOperation increments the counter for cart operations
func RecordCartOperation(operation string) {
	CartOperationsCounter.WithLabelValues(operation).Inc()
}

// RecordProductView increments the counter for product views
func RecordProductView(productID string) {
	ProductViewsCounter.WithLabelValues(productID).Inc()
}
