// Package metrics provides Prometheus metrics collection for the bakery service.
package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
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

	// OptionResolutionsTotal tracks catalog option lookups by category and outcome.
	OptionResolutionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bakery_option_resolutions_total",
			Help: "Total number of catalog option resolutions",
		},
		[]string{"category", "status"},
	)

	// CartItemsAddedTotal tracks cart items added by item kind.
	CartItemsAddedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "bakery_cart_items_added_total",
			Help: "Total number of items added to carts",
		},
		[]string{"kind"},
	)

	// CheckoutsTotal tracks checkout summaries produced.
	CheckoutsTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bakery_checkouts_total",
			Help: "Total number of checkouts",
		},
	)

	// CheckoutValue tracks the distribution of checkout totals in dollars.
	CheckoutValue = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "bakery_checkout_value_dollars",
			Help:    "Checkout total value in dollars",
			Buckets: []float64{5, 10, 25, 50, 100, 250, 500},
		},
	)

	// ActiveCarts tracks the number of live session carts.
	ActiveCarts = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "bakery_active_carts",
			Help: "Number of open session carts",
		},
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

// RecordResolution records a catalog option lookup outcome.
func RecordResolution(category, status string) {
	OptionResolutionsTotal.WithLabelValues(category, status).Inc()
}

// RecordItemAdded records an item appended to a cart.
func RecordItemAdded(kind string) {
	CartItemsAddedTotal.WithLabelValues(kind).Inc()
}

// RecordCheckout records a checkout summary and its total value.
func RecordCheckout(total float64) {
	CheckoutsTotal.Inc()
	CheckoutValue.Observe(total)
}
