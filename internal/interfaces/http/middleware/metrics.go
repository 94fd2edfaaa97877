package middleware

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// HTTPMetrics collects request counters and latency histograms for the
// HTTP server and exposes them in Prometheus format.
type HTTPMetrics struct {
	serviceName string

	requestCounter   *prometheus.CounterVec
	requestDuration  *prometheus.HistogramVec
	statusCategory   *prometheus.CounterVec
	inFlightRequests prometheus.Gauge
	registry         *prometheus.Registry
}

// NewHTTPMetrics creates a metrics collector registered on its own registry
func NewHTTPMetrics(serviceName string) *HTTPMetrics {
	m := &HTTPMetrics{
		serviceName: serviceName,
		registry:    prometheus.NewRegistry(),

		requestCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"service", "method", "path", "status"},
		),
		requestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "Duration of HTTP requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"service", "method", "path"},
		),
		statusCategory: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_status_category_total",
				Help: "Total number of responses by status category (2xx, 4xx, 5xx)",
			},
			[]string{"service", "category"},
		),
		inFlightRequests: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_in_flight_requests",
				Help: "Number of HTTP requests currently being served",
			},
		),
	}

	m.registry.MustRegister(
		m.requestCounter,
		m.requestDuration,
		m.statusCategory,
		m.inFlightRequests,
	)

	return m
}

// Middleware records metrics for each request passing through the engine
func (m *HTTPMetrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		m.inFlightRequests.Inc()

		c.Next()

		m.inFlightRequests.Dec()

		status := c.Writer.Status()
		method := c.Request.Method
		// Route pattern, not raw path, to keep label cardinality bounded
		path := c.FullPath()
		if path == "" {
			path = "unknown"
		}

		m.requestCounter.WithLabelValues(m.serviceName, method, path, strconv.Itoa(status)).Inc()
		m.requestDuration.WithLabelValues(m.serviceName, method, path).Observe(time.Since(start).Seconds())

		if category := statusCategory(status); category != "" {
			m.statusCategory.WithLabelValues(m.serviceName, category).Inc()
		}
	}
}

// Handler returns the Prometheus scrape endpoint handler
func (m *HTTPMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

func statusCategory(status int) string {
	switch {
	case status >= 200 && status < 300:
		return "2xx"
	case status >= 400 && status < 500:
		return "4xx"
	case status >= 500:
		return "5xx"
	default:
		return ""
	}
}
