package client

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds client request metrics
type Metrics struct {
	requestTotal    *prometheus.CounterVec
	requestDuration *prometheus.HistogramVec
	requestErrors   *prometheus.CounterVec
}

// NewMetrics creates and registers client metrics with registerer
func NewMetrics(registerer prometheus.Registerer) *Metrics {
	factory := promauto.With(registerer)
	return &Metrics{
		requestTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "apiclient_requests_total",
				Help: "Total number of API requests",
			},
			[]string{"method", "status"},
		),
		requestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "apiclient_request_duration_seconds",
				Help:    "Duration of API requests in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method"},
		),
		requestErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "apiclient_request_errors_total",
				Help: "Total number of failed API requests",
			},
			[]string{"method", "error_type"},
		),
	}
}

// observe records a finished request, status is 0 for transport failures
func (m *Metrics) observe(method string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.requestDuration.WithLabelValues(method).Observe(elapsed.Seconds())
	switch {
	case status == 0:
		m.requestTotal.WithLabelValues(method, "error").Inc()
		m.requestErrors.WithLabelValues(method, "transport").Inc()
	case status < 200 || status >= 300:
		m.requestTotal.WithLabelValues(method, strconv.Itoa(status)).Inc()
		m.requestErrors.WithLabelValues(method, "http").Inc()
	default:
		m.requestTotal.WithLabelValues(method, strconv.Itoa(status)).Inc()
	}
}
