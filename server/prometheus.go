package server

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// prometheusServerMetrics implements ServerMetrics on a Prometheus registry.
type prometheusServerMetrics struct {
	requests         *prometheus.CounterVec
	validationErrors *prometheus.CounterVec
	rateLimited      *prometheus.CounterVec
	requestLatency   *prometheus.HistogramVec
	promisesRefused  prometheus.Counter
	acceptsRefused   prometheus.Counter
}

// NewPrometheusServerMetrics creates server metrics registered on the given
// registerer. Passing prometheus.DefaultRegisterer wires them into the
// default /metrics handler.
func NewPrometheusServerMetrics(reg prometheus.Registerer) ServerMetrics {
	factory := promauto.With(reg)
	return &prometheusServerMetrics{
		requests: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "paxlock_server_grpc_requests_total",
				Help: "total number of gRPC requests handled",
			},
			[]string{"method", "status"},
		),
		validationErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "paxlock_server_validation_errors_total",
				Help: "total number of requests rejected by validation",
			},
			[]string{"method", "reason"},
		),
		rateLimited: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "paxlock_server_rate_limited_total",
				Help: "total number of requests shed by the rate limiter",
			},
			[]string{"method"},
		),
		requestLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "paxlock_server_request_latency_seconds",
				Help:    "end-to-end latency of gRPC requests",
				Buckets: prometheus.ExponentialBuckets(0.0001, 2, 14), // 0.1ms to ~1.6s
			},
			[]string{"method"},
		),
		promisesRefused: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "paxlock_server_promises_refused_total",
				Help: "prepare requests refused because a higher proposal was promised",
			},
		),
		acceptsRefused: factory.NewCounter(
			prometheus.CounterOpts{
				Name: "paxlock_server_accepts_refused_total",
				Help: "accept requests refused because a higher proposal was promised",
			},
		),
	}
}

func (m *prometheusServerMetrics) IncrGRPCRequest(method string, success bool) {
	status := "ok"
	if !success {
		status = "error"
	}
	m.requests.WithLabelValues(method, status).Inc()
}

func (m *prometheusServerMetrics) IncrValidationError(method string, errorType string) {
	m.validationErrors.WithLabelValues(method, errorType).Inc()
}

func (m *prometheusServerMetrics) IncrRateLimited(method string) {
	m.rateLimited.WithLabelValues(method).Inc()
}

func (m *prometheusServerMetrics) ObserveRequestLatency(method string, latency time.Duration) {
	m.requestLatency.WithLabelValues(method).Observe(latency.Seconds())
}

func (m *prometheusServerMetrics) IncrPromiseRefused() {
	m.promisesRefused.Inc()
}

func (m *prometheusServerMetrics) IncrAcceptRefused() {
	m.acceptsRefused.Inc()
}
