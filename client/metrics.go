package client

import "time"

// Metrics records client-side acquisition outcomes. Implementations must be
// safe for concurrent use.
type Metrics interface {
	// IncrAcquireSuccess counts acquisitions that returned a token.
	IncrAcquireSuccess()

	// IncrAcquireFailure counts acquisitions that exhausted their retries.
	IncrAcquireFailure()

	// IncrRetry counts retried rounds.
	IncrRetry()

	// ObserveAcquireLatency records the end-to-end latency of an Acquire
	// call, including retries and backoff.
	ObserveAcquireLatency(latency time.Duration)
}

// NoOpMetrics is a Metrics implementation that does nothing.
type NoOpMetrics struct{}

// NewNoOpMetrics returns a Metrics implementation that discards all values.
func NewNoOpMetrics() Metrics { return &NoOpMetrics{} }

func (m *NoOpMetrics) IncrAcquireSuccess() {}
func (m *NoOpMetrics) IncrAcquireFailure() {}
func (m *NoOpMetrics) IncrRetry() {}
func (m *NoOpMetrics) ObserveAcquireLatency(latency time.Duration) {}
