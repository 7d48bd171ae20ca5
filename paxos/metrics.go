package paxos

import (
	"time"

	"github.com/paxlock/paxlock/types"
)

// Metrics defines an interface for recording protocol metrics.
// Implementations must be safe for concurrent use.
//
// Labels must be provided in key/value pairs: "key1", "value1", "key2",
// "value2", etc. Metric names should be appropriately namespaced
// (e.g., "paxos_rounds_total").
type Metrics interface {
	// IncCounter increments the specified counter metric by 1.
	IncCounter(name string, labels ...string)

	// AddCounter adds the given value to the specified counter metric.
	AddCounter(name string, value float64, labels ...string)

	// SetGauge sets the specified gauge metric to the given value.
	SetGauge(name string, value float64, labels ...string)

	// ObserveHistogram records the given value in the specified histogram metric.
	ObserveHistogram(name string, value float64, labels ...string)

	// ObservePrepareRound records the outcome of a Prepare fan-out.
	// Counter: paxos_prepare_rounds_total (labeled by quorum reached)
	// Histogram: paxos_prepare_round_latency_seconds
	ObservePrepareRound(granted int, quorum bool, latency time.Duration)

	// ObserveAcceptRound records the outcome of an Accept fan-out.
	// Counter: paxos_accept_rounds_total (labeled by quorum reached)
	// Histogram: paxos_accept_round_latency_seconds
	ObserveAcceptRound(accepted int, quorum bool, latency time.Duration)

	// ObserveTokenIssued records a successfully issued fencing token.
	// Gauge: paxos_last_token_issued
	ObserveTokenIssued(name types.LockName, token types.FencingToken)

	// ObservePromiseRefused records a Prepare refused by this acceptor
	// because it had already promised a higher proposal.
	// Counter: paxos_promises_refused_total
	ObservePromiseRefused(name types.LockName)

	// ObserveAcceptRefused records an Accept refused by this acceptor.
	// Counter: paxos_accepts_refused_total
	ObserveAcceptRefused(name types.LockName)
}

// NoOpMetrics is a Metrics implementation that does nothing.
// Useful as a default when metrics collection is disabled.
type NoOpMetrics struct{}

// NewNoOpMetrics returns a Metrics implementation that discards all values.
func NewNoOpMetrics() Metrics { return &NoOpMetrics{} }

func (m *NoOpMetrics) IncCounter(name string, labels ...string) {}
func (m *NoOpMetrics) AddCounter(name string, value float64, labels ...string) {}
func (m *NoOpMetrics) SetGauge(name string, value float64, labels ...string) {}
func (m *NoOpMetrics) ObserveHistogram(name string, value float64, labels ...string) {}
func (m *NoOpMetrics) ObservePrepareRound(granted int, quorum bool, d time.Duration) {}
func (m *NoOpMetrics) ObserveAcceptRound(accepted int, quorum bool, d time.Duration) {}
func (m *NoOpMetrics) ObserveTokenIssued(name types.LockName, t types.FencingToken) {}
func (m *NoOpMetrics) ObservePromiseRefused(name types.LockName) {}
func (m *NoOpMetrics) ObserveAcceptRefused(name types.LockName) {}
