package fencing

import "github.com/paxlock/paxlock/types"

// Metrics records validator outcomes. Implementations must be safe for
// concurrent use.
type Metrics interface {
	// ObserveTokenAccepted records a validation that advanced the last
	// accepted token for a lock name.
	ObserveTokenAccepted(name types.LockName, token types.FencingToken)

	// ObserveTokenRejected records a validation rejected as stale.
	ObserveTokenRejected(name types.LockName, token types.FencingToken)
}

// NoOpMetrics is a Metrics implementation that does nothing.
type NoOpMetrics struct{}

// NewNoOpMetrics returns a Metrics implementation that discards all values.
func NewNoOpMetrics() Metrics { return &NoOpMetrics{} }

func (m *NoOpMetrics) ObserveTokenAccepted(name types.LockName, token types.FencingToken) {}
func (m *NoOpMetrics) ObserveTokenRejected(name types.LockName, token types.FencingToken) {}
