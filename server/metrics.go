package server

import "time"

// ServerMetrics defines observability hooks for the node server. Metrics
// cover the gRPC lifecycle, validation, and rate limiting.
// All methods must be safe for concurrent use.
type ServerMetrics interface {
	// IncrGRPCRequest increments the count for an RPC method invocation.
	// 'method' is "Prepare" or "Accept"; 'success' reflects whether the
	// call returned without a transport-level error.
	IncrGRPCRequest(method string, success bool)

	// IncrValidationError increments validation failure counters.
	// 'errorType' is a short reason like "missing_lock_name".
	IncrValidationError(method string, errorType string)

	// IncrRateLimited increments the count of requests shed by the limiter.
	IncrRateLimited(method string)

	// ObserveRequestLatency records end-to-end latency for an RPC method.
	ObserveRequestLatency(method string, latency time.Duration)

	// IncrPromiseRefused increments the count of refused Prepare requests.
	IncrPromiseRefused()

	// IncrAcceptRefused increments the count of refused Accept requests.
	IncrAcceptRefused()
}

// NoOpServerMetrics provides a no-operation implementation of ServerMetrics.
// All methods are empty and safe for concurrent use.
type NoOpServerMetrics struct{}

// NewNoOpServerMetrics creates a new no-operation metrics implementation.
func NewNoOpServerMetrics() ServerMetrics {
	return &NoOpServerMetrics{}
}

func (n *NoOpServerMetrics) IncrGRPCRequest(method string, success bool) {}
func (n *NoOpServerMetrics) IncrValidationError(method string, errorType string) {}
func (n *NoOpServerMetrics) IncrRateLimited(method string) {}
func (n *NoOpServerMetrics) ObserveRequestLatency(method string, latency time.Duration) {}
func (n *NoOpServerMetrics) IncrPromiseRefused() {}
func (n *NoOpServerMetrics) IncrAcceptRefused() {}
