package server

import (
	"fmt"
	"time"

	"github.com/paxlock/paxlock/types"
)

// LockNodeServerConfig holds the configuration for one acceptor node server.
type LockNodeServerConfig struct {
	// NodeID uniquely identifies this node in the cluster.
	NodeID types.NodeID

	// ListenAddress is the gRPC server's bind address (e.g., "0.0.0.0:8080").
	ListenAddress string

	// MetricsAddress is the bind address for the Prometheus /metrics
	// endpoint. Empty disables the endpoint.
	MetricsAddress string

	ShutdownTimeout time.Duration // Max time allowed for graceful shutdown
	MaxRequestSize  int           // Maximum size of incoming requests (in bytes)
	MaxResponseSize int           // Maximum size of outgoing responses (in bytes)

	EnableRateLimit bool          // Whether rate limiting is enforced
	RateLimit       int           // Requests per second allowed
	RateLimitBurst  int           // Burst capacity for requests
	RateLimitWindow time.Duration // Time window used for rate calculation
}

// DefaultLockNodeServerConfig returns a config pre-populated with safe
// defaults. Callers must explicitly set NodeID.
func DefaultLockNodeServerConfig() LockNodeServerConfig {
	return LockNodeServerConfig{
		ListenAddress:   DefaultListenAddress,
		ShutdownTimeout: DefaultShutdownTimeout,
		MaxRequestSize:  DefaultMaxRequestSize,
		MaxResponseSize: DefaultMaxResponseSize,
		EnableRateLimit: false,
		RateLimit:       DefaultRateLimit,
		RateLimitBurst:  DefaultRateLimitBurst,
		RateLimitWindow: DefaultRateLimitWindow,
	}
}

// Validate checks if the server configuration is valid.
func (c *LockNodeServerConfig) Validate() error {
	if c.NodeID == "" {
		return fmt.Errorf("%w: NodeID cannot be empty", ErrConfigValidation)
	}
	if c.ListenAddress == "" {
		return fmt.Errorf("%w: ListenAddress cannot be empty", ErrConfigValidation)
	}
	if c.ShutdownTimeout < 0 {
		return fmt.Errorf("%w: ShutdownTimeout cannot be negative", ErrConfigValidation)
	}
	if c.MaxRequestSize < 0 || c.MaxResponseSize < 0 {
		return fmt.Errorf("%w: message size limits cannot be negative", ErrConfigValidation)
	}
	if c.EnableRateLimit {
		if c.RateLimit <= 0 {
			return fmt.Errorf("%w: RateLimit must be positive when rate limiting is enabled", ErrConfigValidation)
		}
		if c.RateLimitBurst <= 0 {
			return fmt.Errorf("%w: RateLimitBurst must be positive when rate limiting is enabled", ErrConfigValidation)
		}
	}
	return nil
}
