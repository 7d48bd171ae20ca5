package server

import "time"

const (
	// DefaultListenAddress is the default bind address for the node's
	// gRPC endpoint.
	DefaultListenAddress = "0.0.0.0:8080"

	// DefaultShutdownTimeout is the default timeout for graceful shutdown.
	DefaultShutdownTimeout = 10 * time.Second

	// DefaultMaxRequestSize is the default maximum size for incoming gRPC
	// requests (4MB).
	DefaultMaxRequestSize = 4 * 1024 * 1024

	// DefaultMaxResponseSize is the default maximum size for outgoing gRPC
	// responses (4MB).
	DefaultMaxResponseSize = 4 * 1024 * 1024

	// DefaultRateLimit is the default number of requests per second.
	DefaultRateLimit = 1000

	// DefaultRateLimitBurst is the default burst size for rate limiting.
	DefaultRateLimitBurst = 2000

	// DefaultRateLimitWindow is the default time window for rate limiting
	// calculations.
	DefaultRateLimitWindow = time.Second

	// MaxLockNameLength bounds the lock names a node will accept. Names are
	// map keys held for the node's lifetime, so unbounded names are a memory
	// hazard.
	MaxLockNameLength = 256

	// MaxClientIDLength bounds coordinator and owner identifiers.
	MaxClientIDLength = 128

	// DefaultServerKeepaliveTime is the server-side ping interval when idle.
	DefaultServerKeepaliveTime = 30 * time.Second

	// DefaultServerKeepaliveTimeout is how long the server waits for a ping ack.
	DefaultServerKeepaliveTimeout = 10 * time.Second
)
