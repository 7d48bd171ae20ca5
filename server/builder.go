package server

import (
	"fmt"
	"time"

	"github.com/paxlock/paxlock/logger"
	"github.com/paxlock/paxlock/paxos"
	"github.com/paxlock/paxlock/types"
)

// LockNodeServerBuilder helps construct a LockNodeServer with validated
// configuration and sane defaults.
type LockNodeServerBuilder struct {
	config LockNodeServerConfig

	acceptor paxos.Acceptor
	logger   logger.Logger
	metrics  ServerMetrics
	clock    paxos.Clock

	hasNodeID     bool // True if NodeID was set.
	hasListenAddr bool // True if ListenAddress was set.
}

// NewLockNodeServerBuilder returns a builder preloaded with default
// configuration values.
func NewLockNodeServerBuilder() *LockNodeServerBuilder {
	return &LockNodeServerBuilder{
		config: DefaultLockNodeServerConfig(),
	}
}

// WithNodeID sets the unique ID for this node.
func (b *LockNodeServerBuilder) WithNodeID(id types.NodeID) *LockNodeServerBuilder {
	b.config.NodeID = id
	b.hasNodeID = true
	return b
}

// WithListenAddress sets the gRPC bind address.
func (b *LockNodeServerBuilder) WithListenAddress(addr string) *LockNodeServerBuilder {
	b.config.ListenAddress = addr
	b.hasListenAddr = true
	return b
}

// WithMetricsAddress enables the Prometheus /metrics endpoint on addr.
func (b *LockNodeServerBuilder) WithMetricsAddress(addr string) *LockNodeServerBuilder {
	b.config.MetricsAddress = addr
	return b
}

// WithRateLimit enables request rate limiting.
func (b *LockNodeServerBuilder) WithRateLimit(limit, burst int, window time.Duration) *LockNodeServerBuilder {
	b.config.EnableRateLimit = true
	b.config.RateLimit = limit
	b.config.RateLimitBurst = burst
	b.config.RateLimitWindow = window
	return b
}

// WithShutdownTimeout sets the graceful shutdown bound.
func (b *LockNodeServerBuilder) WithShutdownTimeout(d time.Duration) *LockNodeServerBuilder {
	b.config.ShutdownTimeout = d
	return b
}

// WithAcceptor sets the acceptor the server hosts. If unset, Build creates
// a fresh one.
func (b *LockNodeServerBuilder) WithAcceptor(a paxos.Acceptor) *LockNodeServerBuilder {
	b.acceptor = a
	return b
}

// WithLogger sets the logger.
func (b *LockNodeServerBuilder) WithLogger(l logger.Logger) *LockNodeServerBuilder {
	b.logger = l
	return b
}

// WithMetrics sets the server metrics implementation.
func (b *LockNodeServerBuilder) WithMetrics(m ServerMetrics) *LockNodeServerBuilder {
	b.metrics = m
	return b
}

// WithClock sets the clock, primarily for tests.
func (b *LockNodeServerBuilder) WithClock(c paxos.Clock) *LockNodeServerBuilder {
	b.clock = c
	return b
}

// Build validates the accumulated configuration and constructs the server.
func (b *LockNodeServerBuilder) Build() (LockNodeServer, error) {
	if !b.hasNodeID {
		return nil, fmt.Errorf("%w: NodeID must be set", ErrConfigValidation)
	}
	if !b.hasListenAddr {
		return nil, fmt.Errorf("%w: ListenAddress must be set", ErrConfigValidation)
	}

	acceptor := b.acceptor
	if acceptor == nil {
		acceptor = paxos.NewAcceptor(b.logger, nil)
	}

	return NewLockNodeServer(b.config, acceptor, b.logger, b.metrics, b.clock)
}
