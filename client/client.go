package client

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/paxlock/paxlock/logger"
	"github.com/paxlock/paxlock/paxos"
	"github.com/paxlock/paxlock/types"
)

// LockClient acquires locks against a fixed cluster of acceptor nodes. It
// owns a coordinator and the gRPC connections behind it, retries quorum
// failures with exponential backoff and jitter, and hands out Lock handles
// carrying fencing tokens.
//
// A LockClient is safe for concurrent use.
type LockClient struct {
	config   Config
	clientID types.ClientID

	coordinator paxos.Coordinator
	network     paxos.NetworkManager

	logger  logger.Logger
	metrics Metrics
	clock   paxos.Clock
	rand    paxos.Rand

	closed atomic.Bool
}

// NewLockClient creates a client for the configured cluster. When the config
// carries no ClientID, a random UUID is assigned so that two unconfigured
// clients never collide on proposal tie-breaks.
func NewLockClient(cfg Config, log logger.Logger) (*LockClient, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	clientID := cfg.ClientID
	if clientID == "" {
		clientID = types.ClientID(uuid.NewString())
	}

	network, err := paxos.NewGRPCNetworkManager(
		cfg.Cluster, paxos.DefaultGRPCNetworkManagerOptions(), log, nil, nil)
	if err != nil {
		return nil, fmt.Errorf("building network manager: %w", err)
	}

	coordinator, err := paxos.NewCoordinator(
		paxos.CoordinatorConfig{Peers: cfg.Cluster, RPCTimeout: cfg.RPCTimeout},
		clientID, network, log, nil, nil)
	if err != nil {
		_ = network.Close()
		return nil, fmt.Errorf("building coordinator: %w", err)
	}

	return newLockClient(cfg, clientID, coordinator, network, log), nil
}

// newLockClient wires a client around an existing coordinator. Tests use it
// to substitute the consensus layer.
func newLockClient(
	cfg Config,
	clientID types.ClientID,
	coordinator paxos.Coordinator,
	network paxos.NetworkManager,
	log logger.Logger,
) *LockClient {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &LockClient{
		config:      cfg,
		clientID:    clientID,
		coordinator: coordinator,
		network:     network,
		logger:      log.WithComponent("client"),
		metrics:     NewNoOpMetrics(),
		clock:       paxos.NewStandardClock(),
		rand:        paxos.NewStandardRand(),
	}
}

// SetMetrics replaces the metrics sink. Call before first use.
func (c *LockClient) SetMetrics(m Metrics) {
	if m != nil {
		c.metrics = m
	}
}

// ClientID returns the identity this client acquires locks under.
func (c *LockClient) ClientID() types.ClientID { return c.clientID }

// Acquire runs acquisition rounds for the lock name until one succeeds, the
// retry budget is exhausted, or the context is done. Quorum failures back
// off exponentially with jitter between rounds; every round draws a fresh,
// higher proposal number.
func (c *LockClient) Acquire(ctx context.Context, name types.LockName) (*Lock, error) {
	if c.closed.Load() {
		return nil, ErrClientClosed
	}

	start := c.clock.Now()
	defer func() { c.metrics.ObserveAcquireLatency(c.clock.Since(start)) }()

	maxRetries := c.config.RetryPolicy.MaxRetries

	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		token, err := c.coordinator.TryAcquire(ctx, name, c.clientID)
		if err == nil {
			c.metrics.IncrAcquireSuccess()
			return &Lock{name: name, token: token, clientID: c.clientID}, nil
		}
		lastErr = err

		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}
		if !isRetryable(err) || attempt == maxRetries {
			break
		}

		c.metrics.IncrRetry()
		backoff := c.calculateBackoff(attempt + 1)
		c.logger.Debugw("Acquisition round failed, backing off",
			"lock", name, "attempt", attempt+1, "backoff", backoff, "error", err)

		select {
		case <-c.clock.After(backoff):
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}

	c.metrics.IncrAcquireFailure()
	return nil, fmt.Errorf("%w: lock %q after %d attempts: %w",
		ErrAcquireFailed, name, maxRetries+1, lastErr)
}

// Close releases the client's network resources. In-flight calls fail.
func (c *LockClient) Close() error {
	if !c.closed.CompareAndSwap(false, true) {
		return nil
	}
	if c.network == nil {
		return nil
	}
	return c.network.Close()
}

// isRetryable reports whether a round failure can be cured by another round.
func isRetryable(err error) bool {
	return errors.Is(err, paxos.ErrNoQuorumPrepare) ||
		errors.Is(err, paxos.ErrNoQuorumAccept) ||
		errors.Is(err, paxos.ErrTimeout)
}

// calculateBackoff computes exponential backoff with optional jitter.
func (c *LockClient) calculateBackoff(attempt int) time.Duration {
	policy := c.config.RetryPolicy

	backoff := float64(policy.InitialBackoff)
	for i := 1; i < attempt; i++ {
		backoff *= policy.BackoffMultiplier
	}
	if backoff > float64(policy.MaxBackoff) {
		backoff = float64(policy.MaxBackoff)
	}

	if policy.JitterFactor > 0 {
		jitter := (c.rand.Float64()*2 - 1) * policy.JitterFactor * backoff
		backoff += jitter
	}

	if backoff < 0 {
		return 0
	}
	return time.Duration(backoff)
}
