package client

import (
	"fmt"
	"time"

	"github.com/paxlock/paxlock/types"
)

// RetryPolicy defines how the client retries failed acquisition rounds.
type RetryPolicy struct {
	// MaxRetries is the maximum number of retry attempts (0 = no retries).
	MaxRetries int

	// InitialBackoff is the initial delay before the first retry.
	InitialBackoff time.Duration

	// MaxBackoff is the maximum delay between retries.
	MaxBackoff time.Duration

	// BackoffMultiplier determines how backoff increases between retries.
	BackoffMultiplier float64

	// JitterFactor adds randomness to backoff timing (0.0 to 1.0).
	JitterFactor float64
}

// DefaultRetryPolicy returns a retry policy suited to quorum failures,
// which are transient whenever enough of the cluster is reachable.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxRetries:        defaultMaxRetries,
		InitialBackoff:    defaultInitialBackoff,
		MaxBackoff:        defaultMaxBackoff,
		BackoffMultiplier: defaultBackoffMultiplier,
		JitterFactor:      defaultJitterFactor,
	}
}

// Config holds the configuration for a lock client.
type Config struct {
	// Cluster is the full set of acceptor nodes, keyed by node ID.
	Cluster map[types.NodeID]types.PeerConfig

	// ClientID identifies this client in proposals and as lock owner.
	// Empty means a random UUID is assigned at construction.
	ClientID types.ClientID

	// RPCTimeout bounds each Prepare/Accept call. Defaults when zero.
	RPCTimeout time.Duration

	// RetryPolicy governs retries after quorum failures.
	RetryPolicy RetryPolicy
}

// DefaultClientConfig returns a Config with sensible defaults. Callers must
// set Cluster.
func DefaultClientConfig() Config {
	return Config{
		RPCTimeout:  defaultRPCTimeout,
		RetryPolicy: DefaultRetryPolicy(),
	}
}

// Validate checks the configuration for structural errors.
func (c *Config) Validate() error {
	if len(c.Cluster) == 0 {
		return fmt.Errorf("%w: cluster cannot be empty", ErrConfigValidation)
	}
	for id, peer := range c.Cluster {
		if id == "" {
			return fmt.Errorf("%w: node ID cannot be empty", ErrConfigValidation)
		}
		if peer.Address == "" {
			return fmt.Errorf("%w: address for node %s cannot be empty", ErrConfigValidation, id)
		}
	}
	if c.RPCTimeout < 0 {
		return fmt.Errorf("%w: RPC timeout cannot be negative", ErrConfigValidation)
	}
	p := c.RetryPolicy
	if p.MaxRetries < 0 {
		return fmt.Errorf("%w: MaxRetries cannot be negative", ErrConfigValidation)
	}
	if p.InitialBackoff < 0 || p.MaxBackoff < 0 {
		return fmt.Errorf("%w: backoff durations cannot be negative", ErrConfigValidation)
	}
	if p.BackoffMultiplier < 1 && p.BackoffMultiplier != 0 {
		return fmt.Errorf("%w: BackoffMultiplier must be at least 1", ErrConfigValidation)
	}
	if p.JitterFactor < 0 || p.JitterFactor > 1 {
		return fmt.Errorf("%w: JitterFactor must be between 0 and 1", ErrConfigValidation)
	}
	return nil
}
