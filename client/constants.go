package client

import "time"

const (
	// defaultMaxRetries is the default number of retries after a failed round.
	defaultMaxRetries = 5

	// defaultInitialBackoff is the delay before the first retry.
	defaultInitialBackoff = 50 * time.Millisecond

	// defaultMaxBackoff caps the delay between retries.
	defaultMaxBackoff = 2 * time.Second

	// defaultBackoffMultiplier grows the delay between consecutive retries.
	defaultBackoffMultiplier = 2.0

	// defaultJitterFactor randomizes backoff so competing clients do not
	// retry in lockstep and starve each other of quorum indefinitely.
	defaultJitterFactor = 0.3

	// defaultRPCTimeout bounds each Prepare/Accept call issued on the
	// client's behalf.
	defaultRPCTimeout = 2 * time.Second
)
