package paxos

import "errors"

var (
	// ErrNoQuorumPrepare is returned when fewer than a majority of the
	// configured cluster granted the Prepare phase. Retryable; the next
	// attempt draws a higher proposal number.
	ErrNoQuorumPrepare = errors.New("paxos: prepare phase did not reach quorum")

	// ErrNoQuorumAccept is returned when fewer than a majority of the
	// configured cluster acknowledged the Accept phase. Retryable; the next
	// attempt draws a higher proposal number even though no value was agreed.
	ErrNoQuorumAccept = errors.New("paxos: accept phase did not reach quorum")

	// ErrTimeout is returned when an RPC fails to complete within its bounded
	// per-call timeout. Absorbed inside the fan-out as a non-vote.
	ErrTimeout = errors.New("paxos: operation timed out")

	// ErrShuttingDown is returned when a component is shutting down and
	// cannot process requests.
	ErrShuttingDown = errors.New("paxos: shutting down")

	// ErrPeerNotFound indicates the target node ID is not part of the
	// configured cluster.
	ErrPeerNotFound = errors.New("paxos: peer not found")

	// ErrConfigValidation is returned when a configuration fails validation
	// checks (e.g., empty cluster, missing node address).
	ErrConfigValidation = errors.New("paxos: config validation error")

	// ErrMissingDependencies is returned when essential components are
	// missing during construction.
	ErrMissingDependencies = errors.New("paxos: missing required dependencies")
)
