package paxos

import (
	"context"

	"github.com/paxlock/paxlock/types"
)

// Acceptor is the unit of replicated agreement state. It holds, per lock
// name, the highest proposal number it has promised and the most recently
// accepted owner and fencing token. State for different lock names is fully
// independent; an acceptor never initiates communication and only answers.
//
// Implementations must be safe for concurrent use. Calls for the same lock
// name are serialized internally; calls for different names proceed in
// parallel.
type Acceptor interface {
	// Prepare handles phase one of an agreement round. If the proposal number
	// is strictly greater than the highest number promised for the lock name,
	// the acceptor promises it and grants the request. The reply always
	// carries the highest token the acceptor has ever accepted for the name,
	// granted or not.
	Prepare(ctx context.Context, args *types.PrepareArgs) (*types.PrepareReply, error)

	// Accept handles phase two. If the proposal number is at least the
	// highest number promised for the lock name, the acceptor records the
	// owner and token and acknowledges.
	Accept(ctx context.Context, args *types.AcceptArgs) (*types.AcceptReply, error)

	// State returns a read-only view of the agreement state for a lock name,
	// and whether any state exists for it yet.
	State(name types.LockName) (types.AcceptorState, bool)
}

// Coordinator drives the two-phase protocol on behalf of a client attempting
// to acquire or take over a lock. It owns no persistent state beyond a
// per-lock-name monotonic proposal counter.
type Coordinator interface {
	// TryAcquire runs one agreement round for the lock name: a parallel
	// Prepare fan-out, a quorum check against the configured cluster size, a
	// parallel Accept fan-out carrying a token strictly greater than every
	// token any responding node has seen, and a second quorum check.
	//
	// On success it returns the fencing token that now identifies the caller
	// as the lock owner. On failure it returns ErrNoQuorumPrepare or
	// ErrNoQuorumAccept; both are retryable, and a retry always draws a
	// strictly higher proposal number.
	TryAcquire(ctx context.Context, name types.LockName, clientID types.ClientID) (types.FencingToken, error)
}

// NetworkManager is the coordinator-side RPC layer toward acceptor nodes.
//
// Peer membership is fixed at construction; reconfiguration is out of scope.
// Implementations must be safe for concurrent use.
type NetworkManager interface {
	// SendPrepare sends a Prepare RPC to a target acceptor node.
	SendPrepare(ctx context.Context, target types.NodeID, args *types.PrepareArgs) (*types.PrepareReply, error)

	// SendAccept sends an Accept RPC to a target acceptor node.
	SendAccept(ctx context.Context, target types.NodeID, args *types.AcceptArgs) (*types.AcceptReply, error)

	// Close shuts down the network layer and releases client connections.
	Close() error
}
