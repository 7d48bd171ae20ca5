package types

// NodeID uniquely identifies a PaxLock acceptor node within a cluster.
// It should be globally unique and remain stable across restarts.
type NodeID string

// LockName identifies the resource a lock protects. All protocol state is
// partitioned by LockName; two names never interact.
type LockName string

// ClientID identifies a client (lock claimant) across coordinators.
// It should be globally unique and remain stable for the client's lifetime.
type ClientID string

// FencingToken is a monotonically increasing value, per LockName, assigned
// only by successful Accept rounds. Downstream systems compare tokens to
// reject writes from a superseded lock holder.
type FencingToken uint64

// NoToken is the sentinel FencingToken issued before any round has succeeded.
// Real tokens start at 1.
const NoToken FencingToken = 0

// ProposalNumber totally orders agreement attempts. Counter is the primary
// order; ClientID breaks ties between coordinators that drew the same counter
// value. The zero value sorts below every real proposal.
//
// A ProposalNumber is not an ownership credential; it exists only to order
// rounds.
type ProposalNumber struct {
	Counter  uint64
	ClientID ClientID
}

// Promise is an acceptor's response to a Prepare request.
//
// PreviousToken carries the highest token the acceptor has ever stored, even
// when the promise is refused, so a coordinator never computes a token that
// collides with one already handed out.
type Promise struct {
	Granted       bool
	PreviousToken FencingToken
}

// AcceptorState is a read-only view of one LockName's agreement state,
// exposed for inspection and tests.
type AcceptorState struct {
	Promised ProposalNumber
	Owner    ClientID
	Token    FencingToken
}

// PeerConfig holds the static configuration for a single acceptor node.
type PeerConfig struct {
	ID      NodeID
	Address string
}

// PrepareArgs encapsulates the arguments for the Prepare RPC.
type PrepareArgs struct {
	LockName LockName
	Proposal ProposalNumber
}

// PrepareReply encapsulates the reply for the Prepare RPC.
type PrepareReply struct {
	Promise Promise
}

// AcceptArgs encapsulates the arguments for the Accept RPC.
type AcceptArgs struct {
	LockName LockName
	Proposal ProposalNumber
	Owner    ClientID
	Token    FencingToken
}

// AcceptReply encapsulates the reply for the Accept RPC.
type AcceptReply struct {
	Accepted bool
}
