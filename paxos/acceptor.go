package paxos

import (
	"context"
	"sync"

	"github.com/paxlock/paxlock/logger"
	"github.com/paxlock/paxlock/types"
)

// nameState holds the agreement state for one lock name. It is the only
// mutable shared state an acceptor owns, and its mutex is the critical
// section that makes Prepare/Accept check-and-set atomic per name.
type nameState struct {
	mu sync.Mutex

	// Highest proposal number promised. Zero value until the first Prepare.
	promised types.ProposalNumber

	// Client most recently recorded as owner. Empty if none accepted yet.
	owner types.ClientID

	// Most recently accepted fencing token. NoToken until the first Accept.
	token types.FencingToken
}

// acceptor implements the Acceptor interface with in-memory state.
// State survives for the node's operational lifetime; crash recovery and
// membership changes are explicitly out of scope.
type acceptor struct {
	mu    sync.RWMutex // Protects the names map, not the per-name state.
	names map[types.LockName]*nameState

	logger  logger.Logger
	metrics Metrics
}

// NewAcceptor creates an acceptor with lazily created per-name state.
// A nil logger or metrics falls back to the no-op implementations.
func NewAcceptor(log logger.Logger, metrics Metrics) Acceptor {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	if metrics == nil {
		metrics = NewNoOpMetrics()
	}
	return &acceptor{
		names:   make(map[types.LockName]*nameState),
		logger:  log.WithComponent("acceptor"),
		metrics: metrics,
	}
}

// getOrCreate returns the state machine for a lock name, creating it on
// first use. Different names never share state.
func (a *acceptor) getOrCreate(name types.LockName) *nameState {
	a.mu.RLock()
	ns, ok := a.names[name]
	a.mu.RUnlock()
	if ok {
		return ns
	}

	a.mu.Lock()
	defer a.mu.Unlock()
	if ns, ok = a.names[name]; ok {
		return ns
	}
	ns = &nameState{}
	a.names[name] = ns
	return ns
}

// Prepare promises the proposal if it is strictly greater than the highest
// promised number for the name. The reply always reports the highest token
// ever accepted for the name, so a coordinator can compute a fresh token
// even from refused promises.
func (a *acceptor) Prepare(ctx context.Context, args *types.PrepareArgs) (*types.PrepareReply, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ns := a.getOrCreate(args.LockName)

	ns.mu.Lock()
	granted := args.Proposal.GreaterThan(ns.promised)
	if granted {
		ns.promised = args.Proposal
	}
	previous := ns.token
	ns.mu.Unlock()

	if granted {
		a.logger.Debugw("Promise granted",
			"lock", args.LockName, "proposal", args.Proposal, "previous_token", previous)
	} else {
		a.logger.Debugw("Promise refused: already promised a higher proposal",
			"lock", args.LockName, "proposal", args.Proposal, "previous_token", previous)
		a.metrics.ObservePromiseRefused(args.LockName)
	}

	return &types.PrepareReply{
		Promise: types.Promise{Granted: granted, PreviousToken: previous},
	}, nil
}

// Accept records the owner and token if the proposal is at least the highest
// promised number for the name. An equal proposal is accepted: the promise
// made during Prepare is to this very proposal.
func (a *acceptor) Accept(ctx context.Context, args *types.AcceptArgs) (*types.AcceptReply, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ns := a.getOrCreate(args.LockName)

	ns.mu.Lock()
	accepted := args.Proposal.AtLeast(ns.promised)
	if accepted {
		ns.promised = args.Proposal
		ns.owner = args.Owner
		ns.token = args.Token
	}
	ns.mu.Unlock()

	if accepted {
		a.logger.Debugw("Accepted proposal",
			"lock", args.LockName, "proposal", args.Proposal,
			"owner", args.Owner, "token", args.Token)
	} else {
		a.logger.Debugw("Accept refused: promised a higher proposal",
			"lock", args.LockName, "proposal", args.Proposal)
		a.metrics.ObserveAcceptRefused(args.LockName)
	}

	return &types.AcceptReply{Accepted: accepted}, nil
}

// State returns a snapshot of the agreement state for a lock name.
func (a *acceptor) State(name types.LockName) (types.AcceptorState, bool) {
	a.mu.RLock()
	ns, ok := a.names[name]
	a.mu.RUnlock()
	if !ok {
		return types.AcceptorState{}, false
	}

	ns.mu.Lock()
	defer ns.mu.Unlock()
	return types.AcceptorState{
		Promised: ns.promised,
		Owner:    ns.owner,
		Token:    ns.token,
	}, true
}
