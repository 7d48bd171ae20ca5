package paxos

import (
	"sync"

	"github.com/paxlock/paxlock/types"
)

// proposalRegistry tracks, per lock name, the last proposal counter this
// coordinator used and the highest fencing token it has computed. It is
// process-wide per coordinator: retries by the same coordinator always draw
// a strictly higher proposal number, and never re-emit a token at or below
// one they already computed, even when the outcome of a prior Accept round
// was never learned.
type proposalRegistry struct {
	mu         sync.Mutex
	counters   map[types.LockName]uint64
	tokenFloor map[types.LockName]types.FencingToken
}

func newProposalRegistry() *proposalRegistry {
	return &proposalRegistry{
		counters:   make(map[types.LockName]uint64),
		tokenFloor: make(map[types.LockName]types.FencingToken),
	}
}

// next returns a proposal number strictly greater than any this registry has
// handed out for the name, tagged with the client identity for tie-breaking
// across coordinators.
func (r *proposalRegistry) next(name types.LockName, clientID types.ClientID) types.ProposalNumber {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.counters[name]++
	return types.ProposalNumber{Counter: r.counters[name], ClientID: clientID}
}

// observe raises the counter for a name so the next draw exceeds a counter
// seen elsewhere (e.g., learned from a competing coordinator's rejection).
func (r *proposalRegistry) observe(name types.LockName, counter uint64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if counter > r.counters[name] {
		r.counters[name] = counter
	}
}

// reserveToken returns the token to propose: at least candidate, and
// strictly greater than any token previously reserved for the name. The
// result is recorded before it is returned.
func (r *proposalRegistry) reserveToken(name types.LockName, candidate types.FencingToken) types.FencingToken {
	r.mu.Lock()
	defer r.mu.Unlock()
	if floor := r.tokenFloor[name]; candidate <= floor {
		candidate = floor + 1
	}
	r.tokenFloor[name] = candidate
	return candidate
}
