package fencing

import (
	"context"
	"sync"

	"github.com/paxlock/paxlock/logger"
	"github.com/paxlock/paxlock/types"
)

// GuardedStore is a write path protected by a Validator: every write must
// present the fencing token of the lock guarding its name, and writes with
// stale tokens are rejected before any effect is applied.
//
// The store itself is an in-memory record per lock name. It stands in for
// whatever resource the lock protects; the guard pattern, validate before
// apply, is the part that carries over to real resources.
type GuardedStore struct {
	mu      sync.RWMutex
	records map[types.LockName][]byte

	validator Validator
	logger    logger.Logger
}

// NewGuardedStore creates a store guarded by the given validator.
func NewGuardedStore(validator Validator, log logger.Logger) (*GuardedStore, error) {
	if validator == nil {
		return nil, ErrMissingDependencies
	}
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	return &GuardedStore{
		records:   make(map[types.LockName][]byte),
		validator: validator,
		logger:    log.WithComponent("store"),
	}, nil
}

// Apply writes the payload for a lock name if the token passes validation.
// On ErrStaleToken nothing is written and the caller must not retry with
// the same token.
func (s *GuardedStore) Apply(ctx context.Context, name types.LockName, payload []byte, token types.FencingToken) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.validator.Validate(name, token); err != nil {
		return err
	}

	s.mu.Lock()
	s.records[name] = append([]byte(nil), payload...)
	s.mu.Unlock()

	s.logger.Debugw("Applied guarded write", "lock", name, "token", token, "bytes", len(payload))
	return nil
}

// Read returns the last applied payload for a lock name.
func (s *GuardedStore) Read(name types.LockName) ([]byte, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	payload, ok := s.records[name]
	if !ok {
		return nil, false
	}
	return append([]byte(nil), payload...), true
}
