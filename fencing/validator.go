package fencing

import (
	"fmt"
	"sync"

	"github.com/paxlock/paxlock/logger"
	"github.com/paxlock/paxlock/types"
)

// Validator is the checkpoint in front of a resource a lock protects. It
// tracks, per lock name, the highest fencing token it has accepted and
// rejects any operation presenting a token at or below it.
//
// The check-and-advance is a single serial step per lock name, so a paused
// or delayed lock holder that resumes with an old token is stopped at the
// point of effect regardless of what it believes about its ownership.
//
// Implementations must be safe for concurrent use.
type Validator interface {
	// Validate admits the token if it is strictly greater than the last
	// accepted token for the name, recording it as the new high-water mark.
	// A stale token yields ErrStaleToken.
	Validate(name types.LockName, token types.FencingToken) error

	// LastAccepted returns the highest token accepted for a lock name, or
	// NoToken if none has been accepted yet.
	LastAccepted(name types.LockName) types.FencingToken
}

// tokenValidator implements Validator with one mutex-guarded high-water mark
// map. A single lock suffices: validation is a map lookup and a compare, and
// contention across names is not a concern at the rates a lock guard sees.
type tokenValidator struct {
	mu           sync.Mutex
	lastAccepted map[types.LockName]types.FencingToken

	logger  logger.Logger
	metrics Metrics
}

// NewValidator creates a validator with no accepted tokens. A nil logger or
// metrics falls back to the no-op implementations.
func NewValidator(log logger.Logger, metrics Metrics) Validator {
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	if metrics == nil {
		metrics = NewNoOpMetrics()
	}
	return &tokenValidator{
		lastAccepted: make(map[types.LockName]types.FencingToken),
		logger:       log.WithComponent("fencing"),
		metrics:      metrics,
	}
}

func (v *tokenValidator) Validate(name types.LockName, token types.FencingToken) error {
	v.mu.Lock()
	last := v.lastAccepted[name]
	accepted := token > last
	if accepted {
		v.lastAccepted[name] = token
	}
	v.mu.Unlock()

	if !accepted {
		v.logger.Warnw("Rejected stale fencing token",
			"lock", name, "token", token, "last_accepted", last)
		v.metrics.ObserveTokenRejected(name, token)
		return fmt.Errorf("%w: token %d is not greater than %d for lock %q",
			ErrStaleToken, token, last, name)
	}

	v.logger.Debugw("Accepted fencing token",
		"lock", name, "token", token, "previous", last)
	v.metrics.ObserveTokenAccepted(name, token)
	return nil
}

func (v *tokenValidator) LastAccepted(name types.LockName) types.FencingToken {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.lastAccepted[name]
}
