package fencing

import "errors"

var (
	// ErrStaleToken is returned when an operation presents a token at or
	// below the last token the validator accepted for the lock name. The
	// operation must not be retried with the same token; the caller has
	// lost ownership and needs to re-acquire the lock.
	ErrStaleToken = errors.New("fencing: stale token rejected")

	// ErrMissingDependencies is returned when essential components are
	// missing during construction.
	ErrMissingDependencies = errors.New("fencing: missing required dependencies")
)
