package client

import "errors"

var (
	// ErrClientClosed indicates the client has been closed and can no
	// longer perform operations.
	ErrClientClosed = errors.New("client: client is closed")

	// ErrConfigValidation is returned when the client configuration fails
	// validation checks.
	ErrConfigValidation = errors.New("client: config validation error")

	// ErrAcquireFailed wraps the last protocol error after the retry
	// budget is exhausted.
	ErrAcquireFailed = errors.New("client: lock acquisition failed")
)
