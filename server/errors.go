package server

import (
	"context"
	"errors"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	// ErrServerAlreadyStarted indicates an attempt to start a running server.
	ErrServerAlreadyStarted = errors.New("server: server already started")

	// ErrServerNotStarted indicates the server has not been started.
	ErrServerNotStarted = errors.New("server: server not started")

	// ErrMissingDependencies is returned when essential components are
	// missing during construction.
	ErrMissingDependencies = errors.New("server: missing required dependencies")

	// ErrConfigValidation is returned when the server configuration fails
	// validation checks.
	ErrConfigValidation = errors.New("server: config validation error")

	// ErrMissingLockName indicates a request without a lock name.
	ErrMissingLockName = errors.New("server: lock name is required")

	// ErrLockNameTooLong indicates a lock name above the accepted length.
	ErrLockNameTooLong = errors.New("server: lock name exceeds maximum length")

	// ErrMissingProposal indicates a request without a proposal number.
	ErrMissingProposal = errors.New("server: proposal number is required")

	// ErrMissingCoordinatorID indicates a proposal without a coordinator ID,
	// which would break the total order between competing coordinators.
	ErrMissingCoordinatorID = errors.New("server: coordinator ID is required")

	// ErrMissingOwner indicates an accept request without an owner.
	ErrMissingOwner = errors.New("server: owner is required")

	// ErrMissingToken indicates an accept request carrying the zero token,
	// which no successful round ever issues.
	ErrMissingToken = errors.New("server: fencing token is required")

	// ErrRateLimited indicates the request was rejected due to rate limiting.
	ErrRateLimited = errors.New("server: request rate limited")
)

// toGRPCError maps server errors onto gRPC status codes so callers can
// distinguish bad requests from overload from internal failures.
func toGRPCError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, ErrRateLimited):
		return status.Error(codes.ResourceExhausted, err.Error())
	case errors.Is(err, ErrMissingLockName),
		errors.Is(err, ErrLockNameTooLong),
		errors.Is(err, ErrMissingProposal),
		errors.Is(err, ErrMissingCoordinatorID),
		errors.Is(err, ErrMissingOwner),
		errors.Is(err, ErrMissingToken):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
