package server

import (
	"fmt"

	"github.com/paxlock/paxlock/logger"
	pb "github.com/paxlock/paxlock/proto"
)

// RequestValidator validates incoming gRPC requests before they reach the
// acceptor. Each method returns an error if the request is invalid.
type RequestValidator interface {
	// ValidatePrepareRequest validates a PrepareRequest.
	ValidatePrepareRequest(req *pb.PrepareRequest) error

	// ValidateAcceptRequest validates an AcceptRequest.
	ValidateAcceptRequest(req *pb.AcceptRequest) error
}

// requestValidator implements the RequestValidator interface.
type requestValidator struct {
	logger logger.Logger
}

// NewRequestValidator creates a new default request validator.
func NewRequestValidator(logger logger.Logger) RequestValidator {
	return &requestValidator{
		logger: logger,
	}
}

func (v *requestValidator) ValidatePrepareRequest(req *pb.PrepareRequest) error {
	if err := v.validateLockName(req.LockName); err != nil {
		return err
	}
	return v.validateProposal(req.Proposal)
}

func (v *requestValidator) ValidateAcceptRequest(req *pb.AcceptRequest) error {
	if err := v.validateLockName(req.LockName); err != nil {
		return err
	}
	if err := v.validateProposal(req.Proposal); err != nil {
		return err
	}
	if req.OwnerId == "" {
		return ErrMissingOwner
	}
	if len(req.OwnerId) > MaxClientIDLength {
		return fmt.Errorf("%w: owner ID exceeds %d characters", ErrMissingOwner, MaxClientIDLength)
	}
	if req.Token == 0 {
		return ErrMissingToken
	}
	return nil
}

func (v *requestValidator) validateLockName(name string) error {
	if name == "" {
		return ErrMissingLockName
	}
	if len(name) > MaxLockNameLength {
		return ErrLockNameTooLong
	}
	return nil
}

func (v *requestValidator) validateProposal(p *pb.ProposalNumber) error {
	if p == nil || p.Counter == 0 {
		return ErrMissingProposal
	}
	if p.CoordinatorId == "" {
		return ErrMissingCoordinatorID
	}
	if len(p.CoordinatorId) > MaxClientIDLength {
		return fmt.Errorf("%w: coordinator ID exceeds %d characters", ErrMissingCoordinatorID, MaxClientIDLength)
	}
	return nil
}
