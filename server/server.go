package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"sync/atomic"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"google.golang.org/grpc"
	"google.golang.org/grpc/keepalive"

	"github.com/paxlock/paxlock/logger"
	"github.com/paxlock/paxlock/paxos"
	pb "github.com/paxlock/paxlock/proto"
	"github.com/paxlock/paxlock/types"
)

// paxosNodeServer hosts one acceptor behind the PaxosLock gRPC service.
// Incoming requests pass through rate limiting and validation before they
// reach the acceptor state machine.
type paxosNodeServer struct {
	pb.UnimplementedPaxosLockServer

	config    LockNodeServerConfig
	acceptor  paxos.Acceptor
	validator RequestValidator
	limiter   RateLimiter
	metrics   ServerMetrics
	logger    logger.Logger
	clock     paxos.Clock

	grpcServer    *grpc.Server
	listener      net.Listener
	metricsServer *http.Server

	started  atomic.Bool
	stopOnce sync.Once
}

// NewLockNodeServer creates a node server around the given acceptor.
// A nil logger, metrics, or clock falls back to the default implementations.
func NewLockNodeServer(
	cfg LockNodeServerConfig,
	acceptor paxos.Acceptor,
	log logger.Logger,
	metrics ServerMetrics,
	clock paxos.Clock,
) (LockNodeServer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if acceptor == nil {
		return nil, fmt.Errorf("%w: acceptor is required", ErrMissingDependencies)
	}
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	log = log.WithNodeID(cfg.NodeID).WithComponent("server")
	if metrics == nil {
		metrics = NewNoOpServerMetrics()
	}
	if clock == nil {
		clock = paxos.NewStandardClock()
	}

	s := &paxosNodeServer{
		config:    cfg,
		acceptor:  acceptor,
		validator: NewRequestValidator(log),
		metrics:   metrics,
		logger:    log,
		clock:     clock,
	}
	if cfg.EnableRateLimit {
		s.limiter = NewTokenBucketRateLimiter(cfg.RateLimit, cfg.RateLimitBurst, cfg.RateLimitWindow, log)
	}
	return s, nil
}

// Start binds the listener and begins serving in the background.
func (s *paxosNodeServer) Start(ctx context.Context) error {
	if !s.started.CompareAndSwap(false, true) {
		return ErrServerAlreadyStarted
	}

	listener, err := net.Listen("tcp", s.config.ListenAddress)
	if err != nil {
		s.started.Store(false)
		return fmt.Errorf("failed to listen on %s: %w", s.config.ListenAddress, err)
	}
	s.listener = listener

	serverKeepaliveParams := keepalive.ServerParameters{
		Time:    DefaultServerKeepaliveTime,
		Timeout: DefaultServerKeepaliveTimeout,
	}
	enforcementPolicy := keepalive.EnforcementPolicy{
		MinTime:             DefaultServerKeepaliveTime / 2,
		PermitWithoutStream: true,
	}

	s.grpcServer = grpc.NewServer(
		grpc.KeepaliveParams(serverKeepaliveParams),
		grpc.KeepaliveEnforcementPolicy(enforcementPolicy),
		grpc.MaxRecvMsgSize(s.config.MaxRequestSize),
		grpc.MaxSendMsgSize(s.config.MaxResponseSize),
	)
	pb.RegisterPaxosLockServer(s.grpcServer, s)

	go func() {
		if err := s.grpcServer.Serve(listener); err != nil {
			s.logger.Errorw("gRPC server stopped serving", "error", err)
		}
	}()

	if s.config.MetricsAddress != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		s.metricsServer = &http.Server{Addr: s.config.MetricsAddress, Handler: mux}
		go func() {
			if err := s.metricsServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				s.logger.Errorw("Metrics endpoint stopped serving", "error", err)
			}
		}()
	}

	s.logger.Infow("Node server started",
		"address", listener.Addr().String(), "metrics_address", s.config.MetricsAddress,
		"rate_limit_enabled", s.config.EnableRateLimit)
	return nil
}

// Stop drains in-flight RPCs and shuts the server down. If graceful
// shutdown exceeds the configured timeout or the context is done, the
// server is stopped hard.
func (s *paxosNodeServer) Stop(ctx context.Context) error {
	if !s.started.Load() {
		return ErrServerNotStarted
	}

	s.stopOnce.Do(func() {
		s.logger.Infow("Stopping node server")

		done := make(chan struct{})
		go func() {
			s.grpcServer.GracefulStop()
			close(done)
		}()

		timer := s.clock.NewTimer(s.config.ShutdownTimeout)
		defer timer.Stop()
		select {
		case <-done:
		case <-timer.Chan():
			s.logger.Warnw("Graceful shutdown timed out, forcing stop",
				"timeout", s.config.ShutdownTimeout)
			s.grpcServer.Stop()
		case <-ctx.Done():
			s.logger.Warnw("Shutdown context cancelled, forcing stop", "error", ctx.Err())
			s.grpcServer.Stop()
		}

		if s.metricsServer != nil {
			if err := s.metricsServer.Shutdown(context.Background()); err != nil {
				s.logger.Warnw("Failed to shut down metrics endpoint", "error", err)
			}
		}

		s.logger.Infow("Node server stopped")
	})
	return nil
}

// Prepare handles phase one requests from coordinators.
func (s *paxosNodeServer) Prepare(ctx context.Context, req *pb.PrepareRequest) (*pb.PrepareResponse, error) {
	const method = "Prepare"
	start := s.clock.Now()
	defer func() { s.metrics.ObserveRequestLatency(method, s.clock.Since(start)) }()

	if err := s.admit(method); err != nil {
		return nil, toGRPCError(err)
	}
	if err := s.validator.ValidatePrepareRequest(req); err != nil {
		s.metrics.IncrValidationError(method, validationReason(err))
		s.metrics.IncrGRPCRequest(method, false)
		return nil, toGRPCError(err)
	}

	reply, err := s.acceptor.Prepare(ctx, &types.PrepareArgs{
		LockName: types.LockName(req.LockName),
		Proposal: proposalFromProto(req.Proposal),
	})
	if err != nil {
		s.metrics.IncrGRPCRequest(method, false)
		return nil, toGRPCError(err)
	}

	if !reply.Promise.Granted {
		s.metrics.IncrPromiseRefused()
	}
	s.metrics.IncrGRPCRequest(method, true)

	return &pb.PrepareResponse{
		Granted:       reply.Promise.Granted,
		PreviousToken: uint64(reply.Promise.PreviousToken),
	}, nil
}

// Accept handles phase two requests from coordinators.
func (s *paxosNodeServer) Accept(ctx context.Context, req *pb.AcceptRequest) (*pb.AcceptResponse, error) {
	const method = "Accept"
	start := s.clock.Now()
	defer func() { s.metrics.ObserveRequestLatency(method, s.clock.Since(start)) }()

	if err := s.admit(method); err != nil {
		return nil, toGRPCError(err)
	}
	if err := s.validator.ValidateAcceptRequest(req); err != nil {
		s.metrics.IncrValidationError(method, validationReason(err))
		s.metrics.IncrGRPCRequest(method, false)
		return nil, toGRPCError(err)
	}

	reply, err := s.acceptor.Accept(ctx, &types.AcceptArgs{
		LockName: types.LockName(req.LockName),
		Proposal: proposalFromProto(req.Proposal),
		Owner:    types.ClientID(req.OwnerId),
		Token:    types.FencingToken(req.Token),
	})
	if err != nil {
		s.metrics.IncrGRPCRequest(method, false)
		return nil, toGRPCError(err)
	}

	if !reply.Accepted {
		s.metrics.IncrAcceptRefused()
	}
	s.metrics.IncrGRPCRequest(method, true)

	return &pb.AcceptResponse{Accepted: reply.Accepted}, nil
}

// admit applies rate limiting when enabled.
func (s *paxosNodeServer) admit(method string) error {
	if s.limiter == nil || s.limiter.Allow() {
		return nil
	}
	s.metrics.IncrRateLimited(method)
	s.metrics.IncrGRPCRequest(method, false)
	s.logger.Debugw("Request rate limited", "method", method)
	return ErrRateLimited
}

// proposalFromProto converts a wire proposal number. Validation guarantees
// the message is present by the time this runs.
func proposalFromProto(p *pb.ProposalNumber) types.ProposalNumber {
	return types.ProposalNumber{
		Counter:  p.Counter,
		ClientID: types.ClientID(p.CoordinatorId),
	}
}

// validationReason maps validation errors to stable metric label values.
func validationReason(err error) string {
	switch {
	case errors.Is(err, ErrMissingLockName):
		return "missing_lock_name"
	case errors.Is(err, ErrLockNameTooLong):
		return "lock_name_too_long"
	case errors.Is(err, ErrMissingProposal):
		return "missing_proposal"
	case errors.Is(err, ErrMissingCoordinatorID):
		return "missing_coordinator_id"
	case errors.Is(err, ErrMissingOwner):
		return "missing_owner"
	case errors.Is(err, ErrMissingToken):
		return "missing_token"
	default:
		return "invalid_request"
	}
}
