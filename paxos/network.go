package paxos

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/keepalive"
	"google.golang.org/grpc/status"

	"github.com/paxlock/paxlock/logger"
	"github.com/paxlock/paxlock/proto"
	"github.com/paxlock/paxlock/types"
)

// GRPCNetworkManagerOptions configures a gRPCNetworkManager.
type GRPCNetworkManagerOptions struct {
	MaxRecvMsgSize   int           // Maximum gRPC receive message size in bytes
	MaxSendMsgSize   int           // Maximum gRPC send message size in bytes
	DialTimeout      time.Duration // Timeout for establishing a connection to a peer
	KeepaliveTime    time.Duration // Ping interval when idle
	KeepaliveTimeout time.Duration // Timeout for waiting for ping ack
}

// DefaultGRPCNetworkManagerOptions returns options with sensible defaults.
func DefaultGRPCNetworkManagerOptions() GRPCNetworkManagerOptions {
	return GRPCNetworkManagerOptions{
		MaxRecvMsgSize:   DefaultMaxRecvMsgSize,
		MaxSendMsgSize:   DefaultMaxSendMsgSize,
		DialTimeout:      DefaultDialTimeout,
		KeepaliveTime:    DefaultKeepaliveTime,
		KeepaliveTimeout: DefaultKeepaliveTimeout,
	}
}

// gRPCNetworkManager implements NetworkManager using gRPC. It maintains one
// lazily established client connection per configured acceptor node and
// handles marshaling between the wire messages and the in-process types.
type gRPCNetworkManager struct {
	mu         sync.RWMutex // Protects access to peerClients map
	isShutdown *atomic.Bool

	opts GRPCNetworkManagerOptions

	peers       map[types.NodeID]types.PeerConfig
	peerClients map[types.NodeID]*peerConnection

	logger  logger.Logger
	metrics Metrics
	clock   Clock
}

// peerConnection encapsulates the state for a gRPC connection to a single node.
type peerConnection struct {
	mu         sync.Mutex // Protects conn and client fields during reconnect
	id         types.NodeID
	addr       string
	client     proto.PaxosLockClient
	conn       *grpc.ClientConn
	lastError  error
	lastActive time.Time
	connected  atomic.Bool
}

// NewGRPCNetworkManager creates a network manager for the given peer set.
// Connections are established on first use, not here.
func NewGRPCNetworkManager(
	peers map[types.NodeID]types.PeerConfig,
	opts GRPCNetworkManagerOptions,
	log logger.Logger,
	metrics Metrics,
	clock Clock,
) (NetworkManager, error) {
	if len(peers) == 0 {
		return nil, fmt.Errorf("%w: peer map cannot be empty", ErrConfigValidation)
	}
	if log == nil {
		log = logger.NewNoOpLogger()
	}
	if metrics == nil {
		metrics = NewNoOpMetrics()
	}
	if clock == nil {
		clock = NewStandardClock()
	}

	defaults := DefaultGRPCNetworkManagerOptions()
	if opts.MaxRecvMsgSize <= 0 {
		opts.MaxRecvMsgSize = defaults.MaxRecvMsgSize
	}
	if opts.MaxSendMsgSize <= 0 {
		opts.MaxSendMsgSize = defaults.MaxSendMsgSize
	}
	if opts.DialTimeout <= 0 {
		opts.DialTimeout = defaults.DialTimeout
	}
	if opts.KeepaliveTime <= 0 {
		opts.KeepaliveTime = defaults.KeepaliveTime
	}
	if opts.KeepaliveTimeout <= 0 {
		opts.KeepaliveTimeout = defaults.KeepaliveTimeout
	}

	return &gRPCNetworkManager{
		isShutdown:  new(atomic.Bool),
		opts:        opts,
		peers:       peers,
		peerClients: make(map[types.NodeID]*peerConnection),
		logger:      log.WithComponent("network"),
		metrics:     metrics,
		clock:       clock,
	}, nil
}

// SendPrepare sends a Prepare RPC to a target acceptor node.
func (nm *gRPCNetworkManager) SendPrepare(
	ctx context.Context,
	target types.NodeID,
	args *types.PrepareArgs,
) (*types.PrepareReply, error) {
	if nm.isShutdown.Load() {
		return nil, ErrShuttingDown
	}

	client, err := nm.getOrCreatePeerClient(ctx, target)
	if err != nil {
		return nil, fmt.Errorf("SendPrepare: failed to get client for peer %s: %w", target, err)
	}

	startTime := nm.clock.Now()

	req := &proto.PrepareRequest{
		LockName: string(args.LockName),
		Proposal: proposalToProto(args.Proposal),
	}

	resp, rpcErr := client.client.Prepare(ctx, req)
	latency := nm.clock.Since(startTime)
	nm.metrics.ObserveHistogram(
		"grpc_client_rpc_latency_seconds", latency.Seconds(),
		"rpc", "Prepare", "peer_id", string(target))

	if rpcErr != nil {
		nm.logger.Debugw("Prepare RPC failed",
			"target", target, "lock", args.LockName, "error", rpcErr, "latency", latency)
		client.lastError = rpcErr
		client.connected.Store(false)
		nm.metrics.IncCounter("grpc_client_rpc_failures_total",
			"rpc", "Prepare", "peer_id", string(target))
		return nil, formatGRPCError(rpcErr)
	}

	client.lastActive = nm.clock.Now()
	client.connected.Store(true)
	client.lastError = nil

	return &types.PrepareReply{
		Promise: types.Promise{
			Granted:       resp.Granted,
			PreviousToken: types.FencingToken(resp.PreviousToken),
		},
	}, nil
}

// SendAccept sends an Accept RPC to a target acceptor node.
func (nm *gRPCNetworkManager) SendAccept(
	ctx context.Context,
	target types.NodeID,
	args *types.AcceptArgs,
) (*types.AcceptReply, error) {
	if nm.isShutdown.Load() {
		return nil, ErrShuttingDown
	}

	client, err := nm.getOrCreatePeerClient(ctx, target)
	if err != nil {
		return nil, fmt.Errorf("SendAccept: failed to get client for peer %s: %w", target, err)
	}

	startTime := nm.clock.Now()

	req := &proto.AcceptRequest{
		LockName: string(args.LockName),
		Proposal: proposalToProto(args.Proposal),
		OwnerId:  string(args.Owner),
		Token:    uint64(args.Token),
	}

	resp, rpcErr := client.client.Accept(ctx, req)
	latency := nm.clock.Since(startTime)
	nm.metrics.ObserveHistogram(
		"grpc_client_rpc_latency_seconds", latency.Seconds(),
		"rpc", "Accept", "peer_id", string(target))

	if rpcErr != nil {
		nm.logger.Debugw("Accept RPC failed",
			"target", target, "lock", args.LockName, "error", rpcErr, "latency", latency)
		client.lastError = rpcErr
		client.connected.Store(false)
		nm.metrics.IncCounter("grpc_client_rpc_failures_total",
			"rpc", "Accept", "peer_id", string(target))
		return nil, formatGRPCError(rpcErr)
	}

	client.lastActive = nm.clock.Now()
	client.connected.Store(true)
	client.lastError = nil

	return &types.AcceptReply{Accepted: resp.Accepted}, nil
}

// Close shuts down the network manager and closes all peer connections.
func (nm *gRPCNetworkManager) Close() error {
	if !nm.isShutdown.CompareAndSwap(false, true) {
		return nil
	}

	nm.mu.Lock()
	defer nm.mu.Unlock()

	var firstErr error
	for id, pc := range nm.peerClients {
		pc.mu.Lock()
		if pc.conn != nil {
			if err := pc.conn.Close(); err != nil && firstErr == nil {
				firstErr = fmt.Errorf("closing connection to peer %s: %w", id, err)
			}
			pc.conn = nil
		}
		pc.connected.Store(false)
		pc.mu.Unlock()
	}
	nm.peerClients = make(map[types.NodeID]*peerConnection)

	nm.logger.Infow("Network manager closed")
	return firstErr
}

// getOrCreatePeerClient retrieves an active client connection, creating and
// connecting it if one doesn't exist or if the existing one is disconnected.
func (nm *gRPCNetworkManager) getOrCreatePeerClient(
	ctx context.Context,
	peerID types.NodeID,
) (*peerConnection, error) {
	nm.mu.RLock()
	client, exists := nm.peerClients[peerID]
	nm.mu.RUnlock()

	if exists && client.connected.Load() {
		return client, nil
	}

	nm.mu.Lock()
	defer nm.mu.Unlock()

	client, exists = nm.peerClients[peerID]
	if exists && client.connected.Load() {
		return client, nil // Another goroutine connected it
	}

	peerCfg, ok := nm.peers[peerID]
	if !ok {
		return nil, fmt.Errorf("peer %s not found in configuration: %w", peerID, ErrPeerNotFound)
	}

	if !exists {
		client = &peerConnection{id: peerID, addr: peerCfg.Address}
		nm.peerClients[peerID] = client
	}

	if err := nm.connectToPeerLocked(ctx, client); err != nil {
		return nil, fmt.Errorf("failed to connect to peer %s: %w", peerID, err)
	}

	return client, nil
}

// connectToPeerLocked establishes a gRPC connection. Assumes nm.mu is held.
func (nm *gRPCNetworkManager) connectToPeerLocked(
	ctx context.Context,
	client *peerConnection,
) error {
	client.mu.Lock()
	defer client.mu.Unlock()

	if client.conn != nil {
		_ = client.conn.Close()
	}

	dialKeepaliveParams := keepalive.ClientParameters{
		Time:                nm.opts.KeepaliveTime,
		Timeout:             nm.opts.KeepaliveTimeout,
		PermitWithoutStream: true,
	}

	dialOpts := []grpc.DialOption{
		grpc.WithTransportCredentials(
			insecure.NewCredentials(),
		), // TODO: Replace with secure credentials
		grpc.WithKeepaliveParams(dialKeepaliveParams),
		grpc.WithDefaultCallOptions(
			grpc.MaxCallRecvMsgSize(nm.opts.MaxRecvMsgSize),
			grpc.MaxCallSendMsgSize(nm.opts.MaxSendMsgSize),
		),
		grpc.WithContextDialer(func(ctx context.Context, addr string) (net.Conn, error) {
			var d net.Dialer
			return d.DialContext(ctx, "tcp", addr)
		}),
		grpc.WithDefaultServiceConfig(`{"loadBalancingPolicy":"pick_first"}`),
	}

	nm.logger.Debugw("Attempting to connect to peer",
		"peer_id", client.id, "address", client.addr, "timeout", nm.opts.DialTimeout)

	conn, err := grpc.NewClient(client.addr, dialOpts...)
	if err != nil {
		client.lastError = err
		client.connected.Store(false)
		nm.logger.Warnw("Failed to connect to peer",
			"peer_id", client.id, "address", client.addr, "error", err)
		return fmt.Errorf("failed to connect to peer %s at %s: %w", client.id, client.addr, err)
	}

	client.conn = conn
	client.client = proto.NewPaxosLockClient(conn)
	client.connected.Store(true)
	client.lastError = nil
	client.lastActive = nm.clock.Now()
	nm.logger.Infow("Successfully connected to peer", "peer_id", client.id, "address", client.addr)
	return nil
}

// proposalToProto converts a proposal number to its wire form.
func proposalToProto(p types.ProposalNumber) *proto.ProposalNumber {
	return &proto.ProposalNumber{
		Counter:       p.Counter,
		CoordinatorId: string(p.ClientID),
	}
}

// formatGRPCError maps transport errors to the package's sentinel errors
// where a stable meaning exists.
func formatGRPCError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		if errors.Is(err, context.DeadlineExceeded) {
			return ErrTimeout
		}
		if errors.Is(err, context.Canceled) {
			return context.Canceled
		}
		return fmt.Errorf("network error: %w", err)
	}

	switch st.Code() {
	case codes.DeadlineExceeded:
		return ErrTimeout
	case codes.Canceled:
		return context.Canceled
	case codes.Unavailable:
		return fmt.Errorf("peer unavailable: %w", err)
	case codes.Aborted:
		return ErrShuttingDown
	default:
		return err
	}
}
