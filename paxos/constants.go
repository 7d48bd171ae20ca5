package paxos

import "time"

const (
	// RPCTimeout bounds each individual Prepare/Accept call in a fan-out.
	// A node that does not answer in time is counted as a non-vote.
	DefaultRPCTimeout = 2 * time.Second

	// DialTimeout bounds connection establishment to a peer.
	DefaultDialTimeout = 5 * time.Second

	// KeepaliveTime is the client ping interval when a peer connection is idle.
	DefaultKeepaliveTime = 30 * time.Second

	// KeepaliveTimeout is how long to wait for a keepalive ack before
	// considering the connection dead.
	DefaultKeepaliveTimeout = 10 * time.Second

	// MaxRecvMsgSize is the maximum gRPC receive message size in bytes.
	DefaultMaxRecvMsgSize = 4 * 1024 * 1024

	// MaxSendMsgSize is the maximum gRPC send message size in bytes.
	DefaultMaxSendMsgSize = 4 * 1024 * 1024
)
