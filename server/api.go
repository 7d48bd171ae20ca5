package server

import "context"

// LockNodeServer is the network-facing surface of one acceptor node. It
// hosts the Prepare/Accept RPC endpoints over gRPC and owns the lifecycle
// of the listener and the optional metrics endpoint.
//
// A node only answers; it never initiates communication with its peers.
type LockNodeServer interface {
	// Start binds the listener and begins serving RPCs. It returns once the
	// server is accepting connections; serving continues in the background.
	Start(ctx context.Context) error

	// Stop gracefully shuts down the server, draining in-flight RPCs up to
	// the configured shutdown timeout before closing connections.
	Stop(ctx context.Context) error
}
