package paxos

import (
	"fmt"
	"sort"
	"time"

	"github.com/paxlock/paxlock/types"
)

// CoordinatorConfig configures a Coordinator.
type CoordinatorConfig struct {
	// Peers is the fixed set of acceptor nodes forming the cluster.
	// Membership cannot change after construction.
	Peers map[types.NodeID]types.PeerConfig

	// RPCTimeout bounds each individual Prepare/Accept call in a fan-out.
	// Defaults to DefaultRPCTimeout when zero.
	RPCTimeout time.Duration
}

// Validate checks the configuration for structural errors.
func (c *CoordinatorConfig) Validate() error {
	if len(c.Peers) == 0 {
		return fmt.Errorf("%w: at least one peer is required", ErrConfigValidation)
	}
	for id, peer := range c.Peers {
		if id == "" {
			return fmt.Errorf("%w: peer ID cannot be empty", ErrConfigValidation)
		}
		if peer.Address == "" {
			return fmt.Errorf("%w: address for peer %s cannot be empty", ErrConfigValidation, id)
		}
	}
	if c.RPCTimeout < 0 {
		return fmt.Errorf("%w: RPC timeout cannot be negative", ErrConfigValidation)
	}
	return nil
}

// ClusterView is the fixed set of acceptor nodes and the quorum size
// computed from it. It is constructed once at coordinator startup and
// never mutated.
type ClusterView struct {
	nodes  []types.NodeID
	quorum int
}

// NewClusterView builds a view over the configured peers. Node order is
// stable (sorted by ID) so fan-outs and logs are deterministic.
func NewClusterView(peers map[types.NodeID]types.PeerConfig) ClusterView {
	nodes := make([]types.NodeID, 0, len(peers))
	for id := range peers {
		nodes = append(nodes, id)
	}
	sort.Slice(nodes, func(i, j int) bool { return nodes[i] < nodes[j] })
	return ClusterView{
		nodes:  nodes,
		quorum: types.QuorumSize(len(nodes)),
	}
}

// Nodes returns the member node IDs. Callers must not modify the result.
func (v ClusterView) Nodes() []types.NodeID { return v.nodes }

// Size returns the configured cluster size.
func (v ClusterView) Size() int { return len(v.nodes) }

// Quorum returns the majority threshold for the configured cluster size.
// Both phases evaluate against this value, never against the number of
// nodes that happened to respond.
func (v ClusterView) Quorum() int { return v.quorum }
