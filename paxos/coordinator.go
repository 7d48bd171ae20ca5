package paxos

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/paxlock/paxlock/logger"
	"github.com/paxlock/paxlock/types"
)

// coordinator implements Coordinator over a fixed cluster view. It holds no
// lock state of its own: everything it needs to issue a correct token comes
// back in the Prepare replies, plus a local floor that keeps tokens strictly
// increasing across its own retries.
type coordinator struct {
	view     ClusterView
	network  NetworkManager
	registry *proposalRegistry

	clientID   types.ClientID
	rpcTimeout time.Duration

	logger  logger.Logger
	metrics Metrics
	clock   Clock
}

// NewCoordinator creates a coordinator for the configured cluster. The
// client ID tags every proposal number this coordinator draws, breaking ties
// between concurrent coordinators deterministically.
func NewCoordinator(
	cfg CoordinatorConfig,
	clientID types.ClientID,
	network NetworkManager,
	log logger.Logger,
	metrics Metrics,
	clock Clock,
) (Coordinator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if clientID == "" {
		return nil, fmt.Errorf("%w: client ID is required", ErrConfigValidation)
	}
	if network == nil {
		return nil, fmt.Errorf("%w: network manager is required", ErrMissingDependencies)
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
	timeout := cfg.RPCTimeout
	if timeout == 0 {
		timeout = DefaultRPCTimeout
	}

	return &coordinator{
		view:       NewClusterView(cfg.Peers),
		network:    network,
		registry:   newProposalRegistry(),
		clientID:   clientID,
		rpcTimeout: timeout,
		logger:     log.WithComponent("coordinator"),
		metrics:    metrics,
		clock:      clock,
	}, nil
}

// TryAcquire runs one two-phase round for the lock name. Unreachable or slow
// nodes count as refusals; quorum is always measured against the configured
// cluster size, so a coordinator on the minority side of a partition can
// never succeed.
func (c *coordinator) TryAcquire(ctx context.Context, name types.LockName, clientID types.ClientID) (types.FencingToken, error) {
	if err := ctx.Err(); err != nil {
		return types.NoToken, err
	}
	if clientID == "" {
		clientID = c.clientID
	}

	proposal := c.registry.next(name, c.clientID)
	quorum := c.view.Quorum()
	log := c.logger.WithLockName(name)

	log.Debugw("Starting acquisition round",
		"proposal", proposal, "owner", clientID,
		"cluster_size", c.view.Size(), "quorum", quorum)

	prepareStart := c.clock.Now()
	promises := c.broadcastPrepare(ctx, &types.PrepareArgs{LockName: name, Proposal: proposal})

	granted := 0
	highest := types.NoToken
	for _, p := range promises {
		if p.Granted {
			granted++
		}
		// Refused promises still teach us about tokens already out there.
		if p.PreviousToken > highest {
			highest = p.PreviousToken
		}
	}
	prepareQuorum := granted >= quorum
	c.metrics.ObservePrepareRound(granted, prepareQuorum, c.clock.Since(prepareStart))

	if !prepareQuorum {
		log.Infow("Prepare phase failed to reach quorum",
			"proposal", proposal, "granted", granted, "needed", quorum)
		return types.NoToken, ErrNoQuorumPrepare
	}

	token := c.registry.reserveToken(name, highest+1)

	log.Debugw("Prepare quorum reached",
		"proposal", proposal, "granted", granted, "token", token)

	acceptStart := c.clock.Now()
	accepted := c.broadcastAccept(ctx, &types.AcceptArgs{
		LockName: name,
		Proposal: proposal,
		Owner:    clientID,
		Token:    token,
	})
	acceptQuorum := accepted >= quorum
	c.metrics.ObserveAcceptRound(accepted, acceptQuorum, c.clock.Since(acceptStart))

	if !acceptQuorum {
		log.Infow("Accept phase failed to reach quorum",
			"proposal", proposal, "accepted", accepted, "needed", quorum)
		return types.NoToken, ErrNoQuorumAccept
	}

	c.metrics.ObserveTokenIssued(name, token)
	log.Infow("Lock acquired",
		"proposal", proposal, "owner", clientID, "token", token)
	return token, nil
}

// broadcastPrepare sends Prepare to every configured node in parallel and
// returns the replies that arrived. Errors and timeouts simply produce no
// reply; the caller treats missing replies as refusals.
func (c *coordinator) broadcastPrepare(ctx context.Context, args *types.PrepareArgs) []types.Promise {
	nodes := c.view.Nodes()
	replies := make(chan types.Promise, len(nodes))

	var wg sync.WaitGroup
	for _, id := range nodes {
		wg.Add(1)
		go func(target types.NodeID) {
			defer wg.Done()
			callCtx, cancel := context.WithTimeout(ctx, c.rpcTimeout)
			defer cancel()

			reply, err := c.network.SendPrepare(callCtx, target, args)
			if err != nil {
				c.logger.Debugw("Prepare call failed",
					"target", target, "lock", args.LockName, "error", err)
				return
			}
			replies <- reply.Promise
		}(id)
	}
	wg.Wait()
	close(replies)

	collected := make([]types.Promise, 0, len(nodes))
	for p := range replies {
		collected = append(collected, p)
	}
	return collected
}

// broadcastAccept sends Accept to every configured node in parallel and
// returns the number of acknowledgements.
func (c *coordinator) broadcastAccept(ctx context.Context, args *types.AcceptArgs) int {
	nodes := c.view.Nodes()
	acks := make(chan struct{}, len(nodes))

	var wg sync.WaitGroup
	for _, id := range nodes {
		wg.Add(1)
		go func(target types.NodeID) {
			defer wg.Done()
			callCtx, cancel := context.WithTimeout(ctx, c.rpcTimeout)
			defer cancel()

			reply, err := c.network.SendAccept(callCtx, target, args)
			if err != nil {
				c.logger.Debugw("Accept call failed",
					"target", target, "lock", args.LockName, "error", err)
				return
			}
			if reply.Accepted {
				acks <- struct{}{}
			}
		}(id)
	}
	wg.Wait()
	close(acks)

	return len(acks)
}
