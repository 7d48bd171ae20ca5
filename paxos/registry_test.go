package paxos

import (
	"sync"
	"testing"

	"github.com/paxlock/paxlock/testutil"
	"github.com/paxlock/paxlock/types"
)

func TestRegistryNextIsStrictlyIncreasingPerName(t *testing.T) {
	r := newProposalRegistry()

	var last uint64
	for i := 0; i < 10; i++ {
		p := r.next("orders", "client-a")
		testutil.AssertTrue(t, p.Counter > last, "counter must strictly increase")
		testutil.AssertEqual(t, types.ClientID("client-a"), p.ClientID)
		last = p.Counter
	}

	// Independent name starts its own sequence.
	p := r.next("payments", "client-a")
	testutil.AssertEqual(t, uint64(1), p.Counter)
}

func TestRegistryObserveRaisesCounter(t *testing.T) {
	r := newProposalRegistry()

	r.next("orders", "client-a") // counter 1
	r.observe("orders", 40)

	p := r.next("orders", "client-a")
	testutil.AssertEqual(t, uint64(41), p.Counter)

	// Observing a lower counter must not move the sequence backwards.
	r.observe("orders", 5)
	p = r.next("orders", "client-a")
	testutil.AssertEqual(t, uint64(42), p.Counter)
}

func TestRegistryReserveTokenEnforcesFloor(t *testing.T) {
	r := newProposalRegistry()

	testutil.AssertEqual(t, types.FencingToken(1), r.reserveToken("orders", 1))

	// A candidate at or below a previously reserved token is bumped above it,
	// covering the case where an accept round failed and the retry computed
	// the same candidate from stale promises.
	testutil.AssertEqual(t, types.FencingToken(2), r.reserveToken("orders", 1))
	testutil.AssertEqual(t, types.FencingToken(3), r.reserveToken("orders", 2))

	// A higher candidate passes through and raises the floor.
	testutil.AssertEqual(t, types.FencingToken(10), r.reserveToken("orders", 10))
	testutil.AssertEqual(t, types.FencingToken(11), r.reserveToken("orders", 4))

	// Other names have their own floors.
	testutil.AssertEqual(t, types.FencingToken(1), r.reserveToken("payments", 1))
}

func TestRegistryConcurrentNextYieldsUniqueCounters(t *testing.T) {
	r := newProposalRegistry()

	const goroutines = 50
	counters := make(chan uint64, goroutines)

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			counters <- r.next("orders", "client-a").Counter
		}()
	}
	wg.Wait()
	close(counters)

	seen := make(map[uint64]bool, goroutines)
	for c := range counters {
		testutil.AssertFalse(t, seen[c], "duplicate proposal counter issued")
		seen[c] = true
	}
	testutil.AssertEqual(t, goroutines, len(seen))
}
