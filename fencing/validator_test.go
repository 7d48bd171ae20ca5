package fencing

import (
	"context"
	"sync"
	"testing"

	"github.com/paxlock/paxlock/testutil"
	"github.com/paxlock/paxlock/types"
)

func TestValidatorAcceptsStrictlyIncreasingTokens(t *testing.T) {
	v := NewValidator(nil, nil)

	testutil.AssertNoError(t, v.Validate("orders", 1))
	testutil.AssertNoError(t, v.Validate("orders", 2))
	testutil.AssertNoError(t, v.Validate("orders", 10))

	testutil.AssertEqual(t, types.FencingToken(10), v.LastAccepted("orders"))
}

func TestValidatorRejectsStaleTokens(t *testing.T) {
	v := NewValidator(nil, nil)

	testutil.AssertNoError(t, v.Validate("orders", 5))

	tests := []struct {
		name  string
		token types.FencingToken
	}{
		{"equal token", 5},
		{"lower token", 4},
		{"zero token", types.NoToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate("orders", tt.token)
			testutil.AssertErrorIs(t, err, ErrStaleToken)
		})
	}

	// Rejections must not move the high-water mark.
	testutil.AssertEqual(t, types.FencingToken(5), v.LastAccepted("orders"))
}

func TestValidatorRejectsZeroTokenOnFreshName(t *testing.T) {
	v := NewValidator(nil, nil)

	// NoToken never validates: no lock round ever issues it.
	testutil.AssertErrorIs(t, v.Validate("orders", types.NoToken), ErrStaleToken)
}

func TestValidatorNamesAreIndependent(t *testing.T) {
	v := NewValidator(nil, nil)

	testutil.AssertNoError(t, v.Validate("orders", 7))
	testutil.AssertNoError(t, v.Validate("payments", 1))

	testutil.AssertEqual(t, types.FencingToken(7), v.LastAccepted("orders"))
	testutil.AssertEqual(t, types.FencingToken(1), v.LastAccepted("payments"))
	testutil.AssertEqual(t, types.NoToken, v.LastAccepted("never-seen"))
}

func TestValidatorStaleTokenRejectedAcrossGoroutines(t *testing.T) {
	// The delayed-holder scenario: T1 was issued before T2, but T2 reaches
	// the validator first, from a different goroutine. T1 must be rejected
	// no matter where it is presented from.
	v := NewValidator(nil, nil)

	t1 := types.FencingToken(1)
	t2 := types.FencingToken(2)

	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := v.Validate("orders", t2); err != nil {
			t.Errorf("fresh token rejected: %v", err)
		}
	}()
	<-done

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		testutil.AssertErrorIs(t, v.Validate("orders", t1), ErrStaleToken)
	}()
	wg.Wait()
}

func TestValidatorConcurrentValidationAdmitsEachTokenOnce(t *testing.T) {
	v := NewValidator(nil, nil)

	const goroutines = 40
	accepted := make(chan types.FencingToken, goroutines)

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(token types.FencingToken) {
			defer wg.Done()
			if err := v.Validate("orders", token); err == nil {
				accepted <- token
			}
		}(types.FencingToken(1 + i%10))
	}
	wg.Wait()
	close(accepted)

	seen := make(map[types.FencingToken]bool)
	for token := range accepted {
		testutil.AssertFalse(t, seen[token], "token %d accepted twice", token)
		seen[token] = true
	}
	testutil.AssertEqual(t, types.FencingToken(10), v.LastAccepted("orders"))
}

func TestGuardedStoreAppliesOnlyFreshTokens(t *testing.T) {
	store, err := NewGuardedStore(NewValidator(nil, nil), nil)
	testutil.RequireNoError(t, err)

	ctx := context.Background()

	testutil.AssertNoError(t, store.Apply(ctx, "orders", []byte("written by A"), 1))
	testutil.AssertNoError(t, store.Apply(ctx, "orders", []byte("written by B"), 2))

	// A's delayed write arrives after B's and must leave no trace.
	err = store.Apply(ctx, "orders", []byte("stale write by A"), 1)
	testutil.AssertErrorIs(t, err, ErrStaleToken)

	payload, ok := store.Read("orders")
	testutil.AssertTrue(t, ok)
	testutil.AssertEqual(t, "written by B", string(payload))
}

func TestGuardedStoreReadUnknownName(t *testing.T) {
	store, err := NewGuardedStore(NewValidator(nil, nil), nil)
	testutil.RequireNoError(t, err)

	_, ok := store.Read("never-seen")
	testutil.AssertFalse(t, ok)
}

func TestGuardedStoreRequiresValidator(t *testing.T) {
	_, err := NewGuardedStore(nil, nil)
	testutil.AssertErrorIs(t, err, ErrMissingDependencies)
}

func TestGuardedStoreHonorsCancelledContext(t *testing.T) {
	store, err := NewGuardedStore(NewValidator(nil, nil), nil)
	testutil.RequireNoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err = store.Apply(ctx, "orders", []byte("payload"), 1)
	testutil.AssertErrorIs(t, err, context.Canceled)
}
