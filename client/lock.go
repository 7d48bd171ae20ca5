package client

import (
	"fmt"

	"github.com/paxlock/paxlock/types"
)

// Lock is the handle returned by a successful acquisition. It carries the
// fencing token the holder must present on every protected operation.
//
// Holding a Lock is a claim, not a guarantee: a later client can always
// complete a higher-token round. The token is what protects the resource,
// so pass it along rather than trusting the handle's age.
type Lock struct {
	name     types.LockName
	token    types.FencingToken
	clientID types.ClientID
}

// Name returns the lock name this handle was acquired for.
func (l *Lock) Name() types.LockName { return l.name }

// Token returns the fencing token identifying this acquisition.
func (l *Lock) Token() types.FencingToken { return l.token }

// ClientID returns the identity the lock was acquired under.
func (l *Lock) ClientID() types.ClientID { return l.clientID }

// String implements fmt.Stringer.
func (l *Lock) String() string {
	return fmt.Sprintf("lock %q token %d held by %s", l.name, l.token, l.clientID)
}
