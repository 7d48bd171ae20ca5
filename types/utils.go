package types

import "fmt"

// Compare returns -1, 0 or 1 as pn sorts below, equal to or above other.
// The ordering is total: counters are compared first, then client IDs
// lexicographically to break ties between coordinators.
func (pn ProposalNumber) Compare(other ProposalNumber) int {
	switch {
	case pn.Counter < other.Counter:
		return -1
	case pn.Counter > other.Counter:
		return 1
	case pn.ClientID < other.ClientID:
		return -1
	case pn.ClientID > other.ClientID:
		return 1
	default:
		return 0
	}
}

// GreaterThan reports whether pn sorts strictly above other.
func (pn ProposalNumber) GreaterThan(other ProposalNumber) bool {
	return pn.Compare(other) > 0
}

// AtLeast reports whether pn sorts at or above other.
func (pn ProposalNumber) AtLeast(other ProposalNumber) bool {
	return pn.Compare(other) >= 0
}

// IsZero reports whether pn is the sentinel below all real proposals.
func (pn ProposalNumber) IsZero() bool {
	return pn.Counter == 0 && pn.ClientID == ""
}

// String helps with making proposal numbers readable in logs and debug output.
func (pn ProposalNumber) String() string {
	if pn.IsZero() {
		return "none"
	}
	return fmt.Sprintf("%d@%s", pn.Counter, pn.ClientID)
}

// QuorumSize returns the minimum number of nodes for majority agreement in a
// cluster of the given size. Both protocol phases evaluate quorum against the
// configured cluster size, never against the count of responding nodes; that
// is what keeps two partitioned coordinators from both claiming a majority.
func QuorumSize(clusterSize int) int {
	if clusterSize <= 0 {
		return 0
	}
	return (clusterSize / 2) + 1
}
