package types

import "testing"

func TestProposalNumber_Compare(t *testing.T) {
	tests := []struct {
		name     string
		a        ProposalNumber
		b        ProposalNumber
		expected int
	}{
		{
			name:     "Lower counter sorts below",
			a:        ProposalNumber{Counter: 1, ClientID: "z"},
			b:        ProposalNumber{Counter: 2, ClientID: "a"},
			expected: -1,
		},
		{
			name:     "Higher counter sorts above",
			a:        ProposalNumber{Counter: 3, ClientID: "a"},
			b:        ProposalNumber{Counter: 2, ClientID: "z"},
			expected: 1,
		},
		{
			name:     "Equal counters tie-break on client ID",
			a:        ProposalNumber{Counter: 2, ClientID: "a"},
			b:        ProposalNumber{Counter: 2, ClientID: "b"},
			expected: -1,
		},
		{
			name:     "Equal counters, higher client ID sorts above",
			a:        ProposalNumber{Counter: 2, ClientID: "b"},
			b:        ProposalNumber{Counter: 2, ClientID: "a"},
			expected: 1,
		},
		{
			name:     "Identical proposals compare equal",
			a:        ProposalNumber{Counter: 2, ClientID: "a"},
			b:        ProposalNumber{Counter: 2, ClientID: "a"},
			expected: 0,
		},
		{
			name:     "Zero value sorts below any real proposal",
			a:        ProposalNumber{},
			b:        ProposalNumber{Counter: 1, ClientID: "a"},
			expected: -1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.a.Compare(tt.b)
			if result != tt.expected {
				t.Errorf("Compare(%v, %v) = %d, expected %d", tt.a, tt.b, result, tt.expected)
			}
		})
	}
}

func TestProposalNumber_OrderIsTotal(t *testing.T) {
	proposals := []ProposalNumber{
		{},
		{Counter: 1, ClientID: "a"},
		{Counter: 1, ClientID: "b"},
		{Counter: 2, ClientID: "a"},
	}

	for i, a := range proposals {
		for j, b := range proposals {
			got := a.Compare(b)
			switch {
			case i == j && got != 0:
				t.Errorf("Compare(%v, %v) = %d, expected 0", a, b, got)
			case i < j && got != -1:
				t.Errorf("Compare(%v, %v) = %d, expected -1", a, b, got)
			case i > j && got != 1:
				t.Errorf("Compare(%v, %v) = %d, expected 1", a, b, got)
			}
		}
	}
}

func TestProposalNumber_GreaterThanAndAtLeast(t *testing.T) {
	lo := ProposalNumber{Counter: 1, ClientID: "a"}
	hi := ProposalNumber{Counter: 1, ClientID: "b"}

	if !hi.GreaterThan(lo) {
		t.Errorf("Expected %v > %v", hi, lo)
	}
	if lo.GreaterThan(hi) {
		t.Errorf("Did not expect %v > %v", lo, hi)
	}
	if !hi.AtLeast(lo) || !hi.AtLeast(hi) {
		t.Errorf("AtLeast should hold for greater and equal proposals")
	}
	if lo.AtLeast(hi) {
		t.Errorf("Did not expect %v >= %v", lo, hi)
	}
}

func TestProposalNumber_String(t *testing.T) {
	if got := (ProposalNumber{}).String(); got != "none" {
		t.Errorf("Zero proposal String() = %q, expected %q", got, "none")
	}
	pn := ProposalNumber{Counter: 7, ClientID: "client-a"}
	if got := pn.String(); got != "7@client-a" {
		t.Errorf("String() = %q, expected %q", got, "7@client-a")
	}
}

func TestQuorumSize(t *testing.T) {
	tests := []struct {
		name        string
		clusterSize int
		expected    int
	}{
		{name: "Empty cluster has no quorum", clusterSize: 0, expected: 0},
		{name: "Negative size has no quorum", clusterSize: -3, expected: 0},
		{name: "Single node", clusterSize: 1, expected: 1},
		{name: "Two nodes", clusterSize: 2, expected: 2},
		{name: "Three nodes", clusterSize: 3, expected: 2},
		{name: "Four nodes", clusterSize: 4, expected: 3},
		{name: "Five nodes", clusterSize: 5, expected: 3},
		{name: "Seven nodes", clusterSize: 7, expected: 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := QuorumSize(tt.clusterSize)
			if result != tt.expected {
				t.Errorf("QuorumSize(%d) = %d, expected %d", tt.clusterSize, result, tt.expected)
			}
		})
	}
}

func TestQuorumSize_MajorityProperty(t *testing.T) {
	for n := 1; n <= 15; n++ {
		q := QuorumSize(n)
		if 2*q <= n {
			t.Errorf("QuorumSize(%d) = %d is not a strict majority", n, q)
		}
		if 2*(q-1) > n {
			t.Errorf("QuorumSize(%d) = %d is larger than necessary", n, q)
		}
	}
}
