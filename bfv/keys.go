package bfv

import "github.com/campaluca/ringcrypt/ring"

// SecretKey holds sk in coefficient basis (ternary coefficients).
type SecretKey struct {
	Value ring.Rq
}

// PublicKey holds pk = (pk0, pk1) = (-(a*sk+e), a), stored in evaluation
// basis (spec §4.6 KeyGen).
type PublicKey struct {
	P0, P1 ring.Rq
}

// RelinearizationKey holds the L+1 pairs (rlk0_i, rlk1_i), one per base-Base
// digit level; pair i encrypts Base^i * sk^2 (spec §4.6 "Relinearization key").
type RelinearizationKey struct {
	Base  uint64
	Pairs []RelinPair
}

type RelinPair struct {
	R0, R1 ring.Rq
}
