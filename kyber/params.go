// Package kyber is a sketch of a Kyber-style lattice KEM/PKE, built directly
// on ring.Rq and ring.Vector/Matrix (spec §4.8, outside the optimized core).
// It abstracts what the original repeated three times — near-identical
// Kyber512/768/1024 constructors — into one parameterised ParameterSet.
package kyber

import (
	"fmt"

	"github.com/campaluca/ringcrypt/ring"
)

// ParameterSet collects the knobs that distinguish the Kyber security
// levels: module rank K, noise widths Eta1/Eta2, and ciphertext compression
// depths Du/Dv (spec §4.8 / §9 REDESIGN FLAGS).
type ParameterSet struct {
	Name string
	N    int
	Q    uint64
	K    int
	Eta1 int
	Eta2 int
	Du   int
	Dv   int
}

var (
	Kyber512 = ParameterSet{Name: "Kyber512", N: 256, Q: 3329, K: 2, Eta1: 3, Eta2: 2, Du: 10, Dv: 4}
	Kyber768 = ParameterSet{Name: "Kyber768", N: 256, Q: 3329, K: 3, Eta1: 2, Eta2: 2, Du: 10, Dv: 4}
	Kyber1024 = ParameterSet{Name: "Kyber1024", N: 256, Q: 3329, K: 4, Eta1: 2, Eta2: 2, Du: 11, Dv: 5}
)

// Context binds a ParameterSet to the concrete Rq ring it operates over.
type Context struct {
	Params ParameterSet
	RingQ  *ring.RqRing
}

// NewContext builds the ring Zq[x]/(x^N+1) for the given parameter set.
func NewContext(params ParameterSet) (*Context, error) {
	if params.N <= 0 || params.N&(params.N-1) != 0 {
		return nil, fmt.Errorf("kyber: error : N=%d must be a power of two", params.N)
	}
	zq := ring.NewZqRing(params.Q)
	phi := ring.PhiXNPlus1(zq, params.N)
	rq := ring.NewRqRing(phi, true)
	return &Context{Params: params, RingQ: rq}, nil
}
