// Package bfv implements a Fan-Vercauteren scale-invariant homomorphic
// encryption scheme over the educational polynomial quotient ring provided
// by package ring (spec §4.6).
package bfv

import (
	"fmt"

	"github.com/campaluca/ringcrypt/ring"
)

// DefaultRelinBase is the default base B for relinearisation-key
// decomposition (spec §4.6).
const DefaultRelinBase = 256

// Parameters are the scheme parameters: plaintext modulus P, ciphertext
// modulus Q, ring degree N (power of two), Gaussian width Sigma, and the
// relinearisation base (spec §3 "BFV parameters").
type Parameters struct {
	N     int
	P     uint64
	Q     uint64
	Sigma float64
	Base  uint64
}

// NewParameters validates and returns a Parameters value with Base set to
// DefaultRelinBase.
func NewParameters(n int, p, q uint64, sigma float64) (Parameters, error) {
	if n <= 0 || n&(n-1) != 0 {
		return Parameters{}, fmt.Errorf("bfv: error : N=%d must be a power of two", n)
	}
	if p < 2 {
		return Parameters{}, fmt.Errorf("bfv: error : plaintext modulus must be >= 2")
	}
	if q <= p {
		return Parameters{}, fmt.Errorf("bfv: error : ciphertext modulus must exceed plaintext modulus")
	}
	return Parameters{N: n, P: p, Q: q, Sigma: sigma, Base: DefaultRelinBase}, nil
}

// Delta returns floor(Q/P), the scaling factor lifting plaintexts into the
// ciphertext modulus (spec §3).
func (p Parameters) Delta() uint64 {
	return p.Q / p.P
}

// MaxPlaintextBits is the largest plaintext bit-length this scheme can
// represent (spec §4.6 ParameterOverflow).
func (p Parameters) MaxPlaintextBits() int {
	bits := 0
	for (uint64(1) << bits) < p.P {
		bits++
	}
	return bits
}

// Context bundles the parameters with the concrete Rq ring (Φ = x^N + 1)
// and NTT context the scheme's hot paths run over.
type Context struct {
	Params  Parameters
	RingQ   *ring.RqRing
	RingP   *ring.ZqRing
	Delta   ring.Zq
}

// NewContext builds the Rq ring Zq[x]/(x^N+1) with a negacyclic NTT context
// for Params.Q, matching spec §3's "all operands kept in evaluation basis
// for hot paths".
func NewContext(params Parameters) (*Context, error) {
	zq := ring.NewZqRing(params.Q)
	phi := ring.PhiXNPlus1(zq, params.N)
	rq := ring.NewRqRing(phi, true)
	nttCtx, err := ring.NewNTTContext(params.N, params.Q, ring.FindegNegacyclic, ring.NegativeConvolution)
	if err != nil {
		return nil, fmt.Errorf("bfv: error : building NTT context: %w", err)
	}
	rq = rq.WithNTT(nttCtx)
	return &Context{
		Params: params,
		RingQ:  rq,
		RingP:  ring.NewZqRing(params.P),
		Delta:  zq.ApplyUint(params.Delta()),
	}, nil
}
