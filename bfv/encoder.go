package bfv

import (
	"fmt"

	"github.com/campaluca/ringcrypt/ring"
)

// Encoder converts integers mod P to and from the plaintext polynomial basis
// consumed by Encryptor/Decryptor (spec §4.6 "Convert m to a plaintext
// polynomial M by binary expansion").
type Encoder struct {
	ctx *Context
}

func NewEncoder(ctx *Context) *Encoder { return &Encoder{ctx: ctx} }

// Encode expands |m| into bits, zero-padded to N, reduced mod Q (spec §4.6
// step 1). m must fit in Params.MaxPlaintextBits(), else ErrParameterOverflow.
func (e *Encoder) Encode(m int64) (ring.Rq, error) {
	maxBits := e.ctx.Params.MaxPlaintextBits()
	abs := m
	if abs < 0 {
		abs = -abs
	}
	if abs>>uint(maxBits) != 0 {
		return ring.Rq{}, fmt.Errorf("bfv: %w: %d exceeds %d representable bits", ErrParameterOverflow, m, maxBits)
	}
	n := e.ctx.Params.N
	coeffs := make([]ring.Zq, n)
	zq := e.ctx.RingQ.Zq
	for i := 0; i < n; i++ {
		if i < maxBits && (abs>>uint(i))&1 == 1 {
			coeffs[i] = zq.One()
		} else {
			coeffs[i] = zq.Zero()
		}
	}
	poly := ring.New(coeffs, "x", ring.Schoolbook, false, zq.Zero())
	return e.ctx.RingQ.Apply(poly, false)
}

// Decode interprets an Rq element's coefficients (expected in {0, ..., P-1}
// after centered-lift recombination) as a base-2 expansion, recovering the
// signed integer it encodes (spec §4.6 Decrypt).
func (e *Encoder) Decode(p ring.Rq) int64 {
	maxBits := e.ctx.Params.MaxPlaintextBits()
	var acc int64
	neg := false
	for i := 0; i < maxBits && i < len(p.Poly.Coeffs); i++ {
		bit := centeredMod2(p.Poly.Coeff(i).Lift, e.ctx.Params.P)
		if bit < 0 {
			neg = true
			bit = -bit
		}
		acc += bit << uint(i)
	}
	if neg {
		return -acc
	}
	return acc
}

// centeredMod2 reduces v mod p and returns its centered representative in
// (-p/2, p/2]. Encode stores only |m|, so a negative plaintext decodes to its
// absolute value.
func centeredMod2(v, p uint64) int64 {
	v %= p
	if v > p/2 {
		return int64(v) - int64(p)
	}
	return int64(v)
}
