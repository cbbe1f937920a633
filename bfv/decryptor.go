package bfv

import (
	"fmt"

	"github.com/campaluca/ringcrypt/ring"
)

// Decryptor recovers plaintext polynomials from ciphertexts under a
// SecretKey (spec §4.6 Decrypt).
type Decryptor struct {
	ctx *Context
	sk  SecretKey
}

func NewDecryptor(ctx *Context, sk SecretKey) *Decryptor {
	return &Decryptor{ctx: ctx, sk: sk}
}

// Decrypt computes d = c0 + c1*sk (+ c2*sk^2 for a not-yet-relinearized
// degree-2 ciphertext), centered-lifts each coefficient mod Q, rescales it by
// P/Q with round-to-nearest, and reduces the result into [0, P) (spec §4.6
// Decrypt).
func (d *Decryptor) Decrypt(ct Ciphertext) (ring.Rq, error) {
	if len(ct.Elems) < 2 || len(ct.Elems) > 3 {
		return ring.Rq{}, fmt.Errorf("bfv: error : unsupported ciphertext degree %d", ct.Degree())
	}
	rq := d.ctx.RingQ

	skNTT, err := rq.ApplyNTT(d.sk.Value)
	if err != nil {
		return ring.Rq{}, err
	}

	acc, err := rq.ApplyNTT(ct.Elems[0])
	if err != nil {
		return ring.Rq{}, err
	}
	c1NTT, err := rq.ApplyNTT(ct.Elems[1])
	if err != nil {
		return ring.Rq{}, err
	}
	term, err := c1NTT.Mul(skNTT)
	if err != nil {
		return ring.Rq{}, err
	}
	acc, err = acc.Add(term)
	if err != nil {
		return ring.Rq{}, err
	}

	if len(ct.Elems) == 3 {
		sk2NTT, err := skNTT.Mul(skNTT)
		if err != nil {
			return ring.Rq{}, err
		}
		c2NTT, err := rq.ApplyNTT(ct.Elems[2])
		if err != nil {
			return ring.Rq{}, err
		}
		term2, err := c2NTT.Mul(sk2NTT)
		if err != nil {
			return ring.Rq{}, err
		}
		acc, err = acc.Add(term2)
		if err != nil {
			return ring.Rq{}, err
		}
	}

	dCoef, err := rq.FromNTT(acc, true)
	if err != nil {
		return ring.Rq{}, err
	}

	rounded := rescaleCoeffs(dCoef.Poly.Coeffs, d.ctx.Params.P, d.ctx.Params.Q)
	out := make([]ring.Zq, len(rounded))
	for i, v := range rounded {
		out[i] = d.ctx.RingP.Apply(v)
	}
	poly := ring.New(out, dCoef.Poly.Var, ring.Schoolbook, false, d.ctx.RingP.Zero())
	return ring.Rq{Poly: poly, Parent: nil, NTTForm: false}, nil
}
