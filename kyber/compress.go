package kyber

import (
	"math/big"

	"github.com/campaluca/ringcrypt/number"
	"github.com/campaluca/ringcrypt/ring"
)

// Compress maps each coefficient of x from [0, Q) down to [0, 2^d) via
// round(coeff * 2^d / Q) mod 2^d (spec §4.8 scenario 3).
func (c *Context) Compress(x ring.Rq, d int) ring.Rq {
	q := new(big.Int).SetUint64(c.Params.Q)
	twoD := new(big.Int).Lsh(big.NewInt(1), uint(d))

	out := make([]ring.Zq, len(x.Poly.Coeffs))
	modBase := ring.NewZqRing(twoD.Uint64())
	for i, coeff := range x.Poly.Coeffs {
		lift := new(big.Int).SetUint64(coeff.Lift)
		numerator := new(big.Int).Mul(lift, twoD)
		rat := number.NewRationalFromBig(new(big.Rat).SetFrac(numerator, q))
		rounded := rat.Float(number.DefaultPrec).Round()
		out[i] = modBase.ApplyUint(rounded.Big().Uint64() % twoD.Uint64())
	}
	poly := ring.New(out, x.Poly.Var, ring.Schoolbook, false, modBase.Zero())
	return ring.Rq{Poly: poly, Parent: nil, NTTForm: false}
}

// Decompress maps each coefficient of x from [0, 2^d) back up to [0, Q) via
// round(coeff * Q / 2^d), the approximate inverse of Compress (spec §4.8).
func (c *Context) Decompress(x ring.Rq, d int) ring.Rq {
	q := new(big.Int).SetUint64(c.Params.Q)
	twoD := new(big.Int).Lsh(big.NewInt(1), uint(d))

	out := make([]ring.Zq, len(x.Poly.Coeffs))
	zq := c.RingQ.Zq
	for i, coeff := range x.Poly.Coeffs {
		lift := new(big.Int).SetUint64(coeff.Lift)
		numerator := new(big.Int).Mul(lift, q)
		rat := number.NewRationalFromBig(new(big.Rat).SetFrac(numerator, twoD))
		rounded := rat.Float(number.DefaultPrec).Round()
		out[i] = zq.ApplyUint(rounded.Big().Uint64() % c.Params.Q)
	}
	poly := ring.New(out, x.Poly.Var, ring.Schoolbook, false, zq.Zero())
	return ring.Rq{Poly: poly, Parent: c.RingQ, NTTForm: false}
}
