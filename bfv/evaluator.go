package bfv

import (
	"math/big"

	"github.com/campaluca/ringcrypt/number"
	"github.com/campaluca/ringcrypt/ring"
)

// Evaluator performs homomorphic operations on ciphertexts (spec §4.6 Add,
// Mul, Relinearize).
type Evaluator struct {
	ctx *Context
	rlk *RelinearizationKey
}

func NewEvaluator(ctx *Context, rlk *RelinearizationKey) *Evaluator {
	return &Evaluator{ctx: ctx, rlk: rlk}
}

// Add returns a+b component-wise, padding the shorter operand with zero
// polynomials so both ciphertexts have the same number of elements.
func (e *Evaluator) Add(a, b Ciphertext) (Ciphertext, error) {
	n := len(a.Elems)
	if len(b.Elems) > n {
		n = len(b.Elems)
	}
	out := make([]ring.Rq, n)
	for i := 0; i < n; i++ {
		var ai, bi ring.Rq
		if i < len(a.Elems) {
			ai = a.Elems[i]
		} else {
			ai = e.ctx.RingQ.Zero()
		}
		if i < len(b.Elems) {
			bi = b.Elems[i]
		} else {
			bi = e.ctx.RingQ.Zero()
		}
		sum, err := ai.Add(bi)
		if err != nil {
			return Ciphertext{}, err
		}
		out[i] = sum
	}
	return Ciphertext{Elems: out}, nil
}

// Mul performs the naive (non-relinearized) tensor-product multiplication:
// for a=(a0,a1), b=(b0,b1) it returns the degree-2 ciphertext
// D0=a0*b0, D1=a0*b1+a1*b0, D2=a1*b1, each rescaled by P/Q with
// round-to-nearest (spec §4.6 Mul).
func (e *Evaluator) Mul(a, b Ciphertext) (Ciphertext, error) {
	if len(a.Elems) != 2 || len(b.Elems) != 2 {
		return Ciphertext{}, ErrNotRelinearized
	}
	rq := e.ctx.RingQ

	a0, err := rq.ApplyNTT(a.Elems[0])
	if err != nil {
		return Ciphertext{}, err
	}
	a1, err := rq.ApplyNTT(a.Elems[1])
	if err != nil {
		return Ciphertext{}, err
	}
	b0, err := rq.ApplyNTT(b.Elems[0])
	if err != nil {
		return Ciphertext{}, err
	}
	b1, err := rq.ApplyNTT(b.Elems[1])
	if err != nil {
		return Ciphertext{}, err
	}

	d0NTT, err := a0.Mul(b0)
	if err != nil {
		return Ciphertext{}, err
	}
	a0b1, err := a0.Mul(b1)
	if err != nil {
		return Ciphertext{}, err
	}
	a1b0, err := a1.Mul(b0)
	if err != nil {
		return Ciphertext{}, err
	}
	d1NTT, err := a0b1.Add(a1b0)
	if err != nil {
		return Ciphertext{}, err
	}
	d2NTT, err := a1.Mul(b1)
	if err != nil {
		return Ciphertext{}, err
	}

	d0, err := rq.FromNTT(d0NTT, true)
	if err != nil {
		return Ciphertext{}, err
	}
	d1, err := rq.FromNTT(d1NTT, true)
	if err != nil {
		return Ciphertext{}, err
	}
	d2, err := rq.FromNTT(d2NTT, true)
	if err != nil {
		return Ciphertext{}, err
	}

	r0, err := rescale(rq, d0, e.ctx.Params.P, e.ctx.Params.Q)
	if err != nil {
		return Ciphertext{}, err
	}
	r1, err := rescale(rq, d1, e.ctx.Params.P, e.ctx.Params.Q)
	if err != nil {
		return Ciphertext{}, err
	}
	r2, err := rescale(rq, d2, e.ctx.Params.P, e.ctx.Params.Q)
	if err != nil {
		return Ciphertext{}, err
	}
	return Ciphertext{Elems: []ring.Rq{r0, r1, r2}}, nil
}

// rescale multiplies each coefficient of x by p/q with round-to-nearest,
// reducing the result back into rq (used by Mul to bring D0/D1/D2 from the
// Δ²-scaled tensor product back to single Δ scaling, still mod Q).
func rescale(rq *ring.RqRing, x ring.Rq, p, q uint64) (ring.Rq, error) {
	rounded := rescaleCoeffs(x.Poly.Coeffs, p, q)
	out := make([]ring.Zq, len(rounded))
	for i, v := range rounded {
		out[i] = rq.Zq.Apply(v)
	}
	poly := ring.New(out, x.Poly.Var, ring.Schoolbook, false, rq.Zq.Zero())
	return rq.Apply(poly, false)
}

// rescaleCoeffs centered-lifts each coefficient mod q, scales by p/q with
// round-to-nearest-even, and returns the resulting signed integers. Shared
// by Evaluator.Mul (rescaling into RingQ) and Decryptor.Decrypt (rescaling
// into RingP) since the two differ only in which ring the result is applied
// into.
func rescaleCoeffs(coeffs []ring.Zq, p, q uint64) []int64 {
	pBig := new(big.Int).SetUint64(p)
	qBig := new(big.Int).SetUint64(q)
	half := q / 2
	out := make([]int64, len(coeffs))
	for i, c := range coeffs {
		lift := int64(c.Lift)
		if c.Lift > half {
			lift = int64(c.Lift) - int64(q)
		}
		numerator := new(big.Int).Mul(big.NewInt(lift), pBig)
		rat := number.NewRationalFromBig(new(big.Rat).SetFrac(numerator, qBig))
		out[i] = rat.Float(number.DefaultPrec).Round().Big().Int64()
	}
	return out
}

// Relinearize reduces a degree-2 ciphertext (post-Mul) back to degree 1 using
// the relinearization key's base-B decomposition of D2 (spec §4.6
// Relinearize).
func (e *Evaluator) Relinearize(ct Ciphertext) (Ciphertext, error) {
	if len(ct.Elems) != 3 {
		return ct, nil
	}
	if e.rlk == nil {
		return Ciphertext{}, ErrNoRelinKey
	}
	rq := e.ctx.RingQ

	digits, err := rq.BaseDecompose(ct.Elems[2], e.rlk.Base)
	if err != nil {
		return Ciphertext{}, err
	}
	if len(digits) > len(e.rlk.Pairs) {
		return Ciphertext{}, ring.ErrBadParameters
	}

	c0 := ct.Elems[0]
	c1 := ct.Elems[1]
	for i, digit := range digits {
		digitNTT, err := rq.ApplyNTT(digit)
		if err != nil {
			return Ciphertext{}, err
		}
		t0NTT, err := digitNTT.Mul(e.rlk.Pairs[i].R0)
		if err != nil {
			return Ciphertext{}, err
		}
		t1NTT, err := digitNTT.Mul(e.rlk.Pairs[i].R1)
		if err != nil {
			return Ciphertext{}, err
		}
		t0, err := rq.FromNTT(t0NTT, true)
		if err != nil {
			return Ciphertext{}, err
		}
		t1, err := rq.FromNTT(t1NTT, true)
		if err != nil {
			return Ciphertext{}, err
		}
		c0, err = c0.Add(t0)
		if err != nil {
			return Ciphertext{}, err
		}
		c1, err = c1.Add(t1)
		if err != nil {
			return Ciphertext{}, err
		}
	}
	return Ciphertext{Elems: []ring.Rq{c0, c1}}, nil
}
