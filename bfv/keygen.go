package bfv

import (
	"github.com/campaluca/ringcrypt/ring"
	"github.com/campaluca/ringcrypt/xrand"
)

// KeyGenerator produces SecretKey, PublicKey and RelinearizationKey values
// for a Context (spec §4.6 KeyGen).
type KeyGenerator struct {
	ctx *Context
	src *xrand.Source
}

func NewKeyGenerator(ctx *Context) *KeyGenerator {
	return &KeyGenerator{ctx: ctx, src: xrand.Default()}
}

// GenSecretKey samples sk with ternary coefficients (spec §4.6 step 1).
func (g *KeyGenerator) GenSecretKey() SecretKey {
	sk := g.ctx.RingQ.TernaryRq(g.src, 1.0/3.0)
	return SecretKey{Value: sk}
}

// GenPublicKey samples a uniform a and Gaussian error e, and returns
// pk = (-(a*sk+e), a) in evaluation basis (spec §4.6 steps 2-4).
func (g *KeyGenerator) GenPublicKey(sk SecretKey) (PublicKey, error) {
	rq := g.ctx.RingQ
	a := rq.UniformRq(g.src)
	e := rq.GaussianRq(g.src, g.ctx.Params.Sigma)

	skNTT, err := rq.ApplyNTT(sk.Value)
	if err != nil {
		return PublicKey{}, err
	}
	aNTT, err := rq.ApplyNTT(a)
	if err != nil {
		return PublicKey{}, err
	}
	eNTT, err := rq.ApplyNTT(e)
	if err != nil {
		return PublicKey{}, err
	}
	aSk, err := aNTT.Mul(skNTT)
	if err != nil {
		return PublicKey{}, err
	}
	sum, err := aSk.Add(eNTT)
	if err != nil {
		return PublicKey{}, err
	}
	p0 := sum.Neg()
	return PublicKey{P0: p0, P1: aNTT}, nil
}

// GenRelinearizationKey builds one gadget-ciphertext pair per level i=0..L,
// where L is the number of base-B digits needed to span Q: for each level,
// it samples (a_i, e_i) and returns rlk_i = (B^i*sk^2 - (a_i*sk+e_i), a_i),
// all in evaluation basis (spec §4.6 "Relinearization key"). The full sk^2
// is encrypted at each level scaled by the gadget base power B^i, not a
// base-B digit of sk^2 itself (BaseDecompose is only used here to learn how
// many levels Q requires, via the length of its output).
func (g *KeyGenerator) GenRelinearizationKey(sk SecretKey) (RelinearizationKey, error) {
	rq := g.ctx.RingQ
	base := g.ctx.Params.Base
	skNTT, err := rq.ApplyNTT(sk.Value)
	if err != nil {
		return RelinearizationKey{}, err
	}
	sk2NTT, err := skNTT.Mul(skNTT)
	if err != nil {
		return RelinearizationKey{}, err
	}
	sk2, err := rq.FromNTT(sk2NTT, true)
	if err != nil {
		return RelinearizationKey{}, err
	}

	levels, err := rq.BaseDecompose(sk2, base)
	if err != nil {
		return RelinearizationKey{}, err
	}

	baseZq := rq.Zq.ApplyUint(base)
	bi := rq.Zq.One()
	pairs := make([]RelinPair, len(levels))
	for i := range levels {
		a := rq.UniformRq(g.src)
		e := rq.GaussianRq(g.src, g.ctx.Params.Sigma)

		aNTT, err := rq.ApplyNTT(a)
		if err != nil {
			return RelinearizationKey{}, err
		}
		eNTT, err := rq.ApplyNTT(e)
		if err != nil {
			return RelinearizationKey{}, err
		}

		scaledSk2, err := rq.Apply(sk2.Poly.ScalarMul(bi), false)
		if err != nil {
			return RelinearizationKey{}, err
		}
		scaledSk2NTT, err := rq.ApplyNTT(scaledSk2)
		if err != nil {
			return RelinearizationKey{}, err
		}

		aSk, err := aNTT.Mul(skNTT)
		if err != nil {
			return RelinearizationKey{}, err
		}
		sum, err := aSk.Add(eNTT)
		if err != nil {
			return RelinearizationKey{}, err
		}
		r0, err := scaledSk2NTT.Sub(sum)
		if err != nil {
			return RelinearizationKey{}, err
		}
		pairs[i] = RelinPair{R0: r0, R1: aNTT}

		bi = bi.Mul(baseZq)
	}
	return RelinearizationKey{Base: base, Pairs: pairs}, nil
}
