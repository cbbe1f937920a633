package bfv

import (
	"github.com/campaluca/ringcrypt/ring"
	"github.com/campaluca/ringcrypt/xrand"
)

// Encryptor encrypts plaintext polynomials under a PublicKey (spec §4.6
// Encrypt).
type Encryptor struct {
	ctx *Context
	pk  PublicKey
	src *xrand.Source
}

func NewEncryptor(ctx *Context, pk PublicKey) *Encryptor {
	return &Encryptor{ctx: ctx, pk: pk, src: xrand.Default()}
}

// Encrypt samples u <- ternary, e1, e2 <- Gaussian and returns
// c0 = pk0*u + e1 + Delta*M, c1 = pk1*u + e2, in coefficient basis.
func (e *Encryptor) Encrypt(m ring.Rq) (Ciphertext, error) {
	rq := e.ctx.RingQ

	u := rq.TernaryRq(e.src, 1.0/3.0)
	e1 := rq.GaussianRq(e.src, e.ctx.Params.Sigma)
	e2 := rq.GaussianRq(e.src, e.ctx.Params.Sigma)

	uNTT, err := rq.ApplyNTT(u)
	if err != nil {
		return Ciphertext{}, err
	}
	e1NTT, err := rq.ApplyNTT(e1)
	if err != nil {
		return Ciphertext{}, err
	}
	e2NTT, err := rq.ApplyNTT(e2)
	if err != nil {
		return Ciphertext{}, err
	}

	deltaM, err := scalePlaintext(rq, m, e.ctx.Delta)
	if err != nil {
		return Ciphertext{}, err
	}
	deltaMNTT, err := rq.ApplyNTT(deltaM)
	if err != nil {
		return Ciphertext{}, err
	}

	p0u, err := e.pk.P0.Mul(uNTT)
	if err != nil {
		return Ciphertext{}, err
	}
	c0NTT, err := p0u.Add(e1NTT)
	if err != nil {
		return Ciphertext{}, err
	}
	c0NTT, err = c0NTT.Add(deltaMNTT)
	if err != nil {
		return Ciphertext{}, err
	}

	p1u, err := e.pk.P1.Mul(uNTT)
	if err != nil {
		return Ciphertext{}, err
	}
	c1NTT, err := p1u.Add(e2NTT)
	if err != nil {
		return Ciphertext{}, err
	}

	c0, err := rq.FromNTT(c0NTT, true)
	if err != nil {
		return Ciphertext{}, err
	}
	c1, err := rq.FromNTT(c1NTT, true)
	if err != nil {
		return Ciphertext{}, err
	}
	return Ciphertext{Elems: []ring.Rq{c0, c1}}, nil
}

// scalePlaintext multiplies m's coefficients by delta.Lift mod Q, returning
// a coefficient-basis Rq element.
func scalePlaintext(rq *ring.RqRing, m ring.Rq, delta ring.Zq) (ring.Rq, error) {
	coeffs := make([]ring.Zq, len(m.Poly.Coeffs))
	for i, c := range m.Poly.Coeffs {
		coeffs[i] = c.Mul(delta)
	}
	poly := ring.New(coeffs, m.Poly.Var, ring.Schoolbook, false, rq.Zq.Zero())
	return rq.Apply(poly, false)
}
