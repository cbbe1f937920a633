package kyber

import (
	"github.com/campaluca/ringcrypt/ring"
	"github.com/campaluca/ringcrypt/xrand"
)

// SecretKey is the K-dimensional secret vector s (spec §4.8).
type SecretKey struct {
	S ring.Vector
}

// PublicKey is (A, t) with t = A*s + e (spec §4.8).
type PublicKey struct {
	A ring.Matrix
	T ring.Vector
}

// KeyGen samples A uniformly, s and e from a centered binomial-like ternary
// distribution of width Eta1, and returns (pk, sk) with t = A*s + e
// (spec §4.8, a minimal module-LWE instance over ring.Vector/Matrix).
func KeyGen(ctx *Context) (PublicKey, SecretKey, error) {
	rq := ctx.RingQ
	src := xrand.Default()
	k := ctx.Params.K

	a := ring.NewMatrix(rq, k, k)
	for i := 0; i < k; i++ {
		for j := 0; j < k; j++ {
			a.Elems[i][j] = rq.UniformRq(src)
		}
	}

	s := ring.NewVector(rq, k)
	e := ring.NewVector(rq, k)
	for i := 0; i < k; i++ {
		s.Elems[i] = rq.TernaryRq(src, etaBias(ctx.Params.Eta1))
		e.Elems[i] = rq.TernaryRq(src, etaBias(ctx.Params.Eta1))
	}

	as, err := a.MulVec(s)
	if err != nil {
		return PublicKey{}, SecretKey{}, err
	}
	t, err := as.Add(e)
	if err != nil {
		return PublicKey{}, SecretKey{}, err
	}
	return PublicKey{A: a, T: t}, SecretKey{S: s}, nil
}

// etaBias approximates a width-eta centered binomial by a ternary
// distribution whose "stay at zero" probability shrinks with eta, matching
// the increasing noise width of a larger eta parameter (spec §4.8 sketch).
func etaBias(eta int) float64 {
	if eta <= 0 {
		return 1
	}
	return 1.0 / float64(eta+1)
}

// Ciphertext is (u, v) per the Kyber PKE encryption equations (spec §4.8).
type Ciphertext struct {
	U ring.Vector
	V ring.Rq
}

// Encrypt encodes m's {0,1} coefficients scaled by Q/2, samples r/e1/e2, and
// returns u = A^T*r + e1, v = t*r + e2 + Delta*m, both then compressed to
// (Du, Dv) bits (spec §4.8).
func Encrypt(ctx *Context, pk PublicKey, m ring.Rq) (Ciphertext, error) {
	rq := ctx.RingQ
	src := xrand.Default()
	k := ctx.Params.K

	r := ring.NewVector(rq, k)
	e1 := ring.NewVector(rq, k)
	for i := 0; i < k; i++ {
		r.Elems[i] = rq.TernaryRq(src, etaBias(ctx.Params.Eta1))
		e1.Elems[i] = rq.TernaryRq(src, etaBias(ctx.Params.Eta2))
	}
	e2 := rq.TernaryRq(src, etaBias(ctx.Params.Eta2))

	aT := pk.A.Transpose()
	u, err := aT.MulVec(r)
	if err != nil {
		return Ciphertext{}, err
	}
	u, err = u.Add(e1)
	if err != nil {
		return Ciphertext{}, err
	}

	tr, err := pk.T.Dot(r)
	if err != nil {
		return Ciphertext{}, err
	}
	v, err := tr.Add(e2)
	if err != nil {
		return Ciphertext{}, err
	}
	delta := scaleByHalfQ(ctx, m)
	v, err = v.Add(delta)
	if err != nil {
		return Ciphertext{}, err
	}

	compU := ring.NewVector(rq, k)
	for i := 0; i < k; i++ {
		compU.Elems[i] = ctx.Compress(u.Elems[i], ctx.Params.Du)
	}
	compV := ctx.Compress(v, ctx.Params.Dv)
	return Ciphertext{U: compU, V: compV}, nil
}

// scaleByHalfQ multiplies m's {0,1}-valued coefficients by floor(Q/2),
// embedding a bit message into the ciphertext modulus (spec §4.8).
func scaleByHalfQ(ctx *Context, m ring.Rq) ring.Rq {
	half := ctx.Params.Q / 2
	zq := ctx.RingQ.Zq
	coeffs := make([]ring.Zq, len(m.Poly.Coeffs))
	for i, c := range m.Poly.Coeffs {
		if c.Lift != 0 {
			coeffs[i] = zq.ApplyUint(half)
		} else {
			coeffs[i] = zq.Zero()
		}
	}
	poly := ring.New(coeffs, m.Poly.Var, ring.Schoolbook, false, zq.Zero())
	out, _ := ctx.RingQ.Apply(poly, false)
	return out
}

// Decrypt recovers the {0,1} message polynomial from v - s*u, decompressed
// back to mod Q first (spec §4.8).
func Decrypt(ctx *Context, sk SecretKey, ct Ciphertext) (ring.Rq, error) {
	rq := ctx.RingQ
	k := ctx.Params.K

	u := ring.NewVector(rq, k)
	for i := 0; i < k; i++ {
		u.Elems[i] = ctx.Decompress(ct.U.Elems[i], ctx.Params.Du)
	}
	v := ctx.Decompress(ct.V, ctx.Params.Dv)

	su, err := sk.S.Dot(u)
	if err != nil {
		return ring.Rq{}, err
	}
	diff, err := v.Sub(su)
	if err != nil {
		return ring.Rq{}, err
	}

	half := ctx.Params.Q / 2
	quarter := ctx.Params.Q / 4
	zq := rq.Zq
	coeffs := make([]ring.Zq, len(diff.Poly.Coeffs))
	for i, c := range diff.Poly.Coeffs {
		dist := distanceToHalf(c.Lift, ctx.Params.Q, half)
		if dist < quarter {
			coeffs[i] = zq.One()
		} else {
			coeffs[i] = zq.Zero()
		}
	}
	poly := ring.New(coeffs, diff.Poly.Var, ring.Schoolbook, false, zq.Zero())
	return rq.Apply(poly, false)
}

// distanceToHalf returns |v - half| reduced into [0, Q/2], the statistic
// used to decide whether a noisy coefficient decodes to bit 1.
func distanceToHalf(v, q, half uint64) uint64 {
	var d uint64
	if v > half {
		d = v - half
	} else {
		d = half - v
	}
	if d > q-d {
		d = q - d
	}
	return d
}
