package ring

import (
	"fmt"
	"math/big"
)

// RqRing is the immutable parent of the polynomial quotient ring
// Zq[x]/Φ(x) (spec §4.4). Elements interoperate only when they share the
// same *RqRing (pointer identity).
type RqRing struct {
	Zq          *ZqRing
	Phi         UPoly[Zq]
	DegPhi      int
	FixedLength bool
	NTT         *NTTContext

	// cyclicShortcut is true when Phi = x^N - 1, enabling the wrap-around
	// multiplication shortcut of spec §4.4 (guarded, per the DESIGN NOTES
	// §9 fix, to fall back to schoolbook+divmod whenever operand lengths
	// differ from the fast-path assumption).
	cyclicShortcut bool
}

// NewRqRing constructs a parent for Φ of degree N = deg(Phi).
func NewRqRing(phi UPoly[Zq], fixedLength bool) *RqRing {
	return &RqRing{
		Zq:             phi.Coeff(0).Parent,
		Phi:            phi,
		DegPhi:         phi.Degree(),
		FixedLength:    fixedLength,
		cyclicShortcut: isXNMinus1(phi),
	}
}

// WithNTT returns a clone of r that additionally carries an NTT context
// (spec §4.4 "Rq::with_ntt").
func (r *RqRing) WithNTT(ctx *NTTContext) *RqRing {
	clone := *r
	clone.NTT = ctx
	return &clone
}

func isXNMinus1(phi UPoly[Zq]) bool {
	n := phi.Degree()
	if n < 1 {
		return false
	}
	lead := phi.Coeff(n)
	constTerm := phi.Coeff(0)
	one := lead.Parent.One()
	if !lead.Equal(one) {
		return false
	}
	if !constTerm.Equal(one.Neg()) {
		return false
	}
	for i := 1; i < n; i++ {
		if !phi.Coeff(i).IsZero() {
			return false
		}
	}
	return true
}

// PhiXNPlus1 builds Φ = x^N + 1 over the given ZqRing.
func PhiXNPlus1(zq *ZqRing, n int) UPoly[Zq] {
	coeffs := make([]Zq, n+1)
	for i := range coeffs {
		coeffs[i] = zq.Zero()
	}
	coeffs[0] = zq.One()
	coeffs[n] = zq.One()
	return New(coeffs, "x", Schoolbook, true, zq.Zero())
}

// PhiXNMinus1 builds Φ = x^N - 1 over the given ZqRing.
func PhiXNMinus1(zq *ZqRing, n int) UPoly[Zq] {
	coeffs := make([]Zq, n+1)
	for i := range coeffs {
		coeffs[i] = zq.Zero()
	}
	coeffs[0] = zq.Zero().Sub(zq.One())
	coeffs[n] = zq.One()
	return New(coeffs, "x", Schoolbook, true, zq.Zero())
}

// Rq is an element of Zq[x]/Φ(x): a UPoly[Zq] of degree < deg Φ, a parent
// reference, and a basis flag (spec §3 "Rq element").
type Rq struct {
	Poly    UPoly[Zq]
	Parent  *RqRing
	NTTForm bool
}

func (r *RqRing) zeroPoly() UPoly[Zq] {
	n := 1
	if r.FixedLength {
		n = r.DegPhi
		if n == 0 {
			n = 1
		}
	}
	coeffs := make([]Zq, n)
	for i := range coeffs {
		coeffs[i] = r.Zq.Zero()
	}
	return New(coeffs, r.Phi.Var, Schoolbook, !r.FixedLength, r.Zq.Zero())
}

// Zero returns the additive identity, padded to deg Φ when FixedLength is
// set and length 1 otherwise (spec §9 DESIGN NOTES, fixing the source's
// inconsistent PolynomialRing::zero).
func (r *RqRing) Zero() Rq {
	return Rq{Poly: r.zeroPoly(), Parent: r, NTTForm: false}
}

func (r *RqRing) padToLength(p UPoly[Zq]) UPoly[Zq] {
	if !r.FixedLength {
		return p
	}
	if len(p.Coeffs) >= r.DegPhi {
		return p
	}
	coeffs := make([]Zq, r.DegPhi)
	for i := range coeffs {
		if i < len(p.Coeffs) {
			coeffs[i] = p.Coeffs[i]
		} else {
			coeffs[i] = r.Zq.Zero()
		}
	}
	return New(coeffs, p.Var, p.MulAlgo, false, r.Zq.Zero())
}

// Apply reduces u modulo Φ via Euclidean division, producing an Rq element
// in the caller-declared basis (spec §4.4). Callers must only pass
// nttForm=true when u is already known to hold evaluation-basis data.
func (r *RqRing) Apply(u UPoly[Zq], nttForm bool) (Rq, error) {
	var reduced UPoly[Zq]
	if u.Degree() < r.DegPhi {
		reduced = r.padToLength(u)
	} else {
		_, rem, err := DivMod(u, r.Phi)
		if err != nil {
			return Rq{}, err
		}
		reduced = r.padToLength(rem)
	}
	return Rq{Poly: reduced, Parent: r, NTTForm: nttForm}, nil
}

func (a Rq) sameParent(b Rq) error {
	if a.Parent != b.Parent {
		return fmt.Errorf("%w", ErrParentMismatch)
	}
	return nil
}

// ApplyNTT is the only legal coefficient->evaluation transition (spec §4.4).
func (r *RqRing) ApplyNTT(x Rq) (Rq, error) {
	if x.Parent != r {
		return Rq{}, fmt.Errorf("%w", ErrParentMismatch)
	}
	if x.NTTForm {
		return Rq{}, fmt.Errorf("%w: ApplyNTT requires coefficient basis", ErrBadBasis)
	}
	if r.NTT == nil {
		return Rq{}, fmt.Errorf("%w: parent has no NTT context", ErrBadParameters)
	}
	padded := make([]uint64, r.NTT.N)
	for i := range padded {
		padded[i] = x.Poly.Coeff(i).Lift
	}
	evals, err := r.NTT.ToNTT(padded)
	if err != nil {
		return Rq{}, err
	}
	coeffs := make([]Zq, len(evals))
	for i, v := range evals {
		coeffs[i] = r.Zq.ApplyUint(v)
	}
	return Rq{Poly: New(coeffs, r.Phi.Var, NTTAccelerated, false, r.Zq.Zero()), Parent: r, NTTForm: true}, nil
}

// FromNTT is ApplyNTT's inverse (spec §4.4).
func (r *RqRing) FromNTT(x Rq, fixedLength bool) (Rq, error) {
	if x.Parent != r {
		return Rq{}, fmt.Errorf("%w", ErrParentMismatch)
	}
	if !x.NTTForm {
		return Rq{}, fmt.Errorf("%w: FromNTT requires evaluation basis", ErrBadBasis)
	}
	if r.NTT == nil {
		return Rq{}, fmt.Errorf("%w: parent has no NTT context", ErrBadParameters)
	}
	evals := make([]uint64, r.NTT.N)
	for i := range evals {
		evals[i] = x.Poly.Coeff(i).Lift
	}
	coeffsU, err := r.NTT.FromNTT(evals)
	if err != nil {
		return Rq{}, err
	}
	coeffs := make([]Zq, len(coeffsU))
	for i, v := range coeffsU {
		coeffs[i] = r.Zq.ApplyUint(v)
	}
	poly := New(coeffs, r.Phi.Var, Schoolbook, !fixedLength, r.Zq.Zero())
	saved := r.FixedLength
	r2 := *r
	r2.FixedLength = fixedLength
	poly = r2.padToLength(poly)
	r.FixedLength = saved
	return Rq{Poly: poly, Parent: r, NTTForm: false}, nil
}

// Add is coefficient-wise; the result's basis flag is
// a.NTTForm && b.NTTForm (spec §4.4).
func (a Rq) Add(b Rq) (Rq, error) {
	if err := a.sameParent(b); err != nil {
		return Rq{}, err
	}
	return Rq{Poly: a.Poly.Add(b.Poly), Parent: a.Parent, NTTForm: a.NTTForm && b.NTTForm}, nil
}

// Sub is coefficient-wise; the result's basis flag is
// a.NTTForm && b.NTTForm (spec §4.4).
func (a Rq) Sub(b Rq) (Rq, error) {
	if err := a.sameParent(b); err != nil {
		return Rq{}, err
	}
	return Rq{Poly: a.Poly.Sub(b.Poly), Parent: a.Parent, NTTForm: a.NTTForm && b.NTTForm}, nil
}

func (a Rq) Neg() Rq {
	return Rq{Poly: a.Poly.Neg(), Parent: a.Parent, NTTForm: a.NTTForm}
}

// Mul dispatches to the evaluation-basis elementwise path when both operands
// are already in NTT form over a shared context, else falls back to
// coefficient-basis schoolbook multiplication + reduction mod Φ (spec §4.4).
func (a Rq) Mul(b Rq) (Rq, error) {
	if err := a.sameParent(b); err != nil {
		return Rq{}, err
	}
	r := a.Parent
	if a.NTTForm && b.NTTForm && r.NTT != nil {
		n := r.NTT.N
		out := make([]Zq, n)
		for i := 0; i < n; i++ {
			out[i] = a.Poly.Coeff(i).Mul(b.Poly.Coeff(i))
		}
		return Rq{Poly: New(out, r.Phi.Var, NTTAccelerated, false, r.Zq.Zero()), Parent: r, NTTForm: true}, nil
	}
	if a.NTTForm || b.NTTForm {
		return Rq{}, fmt.Errorf("%w: Mul requires both operands in the same basis", ErrBadBasis)
	}

	product := a.Poly.Mul(b.Poly)
	if r.cyclicShortcut && len(a.Poly.Coeffs) == r.DegPhi && len(b.Poly.Coeffs) == r.DegPhi {
		// x^N - 1 shortcut: top half wraps into the bottom half, avoiding a
		// full Euclidean division. Falls back below whenever lengths differ
		// from this fast-path assumption (spec §9 fixing the source's bug).
		reduced := make([]Zq, r.DegPhi)
		for i := range reduced {
			reduced[i] = r.Zq.Zero()
		}
		for i, c := range product.Coeffs {
			reduced[i%r.DegPhi] = reduced[i%r.DegPhi].Add(c)
		}
		return r.Apply(New(reduced, r.Phi.Var, Schoolbook, false, r.Zq.Zero()), false)
	}
	return r.Apply(product, false)
}

// Inverse returns a^-1 in Rq via the extended GCD over UPoly[Zq] (spec §4.5):
// ErrNotInvertible if gcd(a, Φ) is not a constant associate of 1.
func (a Rq) Inverse() (Rq, error) {
	if a.NTTForm {
		inCoeff, err := a.Parent.FromNTT(a, a.Parent.FixedLength)
		if err != nil {
			return Rq{}, err
		}
		a = inCoeff
	}
	gcd, s, _, err := ExtGCD(a.Poly, a.Parent.Phi)
	if err != nil {
		return Rq{}, err
	}
	if gcd.Degree() != 0 {
		return Rq{}, fmt.Errorf("%w: gcd(a, Phi) is not constant", ErrNotInvertible)
	}
	leadInv, err := gcd.Coeff(0).Inv()
	if err != nil {
		return Rq{}, fmt.Errorf("%w: %v", ErrNotInvertible, err)
	}
	rescaled := s.ScalarMul(leadInv)
	return a.Parent.Apply(rescaled, false)
}

// Div computes a * b^-1 in Rq (spec §9 fixes the source's Div==Add bug:
// this is true polynomial division).
func (a Rq) Div(b Rq) (Rq, error) {
	inv, err := b.Inverse()
	if err != nil {
		return Rq{}, err
	}
	return a.Mul(inv)
}

// Pow computes a^e by square-and-multiply with a BigInt exponent (spec §4.4).
func (a Rq) Pow(e *big.Int) (Rq, error) {
	if e.Sign() < 0 {
		return Rq{}, fmt.Errorf("ring: Rq.Pow: negative exponent unsupported")
	}
	one, err := a.Parent.Apply(New([]Zq{a.Parent.Zq.One()}, a.Parent.Phi.Var, Schoolbook, true, a.Parent.Zq.Zero()), a.NTTForm)
	if err != nil {
		return Rq{}, err
	}
	result := one
	base := a
	bits := e.Bit
	for i := 0; i < e.BitLen(); i++ {
		if bits(i) == 1 {
			result, err = result.Mul(base)
			if err != nil {
				return Rq{}, err
			}
		}
		if i != e.BitLen()-1 {
			base, err = base.Mul(base)
			if err != nil {
				return Rq{}, err
			}
		}
	}
	return result, nil
}

// BaseDecompose returns ceil(log_B q) + 1 polynomials r0..rL with
// coefficients in [0, B) such that r = sum r_i * B^i (reduced mod q),
// each sharing r's basis flag (spec §4.4 "Base decomposition").
func (r *RqRing) BaseDecompose(x Rq, base uint64) ([]Rq, error) {
	q := r.Zq.Q
	l := 0 // ceil(log_B q): the base-B digit count of q-1
	for v := q - 1; v > 0; v /= base {
		l++
	}
	digitsOf := func(v uint64) []uint64 {
		ds := make([]uint64, l+1)
		for i := 0; i <= l; i++ {
			ds[i] = v % base
			v /= base
		}
		return ds
	}
	n := len(x.Poly.Coeffs)
	digitPolys := make([][]Zq, l+1)
	for i := range digitPolys {
		digitPolys[i] = make([]Zq, n)
	}
	for ci, c := range x.Poly.Coeffs {
		ds := digitsOf(c.Lift)
		for i := 0; i <= l; i++ {
			digitPolys[i][ci] = r.Zq.ApplyUint(ds[i])
		}
	}
	out := make([]Rq, l+1)
	for i := 0; i <= l; i++ {
		out[i] = Rq{Poly: New(digitPolys[i], x.Poly.Var, x.Poly.MulAlgo, false, r.Zq.Zero()), Parent: r, NTTForm: x.NTTForm}
	}
	return out, nil
}
