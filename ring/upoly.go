package ring

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// MulAlgo tags how UPoly.Mul should combine two operands. Schoolbook is
// always correct; NTT is only consulted by Rq, which owns the transform
// context and post-processes the result — UPoly itself never invokes an
// NTT, it only remembers that its owner prefers one.
type MulAlgo int

const (
	Schoolbook MulAlgo = iota
	NTTAccelerated
)

// UPoly is a dense univariate polynomial over a coefficient ring T
// satisfying Elt[T]. Coeffs[i] is the coefficient of x^i.
type UPoly[T Elt[T]] struct {
	Coeffs  []T
	Var     string
	MulAlgo MulAlgo
	Clean   bool
	zero    T
}

// New constructs a UPoly. If clean, trailing coefficients equal to zero are
// stripped; an empty result is replaced by a single zero coefficient
// (spec §4.2).
func New[T Elt[T]](coeffs []T, v string, algo MulAlgo, clean bool, zero T) UPoly[T] {
	cs := slices.Clone(coeffs)
	p := UPoly[T]{Coeffs: cs, Var: v, MulAlgo: algo, Clean: clean, zero: zero}
	if clean {
		p.strip()
	}
	return p
}

func (p *UPoly[T]) strip() {
	n := len(p.Coeffs)
	if n == 0 {
		p.Coeffs = []T{p.zero}
		return
	}
	for n > 1 && p.Coeffs[n-1].Equal(p.zero) {
		n--
	}
	p.Coeffs = p.Coeffs[:n]
}

// Degree is len-1 when Clean; otherwise the logical (possibly padded) length
// minus one.
func (p UPoly[T]) Degree() int {
	return len(p.Coeffs) - 1
}

func (p UPoly[T]) Zero() T { return p.zero }

func (p UPoly[T]) Coeff(i int) T {
	if i < 0 || i >= len(p.Coeffs) {
		return p.zero
	}
	return p.Coeffs[i]
}

func (p UPoly[T]) clone() UPoly[T] {
	return UPoly[T]{Coeffs: slices.Clone(p.Coeffs), Var: p.Var, MulAlgo: p.MulAlgo, Clean: p.Clean, zero: p.zero}
}

// Add pads to the longer operand.
func (p UPoly[T]) Add(q UPoly[T]) UPoly[T] {
	n := len(p.Coeffs)
	if len(q.Coeffs) > n {
		n = len(q.Coeffs)
	}
	out := make([]T, n)
	for i := 0; i < n; i++ {
		out[i] = p.Coeff(i).Add(q.Coeff(i))
	}
	r := UPoly[T]{Coeffs: out, Var: p.Var, MulAlgo: p.MulAlgo, Clean: p.Clean, zero: p.zero}
	if r.Clean {
		r.strip()
	}
	return r
}

func (p UPoly[T]) Sub(q UPoly[T]) UPoly[T] {
	n := len(p.Coeffs)
	if len(q.Coeffs) > n {
		n = len(q.Coeffs)
	}
	out := make([]T, n)
	for i := 0; i < n; i++ {
		out[i] = p.Coeff(i).Sub(q.Coeff(i))
	}
	r := UPoly[T]{Coeffs: out, Var: p.Var, MulAlgo: p.MulAlgo, Clean: p.Clean, zero: p.zero}
	if r.Clean {
		r.strip()
	}
	return r
}

func (p UPoly[T]) Neg() UPoly[T] {
	out := make([]T, len(p.Coeffs))
	for i, c := range p.Coeffs {
		out[i] = c.Neg()
	}
	return UPoly[T]{Coeffs: out, Var: p.Var, MulAlgo: p.MulAlgo, Clean: p.Clean, zero: p.zero}
}

// ScalarMul multiplies every coefficient by s.
func (p UPoly[T]) ScalarMul(s T) UPoly[T] {
	out := make([]T, len(p.Coeffs))
	for i, c := range p.Coeffs {
		out[i] = c.Mul(s)
	}
	r := UPoly[T]{Coeffs: out, Var: p.Var, MulAlgo: p.MulAlgo, Clean: p.Clean, zero: p.zero}
	if r.Clean {
		r.strip()
	}
	return r
}

// Mul is schoolbook convolution producing degree da+db. Rq reaches into this
// only for its coefficient-basis path; the NTT-accelerated path lives on Rq
// directly since it needs the owning context.
func (p UPoly[T]) Mul(q UPoly[T]) UPoly[T] {
	if p.isZeroPoly() || q.isZeroPoly() {
		return UPoly[T]{Coeffs: []T{p.zero}, Var: p.Var, MulAlgo: p.MulAlgo, Clean: p.Clean, zero: p.zero}
	}
	out := make([]T, len(p.Coeffs)+len(q.Coeffs)-1)
	for i := range out {
		out[i] = p.zero
	}
	for i, a := range p.Coeffs {
		if a.IsZero() {
			continue
		}
		for j, b := range q.Coeffs {
			out[i+j] = out[i+j].Add(a.Mul(b))
		}
	}
	r := UPoly[T]{Coeffs: out, Var: p.Var, MulAlgo: p.MulAlgo, Clean: p.Clean, zero: p.zero}
	if r.Clean {
		r.strip()
	}
	return r
}

func (p UPoly[T]) isZeroPoly() bool {
	for _, c := range p.Coeffs {
		if !c.IsZero() {
			return false
		}
	}
	return true
}

func (p UPoly[T]) Equal(q UPoly[T]) bool {
	n := len(p.Coeffs)
	if len(q.Coeffs) > n {
		n = len(q.Coeffs)
	}
	for i := 0; i < n; i++ {
		if !p.Coeff(i).Equal(q.Coeff(i)) {
			return false
		}
	}
	return true
}

// DivMod is Euclidean division over a field T: a = q*b + r, deg(r) < deg(b).
func DivMod[T Field[T]](a, b UPoly[T]) (quo, rem UPoly[T], err error) {
	if b.isZeroPoly() {
		return UPoly[T]{}, UPoly[T]{}, fmt.Errorf("%w", ErrDivByZeroPoly)
	}
	zero := a.zero
	lead := b.Coeffs[len(b.Coeffs)-1]
	leadInv, err := lead.Inv()
	if err != nil {
		return UPoly[T]{}, UPoly[T]{}, err
	}

	remainder := make([]T, len(a.Coeffs))
	copy(remainder, a.Coeffs)
	db := len(b.Coeffs) - 1
	degR := len(remainder) - 1
	// trim leading zeros of remainder copy
	for degR > 0 && remainder[degR].Equal(zero) {
		degR--
	}

	quotDeg := degR - db
	var quotCoeffs []T
	if quotDeg >= 0 {
		quotCoeffs = make([]T, quotDeg+1)
		for i := range quotCoeffs {
			quotCoeffs[i] = zero
		}
	}

	for degR >= db && !allZero(remainder[:degR+1], zero) {
		shift := degR - db
		coeff := remainder[degR].Mul(leadInv)
		if quotCoeffs != nil {
			quotCoeffs[shift] = coeff
		}
		for i := 0; i <= db; i++ {
			remainder[shift+i] = remainder[shift+i].Sub(coeff.Mul(b.Coeffs[i]))
		}
		for degR >= 0 && remainder[degR].Equal(zero) {
			degR--
		}
	}
	if quotCoeffs == nil {
		quotCoeffs = []T{zero}
	}

	remOut := make([]T, degR+1)
	if degR >= 0 {
		copy(remOut, remainder[:degR+1])
	} else {
		remOut = []T{zero}
	}

	quo = UPoly[T]{Coeffs: quotCoeffs, Var: a.Var, MulAlgo: a.MulAlgo, Clean: true, zero: zero}
	rem = UPoly[T]{Coeffs: remOut, Var: a.Var, MulAlgo: a.MulAlgo, Clean: true, zero: zero}
	quo.strip()
	rem.strip()
	return quo, rem, nil
}

func allZero[T Elt[T]](xs []T, zero T) bool {
	for _, x := range xs {
		if !x.Equal(zero) {
			return false
		}
	}
	return true
}
