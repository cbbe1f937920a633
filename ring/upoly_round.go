package ring

import "github.com/campaluca/ringcrypt/number"

// RoundPoly implements UPoly<Real>.round() from spec §4.2: coefficient-wise
// rounding to the nearest integer, ties-to-even, coercing T=Real into
// UPoly<Integer>.
func RoundPoly(p UPoly[number.BigDec]) UPoly[number.BigInt] {
	out := make([]number.BigInt, len(p.Coeffs))
	for i, c := range p.Coeffs {
		out[i] = c.Round()
	}
	return New(out, p.Var, p.MulAlgo, p.Clean, number.ZeroBigInt())
}
