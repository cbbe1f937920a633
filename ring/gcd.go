package ring

import "fmt"

// ExtGCD implements the extended Euclidean algorithm over UPoly[Zq] (spec
// §4.5): iterating (a_i, u_i, v_i), (b_i, s_i, t_i) with
// b_{i+1} = a_i - q_i*b_i until the remainder is zero, returning the final
// (gcd, s, t) with a*s + b*t = gcd.
func ExtGCD(a, b UPoly[Zq]) (gcd, s, t UPoly[Zq], err error) {
	zero := a.Zero()
	one := New([]Zq{zero.Parent.One()}, a.Var, a.MulAlgo, true, zero)

	oldR, r := a, b
	oldS, curS := one, New([]Zq{zero}, a.Var, a.MulAlgo, true, zero)
	oldT, curT := New([]Zq{zero}, a.Var, a.MulAlgo, true, zero), one

	for !r.isZeroPoly() {
		q, rem, divErr := DivMod(oldR, r)
		if divErr != nil {
			return UPoly[Zq]{}, UPoly[Zq]{}, UPoly[Zq]{}, fmt.Errorf("ring: ExtGCD: %w", divErr)
		}
		oldR, r = r, rem
		oldS, curS = curS, oldS.Sub(q.Mul(curS))
		oldT, curT = curT, oldT.Sub(q.Mul(curT))
	}
	return oldR, oldS, oldT, nil
}
