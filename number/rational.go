package number

import "math/big"

// Rational is an arbitrary-precision rational number kept in lowest terms
// with a positive denominator.
type Rational struct {
	v *big.Rat
}

func NewRational(num, den int64) Rational {
	return Rational{v: big.NewRat(num, den)}
}

func NewRationalFromBig(r *big.Rat) Rational {
	return Rational{v: new(big.Rat).Set(r)}
}

func (a Rational) String() string { return a.v.RatString() }

func (a Rational) Add(b Rational) Rational { return Rational{new(big.Rat).Add(a.v, b.v)} }
func (a Rational) Sub(b Rational) Rational { return Rational{new(big.Rat).Sub(a.v, b.v)} }
func (a Rational) Mul(b Rational) Rational { return Rational{new(big.Rat).Mul(a.v, b.v)} }
func (a Rational) Neg() Rational           { return Rational{new(big.Rat).Neg(a.v)} }

// Inv returns a^-1; panics if a is zero, matching the field convention that
// callers check IsZero first (mirrors Zq.Inverse's NotInvertible contract
// at the caller, not here).
func (a Rational) Inv() Rational {
	return Rational{new(big.Rat).Inv(a.v)}
}

func (a Rational) IsZero() bool         { return a.v.Sign() == 0 }
func ZeroRational() Rational            { return Rational{big.NewRat(0, 1)} }
func OneRational() Rational             { return Rational{big.NewRat(1, 1)} }
func (a Rational) Equal(b Rational) bool { return a.v.Cmp(b.v) == 0 }
func (a Rational) Cmp(b Rational) int    { return a.v.Cmp(b.v) }

// Float returns the nearest BigDec approximation at the given precision (bits).
func (a Rational) Float(prec uint) BigDec {
	f := new(big.Float).SetPrec(prec).SetRat(a.v)
	return BigDec{v: f}
}
