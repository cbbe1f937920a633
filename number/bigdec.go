package number

import (
	"math/big"

	"github.com/ALTree/bigfloat"
)

// DefaultPrec is the default mantissa precision, in bits, used when a BigDec
// is built without an explicit precision (enough headroom for the P/Q
// rescale rounding in bfv and the compression rounding in kyber).
const DefaultPrec = 256

// BigDec is an arbitrary-precision decimal (binary floating point) value.
type BigDec struct {
	v *big.Float
}

func NewBigDec(x float64) BigDec {
	return BigDec{v: new(big.Float).SetPrec(DefaultPrec).SetFloat64(x)}
}

func NewBigDecFromBig(x *big.Float) BigDec {
	return BigDec{v: new(big.Float).Set(x)}
}

func (a BigDec) String() string { return a.v.Text('g', 30) }

func (a BigDec) Add(b BigDec) BigDec { return BigDec{new(big.Float).Add(a.v, b.v)} }
func (a BigDec) Sub(b BigDec) BigDec { return BigDec{new(big.Float).Sub(a.v, b.v)} }
func (a BigDec) Mul(b BigDec) BigDec { return BigDec{new(big.Float).Mul(a.v, b.v)} }
func (a BigDec) Neg() BigDec         { return BigDec{new(big.Float).Neg(a.v)} }

func (a BigDec) Inv() BigDec {
	one := new(big.Float).SetPrec(a.v.Prec()).SetInt64(1)
	return BigDec{new(big.Float).Quo(one, a.v)}
}

// Sqrt returns the non-negative square root of a, computed with
// ALTree/bigfloat.
func (a BigDec) Sqrt() BigDec {
	return BigDec{bigfloat.Sqrt(a.v)}
}

func (a BigDec) IsZero() bool        { return a.v.Sign() == 0 }
func ZeroBigDec() BigDec             { return NewBigDec(0) }
func OneBigDec() BigDec              { return NewBigDec(1) }
func (a BigDec) Equal(b BigDec) bool { return a.v.Cmp(b.v) == 0 }
func (a BigDec) Cmp(b BigDec) int    { return a.v.Cmp(b.v) }

// Round returns the nearest BigInt, ties-to-even, matching UPoly<Real>.round()
// in spec.md §4.2.
func (a BigDec) Round() BigInt {
	// big.Float.Int rounds toward zero; implement ties-to-even explicitly
	// by inspecting the fractional remainder.
	i, acc := a.v.Int(nil)
	if acc == big.Exact {
		return BigInt{i}
	}
	frac := new(big.Float).Sub(a.v, new(big.Float).SetInt(i))
	half := new(big.Float).SetFloat64(0.5)
	absFrac := new(big.Float).Abs(frac)
	cmp := absFrac.Cmp(half)
	switch {
	case cmp < 0:
		return BigInt{i}
	case cmp > 0:
		if a.v.Sign() >= 0 {
			return BigInt{new(big.Int).Add(i, big.NewInt(1))}
		}
		return BigInt{new(big.Int).Sub(i, big.NewInt(1))}
	default:
		// Exactly .5: round to even.
		if i.Bit(0) == 0 {
			return BigInt{i}
		}
		if a.v.Sign() >= 0 {
			return BigInt{new(big.Int).Add(i, big.NewInt(1))}
		}
		return BigInt{new(big.Int).Sub(i, big.NewInt(1))}
	}
}
