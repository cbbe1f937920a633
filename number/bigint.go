// Package number provides arbitrary-precision integer, rational and decimal
// value types used as coefficient rings throughout ring and as the
// collaborator types RSA and prime generation depend on.
package number

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// BigInt is an arbitrary-precision signed integer.
type BigInt struct {
	v *big.Int
}

// NewBigInt wraps x.
func NewBigInt(x int64) BigInt {
	return BigInt{v: big.NewInt(x)}
}

// NewBigIntFromBig wraps an existing *big.Int, copying it.
func NewBigIntFromBig(x *big.Int) BigInt {
	return BigInt{v: new(big.Int).Set(x)}
}

// Big exposes the underlying *big.Int (read-only use expected).
func (a BigInt) Big() *big.Int { return a.v }

func (a BigInt) String() string { return a.v.String() }

func (a BigInt) Add(b BigInt) BigInt { return BigInt{new(big.Int).Add(a.v, b.v)} }
func (a BigInt) Sub(b BigInt) BigInt { return BigInt{new(big.Int).Sub(a.v, b.v)} }
func (a BigInt) Mul(b BigInt) BigInt { return BigInt{new(big.Int).Mul(a.v, b.v)} }
func (a BigInt) Neg() BigInt         { return BigInt{new(big.Int).Neg(a.v)} }

// DivMod returns (quotient, remainder) with 0 <= remainder < |b|.
func (a BigInt) DivMod(b BigInt) (q, r BigInt) {
	qq, rr := new(big.Int), new(big.Int)
	qq.DivMod(a.v, b.v, rr)
	return BigInt{qq}, BigInt{rr}
}

// ModPow computes a^e mod m.
func (a BigInt) ModPow(e, m BigInt) BigInt {
	return BigInt{new(big.Int).Exp(a.v, e.v, m.v)}
}

// GCD returns the non-negative GCD of a and b, plus Bezout coefficients
// such that a*x + b*y = gcd.
func (a BigInt) GCD(b BigInt) (gcd, x, y BigInt) {
	g, xx, yy := new(big.Int), new(big.Int), new(big.Int)
	g.GCD(xx, yy, a.v, b.v)
	return BigInt{g}, BigInt{xx}, BigInt{yy}
}

// Inverse returns a^-1 mod m, or ok=false if a is not invertible mod m.
func (a BigInt) Inverse(m BigInt) (BigInt, bool) {
	inv := new(big.Int).ModInverse(a.v, m.v)
	if inv == nil {
		return BigInt{}, false
	}
	return BigInt{inv}, true
}

func (a BigInt) Cmp(b BigInt) int { return a.v.Cmp(b.v) }
func (a BigInt) Sign() int        { return a.v.Sign() }

// BitLen returns the number of bits required to represent |a|.
func (a BigInt) BitLen() int { return a.v.BitLen() }

// Bytes returns the big-endian byte representation of |a|.
func (a BigInt) Bytes() []byte { return a.v.Bytes() }

// RandomRange returns a uniformly random BigInt in [0, n).
func RandomRange(n BigInt) (BigInt, error) {
	x, err := rand.Int(rand.Reader, n.v)
	if err != nil {
		return BigInt{}, fmt.Errorf("number: random range: %w", err)
	}
	return BigInt{x}, nil
}

// GenPrime returns a prime of exactly the requested bit length.
func GenPrime(bits int) (BigInt, error) {
	p, err := rand.Prime(rand.Reader, bits)
	if err != nil {
		return BigInt{}, fmt.Errorf("number: gen prime: %w", err)
	}
	return BigInt{p}, nil
}

// Zero, One, Equal, Add/Sub/Mul/Neg above satisfy ring.Elt for BigInt
// (Inv is deliberately absent: BigInt is a ring, not a field).
func (a BigInt) IsZero() bool   { return a.v.Sign() == 0 }
func ZeroBigInt() BigInt        { return BigInt{big.NewInt(0)} }
func OneBigInt() BigInt         { return BigInt{big.NewInt(1)} }
func (a BigInt) Equal(b BigInt) bool { return a.v.Cmp(b.v) == 0 }
