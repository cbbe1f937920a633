// Package rsa implements textbook RSA keygen, encryption and decryption over
// package number's arbitrary-precision integers (spec §4.9, scenario 5).
package rsa

import (
	"errors"
	"fmt"

	"github.com/campaluca/ringcrypt/number"
)

var (
	// ErrMessageTooLarge is returned by Encrypt when the message is not
	// smaller than the modulus N.
	ErrMessageTooLarge = errors.New("rsa: message must be smaller than modulus")
)

// PublicKey is (N, E).
type PublicKey struct {
	N number.BigInt
	E number.BigInt
}

// PrivateKey is (N, D), plus P, Q kept for documentation purposes (CRT
// acceleration is deliberately not implemented; spec targets correctness,
// not speed).
type PrivateKey struct {
	N number.BigInt
	D number.BigInt
	P number.BigInt
	Q number.BigInt
}

// DefaultPublicExponent is the conventional small public exponent.
const DefaultPublicExponent = 65537

// GenerateKey draws two independent primes of bits/2 bits each via
// number.GenPrime, and derives e=65537, d=e^-1 mod phi(N).
func GenerateKey(bits int) (PublicKey, PrivateKey, error) {
	half := bits / 2
	p, err := number.GenPrime(half)
	if err != nil {
		return PublicKey{}, PrivateKey{}, fmt.Errorf("rsa: generating p: %w", err)
	}
	q, err := number.GenPrime(bits - half)
	if err != nil {
		return PublicKey{}, PrivateKey{}, fmt.Errorf("rsa: generating q: %w", err)
	}

	n := p.Mul(q)
	pMinus1 := p.Sub(number.NewBigInt(1))
	qMinus1 := q.Sub(number.NewBigInt(1))
	phi := pMinus1.Mul(qMinus1)

	e := number.NewBigInt(DefaultPublicExponent)
	d, ok := e.Inverse(phi)
	if !ok {
		return PublicKey{}, PrivateKey{}, fmt.Errorf("rsa: public exponent %d not invertible mod phi(N); retry GenerateKey", DefaultPublicExponent)
	}

	return PublicKey{N: n, E: e}, PrivateKey{N: n, D: d, P: p, Q: q}, nil
}

// Encrypt computes c = m^e mod N.
func Encrypt(pub PublicKey, m number.BigInt) (number.BigInt, error) {
	if m.Cmp(pub.N) >= 0 || m.Sign() < 0 {
		return number.BigInt{}, ErrMessageTooLarge
	}
	return m.ModPow(pub.E, pub.N), nil
}

// Decrypt computes m = c^d mod N.
func Decrypt(priv PrivateKey, c number.BigInt) number.BigInt {
	return c.ModPow(priv.D, priv.N)
}
