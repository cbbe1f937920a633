package blockcipher

import (
	"errors"
	"fmt"
	"math/big"

	"github.com/campaluca/ringcrypt/xrand"
)

var bigIntBound = big.NewInt(256)

var ErrInvalidPadding = errors.New("blockcipher: invalid padding")

// Padding is one of the four schemes spec §4.10 names.
type Padding int

const (
	PKCS7 Padding = iota
	ANSIX923
	ISO10126
	ISO78164
)

// Pad returns data extended to a multiple of blockSize using scheme p. Data
// that is already block-aligned still gets a full block of padding, so Unpad
// is always unambiguous.
func Pad(data []byte, blockSize int, p Padding) []byte {
	padLen := blockSize - len(data)%blockSize
	out := make([]byte, len(data)+padLen)
	copy(out, data)

	switch p {
	case PKCS7:
		for i := len(data); i < len(out); i++ {
			out[i] = byte(padLen)
		}
	case ANSIX923:
		for i := len(data); i < len(out)-1; i++ {
			out[i] = 0
		}
		out[len(out)-1] = byte(padLen)
	case ISO10126:
		for i := len(data); i < len(out)-1; i++ {
			out[i] = byte(xrand.Default().UniformBigInt(bigIntBound).Uint64())
		}
		out[len(out)-1] = byte(padLen)
	case ISO78164:
		out[len(data)] = 0x80
		for i := len(data) + 1; i < len(out); i++ {
			out[i] = 0
		}
	}
	return out
}

// Unpad strips padding applied by Pad, validating it where the scheme makes
// that possible (PKCS7 and ANSIX923 check every pad byte).
func Unpad(data []byte, blockSize int, p Padding) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, fmt.Errorf("%w: length %d not a multiple of block size", ErrInvalidPadding, len(data))
	}
	switch p {
	case PKCS7:
		padLen := int(data[len(data)-1])
		if padLen == 0 || padLen > blockSize || padLen > len(data) {
			return nil, ErrInvalidPadding
		}
		for i := len(data) - padLen; i < len(data); i++ {
			if data[i] != byte(padLen) {
				return nil, ErrInvalidPadding
			}
		}
		return data[:len(data)-padLen], nil
	case ANSIX923:
		padLen := int(data[len(data)-1])
		if padLen == 0 || padLen > blockSize || padLen > len(data) {
			return nil, ErrInvalidPadding
		}
		for i := len(data) - padLen; i < len(data)-1; i++ {
			if data[i] != 0 {
				return nil, ErrInvalidPadding
			}
		}
		return data[:len(data)-padLen], nil
	case ISO10126:
		padLen := int(data[len(data)-1])
		if padLen == 0 || padLen > blockSize || padLen > len(data) {
			return nil, ErrInvalidPadding
		}
		return data[:len(data)-padLen], nil
	case ISO78164:
		i := len(data) - 1
		for i >= 0 && data[i] == 0 {
			i--
		}
		if i < 0 || data[i] != 0x80 {
			return nil, ErrInvalidPadding
		}
		return data[:i], nil
	default:
		return nil, fmt.Errorf("blockcipher: error : unknown padding scheme %d", p)
	}
}
