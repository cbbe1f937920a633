package blockcipher

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// FIPS-197 Appendix C.1: AES-128 test vector.
func TestEncryptBlockMatchesFIPS197Vector(t *testing.T) {
	key := []byte{
		0x00, 0x01, 0x02, 0x03, 0x04, 0x05, 0x06, 0x07,
		0x08, 0x09, 0x0a, 0x0b, 0x0c, 0x0d, 0x0e, 0x0f,
	}
	plaintext := []byte{
		0x00, 0x11, 0x22, 0x33, 0x44, 0x55, 0x66, 0x77,
		0x88, 0x99, 0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff,
	}
	want := []byte{
		0x69, 0xc4, 0xe0, 0xd8, 0x6a, 0x7b, 0x04, 0x30,
		0xd8, 0xcd, 0xb7, 0x80, 0x70, 0xb4, 0xc5, 0x5a,
	}

	c, err := NewCipher(key)
	require.NoError(t, err)
	got, err := c.EncryptBlock(plaintext)
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestEncryptDecryptBlockRoundTrip(t *testing.T) {
	for _, keyLen := range []int{16, 24, 32} {
		key := make([]byte, keyLen)
		for i := range key {
			key[i] = byte(i * 7)
		}
		c, err := NewCipher(key)
		require.NoError(t, err)

		plaintext := make([]byte, BlockSize)
		for i := range plaintext {
			plaintext[i] = byte(i * 3)
		}

		ciphertext, err := c.EncryptBlock(plaintext)
		require.NoError(t, err)
		decrypted, err := c.DecryptBlock(ciphertext)
		require.NoError(t, err)
		require.Equal(t, plaintext, decrypted)
	}
}

func TestNewCipherRejectsBadKeyLength(t *testing.T) {
	_, err := NewCipher(make([]byte, 20))
	require.Error(t, err)
}
