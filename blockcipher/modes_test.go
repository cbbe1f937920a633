package blockcipher

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func testCipher(t *testing.T) *Cipher {
	t.Helper()
	key := make([]byte, 32)
	for i := range key {
		key[i] = byte(i)
	}
	c, err := NewCipher(key)
	require.NoError(t, err)
	return c
}

func TestECBRoundTrip(t *testing.T) {
	c := testCipher(t)
	plaintext := Pad([]byte("a message that needs padding out to a multiple of sixteen bytes"), BlockSize, PKCS7)

	ciphertext, err := EncryptECB(c, plaintext)
	require.NoError(t, err)
	decrypted, err := DecryptECB(c, ciphertext)
	require.NoError(t, err)
	require.Equal(t, plaintext, decrypted)
}

func TestCBCRoundTrip(t *testing.T) {
	c := testCipher(t)
	iv := make([]byte, BlockSize)
	for i := range iv {
		iv[i] = byte(i * 2)
	}
	plaintext := Pad([]byte("the quick brown fox jumps over the lazy dog, repeatedly, to fill many blocks"), BlockSize, ANSIX923)

	ciphertext, err := EncryptCBC(c, iv, plaintext)
	require.NoError(t, err)
	decrypted, err := DecryptCBC(c, iv, ciphertext)
	require.NoError(t, err)
	require.Equal(t, plaintext, decrypted)
}

func TestCBCRoundTripParallelizesAboveThreshold(t *testing.T) {
	c := testCipher(t)
	iv := make([]byte, BlockSize)
	plaintext := make([]byte, parallelThreshold*3)
	for i := range plaintext {
		plaintext[i] = byte(i)
	}

	ciphertext, err := EncryptCBC(c, iv, plaintext)
	require.NoError(t, err)
	decrypted, err := DecryptCBC(c, iv, ciphertext)
	require.NoError(t, err)
	require.Equal(t, plaintext, decrypted)
}

func TestCTRRoundTrip(t *testing.T) {
	c := testCipher(t)
	nonce := make([]byte, BlockSize)
	plaintext := []byte("CTR mode does not need block-aligned input at all")

	ciphertext, err := EncryptCTR(c, nonce, plaintext)
	require.NoError(t, err)
	require.NotEqual(t, plaintext, ciphertext)

	decrypted, err := DecryptCTR(c, nonce, ciphertext)
	require.NoError(t, err)
	require.Equal(t, plaintext, decrypted)
}
