package blockcipher

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPadUnpadRoundTripAllSchemes(t *testing.T) {
	schemes := []Padding{PKCS7, ANSIX923, ISO10126, ISO78164}
	messages := [][]byte{
		[]byte(""),
		[]byte("a"),
		[]byte("exactly sixteen!"),
		[]byte("this message is longer than one single block of sixteen bytes"),
	}
	for _, scheme := range schemes {
		for _, msg := range messages {
			padded := Pad(msg, BlockSize, scheme)
			require.Zero(t, len(padded)%BlockSize)
			require.NotZero(t, len(padded)-len(msg))

			unpadded, err := Unpad(padded, BlockSize, scheme)
			require.NoError(t, err)
			require.Equal(t, msg, unpadded)
		}
	}
}

func TestUnpadRejectsCorruptedPKCS7(t *testing.T) {
	padded := Pad([]byte("hello"), BlockSize, PKCS7)
	padded[len(padded)-1] = 0xff
	_, err := Unpad(padded, BlockSize, PKCS7)
	require.ErrorIs(t, err, ErrInvalidPadding)
}
