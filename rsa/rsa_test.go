package rsa

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/campaluca/ringcrypt/number"
)

func TestEncryptDecryptRoundTrip(t *testing.T) {
	pub, priv, err := GenerateKey(256)
	require.NoError(t, err)

	m := number.NewBigInt(42)
	c, err := Encrypt(pub, m)
	require.NoError(t, err)

	recovered := Decrypt(priv, c)
	require.True(t, m.Equal(recovered))
}

func TestEncryptRejectsMessageTooLarge(t *testing.T) {
	pub, _, err := GenerateKey(256)
	require.NoError(t, err)

	tooLarge := pub.N.Add(number.NewBigInt(1))
	_, err = Encrypt(pub, tooLarge)
	require.ErrorIs(t, err, ErrMessageTooLarge)
}
