package bfv

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestContext(t *testing.T) *Context {
	t.Helper()
	params, err := NewParameters(64, 257, 1073741953, 3.2)
	require.NoError(t, err)
	ctx, err := NewContext(params)
	require.NoError(t, err)
	return ctx
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	ctx := newTestContext(t)
	enc := NewEncoder(ctx)

	for _, v := range []int64{0, 1, 5, 42, 255} {
		poly, err := enc.Encode(v)
		require.NoError(t, err)
		require.Equal(t, v, enc.Decode(poly))
	}
}

func TestEncodeRejectsOverflow(t *testing.T) {
	ctx := newTestContext(t)
	enc := NewEncoder(ctx)
	_, err := enc.Encode(1 << 30)
	require.ErrorIs(t, err, ErrParameterOverflow)
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	ctx := newTestContext(t)
	kg := NewKeyGenerator(ctx)
	sk := kg.GenSecretKey()
	pk, err := kg.GenPublicKey(sk)
	require.NoError(t, err)

	enc := NewEncoder(ctx)
	encryptor := NewEncryptor(ctx, pk)
	decryptor := NewDecryptor(ctx, sk)

	m, err := enc.Encode(17)
	require.NoError(t, err)
	ct, err := encryptor.Encrypt(m)
	require.NoError(t, err)

	d, err := decryptor.Decrypt(ct)
	require.NoError(t, err)
	require.Equal(t, int64(17), enc.Decode(d))
}

func TestHomomorphicAdd(t *testing.T) {
	ctx := newTestContext(t)
	kg := NewKeyGenerator(ctx)
	sk := kg.GenSecretKey()
	pk, err := kg.GenPublicKey(sk)
	require.NoError(t, err)

	enc := NewEncoder(ctx)
	encryptor := NewEncryptor(ctx, pk)
	decryptor := NewDecryptor(ctx, sk)
	evaluator := NewEvaluator(ctx, nil)

	m1, _ := enc.Encode(3)
	m2, _ := enc.Encode(4)
	c1, err := encryptor.Encrypt(m1)
	require.NoError(t, err)
	c2, err := encryptor.Encrypt(m2)
	require.NoError(t, err)

	sum, err := evaluator.Add(c1, c2)
	require.NoError(t, err)
	d, err := decryptor.Decrypt(sum)
	require.NoError(t, err)
	require.Equal(t, int64(7), enc.Decode(d))
}

func TestHomomorphicMulAndRelinearize(t *testing.T) {
	ctx := newTestContext(t)
	kg := NewKeyGenerator(ctx)
	sk := kg.GenSecretKey()
	pk, err := kg.GenPublicKey(sk)
	require.NoError(t, err)
	rlk, err := kg.GenRelinearizationKey(sk)
	require.NoError(t, err)

	enc := NewEncoder(ctx)
	encryptor := NewEncryptor(ctx, pk)
	decryptor := NewDecryptor(ctx, sk)
	evaluator := NewEvaluator(ctx, &rlk)

	m1, _ := enc.Encode(3)
	m2, _ := enc.Encode(4)
	c1, err := encryptor.Encrypt(m1)
	require.NoError(t, err)
	c2, err := encryptor.Encrypt(m2)
	require.NoError(t, err)

	prod, err := evaluator.Mul(c1, c2)
	require.NoError(t, err)
	require.Equal(t, 2, prod.Degree())

	relin, err := evaluator.Relinearize(prod)
	require.NoError(t, err)
	require.Equal(t, 1, relin.Degree())

	d, err := decryptor.Decrypt(relin)
	require.NoError(t, err)
	require.Equal(t, int64(12), enc.Decode(d))
}

func TestRelinearizeWithoutKeyErrors(t *testing.T) {
	ctx := newTestContext(t)
	kg := NewKeyGenerator(ctx)
	sk := kg.GenSecretKey()
	pk, err := kg.GenPublicKey(sk)
	require.NoError(t, err)

	enc := NewEncoder(ctx)
	encryptor := NewEncryptor(ctx, pk)
	evaluator := NewEvaluator(ctx, nil)

	m1, _ := enc.Encode(2)
	m2, _ := enc.Encode(2)
	c1, err := encryptor.Encrypt(m1)
	require.NoError(t, err)
	c2, err := encryptor.Encrypt(m2)
	require.NoError(t, err)

	prod, err := evaluator.Mul(c1, c2)
	require.NoError(t, err)

	_, err = evaluator.Relinearize(prod)
	require.ErrorIs(t, err, ErrNoRelinKey)
}
