package ring

import (
	"testing"

	"github.com/stretchr/testify/require"
)

const testNTTPrime = 12289 // NewHope-style prime, 1 mod 4096 = 2*2048

func TestNTTRoundTripAllAlgorithms(t *testing.T) {
	algos := []NTTAlgorithm{CooleyTukey, Iterative, NegativeConvolution}
	for _, algo := range algos {
		findeg := FindegCyclic
		if algo == NegativeConvolution {
			findeg = FindegNegacyclic
		}
		ctx, err := NewNTTContext(16, testNTTPrime, findeg, algo)
		require.NoError(t, err)

		in := make([]uint64, 16)
		for i := range in {
			in[i] = uint64(i + 1)
		}
		freq, err := ctx.ToNTT(in)
		require.NoError(t, err)
		back, err := ctx.FromNTT(freq)
		require.NoError(t, err)
		require.Equal(t, in, back)
	}
}

func TestNTTRejectsNonPowerOfTwo(t *testing.T) {
	_, err := NewNTTContext(15, testNTTPrime, FindegCyclic, CooleyTukey)
	require.Error(t, err)
}

func TestGetNthRootOfUnity(t *testing.T) {
	root, err := GetNthRootOfUnity(testNTTPrime, 16)
	require.NoError(t, err)

	// root^16 == 1 mod q
	require.Equal(t, uint64(1), modpow(root, 16, testNTTPrime))
	// no smaller divisor of 16 gives 1 (exact order 16)
	require.NotEqual(t, uint64(1), modpow(root, 8, testNTTPrime))
}
