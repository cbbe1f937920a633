package ring

import (
	"testing"

	"github.com/campaluca/ringcrypt/number"
	"github.com/stretchr/testify/require"
)

func TestRoundPolyTiesToEven(t *testing.T) {
	coeffs := []number.BigDec{
		number.NewBigDec(1.5),
		number.NewBigDec(2.5),
		number.NewBigDec(-0.5),
	}
	p := New(coeffs, "x", Schoolbook, false, number.ZeroBigDec())

	rounded := RoundPoly(p)
	require.Equal(t, 3, len(rounded.Coeffs))
	// Ties-to-even: 1.5 -> 2, 2.5 -> 2, -0.5 -> 0.
	require.True(t, rounded.Coeffs[0].Equal(number.NewBigInt(2)))
	require.True(t, rounded.Coeffs[1].Equal(number.NewBigInt(2)))
	require.True(t, rounded.Coeffs[2].Equal(number.NewBigInt(0)))
}
