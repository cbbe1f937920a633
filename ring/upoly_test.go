package ring

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func zqPoly(zr *ZqRing, coeffs ...int64) UPoly[Zq] {
	cs := make([]Zq, len(coeffs))
	for i, c := range coeffs {
		cs[i] = zr.Apply(c)
	}
	return New(cs, "x", Schoolbook, true, zr.Zero())
}

func TestUPolyAddSubMul(t *testing.T) {
	zr := NewZqRing(101)
	a := zqPoly(zr, 1, 2, 3) // 1 + 2x + 3x^2
	b := zqPoly(zr, 4, 5)    // 4 + 5x

	sum := a.Add(b)
	require.Equal(t, int64(5), sum.Coeff(0).CenteredLift())
	require.Equal(t, int64(7), sum.Coeff(1).CenteredLift())
	require.Equal(t, int64(3), sum.Coeff(2).CenteredLift())

	prod := a.Mul(b)
	// (1+2x+3x^2)(4+5x) = 4 + 13x + 22x^2 + 15x^3
	require.Equal(t, 3, prod.Degree())
	require.Equal(t, int64(4), prod.Coeff(0).CenteredLift())
	require.Equal(t, int64(13), prod.Coeff(1).CenteredLift())
	require.Equal(t, int64(22), prod.Coeff(2).CenteredLift())
	require.Equal(t, int64(15), prod.Coeff(3).CenteredLift())
}

func TestUPolyDivMod(t *testing.T) {
	zr := NewZqRing(101)
	// x^3 - 1 divided by x - 1 => quotient x^2+x+1, remainder 0
	a := zqPoly(zr, -1, 0, 0, 1)
	b := zqPoly(zr, -1, 1)

	quo, rem, err := DivMod[Zq](a, b)
	require.NoError(t, err)
	require.True(t, rem.isZeroPoly())
	require.Equal(t, 2, quo.Degree())
	require.Equal(t, int64(1), quo.Coeff(0).CenteredLift())
	require.Equal(t, int64(1), quo.Coeff(1).CenteredLift())
	require.Equal(t, int64(1), quo.Coeff(2).CenteredLift())
}

func TestUPolyDivModByZeroErrors(t *testing.T) {
	zr := NewZqRing(101)
	a := zqPoly(zr, 1, 2)
	zero := zqPoly(zr, 0)
	_, _, err := DivMod[Zq](a, zero)
	require.ErrorIs(t, err, ErrDivByZeroPoly)
}

func TestUPolyStripsTrailingZeros(t *testing.T) {
	zr := NewZqRing(101)
	p := zqPoly(zr, 1, 2, 0, 0)
	require.Equal(t, 1, p.Degree())
}
