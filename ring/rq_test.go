package ring

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/campaluca/ringcrypt/xrand"
)

func newTestRqRing(t *testing.T, n int, q uint64) *RqRing {
	t.Helper()
	zq := NewZqRing(q)
	phi := PhiXNPlus1(zq, n)
	rq := NewRqRing(phi, true)
	ctx, err := NewNTTContext(n, q, FindegNegacyclic, NegativeConvolution)
	require.NoError(t, err)
	return rq.WithNTT(ctx)
}

func TestRqApplyNTTRoundTrip(t *testing.T) {
	rq := newTestRqRing(t, 16, testNTTPrime)
	src := xrand.Default()
	a := rq.UniformRq(src)

	evalForm, err := rq.ApplyNTT(a)
	require.NoError(t, err)
	require.True(t, evalForm.NTTForm)

	back, err := rq.FromNTT(evalForm, true)
	require.NoError(t, err)
	require.True(t, a.Poly.Equal(back.Poly))
}

func TestRqAddBasisIsConjunctionOfOperands(t *testing.T) {
	rq := newTestRqRing(t, 16, testNTTPrime)
	src := xrand.Default()
	a := rq.UniformRq(src)
	b, err := rq.ApplyNTT(rq.UniformRq(src))
	require.NoError(t, err)

	sum, err := a.Add(b)
	require.NoError(t, err)
	require.False(t, sum.NTTForm)

	both, err := b.Add(b)
	require.NoError(t, err)
	require.True(t, both.NTTForm)
}

func TestRqMulViaNTTMatchesSchoolbook(t *testing.T) {
	rq := newTestRqRing(t, 16, testNTTPrime)
	src := xrand.Default()
	a := rq.UniformRq(src)
	b := rq.UniformRq(src)

	schoolbook, err := a.Mul(b)
	require.NoError(t, err)

	aEval, err := rq.ApplyNTT(a)
	require.NoError(t, err)
	bEval, err := rq.ApplyNTT(b)
	require.NoError(t, err)
	prodEval, err := aEval.Mul(bEval)
	require.NoError(t, err)
	viaNTT, err := rq.FromNTT(prodEval, true)
	require.NoError(t, err)

	require.True(t, schoolbook.Poly.Equal(viaNTT.Poly))
}

func TestRqInverseAndDiv(t *testing.T) {
	zq := NewZqRing(97)
	phi := PhiXNMinus1(zq, 4)
	rq := NewRqRing(phi, true)

	a, err := rq.Apply(zqPoly(zq, 1, 2), false)
	require.NoError(t, err)

	inv, err := a.Inverse()
	require.NoError(t, err)
	prod, err := a.Mul(inv)
	require.NoError(t, err)

	one, err := rq.Apply(zqPoly(zq, 1), false)
	require.NoError(t, err)
	require.True(t, prod.Poly.Equal(one.Poly))

	div, err := a.Div(a)
	require.NoError(t, err)
	require.True(t, div.Poly.Equal(one.Poly))
}

func TestRqZeroLengthConvention(t *testing.T) {
	fixed := newTestRqRing(t, 16, testNTTPrime)
	require.Len(t, fixed.Zero().Poly.Coeffs, 16)

	zq := NewZqRing(97)
	phi := PhiXNMinus1(zq, 4)
	variable := NewRqRing(phi, false)
	require.Len(t, variable.Zero().Poly.Coeffs, 1)
}

func TestRqBaseDecomposeRecombines(t *testing.T) {
	rq := newTestRqRing(t, 16, testNTTPrime)
	src := xrand.Default()
	a := rq.UniformRq(src)

	digits, err := rq.BaseDecompose(a, 4)
	require.NoError(t, err)

	acc := rq.Zero()
	base := rq.Zq.One()
	for _, d := range digits {
		scaled := d.Poly.ScalarMul(base)
		var err error
		acc, err = acc.Add(Rq{Poly: scaled, Parent: rq, NTTForm: false})
		require.NoError(t, err)
		base = base.Mul(rq.Zq.ApplyUint(4))
	}
	require.True(t, acc.Poly.Equal(a.Poly))
}
