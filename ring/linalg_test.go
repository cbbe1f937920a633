package ring

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatrixMulVecAndDeterminant2x2(t *testing.T) {
	zq := NewZqRing(97)
	phi := PhiXNMinus1(zq, 4)
	rq := NewRqRing(phi, true)

	one, err := rq.Apply(zqPoly(zq, 1), false)
	require.NoError(t, err)
	two, err := rq.Apply(zqPoly(zq, 2), false)
	require.NoError(t, err)
	zero := rq.Zero()

	m := NewMatrix(rq, 2, 2)
	m.Elems[0][0] = one
	m.Elems[0][1] = two
	m.Elems[1][0] = zero
	m.Elems[1][1] = one

	v := NewVector(rq, 2)
	v.Elems[0] = one
	v.Elems[1] = two

	result, err := m.MulVec(v)
	require.NoError(t, err)
	// [1 2; 0 1] * [1; 2] = [1*1+2*2; 0*1+1*2] = [5; 2]
	five, err := rq.Apply(zqPoly(zq, 5), false)
	require.NoError(t, err)
	require.True(t, result.Elems[0].Poly.Equal(five.Poly))
	require.True(t, result.Elems[1].Poly.Equal(two.Poly))

	det, err := m.Determinant()
	require.NoError(t, err)
	require.True(t, det.Poly.Equal(one.Poly)) // ad-bc = 1*1 - 2*0 = 1
}

func TestVectorDot(t *testing.T) {
	zq := NewZqRing(97)
	phi := PhiXNMinus1(zq, 4)
	rq := NewRqRing(phi, true)

	a := NewVector(rq, 2)
	b := NewVector(rq, 2)
	two, _ := rq.Apply(zqPoly(zq, 2), false)
	three, _ := rq.Apply(zqPoly(zq, 3), false)
	a.Elems[0], a.Elems[1] = two, three
	b.Elems[0], b.Elems[1] = three, two

	dot, err := a.Dot(b)
	require.NoError(t, err)
	twelve, _ := rq.Apply(zqPoly(zq, 12), false)
	require.True(t, dot.Poly.Equal(twelve.Poly))
}
