package ring

import "testing"

import "github.com/stretchr/testify/require"

func TestZqAddSubMulInverse(t *testing.T) {
	q := NewZqRing(97)
	a := q.Apply(40)
	b := q.Apply(90)

	require.Equal(t, uint64(33), a.Add(b).Lift) // 40+90 = 130 = 33 mod 97
	require.Equal(t, uint64(47), a.Sub(b).Lift) // 40-90 = -50 = 47 mod 97
	require.Equal(t, uint64(11), a.Mul(b).Lift) // 40*90 = 3600 = 11 mod 97

	inv, err := a.Inv()
	require.NoError(t, err)
	require.True(t, a.Mul(inv).Equal(q.One()))
}

func TestZqNegativeApplyWraps(t *testing.T) {
	q := NewZqRing(13)
	require.Equal(t, uint64(8), q.Apply(-5).Lift)
}

func TestZqInverseOfZeroFails(t *testing.T) {
	q := NewZqRing(11)
	_, err := q.Zero().Inv()
	require.ErrorIs(t, err, ErrNotInvertible)
}

func TestZqAddPanicsOnParentMismatch(t *testing.T) {
	q1 := NewZqRing(7)
	q2 := NewZqRing(11)
	require.Panics(t, func() {
		q1.Apply(1).Add(q2.Apply(1))
	})
}

func TestZqCenteredLift(t *testing.T) {
	q := NewZqRing(17)
	require.Equal(t, int64(-8), q.Apply(9).CenteredLift())
	require.Equal(t, int64(8), q.Apply(8).CenteredLift())
}
