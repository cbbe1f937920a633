package ring

import "fmt"

// ZqRing is the immutable parent of a family of Zq residues sharing modulus
// Q. Construction is the only place a ZqRing comes into being; all Zq values
// sharing a ZqRing compare parents by pointer identity (spec §9, "Cyclic
// parent/child references").
type ZqRing struct {
	Q uint64
}

// NewZqRing constructs the parent for residues modulo q.
func NewZqRing(q uint64) *ZqRing {
	return &ZqRing{Q: q}
}

// Zq is a residue class modulo its parent's Q, represented by the canonical
// lift in [0, Q).
type Zq struct {
	Lift   uint64
	Parent *ZqRing
}

// Apply reduces x (interpreted mod Q, negative x wrapped into [0, Q)) into
// the canonical lift.
func (zr *ZqRing) Apply(x int64) Zq {
	q := int64(zr.Q)
	v := x % q
	if v < 0 {
		v += q
	}
	return Zq{Lift: uint64(v), Parent: zr}
}

// ApplyUint reduces an already-non-negative value.
func (zr *ZqRing) ApplyUint(x uint64) Zq {
	return Zq{Lift: x % zr.Q, Parent: zr}
}

func (zr *ZqRing) Zero() Zq { return Zq{Lift: 0, Parent: zr} }
func (zr *ZqRing) One() Zq  { return Zq{Lift: 1 % zr.Q, Parent: zr} }

func (a Zq) sameParent(b Zq) error {
	if a.Parent != b.Parent {
		return fmt.Errorf("%w: Zq moduli %d vs %d", ErrDomainMismatch, a.Parent.Q, b.Parent.Q)
	}
	return nil
}

// Add, Sub, Mul, Neg satisfy ring.Elt[Zq]. They panic on a parent mismatch
// rather than return an error, per spec §7: mismatched parents are a
// programmer error, not a data-dependent failure (unlike Inverse/NotInvertible).
func (a Zq) Add(b Zq) Zq {
	if err := a.sameParent(b); err != nil {
		panic(err)
	}
	return Zq{Lift: addMod(a.Lift, b.Lift, a.Parent.Q), Parent: a.Parent}
}

func (a Zq) Sub(b Zq) Zq {
	if err := a.sameParent(b); err != nil {
		panic(err)
	}
	return Zq{Lift: subMod(a.Lift, b.Lift, a.Parent.Q), Parent: a.Parent}
}

func (a Zq) Mul(b Zq) Zq {
	if err := a.sameParent(b); err != nil {
		panic(err)
	}
	return Zq{Lift: mulMod(a.Lift, b.Lift, a.Parent.Q), Parent: a.Parent}
}

func (a Zq) Neg() Zq {
	if a.Lift == 0 {
		return a
	}
	return Zq{Lift: a.Parent.Q - a.Lift, Parent: a.Parent}
}

func (a Zq) Equal(b Zq) bool {
	return a.Parent == b.Parent && a.Lift == b.Lift
}

func (a Zq) IsZero() bool { return a.Lift == 0 }

// Inv returns a^-1 via extended Euclidean algorithm; ErrNotInvertible if
// gcd(lift, Q) != 1.
func (a Zq) Inv() (Zq, error) {
	g, x, _ := extGCDInt64(int64(a.Lift), int64(a.Parent.Q))
	if g != 1 {
		return Zq{}, fmt.Errorf("%w: %d has no inverse mod %d", ErrNotInvertible, a.Lift, a.Parent.Q)
	}
	return a.Parent.Apply(x), nil
}

// Cmp orders by canonical lift; used only for internal centering when
// lifting to a signed representative (spec §4.1).
func (a Zq) Cmp(b Zq) int {
	switch {
	case a.Lift < b.Lift:
		return -1
	case a.Lift > b.Lift:
		return 1
	default:
		return 0
	}
}

// CenteredLift returns the representative in (-Q/2, Q/2].
func (a Zq) CenteredLift() int64 {
	if a.Lift > a.Parent.Q/2 {
		return int64(a.Lift) - int64(a.Parent.Q)
	}
	return int64(a.Lift)
}

func addMod(a, b, q uint64) uint64 {
	s := a + b
	if s >= q {
		s -= q
	}
	return s
}

func subMod(a, b, q uint64) uint64 {
	if a >= b {
		return a - b
	}
	return q - (b - a)
}

func mulMod(a, b, q uint64) uint64 {
	// q fits in 62 bits for every modulus this module constructs (NTT-friendly
	// primes here top out well under 2^61), so a plain 128-bit-safe product
	// via math/bits avoids an accidental uint64 overflow.
	hi, lo := bitsMul64(a, b)
	_, r := bitsDiv64(hi, lo, q)
	return r
}

// extGCDInt64 returns (gcd, x, y) with a*x + b*y = gcd.
func extGCDInt64(a, b int64) (int64, int64, int64) {
	old_r, r := a, b
	old_s, s := int64(1), int64(0)
	old_t, t := int64(0), int64(1)
	for r != 0 {
		quot := old_r / r
		old_r, r = r, old_r-quot*r
		old_s, s = s, old_s-quot*s
		old_t, t = t, old_t-quot*t
	}
	return old_r, old_s, old_t
}
