package ring

// Elt is the capability set a coefficient ring T must provide for UPoly[T]
// to be instantiated over it. It replaces the source's runtime ClassTypes
// tag (spec §9 REDESIGN FLAGS) with a compile-time, exhaustively-checked
// interface.
type Elt[T any] interface {
	Add(T) T
	Sub(T) T
	Mul(T) T
	Neg() T
	Equal(T) bool
	IsZero() bool
}

// Field additionally requires multiplicative inverses, needed for Euclidean
// division (DivMod) and for Rq.Inverse's extended-GCD step.
type Field[T any] interface {
	Elt[T]
	Inv() (T, error)
}
