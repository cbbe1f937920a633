package ring

import "math/bits"

// bitsMul64 and bitsDiv64 give mulMod a 128-bit intermediate product without
// risking uint64 overflow, following the teacher's use of math/bits for
// Montgomery/Barrett reduction (ring/modular_reduction.go).
func bitsMul64(a, b uint64) (hi, lo uint64) {
	return bits.Mul64(a, b)
}

func bitsDiv64(hi, lo, q uint64) (quo, rem uint64) {
	if hi == 0 {
		return lo / q, lo % q
	}
	return bits.Div64(hi, lo, q)
}
