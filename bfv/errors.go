package bfv

import "errors"

var (
	// ErrParameterOverflow is returned by Encoder.Encode when a plaintext
	// integer does not fit in Params.MaxPlaintextBits() (spec §4.6).
	ErrParameterOverflow = errors.New("plaintext exceeds parameter capacity")

	// ErrNotRelinearized is returned by Evaluator.Mul when either operand is
	// not a degree-1 (2-element) ciphertext; Mul only tensors two
	// already-relinearized ciphertexts together.
	ErrNotRelinearized = errors.New("ciphertext has degree > 1; relinearize first")

	// ErrNoRelinKey is returned by Evaluator.Relinearize when the evaluator
	// was not constructed with a RelinearizationKey.
	ErrNoRelinKey = errors.New("evaluator has no relinearization key")
)
