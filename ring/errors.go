package ring

import "errors"

// Sentinel errors matching the taxonomy of spec §7. ring sits at the lowest,
// most frequently programmatically-checked layer, so these are bare
// sentinels rather than the "error : ..." prefixed strings bfv uses —
// callers are expected to errors.Is against them.
var (
	ErrDomainMismatch  = errors.New("ring: domain mismatch")
	ErrNotInvertible   = errors.New("ring: not invertible")
	ErrDivByZeroPoly   = errors.New("ring: division by zero polynomial")
	ErrBadBasis        = errors.New("ring: operation requires the other NTT basis")
	ErrBadParameters   = errors.New("ring: invalid NTT parameters")
	ErrLengthMismatch  = errors.New("ring: length mismatch")
	ErrParentMismatch  = errors.New("ring: parent mismatch")
)
