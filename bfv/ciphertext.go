package bfv

import "github.com/campaluca/ringcrypt/ring"

// Ciphertext is a list of Rq elements in coefficient basis: length 2 for a
// fresh or added ciphertext, length 3 immediately after a naive Mul, before
// Relinearize brings it back down to 2 (spec §4.6).
type Ciphertext struct {
	Elems []ring.Rq
}

func (c Ciphertext) Degree() int { return len(c.Elems) - 1 }
