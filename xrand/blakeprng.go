package xrand

import (
	"encoding/binary"
	"hash"
	"io"

	"golang.org/x/crypto/blake2b"
)

// BlakePRNG is a deterministic, seedable io.Reader backed by blake2b-512,
// used to make sampling reproducible in tests via Source.Reseed. Grounded on
// the teacher's own collective-randomness PRNG (dbfv.PRNG), which clocks a
// blake2b-512 state forward one digest at a time, feeding half of each
// digest back in and releasing the other half as output.
type BlakePRNG struct {
	clock uint64
	hash  hash.Hash
	buf   []byte
}

// NewBlakePRNG seeds a deterministic stream from seed. Two PRNGs built from
// the same seed produce identical output streams.
func NewBlakePRNG(seed []byte) (*BlakePRNG, error) {
	h, err := blake2b.New512(nil)
	if err != nil {
		return nil, err
	}
	h.Write(seed)
	return &BlakePRNG{hash: h}, nil
}

// clockStep advances the PRNG one step, returning 32 fresh bytes and feeding the
// other 32 back into the hash state so the next call is not a function of
// this one's output alone.
func (p *BlakePRNG) clockStep() []byte {
	digest := p.hash.Sum(nil)
	p.hash.Write(digest[:32])
	p.clock++
	var ctr [8]byte
	binary.LittleEndian.PutUint64(ctr[:], p.clock)
	p.hash.Write(ctr[:])
	return digest[32:]
}

// Read implements io.Reader, satisfying the interface Source.reader expects.
func (p *BlakePRNG) Read(out []byte) (int, error) {
	n := 0
	for n < len(out) {
		if len(p.buf) == 0 {
			p.buf = p.clockStep()
		}
		copied := copy(out[n:], p.buf)
		p.buf = p.buf[copied:]
		n += copied
	}
	return n, nil
}

var _ io.Reader = (*BlakePRNG)(nil)
