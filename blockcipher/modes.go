package blockcipher

import (
	"fmt"
	"runtime"
	"sync"
)

// Mode names the block mode an Encrypt/Decrypt call runs (spec §4.10).
type Mode int

const (
	ModeECB Mode = iota
	ModeCBC
	ModeCTR
)

// parallelThreshold is the input size above which CBC decryption and CTR
// fan out across a worker pool instead of running on one goroutine; below it
// the dispatch overhead would dominate the work itself.
const parallelThreshold = 64 * BlockSize

// forBlocks splits n blocks across min(n, GOMAXPROCS) goroutines and calls fn
// on each [start, end) range, one chunk per goroutine, waiting on a
// sync.WaitGroup until all chunks are done.
func forBlocks(n int, fn func(start, end int)) {
	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}
	if workers <= 1 {
		fn(0, n)
		return
	}
	var wg sync.WaitGroup
	wg.Add(workers)
	chunk := (n + workers - 1) / workers
	for w := 0; w < workers; w++ {
		start := w * chunk
		end := start + chunk
		if end > n {
			end = n
		}
		if start >= end {
			wg.Done()
			continue
		}
		go func(start, end int) {
			defer wg.Done()
			fn(start, end)
		}(start, end)
	}
	wg.Wait()
}

// EncryptECB encrypts each block independently, fanning out across a worker
// pool above parallelThreshold (spec §5 concurrency model).
func EncryptECB(c *Cipher, plaintext []byte) ([]byte, error) {
	if len(plaintext)%BlockSize != 0 {
		return nil, fmt.Errorf("blockcipher: error : ECB input must be block-aligned")
	}
	n := len(plaintext) / BlockSize
	out := make([]byte, len(plaintext))
	encryptRange := func(start, end int) {
		for i := start; i < end; i++ {
			block, _ := c.EncryptBlock(plaintext[i*BlockSize : (i+1)*BlockSize])
			copy(out[i*BlockSize:(i+1)*BlockSize], block)
		}
	}
	if len(plaintext) >= parallelThreshold {
		forBlocks(n, encryptRange)
	} else {
		encryptRange(0, n)
	}
	return out, nil
}

// DecryptECB is ECB's inverse; every block is independent so it always
// parallelizes above parallelThreshold.
func DecryptECB(c *Cipher, ciphertext []byte) ([]byte, error) {
	if len(ciphertext)%BlockSize != 0 {
		return nil, fmt.Errorf("blockcipher: error : ECB input must be block-aligned")
	}
	n := len(ciphertext) / BlockSize
	out := make([]byte, len(ciphertext))
	decryptRange := func(start, end int) {
		for i := start; i < end; i++ {
			block, _ := c.DecryptBlock(ciphertext[i*BlockSize : (i+1)*BlockSize])
			copy(out[i*BlockSize:(i+1)*BlockSize], block)
		}
	}
	if len(ciphertext) >= parallelThreshold {
		forBlocks(n, decryptRange)
	} else {
		decryptRange(0, n)
	}
	return out, nil
}

// EncryptCBC chains each block's plaintext with the previous ciphertext
// block, so encryption is strictly sequential (spec §5: "CBC encryption is
// sequential by construction").
func EncryptCBC(c *Cipher, iv, plaintext []byte) ([]byte, error) {
	if len(iv) != BlockSize {
		return nil, fmt.Errorf("blockcipher: error : IV must be %d bytes", BlockSize)
	}
	if len(plaintext)%BlockSize != 0 {
		return nil, fmt.Errorf("blockcipher: error : CBC input must be block-aligned")
	}
	n := len(plaintext) / BlockSize
	out := make([]byte, len(plaintext))
	prev := iv
	for i := 0; i < n; i++ {
		block := make([]byte, BlockSize)
		for j := range block {
			block[j] = plaintext[i*BlockSize+j] ^ prev[j]
		}
		enc, err := c.EncryptBlock(block)
		if err != nil {
			return nil, err
		}
		copy(out[i*BlockSize:(i+1)*BlockSize], enc)
		prev = enc
	}
	return out, nil
}

// DecryptCBC is embarrassingly parallel across blocks since each only needs
// the matching ciphertext block and its predecessor, both already available
// (spec §5).
func DecryptCBC(c *Cipher, iv, ciphertext []byte) ([]byte, error) {
	if len(iv) != BlockSize {
		return nil, fmt.Errorf("blockcipher: error : IV must be %d bytes", BlockSize)
	}
	if len(ciphertext)%BlockSize != 0 {
		return nil, fmt.Errorf("blockcipher: error : CBC input must be block-aligned")
	}
	n := len(ciphertext) / BlockSize
	out := make([]byte, len(ciphertext))
	decryptRange := func(start, end int) {
		for i := start; i < end; i++ {
			cur := ciphertext[i*BlockSize : (i+1)*BlockSize]
			dec, _ := c.DecryptBlock(cur)
			var prev []byte
			if i == 0 {
				prev = iv
			} else {
				prev = ciphertext[(i-1)*BlockSize : i*BlockSize]
			}
			for j := 0; j < BlockSize; j++ {
				out[i*BlockSize+j] = dec[j] ^ prev[j]
			}
		}
	}
	if len(ciphertext) >= parallelThreshold {
		forBlocks(n, decryptRange)
	} else {
		decryptRange(0, n)
	}
	return out, nil
}

// incrementCounter returns a copy of the big-endian 16-byte counter
// incremented by `by`; counter itself is not modified.
func incrementCounter(counter []byte, by int) []byte {
	out := make([]byte, len(counter))
	copy(out, counter)
	carry := uint64(by)
	for i := len(out) - 1; i >= 0 && carry > 0; i-- {
		sum := uint64(out[i]) + carry
		out[i] = byte(sum)
		carry = sum >> 8
	}
	return out
}

// cryptCTR XORs plaintext/ciphertext with the AES encryption of successive
// counter values; encrypt and decrypt are the same operation in CTR mode,
// and every block's keystream is independent so both directions parallelize
// above parallelThreshold (spec §5).
func cryptCTR(c *Cipher, nonce, data []byte) ([]byte, error) {
	if len(nonce) != BlockSize {
		return nil, fmt.Errorf("blockcipher: error : CTR nonce must be %d bytes", BlockSize)
	}
	n := (len(data) + BlockSize - 1) / BlockSize
	out := make([]byte, len(data))
	cryptRange := func(start, end int) {
		for i := start; i < end; i++ {
			counter := incrementCounter(nonce, i)
			keystream, _ := c.EncryptBlock(counter)
			lo, hi := i*BlockSize, (i+1)*BlockSize
			if hi > len(data) {
				hi = len(data)
			}
			for j := lo; j < hi; j++ {
				out[j] = data[j] ^ keystream[j-lo]
			}
		}
	}
	if len(data) >= parallelThreshold {
		forBlocks(n, cryptRange)
	} else {
		cryptRange(0, n)
	}
	return out, nil
}

func EncryptCTR(c *Cipher, nonce, plaintext []byte) ([]byte, error) {
	return cryptCTR(c, nonce, plaintext)
}

func DecryptCTR(c *Cipher, nonce, ciphertext []byte) ([]byte, error) {
	return cryptCTR(c, nonce, ciphertext)
}
