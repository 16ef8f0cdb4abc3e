// SPDX-FileCopyrightText: 2025 The Streamkit authors
// SPDX-License-Identifier: MIT

// Package trivium implements the Trivium stream cipher, the 288-bit
// NLFSR design by Christophe De Cannière and Bart Preneel from the
// eSTREAM hardware portfolio. It operates on 80-bit keys and 80-bit
// initialization vectors and produces one keystream bit per clock.
package trivium

import (
	"crypto/cipher"

	"github.com/streamkit/trivium/internal/nlfsr"
	"github.com/streamkit/trivium/internal/subtle"
)

const (
	// KeySize is the length of a Trivium key in bytes (80 bits).
	KeySize = 10

	// IVSize is the length of a Trivium initialization vector in bytes
	// (80 bits).
	IVSize = 10

	// WarmupClocks is the number of initialization clocks performed by
	// NewCipher before any keystream is produced: four full rotations
	// of the 288-cell register, fixed by the cipher specification.
	WarmupClocks = 4 * nlfsr.Size
)

// Cipher is a keyed Trivium engine. It owns its register exclusively
// and mutates it on every keystream request, so output is a single
// continuous stream across calls. A Cipher is not safe for concurrent
// use; callers sharing one across goroutines must serialize access.
type Cipher struct {
	state nlfsr.State
}

var _ cipher.Stream = (*Cipher)(nil)

// NewCipher creates a Cipher from an 80-bit key and an 80-bit IV and
// runs the warm-up phase. It returns an error wrapping ErrInvalidLength
// if either input is not exactly KeySize/IVSize bytes; no engine is
// constructed in that case.
func NewCipher(key, iv []byte) (*Cipher, error) {
	if len(key) != KeySize {
		return nil, &errorInvalidLength{"key", 8 * len(key)}
	}
	if len(iv) != IVSize {
		return nil, &errorInvalidLength{"iv", 8 * len(iv)}
	}

	c := &Cipher{state: seed(key, iv)}
	for i := 0; i < WarmupClocks; i++ {
		c.state.Clock()
	}

	return c, nil
}

// seed builds the pre-warm-up register: key bits in cells [0,80), IV
// bits in cells [93,173), the last three cells of segment C forced to
// one, everything else zero. Bit 0 of the key is the most significant
// bit of its first byte.
func seed(key, iv []byte) nlfsr.State {
	var s nlfsr.State
	for i := 0; i < 8*KeySize; i++ {
		s[i] = bitAt(key, i)
	}
	for i := 0; i < 8*IVSize; i++ {
		s[nlfsr.HeadB+i] = bitAt(iv, i)
	}
	s[nlfsr.Size-3], s[nlfsr.Size-2], s[nlfsr.Size-1] = 1, 1, 1

	return s
}

// KeystreamBits produces the next n keystream bits in generation
// order, one bit per byte. It returns an error wrapping
// ErrInvalidRequest if n is negative. n == 0 returns an empty slice
// without clocking the register.
func (c *Cipher) KeystreamBits(n int) ([]byte, error) {
	if n < 0 {
		return nil, &errorInvalidRequest{n}
	}

	bits := make([]byte, n)
	for i := range bits {
		bits[i] = c.state.ClockOutput()
	}

	return bits, nil
}

// Keystream produces the next n keystream bits packed into bytes, most
// significant bit first. n must be a non-negative multiple of 8.
func (c *Cipher) Keystream(n int) ([]byte, error) {
	if n < 0 || n%8 != 0 {
		return nil, &errorInvalidRequest{n}
	}

	out := make([]byte, n/8)
	for i := range out {
		out[i] = c.nextByte()
	}

	return out, nil
}

// XORKeyStream XORs each byte in src with a byte of keystream and
// writes the result to dst, consuming eight keystream bits per byte.
// Dst and src must overlap entirely or not at all.
//
// Multiple calls behave as if the concatenation of the src buffers was
// passed in a single run: the Cipher maintains state and does not
// reset between calls.
func (c *Cipher) XORKeyStream(dst, src []byte) {
	if len(dst) < len(src) {
		panic("trivium: output smaller than input")
	}
	if subtle.InexactOverlap(dst[:len(src)], src) {
		panic("trivium: invalid buffer overlap")
	}

	for i, v := range src {
		dst[i] = v ^ c.nextByte()
	}
}

// Encrypt XORs plaintext with the next len(plaintext) bytes of
// keystream, writing to the dst buffer provided. If dst does not have
// the capacity to hold len(plaintext) bytes, a new buffer is
// allocated. Decrypt is the identical operation.
func (c *Cipher) Encrypt(dst, plaintext []byte) []byte {
	dst = growBufferSize(dst, len(plaintext))
	c.XORKeyStream(dst, plaintext)

	return dst
}

// Decrypt XORs ciphertext with keystream, writing to the dst buffer
// provided. It only recovers the plaintext when this engine stands at
// the same stream position the encrypting engine stood at.
func (c *Cipher) Decrypt(dst, ciphertext []byte) []byte {
	return c.Encrypt(dst, ciphertext)
}

// nextByte packs the next eight keystream bits, first bit into the
// most significant position.
func (c *Cipher) nextByte() byte {
	var b byte
	for i := 0; i < 8; i++ {
		b = b<<1 | c.state.ClockOutput()
	}

	return b
}

func growBufferSize(buf []byte, size int) []byte {
	if size <= cap(buf) {
		return buf[:size]
	}

	buf2 := make([]byte, size)
	copy(buf2, buf)

	return buf2
}
