// SPDX-FileCopyrightText: 2025 The Streamkit authors
// SPDX-License-Identifier: MIT

package trivium

import (
	"crypto/sha1" //nolint:gosec // PBKDF2-SHA1 per the key derivation scheme
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

// pbkdf2Iterations is the PBKDF2 round count used by KeyFromPassphrase.
const pbkdf2Iterations = 4096

// KeyFromHex decodes an 80-bit key or IV from a string of exactly 20
// hexadecimal characters, most significant digit first. It returns an
// error wrapping ErrInvalidLength if the string has any other length.
func KeyFromHex(s string) ([]byte, error) {
	if len(s) != 2*KeySize {
		return nil, &errorInvalidLength{"hex key", 4 * len(s)}
	}

	key, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("malformed hex key: %w", err)
	}

	return key, nil
}

// KeyFromPassphrase derives an 80-bit key from a passphrase and salt
// using PBKDF2-SHA1. Deriving the key and the IV from one passphrase
// requires two distinct salts.
func KeyFromPassphrase(pass, salt string) []byte {
	return pbkdf2.Key([]byte(pass), []byte(salt), pbkdf2Iterations, KeySize, sha1.New)
}

// UnpackBits expands packed bytes into one bit per byte, most
// significant bit of data[0] first.
func UnpackBits(data []byte) []byte {
	bits := make([]byte, 8*len(data))
	for i := range bits {
		bits[i] = bitAt(data, i)
	}

	return bits
}

// PackBits packs bits (one per byte, generation order) into bytes,
// most significant bit first. len(bits) must be a multiple of 8.
func PackBits(bits []byte) ([]byte, error) {
	if len(bits)%8 != 0 {
		return nil, &errorInvalidRequest{len(bits)}
	}

	out := make([]byte, len(bits)/8)
	for i, b := range bits {
		out[i/8] |= (b & 1) << (7 - uint(i)%8)
	}

	return out, nil
}

// bitAt extracts bit i of data in most-significant-bit-first order.
func bitAt(data []byte, i int) byte {
	return (data[i/8] >> (7 - uint(i)%8)) & 1
}
