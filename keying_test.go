// SPDX-FileCopyrightText: 2025 The Streamkit authors
// SPDX-License-Identifier: MIT

package trivium

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeyFromHex(t *testing.T) {
	key, err := KeyFromHex("0123456789ABCDEF1234")
	require.NoError(t, err)
	assert.Equal(t, []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xAB, 0xCD, 0xEF, 0x12, 0x34}, key)

	for _, s := range []string{"", "0123456789ABCDEF123", "0123456789ABCDEF12345"} {
		_, err := KeyFromHex(s)
		assert.ErrorIs(t, err, ErrInvalidLength, "input %q", s)
	}

	_, err = KeyFromHex("0123456789ABCDEF12ZZ")
	assert.Error(t, err)
}

func TestKeyFromPassphrase(t *testing.T) {
	key := KeyFromPassphrase("it's a secret to everybody", "trivium-key")
	assert.Len(t, key, KeySize)

	again := KeyFromPassphrase("it's a secret to everybody", "trivium-key")
	assert.Equal(t, key, again)

	iv := KeyFromPassphrase("it's a secret to everybody", "trivium-iv")
	assert.Len(t, iv, IVSize)
	assert.NotEqual(t, key, iv)
}

func TestPackUnpackBits(t *testing.T) {
	data := []byte{0x53, 0xB1, 0x42, 0x30}

	bits := UnpackBits(data)
	require.Len(t, bits, 32)
	assert.Equal(t, []byte{0, 1, 0, 1, 0, 0, 1, 1}, bits[:8])

	packed, err := PackBits(bits)
	require.NoError(t, err)
	assert.Equal(t, data, packed)

	_, err = PackBits(bits[:5])
	assert.ErrorIs(t, err, ErrInvalidRequest)
}
