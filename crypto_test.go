// SPDX-FileCopyrightText: 2025 The Streamkit authors
// SPDX-License-Identifier: MIT

package trivium

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestXorBytes(t *testing.T) {
	rng := rand.New(rand.NewSource(10)) //nolint:gosec

	for i := 0; i < 256; i++ {
		src1 := make([]byte, i)
		src2 := make([]byte, i)
		_, _ = rng.Read(src1)
		_, _ = rng.Read(src2)

		dst := make([]byte, i)
		n := xorBytes(dst, src1, src2)
		require.Equal(t, i, n)

		for j := range dst {
			assert.Equal(t, src1[j]^src2[j], dst[j])
		}
	}
}

func TestXorBytesTruncates(t *testing.T) {
	src1 := []byte{0xFF, 0xFF, 0xFF}
	src2 := []byte{0x0F, 0x0F}
	dst := make([]byte, 3)

	n := xorBytes(dst, src1, src2)
	assert.Equal(t, 2, n)
	assert.Equal(t, []byte{0xF0, 0xF0, 0x00}, dst)

	n = xorBytes(dst[:1], src1, src2)
	assert.Equal(t, 1, n)
}
