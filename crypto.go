// SPDX-FileCopyrightText: 2025 The Streamkit authors
// SPDX-License-Identifier: MIT

package trivium

import (
	"github.com/pion/transport/v3/utils/xor"
)

// xorBytes computes the exclusive-or of src1 and src2 and stores it in
// dst. It returns the number of bytes written.
func xorBytes(dst, src1, src2 []byte) int {
	n := len(src1)
	if len(src2) < n {
		n = len(src2)
	}
	if len(dst) < n {
		n = len(dst)
	}

	return xor.XorBytes(dst[:n], src1[:n], src2[:n])
}
