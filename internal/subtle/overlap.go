// SPDX-FileCopyrightText: 2025 The Streamkit authors
// SPDX-License-Identifier: MIT

// Package subtle provides the buffer aliasing checks required by the
// cipher.Stream contract.
package subtle

import "unsafe"

// AnyOverlap reports whether x and y share memory at any (not
// necessarily corresponding) index. The memory beyond the slice length
// is ignored.
func AnyOverlap(x, y []byte) bool {
	return len(x) > 0 && len(y) > 0 &&
		uintptr(unsafe.Pointer(&x[0])) <= uintptr(unsafe.Pointer(&y[len(y)-1])) &&
		uintptr(unsafe.Pointer(&y[0])) <= uintptr(unsafe.Pointer(&x[len(x)-1]))
}

// InexactOverlap reports whether x and y share memory at any
// non-corresponding index. Processing such buffers in place would
// corrupt the output, so callers must reject them.
func InexactOverlap(x, y []byte) bool {
	if len(x) == 0 || len(y) == 0 || &x[0] == &y[0] {
		return false
	}

	return AnyOverlap(x, y)
}
