// SPDX-FileCopyrightText: 2025 The Streamkit authors
// SPDX-License-Identifier: MIT

package trivium

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidLength is returned when a key or IV is not exactly
	// 80 bits long.
	ErrInvalidLength = errors.New("invalid length")

	// ErrInvalidRequest is returned when a keystream request cannot be
	// satisfied, such as a negative number of bits.
	ErrInvalidRequest = errors.New("invalid keystream request")

	errNoConfig = errors.New("no config provided")
	errNoConn   = errors.New("no conn provided")
)

type errorInvalidLength struct {
	What string // key or iv
	Bits int
}

func (e *errorInvalidLength) Error() string {
	return fmt.Sprintf("%s is %d bits, want %d: %v", e.What, e.Bits, 8*KeySize, ErrInvalidLength)
}

func (e *errorInvalidLength) Unwrap() error {
	return ErrInvalidLength
}

type errorInvalidRequest struct {
	Bits int
}

func (e *errorInvalidRequest) Error() string {
	return fmt.Sprintf("cannot produce %d keystream bits: %v", e.Bits, ErrInvalidRequest)
}

func (e *errorInvalidRequest) Unwrap() error {
	return ErrInvalidRequest
}
