// SPDX-FileCopyrightText: 2025 The Streamkit authors
// SPDX-License-Identifier: MIT

// Package nlfsr implements the 288-bit nonlinear feedback shift register
// at the core of the Trivium stream cipher.
//
// The register is the concatenation of three shift registers:
//
//	A: cells   0..92   (93 cells)
//	B: cells  93..176  (84 cells)
//	C: cells 177..287  (111 cells)
//
// Each clock computes one feedback bit per register from fixed tap
// positions and rotates it into the head of the next register in the
// A->B->C->A cycle. The feedback is nonlinear: every feedback bit folds
// in a single AND of two adjacent cells.
package nlfsr

// Size is the number of one-bit cells in the register.
const Size = 288

// Heads of the three register segments. A spans [HeadA, HeadB),
// B spans [HeadB, HeadC), C spans [HeadC, Size).
const (
	HeadA = 0
	HeadB = 93
	HeadC = 177
)

// State holds the register contents, one bit per cell. Only the low bit
// of each cell is significant.
//
// Every clock mutates the State in place; callers sharing a State
// across goroutines must serialize access themselves.
type State [Size]byte

// Clock advances the register by one step using the initialization
// feedback functions
//
//	t1 = s65  + s90*s91   + s92  + s170
//	t2 = s161 + s174*s175 + s176 + s263
//	t3 = s242 + s285*s286 + s287 + s68
//
// over GF(2). All taps are read from the pre-shift state; the segment
// shifts begin only once t1..t3 are fixed, so no read ever observes a
// cell written by the same clock.
func (s *State) Clock() {
	t1 := s[65] ^ (s[90] & s[91]) ^ s[92] ^ s[170]
	t2 := s[161] ^ (s[174] & s[175]) ^ s[176] ^ s[263]
	t3 := s[242] ^ (s[285] & s[286]) ^ s[287] ^ s[68]

	s.rotate(t1, t2, t3)
}

// ClockOutput advances the register by one step using the keystream
// feedback functions and returns the output bit
//
//	z = s65 + s92 + s161 + s176 + s242 + s287
//
// The inserted feedback bits are identical to Clock's; splitting each
// into a linear half and a nonlinear refinement keeps the output taps
// in one place, matching the cipher specification.
func (s *State) ClockOutput() byte {
	t1 := s[65] ^ s[92]
	t2 := s[161] ^ s[176]
	t3 := s[242] ^ s[287]

	z := t1 ^ t2 ^ t3

	t1 ^= (s[90] & s[91]) ^ s[170]
	t2 ^= (s[174] & s[175]) ^ s[263]
	t3 ^= (s[285] & s[286]) ^ s[68]

	s.rotate(t1, t2, t3)

	return z
}

// rotate shifts each segment right by one cell, dropping the trailing
// bit (already folded into a feedback function) and inserting the
// preceding segment's feedback bit at the head: t3 enters A, t1 enters
// B, t2 enters C. Segments are disjoint and the shifts run tail-first,
// so every cell is read before it is overwritten.
func (s *State) rotate(t1, t2, t3 byte) {
	for i := Size - 1; i > HeadC; i-- {
		s[i] = s[i-1]
	}
	s[HeadC] = t2

	for i := HeadC - 1; i > HeadB; i-- {
		s[i] = s[i-1]
	}
	s[HeadB] = t1

	for i := HeadB - 1; i > HeadA; i-- {
		s[i] = s[i-1]
	}
	s[HeadA] = t3
}

// Unclock is the exact inverse of Clock, and of ClockOutput since both
// insert the same feedback bits. It shifts every segment left by one
// cell and solves each feedback function for the single trailing bit
// that the forward clock consumed. For every state S, Clock followed by
// Unclock restores S bit for bit.
func (s *State) Unclock() {
	t3, t1, t2 := s[HeadA], s[HeadB], s[HeadC]

	// Recover the dropped trailing bits by cancelling the known taps
	// out of the feedback bits. Each pre-shift cell i sits at i+1 here.
	a92 := t1 ^ s[66] ^ (s[91] & s[92]) ^ s[171]
	b176 := t2 ^ s[162] ^ (s[175] & s[176]) ^ s[264]
	c287 := t3 ^ s[243] ^ (s[286] & s[287]) ^ s[69]

	for i := HeadA; i < HeadB-1; i++ {
		s[i] = s[i+1]
	}
	s[HeadB-1] = a92

	for i := HeadB; i < HeadC-1; i++ {
		s[i] = s[i+1]
	}
	s[HeadC-1] = b176

	for i := HeadC; i < Size-1; i++ {
		s[i] = s[i+1]
	}
	s[Size-1] = c287
}
