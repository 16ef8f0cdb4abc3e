// SPDX-FileCopyrightText: 2025 The Streamkit authors
// SPDX-License-Identifier: MIT

package nlfsr_test

import (
	"math/rand"
	"testing"
)

func BenchmarkClock(b *testing.B) {
	b.ReportAllocs()
	s := randomState(rand.New(rand.NewSource(6))) //nolint:gosec
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Clock()
	}
}

func BenchmarkClockOutput(b *testing.B) {
	b.ReportAllocs()
	s := randomState(rand.New(rand.NewSource(7))) //nolint:gosec
	var sink byte
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sink ^= s.ClockOutput()
	}
	_ = sink
}

func BenchmarkUnclock(b *testing.B) {
	b.ReportAllocs()
	s := randomState(rand.New(rand.NewSource(8))) //nolint:gosec
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Unclock()
	}
}
