// SPDX-License-Identifier: MIT
// Package: randlab/rejection
//
// source.go — injectable uniform random sources.

package rejection

import (
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"math/rand"
)

// UniformSource yields independent draws from U[0,1).
// *math/rand.Rand satisfies it.
type UniformSource interface {
	Float64() float64
}

// NewSourceFromSeed returns a deterministic source for seed.
func NewSourceFromSeed(seed int64) UniformSource {
	return rand.New(rand.NewSource(seed))
}

// NewSeededSource returns a fresh source seeded from crypto/rand.
func NewSeededSource() (UniformSource, error) {
	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return nil, fmt.Errorf("read random seed: %w", err)
	}

	return NewSourceFromSeed(int64(binary.LittleEndian.Uint64(b[:]))), nil
}

// FixedSource replays a fixed list of draws, wrapping around at the end.
// It is meant for tests and demonstrations.
type FixedSource struct {
	values []float64
	next   int
}

// NewFixedSource returns a source cycling over values.
// Panics if values is empty.
func NewFixedSource(values ...float64) *FixedSource {
	if len(values) == 0 {
		panic("rejection: NewFixedSource()")
	}
	cp := make([]float64, len(values))
	copy(cp, values)

	return &FixedSource{values: cp}
}

// Float64 returns the next fixed value.
func (s *FixedSource) Float64() float64 {
	v := s.values[s.next]
	s.next = (s.next + 1) % len(s.values)
	return v
}
