// SPDX-License-Identifier: MIT
// Package: randlab/sequence
//
// generator.go — the shared Next(x) capability of every recurrence.
//
// Contract:
//   • NewGenerator validates parameters once; Next never fails.
//   • Congruential arithmetic is exact for any int64 modulus: a and b are
//     reduced into [0,m) and products use a 128-bit intermediate.
//   • Middle-square works on the decimal form, so it is exact for d ≤ 18.

package sequence

import (
	"math/big"
	"math/bits"
	"strconv"
	"strings"
)

const (
	// MaxDigits is the largest middle-square width whose values still fit
	// in an int64.
	MaxDigits = 18

	// maxNativeDigits is the largest width whose square fits in a uint64.
	maxNativeDigits = 9
)

// Generator is one configured recurrence. The zero value is not usable;
// build it with NewGenerator.
type Generator struct {
	method Method

	// congruential state, already reduced modulo m
	a, b, m uint64

	// middle-square state
	digits int
	base   int64 // 10^digits
}

// NewGenerator validates p for method and returns a ready Generator.
func NewGenerator(method Method, p Params) (*Generator, error) {
	switch method {
	case MixedCongruential, MultiplicativeCongruential:
		if p.Modulus <= 1 {
			return nil, sequenceErrorf(method, ErrInvalidParameter, "modulus m=%d must be > 1", p.Modulus)
		}
		if p.Seed < 0 || p.Seed >= p.Modulus {
			return nil, sequenceErrorf(method, ErrInvalidParameter, "seed x0=%d must lie in [0, %d)", p.Seed, p.Modulus)
		}
		g := &Generator{
			method: method,
			a:      uint64(reduce(p.Multiplier, p.Modulus)),
			m:      uint64(p.Modulus),
		}
		if method == MixedCongruential {
			g.b = uint64(reduce(p.Increment, p.Modulus))
		}
		return g, nil

	case MiddleSquare:
		if p.Digits <= 0 || p.Digits > MaxDigits {
			return nil, sequenceErrorf(method, ErrInvalidParameter, "digits d=%d must lie in [1, %d]", p.Digits, MaxDigits)
		}
		base := pow10(p.Digits)
		if p.Seed < 0 || p.Seed >= base {
			return nil, sequenceErrorf(method, ErrInvalidParameter, "seed x0=%d must lie in [0, %d)", p.Seed, base)
		}
		return &Generator{method: method, digits: p.Digits, base: base}, nil

	default:
		return nil, sequenceErrorf(method, ErrUnsupportedMethod, "no recurrence registered")
	}
}

// Method returns the recurrence tag.
func (g *Generator) Method() Method { return g.method }

// Divisor returns the normalization divisor: m or 10^d.
func (g *Generator) Divisor() int64 {
	if g.method == MiddleSquare {
		return g.base
	}
	return int64(g.m)
}

// Next applies one step of the recurrence to x.
func (g *Generator) Next(x int64) int64 {
	switch g.method {
	case MixedCongruential:
		// a·x mod m < m and b < m, so the sum stays below 2m < 2^64.
		return int64((mulMod(g.a, uint64(x), g.m) + g.b) % g.m)
	case MultiplicativeCongruential:
		return int64(mulMod(g.a, uint64(x), g.m))
	default:
		return g.middleSquare(x)
	}
}

// middleSquare squares x, left-pads the decimal form to 2d digits and keeps
// the middle d digits.
func (g *Generator) middleSquare(x int64) int64 {
	var sq string
	if g.digits <= maxNativeDigits {
		ux := uint64(x)
		sq = strconv.FormatUint(ux*ux, 10)
	} else {
		bx := big.NewInt(x)
		sq = new(big.Int).Mul(bx, bx).String()
	}

	width := 2 * g.digits
	if len(sq) < width {
		sq = strings.Repeat("0", width-len(sq)) + sq
	}
	start := (len(sq) - g.digits) / 2
	v, _ := strconv.ParseInt(sq[start:start+g.digits], 10, 64) // digits only, fits by construction

	return v
}

// mulMod returns a·x mod m using a 128-bit product.
func mulMod(a, x, m uint64) uint64 {
	hi, lo := bits.Mul64(a, x)
	return bits.Rem64(hi, lo, m)
}

// reduce maps v into [0,m) with a non-negative remainder.
func reduce(v, m int64) int64 {
	r := v % m
	if r < 0 {
		r += m
	}
	return r
}

// pow10 returns 10^d for 0 ≤ d ≤ 18.
func pow10(d int) int64 {
	p := int64(1)
	for i := 0; i < d; i++ {
		p *= 10
	}
	return p
}
