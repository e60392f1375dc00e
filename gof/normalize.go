// SPDX-License-Identifier: MIT
// Package: randlab/gof
//
// normalize.go — map a sample onto [0,1] before testing.

package gof

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Normalize returns a copy of xs mapped onto [0,1].
//
// If every value already lies in [0,1] the copy is returned unchanged;
// otherwise it is min–max scaled so that min ↦ 0 and max ↦ 1.
//
// Errors: ErrDegenerateSample for an empty or constant sample,
// ErrInvalidParameter when a value is NaN or ±Inf.
func Normalize(xs []float64) ([]float64, error) {
	const op = "Normalize"
	if len(xs) == 0 {
		return nil, gofErrorf(op, ErrDegenerateSample, "sample is empty")
	}
	for i, v := range xs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, gofErrorf(op, ErrInvalidParameter, "value at index %d is %v", i, v)
		}
	}

	lo, hi := floats.Min(xs), floats.Max(xs)
	if lo == hi {
		return nil, gofErrorf(op, ErrDegenerateSample, "all %d values equal %g", len(xs), lo)
	}

	out := make([]float64, len(xs))
	copy(out, xs)
	if lo >= 0 && hi <= 1 {
		return out, nil
	}

	floats.AddConst(-lo, out)
	floats.Scale(1/(hi-lo), out)

	return out, nil
}

// clampUnit forces v into [0,1] to absorb rounding at the boundaries.
func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
