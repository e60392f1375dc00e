// SPDX-License-Identifier: MIT
// Package: randlab/gof
//
// chisquare.go — chi-square frequency test for uniformity.

package gof

import (
	"fmt"

	"gonum.org/v1/gonum/stat/distuv"
)

// minExpected is the classic validity threshold for expected counts.
const minExpected = 5.0

// ChiSquare tests xs for uniformity on [0,1] by comparing observed counts in
// k equal-width intervals with the expected count n/k.
//
// Algorithm:
//  1. Normalize xs (see Normalize).
//  2. Clamp each value into [0,1] and bucket it at min(floor(v·k), k−1).
//  3. χ² = Σ (O_i − E)² / E with E = n/k; df = k − 1.
//  4. Compare against ChiSquareCritical(α, df).
//
// An expected count below 5 adds a warning but does not fail the call.
//
// Errors: ErrDegenerateSample, ErrInvalidParameter.
func ChiSquare(xs []float64, opts ...Option) (*Result, error) {
	const op = "ChiSquare"
	o := resolve(opts)
	if o.Intervals < 2 || o.Intervals > MaxIntervals {
		return nil, gofErrorf(op, ErrInvalidParameter, "intervals=%d must lie in [2, %d]", o.Intervals, MaxIntervals)
	}
	if err := o.validateAlpha(op); err != nil {
		return nil, err
	}

	unit, err := Normalize(xs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	k := o.Intervals
	observed := make([]int, k)
	for _, v := range unit {
		idx := int(clampUnit(v) * float64(k))
		if idx >= k {
			idx = k - 1
		}
		observed[idx]++
	}

	n := len(unit)
	expected := float64(n) / float64(k)
	var stat float64
	for _, obs := range observed {
		d := float64(obs) - expected
		stat += d * d / expected
	}

	df := k - 1
	critical := ChiSquareCritical(o.Alpha, df)
	p := distuv.ChiSquared{K: float64(df)}.Survival(stat)

	res := &Result{
		TestName:         nameChiSquare,
		Statistic:        stat,
		CriticalValue:    critical,
		Passes:           stat <= critical,
		SampleSize:       n,
		Alpha:            o.Alpha,
		PValue:           &p,
		DegreesOfFreedom: df,
		Observed:         observed,
		Expected:         expected,
		Details: fmt.Sprintf("observed frequencies: %v, expected frequency: %.2f, degrees of freedom: %d",
			observed, expected, df),
	}
	if expected < minExpected {
		res.Warnings = append(res.Warnings, fmt.Sprintf(
			"expected frequency %.2f is below %.0f; the chi-square approximation may be unreliable (use fewer intervals or a larger sample)",
			expected, minExpected))
	}

	return res, nil
}
