// SPDX-License-Identifier: MIT
// Package: randlab/gof
//
// ks.go — one-sample Kolmogorov–Smirnov test against U(0,1).

package gof

import (
	"fmt"
	"math"
	"sort"
)

// KolmogorovSmirnov tests xs for uniformity on [0,1].
//
// After normalization and an ascending sort, the statistic is
//
//	D = max_{i=1..n} | i/n − v_i |
//
// and the test passes iff D ≤ KSCritical(α, n).
//
// Errors: ErrDegenerateSample, ErrInvalidParameter.
func KolmogorovSmirnov(xs []float64, opts ...Option) (*Result, error) {
	const op = "KolmogorovSmirnov"
	o := resolve(opts)
	if err := o.validateAlpha(op); err != nil {
		return nil, err
	}

	unit, err := Normalize(xs)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	sort.Float64s(unit)

	n := len(unit)
	fn := float64(n)
	var d float64
	for i, v := range unit {
		if gap := math.Abs(float64(i+1)/fn - v); gap > d {
			d = gap
		}
	}

	critical := KSCritical(o.Alpha, n)
	p := kolmogorovSurvival(d, n)

	return &Result{
		TestName:      nameKolmogorovSmirnov,
		Statistic:     d,
		CriticalValue: critical,
		Passes:        d <= critical,
		SampleSize:    n,
		Alpha:         o.Alpha,
		PValue:        &p,
		Details:       fmt.Sprintf("n = %d, alpha = %g, D = %.6f", n, o.Alpha, d),
	}, nil
}

// kolmogorovSurvival approximates P(D_n ≥ d) with the Kolmogorov series
//
//	Q(λ) = 2 Σ_{j≥1} (−1)^{j−1} exp(−2 j² λ²),  λ = (√n + 0.12 + 0.11/√n)·d
//
// The series is alternating; it stops once a term is negligible and
// returns 1 when it fails to converge (λ near 0).
func kolmogorovSurvival(d float64, n int) float64 {
	sqrtN := math.Sqrt(float64(n))
	lambda := (sqrtN + 0.12 + 0.11/sqrtN) * d
	a2 := -2 * lambda * lambda

	fac, sum, prev := 2.0, 0.0, 0.0
	for j := 1; j <= 100; j++ {
		term := fac * math.Exp(a2*float64(j*j))
		sum += term
		if math.Abs(term) <= 1e-3*prev || math.Abs(term) <= 1e-8*sum {
			return math.Min(1, math.Max(0, sum))
		}
		fac = -fac
		prev = math.Abs(term)
	}

	return 1
}
