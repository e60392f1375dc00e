// SPDX-License-Identifier: MIT
// Package: randlab/rejection
//
// sampler.go — the fixed-trial acceptance–rejection loop.

package rejection

import (
	"fmt"
	"reflect"

	"github.com/katalvlaran/randlab/gof"
)

// Trial records one draw of the sampler.
type Trial struct {
	Index    int     // 1-based trial number
	U1       float64 // proposal draw
	U2       float64 // acceptance draw
	X        float64 // candidate a + (b−a)·u1
	Ratio    float64 // f(X)/M, the acceptance threshold
	Y        float64 // u2·M, the candidate's height under the envelope
	Accepted bool    // U2 <= Ratio
}

// Point is one sample of the density curve.
type Point struct {
	X  float64
	Fx float64
}

// Result is the outcome of Sample.
type Result struct {
	ID       string
	Label    string
	Lower    float64
	Upper    float64
	Envelope float64

	Trials         []Trial
	Values         []float64 // accepted candidates, in trial order
	AcceptedCount  int
	AcceptanceRate float64   // AcceptedCount / len(Trials)
	RunningRate    []float64 // acceptance rate after each trial

	Curve []Point

	// SourceCheck is set by WithSourceCheck.
	SourceCheck *gof.Result

	// Warnings lists non-fatal problems, e.g. a source check that could not run.
	Warnings []string
}

// Sample performs exactly n acceptance–rejection trials for spec using src.
//
// Per trial: u1, u2 ← src; x = Lower + (Upper−Lower)·u1; accept iff
// u2 ≤ f(x)/M. Draw order is u1 then u2, so a FixedSource with values
// [u1₀, u2₀, u1₁, u2₁, ...] reproduces decisions exactly.
//
// Errors: ErrInvalidParameter (n ≤ 0, nil or typed-nil src, malformed spec),
// ErrDensityContractViolation (WithStrict only).
func Sample(spec Spec, n int, src UniformSource, opts ...Option) (*Result, error) {
	if n <= 0 {
		return nil, fmt.Errorf("Sample: count n=%d must be positive: %w", n, ErrInvalidParameter)
	}
	if isNilSource(src) {
		return nil, fmt.Errorf("Sample: nil uniform source: %w", ErrInvalidParameter)
	}
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("Sample: %w", err)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	res := &Result{
		ID:          spec.ID,
		Label:       spec.Label,
		Lower:       spec.Lower,
		Upper:       spec.Upper,
		Envelope:    spec.Envelope,
		Trials:      make([]Trial, 0, n),
		RunningRate: make([]float64, 0, n),
	}
	width := spec.Upper - spec.Lower
	m := spec.Envelope

	for i := 1; i <= n; i++ {
		u1 := src.Float64()
		u2 := src.Float64()
		x := spec.Lower + width*u1
		ratio := spec.Eval(x) / m

		if o.Strict && ratio > 1 {
			return nil, fmt.Errorf("Sample: trial %d: f(%g)/M = %g > 1 for %q: %w",
				i, x, ratio, spec.ID, ErrDensityContractViolation)
		}

		tr := Trial{Index: i, U1: u1, U2: u2, X: x, Ratio: ratio, Y: u2 * m, Accepted: u2 <= ratio}
		if tr.Accepted {
			res.Values = append(res.Values, x)
			res.AcceptedCount++
		}
		res.Trials = append(res.Trials, tr)
		res.RunningRate = append(res.RunningRate, float64(res.AcceptedCount)/float64(i))
	}
	res.AcceptanceRate = float64(res.AcceptedCount) / float64(n)
	res.Curve = curve(spec, o.CurvePoints)

	if o.SourceCheck {
		u1s := make([]float64, len(res.Trials))
		for i, tr := range res.Trials {
			u1s[i] = tr.U1
		}
		check, err := gof.ChiSquare(u1s, o.SourceCheckOptions...)
		if err != nil {
			res.Warnings = append(res.Warnings, fmt.Sprintf("source check skipped: %v", err))
		} else {
			res.SourceCheck = check
		}
	}

	return res, nil
}

// isNilSource catches both a nil interface and a typed nil pointer, such as
// (*FixedSource)(nil), hidden inside a non-nil interface.
func isNilSource(src UniformSource) bool {
	if src == nil {
		return true
	}
	v := reflect.ValueOf(src)
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Func, reflect.Slice, reflect.Chan:
		return v.IsNil()
	default:
		return false
	}
}

// curve samples spec at k evenly spaced points of [Lower, Upper).
func curve(spec Spec, k int) []Point {
	pts := make([]Point, k)
	width := spec.Upper - spec.Lower
	for i := range pts {
		x := spec.Lower + width*float64(i)/float64(k)
		pts[i] = Point{X: x, Fx: spec.Eval(x)}
	}
	return pts
}
