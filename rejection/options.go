// SPDX-License-Identifier: MIT
// Package: randlab/rejection

package rejection

import "github.com/katalvlaran/randlab/gof"

// DefaultCurvePoints is the number of density samples returned for plotting.
const DefaultCurvePoints = 100

// Option customizes Sample.
type Option func(*Options)

// Options holds the resolved knobs of a Sample call.
type Options struct {
	// Strict fails the call when a sampled f(x)/M exceeds 1.
	Strict bool

	// CurvePoints is the length of Result.Curve.
	CurvePoints int

	// SourceCheck runs gof.ChiSquare over the u1 draws with
	// SourceCheckOptions.
	SourceCheck        bool
	SourceCheckOptions []gof.Option
}

// DefaultOptions returns lenient sampling with a DefaultCurvePoints curve
// and no source check.
func DefaultOptions() Options {
	return Options{CurvePoints: DefaultCurvePoints}
}

// WithStrict fails the call with ErrDensityContractViolation as soon as a
// sampled f(x)/M exceeds 1.
func WithStrict() Option {
	return func(o *Options) { o.Strict = true }
}

// WithCurvePoints sets how many evenly spaced points of the density are
// returned in Result.Curve. Panics if k <= 0.
func WithCurvePoints(k int) Option {
	if k <= 0 {
		panic("rejection: WithCurvePoints(k<=0)")
	}
	return func(o *Options) { o.CurvePoints = k }
}

// WithSourceCheck runs a chi-square uniformity test over the u1 draws and
// attaches it as Result.SourceCheck.
func WithSourceCheck(intervals int, alpha float64) Option {
	return func(o *Options) {
		o.SourceCheck = true
		o.SourceCheckOptions = []gof.Option{gof.WithIntervals(intervals), gof.WithAlpha(alpha)}
	}
}
