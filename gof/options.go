// SPDX-License-Identifier: MIT
// Package: randlab/gof

package gof

// Defaults used when no option overrides them.
const (
	DefaultAlpha     = 0.05
	DefaultIntervals = 10
)

// MaxIntervals is the largest chi-square bucket count accepted. It bounds
// the memory of one test regardless of where k comes from.
const MaxIntervals = 1 << 16

// Option customizes a test run.
type Option func(*Options)

// Options holds resolved test parameters. Values are validated by the test
// functions, not by the option constructors, because they usually arrive
// from untrusted callers.
type Options struct {
	// Alpha is the significance level, in (0,1).
	Alpha float64

	// Intervals is the chi-square bucket count k, 2 ≤ k ≤ MaxIntervals.
	// Ignored by KS.
	Intervals int
}

// DefaultOptions returns α = 0.05 and k = 10.
func DefaultOptions() Options {
	return Options{Alpha: DefaultAlpha, Intervals: DefaultIntervals}
}

// WithAlpha sets the significance level.
func WithAlpha(alpha float64) Option {
	return func(o *Options) { o.Alpha = alpha }
}

// WithIntervals sets the chi-square bucket count.
func WithIntervals(k int) Option {
	return func(o *Options) { o.Intervals = k }
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

func (o Options) validateAlpha(op string) error {
	if !(o.Alpha > 0 && o.Alpha < 1) {
		return gofErrorf(op, ErrInvalidParameter, "alpha=%g must lie in (0,1)", o.Alpha)
	}
	return nil
}
