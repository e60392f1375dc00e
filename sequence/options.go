// SPDX-License-Identifier: MIT
// Package: randlab/sequence
//
// options.go — functional options for Generate.

package sequence

// DefaultMiddleSquareLimit caps middle-square runs, which can wander for a
// long time before they settle into a cycle.
const DefaultMiddleSquareLimit = 10000

// Option customizes a Generate call.
type Option func(*Options)

// Options holds the resolved knobs of a Generate call.
type Options struct {
	// IterationLimit caps the number of emitted values. Zero selects the
	// method default: DefaultMiddleSquareLimit for middle-square, no cap for
	// the congruential methods (their period never exceeds m).
	IterationLimit int
}

// DefaultOptions returns Options with method-default limits.
func DefaultOptions() Options {
	return Options{IterationLimit: 0}
}

// WithIterationLimit caps the number of emitted values at n.
// Panics if n <= 0.
func WithIterationLimit(n int) Option {
	if n <= 0 {
		panic("sequence: WithIterationLimit(n<=0)")
	}
	return func(o *Options) {
		o.IterationLimit = n
	}
}

// limitFor resolves the effective cap for method; 0 means unbounded.
func (o Options) limitFor(method Method) int {
	if o.IterationLimit > 0 {
		return o.IterationLimit
	}
	if method == MiddleSquare {
		return DefaultMiddleSquareLimit
	}

	return 0
}
