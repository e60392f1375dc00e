// SPDX-License-Identifier: MIT
// Package: randlab/gof

package gof

// Run dispatches to the test selected by kind.
func Run(kind Kind, xs []float64, opts ...Option) (*Result, error) {
	switch kind {
	case ChiSquareKind:
		return ChiSquare(xs, opts...)
	case KolmogorovSmirnovKind:
		return KolmogorovSmirnov(xs, opts...)
	default:
		return nil, gofErrorf("Run", ErrInvalidParameter, "unknown test type %q", string(kind))
	}
}
