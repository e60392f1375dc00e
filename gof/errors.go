// SPDX-License-Identifier: MIT
// Package: randlab/gof
//
// errors.go — sentinel errors. Match with errors.Is.

package gof

import (
	"errors"
	"fmt"
)

var (
	// ErrDegenerateSample indicates an empty or constant sample; min–max
	// normalization is undefined for it.
	ErrDegenerateSample = errors.New("gof: degenerate sample")

	// ErrInvalidParameter indicates a bad test parameter or a non-finite
	// sample value.
	ErrInvalidParameter = errors.New("gof: invalid parameter")
)

// gofErrorf wraps sentinel with the operation name and a formatted detail.
func gofErrorf(op string, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", op, fmt.Sprintf(format, args...), sentinel)
}
