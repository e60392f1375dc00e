// SPDX-License-Identifier: MIT
// Package: randlab/sequence
//
// errors.go — sentinel errors for the sequence package.
//
// Callers branch with errors.Is; implementations attach call context with
// %w wrapping (see sequenceErrorf).

package sequence

import (
	"errors"
	"fmt"
)

// ErrInvalidParameter indicates that a generator parameter is out of its
// domain (m ≤ 1, seed outside [0,m), digits outside [1,18], ...).
// Validation always runs before the first value is produced.
var ErrInvalidParameter = errors.New("sequence: invalid parameter")

// ErrUnsupportedMethod indicates an unknown method name or Method value.
var ErrUnsupportedMethod = errors.New("sequence: unsupported method")

// sequenceErrorf prefixes a sentinel with the method name and a formatted
// detail, keeping the sentinel matchable via errors.Is.
func sequenceErrorf(method Method, sentinel error, format string, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
