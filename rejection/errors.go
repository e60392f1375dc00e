// SPDX-License-Identifier: MIT
// Package: randlab/rejection

package rejection

import "errors"

var (
	// ErrInvalidParameter indicates a non-positive trial count, a nil
	// source, a malformed Spec or an unknown density id.
	ErrInvalidParameter = errors.New("rejection: invalid parameter")

	// ErrDensityContractViolation indicates that strict mode observed
	// f(x) > M for a sampled x.
	ErrDensityContractViolation = errors.New("rejection: density exceeds envelope")
)
