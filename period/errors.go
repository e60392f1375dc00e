// SPDX-License-Identifier: MIT
// Package: randlab/period

package period

import "errors"

// ErrInvalidParameter indicates an out-of-domain input such as m ≤ 1.
var ErrInvalidParameter = errors.New("period: invalid parameter")
