// SPDX-License-Identifier: MIT
// Package: randlab/rejection
//
// density.go — density capability and the bounded Spec.

package rejection

import (
	"fmt"
	"math"
)

// Density evaluates a target density at a point.
type Density interface {
	Eval(x float64) float64
}

// DensityFunc adapts a plain function to Density.
type DensityFunc func(x float64) float64

// Eval calls f(x).
func (f DensityFunc) Eval(x float64) float64 { return f(x) }

// Spec binds a density to its domain [Lower, Upper] and envelope M.
// The caller guarantees F(x) ≤ Envelope for every x in the domain.
type Spec struct {
	ID       string // registry key, e.g. "linear"
	Label    string // human-readable formula, e.g. "f(x) = 2x"
	Lower    float64
	Upper    float64
	Envelope float64 // M
	F        Density
}

// Validate reports malformed specs: nil F, empty or non-finite domain,
// non-positive or non-finite envelope.
func (s Spec) Validate() error {
	switch {
	case s.F == nil:
		return fmt.Errorf("spec %q: nil density: %w", s.ID, ErrInvalidParameter)
	case !finite(s.Lower) || !finite(s.Upper) || s.Lower >= s.Upper:
		return fmt.Errorf("spec %q: domain [%g, %g] must be finite with lower < upper: %w",
			s.ID, s.Lower, s.Upper, ErrInvalidParameter)
	case !finite(s.Envelope) || s.Envelope <= 0:
		return fmt.Errorf("spec %q: envelope M=%g must be positive: %w", s.ID, s.Envelope, ErrInvalidParameter)
	}
	return nil
}

// Eval returns F(x) inside the domain and 0 outside it.
func (s Spec) Eval(x float64) float64 {
	if x < s.Lower || x > s.Upper {
		return 0
	}
	return s.F.Eval(x)
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }

// Linear is f(x) = 2x on [0, 1] with M = 2. Acceptance rate → 1/2.
func Linear() Spec {
	return Spec{
		ID: "linear", Label: "f(x) = 2x",
		Lower: 0, Upper: 1, Envelope: 2,
		F: DensityFunc(func(x float64) float64 { return 2 * x }),
	}
}

// Quadratic is f(x) = -(x-2)^2 + 4 on [0, 4] with M = 4. Acceptance rate → 2/3.
func Quadratic() Spec {
	return Spec{
		ID: "quadratic", Label: "f(x) = -(x-2)^2 + 4",
		Lower: 0, Upper: 4, Envelope: 4,
		F: DensityFunc(func(x float64) float64 { return -(x-2)*(x-2) + 4 }),
	}
}

// Hyperbola is f(x) = 1/x on [0.5, 3] with M = 2. Acceptance rate → ln(6)/5.
func Hyperbola() Spec {
	return Spec{
		ID: "hyperbola", Label: "f(x) = 1/x",
		Lower: 0.5, Upper: 3, Envelope: 2,
		F: DensityFunc(func(x float64) float64 { return 1 / x }),
	}
}
