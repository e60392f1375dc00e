// SPDX-License-Identifier: MIT
// Package: randlab/period
//
// validate.go — condition checks and the aggregate report.

package period

import (
	"fmt"
	"strings"
)

// Condition names, stable across releases.
const (
	NameGCD            = "gcd(b, m) = 1"
	NamePrimeDivisors  = "prime divisors of m divide (a-1)"
	NameFourDivisor    = "4 | m implies 4 | (a-1)"
	NameMultiplierSpan = "1 < a < m"
)

// Condition is the outcome of one check.
type Condition struct {
	Name        string
	Description string
	Satisfied   bool

	// Applicable is false for vacuous checks (gcd on multiplicative
	// generators, the 4-rule when 4 ∤ m). Such checks are Satisfied.
	Applicable bool

	Details string
}

// Report aggregates every Condition of one Validate call.
type Report struct {
	Conditions   []Condition
	AllSatisfied bool
	Explanation  string

	// PrimeFactors are the distinct prime factors of m used by condition 2.
	PrimeFactors []int64
}

// Option customizes Validate.
type Option func(*Options)

// Options holds the resolved knobs of a Validate call.
type Options struct {
	// MultiplierRange appends the 1 < a < m condition to the report.
	MultiplierRange bool
}

// DefaultOptions returns the three classic conditions only.
func DefaultOptions() Options {
	return Options{MultiplierRange: false}
}

// WithMultiplierRange adds the 1 < a < m check to the report.
func WithMultiplierRange() Option {
	return func(o *Options) { o.MultiplierRange = true }
}

// Validate checks (a, b, m) against the maximum-period conditions of a
// congruential generator. b is ignored unless isMixed is true.
//
// Errors: ErrInvalidParameter when m ≤ 1.
func Validate(a, b, m int64, isMixed bool, opts ...Option) (*Report, error) {
	if m <= 1 {
		return nil, fmt.Errorf("Validate: modulus m=%d must be > 1: %w", m, ErrInvalidParameter)
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	factors := PrimeFactors(m)
	conds := []Condition{
		checkGCD(b, m, isMixed),
		checkPrimeDivisors(a, factors),
		checkFourDivisor(a, m),
	}
	if o.MultiplierRange {
		conds = append(conds, checkMultiplierRange(a, m))
	}

	r := &Report{Conditions: conds, AllSatisfied: true, PrimeFactors: factors}
	var failing []string
	for _, c := range conds {
		if !c.Satisfied {
			r.AllSatisfied = false
			failing = append(failing, c.Name)
		}
	}
	r.Explanation = explain(failing)

	return r, nil
}

func checkGCD(b, m int64, isMixed bool) Condition {
	if !isMixed {
		return Condition{
			Name:        NameGCD,
			Description: "does not apply to the multiplicative method",
			Satisfied:   true,
			Applicable:  false,
			Details:     "this condition is only evaluated for the mixed method",
		}
	}
	g := GCD(b, m)

	return Condition{
		Name:        NameGCD,
		Description: "b and m must be coprime",
		Satisfied:   g == 1,
		Applicable:  true,
		Details:     fmt.Sprintf("gcd(%d, %d) = %d", b, m, g),
	}
}

func checkPrimeDivisors(a int64, factors []int64) Condition {
	am1 := a - 1
	var failing []int64
	for _, q := range factors {
		if am1%q != 0 {
			failing = append(failing, q)
		}
	}

	c := Condition{
		Name:        NamePrimeDivisors,
		Description: "every prime q dividing m must also divide (a-1)",
		Satisfied:   len(failing) == 0,
		Applicable:  true,
	}
	if c.Satisfied {
		c.Details = fmt.Sprintf("all prime factors of m %v divide (a-1) = %d", factors, am1)
	} else {
		c.Details = fmt.Sprintf("prime factors %v of m do not divide (a-1) = %d", failing, am1)
	}

	return c
}

func checkFourDivisor(a, m int64) Condition {
	c := Condition{
		Name:        NameFourDivisor,
		Description: "if 4 divides m, then 4 must divide (a-1)",
	}
	if m%4 != 0 {
		c.Satisfied = true
		c.Details = fmt.Sprintf("4 does not divide m = %d, condition not applicable", m)
		return c
	}

	c.Applicable = true
	c.Satisfied = (a-1)%4 == 0
	verb := "is"
	if !c.Satisfied {
		verb = "is not"
	}
	c.Details = fmt.Sprintf("4 divides m = %d, and (a-1) = %d %s divisible by 4", m, a-1, verb)

	return c
}

func checkMultiplierRange(a, m int64) Condition {
	return Condition{
		Name:        NameMultiplierSpan,
		Description: "a must lie strictly between 1 and m",
		Satisfied:   1 < a && a < m,
		Applicable:  true,
		Details:     fmt.Sprintf("a = %d, m = %d", a, m),
	}
}

func explain(failing []string) string {
	if len(failing) == 0 {
		return "All theoretical conditions are satisfied. The generator should reach its maximum period."
	}

	return fmt.Sprintf("The following conditions are not satisfied: %s. The period will be shorter than the maximum possible.",
		strings.Join(failing, ", "))
}
