// SPDX-License-Identifier: MIT
// Package: randlab/sequence
//
// types.go — method enumeration, parameters and result records.

package sequence

import "fmt"

// Method selects one recurrence from the closed set of supported generators.
type Method int

const (
	// MixedCongruential computes x' = (a·x + b) mod m.
	MixedCongruential Method = iota

	// MultiplicativeCongruential computes x' = (a·x) mod m.
	MultiplicativeCongruential

	// MiddleSquare squares x and keeps its middle d decimal digits.
	MiddleSquare
)

// Canonical method names, as accepted by ParseMethod.
const (
	NameMixedCongruential          = "mixed_congruential"
	NameMultiplicativeCongruential = "multiplicative_congruential"
	NameMiddleSquare               = "middle_squares"
)

// String returns the canonical name of m.
func (m Method) String() string {
	switch m {
	case MixedCongruential:
		return NameMixedCongruential
	case MultiplicativeCongruential:
		return NameMultiplicativeCongruential
	case MiddleSquare:
		return NameMiddleSquare
	default:
		return fmt.Sprintf("Method(%d)", int(m))
	}
}

// Congruential reports whether m is one of the modular recurrences.
func (m Method) Congruential() bool {
	return m == MixedCongruential || m == MultiplicativeCongruential
}

// ParseMethod maps a canonical name onto its Method.
// Unknown names yield ErrUnsupportedMethod.
func ParseMethod(name string) (Method, error) {
	switch name {
	case NameMixedCongruential:
		return MixedCongruential, nil
	case NameMultiplicativeCongruential:
		return MultiplicativeCongruential, nil
	case NameMiddleSquare:
		return MiddleSquare, nil
	default:
		return 0, fmt.Errorf("%q: %w", name, ErrUnsupportedMethod)
	}
}

// Params carries the numeric inputs of every method. Fields that a method
// does not use are ignored (Increment for multiplicative, Multiplier,
// Increment and Modulus for middle-square, Digits for congruential).
type Params struct {
	Seed       int64 // x0
	Multiplier int64 // a
	Increment  int64 // b (mixed only)
	Modulus    int64 // m (congruential)
	Digits     int   // d (middle-square)
}

// StopReason explains why a generation run ended.
type StopReason string

const (
	// StopRepeated means a value reappeared; the cycle is closed.
	StopRepeated StopReason = "repeated value"

	// StopIterationLimit means the iteration cap was reached first.
	StopIterationLimit StopReason = "iteration limit reached"

	// StopZeroRun means middle-square produced three consecutive zeros.
	StopZeroRun StopReason = "absorbing zero run"
)

// Stats summarizes an emitted sequence.
type Stats struct {
	Count int     // number of emitted values
	Min   int64   // smallest emitted value
	Max   int64   // largest emitted value
	Mean  float64 // arithmetic mean of emitted values

	// Period is the number of distinct values emitted. For congruential
	// runs that stop on a repeat it is the empirical period.
	Period int

	StoppedReason StopReason

	// RepeatedValue is the value that closed the cycle; only meaningful
	// when StoppedReason == StopRepeated.
	RepeatedValue int64
}

// Result is the outcome of one Generate call.
type Result struct {
	Method     Method
	Values     []int64   // raw sequence in emission order
	Normalized []float64 // Values[i] / divisor, rounded to 3 decimals
	Stats      Stats
}
