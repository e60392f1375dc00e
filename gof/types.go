// SPDX-License-Identifier: MIT
// Package: randlab/gof

package gof

// Kind selects a goodness-of-fit test.
type Kind string

const (
	// ChiSquareKind selects the chi-square frequency test.
	ChiSquareKind Kind = "chi_square"

	// KolmogorovSmirnovKind selects the Kolmogorov–Smirnov test.
	KolmogorovSmirnovKind Kind = "kolmogorov_smirnov"
)

// Display names reported in Result.TestName.
const (
	nameChiSquare         = "Chi-square"
	nameKolmogorovSmirnov = "Kolmogorov-Smirnov"
)

// ParseKind maps a test name onto its Kind.
func ParseKind(name string) (Kind, error) {
	switch k := Kind(name); k {
	case ChiSquareKind, KolmogorovSmirnovKind:
		return k, nil
	default:
		return "", gofErrorf("ParseKind", ErrInvalidParameter, "unknown test type %q", name)
	}
}

// Result is the outcome of one hypothesis test.
type Result struct {
	TestName      string
	Statistic     float64 // chi-square sum or KS distance D
	CriticalValue float64
	Passes        bool // Statistic <= CriticalValue
	SampleSize    int
	Alpha         float64
	Details       string

	// PValue is the probability of a statistic at least as extreme under
	// the null hypothesis; nil when it could not be computed.
	PValue *float64

	// Chi-square only.
	DegreesOfFreedom int
	Observed         []int
	Expected         float64

	// Warnings lists non-fatal validity concerns, e.g. expected counts < 5.
	Warnings []string
}
