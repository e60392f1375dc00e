// SPDX-License-Identifier: MIT
// Package: randlab
//
// randlab.go — core-facing contract: name-based dispatch onto the four
// computational packages.

package randlab

import (
	"github.com/katalvlaran/randlab/gof"
	"github.com/katalvlaran/randlab/period"
	"github.com/katalvlaran/randlab/rejection"
	"github.com/katalvlaran/randlab/sequence"
)

// Generate runs the generator named by method ("mixed_congruential",
// "multiplicative_congruential" or "middle_squares").
//
// Errors: sequence.ErrUnsupportedMethod, sequence.ErrInvalidParameter.
func Generate(method string, p sequence.Params, opts ...sequence.Option) (*sequence.Result, error) {
	m, err := sequence.ParseMethod(method)
	if err != nil {
		return nil, err
	}
	return sequence.Generate(m, p, opts...)
}

// Validate checks the maximum-period conditions for (a, b, m).
//
// Errors: period.ErrInvalidParameter.
func Validate(a, b, m int64, isMixed bool, opts ...period.Option) (*period.Report, error) {
	return period.Validate(a, b, m, isMixed, opts...)
}

// TestParams carries test-specific parameters. Zero values select the
// gof defaults (10 intervals, α = 0.05).
type TestParams struct {
	Intervals int     // chi-square only
	Alpha     float64 // significance level
}

// RunTest runs the goodness-of-fit test named by testType ("chi_square" or
// "kolmogorov_smirnov") over numbers.
//
// Errors: gof.ErrInvalidParameter, gof.ErrDegenerateSample.
func RunTest(numbers []float64, testType string, p TestParams) (*gof.Result, error) {
	var opts []gof.Option
	if p.Intervals != 0 {
		opts = append(opts, gof.WithIntervals(p.Intervals))
	}
	if p.Alpha != 0 {
		opts = append(opts, gof.WithAlpha(p.Alpha))
	}

	return RunTestWith(numbers, testType, opts...)
}

// RunTestWith is RunTest with explicit gof options. Every option given is
// applied as is, so an explicit zero α or interval count is rejected rather
// than replaced by the default.
func RunTestWith(numbers []float64, testType string, opts ...gof.Option) (*gof.Result, error) {
	kind, err := gof.ParseKind(testType)
	if err != nil {
		return nil, err
	}
	return gof.Run(kind, numbers, opts...)
}

// SampleDistribution performs count acceptance–rejection trials against the
// density registered as densityID in the default registry.
//
// Errors: rejection.ErrInvalidParameter, rejection.ErrDensityContractViolation.
func SampleDistribution(count int, densityID string, src rejection.UniformSource, opts ...rejection.Option) (*rejection.Result, error) {
	return SampleFrom(rejection.DefaultRegistry(), count, densityID, src, opts...)
}

// SampleFrom is SampleDistribution over a caller-supplied registry.
func SampleFrom(reg *rejection.Registry, count int, densityID string, src rejection.UniformSource, opts ...rejection.Option) (*rejection.Result, error) {
	spec, err := reg.Lookup(densityID)
	if err != nil {
		return nil, err
	}
	return rejection.Sample(spec, count, src, opts...)
}
