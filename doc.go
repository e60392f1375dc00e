// Package randlab is a small laboratory for pseudorandom numbers: it builds
// sequences from classic recurrences, checks whether their parameters can
// reach maximum period, tests samples for uniformity, and draws from bounded
// densities by acceptance–rejection.
//
// 🚀 What is inside?
//
//	sequence/  mixed & multiplicative congruential, middle-square generators
//	period/    Hull–Dobell-style maximum-period conditions
//	gof/       chi-square and Kolmogorov–Smirnov uniformity tests
//	rejection/ acceptance–rejection sampler with an injectable uniform source
//
// This root package is the string-keyed entry point used by transport
// layers: Generate, Validate, RunTest and SampleDistribution accept
// already-parsed numeric parameters and return plain result records. Every
// call builds fresh local state, so the functions are safe for concurrent
// use as long as callers do not share a UniformSource.
//
// ✨ Quick start:
//
//	res, err := randlab.Generate("mixed_congruential",
//	    sequence.Params{Seed: 1, Multiplier: 5, Increment: 3, Modulus: 16})
//	test, err := randlab.RunTest(res.Normalized, "chi_square",
//	    randlab.TestParams{Intervals: 4})
//
//	go get github.com/katalvlaran/randlab
package randlab
