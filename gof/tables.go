// SPDX-License-Identifier: MIT
// Package: randlab/gof
//
// tables.go — static critical values and their analytic fallbacks.
//
// The fallbacks are pure functions; they are used for any (α, df) or (α, n)
// outside the tables.

package gof

import (
	"math"

	"gonum.org/v1/gonum/mathext"
)

// alphaTolerance absorbs representation noise when matching α to a table.
const alphaTolerance = 1e-12

// tabulatedAlphas are the significance levels with static tables.
var tabulatedAlphas = [...]float64{0.01, 0.05, 0.10}

// chiSquareTable[i][df-1] is the upper-tail critical value for
// tabulatedAlphas[i] and df = 1..30.
var chiSquareTable = [3][30]float64{
	{ // α = 0.01
		6.635, 9.210, 11.345, 13.277, 15.086, 16.812, 18.475, 20.090, 21.666, 23.209,
		24.725, 26.217, 27.688, 29.141, 30.578, 32.000, 33.409, 34.805, 36.191, 37.566,
		38.932, 40.289, 41.638, 42.980, 44.314, 45.642, 46.963, 48.278, 49.588, 50.892,
	},
	{ // α = 0.05
		3.841, 5.991, 7.815, 9.488, 11.070, 12.592, 14.067, 15.507, 16.919, 18.307,
		19.675, 21.026, 22.362, 23.685, 24.996, 26.296, 27.587, 28.869, 30.144, 31.410,
		32.671, 33.924, 35.172, 36.415, 37.652, 38.885, 40.113, 41.337, 42.557, 43.773,
	},
	{ // α = 0.10
		2.706, 4.605, 6.251, 7.779, 9.236, 10.645, 12.017, 13.362, 14.684, 15.987,
		17.275, 18.549, 19.812, 21.064, 22.307, 23.542, 24.769, 25.989, 27.204, 28.412,
		29.615, 30.813, 32.007, 33.196, 34.382, 35.563, 36.741, 37.916, 39.087, 40.256,
	},
}

// ksTable[i][n-1] is the exact two-sided critical value of D for
// tabulatedAlphas[i] and sample size n = 1..40.
var ksTable = [3][40]float64{
	{ // α = 0.01
		0.995, 0.929, 0.829, 0.734, 0.669, 0.617, 0.576, 0.542, 0.513, 0.489,
		0.468, 0.449, 0.432, 0.418, 0.404, 0.392, 0.381, 0.371, 0.361, 0.352,
		0.344, 0.337, 0.330, 0.323, 0.317, 0.311, 0.305, 0.300, 0.295, 0.290,
		0.285, 0.281, 0.277, 0.273, 0.269, 0.265, 0.262, 0.258, 0.255, 0.252,
	},
	{ // α = 0.05
		0.975, 0.842, 0.708, 0.624, 0.563, 0.519, 0.483, 0.454, 0.430, 0.409,
		0.391, 0.375, 0.361, 0.349, 0.338, 0.327, 0.318, 0.309, 0.301, 0.294,
		0.287, 0.281, 0.275, 0.269, 0.264, 0.259, 0.254, 0.250, 0.246, 0.242,
		0.238, 0.234, 0.231, 0.227, 0.224, 0.221, 0.218, 0.215, 0.213, 0.210,
	},
	{ // α = 0.10
		0.950, 0.776, 0.636, 0.565, 0.509, 0.468, 0.436, 0.410, 0.387, 0.369,
		0.352, 0.338, 0.325, 0.314, 0.304, 0.295, 0.286, 0.279, 0.271, 0.265,
		0.259, 0.253, 0.247, 0.242, 0.238, 0.233, 0.229, 0.225, 0.221, 0.218,
		0.214, 0.211, 0.208, 0.205, 0.202, 0.199, 0.196, 0.194, 0.191, 0.189,
	},
}

// ksCoefficients[i] is c(α) in the large-sample critical value c(α)/√n.
var ksCoefficients = [3]float64{1.63, 1.36, 1.22}

// alphaIndex returns the table row for alpha, or -1 when untabulated.
func alphaIndex(alpha float64) int {
	for i, a := range tabulatedAlphas {
		if math.Abs(alpha-a) <= alphaTolerance {
			return i
		}
	}
	return -1
}

// ChiSquareCritical returns the upper-tail critical value of the chi-square
// distribution with df degrees of freedom at significance alpha.
//
// Outside the table the value x solves Q(df/2, x/2) = alpha, with Q the
// regularized upper incomplete gamma function. Inverting Q directly keeps
// tiny alphas finite, where 1-alpha would round to 1.
func ChiSquareCritical(alpha float64, df int) float64 {
	if i := alphaIndex(alpha); i >= 0 && df >= 1 && df <= len(chiSquareTable[i]) {
		return chiSquareTable[i][df-1]
	}
	return 2 * mathext.GammaIncRegCompInv(float64(df)/2, alpha)
}

// KSCritical returns the two-sided critical value of the KS statistic D for
// sample size n at significance alpha.
func KSCritical(alpha float64, n int) float64 {
	sqrtN := math.Sqrt(float64(n))
	if i := alphaIndex(alpha); i >= 0 {
		if n >= 1 && n <= len(ksTable[i]) {
			return ksTable[i][n-1]
		}
		return ksCoefficients[i] / sqrtN
	}
	// Asymptotic Kolmogorov quantile: c(α) = sqrt(-ln(α/2)/2).
	return math.Sqrt(-0.5*math.Log(alpha/2)) / sqrtN
}
