// Package gof runs goodness-of-fit tests of a numeric sample against the
// uniform distribution on [0,1].
//
// 🚀 What:
//
//   - ChiSquare: bucket the sample into k equal-width intervals and
//     compare observed against expected counts (df = k − 1)
//   - KolmogorovSmirnov: largest gap between the empirical CDF i/n and the
//     sorted sample
//
// Both tests first map the sample onto [0,1] with Normalize: min–max scaling,
// skipped when every value already lies in [0,1] so that a unit sample is
// not distorted.
//
// ⚙️ Critical values:
//
//   - Chi-square: static table for α ∈ {0.01, 0.05, 0.10} and df 1..30;
//     anything else uses the inverse chi-square CDF at 1 − α.
//   - Kolmogorov–Smirnov: exact small-sample table for n ≤ 40 and the same
//     three α; larger n uses c(α)/√n.
//
// A test passes iff its statistic does not exceed the critical value.
//
// Errors:
//
//   - ErrDegenerateSample  empty or constant sample (normalization undefined)
//   - ErrInvalidParameter  intervals < 2, α ∉ (0,1), NaN/Inf in the sample,
//     unknown test kind
//
// Complexity:
//
//   - ChiSquare:         Time O(n + k), Memory O(n + k)
//   - KolmogorovSmirnov: Time O(n log n), Memory O(n)
package gof
