// Package sequence produces bounded pseudorandom integer sequences from
// deterministic recurrences and summarizes them.
//
// What:
//
//   - Mixed congruential:          x' = (a·x + b) mod m
//   - Multiplicative congruential: x' = (a·x) mod m
//   - Middle-square:               square x, left-pad to 2d digits, keep the
//     middle d digits
//
// Every variant is a tag of the closed Method enumeration; a Generator holds
// the tag plus its parameters and exposes Next(x). Generate drives a
// Generator from the seed until the sequence closes a cycle, collapses into
// a run of zeros (middle-square only), or reaches the iteration limit.
//
// Stop reasons (reported verbatim in Stats.StoppedReason):
//
//   - "repeated value": a value reappeared; it is not emitted twice
//   - "absorbing zero run": three consecutive zero outputs (middle-square)
//   - "iteration limit reached": the configured cap was hit
//
// Normalization divides each value by m (congruential) or 10^d
// (middle-square) and rounds to three decimals, giving an approximate
// uniform [0,1) series.
//
// Errors:
//
//   - ErrInvalidParameter  m ≤ 1, seed outside [0,m), digits outside [1,18],
//     seed outside [0,10^d)
//   - ErrUnsupportedMethod method name not recognized by ParseMethod
//
// Complexity:
//
//   - Congruential:  Time O(P), Memory O(P) where P ≤ m is the period
//   - Middle-square: Time O(L·d), Memory O(L) where L ≤ 10,000 by default
//
// Generate is deterministic: identical inputs produce identical results.
package sequence
