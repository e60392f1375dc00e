// Package period checks the Hull–Dobell-style conditions under which a
// congruential generator reaches its maximum period.
//
// What:
//
//   - Condition 1: gcd(b, m) = 1 (mixed method only; vacuous otherwise)
//   - Condition 2: every prime factor q of m divides (a − 1)
//   - Condition 3: if 4 | m then 4 | (a − 1) (vacuous when 4 ∤ m)
//   - Optional:    1 < a < m (WithMultiplierRange)
//
// Validate is a static analysis over integers: it never runs the generator.
// Each check yields a Condition; the Report aggregates them with an overall
// verdict and a human-readable explanation.
//
// Complexity:
//
//   - Factorization by trial division: Time O(√m), Memory O(log m)
//   - gcd: O(log min(b, m))
//
// Errors:
//
//   - ErrInvalidParameter  m ≤ 1
package period
