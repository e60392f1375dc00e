// Package rejection draws samples from bounded density functions with the
// acceptance–rejection method.
//
// What:
//
//	For n fixed trials, draw u1, u2 ~ U(0,1) from an injected UniformSource,
//	map x = a + (b − a)·u1 (uniform proposal over the domain), and accept x
//	iff u2 ≤ f(x)/M. The trial count is fixed; the number of accepted values
//	is the random outcome.
//
// Every trial is recorded (u1, u2, x, f(x)/M, u2·M, accepted) so callers can
// plot the accepted and rejected points against the density curve.
//
// Envelope contract:
//
//	The caller guarantees f(x) ≤ M on [a, b]. A violated envelope silently
//	under-rejects: every x with f(x) > M is always accepted, biasing the
//	output toward that region. WithStrict turns an observed f(x)/M > 1 into
//	ErrDensityContractViolation.
//
// Randomness:
//
//	There is no package-level generator. Production code passes
//	NewSeededSource(); tests pass NewFixedSource(...) for reproducible
//	decisions. A source must not be shared between concurrent calls.
//
// Built-in densities (DefaultRegistry):
//
//   - "linear"    f(x) = 2x           on [0, 1],   M = 2
//   - "quadratic" f(x) = -(x-2)^2 + 4 on [0, 4],   M = 4
//   - "hyperbola" f(x) = 1/x          on [0.5, 3], M = 2
//
// Complexity: Time O(n + k), Memory O(n + k) for n trials and k curve points.
package rejection
