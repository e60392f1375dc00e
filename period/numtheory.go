// SPDX-License-Identifier: MIT
// Package: randlab/period
//
// numtheory.go — gcd and distinct prime factors by trial division.

package period

// GCD returns the greatest common divisor of |a| and |b|. GCD(0, 0) = 0.
func GCD(a, b int64) int64 {
	a, b = abs(a), abs(b)
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// PrimeFactors returns the distinct prime factors of n in ascending order.
// Multiplicity is dropped. n < 2 has no prime factors.
//
// Trial division runs while d·d ≤ n, so the loop is bounded by √n.
func PrimeFactors(n int64) []int64 {
	var factors []int64
	if n < 2 {
		return factors
	}
	for d := int64(2); d <= n/d; d++ {
		if n%d != 0 {
			continue
		}
		factors = append(factors, d)
		for n%d == 0 {
			n /= d
		}
	}
	if n > 1 {
		factors = append(factors, n) // leftover prime above √n
	}

	return factors
}

func abs(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}
