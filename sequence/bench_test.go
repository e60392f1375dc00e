package sequence_test

import (
	"testing"

	"github.com/katalvlaran/randlab/sequence"
)

// benchmarkGenerate runs Generate b.N times and fails on unexpected errors.
func benchmarkGenerate(b *testing.B, method sequence.Method, p sequence.Params) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := sequence.Generate(method, p); err != nil {
			b.Fatalf("Generate failed: %v", err)
		}
	}
}

// BenchmarkGenerate_MixedFullPeriod64K walks a full 2^16 period.
func BenchmarkGenerate_MixedFullPeriod64K(b *testing.B) {
	benchmarkGenerate(b, sequence.MixedCongruential,
		sequence.Params{Seed: 0, Multiplier: 1103515245, Increment: 12345, Modulus: 1 << 16})
}

// BenchmarkGenerate_MiddleSquare4 runs a 4-digit middle-square sequence.
func BenchmarkGenerate_MiddleSquare4(b *testing.B) {
	benchmarkGenerate(b, sequence.MiddleSquare, sequence.Params{Seed: 5735, Digits: 4})
}

// BenchmarkGenerate_MiddleSquare12 exercises the big-integer path.
func BenchmarkGenerate_MiddleSquare12(b *testing.B) {
	benchmarkGenerate(b, sequence.MiddleSquare, sequence.Params{Seed: 123456789012, Digits: 12})
}
