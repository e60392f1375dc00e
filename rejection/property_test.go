package rejection_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/katalvlaran/randlab/rejection"
)

// TestSampleProperties checks seed reproducibility and structural bounds.
func TestSampleProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 100

	properties := gopter.NewProperties(parameters)
	specs := rejection.DefaultRegistry()

	properties.Property("same seed produces identical decisions", prop.ForAll(
		func(seed int64, n int) bool {
			spec, _ := specs.Lookup("quadratic")
			a, errA := rejection.Sample(spec, n, rejection.NewSourceFromSeed(seed))
			b, errB := rejection.Sample(spec, n, rejection.NewSourceFromSeed(seed))
			if errA != nil || errB != nil || a.AcceptedCount != b.AcceptedCount {
				return false
			}
			for i := range a.Trials {
				if a.Trials[i] != b.Trials[i] {
					return false
				}
			}
			return true
		},
		gen.Int64(),
		gen.IntRange(1, 200),
	))

	properties.Property("accepted values lie in the domain and the rate in [0,1]", prop.ForAll(
		func(seed int64, n int, pick int) bool {
			ids := specs.IDs()
			spec, _ := specs.Lookup(ids[pick%len(ids)])
			res, err := rejection.Sample(spec, n, rejection.NewSourceFromSeed(seed))
			if err != nil || len(res.Trials) != n || len(res.Values) != res.AcceptedCount {
				return false
			}
			for _, x := range res.Values {
				if x < spec.Lower || x > spec.Upper {
					return false
				}
			}
			return res.AcceptanceRate >= 0 && res.AcceptanceRate <= 1 &&
				res.RunningRate[n-1] == res.AcceptanceRate
		},
		gen.Int64(),
		gen.IntRange(1, 200),
		gen.IntRange(0, 1000),
	))

	properties.TestingRun(t)
}
