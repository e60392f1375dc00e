package rejection_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/randlab/rejection"
)

// TestSample_FixedSourceDecisions replays interleaved (u1, u2) pairs for
// f(x) = 2x and checks every recorded field.
func TestSample_FixedSourceDecisions(t *testing.T) {
	src := rejection.NewFixedSource(
		0.50, 0.40, // x=0.50 ratio=0.50 → accept
		0.50, 0.60, // x=0.50 ratio=0.50 → reject
		0.25, 0.10, // x=0.25 ratio=0.25 → accept
		0.90, 0.95, // x=0.90 ratio=0.90 → reject
	)

	res, err := rejection.Sample(rejection.Linear(), 4, src)
	require.NoError(t, err)
	require.Len(t, res.Trials, 4)

	wantAccepted := []bool{true, false, true, false}
	wantY := []float64{0.8, 1.2, 0.2, 1.9}
	for i, tr := range res.Trials {
		assert.Equal(t, i+1, tr.Index)
		assert.Equal(t, wantAccepted[i], tr.Accepted, "trial %d", i+1)
		assert.InDelta(t, wantY[i], tr.Y, 1e-12, "trial %d", i+1)
		assert.InDelta(t, tr.X, tr.Ratio, 1e-12, "for 2x/2 the ratio equals x")
	}
	assert.Equal(t, []float64{0.5, 0.25}, res.Values)
	assert.Equal(t, 2, res.AcceptedCount)
	assert.Equal(t, 0.5, res.AcceptanceRate)
	assert.InDeltaSlice(t, []float64{1, 0.5, 2.0 / 3.0, 0.5}, res.RunningRate, 1e-12)

	assert.Equal(t, "linear", res.ID)
	assert.Equal(t, "f(x) = 2x", res.Label)
	assert.Equal(t, 2.0, res.Envelope)
}

// TestSample_BoundaryAccepts checks that u2 == f(x)/M is an acceptance.
func TestSample_BoundaryAccepts(t *testing.T) {
	res, err := rejection.Sample(rejection.Linear(), 1, rejection.NewFixedSource(0.5, 0.5))
	require.NoError(t, err)
	assert.True(t, res.Trials[0].Accepted)
}

// TestSample_DomainMapping checks x = a + (b−a)·u1 on a shifted domain.
func TestSample_DomainMapping(t *testing.T) {
	res, err := rejection.Sample(rejection.Hyperbola(), 2, rejection.NewFixedSource(0, 0.1, 0.5, 0.99))
	require.NoError(t, err)
	assert.Equal(t, 0.5, res.Trials[0].X)
	assert.Equal(t, 1.0, res.Trials[0].Ratio, "1/0.5 / 2")
	assert.True(t, res.Trials[0].Accepted)
	assert.Equal(t, 1.75, res.Trials[1].X)
	assert.False(t, res.Trials[1].Accepted)
}

// TestSample_Reproducible shows identical sources give identical results.
func TestSample_Reproducible(t *testing.T) {
	a, err := rejection.Sample(rejection.Quadratic(), 500, rejection.NewSourceFromSeed(7))
	require.NoError(t, err)
	b, err := rejection.Sample(rejection.Quadratic(), 500, rejection.NewSourceFromSeed(7))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// TestSample_LongRunRate checks convergence to area(f) / area(envelope).
func TestSample_LongRunRate(t *testing.T) {
	tests := []struct {
		spec rejection.Spec
		want float64
	}{
		{rejection.Linear(), 0.5},
		{rejection.Quadratic(), 2.0 / 3.0},
		{rejection.Hyperbola(), math.Log(6) / 5},
	}
	for _, tc := range tests {
		t.Run(tc.spec.ID, func(t *testing.T) {
			res, err := rejection.Sample(tc.spec, 200000, rejection.NewSourceFromSeed(2024))
			require.NoError(t, err)
			assert.InDelta(t, tc.want, res.AcceptanceRate, 0.01)
			assert.Len(t, res.Trials, 200000, "trial count is fixed")
			for _, x := range res.Values {
				assert.True(t, x >= tc.spec.Lower && x <= tc.spec.Upper)
			}
		})
	}
}

// TestSample_EnvelopeViolation contrasts strict and lenient modes.
func TestSample_EnvelopeViolation(t *testing.T) {
	bad := rejection.Spec{
		ID: "too-tall", Label: "f(x) = 3",
		Lower: 0, Upper: 1, Envelope: 2,
		F: rejection.DensityFunc(func(float64) float64 { return 3 }),
	}

	_, err := rejection.Sample(bad, 10, rejection.NewSourceFromSeed(1), rejection.WithStrict())
	assert.ErrorIs(t, err, rejection.ErrDensityContractViolation)

	res, err := rejection.Sample(bad, 10, rejection.NewSourceFromSeed(1))
	require.NoError(t, err)
	assert.Equal(t, 1.0, res.AcceptanceRate, "a violated envelope accepts everything")
	assert.Equal(t, 1.5, res.Trials[0].Ratio)
}

// TestSample_StrictPassesValidSpec ensures strict mode is silent when M holds.
func TestSample_StrictPassesValidSpec(t *testing.T) {
	_, err := rejection.Sample(rejection.Quadratic(), 1000, rejection.NewSourceFromSeed(3), rejection.WithStrict())
	assert.NoError(t, err)
}

// TestSample_InvalidParameters covers fail-fast validation.
func TestSample_InvalidParameters(t *testing.T) {
	src := rejection.NewSourceFromSeed(1)
	lin := rejection.Linear()

	_, err := rejection.Sample(lin, 0, src)
	assert.ErrorIs(t, err, rejection.ErrInvalidParameter)
	_, err = rejection.Sample(lin, -3, src)
	assert.ErrorIs(t, err, rejection.ErrInvalidParameter)
	_, err = rejection.Sample(lin, 10, nil)
	assert.ErrorIs(t, err, rejection.ErrInvalidParameter)
	var typedNil *rejection.FixedSource
	_, err = rejection.Sample(lin, 10, typedNil)
	assert.ErrorIs(t, err, rejection.ErrInvalidParameter, "typed nil behind the interface")

	bad := []rejection.Spec{
		{ID: "nil-f", Lower: 0, Upper: 1, Envelope: 1},
		{ID: "flipped", Lower: 1, Upper: 0, Envelope: 1, F: lin.F},
		{ID: "zero-m", Lower: 0, Upper: 1, Envelope: 0, F: lin.F},
		{ID: "inf-domain", Lower: 0, Upper: math.Inf(1), Envelope: 1, F: lin.F},
	}
	for _, s := range bad {
		_, err = rejection.Sample(s, 10, src)
		assert.ErrorIs(t, err, rejection.ErrInvalidParameter, s.ID)
	}
}

// TestSample_Curve checks the plotting curve.
func TestSample_Curve(t *testing.T) {
	res, err := rejection.Sample(rejection.Quadratic(), 1, rejection.NewFixedSource(0.5))
	require.NoError(t, err)
	require.Len(t, res.Curve, rejection.DefaultCurvePoints)
	assert.Equal(t, rejection.Point{X: 0, Fx: 0}, res.Curve[0])
	assert.Equal(t, rejection.Point{X: 2, Fx: 4}, res.Curve[50])

	res, err = rejection.Sample(rejection.Linear(), 1, rejection.NewFixedSource(0.5), rejection.WithCurvePoints(4))
	require.NoError(t, err)
	assert.Equal(t, []rejection.Point{{0, 0}, {0.25, 0.5}, {0.5, 1}, {0.75, 1.5}}, res.Curve)

	assert.Panics(t, func() { rejection.WithCurvePoints(0) })
}

// TestSample_SourceCheck attaches a chi-square test of the u1 draws.
func TestSample_SourceCheck(t *testing.T) {
	res, err := rejection.Sample(rejection.Linear(), 2000, rejection.NewSourceFromSeed(11),
		rejection.WithSourceCheck(10, 0.01))
	require.NoError(t, err)
	require.NotNil(t, res.SourceCheck)
	assert.Equal(t, 2000, res.SourceCheck.SampleSize)
	assert.Equal(t, 9, res.SourceCheck.DegreesOfFreedom)
	assert.Empty(t, res.Warnings)

	// A constant source cannot be normalized; the check is skipped, not fatal.
	res, err = rejection.Sample(rejection.Linear(), 10, rejection.NewFixedSource(0.3),
		rejection.WithSourceCheck(5, 0.05))
	require.NoError(t, err)
	assert.Nil(t, res.SourceCheck)
	require.Len(t, res.Warnings, 1)
	assert.Contains(t, res.Warnings[0], "source check skipped")
}

// TestDefaultOptions documents the lenient defaults.
func TestDefaultOptions(t *testing.T) {
	o := rejection.DefaultOptions()
	assert.False(t, o.Strict)
	assert.Equal(t, rejection.DefaultCurvePoints, o.CurvePoints)
	assert.False(t, o.SourceCheck)

	rejection.WithSourceCheck(5, 0.1)(&o)
	assert.True(t, o.SourceCheck)
	assert.Len(t, o.SourceCheckOptions, 2)
}

// TestFixedSource_Wraps checks cycling and the empty-list panic.
func TestFixedSource_Wraps(t *testing.T) {
	src := rejection.NewFixedSource(0.1, 0.2)
	assert.Equal(t, []float64{0.1, 0.2, 0.1}, []float64{src.Float64(), src.Float64(), src.Float64()})
	assert.Panics(t, func() { rejection.NewFixedSource() })
}

// TestNewSeededSource returns usable, independent sources.
func TestNewSeededSource(t *testing.T) {
	src, err := rejection.NewSeededSource()
	require.NoError(t, err)
	for i := 0; i < 100; i++ {
		u := src.Float64()
		assert.True(t, u >= 0 && u < 1)
	}
}
