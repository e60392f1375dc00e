package telemetry_test

import (
	"context"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/randlab/internal/telemetry"
)

func TestSetup_NoopWhenEndpointEmpty(t *testing.T) {
	shutdown, err := telemetry.Setup(context.Background(), telemetry.Settings{
		ServiceName: "randlab-test", Enabled: true, SampleRatio: 1,
	})
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}

func TestSetup_NoopWhenDisabled(t *testing.T) {
	shutdown, err := telemetry.Setup(context.Background(), telemetry.Settings{
		ServiceName: "randlab-test", Endpoint: "http://localhost:4318", SampleRatio: 1,
	})
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}

func TestSetup_CreatesProviderWhenEndpointSet(t *testing.T) {
	// Non-routable address: nothing is exported before shutdown.
	shutdown, err := telemetry.Setup(context.Background(), telemetry.Settings{
		ServiceName:    "randlab-test",
		ServiceVersion: "test",
		Endpoint:       "http://192.0.2.1:4318",
		Enabled:        true,
		SampleRatio:    0.5,
	})
	require.NoError(t, err)
	require.NoError(t, shutdown(context.Background()))
}

func TestSetup_RejectsBadRatio(t *testing.T) {
	_, err := telemetry.Setup(context.Background(), telemetry.Settings{
		ServiceName: "randlab-test", Endpoint: "http://192.0.2.1:4318", Enabled: true, SampleRatio: 2,
	})
	assert.Error(t, err)
}

func TestSampler(t *testing.T) {
	tests := []struct {
		ratio float64
		want  string
	}{
		{1, "AlwaysOnSampler"},
		{0, "AlwaysOffSampler"},
		{0.25, "TraceIDRatioBased{0.25}"},
	}
	for _, tc := range tests {
		s, err := telemetry.Sampler(tc.ratio)
		require.NoError(t, err)
		assert.Contains(t, s.Description(), "ParentBased")
		assert.Contains(t, s.Description(), tc.want, "ratio=%v", tc.ratio)
	}

	for _, bad := range []float64{-0.1, 1.01, math.NaN()} {
		_, err := telemetry.Sampler(bad)
		assert.Error(t, err, "ratio=%v", bad)
	}
}
