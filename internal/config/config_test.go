package config_test

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/randlab/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load(nil)
	require.NoError(t, err)

	assert.Equal(t, ":8000", cfg.HTTPAddr)
	assert.Equal(t, []string{"http://localhost:5173", "http://127.0.0.1:5173"}, cfg.CORSOrigins)
	assert.Equal(t, 100000, cfg.MaxSampleCount)
	assert.Equal(t, 1000, cfg.MaxIntervals)
	assert.Equal(t, 1.0, cfg.OTelSampleRatio)
	assert.Equal(t, int64(1<<22), cfg.MaxModulus)
	assert.False(t, cfg.StrictDensity)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	assert.False(t, cfg.TracingEnabled(), "no endpoint, no tracing")

	lvl, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, lvl)
}

func TestLoad_EnvThenFlags(t *testing.T) {
	t.Setenv("RANDLAB_HTTP_ADDR", ":9000")
	t.Setenv("RANDLAB_CORS_ORIGINS", "https://a.example,https://b.example")
	t.Setenv("RANDLAB_STRICT_DENSITY", "true")
	t.Setenv("RANDLAB_OTEL_ENDPOINT", "http://collector:4318")

	cfg, err := config.Load([]string{"-addr", ":9100", "-log-level", "debug", "-otel-sample-ratio", "0.25"})
	require.NoError(t, err)

	assert.Equal(t, ":9100", cfg.HTTPAddr, "flags override env")
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSOrigins)
	assert.True(t, cfg.StrictDensity)
	assert.True(t, cfg.TracingEnabled())
	assert.Equal(t, 0.25, cfg.OTelSampleRatio)

	lvl, err := cfg.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, lvl)
}

func TestLoad_Invalid(t *testing.T) {
	t.Run("bad env type", func(t *testing.T) {
		t.Setenv("RANDLAB_MAX_SAMPLE_COUNT", "lots")
		_, err := config.Load(nil)
		assert.Error(t, err)
	})
	t.Run("non-positive sample count", func(t *testing.T) {
		_, err := config.Load([]string{"-max-sample-count", "0"})
		assert.Error(t, err)
	})
	t.Run("max intervals above the package bound", func(t *testing.T) {
		_, err := config.Load([]string{"-max-intervals", "1000000"})
		assert.Error(t, err)
	})
	t.Run("sample ratio out of range", func(t *testing.T) {
		t.Setenv("RANDLAB_OTEL_SAMPLE_RATIO", "1.5")
		_, err := config.Load(nil)
		assert.Error(t, err)
	})
	t.Run("bad log level", func(t *testing.T) {
		_, err := config.Load([]string{"-log-level", "chatty"})
		assert.Error(t, err)
	})
	t.Run("unknown flag", func(t *testing.T) {
		_, err := config.Load([]string{"-nope"})
		assert.Error(t, err)
	})
}
