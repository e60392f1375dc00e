package main

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/randlab/internal/config"
)

func TestNewLogger_LevelAndService(t *testing.T) {
	var buf bytes.Buffer
	logger, err := newLogger(config.Config{LogLevel: "warn"}, &buf)
	require.NoError(t, err)

	logger.Info("dropped")
	assert.Zero(t, buf.Len(), "info is below warn")

	logger.Warn("kept")
	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "kept", record["msg"])
	assert.Equal(t, serviceName, record["service"])

	_, err = newLogger(config.Config{LogLevel: "loud"}, &buf)
	assert.Error(t, err)
}

func TestRun_StopsOnCancel(t *testing.T) {
	cfg := config.Config{
		HTTPAddr:        "127.0.0.1:0",
		LogLevel:        "error",
		MaxSampleCount:  10,
		MaxModulus:      1 << 10,
		ShutdownTimeout: time.Second,
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- run(ctx, cfg, &bytes.Buffer{}) }()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("run did not return after cancel")
	}
}
