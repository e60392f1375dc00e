// Package config loads service configuration from the environment and
// command line flags.
package config

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/katalvlaran/randlab/gof"
)

// Config holds every knob of the randlabd service.
type Config struct {
	HTTPAddr        string        `env:"RANDLAB_HTTP_ADDR" envDefault:":8000"`
	CORSOrigins     []string      `env:"RANDLAB_CORS_ORIGINS" envDefault:"http://localhost:5173,http://127.0.0.1:5173" envSeparator:","`
	LogLevel        string        `env:"RANDLAB_LOG_LEVEL" envDefault:"info"`
	MaxSampleCount  int           `env:"RANDLAB_MAX_SAMPLE_COUNT" envDefault:"100000"`
	MaxIntervals    int           `env:"RANDLAB_MAX_INTERVALS" envDefault:"1000"`
	MaxModulus      int64         `env:"RANDLAB_MAX_MODULUS" envDefault:"4194304"`
	StrictDensity   bool          `env:"RANDLAB_STRICT_DENSITY" envDefault:"false"`
	OTelEndpoint    string        `env:"RANDLAB_OTEL_ENDPOINT"`
	OTelEnabled     bool          `env:"RANDLAB_OTEL_ENABLED" envDefault:"true"`
	OTelSampleRatio float64       `env:"RANDLAB_OTEL_SAMPLE_RATIO" envDefault:"1"`
	ShutdownTimeout time.Duration `env:"RANDLAB_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Load reads the environment, then lets flags in args override it.
func Load(args []string) (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}

	fs := flag.NewFlagSet("randlabd", flag.ContinueOnError)
	fs.StringVar(&cfg.HTTPAddr, "addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	fs.IntVar(&cfg.MaxSampleCount, "max-sample-count", cfg.MaxSampleCount, "largest accepted trial count for /random-variables")
	fs.IntVar(&cfg.MaxIntervals, "max-intervals", cfg.MaxIntervals, "largest accepted chi-square interval count")
	fs.Int64Var(&cfg.MaxModulus, "max-modulus", cfg.MaxModulus, "largest accepted modulus for /generate")
	fs.BoolVar(&cfg.StrictDensity, "strict-density", cfg.StrictDensity, "fail when a sampled density exceeds its envelope")
	fs.StringVar(&cfg.OTelEndpoint, "otel-endpoint", cfg.OTelEndpoint, "OTLP/HTTP trace endpoint URL; empty disables tracing")
	fs.Float64Var(&cfg.OTelSampleRatio, "otel-sample-ratio", cfg.OTelSampleRatio, "fraction of root traces sampled, in [0,1]")
	if args == nil {
		args = []string{}
	}
	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports settings the service cannot run with.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.HTTPAddr) == "" {
		errs = append(errs, errors.New("http address is required"))
	}
	if c.MaxSampleCount <= 0 {
		errs = append(errs, fmt.Errorf("max sample count %d must be positive", c.MaxSampleCount))
	}
	if c.MaxIntervals < 2 || c.MaxIntervals > gof.MaxIntervals {
		errs = append(errs, fmt.Errorf("max intervals %d must lie in [2, %d]", c.MaxIntervals, gof.MaxIntervals))
	}
	if !(c.OTelSampleRatio >= 0 && c.OTelSampleRatio <= 1) {
		errs = append(errs, fmt.Errorf("otel sample ratio %g must lie in [0, 1]", c.OTelSampleRatio))
	}
	if c.MaxModulus <= 1 {
		errs = append(errs, fmt.Errorf("max modulus %d must be > 1", c.MaxModulus))
	}
	if c.ShutdownTimeout <= 0 {
		errs = append(errs, fmt.Errorf("shutdown timeout %s must be positive", c.ShutdownTimeout))
	}
	if _, err := c.SlogLevel(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// SlogLevel maps LogLevel onto a slog.Level.
func (c Config) SlogLevel() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("log level %q: %w", c.LogLevel, err)
	}
	return lvl, nil
}

// TracingEnabled reports whether traces should be exported.
func (c Config) TracingEnabled() bool {
	return c.OTelEnabled && c.OTelEndpoint != ""
}
