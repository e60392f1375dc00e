// Package telemetry wires OpenTelemetry tracing for randlabd.
package telemetry

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

// ShutdownFunc flushes pending spans and releases the exporter.
type ShutdownFunc func(context.Context) error

// Settings selects where and how much randlabd traces.
type Settings struct {
	ServiceName    string
	ServiceVersion string

	// Endpoint is the OTLP/HTTP collector URL. Empty disables tracing.
	Endpoint string
	Enabled  bool

	// SampleRatio is the fraction of root traces kept, in [0,1]. Child
	// spans follow their parent's decision.
	SampleRatio float64
}

// Active reports whether Setup will install a provider.
func (s Settings) Active() bool {
	return s.Enabled && s.Endpoint != ""
}

// Setup initialises OpenTelemetry tracing for randlabd.
//
// Tracing is opt-in: when the settings are not Active, Setup returns a
// no-op shutdown function and the global provider is left alone, so
// otel.Tracer hands out no-op tracers.
func Setup(ctx context.Context, s Settings) (ShutdownFunc, error) {
	noop := func(context.Context) error { return nil }
	if !s.Active() {
		return noop, nil
	}
	sampler, err := Sampler(s.SampleRatio)
	if err != nil {
		return noop, err
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpointURL(s.Endpoint),
	)
	if err != nil {
		return noop, fmt.Errorf("otlp exporter: %w", err)
	}

	attrs := []attribute.KeyValue{semconv.ServiceName(s.ServiceName)}
	if s.ServiceVersion != "" {
		attrs = append(attrs, semconv.ServiceVersion(s.ServiceVersion))
	}
	res, err := resource.New(ctx, resource.WithAttributes(attrs...))
	if err != nil {
		return noop, fmt.Errorf("trace resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(sampler),
	)

	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})

	return tp.Shutdown, nil
}

// Sampler maps a ratio onto a parent-based sampler: 1 keeps every root
// trace, 0 drops them all, anything between samples by trace ID.
func Sampler(ratio float64) (sdktrace.Sampler, error) {
	switch {
	case !(ratio >= 0 && ratio <= 1):
		return nil, fmt.Errorf("sample ratio %g must lie in [0, 1]", ratio)
	case ratio == 1:
		return sdktrace.ParentBased(sdktrace.AlwaysSample()), nil
	case ratio == 0:
		return sdktrace.ParentBased(sdktrace.NeverSample()), nil
	default:
		return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(ratio)), nil
	}
}
