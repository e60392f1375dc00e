package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/randlab"
	"github.com/katalvlaran/randlab/gof"
	"github.com/katalvlaran/randlab/rejection"
	"github.com/katalvlaran/randlab/sequence"
)

const methodAcceptanceRejection = "acceptance_rejection"

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, healthResponse{Status: "ok", Message: "randlab is running"})
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	ctx, span := s.tracer.Start(r.Context(), "randlab.generate")
	defer span.End()

	var req generateRequest
	if err := decode(w, r, &req); err != nil {
		s.fail(ctx, w, span, err)
		return
	}
	span.SetAttributes(attribute.String("randlab.method", req.Method))

	method, err := sequence.ParseMethod(req.Method)
	if err != nil {
		s.fail(ctx, w, span, err)
		return
	}
	p, err := s.sequenceParams(method, req.Parameters)
	if err != nil {
		s.fail(ctx, w, span, err)
		return
	}

	res, err := randlab.Generate(req.Method, p)
	if err != nil {
		s.fail(ctx, w, span, err)
		return
	}
	span.SetAttributes(
		attribute.Int("randlab.count", res.Stats.Count),
		attribute.String("randlab.stopped_reason", string(res.Stats.StoppedReason)),
	)
	writeJSON(w, http.StatusOK, newGenerateResponse(res))
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	ctx, span := s.tracer.Start(r.Context(), "randlab.validate")
	defer span.End()

	var req validateRequest
	if err := decode(w, r, &req); err != nil {
		s.fail(ctx, w, span, err)
		return
	}
	span.SetAttributes(attribute.String("randlab.method", req.Method))

	if !strings.HasSuffix(req.Method, "congruential") {
		s.fail(ctx, w, span, badRequestf("validation is only available for congruential methods, got %q", req.Method))
		return
	}
	a, err := requireInt(req.Parameters, "a")
	if err != nil {
		s.fail(ctx, w, span, err)
		return
	}
	m, err := requireInt(req.Parameters, "m")
	if err != nil {
		s.fail(ctx, w, span, err)
		return
	}
	b, err := optionalInt(req.Parameters, "b")
	if err != nil {
		s.fail(ctx, w, span, err)
		return
	}

	report, err := randlab.Validate(a, b, m, req.Method == sequence.NameMixedCongruential)
	if err != nil {
		s.fail(ctx, w, span, err)
		return
	}
	span.SetAttributes(attribute.Bool("randlab.all_satisfied", report.AllSatisfied))
	writeJSON(w, http.StatusOK, newValidateResponse(report))
}

func (s *Server) handleStatisticalTest(w http.ResponseWriter, r *http.Request) {
	ctx, span := s.tracer.Start(r.Context(), "randlab.statistical_test")
	defer span.End()

	var req statisticalTestRequest
	if err := decode(w, r, &req); err != nil {
		s.fail(ctx, w, span, err)
		return
	}
	span.SetAttributes(
		attribute.String("randlab.test_type", req.TestType),
		attribute.Int("randlab.sample_size", len(req.Numbers)),
	)

	opts, err := s.testOptions(req.Parameters)
	if err != nil {
		s.fail(ctx, w, span, err)
		return
	}

	res, err := randlab.RunTestWith(req.Numbers, req.TestType, opts...)
	if err != nil {
		s.fail(ctx, w, span, err)
		return
	}
	for _, warning := range res.Warnings {
		s.logger.WarnContext(ctx, "statistical test warning",
			"test_type", req.TestType, "warning", warning)
	}
	span.SetAttributes(attribute.Bool("randlab.passes", res.Passes))
	writeJSON(w, http.StatusOK, newTestResultDTO(res))
}

func (s *Server) handleRandomVariables(w http.ResponseWriter, r *http.Request) {
	ctx, span := s.tracer.Start(r.Context(), "randlab.random_variables")
	defer span.End()

	var req randomVariablesRequest
	if err := decode(w, r, &req); err != nil {
		s.fail(ctx, w, span, err)
		return
	}
	span.SetAttributes(
		attribute.String("randlab.distribution", req.Distribution),
		attribute.Int("randlab.count", req.Count),
	)

	if req.Method != methodAcceptanceRejection {
		s.fail(ctx, w, span, badRequestf("unsupported method %q, want %q", req.Method, methodAcceptanceRejection))
		return
	}
	if s.opts.MaxSampleCount > 0 && req.Count > s.opts.MaxSampleCount {
		s.fail(ctx, w, span, badRequestf("count %d exceeds the limit of %d", req.Count, s.opts.MaxSampleCount))
		return
	}

	src, err := s.newSource()
	if err != nil {
		s.fail(ctx, w, span, fmt.Errorf("seed uniform source: %w", err))
		return
	}
	var opts []rejection.Option
	if s.opts.StrictDensity {
		opts = append(opts, rejection.WithStrict())
	}

	res, err := randlab.SampleFrom(s.registry, req.Count, req.Distribution, src, opts...)
	if err != nil {
		s.fail(ctx, w, span, err)
		return
	}
	span.SetAttributes(attribute.Float64("randlab.acceptance_rate", res.AcceptanceRate))
	writeJSON(w, http.StatusOK, newSamplingResponse(res))
}

// sequenceParams extracts the parameters method needs and applies the
// configured modulus limit.
func (s *Server) sequenceParams(method sequence.Method, raw map[string]float64) (sequence.Params, error) {
	var p sequence.Params
	var err error

	if p.Seed, err = requireInt(raw, "x0"); err != nil {
		return p, err
	}
	if method == sequence.MiddleSquare {
		d, err := requireInt(raw, "digits")
		if err != nil {
			return p, err
		}
		if d > sequence.MaxDigits {
			return p, badRequestf("digits %d exceeds the limit of %d", d, sequence.MaxDigits)
		}
		p.Digits = int(d)
		return p, nil
	}

	if p.Multiplier, err = requireInt(raw, "a"); err != nil {
		return p, err
	}
	if p.Modulus, err = requireInt(raw, "m"); err != nil {
		return p, err
	}
	if s.opts.MaxModulus > 0 && p.Modulus > s.opts.MaxModulus {
		return p, badRequestf("modulus %d exceeds the limit of %d", p.Modulus, s.opts.MaxModulus)
	}
	if method == sequence.MixedCongruential {
		if p.Increment, err = requireInt(raw, "b"); err != nil {
			return p, err
		}
	}
	return p, nil
}

// testOptions turns the parameters present in the request into gof options.
// Absent keys keep the gof defaults; present keys are passed through as
// given, so an explicit zero is rejected by gof.
func (s *Server) testOptions(raw map[string]float64) ([]gof.Option, error) {
	var opts []gof.Option
	if _, ok := raw["intervals"]; ok {
		k, err := requireInt(raw, "intervals")
		if err != nil {
			return nil, err
		}
		if s.opts.MaxIntervals > 0 && k > int64(s.opts.MaxIntervals) {
			return nil, badRequestf("intervals %d exceeds the limit of %d", k, s.opts.MaxIntervals)
		}
		opts = append(opts, gof.WithIntervals(int(k)))
	}

	alpha, ok := raw["alpha"]
	if !ok {
		alpha, ok = raw["significance_level"]
	}
	if ok {
		opts = append(opts, gof.WithAlpha(alpha))
	}
	return opts, nil
}

// fail records err on the span, logs server-side failures and writes the
// error response.
func (s *Server) fail(ctx context.Context, w http.ResponseWriter, span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
	if status := writeError(w, err); status >= http.StatusInternalServerError {
		s.logger.ErrorContext(ctx, "request failed", "error", err)
	}
}

func decode(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return badRequestf("malformed JSON body: %v", err)
	}
	return nil
}

func requireInt(params map[string]float64, key string) (int64, error) {
	v, ok := params[key]
	if !ok {
		return 0, badRequestf("missing parameter %q", key)
	}
	return toInt(key, v)
}

func optionalInt(params map[string]float64, key string) (int64, error) {
	v, ok := params[key]
	if !ok {
		return 0, nil
	}
	return toInt(key, v)
}

func toInt(key string, v float64) (int64, error) {
	if v != math.Trunc(v) || math.IsInf(v, 0) || math.Abs(v) > 1<<53 {
		return 0, badRequestf("parameter %q must be an integer, got %v", key, v)
	}
	return int64(v), nil
}
