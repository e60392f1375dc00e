// Package httpapi exposes the randlab operations as a JSON HTTP service.
package httpapi

import (
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/randlab/rejection"
)

const (
	tracerName = "github.com/katalvlaran/randlab/internal/httpapi"

	// maxBodyBytes bounds request bodies; /statistical-test carries the
	// largest payloads.
	maxBodyBytes = 8 << 20
)

// Options are the request limits and policies taken from configuration.
type Options struct {
	AllowedOrigins []string
	MaxSampleCount int
	MaxIntervals   int
	MaxModulus     int64
	StrictDensity  bool
}

// Server routes HTTP requests onto the core packages.
type Server struct {
	opts      Options
	logger    *slog.Logger
	tracer    trace.Tracer
	registry  *rejection.Registry
	newSource func() (rejection.UniformSource, error)
	origins   map[string]struct{}
}

// ServerOption customizes a Server.
type ServerOption func(*Server)

// WithRegistry replaces the density registry used by /random-variables.
func WithRegistry(r *rejection.Registry) ServerOption {
	return func(s *Server) { s.registry = r }
}

// WithSourceFactory replaces the per-request uniform source constructor.
func WithSourceFactory(f func() (rejection.UniformSource, error)) ServerOption {
	return func(s *Server) { s.newSource = f }
}

// New builds a Server. A nil logger discards log output.
func New(opts Options, logger *slog.Logger, extra ...ServerOption) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	s := &Server{
		opts:      opts,
		logger:    logger,
		tracer:    otel.Tracer(tracerName),
		registry:  rejection.DefaultRegistry(),
		newSource: rejection.NewSeededSource,
		origins:   make(map[string]struct{}, len(opts.AllowedOrigins)),
	}
	for _, o := range opts.AllowedOrigins {
		s.origins[o] = struct{}{}
	}
	for _, fn := range extra {
		fn(s)
	}
	return s
}

// Handler returns the routed handler wrapped in CORS and request logging.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)
	mux.HandleFunc("POST /generate", s.handleGenerate)
	mux.HandleFunc("POST /validate", s.handleValidate)
	mux.HandleFunc("POST /statistical-test", s.handleStatisticalTest)
	mux.HandleFunc("POST /random-variables", s.handleRandomVariables)

	return s.logRequests(s.recoverPanics(s.cors(mux)))
}

// recoverPanics turns a handler panic into a logged 500.
func (s *Server) recoverPanics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if v := recover(); v != nil {
				if v == http.ErrAbortHandler {
					panic(v)
				}
				s.logger.ErrorContext(r.Context(), "handler panic",
					"path", r.URL.Path, "panic", fmt.Sprint(v), "stack", string(debug.Stack()))
				writeJSON(w, http.StatusInternalServerError, errorResponse{Detail: "internal error"})
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// cors answers preflights and decorates responses for allowed origins.
func (s *Server) cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		_, allowed := s.origins[origin]
		if origin != "" && allowed {
			h := w.Header()
			h.Set("Access-Control-Allow-Origin", origin)
			h.Set("Access-Control-Allow-Credentials", "true")
			h.Add("Vary", "Origin")
		}

		if r.Method == http.MethodOptions && r.Header.Get("Access-Control-Request-Method") != "" {
			if allowed {
				h := w.Header()
				h.Set("Access-Control-Allow-Methods", r.Header.Get("Access-Control-Request-Method"))
				if reqHeaders := r.Header.Get("Access-Control-Request-Headers"); reqHeaders != "" {
					h.Set("Access-Control-Allow-Headers", reqHeaders)
				}
				h.Set("Access-Control-Max-Age", "600")
			}
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}

// logRequests emits one structured record per request.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		level := slog.LevelInfo
		if rec.status >= http.StatusInternalServerError {
			level = slog.LevelError
		}
		s.logger.LogAttrs(r.Context(), level, "request",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.Int("status", rec.status),
			slog.Duration("duration", time.Since(start)),
		)
	})
}
