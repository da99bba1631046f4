// Package server exposes the linter over HTTP.
//
// Routes:
//
//	POST /v1/lint        lint one document sent in the request body
//	GET  /v1/rules       list registered rules
//	GET  /v1/rules/{id}  show one rule
//	GET  /healthz        liveness probe
//	GET  /metrics        Prometheus metrics
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/sync/errgroup"

	"github.com/leapstack-labs/contentlint/internal/metrics"
	"github.com/leapstack-labs/contentlint/internal/parser"
	"github.com/leapstack-labs/contentlint/pkg/lint"
)

// DefaultAddr is the listen address used when none is configured.
const DefaultAddr = "127.0.0.1:8080"

// DefaultMaxBodyBytes bounds request bodies.
const DefaultMaxBodyBytes = 4 << 20

// Config holds configuration for the API server.
type Config struct {
	Addr         string
	Analyzer     *lint.Analyzer
	Parser       *parser.Parser
	Metrics      *metrics.Metrics
	Logger       *slog.Logger
	MaxBodyBytes int64
}

// Server is the HTTP lint API.
type Server struct {
	addr         string
	analyzer     *lint.Analyzer
	parser       *parser.Parser
	metrics      *metrics.Metrics
	logger       *slog.Logger
	maxBodyBytes int64
}

// New creates a new API server instance.
func New(cfg Config) *Server {
	s := &Server{
		addr:         cfg.Addr,
		analyzer:     cfg.Analyzer,
		parser:       cfg.Parser,
		metrics:      cfg.Metrics,
		logger:       cfg.Logger,
		maxBodyBytes: cfg.MaxBodyBytes,
	}
	if s.addr == "" {
		s.addr = DefaultAddr
	}
	if s.parser == nil {
		s.parser = parser.New(parser.HTMLModeText)
	}
	if s.logger == nil {
		s.logger = slog.New(slog.DiscardHandler)
	}
	if s.metrics == nil {
		s.metrics = s.analyzerMetrics()
	}
	if s.maxBodyBytes <= 0 {
		s.maxBodyBytes = DefaultMaxBodyBytes
	}
	return s
}

// analyzerMetrics reuses the registry the analyzer reports to. Without one,
// /metrics still serves request counters but lint counters stay at zero.
func (s *Server) analyzerMetrics() *metrics.Metrics {
	if s.analyzer != nil {
		if m, ok := s.analyzer.Observer().(*metrics.Metrics); ok {
			return m
		}
	}
	s.logger.Warn("analyzer has no metrics observer; lint counters will not be exported")
	return metrics.New()
}

// Handler builds the router.
func (s *Server) Handler() http.Handler {
	r := chi.NewMux()
	r.Use(
		middleware.RequestID,
		middleware.RealIP,
		s.requestLogger,
		middleware.Recoverer,
		middleware.Compress(5),
	)

	r.Get("/healthz", s.handleHealth)
	r.Method(http.MethodGet, "/metrics", s.metrics.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Post("/lint", s.handleLint)
		r.Get("/rules", s.handleRules)
		r.Get("/rules/{id}", s.handleRule)
	})
	return r
}

// Addr returns the address Serve listens on.
func (s *Server) Addr() string { return s.addr }

// Serve starts the server and blocks until the context is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", s.addr, err)
	}
	return s.ServeListener(ctx, ln)
}

// ServeListener serves on ln until the context is cancelled.
func (s *Server) ServeListener(ctx context.Context, ln net.Listener) error {
	s.logger.Info("starting API server", "addr", ln.Addr().String())

	eg, egctx := errgroup.WithContext(ctx)

	srv := &http.Server{
		Handler: s.Handler(),
		BaseContext: func(_ net.Listener) context.Context {
			return egctx
		},
		ReadHeaderTimeout: 10 * time.Second,
	}

	eg.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	// Graceful shutdown
	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Debug("shutting down API server...")
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}

// requestLogger logs each request at debug level and counts it.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		route := r.URL.Path
		if rctx := chi.RouteContext(r.Context()); rctx != nil && rctx.RoutePattern() != "" {
			route = rctx.RoutePattern()
		}
		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		s.metrics.RequestServed(route, status)
		s.logger.Debug("request",
			"method", r.Method,
			"route", route,
			"status", status,
			"duration", time.Since(start),
			"request_id", middleware.GetReqID(r.Context()))
	})
}
