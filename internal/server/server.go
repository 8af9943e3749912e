// Package server exposes the function modules over HTTP: evaluation at an
// arbitrary point, on-demand benchmarks, lookup-table reads and Prometheus
// metrics.
package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/agbru/bindtime/internal/config"
	apperrors "github.com/agbru/bindtime/internal/errors"
	"github.com/agbru/bindtime/internal/logging"
	"github.com/agbru/bindtime/internal/service"
	"github.com/agbru/bindtime/internal/suite"
)

// Server is the bindtime HTTP API. It wraps http.Server with the
// middleware chain and graceful shutdown on SIGINT and SIGTERM.
type Server struct {
	service        service.Service
	cfg            config.AppConfig
	httpServer     *http.Server
	logger         logging.Logger
	shutdownSignal chan os.Signal
	metrics        *Metrics
	timeouts       Timeouts
}

// NewServer creates a Server listening on cfg.Port.
//
// Parameters:
//   - cfg: The application configuration (port, limits, timeout).
//   - opts: Functional options such as WithService or WithLogger.
//
// Returns:
//   - *Server: The initialized server, not yet listening.
func NewServer(cfg config.AppConfig, opts ...Option) *Server {
	s := &Server{
		cfg:            cfg,
		logger:         logging.NewLogger(os.Stdout, "server"),
		shutdownSignal: make(chan os.Signal, 1),
		metrics:        NewMetrics(),
		timeouts:       DefaultServerTimeouts(),
	}
	if cfg.Timeout > 0 {
		s.timeouts.RequestTimeout = cfg.Timeout
	}

	for _, opt := range opts {
		opt(s)
	}

	if s.service == nil {
		s.service = service.NewEvaluationService(suite.Global(), cfg.MaxOrder, cfg.MaxLoops)
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.wrapWithMiddleware(s.handleHealth))
	mux.HandleFunc("/functions", s.wrapWithMiddleware(s.handleFunctions))
	mux.HandleFunc("/evaluate", s.wrapWithMiddleware(s.handleEvaluate))
	mux.HandleFunc("/benchmark", s.wrapWithMiddleware(s.handleBenchmark))
	mux.HandleFunc("/table", s.wrapWithMiddleware(s.handleTable))
	mux.HandleFunc("/metrics", s.wrapWithMiddleware(s.handleMetrics))

	s.httpServer = &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      mux,
		ReadTimeout:  s.timeouts.ReadTimeout,
		WriteTimeout: s.timeouts.WriteTimeout,
		IdleTimeout:  s.timeouts.IdleTimeout,
	}

	return s
}

// Handler returns the routed middleware chain, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// wrapWithMiddleware applies, outermost first: security headers, logging,
// metrics.
func (s *Server) wrapWithMiddleware(handler http.HandlerFunc) http.HandlerFunc {
	wrapped := s.metricsMiddleware(handler)
	wrapped = s.loggingMiddleware(wrapped)
	wrapped = securityHeadersMiddleware(wrapped)
	return wrapped
}

// Start listens on the configured port until SIGINT or SIGTERM, then shuts
// down gracefully.
//
// Returns:
//   - error: A ServerError if the listener fails or shutdown times out.
func (s *Server) Start() error {
	signal.Notify(s.shutdownSignal, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(s.shutdownSignal)

	errCh := make(chan error, 1)

	go func() {
		s.logger.Info("starting server",
			logging.String("addr", s.httpServer.Addr),
			logging.Int("max_order", s.cfg.MaxOrder),
			logging.Int("max_loops", s.cfg.MaxLoops))
		s.logger.Println("Available endpoints:")
		s.logger.Println("  GET /health")
		s.logger.Println("  GET /functions")
		s.logger.Println("  GET /evaluate?fn=<name>&x=<float>&order=<int>")
		s.logger.Println("  GET /benchmark?fn=<name>&loops=<int>")
		s.logger.Println("  GET /table?fn=<name>&i=<int>")
		s.logger.Println("  GET /metrics")

		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-s.shutdownSignal:
		s.logger.Info("shutdown signal received, initiating graceful shutdown")
	case err := <-errCh:
		return apperrors.NewServerError("server failed to start", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), s.timeouts.ShutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return apperrors.NewServerError("failed to gracefully shutdown server", err)
	}

	s.logger.Info("server stopped gracefully")
	return nil
}

// Stop triggers the same graceful shutdown as SIGTERM.
func (s *Server) Stop() {
	select {
	case s.shutdownSignal <- syscall.SIGTERM:
	default:
	}
}
