package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/ppiankov/symptriage/internal/model"
	"github.com/ppiankov/symptriage/internal/pipeline"
	"github.com/ppiankov/symptriage/internal/worker"
)

// Server exposes the assessment pipeline over HTTP
type Server struct {
	pipeline *pipeline.Pipeline
	limiter  *worker.Limiter
	metrics  *Metrics
	cfg      model.ServerConfig
	logger   *slog.Logger
	handler  http.Handler
}

// New builds the routes and middleware chain
func New(p *pipeline.Pipeline, cfg *model.Config, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		pipeline: p,
		limiter:  worker.NewLimiter(cfg.RateLimiting.RequestsPerSecond, cfg.RateLimiting.BurstSize),
		metrics:  NewMetrics(),
		cfg:      cfg.Server,
		logger:   logger,
	}

	mux := http.NewServeMux()
	s.routes(mux)

	// Build middleware chain (applied in reverse order).
	var h http.Handler = mux
	h = s.loggingMiddleware(h)
	h = s.rateLimitMiddleware(h, "/healthz", "/metrics")
	s.handler = h

	return s
}

// Handler returns the root HTTP handler
func (s *Server) Handler() http.Handler {
	return s.handler
}

// Metrics returns the server's metric collectors
func (s *Server) Metrics() *Metrics {
	return s.metrics
}

// Run serves on the configured address until ctx is cancelled, then shuts
// down gracefully within the configured shutdown timeout.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.handler,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("server starting", "addr", s.cfg.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("shutdown signal received")
	case err := <-errCh:
		return err
	}

	timeout := s.cfg.ShutdownTimeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	s.logger.Info("server stopped")
	return nil
}
