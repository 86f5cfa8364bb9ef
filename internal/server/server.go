// Package server exposes the analysis engine over HTTP so benchmark
// harnesses in other languages can submit observations and read back
// fitted models.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/ordolab/ordo/internal/analysis"
	"github.com/ordolab/ordo/internal/config"
	"github.com/ordolab/ordo/internal/server/middleware"
	"github.com/ordolab/ordo/internal/store"
)

type Server struct {
	httpServer *http.Server
	analyzer   *analysis.Analyzer
	archive    *store.Store
	config     *config.Config
	logger     *slog.Logger
	version    string
}

// New wires the analyzer and the result archive behind the HTTP API.
// archive may be nil; analysis results are then not persisted.
func New(cfg *config.Config, analyzer *analysis.Analyzer, archive *store.Store, logger *slog.Logger, version string) *Server {
	s := &Server{
		analyzer: analyzer,
		archive:  archive,
		config:   cfg,
		logger:   logger,
		version:  version,
	}

	mux := s.setupRoutes()

	handler := middleware.Chain(
		mux,
		middleware.Recovery(logger),
		middleware.Logging(logger),
		middleware.RateLimit(&middleware.RateLimitConfig{
			Enabled:           cfg.Server.RateLimit.Enabled,
			RequestsPerSecond: cfg.Server.RateLimit.RequestsPerSecond,
			Burst:             cfg.Server.RateLimit.Burst,
		}),
		middleware.MaxBody(cfg.Server.MaxBodyBytes),
	)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

func (s *Server) Start() error {
	s.logger.Info("server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("server shutting down")
	return s.httpServer.Shutdown(ctx)
}

func (s *Server) Addr() string {
	return s.httpServer.Addr
}
