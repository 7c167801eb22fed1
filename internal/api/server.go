// Package api hosts the calculators over HTTP.
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/rpgo/corpfin-calculator/internal/calculation"
)

const shutdownTimeout = 5 * time.Second

// Server wires the calculation engine to a gin router.
type Server struct {
	addr   string
	logger zerolog.Logger
	router *gin.Engine
}

// NewServer builds the router. The engine's strict setting is the default for
// every request and can be overridden per request with ?strict=.
func NewServer(engine *calculation.CalculationEngine, logger zerolog.Logger, addr string) *Server {
	router := gin.New()
	router.Use(RequestIDMiddleware(logger))
	router.Use(AccessLogMiddleware())
	router.Use(RecoveryMiddleware(logger))
	router.Use(CORSMiddleware())

	routes(router, &handlers{engine: engine})

	return &Server{addr: addr, logger: logger, router: router}
}

// routes registers the API endpoints.
func routes(r *gin.Engine, h *handlers) {
	v1 := r.Group("/api")
	{
		v1.GET("/health", h.health)
		v1.GET("/defaults", h.defaults)
		v1.GET("/formats", h.formats)
		v1.POST("/wacc", h.wacc)
		v1.POST("/dilution", h.dilution)
		v1.POST("/debt-stack", h.debtStack)
		v1.POST("/sensitivity", h.sensitivity)
		v1.POST("/report", h.report)
	}
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:              s.addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", s.addr).Msg("server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("starting server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info().Msg("shutting down gracefully")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}
	s.logger.Info().Msg("server exited gracefully")
	return nil
}
