// Package httpserver exposes the suggestion pipeline over HTTP.
package httpserver

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/varunvj2006/sniffd-ai/pkg/config"
	"github.com/varunvj2006/sniffd-ai/pkg/suggest"
)

const shutdownTimeout = 10 * time.Second

// Server wraps the gin engine with graceful shutdown helpers.
type Server struct {
	cfg    *config.Config
	engine *gin.Engine
	log    zerolog.Logger
}

// New constructs the HTTP server with default middleware and routes.
func New(cfg *config.Config, service *suggest.Service, log zerolog.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery(), requestLogger(log))

	registerRoutes(engine, cfg, service, log)

	return &Server{
		cfg:    cfg,
		engine: engine,
		log:    log.With().Str("component", "http").Logger(),
	}
}

// Handler returns the underlying HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run starts the listener and shuts down gracefully on context cancellation.
func (s *Server) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:    s.cfg.Addr,
		Handler: s.engine,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", s.cfg.Addr).Msg("HTTP server listening")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		s.log.Info().Msg("Context cancelled, shutting down HTTP server")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func registerRoutes(engine *gin.Engine, cfg *config.Config, service *suggest.Service, log zerolog.Logger) {
	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	handlers := newHandlers(service, log)
	api := engine.Group("/api")
	api.POST("/notes", handlers.extractNotes)
	api.POST("/suggestions", handlers.findSuggestions)
	api.POST("/scene", handlers.findFromScene)

	if cfg.StaticDir != "" {
		engine.Static("/app", cfg.StaticDir)
		engine.GET("/", func(c *gin.Context) {
			c.Redirect(http.StatusTemporaryRedirect, "/app/")
		})
	}
}
