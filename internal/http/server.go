// Package http provides the API server, its router and the metrics server.
package http

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/metric"

	accountHTTP "github.com/allisson/mediavault/internal/account/http"
	authHTTP "github.com/allisson/mediavault/internal/auth/http"
	"github.com/allisson/mediavault/internal/config"
	mediaHTTP "github.com/allisson/mediavault/internal/media/http"
	"github.com/allisson/mediavault/internal/metrics"
	userHTTP "github.com/allisson/mediavault/internal/user/http"
)

// readinessTimeout bounds the database ping of the readiness check.
const readinessTimeout = 2 * time.Second

// Server represents the API HTTP server.
type Server struct {
	db     *sql.DB
	server *http.Server
	router *gin.Engine
	logger *slog.Logger
}

// RouterDeps groups the handlers and middleware mounted by SetupRouter. Nil middleware is skipped.
type RouterDeps struct {
	UserHandler              *userHTTP.UserHandler
	TokenHandler             *authHTTP.TokenHandler
	AccountHandler           *accountHTTP.AccountHandler
	AssetHandler             *mediaHTTP.AssetHandler
	AuthMiddleware           gin.HandlerFunc
	RateLimitMiddleware      gin.HandlerFunc
	TokenRateLimitMiddleware gin.HandlerFunc
	MeterProvider            metric.MeterProvider
}

// NewServer creates a new API server. db is used by the readiness check.
func NewServer(
	db *sql.DB,
	host string,
	port int,
	logger *slog.Logger,
) *Server {
	return &Server{
		db:     db,
		logger: logger,
		server: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", host, port),
			ReadTimeout:  30 * time.Second,
			WriteTimeout: 60 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
	}
}

// SetupRouter builds the gin engine with every route of the API.
func (s *Server) SetupRouter(cfg *config.Config, deps RouterDeps) {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestid.New(requestid.WithGenerator(func() string {
		return uuid.Must(uuid.NewV7()).String()
	})))
	router.Use(CustomLoggerMiddleware(s.logger))

	if cfg.MetricsEnabled && deps.MeterProvider != nil {
		router.Use(metrics.HTTPMetricsMiddleware(deps.MeterProvider, cfg.MetricsNamespace))
	}
	if corsMiddleware := createCORSMiddleware(cfg.CORSEnabled, cfg.CORSAllowOrigins, s.logger); corsMiddleware != nil {
		router.Use(corsMiddleware)
	}

	router.GET("/health", s.healthHandler)
	router.GET("/ready", s.readinessHandler)

	v1 := router.Group("/v1")

	public := v1.Group("")
	if deps.TokenRateLimitMiddleware != nil {
		public.Use(deps.TokenRateLimitMiddleware)
	}
	public.POST("/users", deps.UserHandler.RegisterHandler)
	public.POST("/token", deps.TokenHandler.IssueTokenHandler)

	authenticated := v1.Group("")
	authenticated.Use(deps.AuthMiddleware)
	if deps.RateLimitMiddleware != nil {
		authenticated.Use(deps.RateLimitMiddleware)
	}

	accounts := authenticated.Group("/accounts")
	{
		accounts.GET("", deps.AccountHandler.ListHandler)
		accounts.POST("", deps.AccountHandler.CreateHandler)
		accounts.GET("/:id", deps.AccountHandler.GetHandler)
		accounts.PATCH("/:id", deps.AccountHandler.UpdateHandler)
		accounts.DELETE("/:id", deps.AccountHandler.DeleteHandler)
		accounts.GET("/:id/credentials", deps.AccountHandler.RevealCredentialsHandler)

		accounts.GET("/:id/assets", deps.AssetHandler.ListHandler)
		accounts.POST("/:id/assets", deps.AssetHandler.UploadHandler)
		accounts.PATCH("/:id/assets/*public_id", deps.AssetHandler.UpdateHandler)
		accounts.DELETE("/:id/assets/*public_id", deps.AssetHandler.DeleteHandler)
	}

	s.router = router
}

// GetHandler returns the http.Handler for testing purposes.
func (s *Server) GetHandler() http.Handler {
	return s.router
}

// Start starts the HTTP server. SetupRouter must have been called.
func (s *Server) Start(ctx context.Context) error {
	if s.router == nil {
		return fmt.Errorf("router not configured")
	}
	s.server.Handler = s.router

	s.logger.Info("starting http server", slog.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.server.Shutdown(ctx)
}

func (s *Server) healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy"})
}

// readinessHandler reports ready only when the database answers a ping.
func (s *Server) readinessHandler(c *gin.Context) {
	if s.db == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": gin.H{"database": "error"},
		})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), readinessTimeout)
	defer cancel()

	if err := s.db.PingContext(ctx); err != nil {
		s.logger.Warn("readiness check failed", slog.Any("error", err))
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":     "not_ready",
			"components": gin.H{"database": "error"},
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":     "ready",
		"components": gin.H{"database": "ok"},
	})
}
