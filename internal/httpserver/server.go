// Package httpserver hosts the page and API handlers behind a shared
// middleware chain.
package httpserver

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/KirkDiggler/pokedex/internal/errors"
	"github.com/KirkDiggler/pokedex/internal/pkg/clock"
	"github.com/KirkDiggler/pokedex/internal/pkg/idgen"
)

// RouteRegistrar mounts a group of handlers
type RouteRegistrar interface {
	RegisterRoutes(router *mux.Router)
}

// Config holds the server dependencies
type Config struct {
	Addr     string
	Handlers []RouteRegistrar

	// Optional
	Logger      *zap.Logger
	Clock       clock.Clock
	IDGenerator idgen.Generator

	// WriteTimeout must cover the slowest upstream assembly (optional, defaults to 60s)
	WriteTimeout time.Duration
}

// Validate ensures the config is usable and fills defaults
func (c *Config) Validate() error {
	if c.Logger == nil {
		c.Logger = zap.NewNop()
	}
	if c.Clock == nil {
		c.Clock = clock.New()
	}
	if c.IDGenerator == nil {
		c.IDGenerator = idgen.NewUUID("req")
	}
	if c.WriteTimeout == 0 {
		c.WriteTimeout = 60 * time.Second
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("Addr", c.Addr, vb)
	if len(c.Handlers) == 0 {
		vb.RequiredField("Handlers")
	}
	return vb.Build()
}

// Server serves HTTP until Shutdown
type Server struct {
	router *mux.Router
	server *http.Server
	logger *zap.Logger
}

// New builds the router: recovery, request ID and access logging wrap
// every route, including /health.
func New(cfg *Config) (*Server, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	logger := cfg.Logger.Named("http")

	router := mux.NewRouter()
	router.Use(RecoveryMiddleware(logger))
	router.Use(RequestIDMiddleware(cfg.IDGenerator))
	router.Use(LoggingMiddleware(logger, cfg.Clock))

	router.HandleFunc("/health", HealthCheck).Methods(http.MethodGet)
	for _, h := range cfg.Handlers {
		h.RegisterRoutes(router)
	}

	return &Server{
		router: router,
		logger: logger,
		server: &http.Server{
			Addr:              cfg.Addr,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
			WriteTimeout:      cfg.WriteTimeout,
			IdleTimeout:       120 * time.Second,
		},
	}, nil
}

// Handler exposes the router, for tests
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start listens and serves until Shutdown. It returns nil after a clean
// shutdown.
func (s *Server) Start() error {
	lis, err := net.Listen("tcp", s.server.Addr)
	if err != nil {
		return errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to listen on %s", s.server.Addr)
	}
	return s.Serve(lis)
}

// Serve serves on an existing listener
func (s *Server) Serve(lis net.Listener) error {
	s.logger.Info("http server listening", zap.String("addr", lis.Addr().String()))
	if err := s.server.Serve(lis); err != nil && err != http.ErrServerClosed {
		return errors.WrapWithCode(err, errors.CodeInternal, "http server failed")
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests
func (s *Server) Shutdown(ctx context.Context) error {
	if err := s.server.Shutdown(ctx); err != nil {
		return errors.WrapWithCode(err, errors.CodeInternal, "http shutdown failed")
	}
	return nil
}

// HealthCheck reports liveness
func HealthCheck(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{ // nolint:errcheck // best effort
		"status":  "healthy",
		"service": "pokedex",
	})
}
