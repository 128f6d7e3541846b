// Package server runs the HTTP server hosting the web UI and the
// extraction API.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/pradyten/pdf-extractor/internal/api"
	"github.com/pradyten/pdf-extractor/internal/config"
	"github.com/pradyten/pdf-extractor/internal/extract"
	"github.com/pradyten/pdf-extractor/internal/registry"
	"github.com/pradyten/pdf-extractor/internal/server/endpoints"
	"github.com/pradyten/pdf-extractor/internal/svcctx"
)

// Server is the extractor HTTP server. Each request runs one isolated
// pipeline invocation; there is no shared mutable state beyond the
// process-wide configuration.
type Server struct {
	httpServer       *http.Server
	pipeline         *extract.Pipeline
	registry         *registry.Registry
	configMgr        *config.Manager
	logger           *slog.Logger
	services         *svcctx.Services
	endpointRegistry *api.Registry

	mu      sync.RWMutex
	running bool
}

// Config holds server configuration.
type Config struct {
	// Host is the address to bind to (default: 127.0.0.1)
	Host string
	// Port is the port to listen on (default: 8501)
	Port string
	// Pipeline runs extractions; required.
	Pipeline *extract.Pipeline
	// Registry is the template registry shown by /api/templates.
	Registry *registry.Registry
	// SamplesDir holds demo PDFs listed by the UI (optional).
	SamplesDir string
	// DefaultModel is what the "default" model alias resolves to.
	DefaultModel string
	// ConfigManager provides configuration with hot-reload support (optional).
	ConfigManager *config.Manager
	// Logger is the structured logger to use.
	Logger *slog.Logger
}

// New creates a new Server with the given configuration.
func New(cfg Config) (*Server, error) {
	if cfg.Host == "" {
		cfg.Host = "127.0.0.1"
	}
	if cfg.Port == "" {
		cfg.Port = "8501"
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Pipeline == nil {
		return nil, fmt.Errorf("pipeline is required")
	}
	if cfg.Registry == nil {
		cfg.Registry = cfg.Pipeline.Registry()
	}

	s := &Server{
		pipeline:  cfg.Pipeline,
		registry:  cfg.Registry,
		configMgr: cfg.ConfigManager,
		logger:    cfg.Logger,
	}

	s.services = &svcctx.Services{
		Pipeline:   cfg.Pipeline,
		Registry:   cfg.Registry,
		ConfigMgr:  cfg.ConfigManager,
		Logger:     cfg.Logger,
		SamplesDir: cfg.SamplesDir,
	}

	// Create endpoint registry and register all endpoints
	s.endpointRegistry = api.NewRegistry()
	for _, ep := range endpoints.All(endpoints.Config{DefaultModel: cfg.DefaultModel}) {
		s.endpointRegistry.Register(ep)
	}

	mux := http.NewServeMux()
	s.endpointRegistry.RegisterRoutes(mux, s.requireInit)

	s.httpServer = &http.Server{
		Addr:        net.JoinHostPort(cfg.Host, cfg.Port),
		Handler:     s.withServices(mux),
		ReadTimeout: 30 * time.Second,
		// Extraction responses wait on the model call.
		WriteTimeout: 10 * time.Minute,
		IdleTimeout:  120 * time.Second,
	}

	return s, nil
}

// withServices attaches the service context to every request.
func (s *Server) withServices(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.RLock()
		services := s.services
		s.mu.RUnlock()
		next.ServeHTTP(w, r.WithContext(svcctx.WithServices(r.Context(), services)))
	})
}

// Reload swaps the pipeline and samples directory used by subsequent
// requests. Called when the config file changes; in-flight requests keep
// the services they started with.
func (s *Server) Reload(pipeline *extract.Pipeline, samplesDir string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.pipeline = pipeline
	s.registry = pipeline.Registry()
	s.services = &svcctx.Services{
		Pipeline:   pipeline,
		Registry:   pipeline.Registry(),
		ConfigMgr:  s.configMgr,
		Logger:     s.logger,
		SamplesDir: samplesDir,
	}
	s.logger.Info("server services reloaded")
}

// requireInit guards endpoints that need the pipeline.
func (s *Server) requireInit(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svcctx.PipelineFrom(r.Context()) == nil {
			http.Error(w, `{"error":"server not initialized"}`, http.StatusServiceUnavailable)
			return
		}
		next(w, r)
	}
}

// Start starts the server. It blocks until the context is cancelled or an
// error occurs.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return errors.New("server already running")
	}
	s.running = true
	s.mu.Unlock()

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting HTTP server", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("shutdown signal received")
	case err := <-errCh:
		if err != nil {
			s.setNotRunning()
			return fmt.Errorf("HTTP server error: %w", err)
		}
	}

	return s.shutdown()
}

// shutdown performs graceful shutdown of the HTTP server.
func (s *Server) shutdown() error {
	s.logger.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("HTTP server shutdown error", "error", err)
	}

	s.setNotRunning()
	s.logger.Info("server stopped")
	return nil
}

func (s *Server) setNotRunning() {
	s.mu.Lock()
	s.running = false
	s.mu.Unlock()
}

// IsRunning returns whether the server is currently running.
func (s *Server) IsRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.running
}

// Handler returns the server's HTTP handler (used by tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Endpoints returns the endpoint registry.
func (s *Server) Endpoints() *api.Registry {
	return s.endpointRegistry
}
