// Package server exposes the GraphML encoder over HTTP.
//
// # Endpoints
//
//   - POST /v1/graphml: encode the graph file in the request body
//   - GET /healthz: liveness probe
//
// The request body is a graph file in the JSON format of pkg/io, or TOML
// when the Content-Type is application/toml. Export options are query
// parameters:
//
//	POST /v1/graphml?pretty=true&node_weights=display&edge_weights=attrs
//
// Responses are application/xml. Rendered documents are cached by input and
// options; the X-Cache header reports HIT or MISS.
//
// Errors are JSON objects carrying the machine-readable code of pkg/errors:
//
//	{"error": {"code": "INVALID_EXPORTER", "message": "..."}}
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/matzehuels/graphml/pkg/cache"
)

// Defaults applied by [New] for zero-valued [Config] fields.
const (
	DefaultAddr         = ":8080"
	DefaultMaxBodyBytes = 10 << 20
	shutdownTimeout     = 10 * time.Second
)

// Config configures the HTTP server.
type Config struct {
	Addr         string        // listen address
	CacheTTL     time.Duration // lifetime of cached documents, 0 keeps them until evicted
	MaxBodyBytes int64         // largest accepted request body
}

// Server serves GraphML exports. Create one with [New].
type Server struct {
	cfg    Config
	cache  cache.Cache
	logger *log.Logger
	router chi.Router
}

// New creates a server backed by c. A nil cache disables caching.
func New(c cache.Cache, logger *log.Logger, cfg Config) *Server {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = DefaultMaxBodyBytes
	}

	s := &Server{cfg: cfg, cache: c, logger: logger}
	s.router = s.routes()
	return s
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(requestID)
	r.Use(s.logRequests)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.handleHealth)
	r.Route("/v1", func(r chi.Router) {
		r.Post("/graphml", s.handleGraphML)
	})
	return r
}

// Handler returns the HTTP handler of the server.
func (s *Server) Handler() http.Handler {
	return s.router
}

// ListenAndServe serves on the configured address until ctx is canceled,
// then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.cfg.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
