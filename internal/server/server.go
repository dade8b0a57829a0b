package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/sirupsen/logrus"

	"github.com/ziadkadry99/chunlian/internal/gateway"
	"github.com/ziadkadry99/chunlian/internal/generation"
)

// Config holds server configuration.
type Config struct {
	Port        int
	ServeStatic bool   // serve the built SPA bundle alongside the API
	StaticDir   string // directory containing index.html and assets
}

// Server is the generation gateway: it relays couplet and fortune requests
// to the upstream model and optionally serves the SPA bundle.
type Server struct {
	cfg        Config
	generator  *generation.Generator
	router     chi.Router
	httpServer *http.Server
}

// New creates a gateway server around gen.
func New(cfg Config, gen *generation.Generator) *Server {
	s := &Server{
		cfg:       cfg,
		generator: gen,
	}

	s.router = s.buildRouter()
	return s
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	// The browser bundle may be hosted anywhere.
	r.Use(cors.AllowAll().Handler)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	gateway.RegisterRoutes(r, s.generator)

	if s.cfg.ServeStatic {
		r.Get("/*", spaHandler(s.cfg.StaticDir))
	}

	return r
}

// Router returns the chi router for registering additional routes.
func (s *Server) Router() chi.Router { return s.router }

// ServerConfig returns the server configuration.
func (s *Server) ServerConfig() Config { return s.cfg }

// Start begins listening on the configured port.
func (s *Server) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Port)
	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      120 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	logrus.WithFields(logrus.Fields{
		"addr":         addr,
		"configured":   s.generator.Configured(),
		"model":        s.generator.Model(),
		"serve_static": s.cfg.ServeStatic,
	}).Info("chunlian gateway listening")
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
