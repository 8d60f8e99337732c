// Package server implements the JSON API for suhoor serve.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/wethinkt/go-suhoor/internal/i18n"
	"github.com/wethinkt/go-suhoor/internal/schedule"
	_ "github.com/wethinkt/go-suhoor/internal/server/docs"
)

// ErrInvalidConfiguration is returned when required server inputs are missing.
var ErrInvalidConfiguration = errors.New("invalid server configuration")

// Config holds server configuration.
type Config struct {
	Port int
	Host string

	// Language and Policy apply when a request does not name one.
	Language i18n.Language
	Policy   schedule.Policy
}

// DefaultConfig returns a default configuration.
func DefaultConfig() Config {
	return Config{
		Port: 8785,
		Host: "localhost",
	}
}

// HTTPServer serves the REST API.
type HTTPServer struct {
	catalog *i18n.Catalog
	clock   schedule.Clock
	router  chi.Router
	config  Config

	mu        sync.RWMutex
	timetable *schedule.Timetable
}

// NewHTTPServer creates a new HTTP server for the REST API. A nil clock
// uses the real time.
func NewHTTPServer(cat *i18n.Catalog, tt *schedule.Timetable, clock schedule.Clock, config Config) (*HTTPServer, error) {
	if cat == nil || tt == nil {
		return nil, fmt.Errorf("%w: catalog and timetable are required", ErrInvalidConfiguration)
	}
	if clock == nil {
		clock = schedule.RealClock{}
	}
	s := &HTTPServer{
		catalog:   cat,
		timetable: tt,
		clock:     clock,
		config:    config,
	}
	s.router = s.setupRouter()
	return s, nil
}

// setupRouter configures all routes.
func (s *HTTPServer) setupRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(corsMiddleware)
	r.Use(metricsMiddleware)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/next", s.handleGetNext)
		r.Get("/schedule", s.handleGetSchedule)
		r.Get("/languages", s.handleGetLanguages)
		r.Get("/phrases", s.handleGetPhrases)
	})

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(`<!DOCTYPE html>
<html>
<head><title>Suhoor</title></head>
<body>
<h1>Suhoor Server</h1>
<p>Next times: <a href="/api/v1/next">/api/v1/next</a></p>
<p>Timetable: <a href="/api/v1/schedule">/api/v1/schedule</a></p>
<p>API docs: <a href="/swagger/index.html">/swagger/index.html</a></p>
<p>Metrics: <a href="/metrics">/metrics</a></p>
</body>
</html>`))
	})

	return r
}

// SetTimetable swaps the timetable served by later requests.
func (s *HTTPServer) SetTimetable(tt *schedule.Timetable) {
	if tt == nil {
		return
	}
	s.mu.Lock()
	s.timetable = tt
	s.mu.Unlock()
}

func (s *HTTPServer) currentTimetable() *schedule.Timetable {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.timetable
}

// Router returns the chi router.
func (s *HTTPServer) Router() chi.Router {
	return s.router
}

// Addr returns the server address.
func (s *HTTPServer) Addr() string {
	return fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
}

// Port returns the configured port, or the bound one after Listen.
func (s *HTTPServer) Port() int {
	return s.config.Port
}

// Listen binds the configured address. A zero port is resolved to the
// one the kernel assigned, so Port and Addr report it afterwards.
func (s *HTTPServer) Listen() (net.Listener, error) {
	ln, err := net.Listen("tcp", s.Addr())
	if err != nil {
		return nil, fmt.Errorf("listen: %w", err)
	}
	if s.config.Port == 0 {
		s.config.Port = ln.Addr().(*net.TCPAddr).Port
	}
	return ln, nil
}

// Serve handles requests on ln and shuts down when ctx is canceled. A
// clean shutdown returns nil.
func (s *HTTPServer) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	fmt.Printf("HTTP server running at http://%s\n", s.Addr())
	if err := srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// ListenAndServe is Listen followed by Serve.
func (s *HTTPServer) ListenAndServe(ctx context.Context) error {
	ln, err := s.Listen()
	if err != nil {
		return err
	}
	return s.Serve(ctx, ln)
}

// corsMiddleware adds CORS headers for local development.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
