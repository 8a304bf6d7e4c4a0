package api

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/nshetty/panchangd/internal/config"
	"github.com/nshetty/panchangd/internal/panchang"
)

// RangeScraper is the scraping pipeline behind the panchang endpoint.
type RangeScraper interface {
	ScrapeRange(ctx context.Context, start, end time.Time, location string) []panchang.DayRecord
}

// Server is the HTTP API server for panchangd.
type Server struct {
	router  chi.Router
	scraper RangeScraper
	log     *slog.Logger
	cfg     config.Config
}

// NewServer creates and configures the HTTP server.
func NewServer(scraper RangeScraper, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		scraper: scraper,
		log:     log,
		cfg:     cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// The endpoint is consumed directly from a static HTML page, so any
	// origin may call it.
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
	}))

	r.Get("/health", s.handleHealth)
	r.Get("/api/panchang", s.handlePanchang)

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
