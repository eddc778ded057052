// Package router assembles the chi routing tree for the scheduling API.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/avalondental/scheduling-agent/internal/http/handlers"
	httpmiddleware "github.com/avalondental/scheduling-agent/internal/http/middleware"
	"github.com/avalondental/scheduling-agent/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger              *logging.Logger
	ChatHandler         *handlers.ChatHandler
	AvailabilityHandler *handlers.AvailabilityHandler
	MetricsHandler      http.Handler
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"status":"ok"}`))
	})

	if cfg.ChatHandler != nil {
		r.Post("/chat", cfg.ChatHandler.HandleChat)
	}
	if cfg.AvailabilityHandler != nil {
		r.Get("/availability", cfg.AvailabilityHandler.HandleAvailability)
	}
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	return r
}
