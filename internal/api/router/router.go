package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	httpmiddleware "github.com/fivesolo/site-api/internal/http/middleware"
	"github.com/fivesolo/site-api/internal/i18n"
	"github.com/fivesolo/site-api/internal/submission"
	"github.com/fivesolo/site-api/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger             *logging.Logger
	SubmissionHandler  *submission.Handler
	I18nHandler        *i18n.Handler
	MetricsHandler     http.Handler
	CORSAllowedOrigins []string
	RateLimiter        httpmiddleware.Limiter
}

// New creates a new Chi router with all routes configured
func New(cfg *Config) http.Handler {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))
	if len(cfg.CORSAllowedOrigins) > 0 {
		r.Use(httpmiddleware.CORS(cfg.CORSAllowedOrigins))
	}
	if cfg.Logger != nil {
		r.Use(httpmiddleware.RequestLogger(cfg.Logger))
	}

	r.Get("/health", healthCheck)
	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	r.Route("/api", func(api chi.Router) {
		if cfg.SubmissionHandler != nil {
			api.Route("/contact", func(contact chi.Router) {
				if cfg.RateLimiter != nil {
					contact.Use(httpmiddleware.RateLimit(cfg.RateLimiter))
				}
				contact.Post("/", cfg.SubmissionHandler.Submit)
				contact.Options("/", cfg.SubmissionHandler.Preflight)
			})
		}
		if cfg.I18nHandler != nil {
			api.Get("/i18n/{locale}", cfg.I18nHandler.GetDictionary)
		}
	})

	return r
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}
