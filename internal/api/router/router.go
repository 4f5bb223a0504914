package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/simpliexteriors/site-api/internal/analytics"
	"github.com/simpliexteriors/site-api/internal/blog"
	"github.com/simpliexteriors/site-api/internal/crm"
	httpmiddleware "github.com/simpliexteriors/site-api/internal/http/middleware"
	"github.com/simpliexteriors/site-api/internal/intake"
	"github.com/simpliexteriors/site-api/pkg/logging"
)

// Config holds router configuration
type Config struct {
	Logger             *logging.Logger
	IntakeHandler      *intake.Handler
	BlogHandler        *blog.Handler
	CRMHandler         *crm.Handler
	AnalyticsHandler   *analytics.Handler
	AdminToken         string
	MetricsHandler     http.Handler
	CORSAllowedOrigins []string

	// LeadRateLimit caps lead submissions per IP per second; zero
	// disables rate limiting (used by tests).
	LeadRateLimit float64
	LeadRateBurst int
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

	// Lead capture (rate limited to keep form spam out)
	r.Group(func(leadRoutes chi.Router) {
		if cfg.LeadRateLimit > 0 {
			leadRoutes.Use(httpmiddleware.RateLimit(cfg.LeadRateLimit, cfg.LeadRateBurst))
		}
		leadRoutes.Get("/contact", cfg.IntakeHandler.ContactStatus)
		leadRoutes.Post("/contact", cfg.IntakeHandler.SubmitContact)
		leadRoutes.Post("/quick-quote", cfg.IntakeHandler.SubmitQuickQuote)
	})

	// Blog content (public reads)
	r.Route("/blog", func(b chi.Router) {
		b.Get("/", cfg.BlogHandler.List)
		b.Get("/categories", cfg.BlogHandler.Categories)
		b.Get("/{slug}", cfg.BlogHandler.Get)

		// Mutations require the admin token
		b.Group(func(admin chi.Router) {
			admin.Use(httpmiddleware.AdminToken(cfg.AdminToken))
			admin.Post("/", cfg.BlogHandler.Create)
			admin.Put("/", cfg.BlogHandler.Update)
			admin.Delete("/", cfg.BlogHandler.Delete)
		})
	})

	// CRM webhook pass-through
	if cfg.CRMHandler != nil {
		r.Get("/ghl-webhook", cfg.CRMHandler.Status)
		r.Post("/ghl-webhook", cfg.CRMHandler.Submit)
	}

	// Analytics sinks
	if cfg.AnalyticsHandler != nil {
		r.Route("/analytics", func(a chi.Router) {
			a.Post("/phone-click", cfg.AnalyticsHandler.PhoneClick)
			a.Post("/vitals", cfg.AnalyticsHandler.WebVitals)
		})
	}

	if cfg.MetricsHandler != nil {
		r.Handle("/metrics", cfg.MetricsHandler)
	}

	return r
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok","timestamp":"` + time.Now().UTC().Format(time.RFC3339) + `"}`))
}
