package api

import (
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/eldtechnologies/anonchat/internal/api/middleware"
	"github.com/eldtechnologies/anonchat/internal/handlers"
	"github.com/eldtechnologies/anonchat/internal/store"
)

// RouterConfig carries the optional pieces of the HTTP surface.
type RouterConfig struct {
	RedisClient      *redis.Client // nil disables rate limiting
	Simulator        *store.Simulator
	RateLimitOptions middleware.RateLimiterConfig
}

// NewRouter creates and configures the HTTP router.
func NewRouter(logger zerolog.Logger, st store.RoomStore, cfg RouterConfig) *chi.Mux {
	r := chi.NewRouter()

	// Metrics middleware (first to capture all requests)
	r.Use(middleware.Metrics)

	// Security middleware (order matters!)
	r.Use(middleware.SecurityHeaders)
	r.Use(middleware.MaxBodySize(8 * 1024)) // 8KB max body
	r.Use(middleware.ValidateRequest)

	// Standard middleware
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(middleware.Logger(logger))
	r.Use(chimw.Recoverer)

	// Rate limiting, only when Redis is configured
	if cfg.RedisClient != nil {
		limiter := middleware.NewRateLimiter(cfg.RedisClient, logger, cfg.RateLimitOptions)
		r.Use(limiter.Middleware)
	}

	// CORS - the web client may be served from anywhere
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		ExposedHeaders:   []string{"X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset", "Retry-After"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	h := handlers.NewHandler(st, cfg.Simulator, cfg.RedisClient)

	// Metrics endpoint (for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	r.Get("/", h.Root)
	r.Get("/health", h.Health)

	r.Route("/api/chats", func(r chi.Router) {
		r.Get("/", h.ListChats)
		r.Post("/", h.CreateChat)
		r.Get("/{id}/messages", h.GetMessages)
		r.Post("/{id}/messages", h.PostMessage)
		r.Delete("/{id}", h.DeleteChat)
	})

	return r
}
