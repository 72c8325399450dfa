package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/eldtechnologies/anonchat/internal/api"
	"github.com/eldtechnologies/anonchat/internal/api/middleware"
	"github.com/eldtechnologies/anonchat/internal/bot"
	"github.com/eldtechnologies/anonchat/internal/config"
	"github.com/eldtechnologies/anonchat/internal/store"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	var logger zerolog.Logger
	if cfg.IsDevelopment() {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}).
			With().
			Timestamp().
			Logger()
	} else {
		logger = zerolog.New(os.Stdout).
			With().
			Timestamp().
			Logger()
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Room store: in-memory only, reset to the seed rooms on start
	st := store.NewMemoryStore()
	st.SeedDefaults()
	logger.Info().Int("rooms", st.Count()).Msg("room store seeded")

	// Optional Redis (rate limiting only)
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		var err error
		redisClient, err = store.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			logger.Fatal().Err(err).Msg("redis connection failed")
		}
		defer redisClient.Close()
		logger.Info().Msg("connected to Redis")
	}

	// Auto-reply simulator, per profile
	var sim *store.Simulator
	if cfg.AutoReplyEnabled {
		sim = store.NewSimulator(st, logger)
		defer sim.Close()
		logger.Info().Msg("auto-reply simulator enabled")
	}

	// Expiry sweeper
	sweeper := store.NewSweeper(st, cfg.SweepInterval, logger)
	go sweeper.Run(ctx)

	// Telegram bot, only when a credential is configured
	if cfg.BotToken != "" {
		b, err := bot.New(cfg.BotToken, st, sim, logger)
		if err != nil {
			logger.Fatal().Err(err).Msg("bot startup failed")
		}
		go b.Run(ctx)
	}

	// Create router
	router := api.NewRouter(logger, st, api.RouterConfig{
		RedisClient: redisClient,
		Simulator:   sim,
		RateLimitOptions: middleware.RateLimiterConfig{
			Whitelist:        cfg.RateLimitWhitelist,
			AutoBlockEnabled: cfg.AutoBlockEnabled,
		},
	})

	// Create server
	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in goroutine
	go func() {
		logger.Info().
			Str("port", cfg.Port).
			Str("env", cfg.Env).
			Msg("starting AnonChat server")

		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal().Err(err).Msg("server failed to start")
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info().Msg("shutting down server...")

	// Stop background tasks: pending auto-replies and sweeps are cancelled
	cancel()

	// Graceful shutdown with 30 second timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Fatal().Err(err).Msg("server forced to shutdown")
	}

	logger.Info().Msg("server stopped")
}
