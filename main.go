package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/julienschmidt/httprouter"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"mongochef/auth"
	"mongochef/config"
	"mongochef/db"
	"mongochef/middleware"
	"mongochef/mq"
	"mongochef/ratelim"
	"mongochef/rdx"
	"mongochef/routes"
	"mongochef/store"
)

// setupRouter builds the router with every API route.
func setupRouter(deps routes.Deps, rateLimiter *ratelim.RateLimiter) *httprouter.Router {
	router := httprouter.New()
	routes.RoutesWrapper(router, deps, rateLimiter)
	return router
}

// buildHandler applies middleware: request id → recover → metrics →
// logging → security headers → CORS → router.
func buildHandler(router http.Handler, metrics *middleware.Metrics) http.Handler {
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: []string{"*"}, // lock down in production
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "Authorization", middleware.RequestIDHeader},
		ExposedHeaders: []string{middleware.RequestIDHeader},
	}).Handler(router)

	handler := middleware.SecurityHeaders(corsHandler)
	handler = middleware.Logging(handler)
	if metrics != nil {
		handler = metrics.Handler(handler)
	}
	handler = middleware.Recover(handler)
	return middleware.RequestID(handler)
}

func setupLogger(level slog.Level) {
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	setupLogger(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	connectCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	client, err := db.Connect(connectCtx, cfg.MongoURI)
	if err != nil {
		cancel()
		slog.Error("mongodb unavailable", "error", err)
		os.Exit(1)
	}
	cols := db.Open(client, cfg.MongoDB)
	if err := db.EnsureIndexes(connectCtx, cols); err != nil {
		cancel()
		slog.Error("create indexes", "error", err)
		os.Exit(1)
	}
	cancel()
	slog.Info("connected to mongodb", "database", cfg.MongoDB)

	var events mq.Emitter = mq.Nop{}
	if cfg.EventsEnabled() {
		redisClient, err := rdx.Connect(ctx, cfg.RedisURL, cfg.RedisPassword)
		if err != nil {
			slog.Warn("redis unavailable; events disabled", "error", err)
		} else {
			defer redisClient.Close()
			events = mq.NewRedis(redisClient, cfg.EventsChannel)
			slog.Info("publishing events", "channel", cfg.EventsChannel)
		}
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := middleware.NewMetrics(registry)

	rateLimiter := ratelim.NewRateLimiter(cfg.RateLimit, cfg.RateBurst)
	go rateLimiter.Run(ctx, time.Minute)

	router := setupRouter(routes.Deps{
		Repos:     store.NewMongoRepos(cols),
		Events:    events,
		Tokens:    auth.NewTokens(cfg.JWTSecret, cfg.TokenTTL),
		PublicURL: cfg.PublicURL,
		Timeout:   cfg.RequestTimeout,
		Metrics:   promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
	}, rateLimiter)

	server := &http.Server{
		Addr:              cfg.Port,
		Handler:           buildHandler(router, metrics),
		ReadTimeout:       7 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 2 * time.Second,
	}

	go func() {
		slog.Info("server listening", "addr", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("listen and serve", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutdown signal received; shutting down gracefully")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("graceful shutdown failed", "error", err)
	}
	if err := client.Disconnect(shutdownCtx); err != nil {
		slog.Error("disconnect mongodb", "error", err)
	}
	slog.Info("server stopped cleanly")
}
