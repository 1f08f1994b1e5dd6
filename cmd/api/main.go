// ABOUTME: Main entry point for the Stash API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"stash-app-api/api"
	"stash-app-api/api/handlers"
	"stash-app-api/core/analysis"
	"stash-app-api/core/content"
	"stash-app-api/core/interfaces"
	"stash-app-api/core/links"
	"stash-app-api/core/pipeline"
	"stash-app-api/core/services"
	"stash-app-api/core/session"
	"stash-app-api/infrastructure/cache/memory"
	"stash-app-api/infrastructure/cache/redis"
	stdhttp "stash-app-api/infrastructure/http/standard"
	logruslogger "stash-app-api/infrastructure/logger/logrus"
	"stash-app-api/infrastructure/storage/sqlite"
	"stash-app-api/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Create logger
	logger := logruslogger.NewLogger(cfg.LogLevel)
	logger.Info("Starting Stash API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"cache_type": cfg.Cache.Type,
		"storage":    cfg.Storage.Path,
	})

	// Create cache
	var cache interfaces.Cache
	switch cfg.Cache.Type {
	case "redis":
		redisCache, err := redis.NewRedisCache(cfg.Cache.Redis)
		if err != nil {
			logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
				"error": err.Error(),
			})
			cache = memory.NewMemoryCache()
		} else {
			cache = redisCache
			logger.Info("Using Redis cache", map[string]interface{}{
				"address": cfg.Cache.Redis.Address,
			})
		}
	default:
		cache = memory.NewMemoryCache()
		logger.Info("Using memory cache", nil)
	}

	// Create HTTP client
	httpClient := stdhttp.NewStandardHTTPClient(cfg.Fetch.Timeout)

	// Create dependencies container
	deps := interfaces.Dependencies{
		Cache:      cache,
		HTTPClient: httpClient,
		Logger:     logger,
	}

	// Create link storage
	store, err := sqlite.NewStore(cfg.Storage.Path)
	if err != nil {
		log.Fatalf("Failed to open link storage: %v", err)
	}
	defer store.Close()

	// Create services
	contentService := content.NewService(deps, cfg.Fetch.RelayURL)
	analysisService := analysis.NewService(deps, analysis.Config{
		Endpoint: cfg.Analyzer.Endpoint,
		Model:    cfg.Analyzer.Model,
		APIKey:   cfg.Analyzer.APIKey,
	})
	metadataService := services.NewMetadataService(deps)
	linkService := links.NewService(store, logger)
	sessionService := session.NewService(session.Config{
		Secret: cfg.Auth.JWTSecret,
		TTL:    cfg.Auth.SessionTTL,
	}, cache, logger)
	runner := pipeline.NewRunner(contentService, analysisService, metadataService, linkService, logger)

	// Create API with middleware
	apiConfig := api.APIConfig{
		Logger:     logger,
		Sessions:   sessionService,
		RateLimit:  100, // 100 requests per minute
		RateWindow: time.Minute,
	}
	humaAPI, router := api.NewAPIWithMiddleware(apiConfig)

	// Create and register handlers
	linksHandler := handlers.NewLinksHandler(runner, linkService)
	linksHandler.RegisterRoutes(humaAPI)

	sessionHandler := handlers.NewSessionHandler(sessionService)
	sessionHandler.RegisterRoutes(humaAPI)

	// SSE rides the chi router directly; Huma's typed responses don't fit
	// a long-lived stream.
	eventsHandler := handlers.NewEventsHandler(linkService, logger)
	router.Get("/v1/links/events", eventsHandler.ServeHTTP)

	sessionEventsHandler := handlers.NewSessionEventsHandler(sessionService, logger)
	router.Get("/v1/session/events", sessionEventsHandler.ServeHTTP)

	// Create HTTP server. WriteTimeout stays 0 so event streams are not cut
	// off mid-connection.
	srv := &http.Server{
		Addr:        ":" + cfg.Server.Port,
		Handler:     router,
		ReadTimeout: 15 * time.Second,
		IdleTimeout: 60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped", nil)
}
