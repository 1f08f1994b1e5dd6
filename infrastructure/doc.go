// Package infrastructure provides concrete implementations of the interfaces
// defined in the core package. These implementations handle external concerns
// such as caching, HTTP communication, persistence, and logging.
//
// The infrastructure package is organized by technical concern:
//
// - cache/memory: In-memory cache implementation backed by go-cache
// - cache/redis: Redis-based cache implementation
// - http/standard: Standard library HTTP client with retry logic
// - logger/logrus: Structured logger implementation backed by logrus
// - storage/sqlite: SQLite-backed link store
//
// # Design Philosophy
//
// Infrastructure components are designed to be:
// - Pluggable: Easy to swap implementations
// - Configurable: Accept configuration objects
// - Testable: Include both unit and integration tests
// - Production-ready: Include retries, timeouts, and error handling
//
// # Cache Implementations
//
// Memory Cache Example:
//
//	cache := memory.NewMemoryCache()
//	err := cache.Set(ctx, "key", []byte("value"), 1*time.Hour)
//	value, err := cache.Get(ctx, "key")
//
// Redis Cache Example:
//
//	cache, err := redis.NewRedisCache(config.RedisConfig{
//	    Address:  "localhost:6379",
//	    Password: "",
//	    DB:       0,
//	})
//
// # HTTP Client
//
// The HTTP client includes automatic retry logic for transient GET failures:
//
//	client := standard.NewStandardHTTPClient(30 * time.Second)
//	resp, err := client.Get(ctx, "https://example.com")
//
// # Link Store
//
// The SQLite store assigns server-side IDs and strictly monotonic creation
// timestamps so per-owner ordering is stable:
//
//	store, err := sqlite.NewStore("stash.db")
//	err = store.Insert(ctx, link)
//	list, err := store.ListByOwner(ctx, ownerID)
//
// # Logger
//
// The logger supports structured logging with fields:
//
//	logger := logrus.NewLogger("info")
//	logger.Info("Processing request", map[string]interface{}{
//	    "user_id": "123",
//	    "action":  "add_link",
//	})
package infrastructure
