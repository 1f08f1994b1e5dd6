// Package api provides the HTTP API layer for the Stash application.
// It uses the Huma framework to provide automatic OpenAPI documentation,
// request/response validation, and a clean handler interface.
//
// # Architecture
//
// The API package is structured as follows:
//
// - server.go: Huma API configuration and setup
// - handlers/: HTTP request handlers
// - dto/: Data Transfer Objects for requests and responses
// - middleware/: HTTP middleware for cross-cutting concerns
//
// # Key Features
//
// 1. Automatic OpenAPI Generation
//
// The API automatically generates OpenAPI 3.0 documentation:
// - JSON spec available at /openapi.json
// - Interactive Swagger UI at /docs
//
// 2. Request/Response Validation
//
// Huma provides automatic validation based on struct tags:
//
//	type AddLinkRequest struct {
//	    URL string `json:"url" required:"true" format:"uri"`
//	}
//
// 3. Middleware Support
//
// The API includes middleware for:
// - Request logging with unique request IDs
// - Rate limiting per IP address
// - CORS handling
// - Bearer-token session resolution
//
// # Usage Example
//
//	// Create API with middleware
//	cfg := api.APIConfig{
//	    Logger:     logger,
//	    Sessions:   sessionService,
//	    RateLimit:  100,
//	    RateWindow: time.Minute,
//	}
//	humaAPI, router := api.NewAPIWithMiddleware(cfg)
//
//	// Register handlers
//	linksHandler := handlers.NewLinksHandler(runner, linkService)
//	linksHandler.RegisterRoutes(humaAPI)
//
//	// Start server
//	http.ListenAndServe(":8000", router)
//
// # Error Handling
//
// The API uses a consistent error format based on RFC 7807:
//
//	{
//	    "status": 400,
//	    "title": "Bad Request",
//	    "detail": "invalid url: must be a valid http or https URL",
//	    "instance": "/v1/links"
//	}
//
// Domain errors are automatically mapped to appropriate HTTP status codes.
package api
