// Package core contains the business logic for the Stash API.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Contains pure domain models (Link, Analysis, Session)
// - content: Page fetching and main-text extraction service
// - analysis: AI completion service deriving title, summary, and tags
// - links: Link persistence, filtering, and live subscriptions
// - pipeline: Submission pipeline driving fetch, analyze, and persist
// - session: Bearer-token session provider with revocation
// - errors: Custom error types for better error handling
// - interfaces: Contracts for external dependencies (cache, HTTP, logger)
//
// # Design Principles
//
// The core package follows clean architecture principles:
// - No external framework dependencies
// - All external dependencies are injected via interfaces
// - Business logic is testable in isolation
// - Domain models are free from persistence concerns
//
// # Usage Example
//
//	import (
//	    "stash-app-api/core/content"
//	    "stash-app-api/core/interfaces"
//	)
//
//	// Create dependencies
//	deps := interfaces.Dependencies{
//	    Cache:      myCache,      // implements interfaces.Cache
//	    HTTPClient: myHTTPClient, // implements interfaces.HTTPClient
//	    Logger:     myLogger,     // implements interfaces.Logger
//	}
//
//	// Create service
//	contentService := content.NewService(deps, "")
//
//	// Fetch and clean a page
//	text, err := contentService.FetchCleanText(ctx, "https://example.com/post")
package core
