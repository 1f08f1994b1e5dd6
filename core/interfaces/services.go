// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines contracts for services used throughout the application

package interfaces

import (
	"context"

	"stash-app-api/core/domain"
)

// ContentFetcher retrieves a page and reduces it to clean plain text
type ContentFetcher interface {
	// FetchCleanText returns the cleaned text of the page's main content,
	// truncated to the fetcher's limit.
	FetchCleanText(ctx context.Context, pageURL string) (string, error)
}

// ContentAnalyzer derives structured metadata from cleaned article text
type ContentAnalyzer interface {
	// Analyze sends the text to the completion endpoint and parses the
	// structured {title, summary, tags} result.
	Analyze(ctx context.Context, articleText string) (*domain.Analysis, error)
}

// MetadataResult contains scraped metadata from a webpage
type MetadataResult struct {
	Title    string
	SiteName string
	Image    string
	Favicon  string
}

// MetadataService extracts Open Graph metadata from web pages
type MetadataService interface {
	ExtractMetadata(ctx context.Context, url string) (*MetadataResult, error)
}
