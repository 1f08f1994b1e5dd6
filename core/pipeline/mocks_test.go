package pipeline

import (
	"context"

	"stash-app-api/core/domain"
	"stash-app-api/core/interfaces"
)

// mockFetcher is a mock implementation of the ContentFetcher interface
type mockFetcher struct {
	fetchFunc func(ctx context.Context, pageURL string) (string, error)
}

func (m *mockFetcher) FetchCleanText(ctx context.Context, pageURL string) (string, error) {
	if m.fetchFunc != nil {
		return m.fetchFunc(ctx, pageURL)
	}
	return "", nil
}

// mockAnalyzer is a mock implementation of the ContentAnalyzer interface
type mockAnalyzer struct {
	analyzeFunc func(ctx context.Context, articleText string) (*domain.Analysis, error)
}

func (m *mockAnalyzer) Analyze(ctx context.Context, articleText string) (*domain.Analysis, error) {
	if m.analyzeFunc != nil {
		return m.analyzeFunc(ctx, articleText)
	}
	return &domain.Analysis{Title: "T", Summary: "S", Tags: []string{"t"}}, nil
}

// mockMetadata is a mock implementation of the MetadataService interface
type mockMetadata struct {
	extractFunc func(ctx context.Context, url string) (*interfaces.MetadataResult, error)
}

func (m *mockMetadata) ExtractMetadata(ctx context.Context, url string) (*interfaces.MetadataResult, error) {
	if m.extractFunc != nil {
		return m.extractFunc(ctx, url)
	}
	return nil, nil
}

// mockCreator is a mock implementation of the LinkCreator interface
type mockCreator struct {
	createFunc func(ctx context.Context, link *domain.Link) error
	created    []*domain.Link
}

func (m *mockCreator) Create(ctx context.Context, link *domain.Link) error {
	if m.createFunc != nil {
		return m.createFunc(ctx, link)
	}
	m.created = append(m.created, link)
	return nil
}
