package handlers

import (
	"context"

	"stash-app-api/core/domain"
)

// mockRunner is a mock implementation of the SubmissionRunner interface
type mockRunner struct {
	submitFunc func(ctx context.Context, ownerID, pageURL string) (*domain.Link, error)
}

func (m *mockRunner) Submit(ctx context.Context, ownerID, pageURL string) (*domain.Link, error) {
	if m.submitFunc != nil {
		return m.submitFunc(ctx, ownerID, pageURL)
	}
	return nil, nil
}

// mockLinkService is a mock implementation of the LinkService interface
type mockLinkService struct {
	listFunc   func(ctx context.Context, ownerID, query, tag string) ([]domain.Link, error)
	tagsFunc   func(ctx context.Context, ownerID string) ([]string, error)
	deleteFunc func(ctx context.Context, ownerID, id string) error
}

func (m *mockLinkService) List(ctx context.Context, ownerID, query, tag string) ([]domain.Link, error) {
	if m.listFunc != nil {
		return m.listFunc(ctx, ownerID, query, tag)
	}
	return nil, nil
}

func (m *mockLinkService) Tags(ctx context.Context, ownerID string) ([]string, error) {
	if m.tagsFunc != nil {
		return m.tagsFunc(ctx, ownerID)
	}
	return nil, nil
}

func (m *mockLinkService) Delete(ctx context.Context, ownerID, id string) error {
	if m.deleteFunc != nil {
		return m.deleteFunc(ctx, ownerID, id)
	}
	return nil
}

// mockSessions is a mock implementation of the SessionService interface
type mockSessions struct {
	signInFunc  func(ctx context.Context, identity domain.Session) (string, error)
	signOutFunc func(ctx context.Context, token string) error
}

func (m *mockSessions) SignIn(ctx context.Context, identity domain.Session) (string, error) {
	if m.signInFunc != nil {
		return m.signInFunc(ctx, identity)
	}
	return "token", nil
}

func (m *mockSessions) SignOut(ctx context.Context, token string) error {
	if m.signOutFunc != nil {
		return m.signOutFunc(ctx, token)
	}
	return nil
}
