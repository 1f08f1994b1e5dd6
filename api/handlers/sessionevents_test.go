package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"stash-app-api/api/middleware"
	"stash-app-api/core/domain"
	"stash-app-api/core/session"
)

func TestSessionEvents_RequiresSession(t *testing.T) {
	service := session.NewService(session.Config{Secret: "secret"}, nil, nil)
	handler := NewSessionEventsHandler(service, nil)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/session/events", nil))

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestSessionEvents_StreamsStateTransitions(t *testing.T) {
	service := session.NewService(session.Config{Secret: "secret"}, nil, nil)
	handler := NewSessionEventsHandler(service, nil)

	ctx, cancel := context.WithCancel(middleware.WithSession(context.Background(), &domain.Session{UserID: "alice"}))
	req := httptest.NewRequest(http.MethodGet, "/v1/session/events", nil).WithContext(ctx)
	rec := httptest.NewRecorder()

	done := make(chan struct{})
	go func() {
		handler.ServeHTTP(rec, req)
		close(done)
	}()

	// The opening state is queued synchronously at watch time; the sign-in
	// below pushes a second event onto the same stream.
	time.Sleep(50 * time.Millisecond)
	if _, err := service.SignIn(context.Background(), domain.Session{UserID: "alice", DisplayName: "Alice"}); err != nil {
		t.Fatalf("unexpected sign-in error: %v", err)
	}
	time.Sleep(50 * time.Millisecond)
	cancel()
	<-done

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/event-stream" {
		t.Errorf("expected event-stream content type, got %q", ct)
	}

	body := rec.Body.String()
	if !strings.Contains(body, "event: session") {
		t.Errorf("expected a session event, got %q", body)
	}
	if !strings.Contains(body, `"state":"loading"`) {
		t.Errorf("expected the opening loading state, got %q", body)
	}
	if !strings.Contains(body, `"state":"signedIn"`) {
		t.Errorf("expected the signed-in transition, got %q", body)
	}
	if !strings.Contains(body, `"displayName":"Alice"`) {
		t.Errorf("expected the identity in the signed-in event, got %q", body)
	}
}
