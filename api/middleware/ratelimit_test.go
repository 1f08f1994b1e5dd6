package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestRateLimiter_AllowsUpToBurst(t *testing.T) {
	limiter := NewRateLimiter(3, time.Minute)

	for i := 0; i < 3; i++ {
		if !limiter.Allow("1.2.3.4") {
			t.Fatalf("request %d within burst should be allowed", i+1)
		}
	}
	if limiter.Allow("1.2.3.4") {
		t.Error("request beyond burst should be denied")
	}
}

func TestRateLimiter_KeysAreIndependent(t *testing.T) {
	limiter := NewRateLimiter(1, time.Minute)

	if !limiter.Allow("1.1.1.1") {
		t.Fatal("first key should be allowed")
	}
	if !limiter.Allow("2.2.2.2") {
		t.Error("second key has its own bucket")
	}
}

func TestRateLimitMiddleware_Returns429(t *testing.T) {
	limiter := NewRateLimiter(1, time.Minute)
	handler := RateLimitMiddleware(limiter)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	req := httptest.NewRequest(http.MethodGet, "/v1/links", nil)
	req.RemoteAddr = "9.9.9.9:1234"

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, req)
	if first.Code != http.StatusOK {
		t.Fatalf("first request should pass, got %d", first.Code)
	}

	second := httptest.NewRecorder()
	handler.ServeHTTP(second, req)
	if second.Code != http.StatusTooManyRequests {
		t.Errorf("second request should be limited, got %d", second.Code)
	}
	if second.Header().Get("Content-Type") != "application/json" {
		t.Error("rate limit response should be JSON")
	}
}

func TestExtractIP(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = "10.0.0.1:5000"
	if got := extractIP(req); got != "10.0.0.1:5000" {
		t.Errorf("expected RemoteAddr fallback, got %q", got)
	}

	req.Header.Set("X-Real-IP", "8.8.8.8")
	if got := extractIP(req); got != "8.8.8.8" {
		t.Errorf("expected X-Real-IP, got %q", got)
	}

	req.Header.Set("X-Forwarded-For", "1.1.1.1, 2.2.2.2")
	if got := extractIP(req); got != "2.2.2.2" {
		t.Errorf("expected last X-Forwarded-For hop, got %q", got)
	}
}
