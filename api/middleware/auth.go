// ABOUTME: Bearer-token auth middleware resolving the acting session
// ABOUTME: Stores the identity in the request context for handlers to read

package middleware

import (
	"context"
	"net/http"
	"strings"

	"stash-app-api/core/domain"
)

// SessionResolver validates a bearer token and returns its identity
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (*domain.Session, error)
}

// sessionContextKey is the context key for the resolved session
type sessionContextKey struct{}

// SessionFromContext returns the resolved session, if any
func SessionFromContext(ctx context.Context) (*domain.Session, bool) {
	session, ok := ctx.Value(sessionContextKey{}).(*domain.Session)
	return session, ok
}

// WithSession returns a context carrying the given session. Exposed for
// handler tests.
func WithSession(ctx context.Context, session *domain.Session) context.Context {
	return context.WithValue(ctx, sessionContextKey{}, session)
}

// BearerToken extracts the bearer token from an Authorization header value
func BearerToken(header string) string {
	const prefix = "Bearer "
	if len(header) > len(prefix) && strings.EqualFold(header[:len(prefix)], prefix) {
		return header[len(prefix):]
	}
	return ""
}

// AuthMiddleware resolves the Authorization header into a session. Requests
// without a valid session pass through unauthenticated; handlers that need
// an identity reject them with 401.
func AuthMiddleware(resolver SessionResolver) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := BearerToken(r.Header.Get("Authorization"))
			if token != "" {
				if session, err := resolver.Resolve(r.Context(), token); err == nil {
					r = r.WithContext(WithSession(r.Context(), session))
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}
