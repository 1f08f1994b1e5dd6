// ABOUTME: Session provider tracks signed-in identities and pushes auth-state changes
// ABOUTME: Bearer tokens are JWTs; sign-out revokes the token via the cache

package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"stash-app-api/core/domain"
	"stash-app-api/core/interfaces"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// DefaultTTL is the session lifetime used when none is configured
const DefaultTTL = 24 * time.Hour

var (
	// ErrInvalidToken means the bearer token failed validation
	ErrInvalidToken = errors.New("session token is invalid")

	// ErrSessionRevoked means the token was signed out before expiry
	ErrSessionRevoked = errors.New("session has been signed out")

	// ErrInvalidIdentity means the sign-in identity is unusable
	ErrInvalidIdentity = errors.New("identity must carry a user id")
)

// Config holds session provider settings
type Config struct {
	// Secret signs and verifies session tokens
	Secret string

	// TTL is the session lifetime
	TTL time.Duration
}

// claims is the JWT payload carried by session tokens
type claims struct {
	DisplayName string `json:"displayName,omitempty"`
	Email       string `json:"email,omitempty"`
	AvatarURL   string `json:"avatarUrl,omitempty"`
	jwt.RegisteredClaims
}

// Service is the session provider. Identity changes are pushed to watchers
// whenever the auth state changes; there is no polling.
type Service struct {
	cfg    Config
	cache  interfaces.Cache
	logger interfaces.Logger

	mu       sync.Mutex
	last     domain.SessionEvent
	watchers map[string]chan domain.SessionEvent
}

// NewService creates a new session provider instance
func NewService(cfg Config, cache interfaces.Cache, logger interfaces.Logger) *Service {
	if cfg.TTL <= 0 {
		cfg.TTL = DefaultTTL
	}
	return &Service{
		cfg:      cfg,
		cache:    cache,
		logger:   logger,
		last:     domain.SessionEvent{State: domain.SessionLoading},
		watchers: make(map[string]chan domain.SessionEvent),
	}
}

// SignIn mints a bearer token for the identity and notifies watchers
func (s *Service) SignIn(ctx context.Context, identity domain.Session) (string, error) {
	if !identity.IsValid() {
		return "", ErrInvalidIdentity
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &claims{
		DisplayName: identity.DisplayName,
		Email:       identity.Email,
		AvatarURL:   identity.AvatarURL,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.UserID,
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TTL)),
		},
	})

	signed, err := token.SignedString([]byte(s.cfg.Secret))
	if err != nil {
		return "", err
	}

	s.notify(domain.SessionEvent{State: domain.SessionSignedIn, Session: &identity})

	if s.logger != nil {
		s.logger.Info("Session created", map[string]interface{}{
			"user": identity.UserID,
		})
	}

	return signed, nil
}

// Resolve validates a bearer token and returns the identity it carries
func (s *Service) Resolve(ctx context.Context, tokenStr string) (*domain.Session, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &claims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.Secret), nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	c, ok := parsed.Claims.(*claims)
	if !ok || c.Subject == "" {
		return nil, ErrInvalidToken
	}

	if s.isRevoked(ctx, c.ID) {
		return nil, ErrSessionRevoked
	}

	return &domain.Session{
		UserID:      c.Subject,
		DisplayName: c.DisplayName,
		Email:       c.Email,
		AvatarURL:   c.AvatarURL,
	}, nil
}

// SignOut revokes the token and notifies watchers. The revocation entry
// lives in the cache until the token would have expired anyway.
func (s *Service) SignOut(ctx context.Context, tokenStr string) error {
	parsed, err := jwt.ParseWithClaims(tokenStr, &claims{}, func(t *jwt.Token) (interface{}, error) {
		return []byte(s.cfg.Secret), nil
	})
	if err != nil || !parsed.Valid {
		return ErrInvalidToken
	}

	c, ok := parsed.Claims.(*claims)
	if !ok || c.ID == "" {
		return ErrInvalidToken
	}

	if s.cache != nil {
		ttl := time.Until(c.ExpiresAt.Time)
		if ttl > 0 {
			_ = s.cache.Set(ctx, revocationKey(c.ID), []byte("1"), ttl)
		}
	}

	s.notify(domain.SessionEvent{State: domain.SessionSignedOut})

	if s.logger != nil {
		s.logger.Info("Session ended", map[string]interface{}{
			"user": c.Subject,
		})
	}

	return nil
}

// Watch returns a stream of auth-state changes and a cancel function. The
// stream opens with the provider's last determination (loading before any
// sign-in has been observed). Cancelling releases the watcher.
func (s *Service) Watch(ctx context.Context) (<-chan domain.SessionEvent, func()) {
	ch := make(chan domain.SessionEvent, 8)
	id := uuid.New().String()

	s.mu.Lock()
	ch <- s.last
	s.watchers[id] = ch
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		if w, ok := s.watchers[id]; ok {
			delete(s.watchers, id)
			close(w)
		}
		s.mu.Unlock()
	}

	return ch, cancel
}

// notify records the latest state and pushes it to every watcher. Watchers
// that have fallen behind are skipped rather than blocked on.
func (s *Service) notify(event domain.SessionEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.last = event
	for _, ch := range s.watchers {
		select {
		case ch <- event:
		default:
		}
	}
}

// isRevoked checks the cache for a sign-out entry for this token id
func (s *Service) isRevoked(ctx context.Context, tokenID string) bool {
	if s.cache == nil {
		return false
	}

	data, err := s.cache.Get(ctx, revocationKey(tokenID))
	return err == nil && len(data) > 0
}

func revocationKey(tokenID string) string {
	return "session:revoked:" + tokenID
}
