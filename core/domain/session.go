// ABOUTME: Session domain model represents an ephemeral authenticated identity
// ABOUTME: Created on sign-in, destroyed on sign-out, never persisted

package domain

// Session is the signed-in identity exposed by the session provider
type Session struct {
	// UserID is the unique identity used as the partition key for links
	UserID string `json:"userId"`

	// DisplayName is the user's display name
	DisplayName string `json:"displayName,omitempty"`

	// Email is the user's email address
	Email string `json:"email,omitempty"`

	// AvatarURL points at the user's avatar image
	AvatarURL string `json:"avatarUrl,omitempty"`
}

// IsValid reports whether the session carries a usable identity
func (s *Session) IsValid() bool {
	return s.UserID != ""
}

// SessionState describes a change pushed by the session provider
type SessionState int

const (
	// SessionLoading is the initial state before the first determination
	SessionLoading SessionState = iota

	// SessionSignedIn means a valid identity is present
	SessionSignedIn

	// SessionSignedOut means no identity is present
	SessionSignedOut
)

// String returns the wire name of the session state
func (s SessionState) String() string {
	switch s {
	case SessionSignedIn:
		return "signedIn"
	case SessionSignedOut:
		return "signedOut"
	default:
		return "loading"
	}
}

// SessionEvent is pushed to watchers whenever the auth state changes
type SessionEvent struct {
	State   SessionState
	Session *Session
}
