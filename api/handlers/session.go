// ABOUTME: Session handlers for the Huma API
// ABOUTME: Provides HTTP endpoints for sign-in, current identity, and sign-out

package handlers

import (
	"context"
	"net/http"

	"stash-app-api/api/dto/mappers"
	"stash-app-api/api/dto/requests"
	"stash-app-api/api/dto/responses"
	"stash-app-api/api/middleware"
	"stash-app-api/core/domain"

	"github.com/danielgtaylor/huma/v2"
)

// SessionService interface defines the methods needed from the session provider
type SessionService interface {
	SignIn(ctx context.Context, identity domain.Session) (string, error)
	SignOut(ctx context.Context, token string) error
}

// SessionHandler handles session-related HTTP requests
type SessionHandler struct {
	sessions SessionService
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessions SessionService) *SessionHandler {
	return &SessionHandler{
		sessions: sessions,
	}
}

// RegisterRoutes registers all session-related routes
func (h *SessionHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "signIn",
		Method:        http.MethodPost,
		Path:          "/v1/session",
		Summary:       "Sign in",
		Description:   "Mints a bearer token for the asserted identity",
		Tags:          []string{"Session"},
		DefaultStatus: http.StatusCreated,
	}, h.SignIn)

	huma.Register(api, huma.Operation{
		OperationID: "getSession",
		Method:      http.MethodGet,
		Path:        "/v1/session",
		Summary:     "Current identity",
		Description: "Returns the identity carried by the bearer token",
		Tags:        []string{"Session"},
	}, h.GetSession)

	huma.Register(api, huma.Operation{
		OperationID:   "signOut",
		Method:        http.MethodDelete,
		Path:          "/v1/session",
		Summary:       "Sign out",
		Description:   "Revokes the bearer token",
		Tags:          []string{"Session"},
		DefaultStatus: http.StatusNoContent,
	}, h.SignOut)
}

// SignInInput defines the input for the SignIn operation
type SignInInput struct {
	Body requests.SignInRequest `json:"body"`
}

// SignInOutput defines the output for the SignIn operation
type SignInOutput struct {
	Body responses.SignInResponse
}

// SignIn handles POST /v1/session
func (h *SessionHandler) SignIn(ctx context.Context, input *SignInInput) (*SignInOutput, error) {
	identity := domain.Session{
		UserID:      input.Body.UserID,
		DisplayName: input.Body.DisplayName,
		Email:       input.Body.Email,
		AvatarURL:   input.Body.AvatarURL,
	}

	token, err := h.sessions.SignIn(ctx, identity)
	if err != nil {
		return nil, huma.Error400BadRequest(err.Error())
	}

	return &SignInOutput{Body: responses.SignInResponse{
		Token:   token,
		Session: mappers.ToSessionResponse(identity),
	}}, nil
}

// GetSessionInput defines the input for the GetSession operation
type GetSessionInput struct{}

// GetSessionOutput defines the output for the GetSession operation
type GetSessionOutput struct {
	Body responses.SessionResponse
}

// GetSession handles GET /v1/session
func (h *SessionHandler) GetSession(ctx context.Context, _ *GetSessionInput) (*GetSessionOutput, error) {
	session, ok := middleware.SessionFromContext(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("No active session")
	}

	return &GetSessionOutput{Body: mappers.ToSessionResponse(*session)}, nil
}

// SignOutInput defines the input for the SignOut operation
type SignOutInput struct {
	Authorization string `header:"Authorization" doc:"Bearer token to revoke"`
}

// SignOutOutput defines the output for the SignOut operation
type SignOutOutput struct{}

// SignOut handles DELETE /v1/session
func (h *SessionHandler) SignOut(ctx context.Context, input *SignOutInput) (*SignOutOutput, error) {
	token := middleware.BearerToken(input.Authorization)
	if token == "" {
		return nil, huma.Error401Unauthorized("No active session")
	}

	if err := h.sessions.SignOut(ctx, token); err != nil {
		return nil, huma.Error401Unauthorized("No active session")
	}

	return &SignOutOutput{}, nil
}
