// ABOUTME: Request DTOs for link-related API endpoints
// ABOUTME: Provides validation metadata for incoming requests

package requests

// AddLinkRequest represents the request body for submitting a URL
type AddLinkRequest struct {
	// URL is the page to fetch, analyze, and save
	URL string `json:"url" required:"true" format:"uri" doc:"Absolute URL of the article to save"`
}

// SignInRequest represents the identity asserted at sign-in
type SignInRequest struct {
	// UserID is the unique identity from the upstream provider
	UserID string `json:"userId" required:"true" doc:"Unique user identifier"`

	// DisplayName is the user's display name
	DisplayName string `json:"displayName,omitempty" doc:"Display name"`

	// Email is the user's email address
	Email string `json:"email,omitempty" format:"email" doc:"Email address"`

	// AvatarURL points at the user's avatar image
	AvatarURL string `json:"avatarUrl,omitempty" format:"uri" doc:"Avatar image URL"`
}
