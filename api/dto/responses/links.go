// ABOUTME: Response DTOs for link-related API endpoints
// ABOUTME: Provides structured responses with JSON serialization

package responses

import "time"

// LinkResponse represents a saved link in API responses
type LinkResponse struct {
	ID        string    `json:"id" doc:"Unique identifier for the link"`
	URL       string    `json:"url" doc:"Saved article URL"`
	Title     string    `json:"title,omitempty" doc:"AI-derived title"`
	Summary   string    `json:"summary" doc:"AI-derived bullet summary"`
	Tags      []string  `json:"tags" doc:"AI-derived keyword tags"`
	SiteName  string    `json:"siteName,omitempty" doc:"Publishing site name"`
	ImageURL  string    `json:"imageUrl,omitempty" doc:"Preview image URL"`
	CreatedAt time.Time `json:"createdAt" doc:"Server-assigned creation time"`
}

// LinkListResponse represents the owner's filtered link list
type LinkListResponse struct {
	Links []LinkResponse `json:"links" doc:"Links newest first"`
	Total int            `json:"total" doc:"Number of links returned"`
}

// TagListResponse represents the owner's distinct tag set
type TagListResponse struct {
	Tags []string `json:"tags" doc:"Sorted distinct tags"`
}

// SessionResponse represents the current signed-in identity
type SessionResponse struct {
	UserID      string `json:"userId" doc:"Unique user identifier"`
	DisplayName string `json:"displayName,omitempty" doc:"Display name"`
	Email       string `json:"email,omitempty" doc:"Email address"`
	AvatarURL   string `json:"avatarUrl,omitempty" doc:"Avatar image URL"`
}

// SessionEventResponse represents a pushed auth-state change
type SessionEventResponse struct {
	State   string           `json:"state" doc:"One of loading, signedIn, signedOut"`
	Session *SessionResponse `json:"session,omitempty" doc:"Identity when signed in"`
}

// SignInResponse carries the minted session token
type SignInResponse struct {
	Token   string          `json:"token" doc:"Bearer token for subsequent requests"`
	Session SessionResponse `json:"session" doc:"The signed-in identity"`
}
