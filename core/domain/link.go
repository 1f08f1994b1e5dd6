// ABOUTME: Link domain model represents a saved, analyzed article owned by a user
// ABOUTME: Provides validation logic to ensure link data integrity before persistence

package domain

import (
	"errors"
	"net/url"
	"time"
)

// Link represents a saved article with AI-derived metadata
type Link struct {
	// ID is the unique identifier, assigned by the store on creation
	ID string `json:"id"`

	// UserID is the owner's identity; immutable after creation
	UserID string `json:"userId"`

	// URL is the absolute URL the link was saved from
	URL string `json:"url"`

	// Title is a short descriptive title, possibly empty
	Title string `json:"title,omitempty"`

	// Summary is multi-line bullet text produced by analysis
	Summary string `json:"summary"`

	// Tags is an ordered list of keyword tags (3-5 expected, not enforced)
	Tags []string `json:"tags"`

	// SiteName is the publishing site's name from page metadata
	SiteName string `json:"siteName,omitempty"`

	// ImageURL is a preview image URL from page metadata
	ImageURL string `json:"imageUrl,omitempty"`

	// CreatedAt is the server-assigned creation timestamp
	CreatedAt time.Time `json:"createdAt"`
}

// NewLink creates a new Link instance with validation.
// The ID and CreatedAt fields are left for the storage layer to assign.
func NewLink(userID, linkURL string, analysis Analysis) (*Link, error) {
	link := &Link{
		UserID:  userID,
		URL:     linkURL,
		Title:   analysis.Title,
		Summary: analysis.Summary,
		Tags:    analysis.Tags,
	}

	if err := link.Validate(); err != nil {
		return nil, err
	}

	return link, nil
}

// Validate checks if the link has valid required fields
func (l *Link) Validate() error {
	if l.UserID == "" {
		return errors.New("link owner cannot be empty")
	}

	if l.URL == "" {
		return errors.New("link URL cannot be empty")
	}

	parsed, err := url.Parse(l.URL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return errors.New("link URL is not an absolute URL")
	}

	return nil
}

// HasTag reports whether the link carries the given tag
func (l *Link) HasTag(tag string) bool {
	for _, t := range l.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
