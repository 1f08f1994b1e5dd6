// ABOUTME: Mappers convert domain models to API response DTOs
// ABOUTME: Keeps JSON shape concerns out of the core packages

package mappers

import (
	"stash-app-api/api/dto/responses"
	"stash-app-api/core/domain"
)

// ToLinkResponse converts a domain link to its API representation
func ToLinkResponse(link domain.Link) responses.LinkResponse {
	tags := link.Tags
	if tags == nil {
		tags = []string{}
	}

	return responses.LinkResponse{
		ID:        link.ID,
		URL:       link.URL,
		Title:     link.Title,
		Summary:   link.Summary,
		Tags:      tags,
		SiteName:  link.SiteName,
		ImageURL:  link.ImageURL,
		CreatedAt: link.CreatedAt,
	}
}

// ToLinkListResponse converts a domain link list to its API representation
func ToLinkListResponse(links []domain.Link) responses.LinkListResponse {
	out := make([]responses.LinkResponse, 0, len(links))
	for _, link := range links {
		out = append(out, ToLinkResponse(link))
	}

	return responses.LinkListResponse{
		Links: out,
		Total: len(out),
	}
}

// ToSessionEventResponse converts a pushed auth-state change to its API
// representation. The identity is only present while signed in.
func ToSessionEventResponse(event domain.SessionEvent) responses.SessionEventResponse {
	out := responses.SessionEventResponse{State: event.State.String()}
	if event.Session != nil {
		session := ToSessionResponse(*event.Session)
		out.Session = &session
	}
	return out
}

// ToSessionResponse converts a domain session to its API representation
func ToSessionResponse(session domain.Session) responses.SessionResponse {
	return responses.SessionResponse{
		UserID:      session.UserID,
		DisplayName: session.DisplayName,
		Email:       session.Email,
		AvatarURL:   session.AvatarURL,
	}
}
