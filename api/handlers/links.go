// ABOUTME: Link handlers for the Huma API
// ABOUTME: Provides HTTP endpoints for submitting, listing, and deleting links

package handlers

import (
	"context"
	stderrors "errors"
	"net/http"

	"stash-app-api/api/dto/mappers"
	"stash-app-api/api/dto/requests"
	"stash-app-api/api/dto/responses"
	"stash-app-api/api/middleware"
	"stash-app-api/core/domain"
	"stash-app-api/core/pipeline"

	"github.com/danielgtaylor/huma/v2"
)

// SubmissionRunner interface defines the methods needed from the pipeline
type SubmissionRunner interface {
	Submit(ctx context.Context, ownerID, pageURL string) (*domain.Link, error)
}

// LinkService interface defines the methods needed from the link store
type LinkService interface {
	List(ctx context.Context, ownerID, query, tag string) ([]domain.Link, error)
	Tags(ctx context.Context, ownerID string) ([]string, error)
	Delete(ctx context.Context, ownerID, id string) error
}

// LinksHandler handles link-related HTTP requests
type LinksHandler struct {
	runner SubmissionRunner
	links  LinkService
}

// NewLinksHandler creates a new links handler
func NewLinksHandler(runner SubmissionRunner, links LinkService) *LinksHandler {
	return &LinksHandler{
		runner: runner,
		links:  links,
	}
}

// RegisterRoutes registers all link-related routes
func (h *LinksHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "addLink",
		Method:        http.MethodPost,
		Path:          "/v1/links",
		Summary:       "Save and analyze a URL",
		Description:   "Fetches the page, derives title/summary/tags with AI, and persists the link for the signed-in user",
		Tags:          []string{"Links"},
		DefaultStatus: http.StatusCreated,
	}, h.AddLink)

	huma.Register(api, huma.Operation{
		OperationID: "listLinks",
		Method:      http.MethodGet,
		Path:        "/v1/links",
		Summary:     "List saved links",
		Description: "Returns the signed-in user's links newest first, optionally filtered by search text and tag",
		Tags:        []string{"Links"},
	}, h.ListLinks)

	huma.Register(api, huma.Operation{
		OperationID: "listTags",
		Method:      http.MethodGet,
		Path:        "/v1/links/tags",
		Summary:     "List distinct tags",
		Description: "Returns the sorted distinct tag set across the signed-in user's links",
		Tags:        []string{"Links"},
	}, h.ListTags)

	huma.Register(api, huma.Operation{
		OperationID:   "deleteLink",
		Method:        http.MethodDelete,
		Path:          "/v1/links/{id}",
		Summary:       "Delete a saved link",
		Description:   "Permanently removes one of the signed-in user's links",
		Tags:          []string{"Links"},
		DefaultStatus: http.StatusNoContent,
	}, h.DeleteLink)
}

// AddLinkInput defines the input for the AddLink operation
type AddLinkInput struct {
	Body requests.AddLinkRequest `json:"body"`
}

// AddLinkOutput defines the output for the AddLink operation
type AddLinkOutput struct {
	Body responses.LinkResponse
}

// AddLink handles POST /v1/links
func (h *LinksHandler) AddLink(ctx context.Context, input *AddLinkInput) (*AddLinkOutput, error) {
	session, ok := middleware.SessionFromContext(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Sign in to save links")
	}

	link, err := h.runner.Submit(ctx, session.UserID, input.Body.URL)
	if err != nil {
		if stderrors.Is(err, pipeline.ErrSubmissionInFlight) {
			return nil, huma.Error409Conflict(err.Error())
		}
		return nil, toHumaError(err)
	}

	return &AddLinkOutput{Body: mappers.ToLinkResponse(*link)}, nil
}

// ListLinksInput defines the input for the ListLinks operation
type ListLinksInput struct {
	Query string `query:"q" doc:"Case-insensitive search over title, summary, and URL"`
	Tag   string `query:"tag" doc:"Only links carrying this tag"`
}

// ListLinksOutput defines the output for the ListLinks operation
type ListLinksOutput struct {
	Body responses.LinkListResponse
}

// ListLinks handles GET /v1/links
func (h *LinksHandler) ListLinks(ctx context.Context, input *ListLinksInput) (*ListLinksOutput, error) {
	session, ok := middleware.SessionFromContext(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Sign in to list links")
	}

	list, err := h.links.List(ctx, session.UserID, input.Query, input.Tag)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &ListLinksOutput{Body: mappers.ToLinkListResponse(list)}, nil
}

// ListTagsInput defines the input for the ListTags operation
type ListTagsInput struct{}

// ListTagsOutput defines the output for the ListTags operation
type ListTagsOutput struct {
	Body responses.TagListResponse
}

// ListTags handles GET /v1/links/tags
func (h *LinksHandler) ListTags(ctx context.Context, _ *ListTagsInput) (*ListTagsOutput, error) {
	session, ok := middleware.SessionFromContext(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Sign in to list tags")
	}

	tags, err := h.links.Tags(ctx, session.UserID)
	if err != nil {
		return nil, toHumaError(err)
	}

	return &ListTagsOutput{Body: responses.TagListResponse{Tags: tags}}, nil
}

// DeleteLinkInput defines the input for the DeleteLink operation
type DeleteLinkInput struct {
	ID string `path:"id" doc:"Link identifier"`
}

// DeleteLinkOutput defines the output for the DeleteLink operation
type DeleteLinkOutput struct{}

// DeleteLink handles DELETE /v1/links/{id}
func (h *LinksHandler) DeleteLink(ctx context.Context, input *DeleteLinkInput) (*DeleteLinkOutput, error) {
	session, ok := middleware.SessionFromContext(ctx)
	if !ok {
		return nil, huma.Error401Unauthorized("Sign in to delete links")
	}

	if err := h.links.Delete(ctx, session.UserID, input.ID); err != nil {
		return nil, toHumaError(err)
	}

	return &DeleteLinkOutput{}, nil
}
