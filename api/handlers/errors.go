// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts pipeline and store errors to appropriate HTTP responses

package handlers

import (
	"stash-app-api/core/errors"

	"github.com/danielgtaylor/huma/v2"
)

// toHumaError converts domain errors to appropriate Huma HTTP errors
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.IsInvalidInput(err):
		return huma.Error400BadRequest(err.Error())

	case errors.IsNotFound(err):
		return huma.Error404NotFound(err.Error())

	case errors.IsFetchFailed(err):
		// Network unreachability reads differently from the target
		// rejecting the request with an HTTP status
		if fetchErr, ok := errors.AsFetchError(err); ok && fetchErr.Network {
			return huma.Error502BadGateway("Could not reach the URL. This might be a temporary network issue, or the fetch relay may be down.", err)
		}
		return huma.Error422UnprocessableEntity(err.Error())

	case errors.IsEmptyContent(err):
		return huma.Error422UnprocessableEntity(err.Error())

	case errors.IsAnalysisFailed(err):
		return huma.Error502BadGateway("Failed to analyze content. Please try again.")

	case errors.IsSubscriptionFailed(err):
		return huma.Error503ServiceUnavailable("Failed to load links. Please try again later.")

	case errors.IsPersistFailed(err):
		return huma.Error500InternalServerError("Failed to save changes", err)
	}

	return huma.Error500InternalServerError("Internal server error", err)
}
