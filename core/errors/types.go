// ABOUTME: Custom error types for the link submission pipeline and stores
// ABOUTME: Provides structured errors for better error handling and API responses

package errors

import (
	"errors"
	"fmt"
)

// InvalidInputError represents a rejected submission before any network call
type InvalidInputError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
}

// FetchError represents a failed page fetch, either at the network layer
// or as a non-success HTTP status from the relay/target.
type FetchError struct {
	URL        string
	StatusCode int
	Excerpt    string
	Network    bool
	Cause      error
}

// Error implements the error interface
func (e *FetchError) Error() string {
	if e.Network {
		return fmt.Sprintf("network error: could not fetch %s: %v", e.URL, e.Cause)
	}
	return fmt.Sprintf("fetch of %s returned status %d: %s", e.URL, e.StatusCode, e.Excerpt)
}

// Unwrap returns the underlying cause
func (e *FetchError) Unwrap() error {
	return e.Cause
}

// EmptyContentError means the page yielded no extractable text
type EmptyContentError struct {
	URL string
}

// Error implements the error interface
func (e *EmptyContentError) Error() string {
	return fmt.Sprintf("no readable content could be extracted from %s", e.URL)
}

// AnalysisError collapses any analyzer transport, response, or parse
// failure into a single generic error with no partial result.
type AnalysisError struct {
	Cause error
}

// Error implements the error interface
func (e *AnalysisError) Error() string {
	return "failed to analyze content"
}

// Unwrap returns the underlying cause
func (e *AnalysisError) Unwrap() error {
	return e.Cause
}

// PersistError represents a failed store write or delete
type PersistError struct {
	Op    string
	Cause error
}

// Error implements the error interface
func (e *PersistError) Error() string {
	return fmt.Sprintf("store %s failed: %v", e.Op, e.Cause)
}

// Unwrap returns the underlying cause
func (e *PersistError) Unwrap() error {
	return e.Cause
}

// SubscriptionError represents a live-query failure; it persists until the
// subscription is re-established.
type SubscriptionError struct {
	OwnerID string
	Cause   error
}

// Error implements the error interface
func (e *SubscriptionError) Error() string {
	return fmt.Sprintf("live subscription for owner %s failed: %v", e.OwnerID, e.Cause)
}

// Unwrap returns the underlying cause
func (e *SubscriptionError) Unwrap() error {
	return e.Cause
}

// NotFoundError represents a resource not found error
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// IsInvalidInput checks if an error is an InvalidInputError
func IsInvalidInput(err error) bool {
	var invalidErr *InvalidInputError
	return errors.As(err, &invalidErr)
}

// IsFetchFailed checks if an error is a FetchError
func IsFetchFailed(err error) bool {
	var fetchErr *FetchError
	return errors.As(err, &fetchErr)
}

// AsFetchError extracts a FetchError from the chain
func AsFetchError(err error) (*FetchError, bool) {
	var fetchErr *FetchError
	if errors.As(err, &fetchErr) {
		return fetchErr, true
	}
	return nil, false
}

// IsEmptyContent checks if an error is an EmptyContentError
func IsEmptyContent(err error) bool {
	var emptyErr *EmptyContentError
	return errors.As(err, &emptyErr)
}

// IsAnalysisFailed checks if an error is an AnalysisError
func IsAnalysisFailed(err error) bool {
	var analysisErr *AnalysisError
	return errors.As(err, &analysisErr)
}

// IsPersistFailed checks if an error is a PersistError
func IsPersistFailed(err error) bool {
	var persistErr *PersistError
	return errors.As(err, &persistErr)
}

// IsSubscriptionFailed checks if an error is a SubscriptionError
func IsSubscriptionFailed(err error) bool {
	var subErr *SubscriptionError
	return errors.As(err, &subErr)
}

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
