// ABOUTME: Storage interfaces for persisting domain entities
// ABOUTME: Defines contracts for data persistence operations

package interfaces

import (
	"context"

	"stash-app-api/core/domain"
)

// LinkStorage defines the interface for link persistence.
// Implementations assign the record ID and the server-side creation
// timestamp on insert; timestamps must be monotonic within an owner.
type LinkStorage interface {
	// Insert persists a new link, filling in its ID and CreatedAt.
	Insert(ctx context.Context, link *domain.Link) error

	// ListByOwner returns all links owned by ownerID, newest first.
	ListByOwner(ctx context.Context, ownerID string) ([]domain.Link, error)

	// Delete permanently removes a link by id, scoped to its owner.
	// Returns a NotFoundError when no such record exists for the owner.
	Delete(ctx context.Context, ownerID, id string) error

	// Close releases the underlying storage resources.
	Close() error
}
