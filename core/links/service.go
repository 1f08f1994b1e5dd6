// ABOUTME: Link store service handles create, list, delete, and live subscriptions
// ABOUTME: Pushes the full ordered per-owner list to subscribers on every change

package links

import (
	"context"
	"sync"

	"stash-app-api/core/domain"
	"stash-app-api/core/errors"
	"stash-app-api/core/interfaces"

	"github.com/google/uuid"
)

// SnapshotFunc receives the full current ordered list on every change
type SnapshotFunc func(links []domain.Link)

// Service handles link persistence and live subscriptions
type Service struct {
	storage interfaces.LinkStorage
	logger  interfaces.Logger

	mu   sync.Mutex
	subs map[string]map[string]*Subscription
}

// NewService creates a new link store service instance
func NewService(storage interfaces.LinkStorage, logger interfaces.Logger) *Service {
	return &Service{
		storage: storage,
		logger:  logger,
		subs:    make(map[string]map[string]*Subscription),
	}
}

// Create persists a validated link and returns once the write is
// acknowledged. The storage layer assigns the ID and server timestamp.
func (s *Service) Create(ctx context.Context, link *domain.Link) error {
	if err := link.Validate(); err != nil {
		return &errors.InvalidInputError{Field: "link", Message: err.Error()}
	}

	if err := s.storage.Insert(ctx, link); err != nil {
		return &errors.PersistError{Op: "create", Cause: err}
	}

	s.notifyOwner(ctx, link.UserID)
	return nil
}

// List returns the owner's links newest first, filtered by the search query
// and tag when provided.
func (s *Service) List(ctx context.Context, ownerID, query, tag string) ([]domain.Link, error) {
	list, err := s.storage.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, &errors.PersistError{Op: "list", Cause: err}
	}

	return Filter(list, query, tag), nil
}

// Tags returns the sorted distinct tag set across the owner's links
func (s *Service) Tags(ctx context.Context, ownerID string) ([]string, error) {
	list, err := s.storage.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, &errors.PersistError{Op: "list", Cause: err}
	}

	return DistinctTags(list), nil
}

// Delete permanently removes the owner's link by id. There is no soft
// delete; confirmation is a caller concern.
func (s *Service) Delete(ctx context.Context, ownerID, id string) error {
	if err := s.storage.Delete(ctx, ownerID, id); err != nil {
		if errors.IsNotFound(err) {
			return err
		}
		return &errors.PersistError{Op: "delete", Cause: err}
	}

	s.notifyOwner(ctx, ownerID)
	return nil
}

// Subscribe establishes a live query for the owner's links. The callback is
// invoked with the full current ordered list immediately and again after
// every create or delete, until the returned subscription is cancelled.
func (s *Service) Subscribe(ctx context.Context, ownerID string, fn SnapshotFunc) (*Subscription, error) {
	initial, err := s.storage.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, &errors.SubscriptionError{OwnerID: ownerID, Cause: err}
	}

	sub := &Subscription{
		id:      uuid.New().String(),
		ownerID: ownerID,
		fn:      fn,
		svc:     s,
	}

	s.mu.Lock()
	if s.subs[ownerID] == nil {
		s.subs[ownerID] = make(map[string]*Subscription)
	}
	s.subs[ownerID][sub.id] = sub
	s.mu.Unlock()

	sub.invoke(initial)
	return sub, nil
}

// notifyOwner reloads the owner's list and pushes it to every active
// subscription. A reload failure is logged; subscribers keep their last
// snapshot rather than receiving a partial one.
func (s *Service) notifyOwner(ctx context.Context, ownerID string) {
	s.mu.Lock()
	active := make([]*Subscription, 0, len(s.subs[ownerID]))
	for _, sub := range s.subs[ownerID] {
		active = append(active, sub)
	}
	s.mu.Unlock()

	if len(active) == 0 {
		return
	}

	list, err := s.storage.ListByOwner(ctx, ownerID)
	if err != nil {
		if s.logger != nil {
			s.logger.Error("Failed to reload links for subscribers", map[string]interface{}{
				"owner": ownerID,
				"error": err.Error(),
			})
		}
		return
	}

	for _, sub := range active {
		sub.invoke(list)
	}
}

// remove unregisters a cancelled subscription
func (s *Service) remove(sub *Subscription) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if owned := s.subs[sub.ownerID]; owned != nil {
		delete(owned, sub.id)
		if len(owned) == 0 {
			delete(s.subs, sub.ownerID)
		}
	}
}

// Subscription is an explicit handle on a live query. Cancel stops further
// callback invocations and releases the listener registration.
type Subscription struct {
	id        string
	ownerID   string
	fn        SnapshotFunc
	svc       *Service
	mu        sync.Mutex
	cancelled bool
}

// invoke delivers a snapshot unless the subscription has been cancelled
func (sub *Subscription) invoke(list []domain.Link) {
	sub.mu.Lock()
	defer sub.mu.Unlock()

	if sub.cancelled {
		return
	}
	sub.fn(list)
}

// Cancel stops the subscription. Once Cancel returns, the callback is never
// invoked again, even if the underlying data changes afterward.
func (sub *Subscription) Cancel() {
	sub.mu.Lock()
	if sub.cancelled {
		sub.mu.Unlock()
		return
	}
	sub.cancelled = true
	sub.mu.Unlock()

	sub.svc.remove(sub)
}
