package links

import (
	"context"
	"sort"
	"strconv"
	"sync"
	"time"

	"stash-app-api/core/domain"
	"stash-app-api/core/errors"
)

// mockStorage is an in-memory LinkStorage implementation for tests.
// Insert assigns sequential IDs and strictly increasing timestamps so
// ListByOwner ordering matches the real store.
type mockStorage struct {
	mu      sync.Mutex
	records []domain.Link
	seq     int

	insertErr error
	listErr   error
	deleteErr error
}

func (m *mockStorage) Insert(ctx context.Context, link *domain.Link) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.insertErr != nil {
		return m.insertErr
	}

	m.seq++
	link.ID = "link-" + strconv.Itoa(m.seq)
	link.CreatedAt = time.Unix(0, int64(m.seq))
	m.records = append(m.records, *link)
	return nil
}

func (m *mockStorage) ListByOwner(ctx context.Context, ownerID string) ([]domain.Link, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.listErr != nil {
		return nil, m.listErr
	}

	owned := make([]domain.Link, 0)
	for _, link := range m.records {
		if link.UserID == ownerID {
			owned = append(owned, link)
		}
	}
	sort.Slice(owned, func(i, j int) bool {
		return owned[i].CreatedAt.After(owned[j].CreatedAt)
	})
	return owned, nil
}

func (m *mockStorage) Delete(ctx context.Context, ownerID, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.deleteErr != nil {
		return m.deleteErr
	}

	for i, link := range m.records {
		if link.UserID == ownerID && link.ID == id {
			m.records = append(m.records[:i], m.records[i+1:]...)
			return nil
		}
	}
	return &errors.NotFoundError{Resource: "link", ID: id}
}

func (m *mockStorage) Close() error {
	return nil
}
