package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"stash-app-api/core/domain"
	"stash-app-api/core/errors"
)

func testStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleLink(owner string) *domain.Link {
	return &domain.Link{
		UserID:  owner,
		URL:     "https://example.com/post",
		Title:   "A Title",
		Summary: "- point",
		Tags:    []string{"go", "web"},
	}
}

func TestInsert_AssignsIDAndTimestamp(t *testing.T) {
	store := testStore(t)

	link := sampleLink("alice")
	if err := store.Insert(context.Background(), link); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if link.ID == "" {
		t.Error("expected assigned ID")
	}
	if link.CreatedAt.IsZero() {
		t.Error("expected assigned timestamp")
	}
}

func TestInsert_TimestampsStrictlyIncrease(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	first := sampleLink("alice")
	second := sampleLink("alice")
	if err := store.Insert(ctx, first); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.Insert(ctx, second); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !second.CreatedAt.After(first.CreatedAt) {
		t.Errorf("timestamps must be strictly increasing: %v then %v", first.CreatedAt, second.CreatedAt)
	}
}

func TestListByOwner_NewestFirst(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	for _, url := range []string{"https://example.com/1", "https://example.com/2", "https://example.com/3"} {
		link := sampleLink("alice")
		link.URL = url
		if err := store.Insert(ctx, link); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	list, err := store.ListByOwner(ctx, "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 links, got %d", len(list))
	}
	if list[0].URL != "https://example.com/3" || list[2].URL != "https://example.com/1" {
		t.Errorf("expected newest first, got %q .. %q", list[0].URL, list[2].URL)
	}
}

func TestListByOwner_ScopedToOwner(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	if err := store.Insert(ctx, sampleLink("alice")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := store.Insert(ctx, sampleLink("bob")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	list, err := store.ListByOwner(ctx, "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("expected 1 link, got %d", len(list))
	}
	if list[0].UserID != "alice" {
		t.Errorf("leaked another owner's link: %+v", list[0])
	}
}

func TestListByOwner_EmptyForUnknownOwner(t *testing.T) {
	store := testStore(t)

	list, err := store.ListByOwner(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(list) != 0 {
		t.Errorf("expected empty list, got %d", len(list))
	}
}

func TestListByOwner_RoundTripsFields(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	link := sampleLink("alice")
	link.SiteName = "Example Blog"
	link.ImageURL = "https://example.com/og.png"
	if err := store.Insert(ctx, link); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	list, err := store.ListByOwner(ctx, "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := list[0]
	if got.Title != link.Title || got.Summary != link.Summary {
		t.Errorf("text fields did not round trip: %+v", got)
	}
	if len(got.Tags) != 2 || got.Tags[0] != "go" {
		t.Errorf("tags did not round trip: %v", got.Tags)
	}
	if got.SiteName != "Example Blog" || got.ImageURL != "https://example.com/og.png" {
		t.Errorf("metadata fields did not round trip: %+v", got)
	}
	if !got.CreatedAt.Equal(link.CreatedAt) {
		t.Errorf("timestamp did not round trip: %v vs %v", got.CreatedAt, link.CreatedAt)
	}
}

func TestDelete_RemovesRecord(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	link := sampleLink("alice")
	if err := store.Insert(ctx, link); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := store.Delete(ctx, "alice", link.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	list, _ := store.ListByOwner(ctx, "alice")
	if len(list) != 0 {
		t.Errorf("expected empty list after delete, got %d", len(list))
	}
}

func TestDelete_UnknownID(t *testing.T) {
	store := testStore(t)

	err := store.Delete(context.Background(), "alice", "missing")

	if !errors.IsNotFound(err) {
		t.Errorf("expected NotFoundError, got %v", err)
	}
}

func TestDelete_OtherOwnersLink(t *testing.T) {
	store := testStore(t)
	ctx := context.Background()

	link := sampleLink("alice")
	if err := store.Insert(ctx, link); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := store.Delete(ctx, "bob", link.ID)

	if !errors.IsNotFound(err) {
		t.Errorf("delete must be owner-scoped, got %v", err)
	}

	list, _ := store.ListByOwner(ctx, "alice")
	if len(list) != 1 {
		t.Error("alice's link must survive bob's delete attempt")
	}
}
