// ABOUTME: SQLite-backed link storage with owner scoping and ordered reads
// ABOUTME: Assigns record ids and monotonic server timestamps on insert

package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"stash-app-api/core/domain"
	"stash-app-api/core/errors"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// Store implements the LinkStorage interface using SQLite
type Store struct {
	db       *sql.DB
	filePath string

	mu        sync.Mutex
	lastStamp time.Time
}

// NewStore opens (or creates) the link database at filePath
func NewStore(filePath string) (*Store, error) {
	if filePath == "" {
		filePath = "stash.db"
	}

	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	store := &Store{
		db:       db,
		filePath: filePath,
	}

	if err := store.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

// initSchema creates the links table if it doesn't exist
func (s *Store) initSchema() error {
	query := `
		CREATE TABLE IF NOT EXISTS links (
			id TEXT PRIMARY KEY,
			user_id TEXT NOT NULL,
			url TEXT NOT NULL,
			title TEXT NOT NULL DEFAULT '',
			summary TEXT NOT NULL DEFAULT '',
			tags TEXT NOT NULL DEFAULT '[]',
			site_name TEXT NOT NULL DEFAULT '',
			image_url TEXT NOT NULL DEFAULT '',
			created_at INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_links_owner_created ON links(user_id, created_at DESC);
	`

	_, err := s.db.Exec(query)
	return err
}

// Insert persists a new link, assigning its id and creation timestamp.
// Timestamps are strictly monotonic so that per-owner ordering is total.
func (s *Store) Insert(ctx context.Context, link *domain.Link) error {
	tags, err := json.Marshal(link.Tags)
	if err != nil {
		return fmt.Errorf("failed to encode tags: %w", err)
	}

	link.ID = uuid.New().String()
	link.CreatedAt = s.nextTimestamp()

	query := `
		INSERT INTO links (id, user_id, url, title, summary, tags, site_name, image_url, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = s.db.ExecContext(ctx, query,
		link.ID, link.UserID, link.URL, link.Title, link.Summary,
		string(tags), link.SiteName, link.ImageURL, link.CreatedAt.UnixNano())
	if err != nil {
		return fmt.Errorf("failed to insert link: %w", err)
	}

	return nil
}

// nextTimestamp returns a server timestamp guaranteed to be later than any
// previously assigned one.
func (s *Store) nextTimestamp() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now()
	if !now.After(s.lastStamp) {
		now = s.lastStamp.Add(time.Nanosecond)
	}
	s.lastStamp = now
	return now
}

// ListByOwner returns all links owned by ownerID, newest first
func (s *Store) ListByOwner(ctx context.Context, ownerID string) ([]domain.Link, error) {
	query := `
		SELECT id, user_id, url, title, summary, tags, site_name, image_url, created_at
		FROM links
		WHERE user_id = ?
		ORDER BY created_at DESC
	`

	rows, err := s.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to query links: %w", err)
	}
	defer rows.Close()

	links := make([]domain.Link, 0)
	for rows.Next() {
		var link domain.Link
		var tags string
		var createdAt int64

		if err := rows.Scan(&link.ID, &link.UserID, &link.URL, &link.Title,
			&link.Summary, &tags, &link.SiteName, &link.ImageURL, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan link: %w", err)
		}

		if err := json.Unmarshal([]byte(tags), &link.Tags); err != nil {
			link.Tags = []string{}
		}
		link.CreatedAt = time.Unix(0, createdAt)

		links = append(links, link)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read links: %w", err)
	}

	return links, nil
}

// Delete permanently removes the owner's link by id
func (s *Store) Delete(ctx context.Context, ownerID, id string) error {
	query := "DELETE FROM links WHERE user_id = ? AND id = ?"

	result, err := s.db.ExecContext(ctx, query, ownerID, id)
	if err != nil {
		return fmt.Errorf("failed to delete link: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to confirm delete: %w", err)
	}

	if affected == 0 {
		return &errors.NotFoundError{Resource: "link", ID: id}
	}

	return nil
}

// Close closes the database connection
func (s *Store) Close() error {
	return s.db.Close()
}
