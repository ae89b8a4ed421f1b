package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/eishan-studio/eishan/internal/repository"
)

// SessionStore implements repository.SessionStore for SQLite. A single row
// holds the durable session key, mirroring a browser's local storage slot.
type SessionStore struct {
	db *DB
}

// NewSessionStore creates a new SessionStore
func NewSessionStore(db *DB) *SessionStore {
	return &SessionStore{db: db}
}

// Put stores the session key, replacing any previous one.
func (s *SessionStore) Put(ctx context.Context, token string) error {
	query := `
		INSERT INTO session_keys (id, token, updated_at) VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET token = excluded.token, updated_at = excluded.updated_at
	`
	if _, err := s.db.ExecContext(ctx, query, token, time.Now()); err != nil {
		return fmt.Errorf("failed to store session key: %w", err)
	}
	return nil
}

// Get retrieves the stored session key.
func (s *SessionStore) Get(ctx context.Context) (string, error) {
	var token string
	err := s.db.QueryRowContext(ctx, `SELECT token FROM session_keys WHERE id = 1`).Scan(&token)
	if err == sql.ErrNoRows {
		return "", repository.ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to get session key: %w", err)
	}
	return token, nil
}

// Delete removes the stored session key. Deleting an absent key is a no-op.
func (s *SessionStore) Delete(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM session_keys WHERE id = 1`); err != nil {
		return fmt.Errorf("failed to delete session key: %w", err)
	}
	return nil
}
