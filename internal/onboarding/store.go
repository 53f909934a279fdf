package onboarding

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/ziadkadry99/siteshell/internal/db"
)

// SeenKey is the storage key of the durable "modal already shown" flag.
const SeenKey = "hasSeenNotification"

// FlagStore persists the durable seen flag.
type FlagStore interface {
	Seen(ctx context.Context) (bool, error)
	MarkSeen(ctx context.Context) error
}

// Store keeps the seen flag in the local_storage table.
type Store struct {
	db *db.DB
}

// NewStore creates a Store backed by the given database.
func NewStore(database *db.DB) *Store {
	return &Store{db: database}
}

// Seen reports whether the flag has been written.
func (s *Store) Seen(ctx context.Context) (bool, error) {
	var value string
	err := s.db.QueryRowContext(ctx,
		`SELECT value FROM local_storage WHERE key = ?`, SeenKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("reading %s: %w", SeenKey, err)
	}
	return value == "true", nil
}

// MarkSeen writes the flag. Writing it again is harmless.
func (s *Store) MarkSeen(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO local_storage (key, value) VALUES (?, 'true')
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = datetime('now')`,
		SeenKey)
	if err != nil {
		return fmt.Errorf("writing %s: %w", SeenKey, err)
	}
	return nil
}

// MemoryStore is an in-process FlagStore that forgets on restart.
type MemoryStore struct {
	mu     sync.Mutex
	seen   bool
	writes int
}

// NewMemoryStore returns a MemoryStore with the flag preset to seen.
func NewMemoryStore(seen bool) *MemoryStore {
	return &MemoryStore{seen: seen}
}

func (m *MemoryStore) Seen(context.Context) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.seen, nil
}

func (m *MemoryStore) MarkSeen(context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.seen = true
	m.writes++
	return nil
}

// Writes returns how many times MarkSeen was called.
func (m *MemoryStore) Writes() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.writes
}
