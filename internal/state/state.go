// Package state persists per-page content hashes between runs so the
// pipeline can tell rewritten pages from unchanged ones.
package state

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"sync"

	_ "modernc.org/sqlite"
)

// Store is a SQLite-backed page-hash store.
// Use ":memory:" for an in-memory database, or a file path for
// persistent storage.
type Store struct {
	db *sql.DB
	mu sync.Mutex
}

// Open opens (and initializes) the store at dbPath.
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open state database: %w", err)
	}
	s := &Store{db: db}
	if err := s.initialize(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize state schema: %w", err)
	}
	return s, nil
}

func (s *Store) initialize() error {
	schema := `
	CREATE TABLE IF NOT EXISTS pages (
		path TEXT PRIMARY KEY,
		hash TEXT NOT NULL,
		updated_at INTEGER NOT NULL DEFAULT (strftime('%s','now'))
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Close closes the underlying database.
func (s *Store) Close() error { return s.db.Close() }

// Hash returns the content hash used by the store.
func Hash(content []byte) string {
	sum := sha256.Sum256(content)
	return hex.EncodeToString(sum[:])
}

// Unchanged reports whether path already holds content with this hash.
func (s *Store) Unchanged(path, hash string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var stored string
	err := s.db.QueryRow(`SELECT hash FROM pages WHERE path = ?`, path).Scan(&stored)
	switch {
	case err == sql.ErrNoRows:
		return false, nil
	case err != nil:
		return false, fmt.Errorf("query page hash: %w", err)
	}
	return stored == hash, nil
}

// Record stores the hash for path, replacing any previous value.
func (s *Store) Record(path, hash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, err := s.db.Exec(`
		INSERT INTO pages (path, hash) VALUES (?, ?)
		ON CONFLICT(path) DO UPDATE SET hash = excluded.hash, updated_at = strftime('%s','now')`,
		path, hash)
	if err != nil {
		return fmt.Errorf("record page hash: %w", err)
	}
	return nil
}
