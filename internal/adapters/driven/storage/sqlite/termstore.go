// Package sqlite provides the opt-in persistent term store. It is only
// used when terms.persist is enabled in the configuration; the default
// store is the in-memory one.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/texpilot/texpilot/internal/core/domain"
	"github.com/texpilot/texpilot/internal/core/ports/driven"
)

// Ensure TermStore implements the interface.
var _ driven.TermStore = (*TermStore)(nil)

const schema = `
CREATE TABLE IF NOT EXISTS terms (
	key       TEXT PRIMARY KEY,
	canonical TEXT NOT NULL
);`

// TermStore persists the canonical term table in a SQLite database so
// it survives process restarts.
type TermStore struct {
	mu   sync.Mutex
	db   *sql.DB
	path string
}

// NewTermStore opens (or creates) the term database in dataDir.
// If dataDir is empty, defaults to ~/.texpilot/data.
func NewTermStore(dataDir string) (*TermStore, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".texpilot", "data")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "terms.db")

	// WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &TermStore{db: db, path: dbPath}, nil
}

// Replace overwrites the stored table with the given one inside a
// single transaction.
func (s *TermStore) Replace(table domain.TermTable) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.Exec("DELETE FROM terms"); err != nil {
		return fmt.Errorf("clearing terms: %w", err)
	}

	for key, canonical := range table {
		if _, err := tx.Exec(
			"INSERT INTO terms (key, canonical) VALUES (?, ?)", key, canonical,
		); err != nil {
			return fmt.Errorf("inserting term %q: %w", key, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing terms: %w", err)
	}
	return nil
}

// Snapshot returns an independent copy of the stored table.
func (s *TermStore) Snapshot() (domain.TermTable, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows, err := s.db.Query("SELECT key, canonical FROM terms")
	if err != nil {
		return nil, fmt.Errorf("querying terms: %w", err)
	}
	defer rows.Close()

	table := domain.TermTable{}
	for rows.Next() {
		var key, canonical string
		if err := rows.Scan(&key, &canonical); err != nil {
			return nil, fmt.Errorf("scanning term row: %w", err)
		}
		table[key] = canonical
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating term rows: %w", err)
	}
	return table, nil
}

// Reset clears the stored table.
func (s *TermStore) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, err := s.db.Exec("DELETE FROM terms"); err != nil {
		return fmt.Errorf("clearing terms: %w", err)
	}
	return nil
}

// Close closes the database connection.
func (s *TermStore) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *TermStore) Path() string {
	return s.path
}
