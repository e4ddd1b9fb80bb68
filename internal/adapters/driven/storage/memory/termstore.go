// Package memory provides in-memory implementations of the driven
// storage ports. The in-memory term store is the default: the canonical
// table lives only for the process lifetime.
package memory

import (
	"sync"

	"github.com/texpilot/texpilot/internal/core/domain"
	"github.com/texpilot/texpilot/internal/core/ports/driven"
)

// Ensure TermStore implements the interface.
var _ driven.TermStore = (*TermStore)(nil)

// TermStore is an in-memory implementation of driven.TermStore.
// It starts empty and is mutated only by explicit Replace/Reset calls.
type TermStore struct {
	mu    sync.RWMutex
	table domain.TermTable
}

// NewTermStore creates a new empty in-memory term store.
func NewTermStore() *TermStore {
	return &TermStore{table: domain.TermTable{}}
}

// Replace overwrites the stored table with the given one.
func (s *TermStore) Replace(table domain.TermTable) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.table = table.Clone()
	if s.table == nil {
		s.table = domain.TermTable{}
	}
	return nil
}

// Snapshot returns an independent copy of the stored table.
func (s *TermStore) Snapshot() (domain.TermTable, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.table.Clone(), nil
}

// Reset clears the stored table.
func (s *TermStore) Reset() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.table = domain.TermTable{}
	return nil
}

// Close is a no-op for the in-memory store.
func (s *TermStore) Close() error {
	return nil
}
