// Package memory provides in-memory store implementations for testing.
package memory

import (
	"context"
	"sync"
	"time"

	"github.com/kidssmart-labs/edufind-cli/internal/core/domain"
	"github.com/kidssmart-labs/edufind-cli/internal/core/ports/driven"
)

// Ensure ResultStore implements the interface.
var _ driven.ResultStore = (*ResultStore)(nil)

// ResultStore is an in-memory implementation of driven.ResultStore.
// Append-only, like its SQLite counterpart.
type ResultStore struct {
	mu     sync.RWMutex
	rows   []domain.StoredRow
	nextID int64
}

// NewResultStore creates a new in-memory result store.
func NewResultStore() *ResultStore {
	return &ResultStore{nextID: 1}
}

// Save appends a new row and returns its assigned ID.
func (s *ResultStore) Save(_ context.Context, query, title, link, content string) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row := domain.StoredRow{
		ID:        s.nextID,
		Query:     query,
		Title:     title,
		Link:      link,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
	s.nextID++
	s.rows = append(s.rows, row)
	return row.ID, nil
}

// List returns stored rows, most recently inserted first.
func (s *ResultStore) List(_ context.Context, limit int) ([]domain.StoredRow, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.StoredRow, 0, len(s.rows))
	for i := len(s.rows) - 1; i >= 0; i-- {
		out = append(out, s.rows[i])
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

// Close releases resources. No-op for the in-memory store.
func (s *ResultStore) Close() error {
	return nil
}
