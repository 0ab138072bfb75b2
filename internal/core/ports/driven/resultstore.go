package driven

import (
	"context"

	"github.com/kidssmart-labs/edufind-cli/internal/core/domain"
)

// ResultStore persists accepted results.
// Backed by SQLite; an append-only log keyed by an auto-incrementing ID.
type ResultStore interface {
	// Save appends a new row and returns its assigned ID. IDs are
	// strictly increasing in assignment order. Existing rows are
	// never updated.
	Save(ctx context.Context, query, title, link, content string) (int64, error)

	// List returns stored rows, most recently inserted first.
	// A limit of 0 returns all rows.
	List(ctx context.Context, limit int) ([]domain.StoredRow, error)

	// Close releases resources.
	Close() error
}
