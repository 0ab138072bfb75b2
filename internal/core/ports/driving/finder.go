package driving

import (
	"context"
	"io"

	"github.com/kidssmart-labs/edufind-cli/internal/core/domain"
)

// ProgressFunc is invoked after each hit is processed, accepted or not.
// processed counts hits handled so far, total is the number of hits the
// search returned. May be nil.
type ProgressFunc func(processed, total int)

// FinderService is the primary port for the search-classify-filter
// pipeline and the saved-result views over it.
type FinderService interface {
	// Find runs the full pipeline for a topic: build query
	// candidates, search with location relaxation, enrich each hit
	// with page text, classify, filter, persist accepted results.
	// An empty or whitespace-only topic returns domain.ErrEmptyTopic
	// without running a search. A run that finds nothing is a normal
	// outcome, not an error; inspect the returned SearchOutcome.
	Find(ctx context.Context, topic string, filters domain.SearchFilters, maxResults int, progress ProgressFunc) (*domain.SearchOutcome, error)

	// Saved returns persisted results, most recent first.
	// A limit of 0 returns all rows.
	Saved(ctx context.Context, limit int) ([]domain.StoredRow, error)

	// Export writes all persisted results to w as CSV with the
	// header row ID,Query,Title,Link,Content.
	Export(ctx context.Context, w io.Writer) error
}
