package driven

import (
	"context"

	"github.com/kidssmart-labs/edufind-cli/internal/core/domain"
)

// SearchProvider runs a web search for a single query string.
// Backed by a search-API client (e.g. SerpAPI's Google engine).
type SearchProvider interface {
	// Name returns the provider identifier for logs and messages.
	Name() string

	// Search returns at most maxResults hits for the query, in
	// provider ranking order. A transport or API failure returns an
	// error; callers treat a failed candidate as an empty result and
	// move on to the next fallback query.
	Search(ctx context.Context, query string, maxResults int) ([]domain.SearchHit, error)
}
