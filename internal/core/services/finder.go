package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/kidssmart-labs/edufind-cli/internal/core/domain"
	"github.com/kidssmart-labs/edufind-cli/internal/core/ports/driven"
	"github.com/kidssmart-labs/edufind-cli/internal/core/ports/driving"
	"github.com/kidssmart-labs/edufind-cli/internal/logger"
)

// Ensure Finder implements the interface.
var _ driving.FinderService = (*Finder)(nil)

// defaultMaxResults caps a run when the caller passes a non-positive
// maximum.
const defaultMaxResults = 8

// FetchMaxChars is the default bound on page text requested per hit.
// Overridable per finder via SetFetchMaxChars.
const FetchMaxChars = 1500

// Finder orchestrates the search-classify-filter pipeline:
// QueryBuilder -> SearchProvider (with fallback) -> PageFetcher ->
// classification -> filter application -> persistence.
type Finder struct {
	provider driven.SearchProvider
	fetcher  driven.PageFetcher
	store    driven.ResultStore

	fetchMaxChars int
}

// NewFinder creates a new finder service. The store may be nil, in
// which case accepted results are returned but not persisted.
func NewFinder(provider driven.SearchProvider, fetcher driven.PageFetcher, store driven.ResultStore) *Finder {
	return &Finder{
		provider:      provider,
		fetcher:       fetcher,
		store:         store,
		fetchMaxChars: FetchMaxChars,
	}
}

// SetFetchMaxChars overrides the per-hit page text bound. Non-positive
// values keep the current bound.
func (f *Finder) SetFetchMaxChars(n int) {
	if n > 0 {
		f.fetchMaxChars = n
	}
}

// Find runs the full pipeline for a topic. See driving.FinderService.
func (f *Finder) Find(
	ctx context.Context, topic string, filters domain.SearchFilters, maxResults int, progress driving.ProgressFunc,
) (*domain.SearchOutcome, error) {
	logger.Section("Finder Run")
	runID := uuid.New().String()
	logger.Debug("Run %s: topic=%q filters=%+v", runID, topic, filters)

	topic = strings.TrimSpace(topic)
	if topic == "" {
		return nil, domain.ErrEmptyTopic
	}
	if f.provider == nil {
		return nil, domain.ErrProviderUnavailable
	}
	if maxResults <= 0 {
		maxResults = defaultMaxResults
	}

	hits, query, err := f.searchWithFallback(ctx, topic, filters, maxResults)
	if err != nil {
		return nil, err
	}

	outcome := &domain.SearchOutcome{
		Query:     query,
		HitsFound: len(hits),
	}
	if len(hits) == 0 {
		logger.Info("Run %s: all query candidates returned empty", runID)
		return outcome, nil
	}
	logger.Info("Run %s: %d hits for query %q", runID, len(hits), query)

	for i, hit := range hits {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("pipeline cancelled: %w", err)
		}

		accepted := f.processHit(ctx, hit, filters)
		if accepted != nil {
			outcome.Accepted = append(outcome.Accepted, *accepted)
		}

		// Progress is emitted after every hit, accepted or not.
		if progress != nil {
			progress(i+1, len(hits))
		}
	}

	if err := f.persist(ctx, topic, outcome.Accepted); err != nil {
		return nil, err
	}

	logger.Info("Run %s: accepted %d of %d hits", runID, len(outcome.Accepted), len(hits))
	return outcome, nil
}

// searchWithFallback tries each query candidate in order and returns
// the hits of the first non-empty one. A failed candidate is logged
// and treated as empty.
func (f *Finder) searchWithFallback(
	ctx context.Context, topic string, filters domain.SearchFilters, maxResults int,
) ([]domain.SearchHit, string, error) {
	queries := BuildQueries(topic, filters)

	var lastQuery string
	for _, query := range queries {
		if err := ctx.Err(); err != nil {
			return nil, "", fmt.Errorf("search cancelled: %w", err)
		}
		lastQuery = query

		logger.Debug("Trying query candidate: %q", query)
		hits, err := f.provider.Search(ctx, query, maxResults)
		if err != nil {
			logger.Warn("Provider %s failed for %q: %v", f.provider.Name(), query, err)
			continue
		}
		if len(hits) > 0 {
			return hits, query, nil
		}
	}

	return nil, lastQuery, nil
}

// processHit enriches, validates, and classifies a single hit.
// Returns nil when the hit is discarded.
func (f *Finder) processHit(ctx context.Context, hit domain.SearchHit, filters domain.SearchFilters) *domain.ClassifiedResult {
	var pageText string
	if f.fetcher != nil {
		pageText = f.fetcher.Fetch(ctx, hit.Link, f.fetchMaxChars)
	}
	combined := fmt.Sprintf("%s %s %s", hit.Title, hit.Snippet, pageText)

	if !IsEducational(combined) {
		logger.Debug("Discarding %s: not educational", hit.Link)
		return nil
	}

	if !MatchesLocation(combined, filters.Country, filters.Region) {
		logger.Debug("Discarding %s: location mismatch", hit.Link)
		return nil
	}

	typ := ClassifyType(combined)
	mode := ClassifyMode(combined)
	cost := ClassifyCost(combined)

	if filters.Type != domain.TypeAny && typ != filters.Type {
		logger.Debug("Discarding %s: type %s != %s", hit.Link, typ, filters.Type)
		return nil
	}
	if filters.Mode != domain.ModeAny && mode != filters.Mode {
		logger.Debug("Discarding %s: mode %s != %s", hit.Link, mode, filters.Mode)
		return nil
	}
	if filters.Cost != domain.CostAny && cost != filters.Cost {
		logger.Debug("Discarding %s: cost %s != %s", hit.Link, cost, filters.Cost)
		return nil
	}

	result := domain.NewClassifiedResult(hit, combined, pageText, typ, mode, cost, filters.Country, filters.Region)
	return &result
}

// persist saves accepted results in provider order. A nil store skips
// persistence.
func (f *Finder) persist(ctx context.Context, topic string, accepted []domain.ClassifiedResult) error {
	if f.store == nil || len(accepted) == 0 {
		return nil
	}

	for _, r := range accepted {
		id, err := f.store.Save(ctx, topic, r.Title, r.Link, r.Content())
		if err != nil {
			return fmt.Errorf("saving result %q: %w", r.Link, err)
		}
		logger.Debug("Saved result %d: %s", id, r.Link)
	}
	return nil
}

// Saved returns persisted results, most recent first.
func (f *Finder) Saved(ctx context.Context, limit int) ([]domain.StoredRow, error) {
	if f.store == nil {
		return nil, domain.ErrStoreUnavailable
	}
	return f.store.List(ctx, limit)
}

// Export writes all persisted results to w as CSV.
func (f *Finder) Export(ctx context.Context, w io.Writer) error {
	if f.store == nil {
		return domain.ErrStoreUnavailable
	}

	rows, err := f.store.List(ctx, 0)
	if err != nil {
		return fmt.Errorf("listing results: %w", err)
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"ID", "Query", "Title", "Link", "Content"}); err != nil {
		return fmt.Errorf("writing CSV header: %w", err)
	}
	for _, row := range rows {
		record := []string{
			strconv.FormatInt(row.ID, 10),
			row.Query,
			row.Title,
			row.Link,
			row.Content,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing CSV row %d: %w", row.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
