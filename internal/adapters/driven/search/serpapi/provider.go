// Package serpapi implements driven.SearchProvider against the SerpAPI
// JSON search endpoint using its Google engine.
package serpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"golang.org/x/time/rate"

	"github.com/kidssmart-labs/edufind-cli/internal/core/domain"
	"github.com/kidssmart-labs/edufind-cli/internal/core/ports/driven"
	"github.com/kidssmart-labs/edufind-cli/internal/logger"
)

// Ensure Provider implements the interface.
var _ driven.SearchProvider = (*Provider)(nil)

const (
	defaultBaseURL = "https://serpapi.com/search"
	defaultEngine  = "google"

	// SerpAPI free tier allows roughly 100 searches per hour; one
	// request per second with small bursts stays well inside that.
	requestsPerSecond = 1
	requestBurst      = 3
)

// Config carries the provider settings. Credentials are passed in
// explicitly at construction; there is no ambient global state.
type Config struct {
	// APIKey is the SerpAPI key. Required.
	APIKey string

	// Engine selects the SerpAPI engine. Defaults to "google".
	Engine string

	// BaseURL overrides the API endpoint. Useful for testing.
	BaseURL string

	// Timeout bounds each search request. Defaults to 30s.
	Timeout time.Duration
}

// Provider queries SerpAPI and maps organic results to domain hits.
type Provider struct {
	cfg     Config
	client  *http.Client
	limiter *rate.Limiter
}

// New creates a new SerpAPI search provider.
func New(cfg Config) *Provider {
	if cfg.Engine == "" {
		cfg.Engine = defaultEngine
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &Provider{
		cfg:     cfg,
		client:  &http.Client{Timeout: cfg.Timeout},
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), requestBurst),
	}
}

// Name returns the provider identifier.
func (p *Provider) Name() string {
	return "serpapi/" + p.cfg.Engine
}

// searchResponse is the subset of the SerpAPI payload we consume.
type searchResponse struct {
	OrganicResults []organicResult `json:"organic_results"`
	Error          string          `json:"error"`
}

type organicResult struct {
	Title   string `json:"title"`
	Link    string `json:"link"`
	Snippet string `json:"snippet"`
}

// Search runs one query and returns at most maxResults hits.
func (p *Provider) Search(ctx context.Context, query string, maxResults int) ([]domain.SearchHit, error) {
	if p.cfg.APIKey == "" {
		return nil, fmt.Errorf("%w: missing API key", domain.ErrProviderUnavailable)
	}

	if err := p.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	params := url.Values{}
	params.Set("engine", p.cfg.Engine)
	params.Set("q", query)
	params.Set("num", strconv.Itoa(maxResults))
	params.Set("api_key", p.cfg.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.cfg.BaseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("building search request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("search request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search returned status %d", resp.StatusCode)
	}

	var payload searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decoding search response: %w", err)
	}
	if payload.Error != "" {
		return nil, fmt.Errorf("search API error: %s", payload.Error)
	}

	hits := make([]domain.SearchHit, 0, len(payload.OrganicResults))
	for _, r := range payload.OrganicResults {
		if r.Link == "" {
			// A hit without a link is unusable downstream.
			continue
		}
		hits = append(hits, domain.SearchHit{
			Title:   r.Title,
			Link:    r.Link,
			Snippet: r.Snippet,
		})
		if len(hits) == maxResults {
			break
		}
	}

	logger.Debug("SerpAPI returned %d organic results, kept %d", len(payload.OrganicResults), len(hits))
	return hits, nil
}
