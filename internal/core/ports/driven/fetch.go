package driven

import "context"

// PageFetcher retrieves a page's visible text for hit enrichment.
type PageFetcher interface {
	// Fetch returns the page's extracted text truncated to maxChars.
	// It never returns an error: any failure (transport, timeout,
	// bad status, unparseable body) yields a placeholder string of
	// the form "(scrape error: <details>)" so the pipeline can keep
	// processing the hit.
	Fetch(ctx context.Context, url string, maxChars int) string
}
