package domain

// SearchHit is a single search-engine result entry before enrichment.
// Hits are immutable once created.
type SearchHit struct {
	// Title is the result's display title.
	Title string

	// Link is the result URL. Providers must never emit a hit with
	// an empty link.
	Link string

	// Snippet is the search engine's summary text. May be empty.
	Snippet string
}
