package domain

import "time"

// StoredRow is a persisted result as the store returns it. Rows are
// immutable after creation; the store never updates or deletes them.
type StoredRow struct {
	// ID is assigned by the store, strictly increasing in insertion
	// order.
	ID int64

	// Query is the topic string the search was run for.
	Query string

	// Title is the accepted result's title.
	Title string

	// Link is the accepted result's URL.
	Link string

	// Content is the tag block plus truncated raw text. Parse with
	// ParseContentTags.
	Content string

	// CreatedAt records when the row was inserted.
	CreatedAt time.Time
}
