package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmptyTopic indicates the search topic was empty or
	// whitespace-only. The pipeline does not run.
	ErrEmptyTopic = errors.New("topic is empty")

	// ErrProviderUnavailable indicates the search provider is not
	// configured. Searches are disabled without one.
	ErrProviderUnavailable = errors.New("search provider unavailable")

	// ErrStoreUnavailable indicates the result store is not
	// configured. Accepted results cannot be persisted.
	ErrStoreUnavailable = errors.New("result store unavailable")
)
