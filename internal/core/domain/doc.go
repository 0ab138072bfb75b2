// Package domain defines the core business entities for EduFind.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - SearchFilters: User preferences for a search run
//   - SearchHit: A raw search-engine result before enrichment
//   - ClassifiedResult: A hit that survived all validation checks
//   - StoredRow: A persisted result as the store returns it
//   - SearchOutcome: The terminal state of a pipeline run
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
//
// # Import Rules
//
//   - Can Import: Standard library only
//   - Cannot Import: Any internal/ package, any external dependency
package domain
