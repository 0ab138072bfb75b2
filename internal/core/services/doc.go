// Package services implements the core pipeline logic for EduFind.
//
// It contains the pure classification and query-building functions plus
// the Finder service that composes them with the driven ports
// (SearchProvider, PageFetcher, ResultStore) into the
// search-classify-filter pipeline.
//
// # Import Rules
//
//   - Can Import: domain, ports, logger
//   - Cannot Import: Any adapter package
package services
