// Package file provides a TOML-backed implementation of the
// driven.ConfigStore port.
//
// Configuration lives in ~/.edufind/config.toml by default. Nested
// tables are flattened into dot-notation keys; the keys EduFind uses
// are:
//
//	serpapi.api_key       SerpAPI key (required for searching)
//	serpapi.engine        SerpAPI engine, defaults to "google"
//	search.max_results    default result cap for a run
//	fetch.timeout_seconds per-page fetch timeout
//	fetch.max_chars       page text bound per hit
//	fetch.user_agent      User-Agent header for page fetches
//	verbose               enable verbose logging without --verbose
package file
