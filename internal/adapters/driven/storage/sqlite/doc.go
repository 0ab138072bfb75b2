// Package sqlite provides the SQLite-backed result store.
//
// The store is an append-only log: rows are inserted with an
// auto-incrementing ID and never updated or deleted. Schema setup runs
// through embedded, versioned migrations, so initialisation is
// idempotent.
package sqlite
