// Package driving defines the interfaces that outer surfaces call IN through.
//
// These are the "driving" or "primary" ports in hexagonal architecture.
// The CLI depends on these interfaces, and core services implement them.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or service package
package driving
