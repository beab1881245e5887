// Package driving defines the interfaces through which UIs call INTO core.
//
// These are the "driving" or "primary" ports in hexagonal architecture.
// Core services implement them; the CLI and TUI adapters depend on them.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driving
