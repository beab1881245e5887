// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - QRRenderer: Renders canonical payload text into a PNG raster
//   - HostDocument: Sheet queries and transactional document mutation
//   - ArtifactStore: Temp-file and save-path persistence of PNG bytes
//   - ConfigStore: Application configuration
//   - Logger: Operation diagnostics, injected rather than global
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
