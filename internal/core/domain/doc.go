// Package domain defines the core business entities for qrstamp.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - SheetMetadata: The five drawing fields embedded in a stamp
//   - Rect / PlacementSpec: Sheet outline and stamp footprint geometry
//   - Artifact: The rendered QR image for a canonical payload
//   - Sheet: A drawing sheet as exposed by the host document
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
