package driving

import (
	"context"

	"github.com/caddraft/qrstamp-cli/internal/core/domain"
)

// StampResult reports a completed host insertion.
type StampResult struct {
	// Instance is the handle of the placed image element, usable by the
	// caller to select it in the host UI.
	Instance domain.ImageInstanceID

	// Spec is the footprint the stamp was placed at.
	Spec domain.PlacementSpec

	// Payload is the canonical text the placed symbol encodes.
	Payload string
}

// StampService runs the metadata -> payload -> artifact pipeline.
// Each call is stateless and synchronous; every error is terminal for the
// operation that raised it.
type StampService interface {
	// Validate checks the metadata fields in schema order and returns a
	// *domain.FieldError for the first failure, or nil.
	Validate(meta domain.SheetMetadata) error

	// Payload validates the metadata and returns its canonical text.
	Payload(meta domain.SheetMetadata) (string, error)

	// Generate validates, encodes and renders the metadata into a PNG
	// artifact held in memory.
	Generate(ctx context.Context, meta domain.SheetMetadata) (*domain.Artifact, error)

	// Preview validates and encodes the metadata and returns a terminal
	// block rendering of the symbol, for inline display.
	Preview(ctx context.Context, meta domain.SheetMetadata) (string, error)

	// SaveTo generates the artifact and writes its PNG bytes to path.
	SaveTo(ctx context.Context, meta domain.SheetMetadata, path string) error

	// Stamp generates the artifact, plans its placement on the given
	// sheet under the policy, and inserts it into the host document as
	// one atomic transaction.
	Stamp(ctx context.Context, meta domain.SheetMetadata, sheetID string, policy domain.PlacementPolicy) (*StampResult, error)
}
