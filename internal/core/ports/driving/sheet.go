package driving

import (
	"context"

	"github.com/caddraft/qrstamp-cli/internal/core/domain"
)

// SheetService reads sheets and their attributes from the host document.
type SheetService interface {
	// Active returns the sheet currently open in the host.
	Active(ctx context.Context) (*domain.Sheet, error)

	// Extract builds metadata from the sheet's built-in attributes.
	// Missing attributes come back as empty strings; the date falls back
	// to today when the sheet carries none.
	Extract(ctx context.Context, sheetID string) (domain.SheetMetadata, error)
}
