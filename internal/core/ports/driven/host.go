package driven

import (
	"context"

	"github.com/caddraft/qrstamp-cli/internal/core/domain"
)

// HostDocument is the boundary to the host CAD application's document API.
// The host owns element identity, geometry units and mutation semantics;
// this port exposes only what the stamping pipeline needs: sheet lookup,
// attribute reads and a transactional mutation scope.
type HostDocument interface {
	// ActiveSheet returns the sheet currently open in the host, or
	// domain.ErrSheetNotFound when no sheet is active.
	ActiveSheet(ctx context.Context) (*domain.Sheet, error)

	// Sheet returns the sheet with the given ID, or
	// domain.ErrSheetNotFound.
	Sheet(ctx context.Context, id string) (*domain.Sheet, error)

	// SheetAttribute reads a named attribute from a sheet. Missing or
	// unreadable attributes return an empty string with a nil error;
	// only host communication failures are errors.
	SheetAttribute(ctx context.Context, sheetID, name string) (string, error)

	// RunTransaction executes fn inside a single named host transaction.
	// If fn returns an error the transaction is rolled back in full and
	// the error is returned; otherwise every mutation made through the
	// HostTransaction commits atomically. No retry is attempted.
	RunTransaction(ctx context.Context, name string, fn func(tx HostTransaction) error) error
}

// HostTransaction is the mutation surface available inside
// HostDocument.RunTransaction. Both steps of an insert must go through
// the same transaction so a failure at either leaves the document
// untouched.
type HostTransaction interface {
	// ImportImage imports the PNG at path as a new image-type resource.
	ImportImage(path string) (domain.ImageTypeID, error)

	// PlaceImage places an instance of an imported image type on a sheet
	// at the given footprint and returns its handle.
	PlaceImage(typeID domain.ImageTypeID, sheetID string, spec domain.PlacementSpec) (domain.ImageInstanceID, error)
}
