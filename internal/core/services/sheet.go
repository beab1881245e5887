package services

import (
	"context"
	"time"

	"github.com/caddraft/qrstamp-cli/internal/core/domain"
	"github.com/caddraft/qrstamp-cli/internal/core/ports/driven"
	"github.com/caddraft/qrstamp-cli/internal/core/ports/driving"
)

// Ensure SheetService implements the interface.
var _ driving.SheetService = (*SheetService)(nil)

// SheetService reads sheets and extracts stamp metadata from their
// built-in attributes.
type SheetService struct {
	host driven.HostDocument
	log  driven.Logger
	now  func() time.Time
}

// NewSheetService creates a new sheet service. log may be nil.
func NewSheetService(host driven.HostDocument, log driven.Logger) *SheetService {
	if log == nil {
		log = nopLogger{}
	}
	return &SheetService{host: host, log: log, now: time.Now}
}

// Active returns the sheet currently open in the host.
func (s *SheetService) Active(ctx context.Context) (*domain.Sheet, error) {
	return s.host.ActiveSheet(ctx)
}

// Extract builds metadata from the sheet's built-in attributes. Missing or
// unreadable attributes fall back to empty strings so the user can fill
// the gaps by hand; an empty issue date falls back to today.
func (s *SheetService) Extract(ctx context.Context, sheetID string) (domain.SheetMetadata, error) {
	if _, err := s.host.Sheet(ctx, sheetID); err != nil {
		return domain.SheetMetadata{}, err
	}

	meta := domain.SheetMetadata{
		Name:      s.attribute(ctx, sheetID, domain.AttrSheetNumber),
		SheetName: s.attribute(ctx, sheetID, domain.AttrSheetName),
		Revision:  s.attribute(ctx, sheetID, domain.AttrCurrentRevision),
		Date:      s.attribute(ctx, sheetID, domain.AttrIssueDate),
		CheckedBy: s.attribute(ctx, sheetID, domain.AttrCheckedBy),
	}
	if meta.Date == "" {
		meta.Date = s.now().Format(domain.DateLayoutLong)
	}

	s.log.Info("extracted metadata from sheet %s (drawing %q)", sheetID, meta.Name)
	return meta, nil
}

// attribute reads one attribute, degrading to empty on read failure.
func (s *SheetService) attribute(ctx context.Context, sheetID, name string) string {
	value, err := s.host.SheetAttribute(ctx, sheetID, name)
	if err != nil {
		s.log.Warn("reading attribute %q on sheet %s: %v", name, sheetID, err)
		return ""
	}
	return value
}
