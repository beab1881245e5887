package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/caddraft/qrstamp-cli/internal/core/domain"
	"github.com/caddraft/qrstamp-cli/internal/core/ports/driven"
	"github.com/caddraft/qrstamp-cli/internal/core/ports/driving"
)

// Ensure StampService implements the interface.
var _ driving.StampService = (*StampService)(nil)

// transactionName labels the host transaction that imports and places the
// stamp. Hosts surface it in their undo history.
const transactionName = "Place QR stamp"

// StampService runs the metadata -> payload -> artifact -> placement
// pipeline. Rendering, host mutation and file I/O all happen behind driven
// ports; the service owns ordering, error classification and temp-file
// lifetime.
type StampService struct {
	renderer driven.QRRenderer
	host     driven.HostDocument
	store    driven.ArtifactStore
	planner  *Planner
	settings driving.SettingsService
	log      driven.Logger
}

// NewStampService creates a new stamp service. settings may be nil, in
// which case defaults apply; log may be nil to discard diagnostics.
func NewStampService(
	renderer driven.QRRenderer,
	host driven.HostDocument,
	store driven.ArtifactStore,
	planner *Planner,
	settings driving.SettingsService,
	log driven.Logger,
) *StampService {
	if planner == nil {
		planner = NewPlanner()
	}
	if log == nil {
		log = nopLogger{}
	}
	return &StampService{
		renderer: renderer,
		host:     host,
		store:    store,
		planner:  planner,
		settings: settings,
		log:      log,
	}
}

// Validate checks the metadata fields in schema order.
func (s *StampService) Validate(meta domain.SheetMetadata) error {
	return ValidateMetadata(meta)
}

// Payload validates the metadata and returns its canonical text.
func (s *StampService) Payload(meta domain.SheetMetadata) (string, error) {
	if err := ValidateMetadata(meta); err != nil {
		return "", err
	}
	return EncodePayload(meta)
}

// Generate validates, encodes and renders the metadata into a PNG artifact.
func (s *StampService) Generate(ctx context.Context, meta domain.SheetMetadata) (*domain.Artifact, error) {
	payload, err := s.Payload(meta)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(payload) == "" {
		return nil, domain.ErrEmptyPayload
	}

	render := s.renderSettings()
	png, err := s.renderer.Render(payload, render.ECC, render.SizePx)
	if err != nil {
		return nil, fmt.Errorf("rendering payload: %w", err)
	}

	s.log.Info("rendered %d byte stamp for drawing %s", len(png), meta.Name)
	return &domain.Artifact{Payload: payload, PNG: png, SizePx: render.SizePx}, nil
}

// Preview validates and encodes the metadata and returns a terminal block
// rendering of the symbol.
func (s *StampService) Preview(_ context.Context, meta domain.SheetMetadata) (string, error) {
	payload, err := s.Payload(meta)
	if err != nil {
		return "", err
	}
	blocks, err := s.renderer.RenderBlocks(payload, s.renderSettings().ECC)
	if err != nil {
		return "", fmt.Errorf("rendering preview: %w", err)
	}
	return blocks, nil
}

// SaveTo generates the artifact and writes its PNG bytes to path.
func (s *StampService) SaveTo(ctx context.Context, meta domain.SheetMetadata, path string) error {
	artifact, err := s.Generate(ctx, meta)
	if err != nil {
		return err
	}
	if err := s.store.WriteFile(path, artifact.PNG); err != nil {
		return fmt.Errorf("saving stamp to %s: %w", path, err)
	}
	s.log.Info("saved stamp for drawing %s to %s", meta.Name, path)
	return nil
}

// Stamp generates the artifact, plans its placement and inserts it into
// the host document. Import and placement run inside one host transaction:
// a failure at either step rolls the document back to its prior state. The
// temp file backing the import is removed on every exit path.
func (s *StampService) Stamp(ctx context.Context, meta domain.SheetMetadata, sheetID string, policy domain.PlacementPolicy) (*driving.StampResult, error) {
	artifact, err := s.Generate(ctx, meta)
	if err != nil {
		return nil, err
	}

	sheet, err := s.host.Sheet(ctx, sheetID)
	if err != nil {
		return nil, fmt.Errorf("looking up sheet %s: %w", sheetID, err)
	}

	spec, err := s.planner.Plan(sheet.Outline, policy)
	if err != nil {
		return nil, err
	}

	path, cleanup, err := s.store.WriteTemp(artifact.PNG)
	if err != nil {
		return nil, fmt.Errorf("staging stamp image: %w", err)
	}
	defer cleanup()

	var instance domain.ImageInstanceID
	err = s.host.RunTransaction(ctx, transactionName, func(tx driven.HostTransaction) error {
		typeID, err := tx.ImportImage(path)
		if err != nil {
			return fmt.Errorf("importing image: %w", err)
		}
		instance, err = tx.PlaceImage(typeID, sheet.ID, spec)
		if err != nil {
			return fmt.Errorf("placing image: %w", err)
		}
		return nil
	})
	if err != nil {
		s.log.Error("stamp transaction failed on sheet %s: %v", sheet.ID, err)
		return nil, errors.Join(domain.ErrHostInsertion, err)
	}

	s.log.Info("placed stamp %s on sheet %s at (%.3f, %.3f)",
		instance, sheet.ID, spec.Anchor.X, spec.Anchor.Y)
	return &driving.StampResult{
		Instance: instance,
		Spec:     spec,
		Payload:  artifact.Payload,
	}, nil
}

// renderSettings resolves the render configuration, falling back to
// defaults when no settings service is wired or it fails.
func (s *StampService) renderSettings() domain.RenderSettings {
	if s.settings == nil {
		return DefaultAppSettings().Render
	}
	settings, err := s.settings.Get()
	if err != nil || settings == nil {
		return DefaultAppSettings().Render
	}
	return settings.Render
}

// DefaultAppSettings re-exports the domain defaults for callers that hold
// only a services import.
func DefaultAppSettings() *domain.AppSettings {
	return domain.DefaultAppSettings()
}

// nopLogger discards all diagnostics.
type nopLogger struct{}

func (nopLogger) Info(string, ...any)  {}
func (nopLogger) Warn(string, ...any)  {}
func (nopLogger) Error(string, ...any) {}
