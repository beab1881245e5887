// Package tui provides an interactive terminal user interface for qrstamp.
// It implements a driving adapter following hexagonal architecture
// principles.
package tui

import (
	"github.com/caddraft/qrstamp-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Stamp runs the metadata -> payload -> artifact pipeline.
	Stamp driving.StampService

	// Sheet reads sheets and their attributes from the host.
	Sheet driving.SheetService

	// Settings manages application settings.
	Settings driving.SettingsService
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Stamp == nil {
		return ErrMissingStampService
	}
	if p.Sheet == nil {
		return ErrMissingSheetService
	}
	if p.Settings == nil {
		return ErrMissingSettingsService
	}
	return nil
}
