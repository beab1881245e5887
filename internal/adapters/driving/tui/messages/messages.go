// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and command results flowing through the Elm
// architecture.
package messages

import (
	"github.com/caddraft/qrstamp-cli/internal/core/domain"
	"github.com/caddraft/qrstamp-cli/internal/core/ports/driving"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewForm is the metadata form and preview view.
	ViewForm ViewType = iota
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewForm:
		return "form"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// MetadataExtracted carries metadata read from the active sheet.
type MetadataExtracted struct {
	Sheet *domain.Sheet
	Meta  domain.SheetMetadata
	Err   error
}

// PreviewReady carries the terminal block rendering of the QR code.
type PreviewReady struct {
	Blocks string
	Err    error
}

// StampPlaced signals a host insertion completed.
type StampPlaced struct {
	SheetID string
	Result  *driving.StampResult
	Err     error
}

// FileSaved signals the PNG was written to disk.
type FileSaved struct {
	Path string
	Err  error
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}
