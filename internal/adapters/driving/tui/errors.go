package tui

import "errors"

// ErrMissingStampService is returned when the stamp service is not provided.
var ErrMissingStampService = errors.New("tui: stamp service is required")

// ErrMissingSheetService is returned when the sheet service is not provided.
var ErrMissingSheetService = errors.New("tui: sheet service is required")

// ErrMissingSettingsService is returned when the settings service is not provided.
var ErrMissingSettingsService = errors.New("tui: settings service is required")
