package driving

import "github.com/caddraft/qrstamp-cli/internal/core/domain"

// SettingsService manages user-configurable application settings.
type SettingsService interface {
	// Get returns current settings, falling back to defaults for missing
	// or invalid stored values.
	Get() (*domain.AppSettings, error)

	// Save persists the given settings.
	Save(settings *domain.AppSettings) error
}
