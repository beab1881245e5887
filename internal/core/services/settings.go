package services

import (
	"github.com/caddraft/qrstamp-cli/internal/core/domain"
	"github.com/caddraft/qrstamp-cli/internal/core/ports/driven"
	"github.com/caddraft/qrstamp-cli/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Configuration keys in the config store.
const (
	keyRenderSizePx    = "render.size_px"
	keyRenderECC       = "render.ecc"
	keyPlacementPolicy = "placement.policy"
	keyOutputDir       = "output.dir"
)

// SettingsService maps raw config-store keys to typed application
// settings. Missing or invalid stored values fall back to the defaults
// rather than failing.
type SettingsService struct {
	store driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(store driven.ConfigStore) *SettingsService {
	return &SettingsService{store: store}
}

// Get returns current settings with defaults applied.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	settings := domain.DefaultAppSettings()
	if s.store == nil {
		return settings, nil
	}

	if size := s.store.GetInt(keyRenderSizePx); size > 0 {
		settings.Render.SizePx = size
	}
	if ecc := domain.ECCLevel(s.store.GetString(keyRenderECC)); ecc.IsValid() {
		settings.Render.ECC = ecc
	}
	if policy, err := domain.ParsePlacementPolicy(s.store.GetString(keyPlacementPolicy)); err == nil {
		settings.Placement.Policy = policy
	}
	settings.Output.Dir = s.store.GetString(keyOutputDir)

	return settings, nil
}

// Save persists the given settings to the config store.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := s.store.Set(keyRenderSizePx, settings.Render.SizePx); err != nil {
		return err
	}
	if err := s.store.Set(keyRenderECC, settings.Render.ECC.String()); err != nil {
		return err
	}
	if err := s.store.Set(keyPlacementPolicy, settings.Placement.Policy.String()); err != nil {
		return err
	}
	if err := s.store.Set(keyOutputDir, settings.Output.Dir); err != nil {
		return err
	}
	return s.store.Save()
}
