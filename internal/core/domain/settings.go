package domain

// ECCLevel is the QR error-correction level, trading redundancy for data
// capacity.
type ECCLevel string

// Available error-correction levels.
const (
	// ECCLow tolerates ~7% symbol damage.
	ECCLow ECCLevel = "L"

	// ECCMedium tolerates ~15% symbol damage.
	ECCMedium ECCLevel = "M"

	// ECCQuartile tolerates ~25% symbol damage. The default: drawing
	// prints get handled, folded and scribbled on.
	ECCQuartile ECCLevel = "Q"

	// ECCHigh tolerates ~30% symbol damage.
	ECCHigh ECCLevel = "H"
)

// IsValid returns true if the level is recognised.
func (l ECCLevel) IsValid() bool {
	switch l {
	case ECCLow, ECCMedium, ECCQuartile, ECCHigh:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (l ECCLevel) String() string {
	return string(l)
}

// RenderSettings holds QR raster output configuration.
type RenderSettings struct {
	// SizePx is the square pixel size of the rendered PNG.
	SizePx int

	// ECC is the error-correction level.
	ECC ECCLevel
}

// PlacementSettings holds stamp placement configuration.
type PlacementSettings struct {
	// Policy selects how the anchor point is chosen.
	Policy PlacementPolicy
}

// OutputSettings holds file output configuration.
type OutputSettings struct {
	// Dir is the default directory for saved PNG files.
	// Empty means the current working directory.
	Dir string
}

// AppSettings aggregates all user-configurable settings.
type AppSettings struct {
	Render    RenderSettings
	Placement PlacementSettings
	Output    OutputSettings
}

// DefaultAppSettings returns the defaults applied when configuration is
// absent or invalid: 300x300 px at quartile correction, quadrant-offset
// placement.
func DefaultAppSettings() *AppSettings {
	return &AppSettings{
		Render: RenderSettings{
			SizePx: 300,
			ECC:    ECCQuartile,
		},
		Placement: PlacementSettings{
			Policy: PolicyQuadrantOffset,
		},
		Output: OutputSettings{},
	}
}
