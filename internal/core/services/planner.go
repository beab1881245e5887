package services

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/caddraft/qrstamp-cli/internal/core/domain"
)

// defaultCornerMarginFeet insets the DefaultCorner anchor from the sheet
// edge.
const defaultCornerMarginFeet = 0.25

// RandomSafeZone band, in feet from the sheet origin. The band is a fixed
// heuristic that does not scale with sheet size; clamping keeps the stamp
// on small sheets.
const (
	safeZoneMinX = 0.5
	safeZoneMaxX = 2.0
	safeZoneMinY = 0.3
	safeZoneMaxY = 1.3
)

// Planner computes where a stamp lands on a sheet outline. It performs no
// I/O; randomness is confined to the injected source so plans are
// reproducible in tests.
type Planner struct {
	rng *rand.Rand
}

// NewPlanner returns a planner with a time-seeded random source.
func NewPlanner() *Planner {
	return NewPlannerWithRand(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewPlannerWithRand returns a planner using the given random source.
func NewPlannerWithRand(rng *rand.Rand) *Planner {
	return &Planner{rng: rng}
}

// Plan computes the stamp footprint for the outline under the policy.
// The anchor is clamped so the footprint stays inside the outline whenever
// the outline can contain it; on outlines smaller than the footprint the
// anchor pins to the sheet origin.
func (p *Planner) Plan(outline domain.Rect, policy domain.PlacementPolicy) (domain.PlacementSpec, error) {
	var anchor domain.Point

	switch policy {
	case domain.PolicyDefaultCorner:
		anchor = domain.Point{
			X: outline.Min.X + defaultCornerMarginFeet,
			Y: outline.Max.Y - defaultCornerMarginFeet - domain.StampSideFeet,
		}
	case domain.PolicyQuadrantOffset:
		anchor = domain.Point{
			X: outline.Min.X + 0.25*outline.Width(),
			Y: outline.Min.Y + 0.75*outline.Height(),
		}
	case domain.PolicyRandomSafeZone:
		anchor = domain.Point{
			X: outline.Min.X + safeZoneMinX + p.rng.Float64()*(safeZoneMaxX-safeZoneMinX),
			Y: outline.Min.Y + safeZoneMinY + p.rng.Float64()*(safeZoneMaxY-safeZoneMinY),
		}
	default:
		return domain.PlacementSpec{}, fmt.Errorf("%w: %d", domain.ErrUnknownPolicy, policy)
	}

	return domain.PlacementSpec{
		Anchor: clampAnchor(anchor, outline, domain.StampSideFeet),
		Side:   domain.StampSideFeet,
	}, nil
}

// clampAnchor moves the anchor so the side x side footprint fits inside the
// outline, preferring the sheet origin when the outline is too small.
func clampAnchor(anchor domain.Point, outline domain.Rect, side float64) domain.Point {
	maxX := outline.Max.X - side
	if maxX < outline.Min.X {
		maxX = outline.Min.X
	}
	maxY := outline.Max.Y - side
	if maxY < outline.Min.Y {
		maxY = outline.Min.Y
	}

	return domain.Point{
		X: clamp(anchor.X, outline.Min.X, maxX),
		Y: clamp(anchor.Y, outline.Min.Y, maxY),
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
