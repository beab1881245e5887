package services

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/caddraft/qrstamp-cli/internal/core/domain"
)

func sheetOutline(w, h float64) domain.Rect {
	return domain.Rect{Min: domain.Point{X: 0, Y: 0}, Max: domain.Point{X: w, Y: h}}
}

func TestPlanner_QuadrantOffset(t *testing.T) {
	planner := NewPlanner()

	spec, err := planner.Plan(sheetOutline(4, 3), domain.PolicyQuadrantOffset)

	require.NoError(t, err)
	assert.InDelta(t, 1.0, spec.Anchor.X, 1e-9)
	assert.InDelta(t, 2.25, spec.Anchor.Y, 1e-9)
	assert.InDelta(t, domain.StampSideFeet, spec.Side, 1e-12)
}

func TestPlanner_QuadrantOffset_NonZeroOrigin(t *testing.T) {
	planner := NewPlanner()
	outline := domain.Rect{
		Min: domain.Point{X: 10, Y: 5},
		Max: domain.Point{X: 14, Y: 8},
	}

	spec, err := planner.Plan(outline, domain.PolicyQuadrantOffset)

	require.NoError(t, err)
	assert.InDelta(t, 11.0, spec.Anchor.X, 1e-9)
	assert.InDelta(t, 7.25, spec.Anchor.Y, 1e-9)
}

func TestPlanner_DefaultCorner(t *testing.T) {
	planner := NewPlanner()

	spec, err := planner.Plan(sheetOutline(4, 3), domain.PolicyDefaultCorner)

	require.NoError(t, err)
	assert.InDelta(t, 0.25, spec.Anchor.X, 1e-9)
	assert.InDelta(t, 3-0.25-domain.StampSideFeet, spec.Anchor.Y, 1e-9)
	assert.True(t, sheetOutline(4, 3).Contains(spec.Bounds().Max))
}

func TestPlanner_RandomSafeZone_StaysInBand(t *testing.T) {
	planner := NewPlannerWithRand(rand.New(rand.NewSource(1)))
	outline := sheetOutline(4, 3)

	for i := 0; i < 200; i++ {
		spec, err := planner.Plan(outline, domain.PolicyRandomSafeZone)
		require.NoError(t, err)

		assert.GreaterOrEqual(t, spec.Anchor.X, 0.5)
		assert.Less(t, spec.Anchor.X, 2.0)
		assert.GreaterOrEqual(t, spec.Anchor.Y, 0.3)
		assert.Less(t, spec.Anchor.Y, 1.3)
	}
}

func TestPlanner_RandomSafeZone_ReproducibleWithSeed(t *testing.T) {
	outline := sheetOutline(4, 3)

	first, err := NewPlannerWithRand(rand.New(rand.NewSource(42))).Plan(outline, domain.PolicyRandomSafeZone)
	require.NoError(t, err)
	second, err := NewPlannerWithRand(rand.New(rand.NewSource(42))).Plan(outline, domain.PolicyRandomSafeZone)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}

func TestPlanner_ClampsFootprintInsideOutline(t *testing.T) {
	planner := NewPlannerWithRand(rand.New(rand.NewSource(7)))

	// A small sheet: the safe zone band extends past the outline, so the
	// anchor must be pulled back in.
	outline := sheetOutline(1.0, 0.5)

	for i := 0; i < 50; i++ {
		spec, err := planner.Plan(outline, domain.PolicyRandomSafeZone)
		require.NoError(t, err)

		bounds := spec.Bounds()
		assert.True(t, outline.Contains(bounds.Min), "anchor inside outline")
		assert.True(t, outline.Contains(bounds.Max), "far corner inside outline")
	}
}

func TestPlanner_SheetSmallerThanStampPinsToOrigin(t *testing.T) {
	planner := NewPlanner()
	outline := sheetOutline(0.1, 0.1)

	spec, err := planner.Plan(outline, domain.PolicyQuadrantOffset)

	require.NoError(t, err)
	assert.Equal(t, domain.Point{X: 0, Y: 0}, spec.Anchor)
}

func TestPlanner_UnknownPolicy(t *testing.T) {
	planner := NewPlanner()

	_, err := planner.Plan(sheetOutline(4, 3), domain.PlacementPolicy(99))

	assert.ErrorIs(t, err, domain.ErrUnknownPolicy)
}
