package domain

import "fmt"

// Sheet coordinates are expressed in the host's native length unit, feet.
// The stamp footprint is a fixed physical size regardless of sheet scale.
const (
	// StampSideInches is the physical side length of the placed stamp.
	StampSideInches = 2.0

	// InchesPerFoot converts the footprint into native sheet units.
	InchesPerFoot = 12.0

	// StampSideFeet is StampSideInches in native units.
	StampSideFeet = StampSideInches / InchesPerFoot
)

// Point is a 2D point on a sheet, in feet.
type Point struct {
	X float64
	Y float64
}

// Rect is an axis-aligned rectangle on a sheet, in feet.
// Min is the lower-left corner, Max the upper-right.
type Rect struct {
	Min Point
	Max Point
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 {
	return r.Max.X - r.Min.X
}

// Height returns the vertical extent.
func (r Rect) Height() float64 {
	return r.Max.Y - r.Min.Y
}

// Contains reports whether p lies within the rectangle (inclusive).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Min.X && p.X <= r.Max.X && p.Y >= r.Min.Y && p.Y <= r.Max.Y
}

// PlacementPolicy selects how the stamp anchor is chosen on a sheet.
type PlacementPolicy int

const (
	// PolicyDefaultCorner anchors the stamp in the upper-left corner,
	// inset by a fixed margin. The title block is assumed lower-right.
	PolicyDefaultCorner PlacementPolicy = iota

	// PolicyQuadrantOffset anchors the stamp a quarter of the way across
	// and three quarters of the way up the sheet outline.
	PolicyQuadrantOffset

	// PolicyRandomSafeZone samples the anchor uniformly from a fixed band
	// near the sheet origin. The band does not scale with sheet size, so
	// small sheets may still need clamping.
	PolicyRandomSafeZone
)

// String returns the configuration name of the policy.
func (p PlacementPolicy) String() string {
	switch p {
	case PolicyDefaultCorner:
		return "default_corner"
	case PolicyQuadrantOffset:
		return "quadrant_offset"
	case PolicyRandomSafeZone:
		return "random_safe_zone"
	default:
		return "unknown"
	}
}

// ParsePlacementPolicy parses a configuration name into a policy.
func ParsePlacementPolicy(s string) (PlacementPolicy, error) {
	switch s {
	case "default_corner":
		return PolicyDefaultCorner, nil
	case "quadrant_offset":
		return PolicyQuadrantOffset, nil
	case "random_safe_zone":
		return PolicyRandomSafeZone, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}

// PlacementSpec describes where a stamp lands on a sheet: the lower-left
// anchor of its footprint and the footprint side length, in feet.
type PlacementSpec struct {
	Anchor Point
	Side   float64
}

// Corners returns the footprint corners in lower-left, lower-right,
// upper-right, upper-left order, for hosts that require an explicit
// quadrilateral.
func (s PlacementSpec) Corners() [4]Point {
	return [4]Point{
		{X: s.Anchor.X, Y: s.Anchor.Y},
		{X: s.Anchor.X + s.Side, Y: s.Anchor.Y},
		{X: s.Anchor.X + s.Side, Y: s.Anchor.Y + s.Side},
		{X: s.Anchor.X, Y: s.Anchor.Y + s.Side},
	}
}

// Bounds returns the footprint as a Rect.
func (s PlacementSpec) Bounds() Rect {
	return Rect{
		Min: s.Anchor,
		Max: Point{X: s.Anchor.X + s.Side, Y: s.Anchor.Y + s.Side},
	}
}
