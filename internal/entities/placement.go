package entities

import (
	"fmt"
	"math"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/rpg-rooms/internal/errors"
)

// Item is anything that can be scattered by the placer
type Item = core.Entity

// Position is a 2D point
type Position struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// DistanceTo returns the Euclidean distance between two positions
func (p Position) DistanceTo(other Position) float64 {
	return math.Hypot(p.X-other.X, p.Y-other.Y)
}

// String implements fmt.Stringer
func (p Position) String() string {
	return fmt.Sprintf("(%.2f, %.2f)", p.X, p.Y)
}

// Region is an axis-aligned rectangle, bounds inclusive
type Region struct {
	MinX float64 `json:"min_x" yaml:"min_x"`
	MaxX float64 `json:"max_x" yaml:"max_x"`
	MinY float64 `json:"min_y" yaml:"min_y"`
	MaxY float64 `json:"max_y" yaml:"max_y"`
}

// NewRegion creates a region anchored at the origin
func NewRegion(width, height float64) Region {
	return Region{MaxX: width, MaxY: height}
}

// Validate checks the bounds are finite and ordered. A degenerate region
// (min == max on an axis) is allowed.
func (r Region) Validate() error {
	vb := errors.NewValidationBuilder()
	bounds := []struct {
		name  string
		value float64
	}{
		{"region.min_x", r.MinX},
		{"region.max_x", r.MaxX},
		{"region.min_y", r.MinY},
		{"region.max_y", r.MaxY},
	}
	for _, b := range bounds {
		if math.IsNaN(b.value) || math.IsInf(b.value, 0) {
			vb.Fieldf(b.name, "must be finite, got %v", b.value)
		}
	}
	if r.MaxX < r.MinX {
		vb.Fieldf("region.max_x", "must be >= min_x (%v)", r.MinX)
	}
	if r.MaxY < r.MinY {
		vb.Fieldf("region.max_y", "must be >= min_y (%v)", r.MinY)
	}
	return vb.Build()
}

// Contains reports whether p lies inside the closed rectangle
func (r Region) Contains(p Position) bool {
	return p.X >= r.MinX && p.X <= r.MaxX && p.Y >= r.MinY && p.Y <= r.MaxY
}

// Width of the region
func (r Region) Width() float64 {
	return r.MaxX - r.MinX
}

// Height of the region
func (r Region) Height() float64 {
	return r.MaxY - r.MinY
}

// PlacedPosition records where an item was put and the instance the sink
// created for it.
type PlacedPosition struct {
	Item       Item     `json:"-"`
	ItemID     string   `json:"item_id"`
	ItemType   string   `json:"item_type"`
	Position   Position `json:"position"`
	InstanceID string   `json:"instance_id"`
}

// PlacementItem is a plain Item for callers that only have identifiers,
// such as the gRPC handler and the CLI.
type PlacementItem struct {
	ID   string `json:"id" yaml:"id"`
	Type string `json:"type" yaml:"type"`
}

// GetID returns the item ID
func (i *PlacementItem) GetID() string {
	return i.ID
}

// GetType returns the item type
func (i *PlacementItem) GetType() string {
	return i.Type
}

var _ core.Entity = (*PlacementItem)(nil)
