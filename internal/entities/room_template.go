// Package entities provides core data structures for rpg-rooms.
package entities

import (
	"fmt"
	"strings"
	"time"

	"github.com/KirkDiggler/rpg-rooms/internal/errors"
)

// Size is the width/height footprint of a room template
type Size struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// Validate checks both dimensions are positive
func (s Size) Validate() error {
	vb := errors.NewValidationBuilder()
	errors.ValidatePositive("size.width", s.Width, vb)
	errors.ValidatePositive("size.height", s.Height, vb)
	return vb.Build()
}

// String renders the size as WxH
func (s Size) String() string {
	return fmt.Sprintf("%gx%g", s.Width, s.Height)
}

// RoomTemplate is a named, sized reference to a placeable unit used when
// assembling levels. Name is the identity; renaming is remove + add.
type RoomTemplate struct {
	Name        string    `json:"name" yaml:"name"`
	Size        Size      `json:"size" yaml:"size"`
	AssetRef    string    `json:"asset_ref,omitempty" yaml:"asset_ref,omitempty"` // Prefab or other instantiable asset
	Description string    `json:"description,omitempty" yaml:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at,omitempty" yaml:"-"`
	UpdatedAt   time.Time `json:"updated_at,omitempty" yaml:"-"`
}

// NewRoomTemplate builds a validated template
func NewRoomTemplate(name string, size Size, assetRef string) (*RoomTemplate, error) {
	t := &RoomTemplate{
		Name:     strings.TrimSpace(name),
		Size:     size,
		AssetRef: assetRef,
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return t, nil
}

// Validate checks the template invariants: a non-blank name and a positive size
func (t *RoomTemplate) Validate() error {
	if t == nil {
		return errors.InvalidArgument("room template is required")
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("name", t.Name, vb)
	errors.ValidatePositive("size.width", t.Size.Width, vb)
	errors.ValidatePositive("size.height", t.Size.Height, vb)
	return vb.Build()
}

// RequireAsset reports an error when the template cannot be instantiated
func (t *RoomTemplate) RequireAsset() error {
	if strings.TrimSpace(t.AssetRef) == "" {
		return errors.FailedPreconditionf("room template %q has no asset reference", t.Name).
			WithMeta("name", t.Name)
	}
	return nil
}

// Clone returns an independent copy
func (t *RoomTemplate) Clone() *RoomTemplate {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}

// String implements fmt.Stringer
func (t *RoomTemplate) String() string {
	asset := t.AssetRef
	if asset == "" {
		asset = "none"
	}
	return fmt.Sprintf("RoomTemplate(%s, %s, asset=%s)", t.Name, t.Size, asset)
}
