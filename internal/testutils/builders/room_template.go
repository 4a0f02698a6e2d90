// Package builders provides test data builders for creating test fixtures
package builders

import (
	"time"

	"github.com/KirkDiggler/rpg-rooms/internal/entities"
)

// RoomTemplateBuilder provides a fluent interface for building test
// RoomTemplate instances
type RoomTemplateBuilder struct {
	template *entities.RoomTemplate
}

// NewRoomTemplateBuilder creates a builder for a valid 5x5 template
func NewRoomTemplateBuilder() *RoomTemplateBuilder {
	return &RoomTemplateBuilder{
		template: &entities.RoomTemplate{
			Name:     "test-room",
			Size:     entities.Size{Width: 5, Height: 5},
			AssetRef: "prefabs/test-room",
		},
	}
}

// WithName sets the name
func (b *RoomTemplateBuilder) WithName(name string) *RoomTemplateBuilder {
	b.template.Name = name
	return b
}

// WithSize sets the footprint
func (b *RoomTemplateBuilder) WithSize(width, height float64) *RoomTemplateBuilder {
	b.template.Size = entities.Size{Width: width, Height: height}
	return b
}

// WithAssetRef sets the asset reference
func (b *RoomTemplateBuilder) WithAssetRef(ref string) *RoomTemplateBuilder {
	b.template.AssetRef = ref
	return b
}

// WithoutAsset clears the asset reference
func (b *RoomTemplateBuilder) WithoutAsset() *RoomTemplateBuilder {
	b.template.AssetRef = ""
	return b
}

// WithDescription sets the description
func (b *RoomTemplateBuilder) WithDescription(desc string) *RoomTemplateBuilder {
	b.template.Description = desc
	return b
}

// WithTimestamps sets both timestamps to t
func (b *RoomTemplateBuilder) WithTimestamps(t time.Time) *RoomTemplateBuilder {
	b.template.CreatedAt = t
	b.template.UpdatedAt = t
	return b
}

// Build returns a copy of the template
func (b *RoomTemplateBuilder) Build() *entities.RoomTemplate {
	return b.template.Clone()
}
