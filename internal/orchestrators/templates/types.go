package templates

import (
	"time"

	"github.com/KirkDiggler/rpg-rooms/internal/entities"
	"github.com/KirkDiggler/rpg-rooms/internal/registry"
)

// AddTemplateInput defines the request for adding a template
type AddTemplateInput struct {
	Template *entities.RoomTemplate
}

// AddTemplateOutput defines the response for adding a template
type AddTemplateOutput struct {
	Template *entities.RoomTemplate
}

// GetTemplateInput defines the request for getting a template
type GetTemplateInput struct {
	Name string
}

// GetTemplateOutput defines the response for getting a template
type GetTemplateOutput struct {
	Template *entities.RoomTemplate
}

// ListTemplatesInput defines the request for listing templates
type ListTemplatesInput struct{}

// ListTemplatesOutput defines the response for listing templates
type ListTemplatesOutput struct {
	Templates []*entities.RoomTemplate
}

// UpdateTemplateInput defines the request for updating a template. Nil
// fields are left unchanged.
type UpdateTemplateInput struct {
	Name        string
	Size        *entities.Size
	AssetRef    *string
	Description *string
}

// UpdateTemplateOutput defines the response for updating a template
type UpdateTemplateOutput struct {
	Template *entities.RoomTemplate
}

// RemoveTemplateInput defines the request for removing a template
type RemoveTemplateInput struct {
	Name string
}

// RemoveTemplateOutput defines the response for removing a template
type RemoveTemplateOutput struct{}

// ImportTemplatesInput defines the request for merging templates
type ImportTemplatesInput struct {
	Templates []*entities.RoomTemplate
}

// ImportTemplatesOutput defines the response for merging templates
type ImportTemplatesOutput struct {
	Result *registry.ImportResult
}

// SyncToEdgarInput defines the request for pushing the registry to Edgar
type SyncToEdgarInput struct {
	// ApplyProcessed merges the templates Edgar returns back into the registry
	ApplyProcessed bool
}

// SyncToEdgarOutput defines the response for pushing the registry to Edgar
type SyncToEdgarOutput struct {
	Sent      int
	Processed []*entities.RoomTemplate
	Skipped   []string
	Result    *registry.ImportResult // Nil unless ApplyProcessed
}

// PullFromEdgarInput defines the request for pulling processed templates
type PullFromEdgarInput struct{}

// PullFromEdgarOutput defines the response for pulling processed templates
type PullFromEdgarOutput struct {
	Result  *registry.ImportResult
	Skipped []string
}

// GenerateFromPromptInput defines the request for generating a template
type GenerateFromPromptInput struct {
	Prompt string
	// Add stores the generated template in the registry
	Add bool
}

// GenerateFromPromptOutput defines the response for generating a template
type GenerateFromPromptOutput struct {
	Template *entities.RoomTemplate
	Added    bool
}

// SaveSnapshotInput defines the request for saving the registry
type SaveSnapshotInput struct {
	Collection string // Defaults to the configured collection
	TTL        time.Duration
}

// SaveSnapshotOutput defines the response for saving the registry
type SaveSnapshotOutput struct {
	Collection string
	Count      int
	SavedAt    time.Time
}

// LoadSnapshotInput defines the request for loading a snapshot
type LoadSnapshotInput struct {
	Collection string // Defaults to the configured collection
}

// LoadSnapshotOutput defines the response for loading a snapshot
type LoadSnapshotOutput struct {
	Collection string
	SavedAt    time.Time
	Result     *registry.ImportResult
}

// ListSnapshotsInput defines the request for listing snapshots
type ListSnapshotsInput struct{}

// ListSnapshotsOutput defines the response for listing snapshots
type ListSnapshotsOutput struct {
	Collections []string
}
