// Package templates stores named snapshots of a template registry
package templates

import (
	"context"
	"strings"
	"time"

	"github.com/KirkDiggler/rpg-rooms/internal/entities"
	"github.com/KirkDiggler/rpg-rooms/internal/errors"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=templatesmock github.com/KirkDiggler/rpg-rooms/internal/repositories/templates Repository

// Snapshot is the saved content of a registry under a collection name
type Snapshot struct {
	Collection string                   `json:"collection"`
	Templates  []*entities.RoomTemplate `json:"templates"`
	SavedAt    time.Time                `json:"saved_at"`
}

// SaveInput contains parameters for saving a snapshot
type SaveInput struct {
	Collection string
	Templates  []*entities.RoomTemplate
	TTL        time.Duration // Zero keeps the snapshot forever
}

// SaveOutput contains the stored snapshot
type SaveOutput struct {
	Snapshot *Snapshot
}

// LoadInput contains parameters for loading a snapshot
type LoadInput struct {
	Collection string
}

// LoadOutput contains the loaded snapshot
type LoadOutput struct {
	Snapshot *Snapshot
}

// DeleteInput contains parameters for deleting a snapshot
type DeleteInput struct {
	Collection string
}

// DeleteOutput is returned by Delete
type DeleteOutput struct{}

// ListOutput contains the saved collection names, sorted
type ListOutput struct {
	Collections []string
}

// Repository defines snapshot storage
type Repository interface {
	// Save replaces the snapshot for a collection
	Save(ctx context.Context, input *SaveInput) (*SaveOutput, error)

	// Load returns the snapshot for a collection
	Load(ctx context.Context, input *LoadInput) (*LoadOutput, error)

	// Delete removes the snapshot for a collection
	Delete(ctx context.Context, input *DeleteInput) (*DeleteOutput, error)

	// List returns the names of saved collections
	List(ctx context.Context) (*ListOutput, error)
}

const (
	errInputNil        = "input is required"
	errCollectionEmpty = "collection cannot be empty"
)

func validateCollection(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", errors.InvalidArgument(errCollectionEmpty)
	}
	return name, nil
}
