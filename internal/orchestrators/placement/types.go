package placement

import (
	"time"

	"github.com/KirkDiggler/rpg-rooms/internal/entities"
	"github.com/KirkDiggler/rpg-rooms/internal/placement"
)

// Session describes one placer and everything it has recorded
type Session struct {
	ID              string
	TemplateName    string
	Region          entities.Region
	MinimumDistance float64
	MaxAttempts     int
	Seed            uint64
	GridSteps       int
	State           placement.State
	Placements      []entities.PlacedPosition
	CreatedAt       time.Time
}

// FailedItem reports an item a batch could not place
type FailedItem struct {
	ItemID   string
	ItemType string
	Reason   string
	Err      error
}

// CreateSessionInput defines the request for creating a session. Exactly
// one of TemplateName and Region must be set.
type CreateSessionInput struct {
	TemplateName string
	Region       *entities.Region

	// Optional, the configured defaults apply when unset
	MinimumDistance *float64
	MaxAttempts     int
	Seed            *uint64
	// GridSteps > 0 samples a dice-driven grid instead of the seeded stream
	GridSteps int
}

// CreateSessionOutput defines the response for creating a session
type CreateSessionOutput struct {
	Session *Session
}

// GetSessionInput defines the request for getting a session
type GetSessionInput struct {
	SessionID string
}

// GetSessionOutput defines the response for getting a session
type GetSessionOutput struct {
	Session *Session
}

// GetPlacementsInput defines the request for reading a session's placements
type GetPlacementsInput struct {
	SessionID string
}

// GetPlacementsOutput defines the response for reading placements
type GetPlacementsOutput struct {
	State      placement.State
	Placements []entities.PlacedPosition
}

// ListSessionsInput defines the request for listing sessions
type ListSessionsInput struct{}

// ListSessionsOutput defines the response for listing sessions
type ListSessionsOutput struct {
	Sessions []*Session
}

// PlaceAssetsInput defines the request for placing a batch
type PlaceAssetsInput struct {
	SessionID string
	Items     []*entities.PlacementItem
}

// PlaceAssetsOutput defines the response for placing a batch
type PlaceAssetsOutput struct {
	Placed []entities.PlacedPosition
	Failed []FailedItem
}

// PlaceSingleInput defines the request for placing one item at a position
type PlaceSingleInput struct {
	SessionID string
	Item      *entities.PlacementItem
	Position  entities.Position
}

// PlaceSingleOutput defines the response for placing one item
type PlaceSingleOutput struct {
	Placement *entities.PlacedPosition
}

// ClearPlacementsInput defines the request for clearing a session
type ClearPlacementsInput struct {
	SessionID string
}

// ClearPlacementsOutput defines the response for clearing a session
type ClearPlacementsOutput struct {
	Cleared int
}

// DeleteSessionInput defines the request for deleting a session
type DeleteSessionInput struct {
	SessionID string
}

// DeleteSessionOutput defines the response for deleting a session
type DeleteSessionOutput struct{}
