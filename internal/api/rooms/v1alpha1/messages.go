// Package v1alpha1 is the wire contract of rooms.v1alpha1.RoomService.
// Messages are plain structs sent with the JSON codec.
package v1alpha1

// RoomTemplate is a named room footprint
type RoomTemplate struct {
	Name        string  `json:"name"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	AssetRef    string  `json:"asset_ref,omitempty"`
	Description string  `json:"description,omitempty"`
	CreatedAt   int64   `json:"created_at,omitempty"`
	UpdatedAt   int64   `json:"updated_at,omitempty"`
}

// Region is an axis-aligned placement area, edges included
type Region struct {
	MinX float64 `json:"min_x"`
	MaxX float64 `json:"max_x"`
	MinY float64 `json:"min_y"`
	MaxY float64 `json:"max_y"`
}

// Position is a point in a region
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Item is something to place
type Item struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

// Placement is an accepted position
type Placement struct {
	ItemID     string    `json:"item_id"`
	ItemType   string    `json:"item_type"`
	Position   *Position `json:"position"`
	InstanceID string    `json:"instance_id,omitempty"`
}

// FailedItem is an item a batch gave up on
type FailedItem struct {
	ItemID   string `json:"item_id,omitempty"`
	ItemType string `json:"item_type,omitempty"`
	Reason   string `json:"reason"`
	Error    string `json:"error,omitempty"`
}

// Session is a placer and its recorded placements
type Session struct {
	ID              string       `json:"id"`
	TemplateName    string       `json:"template_name,omitempty"`
	Region          *Region      `json:"region"`
	MinimumDistance float64      `json:"minimum_distance"`
	MaxAttempts     int          `json:"max_attempts"`
	Seed            uint64       `json:"seed,omitempty"`
	GridSteps       int          `json:"grid_steps,omitempty"`
	State           string       `json:"state"`
	Placements      []*Placement `json:"placements,omitempty"`
	CreatedAt       int64        `json:"created_at"`
}

type AddTemplateRequest struct {
	Template *RoomTemplate `json:"template"`
}

type AddTemplateResponse struct {
	Template *RoomTemplate `json:"template"`
}

type GetTemplateRequest struct {
	Name string `json:"name"`
}

type GetTemplateResponse struct {
	Template *RoomTemplate `json:"template"`
}

type ListTemplatesRequest struct{}

type ListTemplatesResponse struct {
	Templates []*RoomTemplate `json:"templates"`
}

// UpdateTemplateRequest changes the fields that are set. Width and Height
// must be set together.
type UpdateTemplateRequest struct {
	Name        string   `json:"name"`
	Width       *float64 `json:"width,omitempty"`
	Height      *float64 `json:"height,omitempty"`
	AssetRef    *string  `json:"asset_ref,omitempty"`
	Description *string  `json:"description,omitempty"`
}

type UpdateTemplateResponse struct {
	Template *RoomTemplate `json:"template"`
}

type RemoveTemplateRequest struct {
	Name string `json:"name"`
}

type RemoveTemplateResponse struct{}

type ImportTemplatesRequest struct {
	Templates []*RoomTemplate `json:"templates"`
}

type ImportTemplatesResponse struct {
	Added   []string `json:"added,omitempty"`
	Updated []string `json:"updated,omitempty"`
}

type SyncToEdgarRequest struct {
	ApplyProcessed bool `json:"apply_processed,omitempty"`
}

type SyncToEdgarResponse struct {
	Sent      int             `json:"sent"`
	Processed []*RoomTemplate `json:"processed,omitempty"`
	Skipped   []string        `json:"skipped,omitempty"`
	Added     []string        `json:"added,omitempty"`
	Updated   []string        `json:"updated,omitempty"`
}

type PullFromEdgarRequest struct{}

type PullFromEdgarResponse struct {
	Added   []string `json:"added,omitempty"`
	Updated []string `json:"updated,omitempty"`
	Skipped []string `json:"skipped,omitempty"`
}

type GenerateTemplateRequest struct {
	Prompt string `json:"prompt"`
	Add    bool   `json:"add,omitempty"`
}

type GenerateTemplateResponse struct {
	Template *RoomTemplate `json:"template"`
	Added    bool          `json:"added"`
}

type SaveSnapshotRequest struct {
	Collection string `json:"collection,omitempty"`
	TTLSeconds int64  `json:"ttl_seconds,omitempty"`
}

type SaveSnapshotResponse struct {
	Collection string `json:"collection"`
	Count      int    `json:"count"`
	SavedAt    int64  `json:"saved_at"`
}

type LoadSnapshotRequest struct {
	Collection string `json:"collection,omitempty"`
}

type LoadSnapshotResponse struct {
	Collection string   `json:"collection"`
	SavedAt    int64    `json:"saved_at"`
	Added      []string `json:"added,omitempty"`
	Updated    []string `json:"updated,omitempty"`
}

type ListSnapshotsRequest struct{}

type ListSnapshotsResponse struct {
	Collections []string `json:"collections"`
}

// CreateSessionRequest needs exactly one of TemplateName and Region
type CreateSessionRequest struct {
	TemplateName    string   `json:"template_name,omitempty"`
	Region          *Region  `json:"region,omitempty"`
	MinimumDistance *float64 `json:"minimum_distance,omitempty"`
	MaxAttempts     int      `json:"max_attempts,omitempty"`
	Seed            *uint64  `json:"seed,omitempty"`
	GridSteps       int      `json:"grid_steps,omitempty"`
}

type CreateSessionResponse struct {
	Session *Session `json:"session"`
}

type GetSessionRequest struct {
	SessionID string `json:"session_id"`
}

type GetSessionResponse struct {
	Session *Session `json:"session"`
}

type ListSessionsRequest struct{}

type ListSessionsResponse struct {
	Sessions []*Session `json:"sessions"`
}

type DeleteSessionRequest struct {
	SessionID string `json:"session_id"`
}

type DeleteSessionResponse struct{}

type PlaceAssetsRequest struct {
	SessionID string  `json:"session_id"`
	Items     []*Item `json:"items"`
}

type PlaceAssetsResponse struct {
	Placed []*Placement  `json:"placed,omitempty"`
	Failed []*FailedItem `json:"failed,omitempty"`
}

type PlaceSingleRequest struct {
	SessionID string    `json:"session_id"`
	Item      *Item     `json:"item"`
	Position  *Position `json:"position"`
}

type PlaceSingleResponse struct {
	Placement *Placement `json:"placement"`
}

type GetPlacementsRequest struct {
	SessionID string `json:"session_id"`
}

type GetPlacementsResponse struct {
	State      string       `json:"state"`
	Placements []*Placement `json:"placements,omitempty"`
}

type ClearPlacementsRequest struct {
	SessionID string `json:"session_id"`
}

type ClearPlacementsResponse struct {
	Cleared int `json:"cleared"`
}
