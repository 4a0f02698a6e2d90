// Package v1alpha1 handles the rooms.v1alpha1.RoomService grpc interface
package v1alpha1

import (
	"context"
	"time"

	roomsv1alpha1 "github.com/KirkDiggler/rpg-rooms/internal/api/rooms/v1alpha1"
	"github.com/KirkDiggler/rpg-rooms/internal/entities"
	"github.com/KirkDiggler/rpg-rooms/internal/errors"
	placementorch "github.com/KirkDiggler/rpg-rooms/internal/orchestrators/placement"
	"github.com/KirkDiggler/rpg-rooms/internal/orchestrators/templates"
)

// HandlerConfig holds dependencies for the room handler
type HandlerConfig struct {
	TemplateService  templates.Service
	PlacementService placementorch.Service
}

// Validate ensures all required dependencies are present
func (c *HandlerConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}

	vb := errors.NewValidationBuilder()
	if c.TemplateService == nil {
		vb.RequiredField("TemplateService")
	}
	if c.PlacementService == nil {
		vb.RequiredField("PlacementService")
	}
	return vb.Build()
}

// Handler implements the RoomService gRPC service
type Handler struct {
	roomsv1alpha1.UnimplementedRoomServiceServer
	templateService  templates.Service
	placementService placementorch.Service
}

var _ roomsv1alpha1.RoomServiceServer = (*Handler)(nil)

// NewHandler creates a new room handler
func NewHandler(cfg *HandlerConfig) (*Handler, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Handler{
		templateService:  cfg.TemplateService,
		placementService: cfg.PlacementService,
	}, nil
}

// AddTemplate adds a template to the registry
func (h *Handler) AddTemplate(
	ctx context.Context,
	req *roomsv1alpha1.AddTemplateRequest,
) (*roomsv1alpha1.AddTemplateResponse, error) {
	if req.Template == nil {
		return nil, errors.ToGRPCError(errors.InvalidArgument("template is required"))
	}

	output, err := h.templateService.AddTemplate(ctx, &templates.AddTemplateInput{
		Template: convertProtoToTemplate(req.Template),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &roomsv1alpha1.AddTemplateResponse{
		Template: convertTemplateToProto(output.Template),
	}, nil
}

// GetTemplate returns a template by name
func (h *Handler) GetTemplate(
	ctx context.Context,
	req *roomsv1alpha1.GetTemplateRequest,
) (*roomsv1alpha1.GetTemplateResponse, error) {
	if req.Name == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("name is required"))
	}

	output, err := h.templateService.GetTemplate(ctx, &templates.GetTemplateInput{Name: req.Name})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &roomsv1alpha1.GetTemplateResponse{
		Template: convertTemplateToProto(output.Template),
	}, nil
}

// ListTemplates returns every template in insertion order
func (h *Handler) ListTemplates(
	ctx context.Context,
	_ *roomsv1alpha1.ListTemplatesRequest,
) (*roomsv1alpha1.ListTemplatesResponse, error) {
	output, err := h.templateService.ListTemplates(ctx, &templates.ListTemplatesInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &roomsv1alpha1.ListTemplatesResponse{
		Templates: convertTemplatesToProto(output.Templates),
	}, nil
}

// UpdateTemplate changes the set fields of a template
func (h *Handler) UpdateTemplate(
	ctx context.Context,
	req *roomsv1alpha1.UpdateTemplateRequest,
) (*roomsv1alpha1.UpdateTemplateResponse, error) {
	if req.Name == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("name is required"))
	}
	if (req.Width == nil) != (req.Height == nil) {
		return nil, errors.ToGRPCError(errors.InvalidArgument("width and height must be set together"))
	}

	input := &templates.UpdateTemplateInput{
		Name:        req.Name,
		AssetRef:    req.AssetRef,
		Description: req.Description,
	}
	if req.Width != nil {
		input.Size = &entities.Size{Width: *req.Width, Height: *req.Height}
	}

	output, err := h.templateService.UpdateTemplate(ctx, input)
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &roomsv1alpha1.UpdateTemplateResponse{
		Template: convertTemplateToProto(output.Template),
	}, nil
}

// RemoveTemplate deletes a template by name
func (h *Handler) RemoveTemplate(
	ctx context.Context,
	req *roomsv1alpha1.RemoveTemplateRequest,
) (*roomsv1alpha1.RemoveTemplateResponse, error) {
	if req.Name == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("name is required"))
	}

	if _, err := h.templateService.RemoveTemplate(ctx, &templates.RemoveTemplateInput{Name: req.Name}); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &roomsv1alpha1.RemoveTemplateResponse{}, nil
}

// ImportTemplates merges a batch of templates
func (h *Handler) ImportTemplates(
	ctx context.Context,
	req *roomsv1alpha1.ImportTemplatesRequest,
) (*roomsv1alpha1.ImportTemplatesResponse, error) {
	if len(req.Templates) == 0 {
		return nil, errors.ToGRPCError(errors.InvalidArgument("templates are required"))
	}

	output, err := h.templateService.ImportTemplates(ctx, &templates.ImportTemplatesInput{
		Templates: convertProtoToTemplates(req.Templates),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &roomsv1alpha1.ImportTemplatesResponse{
		Added:   output.Result.Added,
		Updated: output.Result.Updated,
	}, nil
}

// SyncToEdgar pushes the registry to Edgar
func (h *Handler) SyncToEdgar(
	ctx context.Context,
	req *roomsv1alpha1.SyncToEdgarRequest,
) (*roomsv1alpha1.SyncToEdgarResponse, error) {
	output, err := h.templateService.SyncToEdgar(ctx, &templates.SyncToEdgarInput{
		ApplyProcessed: req.ApplyProcessed,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	resp := &roomsv1alpha1.SyncToEdgarResponse{
		Sent:      output.Sent,
		Processed: convertTemplatesToProto(output.Processed),
		Skipped:   output.Skipped,
	}
	if output.Result != nil {
		resp.Added = output.Result.Added
		resp.Updated = output.Result.Updated
	}
	return resp, nil
}

// PullFromEdgar merges Edgar's processed templates
func (h *Handler) PullFromEdgar(
	ctx context.Context,
	_ *roomsv1alpha1.PullFromEdgarRequest,
) (*roomsv1alpha1.PullFromEdgarResponse, error) {
	output, err := h.templateService.PullFromEdgar(ctx, &templates.PullFromEdgarInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &roomsv1alpha1.PullFromEdgarResponse{
		Added:   output.Result.Added,
		Updated: output.Result.Updated,
		Skipped: output.Skipped,
	}, nil
}

// GenerateTemplate turns a prompt into a template
func (h *Handler) GenerateTemplate(
	ctx context.Context,
	req *roomsv1alpha1.GenerateTemplateRequest,
) (*roomsv1alpha1.GenerateTemplateResponse, error) {
	if req.Prompt == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("prompt is required"))
	}

	output, err := h.templateService.GenerateFromPrompt(ctx, &templates.GenerateFromPromptInput{
		Prompt: req.Prompt,
		Add:    req.Add,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &roomsv1alpha1.GenerateTemplateResponse{
		Template: convertTemplateToProto(output.Template),
		Added:    output.Added,
	}, nil
}

// SaveSnapshot stores the registry under a collection
func (h *Handler) SaveSnapshot(
	ctx context.Context,
	req *roomsv1alpha1.SaveSnapshotRequest,
) (*roomsv1alpha1.SaveSnapshotResponse, error) {
	if req.TTLSeconds < 0 {
		return nil, errors.ToGRPCError(errors.InvalidArgument("ttl_seconds cannot be negative"))
	}

	output, err := h.templateService.SaveSnapshot(ctx, &templates.SaveSnapshotInput{
		Collection: req.Collection,
		TTL:        time.Duration(req.TTLSeconds) * time.Second,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &roomsv1alpha1.SaveSnapshotResponse{
		Collection: output.Collection,
		Count:      output.Count,
		SavedAt:    output.SavedAt.Unix(),
	}, nil
}

// LoadSnapshot merges a stored collection into the registry
func (h *Handler) LoadSnapshot(
	ctx context.Context,
	req *roomsv1alpha1.LoadSnapshotRequest,
) (*roomsv1alpha1.LoadSnapshotResponse, error) {
	output, err := h.templateService.LoadSnapshot(ctx, &templates.LoadSnapshotInput{
		Collection: req.Collection,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &roomsv1alpha1.LoadSnapshotResponse{
		Collection: output.Collection,
		SavedAt:    output.SavedAt.Unix(),
		Added:      output.Result.Added,
		Updated:    output.Result.Updated,
	}, nil
}

// ListSnapshots returns stored collection names
func (h *Handler) ListSnapshots(
	ctx context.Context,
	_ *roomsv1alpha1.ListSnapshotsRequest,
) (*roomsv1alpha1.ListSnapshotsResponse, error) {
	output, err := h.templateService.ListSnapshots(ctx, &templates.ListSnapshotsInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &roomsv1alpha1.ListSnapshotsResponse{Collections: output.Collections}, nil
}

// CreateSession starts a placement session
func (h *Handler) CreateSession(
	ctx context.Context,
	req *roomsv1alpha1.CreateSessionRequest,
) (*roomsv1alpha1.CreateSessionResponse, error) {
	if req.TemplateName == "" && req.Region == nil {
		return nil, errors.ToGRPCError(errors.InvalidArgument("template_name or region is required"))
	}

	output, err := h.placementService.CreateSession(ctx, &placementorch.CreateSessionInput{
		TemplateName:    req.TemplateName,
		Region:          convertProtoToRegion(req.Region),
		MinimumDistance: req.MinimumDistance,
		MaxAttempts:     req.MaxAttempts,
		Seed:            req.Seed,
		GridSteps:       req.GridSteps,
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &roomsv1alpha1.CreateSessionResponse{
		Session: convertSessionToProto(output.Session),
	}, nil
}

// GetSession returns a session with its placements
func (h *Handler) GetSession(
	ctx context.Context,
	req *roomsv1alpha1.GetSessionRequest,
) (*roomsv1alpha1.GetSessionResponse, error) {
	if req.SessionID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("session_id is required"))
	}

	output, err := h.placementService.GetSession(ctx, &placementorch.GetSessionInput{SessionID: req.SessionID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &roomsv1alpha1.GetSessionResponse{
		Session: convertSessionToProto(output.Session),
	}, nil
}

// ListSessions returns every live session
func (h *Handler) ListSessions(
	ctx context.Context,
	_ *roomsv1alpha1.ListSessionsRequest,
) (*roomsv1alpha1.ListSessionsResponse, error) {
	output, err := h.placementService.ListSessions(ctx, &placementorch.ListSessionsInput{})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	sessions := make([]*roomsv1alpha1.Session, 0, len(output.Sessions))
	for _, s := range output.Sessions {
		sessions = append(sessions, convertSessionToProto(s))
	}
	return &roomsv1alpha1.ListSessionsResponse{Sessions: sessions}, nil
}

// DeleteSession clears and forgets a session
func (h *Handler) DeleteSession(
	ctx context.Context,
	req *roomsv1alpha1.DeleteSessionRequest,
) (*roomsv1alpha1.DeleteSessionResponse, error) {
	if req.SessionID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("session_id is required"))
	}

	if _, err := h.placementService.DeleteSession(ctx, &placementorch.DeleteSessionInput{SessionID: req.SessionID}); err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &roomsv1alpha1.DeleteSessionResponse{}, nil
}

// PlaceAssets places a batch of items
func (h *Handler) PlaceAssets(
	ctx context.Context,
	req *roomsv1alpha1.PlaceAssetsRequest,
) (*roomsv1alpha1.PlaceAssetsResponse, error) {
	if req.SessionID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("session_id is required"))
	}
	if len(req.Items) == 0 {
		return nil, errors.ToGRPCError(errors.InvalidArgument("items are required"))
	}

	output, err := h.placementService.PlaceAssets(ctx, &placementorch.PlaceAssetsInput{
		SessionID: req.SessionID,
		Items:     convertProtoToItems(req.Items),
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &roomsv1alpha1.PlaceAssetsResponse{
		Placed: convertPlacementsToProto(output.Placed),
		Failed: convertFailuresToProto(output.Failed),
	}, nil
}

// PlaceSingle places one item at a chosen position
func (h *Handler) PlaceSingle(
	ctx context.Context,
	req *roomsv1alpha1.PlaceSingleRequest,
) (*roomsv1alpha1.PlaceSingleResponse, error) {
	if req.SessionID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("session_id is required"))
	}
	if req.Item == nil {
		return nil, errors.ToGRPCError(errors.InvalidArgument("item is required"))
	}
	if req.Position == nil {
		return nil, errors.ToGRPCError(errors.InvalidArgument("position is required"))
	}

	output, err := h.placementService.PlaceSingle(ctx, &placementorch.PlaceSingleInput{
		SessionID: req.SessionID,
		Item:      &entities.PlacementItem{ID: req.Item.ID, Type: req.Item.Type},
		Position:  entities.Position{X: req.Position.X, Y: req.Position.Y},
	})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &roomsv1alpha1.PlaceSingleResponse{
		Placement: convertPlacementToProto(*output.Placement),
	}, nil
}

// GetPlacements returns a session's recorded placements
func (h *Handler) GetPlacements(
	ctx context.Context,
	req *roomsv1alpha1.GetPlacementsRequest,
) (*roomsv1alpha1.GetPlacementsResponse, error) {
	if req.SessionID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("session_id is required"))
	}

	output, err := h.placementService.GetPlacements(ctx, &placementorch.GetPlacementsInput{SessionID: req.SessionID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}

	return &roomsv1alpha1.GetPlacementsResponse{
		State:      output.State.String(),
		Placements: convertPlacementsToProto(output.Placements),
	}, nil
}

// ClearPlacements empties a session
func (h *Handler) ClearPlacements(
	ctx context.Context,
	req *roomsv1alpha1.ClearPlacementsRequest,
) (*roomsv1alpha1.ClearPlacementsResponse, error) {
	if req.SessionID == "" {
		return nil, errors.ToGRPCError(errors.InvalidArgument("session_id is required"))
	}

	output, err := h.placementService.ClearPlacements(ctx, &placementorch.ClearPlacementsInput{SessionID: req.SessionID})
	if err != nil {
		return nil, errors.ToGRPCError(err)
	}
	return &roomsv1alpha1.ClearPlacementsResponse{Cleared: output.Cleared}, nil
}
