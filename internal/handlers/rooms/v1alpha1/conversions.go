package v1alpha1

import (
	roomsv1alpha1 "github.com/KirkDiggler/rpg-rooms/internal/api/rooms/v1alpha1"
	"github.com/KirkDiggler/rpg-rooms/internal/entities"
	"github.com/KirkDiggler/rpg-rooms/internal/errors"
	placementorch "github.com/KirkDiggler/rpg-rooms/internal/orchestrators/placement"
)

func convertTemplateToProto(t *entities.RoomTemplate) *roomsv1alpha1.RoomTemplate {
	if t == nil {
		return nil
	}
	out := &roomsv1alpha1.RoomTemplate{
		Name:        t.Name,
		Width:       t.Size.Width,
		Height:      t.Size.Height,
		AssetRef:    t.AssetRef,
		Description: t.Description,
	}
	if !t.CreatedAt.IsZero() {
		out.CreatedAt = t.CreatedAt.Unix()
	}
	if !t.UpdatedAt.IsZero() {
		out.UpdatedAt = t.UpdatedAt.Unix()
	}
	return out
}

func convertTemplatesToProto(templates []*entities.RoomTemplate) []*roomsv1alpha1.RoomTemplate {
	out := make([]*roomsv1alpha1.RoomTemplate, 0, len(templates))
	for _, t := range templates {
		out = append(out, convertTemplateToProto(t))
	}
	return out
}

// convertProtoToTemplate leaves validation to the registry
func convertProtoToTemplate(t *roomsv1alpha1.RoomTemplate) *entities.RoomTemplate {
	if t == nil {
		return nil
	}
	return &entities.RoomTemplate{
		Name:        t.Name,
		Size:        entities.Size{Width: t.Width, Height: t.Height},
		AssetRef:    t.AssetRef,
		Description: t.Description,
	}
}

func convertProtoToTemplates(templates []*roomsv1alpha1.RoomTemplate) []*entities.RoomTemplate {
	out := make([]*entities.RoomTemplate, 0, len(templates))
	for _, t := range templates {
		out = append(out, convertProtoToTemplate(t))
	}
	return out
}

func convertRegionToProto(r entities.Region) *roomsv1alpha1.Region {
	return &roomsv1alpha1.Region{MinX: r.MinX, MaxX: r.MaxX, MinY: r.MinY, MaxY: r.MaxY}
}

func convertProtoToRegion(r *roomsv1alpha1.Region) *entities.Region {
	if r == nil {
		return nil
	}
	return &entities.Region{MinX: r.MinX, MaxX: r.MaxX, MinY: r.MinY, MaxY: r.MaxY}
}

func convertPlacementToProto(p entities.PlacedPosition) *roomsv1alpha1.Placement {
	return &roomsv1alpha1.Placement{
		ItemID:     p.ItemID,
		ItemType:   p.ItemType,
		Position:   &roomsv1alpha1.Position{X: p.Position.X, Y: p.Position.Y},
		InstanceID: p.InstanceID,
	}
}

func convertPlacementsToProto(placements []entities.PlacedPosition) []*roomsv1alpha1.Placement {
	out := make([]*roomsv1alpha1.Placement, 0, len(placements))
	for _, p := range placements {
		out = append(out, convertPlacementToProto(p))
	}
	return out
}

func convertFailuresToProto(failed []placementorch.FailedItem) []*roomsv1alpha1.FailedItem {
	out := make([]*roomsv1alpha1.FailedItem, 0, len(failed))
	for _, f := range failed {
		item := &roomsv1alpha1.FailedItem{
			ItemID:   f.ItemID,
			ItemType: f.ItemType,
			Reason:   f.Reason,
		}
		if f.Err != nil {
			item.Error = errors.GetMessage(f.Err)
		}
		out = append(out, item)
	}
	return out
}

// convertProtoToItems keeps nil entries so the placer can report them
func convertProtoToItems(items []*roomsv1alpha1.Item) []*entities.PlacementItem {
	out := make([]*entities.PlacementItem, 0, len(items))
	for _, item := range items {
		if item == nil {
			out = append(out, nil)
			continue
		}
		out = append(out, &entities.PlacementItem{ID: item.ID, Type: item.Type})
	}
	return out
}

func convertSessionToProto(s *placementorch.Session) *roomsv1alpha1.Session {
	if s == nil {
		return nil
	}
	return &roomsv1alpha1.Session{
		ID:              s.ID,
		TemplateName:    s.TemplateName,
		Region:          convertRegionToProto(s.Region),
		MinimumDistance: s.MinimumDistance,
		MaxAttempts:     s.MaxAttempts,
		Seed:            s.Seed,
		GridSteps:       s.GridSteps,
		State:           s.State.String(),
		Placements:      convertPlacementsToProto(s.Placements),
		CreatedAt:       s.CreatedAt.Unix(),
	}
}
