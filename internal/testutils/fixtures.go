package testutils

import (
	"fmt"

	"github.com/KirkDiggler/rpg-rooms/internal/entities"
)

// RoomTemplate returns a valid template whose asset reference is
// "prefabs/<name>".
func RoomTemplate(name string, width, height float64) *entities.RoomTemplate {
	return &entities.RoomTemplate{
		Name:     name,
		Size:     entities.Size{Width: width, Height: height},
		AssetRef: "prefabs/" + name,
	}
}

// PlacementItems returns n items with IDs item_1..item_n
func PlacementItems(itemType string, n int) []*entities.PlacementItem {
	out := make([]*entities.PlacementItem, 0, n)
	for i := 1; i <= n; i++ {
		out = append(out, &entities.PlacementItem{ID: fmt.Sprintf("item_%d", i), Type: itemType})
	}
	return out
}
