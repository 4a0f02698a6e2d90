package entities_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/rpg-rooms/internal/entities"
	"github.com/KirkDiggler/rpg-rooms/internal/errors"
)

func TestRegionContains(t *testing.T) {
	r := entities.NewRegion(10, 10)

	assert.True(t, r.Contains(entities.Position{X: 0, Y: 0}))
	assert.True(t, r.Contains(entities.Position{X: 10, Y: 10}))
	assert.True(t, r.Contains(entities.Position{X: 5, Y: 2.5}))
	assert.False(t, r.Contains(entities.Position{X: 10.01, Y: 5}))
	assert.False(t, r.Contains(entities.Position{X: 5, Y: -0.01}))
	assert.Equal(t, 10.0, r.Width())
	assert.Equal(t, 10.0, r.Height())
}

func TestRegionValidate(t *testing.T) {
	assert.NoError(t, entities.NewRegion(10, 10).Validate())
	assert.NoError(t, entities.Region{MinX: 3, MaxX: 3, MinY: 1, MaxY: 1}.Validate())

	err := entities.Region{MinX: 5, MaxX: 1, MinY: 0, MaxY: math.Inf(1)}.Validate()
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
	assert.Contains(t, err.Error(), "region.max_x")
	assert.Contains(t, err.Error(), "must be finite")
}

func TestPositionDistance(t *testing.T) {
	a := entities.Position{X: 0, Y: 0}
	b := entities.Position{X: 3, Y: 4}
	assert.Equal(t, 5.0, a.DistanceTo(b))
	assert.Equal(t, 5.0, b.DistanceTo(a))
	assert.Equal(t, "(3.00, 4.00)", b.String())
}

func TestPlacementItem(t *testing.T) {
	item := &entities.PlacementItem{ID: "torch_1", Type: "torch"}
	var asItem entities.Item = item
	assert.Equal(t, "torch_1", asItem.GetID())
	assert.Equal(t, "torch", asItem.GetType())
}
