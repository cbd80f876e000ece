package engine

import (
	"testing"

	"github.com/piwi3910/loadplanner/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestForcePackMovesItemAndRefundsNothing(t *testing.T) {
	c := model.NewContainer(10000, 2400, 2600, 28000, true, 0)
	c.Unpacked = []model.Item{model.NewItem("A", 1200, 1000, 1000, 500, model.Pallet)}

	err := ForcePack(c, 0, 100, 100, 0)
	require.NoError(t, err)
	assert.Empty(t, c.Unpacked)
	require.Len(t, c.Placed, 1)
	assert.Equal(t, 100.0, c.Placed[0].X)
	assert.Equal(t, 500.0, c.CurrentWeight)
}

func TestForcePackRejectsBadIndex(t *testing.T) {
	c := model.NewContainer(10000, 2400, 2600, 28000, true, 0)
	err := ForcePack(c, 5, 0, 0, 0)
	assert.Error(t, err)
}

func TestDropUnpackedLandsOnFloorWhenClear(t *testing.T) {
	c := model.NewContainer(10000, 2400, 2600, 28000, true, 0)
	c.Unpacked = []model.Item{
		model.NewItem("A", 1200, 1000, 1000, 500, model.Pallet),
		model.NewItem("B", 1200, 1000, 1000, 500, model.Pallet),
	}
	err := DropUnpacked(c, 0, 100, 100)
	require.NoError(t, err)
	assert.Len(t, c.Unpacked, 1)
	assert.Equal(t, "B", c.Unpacked[0].Name)
	require.Len(t, c.Placed, 1)
	assert.Equal(t, 0.0, c.Placed[0].Z)
}

func TestDropUnpackedLandsOnTopOfOverlappingItem(t *testing.T) {
	c := model.NewContainer(10000, 2400, 2600, 28000, true, 0)
	resting := model.NewItem("Base", 1200, 1000, 800, 500, model.Pallet)
	resting.X, resting.Y, resting.Z = 100, 100, 0
	c.Placed = []model.Item{resting}
	c.Unpacked = []model.Item{model.NewItem("Top", 1200, 1000, 600, 300, model.Pallet)}

	err := DropUnpacked(c, 0, 100, 100)
	require.NoError(t, err)
	require.Len(t, c.Placed, 2)
	assert.Equal(t, 800.0, c.Placed[1].Z)
}

func TestDropUnpackedIgnoresNonOverlappingFootprint(t *testing.T) {
	c := model.NewContainer(10000, 2400, 2600, 28000, true, 0)
	resting := model.NewItem("Base", 1200, 1000, 800, 500, model.Pallet)
	resting.X, resting.Y, resting.Z = 0, 0, 0
	c.Placed = []model.Item{resting}
	c.Unpacked = []model.Item{model.NewItem("Far", 1200, 1000, 600, 300, model.Pallet)}

	err := DropUnpacked(c, 0, 5000, 1000)
	require.NoError(t, err)
	require.Len(t, c.Placed, 2)
	assert.Equal(t, 0.0, c.Placed[1].Z)
}

func TestDropUnpackedRejectsBadIndex(t *testing.T) {
	c := model.NewContainer(10000, 2400, 2600, 28000, true, 0)
	err := DropUnpacked(c, 5, 0, 0)
	assert.Error(t, err)
}

func TestUnpackClearsPlacementState(t *testing.T) {
	c := model.NewContainer(10000, 2400, 2600, 28000, true, 0)
	item := model.NewItem("A", 1200, 1000, 1000, 500, model.Pallet)
	item.X, item.Y, item.Z = 500, 500, 0
	item.StackLayer = 1
	c.Placed = []model.Item{item}
	c.CurrentWeight = 500

	err := Unpack(c, 0)
	require.NoError(t, err)
	assert.Empty(t, c.Placed)
	require.Len(t, c.Unpacked, 1)
	assert.Equal(t, 0.0, c.Unpacked[0].X)
	assert.Equal(t, 0, c.Unpacked[0].StackLayer)
	assert.Equal(t, 0.0, c.CurrentWeight)
}

func TestRotateInPlaceClampsToWalls(t *testing.T) {
	c := model.NewContainer(5000, 2000, 2000, 28000, true, 0)
	item := model.NewItem("A", 1800, 400, 500, 200, model.Crate)
	item.X, item.Y = 4900, 0
	c.Placed = []model.Item{item}

	err := RotateInPlace(c, 0)
	require.NoError(t, err)
	got := c.Placed[0]
	l, _, _ := got.Dimension()
	assert.LessOrEqual(t, got.X+l, c.L+model.Epsilon)
}

func TestRotateInPlaceRejectsBadIndex(t *testing.T) {
	c := model.NewContainer(10000, 2400, 2600, 28000, true, 0)
	assert.Error(t, RotateInPlace(c, 0))
}
