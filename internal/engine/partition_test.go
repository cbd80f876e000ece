package engine

import (
	"testing"

	"github.com/piwi3910/loadplanner/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPartitionPreservesAllItems(t *testing.T) {
	c := model.NewContainer(12030, 2350, 2390, 28000, true, 0)
	var pool []model.Item
	for i := 0; i < 10; i++ {
		pool = append(pool, model.NewItem("Box", 1200, 1000, 900, 300, model.Pallet))
	}
	out := Partition(pool, c, model.DefaultSolveConfig())
	assert.Len(t, out, len(pool))
}

func TestPartition20ftRatioWindow(t *testing.T) {
	c := model.NewContainer(5900, 2350, 2390, 28000, true, 0)
	cfg := model.DefaultSolveConfig()
	var pool []model.Item
	for i := 0; i < 20; i++ {
		pool = append(pool, model.NewItem("Box", 1000, 900, 900, 500, model.Pallet))
	}
	out := Partition(pool, c, cfg)
	require.Len(t, out, 20)

	a, _ := partition20ft(pool, 10000, cfg)
	var wtA float64
	for _, it := range a {
		wtA += it.Weight
	}
	ratioA := wtA / 10000 * 100
	assert.GreaterOrEqual(t, ratioA, cfg.ZoneAMinRatio)
	assert.LessOrEqual(t, ratioA, cfg.ZoneAMaxRatio)
}

func TestPartition40ftSendsOversizeToZoneA(t *testing.T) {
	c := model.NewContainer(12030, 2350, 2390, 28000, true, 0)
	cfg := model.DefaultSolveConfig()
	oversize := model.NewItem("Oversize", 9500, 2000, 900, 1000, model.Pallet)
	small := model.NewItem("Small", 1000, 900, 900, 200, model.Pallet)
	out := Partition([]model.Item{small, oversize}, c, cfg)
	require.Len(t, out, 2)
	assert.Equal(t, "Oversize", out[0].Name)
}
