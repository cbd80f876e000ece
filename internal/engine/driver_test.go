package engine

import (
	"testing"

	"github.com/piwi3910/loadplanner/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twentyFtRequest(items []model.Item) SolveRequest {
	preset := model.GetContainerPreset("20ft Standard")
	return SolveRequest{
		ContainerL:    preset.L,
		ContainerW:    preset.W,
		ContainerH:    preset.H,
		MaxWeight:     preset.MaxWeight,
		AllowStacking: true,
		Items:         items,
		Config:        model.DefaultSolveConfig(),
	}
}

func TestSolvePlacesSingleItem(t *testing.T) {
	items := []model.Item{model.NewItem("Crate A", 1200, 1000, 1000, 500, model.Crate)}
	result := Solve(twentyFtRequest(items))

	require.NotNil(t, result.Container)
	assert.Len(t, result.Container.Placed, 1)
	assert.Len(t, result.Container.Unpacked, 0)
}

func TestSolveRejectsOverweightBatch(t *testing.T) {
	items := []model.Item{
		model.NewItem("Heavy1", 1200, 1000, 1000, 20000, model.Pallet),
		model.NewItem("Heavy2", 1200, 1000, 1000, 20000, model.Pallet),
	}
	result := Solve(twentyFtRequest(items))

	require.NotNil(t, result.Container)
	total := 0.0
	for _, it := range result.Container.Placed {
		total += it.Weight
	}
	assert.LessOrEqual(t, total, result.Container.MaxWeight)
	assert.GreaterOrEqual(t, len(result.Container.Unpacked), 1)
}

func TestSolveNoOverlapInvariant(t *testing.T) {
	var items []model.Item
	for i := 0; i < 12; i++ {
		items = append(items, model.NewItem("Box", 1100, 1100, 1000, 300, model.Pallet))
	}
	result := Solve(twentyFtRequest(items))
	require.NotNil(t, result.Container)

	placed := result.Container.Placed
	for i := 0; i < len(placed); i++ {
		for j := i + 1; j < len(placed); j++ {
			assert.False(t, model.Collides(
				placed[i].X, placed[i].Y, placed[i].Z,
				itemL(placed[i]), itemW(placed[i]), itemH(placed[i]),
				placed[j],
			), "items %d and %d should not overlap", i, j)
		}
	}
}

func TestSolveContainmentInvariant(t *testing.T) {
	var items []model.Item
	for i := 0; i < 8; i++ {
		items = append(items, model.NewItem("Box", 1200, 1000, 900, 400, model.Crate))
	}
	result := Solve(twentyFtRequest(items))
	require.NotNil(t, result.Container)

	for _, it := range result.Container.Placed {
		l, w, h := it.Dimension()
		assert.GreaterOrEqual(t, it.X, -model.Epsilon)
		assert.GreaterOrEqual(t, it.Y, -model.Epsilon)
		assert.GreaterOrEqual(t, it.Z, -model.Epsilon)
		assert.LessOrEqual(t, it.X+l, result.Container.L+model.Epsilon)
		assert.LessOrEqual(t, it.Y+w, result.Container.W+model.Epsilon)
		assert.LessOrEqual(t, it.Z+h, result.Container.H+model.Epsilon)
	}
}

func TestSolveIdempotent(t *testing.T) {
	items := []model.Item{
		model.NewItem("A", 1200, 1000, 1000, 500, model.Pallet),
		model.NewItem("B", 1200, 1000, 1000, 500, model.Pallet),
		model.NewItem("C", 1000, 800, 900, 300, model.Crate),
	}
	r1 := Solve(twentyFtRequest(items))
	r2 := Solve(twentyFtRequest(items))

	assert.Equal(t, len(r1.Container.Placed), len(r2.Container.Placed))
	assert.Equal(t, len(r1.Container.Unpacked), len(r2.Container.Unpacked))
	assert.InDelta(t, r1.Score, r2.Score, 0.001)
}

func itemL(it model.Item) float64 { l, _, _ := it.Dimension(); return l }
func itemW(it model.Item) float64 { _, w, _ := it.Dimension(); return w }
func itemH(it model.Item) float64 { _, _, h := it.Dimension(); return h }
