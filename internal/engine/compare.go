package engine

import "github.com/piwi3910/loadplanner/internal/model"

// StrategyResult holds one strategy's outcome from a single placement pass,
// for side-by-side reporting (the solver already picks a winner internally;
// this is diagnostic transparency, not a second selection pass). The pass
// does not include Solve's stacking-enabled retry of leftovers.
type StrategyResult struct {
	Strategy      string
	PackedCount   int
	UnpackedCount int
	WeightUtil    float64
	VolumeUtil    float64
	BalanceRatio  float64
	Score         float64
}

// CompareStrategies runs both placement strategies independently against
// the same request and reports their statistics side by side, mirroring
// CompareScenarios's role of surfacing what-if alternatives rather than
// picking a winner.
func CompareStrategies(req SolveRequest) []StrategyResult {
	cfg := req.Config
	if cfg == (model.SolveConfig{}) {
		cfg = model.DefaultSolveConfig()
	}

	loadOrder := Partition(req.Items, &model.Container{L: req.ContainerL}, cfg)
	isLong := req.ContainerL > model.FortyFootThreshold

	names := []string{"Spot_Centric_Fit", "Density_First_Fit"}
	out := make([]StrategyResult, 0, len(names))

	for _, name := range names {
		initialStacking := req.AllowStacking
		if isLong {
			initialStacking = false
		}
		container := model.NewContainer(req.ContainerL, req.ContainerW, req.ContainerH, req.MaxWeight, initialStacking, 0)
		pool := cloneItems(loadOrder)
		unpacked := runStrategy(name, container, pool, cfg)
		container.Unpacked = unpacked

		stats := model.ComputeStatistics(container)
		score := float64(len(unpacked))*10000 + absFloat(stats.BalanceRatio-50)*10

		out = append(out, StrategyResult{
			Strategy:      name,
			PackedCount:   stats.PackedCount,
			UnpackedCount: stats.UnpackedCount,
			WeightUtil:    stats.WeightUtilization,
			VolumeUtil:    stats.VolumeUtilization,
			BalanceRatio:  stats.BalanceRatio,
			Score:         score,
		})
	}

	return out
}

func absFloat(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
