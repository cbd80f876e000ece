package engine

import (
	"sort"

	"github.com/piwi3910/loadplanner/internal/model"
)

// SolveRequest describes one loading problem: the container's intrinsic
// geometry and the pool of items to place.
type SolveRequest struct {
	ContainerL, ContainerW, ContainerH float64
	MaxWeight                          float64
	AllowStacking                      bool
	Items                              []model.Item
	Config                             model.SolveConfig
}

// SolveResult is the winning container plus the name and score of the
// strategy that produced it, kept for diagnostics.
type SolveResult struct {
	Container       *model.Container
	WinningStrategy string
	Score           float64
}

// Solve runs the full pipeline: partition the pool into longitudinal zones,
// try both placement strategies, retry leftovers with stacking forced on,
// score each attempt, and keep the best.
func Solve(req SolveRequest) SolveResult {
	cfg := req.Config
	if cfg == (model.SolveConfig{}) {
		cfg = model.DefaultSolveConfig()
	}

	loadOrder := Partition(req.Items, &model.Container{L: req.ContainerL}, cfg)

	strategies := []string{"Spot_Centric_Fit", "Density_First_Fit"}
	isLong := req.ContainerL > model.FortyFootThreshold

	var best SolveResult
	best.Score = -1

	for _, strat := range strategies {
		initialStacking := req.AllowStacking
		if isLong {
			initialStacking = false
		}
		container := model.NewContainer(req.ContainerL, req.ContainerW, req.ContainerH, req.MaxWeight, initialStacking, 0)

		pool := cloneItems(loadOrder)
		unpacked := runStrategy(strat, container, pool, cfg)

		if len(unpacked) > 0 {
			container.AllowStacking = true
			leftovers := append([]model.Item{}, unpacked...)
			sort.SliceStable(leftovers, func(i, j int) bool {
				if leftovers[i].Weight != leftovers[j].Weight {
					return leftovers[i].Weight > leftovers[j].Weight
				}
				return leftovers[i].BaseArea() > leftovers[j].BaseArea()
			})
			unpacked = runStrategy(strat, container, leftovers, cfg)
		}
		container.Unpacked = unpacked

		score := float64(len(unpacked)) * 10000
		ratioNose := model.LongitudinalWeightRatio(container)
		diff := ratioNose - 50
		if diff < 0 {
			diff = -diff
		}
		score += diff * 10

		if best.Score < 0 || score < best.Score {
			best = SolveResult{Container: container, WinningStrategy: strat, Score: score}
		}
	}

	if best.Container != nil {
		midL := best.Container.L / 2
		midW := best.Container.W / 2
		midH := best.Container.H / 2
		for i := range best.Container.Unpacked {
			it := &best.Container.Unpacked[i]
			l, w, h := it.Dimension()
			it.X = midL - l/2
			it.Y = midW - w/2
			it.Z = midH - h/2
		}
		assignColors(best.Container)
	}

	return best
}

// assignColors fills in Item.Color for every item in the container that
// doesn't already carry one; items with a preset Color keep it.
func assignColors(c *model.Container) {
	for i := range c.Placed {
		if c.Placed[i].Color == "" {
			c.Placed[i].Color = AssignColor(c.Placed[i])
		}
	}
	for i := range c.Unpacked {
		if c.Unpacked[i].Color == "" {
			c.Unpacked[i].Color = AssignColor(c.Unpacked[i])
		}
	}
}

func runStrategy(name string, c *model.Container, pool []model.Item, cfg model.SolveConfig) []model.Item {
	if name == "Spot_Centric_Fit" {
		return SpotCentricFit(c, pool, cfg)
	}
	return DensityFirstFit(c, pool, cfg)
}

func cloneItems(items []model.Item) []model.Item {
	out := make([]model.Item, len(items))
	copy(out, items)
	return out
}
