package engine

import (
	"math"
	"sort"

	"github.com/piwi3910/loadplanner/internal/model"
)

// Partition splits a pool of items into longitudinal loading zones and
// returns them concatenated in final load order. For a 40ft container this
// is zones A, B, C; for a 20ft container, zones A, B.
func Partition(pool []model.Item, c *model.Container, cfg model.SolveConfig) []model.Item {
	var totalWeight float64
	for _, it := range pool {
		totalWeight += it.Weight
	}

	var a, b, cc []model.Item
	if c.IsLongContainer() {
		a, b, cc = partition40ft(pool, totalWeight, cfg)
	} else {
		a, b = partition20ft(pool, totalWeight, cfg)
	}

	sortZone(a)
	sortZone(b)
	if c.IsLongContainer() {
		sortZone(cc)
		out := make([]model.Item, 0, len(a)+len(b)+len(cc))
		out = append(out, a...)
		out = append(out, b...)
		out = append(out, cc...)
		return out
	}
	out := make([]model.Item, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}

func partition40ft(pool []model.Item, totalWeight float64, cfg model.SolveConfig) (a, b, cc []model.Item) {
	targetA := cfg.ZoneATarget40ft * totalWeight

	var mustGoA, canGoB, others []model.Item
	for _, it := range pool {
		maxD := math.Max(it.L, it.W)
		switch {
		case maxD > 9000:
			mustGoA = append(mustGoA, it)
		case maxD >= 3000:
			canGoB = append(canGoB, it)
		default:
			others = append(others, it)
		}
	}

	a = append(a, mustGoA...)
	var currentAWeight float64
	for _, it := range a {
		currentAWeight += it.Weight
	}

	sort.SliceStable(others, func(i, j int) bool {
		if others[i].H != others[j].H {
			return others[i].H > others[j].H
		}
		return others[i].Weight > others[j].Weight
	})

	var remainingOthers []model.Item
	for _, it := range others {
		if currentAWeight < targetA {
			a = append(a, it)
			currentAWeight += it.Weight
		} else {
			remainingOthers = append(remainingOthers, it)
		}
	}

	b = append(b, canGoB...)
	sort.SliceStable(remainingOthers, func(i, j int) bool {
		if remainingOthers[i].TypeID != remainingOthers[j].TypeID {
			return remainingOthers[i].TypeID > remainingOthers[j].TypeID
		}
		if remainingOthers[i].Weight != remainingOthers[j].Weight {
			return remainingOthers[i].Weight > remainingOthers[j].Weight
		}
		return remainingOthers[i].H > remainingOthers[j].H
	})

	var currentBWeight float64
	for _, it := range b {
		currentBWeight += it.Weight
	}
	targetBFill := totalWeight * cfg.ZoneBTarget40ft

	for _, it := range remainingOthers {
		if currentBWeight < targetBFill {
			b = append(b, it)
			currentBWeight += it.Weight
		} else {
			cc = append(cc, it)
		}
	}
	return a, b, cc
}

func partition20ft(pool []model.Item, totalWeight float64, cfg model.SolveConfig) (a, b []model.Item) {
	targetA := cfg.ZoneATarget20ft * totalWeight

	sorted := append([]model.Item{}, pool...)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].H != sorted[j].H {
			return sorted[i].H > sorted[j].H
		}
		return sorted[i].Weight > sorted[j].Weight
	})

	var currentAWeight float64
	for _, it := range sorted {
		if currentAWeight < targetA {
			a = append(a, it)
			currentAWeight += it.Weight
		} else {
			b = append(b, it)
		}
	}

	for iter := 0; iter < cfg.MaxRatioIters; iter++ {
		var wtA float64
		for _, it := range a {
			wtA += it.Weight
		}
		ratioA := 0.0
		if totalWeight > 0 {
			ratioA = wtA / totalWeight * 100
		}
		if ratioA >= cfg.ZoneAMinRatio && ratioA <= cfg.ZoneAMaxRatio {
			break
		}

		if ratioA > cfg.ZoneAMaxRatio {
			var candidates []model.Item
			var candidateIdx []int
			for i, it := range a {
				if it.L < 3000 {
					candidates = append(candidates, it)
					candidateIdx = append(candidateIdx, i)
				}
			}
			if len(candidates) == 0 {
				break
			}
			sort.SliceStable(candidateIdx, func(i, j int) bool {
				ii, jj := candidateIdx[i], candidateIdx[j]
				if a[ii].L != a[jj].L {
					return a[ii].L < a[jj].L
				}
				return a[ii].Weight > a[jj].Weight
			})
			moveIdx := candidateIdx[0]
			item := a[moveIdx]
			a = append(a[:moveIdx], a[moveIdx+1:]...)
			b = append(b, item)
		} else {
			if len(b) == 0 {
				break
			}
			sort.SliceStable(b, func(i, j int) bool {
				if b[i].H != b[j].H {
					return b[i].H > b[j].H
				}
				return b[i].Weight > b[j].Weight
			})
			item := b[0]
			b = b[1:]
			a = append(a, item)
		}
	}
	return a, b
}

// sortZone applies the final smart-vertical load-order key within a zone,
// descending: super-long flag, user priority, a coarse height bin, weight,
// then raw height.
func sortZone(zone []model.Item) {
	sort.SliceStable(zone, func(i, j int) bool {
		ki := smartVerticalKey(zone[i])
		kj := smartVerticalKey(zone[j])
		for k := range ki {
			if ki[k] != kj[k] {
				return ki[k] > kj[k]
			}
		}
		return false
	})
}

func smartVerticalKey(it model.Item) [5]float64 {
	maxDim := math.Max(it.L, it.W)
	superLong := 0.0
	switch {
	case maxDim >= 6000:
		superLong = 2
	case maxDim >= 3000:
		superLong = 1
	}
	hBin := math.Floor(it.H / 100)
	return [5]float64{superLong, float64(-it.Priority), hBin, it.Weight, it.H}
}
