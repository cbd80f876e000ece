package engine

import "github.com/piwi3910/loadplanner/internal/model"

// rotationsToTry returns the rotation values a strategy should attempt for
// item against container c, in priority order: an item too long to ever
// fit unrotated against the width only gets rotation 0;
// pallets try rotated-first (freeing floor length), crates try unrotated
// first.
func rotationsToTry(item model.Item, c *model.Container) []model.Rotation {
	if item.L > c.W {
		return []model.Rotation{model.RotationNone}
	}
	if item.PackagingType == model.Pallet {
		return []model.Rotation{model.RotationRotated, model.RotationNone}
	}
	return []model.Rotation{model.RotationNone, model.RotationRotated}
}

// fullWindow spans the whole container length; neither strategy restricts
// anchor search to a zone — zoning only orders the item pool.
var fullWindow = anchorWindow{StartX: 0, EndX: 0}

// placeItem commits item to the container at the given anchor: updates the
// supporting item's load ledger and the winner's stack layer, appends to
// Placed, and advances CurrentWeight.
func placeItem(c *model.Container, item model.Item, rot model.Rotation, a Anchor) {
	item.Rotation = rot
	item.X, item.Y, item.Z = a.X, a.Y, a.Z
	if a.SupportItem != nil {
		a.SupportItem.CurrentLoadOnTop += item.Weight
		item.StackLayer = a.SupportItem.StackLayer + 1
	} else {
		item.StackLayer = 1
	}
	c.Placed = append(c.Placed, item)
	c.CurrentWeight += item.Weight

	if a.SupportItem != nil {
		for i := range c.Placed {
			if c.Placed[i].ID == a.SupportItem.ID {
				c.Placed[i].CurrentLoadOnTop = a.SupportItem.CurrentLoadOnTop
				break
			}
		}
	}
}

// SpotCentricFit repeatedly scans the entire remaining pool and commits
// whichever (item, rotation, anchor) triple has the globally best sort key.
// It mutates pool in place, consuming items, and returns the items it
// could not place.
func SpotCentricFit(c *model.Container, pool []model.Item, cfg model.SolveConfig) []model.Item {
	for len(pool) > 0 {
		bestIdx := -1
		var bestRot model.Rotation
		var bestAnchor Anchor
		haveBest := false

		for idx, item := range pool {
			if c.CurrentWeight+item.Weight > c.MaxWeight {
				continue
			}
			for _, rot := range rotationsToTry(item, c) {
				trial := item
				trial.Rotation = rot
				anchors := ValidAnchors(c, trial, fullWindow, cfg, model.ScoringBalanced)
				if len(anchors) == 0 {
					continue
				}
				candidate := anchors[0]
				if !haveBest || lessLex(candidate.SortKey, bestAnchor.SortKey) {
					haveBest = true
					bestIdx = idx
					bestRot = rot
					bestAnchor = candidate
				}
			}
		}

		if !haveBest {
			return append([]model.Item{}, pool...)
		}

		winner := pool[bestIdx]
		pool = append(pool[:bestIdx], pool[bestIdx+1:]...)
		placeItem(c, winner, bestRot, bestAnchor)
	}
	return nil
}

// DensityFirstFit scans the pool in order and commits the first item that
// fits (trying all its rotations and taking the best anchor among them).
// It mutates pool in place and returns the items it could not place.
func DensityFirstFit(c *model.Container, pool []model.Item, cfg model.SolveConfig) []model.Item {
	for len(pool) > 0 {
		foundIdx := -1
		var foundRot model.Rotation
		var foundAnchor Anchor

		for idx, item := range pool {
			if c.CurrentWeight+item.Weight > c.MaxWeight {
				continue
			}
			var bestAnchor Anchor
			var bestRot model.Rotation
			have := false
			for _, rot := range rotationsToTry(item, c) {
				trial := item
				trial.Rotation = rot
				anchors := ValidAnchors(c, trial, fullWindow, cfg, model.ScoringDensity)
				if len(anchors) == 0 {
					continue
				}
				if !have || lessLex(anchors[0].SortKey, bestAnchor.SortKey) {
					have = true
					bestAnchor = anchors[0]
					bestRot = rot
				}
			}
			if have {
				foundIdx = idx
				foundRot = bestRot
				foundAnchor = bestAnchor
				break
			}
		}

		if foundIdx < 0 {
			return append([]model.Item{}, pool...)
		}

		winner := pool[foundIdx]
		pool = append(pool[:foundIdx], pool[foundIdx+1:]...)
		placeItem(c, winner, foundRot, foundAnchor)
	}
	return nil
}
