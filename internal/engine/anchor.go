package engine

import (
	"math"
	"sort"

	"github.com/piwi3910/loadplanner/internal/model"
)

// Anchor is one candidate placement position for an item, carrying enough
// of the scoring breakdown to let a strategy compare anchors across items
// without recomputing them.
type Anchor struct {
	X, Y, Z     float64
	SortKey     []float64
	GapMetric   float64
	SupportItem *model.Item // nil at z == 0
}

// anchorWindow bounds the X range a caller wants anchors generated within.
// Both strategies pass fullWindow, so placement is never confined to a zone.
type anchorWindow struct {
	StartX float64
	EndX   float64 // 0 means "container length"
}

// ValidAnchors enumerates every legal, non-colliding, adequately-supported
// position for item within the window, scored and sorted per strategy. This
// is a direct port of Container.get_all_valid_anchors: candidate coordinates
// come from container walls plus every placed item's edges (and their
// item-length/width back-offsets), never from a continuous search.
func ValidAnchors(c *model.Container, item model.Item, window anchorWindow, cfg model.SolveConfig, strategy model.ScoringStrategy) []Anchor {
	endX := window.EndX
	if endX == 0 {
		endX = c.L
	}
	startX := window.StartX

	il, iw, ih := item.Dimension()
	eps := cfg.Epsilon

	uniqueX := map[float64]bool{0: true, c.L: true, startX: true}
	uniqueY := map[float64]bool{0: true, c.W: true}
	uniqueZ := map[float64]bool{0: true}

	if c.AllowStacking {
		for _, placed := range c.Placed {
			if placed.AllowStacking {
				_, _, ph := placed.Dimension()
				uniqueZ[placed.Z+ph] = true
			}
		}
	}

	if snapY := c.W - iw; snapY >= -eps {
		uniqueY[snapY] = true
	}
	if snapX := c.L - il; snapX >= -eps {
		uniqueX[snapX] = true
	}

	for _, placed := range c.Placed {
		pl, pw, _ := placed.Dimension()
		uniqueX[placed.X] = true
		uniqueX[placed.X+pl] = true
		uniqueY[placed.Y] = true
		uniqueY[placed.Y+pw] = true

		if placed.X-il >= -eps {
			uniqueX[placed.X-il] = true
		}
		if placed.X+pl-il >= -eps {
			uniqueX[placed.X+pl-il] = true
		}
		if placed.Y-iw >= -eps {
			uniqueY[placed.Y-iw] = true
		}
		if placed.Y+pw-iw >= -eps {
			uniqueY[placed.Y+pw-iw] = true
		}
	}

	var validX, validY, validZ []float64
	for x := range uniqueX {
		if x >= startX-eps && x <= (endX-il)+eps {
			validX = append(validX, x)
		}
	}
	for y := range uniqueY {
		if y+iw <= c.W+eps {
			validY = append(validY, y)
		}
	}
	for z := range uniqueZ {
		if z+ih <= c.H+eps {
			validZ = append(validZ, z)
		}
	}

	maxLayers := c.MaxLayers()
	var anchors []Anchor

	for _, z := range validZ {
		for _, x := range validX {
			for _, y := range validY {
				var supportItem *model.Item
				if z > 0 {
					supported := false
					for i := range c.Placed {
						p := &c.Placed[i]
						_, _, ph := p.Dimension()
						if math.Abs((p.Z+ph)-z) >= eps {
							continue
						}
						if model.Supports(*p, item, x, y, z, maxLayers, cfg) {
							supportItem = p
							supported = true
							break
						}
					}
					if !supported {
						continue
					}
				}

				collision := false
				for _, other := range c.Placed {
					if model.Collides(x, y, z, il, iw, ih, other) {
						collision = true
						break
					}
				}
				if collision {
					continue
				}

				gapMetric := (endX - (x + il)) + (c.W - (y + iw))
				distLeft := y
				distRight := math.Abs(c.W - (y + iw))
				minWallDist := math.Min(distLeft, distRight)

				var sortKey []float64
				if strategy == model.ScoringDensity {
					sortKey = []float64{x, z, minWallDist, gapMetric}
				} else {
					sortKey = balancedSortKey(c, item, x, y, z, il, iw, ih, gapMetric, minWallDist, supportItem, cfg)
				}

				anchors = append(anchors, Anchor{
					X: x, Y: y, Z: z,
					SortKey:     sortKey,
					GapMetric:   gapMetric,
					SupportItem: supportItem,
				})
			}
		}
	}

	sort.Slice(anchors, func(i, j int) bool {
		return lessLex(anchors[i].SortKey, anchors[j].SortKey)
	})
	return anchors
}

// balancedSortKey builds the 10-element lexicographic key the 'balanced'
// strategy sorts anchors by: (x, z, -perfectMatch, -stacking, -wall,
// -grouping, -type, -adjacency, gapMetric, y). Negated terms are bonuses:
// a larger bonus must sort earlier, i.e. more negative.
func balancedSortKey(c *model.Container, item model.Item, x, y, z, il, iw, ih, gapMetric, minWallDist float64, supportItem *model.Item, cfg model.SolveConfig) []float64 {
	var wallBonus float64
	if minWallDist < cfg.Epsilon {
		wallBonus += cfg.WallBonus
	}
	if x < cfg.Epsilon {
		wallBonus += cfg.BackWallBonus
	}

	var groupingBonus, typeBonus float64
	proximityThreshold := math.Max(il, math.Max(iw, ih)) * 2
	for _, other := range c.Placed {
		dist := math.Abs(other.X-x) + math.Abs(other.Y-y) + math.Abs(other.Z-z)
		if dist < proximityThreshold {
			if other.TypeID == item.TypeID {
				typeBonus += cfg.TypeBonus
			}
			if other.PackagingType == item.PackagingType {
				groupingBonus += cfg.GroupingBonus
			}
		}
	}

	var stackingBonus, perfectMatchStack float64
	if z > 0 {
		stackingBonus = cfg.StackingBonus
		if supportItem != nil && supportItem.TypeID == item.TypeID {
			perfectMatchStack = cfg.PerfectMatchBonus
		}
	}

	var adjacencyBonus float64
	for _, other := range c.Placed {
		ol, ow, oh := other.Dimension()
		touching := math.Abs(x-(other.X+ol)) < cfg.Epsilon ||
			math.Abs((x+il)-other.X) < cfg.Epsilon ||
			math.Abs(y-(other.Y+ow)) < cfg.Epsilon ||
			math.Abs((y+iw)-other.Y) < cfg.Epsilon
		if touching && math.Abs(z-other.Z) < oh {
			adjacencyBonus += cfg.AdjacencyBonus
			break
		}
	}

	return []float64{
		x, z,
		-perfectMatchStack, -stackingBonus, -wallBonus,
		-groupingBonus, -typeBonus, -adjacencyBonus,
		gapMetric, y,
	}
}

// lessLex compares two sort keys element by element, shorter-prefix-first.
func lessLex(a, b []float64) bool {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return len(a) < len(b)
}
