package model

import "math"

// Epsilon is the tolerance applied to every geometric comparison in the
// engine, to absorb floating-point and input-rounding error. Load-bearing:
// changing it shifts what counts as a collision or a supported fit.
const Epsilon = 1.0

// PyramidTolerance is the fractional weight allowance an upper item gets
// over its supporter's weight (10%).
const PyramidTolerance = 1.10

// SupportAreaThreshold is the minimum fraction of the upper item's footprint
// that must rest on its supporter.
const SupportAreaThreshold = 0.95

// Collides reports whether a candidate box at (x, y, z) with footprint
// (l, w, h) would intersect an already-placed item, using strict AABB
// overlap on all three axes with the package epsilon.
func Collides(x, y, z, l, w, h float64, other Item) bool {
	ol, ow, oh := other.Dimension()
	return x < other.X+ol-Epsilon && x+l > other.X+Epsilon &&
		y < other.Y+ow-Epsilon && y+w > other.Y+Epsilon &&
		z < other.Z+oh-Epsilon && z+h > other.Z+Epsilon
}

// overlapArea returns the axis-aligned overlap area of two footprints given
// as (x, y, l, w) rectangles.
func overlapArea(ax, ay, al, aw, bx, by, bl, bw float64) float64 {
	x0 := math.Max(ax, bx)
	x1 := math.Min(ax+al, bx+bl)
	y0 := math.Max(ay, by)
	y1 := math.Min(ay+aw, by+bw)
	ox := math.Max(0, x1-x0)
	oy := math.Max(0, y1-y0)
	return ox * oy
}

// Supports decides whether `below` can legally support `above` at the
// candidate position (x, y, z). cfg supplies the tolerances so a caller
// sweeping SolveConfig.Epsilon (etc.) actually changes what this predicate
// accepts.
func Supports(below, above Item, x, y, z float64, maxLayers int, cfg SolveConfig) bool {
	bl, bw, bh := below.Dimension()
	al, aw, _ := above.Dimension()

	// 1. Adjacency.
	if math.Abs((below.Z+bh)-z) > cfg.Epsilon {
		return false
	}

	// 2. Packaging policy.
	if below.PackagingType == Pallet && above.PackagingType == Crate {
		return false
	}
	if below.PackagingType == Crate && above.PackagingType == Pallet {
		if al >= bl-cfg.Epsilon || aw >= bw-cfg.Epsilon {
			return false
		}
	}

	// 3. Global layer cap.
	if below.StackLayer >= maxLayers {
		return false
	}

	// 4. Pyramid rule.
	if above.Weight > below.Weight*cfg.PyramidTolerance {
		return false
	}

	// 5. Non-overhang.
	if al > bl+cfg.Epsilon || aw > bw+cfg.Epsilon {
		return false
	}

	// 6. Top-load budget.
	if below.CurrentLoadOnTop+above.Weight > below.MaxLoadOnTop {
		return false
	}

	// 7. Support area.
	area := overlapArea(below.X, below.Y, bl, bw, x, y, al, aw)
	if area < al*aw*cfg.SupportAreaThreshold {
		return false
	}

	return true
}
