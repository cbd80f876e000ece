package model

// Statistics summarizes a solved container: utilization, weight split
// across the three mid-planes, and center of gravity.
type Statistics struct {
	PackedCount   int `json:"packed_count"`
	UnpackedCount int `json:"unpacked_count"`

	WeightTotal       float64 `json:"weight_total"`
	WeightUtilization float64 `json:"weight_utilization"`
	VolumeUtilization float64 `json:"volume_utilization"`

	WeightNose   float64 `json:"weight_nose"`
	WeightDoor   float64 `json:"weight_door"`
	WeightLeft   float64 `json:"weight_left"`
	WeightRight  float64 `json:"weight_right"`
	WeightBottom float64 `json:"weight_bottom"`
	WeightTop    float64 `json:"weight_top"`

	// BalanceRatio is an alias for BalanceRatioLen, preserved from the
	// original implementation's unqualified `balance_ratio` field.
	BalanceRatio       float64 `json:"balance_ratio"`
	BalanceRatioLen    float64 `json:"balance_ratio_len"`
	BalanceRatioWidth  float64 `json:"balance_ratio_width"`
	BalanceRatioHeight float64 `json:"balance_ratio_height"`

	CoGX float64 `json:"cog_x"`
	CoGY float64 `json:"cog_y"`
	CoGZ float64 `json:"cog_z"`
}

// ComputeStatistics derives the full statistics record from a container's
// placed items.
func ComputeStatistics(c *Container) Statistics {
	stats := Statistics{
		PackedCount:   len(c.Placed),
		UnpackedCount: len(c.Unpacked),
	}

	totalVol := c.L * c.W * c.H
	var usedVol float64
	for _, it := range c.Placed {
		usedVol += it.Volume()
		stats.WeightTotal += it.Weight
	}
	if totalVol > 0 {
		stats.VolumeUtilization = usedVol / totalVol * 100
	}
	if c.MaxWeight > 0 {
		stats.WeightUtilization = stats.WeightTotal / c.MaxWeight * 100
	}

	midL, midW, midH := c.L/2, c.W/2, c.H/2

	if stats.WeightTotal == 0 {
		stats.BalanceRatio = 50.0
		stats.BalanceRatioLen = 50.0
		stats.BalanceRatioWidth = 50.0
		stats.BalanceRatioHeight = 50.0
		stats.CoGX, stats.CoGY, stats.CoGZ = midL, midW, midH
		return stats
	}

	var momentX, momentY, momentZ float64
	for _, it := range c.Placed {
		l, w, h := it.Dimension()
		cx := it.X + l/2
		cy := it.Y + w/2
		cz := it.Z + h/2

		momentX += cx * it.Weight
		momentY += cy * it.Weight
		momentZ += cz * it.Weight

		switch {
		case cx < midL:
			stats.WeightNose += it.Weight
		case cx > midL:
			stats.WeightDoor += it.Weight
		default:
			stats.WeightNose += it.Weight * 0.5
			stats.WeightDoor += it.Weight * 0.5
		}
		switch {
		case cy < midW:
			stats.WeightLeft += it.Weight
		case cy > midW:
			stats.WeightRight += it.Weight
		default:
			stats.WeightLeft += it.Weight * 0.5
			stats.WeightRight += it.Weight * 0.5
		}
		switch {
		case cz < midH:
			stats.WeightBottom += it.Weight
		case cz > midH:
			stats.WeightTop += it.Weight
		default:
			stats.WeightBottom += it.Weight * 0.5
			stats.WeightTop += it.Weight * 0.5
		}
	}

	stats.CoGX = momentX / stats.WeightTotal
	stats.CoGY = momentY / stats.WeightTotal
	stats.CoGZ = momentZ / stats.WeightTotal

	stats.BalanceRatioLen = stats.WeightNose / stats.WeightTotal * 100
	stats.BalanceRatioWidth = stats.WeightLeft / stats.WeightTotal * 100
	stats.BalanceRatioHeight = stats.WeightBottom / stats.WeightTotal * 100
	stats.BalanceRatio = stats.BalanceRatioLen

	return stats
}

// LongitudinalWeightRatio returns the nose-half weight ratio used by the
// solver driver's scoring function.
func LongitudinalWeightRatio(c *Container) float64 {
	if c.CurrentWeight == 0 {
		return 50.0
	}
	midL := c.L / 2
	var weightNose float64
	for _, it := range c.Placed {
		l, _, _ := it.Dimension()
		cx := it.X + l/2
		switch {
		case cx < midL:
			weightNose += it.Weight
		case cx == midL:
			weightNose += it.Weight * 0.5
		}
	}
	return weightNose / c.CurrentWeight * 100
}
