package model

// ScoringStrategy selects which anchor-scoring heuristic the anchor
// generator applies.
type ScoringStrategy string

const (
	ScoringBalanced ScoringStrategy = "balanced"
	ScoringDensity  ScoringStrategy = "density"
)

// SolveConfig exposes the load-bearing constants as configuration so
// experiments can sweep them without touching the solver itself.
type SolveConfig struct {
	Epsilon              float64 `json:"epsilon"`
	PyramidTolerance     float64 `json:"pyramid_tolerance"`
	SupportAreaThreshold float64 `json:"support_area_threshold"`

	WallBonus           float64 `json:"wall_bonus"`
	BackWallBonus       float64 `json:"back_wall_bonus"`
	TypeBonus           float64 `json:"type_bonus"`
	GroupingBonus       float64 `json:"grouping_bonus"`
	StackingBonus       float64 `json:"stacking_bonus"`
	PerfectMatchBonus   float64 `json:"perfect_match_bonus"`
	AdjacencyBonus      float64 `json:"adjacency_bonus"`

	ZoneATarget40ft float64 `json:"zone_a_target_40ft"` // 0.20
	ZoneBTarget40ft float64 `json:"zone_b_target_40ft"` // 0.60
	ZoneATarget20ft float64 `json:"zone_a_target_20ft"` // 0.42
	ZoneAMinRatio   float64 `json:"zone_a_min_ratio"`   // 40.0
	ZoneAMaxRatio   float64 `json:"zone_a_max_ratio"`   // 45.0
	MaxRatioIters   int     `json:"max_ratio_iterations"`

	// Accepted but never consulted — vestigial hooks preserved for API
	// compatibility with the source this solver was ported from.
	NSimulations int     `json:"n_simulations"`
	MaxLRDiff    float64 `json:"max_lr_diff"`
	MaxFBDiff    float64 `json:"max_fb_diff"`
}

// DefaultSolveConfig returns the engine's default tunable constants.
func DefaultSolveConfig() SolveConfig {
	return SolveConfig{
		Epsilon:              Epsilon,
		PyramidTolerance:     PyramidTolerance,
		SupportAreaThreshold: SupportAreaThreshold,

		WallBonus:         5000,
		BackWallBonus:     2000,
		TypeBonus:         20,
		GroupingBonus:     10,
		StackingBonus:     20000,
		PerfectMatchBonus: 50000,
		AdjacencyBonus:    30,

		ZoneATarget40ft: 0.20,
		ZoneBTarget40ft: 0.60,
		ZoneATarget20ft: 0.42,
		ZoneAMinRatio:   40.0,
		ZoneAMaxRatio:   45.0,
		MaxRatioIters:   2000,

		NSimulations: 500,
		MaxLRDiff:    1000,
		MaxFBDiff:    1000,
	}
}

// ContainerPreset is a named standard container size.
type ContainerPreset struct {
	Name      string  `json:"name"`
	L         float64 `json:"l"`
	W         float64 `json:"w"`
	H         float64 `json:"h"`
	MaxWeight float64 `json:"max_weight"`
}

// ContainerPresets lists the standard ISO dry-van sizes the engine is tuned
// against.
var ContainerPresets = []ContainerPreset{
	{Name: "20ft Standard", L: 5900, W: 2350, H: 2390, MaxWeight: 28000},
	{Name: "40ft Standard", L: 12030, W: 2350, H: 2390, MaxWeight: 28000},
	{Name: "40ft High Cube", L: 12030, W: 2350, H: 2690, MaxWeight: 28000},
}

// GetContainerPreset returns a preset by name, or the 20ft standard if not found.
func GetContainerPreset(name string) ContainerPreset {
	for _, p := range ContainerPresets {
		if p.Name == name {
			return p
		}
	}
	return ContainerPresets[0]
}

// ContainerPresetNames returns the names of all built-in presets.
func ContainerPresetNames() []string {
	names := make([]string, len(ContainerPresets))
	for i, p := range ContainerPresets {
		names[i] = p.Name
	}
	return names
}
