package model

// AppConfig holds application-wide preferences and default settings applied
// to new solve requests.
type AppConfig struct {
	DefaultContainerPreset string          `json:"default_container_preset"`
	DefaultStrategy        ScoringStrategy `json:"default_strategy"`
	DefaultAllowStacking   bool            `json:"default_allow_stacking"`

	AutoSaveInterval int      `json:"auto_save_interval"` // minutes, 0 = disabled
	RecentRequests   []string `json:"recent_requests"`    // paths to saved SolveRequest envelopes
	Theme            string   `json:"theme"`              // "light", "dark", "system"
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults
// matching DefaultSolveConfig()'s implied starting point.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		DefaultContainerPreset: ContainerPresets[0].Name,
		DefaultStrategy:        ScoringBalanced,
		DefaultAllowStacking:   true,
		AutoSaveInterval:       0,
		RecentRequests:         []string{},
		Theme:                  "system",
	}
}

// ApplyToContainer seeds a container's AllowStacking flag from the saved
// preference.
func (c AppConfig) ApplyToContainer(container *Container) {
	container.AllowStacking = c.DefaultAllowStacking
}
