package model

// maxRecentProjects bounds the recent working set list.
const maxRecentProjects = 10

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Calculation defaults
	EffectiveFillRatioForHeight float64 `json:"effective_fill_ratio_for_height" mapstructure:"effective_fill_ratio_for_height"` // Usable share of side height, 0-1
	NearLimitPercent            float64 `json:"near_limit_percent" mapstructure:"near_limit_percent"`                           // Colour threshold as % of a limit
	DefaultTray                 string  `json:"default_tray" mapstructure:"default_tray"`                                       // Catalogue tray for new working sets

	// Reports
	ReportTitle  string `json:"report_title" mapstructure:"report_title"`
	ReportAuthor string `json:"report_author" mapstructure:"report_author"`

	// Application preferences
	RecentProjects []string `json:"recent_projects" mapstructure:"recent_projects"`
	Theme          string   `json:"theme" mapstructure:"theme"` // "light", "dark", "system"
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults.
func DefaultAppConfig() AppConfig {
	return AppConfig{
		EffectiveFillRatioForHeight: DefaultEffectiveFillRatioForHeight,
		NearLimitPercent:            DefaultNearLimitPercent,
		DefaultTray:                 "",
		ReportTitle:                 "Cable Tray Calculation Report",
		ReportAuthor:                "",
		RecentProjects:              []string{},
		Theme:                       "dark",
	}
}

// Normalize replaces out-of-range values with their defaults.
func (c *AppConfig) Normalize() {
	defaults := DefaultAppConfig()
	if c.EffectiveFillRatioForHeight <= 0 || c.EffectiveFillRatioForHeight > 1 {
		c.EffectiveFillRatioForHeight = defaults.EffectiveFillRatioForHeight
	}
	if c.NearLimitPercent <= 0 || c.NearLimitPercent > 100 {
		c.NearLimitPercent = defaults.NearLimitPercent
	}
	if c.ReportTitle == "" {
		c.ReportTitle = defaults.ReportTitle
	}
	switch c.Theme {
	case "light", "dark", "system":
	default:
		c.Theme = defaults.Theme
	}
	if c.RecentProjects == nil {
		c.RecentProjects = []string{}
	}
}

// AddRecentProject moves path to the front of the recent list.
func (c *AppConfig) AddRecentProject(path string) {
	recent := []string{path}
	for _, p := range c.RecentProjects {
		if p != path {
			recent = append(recent, p)
		}
	}
	if len(recent) > maxRecentProjects {
		recent = recent[:maxRecentProjects]
	}
	c.RecentProjects = recent
}
