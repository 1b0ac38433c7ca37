package model

// DefaultMaxFillRatio is the recommended cable fill applied to custom trays.
const DefaultMaxFillRatio = 0.6

// TrayType describes one tray's structural and geometric rating.
type TrayType struct {
	Name         string  `json:"name" yaml:"name"`
	Width        float64 `json:"width_mm" yaml:"width_mm"`                         // Internal usable width in mm
	Height       float64 `json:"height_mm" yaml:"height_mm"`                       // Internal side height in mm
	MaxLoad      float64 `json:"max_load_kg_per_m" yaml:"max_load_kg_per_m"`       // Allowable uniformly distributed load (kg/m)
	SelfWeight   float64 `json:"self_weight_kg_per_m" yaml:"self_weight_kg_per_m"` // Tray self-weight (kg/m)
	MaxFillRatio float64 `json:"max_fill_ratio" yaml:"max_fill_ratio"`             // Recommended area fill, 0-1
}

// NewTrayType creates a tray with the default recommended fill ratio.
func NewTrayType(name string, width, height, maxLoad, selfWeight float64) TrayType {
	return TrayType{
		Name:         name,
		Width:        width,
		Height:       height,
		MaxLoad:      maxLoad,
		SelfWeight:   selfWeight,
		MaxFillRatio: DefaultMaxFillRatio,
	}
}

// CustomTray returns the starting tray for a blank working set.
func CustomTray() TrayType {
	return NewTrayType("Custom tray", 300, 100, 140, 6.0)
}

// Validate returns a list of human-readable problems with the tray values.
// An empty list means the tray is fully rated. The stats engine accepts any
// tray; this is for collaborators that want to warn the user first.
func (t TrayType) Validate() []string {
	var problems []string
	if t.Width <= 0 {
		problems = append(problems, "width must be > 0")
	}
	if t.Height <= 0 {
		problems = append(problems, "height must be > 0")
	}
	if t.MaxLoad < 0 {
		problems = append(problems, "maximum load must be >= 0")
	}
	if t.SelfWeight < 0 {
		problems = append(problems, "self weight must be >= 0")
	}
	if t.MaxFillRatio <= 0 || t.MaxFillRatio > 1 {
		problems = append(problems, "maximum fill ratio must be in (0, 1]")
	}
	return problems
}
