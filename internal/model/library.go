package model

import "github.com/google/uuid"

// CablePreset is a user-saved cable specification.
type CablePreset struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Diameter float64 `json:"diameter_mm"`     // mm
	Weight   float64 `json:"weight_kg_per_m"` // kg/m
}

// NewCablePreset creates a new CablePreset with a generated ID.
func NewCablePreset(name string, diameter, weight float64) CablePreset {
	return CablePreset{
		ID:       uuid.New().String()[:8],
		Name:     name,
		Diameter: diameter,
		Weight:   weight,
	}
}

// CablePresetFrom wraps an existing cable specification in a new preset.
func CablePresetFrom(c CableType) CablePreset {
	return NewCablePreset(c.Name, c.Diameter, c.Weight)
}

// ToCableType converts the preset into the value used by the stats engine.
func (p CablePreset) ToCableType() CableType {
	return NewCableType(p.Name, p.Diameter, p.Weight)
}

// TrayPreset is a user-saved tray rating.
type TrayPreset struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Width        float64 `json:"width_mm"`             // mm
	Height       float64 `json:"height_mm"`            // mm
	MaxLoad      float64 `json:"max_load_kg_per_m"`    // kg/m
	SelfWeight   float64 `json:"self_weight_kg_per_m"` // kg/m
	MaxFillRatio float64 `json:"max_fill_ratio"`       // 0-1
}

// TrayPresetFrom wraps an existing tray rating in a new preset.
func TrayPresetFrom(t TrayType) TrayPreset {
	return TrayPreset{
		ID:           uuid.New().String()[:8],
		Name:         t.Name,
		Width:        t.Width,
		Height:       t.Height,
		MaxLoad:      t.MaxLoad,
		SelfWeight:   t.SelfWeight,
		MaxFillRatio: t.MaxFillRatio,
	}
}

// ToTrayType converts the preset into the value used by the stats engine.
func (p TrayPreset) ToTrayType() TrayType {
	return TrayType{
		Name:         p.Name,
		Width:        p.Width,
		Height:       p.Height,
		MaxLoad:      p.MaxLoad,
		SelfWeight:   p.SelfWeight,
		MaxFillRatio: p.MaxFillRatio,
	}
}

// Library holds the user's saved cable and tray presets.
type Library struct {
	Cables []CablePreset `json:"cables"`
	Trays  []TrayPreset  `json:"trays"`
}

// NewLibrary builds a library holding one preset per given cable and tray.
func NewLibrary(cables []CableType, trays []TrayType) Library {
	lib := Library{
		Cables: make([]CablePreset, 0, len(cables)),
		Trays:  make([]TrayPreset, 0, len(trays)),
	}
	for _, c := range cables {
		lib.Cables = append(lib.Cables, CablePresetFrom(c))
	}
	for _, t := range trays {
		lib.Trays = append(lib.Trays, TrayPresetFrom(t))
	}
	return lib
}

// FindCableByID returns a pointer to the cable preset with the given ID, or nil.
func (lib *Library) FindCableByID(id string) *CablePreset {
	for i := range lib.Cables {
		if lib.Cables[i].ID == id {
			return &lib.Cables[i]
		}
	}
	return nil
}

// FindTrayByID returns a pointer to the tray preset with the given ID, or nil.
func (lib *Library) FindTrayByID(id string) *TrayPreset {
	for i := range lib.Trays {
		if lib.Trays[i].ID == id {
			return &lib.Trays[i]
		}
	}
	return nil
}

// FindCableByName returns a pointer to the first cable preset with the given name, or nil.
func (lib *Library) FindCableByName(name string) *CablePreset {
	for i := range lib.Cables {
		if lib.Cables[i].Name == name {
			return &lib.Cables[i]
		}
	}
	return nil
}

// FindTrayByName returns a pointer to the first tray preset with the given name, or nil.
func (lib *Library) FindTrayByName(name string) *TrayPreset {
	for i := range lib.Trays {
		if lib.Trays[i].Name == name {
			return &lib.Trays[i]
		}
	}
	return nil
}

// CableNames returns a list of cable preset names for UI dropdowns.
func (lib *Library) CableNames() []string {
	names := make([]string, len(lib.Cables))
	for i, c := range lib.Cables {
		names[i] = c.Name
	}
	return names
}

// TrayNames returns a list of tray preset names for UI dropdowns.
func (lib *Library) TrayNames() []string {
	names := make([]string, len(lib.Trays))
	for i, t := range lib.Trays {
		names[i] = t.Name
	}
	return names
}

// RemoveCable deletes the cable preset with the given ID.
func (lib *Library) RemoveCable(id string) bool {
	for i := range lib.Cables {
		if lib.Cables[i].ID == id {
			lib.Cables = append(lib.Cables[:i], lib.Cables[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveTray deletes the tray preset with the given ID.
func (lib *Library) RemoveTray(id string) bool {
	for i := range lib.Trays {
		if lib.Trays[i].ID == id {
			lib.Trays = append(lib.Trays[:i], lib.Trays[i+1:]...)
			return true
		}
	}
	return false
}

// Merge appends presets from other whose IDs are not already present and
// returns how many cables and trays were added.
func (lib *Library) Merge(other Library) (cablesAdded, traysAdded int) {
	for _, c := range other.Cables {
		if lib.FindCableByID(c.ID) == nil {
			lib.Cables = append(lib.Cables, c)
			cablesAdded++
		}
	}
	for _, t := range other.Trays {
		if lib.FindTrayByID(t.ID) == nil {
			lib.Trays = append(lib.Trays, t)
			traysAdded++
		}
	}
	return cablesAdded, traysAdded
}
