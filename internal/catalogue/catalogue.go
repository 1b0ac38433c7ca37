// Package catalogue exposes the built-in cable and tray presets.
//
// The lists are built once per process and never mutated; every accessor
// returns a copy so callers may modify what they receive.
package catalogue

import (
	"sync"

	"github.com/piwi3910/TrayCalc/internal/model"
)

var (
	once   sync.Once
	cables []model.CableType
	trays  []model.TrayType
)

func load() {
	once.Do(func() {
		cables = defaultCables()
		trays = defaultTrays()
	})
}

// Cables returns the built-in cable presets in display order.
func Cables() []model.CableType {
	load()
	out := make([]model.CableType, len(cables))
	copy(out, cables)
	return out
}

// Trays returns the built-in tray presets in display order.
func Trays() []model.TrayType {
	load()
	out := make([]model.TrayType, len(trays))
	copy(out, trays)
	return out
}

// FindCable looks up a cable preset by exact name.
func FindCable(name string) (model.CableType, bool) {
	load()
	for _, c := range cables {
		if c.Name == name {
			return c, true
		}
	}
	return model.CableType{}, false
}

// FindTray looks up a tray preset by exact name.
func FindTray(name string) (model.TrayType, bool) {
	load()
	for _, t := range trays {
		if t.Name == name {
			return t, true
		}
	}
	return model.TrayType{}, false
}

// CableNames returns the cable preset names for UI dropdowns.
func CableNames() []string {
	load()
	names := make([]string, len(cables))
	for i, c := range cables {
		names[i] = c.Name
	}
	return names
}

// TrayNames returns the tray preset names for UI dropdowns.
func TrayNames() []string {
	load()
	names := make([]string, len(trays))
	for i, t := range trays {
		names[i] = t.Name
	}
	return names
}

// DefaultLibrary seeds a user library from the built-in presets.
func DefaultLibrary() model.Library {
	return model.NewLibrary(Cables(), Trays())
}
