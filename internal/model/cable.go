package model

import "math"

// CableType describes one cable specification.
type CableType struct {
	Name     string  `json:"name" yaml:"name"`
	Diameter float64 `json:"diameter_mm" yaml:"diameter_mm"`         // Outer diameter in mm
	Weight   float64 `json:"weight_kg_per_m" yaml:"weight_kg_per_m"` // Linear weight in kg/m
}

// NewCableType returns a cable with the given name and physical attributes.
// An empty name falls back to "Cable".
func NewCableType(name string, diameter, weight float64) CableType {
	if name == "" {
		name = "Cable"
	}
	return CableType{Name: name, Diameter: diameter, Weight: weight}
}

// Valid reports whether both physical attributes are strictly positive.
func (c CableType) Valid() bool {
	return c.Diameter > 0 && c.Weight > 0
}

// Area returns the cross-sectional area of one cable in mm².
func (c CableType) Area() float64 {
	return CableArea(c.Diameter)
}

// CableArea returns the cross-sectional area in mm² of a round cable with the
// given outer diameter. The input is not validated.
func CableArea(diameterMm float64) float64 {
	radius := diameterMm / 2.0
	return math.Pi * radius * radius
}

// CableEntry is a cable specification routed Quantity times through the tray.
type CableEntry struct {
	Cable    CableType `json:"cable" yaml:"cable"`
	Quantity int       `json:"qty" yaml:"qty"`
}

// NewCableEntry pairs a cable with a quantity.
func NewCableEntry(cable CableType, qty int) CableEntry {
	return CableEntry{Cable: cable, Quantity: qty}
}

// Valid reports whether the entry takes part in aggregation.
func (e CableEntry) Valid() bool {
	return e.Quantity > 0 && e.Cable.Valid()
}

// TotalWeight returns the combined linear weight of the entry in kg/m.
func (e CableEntry) TotalWeight() float64 {
	return e.Cable.Weight * float64(e.Quantity)
}

// TotalArea returns the combined cross-sectional area of the entry in mm².
func (e CableEntry) TotalArea() float64 {
	return e.Cable.Area() * float64(e.Quantity)
}

// ValidEntries returns the entries that take part in aggregation, in order.
func ValidEntries(entries []CableEntry) []CableEntry {
	valid := make([]CableEntry, 0, len(entries))
	for _, e := range entries {
		if e.Valid() {
			valid = append(valid, e)
		}
	}
	return valid
}
