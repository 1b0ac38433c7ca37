package model

// DefaultEffectiveFillRatioForHeight is the share of a tray's nominal side
// height treated as usable for fill-area purposes.
const DefaultEffectiveFillRatioForHeight = 0.9

// TrayStats holds the results of one tray loading and fill evaluation.
type TrayStats struct {
	TotalCableWeight              float64 `json:"total_cable_weight_kg_per_m"`       // Sum of cable weights (kg/m)
	TraySelfWeight                float64 `json:"tray_self_weight_kg_per_m"`         // Tray self-weight (kg/m)
	TotalWeight                   float64 `json:"total_weight_kg_per_m"`             // Self-weight plus cables (kg/m)
	AllowableLoad                 float64 `json:"allowable_load_kg_per_m"`           // Tray rated load (kg/m)
	StructuralUtilisationPercent  float64 `json:"structural_utilisation_percent"`    // Cable weight vs. allowable load
	TotalCableArea                float64 `json:"total_cable_area_mm2"`              // Sum of cable cross-sections (sq mm)
	TrayUsableArea                float64 `json:"tray_usable_area_mm2"`              // Width x usable height (sq mm)
	AreaFillPercent               float64 `json:"area_fill_percent"`                 // Cable area vs. usable area
	RecommendedMaxAreaFillPercent float64 `json:"recommended_max_area_fill_percent"` // Tray max fill ratio as a percentage
}

// ComputeStats evaluates the cables against the tray using the default
// usable height ratio.
func ComputeStats(cables []CableEntry, tray TrayType) TrayStats {
	return ComputeStatsWithHeightRatio(cables, tray, DefaultEffectiveFillRatioForHeight)
}

// ComputeStatsWithHeightRatio aggregates cable weight and area and compares
// them against the tray's structural and fill ratings.
//
// Entries that are not Valid are skipped. Structural utilisation is measured
// against cable weight only; the tray self-weight is reported in TotalWeight
// but is assumed to be netted out of the rated load already.
func ComputeStatsWithHeightRatio(cables []CableEntry, tray TrayType, effectiveFillRatioForHeight float64) TrayStats {
	var totalCableWeight float64 // kg/m
	var totalCableArea float64   // sq mm
	for _, e := range cables {
		if !e.Valid() {
			continue
		}
		totalCableWeight += e.Cable.Weight * float64(e.Quantity)
		totalCableArea += CableArea(e.Cable.Diameter) * float64(e.Quantity)
	}

	traySelfWeight := tray.SelfWeight
	allowableLoad := tray.MaxLoad

	var structural float64
	if allowableLoad > 0 {
		structural = (totalCableWeight / allowableLoad) * 100.0
	}

	usableHeight := tray.Height * effectiveFillRatioForHeight
	usableArea := tray.Width * usableHeight

	var fill float64
	if usableArea > 0 {
		fill = (totalCableArea / usableArea) * 100.0
	}

	return TrayStats{
		TotalCableWeight:              totalCableWeight,
		TraySelfWeight:                traySelfWeight,
		TotalWeight:                   traySelfWeight + totalCableWeight,
		AllowableLoad:                 allowableLoad,
		StructuralUtilisationPercent:  structural,
		TotalCableArea:                totalCableArea,
		TrayUsableArea:                usableArea,
		AreaFillPercent:               fill,
		RecommendedMaxAreaFillPercent: tray.MaxFillRatio * 100.0,
	}
}
