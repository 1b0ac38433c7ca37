package ui

import (
	"fmt"
	"image/color"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/piwi3910/TrayCalc/internal/model"
)

var areaPrinter = message.NewPrinter(language.English)

// resultRow is one line of the results panel.
type resultRow struct {
	label string
	value string
	color color.Color
}

// levelColor maps a metric level to its results panel colour.
func levelColor(l model.Level) color.Color {
	switch l {
	case model.LevelOver:
		return colorWarning
	case model.LevelOK:
		return colorOK
	default:
		return colorText
	}
}

// statusColor returns the banner colour for an overall status.
func statusColor(s model.Status) color.Color {
	switch {
	case s == model.StatusNoCables:
		return colorIdle
	case s.Failing():
		return colorWarning
	default:
		return colorOK
	}
}

func formatMM2(v float64) string {
	return areaPrinter.Sprintf("%.0f mm²", v)
}

// buildResultRows formats the stats for display. nearLimit is the share of
// a limit (in %) above which a value is no longer shown as comfortable.
func buildResultRows(stats model.TrayStats, a model.Assessment, nearLimit float64) []resultRow {
	totalColor := color.Color(colorText)
	if a.OverloadedStructural {
		totalColor = colorWarning
	}

	return []resultRow{
		{"Cable weight", fmt.Sprintf("%.3f kg/m", stats.TotalCableWeight), colorText},
		{"Tray self-weight", fmt.Sprintf("%.3f kg/m", stats.TraySelfWeight), colorText},
		{"Total weight", fmt.Sprintf("%.3f kg/m", stats.TotalWeight), totalColor},
		{"Tray allowable load", fmt.Sprintf("%.1f kg/m", stats.AllowableLoad), colorText},
		{"Structural utilisation", fmt.Sprintf("%.1f %%", stats.StructuralUtilisationPercent), levelColor(a.StructuralLevel(stats, nearLimit))},
		{"Total cable area", formatMM2(stats.TotalCableArea), colorText},
		{"Tray usable area", formatMM2(stats.TrayUsableArea), colorText},
		{"Area fill", fmt.Sprintf("%.1f %%", stats.AreaFillPercent), levelColor(a.FillLevel(stats, nearLimit))},
		{"Recommended max fill", fmt.Sprintf("%.1f %%", stats.RecommendedMaxAreaFillPercent), colorText},
	}
}
