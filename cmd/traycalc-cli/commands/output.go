package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/fatih/color"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/piwi3910/TrayCalc/internal/model"
)

var numberPrinter = message.NewPrinter(language.English)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF8C00"))
	boxStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#2B3F5F")).Padding(0, 1)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
)

func formatArea(v float64) string {
	return numberPrinter.Sprintf("%.0f mm²", v)
}

// levelString colours a value by its level.
func levelString(l model.Level, s string) string {
	switch l {
	case model.LevelOver:
		return color.HiRedString(s)
	case model.LevelOK:
		return color.GreenString(s)
	default:
		return color.YellowString(s)
	}
}

// statusString colours a status sentence.
func statusString(s model.Status) string {
	switch {
	case s == model.StatusNoCables:
		return color.HiBlackString(s.Description())
	case s.Failing():
		return color.New(color.FgHiRed, color.Bold).Sprint(s.Description())
	default:
		return color.New(color.FgGreen, color.Bold).Sprint(s.Description())
	}
}

// renderTable draws rows under headers with a rounded border.
func renderTable(headers []string, rows [][]string) string {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("#2B3F5F"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...).
		Rows(rows...)
	return t.Render()
}

// printSummary writes the tray and its evaluation inside a box.
func printSummary(w io.Writer, ws model.WorkingSet, stats model.TrayStats, a model.Assessment, nearLimit float64) {
	t := ws.Tray
	var b strings.Builder
	fmt.Fprintln(&b, titleStyle.Render(ws.Name))
	fmt.Fprintf(&b, "Tray: %s (%.0f x %.0f mm)\n\n", t.Name, t.Width, t.Height)

	lines := []struct {
		label string
		value string
	}{
		{"Cable weight", fmt.Sprintf("%.3f kg/m", stats.TotalCableWeight)},
		{"Tray self-weight", fmt.Sprintf("%.3f kg/m", stats.TraySelfWeight)},
		{"Total weight", fmt.Sprintf("%.3f kg/m", stats.TotalWeight)},
		{"Tray allowable load", fmt.Sprintf("%.1f kg/m", stats.AllowableLoad)},
		{"Structural utilisation", levelString(a.StructuralLevel(stats, nearLimit), fmt.Sprintf("%.1f %%", stats.StructuralUtilisationPercent))},
		{"Total cable area", formatArea(stats.TotalCableArea)},
		{"Tray usable area", formatArea(stats.TrayUsableArea)},
		{"Area fill", levelString(a.FillLevel(stats, nearLimit), fmt.Sprintf("%.1f %%", stats.AreaFillPercent))},
		{"Recommended max fill", fmt.Sprintf("%.1f %%", stats.RecommendedMaxAreaFillPercent)},
	}
	for _, l := range lines {
		fmt.Fprintf(&b, "%-24s %s\n", l.label+":", l.value)
	}
	fmt.Fprintf(&b, "\nStatus: %s", statusString(a.Status))

	fmt.Fprintln(w, boxStyle.Render(b.String()))
}
