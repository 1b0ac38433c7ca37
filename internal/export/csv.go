package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
)

// ExportCSV writes the report as an Excel-friendly CSV file.
func ExportCSV(path string, r Report) error {
	if err := r.check(); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	if err := WriteCSV(f, r); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close CSV file: %w", err)
	}
	return nil
}

// WriteCSV writes the report in blocks: header, tray configuration, summary
// and the cables table, separated by empty rows.
func WriteCSV(w io.Writer, r Report) error {
	s := r.Stats
	t := r.Tray

	rows := [][]string{
		{r.Title},
		{"Generated at", r.Timestamp()},
		{},
		{"Tray configuration"},
		{"Tray name", t.Name},
		{"Width (mm)", fmt.Sprintf("%.1f", t.Width)},
		{"Side height (mm)", fmt.Sprintf("%.1f", t.Height)},
		{"Tray self weight (kg/m)", fmt.Sprintf("%.3f", t.SelfWeight)},
		{"Maximum allowable load (kg/m)", fmt.Sprintf("%.1f", t.MaxLoad)},
		{"Maximum fill ratio", fmt.Sprintf("%.2f (recommended %.1f %% area fill)", t.MaxFillRatio, s.RecommendedMaxAreaFillPercent)},
		{},
		{"Summary"},
		{"Cable weight (kg/m)", fmt.Sprintf("%.3f", s.TotalCableWeight)},
		{"Tray self weight (kg/m)", fmt.Sprintf("%.3f", s.TraySelfWeight)},
		{"Total weight (kg/m)", fmt.Sprintf("%.3f", s.TotalWeight)},
		{"Allowable load (kg/m)", fmt.Sprintf("%.1f", s.AllowableLoad)},
		{"Structural utilisation (%)", fmt.Sprintf("%.1f", s.StructuralUtilisationPercent)},
		{"Total cable area (mm2)", formatArea(s.TotalCableArea)},
		{"Tray usable area (mm2)", formatArea(s.TrayUsableArea)},
		{"Area fill (%)", fmt.Sprintf("%.1f", s.AreaFillPercent)},
		{"Recommended max area fill (%)", fmt.Sprintf("%.1f", s.RecommendedMaxAreaFillPercent)},
		{"Overall status", r.Status().Description()},
		{},
		{"Cables in tray"},
		{"Cable name", "Diameter (mm)", "Weight (kg/m)", "Quantity", "Total weight (kg/m)", "Total area (mm2)"},
	}
	for _, row := range r.Rows {
		rows = append(rows, []string{
			row.Name,
			fmt.Sprintf("%.1f", row.Diameter),
			fmt.Sprintf("%.3f", row.Weight),
			strconv.Itoa(row.Quantity),
			fmt.Sprintf("%.3f", row.TotalWeight),
			formatArea(row.TotalArea),
		})
	}

	cw := csv.NewWriter(w)
	if err := cw.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write CSV report: %w", err)
	}
	return nil
}
