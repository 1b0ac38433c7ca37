package export

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

const (
	summarySheet = "Summary"
	cablesSheet  = "Cables"
)

// ExportXLSX writes the report as a workbook with a Summary sheet and a
// Cables sheet. Numbers are stored as numbers so they stay usable in formulas.
func ExportXLSX(path string, r Report) error {
	if err := r.check(); err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return fmt.Errorf("failed to name summary sheet: %w", err)
	}
	if _, err := f.NewSheet(cablesSheet); err != nil {
		return fmt.Errorf("failed to add cables sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("failed to create style: %w", err)
	}
	title, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14, Color: "0B1F3B"}})
	if err != nil {
		return fmt.Errorf("failed to create style: %w", err)
	}
	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"D9D9D9"}, Pattern: 1},
	})
	if err != nil {
		return fmt.Errorf("failed to create style: %w", err)
	}
	statusColor := "33B34D"
	if r.Status().Failing() {
		statusColor = "E63333"
	}
	status, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Color: statusColor}})
	if err != nil {
		return fmt.Errorf("failed to create style: %w", err)
	}

	if err := writeSummarySheet(f, r, title, bold, status); err != nil {
		return err
	}
	if err := writeCablesSheet(f, r, header); err != nil {
		return err
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}

type sheetRow struct {
	label string
	value interface{}
	style int
}

func writeSummarySheet(f *excelize.File, r Report, titleStyle, boldStyle, statusStyle int) error {
	s := r.Stats
	t := r.Tray

	rows := []sheetRow{
		{r.Title, nil, titleStyle},
		{"Generated at", r.Timestamp(), 0},
		{"Working set", r.Name, 0},
		{"", nil, 0},
		{"Tray configuration", nil, boldStyle},
		{"Tray name", t.Name, 0},
		{"Width (mm)", t.Width, 0},
		{"Side height (mm)", t.Height, 0},
		{"Tray self weight (kg/m)", t.SelfWeight, 0},
		{"Maximum allowable load (kg/m)", t.MaxLoad, 0},
		{"Maximum fill ratio", t.MaxFillRatio, 0},
		{"", nil, 0},
		{"Summary", nil, boldStyle},
		{"Cable weight (kg/m)", s.TotalCableWeight, 0},
		{"Tray self weight (kg/m)", s.TraySelfWeight, 0},
		{"Total weight (kg/m)", s.TotalWeight, 0},
		{"Allowable load (kg/m)", s.AllowableLoad, 0},
		{"Structural utilisation (%)", s.StructuralUtilisationPercent, 0},
		{"Total cable area (mm2)", s.TotalCableArea, 0},
		{"Tray usable area (mm2)", s.TrayUsableArea, 0},
		{"Area fill (%)", s.AreaFillPercent, 0},
		{"Recommended max area fill (%)", s.RecommendedMaxAreaFillPercent, 0},
		{"Overall status", r.Status().Description(), statusStyle},
	}

	for i, row := range rows {
		n := i + 1
		if row.label == "" {
			continue
		}
		if err := f.SetCellValue(summarySheet, fmt.Sprintf("A%d", n), row.label); err != nil {
			return fmt.Errorf("failed to write summary: %w", err)
		}
		if row.value != nil {
			if err := f.SetCellValue(summarySheet, fmt.Sprintf("B%d", n), row.value); err != nil {
				return fmt.Errorf("failed to write summary: %w", err)
			}
		}
		if row.style != 0 {
			cell := fmt.Sprintf("A%d", n)
			if row.value != nil {
				cell = fmt.Sprintf("B%d", n)
			}
			if err := f.SetCellStyle(summarySheet, fmt.Sprintf("A%d", n), cell, row.style); err != nil {
				return fmt.Errorf("failed to style summary: %w", err)
			}
		}
	}

	if err := f.SetColWidth(summarySheet, "A", "A", 34); err != nil {
		return fmt.Errorf("failed to size summary columns: %w", err)
	}
	if err := f.SetColWidth(summarySheet, "B", "B", 48); err != nil {
		return fmt.Errorf("failed to size summary columns: %w", err)
	}
	return nil
}

func writeCablesSheet(f *excelize.File, r Report, headerStyle int) error {
	headers := []interface{}{"Cable name", "Diameter (mm)", "Weight (kg/m)", "Quantity", "Total weight (kg/m)", "Total area (mm2)"}
	if err := f.SetSheetRow(cablesSheet, "A1", &headers); err != nil {
		return fmt.Errorf("failed to write cables header: %w", err)
	}
	if err := f.SetCellStyle(cablesSheet, "A1", "F1", headerStyle); err != nil {
		return fmt.Errorf("failed to style cables header: %w", err)
	}

	for i, row := range r.Rows {
		values := []interface{}{row.Name, row.Diameter, row.Weight, row.Quantity, row.TotalWeight, row.TotalArea}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(cablesSheet, cell, &values); err != nil {
			return fmt.Errorf("failed to write cable row %d: %w", i+1, err)
		}
	}

	if len(r.Rows) > 0 {
		last := len(r.Rows) + 1
		totalRow := last + 1
		if err := f.SetCellValue(cablesSheet, fmt.Sprintf("A%d", totalRow), "Total"); err != nil {
			return fmt.Errorf("failed to write totals: %w", err)
		}
		for _, col := range []string{"D", "E", "F"} {
			formula := fmt.Sprintf("SUM(%s2:%s%d)", col, col, last)
			if err := f.SetCellFormula(cablesSheet, fmt.Sprintf("%s%d", col, totalRow), formula); err != nil {
				return fmt.Errorf("failed to write totals: %w", err)
			}
		}
		if err := f.SetCellStyle(cablesSheet, fmt.Sprintf("A%d", totalRow), fmt.Sprintf("F%d", totalRow), headerStyle); err != nil {
			return fmt.Errorf("failed to style totals: %w", err)
		}
	}

	if err := f.SetColWidth(cablesSheet, "A", "A", 36); err != nil {
		return fmt.Errorf("failed to size cable columns: %w", err)
	}
	if err := f.SetColWidth(cablesSheet, "B", "F", 18); err != nil {
		return fmt.Errorf("failed to size cable columns: %w", err)
	}
	return nil
}
