package export

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/piwi3910/TrayCalc/internal/engine"
	"github.com/piwi3910/TrayCalc/internal/model"
)

var reportTime = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

func sampleWorkingSet() model.WorkingSet {
	ws := model.NewWorkingSet()
	ws.Name = "Riser B level 2"
	ws.Tray = model.TrayType{
		Name: "Ladder HDG heavy 300 x 100", Width: 300, Height: 100,
		MaxLoad: 140, SelfWeight: 6.0, MaxFillRatio: 0.6,
	}
	ws.AddCable(model.NewCableType("Cu 3C 25mm² PVC", 25.0, 2.40), 4)
	ws.AddCable(model.NewCableType("CAT6A F/UTP", 7.6, 0.055), 24)
	return ws
}

func sampleReport() Report {
	return NewReport(sampleWorkingSet(), model.DefaultAppConfig(), reportTime)
}

func overloadedReport() Report {
	ws := sampleWorkingSet()
	ws.Cables[0].Quantity = 59
	return NewReport(ws, model.DefaultAppConfig(), reportTime)
}

func assertNonEmptyFile(t *testing.T, path string) {
	t.Helper()
	info, err := os.Stat(path)
	require.NoError(t, err, "file was not created")
	assert.Greater(t, info.Size(), int64(0), "file is empty")
}

func TestNewReport(t *testing.T) {
	r := sampleReport()

	assert.Equal(t, "Cable Tray Calculation Report", r.Title)
	assert.Equal(t, "Riser B level 2", r.Name)
	assert.Equal(t, "2025-03-14 09:30:00", r.Timestamp())
	assert.Equal(t, model.StatusOK, r.Status())
	assert.InDelta(t, 10.92, r.Stats.TotalCableWeight, 1e-9)
	assert.InDelta(t, 27000.0, r.Stats.TrayUsableArea, 1e-9)

	require.Len(t, r.Rows, 2)
	assert.Equal(t, "Cu 3C 25mm² PVC", r.Rows[0].Name)
	assert.InDelta(t, 9.6, r.Rows[0].TotalWeight, 1e-9)
	assert.InDelta(t, model.CableArea(25)*4, r.Rows[0].TotalArea, 1e-9)
	assert.Equal(t, 24, r.Rows[1].Quantity)
}

func TestNewReportSkipsInvalidRows(t *testing.T) {
	ws := sampleWorkingSet()
	ws.AddCable(model.NewCableType("broken", 0, 1), 3)
	r := NewReport(ws, model.DefaultAppConfig(), reportTime)
	assert.Len(t, r.Rows, 2)
}

func TestNewReportUsesConfig(t *testing.T) {
	cfg := model.DefaultAppConfig()
	cfg.ReportTitle = "Site 4 tray schedule"
	cfg.ReportAuthor = "J. Doe"
	cfg.EffectiveFillRatioForHeight = 1.0

	r := NewReport(sampleWorkingSet(), cfg, reportTime)
	assert.Equal(t, "Site 4 tray schedule", r.Title)
	assert.Equal(t, "J. Doe", r.Author)
	assert.InDelta(t, 30000.0, r.Stats.TrayUsableArea, 1e-9)
}

func TestReportLevels(t *testing.T) {
	r := overloadedReport()
	assert.Equal(t, model.StatusOverloaded, r.Status())
	assert.Equal(t, model.LevelOver, r.StructuralLevel())
	assert.Equal(t, model.LevelOver, r.FillLevel())

	ok := sampleReport()
	assert.Equal(t, model.LevelOK, ok.StructuralLevel())
	assert.Equal(t, model.LevelOK, ok.FillLevel())
}

func TestFormatArea(t *testing.T) {
	assert.Equal(t, "0", formatArea(0))
	assert.Equal(t, "491", formatArea(490.87))
	assert.Equal(t, "27,000", formatArea(27000))
	assert.Equal(t, "1,234,568", formatArea(1234567.8))
}

func TestWriteCSVGolden(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, sampleReport()))

	g := goldie.New(t, goldie.WithFixtureDir("testdata"))
	g.Assert(t, "report_csv", buf.Bytes())
}

func TestWriteCSVOverloadedStatus(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSV(&buf, overloadedReport()))
	assert.Contains(t, buf.String(), "Overall status,OVERLOADED: structural + fill limits exceeded\n")
}

func TestExportCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.csv")
	require.NoError(t, ExportCSV(path, sampleReport()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "Cable Tray Calculation Report\n"))
}

func TestExportersRejectEmptyReport(t *testing.T) {
	ws := sampleWorkingSet()
	ws.Clear()
	r := NewReport(ws, model.DefaultAppConfig(), reportTime)
	dir := t.TempDir()

	exporters := map[string]func(string, Report) error{
		"report.csv":  ExportCSV,
		"report.pdf":  ExportPDF,
		"report.xlsx": ExportXLSX,
	}
	for name, fn := range exporters {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			err := fn(path, r)
			assert.True(t, errors.Is(err, ErrNoCables), "got %v", err)
			_, statErr := os.Stat(path)
			assert.True(t, os.IsNotExist(statErr), "no file should be written")
		})
	}
}

func TestExportersRejectMissingTray(t *testing.T) {
	ws := sampleWorkingSet()
	ws.Tray.Width = 0
	r := NewReport(ws, model.DefaultAppConfig(), reportTime)

	err := ExportPDF(filepath.Join(t.TempDir(), "report.pdf"), r)
	assert.True(t, errors.Is(err, ErrNoTray), "got %v", err)
}

func TestExportPDF(t *testing.T) {
	tests := []struct {
		name   string
		report Report
	}{
		{"ok", sampleReport()},
		{"overloaded", overloadedReport()},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "report.pdf")
			require.NoError(t, ExportPDF(path, tt.report))
			assertNonEmptyFile(t, path)

			data, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
		})
	}
}

func TestExportPDFManyCablesPaginates(t *testing.T) {
	ws := sampleWorkingSet()
	for i := 0; i < 80; i++ {
		ws.AddCable(model.NewCableType("Control 12x1.5mm² with a very long descriptive name", 14.0, 0.35), 1)
	}
	r := NewReport(ws, model.DefaultAppConfig(), reportTime)

	path := filepath.Join(t.TempDir(), "long.pdf")
	require.NoError(t, ExportPDF(path, r))
	assertNonEmptyFile(t, path)
}

func TestExportXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.xlsx")
	require.NoError(t, ExportXLSX(path, sampleReport()))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{summarySheet, cablesSheet}, f.GetSheetList())

	title, err := f.GetCellValue(summarySheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Cable Tray Calculation Report", title)

	status, err := f.GetCellValue(summarySheet, "B23")
	require.NoError(t, err)
	assert.Equal(t, "OK: within structural and fill limits", status)

	rows, err := f.GetRows(cablesSheet)
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, "Cable name", rows[0][0])
	assert.Equal(t, "Cu 3C 25mm² PVC", rows[1][0])
	assert.Equal(t, "24", rows[2][3])
	assert.Equal(t, "Total", rows[3][0])

	formula, err := f.GetCellFormula(cablesSheet, "D4")
	require.NoError(t, err)
	assert.Equal(t, "SUM(D2:D3)", formula)
}

func TestExportDXF(t *testing.T) {
	ws := sampleWorkingSet()
	layout := engine.LayoutCrossSection(ws.Cables, ws.Tray, model.DefaultEffectiveFillRatioForHeight)

	path := filepath.Join(t.TempDir(), "section.dxf")
	require.NoError(t, ExportDXF(path, layout))
	assertNonEmptyFile(t, path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	s := string(data)
	assert.Contains(t, s, "CIRCLE")
	assert.Contains(t, s, LayerTray)
	assert.Contains(t, s, LayerCables)
	assert.Contains(t, s, LayerUsable)
}

func TestExportDXFHugeQuantityStaysBounded(t *testing.T) {
	ws := sampleWorkingSet()
	ws.Cables[0].Quantity = 1000000
	layout := engine.LayoutCrossSection(ws.Cables, ws.Tray, model.DefaultEffectiveFillRatioForHeight)
	require.Equal(t, 1000024, layout.Total())

	path := filepath.Join(t.TempDir(), "section.dxf")
	require.NoError(t, ExportDXF(path, layout))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.LessOrEqual(t, strings.Count(string(data), "CIRCLE"), engine.MaxDrawnCables)
}

func TestExportDXFNoTray(t *testing.T) {
	err := ExportDXF(filepath.Join(t.TempDir(), "x.dxf"), engine.Layout{})
	assert.True(t, errors.Is(err, ErrNoTray))
}
