// Package export provides functionality for exporting tray calculation
// results to PDF, CSV, XLSX and DXF files, plus QR-coded tray labels.
package export

import (
	"errors"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/piwi3910/TrayCalc/internal/model"
)

var (
	// ErrNoCables is returned when a report has no cable entries to export.
	ErrNoCables = errors.New("no cables defined in the tray")
	// ErrNoTray is returned when the tray has no usable dimensions.
	ErrNoTray = errors.New("tray has no usable dimensions")
)

// TimestampLayout is the format used for the "Generated" line of reports.
const TimestampLayout = "2006-01-02 15:04:05"

// Row is one cable entry as it appears in a report table.
type Row struct {
	Name        string
	Diameter    float64 // mm
	Weight      float64 // kg/m per cable
	Quantity    int
	TotalWeight float64 // kg/m
	TotalArea   float64 // sq mm
}

// Report is a snapshot of one evaluated working set. The engine runs once in
// NewReport and every exporter reads the same values.
type Report struct {
	Title       string
	Author      string
	Name        string
	GeneratedAt time.Time
	NearLimit   float64
	Tray        model.TrayType
	Stats       model.TrayStats
	Assessment  model.Assessment
	Rows        []Row
}

// NewReport evaluates ws with the settings from cfg.
func NewReport(ws model.WorkingSet, cfg model.AppConfig, now time.Time) Report {
	cfg.Normalize()
	stats, assessment := ws.Evaluate(cfg.EffectiveFillRatioForHeight)

	r := Report{
		Title:       cfg.ReportTitle,
		Author:      cfg.ReportAuthor,
		Name:        ws.Name,
		GeneratedAt: now,
		NearLimit:   cfg.NearLimitPercent,
		Tray:        ws.Tray,
		Stats:       stats,
		Assessment:  assessment,
	}
	for _, e := range model.ValidEntries(ws.Cables) {
		r.Rows = append(r.Rows, Row{
			Name:        e.Cable.Name,
			Diameter:    e.Cable.Diameter,
			Weight:      e.Cable.Weight,
			Quantity:    e.Quantity,
			TotalWeight: e.TotalWeight(),
			TotalArea:   e.TotalArea(),
		})
	}
	return r
}

// Timestamp returns GeneratedAt formatted for report headers.
func (r Report) Timestamp() string {
	return r.GeneratedAt.Format(TimestampLayout)
}

// Status is the overall verdict.
func (r Report) Status() model.Status {
	return r.Assessment.Status
}

// StructuralLevel grades structural utilisation against the report's near limit.
func (r Report) StructuralLevel() model.Level {
	return r.Assessment.StructuralLevel(r.Stats, r.NearLimit)
}

// FillLevel grades area fill against the report's near limit.
func (r Report) FillLevel() model.Level {
	return r.Assessment.FillLevel(r.Stats, r.NearLimit)
}

// check returns the sentinel error for a report that cannot be exported.
func (r Report) check() error {
	if len(r.Rows) == 0 {
		return ErrNoCables
	}
	if r.Tray.Width <= 0 || r.Tray.Height <= 0 {
		return ErrNoTray
	}
	return nil
}

var numberPrinter = message.NewPrinter(language.English)

// formatArea renders an area with thousands separators and no decimals.
func formatArea(v float64) string {
	return numberPrinter.Sprintf("%.0f", v)
}
