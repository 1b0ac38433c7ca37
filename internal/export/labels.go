package export

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/go-pdf/fpdf"
	qrcode "github.com/skip2/go-qrcode"
)

// LabelInfo holds the data encoded into each tray tag's QR code.
type LabelInfo struct {
	WorkingSet  string  `json:"working_set"`
	Tray        string  `json:"tray"`
	Width       float64 `json:"width_mm"`
	Height      float64 `json:"height_mm"`
	Cables      int     `json:"cables"`
	CableWeight float64 `json:"cable_weight_kg_per_m"`
	Structural  float64 `json:"structural_utilisation_percent"`
	AreaFill    float64 `json:"area_fill_percent"`
	Status      string  `json:"status"`
	GeneratedAt string  `json:"generated_at"`
	Failing     bool    `json:"-"`
}

// Label layout constants for Avery 5160-compatible labels (3 columns, 10 rows per page).
// Each label cell is approximately 66.7mm x 25.4mm on US Letter paper.
const (
	labelMarginTop  = 12.7 // mm
	labelMarginLeft = 4.8  // mm
	labelWidth      = 66.7 // mm per label
	labelHeight     = 25.4 // mm per label
	labelCols       = 3
	labelRows       = 10
	labelsPerPage   = labelCols * labelRows
	qrSize          = 20.0 // QR code size in mm
	labelPadding    = 2.0  // mm internal padding
)

// CollectLabelInfos builds one label per report.
func CollectLabelInfos(reports []Report) []LabelInfo {
	labels := make([]LabelInfo, 0, len(reports))
	for _, r := range reports {
		qty := 0
		for _, row := range r.Rows {
			qty += row.Quantity
		}
		labels = append(labels, LabelInfo{
			WorkingSet:  r.Name,
			Tray:        r.Tray.Name,
			Width:       r.Tray.Width,
			Height:      r.Tray.Height,
			Cables:      qty,
			CableWeight: r.Stats.TotalCableWeight,
			Structural:  r.Stats.StructuralUtilisationPercent,
			AreaFill:    r.Stats.AreaFillPercent,
			Status:      r.Status().String(),
			GeneratedAt: r.Timestamp(),
			Failing:     r.Status().Failing(),
		})
	}
	return labels
}

// ExportLabels generates a PDF of QR-coded tray tags, one per report. Each
// tag shows the tray name, headline figures and a QR code encoding the
// label data as JSON. Tags are laid out on a standard label sheet format
// (Avery 5160 / 3 columns x 10 rows on US Letter).
func ExportLabels(path string, reports []Report) error {
	if len(reports) == 0 {
		return ErrNoTray
	}
	for _, r := range reports {
		if r.Tray.Width <= 0 || r.Tray.Height <= 0 {
			return fmt.Errorf("%q: %w", r.Tray.Name, ErrNoTray)
		}
	}

	labels := CollectLabelInfos(reports)

	pdf := fpdf.New("P", "mm", "Letter", "")
	pdf.SetAutoPageBreak(false, 0)
	tr := pdf.UnicodeTranslatorFromDescriptor("")

	for i, label := range labels {
		if i%labelsPerPage == 0 {
			pdf.AddPage()
		}

		posOnPage := i % labelsPerPage
		col := posOnPage % labelCols
		row := posOnPage / labelCols

		x := labelMarginLeft + float64(col)*labelWidth
		y := labelMarginTop + float64(row)*labelHeight

		if err := renderLabel(pdf, tr, x, y, i, label); err != nil {
			return fmt.Errorf("failed to render label for %q: %w", label.Tray, err)
		}
	}

	return pdf.OutputFileAndClose(path)
}

// renderLabel draws a single tray tag at the given position.
func renderLabel(pdf *fpdf.Fpdf, tr func(string) string, x, y float64, index int, info LabelInfo) error {
	pdf.SetDrawColor(200, 200, 200)
	pdf.SetLineWidth(0.1)
	pdf.Rect(x, y, labelWidth, labelHeight, "D")

	qrData, err := json.Marshal(info)
	if err != nil {
		return fmt.Errorf("failed to marshal label info: %w", err)
	}

	qrPNG, err := qrcode.Encode(string(qrData), qrcode.Medium, 256)
	if err != nil {
		return fmt.Errorf("failed to generate QR code: %w", err)
	}

	imgName := fmt.Sprintf("qr_tray_%d", index)
	pdf.RegisterImageOptionsReader(imgName, fpdf.ImageOptions{ImageType: "PNG"}, bytes.NewReader(qrPNG))

	qrX := x + labelWidth - qrSize - labelPadding
	qrY := y + (labelHeight-qrSize)/2
	pdf.ImageOptions(imgName, qrX, qrY, qrSize, qrSize, false, fpdf.ImageOptions{ImageType: "PNG"}, 0, "")

	textX := x + labelPadding
	textW := labelWidth - qrSize - 3*labelPadding

	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(0, 0, 0)
	pdf.SetXY(textX, y+labelPadding)
	pdf.CellFormat(textW, 4.5, truncateToWidth(pdf, tr(info.Tray), textW), "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 7)
	pdf.SetXY(textX, y+labelPadding+5)
	dims := fmt.Sprintf("%.0f x %.0f mm, %d cables", info.Width, info.Height, info.Cables)
	pdf.CellFormat(textW, 3.5, dims, "", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 6)
	pdf.SetTextColor(100, 100, 100)
	pdf.SetXY(textX, y+labelPadding+9)
	load := fmt.Sprintf("Load %.0f %%  Fill %.0f %%", info.Structural, info.AreaFill)
	pdf.CellFormat(textW, 3, load, "", 1, "L", false, 0, "")

	if info.WorkingSet != "" {
		pdf.SetXY(textX, y+labelPadding+12.5)
		pdf.CellFormat(textW, 3, truncateToWidth(pdf, tr(info.WorkingSet), textW), "", 1, "L", false, 0, "")
	}

	pdf.SetXY(textX, y+labelPadding+16)
	pdf.SetFont("Helvetica", "B", 6)
	if info.Failing {
		pdf.SetTextColor(colorRed.r, colorRed.g, colorRed.b)
	} else {
		pdf.SetTextColor(colorGreen.r, colorGreen.g, colorGreen.b)
	}
	pdf.CellFormat(textW, 3, truncateToWidth(pdf, info.Status, textW), "", 0, "L", false, 0, "")

	pdf.SetTextColor(0, 0, 0)

	return nil
}
