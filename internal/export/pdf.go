package export

import (
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/piwi3910/TrayCalc/internal/model"
)

const (
	pageWidth    = 210.0 // A4 portrait width in mm
	pageHeight   = 297.0 // A4 portrait height in mm
	marginLeft   = 20.0
	marginRight  = 20.0
	marginTop    = 20.0
	marginBottom = 20.0
	lineHeight   = 5.0
	indent       = 5.0
)

type rgb struct{ r, g, b int }

var (
	colorDarkBlue  = rgb{11, 31, 59}
	colorOrange    = rgb{255, 140, 0}
	colorLightGrey = rgb{217, 217, 217}
	colorRed       = rgb{230, 51, 51}
	colorGreen     = rgb{51, 179, 77}
	colorBlack     = rgb{0, 0, 0}
)

// cableColumns are the base widths of the cable table in mm.
var cableColumns = []struct {
	title string
	width float64
	align string
}{
	{"Cable", 60, "L"},
	{"Diameter (mm)", 25, "R"},
	{"Weight (kg/m)", 25, "R"},
	{"Qty", 15, "R"},
	{"Total (kg/m)", 30, "R"},
	{"Area (mm^2)", 30, "R"},
}

// pdfWriter tracks the vertical cursor while a report is laid out.
type pdfWriter struct {
	pdf *fpdf.Fpdf
	tr  func(string) string // UTF-8 to the core font code page
	y   float64
}

func (w *pdfWriter) textColor(c rgb) {
	w.pdf.SetTextColor(c.r, c.g, c.b)
}

// ensureSpace starts a new page when fewer than needed mm remain.
func (w *pdfWriter) ensureSpace(needed float64) {
	if w.y+needed > pageHeight-marginBottom {
		w.pdf.AddPage()
		w.y = marginTop
	}
}

func (w *pdfWriter) heading(text string) {
	w.ensureSpace(16)
	w.pdf.SetFont("Helvetica", "B", 14)
	w.textColor(colorDarkBlue)
	w.pdf.SetXY(marginLeft, w.y)
	w.pdf.CellFormat(pageWidth-marginLeft-marginRight, 7, text, "", 0, "L", false, 0, "")
	w.y += 8

	w.pdf.SetDrawColor(colorOrange.r, colorOrange.g, colorOrange.b)
	w.pdf.SetLineWidth(0.35)
	w.pdf.Line(marginLeft, w.y, pageWidth-marginRight, w.y)
	w.y += 4
}

func (w *pdfWriter) line(text string, c rgb) {
	w.ensureSpace(lineHeight)
	w.pdf.SetFont("Helvetica", "", 10)
	w.textColor(c)
	w.pdf.SetXY(marginLeft+indent, w.y)
	w.pdf.CellFormat(pageWidth-marginLeft-marginRight-indent, lineHeight, w.tr(text), "", 0, "L", false, 0, "")
	w.y += lineHeight
}

// levelColor maps a metric level to the report colour scheme.
func levelColor(l model.Level) rgb {
	switch l {
	case model.LevelOver:
		return colorRed
	case model.LevelNear:
		return colorDarkBlue
	default:
		return colorGreen
	}
}

// ExportPDF generates an A4 portrait calculation report with the tray
// configuration, structural and fill summaries and the cable table.
func ExportPDF(path string, r Report) error {
	if err := r.check(); err != nil {
		return err
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(r.Title, true)
	if r.Author != "" {
		pdf.SetAuthor(r.Author, true)
	}
	pdf.SetCreator("TrayCalc", true)
	pdf.SetAutoPageBreak(false, marginBottom)
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(func() {
		pdf.SetY(-12)
		pdf.SetFont("Helvetica", "I", 8)
		pdf.SetTextColor(120, 120, 120)
		pdf.CellFormat(0, 5, fmt.Sprintf("Page %d of {nb}", pdf.PageNo()), "", 0, "C", false, 0, "")
	})
	pdf.AddPage()

	w := &pdfWriter{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor(""), y: marginTop}
	renderTitle(w, r)
	renderTraySection(w, r)
	renderStructuralSection(w, r)
	renderFillSection(w, r)
	renderCableTable(w, r)
	renderNote(w)

	return pdf.OutputFileAndClose(path)
}

func renderTitle(w *pdfWriter, r Report) {
	pdf := w.pdf
	pdf.SetFont("Helvetica", "B", 20)
	w.textColor(colorDarkBlue)
	pdf.SetXY(marginLeft, w.y)
	pdf.CellFormat(pageWidth-marginLeft-marginRight, 10, w.tr(r.Title), "", 0, "L", false, 0, "")
	w.y += 12

	pdf.SetFont("Helvetica", "", 9)
	w.textColor(colorBlack)
	meta := []string{
		"Generated: " + r.Timestamp(),
		"Tray: " + r.Tray.Name,
	}
	if r.Name != "" {
		meta = append(meta, "Working set: "+r.Name)
	}
	if r.Author != "" {
		meta = append(meta, "Prepared by: "+r.Author)
	}
	for _, m := range meta {
		pdf.SetXY(marginLeft, w.y)
		pdf.CellFormat(pageWidth-marginLeft-marginRight, 5, w.tr(m), "", 0, "L", false, 0, "")
		w.y += 5
	}
	w.y += 6
}

func renderTraySection(w *pdfWriter, r Report) {
	t := r.Tray
	w.heading("Tray Configuration")
	w.line("Tray name: "+t.Name, colorBlack)
	w.line(fmt.Sprintf("Width: %.1f mm", t.Width), colorBlack)
	w.line(fmt.Sprintf("Side height: %.1f mm", t.Height), colorBlack)
	w.line(fmt.Sprintf("Tray self weight: %.3f kg/m", t.SelfWeight), colorBlack)
	w.line(fmt.Sprintf("Maximum allowable load: %.1f kg/m", t.MaxLoad), colorBlack)
	w.line(fmt.Sprintf("Maximum fill ratio: %.2f (i.e. %.1f %% recommended)", t.MaxFillRatio, r.Stats.RecommendedMaxAreaFillPercent), colorBlack)
	w.y += 4
}

func renderStructuralSection(w *pdfWriter, r Report) {
	s := r.Stats
	w.heading("Structural Load Summary")
	w.ensureSpace(6 * lineHeight)
	w.line(fmt.Sprintf("Cable weight: %.3f kg/m", s.TotalCableWeight), colorBlack)
	w.line(fmt.Sprintf("Tray self weight: %.3f kg/m", s.TraySelfWeight), colorBlack)
	w.line(fmt.Sprintf("Total weight: %.3f kg/m", s.TotalWeight), colorBlack)
	w.line(fmt.Sprintf("Allowable load: %.1f kg/m", s.AllowableLoad), colorBlack)
	w.line(fmt.Sprintf("Structural utilisation: %.1f %%", s.StructuralUtilisationPercent), levelColor(r.StructuralLevel()))

	if r.Assessment.OverloadedStructural {
		w.line("OVERLOADED: check tray sizing and loading assumptions.", colorRed)
	} else {
		w.line("OK: within structural loading limits (based on current assumptions).", colorGreen)
	}
	w.y += 3
}

func renderFillSection(w *pdfWriter, r Report) {
	s := r.Stats
	w.heading("Fill and Area Utilisation")
	w.ensureSpace(5 * lineHeight)
	w.line(fmt.Sprintf("Total cable area: %s mm^2", formatArea(s.TotalCableArea)), colorBlack)
	w.line(fmt.Sprintf("Tray usable area: %s mm^2", formatArea(s.TrayUsableArea)), colorBlack)
	w.line(fmt.Sprintf("Area fill: %.1f %%", s.AreaFillPercent), levelColor(r.FillLevel()))
	w.line(fmt.Sprintf("Recommended maximum fill: %.1f %%", s.RecommendedMaxAreaFillPercent), colorBlack)

	if r.Assessment.OverloadedArea {
		w.line("WARNING: area fill exceeds recommended limit.", colorRed)
	} else {
		w.line("OK: area fill within recommended limit.", colorGreen)
	}
	w.y += 5
}

func renderCableTable(w *pdfWriter, r Report) {
	pdf := w.pdf

	// Keep the heading with at least a few rows, otherwise start fresh
	w.ensureSpace(60)
	if w.y > pageHeight/2 {
		pdf.AddPage()
		w.y = marginTop
	}
	w.heading("Cables in Tray")

	available := pageWidth - marginLeft - marginRight
	total := 0.0
	for _, c := range cableColumns {
		total += c.width
	}
	scale := 1.0
	if total > available {
		scale = available / total
	}

	header := func() {
		pdf.SetFont("Helvetica", "B", 9)
		pdf.SetFillColor(colorLightGrey.r, colorLightGrey.g, colorLightGrey.b)
		pdf.SetDrawColor(180, 180, 180)
		w.textColor(colorBlack)
		pdf.SetXY(marginLeft, w.y)
		for _, c := range cableColumns {
			pdf.CellFormat(c.width*scale, 7, c.title, "1", 0, c.align, true, 0, "")
		}
		w.y += 7
	}
	header()

	pdf.SetFont("Helvetica", "", 9)
	for i, row := range r.Rows {
		if w.y+6 > pageHeight-marginBottom {
			pdf.AddPage()
			w.y = marginTop
			header()
			pdf.SetFont("Helvetica", "", 9)
		}
		if i%2 == 0 {
			pdf.SetFillColor(245, 245, 245)
		} else {
			pdf.SetFillColor(255, 255, 255)
		}
		name := truncateToWidth(pdf, w.tr(row.Name), cableColumns[0].width*scale-2)
		values := []string{
			name,
			fmt.Sprintf("%.1f", row.Diameter),
			fmt.Sprintf("%.3f", row.Weight),
			fmt.Sprintf("%d", row.Quantity),
			fmt.Sprintf("%.3f", row.TotalWeight),
			formatArea(row.TotalArea),
		}
		pdf.SetXY(marginLeft, w.y)
		for j, c := range cableColumns {
			pdf.CellFormat(c.width*scale, 6, values[j], "1", 0, c.align, true, 0, "")
		}
		w.y += 6
	}
	w.y += 6

	w.ensureSpace(2 * lineHeight)
	status := r.Status()
	c := colorGreen
	if status.Failing() {
		c = colorRed
	}
	pdf.SetFont("Helvetica", "B", 11)
	w.textColor(c)
	pdf.SetXY(marginLeft, w.y)
	pdf.CellFormat(available, 6, "Overall status: "+status.Description(), "", 0, "L", false, 0, "")
	w.y += 8
}

func renderNote(w *pdfWriter) {
	w.ensureSpace(12)
	w.pdf.SetFont("Helvetica", "I", 8)
	w.pdf.SetTextColor(120, 120, 120)
	w.pdf.SetXY(marginLeft, w.y)
	w.pdf.MultiCell(pageWidth-marginLeft-marginRight, 4,
		"Note: Values are based on current tray and cable data in the calculator. "+
			"Always verify against manufacturer data and applicable standards.", "", "L", false)
	w.pdf.SetTextColor(0, 0, 0)
}

// truncateToWidth shortens s with an ellipsis until it fits maxW.
func truncateToWidth(pdf *fpdf.Fpdf, s string, maxW float64) string {
	if pdf.GetStringWidth(s) <= maxW {
		return s
	}
	for len(s) > 0 && pdf.GetStringWidth(s+"...") > maxW {
		s = s[:len(s)-1]
	}
	return s + "..."
}
