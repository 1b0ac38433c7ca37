package widgets

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/TrayCalc/internal/engine"
)

// Cable colors, one per distinct cable name, cycling.
var cableColors = []color.NRGBA{
	{R: 76, G: 175, B: 80, A: 220},  // green
	{R: 33, G: 150, B: 243, A: 220}, // blue
	{R: 255, G: 152, B: 0, A: 220},  // orange
	{R: 156, G: 39, B: 176, A: 220}, // purple
	{R: 0, G: 188, B: 212, A: 220},  // cyan
	{R: 255, G: 235, B: 59, A: 220}, // yellow
	{R: 121, G: 85, B: 72, A: 220},  // brown
}

var (
	trayColor     = color.NRGBA{R: 200, G: 205, B: 215, A: 255}
	usableColor   = color.NRGBA{R: 255, G: 140, B: 0, A: 255}
	overflowColor = color.NRGBA{R: 255, G: 77, B: 77, A: 230}
	profileWidth  = float32(3)
	canvasPadding = float32(8)
)

// FitScale returns the largest scale that fits a w x h mm drawing inside
// maxW x maxH pixels. It returns 0 for a degenerate drawing.
func FitScale(w, h float64, maxW, maxH float32) float32 {
	if w <= 0 || h <= 0 {
		return 0
	}
	scale := maxW / float32(w)
	if s := maxH / float32(h); s < scale {
		scale = s
	}
	return scale
}

// ColorIndex assigns each distinct cable name a stable palette index in
// order of first appearance.
func ColorIndex(cables []engine.PlacedCable) map[string]int {
	idx := make(map[string]int)
	for _, c := range cables {
		if _, ok := idx[c.Name]; !ok {
			idx[c.Name] = len(idx) % len(cableColors)
		}
	}
	return idx
}

// TrayCanvas renders a tray cross-section with its cables.
type TrayCanvas struct {
	widget.BaseWidget
	layout    engine.Layout
	maxWidth  float32
	maxHeight float32
}

func NewTrayCanvas(layout engine.Layout, maxW, maxH float32) *TrayCanvas {
	tc := &TrayCanvas{
		layout:    layout,
		maxWidth:  maxW,
		maxHeight: maxH,
	}
	tc.ExtendBaseWidget(tc)
	return tc
}

// SetLayout replaces the drawn layout and refreshes the widget.
func (tc *TrayCanvas) SetLayout(layout engine.Layout) {
	tc.layout = layout
	tc.Refresh()
}

func (tc *TrayCanvas) CreateRenderer() fyne.WidgetRenderer {
	return newTrayCanvasRenderer(tc)
}

type trayCanvasRenderer struct {
	tc      *TrayCanvas
	objects []fyne.CanvasObject
}

func newTrayCanvasRenderer(tc *TrayCanvas) *trayCanvasRenderer {
	r := &trayCanvasRenderer{tc: tc}
	r.rebuild()
	return r
}

// drawingHeight is the tray height, or the top of the highest cable when
// cables overflow above the side rails.
func drawingHeight(l engine.Layout) float64 {
	h := l.Height
	for _, c := range l.Cables {
		if top := c.Y + c.Radius; top > h {
			h = top
		}
	}
	return h
}

func (r *trayCanvasRenderer) scale() float32 {
	l := r.tc.layout
	return FitScale(l.Width, drawingHeight(l), r.tc.maxWidth-2*canvasPadding, r.tc.maxHeight-2*canvasPadding)
}

func (r *trayCanvasRenderer) rebuild() {
	r.objects = nil

	l := r.tc.layout
	scale := r.scale()
	if scale == 0 {
		msg := canvas.NewText("No tray dimensions", color.Gray{Y: 160})
		msg.TextSize = 12
		r.objects = append(r.objects, msg)
		return
	}

	totalH := float32(drawingHeight(l)) * scale
	// Convert tray coordinates (origin bottom-left, y up) to canvas pixels.
	toPos := func(x, y float64) fyne.Position {
		return fyne.NewPos(canvasPadding+float32(x)*scale, canvasPadding+totalH-float32(y)*scale)
	}

	w := float32(l.Width) * scale
	h := float32(l.Height) * scale
	bottomLeft := toPos(0, 0)

	// Tray profile: floor and two side rails
	segments := [][2]fyne.Position{
		{bottomLeft, fyne.NewPos(bottomLeft.X+w, bottomLeft.Y)},
		{bottomLeft, fyne.NewPos(bottomLeft.X, bottomLeft.Y-h)},
		{fyne.NewPos(bottomLeft.X+w, bottomLeft.Y), fyne.NewPos(bottomLeft.X+w, bottomLeft.Y-h)},
	}
	for _, s := range segments {
		line := canvas.NewLine(trayColor)
		line.StrokeWidth = profileWidth
		line.Position1 = s[0]
		line.Position2 = s[1]
		r.objects = append(r.objects, line)
	}

	// Usable height marker
	usable := canvas.NewLine(usableColor)
	usable.StrokeWidth = 1
	usable.Position1 = toPos(0, l.UsableHeight)
	usable.Position2 = toPos(l.Width, l.UsableHeight)
	r.objects = append(r.objects, usable)

	colors := ColorIndex(l.Cables)
	for _, c := range l.Cables {
		fill := cableColors[colors[c.Name]]
		if c.Overflow {
			fill = overflowColor
		}
		circle := canvas.NewCircle(fill)
		circle.StrokeColor = color.NRGBA{R: 30, G: 30, B: 30, A: 255}
		circle.StrokeWidth = 1

		d := float32(c.Radius*2) * scale
		topLeft := toPos(c.X-c.Radius, c.Y+c.Radius)
		circle.Move(topLeft)
		circle.Resize(fyne.NewSize(d, d))
		r.objects = append(r.objects, circle)
	}

	dims := canvas.NewText(fmt.Sprintf("%.0f x %.0f mm", l.Width, l.Height), color.Gray{Y: 180})
	dims.TextSize = 10
	dims.Move(fyne.NewPos(bottomLeft.X, bottomLeft.Y+2))
	r.objects = append(r.objects, dims)
}

func (r *trayCanvasRenderer) Layout(size fyne.Size)        {}
func (r *trayCanvasRenderer) Refresh()                     { r.rebuild(); canvas.Refresh(r.tc) }
func (r *trayCanvasRenderer) Destroy()                     {}
func (r *trayCanvasRenderer) Objects() []fyne.CanvasObject { return r.objects }
func (r *trayCanvasRenderer) MinSize() fyne.Size {
	l := r.tc.layout
	scale := r.scale()
	if scale == 0 {
		return fyne.NewSize(r.tc.maxWidth, 40)
	}
	return fyne.NewSize(
		float32(l.Width)*scale+2*canvasPadding,
		float32(drawingHeight(l))*scale+2*canvasPadding+14,
	)
}

// RenderTrayLayout creates the cross-section panel: a caption, the canvas
// and a warning when cables do not fit.
func RenderTrayLayout(layout engine.Layout) fyne.CanvasObject {
	if layout.Width <= 0 || layout.Height <= 0 {
		return widget.NewLabel("Set the tray width and side height to see the cross-section.")
	}

	header := widget.NewLabel(fmt.Sprintf("Cross-section: %s, %d cables", layout.TrayName, layout.Total()))
	header.TextStyle = fyne.TextStyle{Bold: true}

	items := []fyne.CanvasObject{header, NewTrayCanvas(layout, 520, 260)}

	if n := layout.OverflowCount(); n > 0 {
		warning := widget.NewLabel(fmt.Sprintf(
			"WARNING: %d cables do not fit below the usable height in this indicative layout.", n,
		))
		warning.Importance = widget.DangerImportance
		items = append(items, warning)
	}
	if hidden := layout.Unplaced + layout.Elided; hidden > 0 {
		items = append(items, widget.NewLabel(fmt.Sprintf("%d cables are counted but not drawn.", hidden)))
	}

	note := widget.NewLabel("Indicative arrangement only; status comes from the area and load calculation.")
	note.TextStyle = fyne.TextStyle{Italic: true}
	items = append(items, note)

	return container.NewVBox(items...)
}
