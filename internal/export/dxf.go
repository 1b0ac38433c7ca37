package export

import (
	"fmt"

	"github.com/yofu/dxf"
	"github.com/yofu/dxf/color"
	"github.com/yofu/dxf/drawing"

	"github.com/piwi3910/TrayCalc/internal/engine"
)

// DXF layer names.
const (
	LayerTray     = "TRAY"
	LayerUsable   = "USABLE_HEIGHT"
	LayerCables   = "CABLES"
	LayerOverflow = "OVERFLOW"
	LayerText     = "ANNOTATION"
)

// ExportDXF writes the cross-section layout as a DXF drawing in mm: the tray
// profile as an open U, a line at the usable height and one circle per cable.
// Cables that did not fit are drawn on their own layer.
func ExportDXF(path string, layout engine.Layout) error {
	if layout.Width <= 0 || layout.Height <= 0 {
		return ErrNoTray
	}

	d := dxf.NewDrawing()
	layers := []struct {
		name string
		cl   color.ColorNumber
	}{
		{LayerTray, color.White},
		{LayerUsable, color.Cyan},
		{LayerCables, color.Green},
		{LayerOverflow, color.Red},
		{LayerText, color.Yellow},
	}
	for _, l := range layers {
		if _, err := d.AddLayer(l.name, l.cl, dxf.DefaultLineType, false); err != nil {
			return fmt.Errorf("failed to add layer %s: %w", l.name, err)
		}
	}

	if err := drawTrayProfile(d, layout); err != nil {
		return err
	}
	if err := drawCables(d, layout); err != nil {
		return err
	}

	if err := d.ChangeLayer(LayerText); err != nil {
		return err
	}
	label := fmt.Sprintf("%s  %.0f x %.0f", layout.TrayName, layout.Width, layout.Height)
	if _, err := d.Text(label, 0, -layout.Height*0.15-5, 0, 5); err != nil {
		return fmt.Errorf("failed to write annotation: %w", err)
	}

	if err := d.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save DXF: %w", err)
	}
	return nil
}

func drawTrayProfile(d *drawing.Drawing, layout engine.Layout) error {
	if err := d.ChangeLayer(LayerTray); err != nil {
		return err
	}
	w, h := layout.Width, layout.Height
	segments := [][4]float64{
		{0, 0, w, 0},
		{0, 0, 0, h},
		{w, 0, w, h},
	}
	for _, s := range segments {
		if _, err := d.Line(s[0], s[1], 0, s[2], s[3], 0); err != nil {
			return fmt.Errorf("failed to draw tray profile: %w", err)
		}
	}

	if err := d.ChangeLayer(LayerUsable); err != nil {
		return err
	}
	if _, err := d.Line(0, layout.UsableHeight, 0, w, layout.UsableHeight, 0); err != nil {
		return fmt.Errorf("failed to draw usable height: %w", err)
	}
	return nil
}

func drawCables(d *drawing.Drawing, layout engine.Layout) error {
	for _, c := range layout.Cables {
		layer := LayerCables
		if c.Overflow {
			layer = LayerOverflow
		}
		if err := d.ChangeLayer(layer); err != nil {
			return err
		}
		if _, err := d.Circle(c.X, c.Y, 0, c.Radius); err != nil {
			return fmt.Errorf("failed to draw cable %q: %w", c.Name, err)
		}
	}
	return nil
}
