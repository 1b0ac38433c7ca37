package engine

import (
	"sort"

	"github.com/piwi3910/TrayCalc/internal/model"
)

// PlacedCable is one cable circle in the tray cross-section. Coordinates are
// in mm from the inside bottom-left corner of the tray.
type PlacedCable struct {
	Name     string
	X        float64 // centre
	Y        float64 // centre
	Radius   float64
	Overflow bool // extends above the usable height or wider than the tray
}

// MaxDrawnCables bounds how many circles a layout materialises. Cables past
// the bound are only counted.
const MaxDrawnCables = 2000

// Layout is an indicative arrangement of cables in a tray cross-section. It
// is a visual aid only; status always comes from the stats engine.
type Layout struct {
	TrayName     string
	Width        float64
	Height       float64
	UsableHeight float64
	Cables       []PlacedCable
	Overflow     bool
	Unplaced     int // cables left over once a row starts above the usable height
	Elided       int // cables not drawn because of MaxDrawnCables
}

// OverflowCount returns how many cables did not fit.
func (l Layout) OverflowCount() int {
	n := l.Unplaced
	for _, c := range l.Cables {
		if c.Overflow {
			n++
		}
	}
	return n
}

// Total returns the number of cables the layout accounts for, drawn or not.
func (l Layout) Total() int {
	return len(l.Cables) + l.Unplaced + l.Elided
}

// LayoutCrossSection places every valid cable into the tray using shelf rows:
// largest diameter first, left to right, each row as tall as its first
// (largest) cable, rows stacked bottom to top. Once a row would start at or
// above the usable height, the remaining cables are counted in Unplaced
// rather than drawn, so the cost follows the drawn cables, not the quantity.
func LayoutCrossSection(cables []model.CableEntry, tray model.TrayType, heightRatio float64) Layout {
	layout := Layout{
		TrayName:     tray.Name,
		Width:        tray.Width,
		Height:       tray.Height,
		UsableHeight: tray.Height * heightRatio,
	}

	entries := append([]model.CableEntry(nil), model.ValidEntries(cables)...)
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Cable.Diameter > entries[j].Cable.Diameter
	})

	var x, rowY, rowHeight float64
	full := false
	for _, e := range entries {
		c := e.Cable
		d := c.Diameter
		for i := 0; i < e.Quantity; i++ {
			if full {
				layout.Unplaced += e.Quantity - i
				break
			}
			if len(layout.Cables) >= MaxDrawnCables {
				layout.Elided += e.Quantity - i
				break
			}
			if x > 0 && x+d > layout.Width {
				rowY += rowHeight
				x = 0
				rowHeight = 0
			}
			if x == 0 && rowY >= layout.UsableHeight {
				full = true
				layout.Unplaced += e.Quantity - i
				break
			}
			if rowHeight == 0 {
				rowHeight = d
			}

			placed := PlacedCable{
				Name:     c.Name,
				X:        x + d/2,
				Y:        rowY + d/2,
				Radius:   d / 2,
				Overflow: rowY+d > layout.UsableHeight || d > layout.Width,
			}
			layout.Cables = append(layout.Cables, placed)
			x += d
		}
	}
	layout.Overflow = layout.OverflowCount() > 0

	return layout
}
