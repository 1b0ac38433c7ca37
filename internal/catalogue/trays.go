package catalogue

import (
	"fmt"

	"github.com/piwi3910/TrayCalc/internal/model"
)

// rating is one size within a tray family: internal width (mm), allowable
// load (kg/m) and self-weight (kg/m).
type rating struct {
	width      float64
	maxLoad    float64
	selfWeight float64
}

// family is a range of trays sharing construction, side height and
// recommended fill.
type family struct {
	nameFormat string // formatted with the width
	height     float64
	fillRatio  float64
	sizes      []rating
}

// Loads are blended values at typical 1.5-2.0 m support spacing. Real
// designs should use manufacturer load tables.
var trayFamilies = []family{
	{
		nameFormat: "Ladder HDG heavy %g x 100",
		height:     100,
		fillRatio:  0.6,
		sizes: []rating{
			{150, 90, 4.5}, {200, 110, 5.0}, {300, 140, 6.0}, {450, 170, 7.5},
			{600, 200, 9.0}, {750, 220, 10.5}, {900, 240, 12.0},
		},
	},
	{
		nameFormat: "Ladder HDG medium %g x 75",
		height:     75,
		fillRatio:  0.55,
		sizes: []rating{
			{150, 60, 3.8}, {200, 75, 4.2}, {300, 100, 5.0}, {450, 125, 6.0},
			{600, 150, 7.2}, {750, 170, 8.5}, {900, 190, 9.8},
		},
	},
	{
		nameFormat: "Ladder HDG light %g x 60",
		height:     60,
		fillRatio:  0.55,
		sizes: []rating{
			{100, 40, 2.8}, {150, 50, 3.2}, {200, 60, 3.6},
			{300, 80, 4.2}, {450, 100, 5.2}, {600, 115, 6.0},
		},
	},
	{
		nameFormat: "Perforated tray 50H %g wide",
		height:     50,
		fillRatio:  0.5,
		sizes: []rating{
			{100, 25, 2.2}, {150, 30, 2.6}, {200, 35, 3.0},
			{300, 45, 3.8}, {450, 55, 4.6}, {600, 65, 5.3},
		},
	},
	{
		nameFormat: "Perforated tray 35H %g wide",
		height:     35,
		fillRatio:  0.45,
		sizes: []rating{
			{100, 20, 1.9}, {150, 25, 2.2}, {200, 30, 2.5}, {300, 40, 3.1},
		},
	},
	{
		nameFormat: "Wire mesh tray 50H %g wide",
		height:     50,
		fillRatio:  0.5,
		sizes: []rating{
			{100, 15, 1.2}, {150, 18, 1.4}, {200, 20, 1.6}, {300, 25, 2.0}, {400, 30, 2.4},
		},
	},
	{
		nameFormat: "Wire mesh tray 35H %g wide",
		height:     35,
		fillRatio:  0.45,
		sizes: []rating{
			{100, 10, 1.0}, {150, 12, 1.1}, {200, 14, 1.2}, {300, 18, 1.6},
		},
	},
	{
		nameFormat: "Solid-bottom tray 60H %g wide",
		height:     60,
		fillRatio:  0.45,
		sizes: []rating{
			{100, 30, 3.0}, {150, 35, 3.5}, {200, 40, 4.0},
			{300, 50, 5.0}, {450, 60, 6.3}, {600, 70, 7.5},
		},
	},
}

func defaultTrays() []model.TrayType {
	var trays []model.TrayType
	for _, f := range trayFamilies {
		for _, s := range f.sizes {
			trays = append(trays, model.TrayType{
				Name:         fmt.Sprintf(f.nameFormat, s.width),
				Width:        s.width,
				Height:       f.height,
				MaxLoad:      s.maxLoad,
				SelfWeight:   s.selfWeight,
				MaxFillRatio: f.fillRatio,
			})
		}
	}
	return trays
}
