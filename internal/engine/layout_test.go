package engine

import (
	"testing"

	"github.com/piwi3910/TrayCalc/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ladder300() model.TrayType {
	return model.TrayType{Name: "Ladder 300 x 100", Width: 300, Height: 100, MaxLoad: 140, SelfWeight: 6, MaxFillRatio: 0.6}
}

func TestLayoutCrossSection_SingleRow(t *testing.T) {
	layout := LayoutCrossSection(scenarioCables(), ladder300(), model.DefaultEffectiveFillRatioForHeight)

	require.Len(t, layout.Cables, 4)
	assert.False(t, layout.Overflow)
	assert.InDelta(t, 90.0, layout.UsableHeight, 1e-9)

	for i, c := range layout.Cables {
		assert.InDelta(t, 12.5+25*float64(i), c.X, 1e-9)
		assert.InDelta(t, 12.5, c.Y, 1e-9)
		assert.InDelta(t, 12.5, c.Radius, 1e-9)
		assert.False(t, c.Overflow)
	}
}

func TestLayoutCrossSection_LargestFirst(t *testing.T) {
	cables := []model.CableEntry{
		model.NewCableEntry(model.NewCableType("small", 6, 0.05), 2),
		model.NewCableEntry(model.NewCableType("large", 30, 3.6), 1),
	}
	layout := LayoutCrossSection(cables, ladder300(), model.DefaultEffectiveFillRatioForHeight)

	require.Len(t, layout.Cables, 3)
	assert.Equal(t, "large", layout.Cables[0].Name)
	assert.InDelta(t, 33.0, layout.Cables[1].X, 1e-9)
}

func TestLayoutCrossSection_Overflow(t *testing.T) {
	// 12 cables of 25 mm per 300 mm row; rows start at 0, 25, 50, 75 and the
	// fourth row pokes above the 90 mm usable height. A fifth row would start
	// at 100 mm, so its 11 cables are only counted.
	cables := []model.CableEntry{
		model.NewCableEntry(model.NewCableType("Cu 3C 25mm² PVC", 25, 2.40), 59),
	}
	layout := LayoutCrossSection(cables, ladder300(), model.DefaultEffectiveFillRatioForHeight)

	require.Len(t, layout.Cables, 48)
	assert.Equal(t, 11, layout.Unplaced)
	assert.Equal(t, 59, layout.Total())
	assert.True(t, layout.Overflow)
	assert.Equal(t, 23, layout.OverflowCount())
	assert.False(t, layout.Cables[35].Overflow)
	assert.True(t, layout.Cables[36].Overflow)
	assert.InDelta(t, 87.5, layout.Cables[36].Y, 1e-9)
}

func TestLayoutCrossSection_SkipsInvalidEntries(t *testing.T) {
	cables := []model.CableEntry{
		model.NewCableEntry(model.NewCableType("zero", 0, 1), 3),
		model.NewCableEntry(model.NewCableType("none", 10, 1), 0),
	}
	layout := LayoutCrossSection(cables, ladder300(), model.DefaultEffectiveFillRatioForHeight)
	assert.Empty(t, layout.Cables)
	assert.False(t, layout.Overflow)
}

func TestLayoutCrossSection_CableWiderThanTray(t *testing.T) {
	tray := ladder300()
	tray.Width = 20
	layout := LayoutCrossSection(scenarioCables()[:1], tray, model.DefaultEffectiveFillRatioForHeight)

	require.Len(t, layout.Cables, 4)
	for _, c := range layout.Cables {
		assert.True(t, c.Overflow)
	}
}

func TestLayoutCrossSection_HugeQuantityIsCounted(t *testing.T) {
	// 46 CAT6 per row; rows start every 6.5 mm and the fifteenth would start
	// at 91 mm, above the 90 mm usable height.
	const qty = 5000000
	cables := []model.CableEntry{
		model.NewCableEntry(model.NewCableType("CAT6 U/UTP", 6.5, 0.05), qty),
	}
	layout := LayoutCrossSection(cables, ladder300(), model.DefaultEffectiveFillRatioForHeight)

	require.Len(t, layout.Cables, 14*46)
	assert.Equal(t, qty-14*46, layout.Unplaced)
	assert.Zero(t, layout.Elided)
	assert.Equal(t, qty, layout.Total())
	assert.True(t, layout.Overflow)
	assert.Equal(t, qty-13*46, layout.OverflowCount())
}

func TestLayoutCrossSection_DrawingIsBounded(t *testing.T) {
	tray := model.NewTrayType("Ladder 900 x 100", 900, 100, 240, 12)
	cables := []model.CableEntry{
		model.NewCableEntry(model.NewCableType("thin", 1, 0.01), 10000),
		model.NewCableEntry(model.NewCableType("thinner", 0.5, 0.005), 50),
	}
	layout := LayoutCrossSection(cables, tray, model.DefaultEffectiveFillRatioForHeight)

	require.Len(t, layout.Cables, MaxDrawnCables)
	assert.Equal(t, 10050-MaxDrawnCables, layout.Elided)
	assert.Zero(t, layout.Unplaced)
	assert.False(t, layout.Overflow)
	assert.Equal(t, 10050, layout.Total())
}

func TestLayoutCrossSection_NoUsableHeight(t *testing.T) {
	tray := ladder300()
	tray.Height = 0
	layout := LayoutCrossSection(scenarioCables(), tray, model.DefaultEffectiveFillRatioForHeight)

	assert.Empty(t, layout.Cables)
	assert.Equal(t, 4, layout.Unplaced)
	assert.True(t, layout.Overflow)
}
