package engine

import (
	"testing"

	"github.com/piwi3910/TrayCalc/internal/catalogue"
	"github.com/piwi3910/TrayCalc/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scenarioCables() []model.CableEntry {
	return []model.CableEntry{
		model.NewCableEntry(model.NewCableType("Cu 3C 25mm² PVC", 25, 2.40), 4),
	}
}

func TestSuggestTrays_Ordering(t *testing.T) {
	trays := []model.TrayType{
		{Name: "tiny", Width: 100, Height: 35, MaxLoad: 10, SelfWeight: 1, MaxFillRatio: 0.45},
		{Name: "mid", Width: 300, Height: 100, MaxLoad: 140, SelfWeight: 6, MaxFillRatio: 0.6},
		{Name: "overloaded", Width: 100, Height: 35, MaxLoad: 5, SelfWeight: 1, MaxFillRatio: 0.45},
		{Name: "small", Width: 150, Height: 100, MaxLoad: 90, SelfWeight: 4.5, MaxFillRatio: 0.6},
	}

	got := SuggestTrays(scenarioCables(), trays, model.DefaultEffectiveFillRatioForHeight)
	require.Len(t, got, 4)

	names := make([]string, len(got))
	for i, s := range got {
		names[i] = s.Tray.Name
	}
	assert.Equal(t, []string{"small", "mid", "tiny", "overloaded"}, names)

	assert.True(t, got[0].Passes())
	assert.True(t, got[1].Passes())
	assert.Equal(t, model.StatusFillWarning, got[2].Assessment.Status)
	assert.Equal(t, model.StatusOverloaded, got[3].Assessment.Status)
}

func TestSuggestTrays_Utilisation(t *testing.T) {
	tray := model.TrayType{Name: "mid", Width: 300, Height: 100, MaxLoad: 140, SelfWeight: 6, MaxFillRatio: 0.6}
	got := SuggestTrays(scenarioCables(), []model.TrayType{tray}, model.DefaultEffectiveFillRatioForHeight)
	require.Len(t, got, 1)

	s := got[0]
	assert.InDelta(t, 7.272/60*100, s.FillOfLimit(), 1e-2)
	assert.InDelta(t, s.FillOfLimit(), s.Utilisation(), 1e-9)
	assert.Equal(t, model.ComputeStats(scenarioCables(), tray), s.Stats)
}

func TestSuggestTrays_EmptyCablesKeepsOrder(t *testing.T) {
	trays := catalogue.Trays()
	got := SuggestTrays(nil, trays, model.DefaultEffectiveFillRatioForHeight)
	require.Len(t, got, len(trays))
	for i := range got {
		assert.Equal(t, trays[i].Name, got[i].Tray.Name)
		assert.Equal(t, model.StatusNoCables, got[i].Assessment.Status)
	}
}

func TestBestTray_Catalogue(t *testing.T) {
	best, ok := BestTray(scenarioCables(), catalogue.Trays(), model.DefaultEffectiveFillRatioForHeight)
	require.True(t, ok)
	assert.True(t, best.Passes())

	for _, s := range SuggestTrays(scenarioCables(), catalogue.Trays(), model.DefaultEffectiveFillRatioForHeight) {
		if s.Passes() {
			assert.LessOrEqual(t, s.Utilisation(), best.Utilisation())
		}
	}
}

func TestBestTray_NothingFits(t *testing.T) {
	heavy := []model.CableEntry{
		model.NewCableEntry(model.NewCableType("Cu 4C 120mm² XLPE/SWA/PVC", 52, 11.7), 200),
	}
	_, ok := BestTray(heavy, catalogue.Trays(), model.DefaultEffectiveFillRatioForHeight)
	assert.False(t, ok)
}
