package catalogue

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogueSizes(t *testing.T) {
	assert.Len(t, Cables(), 79)
	assert.Len(t, Trays(), 45)
	assert.Len(t, CableNames(), 79)
	assert.Len(t, TrayNames(), 45)
}

func TestCataloguePresetsAreValid(t *testing.T) {
	for _, c := range Cables() {
		assert.True(t, c.Valid(), "cable %q should be valid", c.Name)
	}
	for _, tr := range Trays() {
		assert.Empty(t, tr.Validate(), "tray %q should be fully rated", tr.Name)
	}
}

func TestCatalogueNamesAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for _, n := range append(CableNames(), TrayNames()...) {
		assert.False(t, seen[n], "duplicate preset name %q", n)
		seen[n] = true
	}
}

func TestFindCable(t *testing.T) {
	c, ok := FindCable("Cu 3C 25mm² PVC")
	require.True(t, ok)
	assert.Equal(t, 25.0, c.Diameter)
	assert.Equal(t, 2.40, c.Weight)

	_, ok = FindCable("Cu 3C 26mm² PVC")
	assert.False(t, ok)
}

func TestFindTray(t *testing.T) {
	tr, ok := FindTray("Ladder HDG heavy 300 x 100")
	require.True(t, ok)
	assert.Equal(t, 300.0, tr.Width)
	assert.Equal(t, 100.0, tr.Height)
	assert.Equal(t, 140.0, tr.MaxLoad)
	assert.Equal(t, 6.0, tr.SelfWeight)
	assert.Equal(t, 0.6, tr.MaxFillRatio)

	tr, ok = FindTray("Wire mesh tray 35H 300 wide")
	require.True(t, ok)
	assert.Equal(t, 0.45, tr.MaxFillRatio)
	assert.Equal(t, 18.0, tr.MaxLoad)
}

func TestAccessorsReturnCopies(t *testing.T) {
	first := Cables()
	first[0].Name = "mutated"
	first[0].Diameter = -1

	again := Cables()
	assert.Equal(t, "Cu 1C 1.5mm² PVC", again[0].Name)
	assert.Equal(t, 5.0, again[0].Diameter)

	trays := Trays()
	trays[0].MaxLoad = 0
	assert.Equal(t, 90.0, Trays()[0].MaxLoad)
}

func TestDefaultLibrary(t *testing.T) {
	lib := DefaultLibrary()
	assert.Len(t, lib.Cables, 79)
	assert.Len(t, lib.Trays, 45)
	require.NotNil(t, lib.FindTrayByName("Solid-bottom tray 60H 450 wide"))
}
