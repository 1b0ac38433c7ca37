package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/TrayCalc/internal/model"
)

func sampleWorkingSet() model.WorkingSet {
	ws := model.NewWorkingSet()
	ws.Name = "Riser B level 2"
	ws.Tray = model.TrayType{
		Name: "Ladder HDG heavy 300 x 100", Width: 300, Height: 100,
		MaxLoad: 140, SelfWeight: 6.0, MaxFillRatio: 0.6,
	}
	ws.AddCable(model.NewCableType("Cu 3C 25mm² PVC", 25.0, 2.40), 4)
	ws.AddCable(model.NewCableType("CAT6A F/UTP", 7.6, 0.055), 24)
	return ws
}

func assertSameWorkingSet(t *testing.T, want, got model.WorkingSet) {
	t.Helper()
	assert.Equal(t, want.Name, got.Name)
	assert.Equal(t, want.Tray.Name, got.Tray.Name)
	assert.InDelta(t, want.Tray.Width, got.Tray.Width, 1e-9)
	assert.InDelta(t, want.Tray.Height, got.Tray.Height, 1e-9)
	assert.InDelta(t, want.Tray.MaxLoad, got.Tray.MaxLoad, 1e-9)
	assert.InDelta(t, want.Tray.SelfWeight, got.Tray.SelfWeight, 1e-9)
	assert.InDelta(t, want.Tray.MaxFillRatio, got.Tray.MaxFillRatio, 1e-9)

	require.Len(t, got.Cables, len(want.Cables))
	for i := range want.Cables {
		assert.Equal(t, want.Cables[i].Cable.Name, got.Cables[i].Cable.Name)
		assert.InDelta(t, want.Cables[i].Cable.Diameter, got.Cables[i].Cable.Diameter, 1e-9)
		assert.InDelta(t, want.Cables[i].Cable.Weight, got.Cables[i].Cable.Weight, 1e-9)
		assert.Equal(t, want.Cables[i].Quantity, got.Cables[i].Quantity)
	}
}

func TestWorkingSetRoundTripJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "riser.json")
	ws := sampleWorkingSet()

	require.NoError(t, SaveWorkingSet(path, ws))
	loaded, err := LoadWorkingSet(path)
	require.NoError(t, err)

	assertSameWorkingSet(t, ws, loaded)
	assert.Equal(t, model.WorkingSetVersion, loaded.Version)
}

func TestWorkingSetRoundTripYAML(t *testing.T) {
	for _, name := range []string{"riser.yaml", "riser.YML"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			ws := sampleWorkingSet()

			require.NoError(t, SaveWorkingSet(path, ws))

			raw, err := os.ReadFile(path)
			require.NoError(t, err)
			assert.Contains(t, string(raw), "diameter_mm: 25")
			assert.Contains(t, string(raw), "qty: 4")

			loaded, err := LoadWorkingSet(path)
			require.NoError(t, err)
			assertSameWorkingSet(t, ws, loaded)
		})
	}
}

func TestWorkingSetJSONLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "riser.json")
	require.NoError(t, SaveWorkingSet(path, sampleWorkingSet()))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	s := string(raw)
	assert.Contains(t, s, `"version": 1`)
	assert.Contains(t, s, `"weight_kg_per_m": 2.4`)
	assert.Contains(t, s, `"self_weight_kg_per_m": 6`)
	assert.Contains(t, s, `"max_fill_ratio": 0.6`)
	assert.Contains(t, s, `"qty": 24`)
}

func TestLoadWorkingSetDropsInvalidRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "legacy.json")
	data := []byte(`{
  "version": 1,
  "cables": [
    {"name": "good", "diameter_mm": 10, "weight_kg_per_m": 0.3, "qty": 2},
    {"name": "no dia", "diameter_mm": 0, "weight_kg_per_m": 0.3, "qty": 2},
    {"name": "no weight", "diameter_mm": 10, "weight_kg_per_m": -1, "qty": 2},
    {"name": "no qty", "diameter_mm": 10, "weight_kg_per_m": 0.3, "qty": 0}
  ],
  "tray": {"width_mm": 300, "height_mm": 100, "max_load_kg_per_m": 140, "self_weight_kg_per_m": 6, "max_fill_ratio": 0.6}
}`)
	require.NoError(t, os.WriteFile(path, data, 0644))

	ws, err := LoadWorkingSet(path)
	require.NoError(t, err)
	require.Len(t, ws.Cables, 1)
	assert.Equal(t, "good", ws.Cables[0].Cable.Name)
	assert.Equal(t, "Custom tray", ws.Tray.Name)
	assert.Equal(t, "Untitled", ws.Name)
}

func TestLoadWorkingSetMissingVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "old.json")
	data := []byte(`{"cables": [], "tray": {"name": "T", "width_mm": 100, "height_mm": 50}}`)
	require.NoError(t, os.WriteFile(path, data, 0644))

	ws, err := LoadWorkingSet(path)
	require.NoError(t, err)
	assert.Equal(t, 1, ws.Version)
	assert.Equal(t, "T", ws.Tray.Name)
}

func TestLoadWorkingSetTrayWithoutFillRatio(t *testing.T) {
	dir := t.TempDir()
	files := map[string]string{
		"riser.json": `{"version": 1,
  "cables": [{"name": "Cu 3C 25mm² PVC", "diameter_mm": 25, "weight_kg_per_m": 2.4, "qty": 4}],
  "tray": {"name": "Ladder 300", "width_mm": 300, "height_mm": 100, "max_load_kg_per_m": 140, "self_weight_kg_per_m": 6}}`,
		"riser.yaml": `version: 1
cables:
  - {name: "Cu 3C 25mm² PVC", diameter_mm: 25, weight_kg_per_m: 2.4, qty: 4}
tray: {name: Ladder 300, width_mm: 300, height_mm: 100, max_load_kg_per_m: 140, self_weight_kg_per_m: 6}
`,
		"zero.json": `{"version": 1,
  "cables": [{"name": "Cu 3C 25mm² PVC", "diameter_mm": 25, "weight_kg_per_m": 2.4, "qty": 4}],
  "tray": {"name": "Ladder 300", "width_mm": 300, "height_mm": 100, "max_load_kg_per_m": 140, "self_weight_kg_per_m": 6, "max_fill_ratio": 0}}`,
	}
	for name, body := range files {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(dir, name)
			require.NoError(t, os.WriteFile(path, []byte(body), 0644))

			ws, err := LoadWorkingSet(path)
			require.NoError(t, err)
			assert.Equal(t, model.DefaultMaxFillRatio, ws.Tray.MaxFillRatio)
			assert.Empty(t, ws.Tray.Validate())

			_, a := ws.Evaluate(model.DefaultEffectiveFillRatioForHeight)
			assert.Equal(t, model.StatusOK, a.Status)
		})
	}
}

func TestLoadWorkingSetMissingTrayFieldsUseCustomTray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version": 1, "cables": [], "tray": {"width_mm": 450}}`), 0644))

	ws, err := LoadWorkingSet(path)
	require.NoError(t, err)
	custom := model.CustomTray()
	assert.Equal(t, 450.0, ws.Tray.Width)
	assert.Equal(t, custom.Height, ws.Tray.Height)
	assert.Equal(t, custom.MaxLoad, ws.Tray.MaxLoad)
	assert.Equal(t, custom.SelfWeight, ws.Tray.SelfWeight)
	assert.Equal(t, custom.Name, ws.Tray.Name)
}

func TestLoadWorkingSetNewerVersion(t *testing.T) {
	path := filepath.Join(t.TempDir(), "future.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"version": 7, "cables": [], "tray": {}}`), 0644))

	_, err := LoadWorkingSet(path)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnsupportedVersion))
}

func TestLoadWorkingSetErrors(t *testing.T) {
	_, err := LoadWorkingSet(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("cables: [unterminated"), 0644))
	_, err = LoadWorkingSet(path)
	assert.Error(t, err)
}
