package project

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/TrayCalc/internal/model"
)

func TestSaveAndLoadAppConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg := model.DefaultAppConfig()
	cfg.EffectiveFillRatioForHeight = 0.8
	cfg.Theme = "light"
	cfg.DefaultTray = "Ladder HDG heavy 300 x 100"
	cfg.RecentProjects = []string{"/tmp/riser.json", "/tmp/plant-room.yaml"}
	require.NoError(t, SaveAppConfig(path, cfg))

	loaded, err := LoadAppConfig(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}

func TestLoadAppConfigMissingFile(t *testing.T) {
	cfg, err := LoadAppConfig(filepath.Join(t.TempDir(), "nonexistent", "config.json"))
	require.NoError(t, err)
	assert.Equal(t, model.DefaultAppConfig(), cfg)
}

func TestLoadAppConfigInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte("not valid json{{{"), 0644))

	_, err := LoadAppConfig(path)
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestSaveAppConfigCreatesDirectories(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "dir", "config.json")
	require.NoError(t, SaveAppConfig(path, model.DefaultAppConfig()))
	assert.FileExists(t, path)
}

func TestSaveAppConfigWritesOnlyUsableValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")

	cfg := model.DefaultAppConfig()
	cfg.EffectiveFillRatioForHeight = 1.5
	cfg.NearLimitPercent = 0
	cfg.Theme = "neon"
	require.NoError(t, SaveAppConfig(path, cfg))
	assert.Equal(t, 1.5, cfg.EffectiveFillRatioForHeight, "caller's value is untouched")

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var onDisk map[string]any
	require.NoError(t, json.Unmarshal(raw, &onDisk))
	assert.Equal(t, model.DefaultEffectiveFillRatioForHeight, onDisk["effective_fill_ratio_for_height"])
	assert.Equal(t, model.DefaultNearLimitPercent, onDisk["near_limit_percent"])
	assert.Equal(t, "dark", onDisk["theme"])
}

func TestLoadAppConfigPartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"theme":"light","recent_projects":null}`), 0644))

	cfg, err := LoadAppConfig(path)
	require.NoError(t, err)
	assert.NotNil(t, cfg.RecentProjects)
	assert.Equal(t, model.DefaultNearLimitPercent, cfg.NearLimitPercent)
	assert.Equal(t, model.DefaultEffectiveFillRatioForHeight, cfg.EffectiveFillRatioForHeight)
	assert.Equal(t, "light", cfg.Theme)
}

func TestDefaultConfigPath(t *testing.T) {
	t.Setenv(HomeEnv, "")
	path := DefaultConfigPath()
	assert.Equal(t, "config.json", filepath.Base(path))
	assert.Equal(t, ".traycalc", filepath.Base(filepath.Dir(path)))
}

func TestDefaultConfigDirHonoursHomeEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv(HomeEnv, dir)
	assert.Equal(t, dir, DefaultConfigDir())
	assert.Equal(t, filepath.Join(dir, "config.json"), DefaultConfigPath())
	assert.Equal(t, filepath.Join(dir, "library.json"), DefaultLibraryPath())
}
