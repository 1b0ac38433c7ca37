package project

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/piwi3910/TrayCalc/internal/model"
)

// HomeEnv overrides the settings directory, mainly for portable installs.
const HomeEnv = "TRAYCALC_HOME"

const (
	settingsDirName = ".traycalc"
	configFileName  = "config.json"
)

// DefaultConfigDir is where the desktop app and the CLI keep their settings:
// $TRAYCALC_HOME when set, ~/.traycalc otherwise.
func DefaultConfigDir() string {
	if dir := os.Getenv(HomeEnv); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, settingsDirName)
}

// DefaultConfigPath is the desktop app's config.json inside DefaultConfigDir.
func DefaultConfigPath() string {
	return filepath.Join(DefaultConfigDir(), configFileName)
}

// SaveAppConfig writes the preferences as JSON. Out-of-range values are
// replaced by their defaults first, so the file always loads cleanly.
func SaveAppConfig(path string, config model.AppConfig) error {
	config.RecentProjects = append([]string(nil), config.RecentProjects...)
	config.Normalize()
	return writeJSON(path, "config", config)
}

// LoadAppConfig reads the preferences at path. A missing file yields the
// defaults; keys absent from the file keep their default values.
func LoadAppConfig(path string) (model.AppConfig, error) {
	config := model.DefaultAppConfig()
	if err := readJSON(path, "config", &config); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return model.DefaultAppConfig(), nil
		}
		return model.AppConfig{}, err
	}
	config.Normalize()
	return config, nil
}
