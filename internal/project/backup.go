package project

import (
	"errors"
	"fmt"
	"time"

	"github.com/piwi3910/TrayCalc/internal/model"
)

const (
	backupFormat = "traycalc-backup"
	// BackupVersion is the newest backup layout this build reads.
	BackupVersion = 1
)

// ErrInvalidBackup is returned for files that are not a usable backup.
var ErrInvalidBackup = errors.New("invalid backup file")

// BackupData bundles the preferences and the preset library into one file.
type BackupData struct {
	Format    string          `json:"format"`
	Version   int             `json:"version"`
	CreatedAt time.Time       `json:"created_at"`
	Config    model.AppConfig `json:"config"`
	Library   model.Library   `json:"library"`
}

func newBackup(config model.AppConfig, lib model.Library) BackupData {
	return BackupData{
		Format:    backupFormat,
		Version:   BackupVersion,
		CreatedAt: time.Now().UTC().Truncate(time.Second),
		Config:    config,
		Library:   lib,
	}
}

// ExportAllData writes a backup of config and lib to exportPath.
func ExportAllData(exportPath string, config model.AppConfig, lib model.Library) error {
	return writeJSON(exportPath, "backup", newBackup(config, lib))
}

// ImportAllData reads a backup written by ExportAllData. The config is
// normalized and presets that cannot be calculated with are dropped; the
// caller decides whether to apply the result.
func ImportAllData(importPath string) (BackupData, error) {
	backup := BackupData{Config: model.DefaultAppConfig()}
	if err := readJSON(importPath, "backup", &backup); err != nil {
		return BackupData{}, err
	}
	if err := backup.check(); err != nil {
		return BackupData{}, err
	}
	backup.Config.Normalize()
	backup.Library = usablePresets(backup.Library)
	return backup, nil
}

func (b BackupData) check() error {
	switch {
	case b.Format != "" && b.Format != backupFormat:
		return fmt.Errorf("%w: unknown format %q", ErrInvalidBackup, b.Format)
	case b.Version <= 0:
		return fmt.Errorf("%w: missing version", ErrInvalidBackup)
	case b.Version > BackupVersion:
		return fmt.Errorf("%w: version %d is newer than this build supports", ErrInvalidBackup, b.Version)
	}
	return nil
}

// usablePresets keeps cables with a positive diameter and weight and trays
// with a positive cross-section. A tray fill ratio outside (0, 1] is reset.
func usablePresets(lib model.Library) model.Library {
	out := model.Library{
		Cables: make([]model.CablePreset, 0, len(lib.Cables)),
		Trays:  make([]model.TrayPreset, 0, len(lib.Trays)),
	}
	for _, c := range lib.Cables {
		if c.ToCableType().Valid() {
			out.Cables = append(out.Cables, c)
		}
	}
	for _, t := range lib.Trays {
		if t.Width <= 0 || t.Height <= 0 {
			continue
		}
		if t.MaxFillRatio <= 0 || t.MaxFillRatio > 1 {
			t.MaxFillRatio = model.DefaultMaxFillRatio
		}
		out.Trays = append(out.Trays, t)
	}
	return out
}
