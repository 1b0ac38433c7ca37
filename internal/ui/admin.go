package ui

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/TrayCalc/internal/project"
)

// showSettingsDialog displays the application settings editor.
func (a *App) showSettingsDialog() {
	cfg := a.config

	// Helper to create a float entry bound to a pointer
	floatEntry := func(val *float64, prec int) *widget.Entry {
		e := widget.NewEntry()
		e.SetText(formatNumber(*val, prec))
		e.OnChanged = func(text string) {
			if v, err := parseNumber(text); err == nil {
				*val = v
			}
		}
		return e
	}

	stringEntry := func(val *string) *widget.Entry {
		e := widget.NewEntry()
		e.SetText(*val)
		e.OnChanged = func(text string) {
			*val = text
		}
		return e
	}

	themeSelect := widget.NewSelect([]string{"system", "light", "dark"}, func(selected string) {
		cfg.Theme = selected
	})
	themeSelect.SetSelected(cfg.Theme)

	const noDefault = "(blank custom tray)"
	trayOptions := append([]string{noDefault}, a.library.TrayNames()...)
	traySelect := widget.NewSelect(trayOptions, func(selected string) {
		if selected == noDefault {
			cfg.DefaultTray = ""
			return
		}
		cfg.DefaultTray = selected
	})
	if cfg.DefaultTray == "" {
		traySelect.SetSelected(noDefault)
	} else {
		traySelect.SetSelected(cfg.DefaultTray)
	}

	formItems := []*widget.FormItem{
		widget.NewFormItem("Theme", themeSelect),
		widget.NewFormItem("", widget.NewSeparator()),
		widget.NewFormItem("Usable height ratio (0-1)", floatEntry(&cfg.EffectiveFillRatioForHeight, 2)),
		widget.NewFormItem("Near-limit threshold (%)", floatEntry(&cfg.NearLimitPercent, 1)),
		widget.NewFormItem("Default tray", traySelect),
		widget.NewFormItem("", widget.NewSeparator()),
		widget.NewFormItem("Report title", stringEntry(&cfg.ReportTitle)),
		widget.NewFormItem("Report author", stringEntry(&cfg.ReportAuthor)),
	}

	d := dialog.NewForm("Settings", "Save", "Cancel", formItems,
		func(ok bool) {
			if !ok {
				return
			}
			cfg.Normalize()
			a.config = cfg
			if a.theme != nil {
				a.theme.SetName(cfg.Theme)
				a.app.Settings().SetTheme(a.theme)
			}
			if err := a.saveConfig(); err != nil {
				dialog.ShowError(fmt.Errorf("failed to save settings: %w", err), a.window)
			}
			a.recalculate()
		},
		a.window,
	)
	d.Resize(fyne.NewSize(500, 440))
	d.Show()
}

// showImportExportDialog offers a full backup of settings and presets.
func (a *App) showImportExportDialog() {
	exportBtn := widget.NewButton("Export All Data...", func() {
		d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
			if err != nil || writer == nil {
				return
			}
			defer writer.Close()
			path := writer.URI().Path()
			if err := project.ExportAllData(path, a.config, a.library); err != nil {
				dialog.ShowError(err, a.window)
			} else {
				a.logger.Info("exported backup", "path", path)
				dialog.ShowInformation("Export Complete",
					fmt.Sprintf("All application data exported to:\n%s", path), a.window)
			}
		}, a.window)
		d.SetFileName("traycalc-backup.json")
		d.Show()
	})

	importBtn := widget.NewButton("Import All Data...", func() {
		dialog.ShowConfirm("Import Data",
			"Importing data will replace your current settings and preset library.\n\nAre you sure you want to continue?",
			func(ok bool) {
				if !ok {
					return
				}
				d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
					if err != nil || reader == nil {
						return
					}
					defer reader.Close()
					path := reader.URI().Path()
					backup, err := project.ImportAllData(path)
					if err != nil {
						dialog.ShowError(err, a.window)
						return
					}
					a.config = backup.Config
					a.config.Normalize()
					a.library = backup.Library
					if err := a.saveConfig(); err != nil {
						dialog.ShowError(fmt.Errorf("failed to save imported settings: %w", err), a.window)
						return
					}
					a.saveLibrary()
					a.refreshPresetSelectors()
					a.recalculate()
					dialog.ShowInformation("Import Complete",
						fmt.Sprintf("Data imported successfully from backup created at %s.", backup.CreatedAt.Local().Format("2006-01-02 15:04")), a.window)
				}, a.window)
				d.Show()
			},
			a.window,
		)
	})

	content := container.NewVBox(
		widget.NewLabel("Export all application data (settings, cable and tray presets) to a backup file,\nor import from a previously exported backup."),
		widget.NewSeparator(),
		exportBtn,
		widget.NewSeparator(),
		importBtn,
	)

	d := dialog.NewCustom("Backup / Restore", "Close", content, a.window)
	d.Resize(fyne.NewSize(480, 250))
	d.Show()
}

// saveConfig persists the current app config to disk.
func (a *App) saveConfig() error {
	return project.SaveAppConfig(project.DefaultConfigPath(), a.config)
}
