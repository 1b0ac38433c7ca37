package ui

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/TrayCalc/internal/model"
	"github.com/piwi3910/TrayCalc/internal/project"
)

// ─── Cable Library ─────────────────────────────────────────

func (a *App) showCableLibraryDialog() {
	cableList := container.NewVBox()
	var refreshList func()

	refreshList = func() {
		cableList.RemoveAll()

		if len(a.library.Cables) == 0 {
			cableList.Add(widget.NewLabel("No cable presets defined."))
			return
		}

		header := container.NewGridWithColumns(5,
			widget.NewLabelWithStyle("Name", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			widget.NewLabelWithStyle("Diameter", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			widget.NewLabelWithStyle("Weight", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{}),
			widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{}),
		)
		cableList.Add(header)
		cableList.Add(widget.NewSeparator())

		for i := range a.library.Cables {
			c := a.library.Cables[i]
			id := c.ID
			name := widget.NewLabel(c.Name)
			name.Truncation = fyne.TextTruncateEllipsis
			row := container.NewGridWithColumns(5,
				name,
				widget.NewLabel(fmt.Sprintf("%.1f mm", c.Diameter)),
				widget.NewLabel(fmt.Sprintf("%.3f kg/m", c.Weight)),
				widget.NewButtonWithIcon("", theme.DocumentCreateIcon(), func() {
					a.showCablePresetDialog(id, refreshList)
				}),
				widget.NewButtonWithIcon("", theme.DeleteIcon(), func() {
					a.library.RemoveCable(id)
					a.saveLibrary()
					a.refreshPresetSelectors()
					refreshList()
				}),
			)
			cableList.Add(row)
		}
	}

	refreshList()

	addBtn := widget.NewButtonWithIcon("Add Cable Preset", theme.ContentAddIcon(), func() {
		a.showCablePresetDialog("", refreshList)
	})
	importBtn := widget.NewButtonWithIcon("Import...", theme.FolderOpenIcon(), func() {
		a.importLibrary(refreshList)
	})
	exportBtn := widget.NewButtonWithIcon("Export...", theme.DocumentSaveIcon(), func() {
		a.exportLibrary()
	})

	toolbar := container.NewHBox(addBtn, layout.NewSpacer(), importBtn, exportBtn)

	content := container.NewBorder(
		toolbar,
		nil, nil, nil,
		container.NewVScroll(cableList),
	)

	d := dialog.NewCustom("Cable Library", "Close", content, a.window)
	d.Resize(fyne.NewSize(700, 500))
	d.Show()
}

// showCablePresetDialog adds a cable preset, or edits the one with the
// given ID when id is not empty.
func (a *App) showCablePresetDialog(id string, onDone func()) {
	preset := model.CablePreset{Name: "New cable", Diameter: 10, Weight: 0.2}
	title, confirm := "Add Cable Preset", "Add"
	if id != "" {
		p := a.library.FindCableByID(id)
		if p == nil {
			return
		}
		preset = *p
		title, confirm = "Edit Cable Preset", "Save"
	}

	nameEntry := widget.NewEntry()
	nameEntry.SetText(preset.Name)
	diameterEntry := widget.NewEntry()
	diameterEntry.SetText(formatNumber(preset.Diameter, 1))
	weightEntry := widget.NewEntry()
	weightEntry.SetText(formatNumber(preset.Weight, 3))

	form := dialog.NewForm(title, confirm, "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem("Name", nameEntry),
			widget.NewFormItem("Diameter (mm)", diameterEntry),
			widget.NewFormItem("Weight (kg/m)", weightEntry),
		},
		func(ok bool) {
			if !ok {
				return
			}
			name := strings.TrimSpace(nameEntry.Text)
			diameter, errD := parseNumber(diameterEntry.Text)
			weight, errW := parseNumber(weightEntry.Text)
			if name == "" || errD != nil || errW != nil || diameter <= 0 || weight <= 0 {
				dialog.ShowError(errors.New("name is required; diameter and weight must be > 0"), a.window)
				return
			}

			if id == "" {
				a.library.Cables = append(a.library.Cables, model.NewCablePreset(name, diameter, weight))
			} else if p := a.library.FindCableByID(id); p != nil {
				p.Name = name
				p.Diameter = diameter
				p.Weight = weight
			}
			a.saveLibrary()
			a.refreshPresetSelectors()
			onDone()
		},
		a.window,
	)
	form.Resize(fyne.NewSize(420, 280))
	form.Show()
}

// ─── Tray Library ──────────────────────────────────────────

func (a *App) showTrayLibraryDialog() {
	trayList := container.NewVBox()
	var refreshList func()

	refreshList = func() {
		trayList.RemoveAll()

		if len(a.library.Trays) == 0 {
			trayList.Add(widget.NewLabel("No tray presets defined."))
			return
		}

		header := container.NewGridWithColumns(6,
			widget.NewLabelWithStyle("Name", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			widget.NewLabelWithStyle("W x H (mm)", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			widget.NewLabelWithStyle("Max load", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			widget.NewLabelWithStyle("Max fill", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{}),
			widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{}),
		)
		trayList.Add(header)
		trayList.Add(widget.NewSeparator())

		for i := range a.library.Trays {
			t := a.library.Trays[i]
			id := t.ID
			name := widget.NewLabel(t.Name)
			name.Truncation = fyne.TextTruncateEllipsis
			row := container.NewGridWithColumns(6,
				name,
				widget.NewLabel(fmt.Sprintf("%.0f x %.0f", t.Width, t.Height)),
				widget.NewLabel(fmt.Sprintf("%.1f kg/m", t.MaxLoad)),
				widget.NewLabel(fmt.Sprintf("%.0f %%", t.MaxFillRatio*100)),
				widget.NewButtonWithIcon("", theme.DocumentCreateIcon(), func() {
					a.showTrayPresetDialog(id, model.TrayType{}, refreshList)
				}),
				widget.NewButtonWithIcon("", theme.DeleteIcon(), func() {
					a.library.RemoveTray(id)
					a.saveLibrary()
					a.refreshPresetSelectors()
					refreshList()
				}),
			)
			trayList.Add(row)
		}
	}

	refreshList()

	addBtn := widget.NewButtonWithIcon("Add Tray Preset", theme.ContentAddIcon(), func() {
		a.showTrayPresetDialog("", model.CustomTray(), refreshList)
	})
	saveCurrentBtn := widget.NewButtonWithIcon("Save Current Tray", theme.DocumentSaveIcon(), func() {
		a.showTrayPresetDialog("", a.ws.Tray, refreshList)
	})
	importBtn := widget.NewButtonWithIcon("Import...", theme.FolderOpenIcon(), func() {
		a.importLibrary(refreshList)
	})
	exportBtn := widget.NewButtonWithIcon("Export...", theme.DocumentSaveIcon(), func() {
		a.exportLibrary()
	})

	toolbar := container.NewHBox(addBtn, saveCurrentBtn, layout.NewSpacer(), importBtn, exportBtn)

	content := container.NewBorder(
		toolbar,
		nil, nil, nil,
		container.NewVScroll(trayList),
	)

	d := dialog.NewCustom("Tray Library", "Close", content, a.window)
	d.Resize(fyne.NewSize(760, 500))
	d.Show()
}

// showTrayPresetDialog edits the tray preset with the given ID, or adds a
// new preset starting from seed when id is empty.
func (a *App) showTrayPresetDialog(id string, seed model.TrayType, onDone func()) {
	tray := seed
	title, confirm := "Add Tray Preset", "Add"
	if id != "" {
		p := a.library.FindTrayByID(id)
		if p == nil {
			return
		}
		tray = p.ToTrayType()
		title, confirm = "Edit Tray Preset", "Save"
	}

	nameEntry := widget.NewEntry()
	nameEntry.SetText(tray.Name)
	widthEntry := widget.NewEntry()
	widthEntry.SetText(formatNumber(tray.Width, 1))
	heightEntry := widget.NewEntry()
	heightEntry.SetText(formatNumber(tray.Height, 1))
	loadEntry := widget.NewEntry()
	loadEntry.SetText(formatNumber(tray.MaxLoad, 1))
	selfEntry := widget.NewEntry()
	selfEntry.SetText(formatNumber(tray.SelfWeight, 3))
	fillEntry := widget.NewEntry()
	fillEntry.SetText(formatNumber(tray.MaxFillRatio, 2))

	form := dialog.NewForm(title, confirm, "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem("Name", nameEntry),
			widget.NewFormItem("Width (mm)", widthEntry),
			widget.NewFormItem("Side height (mm)", heightEntry),
			widget.NewFormItem("Max load (kg/m)", loadEntry),
			widget.NewFormItem("Self-weight (kg/m)", selfEntry),
			widget.NewFormItem("Max fill ratio (0-1)", fillEntry),
		},
		func(ok bool) {
			if !ok {
				return
			}
			var values [5]float64
			for i, e := range []*widget.Entry{widthEntry, heightEntry, loadEntry, selfEntry, fillEntry} {
				v, err := parseNumber(e.Text)
				if err != nil {
					dialog.ShowError(fmt.Errorf("invalid number %q", e.Text), a.window)
					return
				}
				values[i] = v
			}
			t := model.TrayType{
				Name:         strings.TrimSpace(nameEntry.Text),
				Width:        values[0],
				Height:       values[1],
				MaxLoad:      values[2],
				SelfWeight:   values[3],
				MaxFillRatio: values[4],
			}
			if t.Name == "" {
				dialog.ShowError(errors.New("name is required"), a.window)
				return
			}
			if problems := t.Validate(); len(problems) > 0 {
				dialog.ShowError(errors.New(strings.Join(problems, "\n")), a.window)
				return
			}

			if id == "" {
				a.library.Trays = append(a.library.Trays, model.TrayPresetFrom(t))
			} else if p := a.library.FindTrayByID(id); p != nil {
				updated := model.TrayPresetFrom(t)
				updated.ID = p.ID
				*p = updated
			}
			a.saveLibrary()
			a.refreshPresetSelectors()
			onDone()
		},
		a.window,
	)
	form.Resize(fyne.NewSize(450, 420))
	form.Show()
}

// ─── Library files ─────────────────────────────────────────

func (a *App) importLibrary(onDone func()) {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		path := reader.URI().Path()

		before := len(a.library.Cables) + len(a.library.Trays)
		lib, err := project.ImportLibrary(path, a.library)
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		a.library = lib
		a.saveLibrary()
		a.refreshPresetSelectors()
		onDone()

		added := len(a.library.Cables) + len(a.library.Trays) - before
		dialog.ShowInformation("Import Complete", fmt.Sprintf("Added %d presets.", added), a.window)
	}, a.window)
	d.Show()
}

func (a *App) exportLibrary() {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		defer writer.Close()
		path := writer.URI().Path()
		if err := project.ExportLibrary(path, a.library); err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		dialog.ShowInformation("Export Complete", fmt.Sprintf("Library exported to:\n%s", path), a.window)
	}, a.window)
	d.SetFileName("traycalc-library.json")
	d.Show()
}

// saveLibrary persists the current library to disk.
func (a *App) saveLibrary() {
	if err := project.SaveLibrary(a.libraryPath, a.library); err != nil {
		a.logger.Error("failed to save library", "path", a.libraryPath, "error", err)
		dialog.ShowError(fmt.Errorf("failed to save library: %w", err), a.window)
	}
}

// refreshPresetSelectors reloads the preset names into the panel selects.
func (a *App) refreshPresetSelectors() {
	if a.cableSelect != nil {
		a.cableSelect.Options = a.cableOptions()
		a.cableSelect.Refresh()
	}
	a.syncTrayFields()
}

// ─── Add from Library ──────────────────────────────────────

// showAddFromLibrary lets the user pick a cable preset and a quantity.
func (a *App) showAddFromLibrary() {
	if len(a.library.Cables) == 0 {
		dialog.ShowInformation("Empty Library", "No cable presets in the library. Add some via Tools > Cable Library.", a.window)
		return
	}

	names := a.library.CableNames()
	presetSelect := widget.NewSelect(names, nil)
	presetSelect.SetSelected(names[0])

	qtyEntry := widget.NewEntry()
	qtyEntry.SetText("1")

	form := dialog.NewForm("Add Cable from Library", "Add", "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem("Cable", presetSelect),
			widget.NewFormItem("Quantity", qtyEntry),
		},
		func(ok bool) {
			if !ok {
				return
			}
			p := a.library.FindCableByName(presetSelect.Selected)
			if p == nil {
				return
			}
			qty, err := strconv.Atoi(strings.TrimSpace(qtyEntry.Text))
			if err != nil || qty <= 0 {
				dialog.ShowError(errors.New("quantity must be a whole number > 0"), a.window)
				return
			}
			cable := p.ToCableType()
			a.mutate("Add cable", func() {
				a.ws.AddCable(cable, qty)
			})
		},
		a.window,
	)
	form.Resize(fyne.NewSize(450, 220))
	form.Show()
}
