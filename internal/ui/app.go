package ui

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	ttwidget "github.com/dweymouth/fyne-tooltip/widget"

	"github.com/piwi3910/TrayCalc/internal/engine"
	"github.com/piwi3910/TrayCalc/internal/export"
	cableimporter "github.com/piwi3910/TrayCalc/internal/importer"
	"github.com/piwi3910/TrayCalc/internal/logging"
	"github.com/piwi3910/TrayCalc/internal/model"
	"github.com/piwi3910/TrayCalc/internal/project"
	"github.com/piwi3910/TrayCalc/internal/ui/widgets"
)

const (
	customCable = "Custom cable..."
	customTray  = "Custom tray..."
)

// App holds all application state and UI references.
type App struct {
	app    fyne.App
	window fyne.Window
	theme  *TrayCalcTheme
	logger *slog.Logger

	ws          model.WorkingSet
	currentPath string
	history     *History
	config      model.AppConfig
	library     model.Library
	libraryPath string

	// Set while entries are filled from code so OnChanged handlers stay quiet.
	syncing bool
	// True while consecutive tray field edits share one undo point.
	trayEditing bool

	// Tray panel
	wsNameEntry         *widget.Entry
	traySelect          *widget.Select
	trayNameEntry       *widget.Entry
	trayWidthEntry      *widget.Entry
	trayHeightEntry     *widget.Entry
	trayLoadEntry       *widget.Entry
	traySelfWeightEntry *widget.Entry
	trayFillEntry       *widget.Entry

	// Cables panel
	cableSelect        *widget.Select
	cableNameEntry     *widget.Entry
	cableDiameterEntry *widget.Entry
	cableWeightEntry   *widget.Entry
	cableQtyEntry      *widget.Entry
	cablesContainer    *fyne.Container

	// Results
	resultValues    []*canvas.Text
	statusText      *canvas.Text
	layoutContainer *fyne.Container
	undoBtn         *ttwidget.Button
	redoBtn         *ttwidget.Button
}

// NewApp loads the saved config and preset library and starts a blank
// working set. A nil logger discards log output.
func NewApp(application fyne.App, window fyne.Window, th *TrayCalcTheme, logger *slog.Logger) *App {
	a := &App{
		app:     application,
		window:  window,
		theme:   th,
		logger:  logging.OrDiscard(logger),
		history: NewHistory(),
	}

	cfg, err := project.LoadAppConfig(project.DefaultConfigPath())
	if err != nil {
		a.logger.Warn("failed to load settings, using defaults", "error", err)
		cfg = model.DefaultAppConfig()
	}
	cfg.Normalize()
	a.config = cfg

	lib, path, err := project.LoadOrCreateLibrary()
	if err != nil {
		a.logger.Warn("failed to load preset library", "path", path, "error", err)
	}
	a.library = lib
	a.libraryPath = path

	a.ws = a.newWorkingSet()
	if a.theme != nil {
		a.theme.SetName(a.config.Theme)
	}
	return a
}

// newWorkingSet returns a blank working set on the configured default tray.
func (a *App) newWorkingSet() model.WorkingSet {
	ws := model.NewWorkingSet()
	if a.config.DefaultTray != "" {
		if p := a.library.FindTrayByName(a.config.DefaultTray); p != nil {
			ws.Tray = p.ToTrayType()
		}
	}
	return ws
}

// SetupMenus creates the native menu bar for the application.
func (a *App) SetupMenus() {
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("New Working Set", func() {
			a.newFile()
		}),
		fyne.NewMenuItem("Open...", func() {
			a.openFile()
		}),
		fyne.NewMenuItem("Save", func() {
			a.save()
		}),
		fyne.NewMenuItem("Save As...", func() {
			a.saveAs()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Import Cables from CSV...", func() {
			a.importCSV()
		}),
		fyne.NewMenuItem("Import Cables from Excel...", func() {
			a.importExcel()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export PDF Report...", func() {
			a.exportReport("pdf", export.ExportPDF)
		}),
		fyne.NewMenuItem("Export CSV Report...", func() {
			a.exportReport("csv", export.ExportCSV)
		}),
		fyne.NewMenuItem("Export Excel Workbook...", func() {
			a.exportReport("xlsx", export.ExportXLSX)
		}),
		fyne.NewMenuItem("Export DXF Cross-Section...", func() {
			a.exportDXF()
		}),
		fyne.NewMenuItem("Export Tray Label...", func() {
			a.exportLabels()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			a.window.Close()
		}),
	)

	editMenu := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Undo", func() {
			a.undo()
		}),
		fyne.NewMenuItem("Redo", func() {
			a.redo()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Clear All Cables", func() {
			a.clearCables()
		}),
	)

	toolsMenu := fyne.NewMenu("Tools",
		fyne.NewMenuItem("Suggest Tray...", func() {
			a.showSuggestDialog()
		}),
		fyne.NewMenuItem("Cable Library...", func() {
			a.showCableLibraryDialog()
		}),
		fyne.NewMenuItem("Tray Library...", func() {
			a.showTrayLibraryDialog()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Settings...", func() {
			a.showSettingsDialog()
		}),
		fyne.NewMenuItem("Backup / Restore...", func() {
			a.showImportExportDialog()
		}),
	)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", func() {
			a.showAboutDialog()
		}),
	)

	a.window.SetMainMenu(fyne.NewMainMenu(fileMenu, editMenu, toolsMenu, helpMenu))
}

func (a *App) showAboutDialog() {
	dialog.ShowInformation(
		"About TrayCalc",
		"TrayCalc: Cable Tray Loading & Fill Calculator\n\n"+
			"Checks a cable tray against its allowable load and\n"+
			"recommended area fill, and exports calculation reports.\n\n"+
			"Values are indicative. Always verify against manufacturer\n"+
			"data and applicable standards.\n\n"+
			"Version 1.0.0",
		a.window,
	)
}

// Build constructs the full UI and returns the root container.
func (a *App) Build() fyne.CanvasObject {
	toolbar := a.buildToolbar()
	left := widget.NewCard("Cables in Tray", "", a.buildCablesPanel())
	trayCard := widget.NewCard("Tray Configuration", "", a.buildTrayPanel())
	resultsCard := widget.NewCard("Results", "", a.buildResultsPanel())
	right := container.NewVScroll(container.NewVBox(trayCard, resultsCard))

	split := container.NewHSplit(left, right)
	split.Offset = 0.55

	a.syncTrayFields()
	a.refresh()

	return container.NewBorder(toolbar, nil, nil, nil, split)
}

func (a *App) buildToolbar() fyne.CanvasObject {
	a.undoBtn = newIconButtonWithTooltip(theme.ContentUndoIcon(), "Undo", a.undo)
	a.redoBtn = newIconButtonWithTooltip(theme.ContentRedoIcon(), "Redo", a.redo)

	return container.NewHBox(
		newIconButtonWithTooltip(theme.DocumentIcon(), "New working set", a.newFile),
		newIconButtonWithTooltip(theme.FolderOpenIcon(), "Open working set", a.openFile),
		newIconButtonWithTooltip(theme.DocumentSaveIcon(), "Save working set", a.save),
		widget.NewSeparator(),
		a.undoBtn,
		a.redoBtn,
		widget.NewSeparator(),
		newIconButtonWithTooltip(theme.SearchIcon(), "Suggest a tray for these cables", a.showSuggestDialog),
		newIconButtonWithTooltip(theme.DocumentPrintIcon(), "Export PDF report", func() {
			a.exportReport("pdf", export.ExportPDF)
		}),
		layout.NewSpacer(),
	)
}

// ─── Tray Panel ────────────────────────────────────────────

func (a *App) buildTrayPanel() fyne.CanvasObject {
	a.wsNameEntry = widget.NewEntry()
	a.wsNameEntry.SetPlaceHolder("Working set name")
	a.wsNameEntry.OnChanged = func(text string) {
		if !a.syncing {
			a.ws.Name = text
		}
	}

	a.traySelect = widget.NewSelect(a.trayOptions(), a.onTraySelected)

	a.trayNameEntry = widget.NewEntry()
	a.trayWidthEntry = widget.NewEntry()
	a.trayHeightEntry = widget.NewEntry()
	a.trayLoadEntry = widget.NewEntry()
	a.traySelfWeightEntry = widget.NewEntry()
	a.trayFillEntry = widget.NewEntry()

	a.trayNameEntry.OnChanged = func(text string) {
		a.editTray(func(t *model.TrayType) { t.Name = strings.TrimSpace(text) })
	}
	floatField := func(e *widget.Entry, set func(t *model.TrayType, v float64)) {
		e.OnChanged = func(text string) {
			v, err := parseNumber(text)
			if err != nil {
				return
			}
			a.editTray(func(t *model.TrayType) { set(t, v) })
		}
	}
	floatField(a.trayWidthEntry, func(t *model.TrayType, v float64) { t.Width = v })
	floatField(a.trayHeightEntry, func(t *model.TrayType, v float64) { t.Height = v })
	floatField(a.trayLoadEntry, func(t *model.TrayType, v float64) { t.MaxLoad = v })
	floatField(a.traySelfWeightEntry, func(t *model.TrayType, v float64) { t.SelfWeight = v })
	floatField(a.trayFillEntry, func(t *model.TrayType, v float64) { t.MaxFillRatio = v })

	form := widget.NewForm(
		widget.NewFormItem("Working set", a.wsNameEntry),
		widget.NewFormItem("Tray type", a.traySelect),
		widget.NewFormItem("Tray name", a.trayNameEntry),
		widget.NewFormItem("Width (mm)", a.trayWidthEntry),
		widget.NewFormItem("Side height (mm)", a.trayHeightEntry),
		widget.NewFormItem("Max load (kg/m)", a.trayLoadEntry),
		widget.NewFormItem("Tray self-weight (kg/m)", a.traySelfWeightEntry),
		widget.NewFormItem("Max fill ratio (0-1)", a.trayFillEntry),
	)
	return form
}

func (a *App) trayOptions() []string {
	return append([]string{customTray}, a.library.TrayNames()...)
}

func (a *App) cableOptions() []string {
	return append([]string{customCable}, a.library.CableNames()...)
}

func (a *App) onTraySelected(name string) {
	if a.syncing {
		return
	}
	if name == customTray {
		a.mutate("Custom tray", func() {
			a.ws.Tray.Name = model.CustomTray().Name
		})
		a.syncTrayFields()
		return
	}
	p := a.library.FindTrayByName(name)
	if p == nil {
		return
	}
	a.mutate("Select tray", func() {
		a.ws.Tray = p.ToTrayType()
	})
	a.syncTrayFields()
}

// editTray applies a field edit to the tray. Consecutive field edits share
// one undo point.
func (a *App) editTray(fn func(t *model.TrayType)) {
	if a.syncing {
		return
	}
	if !a.trayEditing {
		a.history.Push(MakeSnapshot(a.ws, "Edit tray"))
		a.trayEditing = true
	}
	fn(&a.ws.Tray)
	a.recalculate()
	a.updateUndoButtons()
}

// syncTrayFields copies the working set into the tray panel. Fields are
// locked while a library tray is selected.
func (a *App) syncTrayFields() {
	if a.traySelect == nil {
		return
	}
	a.syncing = true
	defer func() { a.syncing = false }()

	t := a.ws.Tray
	a.wsNameEntry.SetText(a.ws.Name)
	a.traySelect.Options = a.trayOptions()

	p := a.library.FindTrayByName(t.Name)
	preset := p != nil && p.ToTrayType() == t
	if preset {
		a.traySelect.SetSelected(t.Name)
	} else {
		a.traySelect.SetSelected(customTray)
	}

	a.trayNameEntry.SetText(t.Name)
	a.trayWidthEntry.SetText(formatNumber(t.Width, 1))
	a.trayHeightEntry.SetText(formatNumber(t.Height, 1))
	a.trayLoadEntry.SetText(formatNumber(t.MaxLoad, 1))
	a.traySelfWeightEntry.SetText(formatNumber(t.SelfWeight, 3))
	a.trayFillEntry.SetText(formatNumber(t.MaxFillRatio, 2))

	for _, e := range []*widget.Entry{
		a.trayNameEntry, a.trayWidthEntry, a.trayHeightEntry,
		a.trayLoadEntry, a.traySelfWeightEntry, a.trayFillEntry,
	} {
		if preset {
			e.Disable()
		} else {
			e.Enable()
		}
	}
}

// ─── Cables Panel ──────────────────────────────────────────

func (a *App) buildCablesPanel() fyne.CanvasObject {
	a.cableSelect = widget.NewSelect(a.cableOptions(), a.onCableSelected)

	a.cableNameEntry = widget.NewEntry()
	a.cableNameEntry.SetPlaceHolder("Cable name")
	a.cableDiameterEntry = widget.NewEntry()
	a.cableDiameterEntry.SetPlaceHolder("mm")
	a.cableWeightEntry = widget.NewEntry()
	a.cableWeightEntry.SetPlaceHolder("kg/m")
	a.cableQtyEntry = widget.NewEntry()
	a.cableQtyEntry.SetText("1")
	a.cableSelect.SetSelected(customCable)

	form := widget.NewForm(
		widget.NewFormItem("Cable type", a.cableSelect),
		widget.NewFormItem("Name", a.cableNameEntry),
		widget.NewFormItem("Diameter (mm)", a.cableDiameterEntry),
		widget.NewFormItem("Weight (kg/m)", a.cableWeightEntry),
		widget.NewFormItem("Quantity", a.cableQtyEntry),
	)

	addBtn := widget.NewButtonWithIcon("Add cable to tray", theme.ContentAddIcon(), a.addCableFromForm)
	libraryBtn := widget.NewButtonWithIcon("Add from Library", theme.ListIcon(), a.showAddFromLibrary)
	clearBtn := widget.NewButtonWithIcon("Clear all", theme.ContentClearIcon(), a.clearCables)

	a.cablesContainer = container.NewVBox()

	top := container.NewVBox(
		form,
		container.NewHBox(addBtn, libraryBtn, layout.NewSpacer(), clearBtn),
		widget.NewSeparator(),
	)
	return container.NewBorder(top, nil, nil, nil, container.NewVScroll(a.cablesContainer))
}

func (a *App) onCableSelected(name string) {
	if a.cableNameEntry == nil {
		return
	}
	if name == customCable {
		a.cableNameEntry.SetText("Custom cable")
		a.cableDiameterEntry.Enable()
		a.cableWeightEntry.Enable()
		return
	}
	p := a.library.FindCableByName(name)
	if p == nil {
		return
	}
	a.cableNameEntry.SetText(p.Name)
	a.cableDiameterEntry.SetText(formatNumber(p.Diameter, 1))
	a.cableWeightEntry.SetText(formatNumber(p.Weight, 3))
	a.cableDiameterEntry.Disable()
	a.cableWeightEntry.Disable()
}

func (a *App) addCableFromForm() {
	diameter, errD := parseNumber(a.cableDiameterEntry.Text)
	weight, errW := parseNumber(a.cableWeightEntry.Text)
	qty, errQ := strconv.Atoi(strings.TrimSpace(a.cableQtyEntry.Text))
	if errD != nil || errW != nil || errQ != nil || diameter <= 0 || weight <= 0 || qty <= 0 {
		dialog.ShowError(errors.New("please ensure diameter, weight, and quantity are all > 0"), a.window)
		return
	}

	name := strings.TrimSpace(a.cableNameEntry.Text)
	if name == "" {
		name = a.cableSelect.Selected
	}
	if name == "" || name == customCable {
		name = "Cable"
	}

	a.mutate("Add cable", func() {
		a.ws.AddCable(model.NewCableType(name, diameter, weight), qty)
	})
}

func (a *App) refreshCableList() {
	a.cablesContainer.RemoveAll()

	if len(a.ws.Cables) == 0 {
		a.cablesContainer.Add(widget.NewLabel("No cables added yet. Pick a cable type and click 'Add cable to tray'."))
		a.cablesContainer.Refresh()
		return
	}

	header := container.NewGridWithColumns(6,
		widget.NewLabelWithStyle("Cable", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Diameter (mm)", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Weight (kg/m)", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Qty", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{}),
		widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{}),
	)
	a.cablesContainer.Add(header)
	a.cablesContainer.Add(widget.NewSeparator())

	for i := range a.ws.Cables {
		idx := i
		e := a.ws.Cables[idx]
		name := widget.NewLabel(e.Cable.Name)
		name.Truncation = fyne.TextTruncateEllipsis
		if !e.Valid() {
			name.Importance = widget.LowImportance
		}
		row := container.NewGridWithColumns(6,
			name,
			widget.NewLabel(fmt.Sprintf("%.1f", e.Cable.Diameter)),
			widget.NewLabel(fmt.Sprintf("%.3f", e.Cable.Weight)),
			widget.NewLabel(fmt.Sprintf("%d", e.Quantity)),
			widget.NewButtonWithIcon("", theme.DocumentCreateIcon(), func() {
				a.showEditCableDialog(idx)
			}),
			widget.NewButtonWithIcon("", theme.DeleteIcon(), func() {
				a.mutate("Remove cable", func() {
					a.ws.RemoveCable(idx)
				})
			}),
		)
		a.cablesContainer.Add(row)
	}
	a.cablesContainer.Refresh()
}

func (a *App) showEditCableDialog(idx int) {
	if idx < 0 || idx >= len(a.ws.Cables) {
		return
	}
	e := a.ws.Cables[idx]

	nameEntry := widget.NewEntry()
	nameEntry.SetText(e.Cable.Name)
	diameterEntry := widget.NewEntry()
	diameterEntry.SetText(formatNumber(e.Cable.Diameter, 1))
	weightEntry := widget.NewEntry()
	weightEntry.SetText(formatNumber(e.Cable.Weight, 3))
	qtyEntry := widget.NewEntry()
	qtyEntry.SetText(strconv.Itoa(e.Quantity))

	form := dialog.NewForm("Edit Cable", "Save", "Cancel",
		[]*widget.FormItem{
			widget.NewFormItem("Name", nameEntry),
			widget.NewFormItem("Diameter (mm)", diameterEntry),
			widget.NewFormItem("Weight (kg/m)", weightEntry),
			widget.NewFormItem("Quantity", qtyEntry),
		},
		func(ok bool) {
			if !ok {
				return
			}
			diameter, errD := parseNumber(diameterEntry.Text)
			weight, errW := parseNumber(weightEntry.Text)
			qty, errQ := strconv.Atoi(strings.TrimSpace(qtyEntry.Text))
			if errD != nil || errW != nil || errQ != nil || diameter <= 0 || weight <= 0 || qty <= 0 {
				dialog.ShowError(errors.New("diameter, weight, and quantity must all be > 0"), a.window)
				return
			}
			name := strings.TrimSpace(nameEntry.Text)
			if name == "" {
				name = "Cable"
			}
			a.mutate("Edit cable", func() {
				a.ws.UpdateCable(idx, model.NewCableEntry(model.NewCableType(name, diameter, weight), qty))
			})
		},
		a.window,
	)
	form.Resize(fyne.NewSize(420, 320))
	form.Show()
}

func (a *App) clearCables() {
	if len(a.ws.Cables) == 0 {
		return
	}
	a.mutate("Clear cables", func() {
		a.ws.Clear()
	})
}

// ─── Results Panel ─────────────────────────────────────────

func (a *App) buildResultsPanel() fyne.CanvasObject {
	labels := []string{
		"Cable weight", "Tray self-weight", "Total weight", "Tray allowable load",
		"Structural utilisation", "Total cable area", "Tray usable area",
		"Area fill", "Recommended max fill",
	}

	grid := container.NewGridWithColumns(2)
	a.resultValues = make([]*canvas.Text, len(labels))
	for i, l := range labels {
		value := canvas.NewText("-", colorText)
		value.TextStyle = fyne.TextStyle{Monospace: true}
		a.resultValues[i] = value
		grid.Add(widget.NewLabel(l + ":"))
		grid.Add(value)
	}

	a.statusText = canvas.NewText("", colorIdle)
	a.statusText.TextStyle = fyne.TextStyle{Bold: true}
	a.statusText.TextSize = 16

	a.layoutContainer = container.NewStack()

	return container.NewVBox(
		grid,
		widget.NewSeparator(),
		container.NewHBox(widget.NewLabelWithStyle("Status:", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}), a.statusText),
		widget.NewSeparator(),
		a.layoutContainer,
	)
}

// recalculate runs the engine on the current working set and repaints the
// results and the cross-section.
func (a *App) recalculate() {
	if a.resultValues == nil {
		return
	}
	ratio := a.config.EffectiveFillRatioForHeight
	stats, assessment := a.ws.Evaluate(ratio)

	for i, row := range buildResultRows(stats, assessment, a.config.NearLimitPercent) {
		a.resultValues[i].Text = row.value
		a.resultValues[i].Color = row.color
		a.resultValues[i].Refresh()
	}

	a.statusText.Text = assessment.Status.Description()
	a.statusText.Color = statusColor(assessment.Status)
	a.statusText.Refresh()

	a.layoutContainer.RemoveAll()
	a.layoutContainer.Add(widgets.RenderTrayLayout(engine.LayoutCrossSection(a.ws.Cables, a.ws.Tray, ratio)))
	a.layoutContainer.Refresh()

	a.logger.Debug("recalculated",
		"tray", a.ws.Tray.Name,
		"entries", len(a.ws.Cables),
		"status", assessment.Status.String(),
	)
}

// ─── State changes ─────────────────────────────────────────

// mutate records an undo point, applies fn and refreshes the view.
func (a *App) mutate(label string, fn func()) {
	a.history.Push(MakeSnapshot(a.ws, label))
	a.trayEditing = false
	fn()
	a.refresh()
}

func (a *App) refresh() {
	if a.cablesContainer != nil {
		a.refreshCableList()
	}
	a.recalculate()
	a.updateUndoButtons()
	a.updateTitle()
}

func (a *App) updateUndoButtons() {
	if a.undoBtn == nil {
		return
	}
	if a.history.CanUndo() {
		a.undoBtn.Enable()
		a.undoBtn.SetToolTip("Undo " + a.history.UndoLabel())
	} else {
		a.undoBtn.Disable()
		a.undoBtn.SetToolTip("Undo")
	}
	if a.history.CanRedo() {
		a.redoBtn.Enable()
	} else {
		a.redoBtn.Disable()
	}
}

func (a *App) updateTitle() {
	title := "TrayCalc: Cable Tray Loading & Fill Calculator"
	if a.currentPath != "" {
		title = filepath.Base(a.currentPath) + " - " + title
	}
	a.window.SetTitle(title)
}

func (a *App) undo() {
	s, ok := a.history.Undo(MakeSnapshot(a.ws, ""))
	if !ok {
		return
	}
	a.restore(s)
}

func (a *App) redo() {
	s, ok := a.history.Redo(MakeSnapshot(a.ws, ""))
	if !ok {
		return
	}
	a.restore(s)
}

func (a *App) restore(s Snapshot) {
	a.ws = s.WorkingSet
	a.trayEditing = false
	a.syncTrayFields()
	a.refresh()
}

// setWorkingSet replaces the working set and drops the undo history.
func (a *App) setWorkingSet(ws model.WorkingSet, path string) {
	a.ws = ws
	a.currentPath = path
	a.history.Clear()
	a.trayEditing = false
	a.syncTrayFields()
	a.refresh()
}

// ─── Files ─────────────────────────────────────────────────

func (a *App) newFile() {
	a.setWorkingSet(a.newWorkingSet(), "")
}

func (a *App) openFile() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		path := reader.URI().Path()

		ws, err := project.LoadWorkingSet(path)
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		a.logger.Info("opened working set", "path", path, "entries", len(ws.Cables))
		a.setWorkingSet(ws, path)
		a.rememberRecent(path)
	}, a.window)
	d.Show()
}

func (a *App) save() {
	if a.currentPath == "" {
		a.saveAs()
		return
	}
	a.writeWorkingSet(a.currentPath)
}

func (a *App) saveAs() {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()
		if a.writeWorkingSet(path) {
			a.currentPath = path
			a.updateTitle()
			a.rememberRecent(path)
		}
	}, a.window)
	d.SetFileName(defaultFileName(a.ws.Name, "json"))
	d.Show()
}

func (a *App) writeWorkingSet(path string) bool {
	if err := project.SaveWorkingSet(path, a.ws); err != nil {
		dialog.ShowError(err, a.window)
		return false
	}
	a.logger.Info("saved working set", "path", path)
	return true
}

func (a *App) rememberRecent(path string) {
	a.config.AddRecentProject(path)
	if err := a.saveConfig(); err != nil {
		a.logger.Warn("failed to save recent files", "error", err)
	}
}

// ─── Import / Export ───────────────────────────────────────

func (a *App) importCSV() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		a.handleImportResult(cableimporter.ImportCSV(reader.URI().Path()))
	}, a.window)
}

func (a *App) importExcel() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		defer reader.Close()
		a.handleImportResult(cableimporter.ImportExcel(reader.URI().Path()))
	}, a.window)
}

func (a *App) handleImportResult(result cableimporter.ImportResult) {
	if len(result.Errors) > 0 {
		errorMsg := "Errors encountered during import:\n\n" + strings.Join(result.Errors, "\n")
		dialog.ShowError(errors.New(errorMsg), a.window)
	}
	for _, w := range result.Warnings {
		a.logger.Warn("import warning", "detail", w)
	}

	if len(result.Entries) == 0 {
		return
	}
	a.mutate("Import cables", func() {
		a.ws.Cables = append(a.ws.Cables, result.Entries...)
	})

	msg := fmt.Sprintf("Successfully imported %d cable rows.", len(result.Entries))
	if len(result.Errors) > 0 {
		msg += fmt.Sprintf("\n\nHowever, %d rows had errors and were skipped.", len(result.Errors))
	}
	dialog.ShowInformation("Import Complete", msg, a.window)
}

func (a *App) report() export.Report {
	return export.NewReport(a.ws, a.config, time.Now())
}

// exportReport asks for a destination and writes the current report with fn.
func (a *App) exportReport(ext string, fn func(string, export.Report) error) {
	r := a.report()
	if len(r.Rows) == 0 {
		dialog.ShowInformation("No cables", "There are no cables in the tray to export.", a.window)
		return
	}
	a.saveFile(defaultFileName(a.ws.Name, ext), func(path string) error {
		return fn(path, r)
	})
}

func (a *App) exportDXF() {
	layout := engine.LayoutCrossSection(a.ws.Cables, a.ws.Tray, a.config.EffectiveFillRatioForHeight)
	a.saveFile(defaultFileName(a.ws.Name, "dxf"), func(path string) error {
		return export.ExportDXF(path, layout)
	})
}

func (a *App) exportLabels() {
	reports := []export.Report{a.report()}
	a.saveFile(defaultFileName(a.ws.Name+" label", "pdf"), func(path string) error {
		return export.ExportLabels(path, reports)
	})
}

// saveFile shows a save dialog and runs write on the chosen path.
func (a *App) saveFile(name string, write func(path string) error) {
	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()

		if err := write(path); err != nil {
			a.logger.Error("export failed", "path", path, "error", err)
			dialog.ShowError(err, a.window)
			return
		}
		a.logger.Info("exported", "path", path)
		dialog.ShowInformation("Export Complete", fmt.Sprintf("Saved to:\n%s", path), a.window)
	}, a.window)
	d.SetFileName(name)
	d.Show()
}

// ─── Suggest ───────────────────────────────────────────────

func (a *App) showSuggestDialog() {
	entries := model.ValidEntries(a.ws.Cables)
	if len(entries) == 0 {
		dialog.ShowInformation("Nothing to size", "Add at least one cable first.", a.window)
		return
	}

	trays := make([]model.TrayType, 0, len(a.library.Trays))
	for _, p := range a.library.Trays {
		trays = append(trays, p.ToTrayType())
	}
	suggestions := engine.SuggestTrays(entries, trays, a.config.EffectiveFillRatioForHeight)

	list := container.NewVBox(container.NewGridWithColumns(5,
		widget.NewLabelWithStyle("Tray", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Structural", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Fill", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("Status", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{}),
	), widget.NewSeparator())

	var d dialog.Dialog
	for _, s := range suggestions {
		s := s
		status := canvas.NewText(s.Assessment.Status.String(), statusColor(s.Assessment.Status))
		name := widget.NewLabel(s.Tray.Name)
		name.Truncation = fyne.TextTruncateEllipsis
		list.Add(container.NewGridWithColumns(5,
			name,
			widget.NewLabel(fmt.Sprintf("%.1f %%", s.Stats.StructuralUtilisationPercent)),
			widget.NewLabel(fmt.Sprintf("%.1f %%", s.Stats.AreaFillPercent)),
			status,
			widget.NewButton("Use", func() {
				a.mutate("Select tray", func() {
					a.ws.Tray = s.Tray
				})
				a.syncTrayFields()
				if d != nil {
					d.Hide()
				}
			}),
		))
	}

	d = dialog.NewCustom("Suggested Trays", "Close", container.NewVScroll(list), a.window)
	d.Resize(fyne.NewSize(760, 480))
	d.Show()
}

// ─── Helpers ───────────────────────────────────────────────

// parseNumber accepts a decimal point or a decimal comma.
func parseNumber(s string) (float64, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	return strconv.ParseFloat(s, 64)
}

// formatNumber prints v with at most prec decimals and no trailing zeros.
func formatNumber(v float64, prec int) string {
	s := strconv.FormatFloat(v, 'f', prec, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(strings.TrimRight(s, "0"), ".")
	}
	return s
}

func defaultFileName(name, ext string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		name = "traycalc"
	}
	name = strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, name)
	return name + "." + ext
}
