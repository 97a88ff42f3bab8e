// Package ui provides the sheathcalc desktop application.
package ui

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/storage"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"github.com/piwi3910/sheathcalc/internal/engine"
	"github.com/piwi3910/sheathcalc/internal/export"
	paramimporter "github.com/piwi3910/sheathcalc/internal/importer"
	"github.com/piwi3910/sheathcalc/internal/model"
	"github.com/piwi3910/sheathcalc/internal/project"
	"github.com/piwi3910/sheathcalc/internal/ui/widgets"
)

// App holds all application state and UI references.
type App struct {
	app        fyne.App
	window     fyne.Window
	config     model.AppConfig
	configPath string
	history    *History
	tabs       *container.AppTabs

	// Last successful calculation
	inputs model.Inputs
	report *export.Report

	// UI references for dynamic updates
	form             *inputForm
	resultContainer  *fyne.Container
	compareContainer *fyne.Container
	gable            *widgets.GableCanvas
	status           *widget.Label
	backBtn          fyne.Disableable
	forwardBtn       fyne.Disableable
}

// NewApp loads the preferences from the default config path and applies
// the saved theme.
func NewApp(application fyne.App, window fyne.Window) *App {
	a := &App{
		app:        application,
		window:     window,
		configPath: project.DefaultConfigPath(),
		history:    NewHistory(),
	}
	cfg, err := project.LoadAppConfig(a.configPath)
	if err != nil {
		slog.Warn("using default preferences", "path", a.configPath, "error", err)
		cfg = model.DefaultAppConfig()
	}
	a.config = cfg
	application.Settings().SetTheme(themeForPreference(cfg.Theme))
	return a
}

// SetupMenus creates the native menu bar for the application.
func (a *App) SetupMenus() {
	// File Menu
	fileMenu := fyne.NewMenu("File",
		fyne.NewMenuItem("Import Parameters...", func() {
			a.importParameters()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Export PDF...", func() {
			a.exportFile("PDF", ".pdf", export.ExportPDF)
		}),
		fyne.NewMenuItem("Export Excel...", func() {
			a.exportFile("Excel", ".xlsx", export.ExportXLSX)
		}),
		fyne.NewMenuItem("Export DXF...", func() {
			a.exportFile("DXF", ".dxf", export.ExportDXF)
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Quit", func() {
			a.window.Close()
		}),
	)

	// Edit Menu
	editMenu := fyne.NewMenu("Edit",
		fyne.NewMenuItem("Previous Inputs", func() {
			a.stepBack()
		}),
		fyne.NewMenuItem("Next Inputs", func() {
			a.stepForward()
		}),
		fyne.NewMenuItemSeparator(),
		fyne.NewMenuItem("Reset to Defaults", func() {
			a.resetInputs()
		}),
	)

	// View Menu
	themeItem := func(label, pref string) *fyne.MenuItem {
		return fyne.NewMenuItem(label, func() {
			a.setTheme(pref)
		})
	}
	viewMenu := fyne.NewMenu("View",
		themeItem("Light Theme", "light"),
		themeItem("Dark Theme", "dark"),
		themeItem("System Theme", "system"),
	)

	// Help Menu
	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", func() {
			a.showAboutDialog()
		}),
	)

	a.window.SetMainMenu(fyne.NewMainMenu(fileMenu, editMenu, viewMenu, helpMenu))
}

func (a *App) showAboutDialog() {
	dialog.ShowInformation(
		"About sheathcalc",
		"sheathcalc: Sheathing Panel Estimator\n\n"+
			"Estimates wall, gable and roof sheathing panels for\n"+
			"gable-roofed buildings with an optional shed or porch.\n\n"+
			"Version 1.0.0",
		a.window,
	)
}

// Build constructs the full UI and returns the root container.
func (a *App) Build() fyne.CanvasObject {
	a.form = newInputForm()
	initial := model.DefaultInputs()
	a.config.ApplyToInputs(&initial)
	a.form.Set(initial)
	a.form.OnSubmit = a.calculate

	estimateTab := container.NewTabItem("Estimate", a.buildEstimatePanel())
	compareTab := container.NewTabItem("Compare Sheet Widths", a.buildComparePanel())

	a.tabs = container.NewAppTabs(estimateTab, compareTab)
	a.tabs.SetTabLocation(container.TabLocationTop)

	a.status = widget.NewLabel("Enter the building dimensions and press Calculate.")
	return container.NewBorder(nil, a.status, nil, nil, a.tabs)
}

// ─── Estimate Panel ────────────────────────────────────────

func (a *App) buildEstimatePanel() fyne.CanvasObject {
	calcBtn := widget.NewButtonWithIcon("Calculate", theme.ConfirmIcon(), a.calculate)
	calcBtn.Importance = widget.HighImportance

	back := newIconButtonWithTooltip(theme.NavigateBackIcon(), "Previous inputs", a.stepBack)
	forward := newIconButtonWithTooltip(theme.NavigateNextIcon(), "Next inputs", a.stepForward)
	reset := newIconButtonWithTooltip(theme.ViewRefreshIcon(), "Reset to defaults", a.resetInputs)
	a.backBtn, a.forwardBtn = back, forward
	a.updateHistoryButtons()

	left := container.NewBorder(
		nil,
		container.NewHBox(back, forward, reset, layout.NewSpacer(), calcBtn),
		nil, nil,
		container.NewVScroll(a.form.Build()),
	)

	a.resultContainer = container.NewStack(
		widget.NewLabel("No results yet. Enter the building and click Calculate."),
	)
	a.gable = widgets.NewGableCanvas(model.BuildingSpec{}, 420, 220)

	right := container.NewVSplit(
		a.resultContainer,
		container.NewVBox(
			widget.NewLabelWithStyle("Gable End", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
			container.NewCenter(a.gable),
		),
	)
	right.SetOffset(0.6)

	split := container.NewHSplit(left, right)
	split.SetOffset(0.35)
	return split
}

func (a *App) refreshResults() {
	a.resultContainer.RemoveAll()
	if a.report == nil {
		a.resultContainer.Add(widget.NewLabel("No results yet. Enter the building and click Calculate."))
	} else {
		a.resultContainer.Add(buildResultView(a.report.Estimate))
		a.gable.SetBuilding(a.inputs.Building())
		a.status.SetText(fmt.Sprintf("%s | Total: %d sheets, %.1f linear ft",
			export.BuildingLabel(a.inputs), a.report.Estimate.TotalSheets(), a.report.Estimate.TotalLinearFeet()))
	}
	a.resultContainer.Refresh()
}

// ─── Compare Panel ─────────────────────────────────────────

func (a *App) buildComparePanel() fyne.CanvasObject {
	a.compareContainer = container.NewStack(
		widget.NewLabel("Calculate an estimate, then compare it across sheet widths."),
	)
	compareBtn := widget.NewButtonWithIcon("Compare", theme.ViewRestoreIcon(), a.runCompare)
	widths := make([]string, len(a.config.CompareWidths))
	for i, w := range a.config.CompareWidths {
		widths[i] = fmt.Sprintf("%g", w)
	}
	return container.NewBorder(
		container.NewHBox(
			widget.NewLabel("Widths (in): "+strings.Join(widths, ", ")),
			layout.NewSpacer(),
			compareBtn,
		),
		nil, nil, nil,
		a.compareContainer,
	)
}

func (a *App) runCompare() {
	in, err := a.form.Read()
	if err == nil {
		var b model.BuildingSpec
		var att model.Attachment
		if b, att, err = in.Build(); err == nil {
			results := engine.CompareSheetWidths(b, att, a.config.CompareWidths)
			a.compareContainer.RemoveAll()
			a.compareContainer.Add(buildCompareView(results))
			a.compareContainer.Refresh()
			return
		}
	}
	dialog.ShowError(err, a.window)
}

// ─── Actions ───────────────────────────────────────────────

func (a *App) calculate() {
	in, err := a.form.Read()
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	b, att, err := in.Build()
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	est, err := engine.Estimate(b, att)
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}

	if a.report != nil && in != a.inputs {
		a.history.Push(MakeSnapshot(a.inputs, "Calculate"))
	}
	a.show(in, est)
}

// show displays an estimate without touching the history.
func (a *App) show(in model.Inputs, est model.Estimate) {
	report := export.NewReport(in, est)
	a.inputs = in
	a.report = &report
	a.refreshResults()
	a.updateHistoryButtons()
	slog.Debug("estimate", "building", export.BuildingLabel(in), "attachment", in.Attachment, "sheets", est.TotalSheets())
}

// restore puts a snapshot back into the form and recalculates it.
func (a *App) restore(s Snapshot) {
	a.form.Set(s.Inputs)
	b, att, err := s.Inputs.Build()
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	est, err := engine.Estimate(b, att)
	if err != nil {
		dialog.ShowError(err, a.window)
		return
	}
	a.show(s.Inputs, est)
}

func (a *App) stepBack() {
	if s, ok := a.history.Undo(MakeSnapshot(a.inputs, "current")); ok {
		a.restore(s)
	}
}

func (a *App) stepForward() {
	if s, ok := a.history.Redo(MakeSnapshot(a.inputs, "current")); ok {
		a.restore(s)
	}
}

func (a *App) updateHistoryButtons() {
	if a.backBtn == nil {
		return
	}
	toggle := func(d fyne.Disableable, enabled bool) {
		if enabled {
			d.Enable()
		} else {
			d.Disable()
		}
	}
	toggle(a.backBtn, a.history.CanUndo())
	toggle(a.forwardBtn, a.history.CanRedo())
}

func (a *App) resetInputs() {
	in := model.DefaultInputs()
	a.config.ApplyToInputs(&in)
	a.form.Set(in)
}

func (a *App) setTheme(pref string) {
	a.app.Settings().SetTheme(themeForPreference(pref))
	a.config.Theme = pref
	a.saveConfig()
}

func (a *App) saveConfig() {
	if err := project.SaveAppConfig(a.configPath, a.config); err != nil {
		slog.Error("saving preferences", "path", a.configPath, "error", err)
	}
}

// ─── Export ────────────────────────────────────────────────

func (a *App) exportFile(kind, ext string, write func(string, export.Report) error) {
	if a.report == nil {
		dialog.ShowInformation("No results", "Calculate an estimate before exporting.", a.window)
		return
	}
	report := *a.report

	d := dialog.NewFileSave(func(writer fyne.URIWriteCloser, err error) {
		if err != nil || writer == nil {
			return
		}
		path := writer.URI().Path()
		writer.Close()

		if err := write(path, report); err != nil {
			dialog.ShowError(fmt.Errorf("%s export failed: %w", kind, err), a.window)
			return
		}
		slog.Info("exported estimate", "format", kind, "path", path, "report", report.ID)
		a.config.AddRecentExport(path)
		a.config.ExportDir = filepath.Dir(path)
		a.saveConfig()
		dialog.ShowInformation("Export Complete", fmt.Sprintf("%s saved to %s", kind, path), a.window)
	}, a.window)
	d.SetFileName("sheathing-" + report.ID + ext)
	d.SetFilter(storage.NewExtensionFileFilter([]string{ext}))
	if a.config.ExportDir != "" {
		if dir, err := storage.ListerForURI(storage.NewFileURI(a.config.ExportDir)); err == nil {
			d.SetLocation(dir)
		}
	}
	d.Show()
}

// ─── Import ────────────────────────────────────────────────

func (a *App) importParameters() {
	d := dialog.NewFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil || reader == nil {
			return
		}
		path := reader.URI().Path()
		reader.Close()
		a.handleImportResult(paramimporter.ImportInputs(path))
	}, a.window)
	d.SetFilter(storage.NewExtensionFileFilter([]string{".csv", ".txt", ".xlsx"}))
	d.Show()
}

func (a *App) handleImportResult(result paramimporter.ImportResult) {
	if len(result.Warnings) > 0 {
		slog.Warn("import warnings", "warnings", result.Warnings)
	}
	if len(result.Values) == 0 {
		dialog.ShowError(errors.New("No parameters imported:\n\n"+strings.Join(result.Errors, "\n")), a.window)
		return
	}

	in, err := a.form.Read()
	if err != nil {
		in = model.DefaultInputs()
	}
	result.ApplyTo(&in)
	a.form.Set(in)

	msg := fmt.Sprintf("Imported %d parameters.", len(result.Values))
	if len(result.Errors) > 0 {
		msg += "\n\nProblems found:\n" + strings.Join(result.Errors, "\n")
	}
	dialog.ShowInformation("Import Complete", msg, a.window)
}
