// TrayCalc: Cable Tray Loading & Fill Calculator
//
// A cross-platform desktop application that checks a cable tray against
// its allowable load and recommended area fill, and exports calculation
// reports.
//
// Build:
//   go build -o traycalc ./cmd/traycalc
//
// Cross-compile:
//   GOOS=windows GOARCH=amd64 go build -o traycalc.exe ./cmd/traycalc
//   GOOS=darwin  GOARCH=amd64 go build -o traycalc-darwin ./cmd/traycalc
//
// Using fyne-cross (recommended for proper packaging):
//   go install github.com/fyne-io/fyne-cross@latest
//   fyne-cross windows -arch=amd64
//   fyne-cross darwin  -arch=amd64,arm64
//
// Set TRAYCALC_DEBUG=1 for debug logging on stderr.

package main

import (
	"os"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	fynetooltip "github.com/dweymouth/fyne-tooltip"

	"github.com/piwi3910/TrayCalc/internal/logging"
	"github.com/piwi3910/TrayCalc/internal/ui"
)

func main() {
	logger := logging.New(logging.Options{Verbose: os.Getenv("TRAYCALC_DEBUG") != ""})

	application := app.NewWithID("com.piwi3910.traycalc")
	window := application.NewWindow("TrayCalc: Cable Tray Loading & Fill Calculator")

	th := ui.NewTrayCalcTheme("dark")
	appUI := ui.NewApp(application, window, th, logger)
	application.Settings().SetTheme(th)

	appUI.SetupMenus()
	window.SetContent(fynetooltip.AddWindowToolTipLayer(appUI.Build(), window.Canvas()))
	window.Resize(fyne.NewSize(1300, 780))
	window.CenterOnScreen()

	logger.Info("starting desktop app")
	window.ShowAndRun()
}
