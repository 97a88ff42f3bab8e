// sheathcalc: Sheathing Panel Estimator
//
// A cross-platform desktop application that estimates the wall, gable and
// roof sheathing panels for gable-roofed buildings with an optional shed
// or porch.
//
// Build:
//   go build -o sheathcalc ./cmd/sheathcalc
//
// Cross-compile:
//   GOOS=windows GOARCH=amd64 go build -o sheathcalc.exe ./cmd/sheathcalc
//   GOOS=darwin  GOARCH=amd64 go build -o sheathcalc-darwin ./cmd/sheathcalc
//
// Using fyne-cross (recommended for proper packaging):
//   go install github.com/fyne-io/fyne-cross@latest
//   fyne-cross windows -arch=amd64
//   fyne-cross darwin  -arch=amd64,arm64

package main

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"

	fynetooltip "github.com/dweymouth/fyne-tooltip"

	"github.com/piwi3910/sheathcalc/internal/ui"
)

func main() {
	application := app.NewWithID("com.piwi3910.sheathcalc")
	window := application.NewWindow("sheathcalc - Sheathing Panel Estimator")

	appUI := ui.NewApp(application, window)
	appUI.SetupMenus()
	window.SetContent(fynetooltip.AddWindowToolTipLayer(appUI.Build(), window.Canvas()))
	window.Resize(fyne.NewSize(1200, 760))
	window.CenterOnScreen()
	window.ShowAndRun()
}
