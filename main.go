// Package main provides the entry point for the Integral Calculator.
package main

import (
	"log"
	"os"

	fyneapp "fyne.io/fyne/v2/app"

	"integral-calculator/internal/app"
	"integral-calculator/internal/calculator"
	"integral-calculator/internal/version"
	"integral-calculator/ui/mainwindow"
	"integral-calculator/ui/prefs"
)

const appID = "io.github.integralcalculator"

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Printf("Starting Integral Calculator v%s (%s)", version.Version, version.GitCommit)

	fyneApp := fyneapp.NewWithID(appID)
	fyneApp.Settings().SetTheme(&app.CalculatorTheme{})

	state := app.NewState(calculator.DefaultOptions())
	appPrefs := prefs.Load()

	win := mainwindow.New(fyneApp, state, appPrefs)

	// An argument pre-fills the input, replacing the saved one.
	if len(os.Args) > 1 {
		state.SetInput(os.Args[1])
	}

	win.ShowAndRun()
}
