// Package dialogs provides the result and error dialogs.
package dialogs

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"integral-calculator/internal/calculator"
	"integral-calculator/internal/typeset"
	"integral-calculator/ui/canvas"
)

// ResultDialog shows a typeset result with TeX and Close buttons.
type ResultDialog struct {
	window  fyne.Window
	title   string
	heading string
	scene   *typeset.Scene
	summary string
	latex   string
}

// NewResultDialog prepares the dialog for an indefinite result.
func NewResultDialog(res *calculator.Result, m typeset.Measurer, window fyne.Window) *ResultDialog {
	return &ResultDialog{
		window:  window,
		title:   "Integral Result",
		heading: "Result",
		scene:   typeset.IndefiniteResult(res.Integrand, res.Antiderivative, res.Variable, m),
		latex:   res.LaTeX(),
	}
}

// NewDefiniteDialog prepares the dialog for a definite result, with the
// one-line summary under the equation.
func NewDefiniteDialog(res *calculator.DefiniteResult, m typeset.Measurer, window fyne.Window) *ResultDialog {
	bounds := typeset.Bounds{Lower: res.LowerText, Upper: res.UpperText}
	return &ResultDialog{
		window:  window,
		title:   "Definite Integral Result",
		heading: "Definite Integral Result",
		scene:   typeset.DefiniteResult(res.Integrand, res.Variable, bounds, res.Formatted(), m),
		summary: res.Summary(),
		latex:   res.LaTeX(),
	}
}

// LaTeX returns the text the TeX button copies.
func (d *ResultDialog) LaTeX() string { return d.latex }

// Scene returns the typeset equation.
func (d *ResultDialog) Scene() *typeset.Scene { return d.scene }

// CopyLaTeX puts the LaTeX form of the result on the clipboard.
func (d *ResultDialog) CopyLaTeX() {
	d.window.Clipboard().SetContent(d.latex)
	log.Printf("Dialogs: copied LaTeX %q", d.latex)
}

// Show displays the dialog.
func (d *ResultDialog) Show() {
	heading := widget.NewLabelWithStyle(d.heading, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	eq := canvas.NewEquationCanvas()
	eq.SetScene(d.scene)

	items := []fyne.CanvasObject{heading, eq.Container()}
	if d.summary != "" {
		items = append(items, widget.NewLabelWithStyle(d.summary, fyne.TextAlignCenter, fyne.TextStyle{}))
	}

	dlg := dialog.NewCustomWithoutButtons(d.title, container.NewVBox(items...), d.window)
	texBtn := widget.NewButton("TeX", d.CopyLaTeX)
	closeBtn := widget.NewButton("Close", dlg.Hide)
	closeBtn.Importance = widget.HighImportance
	dlg.SetButtons([]fyne.CanvasObject{texBtn, closeBtn})
	dlg.Show()
}

// ShowEdgeCase explains how an edge case in the input was handled.
func ShowEdgeCase(res *calculator.Result, window fyne.Window) {
	result, explanation := calculator.EdgeCaseMessage(res)
	content := container.NewVBox(
		widget.NewLabelWithStyle(calculator.EdgeCaseTitle, fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		widget.NewLabel("Function: ∫ "+res.Input+" d"+res.Variable),
		widget.NewLabel(result),
		widget.NewLabel(explanation),
	)
	dialog.ShowCustom("Edge Case Result", "Close", content, window)
}

// ShowError reports a failed calculation.
func ShowError(err error, window fyne.Window) {
	dialog.ShowError(err, window)
}
