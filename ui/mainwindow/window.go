// Package mainwindow provides the main application window.
package mainwindow

import (
	"context"
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"integral-calculator/internal/app"
	"integral-calculator/internal/calculator"
	"integral-calculator/internal/typeset"
	"integral-calculator/internal/version"
	"integral-calculator/ui/canvas"
	"integral-calculator/ui/dialogs"
	"integral-calculator/ui/prefs"
)

const (
	appTitle      = "Calculate the Integral of ..."
	defaultWidth  = 720
	defaultHeight = 600
)

// MainWindow is the primary application window.
type MainWindow struct {
	fyne.Window
	app      fyne.App
	state    *app.State
	prefs    *prefs.Prefs
	measurer typeset.Measurer

	input      *widget.Entry
	kindRadio  *widget.RadioGroup
	lowerEntry *widget.Entry
	upperEntry *widget.Entry
	boundsRow  *fyne.Container
	goButton   *widget.Button
	preview    *canvas.EquationCanvas
	statusBar  *widget.Label

	// Options menu items, one per integration variable
	variableItems map[string]*fyne.MenuItem
}

// New creates the main window and restores the saved session from p.
func New(fyneApp fyne.App, state *app.State, p *prefs.Prefs) *MainWindow {
	win := fyneApp.NewWindow(appTitle)

	mw := &MainWindow{
		Window:   win,
		app:      fyneApp,
		state:    state,
		prefs:    p,
		measurer: canvas.Measurer{},
	}

	mw.setupUI()
	mw.setupMenus()
	mw.setupEventHandlers()

	p.Restore(state)
	mw.syncFromState()

	mw.Resize(fyne.NewSize(
		float32(p.FloatWithFallback(prefs.KeyWindowWidth, defaultWidth)),
		float32(p.FloatWithFallback(prefs.KeyWindowHeight, defaultHeight)),
	))
	mw.SetCloseIntercept(func() {
		mw.SavePreferences()
		mw.Close()
	})
	return mw
}

// setupUI creates the main UI layout.
func (mw *MainWindow) setupUI() {
	title := widget.NewLabelWithStyle(appTitle, fyne.TextAlignCenter, fyne.TextStyle{Bold: true})

	// Operator buttons
	var buttons []fyne.CanvasObject
	for _, op := range app.Operators {
		op := op
		btn := widget.NewButton(op, func() { mw.onOperator(op) })
		if op == app.OperatorClear {
			btn.Importance = widget.DangerImportance
		}
		buttons = append(buttons, btn)
	}
	operatorRow := container.NewCenter(container.NewHBox(buttons...))

	// Integral type
	mw.kindRadio = widget.NewRadioGroup(
		[]string{app.Indefinite.String(), app.Definite.String()},
		func(selected string) {
			if selected != "" {
				mw.state.SetKind(app.ParseKind(selected))
			}
		},
	)
	mw.kindRadio.Horizontal = true
	mw.kindRadio.Required = true
	kindRow := container.NewCenter(container.NewHBox(
		widget.NewLabelWithStyle("Integral Type:", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		mw.kindRadio,
	))

	// Input and Go!
	mw.input = widget.NewEntry()
	mw.input.SetPlaceHolder("e.g. x^2 + 3x")
	mw.input.OnChanged = mw.state.SetInput
	mw.input.OnSubmitted = func(string) { mw.onGo() }
	mw.goButton = widget.NewButton("Go!", mw.onGo)
	mw.goButton.Importance = widget.HighImportance
	inputRow := container.NewBorder(nil, nil, nil, mw.goButton, mw.input)

	// Bounds, shown only for definite integrals
	mw.lowerEntry = widget.NewEntry()
	mw.upperEntry = widget.NewEntry()
	onBounds := func(string) { mw.state.SetBounds(mw.lowerEntry.Text, mw.upperEntry.Text) }
	mw.lowerEntry.OnChanged = onBounds
	mw.upperEntry.OnChanged = onBounds
	mw.boundsRow = container.NewGridWithColumns(4,
		widget.NewLabel("Lower bound (a):"), mw.lowerEntry,
		widget.NewLabel("Upper bound (b):"), mw.upperEntry,
	)
	mw.boundsRow.Hide()

	subtitle := widget.NewLabelWithStyle("This will be calculated:", fyne.TextAlignCenter, fyne.TextStyle{Bold: true})
	mw.preview = canvas.NewEquationCanvas()

	instructions := container.NewVBox(
		widget.NewLabel(`Use parentheses, if necessary. Also see "Examples".`),
		widget.NewLabel(`Change integration variable in "Options".`),
	)

	mw.statusBar = widget.NewLabel("Ready")

	top := container.NewVBox(title, operatorRow, kindRow, inputRow, mw.boundsRow, subtitle)
	bottom := container.NewVBox(instructions, container.NewPadded(mw.statusBar))
	content := container.NewBorder(top, bottom, nil, nil, mw.preview.Container())

	mw.SetContent(container.NewPadded(content))
}

// setupMenus creates the application menus.
func (mw *MainWindow) setupMenus() {
	var examples []*fyne.MenuItem
	for _, ex := range app.Examples {
		ex := ex
		examples = append(examples, fyne.NewMenuItem(ex, func() { mw.onExample(ex) }))
	}
	examplesMenu := fyne.NewMenu("Examples", examples...)

	mw.variableItems = make(map[string]*fyne.MenuItem)
	var variables []*fyne.MenuItem
	for _, v := range app.Variables {
		v := v
		item := fyne.NewMenuItem("Integrate with respect to "+v, func() { mw.state.SetVariable(v) })
		mw.variableItems[v] = item
		variables = append(variables, item)
	}
	optionsMenu := fyne.NewMenu("Options", variables...)

	helpMenu := fyne.NewMenu("Help",
		fyne.NewMenuItem("About", mw.onAbout),
	)

	mw.SetMainMenu(fyne.NewMainMenu(examplesMenu, optionsMenu, helpMenu))
}

// setupEventHandlers registers for application events.
func (mw *MainWindow) setupEventHandlers() {
	mw.state.On(app.EventInputChanged, func(data interface{}) {
		if text, ok := data.(string); ok && mw.input.Text != text {
			mw.input.SetText(text)
		}
		mw.refreshPreview()
	})

	mw.state.On(app.EventKindChanged, func(data interface{}) {
		if kind, ok := data.(app.Kind); ok {
			mw.kindRadio.SetSelected(kind.String())
			mw.showBounds(kind == app.Definite)
		}
		mw.refreshPreview()
	})

	mw.state.On(app.EventBoundsChanged, func(interface{}) {
		mw.refreshPreview()
	})

	mw.state.On(app.EventVariableChanged, func(data interface{}) {
		mw.syncVariableMenu()
		mw.refreshPreview()
		if v, ok := data.(string); ok {
			mw.updateStatus("Integrating with respect to " + v)
		}
	})

	mw.state.On(app.EventResultReady, mw.onResult)

	mw.state.On(app.EventCalculationFailed, func(data interface{}) {
		if err, ok := data.(error); ok {
			mw.updateStatus("Error: " + err.Error())
			dialogs.ShowError(err, mw.Window)
		}
	})
}

// syncFromState copies the restored state into the widgets.
func (mw *MainWindow) syncFromState() {
	mw.input.SetText(mw.state.Input())
	mw.kindRadio.SetSelected(mw.state.Kind().String())
	lower, upper := mw.state.Bounds()
	mw.lowerEntry.SetText(lower)
	mw.upperEntry.SetText(upper)
	mw.showBounds(mw.state.Kind() == app.Definite)
	mw.syncVariableMenu()
	mw.refreshPreview()
}

func (mw *MainWindow) syncVariableMenu() {
	current := mw.state.Variable()
	for v, item := range mw.variableItems {
		item.Checked = v == current
	}
	if menu := mw.MainMenu(); menu != nil {
		menu.Refresh()
	}
}

func (mw *MainWindow) showBounds(show bool) {
	if show {
		mw.boundsRow.Show()
	} else {
		mw.boundsRow.Hide()
	}
}

// refreshPreview redraws the live preview of the integral being entered.
func (mw *MainWindow) refreshPreview() {
	var bounds *typeset.Bounds
	if mw.state.Kind() == app.Definite {
		lower, upper := mw.state.Bounds()
		bounds = &typeset.Bounds{Lower: lower, Upper: upper}
	}
	mw.preview.SetScene(typeset.Preview(mw.state.Input(), bounds, mw.state.Variable(), mw.measurer))
}

// updateStatus updates the status bar text.
func (mw *MainWindow) updateStatus(text string) {
	mw.statusBar.SetText(text)
}

func (mw *MainWindow) onOperator(op string) {
	cursor := mw.state.InsertOperator(op, mw.input.CursorColumn)
	mw.input.CursorColumn = cursor
	mw.input.Refresh()
	mw.Canvas().Focus(mw.input)
}

func (mw *MainWindow) onExample(text string) {
	mw.state.SetInput(text)
	mw.input.CursorColumn = len([]rune(text))
	mw.input.Refresh()
}

// onGo runs the calculation off the UI goroutine; results arrive through
// EventResultReady or EventCalculationFailed.
func (mw *MainWindow) onGo() {
	mw.goButton.Disable()
	mw.updateStatus("Calculating...")
	go func() {
		defer mw.goButton.Enable()
		_ = mw.state.Calculate(context.Background())
	}()
}

func (mw *MainWindow) onResult(data interface{}) {
	switch res := data.(type) {
	case *calculator.DefiniteResult:
		if res.EdgeCase != calculator.NoEdgeCase {
			mw.updateStatus("Edge case: " + res.EdgeCase.String())
			dialogs.ShowEdgeCase(res.Result, mw.Window)
			return
		}
		if !res.HasValue() {
			mw.updateStatus(fmt.Sprintf("No value for %s (%s)", res.Input, res.Method))
		} else {
			mw.updateStatus(res.Summary())
		}
		dialogs.NewDefiniteDialog(res, mw.measurer, mw.Window).Show()
	case *calculator.Result:
		if res.EdgeCase != calculator.NoEdgeCase {
			mw.updateStatus("Edge case: " + res.EdgeCase.String())
			dialogs.ShowEdgeCase(res, mw.Window)
			return
		}
		mw.updateStatus(fmt.Sprintf("%s (%s, %s)", res, res.Method, res.Verification))
		dialogs.NewResultDialog(res, mw.measurer, mw.Window).Show()
	}
}

// SavePreferences writes the session and window size to disk.
func (mw *MainWindow) SavePreferences() {
	mw.prefs.Capture(mw.state)
	size := mw.Canvas().Size()
	if size.Width > 0 && size.Height > 0 {
		mw.prefs.SetFloat(prefs.KeyWindowWidth, float64(size.Width))
		mw.prefs.SetFloat(prefs.KeyWindowHeight, float64(size.Height))
	}
	if err := mw.prefs.Save(); err != nil {
		log.Printf("Prefs: save %s failed: %v", mw.prefs.Path(), err)
	}
}

func (mw *MainWindow) onAbout() {
	dialog.ShowInformation("About Integral Calculator",
		fmt.Sprintf("Integral Calculator v%s\n\n"+
			"Indefinite and definite integrals, checked by\n"+
			"differentiating the result.\n\n"+
			"Built: %s\n"+
			"Commit: %s",
			version.Version, version.BuildTime, version.GitCommit),
		mw.Window)
}
