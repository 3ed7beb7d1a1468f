package mainwindow

import (
	"path/filepath"
	"testing"
	"time"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"integral-calculator/internal/app"
	"integral-calculator/internal/calculator"
	"integral-calculator/ui/prefs"
)

func newTestWindow(t *testing.T) (*MainWindow, *app.State) {
	t.Helper()
	a := test.NewApp()
	t.Cleanup(a.Quit)
	state := app.NewState(calculator.Options{})
	p := prefs.LoadFrom(filepath.Join(t.TempDir(), "preferences.json"))
	mw := New(a, state, p)
	t.Cleanup(mw.Close)
	return mw, state
}

func TestBoundsFollowKind(t *testing.T) {
	mw, state := newTestWindow(t)
	require.Equal(t, app.Indefinite, state.Kind())
	assert.False(t, mw.boundsRow.Visible())

	mw.kindRadio.SetSelected(app.Definite.String())
	assert.Equal(t, app.Definite, state.Kind())
	assert.True(t, mw.boundsRow.Visible())

	mw.kindRadio.SetSelected(app.Indefinite.String())
	assert.False(t, mw.boundsRow.Visible())
}

func TestGoIndefinite(t *testing.T) {
	mw, state := newTestWindow(t)
	mw.input.SetText("x^2")
	assert.Equal(t, "x^2", state.Input())

	test.Tap(mw.goButton)
	assert.Eventually(t, func() bool { return state.Result() != nil }, 10*time.Second, 10*time.Millisecond)
	assert.Equal(t, "x^3/3 + C", state.Result().String())
	assert.Eventually(t, func() bool { return mw.statusBar.Text != "Calculating..." }, 10*time.Second, 10*time.Millisecond)
	assert.Contains(t, mw.statusBar.Text, "x^3/3")
}

func TestGoDefinite(t *testing.T) {
	mw, state := newTestWindow(t)
	mw.kindRadio.SetSelected(app.Definite.String())
	mw.input.SetText("x^2")
	mw.lowerEntry.SetText("0")
	mw.upperEntry.SetText("2")
	lower, upper := state.Bounds()
	assert.Equal(t, "0", lower)
	assert.Equal(t, "2", upper)

	test.Tap(mw.goButton)
	assert.Eventually(t, func() bool { return state.DefiniteResult() != nil }, 10*time.Second, 10*time.Millisecond)
	res := state.DefiniteResult()
	assert.Equal(t, "2.6667", res.Formatted())
	assert.Eventually(t, func() bool { return mw.statusBar.Text == res.Summary() }, 10*time.Second, 10*time.Millisecond)
}

func TestGoDefiniteEdgeCase(t *testing.T) {
	mw, state := newTestWindow(t)
	mw.kindRadio.SetSelected(app.Definite.String())
	mw.input.SetText("sqrt(-1)")
	mw.lowerEntry.SetText("0")
	mw.upperEntry.SetText("1")

	test.Tap(mw.goButton)
	assert.Eventually(t, func() bool { return state.DefiniteResult() != nil }, 10*time.Second, 10*time.Millisecond)
	assert.Equal(t, calculator.ImaginaryUnit, state.DefiniteResult().EdgeCase)
	assert.Eventually(t, func() bool {
		return mw.statusBar.Text == "Edge case: imaginary unit"
	}, 10*time.Second, 10*time.Millisecond)
}
