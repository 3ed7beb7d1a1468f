package dialogs

import (
	"context"
	"testing"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"integral-calculator/internal/calculator"
	"integral-calculator/internal/typeset"
)

func TestResultDialogCopiesLaTeX(t *testing.T) {
	test.NewApp()
	w := test.NewWindow(nil)
	defer w.Close()

	calc := calculator.New(calculator.Options{})
	res, err := calc.Integrate(context.Background(), "x^2")
	require.NoError(t, err)

	d := NewResultDialog(res, typeset.FixedMeasurer{}, w)
	assert.Equal(t, res.LaTeX(), d.LaTeX())
	assert.Equal(t, typeset.ResultMinWidth, d.Scene().Size.Width)

	d.CopyLaTeX()
	assert.Equal(t, res.LaTeX(), w.Clipboard().Content())
	d.Show()
}

func TestDefiniteDialog(t *testing.T) {
	test.NewApp()
	w := test.NewWindow(nil)
	defer w.Close()

	calc := calculator.New(calculator.Options{})
	res, err := calc.Definite(context.Background(), "x^2", "0", "2")
	require.NoError(t, err)

	d := NewDefiniteDialog(res, typeset.FixedMeasurer{}, w)
	assert.Equal(t, "∫ from 0 to 2 of x^2 dx = 2.6667", d.summary)
	assert.Equal(t, typeset.DefiniteMinWidth, d.Scene().Size.Width)
	d.Show()
}
