package prefs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"integral-calculator/internal/app"
	"integral-calculator/internal/calculator"
)

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", prefsFile)
	p := LoadFrom(path)
	assert.Empty(t, p.String(KeyLastInput))
	assert.Equal(t, 800.0, p.FloatWithFallback(KeyWindowWidth, 800))

	p.SetString(KeyLastInput, "x^2")
	p.SetFloat(KeyWindowWidth, 640)
	require.NoError(t, p.Save())

	q := LoadFrom(path)
	assert.Equal(t, "x^2", q.String(KeyLastInput))
	assert.Equal(t, 640.0, q.FloatWithFallback(KeyWindowWidth, 800))
	assert.Equal(t, path, q.Path())
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), prefsFile)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))
	p := LoadFrom(path)
	assert.Empty(t, p.String(KeyLastInput))
	p.SetString(KeyVariable, "t")
	assert.Equal(t, "t", p.String(KeyVariable))
}

func TestCaptureAndRestore(t *testing.T) {
	s := app.NewState(calculator.Options{})
	s.SetInput("sin(t)")
	s.SetKind(app.Definite)
	s.SetBounds("0", "pi")
	s.SetVariable("t")

	p := LoadFrom(filepath.Join(t.TempDir(), prefsFile))
	assert.True(t, p.Capture(s))
	assert.False(t, p.Capture(s), "nothing changed")

	restored := app.NewState(calculator.Options{})
	p.Restore(restored)
	assert.Equal(t, "sin(t)", restored.Input())
	assert.Equal(t, app.Definite, restored.Kind())
	assert.Equal(t, "t", restored.Variable())
	lo, hi := restored.Bounds()
	assert.Equal(t, "0", lo)
	assert.Equal(t, "pi", hi)
}
