package canvas

import (
	"testing"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"integral-calculator/internal/parser"
	"integral-calculator/internal/typeset"
	"integral-calculator/pkg/geometry"
)

func TestObjectsMirrorScene(t *testing.T) {
	s := typeset.Preview("x^2", &typeset.Bounds{Lower: "0", Upper: "1"}, "x", typeset.FixedMeasurer{})
	objs := Objects(s)
	require.Len(t, objs, len(s.Items)+1)
	assert.Equal(t, fyne.NewSize(float32(s.Size.Width), float32(s.Size.Height)), objs[0].Size())

	var texts []string
	for _, o := range objs {
		if txt, ok := o.(*fynecanvas.Text); ok {
			texts = append(texts, txt.Text)
		}
	}
	assert.Equal(t, []string{"∫", "1", "0", "(x²)", "dx"}, texts)
}

func TestTextPlacement(t *testing.T) {
	s := &typeset.Scene{Items: []typeset.Item{typeset.Text{
		Origin:  geometry.NewPoint2D(5, 40),
		Text:    "x",
		Size:    16,
		Bold:    true,
		Metrics: typeset.Metrics{Width: 10, Ascent: 12, Descent: 4},
	}}}
	txt, ok := Objects(s)[1].(*fynecanvas.Text)
	require.True(t, ok)
	assert.Equal(t, float32(16), txt.TextSize)
	assert.True(t, txt.TextStyle.Bold)
	assert.Equal(t, fyne.NewPos(5, 28), txt.Position())
	assert.Equal(t, fyne.NewSize(10, 16), txt.Size())
}

func TestLinePlacement(t *testing.T) {
	s := &typeset.Scene{Items: []typeset.Item{typeset.Line{
		From:  geometry.NewPoint2D(1, 2),
		To:    geometry.NewPoint2D(30, 2),
		Width: 1.5,
	}}}
	l, ok := Objects(s)[1].(*fynecanvas.Line)
	require.True(t, ok)
	assert.Equal(t, fyne.NewPos(1, 2), l.Position1)
	assert.Equal(t, fyne.NewPos(30, 2), l.Position2)
	assert.Equal(t, float32(1.5), l.StrokeWidth)
}

func TestEquationCanvas(t *testing.T) {
	test.NewApp()

	m := Measurer{}.Measure("x", 16, true)
	assert.Greater(t, m.Width, 0.0)
	assert.InDelta(t, m.Height()*ascentRatio, m.Ascent, 1e-9)

	ec := NewEquationCanvas()
	assert.Nil(t, ec.Scene())

	s := typeset.IndefiniteResult(parser.MustParse("x^2"), parser.MustParse("x^3/3"), "x", Measurer{})
	ec.SetScene(s)
	assert.Same(t, s, ec.Scene())
	assert.Equal(t, float32(s.Size.Height), ec.Container().MinSize().Height)
}
