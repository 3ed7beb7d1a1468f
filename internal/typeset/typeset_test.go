package typeset

import (
	"bytes"
	"image/png"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"integral-calculator/internal/parser"
	"integral-calculator/internal/symbolic"
	"integral-calculator/pkg/colorutil"
	"integral-calculator/pkg/geometry"
)

var fixed16 = FixedMeasurer{}

func TestMathNotation(t *testing.T) {
	tests := []struct{ in, want string }{
		{"x^2 + 3*x", "x² + 3·x"},
		{"x**10", "x¹⁰"},
		{"2^x", "2^x"},
		{"sin(x)^3*cos(x)", "sin(x)³·cos(x)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MathNotation(tt.in), tt.in)
	}
}

func texts(s *Scene) []string {
	var out []string
	for _, t := range s.Texts() {
		out = append(out, t.Text)
	}
	return out
}

func assertInside(t *testing.T, s *Scene) {
	t.Helper()
	for _, it := range s.Overflow() {
		t.Errorf("%T %+v outside %vx%v", it, it.Bounds(), s.Size.Width, s.Size.Height)
	}
}

func countRects(s *Scene, fill [4]uint8) int {
	n := 0
	for _, it := range s.Items {
		if r, ok := it.(Rect); ok && r.Fill.R == fill[0] && r.Fill.G == fill[1] && r.Fill.B == fill[2] && r.Fill.A == fill[3] {
			n++
		}
	}
	return n
}

func TestPreviewIndefinite(t *testing.T) {
	s := Preview("x^2", nil, "x", fixed16)
	assert.Equal(t, PreviewMinWidth, s.Size.Width)
	assert.Equal(t, PreviewHeight, s.Size.Height)
	assert.Equal(t, []string{"∫", "(x²)", "dx"}, texts(s))
	f := colorutil.BoxFill
	assert.Equal(t, 2, countRects(s, [4]uint8{f.R, f.G, f.B, f.A}))
	assertInside(t, s)

	grid := 0
	for _, it := range s.Items {
		if l, ok := it.(Line); ok && l.Color == colorutil.Grid {
			grid++
		}
	}
	assert.Equal(t, 15+10, grid)
}

func TestPreviewDefinite(t *testing.T) {
	s := Preview("x", &Bounds{Lower: "0", Upper: ""}, "x", fixed16)
	assert.Equal(t, []string{"∫", "b", "0", "(x)", "dx"}, texts(s))
	f := colorutil.BoxFill
	assert.Equal(t, 0, countRects(s, [4]uint8{f.R, f.G, f.B, f.A}))
	assertInside(t, s)
}

func TestOverflow(t *testing.T) {
	s := newScene(100, 50)
	assert.Empty(t, s.Overflow())
	s.rect(geometry.NewRect(90, 10, 20, 20), colorutil.BoxFill, colorutil.BoxStroke)
	assert.Len(t, s.Overflow(), 1)
}

func TestPreviewGrowsWithInput(t *testing.T) {
	short := Preview("x", nil, "x", fixed16)
	long := Preview(strings.Repeat("x+", 60)+"x", nil, "x", fixed16)
	assert.Greater(t, long.Size.Width, short.Size.Width)
	assertInside(t, long)
}

func TestIndefiniteResult(t *testing.T) {
	f := parser.MustParse("x^2")
	F := parser.MustParse("x^3/3")
	s := IndefiniteResult(f, F, "x", fixed16)
	assert.Equal(t, ResultMinWidth, s.Size.Width)
	assert.Equal(t, ResultHeight, s.Size.Height)

	got := texts(s)
	for _, want := range []string{"∫", "dx", "=", "3", " + C"} {
		assert.Contains(t, got, want)
	}
	bars := 0
	for _, it := range s.Items {
		if l, ok := it.(Line); ok && l.Color == colorutil.Ink {
			bars++
		}
	}
	assert.Equal(t, 1, bars, "one fraction bar")
	assertInside(t, s)
}

func TestIndefiniteResultWraps(t *testing.T) {
	var terms []symbolic.Expr
	for k := int64(1); k <= 120; k++ {
		terms = append(terms, symbolic.MulOf(symbolic.Q(1, k), symbolic.PowOf(symbolic.S("x"), symbolic.N(k))))
	}
	F := symbolic.AddOf(terms...)
	s := IndefiniteResult(parser.MustParse("x"), F, "x", fixed16)
	assert.LessOrEqual(t, s.Size.Width, MaxWidth)
	assert.Greater(t, s.Size.Height, ResultHeight)

	plusC := 0
	for _, txt := range texts(s) {
		if txt == " + C" {
			plusC++
		}
	}
	assert.Equal(t, 1, plusC)
	assertInside(t, s)
}

func TestUnevaluatedResult(t *testing.T) {
	f := parser.MustParse("exp(x^2)")
	s := IndefiniteResult(f, symbolic.IntegralOf(f, "x"), "x", fixed16)
	assert.NotContains(t, texts(s), " + C")
	assertInside(t, s)
}

func TestDefiniteResult(t *testing.T) {
	s := DefiniteResult(parser.MustParse("x^2"), "x", Bounds{Lower: "0", Upper: "2"}, "2.6667", fixed16)
	assert.Equal(t, DefiniteMinWidth, s.Size.Width)
	assert.Equal(t, DefiniteHeight, s.Size.Height)
	got := texts(s)
	for _, want := range []string{"2", "0", "2.6667"} {
		assert.Contains(t, got, want)
	}
	assertInside(t, s)
}

func TestLayoutShapes(t *testing.T) {
	frac := Layout(parser.MustParse("x^3/3"), fixed16, 16).Metrics()
	plain := Layout(parser.MustParse("x"), fixed16, 16).Metrics()
	assert.Greater(t, frac.Height(), plain.Height())
	assert.Greater(t, frac.Descent, plain.Descent)

	s := &Scene{}
	Layout(parser.MustParse("-cos(x)"), fixed16, 16).Draw(s, 0, 50)
	want := []string{"−", "cos", "(", "x", ")"}
	if diff := cmp.Diff(want, texts(s)); diff != "" {
		t.Errorf("texts mismatch (-want +got):\n%s", diff)
	}

	s = &Scene{}
	Layout(parser.MustParse("exp(2x)"), fixed16, 16).Draw(s, 0, 50)
	got := s.Texts()
	require.Len(t, got, 3)
	assert.Equal(t, "e", got[0].Text)
	assert.Less(t, got[1].Origin.Y, got[0].Origin.Y, "exponent is raised")
	assert.Less(t, got[1].Size, got[0].Size)
}

func TestFixedMeasurer(t *testing.T) {
	m := FixedMeasurer{}.Measure("abc", 10, false)
	assert.InDelta(t, 18.0, m.Width, 1e-9)
	assert.InDelta(t, 10.0, m.Height(), 1e-9)
}

func TestRasterize(t *testing.T) {
	fm, err := NewFontMeasurer()
	require.NoError(t, err)
	defer fm.Close()

	m := fm.Measure("x", 16, true)
	assert.Greater(t, m.Width, 0.0)
	assert.Greater(t, m.Ascent, 0.0)

	s := IndefiniteResult(parser.MustParse("x^2"), parser.MustParse("x^3/3"), "x", fm)
	img, err := Rasterize(s, fm)
	require.NoError(t, err)
	assert.Equal(t, int(s.Size.Width+0.999), img.Bounds().Dx())
	assert.Equal(t, colorutil.SkyBlue, img.RGBAAt(1, 1))

	dark := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y).R < 100 {
				dark++
			}
		}
	}
	assert.Greater(t, dark, 50)

	var buf bytes.Buffer
	require.NoError(t, WritePNG(&buf, s, fm))
	_, err = png.Decode(&buf)
	assert.NoError(t, err)
}
