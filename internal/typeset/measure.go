package typeset

import (
	"fmt"
	"sync"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Metrics are the extents of a run of text or a box, in pixels. Ascent is
// measured up from the baseline, Descent down from it.
type Metrics struct {
	Width   float64
	Ascent  float64
	Descent float64
}

// Height returns Ascent + Descent.
func (m Metrics) Height() float64 { return m.Ascent + m.Descent }

// Measurer reports the extents of text at a point size.
type Measurer interface {
	Measure(text string, size float64, bold bool) Metrics
}

// FixedMeasurer gives every rune the same advance, Advance times the size
// (0.6 when zero). Layouts measured with it are deterministic.
type FixedMeasurer struct {
	Advance float64
}

func (f FixedMeasurer) Measure(text string, size float64, bold bool) Metrics {
	adv := f.Advance
	if adv == 0 {
		adv = 0.6
	}
	return Metrics{
		Width:   float64(utf8.RuneCountInString(text)) * size * adv,
		Ascent:  0.8 * size,
		Descent: 0.2 * size,
	}
}

type faceKey struct {
	size float64
	bold bool
}

// FontMeasurer measures with the Go fonts and caches one face per size and
// weight. It also supplies the faces Rasterize draws with.
type FontMeasurer struct {
	regular *opentype.Font
	bold    *opentype.Font

	mu    sync.Mutex
	faces map[faceKey]font.Face
}

// NewFontMeasurer parses the embedded Go regular and bold fonts.
func NewFontMeasurer() (*FontMeasurer, error) {
	regular, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse regular font: %w", err)
	}
	bold, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return nil, fmt.Errorf("parse bold font: %w", err)
	}
	return &FontMeasurer{regular: regular, bold: bold, faces: make(map[faceKey]font.Face)}, nil
}

// Face returns the cached face for size and weight.
func (f *FontMeasurer) Face(size float64, bold bool) (font.Face, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	key := faceKey{size, bold}
	if face, ok := f.faces[key]; ok {
		return face, nil
	}
	src := f.regular
	if bold {
		src = f.bold
	}
	face, err := opentype.NewFace(src, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingNone,
	})
	if err != nil {
		return nil, fmt.Errorf("font face %.1fpt: %w", size, err)
	}
	f.faces[key] = face
	return face, nil
}

func (f *FontMeasurer) Measure(text string, size float64, bold bool) Metrics {
	face, err := f.Face(size, bold)
	if err != nil {
		return FixedMeasurer{}.Measure(text, size, bold)
	}
	fm := face.Metrics()
	return Metrics{
		Width:   fixedToFloat(font.MeasureString(face, text)),
		Ascent:  fixedToFloat(fm.Ascent),
		Descent: fixedToFloat(fm.Descent),
	}
}

// Close releases the cached faces.
func (f *FontMeasurer) Close() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for k, face := range f.faces {
		face.Close()
		delete(f.faces, k)
	}
	return nil
}

func fixedToFloat(v fixed.Int26_6) float64 { return float64(v) / 64 }
