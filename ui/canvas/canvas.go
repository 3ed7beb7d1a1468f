// Package canvas displays typeset equation scenes with Fyne canvas objects.
package canvas

import (
	"image/color"

	"fyne.io/fyne/v2"
	fynecanvas "fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"integral-calculator/internal/typeset"
)

// ascentRatio splits a measured Fyne line height into ascent and descent.
const ascentRatio = 0.8

// Measurer measures text with the current Fyne theme font.
type Measurer struct{}

var _ typeset.Measurer = Measurer{}

func (Measurer) Measure(text string, size float64, bold bool) typeset.Metrics {
	sz := fyne.MeasureText(text, float32(size), fyne.TextStyle{Bold: bold})
	h := float64(sz.Height)
	return typeset.Metrics{Width: float64(sz.Width), Ascent: h * ascentRatio, Descent: h * (1 - ascentRatio)}
}

// EquationCanvas shows one scene at its natural size, scrolling when the
// scene is larger than the space it is given.
type EquationCanvas struct {
	spacer *fynecanvas.Rectangle
	layer  *fyne.Container
	scroll *container.Scroll
	scene  *typeset.Scene
}

// NewEquationCanvas creates an empty canvas.
func NewEquationCanvas() *EquationCanvas {
	ec := &EquationCanvas{
		spacer: fynecanvas.NewRectangle(color.Transparent),
		layer:  container.NewWithoutLayout(),
	}
	ec.scroll = container.NewScroll(container.NewStack(ec.spacer, ec.layer))
	ec.scroll.Direction = container.ScrollBoth
	return ec
}

// Container returns the widget to place in a layout.
func (ec *EquationCanvas) Container() fyne.CanvasObject {
	return ec.scroll
}

// Scene returns the scene last shown, or nil.
func (ec *EquationCanvas) Scene() *typeset.Scene {
	return ec.scene
}

// SetScene replaces the displayed scene.
func (ec *EquationCanvas) SetScene(s *typeset.Scene) {
	ec.scene = s
	size := fyne.NewSize(float32(s.Size.Width), float32(s.Size.Height))
	ec.spacer.SetMinSize(size)
	ec.layer.Objects = Objects(s)
	ec.layer.Resize(size)
	ec.scroll.SetMinSize(fyne.NewSize(min(size.Width, maxViewWidth), size.Height))
	ec.scroll.Refresh()
}

// maxViewWidth caps the width a canvas asks for; wider scenes scroll.
const maxViewWidth = 1000

// Objects converts a scene to positioned Fyne canvas objects, background
// first.
func Objects(s *typeset.Scene) []fyne.CanvasObject {
	bg := fynecanvas.NewRectangle(s.Background)
	bg.Resize(fyne.NewSize(float32(s.Size.Width), float32(s.Size.Height)))

	objs := []fyne.CanvasObject{bg}
	for _, it := range s.Items {
		if o := object(it); o != nil {
			objs = append(objs, o)
		}
	}
	return objs
}

func object(it typeset.Item) fyne.CanvasObject {
	switch v := it.(type) {
	case typeset.Rect:
		r := fynecanvas.NewRectangle(v.Fill)
		r.StrokeColor = v.Stroke
		r.StrokeWidth = float32(v.StrokeWidth)
		r.Move(fyne.NewPos(float32(v.Rect.X), float32(v.Rect.Y)))
		r.Resize(fyne.NewSize(float32(v.Rect.Width), float32(v.Rect.Height)))
		return r
	case typeset.Line:
		l := fynecanvas.NewLine(v.Color)
		l.StrokeWidth = float32(v.Width)
		l.Position1 = fyne.NewPos(float32(v.From.X), float32(v.From.Y))
		l.Position2 = fyne.NewPos(float32(v.To.X), float32(v.To.Y))
		return l
	case typeset.Text:
		t := fynecanvas.NewText(v.Text, v.Color)
		t.TextSize = float32(v.Size)
		t.TextStyle = fyne.TextStyle{Bold: v.Bold}
		b := v.Bounds()
		t.Move(fyne.NewPos(float32(b.X), float32(b.Y)))
		t.Resize(fyne.NewSize(float32(b.Width), float32(b.Height)))
		return t
	}
	return nil
}
