package typeset

import (
	"image/color"

	"integral-calculator/pkg/colorutil"
	"integral-calculator/pkg/geometry"
)

// Item is a drawing primitive. Items are painted in slice order.
type Item interface {
	Bounds() geometry.Rect
}

// Text is a run of text whose Origin is the left end of the baseline.
type Text struct {
	Origin  geometry.Point2D
	Text    string
	Size    float64
	Bold    bool
	Color   color.RGBA
	Metrics Metrics
}

func (t Text) Bounds() geometry.Rect {
	return geometry.NewRect(t.Origin.X, t.Origin.Y-t.Metrics.Ascent, t.Metrics.Width, t.Metrics.Height())
}

// Line is a straight stroke.
type Line struct {
	From, To geometry.Point2D
	Width    float64
	Color    color.RGBA
}

func (l Line) Bounds() geometry.Rect {
	r := geometry.NewRect(l.From.X, l.From.Y, 0, 0)
	return r.Union(geometry.NewRect(l.To.X, l.To.Y, 0, 0))
}

// Rect is a filled and/or stroked rectangle. A zero colour is not painted.
type Rect struct {
	Rect        geometry.Rect
	Fill        color.RGBA
	Stroke      color.RGBA
	StrokeWidth float64
}

func (r Rect) Bounds() geometry.Rect { return r.Rect }

// Scene is a fixed-size drawing.
type Scene struct {
	Size       geometry.Size
	Background color.RGBA
	Items      []Item
}

func newScene(width, height float64) *Scene {
	s := &Scene{Size: geometry.NewSize(width, height), Background: colorutil.White}
	s.grid()
	return s
}

// grid draws the faint background lines every GridSpacing pixels.
func (s *Scene) grid() {
	for x := 0.0; x < s.Size.Width; x += GridSpacing {
		s.line(geometry.NewPoint2D(x, 0), geometry.NewPoint2D(x, s.Size.Height), 1, colorutil.Grid)
	}
	for y := 0.0; y < s.Size.Height; y += GridSpacing {
		s.line(geometry.NewPoint2D(0, y), geometry.NewPoint2D(s.Size.Width, y), 1, colorutil.Grid)
	}
}

// border frames the scene in light blue.
func (s *Scene) border() {
	s.Items = append(s.Items, Rect{
		Rect:        s.Size.Rect().Inset(1),
		Stroke:      colorutil.SkyBlue,
		StrokeWidth: 2,
	})
}

func (s *Scene) line(from, to geometry.Point2D, width float64, c color.RGBA) {
	s.Items = append(s.Items, Line{From: from, To: to, Width: width, Color: c})
}

func (s *Scene) rect(r geometry.Rect, fill, stroke color.RGBA) {
	s.Items = append(s.Items, Rect{Rect: r, Fill: fill, Stroke: stroke, StrokeWidth: 1})
}

func (s *Scene) text(origin geometry.Point2D, text string, size float64, bold bool, c color.RGBA, m Metrics) {
	s.Items = append(s.Items, Text{Origin: origin, Text: text, Size: size, Bold: bold, Color: c, Metrics: m})
}

// Texts returns the text items in paint order.
func (s *Scene) Texts() []Text {
	var out []Text
	for _, it := range s.Items {
		if t, ok := it.(Text); ok {
			out = append(out, t)
		}
	}
	return out
}

// Content returns the union of the bounds of all non-grid items.
func (s *Scene) Content() geometry.Rect {
	var r geometry.Rect
	first := true
	for _, it := range s.Items {
		if l, ok := it.(Line); ok && l.Color == colorutil.Grid {
			continue
		}
		if first {
			r, first = it.Bounds(), false
			continue
		}
		r = r.Union(it.Bounds())
	}
	return r
}

// Overflow returns the items that reach outside the scene.
func (s *Scene) Overflow() []Item {
	frame := s.Size.Rect().Inset(-0.001)
	var out []Item
	for _, it := range s.Items {
		if !frame.ContainsRect(it.Bounds()) {
			out = append(out, it)
		}
	}
	return out
}
