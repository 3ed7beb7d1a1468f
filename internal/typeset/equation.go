package typeset

import (
	"log"
	"math"

	"integral-calculator/internal/symbolic"
	"integral-calculator/pkg/colorutil"
	"integral-calculator/pkg/geometry"
)

// Canvas sizes in pixels.
const (
	GridSpacing      = 20.0
	PreviewMinWidth  = 300.0
	PreviewHeight    = 200.0
	ResultMinWidth   = 400.0
	ResultHeight     = 180.0
	DefiniteMinWidth = 600.0
	DefiniteHeight   = 200.0
	MaxWidth         = 1000.0
)

// Point sizes and spacing.
const (
	TextSize   = 16.0
	signSize   = 80.0
	boundSize  = 10.0
	dxSize     = 12.0
	equalsSize = 20.0
	margin     = 20.0
	gap        = 12.0
	lineGap    = 8.0
)

// Bounds are the limits of a definite integral as typed.
type Bounds struct {
	Lower, Upper string
}

// sign returns an integral sign tall enough to span content.
func (l *layout) sign(content Metrics) *textBox {
	size := signSize
	if h := l.m.Measure("∫", signSize, true).Height(); h > 0 && content.Height()*1.4 > h {
		size = signSize * content.Height() * 1.4 / h
	}
	return l.txt("∫", size)
}

// centered draws b with its vertical centre on axis.
func centered(s *Scene, b Box, x, axis float64) {
	m := b.Metrics()
	b.Draw(s, x, axis+(m.Ascent-m.Descent)/2)
}

// dxBox draws the grey differential box with its left edge at x and
// returns its width.
func (l *layout) dxBox(s *Scene, dx *textBox, x, axis float64) float64 {
	w, h := dx.m.Width+10, dx.m.Height()+4
	s.rect(geometry.NewRect(x, axis-h/2, w, h), colorutil.Grid, colorutil.Ink)
	centered(s, dx, x+5, axis)
	return w
}

// boundBox draws a limit centred on c: the value in a white box, or an
// empty grey placeholder when text is nil.
func (l *layout) boundBox(s *Scene, text *textBox, c geometry.Point2D) geometry.Rect {
	if text == nil {
		r := geometry.CenteredRect(c, 10, 10)
		s.rect(r, colorutil.BoxFill, colorutil.BoxStroke)
		return r
	}
	r := geometry.CenteredRect(c, math.Max(10, text.m.Width+4), math.Max(10, text.m.Height()+2))
	s.rect(r, colorutil.White, colorutil.Ink)
	centered(s, text, r.X+(r.Width-text.m.Width)/2, c.Y)
	return r
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}

// Preview draws the input as typed: the integral sign, placeholder or
// filled bounds boxes, the function in parentheses and the dx box. bounds
// is nil for an indefinite integral.
func Preview(input string, bounds *Bounds, variable string, m Measurer) *Scene {
	l := newLayout(m)
	fn := l.txt("("+MathNotation(input)+")", TextSize)
	dx := l.txt("d"+variable, dxSize)
	sign := l.sign(fn.m)

	const signCenter, boundX = 70.0, 95.0
	fnX := math.Max(130, signCenter+sign.m.Width/2+10)
	dxX := fnX + fn.m.Width + gap
	width := math.Max(PreviewMinWidth, dxX+dx.m.Width+10+30)

	s := newScene(width, PreviewHeight)
	axis := PreviewHeight / 2
	centered(s, sign, signCenter-sign.m.Width/2, axis)

	var upper, lower *textBox
	if bounds != nil {
		upper = l.txt(orDefault(bounds.Upper, "b"), boundSize)
		lower = l.txt(orDefault(bounds.Lower, "a"), boundSize)
	}
	l.boundBox(s, upper, geometry.NewPoint2D(boundX, 30))
	l.boundBox(s, lower, geometry.NewPoint2D(boundX, PreviewHeight-30))

	centered(s, fn, fnX, axis)
	l.dxBox(s, dx, dxX, axis)
	s.border()
	return s
}

// wrapTerms splits a wide sum into lines of at most avail pixels, breaking
// before a top-level + or −.
func (l *layout) wrapTerms(e symbolic.Expr, size, avail float64) []Box {
	whole := l.expr(e, size)
	a, ok := e.(*symbolic.Add)
	if !ok || whole.Metrics().Width <= avail {
		return []Box{whole}
	}
	var lines []Box
	var cur []Box
	width := 0.0
	for _, t := range l.terms(a, size) {
		w := t.Metrics().Width
		if len(cur) > 0 && width+w > avail {
			lines = append(lines, row(cur...))
			cur, width = nil, 0
		}
		cur = append(cur, t)
		width += w
	}
	return append(lines, row(cur...))
}

// lhs is the laid-out "∫ (f) dx =" with the x positions of its parts;
// rightX is where the result starts.
type lhs struct {
	sign   *textBox
	fn     Box
	dx     *textBox
	upper  *textBox
	lower  *textBox
	eq     *textBox
	fnX    float64
	dxX    float64
	eqX    float64
	rightX float64
}

func (l *layout) lhs(integrand symbolic.Expr, variable string, bounds *Bounds) *lhs {
	h := &lhs{
		fn: l.fence(l.expr(integrand, TextSize), "(", ")", TextSize),
		dx: l.txt("d"+variable, dxSize),
		eq: l.txt("=", equalsSize),
	}
	h.sign = l.sign(h.fn.Metrics())
	if bounds != nil {
		h.upper = l.txt(orDefault(bounds.Upper, "b"), boundSize)
		h.lower = l.txt(orDefault(bounds.Lower, "a"), boundSize)
	}
	boundsW := 0.0
	if h.upper != nil {
		boundsW = math.Max(h.upper.m.Width, h.lower.m.Width) + 4
	}
	h.fnX = margin + h.sign.m.Width + boundsW + 6
	h.dxX = h.fnX + h.fn.Metrics().Width + gap
	h.eqX = h.dxX + h.dx.m.Width + 10 + gap
	h.rightX = h.eqX + h.eq.m.Width + gap
	return h
}

func (l *layout) drawLHS(s *Scene, h *lhs, baseline, axis float64) {
	centered(s, h.sign, margin, axis)
	if h.upper != nil {
		half := h.sign.m.Height() / 2
		x := margin + h.sign.m.Width + (math.Max(h.upper.m.Width, h.lower.m.Width)+4)/2
		l.boundBox(s, h.upper, geometry.NewPoint2D(x, axis-half+h.upper.m.Height()))
		l.boundBox(s, h.lower, geometry.NewPoint2D(x, axis+half-h.lower.m.Height()))
	}
	h.fn.Draw(s, h.fnX, baseline)
	l.dxBox(s, h.dx, h.dxX, axis)
	centered(s, h.eq, h.eqX, axis)
}

// IndefiniteResult draws "∫ (f) dx = F + C". Results wider than MaxWidth
// wrap at top-level terms onto further lines.
func IndefiniteResult(integrand, antiderivative symbolic.Expr, variable string, m Measurer) *Scene {
	l := newLayout(m)
	h := l.lhs(integrand, variable, nil)
	plusC := l.txt(" + C", TextSize)

	var lines []Box
	if symbolic.HasIntegral(antiderivative) {
		lines = []Box{l.expr(antiderivative, TextSize)}
	} else {
		avail := MaxWidth - h.rightX - plusC.m.Width - 30
		lines = l.wrapTerms(antiderivative, TextSize, avail)
		lines[len(lines)-1] = row(lines[len(lines)-1], plusC)
	}
	return l.finish(h, lines, ResultMinWidth, ResultHeight)
}

// DefiniteResult draws "∫ₐᵇ (f) dx = value" with the bounds beside the sign.
func DefiniteResult(integrand symbolic.Expr, variable string, bounds Bounds, value string, m Measurer) *Scene {
	l := newLayout(m)
	h := l.lhs(integrand, variable, &bounds)
	return l.finish(h, []Box{l.txt(value, TextSize)}, DefiniteMinWidth, DefiniteHeight)
}

// finish sizes the scene around the left-hand side and the result lines
// and draws everything.
func (l *layout) finish(h *lhs, lines []Box, minWidth, minHeight float64) *Scene {
	widest, block := 0.0, 0.0
	for i, ln := range lines {
		lm := ln.Metrics()
		widest = math.Max(widest, lm.Width)
		block += lm.Height()
		if i > 0 {
			block += lineGap
		}
	}
	first := lines[0].Metrics()
	lhsHeight := math.Max(h.sign.m.Height(), h.fn.Metrics().Height())
	height := math.Max(minHeight, math.Max(block, lhsHeight)+2*margin)
	// The left-hand side is centred on the first line and must fit too.
	top := math.Max((height-block)/2, margin+(lhsHeight-first.Height())/2)
	height = math.Max(height, top+block+margin)
	height = math.Max(height, top+(first.Height()+lhsHeight)/2+margin)
	width := math.Max(minWidth, h.rightX+widest+30)

	s := newScene(width, height)
	baseline := top + first.Ascent
	axis := top + first.Height()/2
	l.drawLHS(s, h, baseline, axis)

	y := top
	for _, ln := range lines {
		lm := ln.Metrics()
		ln.Draw(s, h.rightX, y+lm.Ascent)
		y += lm.Height() + lineGap
	}
	s.border()
	if over := s.Overflow(); len(over) > 0 {
		log.Printf("Typeset: %d items outside the %gx%g scene", len(over), s.Size.Width, s.Size.Height)
	}
	return s
}
