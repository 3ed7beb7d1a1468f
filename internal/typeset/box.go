package typeset

import (
	"math"
	"strings"

	"integral-calculator/internal/symbolic"
	"integral-calculator/pkg/colorutil"
	"integral-calculator/pkg/geometry"
)

// scriptScale is the size of a superscript relative to its base.
const scriptScale = 0.7

// Box is a laid-out piece of an equation drawn relative to its baseline.
type Box interface {
	Metrics() Metrics
	Draw(s *Scene, x, baseline float64)
}

type textBox struct {
	text string
	size float64
	bold bool
	m    Metrics
}

func (b *textBox) Metrics() Metrics { return b.m }

func (b *textBox) Draw(s *Scene, x, baseline float64) {
	s.text(geometry.NewPoint2D(x, baseline), b.text, b.size, b.bold, colorutil.Ink, b.m)
}

type rowBox struct {
	items []Box
	m     Metrics
}

func row(items ...Box) *rowBox {
	r := &rowBox{items: items}
	for _, it := range items {
		m := it.Metrics()
		r.m.Width += m.Width
		r.m.Ascent = math.Max(r.m.Ascent, m.Ascent)
		r.m.Descent = math.Max(r.m.Descent, m.Descent)
	}
	return r
}

func (b *rowBox) Metrics() Metrics { return b.m }

func (b *rowBox) Draw(s *Scene, x, baseline float64) {
	for _, it := range b.items {
		it.Draw(s, x, baseline)
		x += it.Metrics().Width
	}
}

// scriptBox raises sup to the upper right of base.
type scriptBox struct {
	base, sup Box
	raise     float64
	m         Metrics
}

func script(base, sup Box) *scriptBox {
	bm, sm := base.Metrics(), sup.Metrics()
	raise := bm.Ascent * 0.55
	return &scriptBox{
		base:  base,
		sup:   sup,
		raise: raise,
		m: Metrics{
			Width:   bm.Width + sm.Width + 1,
			Ascent:  math.Max(bm.Ascent, raise+sm.Ascent),
			Descent: math.Max(bm.Descent, sm.Descent-raise),
		},
	}
}

func (b *scriptBox) Metrics() Metrics { return b.m }

func (b *scriptBox) Draw(s *Scene, x, baseline float64) {
	b.base.Draw(s, x, baseline)
	b.sup.Draw(s, x+b.base.Metrics().Width+1, baseline-b.raise)
}

// fracBox stacks num over den with a bar on the math axis.
type fracBox struct {
	num, den  Box
	axis, gap float64
	pad       float64
	m         Metrics
}

func frac(num, den Box, size float64) *fracBox {
	nm, dm := num.Metrics(), den.Metrics()
	b := &fracBox{num: num, den: den, axis: 0.3 * size, gap: 3, pad: 2}
	b.m = Metrics{
		Width:   math.Max(nm.Width, dm.Width) + 2*b.pad,
		Ascent:  b.axis + b.gap + nm.Height(),
		Descent: math.Max(0, dm.Height()+b.gap-b.axis),
	}
	return b
}

func (b *fracBox) Metrics() Metrics { return b.m }

func (b *fracBox) Draw(s *Scene, x, baseline float64) {
	nm, dm := b.num.Metrics(), b.den.Metrics()
	bar := baseline - b.axis
	s.line(geometry.NewPoint2D(x, bar), geometry.NewPoint2D(x+b.m.Width, bar), 1.5, colorutil.Ink)
	b.num.Draw(s, x+(b.m.Width-nm.Width)/2, bar-b.gap-nm.Descent)
	b.den.Draw(s, x+(b.m.Width-dm.Width)/2, bar+b.gap+dm.Ascent)
}

// fenceBox wraps inner in delimiters scaled to its height.
type fenceBox struct {
	inner       Box
	open, close *textBox
	shift       float64
	m           Metrics
}

func (b *fenceBox) Metrics() Metrics { return b.m }

func (b *fenceBox) Draw(s *Scene, x, baseline float64) {
	b.open.Draw(s, x, baseline-b.shift)
	x += b.open.m.Width
	b.inner.Draw(s, x, baseline)
	x += b.inner.Metrics().Width
	b.close.Draw(s, x, baseline-b.shift)
}

// overlineBox draws a bar over inner, the vinculum of a radical.
type overlineBox struct {
	inner Box
	m     Metrics
}

func (b *overlineBox) Metrics() Metrics { return b.m }

func (b *overlineBox) Draw(s *Scene, x, baseline float64) {
	y := baseline - b.inner.Metrics().Ascent - 1.5
	s.line(geometry.NewPoint2D(x, y), geometry.NewPoint2D(x+b.m.Width, y), 1.5, colorutil.Ink)
	b.inner.Draw(s, x, baseline)
}

// layout builds boxes with one measurer and weight.
type layout struct {
	m    Measurer
	bold bool
}

func newLayout(m Measurer) *layout { return &layout{m: m, bold: true} }

func (l *layout) txt(text string, size float64) *textBox {
	return &textBox{text: text, size: size, bold: l.bold, m: l.m.Measure(text, size, l.bold)}
}

// fence scales the delimiters so they span inner, centred on it.
func (l *layout) fence(inner Box, open, close string, size float64) *fenceBox {
	im := inner.Metrics()
	ps := size
	if h := l.m.Measure(open, size, l.bold).Height(); h > 0 && im.Height() > h {
		ps = size * im.Height() / h
	}
	o, c := l.txt(open, ps), l.txt(close, ps)
	shift := (im.Ascent-im.Descent)/2 - (o.m.Ascent-o.m.Descent)/2
	return &fenceBox{
		inner: inner,
		open:  o,
		close: c,
		shift: shift,
		m: Metrics{
			Width:   o.m.Width + im.Width + c.m.Width,
			Ascent:  math.Max(im.Ascent, o.m.Ascent+shift),
			Descent: math.Max(im.Descent, o.m.Descent-shift),
		},
	}
}

func (l *layout) radical(inner Box, size float64) Box {
	im := inner.Metrics()
	over := &overlineBox{inner: inner, m: Metrics{Width: im.Width, Ascent: im.Ascent + 3, Descent: im.Descent}}
	return l.fence(over, "√", "", size)
}

// Layout builds the box for e at the given point size.
func Layout(e symbolic.Expr, m Measurer, size float64) Box {
	return newLayout(m).expr(e, size)
}

func (l *layout) expr(e symbolic.Expr, size float64) Box {
	switch v := e.(type) {
	case *symbolic.Num:
		return l.num(v, size)
	case *symbolic.Sym:
		return l.txt(v.Name(), size)
	case *symbolic.Const:
		if v.String() == "pi" {
			return l.txt("π", size)
		}
		return l.txt("i", size)
	case *symbolic.Add:
		return row(l.terms(v, size)...)
	case *symbolic.Mul:
		return l.product(v, size)
	case *symbolic.Pow:
		return l.power(v, size)
	case *symbolic.Func:
		return l.call(v, size)
	case *symbolic.Integral:
		return row(l.txt("∫ ", size), l.expr(v.Integrand(), size), l.txt(" d"+v.Variable(), size))
	}
	return l.txt(e.String(), size)
}

func (l *layout) num(n *symbolic.Num, size float64) Box {
	s := strings.TrimPrefix(n.String(), "-")
	var body Box = l.txt(s, size)
	if !n.IsInt() {
		num := strings.TrimPrefix(n.Numerator().String(), "-")
		body = frac(l.txt(num, size), l.txt(n.Denominator().String(), size), size)
	}
	if n.IsNeg() {
		return row(l.txt("−", size), body)
	}
	return body
}

// terms lays out each term of a sum with its leading operator; the first
// term carries only a minus sign.
func (l *layout) terms(a *symbolic.Add, size float64) []Box {
	var out []Box
	for i, t := range a.DisplayTerms() {
		c, _ := symbolic.SplitCoeff(t)
		neg := c.IsNeg()
		if neg {
			t = symbolic.Neg(t)
		}
		body := l.expr(t, size)
		switch {
		case i == 0 && neg:
			out = append(out, row(l.txt("−", size), body))
		case i == 0:
			out = append(out, body)
		case neg:
			out = append(out, row(l.txt(" − ", size), body))
		default:
			out = append(out, row(l.txt(" + ", size), body))
		}
	}
	return out
}

func (l *layout) factor(f symbolic.Expr, size float64) Box {
	if _, ok := f.(*symbolic.Add); ok {
		return l.fence(l.expr(f, size), "(", ")", size)
	}
	return l.expr(f, size)
}

// factors joins a coefficient and factors, with a centred dot between
// factors but not after the coefficient.
func (l *layout) factors(coeff *symbolic.Num, fs []symbolic.Expr, size float64) Box {
	var items []Box
	if !coeff.IsOne() || len(fs) == 0 {
		items = append(items, l.txt(coeff.String(), size))
	}
	for i, f := range fs {
		if i > 0 {
			items = append(items, l.txt("·", size))
		}
		items = append(items, l.factor(f, size))
	}
	return row(items...)
}

func (l *layout) product(m *symbolic.Mul, size float64) Box {
	neg, num, den, p, q := m.Fraction()
	var body Box
	if len(den) == 0 && q.IsOne() {
		body = l.factors(p, num, size)
	} else {
		denBox := l.factors(q, den, size)
		body = frac(l.factors(p, num, size), denBox, size)
	}
	if neg {
		return row(l.txt("−", size), body)
	}
	return body
}

func needsFence(e symbolic.Expr) bool {
	switch v := e.(type) {
	case *symbolic.Add, *symbolic.Mul, *symbolic.Pow:
		return true
	case *symbolic.Num:
		return v.IsNeg() || !v.IsInt()
	}
	return false
}

func (l *layout) power(p *symbolic.Pow, size float64) Box {
	base := p.Base()
	if n, ok := p.Exp().(*symbolic.Num); ok {
		switch {
		case n.String() == "1/2":
			return l.radical(l.expr(base, size), size)
		case n.IsNeg():
			return frac(l.txt("1", size), l.expr(symbolic.PowOf(base, symbolic.Neg(n)), size), size)
		}
		if fn, ok := base.(*symbolic.Func); ok && n.IsInt() && fn.Name() != "exp" && fn.Name() != "abs" {
			// sin²(x)
			head := script(l.txt(fn.Name(), size), l.txt(n.String(), size*scriptScale))
			return row(head, l.fence(l.expr(fn.Arg(), size), "(", ")", size))
		}
	}
	b := l.expr(base, size)
	if needsFence(base) {
		b = l.fence(b, "(", ")", size)
	}
	return script(b, l.expr(p.Exp(), size*scriptScale))
}

func (l *layout) call(f *symbolic.Func, size float64) Box {
	switch f.Name() {
	case "exp":
		return script(l.txt("e", size), l.expr(f.Arg(), size*scriptScale))
	case "abs":
		return l.fence(l.expr(f.Arg(), size), "|", "|", size)
	}
	return row(l.txt(f.Name(), size), l.fence(l.expr(f.Arg(), size), "(", ")", size))
}
