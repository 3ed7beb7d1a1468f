package integrate

import "integral-calculator/internal/symbolic"

// maxAngleMultiple bounds the multiple angles backSub unfolds.
const maxAngleMultiple = 16

// trigSubstitution integrates P(x)*(c + k*x^2)^(n/2) for odd n:
//
//	c > 0, k < 0:  x = α sin t,  c + k x^2 = c cos^2 t
//	c > 0, k > 0:  x = α sinh t, c + k x^2 = c cosh^2 t
//	c < 0, k > 0:  x = α cosh t, c + k x^2 = -c sinh^2 t
//
// The integral in t is a trig or hyperbolic monomial; the result is
// mapped back with multiple-angle formulas and t = asin, asinh or
// acosh(x/α).
func (e *engine) trigSubstitution(f symbolic.Expr) (symbolic.Expr, bool, error) {
	p, rest, ok := splitPolynomial(f, e.x)
	if !ok || p.IsZero() {
		return nil, false, nil
	}
	pw, ok := rest.(*symbolic.Pow)
	if !ok {
		return nil, false, nil
	}
	n, ok := pw.Exp().(*symbolic.Num)
	if !ok || n.Denominator().String() != "2" {
		return nil, false, nil
	}
	q, ok := symbolic.PolyOf(pw.Base(), e.x)
	if !ok || q.Deg() != 2 || q.Coeff(1).Sign() != 0 {
		return nil, false, nil
	}
	c, k := symbolic.NRat(q.Coeff(0)), symbolic.NRat(q.Coeff(2))

	t := e.freshSymbol()
	xs := symbolic.S(e.x)
	radical := symbolic.Sqrt(pw.Base())
	var alpha, scale symbolic.Expr
	var fam family
	var inverse string
	var odd bool // x = α·odd(t) rather than α·even(t)
	switch {
	case c.IsPos() && k.IsNeg():
		alpha, scale = symbolic.Sqrt(div(c, neg(k))), c
		fam, inverse, odd = circular, "asin", true
	case c.IsPos() && k.IsPos():
		alpha, scale = symbolic.Sqrt(div(c, k)), c
		fam, inverse, odd = hyperbolic, "asinh", true
	case c.IsNeg() && k.IsPos():
		alpha, scale = symbolic.Sqrt(div(neg(c), k)), neg(c)
		fam, inverse, odd = hyperbolic, "acosh", false
	default:
		return nil, false, nil
	}

	sub, other := fn(fam.odd, t), fn(fam.even, t)
	if !odd {
		sub, other = other, sub
	}
	// x = α sub(t), dx = α sub'(t) dt and the radical becomes scale^(1/2) other(t).
	xt := symbolic.MulOf(alpha, sub)
	dx := symbolic.MulOf(alpha, sub.Diff(t.Name()))
	twoN := symbolic.MulOf(two, n)
	g := symbolic.MulOf(
		p.ToExpr(e.x).Sub(e.x, xt),
		symbolic.PowOf(scale, n),
		symbolic.PowOf(other, twoN),
		dx,
	)
	r, err := e.child(t.Name()).integrate(symbolic.Expand(g))
	if err != nil {
		return nil, false, err
	}

	// Back in x: sub(t) = x/α and other(t) = sqrt(c + k x^2)/sqrt(scale).
	subX := div(xs, alpha)
	otherX := div(radical, symbolic.Sqrt(scale))
	b := backSub{t: t.Name(), fam: fam}
	if odd {
		b.s, b.c = subX, otherX
	} else {
		b.s, b.c = otherX, subX
	}
	out := b.rewrite(r).Sub(t.Name(), fn(inverse, subX))
	return out, true, nil
}

// backSub replaces odd(m t) and even(m t), and the quotients built from
// them, by polynomials in s = odd(t) and c = even(t).
type backSub struct {
	t    string
	fam  family
	s, c symbolic.Expr
}

func (b backSub) rewrite(e symbolic.Expr) symbolic.Expr {
	switch v := e.(type) {
	case *symbolic.Add:
		terms := make([]symbolic.Expr, len(v.Terms()))
		for i, t := range v.Terms() {
			terms[i] = b.rewrite(t)
		}
		return symbolic.AddOf(terms...)
	case *symbolic.Mul:
		factors := make([]symbolic.Expr, len(v.Factors()))
		for i, f := range v.Factors() {
			factors[i] = b.rewrite(f)
		}
		return symbolic.MulOf(factors...)
	case *symbolic.Pow:
		return symbolic.PowOf(b.rewrite(v.Base()), b.rewrite(v.Exp()))
	case *symbolic.Func:
		if m, ok := b.multiple(v.Arg()); ok {
			s, c := b.angles(m)
			switch v.Name() {
			case b.fam.odd:
				return s
			case b.fam.even:
				return c
			case "tan", "tanh":
				return div(s, c)
			case "cot", "coth":
				return div(c, s)
			case "sec", "sech":
				return symbolic.PowOf(c, symbolic.N(-1))
			case "csc", "csch":
				return symbolic.PowOf(s, symbolic.N(-1))
			}
		}
		return fn(v.Name(), b.rewrite(v.Arg()))
	}
	return e
}

// multiple returns m when u = m*t for a small positive integer m.
func (b backSub) multiple(u symbolic.Expr) (int64, bool) {
	c, rest := symbolic.SplitCoeff(u)
	sym, ok := rest.(*symbolic.Sym)
	if !ok || sym.Name() != b.t {
		return 0, false
	}
	m, ok := c.Int64()
	if !ok || m < 1 || m > maxAngleMultiple {
		return 0, false
	}
	return m, true
}

// angles returns odd(m t) and even(m t) from
//
//	odd(m t)  = odd((m-1) t) even(t) + even((m-1) t) odd(t)
//	even(m t) = even((m-1) t) even(t) ∓ odd((m-1) t) odd(t)
//
// with the minus sign for sin and cos.
func (b backSub) angles(m int64) (symbolic.Expr, symbolic.Expr) {
	s, c := b.s, b.c
	for i := int64(1); i < m; i++ {
		ss := symbolic.MulOf(s, b.s)
		if !b.fam.hyper {
			ss = neg(ss)
		}
		s, c = symbolic.AddOf(symbolic.MulOf(s, b.c), symbolic.MulOf(c, b.s)),
			symbolic.AddOf(symbolic.MulOf(c, b.c), ss)
	}
	return symbolic.Expand(s), symbolic.Expand(c)
}
