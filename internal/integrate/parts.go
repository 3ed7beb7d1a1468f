package integrate

import (
	"errors"

	"integral-calculator/internal/symbolic"
)

// maxSubstituteDepth stops nested substitutions from fanning out.
const maxSubstituteDepth = 8

// substitute tries u = g(x) for every composite subexpression g: when
// f/g' rewritten in u no longer mentions x, ∫f dx = ∫(f/g') du.
func (e *engine) substitute(f symbolic.Expr) (symbolic.Expr, bool, error) {
	if e.depth > maxSubstituteDepth {
		return nil, false, nil
	}
	seen := map[string]bool{e.x: true, f.String(): true}
	var candidates []symbolic.Expr
	symbolic.Walk(f, func(n symbolic.Expr) bool {
		if _, ok := n.(*symbolic.Num); ok || symbolic.FreeOf(n, e.x) {
			return false
		}
		if key := n.String(); !seen[key] {
			seen[key] = true
			candidates = append(candidates, n)
		}
		return true
	})

	for _, g := range candidates {
		if _, ok := linearArg(g, e.x); ok {
			// Linear arguments are covered by the table.
			continue
		}
		dg := g.Diff(e.x)
		if symbolic.IsZero(dg) {
			continue
		}
		u := e.freshSymbol()
		q := symbolic.Replace(symbolic.Cancel(div(f, dg), e.x), g, u)
		if !symbolic.FreeOf(q, e.x) {
			q = symbolic.Replace(div(f, dg), g, u)
		}
		if !symbolic.FreeOf(q, e.x) {
			continue
		}
		r, err := e.child(u.Name()).integrate(q)
		if err != nil {
			if errors.Is(err, ErrNoAntiderivative) {
				continue
			}
			return nil, false, err
		}
		return r.Sub(u.Name(), g), true, nil
	}
	return nil, false, nil
}

// transcendental reports whether f is integrable by the table and stays
// in the same family when integrated repeatedly.
func transcendental(f symbolic.Expr, x string) bool {
	switch v := f.(type) {
	case *symbolic.Func:
		switch v.Name() {
		case "exp", "sin", "cos", "sinh", "cosh":
			_, ok := linearArg(v.Arg(), x)
			return ok
		}
	case *symbolic.Pow:
		if symbolic.FreeOf(v.Base(), x) {
			_, ok := linearArg(v.Exp(), x)
			return ok
		}
	}
	return false
}

// splitPolynomial separates f into a polynomial factor in x and the rest.
func splitPolynomial(f symbolic.Expr, x string) (symbolic.Poly, symbolic.Expr, bool) {
	var poly, rest []symbolic.Expr
	for _, fac := range factorsOf(f) {
		if _, ok := symbolic.PolyOf(fac, x); ok {
			poly = append(poly, fac)
		} else {
			rest = append(rest, fac)
		}
	}
	p, ok := symbolic.PolyOf(symbolic.MulOf(poly...), x)
	return p, symbolic.MulOf(rest...), ok
}

// parts integrates P(x)*T(x) by parts, with P a polynomial of positive
// degree and T one of exp, sin, cos, sinh, cosh or b^u of a linear argument.
func (e *engine) parts(f symbolic.Expr) (symbolic.Expr, bool, error) {
	p, t, ok := splitPolynomial(f, e.x)
	if !ok || p.Deg() < 1 || !transcendental(t, e.x) {
		return nil, false, nil
	}
	v, ok, err := e.table(t)
	if !ok || err != nil {
		return nil, false, err
	}
	pe := p.ToExpr(e.x)
	rest, err := e.sub(symbolic.MulOf(p.Derive().ToExpr(e.x), v))
	if err != nil {
		return nil, false, err
	}
	return symbolic.Subtract(symbolic.MulOf(pe, v), rest), true, nil
}

// liate integrates L(x)*A(x) by parts, where L is a logarithm, an inverse
// trig or inverse hyperbolic function of a linear argument, or a power of
// one, and A a polynomial or a power x^n with n != -1:
// ∫L A = L ∫A - ∫L' ∫A. Logarithms of any argument qualify, so log(x^2)
// and log(sqrt(x)) integrate the same way.
func (e *engine) liate(f symbolic.Expr) (symbolic.Expr, bool, error) {
	var l symbolic.Expr
	var others []symbolic.Expr
	for _, fac := range factorsOf(f) {
		if l == nil && inverseLike(fac, e.x) {
			l = fac
			continue
		}
		others = append(others, fac)
	}
	if l == nil {
		return nil, false, nil
	}
	v, ok := algebraicIntegral(symbolic.MulOf(others...), e.x)
	if !ok {
		return nil, false, nil
	}
	rest, err := e.sub(symbolic.Expand(symbolic.MulOf(l.Diff(e.x), v)))
	if err != nil {
		return nil, false, err
	}
	return symbolic.Subtract(symbolic.MulOf(l, v), rest), true, nil
}

func inverseLike(f symbolic.Expr, x string) bool {
	name, arg, k, ok := funcPower(f)
	if !ok || k < 1 {
		return false
	}
	switch name {
	case "log":
		return !symbolic.FreeOf(arg, x)
	case "asin", "acos", "atan", "asinh", "acosh", "atanh":
		_, ok := linearArg(arg, x)
		return ok
	}
	return false
}

// algebraicIntegral integrates a polynomial, or c*x^n with n != -1.
func algebraicIntegral(a symbolic.Expr, x string) (symbolic.Expr, bool) {
	if p, ok := symbolic.PolyOf(a, x); ok {
		return polyIntegral(p).ToExpr(x), true
	}
	c, rest := symbolic.SplitCoeff(a)
	pw, ok := rest.(*symbolic.Pow)
	if !ok {
		return nil, false
	}
	if s, ok := pw.Base().(*symbolic.Sym); !ok || s.Name() != x {
		return nil, false
	}
	n, ok := pw.Exp().(*symbolic.Num)
	if !ok || n.IsNegOne() {
		return nil, false
	}
	np1 := symbolic.AddOf(n, one)
	return symbolic.MulOf(c, div(symbolic.PowOf(symbolic.S(x), np1), np1)), true
}

// linearRadical integrates P(x)*(a*x + b)^n for non-integer n by
// substituting w = a*x + b, which turns the integrand into a sum of
// powers of w.
func (e *engine) linearRadical(f symbolic.Expr) (symbolic.Expr, bool, error) {
	p, rest, ok := splitPolynomial(f, e.x)
	if !ok || p.Deg() < 1 {
		return nil, false, nil
	}
	pw, ok := rest.(*symbolic.Pow)
	if !ok {
		return nil, false, nil
	}
	n, ok := pw.Exp().(*symbolic.Num)
	if !ok || n.IsInt() {
		return nil, false, nil
	}
	a, ok := linearArg(pw.Base(), e.x)
	if !ok {
		return nil, false, nil
	}
	b := pw.Base().Sub(e.x, symbolic.N(0))
	w := e.freshSymbol()
	xw := div(symbolic.Subtract(w, b), a)
	g := div(symbolic.MulOf(p.ToExpr(e.x).Sub(e.x, xw), symbolic.PowOf(w, n)), a)
	r, err := e.child(w.Name()).integrate(symbolic.Expand(g))
	if err != nil {
		return nil, false, err
	}
	return r.Sub(w.Name(), pw.Base()), true, nil
}
