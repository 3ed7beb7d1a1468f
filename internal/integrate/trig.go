package integrate

import "integral-calculator/internal/symbolic"

// trigPowers handles sin(u)^m*cos(u)^n and single powers of tan, sec, csc
// and cot, for a linear argument u.
func (e *engine) trigPowers(f symbolic.Expr) (symbolic.Expr, bool, error) {
	if r, ok, err := e.sinCos(f); ok || err != nil {
		return r, ok, err
	}
	return e.reciprocalPowers(f)
}

// funcPower matches name(u)^k with integer k (a bare call has k = 1).
func funcPower(f symbolic.Expr) (name string, arg symbolic.Expr, k int64, ok bool) {
	base, exp := f, symbolic.Expr(one)
	if p, isPow := f.(*symbolic.Pow); isPow {
		base, exp = p.Base(), p.Exp()
	}
	fc, isFunc := base.(*symbolic.Func)
	n, isNum := exp.(*symbolic.Num)
	if !isFunc || !isNum {
		return "", nil, 0, false
	}
	k, ok = n.Int64()
	return fc.Name(), fc.Arg(), k, ok
}

func factorsOf(f symbolic.Expr) []symbolic.Expr {
	if m, ok := f.(*symbolic.Mul); ok {
		return m.Factors()
	}
	return []symbolic.Expr{f}
}

func (e *engine) sinCos(f symbolic.Expr) (symbolic.Expr, bool, error) {
	var u symbolic.Expr
	var m, n int64
	for _, fac := range factorsOf(f) {
		name, arg, k, ok := funcPower(fac)
		if !ok || (name != "sin" && name != "cos") {
			return nil, false, nil
		}
		if u == nil {
			u = arg
		} else if !symbolic.Equal(u, arg) {
			return nil, false, nil
		}
		if name == "sin" {
			m += k
		} else {
			n += k
		}
	}
	if u == nil || (m == 0 && n == 0) || (m == 1 && n == 0) || (m == 0 && n == 1) {
		return nil, false, nil
	}
	a, ok := linearArg(u, e.x)
	if !ok {
		return nil, false, nil
	}

	t := e.freshSymbol()
	switch {
	case m > 0 && m%2 == 1:
		// sin^m cos^n du = -(1 - c^2)^((m-1)/2) c^n dc, c = cos(u)
		g := symbolic.MulOf(symbolic.N(-1),
			symbolic.PowOf(symbolic.Subtract(one, sq(t)), symbolic.N((m-1)/2)),
			symbolic.PowOf(t, symbolic.N(n)))
		return e.substituted(g, t, fn("cos", u), a)
	case n > 0 && n%2 == 1:
		// sin^m cos^n du = (1 - s^2)^((n-1)/2) s^m ds, s = sin(u)
		g := symbolic.MulOf(
			symbolic.PowOf(symbolic.Subtract(one, sq(t)), symbolic.N((n-1)/2)),
			symbolic.PowOf(t, symbolic.N(m)))
		return e.substituted(g, t, fn("sin", u), a)
	case m >= 0 && n >= 0 && m%2 == 0 && n%2 == 0:
		// Half-angle reduction into powers of cos(2u).
		c2 := fn("cos", symbolic.MulOf(two, u))
		g := symbolic.MulOf(
			symbolic.PowOf(div(symbolic.Subtract(one, c2), two), symbolic.N(m/2)),
			symbolic.PowOf(div(symbolic.AddOf(one, c2), two), symbolic.N(n/2)))
		r, err := e.sub(symbolic.Expand(g))
		return r, err == nil, err
	}
	return nil, false, nil
}

// substituted integrates g(t) dt in a fresh variable, then replaces t by
// inner and divides by the chain factor a.
func (e *engine) substituted(g symbolic.Expr, t *symbolic.Sym, inner, a symbolic.Expr) (symbolic.Expr, bool, error) {
	r, err := e.child(t.Name()).integrate(symbolic.Expand(g))
	if err != nil {
		return nil, false, err
	}
	return div(r.Sub(t.Name(), inner), a), true, nil
}

// reciprocalPowers applies the reduction formulas for tan^k, cot^k, sec^k,
// csc^k and coth^k with k >= 2.
func (e *engine) reciprocalPowers(f symbolic.Expr) (symbolic.Expr, bool, error) {
	name, u, k, ok := funcPower(f)
	if !ok || k < 2 {
		return nil, false, nil
	}
	a, ok := linearArg(u, e.x)
	if !ok {
		return nil, false, nil
	}
	pw := func(n int64) symbolic.Expr { return symbolic.PowOf(fn(name, u), symbolic.N(n)) }
	km1 := symbolic.N(k - 1)

	var head, tail symbolic.Expr
	var tailCoeff symbolic.Expr
	switch name {
	case "tan":
		// tan^k = tan^(k-1)/((k-1)a) - ∫tan^(k-2)
		head = div(pw(k-1), symbolic.MulOf(km1, a))
		tail, tailCoeff = pw(k-2), symbolic.N(-1)
	case "cot":
		head = neg(div(pw(k-1), symbolic.MulOf(km1, a)))
		tail, tailCoeff = pw(k-2), symbolic.N(-1)
	case "coth":
		// coth^k = -coth^(k-1)/((k-1)a) + ∫coth^(k-2)
		head = neg(div(pw(k-1), symbolic.MulOf(km1, a)))
		tail, tailCoeff = pw(k-2), one
	case "sec":
		if k == 2 {
			return nil, false, nil
		}
		// sec^k = sec^(k-2) tan/((k-1)a) + (k-2)/(k-1) ∫sec^(k-2)
		head = div(symbolic.MulOf(pw(k-2), fn("tan", u)), symbolic.MulOf(km1, a))
		tail, tailCoeff = pw(k-2), symbolic.Q(k-2, k-1)
	case "csc":
		if k == 2 {
			return nil, false, nil
		}
		head = neg(div(symbolic.MulOf(pw(k-2), fn("cot", u)), symbolic.MulOf(km1, a)))
		tail, tailCoeff = pw(k-2), symbolic.Q(k-2, k-1)
	default:
		return nil, false, nil
	}
	rest, err := e.sub(tail)
	if err != nil {
		return nil, false, err
	}
	return symbolic.AddOf(head, symbolic.MulOf(tailCoeff, rest)), true, nil
}
