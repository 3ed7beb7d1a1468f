package integrate

import (
	"context"

	"integral-calculator/internal/symbolic"
)

// Tanh integrates c*tanh(u) for linear u as c*log(cosh(u))/a.
func Tanh(ctx context.Context, f symbolic.Expr, x string) (symbolic.Expr, error) {
	n := 0
	e := &engine{ctx: ctx, x: x, manual: true, fresh: &n}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c, rest := splitConstant(f.Simplify(), x)
	name, u, k, ok := funcPower(rest)
	if !ok || name != "tanh" || k != 1 {
		return nil, e.fail(f)
	}
	a, ok := linearArg(u, x)
	if !ok {
		return nil, e.fail(f)
	}
	return symbolic.MulOf(c, div(hyperbolicTable("tanh", u), a)), nil
}

// ExpTrig integrates c*P(x)*exp(u)*T(x), with P a polynomial, u linear and
// T a product of powers of sin and cos of linear arguments, such as
// exp(x)*sin(x)^2 or x*exp(2x)*sin(x)*cos(3x).
func ExpTrig(ctx context.Context, f symbolic.Expr, x string) (symbolic.Expr, error) {
	n := 0
	e := &engine{ctx: ctx, x: x, manual: true, fresh: &n}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c, rest := splitConstant(f.Simplify(), x)
	r, ok, err := e.expTrig(rest)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, e.fail(f)
	}
	return symbolic.MulOf(c, r), nil
}

// hyperbolic integrates powers of tanh.
func (e *engine) hyperbolic(f symbolic.Expr) (symbolic.Expr, bool, error) {
	name, u, k, ok := funcPower(f)
	if !ok || name != "tanh" || k < 1 {
		return nil, false, nil
	}
	a, ok := linearArg(u, e.x)
	if !ok {
		return nil, false, nil
	}
	if k == 1 {
		return div(hyperbolicTable("tanh", u), a), true, nil
	}
	// tanh^k = -tanh^(k-1)/((k-1)a) + ∫tanh^(k-2)
	head := neg(div(symbolic.PowOf(fn("tanh", u), symbolic.N(k-1)), symbolic.MulOf(symbolic.N(k-1), a)))
	rest, err := e.sub(symbolic.PowOf(fn("tanh", u), symbolic.N(k-2)))
	if err != nil {
		return nil, false, err
	}
	return symbolic.AddOf(head, rest), true, nil
}

// expTrig matches P(x)*exp(u)*T(x), where T is a product of powers of sin
// and cos of linear arguments. T is linearized into a sum of single sines
// and cosines and each term is integrated in closed form.
func (e *engine) expTrig(f symbolic.Expr) (symbolic.Expr, bool, error) {
	p, rest, ok := splitPolynomial(f, e.x)
	if !ok || p.IsZero() {
		return nil, false, nil
	}
	var expArg symbolic.Expr
	var trig []symbolic.Expr
	for _, fac := range factorsOf(rest) {
		name, arg, k, ok := funcPower(fac)
		switch {
		case !ok:
			return nil, false, nil
		case name == "exp" && k == 1 && expArg == nil:
			expArg = arg
		case (name == "sin" || name == "cos") && k >= 1:
			trig = append(trig, fac)
		default:
			return nil, false, nil
		}
	}
	if expArg == nil || len(trig) == 0 {
		return nil, false, nil
	}
	a, ok := linearArg(expArg, e.x)
	if !ok {
		return nil, false, nil
	}
	fs, ok := monomial(symbolic.MulOf(trig...), circular, e.x)
	if !ok {
		return nil, false, nil
	}
	sum, ok := linearize(fs, circular)
	if !ok {
		return nil, false, nil
	}

	pe := p.ToExpr(e.x)
	var out []symbolic.Expr
	for _, t := range termsOf(sum) {
		c, g := symbolic.SplitCoeff(t)
		h, isFunc := g.(*symbolic.Func)
		if !isFunc {
			r, err := e.sub(symbolic.MulOf(c, pe, fn("exp", expArg)))
			if err != nil {
				return nil, false, err
			}
			out = append(out, r)
			continue
		}
		b, ok := linearArg(h.Arg(), e.x)
		if !ok {
			return nil, false, nil
		}
		k := expTrigKernel{ctx: e.ctx, x: e.x, u: expArg, v: h.Arg(), a: a, b: b}
		is, ic, err := k.integrate(p)
		if err != nil {
			return nil, false, err
		}
		if h.Name() == "sin" {
			out = append(out, symbolic.MulOf(c, is))
		} else {
			out = append(out, symbolic.MulOf(c, ic))
		}
	}
	return symbolic.AddOf(out...), true, nil
}

type expTrigKernel struct {
	ctx  context.Context
	x    string
	u, v symbolic.Expr
	a, b symbolic.Expr
}

// integrate returns ∫P exp(u) sin(v) and ∫P exp(u) cos(v). With c = a + ib,
// ∫P e^(cx) = e^(cx) Σ (-1)^k P^(k) / c^(k+1), and splitting into real and
// imaginary parts gives
//
//	∫P exp(u) sin(v) = exp(u) (R sin v + S cos v)
//	∫P exp(u) cos(v) = exp(u) (R cos v - S sin v)
//
// where R + iS = Σ (-1)^k P^(k) (a - ib)^(k+1) / (a²+b²)^(k+1).
func (k expTrigKernel) integrate(p symbolic.Poly) (symbolic.Expr, symbolic.Expr, error) {
	m := symbolic.AddOf(sq(k.a), sq(k.b))
	re, im := symbolic.Expr(one), symbolic.Expr(symbolic.N(0))
	sign := symbolic.Expr(one)
	var rs, ss []symbolic.Expr
	for d := p; !d.IsZero(); d = d.Derive() {
		if err := k.ctx.Err(); err != nil {
			return nil, nil, err
		}
		re, im = div(symbolic.AddOf(symbolic.MulOf(re, k.a), symbolic.MulOf(im, k.b)), m),
			div(symbolic.Subtract(symbolic.MulOf(im, k.a), symbolic.MulOf(re, k.b)), m)
		de := d.ToExpr(k.x)
		rs = append(rs, symbolic.MulOf(sign, re, de))
		ss = append(ss, symbolic.MulOf(sign, im, de))
		sign = neg(sign)
	}
	r, s := symbolic.AddOf(rs...), symbolic.AddOf(ss...)
	ex, sn, cs := fn("exp", k.u), fn("sin", k.v), fn("cos", k.v)
	is := symbolic.MulOf(ex, symbolic.AddOf(symbolic.MulOf(r, sn), symbolic.MulOf(s, cs)))
	ic := symbolic.MulOf(ex, symbolic.Subtract(symbolic.MulOf(r, cs), symbolic.MulOf(s, sn)))
	return is, ic, nil
}
