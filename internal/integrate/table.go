package integrate

import (
	"math/big"

	"integral-calculator/internal/symbolic"
)

var (
	one = symbolic.N(1)
	two = symbolic.N(2)
)

func neg(e symbolic.Expr) symbolic.Expr             { return symbolic.Neg(e) }
func div(a, b symbolic.Expr) symbolic.Expr          { return symbolic.Div(a, b) }
func fn(name string, u symbolic.Expr) symbolic.Expr { return symbolic.FuncOf(name, u) }
func sq(u symbolic.Expr) symbolic.Expr              { return symbolic.PowOf(u, two) }

// table handles single functions and powers of a linear argument.
func (e *engine) table(f symbolic.Expr) (symbolic.Expr, bool, error) {
	switch v := f.(type) {
	case *symbolic.Sym:
		return div(sq(v), two), true, nil
	case *symbolic.Func:
		u := v.Arg()
		a, ok := linearArg(u, e.x)
		if !ok {
			return nil, false, nil
		}
		r := funcTable(v.Name(), u)
		if r == nil {
			return nil, false, nil
		}
		return div(r, a), true, nil
	case *symbolic.Pow:
		return e.powTable(v)
	}
	return nil, false, nil
}

// funcTable returns the antiderivative of name(u) with respect to u, or nil.
func funcTable(name string, u symbolic.Expr) symbolic.Expr {
	switch name {
	case "sin":
		return neg(fn("cos", u))
	case "cos":
		return fn("sin", u)
	case "tan":
		return neg(fn("log", fn("cos", u)))
	case "sec":
		return fn("log", symbolic.AddOf(fn("sec", u), fn("tan", u)))
	case "csc":
		return neg(fn("log", symbolic.AddOf(fn("csc", u), fn("cot", u))))
	case "cot":
		return fn("log", fn("sin", u))
	case "exp":
		return fn("exp", u)
	case "log":
		return symbolic.Subtract(symbolic.MulOf(u, fn("log", u)), u)
	case "sinh":
		return fn("cosh", u)
	case "cosh":
		return fn("sinh", u)
	case "coth":
		return fn("log", fn("sinh", u))
	case "sech":
		return fn("atan", fn("sinh", u))
	case "csch":
		return fn("log", fn("tanh", div(u, two)))
	case "asinh":
		return symbolic.Subtract(symbolic.MulOf(u, fn("asinh", u)), symbolic.Sqrt(symbolic.AddOf(sq(u), one)))
	case "acosh":
		return symbolic.Subtract(symbolic.MulOf(u, fn("acosh", u)), symbolic.Sqrt(symbolic.Subtract(sq(u), one)))
	case "atanh":
		return symbolic.AddOf(symbolic.MulOf(u, fn("atanh", u)), div(fn("log", symbolic.Subtract(one, sq(u))), two))
	case "asin":
		return symbolic.AddOf(symbolic.MulOf(u, fn("asin", u)), symbolic.Sqrt(symbolic.Subtract(one, sq(u))))
	case "acos":
		return symbolic.Subtract(symbolic.MulOf(u, fn("acos", u)), symbolic.Sqrt(symbolic.Subtract(one, sq(u))))
	case "atan":
		return symbolic.Subtract(symbolic.MulOf(u, fn("atan", u)), div(fn("log", symbolic.AddOf(sq(u), one)), two))
	}
	return nil
}

// hyperbolicTable covers the functions only the manual rule set integrates.
func hyperbolicTable(name string, u symbolic.Expr) symbolic.Expr {
	if name == "tanh" {
		return fn("log", fn("cosh", u))
	}
	return nil
}

func (e *engine) powTable(p *symbolic.Pow) (symbolic.Expr, bool, error) {
	base, exp := p.Base(), p.Exp()

	// u^n with u linear and n constant.
	if symbolic.FreeOf(exp, e.x) {
		if a, ok := linearArg(base, e.x); ok {
			if n, isNum := exp.(*symbolic.Num); isNum && n.IsNegOne() {
				return div(fn("log", base), a), true, nil
			}
			np1 := symbolic.AddOf(exp, one)
			return div(symbolic.PowOf(base, np1), symbolic.MulOf(a, np1)), true, nil
		}
	}

	// b^u with b constant and u linear.
	if symbolic.FreeOf(base, e.x) {
		if a, ok := linearArg(exp, e.x); ok {
			return div(p, symbolic.MulOf(a, fn("log", base))), true, nil
		}
	}

	n, isNum := exp.(*symbolic.Num)
	if !isNum {
		return nil, false, nil
	}

	// sec(u)^2, csc(u)^2 and their hyperbolic counterparts.
	if f, ok := base.(*symbolic.Func); ok && n.String() == "2" {
		if a, ok := linearArg(f.Arg(), e.x); ok {
			switch f.Name() {
			case "sec":
				return div(fn("tan", f.Arg()), a), true, nil
			case "csc":
				return div(neg(fn("cot", f.Arg())), a), true, nil
			case "sech":
				return div(fn("tanh", f.Arg()), a), true, nil
			case "csch":
				return div(neg(fn("coth", f.Arg())), a), true, nil
			}
		}
	}

	// (c + k x^2)^(-1/2)
	if n.String() == "-1/2" {
		if r, ok := inverseSqrtQuadratic(base, e.x); ok {
			return r, true, nil
		}
	}
	return nil, false, nil
}

// inverseSqrtQuadratic integrates 1/sqrt(c + k*x^2) to asin or log form.
func inverseSqrtQuadratic(base symbolic.Expr, x string) (symbolic.Expr, bool) {
	p, ok := symbolic.PolyOf(base, x)
	if !ok || p.Deg() != 2 || p.Coeff(1).Sign() != 0 {
		return nil, false
	}
	c, k := symbolic.NRat(p.Coeff(0)), symbolic.NRat(p.Coeff(2))
	xs := symbolic.S(x)
	switch {
	case c.IsPos() && k.IsNeg():
		// asin(x*sqrt(-k/c)) / sqrt(-k)
		mk := symbolic.Neg(k)
		arg := symbolic.MulOf(xs, symbolic.Sqrt(div(mk, c)))
		return div(fn("asin", arg), symbolic.Sqrt(mk)), true
	case k.IsPos():
		// log(sqrt(k)*x + sqrt(k*x^2 + c)) / sqrt(k)
		sk := symbolic.Sqrt(k)
		inner := symbolic.AddOf(symbolic.MulOf(sk, xs), symbolic.Sqrt(base))
		return div(fn("log", inner), sk), true
	}
	return nil, false
}

// polynomial integrates a polynomial in x term by term.
func (e *engine) polynomial(f symbolic.Expr) (symbolic.Expr, bool, error) {
	p, ok := symbolic.PolyOf(f, e.x)
	if !ok {
		return nil, false, nil
	}
	return polyIntegral(p).ToExpr(e.x), true, nil
}

func polyIntegral(p symbolic.Poly) symbolic.Poly {
	out := make(symbolic.Poly, len(p)+1)
	out[0] = new(big.Rat)
	for i, c := range p {
		out[i+1] = new(big.Rat).Quo(c, big.NewRat(int64(i+1), 1))
	}
	return out
}
