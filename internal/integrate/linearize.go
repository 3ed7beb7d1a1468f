package integrate

import "integral-calculator/internal/symbolic"

// maxLinearFactors bounds the product length linearize will unfold.
const maxLinearFactors = 16

// family names the odd and even members of sin/cos or sinh/cosh.
type family struct {
	odd, even string
	hyper     bool
}

var (
	circular   = family{odd: "sin", even: "cos"}
	hyperbolic = family{odd: "sinh", even: "cosh", hyper: true}
	families   = []family{circular, hyperbolic}
)

// monomial expands f = Π name_i(u_i)^k_i, with every name in fam, every
// k_i a positive integer and every u_i linear in x, into its list of
// factors with repetition.
func monomial(f symbolic.Expr, fam family, x string) ([]*symbolic.Func, bool) {
	var out []*symbolic.Func
	for _, fac := range factorsOf(f) {
		name, arg, k, ok := funcPower(fac)
		if !ok || k < 1 || (name != fam.odd && name != fam.even) {
			return nil, false
		}
		if _, ok := linearArg(arg, x); !ok {
			return nil, false
		}
		if len(out)+int(k) > maxLinearFactors {
			return nil, false
		}
		g, ok := symbolic.FuncOf(name, arg).(*symbolic.Func)
		if !ok {
			return nil, false
		}
		for i := int64(0); i < k; i++ {
			out = append(out, g)
		}
	}
	return out, len(out) > 0
}

// linearize rewrites a product of sines and cosines (or sinh and cosh) as
// a sum of single functions with product-to-sum identities:
//
//	sin A sin B = (cos(A-B) - cos(A+B))/2     sinh A sinh B = (cosh(A+B) - cosh(A-B))/2
//	sin A cos B = (sin(A+B) + sin(A-B))/2     sinh A cosh B = (sinh(A+B) + sinh(A-B))/2
//	cos A cos B = (cos(A-B) + cos(A+B))/2     cosh A cosh B = (cosh(A+B) + cosh(A-B))/2
func linearize(fs []*symbolic.Func, fam family) (symbolic.Expr, bool) {
	acc := symbolic.Expr(one)
	for _, g := range fs {
		var next []symbolic.Expr
		for _, t := range termsOf(acc) {
			r, ok := productToSum(t, g, fam)
			if !ok {
				return nil, false
			}
			next = append(next, r)
		}
		acc = symbolic.AddOf(next...)
	}
	return acc, true
}

func termsOf(e symbolic.Expr) []symbolic.Expr {
	if a, ok := e.(*symbolic.Add); ok {
		return a.Terms()
	}
	return []symbolic.Expr{e}
}

// productToSum multiplies the term c*h(A), or the constant c, by g(B).
func productToSum(t symbolic.Expr, g *symbolic.Func, fam family) (symbolic.Expr, bool) {
	c, rest := symbolic.SplitCoeff(t)
	if symbolic.IsOne(rest) {
		return symbolic.MulOf(c, g), true
	}
	h, ok := rest.(*symbolic.Func)
	if !ok {
		return nil, false
	}
	a, b := h.Arg(), g.Arg()
	sum, diff := symbolic.AddOf(a, b), symbolic.Subtract(a, b)
	half := symbolic.MulOf(c, symbolic.Q(1, 2))
	odd := func(u symbolic.Expr) symbolic.Expr { return fn(fam.odd, u) }
	even := func(u symbolic.Expr) symbolic.Expr { return fn(fam.even, u) }

	var r symbolic.Expr
	switch {
	case h.Name() == fam.odd && g.Name() == fam.odd:
		if fam.hyper {
			r = symbolic.Subtract(even(sum), even(diff))
		} else {
			r = symbolic.Subtract(even(diff), even(sum))
		}
	case h.Name() == fam.odd && g.Name() == fam.even:
		r = symbolic.AddOf(odd(sum), odd(diff))
	case h.Name() == fam.even && g.Name() == fam.odd:
		r = symbolic.Subtract(odd(sum), odd(diff))
	case h.Name() == fam.even && g.Name() == fam.even:
		r = symbolic.AddOf(even(diff), even(sum))
	default:
		return nil, false
	}
	return symbolic.MulOf(half, r), true
}

// trigProducts integrates P(x) times a product of sines and cosines, or of
// sinh and cosh, with linear arguments by linearizing the product. It
// covers mixed arguments such as cos(2x)*sin(3x) that sinCos cannot.
func (e *engine) trigProducts(f symbolic.Expr) (symbolic.Expr, bool, error) {
	p, rest, ok := splitPolynomial(f, e.x)
	if !ok || p.IsZero() {
		return nil, false, nil
	}
	for _, fam := range families {
		fs, ok := monomial(rest, fam, e.x)
		if !ok || len(fs) < 2 {
			continue
		}
		sum, ok := linearize(fs, fam)
		if !ok {
			continue
		}
		r, err := e.sub(symbolic.Expand(symbolic.MulOf(p.ToExpr(e.x), sum)))
		return r, err == nil, err
	}
	return nil, false, nil
}
