package symbolic

import "math/big"

// Together returns numerator and denominator of e over a common
// denominator. Nothing is cancelled.
func Together(e Expr) (num, den Expr) {
	switch v := e.(type) {
	case *Num:
		return v.Numerator(), v.Denominator()
	case *Add:
		num, den = N(0), N(1)
		for _, t := range v.terms {
			n, d := Together(t)
			if Equal(d, den) {
				num = AddOf(num, n)
				continue
			}
			num = AddOf(MulOf(num, d), MulOf(n, den))
			den = MulOf(den, d)
		}
		return num, den
	case *Mul:
		num, den = N(1), N(1)
		for _, f := range v.factors {
			n, d := Together(f)
			num = MulOf(num, n)
			den = MulOf(den, d)
		}
		return num, den
	case *Pow:
		if n, ok := v.exp.(*Num); ok && n.IsNeg() {
			k := numNeg(n)
			if k.IsInt() {
				bn, bd := Together(v.base)
				return PowOf(bd, k), PowOf(bn, k)
			}
			return N(1), PowOf(v.base, k)
		}
	}
	return e, N(1)
}

// Cancel rewrites a rational function of x as p/q with gcd(p, q) = 1 and q
// monic. When q is constant the result is the expanded polynomial. Other
// expressions are returned unchanged.
func Cancel(e Expr, x string) Expr {
	n, d := Together(e)
	pn, ok := PolyOf(Expand(n), x)
	if !ok {
		return e
	}
	pd, ok := PolyOf(Expand(d), x)
	if !ok || pd.IsZero() {
		return e
	}
	if pd.Deg() > 0 {
		g := pn.GCD(pd)
		if g.Deg() > 0 {
			pn, _ = pn.DivMod(g)
			pd, _ = pd.DivMod(g)
		}
	}
	lc := new(big.Rat).Inv(pd.LC())
	pn, pd = pn.Scale(lc), pd.Scale(lc)
	if pd.Deg() == 0 {
		return pn.ToExpr(x)
	}
	return MulOf(pn.ToExpr(x), PowOf(pd.ToExpr(x), N(-1)))
}

// Factor factors the numerator and denominator of a rational function of x
// over the rationals: integer content, linear factors from rational roots
// with multiplicity, and the remaining irreducible part. Other expressions
// are returned unchanged.
func Factor(e Expr, x string) Expr {
	n, d := Together(e)
	pn, ok := PolyOf(Expand(n), x)
	if !ok {
		return e
	}
	pd, ok := PolyOf(Expand(d), x)
	if !ok || pd.IsZero() {
		return e
	}
	return MulOf(factorPoly(pn, x), PowOf(factorPoly(pd, x), N(-1)))
}

func factorPoly(p Poly, x string) Expr {
	if p.Deg() < 1 {
		return p.ToExpr(x)
	}
	factors := []Expr{NRat(p.LC())}
	rest := p.Monic()
	for _, r := range rest.RationalRoots() {
		m := rest.RootMultiplicity(r)
		for i := 0; i < m; i++ {
			rest, _ = rest.DivMod(Poly{new(big.Rat).Neg(r), big.NewRat(1, 1)})
		}
		// (q*x - p) keeps integer coefficients for a root p/q.
		q := new(big.Rat).SetInt(r.Denom())
		lin := Poly{new(big.Rat).Neg(new(big.Rat).SetInt(r.Num())), q}
		factors = append(factors, PowOf(lin.ToExpr(x), N(int64(m))))
		factors = append(factors, PowOf(NRat(q), N(int64(-m))))
	}
	if rest.Deg() > 0 {
		factors = append(factors, rest.ToExpr(x))
	}
	return MulOf(factors...)
}
