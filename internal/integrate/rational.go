package integrate

import (
	"math/big"

	"integral-calculator/internal/symbolic"
)

// rational integrates p(x)/q(x) with rational coefficients: polynomial
// division, then partial fractions over the rational roots of q, then a
// log/atan pair for a remaining irreducible quadratic, its powers, or a
// quartic x^4 + p x^2 + q that splits into two real quadratics.
func (e *engine) rational(f symbolic.Expr) (symbolic.Expr, bool, error) {
	n, d := symbolic.Together(f)
	pn, ok := symbolic.PolyOf(symbolic.Expand(n), e.x)
	if !ok {
		return nil, false, nil
	}
	pd, ok := symbolic.PolyOf(symbolic.Expand(d), e.x)
	if !ok || pd.Deg() < 1 {
		return nil, false, nil
	}
	// Work with a monic denominator.
	lc := new(big.Rat).Inv(pd.LC())
	pn, pd = pn.Scale(lc), pd.Scale(lc)

	q, r := pn.DivMod(pd)
	proper, ok := properFraction(r, pd, e.x)
	if !ok {
		return nil, false, e.fail(f)
	}
	return symbolic.AddOf(polyIntegral(q).ToExpr(e.x), proper), true, nil
}

// taylorShift returns the coefficients of p in powers of (x - r).
func taylorShift(p symbolic.Poly, r *big.Rat) []*big.Rat {
	lin := linearPoly(r)
	var out []*big.Rat
	for !p.IsZero() {
		q, rem := p.DivMod(lin)
		out = append(out, rem.Coeff(0))
		p = q
	}
	return out
}

// linearPoly returns x - r.
func linearPoly(r *big.Rat) symbolic.Poly {
	return symbolic.Poly{new(big.Rat).Neg(r), big.NewRat(1, 1)}
}

func ratAt(cs []*big.Rat, i int) *big.Rat {
	if i < len(cs) {
		return cs[i]
	}
	return new(big.Rat)
}

// properFraction integrates r/d with deg r < deg d and d monic.
func properFraction(r, d symbolic.Poly, x string) (symbolic.Expr, bool) {
	if r.IsZero() {
		return symbolic.N(0), true
	}
	roots := d.RationalRoots()
	if len(roots) > 0 {
		return splitRoot(r, d, roots[0], x)
	}
	if d.Deg() == 2 {
		return quadratic(r, d, x), true
	}
	if q, m, ok := quadraticPower(d); ok {
		return repeatedQuadratic(r, q, m, x), true
	}
	return biquadratic(r, d, x)
}

// splitRoot peels off the partial fractions c_j/(x - root)^j and recurses
// on what remains.
func splitRoot(r, d symbolic.Poly, root *big.Rat, x string) (symbolic.Expr, bool) {
	m := d.RootMultiplicity(root)
	lin := linearPoly(root)
	linM := symbolic.Poly{big.NewRat(1, 1)}
	for i := 0; i < m; i++ {
		linM = linM.Mul(lin)
	}
	rest, _ := d.DivMod(linM)

	// Series of r/rest in t = x - root up to t^(m-1).
	rt, st := taylorShift(r, root), taylorShift(rest, root)
	s0 := ratAt(st, 0)
	cs := make([]*big.Rat, m)
	for k := 0; k < m; k++ {
		v := new(big.Rat).Set(ratAt(rt, k))
		for i := 1; i <= k; i++ {
			v.Sub(v, new(big.Rat).Mul(ratAt(st, i), cs[k-i]))
		}
		cs[k] = v.Quo(v, s0)
	}

	t := lin.ToExpr(x)
	var terms []symbolic.Expr
	series := symbolic.Poly(nil)
	tk := symbolic.Poly{big.NewRat(1, 1)}
	for k, c := range cs {
		series = series.Add(tk.Scale(c))
		tk = tk.Mul(lin)
		if c.Sign() == 0 {
			continue
		}
		j := m - k
		cn := symbolic.NRat(c)
		if j == 1 {
			terms = append(terms, symbolic.MulOf(cn, fn("log", t)))
		} else {
			// c * t^(1-j) / (1-j)
			e := int64(1 - j)
			terms = append(terms, symbolic.MulOf(cn, symbolic.PowOf(t, symbolic.N(e)), symbolic.Q(1, e)))
		}
	}

	remainder := r.Sub(rest.Mul(series))
	s, _ := remainder.DivMod(linM)
	if rest.Deg() > 0 && !s.IsZero() {
		tail, ok := properFraction(s, rest, x)
		if !ok {
			return nil, false
		}
		terms = append(terms, tail)
	}
	return symbolic.AddOf(terms...), true
}

// quadratic integrates (alpha*x + beta)/(x^2 + b*x + c) for an irreducible
// denominator.
func quadratic(r, d symbolic.Poly, x string) symbolic.Expr {
	alpha, beta := r.Coeff(1), r.Coeff(0)
	b, c := d.Coeff(1), d.Coeff(0)
	xs := symbolic.S(x)
	dx := d.ToExpr(x)

	var terms []symbolic.Expr
	if alpha.Sign() != 0 {
		half := new(big.Rat).Quo(alpha, big.NewRat(2, 1))
		terms = append(terms, symbolic.MulOf(symbolic.NRat(half), fn("log", dx)))
	}
	// k = beta - alpha*b/2
	k := new(big.Rat).Sub(beta, new(big.Rat).Quo(new(big.Rat).Mul(alpha, b), big.NewRat(2, 1)))
	if k.Sign() == 0 {
		return symbolic.AddOf(terms...)
	}
	// D = b^2 - 4c
	disc := new(big.Rat).Sub(new(big.Rat).Mul(b, b), new(big.Rat).Mul(big.NewRat(4, 1), c))
	lin := symbolic.AddOf(symbolic.MulOf(two, xs), symbolic.NRat(b))
	kn := symbolic.NRat(k)
	if disc.Sign() < 0 {
		s := symbolic.Sqrt(symbolic.NRat(new(big.Rat).Neg(disc)))
		terms = append(terms, symbolic.MulOf(kn, two, symbolic.PowOf(s, symbolic.N(-1)), fn("atan", div(lin, s))))
	} else {
		s := symbolic.Sqrt(symbolic.NRat(disc))
		logs := symbolic.Subtract(
			fn("log", symbolic.Subtract(lin, s)),
			fn("log", symbolic.AddOf(lin, s)),
		)
		terms = append(terms, symbolic.MulOf(kn, symbolic.PowOf(s, symbolic.N(-1)), logs))
	}
	return symbolic.AddOf(terms...)
}

// quadraticPower recognizes a monic d = q^m for a quadratic q without real
// roots and m >= 2.
func quadraticPower(d symbolic.Poly) (symbolic.Poly, int, bool) {
	deg := d.Deg()
	if deg < 4 || deg%2 != 0 {
		return nil, 0, false
	}
	m := deg / 2
	mr := big.NewRat(int64(m), 1)
	// (x^2 + b x + c)^m = x^2m + m b x^(2m-1) + (m c + C(m,2) b^2) x^(2m-2) + ...
	b := new(big.Rat).Quo(d.Coeff(deg-1), mr)
	pairs := big.NewRat(int64(m*(m-1)/2), 1)
	c := new(big.Rat).Sub(d.Coeff(deg-2), new(big.Rat).Mul(pairs, new(big.Rat).Mul(b, b)))
	c.Quo(c, mr)
	q := symbolic.Poly{c, b, big.NewRat(1, 1)}
	disc := new(big.Rat).Sub(new(big.Rat).Mul(b, b), new(big.Rat).Mul(big.NewRat(4, 1), c))
	if disc.Sign() >= 0 {
		return nil, 0, false
	}
	qm := symbolic.Poly{big.NewRat(1, 1)}
	for i := 0; i < m; i++ {
		qm = qm.Mul(q)
	}
	if !qm.Sub(d).IsZero() {
		return nil, 0, false
	}
	return q, m, true
}

// repeatedQuadratic integrates r/q^m by writing r in base q,
// r = Σ (α_j x + β_j) q^j, and integrating each (α x + β)/q^k.
func repeatedQuadratic(r, q symbolic.Poly, m int, x string) symbolic.Expr {
	var terms []symbolic.Expr
	for j := 0; j < m && !r.IsZero(); j++ {
		next, rem := r.DivMod(q)
		terms = append(terms, quadraticPowerIntegral(rem.Coeff(1), rem.Coeff(0), q, m-j, x))
		r = next
	}
	return symbolic.AddOf(terms...)
}

// quadraticPowerIntegral integrates (alpha x + beta)/q^k, q = x^2 + b x + c
// with 4c - b^2 > 0, using
//
//	∫(2x+b)/q^k = q^(1-k)/(1-k)
//	I_k = (2x+b)/((k-1) Δ q^(k-1)) + 2(2k-3)/((k-1) Δ) I_(k-1),  Δ = 4c - b^2
func quadraticPowerIntegral(alpha, beta *big.Rat, q symbolic.Poly, k int, x string) symbolic.Expr {
	if k == 1 {
		return quadratic(symbolic.Poly{beta, alpha}, q, x)
	}
	b, c := q.Coeff(1), q.Coeff(0)
	qx := q.ToExpr(x)
	lin := symbolic.AddOf(symbolic.MulOf(two, symbolic.S(x)), symbolic.NRat(b))
	delta := symbolic.NRat(new(big.Rat).Sub(new(big.Rat).Mul(big.NewRat(4, 1), c), new(big.Rat).Mul(b, b)))

	var terms []symbolic.Expr
	if alpha.Sign() != 0 {
		// alpha/2 * q^(1-k)/(1-k)
		e := int64(1 - k)
		terms = append(terms, symbolic.MulOf(symbolic.NRat(alpha), symbolic.Q(1, 2*e), symbolic.PowOf(qx, symbolic.N(e))))
	}
	kr := new(big.Rat).Sub(beta, new(big.Rat).Quo(new(big.Rat).Mul(alpha, b), big.NewRat(2, 1)))
	if kr.Sign() == 0 {
		return symbolic.AddOf(terms...)
	}
	km1 := symbolic.N(int64(k - 1))
	head := div(lin, symbolic.MulOf(km1, delta, symbolic.PowOf(qx, km1)))
	coeff := div(symbolic.N(int64(2*(2*k-3))), symbolic.MulOf(km1, delta))
	tail := quadraticPowerIntegral(new(big.Rat), big.NewRat(1, 1), q, k-1, x)
	terms = append(terms, symbolic.MulOf(symbolic.NRat(kr), symbolic.AddOf(head, symbolic.MulOf(coeff, tail))))
	return symbolic.AddOf(terms...)
}

// biquadratic integrates r/d for d = x^4 + p x^2 + q0 without rational
// roots. d splits into (x^2 + a)(x^2 + b) when p^2 - 4 q0 > 0, and into
// (x^2 + s x + t)(x^2 - s x + t) with t = sqrt(q0), s = sqrt(2t - p)
// otherwise.
func biquadratic(r, d symbolic.Poly, x string) (symbolic.Expr, bool) {
	if d.Deg() != 4 || d.Coeff(3).Sign() != 0 || d.Coeff(1).Sign() != 0 {
		return nil, false
	}
	p, q0 := symbolic.NRat(d.Coeff(2)), symbolic.NRat(d.Coeff(0))
	rc := func(i int) symbolic.Expr { return symbolic.NRat(r.Coeff(i)) }
	r0, r1, r2, r3 := rc(0), rc(1), rc(2), rc(3)

	disc := symbolic.Subtract(sq(p), symbolic.MulOf(symbolic.N(4), q0))
	if positive(disc) {
		// y^2 + p y + q0 = (y + a)(y + b)
		root := symbolic.Sqrt(disc)
		a := div(symbolic.Subtract(p, root), two)
		b := div(symbolic.AddOf(p, root), two)
		if !positive(a) || !positive(b) {
			return nil, false
		}
		// (A x + B)(x^2 + b) + (C x + D)(x^2 + a) = r
		ba := symbolic.Subtract(b, a)
		A := div(symbolic.Subtract(r1, symbolic.MulOf(a, r3)), ba)
		B := div(symbolic.Subtract(r0, symbolic.MulOf(a, r2)), ba)
		C, D := symbolic.Subtract(r3, A), symbolic.Subtract(r2, B)
		zero := symbolic.N(0)
		return symbolic.AddOf(
			quadraticExpr(A, B, zero, a, x),
			quadraticExpr(C, D, zero, b, x),
		), true
	}

	if !positive(q0) {
		return nil, false
	}
	t := symbolic.Sqrt(q0)
	s2 := symbolic.Subtract(symbolic.MulOf(two, t), p)
	if !positive(s2) || !positive(symbolic.AddOf(symbolic.MulOf(two, t), p)) {
		return nil, false
	}
	s := symbolic.Sqrt(s2)
	// (A x + B)(x^2 - s x + t) + (C x + D)(x^2 + s x + t) = r
	u := div(symbolic.Subtract(r2, div(r0, t)), s)
	w := div(symbolic.Subtract(r1, symbolic.MulOf(t, r3)), s)
	A := div(symbolic.Subtract(r3, u), two)
	C := div(symbolic.AddOf(r3, u), two)
	B := div(symbolic.Subtract(div(r0, t), w), two)
	D := div(symbolic.AddOf(div(r0, t), w), two)
	return symbolic.AddOf(
		quadraticExpr(A, B, s, t, x),
		quadraticExpr(C, D, neg(s), t, x),
	), true
}

// quadraticExpr integrates (alpha x + beta)/(x^2 + b x + c) for symbolic
// coefficients with 4c - b^2 > 0.
func quadraticExpr(alpha, beta, b, c symbolic.Expr, x string) symbolic.Expr {
	xs := symbolic.S(x)
	q := symbolic.AddOf(sq(xs), symbolic.MulOf(b, xs), c)
	root := symbolic.Sqrt(symbolic.Subtract(symbolic.MulOf(symbolic.N(4), c), sq(b)))
	k := symbolic.Subtract(beta, div(symbolic.MulOf(alpha, b), two))
	return symbolic.AddOf(
		symbolic.MulOf(div(alpha, two), fn("log", q)),
		symbolic.MulOf(two, k, symbolic.PowOf(root, symbolic.N(-1)),
			fn("atan", div(symbolic.AddOf(symbolic.MulOf(two, xs), b), root))),
	)
}

// positive reports whether a constant expression evaluates above zero.
func positive(e symbolic.Expr) bool {
	v, ok := e.Eval(nil)
	return ok && v > 0
}
