package symbolic

import "math/big"

// Poly is a univariate polynomial with rational coefficients. Index i holds
// the coefficient of x^i. The zero polynomial has no coefficients.
type Poly []*big.Rat

// maxPolyDegree bounds the degree PolyOf will build.
const maxPolyDegree = 64

// PolyOf converts e into a polynomial in x. ok is false when e is not a
// polynomial with rational coefficients.
func PolyOf(e Expr, x string) (Poly, bool) {
	switch v := e.(type) {
	case *Num:
		return Poly{v.Rat()}.trim(), true
	case *Sym:
		if v.name == x {
			return Poly{new(big.Rat), big.NewRat(1, 1)}, true
		}
		return nil, false
	case *Add:
		var sum Poly
		for _, t := range v.terms {
			p, ok := PolyOf(t, x)
			if !ok {
				return nil, false
			}
			sum = sum.Add(p)
		}
		return sum, true
	case *Mul:
		prod := Poly{big.NewRat(1, 1)}
		for _, f := range v.factors {
			p, ok := PolyOf(f, x)
			if !ok {
				return nil, false
			}
			prod = prod.Mul(p)
			if prod.Deg() > maxPolyDegree {
				return nil, false
			}
		}
		return prod, true
	case *Pow:
		n, ok := v.exp.(*Num)
		if !ok {
			return nil, false
		}
		k, ok := n.Int64()
		if !ok || k < 0 || k > maxPolyDegree {
			return nil, false
		}
		base, ok := PolyOf(v.base, x)
		if !ok || int64(base.Deg())*k > maxPolyDegree {
			return nil, false
		}
		out := Poly{big.NewRat(1, 1)}
		for i := int64(0); i < k; i++ {
			out = out.Mul(base)
		}
		return out, true
	}
	return nil, false
}

// PolyFromInts builds a polynomial from integer coefficients, lowest degree
// first.
func PolyFromInts(cs ...int64) Poly {
	p := make(Poly, len(cs))
	for i, c := range cs {
		p[i] = big.NewRat(c, 1)
	}
	return p.trim()
}

func (p Poly) trim() Poly {
	n := len(p)
	for n > 0 && p[n-1].Sign() == 0 {
		n--
	}
	return p[:n]
}

func (p Poly) coeff(i int) *big.Rat {
	if i < len(p) {
		return p[i]
	}
	return new(big.Rat)
}

// Deg returns the degree, or -1 for the zero polynomial.
func (p Poly) Deg() int { return len(p.trim()) - 1 }

// IsZero reports whether p is the zero polynomial.
func (p Poly) IsZero() bool { return p.Deg() < 0 }

// LC returns the leading coefficient.
func (p Poly) LC() *big.Rat {
	q := p.trim()
	if len(q) == 0 {
		return new(big.Rat)
	}
	return q[len(q)-1]
}

// Coeff returns the coefficient of x^i.
func (p Poly) Coeff(i int) *big.Rat { return new(big.Rat).Set(p.coeff(i)) }

func (p Poly) Add(q Poly) Poly {
	n := len(p)
	if len(q) > n {
		n = len(q)
	}
	out := make(Poly, n)
	for i := range out {
		out[i] = new(big.Rat).Add(p.coeff(i), q.coeff(i))
	}
	return out.trim()
}

func (p Poly) Sub(q Poly) Poly { return p.Add(q.Scale(big.NewRat(-1, 1))) }

func (p Poly) Scale(c *big.Rat) Poly {
	out := make(Poly, len(p))
	for i, v := range p {
		out[i] = new(big.Rat).Mul(v, c)
	}
	return out.trim()
}

func (p Poly) Mul(q Poly) Poly {
	if p.IsZero() || q.IsZero() {
		return nil
	}
	out := make(Poly, len(p)+len(q)-1)
	for i := range out {
		out[i] = new(big.Rat)
	}
	t := new(big.Rat)
	for i, a := range p {
		for j, b := range q {
			out[i+j].Add(out[i+j], t.Mul(a, b))
		}
	}
	return out.trim()
}

// DivMod returns quotient and remainder of p / d. It panics if d is zero.
func (p Poly) DivMod(d Poly) (Poly, Poly) {
	d = d.trim()
	if len(d) == 0 {
		panic("symbolic: polynomial division by zero")
	}
	r := append(Poly(nil), p.trim()...)
	for i := range r {
		r[i] = new(big.Rat).Set(r[i])
	}
	if len(r) < len(d) {
		return nil, r
	}
	q := make(Poly, len(r)-len(d)+1)
	for i := range q {
		q[i] = new(big.Rat)
	}
	lc := d[len(d)-1]
	for len(r) >= len(d) && len(r) > 0 {
		shift := len(r) - len(d)
		c := new(big.Rat).Quo(r[len(r)-1], lc)
		q[shift] = c
		for i, dv := range d {
			r[shift+i].Sub(r[shift+i], new(big.Rat).Mul(c, dv))
		}
		r = r[:len(r)-1].trim()
	}
	return q.trim(), r
}

// Monic scales p so its leading coefficient is one.
func (p Poly) Monic() Poly {
	if p.IsZero() {
		return nil
	}
	return p.Scale(new(big.Rat).Inv(p.LC()))
}

// GCD returns the monic greatest common divisor.
func (p Poly) GCD(q Poly) Poly {
	a, b := p.trim(), q.trim()
	for !b.IsZero() {
		_, r := a.DivMod(b)
		a, b = b, r
	}
	return a.Monic()
}

// Derive returns dp/dx.
func (p Poly) Derive() Poly {
	if len(p) <= 1 {
		return nil
	}
	out := make(Poly, len(p)-1)
	for i := 1; i < len(p); i++ {
		out[i-1] = new(big.Rat).Mul(p[i], big.NewRat(int64(i), 1))
	}
	return out.trim()
}

// Eval evaluates p at v by Horner's rule.
func (p Poly) Eval(v *big.Rat) *big.Rat {
	out := new(big.Rat)
	for i := len(p) - 1; i >= 0; i-- {
		out.Mul(out, v)
		out.Add(out, p[i])
	}
	return out
}

// maxRootSearch bounds the constant and leading terms whose divisors are
// enumerated when searching for rational roots.
const maxRootSearch = 1 << 20

// RationalRoots returns the distinct rational roots of p in ascending order.
func (p Poly) RationalRoots() []*big.Rat {
	p = p.trim()
	if p.Deg() < 1 {
		return nil
	}
	var roots []*big.Rat
	// Strip factors of x.
	for len(p) > 0 && p[0].Sign() == 0 {
		if len(roots) == 0 {
			roots = append(roots, new(big.Rat))
		}
		p = p[1:]
	}
	if p.Deg() < 1 {
		return sortRats(roots)
	}
	ints := p.integerCoeffs()
	a0 := new(big.Int).Abs(ints[0])
	an := new(big.Int).Abs(ints[len(ints)-1])
	if !a0.IsInt64() || !an.IsInt64() || a0.Int64() > maxRootSearch || an.Int64() > maxRootSearch {
		return sortRats(roots)
	}
	seen := map[string]bool{}
	for _, num := range divisors(a0.Int64()) {
		for _, den := range divisors(an.Int64()) {
			for _, sign := range []int64{1, -1} {
				c := big.NewRat(sign*num, den)
				if seen[c.String()] {
					continue
				}
				seen[c.String()] = true
				if p.Eval(c).Sign() == 0 {
					roots = append(roots, c)
				}
			}
		}
	}
	return sortRats(roots)
}

// integerCoeffs scales p by the lcm of its denominators.
func (p Poly) integerCoeffs() []*big.Int {
	l := big.NewInt(1)
	for _, c := range p {
		d := c.Denom()
		g := new(big.Int).GCD(nil, nil, l, d)
		l.Mul(l, new(big.Int).Quo(d, g))
	}
	out := make([]*big.Int, len(p))
	for i, c := range p {
		v := new(big.Int).Mul(c.Num(), l)
		out[i] = v.Quo(v, c.Denom())
	}
	return out
}

func divisors(n int64) []int64 {
	var out []int64
	for i := int64(1); i*i <= n; i++ {
		if n%i == 0 {
			out = append(out, i)
			if i != n/i {
				out = append(out, n/i)
			}
		}
	}
	return out
}

func sortRats(rs []*big.Rat) []*big.Rat {
	for i := 1; i < len(rs); i++ {
		for j := i; j > 0 && rs[j].Cmp(rs[j-1]) < 0; j-- {
			rs[j], rs[j-1] = rs[j-1], rs[j]
		}
	}
	return rs
}

// RootMultiplicity returns how many times (x - r) divides p.
func (p Poly) RootMultiplicity(r *big.Rat) int {
	lin := Poly{new(big.Rat).Neg(r), big.NewRat(1, 1)}
	m := 0
	for !p.IsZero() {
		q, rem := p.DivMod(lin)
		if !rem.IsZero() {
			break
		}
		p = q
		m++
	}
	return m
}

// ToExpr converts p back into an expression in x.
func (p Poly) ToExpr(x string) Expr {
	var terms []Expr
	for i, c := range p {
		if c.Sign() == 0 {
			continue
		}
		terms = append(terms, MulOf(NRat(c), PowOf(S(x), N(int64(i)))))
	}
	return AddOf(terms...)
}
