package symbolic

import "strings"

// Mul is a product of factors. A numeric coefficient, when present, is the
// first factor.
type Mul struct{ factors []Expr }

// MulOf returns the canonical product of factors.
func MulOf(factors ...Expr) Expr { return (&Mul{factors: factors}).Simplify() }

// Factors returns the multiplicands.
func (m *Mul) Factors() []Expr { return m.factors }

type powTerm struct {
	base Expr
	exps []Expr
	orig Expr
}

func (m *Mul) Simplify() Expr {
	queue := append([]Expr(nil), m.factors...)
	coeff := N(1)
	index := map[string]int{}
	var terms []powTerm
	var expArgs []Expr

	for len(queue) > 0 {
		f := queue[0].Simplify()
		queue = queue[1:]
		switch v := f.(type) {
		case *Num:
			coeff = numMul(coeff, v)
			continue
		case *Mul:
			queue = append(queue, v.factors...)
			continue
		case *Func:
			if v.name == "exp" {
				expArgs = append(expArgs, v.arg)
				continue
			}
		}
		base, exp := f, Expr(N(1))
		if p, ok := f.(*Pow); ok {
			base, exp = p.base, p.exp
		}
		key := base.String()
		if i, ok := index[key]; ok {
			terms[i].exps = append(terms[i].exps, exp)
			terms[i].orig = nil
			continue
		}
		index[key] = len(terms)
		terms = append(terms, powTerm{base: base, exps: []Expr{exp}, orig: f})
	}
	if coeff.IsZero() {
		return N(0)
	}

	var out []Expr
	absorb := func(r Expr) {
		switch v := r.(type) {
		case *Num:
			coeff = numMul(coeff, v)
		case *Mul:
			for _, f := range v.factors {
				if n, ok := f.(*Num); ok {
					coeff = numMul(coeff, n)
				} else {
					out = append(out, f)
				}
			}
		default:
			out = append(out, r)
		}
	}
	for _, t := range terms {
		if t.orig != nil {
			out = append(out, t.orig)
			continue
		}
		absorb(PowOf(t.base, AddOf(t.exps...)))
	}

	rescan := false
	if len(expArgs) > 0 {
		r := FuncOf("exp", AddOf(expArgs...))
		if f, ok := r.(*Func); ok && f.name == "exp" {
			out = append(out, r)
		} else {
			// exp(log(u)) style collapse may produce factors that combine
			// with the ones already collected.
			rescan = true
			absorb(r)
		}
	}
	if coeff.IsZero() {
		return N(0)
	}
	if rescan {
		return MulOf(append([]Expr{coeff}, out...)...)
	}

	sortFactors(out)
	if len(out) == 0 {
		return coeff
	}
	if len(out) == 1 {
		if coeff.IsOne() {
			return out[0]
		}
		if a, ok := out[0].(*Add); ok {
			terms := make([]Expr, len(a.terms))
			for i, t := range a.terms {
				terms[i] = MulOf(coeff, t)
			}
			return AddOf(terms...)
		}
	}
	if coeff.IsOne() {
		return &Mul{factors: out}
	}
	return &Mul{factors: append([]Expr{coeff}, out...)}
}

// fraction splits the product into sign, numerator and denominator parts.
// Fraction splits m for display: the sign, the numerator and denominator
// factors, and the numerator and denominator of the absolute coefficient.
func (m *Mul) Fraction() (neg bool, num, den []Expr, p, q *Num) { return m.fraction() }

func (m *Mul) fraction() (neg bool, num, den []Expr, p, q *Num) {
	coeff, rest := SplitCoeff(m)
	neg = coeff.IsNeg()
	a := numAbs(coeff)
	p, q = a.Numerator(), a.Denominator()
	var factors []Expr
	if rm, ok := rest.(*Mul); ok {
		factors = rm.factors
	} else if !IsOne(rest) {
		factors = []Expr{rest}
	}
	for _, f := range factors {
		if pw, ok := f.(*Pow); ok {
			if n, ok := pw.exp.(*Num); ok && n.IsNeg() {
				den = append(den, PowOf(pw.base, numNeg(n)))
				continue
			}
		}
		num = append(num, f)
	}
	return neg, num, den, p, q
}

func factorString(f Expr) string {
	if _, ok := f.(*Add); ok {
		return "(" + f.String() + ")"
	}
	return f.String()
}

func (m *Mul) String() string {
	neg, num, den, p, q := m.fraction()
	var ns, ds []string
	if !p.IsOne() || len(num) == 0 {
		ns = append(ns, p.String())
	}
	for _, f := range num {
		ns = append(ns, factorString(f))
	}
	if !q.IsOne() {
		ds = append(ds, q.String())
	}
	for _, f := range den {
		ds = append(ds, factorString(f))
	}
	var b strings.Builder
	if neg {
		b.WriteString("-")
	}
	b.WriteString(strings.Join(ns, "*"))
	if len(ds) > 0 {
		b.WriteString("/")
		if len(ds) > 1 {
			b.WriteString("(" + strings.Join(ds, "*") + ")")
		} else {
			b.WriteString(ds[0])
		}
	}
	return b.String()
}

func factorLaTeX(f Expr) string {
	if _, ok := f.(*Add); ok {
		return "\\left(" + f.LaTeX() + "\\right)"
	}
	return f.LaTeX()
}

func (m *Mul) LaTeX() string {
	neg, num, den, p, q := m.fraction()
	var ns, ds []string
	if !p.IsOne() || len(num) == 0 {
		ns = append(ns, p.String())
	}
	for _, f := range num {
		ns = append(ns, factorLaTeX(f))
	}
	if !q.IsOne() {
		ds = append(ds, q.String())
	}
	for _, f := range den {
		ds = append(ds, factorLaTeX(f))
	}
	sign := ""
	if neg {
		sign = "-"
	}
	if len(ds) == 0 {
		return sign + strings.Join(ns, " ")
	}
	return sign + "\\frac{" + strings.Join(ns, " ") + "}{" + strings.Join(ds, " ") + "}"
}

func (m *Mul) Sub(name string, value Expr) Expr {
	factors := make([]Expr, len(m.factors))
	for i, f := range m.factors {
		factors[i] = f.Sub(name, value)
	}
	return MulOf(factors...)
}

func (m *Mul) Diff(name string) Expr {
	var terms []Expr
	for i, f := range m.factors {
		d := f.Diff(name)
		if IsZero(d) {
			continue
		}
		parts := make([]Expr, 0, len(m.factors))
		parts = append(parts, m.factors[:i]...)
		parts = append(parts, d)
		parts = append(parts, m.factors[i+1:]...)
		terms = append(terms, MulOf(parts...))
	}
	return AddOf(terms...)
}

func (m *Mul) Eval(env Env) (float64, bool) {
	prod := 1.0
	for _, f := range m.factors {
		v, ok := f.Eval(env)
		if !ok {
			return 0, false
		}
		prod *= v
	}
	return finite(prod)
}
