package symbolic

import "strings"

// Add is a sum of terms.
type Add struct{ terms []Expr }

// AddOf returns the canonical sum of terms.
func AddOf(terms ...Expr) Expr { return (&Add{terms: terms}).Simplify() }

// Terms returns the summands.
func (a *Add) Terms() []Expr { return a.terms }

// SplitCoeff separates the leading numeric coefficient of a term.
func SplitCoeff(e Expr) (*Num, Expr) {
	switch v := e.(type) {
	case *Num:
		return v, N(1)
	case *Mul:
		if c, ok := v.factors[0].(*Num); ok {
			rest := v.factors[1:]
			if len(rest) == 1 {
				return c, rest[0]
			}
			return c, &Mul{factors: append([]Expr(nil), rest...)}
		}
	}
	return N(1), e
}

func (a *Add) Simplify() Expr {
	flat := make([]Expr, 0, len(a.terms))
	for _, t := range a.terms {
		s := t.Simplify()
		if inner, ok := s.(*Add); ok {
			flat = append(flat, inner.terms...)
		} else {
			flat = append(flat, s)
		}
	}

	type entry struct {
		coeff *Num
		term  Expr
	}
	constant := N(0)
	index := map[string]int{}
	var entries []entry
	for _, t := range flat {
		if n, ok := t.(*Num); ok {
			constant = numAdd(constant, n)
			continue
		}
		c, rest := SplitCoeff(t)
		key := rest.String()
		if i, ok := index[key]; ok {
			entries[i].coeff = numAdd(entries[i].coeff, c)
			continue
		}
		index[key] = len(entries)
		entries = append(entries, entry{coeff: c, term: rest})
	}

	out := make([]Expr, 0, len(entries)+1)
	for _, e := range entries {
		switch {
		case e.coeff.IsZero():
		case e.coeff.IsOne():
			out = append(out, e.term)
		default:
			out = append(out, MulOf(e.coeff, e.term))
		}
	}
	sortTerms(out)
	if !constant.IsZero() {
		out = append(out, constant)
	}
	switch len(out) {
	case 0:
		return N(0)
	case 1:
		return out[0]
	}
	return &Add{terms: out}
}

// displayOrder moves the first positive term to the front so sums print as
// "x*log(x) - x" rather than "-x + x*log(x)".
// DisplayTerms returns the terms in printing order: the first term with a
// non-negative coefficient leads.
func (a *Add) DisplayTerms() []Expr { return a.displayOrder() }

func (a *Add) displayOrder() []Expr {
	if c, _ := SplitCoeff(a.terms[0]); !c.IsNeg() {
		return a.terms
	}
	for i, t := range a.terms {
		if c, _ := SplitCoeff(t); !c.IsNeg() {
			out := make([]Expr, 0, len(a.terms))
			out = append(out, t)
			out = append(out, a.terms[:i]...)
			return append(out, a.terms[i+1:]...)
		}
	}
	return a.terms
}

func (a *Add) String() string {
	var b strings.Builder
	for i, t := range a.displayOrder() {
		s := t.String()
		if i == 0 {
			b.WriteString(s)
			continue
		}
		if strings.HasPrefix(s, "-") {
			b.WriteString(" - ")
			b.WriteString(s[1:])
		} else {
			b.WriteString(" + ")
			b.WriteString(s)
		}
	}
	return b.String()
}

func (a *Add) LaTeX() string {
	var b strings.Builder
	for i, t := range a.displayOrder() {
		s := t.LaTeX()
		if i == 0 {
			b.WriteString(s)
			continue
		}
		if strings.HasPrefix(s, "-") {
			b.WriteString(" - ")
			b.WriteString(s[1:])
		} else {
			b.WriteString(" + ")
			b.WriteString(s)
		}
	}
	return b.String()
}

func (a *Add) Sub(name string, value Expr) Expr {
	terms := make([]Expr, len(a.terms))
	for i, t := range a.terms {
		terms[i] = t.Sub(name, value)
	}
	return AddOf(terms...)
}

func (a *Add) Diff(name string) Expr {
	terms := make([]Expr, len(a.terms))
	for i, t := range a.terms {
		terms[i] = t.Diff(name)
	}
	return AddOf(terms...)
}

func (a *Add) Eval(env Env) (float64, bool) {
	sum := 0.0
	for _, t := range a.terms {
		v, ok := t.Eval(env)
		if !ok {
			return 0, false
		}
		sum += v
	}
	return finite(sum)
}
