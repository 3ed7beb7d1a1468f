// Package symbolic provides the exact expression kernel used by the calculator.
//
// Expressions are immutable trees. The constructors (AddOf, MulOf, PowOf,
// FuncOf) always return simplified nodes, so two expressions that print the
// same are treated as equal.
package symbolic

import (
	"math"
	"sort"
)

// Expr is a node in an expression tree.
type Expr interface {
	// Simplify returns the canonical form of the expression.
	Simplify() Expr
	// String returns plain-text notation, e.g. "x^3/3 + x^2".
	String() string
	// LaTeX returns TeX notation.
	LaTeX() string
	// Sub replaces every occurrence of the named symbol.
	Sub(name string, value Expr) Expr
	// Diff differentiates with respect to the named symbol.
	Diff(name string) Expr
	// Eval evaluates numerically. ok is false when the value is not a
	// finite real number or a symbol is unbound.
	Eval(env Env) (float64, bool)
}

// Env binds symbol names to numeric values for Eval.
type Env map[string]float64

// Equal reports whether a and b have the same canonical form.
func Equal(a, b Expr) bool {
	return a.Simplify().String() == b.Simplify().String()
}

// IsZero reports whether e is the exact number zero.
func IsZero(e Expr) bool {
	n, ok := e.(*Num)
	return ok && n.IsZero()
}

// IsOne reports whether e is the exact number one.
func IsOne(e Expr) bool {
	n, ok := e.(*Num)
	return ok && n.IsOne()
}

// EvalAt evaluates e with a single symbol bound.
func EvalAt(e Expr, name string, v float64) (float64, bool) {
	return e.Eval(Env{name: v})
}

func finite(v float64) (float64, bool) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// FreeOf reports whether e does not depend on the named symbol.
func FreeOf(e Expr, name string) bool {
	_, found := FreeSymbols(e)[name]
	return !found
}

// FreeSymbols returns the set of symbol names appearing in e.
func FreeSymbols(e Expr) map[string]struct{} {
	out := map[string]struct{}{}
	Walk(e, func(n Expr) bool {
		if s, ok := n.(*Sym); ok {
			out[s.name] = struct{}{}
		}
		return true
	})
	return out
}

// Walk visits e and its children depth first. Returning false from fn
// stops descent into the current node's children.
func Walk(e Expr, fn func(Expr) bool) {
	if !fn(e) {
		return
	}
	for _, c := range Children(e) {
		Walk(c, fn)
	}
}

// Children returns the direct operands of e.
func Children(e Expr) []Expr {
	switch v := e.(type) {
	case *Add:
		return v.terms
	case *Mul:
		return v.factors
	case *Pow:
		return []Expr{v.base, v.exp}
	case *Func:
		return []Expr{v.arg}
	case *Integral:
		return []Expr{v.integrand}
	}
	return nil
}

// ContainsFunc reports whether e applies any of the named functions.
func ContainsFunc(e Expr, names ...string) bool {
	found := false
	Walk(e, func(n Expr) bool {
		if found {
			return false
		}
		if f, ok := n.(*Func); ok {
			for _, name := range names {
				if f.name == name {
					found = true
					return false
				}
			}
		}
		return true
	})
	return found
}

// Replace substitutes every subexpression that prints like target.
func Replace(e, target, with Expr) Expr {
	key := target.String()
	var rec func(Expr) Expr
	rec = func(n Expr) Expr {
		if n.String() == key {
			return with
		}
		switch v := n.(type) {
		case *Add:
			terms := make([]Expr, len(v.terms))
			for i, t := range v.terms {
				terms[i] = rec(t)
			}
			return AddOf(terms...)
		case *Mul:
			factors := make([]Expr, len(v.factors))
			for i, f := range v.factors {
				factors[i] = rec(f)
			}
			return MulOf(factors...)
		case *Pow:
			return PowOf(rec(v.base), rec(v.exp))
		case *Func:
			return FuncOf(v.name, rec(v.arg))
		case *Integral:
			return IntegralOf(rec(v.integrand), v.variable)
		}
		return n
	}
	return rec(e)
}

// Size counts the nodes in e.
func Size(e Expr) int {
	n := 0
	Walk(e, func(Expr) bool { n++; return true })
	return n
}

// Sub is the free-function form of Expr.Sub.
func Sub(e Expr, name string, value Expr) Expr { return e.Sub(name, value) }

// Diff is the free-function form of Expr.Diff.
func Diff(e Expr, name string) Expr { return e.Diff(name) }

// Neg returns -e.
func Neg(e Expr) Expr { return MulOf(N(-1), e) }

// Subtract returns a - b.
func Subtract(a, b Expr) Expr { return AddOf(a, Neg(b)) }

// Div returns a / b.
func Div(a, b Expr) Expr { return MulOf(a, PowOf(b, N(-1))) }

// degreeKey is the polynomial degree used to order terms of a sum.
func degreeKey(e Expr) float64 {
	switch v := e.(type) {
	case *Sym:
		return 1
	case *Pow:
		if _, ok := v.base.(*Sym); ok {
			if n, ok := v.exp.(*Num); ok {
				return n.Float64()
			}
			return 1
		}
		if _, ok := v.base.(*Add); ok {
			if n, ok := v.exp.(*Num); ok {
				return n.Float64() * degreeKey(v.base)
			}
		}
		return 0
	case *Mul:
		d := 0.0
		for _, f := range v.factors {
			d += degreeKey(f)
		}
		return d
	case *Add:
		d := 0.0
		for _, t := range v.terms {
			if k := degreeKey(t); k > d {
				d = k
			}
		}
		return d
	}
	return 0
}

// sortTerms orders summands by descending degree, then by text.
func sortTerms(terms []Expr) {
	type keyed struct {
		e   Expr
		deg float64
		key string
	}
	ks := make([]keyed, len(terms))
	for i, t := range terms {
		_, rest := SplitCoeff(t)
		ks[i] = keyed{e: t, deg: degreeKey(rest), key: rest.String()}
	}
	sort.SliceStable(ks, func(i, j int) bool {
		if ks[i].deg != ks[j].deg {
			return ks[i].deg > ks[j].deg
		}
		return ks[i].key < ks[j].key
	})
	for i := range ks {
		terms[i] = ks[i].e
	}
}

// factorClass groups factors of a product for display order:
// symbols and constants first, then sums, then function applications.
func factorClass(e Expr) int {
	switch v := e.(type) {
	case *Sym, *Const:
		return 0
	case *Pow:
		return factorClass(v.base)
	case *Add:
		return 1
	}
	return 2
}

func sortFactors(factors []Expr) {
	type keyed struct {
		e     Expr
		class int
		key   string
	}
	ks := make([]keyed, len(factors))
	for i, f := range factors {
		base := f
		if p, ok := f.(*Pow); ok {
			base = p.base
		}
		ks[i] = keyed{e: f, class: factorClass(f), key: base.String()}
	}
	sort.SliceStable(ks, func(i, j int) bool {
		if ks[i].class != ks[j].class {
			return ks[i].class < ks[j].class
		}
		return ks[i].key < ks[j].key
	})
	for i := range ks {
		factors[i] = ks[i].e
	}
}
