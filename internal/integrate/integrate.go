// Package integrate finds closed-form antiderivatives.
//
// Standard applies the table, rational-function, reduction and
// substitution rules a computer algebra system would try first. Manual adds
// step rules the standard path lacks (tanh, LIATE parts, exp-trig
// products). Both
// report ErrNoAntiderivative when nothing applies; callers fall back to an
// unevaluated integral.
package integrate

import (
	"context"
	"errors"
	"fmt"

	"integral-calculator/internal/symbolic"
)

// ErrNoAntiderivative is returned when no rule produced a closed form.
var ErrNoAntiderivative = errors.New("no antiderivative found")

// maxDepth bounds rule recursion (parts, substitution, reductions).
const maxDepth = 32

type engine struct {
	ctx    context.Context
	x      string
	manual bool
	depth  int
	fresh  *int
}

// Standard integrates f with respect to x using the standard rule set.
func Standard(ctx context.Context, f symbolic.Expr, x string) (symbolic.Expr, error) {
	n := 0
	e := &engine{ctx: ctx, x: x, fresh: &n}
	return e.integrate(f)
}

// Manual integrates f with the standard rules plus step rules for tanh,
// log and inverse-trig products, cyclic exp-trig products and trig rewrites.
func Manual(ctx context.Context, f symbolic.Expr, x string) (symbolic.Expr, error) {
	n := 0
	e := &engine{ctx: ctx, x: x, manual: true, fresh: &n}
	return e.integrate(f)
}

func (e *engine) fail(f symbolic.Expr) error {
	return fmt.Errorf("integrate %s d%s: %w", f, e.x, ErrNoAntiderivative)
}

// child returns an engine one level deeper, optionally over another variable.
func (e *engine) child(x string) *engine {
	c := *e
	c.x = x
	c.depth++
	return &c
}

func (e *engine) freshSymbol() *symbolic.Sym {
	*e.fresh++
	return symbolic.S(fmt.Sprintf("_u%d", *e.fresh))
}

// sub integrates f one level deeper over the same variable.
func (e *engine) sub(f symbolic.Expr) (symbolic.Expr, error) {
	return e.child(e.x).integrate(f)
}

func (e *engine) integrate(f symbolic.Expr) (symbolic.Expr, error) {
	if err := e.ctx.Err(); err != nil {
		return nil, err
	}
	if e.depth > maxDepth {
		return nil, e.fail(f)
	}
	f = f.Simplify()
	x := symbolic.S(e.x)

	if symbolic.FreeOf(f, e.x) {
		return symbolic.MulOf(f, x), nil
	}
	if symbolic.HasIntegral(f) {
		return nil, e.fail(f)
	}

	if a, ok := f.(*symbolic.Add); ok {
		if r, err := e.linear(a); err == nil {
			return r, nil
		} else if !errors.Is(err, ErrNoAntiderivative) {
			return nil, err
		}
	}

	if c, rest := splitConstant(f, e.x); !symbolic.IsOne(c) {
		r, err := e.integrate(rest)
		if err != nil {
			return nil, err
		}
		return symbolic.MulOf(c, r), nil
	}

	rules := []func(symbolic.Expr) (symbolic.Expr, bool, error){
		e.polynomial,
		e.table,
		e.rational,
		e.trigPowers,
		e.trigProducts,
	}
	if e.manual {
		rules = append(rules, e.hyperbolic, e.expTrig, e.liate)
	}
	rules = append(rules, e.linearRadical, e.substitute, e.parts, e.trigSubstitution, e.expanded)
	if e.manual {
		rules = append(rules, e.rewritten)
	}
	for _, rule := range rules {
		r, ok, err := rule(f)
		if err != nil {
			if errors.Is(err, ErrNoAntiderivative) {
				continue
			}
			return nil, err
		}
		if ok {
			return r, nil
		}
	}
	return nil, e.fail(f)
}

// linear integrates a sum term by term.
func (e *engine) linear(a *symbolic.Add) (symbolic.Expr, error) {
	terms := a.Terms()
	out := make([]symbolic.Expr, 0, len(terms))
	for _, t := range terms {
		r, err := e.integrate(t)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return symbolic.AddOf(out...), nil
}

// splitConstant separates the factors of f that do not depend on x.
func splitConstant(f symbolic.Expr, x string) (symbolic.Expr, symbolic.Expr) {
	m, ok := f.(*symbolic.Mul)
	if !ok {
		return symbolic.N(1), f
	}
	var consts, rest []symbolic.Expr
	for _, fac := range m.Factors() {
		if symbolic.FreeOf(fac, x) {
			consts = append(consts, fac)
		} else {
			rest = append(rest, fac)
		}
	}
	return symbolic.MulOf(consts...), symbolic.MulOf(rest...)
}

// linearArg returns a when u = a*x + b with a constant and nonzero.
func linearArg(u symbolic.Expr, x string) (symbolic.Expr, bool) {
	a := u.Diff(x)
	if symbolic.IsZero(a) || !symbolic.FreeOf(a, x) {
		return nil, false
	}
	return a, true
}

// expanded retries after distributing products and powers.
func (e *engine) expanded(f symbolic.Expr) (symbolic.Expr, bool, error) {
	g := symbolic.Expand(f)
	if g.String() == f.String() {
		return nil, false, nil
	}
	r, err := e.sub(g)
	return r, err == nil, err
}

// rewritten retries after expressing tan, sec, csc and cot via sin and cos.
func (e *engine) rewritten(f symbolic.Expr) (symbolic.Expr, bool, error) {
	if !symbolic.ContainsFunc(f, "tan", "sec", "csc", "cot") {
		return nil, false, nil
	}
	g := symbolic.RewriteTrig(f)
	if g.String() == f.String() {
		return nil, false, nil
	}
	r, err := e.sub(g)
	return r, err == nil, err
}
