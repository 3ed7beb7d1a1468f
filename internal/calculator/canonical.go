package calculator

import (
	"context"

	"integral-calculator/internal/symbolic"
)

var trigNames = []string{
	"sin", "cos", "tan", "sec", "csc", "cot",
	"sinh", "cosh", "tanh", "sech", "csch", "coth",
}

// Canonicalize puts an antiderivative into a stable printed form:
// simplify, expand, factor, cancel, and trig simplification when the
// result mentions a trig or hyperbolic function. The context is checked
// between passes.
func Canonicalize(ctx context.Context, e symbolic.Expr, x string) (symbolic.Expr, error) {
	passes := []func(symbolic.Expr) symbolic.Expr{
		symbolic.Expr.Simplify,
		symbolic.Expand,
		func(e symbolic.Expr) symbolic.Expr { return symbolic.Factor(e, x) },
		func(e symbolic.Expr) symbolic.Expr { return symbolic.Cancel(e, x) },
	}
	for _, pass := range passes {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		e = pass(e)
	}
	if symbolic.ContainsFunc(e, trigNames...) {
		e = symbolic.TrigSimplify(e)
	}
	return e, nil
}
