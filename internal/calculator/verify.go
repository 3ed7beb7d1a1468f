package calculator

import (
	"context"

	"gonum.org/v1/gonum/floats/scalar"

	"integral-calculator/internal/symbolic"
)

// Verification is the outcome of checking d/dx F against f.
type Verification int

const (
	Unverified Verification = iota
	NumericallyVerified
	Verified
)

// minAgreeingPoints is how many sample points must evaluate and agree
// before a numeric check counts.
const minAgreeingPoints = 3

func (v Verification) String() string {
	switch v {
	case Verified:
		return "verified"
	case NumericallyVerified:
		return "numerically verified"
	default:
		return "unverified"
	}
}

// Verify checks F against f by differentiation. The symbolic zero test runs
// first; when it cannot decide, the derivative is compared with f at the
// sample points. A cancelled context yields Unverified.
func (c *Calculator) Verify(ctx context.Context, F, f symbolic.Expr, x string) Verification {
	if F == nil || symbolic.HasIntegral(F) || ctx.Err() != nil {
		return Unverified
	}
	d := F.Diff(x)
	if symbolic.IsZeroExpr(symbolic.Subtract(d, f)) {
		return Verified
	}

	agree := 0
	for _, p := range c.opts.SamplePoints {
		if ctx.Err() != nil {
			return Unverified
		}
		want, ok := symbolic.EvalAt(f, x, p)
		if !ok {
			continue
		}
		got, ok := symbolic.EvalAt(d, x, p)
		if !ok {
			continue
		}
		if !scalar.EqualWithinAbsOrRel(got, want, c.opts.Tolerance, c.opts.Tolerance) {
			return Unverified
		}
		agree++
	}
	if agree >= minAgreeingPoints {
		return NumericallyVerified
	}
	return Unverified
}
