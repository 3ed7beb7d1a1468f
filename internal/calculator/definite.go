package calculator

import (
	"context"
	"fmt"
	"log"
	"math"
	"strings"

	"github.com/shopspring/decimal"
	"gonum.org/v1/gonum/integrate/quad"

	"integral-calculator/internal/parser"
	"integral-calculator/internal/symbolic"
)

const (
	// DecimalPlaces is the precision of displayed definite values.
	DecimalPlaces = 4

	quadPanels = 16
	quadNodes  = 64
)

// DefiniteResult is the outcome of a definite integration.
type DefiniteResult struct {
	*Result

	LowerText, UpperText string
	Lower, Upper         symbolic.Expr

	// Exact is F(upper) - F(lower) when the antiderivative could be
	// evaluated at both bounds.
	Exact symbolic.Expr

	Value float64

	// Numeric is set when Value came from quadrature.
	Numeric bool
}

// HasValue reports whether a value was computed. Edge-case inputs have
// none; they are reported through the edge-case dialog instead.
func (d *DefiniteResult) HasValue() bool {
	return !math.IsNaN(d.Value)
}

// Formatted returns the value rounded to DecimalPlaces.
func (d *DefiniteResult) Formatted() string {
	if !d.HasValue() {
		return ""
	}
	if n, ok := d.Exact.(*symbolic.Num); ok && !d.Numeric {
		return decimal.NewFromBigRat(n.Rat(), DecimalPlaces).StringFixed(DecimalPlaces)
	}
	return decimal.NewFromFloat(d.Value).StringFixed(DecimalPlaces)
}

// Summary is the one-line description shown under the result.
func (d *DefiniteResult) Summary() string {
	return fmt.Sprintf("∫ from %s to %s of %s dx = %s", d.LowerText, d.UpperText, d.Input, d.Formatted())
}

// LaTeX renders \int_a^b f dx = value.
func (d *DefiniteResult) LaTeX() string {
	var b strings.Builder
	fmt.Fprintf(&b, `\int_{%s}^{%s} %s\, d%s`, d.Lower.LaTeX(), d.Upper.LaTeX(), d.Integrand.LaTeX(), d.Variable)
	if d.HasValue() {
		b.WriteString(" = " + d.Formatted())
	}
	return b.String()
}

// Definite computes the integral of input from lower to upper.
func (c *Calculator) Definite(ctx context.Context, input, lower, upper string) (*DefiniteResult, error) {
	lower, upper = strings.TrimSpace(lower), strings.TrimSpace(upper)
	if lower == "" || upper == "" {
		return nil, ErrMissingBounds
	}
	lo, a, err := parser.ParseBound(parser.Sanitize(lower))
	if err != nil {
		return nil, fmt.Errorf("%w: lower bound: %v", ErrInvalidBound, err)
	}
	hi, b, err := parser.ParseBound(parser.Sanitize(upper))
	if err != nil {
		return nil, fmt.Errorf("%w: upper bound: %v", ErrInvalidBound, err)
	}

	res, err := c.Integrate(ctx, input)
	if err != nil {
		return nil, err
	}
	d := &DefiniteResult{
		Result:    res,
		LowerText: lower,
		UpperText: upper,
		Lower:     lo,
		Upper:     hi,
		Value:     math.NaN(),
	}
	if res.EdgeCase != NoEdgeCase {
		return d, nil
	}

	x := res.Variable
	if err := checkInterval(res.Integrand, x, a, b); err != nil {
		return nil, err
	}

	if res.Evaluated() {
		exact := symbolic.Subtract(res.Antiderivative.Sub(x, hi), res.Antiderivative.Sub(x, lo))
		v, ok := exact.Eval(nil)
		switch {
		case !ok:
			log.Printf("Calculator: antiderivative not finite at the bounds, using quadrature")
		case !continuousOn(res.Antiderivative, res.Integrand, x, a, b):
			log.Printf("Calculator: antiderivative %s jumps on [%g, %g], using quadrature", res.Antiderivative, a, b)
		default:
			d.Exact, d.Value = exact, v
			return d, nil
		}
	}
	d.Value, d.Numeric = quadrature(res.Integrand, x, a, b), true
	return d, nil
}

// quadrature integrates f over [a, b] with composite Gauss-Legendre.
func quadrature(f symbolic.Expr, x string, a, b float64) float64 {
	if a == b {
		return 0
	}
	if a > b {
		return -quadrature(f, x, b, a)
	}
	fn := func(t float64) float64 {
		v, ok := symbolic.EvalAt(f, x, t)
		if !ok {
			return 0
		}
		return v
	}
	width := (b - a) / quadPanels
	sum := 0.0
	for i := 0; i < quadPanels; i++ {
		lo := a + float64(i)*width
		hi := lo + width
		if i == quadPanels-1 {
			hi = b
		}
		sum += quad.Fixed(fn, lo, hi, quadNodes, quad.Legendre{}, 0)
	}
	return sum
}
