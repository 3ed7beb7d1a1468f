package calculator

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"integral-calculator/internal/parser"
)

func newTestCalculator() *Calculator {
	return New(Options{})
}

func TestNewFillsDefaults(t *testing.T) {
	c := New(Options{Timeout: 0})
	assert.Equal(t, "x", c.Variable())
	assert.Len(t, c.opts.SamplePoints, 9)
	assert.Equal(t, 1e-7, c.opts.Tolerance)
}

func TestIntegrateMethods(t *testing.T) {
	tests := []struct {
		in     string
		method Method
	}{
		{"x^2", MethodStandard},
		{"3x^2 + 2x + 1", MethodStandard},
		{"1/(x^2+1)", MethodStandard},
		{"tanh(x)", MethodTanh},
		{"exp(x)*sin(x)", MethodExpTrig},
		{"x*exp(x)*sin(x)", MethodExpTrig},
		{"x*log(x)", MethodManual},
		{"exp(x^2)", MethodUnevaluated},
	}
	c := newTestCalculator()
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			res, err := c.Integrate(context.Background(), tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.method, res.Method)
			if tt.method == MethodUnevaluated {
				assert.False(t, res.Evaluated())
				assert.Equal(t, Unverified, res.Verification)
				return
			}
			assert.True(t, res.Evaluated())
			assert.NotEqual(t, Unverified, res.Verification, "F = %s", res.Antiderivative)
		})
	}
}

func TestIntegrateForms(t *testing.T) {
	c := newTestCalculator()

	res, err := c.Integrate(context.Background(), "x^2")
	require.NoError(t, err)
	assert.Equal(t, "x^3/3 + C", res.String())
	assert.Equal(t, Verified, res.Verification)
	assert.True(t, strings.HasPrefix(res.LaTeX(), `\int `))
	assert.True(t, strings.HasSuffix(res.LaTeX(), "+ C"))

	res, err = c.Integrate(context.Background(), "tanh(x)")
	require.NoError(t, err)
	assert.Equal(t, "log(cosh(x))", res.Antiderivative.String())
	assert.Equal(t, Verified, res.Verification)

	res, err = c.Integrate(context.Background(), "exp(x^2)")
	require.NoError(t, err)
	assert.Equal(t, "Integral(exp(x^2), x)", res.String())
}

func TestIntegrateOtherVariable(t *testing.T) {
	c := New(Options{Variable: "t"})
	res, err := c.Integrate(context.Background(), "t^2")
	require.NoError(t, err)
	assert.Equal(t, "t^3/3", res.Antiderivative.String())
	assert.Equal(t, "t", res.Variable)
}

func TestIntegrateErrors(t *testing.T) {
	c := newTestCalculator()

	_, err := c.Integrate(context.Background(), "   ")
	assert.ErrorIs(t, err, ErrEmptyInput)

	_, err = c.Integrate(context.Background(), "x @ 2")
	var se *parser.SyntaxError
	assert.ErrorAs(t, err, &se)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = c.Integrate(ctx, "x^2")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClassifyEdgeCase(t *testing.T) {
	tests := []struct {
		in   string
		want EdgeCase
	}{
		{"x/0", DivisionByZero},
		{"1/0 + x", DivisionByZero},
		{"x/0.5", NoEdgeCase},
		{"sqrt(-1)", ImaginaryUnit},
		{"sqrt( - 1 )", ImaginaryUnit},
		{"log(0)", LogOfZero},
		{"ln(0)", LogOfZero},
		{"x^0", ZeroPower},
		{"1/x^0", ZeroPower},
		{"x^0.5", NoEdgeCase},
		{"x^10", NoEdgeCase},
		{"2x + 1", NoEdgeCase},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ClassifyEdgeCase(tt.in), tt.in)
	}
}

func TestEdgeCases(t *testing.T) {
	c := newTestCalculator()

	for _, in := range []string{"x/0", "log(0)"} {
		res, err := c.Integrate(context.Background(), in)
		require.NoError(t, err, in)
		assert.Equal(t, MethodUnevaluated, res.Method, in)
		assert.False(t, res.Evaluated(), in)
		msg, expl := EdgeCaseMessage(res)
		assert.Equal(t, "This integral cannot be evaluated in standard form.", msg)
		assert.Contains(t, expl, "singularities")
	}

	res, err := c.Integrate(context.Background(), "sqrt(-1)")
	require.NoError(t, err)
	assert.Equal(t, ImaginaryUnit, res.EdgeCase)
	assert.Equal(t, "I*x", res.Antiderivative.String())
	assert.Equal(t, Verified, res.Verification)
	msg, _ := EdgeCaseMessage(res)
	assert.Equal(t, "Result: I*x + C", msg)

	res, err = c.Integrate(context.Background(), "x^0")
	require.NoError(t, err)
	assert.Equal(t, ZeroPower, res.EdgeCase)
	assert.Equal(t, "x", res.Antiderivative.String())
}

func TestFoldedEdgeCases(t *testing.T) {
	tests := []struct {
		in   string
		want EdgeCase
	}{
		{"1/(1-1)", DivisionByZero},
		{"x/(0)", DivisionByZero},
		{"x/(2-2) + 1", DivisionByZero},
		{"log(1-1)", LogOfZero},
		{"x*ln(3-3)", LogOfZero},
	}
	c := newTestCalculator()
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, NoEdgeCase, ClassifyEdgeCase(tt.in))
			res, err := c.Integrate(context.Background(), tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, res.EdgeCase)
			assert.Equal(t, MethodUnevaluated, res.Method)
			assert.False(t, res.Evaluated())
		})
	}

	assert.Equal(t, NoEdgeCase, ClassifyIntegrand(parser.MustParse("1/(x-1)")))
	assert.Equal(t, NoEdgeCase, ClassifyIntegrand(parser.MustParse("log(x)")))
}

func TestTimeoutBoundsWork(t *testing.T) {
	const limit = 2 * time.Second
	c := New(Options{Timeout: limit})
	for _, in := range []string{
		"(x+1)^50*exp(x)*sin(x)",
		"2^1000000000*x",
		"10^10^10",
		"x^40*sin(x)^6*cos(x)^5*exp(3x)",
	} {
		t.Run(in, func(t *testing.T) {
			start := time.Now()
			_, err := c.Integrate(context.Background(), in)
			if err != nil {
				assert.True(t, errors.Is(err, context.DeadlineExceeded), "got %v", err)
			}
			assert.Less(t, time.Since(start), 3*limit)
		})
	}
}

func TestLargeConstantPowersStaySymbolic(t *testing.T) {
	res, err := New(Options{Timeout: 5 * time.Second}).Integrate(context.Background(), "2^1000000000*x")
	require.NoError(t, err)
	assert.True(t, res.Evaluated())
	assert.Contains(t, res.Antiderivative.String(), "2^1000000000")
}

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"x^2*(x+3)/3", "x^3/3 + x^2"},
		{"(x+1)^2", "x^2 + 2*x + 1"},
		{"sin(x)^2 + cos(x)^2", "1"},
		{"sin(x)/cos(x)", "tan(x)"},
		{"x*log(x) - x", "x*log(x) - x"},
	}
	for _, tt := range tests {
		got, err := Canonicalize(context.Background(), parser.MustParse(tt.in), "x")
		require.NoError(t, err)
		assert.Equal(t, tt.want, got.String(), tt.in)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Canonicalize(ctx, parser.MustParse("(x+1)^2"), "x")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestVerify(t *testing.T) {
	c := newTestCalculator()
	f := parser.MustParse("x^2")
	ctx := context.Background()
	assert.Equal(t, Verified, c.Verify(ctx, parser.MustParse("x^3/3 + 7"), f, "x"))
	assert.Equal(t, Unverified, c.Verify(ctx, parser.MustParse("x^3"), f, "x"))
	assert.Equal(t, Unverified, c.Verify(ctx, nil, f, "x"))

	done, cancel := context.WithCancel(ctx)
	cancel()
	assert.Equal(t, Unverified, c.Verify(done, parser.MustParse("x^3/3"), f, "x"))
	assert.Equal(t, "verified", Verified.String())
	assert.Equal(t, "numerically verified", NumericallyVerified.String())
}

func TestDefinite(t *testing.T) {
	tests := []struct {
		in, lower, upper string
		want             string
		numeric          bool
	}{
		{"x^2", "0", "2", "2.6667", false},
		{"sin(x)", "0", "pi", "2.0000", false},
		{"1/x", "1", "2", "0.6931", false},
		{"x", "2", "0", "-2.0000", false},
		{"exp(x^2)", "0", "1", "1.4627", true},
	}
	c := newTestCalculator()
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			d, err := c.Definite(context.Background(), tt.in, tt.lower, tt.upper)
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.Formatted())
			assert.Equal(t, tt.numeric, d.Numeric)
		})
	}
}

func TestDefiniteSummary(t *testing.T) {
	d, err := newTestCalculator().Definite(context.Background(), "x^2", "0", "2")
	require.NoError(t, err)
	assert.Equal(t, "∫ from 0 to 2 of x^2 dx = 2.6667", d.Summary())
}

func TestDefiniteErrors(t *testing.T) {
	c := newTestCalculator()
	ctx := context.Background()

	_, err := c.Definite(ctx, "x", "", "1")
	assert.ErrorIs(t, err, ErrMissingBounds)

	_, err = c.Definite(ctx, "x", "a", "1")
	assert.ErrorIs(t, err, ErrInvalidBound)

	_, err = c.Definite(ctx, "1/x", "-1", "1")
	assert.ErrorIs(t, err, ErrDivergent)

	_, err = c.Definite(ctx, "1/x^2", "-1", "2")
	assert.ErrorIs(t, err, ErrDivergent)

	d, err := c.Definite(ctx, "x/0", "0", "1")
	require.NoError(t, err)
	assert.False(t, d.HasValue())
	assert.Equal(t, "", d.Formatted())
}

func TestDefiniteTrigPoles(t *testing.T) {
	tests := []struct {
		in, lower, upper string
	}{
		{"sec(x)^2", "0", "2"},
		{"tan(x)", "0", "2"},
		{"1/cos(x)", "0", "2"},
		{"cot(x)", "-1", "1"},
		{"1/sin(2x)", "1", "2"},
		{"coth(x)", "-1", "1"},
		{"1/(1-cos(x))", "-1", "1"},
		{"exp(x)/(x-1)", "0", "2"},
	}
	c := newTestCalculator()
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := c.Definite(context.Background(), tt.in, tt.lower, tt.upper)
			assert.ErrorIs(t, err, ErrDivergent)
		})
	}
}

func TestDefiniteIntegrableSingularities(t *testing.T) {
	tests := []struct {
		in, lower, upper string
		want             string
	}{
		{"1/sqrt(x)", "0", "1", "2.0000"},
		{"log(x)", "0", "1", "-1.0000"},
		{"sin(x)/x", "0", "1", "0.9461"},
		{"1/sqrt(1-x^2)", "-1", "1", "3.1416"},
		{"sec(x)^2", "0", "1", "1.5574"},
	}
	c := newTestCalculator()
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			d, err := c.Definite(context.Background(), tt.in, tt.lower, tt.upper)
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.Formatted())
		})
	}
}

func TestDefiniteScientificBounds(t *testing.T) {
	d, err := newTestCalculator().Definite(context.Background(), "2x", "0", "1e-3")
	require.NoError(t, err)
	assert.False(t, d.Numeric)
	assert.Equal(t, "1/1000000", d.Exact.String())
}

func TestDefiniteEdgeCasesShortCircuit(t *testing.T) {
	c := newTestCalculator()
	for _, tt := range []struct {
		in   string
		want EdgeCase
	}{
		{"sqrt(-1)", ImaginaryUnit},
		{"1/x^0", ZeroPower},
		{"log(0)", LogOfZero},
		{"1/(1-1)", DivisionByZero},
	} {
		t.Run(tt.in, func(t *testing.T) {
			d, err := c.Definite(context.Background(), tt.in, "0", "1")
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.EdgeCase)
			assert.False(t, d.HasValue())
		})
	}

	d, err := c.Definite(context.Background(), "sqrt(-1)", "0", "1")
	require.NoError(t, err)
	assert.Equal(t, "I*x", d.Antiderivative.String())
}
