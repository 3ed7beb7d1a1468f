package parser

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSanitize(t *testing.T) {
	assert.Equal(t, "x^2*3", Sanitize(" x**2×3 "))
	assert.Equal(t, "1/x", Sanitize("1÷x"))
	assert.Equal(t, "sqrt (x)", Sanitize("√(x)"))
	assert.Equal(t, "2* pi", Sanitize("2·π"))
	assert.Equal(t, "x-1", Sanitize("x−1"))
}

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"x^2", "x^2"},
		{"x**2", "x^2"},
		{"2x", "2*x"},
		{"3(x+1)", "3*x + 3"},
		{"x(x+1)", "x*(x + 1)"},
		{"(x+1)(x-1)", "(x + 1)*(x - 1)"},
		{"-x^2", "-x^2"},
		{"2^3^2", "512"},
		{"x^-1", "1/x"},
		{"sin(x)", "sin(x)"},
		{"sin x", "sin(x)"},
		{"sin^2(x)", "sin(x)^2"},
		{"sinh(x)", "sinh(x)"},
		{"ln(x)", "log(x)"},
		{"arctan(x)", "atan(x)"},
		{"sqrt(x)", "sqrt(x)"},
		{"√x", "sqrt(x)"},
		{"e^x", "exp(x)"},
		{"exp(2x)", "exp(2*x)"},
		{"|x|", "abs(x)"},
		{"0.5x", "x/2"},
		{"2π", "2*pi"},
		{"f(x)", "f(x)"},
		{"1/x^0", "1"},
		{"x sin(x)", "x*sin(x)"},
		{"2 sin(x)cos(x)", "2*cos(x)*sin(x)"},
		{"coth(x)", "coth(x)"},
		{"sech(x)^2", "sech(x)^2"},
		{"csch(2x)", "csch(2*x)"},
		{"asinh(x)", "asinh(x)"},
		{"acosh(x)", "acosh(x)"},
		{"atanh(x)", "atanh(x)"},
		{"arcsinh(x)", "asinh(x)"},
		{"xcoth(x)", "x*coth(x)"},
		{"erf(x)", "erf(x)"},
		{"2Si(x)", "2*Si(x)"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got.String())
		})
	}
}

func TestParseLogBase(t *testing.T) {
	got, err := Parse("log(8, 2)")
	require.NoError(t, err)
	v, ok := got.Eval(nil)
	require.True(t, ok)
	assert.InDelta(t, 3.0, v, 1e-12)
}

func TestParseErrors(t *testing.T) {
	_, err := Parse("   ")
	assert.ErrorIs(t, err, ErrEmpty)

	for _, in := range []string{"(x+1", "x+", "2*)", "x $ 2", "sin", "cos(x, 2)", "2..3", "1.2.3", "x+1.5.2"} {
		t.Run(in, func(t *testing.T) {
			_, err := Parse(in)
			var se *SyntaxError
			require.True(t, errors.As(err, &se), "got %v", err)
			assert.GreaterOrEqual(t, se.Pos, 0)
			assert.NotEmpty(t, se.Msg)
		})
	}
}

func TestParseBound(t *testing.T) {
	_, v, err := ParseBound("pi/2")
	require.NoError(t, err)
	assert.InDelta(t, math.Pi/2, v, 1e-12)

	_, v, err = ParseBound("-1.5")
	require.NoError(t, err)
	assert.Equal(t, -1.5, v)

	tests := []struct {
		in   string
		want float64
		text string
	}{
		{"1e-3", 0.001, "1/1000"},
		{"2.5E2", 250, "250"},
		{" -4e-1 ", -0.4, "-2/5"},
		{"2pi", 2 * math.Pi, "2*pi"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			e, v, err := ParseBound(tt.in)
			require.NoError(t, err)
			assert.InDelta(t, tt.want, v, 1e-12)
			assert.Equal(t, tt.text, e.String())
		})
	}

	_, _, err = ParseBound("x")
	assert.ErrorIs(t, err, ErrNotConstant)
	_, _, err = ParseBound("log(0)")
	assert.ErrorIs(t, err, ErrNotConstant)
}
