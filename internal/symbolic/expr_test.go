package symbolic

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var x = S("x")

func TestCanonicalString(t *testing.T) {
	tests := []struct {
		name string
		expr Expr
		want string
	}{
		{"like terms", AddOf(x, x), "2*x"},
		{"cubic over three", MulOf(Q(1, 3), PowOf(x, N(3))), "x^3/3"},
		{"descending degree", AddOf(PowOf(x, N(2)), MulOf(Q(1, 3), PowOf(x, N(3)))), "x^3/3 + x^2"},
		{"constant last", AddOf(N(1), x), "x + 1"},
		{"negated cosine", Neg(FuncOf("cos", x)), "-cos(x)"},
		{"reciprocal product", Div(N(1), MulOf(N(2), x)), "1/(2*x)"},
		{"square root", Sqrt(x), "sqrt(x)"},
		{"subtraction", Subtract(PowOf(x, N(2)), x), "x^2 - x"},
		{"sum power", PowOf(AddOf(x, N(1)), N(2)), "(x + 1)^2"},
		{"rational exponent", PowOf(x, Q(3, 2)), "x^(3/2)"},
		{"log", FuncOf("log", x), "log(x)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.expr.String())
		})
	}
}

func TestNumberFolding(t *testing.T) {
	assert.Equal(t, "2", PowOf(N(4), Q(1, 2)).String())
	assert.Equal(t, "1/8", PowOf(N(2), N(-3)).String())
	assert.Equal(t, "I", PowOf(N(-1), Q(1, 2)).String())
	assert.Equal(t, "-1", PowOf(I, N(2)).String())
	assert.Equal(t, "1", PowOf(x, N(0)).String())
	assert.Equal(t, "x", MulOf(x, PowOf(x, N(2)), PowOf(x, N(-2))).String())
	assert.Equal(t, "0", MulOf(N(0), FuncOf("sin", x)).String())
}

func TestHugePowersStaySymbolic(t *testing.T) {
	p := PowOf(N(10), N(10000000000))
	_, isPow := p.(*Pow)
	assert.True(t, isPow, "10^10000000000 folded to %s", p)
	assert.Equal(t, "2^1000000000", PowOf(N(2), N(1000000000)).String())
	assert.Equal(t, "1", PowOf(N(-1), N(10000000000)).String())
	assert.Equal(t, "1024", PowOf(N(2), N(10)).String())

	_, ok := PolyOf(PowOf(AddOf(x, N(1)), N(100)), "x")
	assert.False(t, ok)
}

func TestFunctionValues(t *testing.T) {
	assert.True(t, IsZero(FuncOf("sin", Pi)))
	assert.Equal(t, "-1", FuncOf("cos", Pi).String())
	assert.Equal(t, "1", FuncOf("sin", MulOf(Q(1, 2), Pi)).String())
	assert.Equal(t, "1", FuncOf("exp", N(0)).String())
	assert.Equal(t, "0", FuncOf("log", N(1)).String())
	assert.Equal(t, "-sin(x)", FuncOf("sin", Neg(x)).String())
	assert.Equal(t, "cos(x)", FuncOf("cos", Neg(x)).String())
	assert.Equal(t, "x", FuncOf("exp", FuncOf("log", x)).String())
	assert.Equal(t, "x^2", FuncOf("exp", MulOf(N(2), FuncOf("log", x))).String())

	assert.Equal(t, "1", FuncOf("sech", N(0)).String())
	assert.Equal(t, "0", FuncOf("asinh", N(0)).String())
	assert.Equal(t, "0", FuncOf("acosh", N(1)).String())
	assert.Equal(t, "-coth(x)", FuncOf("coth", Neg(x)).String())
	assert.Equal(t, "sech(x)", FuncOf("sech", Neg(x)).String())
	assert.Equal(t, "x", FuncOf("tanh", FuncOf("atanh", x)).String())
}

func TestExpProductsMerge(t *testing.T) {
	assert.Equal(t, "1", MulOf(FuncOf("exp", x), FuncOf("exp", Neg(x))).String())
	assert.Equal(t, "exp(3*x)", MulOf(FuncOf("exp", x), FuncOf("exp", MulOf(N(2), x))).String())
	assert.Equal(t, "exp(2*x)", PowOf(FuncOf("exp", x), N(2)).String())
}

func TestDiff(t *testing.T) {
	tests := []struct {
		name string
		expr Expr
		want Expr
	}{
		{"power", PowOf(x, N(3)), MulOf(N(3), PowOf(x, N(2)))},
		{"product", MulOf(x, FuncOf("sin", x)), AddOf(FuncOf("sin", x), MulOf(x, FuncOf("cos", x)))},
		{"chain", FuncOf("sin", MulOf(N(2), x)), MulOf(N(2), FuncOf("cos", MulOf(N(2), x)))},
		{"log", FuncOf("log", x), PowOf(x, N(-1))},
		{"exp", FuncOf("exp", PowOf(x, N(2))), MulOf(N(2), x, FuncOf("exp", PowOf(x, N(2))))},
		{"sqrt", Sqrt(x), MulOf(Q(1, 2), PowOf(x, Q(-1, 2)))},
		{"constant", FuncOf("sin", Pi), N(0)},
		{"atan", FuncOf("atan", x), PowOf(AddOf(PowOf(x, N(2)), N(1)), N(-1))},
		{"coth", FuncOf("coth", x), Subtract(N(1), PowOf(FuncOf("coth", x), N(2)))},
		{"sech", FuncOf("sech", x), Neg(MulOf(FuncOf("sech", x), FuncOf("tanh", x)))},
		{"asinh", FuncOf("asinh", x), PowOf(AddOf(PowOf(x, N(2)), N(1)), Q(-1, 2))},
		{"atanh", FuncOf("atanh", x), PowOf(Subtract(N(1), PowOf(x, N(2))), N(-1))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.expr.Diff("x")
			assert.True(t, Equal(got, tt.want), "got %s, want %s", got, tt.want)
		})
	}
}

func TestEval(t *testing.T) {
	v, ok := AddOf(PowOf(x, N(2)), N(1)).Eval(Env{"x": 2})
	require.True(t, ok)
	assert.InDelta(t, 5.0, v, 1e-12)

	v, ok = MulOf(FuncOf("sin", x), Pi).Eval(Env{"x": math.Pi / 2})
	require.True(t, ok)
	assert.InDelta(t, math.Pi, v, 1e-12)

	v, ok = FuncOf("coth", x).Eval(Env{"x": 1})
	require.True(t, ok)
	assert.InDelta(t, 1/math.Tanh(1), v, 1e-12)
	v, ok = FuncOf("acosh", x).Eval(Env{"x": 2})
	require.True(t, ok)
	assert.InDelta(t, math.Acosh(2), v, 1e-12)

	_, ok = FuncOf("log", x).Eval(Env{"x": -1})
	assert.False(t, ok)
	_, ok = PowOf(x, N(-1)).Eval(Env{"x": 0})
	assert.False(t, ok)
	_, ok = x.Eval(Env{})
	assert.False(t, ok)
	_, ok = IntegralOf(FuncOf("f", x), "x").Eval(Env{"x": 1})
	assert.False(t, ok)
}

func TestSubAndFreeOf(t *testing.T) {
	e := AddOf(PowOf(x, N(2)), S("a"))
	assert.Equal(t, "a + 4", e.Sub("x", N(2)).String())
	assert.False(t, FreeOf(e, "x"))
	assert.True(t, FreeOf(e.Sub("x", N(1)), "x"))
	assert.True(t, ContainsFunc(MulOf(x, FuncOf("tanh", x)), "sinh", "tanh"))
	assert.False(t, ContainsFunc(x, "sin"))
}

func TestReplace(t *testing.T) {
	u := S("u")
	e := MulOf(N(2), x, FuncOf("cos", PowOf(x, N(2))))
	got := Replace(e, PowOf(x, N(2)), u)
	assert.Equal(t, "2*x*cos(u)", got.String())
}

func TestLaTeX(t *testing.T) {
	assert.Equal(t, "\\frac{x^{3}}{3}", MulOf(Q(1, 3), PowOf(x, N(3))).LaTeX())
	assert.Equal(t, "\\sqrt{x}", Sqrt(x).LaTeX())
	assert.Equal(t, "e^{x}", FuncOf("exp", x).LaTeX())
	assert.Equal(t, "\\sin^{2}{\\left(x \\right)}", PowOf(FuncOf("sin", x), N(2)).LaTeX())
	assert.Equal(t, "\\int f{\\left(x \\right)}\\, dx", IntegralOf(FuncOf("f", x), "x").LaTeX())
}
