package symbolic

import (
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ratStrings(rs []*big.Rat) []string {
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = r.RatString()
	}
	return out
}

func TestPolyOf(t *testing.T) {
	e := AddOf(PowOf(x, N(2)), MulOf(N(-3), x), N(2))
	p, ok := PolyOf(e, "x")
	require.True(t, ok)
	assert.Equal(t, 2, p.Deg())
	assert.Empty(t, cmp.Diff([]string{"2", "-3", "1"}, ratStrings(p)))

	_, ok = PolyOf(FuncOf("sin", x), "x")
	assert.False(t, ok)
	_, ok = PolyOf(Sqrt(x), "x")
	assert.False(t, ok)
	_, ok = PolyOf(MulOf(S("a"), x), "x")
	assert.False(t, ok)
}

func TestPolyDivModAndGCD(t *testing.T) {
	// (x^3 - 1) / (x - 1) = x^2 + x + 1
	q, r := PolyFromInts(-1, 0, 0, 1).DivMod(PolyFromInts(-1, 1))
	assert.True(t, r.IsZero())
	assert.Empty(t, cmp.Diff([]string{"1", "1", "1"}, ratStrings(q)))

	g := PolyFromInts(-1, 0, 1).GCD(PolyFromInts(2, 3, 1))
	assert.Empty(t, cmp.Diff([]string{"1", "1"}, ratStrings(g)))
}

func TestRationalRoots(t *testing.T) {
	roots := PolyFromInts(2, -3, 1).RationalRoots()
	assert.Empty(t, cmp.Diff([]string{"1", "2"}, ratStrings(roots)))

	roots = PolyFromInts(-1, 0, 4).RationalRoots()
	assert.Empty(t, cmp.Diff([]string{"-1/2", "1/2"}, ratStrings(roots)))

	assert.Empty(t, PolyFromInts(1, 0, 1).RationalRoots())

	p := PolyFromInts(0, 0, 1, 1)
	assert.Empty(t, cmp.Diff([]string{"-1", "0"}, ratStrings(p.RationalRoots())))
	assert.Equal(t, 2, p.RootMultiplicity(new(big.Rat)))
}

func TestDerive(t *testing.T) {
	d := PolyFromInts(5, 0, 3, 2).Derive()
	assert.Empty(t, cmp.Diff([]string{"0", "6", "6"}, ratStrings(d)))
}

func TestExpand(t *testing.T) {
	assert.Equal(t, "x^2 + 2*x + 1", Expand(PowOf(AddOf(x, N(1)), N(2))).String())
	assert.Equal(t, "x^2 - 1", Expand(MulOf(AddOf(x, N(1)), AddOf(x, N(-1)))).String())
	assert.Equal(t, "x*sin(x) + sin(x)", Expand(MulOf(AddOf(x, N(1)), FuncOf("sin", x))).String())
}

func TestCancel(t *testing.T) {
	e := Div(AddOf(PowOf(x, N(2)), N(-1)), AddOf(x, N(-1)))
	assert.Equal(t, "x + 1", Cancel(e, "x").String())

	// Polynomial results come back expanded.
	sum := AddOf(MulOf(Q(1, 3), PowOf(x, N(3))), PowOf(x, N(2)))
	assert.Equal(t, "x^3/3 + x^2", Cancel(sum, "x").String())

	// Non-rational input is left alone.
	s := FuncOf("sin", x)
	assert.Equal(t, s.String(), Cancel(s, "x").String())
}

func TestFactor(t *testing.T) {
	got := Factor(AddOf(PowOf(x, N(2)), MulOf(N(-3), x), N(2)), "x")
	assert.True(t, Equal(Expand(got), AddOf(PowOf(x, N(2)), MulOf(N(-3), x), N(2))))
	assert.Equal(t, "(x - 1)*(x - 2)", got.String())
}

func TestTrigSimplify(t *testing.T) {
	s2 := PowOf(FuncOf("sin", x), N(2))
	c2 := PowOf(FuncOf("cos", x), N(2))
	assert.Equal(t, "1", TrigSimplify(AddOf(s2, c2)).String())
	assert.Equal(t, "cos(x)^2", TrigSimplify(AddOf(N(1), Neg(s2))).String())
	assert.Equal(t, "tan(x)", TrigSimplify(Div(FuncOf("sin", x), FuncOf("cos", x))).String())

	ch2 := PowOf(FuncOf("cosh", x), N(2))
	sh2 := PowOf(FuncOf("sinh", x), N(2))
	assert.Equal(t, "1", TrigSimplify(Subtract(ch2, sh2)).String())
}

func TestIsZeroExpr(t *testing.T) {
	tan2 := PowOf(FuncOf("tan", x), N(2))
	sec2 := PowOf(FuncOf("sec", x), N(2))
	assert.True(t, IsZeroExpr(AddOf(tan2, N(1), Neg(sec2))))

	// d/dx log(cosh x) - tanh x
	d := FuncOf("log", FuncOf("cosh", x)).Diff("x")
	assert.True(t, IsZeroExpr(Subtract(d, FuncOf("tanh", x))))

	assert.True(t, IsZeroExpr(Subtract(FuncOf("sin", MulOf(N(2), x)),
		MulOf(N(2), FuncOf("sin", x), FuncOf("cos", x)))))
	assert.False(t, IsZeroExpr(FuncOf("sin", x)))
}
