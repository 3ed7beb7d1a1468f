package report

import (
	"bytes"
	"context"
	"math"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"integral-calculator/internal/calculator"
	"integral-calculator/internal/parser"
)

func TestBar(t *testing.T) {
	assert.Equal(t, "█████░░░░░", Bar(50, 10))
	assert.Equal(t, strings.Repeat("█", 30), Bar(100, CategoryBarWidth))
	assert.Equal(t, "░░░░", Bar(-5, 4))
	assert.Equal(t, "████", Bar(150, 4))
	assert.Equal(t, OverallBarWidth, utf8.RuneCountInString(Bar(66.7, OverallBarWidth)))
	// 90% of 30 is 27 blocks.
	assert.Equal(t, 27, strings.Count(Bar(90, CategoryBarWidth), "█"))
}

func TestLevelOf(t *testing.T) {
	tests := []struct {
		pct  float64
		want Level
	}{
		{100, Excellent},
		{95, Excellent},
		{94.9, Good},
		{80, Good},
		{79.9, NeedsImprovement},
		{0, NeedsImprovement},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, LevelOf(tt.pct), "%v%%", tt.pct)
	}
	assert.Equal(t, "Good (80-94%)", Good.String())
}

func TestGovaluateSyntax(t *testing.T) {
	tests := []struct{ in, want string }{
		{"3x^2 + 2x", "3*x**2 + 2*x"},
		{"(x+1)(x-1)", "(x+1)*(x-1)"},
		{"x**3", "x**3"},
		{"2*(x)", "2*(x)"},
		{"2sin(x)", "2*sin(x)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, govaluateSyntax(tt.in), tt.in)
	}
}

func TestOracleEval(t *testing.T) {
	o, err := NewOracle("x^2 + 1", "x")
	require.NoError(t, err)
	v, err := o.Eval(2)
	require.NoError(t, err)
	assert.InDelta(t, 5.0, v, 1e-12)

	o, err = NewOracle("sin(x)*cos(x)", "x")
	require.NoError(t, err)
	v, err = o.Eval(0.5)
	require.NoError(t, err)
	assert.InDelta(t, math.Sin(0.5)*math.Cos(0.5), v, 1e-12)

	o, err = NewOracle("2pi*t", "t")
	require.NoError(t, err)
	v, err = o.Eval(1)
	require.NoError(t, err)
	assert.InDelta(t, 2*math.Pi, v, 1e-12)
}

func TestOracleAgrees(t *testing.T) {
	points := calculator.DefaultOptions().SamplePoints

	o, err := NewOracle("x^2", "x")
	require.NoError(t, err)
	assert.True(t, o.Agrees(parser.MustParse("x^3/3"), points, oracleTolerance))
	assert.False(t, o.Agrees(parser.MustParse("x^3"), points, oracleTolerance))

	o, err = NewOracle("1/x", "x")
	require.NoError(t, err)
	assert.True(t, o.Agrees(parser.MustParse("log(x)"), points, oracleTolerance))
}

func TestSuiteInputsCompile(t *testing.T) {
	require.Equal(t, []string{"advanced", "complex", "comprehensive", "definite", "final", "improved", "integrals", "scenarios"}, Names())
	s, ok := Lookup("integrals")
	require.True(t, ok)
	assert.Greater(t, s.Size(), 40)

	total := 0
	for _, name := range Names() {
		s, _ := Lookup(name)
		total += s.Size()
		for _, cat := range s.Categories {
			for _, c := range cat.Cases {
				_, err := NewOracle(c.Input, "x")
				assert.NoError(t, err, "%s: %s", name, c.Input)
			}
		}
	}
	assert.Greater(t, total, 350)

	_, ok = Lookup("nope")
	assert.False(t, ok)
}

func smallSuite() Suite {
	return Suite{Name: "small", Categories: []Category{
		{Name: "Basics", Cases: []Case{
			{Input: "x^2", Description: "square", Want: "x^3/3"},
			{Input: "exp(x^2)", Description: "gaussian", Unevaluated: true},
			{Input: "x", Description: "not unevaluated", Unevaluated: true},
		}},
		{Name: "Definite", Definite: []DefiniteCase{
			{Input: "x^2", Lower: "0", Upper: "2", Description: "square", Want: "2.6667"},
			{Input: "x^2", Lower: "0", Upper: "2", Description: "wrong value", Want: "3.0000"},
			{Input: "x/0", Lower: "0", Upper: "1", Description: "no value", Want: "0.0000"},
		}},
	}}
}

func TestRun(t *testing.T) {
	calc := calculator.New(calculator.Options{})
	r, err := Run(context.Background(), calc, smallSuite())
	require.NoError(t, err)

	require.Len(t, r.Categories, 2)
	assert.Equal(t, 6, r.Total())
	assert.Equal(t, 3, r.Correct())
	assert.InDelta(t, 50.0, r.Accuracy(), 1e-9)
	assert.False(t, r.Passed())

	var reasons []Reason
	for _, o := range r.Categories[0].Outcomes {
		reasons = append(reasons, o.Reason)
	}
	want := []Reason{ReasonVerified, ReasonUnevaluated, ReasonMismatch}
	if diff := cmp.Diff(want, reasons); diff != "" {
		t.Errorf("reasons mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, "x^3/3 + C", r.Categories[0].Outcomes[0].Got)
	assert.Equal(t, "2.6667", r.Categories[1].Outcomes[0].Got)
	assert.Equal(t, 2, r.Categories[1].Incorrect())
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := Run(ctx, calculator.New(calculator.Options{}), smallSuite())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWrite(t *testing.T) {
	r := &Report{Suite: "small", Categories: []CategoryResult{
		{Name: "Polynomials", Outcomes: []Outcome{
			{Input: "x", Description: "linear", Got: "x^2/2 + C", Correct: true, Reason: ReasonVerified},
			{Input: "x^2", Description: "square", Got: "x^3/3 + C", Correct: true, Reason: ReasonVerified},
		}},
		{Name: "Hyperbolic", Outcomes: []Outcome{
			{Input: "tanh(x)", Description: "tanh", Got: "log(cosh(x)) + C", Correct: true, Reason: ReasonExpected},
			{Input: "sech(x)", Description: "sech", Reason: ReasonError, Err: assert.AnError},
		}},
	}}
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, r, true))
	out := buf.String()

	assert.Contains(t, out, "Total Tests: 4")
	assert.Contains(t, out, "Accuracy: 75.0%")
	assert.Contains(t, out, "["+Bar(75, OverallBarWidth)+"]")
	assert.Contains(t, out, "["+Bar(100, CategoryBarWidth)+"] 100.0% (2/2)")
	assert.Contains(t, out, "["+Bar(50, CategoryBarWidth)+"]  50.0% (1/2)")
	assert.Contains(t, out, "• Hyperbolic: 1 incorrect out of 2")
	assert.Contains(t, out, "[OK] linear: int x dx -> x^2/2 + C (verified)")
	assert.Contains(t, out, "[ERROR] sech")
	assert.Contains(t, out, Conclusion(75))
	assert.True(t, strings.HasSuffix(out, "Overall Accuracy: 75.0%\n"))
}

func TestConclusion(t *testing.T) {
	assert.True(t, strings.HasPrefix(Conclusion(100), "OUTSTANDING"))
	assert.True(t, strings.HasPrefix(Conclusion(92), "EXCELLENT"))
	assert.True(t, strings.HasPrefix(Conclusion(85), "GOOD"))
	assert.True(t, strings.HasPrefix(Conclusion(10), "PERFORMANCE NEEDS"))
}
