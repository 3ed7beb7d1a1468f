package report

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/Knetic/govaluate"
	"gonum.org/v1/gonum/floats/scalar"

	"integral-calculator/internal/parser"
	"integral-calculator/internal/symbolic"
)

// minAgreeing is the number of sample points at which an oracle must
// agree before it confirms an antiderivative.
const minAgreeing = 3

var (
	digitThenAtom = regexp.MustCompile(`(\d)\s*([A-Za-z(])`)
	closeThenAtom = regexp.MustCompile(`\)\s*([A-Za-z0-9(])`)
)

func unary(fn func(float64) float64) govaluate.ExpressionFunction {
	return func(args ...interface{}) (interface{}, error) {
		if len(args) != 1 {
			return nil, fmt.Errorf("expected 1 argument, got %d", len(args))
		}
		return fn(toFloat(args[0])), nil
	}
}

var oracleFuncs = map[string]govaluate.ExpressionFunction{
	"sin":   unary(math.Sin),
	"cos":   unary(math.Cos),
	"tan":   unary(math.Tan),
	"sec":   unary(func(v float64) float64 { return 1 / math.Cos(v) }),
	"csc":   unary(func(v float64) float64 { return 1 / math.Sin(v) }),
	"cot":   unary(func(v float64) float64 { return 1 / math.Tan(v) }),
	"asin":  unary(math.Asin),
	"acos":  unary(math.Acos),
	"atan":  unary(math.Atan),
	"sinh":  unary(math.Sinh),
	"cosh":  unary(math.Cosh),
	"tanh":  unary(math.Tanh),
	"sech":  unary(func(v float64) float64 { return 1 / math.Cosh(v) }),
	"csch":  unary(func(v float64) float64 { return 1 / math.Sinh(v) }),
	"coth":  unary(func(v float64) float64 { return 1 / math.Tanh(v) }),
	"exp":   unary(math.Exp),
	"log":   unary(math.Log),
	"ln":    unary(math.Log),
	"sqrt":  unary(math.Sqrt),
	"abs":   unary(math.Abs),
	"asinh": unary(math.Asinh),
	"acosh": unary(math.Acosh),
	"atanh": unary(math.Atanh),
}

// Oracle evaluates the raw input text numerically, independently of the
// symbolic parser, so a derivative can be checked against what the user
// actually typed.
type Oracle struct {
	variable string
	expr     *govaluate.EvaluableExpression
	params   map[string]interface{}
}

// govaluateSyntax rewrites calculator notation: ^ becomes ** and implicit
// products get an explicit *.
func govaluateSyntax(input string) string {
	s := parser.Sanitize(input)
	s = strings.ReplaceAll(s, "^", "**")
	s = digitThenAtom.ReplaceAllString(s, "$1*$2")
	return closeThenAtom.ReplaceAllString(s, ")*$1")
}

// NewOracle compiles input as a function of variable.
func NewOracle(input, variable string) (*Oracle, error) {
	expr, err := govaluate.NewEvaluableExpressionWithFunctions(govaluateSyntax(input), oracleFuncs)
	if err != nil {
		return nil, fmt.Errorf("oracle %q: %w", input, err)
	}
	return &Oracle{
		variable: variable,
		expr:     expr,
		params:   map[string]interface{}{variable: 0.0, "pi": math.Pi, "e": math.E},
	}, nil
}

// Eval evaluates the input at v.
func (o *Oracle) Eval(v float64) (float64, error) {
	o.params[o.variable] = v
	res, err := o.expr.Evaluate(o.params)
	if err != nil {
		return math.NaN(), err
	}
	switch t := res.(type) {
	case float64:
		return t, nil
	case int:
		return float64(t), nil
	case int64:
		return float64(t), nil
	case string:
		return strconv.ParseFloat(t, 64)
	}
	return math.NaN(), fmt.Errorf("oracle returned %T, not a number", res)
}

// Agrees reports whether dF/dx matches the input at the points where both
// are defined, with at least minAgreeing such points.
func (o *Oracle) Agrees(F symbolic.Expr, points []float64, tol float64) bool {
	dF := symbolic.Diff(F, o.variable)
	agreeing := 0
	for _, p := range points {
		want, err := o.Eval(p)
		if err != nil || math.IsNaN(want) || math.IsInf(want, 0) {
			continue
		}
		got, ok := symbolic.EvalAt(dF, o.variable, p)
		if !ok {
			continue
		}
		if !scalar.EqualWithinAbsOrRel(got, want, tol, tol) {
			return false
		}
		agreeing++
	}
	return agreeing >= minAgreeing
}

func toFloat(v interface{}) float64 {
	switch t := v.(type) {
	case float64:
		return t
	case int:
		return float64(t)
	case int64:
		return float64(t)
	case string:
		f, err := strconv.ParseFloat(t, 64)
		if err != nil {
			return math.NaN()
		}
		return f
	}
	return math.NaN()
}
