package calculator

import (
	"regexp"

	"integral-calculator/internal/symbolic"
)

// EdgeCase classifies inputs that need special handling before integration.
type EdgeCase int

const (
	NoEdgeCase EdgeCase = iota
	DivisionByZero
	ImaginaryUnit
	LogOfZero
	ZeroPower
)

var edgePatterns = []struct {
	kind EdgeCase
	re   *regexp.Regexp
}{
	{DivisionByZero, regexp.MustCompile(`/\s*0([^0-9.]|$)`)},
	{ImaginaryUnit, regexp.MustCompile(`sqrt\s*\(\s*-\s*1\s*\)`)},
	{LogOfZero, regexp.MustCompile(`(log|ln)\s*\(\s*0\s*\)`)},
	{ZeroPower, regexp.MustCompile(`(\^|\*\*)\s*0([^0-9.]|$)`)},
}

// ClassifyEdgeCase matches the raw input against the edge-case patterns.
func ClassifyEdgeCase(input string) EdgeCase {
	for _, p := range edgePatterns {
		if p.re.MatchString(input) {
			return p.kind
		}
	}
	return NoEdgeCase
}

// ClassifyIntegrand finds undefined operations that only show up once the
// input is parsed and folded, such as 1/(1-1), x/(0) or log(1-1).
func ClassifyIntegrand(f symbolic.Expr) EdgeCase {
	kind := NoEdgeCase
	symbolic.Walk(f, func(e symbolic.Expr) bool {
		switch v := e.(type) {
		case *symbolic.Pow:
			if n, ok := v.Exp().(*symbolic.Num); ok && n.IsNeg() && symbolic.IsZero(v.Base()) {
				kind = DivisionByZero
			}
		case *symbolic.Func:
			if v.Name() == "log" && symbolic.IsZero(v.Arg()) {
				kind = LogOfZero
			}
		}
		return kind == NoEdgeCase
	})
	return kind
}

func (k EdgeCase) String() string {
	switch k {
	case DivisionByZero:
		return "division by zero"
	case ImaginaryUnit:
		return "imaginary unit"
	case LogOfZero:
		return "logarithm of zero"
	case ZeroPower:
		return "zero power"
	default:
		return "none"
	}
}

// Unevaluated reports whether the edge case leaves the integral symbolic.
func (k EdgeCase) Unevaluated() bool {
	return k == DivisionByZero || k == LogOfZero
}

// EdgeCaseTitle heads the edge-case dialog.
const EdgeCaseTitle = "Edge Case Detected"

// EdgeCaseMessage returns the result line and the explanation shown for an
// edge-case result.
func EdgeCaseMessage(r *Result) (result, explanation string) {
	if !r.Evaluated() {
		return "This integral cannot be evaluated in standard form.",
			"The function contains mathematical singularities or undefined operations."
	}
	return "Result: " + r.String(), "Special handling applied for this edge case."
}
