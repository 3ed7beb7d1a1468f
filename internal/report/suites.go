package report

import "sort"

// Case is one indefinite integral to check.
type Case struct {
	Input       string
	Description string

	// Want is the expected antiderivative as printed, without " + C".
	// Empty when any verified form is accepted.
	Want string

	// Unevaluated marks integrands with no elementary antiderivative, or
	// undefined ones; they pass when returned as an unevaluated integral.
	Unevaluated bool
}

// DefiniteCase is one definite integral with its value to 4 decimals.
type DefiniteCase struct {
	Input       string
	Lower       string
	Upper       string
	Description string
	Want        string
}

// Category groups cases under a heading of the report.
type Category struct {
	Name     string
	Cases    []Case
	Definite []DefiniteCase
}

// Suite is a named list of categories.
type Suite struct {
	Name       string
	Categories []Category
}

// Size returns the number of cases in the suite.
func (s Suite) Size() int {
	n := 0
	for _, c := range s.Categories {
		n += len(c.Cases) + len(c.Definite)
	}
	return n
}

var suites = map[string]Suite{
	"integrals": {Name: "integrals", Categories: []Category{
		{Name: "Basic Polynomials", Cases: []Case{
			{Input: "x", Description: "Basic linear", Want: "x^2/2"},
			{Input: "x^2", Description: "Basic quadratic", Want: "x^3/3"},
			{Input: "x^3", Description: "Basic cubic", Want: "x^4/4"},
			{Input: "3*x^2", Description: "Quadratic with coefficient", Want: "x^3"},
			{Input: "x^2 + 2*x + 1", Description: "Perfect square trinomial"},
			{Input: "2*x^3 - 3*x^2 + 5*x - 1", Description: "Complex cubic"},
			{Input: "(x + 1)^2", Description: "Squared binomial"},
			{Input: "(x - 2)^3", Description: "Cubed binomial"},
			{Input: "(x + 1)*(x - 1)", Description: "Product of binomials"},
		}},
		{Name: "Trigonometric Functions", Cases: []Case{
			{Input: "sin(x)", Description: "Basic sine", Want: "-cos(x)"},
			{Input: "cos(x)", Description: "Basic cosine", Want: "sin(x)"},
			{Input: "tan(x)", Description: "Basic tangent"},
			{Input: "sec(x)^2", Description: "Secant squared"},
			{Input: "sin(x)^2", Description: "Sine squared"},
			{Input: "cos(x)^2", Description: "Cosine squared"},
			{Input: "sin(x)*cos(x)", Description: "Sine times cosine"},
			{Input: "sin(x)^3", Description: "Sine cubed"},
			{Input: "sin(x)*cos(x)^2", Description: "Sine times cosine squared"},
		}},
		{Name: "Exponential/Logarithmic", Cases: []Case{
			{Input: "exp(x)", Description: "Basic exponential", Want: "exp(x)"},
			{Input: "exp(-x)", Description: "Negative exponential", Want: "-exp(-x)"},
			{Input: "exp(2*x)", Description: "Exponential with coefficient"},
			{Input: "log(x)", Description: "Basic logarithm"},
			{Input: "x*exp(x)", Description: "x times exponential"},
			{Input: "x^2*exp(x)", Description: "x squared times exponential"},
			{Input: "log(x)/x", Description: "Logarithm over x"},
		}},
		{Name: "Rational Functions", Cases: []Case{
			{Input: "1/x", Description: "Reciprocal", Want: "log(x)"},
			{Input: "1/(x^2+1)", Description: "Arctangent form", Want: "atan(x)"},
			{Input: "1/(x^2-1)", Description: "Partial fractions"},
			{Input: "x/(x^2+1)", Description: "Logarithmic derivative"},
			{Input: "(x^2+1)/x", Description: "Improper fraction"},
		}},
		{Name: "Power Functions", Cases: []Case{
			{Input: "sqrt(x)", Description: "Square root"},
			{Input: "1/sqrt(x)", Description: "Reciprocal square root"},
			{Input: "x^(3/2)", Description: "Fractional power"},
			{Input: "1/x^2", Description: "Negative power", Want: "-1/x"},
		}},
		{Name: "Composite Functions", Cases: []Case{
			{Input: "sin(2*x)", Description: "Sine of linear argument"},
			{Input: "x*sin(x^2)", Description: "Chain rule substitution"},
			{Input: "2*x*exp(x^2)", Description: "Exponential substitution", Want: "exp(x^2)"},
			{Input: "x*sqrt(x+1)", Description: "Polynomial times radical"},
		}},
		{Name: "Integration by Parts", Cases: []Case{
			{Input: "x*sin(x)", Description: "x times sine"},
			{Input: "x*cos(x)", Description: "x times cosine"},
			{Input: "x*log(x)", Description: "x times logarithm"},
			{Input: "x^2*log(x)", Description: "x squared times logarithm"},
			{Input: "atan(x)", Description: "Inverse tangent"},
		}},
		{Name: "Hyperbolic Functions", Cases: []Case{
			{Input: "sinh(x)", Description: "Hyperbolic sine", Want: "cosh(x)"},
			{Input: "cosh(x)", Description: "Hyperbolic cosine", Want: "sinh(x)"},
			{Input: "tanh(x)", Description: "Hyperbolic tangent", Want: "log(cosh(x))"},
		}},
		{Name: "Special Cases", Cases: []Case{
			{Input: "exp(x)*sin(x)", Description: "Exponential times sine"},
			{Input: "exp(x)*cos(x)", Description: "Exponential times cosine"},
			{Input: "x*exp(x)*sin(x)", Description: "x times exponential times sine"},
			{Input: "exp(x^2)", Description: "Gaussian, non-elementary", Unevaluated: true},
			{Input: "sin(x)/x", Description: "Sine integral, non-elementary", Unevaluated: true},
			{Input: "exp(x)/x", Description: "Exponential integral, non-elementary", Unevaluated: true},
		}},
		{Name: "Edge Cases", Cases: []Case{
			{Input: "x/0", Description: "Division by zero", Unevaluated: true},
			{Input: "log(0)", Description: "Log of zero", Unevaluated: true},
			{Input: "sqrt(-1)", Description: "Imaginary result", Want: "I*x"},
			{Input: "1/x^0", Description: "Zero power", Want: "x"},
		}},
	}},

	"advanced": {Name: "advanced", Categories: []Category{
		{Name: "Special Function", Cases: []Case{
			{Input: "exp(-x^2)", Description: "Gaussian function (error function)", Unevaluated: true},
			{Input: "exp(x)/x", Description: "Exponential integral Ei(x)", Unevaluated: true},
			{Input: "sin(x)/x", Description: "Sine integral Si(x)", Unevaluated: true},
			{Input: "cos(x)/x", Description: "Cosine integral Ci(x)", Unevaluated: true},
			{Input: "1/log(x)", Description: "Logarithmic integral li(x)", Unevaluated: true},
			{Input: "x*exp(-x^2)", Description: "x times Gaussian"},
			{Input: "exp(-x)/x", Description: "Exponential integral with negative argument", Unevaluated: true},
			{Input: "sin(x^2)", Description: "Fresnel sine integral", Unevaluated: true},
			{Input: "cos(x^2)", Description: "Fresnel cosine integral", Unevaluated: true},
			{Input: "exp(-x^2)*x", Description: "x times Gaussian"},
		}},
		{Name: "Rational Function", Cases: []Case{
			{Input: "1/(x^4 + 1)", Description: "Rational function with quartic denominator"},
			{Input: "1/(x^4 - 1)", Description: "Rational function with difference of squares"},
			{Input: "x/(x^4 + 1)", Description: "x times rational function"},
			{Input: "x^2/(x^4 + 1)", Description: "x squared times rational function"},
			{Input: "1/(x^3 + 1)", Description: "Rational function with cubic denominator"},
			{Input: "1/(x^3 - 1)", Description: "Rational function with cubic denominator"},
			{Input: "x/(x^3 + 1)", Description: "x times rational function"},
			{Input: "x^2/(x^3 + 1)", Description: "x squared times rational function"},
			{Input: "1/(x^2 + x + 1)", Description: "Rational function with quadratic denominator"},
			{Input: "x/(x^2 + x + 1)", Description: "x times rational function"},
		}},
		{Name: "Trigonometric Substitution", Cases: []Case{
			{Input: "1/sqrt(x^2 + 1)", Description: "Trigonometric substitution case 1"},
			{Input: "1/sqrt(x^2 - 1)", Description: "Trigonometric substitution case 2"},
			{Input: "1/sqrt(1 - x^2)", Description: "Trigonometric substitution case 3"},
			{Input: "x/sqrt(x^2 + 1)", Description: "x times trigonometric substitution"},
			{Input: "x/sqrt(x^2 - 1)", Description: "x times trigonometric substitution"},
			{Input: "x/sqrt(1 - x^2)", Description: "x times trigonometric substitution"},
			{Input: "sqrt(x^2 + 1)", Description: "Square root of quadratic"},
			{Input: "sqrt(x^2 - 1)", Description: "Square root of quadratic"},
			{Input: "sqrt(1 - x^2)", Description: "Square root of quadratic"},
			{Input: "x*sqrt(x^2 + 1)", Description: "x times square root"},
		}},
		{Name: "Partial Fractions", Cases: []Case{
			{Input: "1/(x^2 - 4)", Description: "Partial fractions with difference of squares"},
			{Input: "1/(x^2 - 9)", Description: "Partial fractions with difference of squares"},
			{Input: "1/(x^2 - 1)", Description: "Partial fractions with difference of squares"},
			{Input: "x/(x^2 - 4)", Description: "x times partial fractions"},
			{Input: "x/(x^2 - 9)", Description: "x times partial fractions"},
			{Input: "x/(x^2 - 1)", Description: "x times partial fractions"},
			{Input: "1/(x^3 - x)", Description: "Partial fractions with cubic"},
			{Input: "1/(x^4 - 1)", Description: "Partial fractions with quartic"},
			{Input: "x/(x^3 - x)", Description: "x times partial fractions"},
			{Input: "x^2/(x^4 - 1)", Description: "x squared times partial fractions"},
		}},
		{Name: "Complex Scenario", Cases: []Case{
			{Input: "exp(x)*sin(x)*cos(x)", Description: "Exponential times sine times cosine"},
			{Input: "x*exp(x)*sin(x)*cos(x)", Description: "x times exponential times sine times cosine"},
			{Input: "sin(x)*cos(x)*tan(x)", Description: "Sine times cosine times tangent"},
			{Input: "exp(x)*log(x)", Description: "Exponential times logarithm", Unevaluated: true},
			{Input: "x*exp(x)*log(x)", Description: "x times exponential times logarithm", Unevaluated: true},
			{Input: "sin(x)*log(x)", Description: "Sine times logarithm", Unevaluated: true},
			{Input: "cos(x)*log(x)", Description: "Cosine times logarithm", Unevaluated: true},
			{Input: "x*sin(x)*log(x)", Description: "x times sine times logarithm", Unevaluated: true},
			{Input: "x*cos(x)*log(x)", Description: "x times cosine times logarithm", Unevaluated: true},
			{Input: "exp(x)*sin(x)^2", Description: "Exponential times sine squared"},
		}},
	}},

	"scenarios": {Name: "scenarios", Categories: []Category{
		{Name: "Hyperbolic", Cases: []Case{
			{Input: "sinh(x)", Description: "Basic hyperbolic sine"},
			{Input: "cosh(x)", Description: "Basic hyperbolic cosine"},
			{Input: "tanh(x)", Description: "Basic hyperbolic tangent"},
			{Input: "coth(x)", Description: "Basic hyperbolic cotangent"},
			{Input: "sech(x)", Description: "Basic hyperbolic secant"},
			{Input: "csch(x)", Description: "Basic hyperbolic cosecant"},
			{Input: "sinh(x)^2", Description: "Hyperbolic sine squared"},
			{Input: "cosh(x)^2", Description: "Hyperbolic cosine squared"},
			{Input: "tanh(x)^2", Description: "Hyperbolic tangent squared"},
			{Input: "sinh(x)*cosh(x)", Description: "Hyperbolic sine times cosine"},
			{Input: "cosh(x)*sinh(x)", Description: "Hyperbolic cosine times sine"},
			{Input: "sinh(x)*cosh(x)^2", Description: "Hyperbolic sine times cosine squared"},
			{Input: "cosh(x)*sinh(x)^2", Description: "Hyperbolic cosine times sine squared"},
			{Input: "tanh(x)*sech(x)", Description: "Hyperbolic tangent times secant"},
			{Input: "coth(x)*csch(x)", Description: "Hyperbolic cotangent times cosecant"},
			{Input: "sech(x)^2", Description: "Hyperbolic secant squared"},
			{Input: "csch(x)^2", Description: "Hyperbolic cosecant squared"},
			{Input: "coth(x)^2", Description: "Hyperbolic cotangent squared"},
			{Input: "sinh(x)^3", Description: "Hyperbolic sine cubed"},
			{Input: "cosh(x)^3", Description: "Hyperbolic cosine cubed"},
		}},
		{Name: "Inverse Trigonometric", Cases: []Case{
			{Input: "asin(x)", Description: "Inverse sine"},
			{Input: "acos(x)", Description: "Inverse cosine"},
			{Input: "atan(x)", Description: "Inverse tangent"},
			{Input: "asinh(x)", Description: "Inverse hyperbolic sine"},
			{Input: "acosh(x)", Description: "Inverse hyperbolic cosine"},
			{Input: "atanh(x)", Description: "Inverse hyperbolic tangent"},
			{Input: "x*asin(x)", Description: "x times inverse sine"},
			{Input: "x*acos(x)", Description: "x times inverse cosine"},
			{Input: "x*atan(x)", Description: "x times inverse tangent"},
			{Input: "x*asinh(x)", Description: "x times inverse hyperbolic sine"},
			{Input: "x*acosh(x)", Description: "x times inverse hyperbolic cosine"},
			{Input: "x*atanh(x)", Description: "x times inverse hyperbolic tangent"},
			{Input: "x^2*asin(x)", Description: "x squared times inverse sine"},
			{Input: "x^2*atan(x)", Description: "x squared times inverse tangent"},
			{Input: "asin(x)/x", Description: "Inverse sine over x", Unevaluated: true},
			{Input: "atan(x)/x", Description: "Inverse tangent over x", Unevaluated: true},
			{Input: "asin(x)/x^2", Description: "Inverse sine over x squared"},
			{Input: "atan(x)/x^2", Description: "Inverse tangent over x squared"},
			{Input: "log(asin(x))", Description: "Logarithm of inverse sine", Unevaluated: true},
			{Input: "log(atan(x))", Description: "Logarithm of inverse tangent", Unevaluated: true},
		}},
		{Name: "Special Function", Cases: []Case{
			{Input: "exp(-x^2)", Description: "Gaussian function", Unevaluated: true},
			{Input: "x*exp(-x^2)", Description: "x times Gaussian"},
			{Input: "exp(x^2)", Description: "Exponential of x squared", Unevaluated: true},
			{Input: "x*exp(x^2)", Description: "x times exponential of x squared"},
			{Input: "exp(x)/x", Description: "Exponential integral Ei(x)", Unevaluated: true},
			{Input: "exp(-x)/x", Description: "Exponential integral with negative argument", Unevaluated: true},
			{Input: "sin(x)/x", Description: "Sine integral Si(x)", Unevaluated: true},
			{Input: "cos(x)/x", Description: "Cosine integral Ci(x)", Unevaluated: true},
			{Input: "1/log(x)", Description: "Logarithmic integral li(x)", Unevaluated: true},
			{Input: "log(x)/x", Description: "Logarithm over x"},
			{Input: "log(x)^2", Description: "Logarithm squared"},
			{Input: "x*log(x)^2", Description: "x times logarithm squared"},
			{Input: "log(x)/x^2", Description: "Logarithm over x squared"},
			{Input: "exp(x)*log(x)", Description: "Exponential times logarithm", Unevaluated: true},
			{Input: "x*exp(x)*log(x)", Description: "x times exponential times logarithm", Unevaluated: true},
			{Input: "sin(x)*log(x)", Description: "Sine times logarithm", Unevaluated: true},
			{Input: "cos(x)*log(x)", Description: "Cosine times logarithm", Unevaluated: true},
			{Input: "x*sin(x)*log(x)", Description: "x times sine times logarithm", Unevaluated: true},
			{Input: "x*cos(x)*log(x)", Description: "x times cosine times logarithm", Unevaluated: true},
			{Input: "log(x)*sin(x)", Description: "Logarithm times sine", Unevaluated: true},
		}},
		{Name: "Complex Scenario", Cases: []Case{
			{Input: "exp(x)*sin(x)*cos(x)", Description: "Exponential times sine times cosine"},
			{Input: "x*exp(x)*sin(x)*cos(x)", Description: "x times exponential times sine times cosine"},
			{Input: "sin(x)*cos(x)*tan(x)", Description: "Sine times cosine times tangent"},
			{Input: "exp(x)*sin(x)^2", Description: "Exponential times sine squared"},
			{Input: "exp(x)*cos(x)^2", Description: "Exponential times cosine squared"},
			{Input: "sin(x)*cos(x)*log(x)", Description: "Sine times cosine times logarithm", Unevaluated: true},
			{Input: "exp(x)*sin(x)*log(x)", Description: "Exponential times sine times logarithm", Unevaluated: true},
			{Input: "exp(x)*cos(x)*log(x)", Description: "Exponential times cosine times logarithm", Unevaluated: true},
			{Input: "x*sin(x)*cos(x)*log(x)", Description: "x times sine times cosine times logarithm", Unevaluated: true},
			{Input: "exp(x)*sin(x)*cos(x)*log(x)", Description: "Exponential times sine times cosine times logarithm", Unevaluated: true},
			{Input: "sin(x)^2*cos(x)^2", Description: "Sine squared times cosine squared"},
			{Input: "exp(x)*sin(x)^3", Description: "Exponential times sine cubed"},
			{Input: "exp(x)*cos(x)^3", Description: "Exponential times cosine cubed"},
			{Input: "sin(x)^3*cos(x)", Description: "Sine cubed times cosine"},
			{Input: "cos(x)^3*sin(x)", Description: "Cosine cubed times sine"},
			{Input: "exp(x)*sin(x)*cos(x)^2", Description: "Exponential times sine times cosine squared"},
			{Input: "exp(x)*cos(x)*sin(x)^2", Description: "Exponential times cosine times sine squared"},
			{Input: "x*exp(x)*sin(x)^2", Description: "x times exponential times sine squared"},
			{Input: "x*exp(x)*cos(x)^2", Description: "x times exponential times cosine squared"},
			{Input: "x^2*exp(x)*sin(x)", Description: "x squared times exponential times sine"},
		}},
	}},

	"complex": {Name: "complex", Categories: []Category{
		{Name: "Complex Polynomial", Cases: []Case{
			{Input: "x^5 + 3*x^4 - 2*x^3 + x^2 - 5*x + 1", Description: "Complex polynomial"},
			{Input: "(x^2 + 1)^3", Description: "Polynomial power"},
			{Input: "x^3/(x^2 + 1)", Description: "Rational polynomial"},
			{Input: "(x^4 - 1)/(x^2 + 1)", Description: "Polynomial division"},
			{Input: "x*sqrt(x^2 + 1)", Description: "Polynomial with radical"},
		}},
		{Name: "Advanced Trig", Cases: []Case{
			{Input: "sin(x)^3", Description: "Sine cubed"},
			{Input: "cos(x)^3", Description: "Cosine cubed"},
			{Input: "sin(x)^2*cos(x)", Description: "Sine squared times cosine"},
			{Input: "sin(x)*cos(x)^2", Description: "Sine times cosine squared"},
			{Input: "tan(x)^2", Description: "Tangent squared"},
			{Input: "sec(x)^3", Description: "Secant cubed"},
			{Input: "csc(x)^2", Description: "Cosecant squared"},
			{Input: "cot(x)^2", Description: "Cotangent squared"},
			{Input: "sin(x)*cos(x)^3", Description: "Sine times cosine cubed"},
			{Input: "sin(x)^4", Description: "Sine to fourth power"},
		}},
		{Name: "Hyperbolic", Cases: []Case{
			{Input: "sinh(x)^2", Description: "Hyperbolic sine squared"},
			{Input: "cosh(x)^2", Description: "Hyperbolic cosine squared"},
			{Input: "sinh(x)*cosh(x)", Description: "Hyperbolic sine times cosine"},
			{Input: "tanh(x)^2", Description: "Hyperbolic tangent squared"},
			{Input: "sech(x)^2", Description: "Hyperbolic secant squared"},
			{Input: "csch(x)^2", Description: "Hyperbolic cosecant squared"},
			{Input: "coth(x)^2", Description: "Hyperbolic cotangent squared"},
			{Input: "sinh(x)*cosh(x)^2", Description: "Hyperbolic sine times cosine squared"},
			{Input: "cosh(x)*sinh(x)^2", Description: "Hyperbolic cosine times sine squared"},
			{Input: "tanh(x)*sech(x)", Description: "Hyperbolic tangent times secant"},
		}},
		{Name: "Inverse Trigonometric", Cases: []Case{
			{Input: "1/sqrt(1-x^2)", Description: "Inverse sine derivative"},
			{Input: "1/(1+x^2)", Description: "Inverse tangent derivative"},
			{Input: "1/sqrt(x^2-1)", Description: "Inverse hyperbolic cosine derivative"},
			{Input: "1/(1-x^2)", Description: "Inverse hyperbolic tangent derivative"},
			{Input: "x/sqrt(1-x^2)", Description: "x times inverse sine derivative"},
			{Input: "x/(1+x^2)", Description: "x times inverse tangent derivative"},
			{Input: "asin(x)", Description: "Inverse sine"},
			{Input: "atan(x)", Description: "Inverse tangent"},
			{Input: "x*asin(x)", Description: "x times inverse sine"},
			{Input: "x*atan(x)", Description: "x times inverse tangent"},
		}},
		{Name: "Complex Exponential/Logarithmic", Cases: []Case{
			{Input: "exp(x^2)", Description: "Exponential of x squared", Unevaluated: true},
			{Input: "x*exp(x^2)", Description: "x times exponential of x squared"},
			{Input: "exp(x)*sin(x)", Description: "Exponential times sine"},
			{Input: "exp(x)*cos(x)", Description: "Exponential times cosine"},
			{Input: "exp(-x^2)", Description: "Gaussian function", Unevaluated: true},
			{Input: "x*exp(-x^2)", Description: "x times Gaussian"},
			{Input: "log(x)^2", Description: "Logarithm squared"},
			{Input: "x*log(x)^2", Description: "x times logarithm squared"},
			{Input: "log(x)/x^2", Description: "Logarithm over x squared"},
			{Input: "exp(x)/x", Description: "Exponential over x", Unevaluated: true},
		}},
		{Name: "Integration by Parts", Cases: []Case{
			{Input: "x^2*exp(x)", Description: "x squared times exponential"},
			{Input: "x^2*sin(x)", Description: "x squared times sine"},
			{Input: "x^2*cos(x)", Description: "x squared times cosine"},
			{Input: "x^2*log(x)", Description: "x squared times logarithm"},
			{Input: "x^3*exp(x)", Description: "x cubed times exponential"},
			{Input: "x*log(x)^2", Description: "x times logarithm squared"},
			{Input: "x^2*atan(x)", Description: "x squared times inverse tangent"},
			{Input: "x*exp(x)*sin(x)", Description: "x times exponential times sine"},
			{Input: "x*exp(x)*cos(x)", Description: "x times exponential times cosine"},
			{Input: "log(x)*sin(x)", Description: "Logarithm times sine", Unevaluated: true},
		}},
	}},

	"comprehensive": {Name: "comprehensive", Categories: []Category{
		{Name: "Basic Polynomial", Cases: []Case{
			{Input: "x", Description: "Basic linear"},
			{Input: "x^2", Description: "Basic quadratic"},
			{Input: "x^3", Description: "Basic cubic"},
			{Input: "x^4", Description: "Basic quartic"},
			{Input: "x^5", Description: "Basic quintic"},
			{Input: "2*x", Description: "Linear with coefficient"},
			{Input: "3*x^2", Description: "Quadratic with coefficient"},
			{Input: "4*x^3", Description: "Cubic with coefficient"},
			{Input: "x + 1", Description: "Linear with constant"},
			{Input: "x^2 + 2*x + 1", Description: "Perfect square trinomial"},
			{Input: "x^2 - 1", Description: "Difference of squares"},
			{Input: "x^3 + x^2 + x + 1", Description: "Cubic polynomial"},
			{Input: "x^4 - x^2", Description: "Quartic polynomial"},
			{Input: "2*x^3 - 3*x^2 + 5*x - 1", Description: "Complex cubic"},
			{Input: "x^5 - x^3 + x", Description: "Quintic polynomial"},
			{Input: "x^6 + x^4 + x^2 + 1", Description: "Even powers"},
			{Input: "x^7 - x^5 + x^3 - x", Description: "Odd powers"},
			{Input: "(x + 1)^2", Description: "Squared binomial"},
			{Input: "(x - 2)^3", Description: "Cubed binomial"},
			{Input: "(x + 1)*(x - 1)", Description: "Product of binomials"},
		}},
		{Name: "Trigonometric", Cases: []Case{
			{Input: "sin(x)", Description: "Basic sine"},
			{Input: "cos(x)", Description: "Basic cosine"},
			{Input: "tan(x)", Description: "Basic tangent"},
			{Input: "sec(x)^2", Description: "Secant squared"},
			{Input: "csc(x)^2", Description: "Cosecant squared"},
			{Input: "cot(x)^2", Description: "Cotangent squared"},
			{Input: "sin(x)^2", Description: "Sine squared"},
			{Input: "cos(x)^2", Description: "Cosine squared"},
			{Input: "sin(x)*cos(x)", Description: "Sine times cosine"},
			{Input: "sin(x)^3", Description: "Sine cubed"},
			{Input: "cos(x)^3", Description: "Cosine cubed"},
			{Input: "sin(x)^4", Description: "Sine to fourth"},
			{Input: "cos(x)^4", Description: "Cosine to fourth"},
			{Input: "tan(x)^2", Description: "Tangent squared"},
			{Input: "sec(x)^3", Description: "Secant cubed"},
			{Input: "csc(x)^3", Description: "Cosecant cubed"},
			{Input: "sin(x)*cos(x)^2", Description: "Sine times cosine squared"},
			{Input: "cos(x)*sin(x)^2", Description: "Cosine times sine squared"},
			{Input: "sin(x)*cos(x)^3", Description: "Sine times cosine cubed"},
			{Input: "cos(x)*sin(x)^3", Description: "Cosine times sine cubed"},
		}},
		{Name: "Exponential/Logarithmic", Cases: []Case{
			{Input: "exp(x)", Description: "Basic exponential"},
			{Input: "exp(-x)", Description: "Negative exponential"},
			{Input: "exp(2*x)", Description: "Exponential with coefficient"},
			{Input: "exp(x/2)", Description: "Exponential with fraction"},
			{Input: "log(x)", Description: "Basic logarithm"},
			{Input: "log(2*x)", Description: "Logarithm with coefficient"},
			{Input: "log(x^2)", Description: "Logarithm of square"},
			{Input: "log(sqrt(x))", Description: "Logarithm of square root"},
			{Input: "x*exp(x)", Description: "x times exponential"},
			{Input: "x^2*exp(x)", Description: "x squared times exponential"},
			{Input: "x*log(x)", Description: "x times logarithm"},
			{Input: "x^2*log(x)", Description: "x squared times logarithm"},
			{Input: "exp(x)*sin(x)", Description: "Exponential times sine"},
			{Input: "exp(x)*cos(x)", Description: "Exponential times cosine"},
			{Input: "exp(x)*log(x)", Description: "Exponential times logarithm", Unevaluated: true},
			{Input: "log(x)/x", Description: "Logarithm over x"},
			{Input: "log(x)/x^2", Description: "Logarithm over x squared"},
			{Input: "exp(x)/x", Description: "Exponential over x", Unevaluated: true},
			{Input: "exp(x)/x^2", Description: "Exponential over x squared", Unevaluated: true},
			{Input: "x*exp(x)*log(x)", Description: "x times exponential times logarithm", Unevaluated: true},
		}},
		{Name: "Rational", Cases: []Case{
			{Input: "1/x", Description: "Basic reciprocal"},
			{Input: "1/x^2", Description: "Reciprocal squared"},
			{Input: "1/x^3", Description: "Reciprocal cubed"},
			{Input: "1/(x+1)", Description: "Reciprocal with constant"},
			{Input: "1/(x-1)", Description: "Reciprocal with negative constant"},
			{Input: "1/(x^2+1)", Description: "Reciprocal with quadratic"},
			{Input: "1/(x^2-1)", Description: "Reciprocal with difference of squares"},
			{Input: "x/(x^2+1)", Description: "x over quadratic"},
			{Input: "x/(x^2-1)", Description: "x over difference of squares"},
			{Input: "x^2/(x^2+1)", Description: "x squared over quadratic"},
			{Input: "1/(x^3+1)", Description: "Reciprocal with cubic"},
			{Input: "1/(x^3-1)", Description: "Reciprocal with cubic difference"},
			{Input: "x/(x^3+1)", Description: "x over cubic"},
			{Input: "x^2/(x^3+1)", Description: "x squared over cubic"},
			{Input: "1/(x^4+1)", Description: "Reciprocal with quartic"},
			{Input: "1/(x^4-1)", Description: "Reciprocal with quartic difference"},
			{Input: "x/(x^4+1)", Description: "x over quartic"},
			{Input: "x^2/(x^4+1)", Description: "x squared over quartic"},
			{Input: "1/(x^2+x+1)", Description: "Reciprocal with quadratic trinomial"},
			{Input: "x/(x^2+x+1)", Description: "x over quadratic trinomial"},
		}},
		{Name: "Powers and Radicals", Cases: []Case{
			{Input: "sqrt(x)", Description: "Basic square root"},
			{Input: "x^(1/3)", Description: "Cube root"},
			{Input: "x^(1/4)", Description: "Fourth root"},
			{Input: "x^(3/2)", Description: "Power 3/2"},
			{Input: "x^(5/2)", Description: "Power 5/2"},
			{Input: "x^(-1/2)", Description: "Power -1/2"},
			{Input: "x^(-3/2)", Description: "Power -3/2"},
			{Input: "sqrt(x^2+1)", Description: "Square root of quadratic"},
			{Input: "sqrt(x^2-1)", Description: "Square root of difference"},
			{Input: "sqrt(1-x^2)", Description: "Square root of 1 minus x squared"},
			{Input: "x*sqrt(x^2+1)", Description: "x times square root"},
			{Input: "x*sqrt(x^2-1)", Description: "x times square root"},
			{Input: "x*sqrt(1-x^2)", Description: "x times square root"},
			{Input: "1/sqrt(x)", Description: "Reciprocal of square root"},
			{Input: "1/sqrt(x^2+1)", Description: "Reciprocal of square root"},
			{Input: "1/sqrt(x^2-1)", Description: "Reciprocal of square root"},
			{Input: "1/sqrt(1-x^2)", Description: "Reciprocal of square root"},
			{Input: "x/sqrt(x^2+1)", Description: "x over square root"},
			{Input: "x/sqrt(x^2-1)", Description: "x over square root"},
			{Input: "x/sqrt(1-x^2)", Description: "x over square root"},
		}},
	}},

	"improved": {Name: "improved", Categories: []Category{
		{Name: "Basic Polynomials", Cases: []Case{
			{Input: "x^2", Description: "Expected x^3/3"},
			{Input: "x^3 + 2*x^2 + 5*x + 1", Description: "Expected x^4/4 + 2*x^3/3 + 5*x^2/2 + x"},
		}},
		{Name: "Trigonometric Functions", Cases: []Case{
			{Input: "sin(x)", Description: "Expected -cos(x)"},
			{Input: "cos(x)", Description: "Expected sin(x)"},
			{Input: "sin(x)^2", Description: "Expected x/2 - sin(x)*cos(x)/2"},
			{Input: "cos(x)^2", Description: "Expected x/2 + sin(x)*cos(x)/2"},
			{Input: "sin(x)*cos(x)", Description: "Expected sin(x)^2/2"},
		}},
		{Name: "Exponential/Logarithmic", Cases: []Case{
			{Input: "exp(x)", Description: "Expected exp(x)"},
			{Input: "x*exp(x)", Description: "Expected exp(x)*(x-1)"},
			{Input: "x^2*exp(x)", Description: "Expected exp(x)*(x^2 - 2*x + 2)"},
			{Input: "1/x", Description: "Expected log(x)"},
			{Input: "log(x)", Description: "Expected x*log(x) - x"},
		}},
		{Name: "Rational Functions", Cases: []Case{
			{Input: "1/(x^2 + 1)", Description: "Expected atan(x)"},
			{Input: "1/(x^2 - 1)", Description: "Expected log(x-1)/2 - log(x+1)/2"},
			{Input: "x/(x^2 + 1)", Description: "Expected log(x^2 + 1)/2"},
		}},
		{Name: "Power Functions", Cases: []Case{
			{Input: "x^(-1/2)", Description: "Expected 2*sqrt(x)"},
			{Input: "x^(3/2)", Description: "Expected 2*x^(5/2)/5"},
			{Input: "sqrt(x)", Description: "Expected 2*x^(3/2)/3"},
		}},
		{Name: "Composite Functions", Cases: []Case{
			{Input: "sin(x^2)*x", Description: "Expected -cos(x^2)/2"},
			{Input: "exp(x^2)*x", Description: "Expected exp(x^2)/2"},
			{Input: "cos(x^3)*x^2", Description: "Expected sin(x^3)/3"},
		}},
		{Name: "Integration by Parts", Cases: []Case{
			{Input: "x*sin(x)", Description: "Expected sin(x) - x*cos(x)"},
			{Input: "x*cos(x)", Description: "Expected x*sin(x) + cos(x)"},
			{Input: "x*log(x)", Description: "Expected x^2*log(x)/2 - x^2/4"},
		}},
		{Name: "Advanced Trigonometric", Cases: []Case{
			{Input: "tan(x)", Description: "Expected -log(cos(x))"},
			{Input: "sec(x)^2", Description: "Expected tan(x)"},
			{Input: "csc(x)^2", Description: "Expected -cot(x)"},
		}},
		{Name: "Hyperbolic Functions", Cases: []Case{
			{Input: "sinh(x)", Description: "Expected cosh(x)"},
			{Input: "cosh(x)", Description: "Expected sinh(x)"},
			{Input: "tanh(x)", Description: "Expected log(cosh(x))"},
		}},
		{Name: "Very Complex Functions", Cases: []Case{
			{Input: "exp(x)*sin(x)", Description: "Expected exp(x)*sin(x)/2 - exp(x)*cos(x)/2"},
			{Input: "exp(x)*cos(x)", Description: "Expected exp(x)*sin(x)/2 + exp(x)*cos(x)/2"},
			{Input: "x*exp(x)*sin(x)", Description: "Expected exp(x)*((x-1)*sin(x) - x*cos(x))/2"},
		}},
		{Name: "Special Cases", Cases: []Case{
			{Input: "1/sqrt(1-x^2)", Description: "Expected asin(x)"},
			{Input: "1/(1+x^2)", Description: "Expected atan(x)"},
			{Input: "exp(-x^2)", Description: "Expected sqrt(pi)*erf(x)/2", Unevaluated: true},
		}},
		{Name: "Challenging Functions", Cases: []Case{
			{Input: "log(x)/x", Description: "Expected log(x)^2/2"},
			{Input: "x*sin(x^2)", Description: "Expected -cos(x^2)/2"},
			{Input: "exp(x)/x", Description: "Expected Ei(x)", Unevaluated: true},
		}},
	}},

	"final": {Name: "final", Categories: []Category{
		{Name: "Normal Inputs", Cases: []Case{
			{Input: "x^2", Description: "Basic polynomial"},
			{Input: "sin(x)", Description: "Trigonometric"},
			{Input: "exp(x)", Description: "Exponential"},
			{Input: "tanh(x)", Description: "Hyperbolic - previously problematic"},
			{Input: "x*exp(x)*sin(x)", Description: "Complex - previously problematic"},
			{Input: "1/(x^2+1)", Description: "Rational"},
			{Input: "log(x)", Description: "Logarithmic"},
			{Input: "sqrt(x)", Description: "Power function"},
		}},
		{Name: "Edge Cases", Cases: []Case{
			{Input: "x/0", Description: "Division by zero", Unevaluated: true},
			{Input: "sqrt(-1)", Description: "Imaginary result", Want: "I*x"},
			{Input: "log(0)", Description: "Log of zero", Unevaluated: true},
			{Input: "1/x^0", Description: "Zero power", Want: "x"},
		}},
	}},

	"definite": {Name: "definite", Categories: []Category{
		{Name: "Definite Integrals", Definite: []DefiniteCase{
			{Input: "x^2", Lower: "0", Upper: "2", Description: "Basic polynomial", Want: "2.6667"},
			{Input: "x^3", Lower: "1", Upper: "3", Description: "Cubic polynomial", Want: "20.0000"},
			{Input: "sin(x)", Lower: "0", Upper: "pi", Description: "Trigonometric function", Want: "2.0000"},
			{Input: "exp(x)", Lower: "0", Upper: "1", Description: "Exponential function", Want: "1.7183"},
			{Input: "1/x", Lower: "1", Upper: "2", Description: "Rational function", Want: "0.6931"},
			{Input: "sqrt(x)", Lower: "0", Upper: "4", Description: "Square root function", Want: "5.3333"},
			{Input: "x*sin(x)", Lower: "0", Upper: "pi", Description: "Integration by parts", Want: "3.1416"},
			{Input: "x*exp(x)", Lower: "0", Upper: "1", Description: "x times exponential", Want: "1.0000"},
			{Input: "x^4", Lower: "0", Upper: "1", Description: "Fourth power", Want: "0.2000"},
			{Input: "cos(x)", Lower: "0", Upper: "pi/2", Description: "Cosine function", Want: "1.0000"},
		}},
	}},
}

// Lookup returns the named suite.
func Lookup(name string) (Suite, bool) {
	s, ok := suites[name]
	return s, ok
}

// Names lists the available suites in order.
func Names() []string {
	names := make([]string, 0, len(suites))
	for n := range suites {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
