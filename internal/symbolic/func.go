package symbolic

import (
	"math"
	"strings"
)

// Func is a named function applied to one argument. Names outside the
// built-in set are treated as opaque user functions such as f(x).
type Func struct {
	name string
	arg  Expr
}

// FuncOf returns the canonical application name(arg).
func FuncOf(name string, arg Expr) Expr { return (&Func{name: name, arg: arg}).Simplify() }

// Builtin reports whether name is a function the kernel knows how to
// evaluate and differentiate.
func Builtin(name string) bool {
	_, ok := evalTable[name]
	return ok
}

func (f *Func) Name() string { return f.name }
func (f *Func) Arg() Expr    { return f.arg }

var (
	oddFuncs = map[string]bool{
		"sin": true, "tan": true, "csc": true, "cot": true, "asin": true, "atan": true,
		"sinh": true, "tanh": true, "csch": true, "coth": true, "asinh": true, "atanh": true,
	}
	evenFuncs = map[string]bool{"cos": true, "sec": true, "cosh": true, "sech": true, "abs": true}
)

// piMultiple returns k when e is k*pi for rational k.
func piMultiple(e Expr) (*Num, bool) {
	if IsZero(e) {
		return N(0), true
	}
	c, rest := SplitCoeff(e)
	if k, ok := rest.(*Const); ok && k.name == "pi" {
		return c, true
	}
	return nil, false
}

// extractMinus reports whether e carries an explicit negative coefficient
// and returns -e.
func extractMinus(e Expr) (Expr, bool) {
	c, _ := SplitCoeff(e)
	if c.IsNeg() {
		return Neg(e), true
	}
	return nil, false
}

func (f *Func) Simplify() Expr {
	a := f.arg.Simplify()

	if inner, ok := a.(*Func); ok {
		switch {
		case f.name == "exp" && inner.name == "log",
			f.name == "log" && inner.name == "exp",
			f.name == "sin" && inner.name == "asin",
			f.name == "tan" && inner.name == "atan",
			f.name == "sinh" && inner.name == "asinh",
			f.name == "tanh" && inner.name == "atanh":
			return inner.arg
		case f.name == "abs" && inner.name == "abs":
			return inner
		}
	}

	if pos, ok := extractMinus(a); ok {
		switch {
		case oddFuncs[f.name]:
			return Neg(FuncOf(f.name, pos))
		case evenFuncs[f.name]:
			return FuncOf(f.name, pos)
		}
	}

	switch f.name {
	case "sin", "cos", "tan":
		if k, ok := piMultiple(a); ok {
			if v, ok := trigAtPiMultiple(f.name, k); ok {
				return v
			}
		}
	case "sec", "sech":
		if IsZero(a) {
			return N(1)
		}
	case "asin", "atan", "sinh", "tanh", "asinh", "atanh":
		if IsZero(a) {
			return N(0)
		}
	case "acos", "acosh":
		if IsOne(a) {
			return N(0)
		}
	case "cosh":
		if IsZero(a) {
			return N(1)
		}
	case "exp":
		if IsZero(a) {
			return N(1)
		}
		if m, ok := a.(*Mul); ok && len(m.factors) == 2 {
			if c, ok := m.factors[0].(*Num); ok {
				if lg, ok := m.factors[1].(*Func); ok && lg.name == "log" {
					return PowOf(lg.arg, c)
				}
			}
		}
	case "log":
		if IsOne(a) {
			return N(0)
		}
	case "abs":
		if n, ok := a.(*Num); ok {
			return numAbs(n)
		}
		if c, ok := a.(*Const); ok && c.name == "pi" {
			return c
		}
	}
	return &Func{name: f.name, arg: a}
}

// trigAtPiMultiple evaluates sin, cos and tan at integer and half-integer
// multiples of pi.
func trigAtPiMultiple(name string, k *Num) (Expr, bool) {
	twice := numMul(k, N(2))
	n, ok := twice.Int64()
	if !ok {
		return nil, false
	}
	// n counts half-pi steps.
	switch name {
	case "sin":
		return N([]int64{0, 1, 0, -1}[((n%4)+4)%4]), true
	case "cos":
		return N([]int64{1, 0, -1, 0}[((n%4)+4)%4]), true
	case "tan":
		if n%2 == 0 {
			return N(0), true
		}
	}
	return nil, false
}

func (f *Func) String() string { return f.name + "(" + f.arg.String() + ")" }

var latexNames = map[string]string{
	"sin": "\\sin", "cos": "\\cos", "tan": "\\tan",
	"sec": "\\sec", "csc": "\\csc", "cot": "\\cot",
	"asin": "\\operatorname{asin}", "acos": "\\operatorname{acos}", "atan": "\\operatorname{atan}",
	"sinh": "\\sinh", "cosh": "\\cosh", "tanh": "\\tanh", "coth": "\\coth",
	"sech": "\\operatorname{sech}", "csch": "\\operatorname{csch}",
	"asinh": "\\operatorname{asinh}", "acosh": "\\operatorname{acosh}", "atanh": "\\operatorname{atanh}",
	"log": "\\log",
}

func (f *Func) latexParts() (string, string) {
	name, ok := latexNames[f.name]
	if !ok {
		name = f.name
		if strings.HasSuffix(name, "'") {
			name = strings.TrimSuffix(name, "'") + "^{\\prime}"
		}
	}
	return name, "{\\left(" + f.arg.LaTeX() + " \\right)}"
}

func (f *Func) LaTeX() string {
	switch f.name {
	case "exp":
		return "e^{" + f.arg.LaTeX() + "}"
	case "abs":
		return "\\left|{" + f.arg.LaTeX() + "}\\right|"
	}
	name, arg := f.latexParts()
	return name + arg
}

func (f *Func) Sub(name string, value Expr) Expr {
	return FuncOf(f.name, f.arg.Sub(name, value))
}

// outerDiff returns d/du name(u) evaluated at u.
func outerDiff(name string, u Expr) Expr {
	switch name {
	case "sin":
		return FuncOf("cos", u)
	case "cos":
		return Neg(FuncOf("sin", u))
	case "tan":
		return AddOf(N(1), PowOf(FuncOf("tan", u), N(2)))
	case "sec":
		return MulOf(FuncOf("sec", u), FuncOf("tan", u))
	case "csc":
		return Neg(MulOf(FuncOf("csc", u), FuncOf("cot", u)))
	case "cot":
		return Neg(AddOf(N(1), PowOf(FuncOf("cot", u), N(2))))
	case "asin":
		return PowOf(AddOf(N(1), Neg(PowOf(u, N(2)))), Q(-1, 2))
	case "acos":
		return Neg(PowOf(AddOf(N(1), Neg(PowOf(u, N(2)))), Q(-1, 2)))
	case "atan":
		return PowOf(AddOf(N(1), PowOf(u, N(2))), N(-1))
	case "sinh":
		return FuncOf("cosh", u)
	case "cosh":
		return FuncOf("sinh", u)
	case "tanh":
		return AddOf(N(1), Neg(PowOf(FuncOf("tanh", u), N(2))))
	case "sech":
		return Neg(MulOf(FuncOf("sech", u), FuncOf("tanh", u)))
	case "csch":
		return Neg(MulOf(FuncOf("csch", u), FuncOf("coth", u)))
	case "coth":
		return AddOf(N(1), Neg(PowOf(FuncOf("coth", u), N(2))))
	case "asinh":
		return PowOf(AddOf(PowOf(u, N(2)), N(1)), Q(-1, 2))
	case "acosh":
		return PowOf(AddOf(PowOf(u, N(2)), N(-1)), Q(-1, 2))
	case "atanh":
		return PowOf(AddOf(N(1), Neg(PowOf(u, N(2)))), N(-1))
	case "exp":
		return FuncOf("exp", u)
	case "log":
		return PowOf(u, N(-1))
	case "abs":
		return MulOf(u, PowOf(FuncOf("abs", u), N(-1)))
	}
	return &Func{name: name + "'", arg: u}
}

func (f *Func) Diff(name string) Expr {
	da := f.arg.Diff(name)
	if IsZero(da) {
		return N(0)
	}
	return MulOf(outerDiff(f.name, f.arg), da)
}

var evalTable = map[string]func(float64) float64{
	"sin":   math.Sin,
	"cos":   math.Cos,
	"tan":   math.Tan,
	"sec":   func(v float64) float64 { return 1 / math.Cos(v) },
	"csc":   func(v float64) float64 { return 1 / math.Sin(v) },
	"cot":   func(v float64) float64 { return math.Cos(v) / math.Sin(v) },
	"asin":  math.Asin,
	"acos":  math.Acos,
	"atan":  math.Atan,
	"sinh":  math.Sinh,
	"cosh":  math.Cosh,
	"tanh":  math.Tanh,
	"sech":  func(v float64) float64 { return 1 / math.Cosh(v) },
	"csch":  func(v float64) float64 { return 1 / math.Sinh(v) },
	"coth":  func(v float64) float64 { return 1 / math.Tanh(v) },
	"asinh": math.Asinh,
	"acosh": math.Acosh,
	"atanh": math.Atanh,
	"exp":   math.Exp,
	"log": func(v float64) float64 {
		if v <= 0 {
			return math.NaN()
		}
		return math.Log(v)
	},
	"abs": math.Abs,
}

func (f *Func) Eval(env Env) (float64, bool) {
	fn, ok := evalTable[f.name]
	if !ok {
		return 0, false
	}
	v, ok := f.arg.Eval(env)
	if !ok {
		return 0, false
	}
	return finite(fn(v))
}
