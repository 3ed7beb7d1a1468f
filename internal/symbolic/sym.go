package symbolic

import "math"

// Sym is a free variable.
type Sym struct{ name string }

// S returns the symbol with the given name.
func S(name string) *Sym { return &Sym{name: name} }

// Name returns the symbol name.
func (s *Sym) Name() string { return s.name }

func (s *Sym) Simplify() Expr { return s }
func (s *Sym) String() string { return s.name }
func (s *Sym) LaTeX() string  { return s.name }

func (s *Sym) Sub(name string, value Expr) Expr {
	if s.name == name {
		return value
	}
	return s
}

func (s *Sym) Diff(name string) Expr {
	if s.name == name {
		return N(1)
	}
	return N(0)
}

func (s *Sym) Eval(env Env) (float64, bool) {
	v, ok := env[s.name]
	if !ok {
		return 0, false
	}
	return finite(v)
}

// Const is a named mathematical constant.
type Const struct{ name string }

var (
	// Pi is the circle constant.
	Pi = &Const{name: "pi"}
	// I is the imaginary unit. It has no real value, so Eval fails.
	I = &Const{name: "I"}
)

// E returns Euler's number as exp(1).
func E() Expr { return FuncOf("exp", N(1)) }

func (c *Const) Simplify() Expr        { return c }
func (c *Const) String() string        { return c.name }
func (c *Const) Sub(string, Expr) Expr { return c }
func (c *Const) Diff(string) Expr      { return N(0) }

func (c *Const) LaTeX() string {
	if c == Pi || c.name == "pi" {
		return "\\pi"
	}
	return "i"
}

func (c *Const) Eval(Env) (float64, bool) {
	if c.name == "pi" {
		return math.Pi, true
	}
	return 0, false
}
