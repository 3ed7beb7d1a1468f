package symbolic

// Integral is an unevaluated indefinite integral. It is returned when no
// closed form was found and is never numerically evaluable.
type Integral struct {
	integrand Expr
	variable  string
}

// IntegralOf returns the unevaluated integral of integrand d(variable).
func IntegralOf(integrand Expr, variable string) Expr {
	return &Integral{integrand: integrand.Simplify(), variable: variable}
}

func (g *Integral) Integrand() Expr          { return g.integrand }
func (g *Integral) Variable() string         { return g.variable }
func (g *Integral) Simplify() Expr           { return g }
func (g *Integral) Eval(Env) (float64, bool) { return 0, false }

func (g *Integral) String() string {
	return "Integral(" + g.integrand.String() + ", " + g.variable + ")"
}

func (g *Integral) LaTeX() string {
	return "\\int " + g.integrand.LaTeX() + "\\, d" + g.variable
}

func (g *Integral) Sub(name string, value Expr) Expr {
	if name == g.variable {
		return g
	}
	return IntegralOf(g.integrand.Sub(name, value), g.variable)
}

func (g *Integral) Diff(name string) Expr {
	if name == g.variable {
		return g.integrand
	}
	return IntegralOf(g.integrand.Diff(name), g.variable)
}

// HasIntegral reports whether e contains an unevaluated integral.
func HasIntegral(e Expr) bool {
	found := false
	Walk(e, func(n Expr) bool {
		if _, ok := n.(*Integral); ok {
			found = true
		}
		return !found
	})
	return found
}
