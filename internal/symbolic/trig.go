package symbolic

// TrigSimplify applies the Pythagorean identities sin²+cos²=1 and
// cosh²−sinh²=1 across the terms of every sum, and folds sin/cos into tan
// and sinh/cosh into tanh.
func TrigSimplify(e Expr) Expr {
	switch v := e.(type) {
	case *Add:
		terms := make([]Expr, len(v.terms))
		for i, t := range v.terms {
			terms[i] = TrigSimplify(t)
		}
		return pythagoras(AddOf(terms...))
	case *Mul:
		factors := make([]Expr, len(v.factors))
		for i, f := range v.factors {
			factors[i] = TrigSimplify(f)
		}
		return foldQuotients(MulOf(factors...))
	case *Pow:
		return PowOf(TrigSimplify(v.base), TrigSimplify(v.exp))
	case *Func:
		return FuncOf(v.name, TrigSimplify(v.arg))
	}
	return e
}

// squareOf matches c * name(u)^2 * K and returns c, u, and the cofactor K.
func squareOf(t Expr, name string) (c *Num, arg, cof Expr, ok bool) {
	c, rest := SplitCoeff(t)
	factors := []Expr{rest}
	if m, isMul := rest.(*Mul); isMul {
		factors = m.factors
	}
	for i, f := range factors {
		p, isPow := f.(*Pow)
		if !isPow {
			continue
		}
		fn, isFunc := p.base.(*Func)
		n, isNum := p.exp.(*Num)
		if !isFunc || fn.name != name || !isNum || numCmp(n, N(2)) != 0 {
			continue
		}
		others := make([]Expr, 0, len(factors)-1)
		others = append(others, factors[:i]...)
		others = append(others, factors[i+1:]...)
		return c, fn.arg, MulOf(others...), true
	}
	return nil, nil, nil, false
}

type square struct {
	idx  int
	c    *Num
	arg  Expr
	cof  Expr
	used bool
}

func collectSquares(terms []Expr, name string) []*square {
	var out []*square
	for i, t := range terms {
		if c, arg, cof, ok := squareOf(t, name); ok {
			out = append(out, &square{idx: i, c: c, arg: arg, cof: cof})
		}
	}
	return out
}

func pythagoras(e Expr) Expr {
	a, ok := e.(*Add)
	if !ok {
		return e
	}
	terms := append([]Expr(nil), a.terms...)
	changed := false

	combine := func(sq, other string, hyperbolic bool) {
		firsts := collectSquares(terms, sq)
		seconds := collectSquares(terms, other)
		for _, s := range firsts {
			for _, o := range seconds {
				if s.used || o.used || !Equal(s.arg, o.arg) || !Equal(s.cof, o.cof) {
					continue
				}
				s.used, o.used = true, true
				changed = true
				// sin: c1 sin² + c2 cos² = c2 + (c1 - c2) sin²
				// cosh: c1 cosh² + c2 sinh² = c1 + (c1 + c2) sinh²
				var base, rem *Num
				var remName string
				if hyperbolic {
					base, rem, remName = s.c, numAdd(s.c, o.c), other
				} else {
					base, rem, remName = o.c, numSub(s.c, o.c), sq
				}
				terms[s.idx] = MulOf(base, s.cof)
				terms[o.idx] = MulOf(rem, PowOf(FuncOf(remName, s.arg), N(2)), s.cof)
			}
		}
	}
	combine("sin", "cos", false)
	combine("cosh", "sinh", true)

	// 1 - sin² → cos² and friends, for a bare constant term.
	var constant *Num
	constIdx := -1
	for i, t := range terms {
		if n, ok := t.(*Num); ok {
			constant, constIdx = n, i
		}
	}
	if constant != nil {
		rules := []struct {
			from, to string
			sign     int64
		}{
			{"sin", "cos", -1},
			{"cos", "sin", -1},
			{"sinh", "cosh", 1},
			{"cosh", "sinh", -1},
		}
		for _, r := range rules {
			for _, s := range collectSquares(terms, r.from) {
				if !IsOne(s.cof) || numCmp(s.c, numMul(N(r.sign), constant)) != 0 {
					continue
				}
				// c ± c·from² = ±c·to² with the sign of the remaining term.
				to := constant
				if r.sign == -1 && r.from == "cosh" {
					to = numNeg(constant)
				}
				terms[constIdx] = N(0)
				terms[s.idx] = MulOf(to, PowOf(FuncOf(r.to, s.arg), N(2)))
				changed = true
				constant = nil
				break
			}
			if constant == nil {
				break
			}
		}
	}
	if !changed {
		return e
	}
	return AddOf(terms...)
}

// foldQuotients rewrites sin(u)^k·cos(u)^-k as tan(u)^k and the
// hyperbolic analogue.
func foldQuotients(e Expr) Expr {
	m, ok := e.(*Mul)
	if !ok {
		return e
	}
	type pw struct {
		idx int
		arg Expr
		exp *Num
	}
	find := func(name string) []pw {
		var out []pw
		for i, f := range m.factors {
			base, exp := f, Expr(N(1))
			if p, ok := f.(*Pow); ok {
				base, exp = p.base, p.exp
			}
			fn, ok := base.(*Func)
			n, isNum := exp.(*Num)
			if ok && isNum && fn.name == name {
				out = append(out, pw{idx: i, arg: fn.arg, exp: n})
			}
		}
		return out
	}
	factors := append([]Expr(nil), m.factors...)
	changed := false
	for _, pair := range [][3]string{{"sin", "cos", "tan"}, {"sinh", "cosh", "tanh"}} {
		for _, s := range find(pair[0]) {
			for _, c := range find(pair[1]) {
				if !Equal(s.arg, c.arg) || numCmp(s.exp, numNeg(c.exp)) != 0 {
					continue
				}
				factors[s.idx] = PowOf(FuncOf(pair[2], s.arg), s.exp)
				factors[c.idx] = N(1)
				changed = true
			}
		}
	}
	if !changed {
		return e
	}
	return MulOf(factors...)
}

// RewriteTrig expresses tan, sec, csc and cot through sin and cos, and the
// hyperbolic functions through exp.
func RewriteTrig(e Expr) Expr {
	switch v := e.(type) {
	case *Add:
		terms := make([]Expr, len(v.terms))
		for i, t := range v.terms {
			terms[i] = RewriteTrig(t)
		}
		return AddOf(terms...)
	case *Mul:
		factors := make([]Expr, len(v.factors))
		for i, f := range v.factors {
			factors[i] = RewriteTrig(f)
		}
		return MulOf(factors...)
	case *Pow:
		return PowOf(RewriteTrig(v.base), RewriteTrig(v.exp))
	case *Func:
		u := RewriteTrig(v.arg)
		ep, em := FuncOf("exp", u), FuncOf("exp", Neg(u))
		switch v.name {
		case "tan":
			return Div(FuncOf("sin", u), FuncOf("cos", u))
		case "sec":
			return PowOf(FuncOf("cos", u), N(-1))
		case "csc":
			return PowOf(FuncOf("sin", u), N(-1))
		case "cot":
			return Div(FuncOf("cos", u), FuncOf("sin", u))
		case "sinh":
			return MulOf(Q(1, 2), Subtract(ep, em))
		case "cosh":
			return MulOf(Q(1, 2), AddOf(ep, em))
		case "tanh":
			return Div(Subtract(ep, em), AddOf(ep, em))
		case "sech":
			return Div(N(2), AddOf(ep, em))
		case "csch":
			return Div(N(2), Subtract(ep, em))
		case "coth":
			return Div(AddOf(ep, em), Subtract(ep, em))
		case "sin", "cos":
			// Double angles unfold so products of the half angle compare.
			if c, rest := SplitCoeff(u); numCmp(c, N(2)) == 0 {
				s, co := FuncOf("sin", rest), FuncOf("cos", rest)
				if v.name == "sin" {
					return MulOf(N(2), s, co)
				}
				return AddOf(MulOf(N(2), PowOf(co, N(2))), N(-1))
			}
		}
		return FuncOf(v.name, u)
	}
	return e
}

// maxZeroPasses bounds the sin² elimination loop in IsZeroExpr.
const maxZeroPasses = 8

// IsZeroExpr is a best-effort symbolic zero test. It rewrites trig and
// hyperbolic functions, clears denominators, expands and eliminates sin² in
// favour of cos². A false result does not prove e is nonzero.
func IsZeroExpr(e Expr) bool {
	e = e.Simplify()
	if IsZero(e) {
		return true
	}
	num, _ := Together(Expand(RewriteTrig(e)))
	num = Expand(num)
	for i := 0; i < maxZeroPasses; i++ {
		if IsZero(num) {
			return true
		}
		next := Expand(reduceSines(num))
		if next.String() == num.String() {
			break
		}
		num = next
	}
	return IsZero(num)
}

// reduceSines replaces sin(u)^k, k >= 2, by (1 - cos(u)^2)·sin(u)^(k-2).
func reduceSines(e Expr) Expr {
	switch v := e.(type) {
	case *Add:
		terms := make([]Expr, len(v.terms))
		for i, t := range v.terms {
			terms[i] = reduceSines(t)
		}
		return AddOf(terms...)
	case *Mul:
		factors := make([]Expr, len(v.factors))
		for i, f := range v.factors {
			factors[i] = reduceSines(f)
		}
		return MulOf(factors...)
	case *Pow:
		fn, ok := v.base.(*Func)
		n, isNum := v.exp.(*Num)
		if ok && isNum && fn.name == "sin" {
			if k, ok := n.Int64(); ok && k >= 2 {
				return MulOf(
					AddOf(N(1), Neg(PowOf(FuncOf("cos", fn.arg), N(2)))),
					PowOf(fn, N(k-2)),
				)
			}
		}
	}
	return e
}
