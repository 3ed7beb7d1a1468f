package symbolic

import "math"

// Pow is base raised to exp.
type Pow struct{ base, exp Expr }

// PowOf returns the canonical power base^exp.
func PowOf(base, exp Expr) Expr { return (&Pow{base: base, exp: exp}).Simplify() }

// Sqrt returns e^(1/2).
func Sqrt(e Expr) Expr { return PowOf(e, Q(1, 2)) }

func (p *Pow) Base() Expr { return p.base }
func (p *Pow) Exp() Expr  { return p.exp }

const (
	// maxExactPower bounds exact integer exponentiation of rationals.
	maxExactPower = 1000
	// maxExactBits bounds the size of a folded power, so 10^10^10 stays
	// symbolic instead of allocating gigabytes.
	maxExactBits = 1 << 16
)

// exactPowerFits reports whether v^n can be folded within maxExactBits.
func exactPowerFits(v *Num, n int64) bool {
	if v.IsNegOne() {
		return true
	}
	if n < -maxExactPower || n > maxExactPower {
		return false
	}
	if n < 0 {
		n = -n
	}
	bits := v.val.Num().BitLen()
	if d := v.val.Denom().BitLen(); d > bits {
		bits = d
	}
	return int64(bits)*n <= maxExactBits
}

func (p *Pow) Simplify() Expr {
	b := p.base.Simplify()
	e := p.exp.Simplify()

	en, eNum := e.(*Num)
	if eNum && en.IsZero() {
		return N(1)
	}
	if eNum && en.IsOne() {
		return b
	}

	switch v := b.(type) {
	case *Num:
		if v.IsOne() {
			return N(1)
		}
		if !eNum {
			break
		}
		if v.IsZero() {
			if en.IsPos() {
				return N(0)
			}
			break
		}
		if n, ok := en.Int64(); ok {
			if !exactPowerFits(v, n) {
				break
			}
			r, _ := numPowInt(v, n)
			return r
		}
		num, den := en.Numerator(), en.Denominator()
		pn, okP := num.Int64()
		qn, okQ := den.Int64()
		if !okP || !okQ || !exactPowerFits(v, pn) {
			break
		}
		if v.IsPos() {
			if root, ok := numRoot(v, qn); ok {
				r, _ := numPowInt(root, pn)
				return r
			}
			if qn == 2 && v.IsInt() {
				if out, rest := squarePart(v); !out.IsOne() {
					r, _ := numPowInt(out, pn)
					return MulOf(r, PowOf(rest, e))
				}
			}
			break
		}
		if qn == 2 {
			return MulOf(PowOf(I, N(pn)), PowOf(numNeg(v), e))
		}
	case *Const:
		if v.name == "I" && eNum {
			if n, ok := en.Int64(); ok {
				switch ((n % 4) + 4) % 4 {
				case 0:
					return N(1)
				case 1:
					return I
				case 2:
					return N(-1)
				default:
					return &Mul{factors: []Expr{N(-1), I}}
				}
			}
		}
	case *Pow:
		if eNum && en.IsInt() {
			return PowOf(v.base, MulOf(v.exp, e))
		}
		if ie, ok := v.exp.(*Num); ok && eNum && ie.IsInt() && numCmp(numAbs(ie), N(1)) > 0 {
			// (u^(2k))^(1/2) is not u^k for negative u, so only odd
			// inner powers fold.
			if n, _ := ie.Int64(); n%2 != 0 {
				return PowOf(v.base, MulOf(v.exp, e))
			}
		}
	case *Mul:
		if eNum && en.IsInt() {
			factors := make([]Expr, len(v.factors))
			for i, f := range v.factors {
				factors[i] = PowOf(f, e)
			}
			return MulOf(factors...)
		}
		if c, ok := v.factors[0].(*Num); ok && c.IsPos() && eNum {
			_, rest := SplitCoeff(v)
			return MulOf(PowOf(c, e), PowOf(rest, e))
		}
	case *Func:
		if v.name == "exp" {
			return FuncOf("exp", MulOf(e, v.arg))
		}
	}
	return &Pow{base: b, exp: e}
}

// needsParens reports whether e must be wrapped when used as a power base.
func needsParens(e Expr) bool {
	switch v := e.(type) {
	case *Add, *Mul, *Pow:
		return true
	case *Num:
		return v.IsNeg() || !v.IsInt()
	}
	return false
}

func (p *Pow) String() string {
	if n, ok := p.exp.(*Num); ok {
		switch {
		case numCmp(n, Q(1, 2)) == 0:
			return "sqrt(" + p.base.String() + ")"
		case n.IsNegOne():
			return "1/" + denString(p.base)
		case numCmp(n, Q(-1, 2)) == 0:
			return "1/sqrt(" + p.base.String() + ")"
		case n.IsNeg():
			return "1/" + (&Pow{base: p.base, exp: numNeg(n)}).String()
		}
	}
	bs := p.base.String()
	if needsParens(p.base) {
		bs = "(" + bs + ")"
	}
	es := p.exp.String()
	if !simpleExponent(p.exp) {
		es = "(" + es + ")"
	}
	return bs + "^" + es
}

func denString(e Expr) string {
	switch e.(type) {
	case *Add, *Mul:
		return "(" + e.String() + ")"
	}
	return e.String()
}

func simpleExponent(e Expr) bool {
	switch v := e.(type) {
	case *Num:
		return v.IsInt() && !v.IsNeg()
	case *Sym, *Const:
		return true
	}
	return false
}

func (p *Pow) LaTeX() string {
	if n, ok := p.exp.(*Num); ok {
		switch {
		case numCmp(n, Q(1, 2)) == 0:
			return "\\sqrt{" + p.base.LaTeX() + "}"
		case n.IsNeg():
			return "\\frac{1}{" + (&Pow{base: p.base, exp: numNeg(n)}).Simplify().LaTeX() + "}"
		}
		if f, ok := p.base.(*Func); ok && n.IsInt() && f.name != "exp" && f.name != "abs" {
			name, arg := f.latexParts()
			return name + "^{" + n.String() + "}" + arg
		}
	}
	bs := p.base.LaTeX()
	if needsParens(p.base) || isFunc(p.base) {
		bs = "\\left(" + bs + "\\right)"
	}
	return bs + "^{" + p.exp.LaTeX() + "}"
}

func isFunc(e Expr) bool { _, ok := e.(*Func); return ok }

func (p *Pow) Sub(name string, value Expr) Expr {
	return PowOf(p.base.Sub(name, value), p.exp.Sub(name, value))
}

func (p *Pow) Diff(name string) Expr {
	db := p.base.Diff(name)
	de := p.exp.Diff(name)
	if IsZero(de) {
		if IsZero(db) {
			return N(0)
		}
		return MulOf(p.exp, PowOf(p.base, AddOf(p.exp, N(-1))), db)
	}
	if IsZero(db) {
		return MulOf(p, FuncOf("log", p.base), de)
	}
	return MulOf(p, AddOf(
		MulOf(de, FuncOf("log", p.base)),
		MulOf(p.exp, db, PowOf(p.base, N(-1))),
	))
}

func (p *Pow) Eval(env Env) (float64, bool) {
	b, ok := p.base.Eval(env)
	if !ok {
		return 0, false
	}
	e, ok := p.exp.Eval(env)
	if !ok {
		return 0, false
	}
	if b == 0 && e < 0 {
		return 0, false
	}
	return finite(math.Pow(b, e))
}

// squarePart splits a positive integer n into s and r with n = s^2 * r,
// trying prime squares below 1000.
func squarePart(n *Num) (*Num, *Num) {
	v, ok := n.Int64()
	if !ok {
		return N(1), n
	}
	s := int64(1)
	for p := int64(2); p < 1000 && p*p <= v; p++ {
		for v%(p*p) == 0 {
			v /= p * p
			s *= p
		}
	}
	return N(s), N(v)
}
