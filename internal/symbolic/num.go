package symbolic

import (
	"fmt"
	"math/big"
)

// Num is an exact rational number.
type Num struct{ val *big.Rat }

// N returns the integer n.
func N(n int64) *Num { return &Num{val: new(big.Rat).SetInt64(n)} }

// Q returns the fraction p/q. It panics if q is zero.
func Q(p, q int64) *Num {
	if q == 0 {
		panic("symbolic: zero denominator")
	}
	return &Num{val: new(big.Rat).SetFrac64(p, q)}
}

// NRat wraps a copy of r.
func NRat(r *big.Rat) *Num { return &Num{val: new(big.Rat).Set(r)} }

// NFloat converts a finite float64 exactly.
func NFloat(f float64) *Num {
	r := new(big.Rat)
	if r.SetFloat64(f) == nil {
		return N(0)
	}
	return &Num{val: r}
}

// ParseNum parses a decimal literal such as "2", "0.25" or "3/4".
func ParseNum(s string) (*Num, bool) {
	r, ok := new(big.Rat).SetString(s)
	if !ok {
		return nil, false
	}
	return &Num{val: r}, true
}

func (n *Num) Simplify() Expr           { return n }
func (n *Num) Sub(string, Expr) Expr    { return n }
func (n *Num) Diff(string) Expr         { return N(0) }
func (n *Num) Eval(Env) (float64, bool) { return finite(n.Float64()) }

// Rat returns a copy of the value.
func (n *Num) Rat() *big.Rat { return new(big.Rat).Set(n.val) }

func (n *Num) Float64() float64 { f, _ := n.val.Float64(); return f }
func (n *Num) IsZero() bool     { return n.val.Sign() == 0 }
func (n *Num) IsOne() bool      { return n.val.IsInt() && n.val.Num().IsInt64() && n.val.Num().Int64() == 1 }
func (n *Num) IsNegOne() bool   { return n.val.IsInt() && n.val.Num().IsInt64() && n.val.Num().Int64() == -1 }
func (n *Num) IsInt() bool      { return n.val.IsInt() }
func (n *Num) IsNeg() bool      { return n.val.Sign() < 0 }
func (n *Num) IsPos() bool      { return n.val.Sign() > 0 }
func (n *Num) Sign() int        { return n.val.Sign() }

// Int64 returns the value when it is an integer that fits in int64.
func (n *Num) Int64() (int64, bool) {
	if !n.val.IsInt() || !n.val.Num().IsInt64() {
		return 0, false
	}
	return n.val.Num().Int64(), true
}

// Numerator and Denominator return the reduced parts as new Nums.
func (n *Num) Numerator() *Num   { return &Num{val: new(big.Rat).SetInt(n.val.Num())} }
func (n *Num) Denominator() *Num { return &Num{val: new(big.Rat).SetInt(n.val.Denom())} }

func (n *Num) String() string {
	if n.val.IsInt() {
		return n.val.Num().String()
	}
	return n.val.RatString()
}

func (n *Num) LaTeX() string {
	if n.val.IsInt() {
		return n.val.Num().String()
	}
	sign := ""
	v := new(big.Rat).Set(n.val)
	if v.Sign() < 0 {
		sign = "-"
		v.Neg(v)
	}
	return fmt.Sprintf("%s\\frac{%s}{%s}", sign, v.Num().String(), v.Denom().String())
}

func numAdd(a, b *Num) *Num { return &Num{val: new(big.Rat).Add(a.val, b.val)} }
func numSub(a, b *Num) *Num { return &Num{val: new(big.Rat).Sub(a.val, b.val)} }
func numMul(a, b *Num) *Num { return &Num{val: new(big.Rat).Mul(a.val, b.val)} }
func numNeg(a *Num) *Num    { return &Num{val: new(big.Rat).Neg(a.val)} }
func numAbs(a *Num) *Num    { return &Num{val: new(big.Rat).Abs(a.val)} }
func numCmp(a, b *Num) int  { return a.val.Cmp(b.val) }

func numRecip(a *Num) *Num {
	if a.IsZero() {
		panic("symbolic: division by zero")
	}
	return &Num{val: new(big.Rat).Inv(a.val)}
}

func numDiv(a, b *Num) *Num { return numMul(a, numRecip(b)) }

// numPowInt raises a to an integer power. ok is false for 0^negative.
func numPowInt(a *Num, e int64) (*Num, bool) {
	if e < 0 {
		if a.IsZero() {
			return nil, false
		}
		a = numRecip(a)
		e = -e
	}
	num := new(big.Int).Exp(a.val.Num(), big.NewInt(e), nil)
	den := new(big.Int).Exp(a.val.Denom(), big.NewInt(e), nil)
	return &Num{val: new(big.Rat).SetFrac(num, den)}, true
}

// intRoot returns the exact k-th root of a non-negative integer.
func intRoot(v *big.Int, k int64) (*big.Int, bool) {
	if v.Sign() < 0 {
		return nil, false
	}
	if v.Sign() == 0 || k == 1 {
		return new(big.Int).Set(v), true
	}
	if k == 2 {
		r := new(big.Int).Sqrt(v)
		if new(big.Int).Mul(r, r).Cmp(v) == 0 {
			return r, true
		}
		return nil, false
	}
	// Binary search for larger roots.
	lo, hi := big.NewInt(0), new(big.Int).Add(v, big.NewInt(1))
	kb := big.NewInt(k)
	for new(big.Int).Sub(hi, lo).Cmp(big.NewInt(1)) > 0 {
		mid := new(big.Int).Rsh(new(big.Int).Add(lo, hi), 1)
		p := new(big.Int).Exp(mid, kb, nil)
		switch p.Cmp(v) {
		case 0:
			return mid, true
		case -1:
			lo = mid
		default:
			hi = mid
		}
	}
	if new(big.Int).Exp(lo, kb, nil).Cmp(v) == 0 {
		return lo, true
	}
	return nil, false
}

// numRoot returns the exact k-th root of a non-negative rational.
func numRoot(a *Num, k int64) (*Num, bool) {
	if a.IsNeg() || k <= 0 {
		return nil, false
	}
	p, ok := intRoot(a.val.Num(), k)
	if !ok {
		return nil, false
	}
	q, ok := intRoot(a.val.Denom(), k)
	if !ok {
		return nil, false
	}
	return &Num{val: new(big.Rat).SetFrac(p, q)}, true
}
