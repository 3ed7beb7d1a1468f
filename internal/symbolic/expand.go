package symbolic

// maxExpandPower bounds the integer powers of sums that Expand multiplies out.
const maxExpandPower = 12

// maxExpandTerms stops distribution when a product would explode.
const maxExpandTerms = 4096

// Expand distributes products over sums and multiplies out small positive
// integer powers of sums, recursively.
func Expand(e Expr) Expr {
	switch v := e.(type) {
	case *Add:
		terms := make([]Expr, len(v.terms))
		for i, t := range v.terms {
			terms[i] = Expand(t)
		}
		return AddOf(terms...)
	case *Mul:
		factors := make([]Expr, len(v.factors))
		for i, f := range v.factors {
			factors[i] = Expand(f)
		}
		return distribute(factors)
	case *Pow:
		base := Expand(v.base)
		exp := Expand(v.exp)
		if a, ok := base.(*Add); ok {
			if n, ok := exp.(*Num); ok {
				if k, ok := n.Int64(); ok && k >= 2 && k <= maxExpandPower {
					factors := make([]Expr, k)
					for i := range factors {
						factors[i] = a
					}
					return distribute(factors)
				}
			}
		}
		return PowOf(base, exp)
	case *Func:
		return FuncOf(v.name, Expand(v.arg))
	}
	return e
}

func distribute(factors []Expr) Expr {
	acc := []Expr{N(1)}
	for _, f := range factors {
		var next []Expr
		terms := []Expr{f}
		if a, ok := f.(*Add); ok {
			terms = a.terms
		}
		if len(acc)*len(terms) > maxExpandTerms {
			return MulOf(factors...)
		}
		for _, l := range acc {
			for _, r := range terms {
				next = append(next, MulOf(l, r))
			}
		}
		acc = next
	}
	return AddOf(acc...)
}
