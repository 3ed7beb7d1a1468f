package calculator

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"integral-calculator/internal/symbolic"
)

const (
	// scanIntervals is the grid used to look for poles and jumps.
	scanIntervals = 2048

	// bisectSteps refines a bracketed zero to double precision.
	bisectSteps = 200

	// nearPole and farPole are the offsets, as fractions of the interval
	// width, at which f is sampled beside a candidate pole.
	nearPole = 1e-7
	farPole  = 1e-3

	// divergentGrowth is the growth of |f| between farPole and nearPole
	// that marks a pole of order close to one or higher. An order p pole
	// grows by 10^(4p) over the four decades.
	divergentGrowth = 6e3

	// jumpFactor bounds |ΔF| against h·max|f| on one grid step.
	jumpFactor = 10
)

// checkInterval reports ErrDivergent when f has a non-integrable
// singularity in [a, b] or is undefined inside it. Candidate poles are the
// zeros of every denominator of f, including the cos, sin and sinh hidden
// in tan, sec, csc, cot, csch and coth.
func checkInterval(f symbolic.Expr, x string, a, b float64) error {
	lo, hi := math.Min(a, b), math.Max(a, b)
	if lo == hi {
		return nil
	}
	if den, ok := rationalDenominator(f, x); ok {
		for _, r := range den.RationalRoots() {
			if v, _ := r.Float64(); v >= lo && v <= hi {
				return fmt.Errorf("%w: pole at %s = %g", ErrDivergent, x, v)
			}
		}
	}
	for _, g := range poleSources(f, x) {
		for _, r := range zerosOn(g, x, lo, hi) {
			if divergesAt(f, x, r, lo, hi) {
				return fmt.Errorf("%w: pole near %s = %g", ErrDivergent, x, r)
			}
		}
	}
	grid := floats.Span(make([]float64, scanIntervals+1), lo, hi)
	for _, t := range grid[1:scanIntervals] {
		if _, ok := symbolic.EvalAt(f, x, t); !ok {
			return fmt.Errorf("%w: %s is undefined at %s = %g", ErrDivergent, f, x, t)
		}
	}
	return nil
}

// rationalDenominator returns the reduced denominator of f when f is a
// rational function of x of positive denominator degree.
func rationalDenominator(f symbolic.Expr, x string) (symbolic.Poly, bool) {
	n, d := symbolic.Together(symbolic.Cancel(f, x))
	if _, ok := symbolic.PolyOf(symbolic.Expand(n), x); !ok {
		return nil, false
	}
	p, ok := symbolic.PolyOf(symbolic.Expand(d), x)
	if !ok || p.Deg() < 1 {
		return nil, false
	}
	return p, true
}

// poleSources lists the expressions whose zeros may be poles of f.
func poleSources(f symbolic.Expr, x string) []symbolic.Expr {
	seen := map[string]bool{}
	var out []symbolic.Expr
	add := func(g symbolic.Expr) {
		if symbolic.FreeOf(g, x) || seen[g.String()] {
			return
		}
		seen[g.String()] = true
		out = append(out, g)
	}
	symbolic.Walk(f, func(e symbolic.Expr) bool {
		switch v := e.(type) {
		case *symbolic.Pow:
			if n, ok := v.Exp().(*symbolic.Num); ok && n.IsNeg() {
				add(v.Base())
			}
		case *symbolic.Func:
			switch v.Name() {
			case "tan", "sec":
				add(symbolic.FuncOf("cos", v.Arg()))
			case "csc", "cot":
				add(symbolic.FuncOf("sin", v.Arg()))
			case "csch", "coth":
				add(symbolic.FuncOf("sinh", v.Arg()))
			}
		}
		return true
	})
	return out
}

// zerosOn locates the zeros of g on [lo, hi]: sign changes refined by
// bisection, and local minima of |g| that touch zero without crossing.
func zerosOn(g symbolic.Expr, x string, lo, hi float64) []float64 {
	grid := floats.Span(make([]float64, scanIntervals+1), lo, hi)
	vals := make([]float64, len(grid))
	scale := 0.0
	for i, t := range grid {
		v, ok := symbolic.EvalAt(g, x, t)
		if !ok {
			v = math.NaN()
		} else {
			scale = math.Max(scale, math.Abs(v))
		}
		vals[i] = v
	}
	eval := func(t float64) float64 {
		v, ok := symbolic.EvalAt(g, x, t)
		if !ok {
			return math.NaN()
		}
		return v
	}

	var roots []float64
	for i, v := range vals {
		switch {
		case math.IsNaN(v):
		case v == 0:
			roots = append(roots, grid[i])
		case i > 0 && !math.IsNaN(vals[i-1]) && vals[i-1] != 0 && math.Signbit(v) != math.Signbit(vals[i-1]):
			roots = append(roots, bisect(eval, grid[i-1], grid[i]))
		case i > 0 && i < len(vals)-1 && touchesZero(vals[i-1], v, vals[i+1], scale):
			if t, m := minimizeAbs(eval, grid[i-1], grid[i+1]); m <= 1e-9*(1+scale) {
				roots = append(roots, t)
			}
		}
	}
	return roots
}

func touchesZero(prev, v, next, scale float64) bool {
	if math.IsNaN(prev) || math.IsNaN(next) {
		return false
	}
	a := math.Abs(v)
	return a <= math.Abs(prev) && a <= math.Abs(next) && a < 1e-2*scale
}

// bisect refines a sign change of fn on [a, b].
func bisect(fn func(float64) float64, a, b float64) float64 {
	fa := fn(a)
	for i := 0; i < bisectSteps; i++ {
		m := a + (b-a)/2
		if m == a || m == b {
			break
		}
		fm := fn(m)
		switch {
		case fm == 0:
			return m
		case math.IsNaN(fm):
			// A pole of g itself; either side will do.
			return m
		case math.Signbit(fm) == math.Signbit(fa):
			a, fa = m, fm
		default:
			b = m
		}
	}
	return a + (b-a)/2
}

// minimizeAbs runs a golden-section search for the minimum of |fn| on
// [a, b] and returns its location and value.
func minimizeAbs(fn func(float64) float64, a, b float64) (float64, float64) {
	abs := func(t float64) float64 {
		v := fn(t)
		if math.IsNaN(v) {
			return math.Inf(1)
		}
		return math.Abs(v)
	}
	const phi = 0.6180339887498949
	c, d := b-phi*(b-a), a+phi*(b-a)
	fc, fd := abs(c), abs(d)
	for i := 0; i < bisectSteps && b-a > 1e-15*(1+math.Abs(a)); i++ {
		if fc < fd {
			b, d, fd = d, c, fc
			c = b - phi*(b-a)
			fc = abs(c)
		} else {
			a, c, fc = c, d, fd
			d = a + phi*(b-a)
			fd = abs(d)
		}
	}
	t := a + (b-a)/2
	return t, abs(t)
}

// divergesAt samples f on each side of r that lies inside [lo, hi] and
// reports whether it grows like a pole of order one or more.
func divergesAt(f symbolic.Expr, x string, r, lo, hi float64) bool {
	w := hi - lo
	for _, side := range []float64{-1, 1} {
		near, far := r+side*nearPole*w, r+side*farPole*w
		if near < lo || near > hi || far < lo || far > hi {
			continue
		}
		vn, ok := symbolic.EvalAt(f, x, near)
		if !ok {
			continue
		}
		vf, ok := symbolic.EvalAt(f, x, far)
		if !ok {
			continue
		}
		vn, vf = math.Abs(vn), math.Abs(vf)
		if vn > 1e3 && vn > divergentGrowth*math.Max(vf, math.SmallestNonzeroFloat64) {
			return true
		}
	}
	return false
}

// continuousOn reports whether the antiderivative F is defined inside
// [a, b] and free of jumps there, so F(b) - F(a) is the integral. A step
// of F larger than the slope f allows is a jump.
func continuousOn(F, f symbolic.Expr, x string, a, b float64) bool {
	lo, hi := math.Min(a, b), math.Max(a, b)
	if lo == hi {
		return true
	}
	grid := floats.Span(make([]float64, scanIntervals+1), lo, hi)
	h := (hi - lo) / scanIntervals
	prev, prevOK := symbolic.EvalAt(F, x, lo)
	for i := 1; i < len(grid); i++ {
		t := grid[i]
		cur, ok := symbolic.EvalAt(F, x, t)
		if !ok {
			if i < scanIntervals {
				return false
			}
			continue
		}
		if prevOK {
			slope := 0.0
			for _, s := range []float64{grid[i-1], (grid[i-1] + t) / 2, t} {
				if v, ok := symbolic.EvalAt(f, x, s); ok {
					slope = math.Max(slope, math.Abs(v))
				}
			}
			if math.Abs(cur-prev) > jumpFactor*h*slope+1e-9*(1+math.Abs(prev)) {
				return false
			}
		}
		prev, prevOK = cur, true
	}
	return true
}
