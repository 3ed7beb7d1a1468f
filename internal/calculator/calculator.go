// Package calculator runs the improved integration pipeline: classify edge
// cases, parse, integrate, canonicalize, fall back to special and manual
// rules, and verify the antiderivative by differentiation.
package calculator

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"integral-calculator/internal/integrate"
	"integral-calculator/internal/parser"
	"integral-calculator/internal/symbolic"
)

var (
	ErrEmptyInput    = errors.New("please enter a function")
	ErrMissingBounds = errors.New("please enter both lower and upper bounds for definite integral")
	ErrInvalidBound  = errors.New("bounds must be valid numbers")
	ErrDivergent     = errors.New("integral diverges on the interval")
)

// Method names the pipeline stage that produced an antiderivative.
type Method string

const (
	MethodStandard    Method = "standard"
	MethodTanh        Method = "special:tanh"
	MethodExpTrig     Method = "special:exp-trig"
	MethodManual      Method = "manual"
	MethodUnevaluated Method = "unevaluated"
)

// Options configures a Calculator.
type Options struct {
	// Variable is the integration variable.
	Variable string

	// Timeout bounds one calculation; zero means no limit beyond the
	// caller's context.
	Timeout time.Duration

	// SamplePoints are the x values used by the numeric verification.
	SamplePoints []float64

	// Tolerance is the absolute/relative tolerance of the numeric check.
	Tolerance float64
}

// DefaultOptions returns the settings used by the GUI and the CLI tools.
func DefaultOptions() Options {
	return Options{
		Variable:     "x",
		Timeout:      10 * time.Second,
		SamplePoints: []float64{0.13, 0.42, -0.35, -0.71, 0.37, 0.81, 1.29, 1.73, 2.41},
		Tolerance:    1e-7,
	}
}

// Calculator integrates user input.
type Calculator struct {
	opts Options
}

// New creates a Calculator. Zero fields of opts take their defaults.
func New(opts Options) *Calculator {
	def := DefaultOptions()
	if opts.Variable == "" {
		opts.Variable = def.Variable
	}
	if len(opts.SamplePoints) == 0 {
		opts.SamplePoints = def.SamplePoints
	}
	if opts.Tolerance <= 0 {
		opts.Tolerance = def.Tolerance
	}
	return &Calculator{opts: opts}
}

// Variable returns the integration variable.
func (c *Calculator) Variable() string { return c.opts.Variable }

// Result is the outcome of an indefinite integration.
type Result struct {
	Input          string
	Variable       string
	Integrand      symbolic.Expr
	Antiderivative symbolic.Expr
	Method         Method
	Verification   Verification
	EdgeCase       EdgeCase
}

// Evaluated reports whether a closed form was found.
func (r *Result) Evaluated() bool {
	return !symbolic.HasIntegral(r.Antiderivative)
}

// String renders "F + C", or the unevaluated integral.
func (r *Result) String() string {
	if !r.Evaluated() {
		return r.Antiderivative.String()
	}
	return r.Antiderivative.String() + " + C"
}

// LaTeX renders the whole equation ∫ f dx = F + C.
func (r *Result) LaTeX() string {
	lhs := symbolic.IntegralOf(r.Integrand, r.Variable).LaTeX()
	if !r.Evaluated() {
		return lhs
	}
	return lhs + " = " + r.Antiderivative.LaTeX() + " + C"
}

// Integrate computes the indefinite integral of input.
func (c *Calculator) Integrate(ctx context.Context, input string) (*Result, error) {
	input = parser.Sanitize(input)
	if input == "" {
		return nil, ErrEmptyInput
	}
	if c.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.opts.Timeout)
		defer cancel()
	}

	x := c.opts.Variable
	edge := ClassifyEdgeCase(input)
	f, err := parser.Parse(input)
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", input, err)
	}
	if edge == NoEdgeCase {
		edge = ClassifyIntegrand(f)
	}
	res := &Result{Input: input, Variable: x, Integrand: f, EdgeCase: edge}

	if edge.Unevaluated() {
		log.Printf("Calculator: %s in %q, leaving integral unevaluated", edge, input)
		res.Antiderivative = symbolic.IntegralOf(f, x)
		res.Method = MethodUnevaluated
		return res, nil
	}

	F, method, err := c.improved(ctx, f, x)
	if err != nil {
		return nil, err
	}
	if F == nil {
		log.Printf("Calculator: no closed form for %s", f)
		res.Antiderivative = symbolic.IntegralOf(f, x)
		res.Method = MethodUnevaluated
		return res, nil
	}
	res.Antiderivative = F
	res.Method = method
	res.Verification = c.Verify(ctx, F, f, x)
	return res, nil
}

type stage struct {
	method Method
	run    func(context.Context, symbolic.Expr, string) (symbolic.Expr, error)
	when   func(symbolic.Expr) bool
}

func always(symbolic.Expr) bool { return true }

// improved runs the decision list. A stage's result is kept when it
// verifies; otherwise the first unverified closed form is the fallback.
// Only context errors are returned.
func (c *Calculator) improved(ctx context.Context, f symbolic.Expr, x string) (symbolic.Expr, Method, error) {
	stages := []stage{
		{MethodStandard, integrate.Standard, always},
		{MethodTanh, integrate.Tanh, func(f symbolic.Expr) bool { return symbolic.ContainsFunc(f, "tanh") }},
		{MethodExpTrig, integrate.ExpTrig, func(f symbolic.Expr) bool {
			return symbolic.ContainsFunc(f, "exp") && symbolic.ContainsFunc(f, "sin", "cos")
		}},
		{MethodManual, integrate.Manual, always},
	}

	var fallback symbolic.Expr
	var fallbackMethod Method
	for _, s := range stages {
		if !s.when(f) {
			continue
		}
		F, err := s.run(ctx, f, x)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, "", fmt.Errorf("integrate %s: %w", f, ctxErr)
			}
			if !errors.Is(err, integrate.ErrNoAntiderivative) {
				log.Printf("Calculator: %s stage failed: %v", s.method, err)
			}
			continue
		}
		F, err = Canonicalize(ctx, F, x)
		if err != nil {
			return nil, "", fmt.Errorf("canonicalize %s: %w", f, err)
		}
		if c.Verify(ctx, F, f, x) != Unverified {
			return F, s.method, nil
		}
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, "", fmt.Errorf("verify %s: %w", f, ctxErr)
		}
		log.Printf("Calculator: %s result %s did not verify", s.method, F)
		if fallback == nil {
			fallback, fallbackMethod = F, s.method
		}
	}
	return fallback, fallbackMethod, nil
}
