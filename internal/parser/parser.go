// Package parser turns calculator input into symbolic expressions.
package parser

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"integral-calculator/internal/symbolic"
)

// ErrEmpty is returned for blank input.
var ErrEmpty = errors.New("empty expression")

// ErrNotConstant is returned by ParseBound when a bound depends on a
// variable or has no finite real value.
var ErrNotConstant = errors.New("bound is not a finite real number")

// SyntaxError reports where parsing failed.
type SyntaxError struct {
	Pos   int
	Msg   string
	Input string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error at position %d: %s", e.Pos, e.Msg)
}

type parser struct {
	input    string
	toks     []token
	pos      int
	absDepth int
}

// Parse sanitizes and parses an expression. Multiplication may be implicit
// ("2x", "3(x+1)", "(x+1)(x-1)"), "^" is right associative and binds tighter
// than unary minus, "|u|" is abs(u), and "log(u, b)" is the base-b logarithm.
func Parse(input string) (symbolic.Expr, error) {
	s := Sanitize(input)
	if s == "" {
		return nil, ErrEmpty
	}
	toks, err := lex(s)
	if err != nil {
		return nil, err
	}
	p := &parser{input: s, toks: toks}
	e, err := p.expr()
	if err != nil {
		return nil, err
	}
	if t := p.peek(); t.kind != tokEOF {
		return nil, p.errorf(t, "unexpected %q", t.text)
	}
	return e, nil
}

// MustParse is Parse for trusted literals. It panics on error.
func MustParse(input string) symbolic.Expr {
	e, err := Parse(input)
	if err != nil {
		panic(err)
	}
	return e
}

// ParseBound parses a definite-integral limit such as "2", "-1.5", "1e-3"
// or "pi/2" and returns the exact expression with its numeric value. Plain
// decimal literals, scientific notation included, are read exactly before
// falling back to the expression grammar.
func ParseBound(input string) (symbolic.Expr, float64, error) {
	if d, err := decimal.NewFromString(strings.TrimSpace(input)); err == nil {
		return symbolic.NRat(d.Rat()), d.InexactFloat64(), nil
	}
	e, err := Parse(input)
	if err != nil {
		return nil, 0, err
	}
	if len(symbolic.FreeSymbols(e)) > 0 {
		return nil, 0, fmt.Errorf("%q: %w", input, ErrNotConstant)
	}
	v, ok := e.Eval(nil)
	if !ok {
		return nil, 0, fmt.Errorf("%q: %w", input, ErrNotConstant)
	}
	return e, v, nil
}

func (p *parser) peek() token { return p.toks[p.pos] }

func (p *parser) next() token {
	t := p.toks[p.pos]
	if t.kind != tokEOF {
		p.pos++
	}
	return t
}

func (p *parser) isOp(text string) bool {
	t := p.peek()
	return t.kind == tokOp && t.text == text
}

func (p *parser) expect(text string) error {
	t := p.next()
	if t.kind != tokOp || t.text != text {
		if t.kind == tokEOF {
			return p.errorf(t, "missing %q", text)
		}
		return p.errorf(t, "expected %q, found %q", text, t.text)
	}
	return nil
}

func (p *parser) errorf(t token, format string, args ...any) error {
	return &SyntaxError{Pos: t.pos, Msg: fmt.Sprintf(format, args...), Input: p.input}
}

func (p *parser) expr() (symbolic.Expr, error) {
	left, err := p.term()
	if err != nil {
		return nil, err
	}
	for p.isOp("+") || p.isOp("-") {
		op := p.next().text
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		if op == "+" {
			left = symbolic.AddOf(left, right)
		} else {
			left = symbolic.Subtract(left, right)
		}
	}
	return left, nil
}

// startsPrimary reports whether the next token can begin an implicit factor.
func (p *parser) startsPrimary() bool {
	t := p.peek()
	switch t.kind {
	case tokNum, tokName, tokFunc, tokUserFunc:
		return true
	case tokOp:
		return t.text == "(" || (t.text == "|" && p.absDepth == 0)
	}
	return false
}

func (p *parser) term() (symbolic.Expr, error) {
	left, err := p.unary()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.isOp("*"), p.isOp("/"):
			opTok := p.next()
			right, err := p.unary()
			if err != nil {
				return nil, err
			}
			if opTok.text == "*" {
				left = symbolic.MulOf(left, right)
			} else {
				// x/0 stays symbolic as x*0^-1 for the edge-case handler.
				left = symbolic.Div(left, right)
			}
		case p.startsPrimary():
			right, err := p.power()
			if err != nil {
				return nil, err
			}
			left = symbolic.MulOf(left, right)
		default:
			return left, nil
		}
	}
}

func (p *parser) unary() (symbolic.Expr, error) {
	switch {
	case p.isOp("-"):
		p.next()
		e, err := p.unary()
		if err != nil {
			return nil, err
		}
		return symbolic.Neg(e), nil
	case p.isOp("+"):
		p.next()
		return p.unary()
	}
	return p.power()
}

func (p *parser) power() (symbolic.Expr, error) {
	base, err := p.primary()
	if err != nil {
		return nil, err
	}
	if p.isOp("^") {
		p.next()
		exp, err := p.unary()
		if err != nil {
			return nil, err
		}
		return symbolic.PowOf(base, exp), nil
	}
	return base, nil
}

func (p *parser) primary() (symbolic.Expr, error) {
	t := p.next()
	switch t.kind {
	case tokNum:
		n, ok := symbolic.ParseNum(t.text)
		if !ok {
			return nil, p.errorf(t, "bad number %q", t.text)
		}
		return n, nil
	case tokName:
		switch t.text {
		case "pi":
			return symbolic.Pi, nil
		case "e", "E":
			return symbolic.E(), nil
		case "I":
			return symbolic.I, nil
		}
		return symbolic.S(t.text), nil
	case tokFunc:
		return p.call(t)
	case tokUserFunc:
		if err := p.expect("("); err != nil {
			return nil, err
		}
		arg, err := p.expr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(")"); err != nil {
			return nil, err
		}
		return symbolic.FuncOf(t.text, arg), nil
	case tokOp:
		switch t.text {
		case "(":
			e, err := p.expr()
			if err != nil {
				return nil, err
			}
			if err := p.expect(")"); err != nil {
				return nil, err
			}
			return e, nil
		case "|":
			p.absDepth++
			e, err := p.expr()
			p.absDepth--
			if err != nil {
				return nil, err
			}
			if err := p.expect("|"); err != nil {
				return nil, err
			}
			return symbolic.FuncOf("abs", e), nil
		}
		return nil, p.errorf(t, "unexpected %q", t.text)
	}
	return nil, p.errorf(t, "unexpected end of input")
}

// call parses a built-in function application: "sin(x)", "sin x",
// "sin^2(x)" or "log(x, 2)".
func (p *parser) call(t token) (symbolic.Expr, error) {
	name := t.text
	if alias, ok := funcAliases[name]; ok {
		name = alias
	}
	var power symbolic.Expr
	if p.isOp("^") {
		p.next()
		e, err := p.unary()
		if err != nil {
			return nil, err
		}
		power = e
	}

	var arg, base symbolic.Expr
	if p.isOp("(") {
		p.next()
		e, err := p.expr()
		if err != nil {
			return nil, err
		}
		arg = e
		if p.isOp(",") {
			p.next()
			if name != "log" {
				return nil, p.errorf(t, "%s takes one argument", t.text)
			}
			b, err := p.expr()
			if err != nil {
				return nil, err
			}
			base = b
		}
		if err := p.expect(")"); err != nil {
			return nil, err
		}
	} else {
		if p.peek().kind == tokEOF {
			return nil, p.errorf(p.peek(), "missing argument to %s", t.text)
		}
		e, err := p.power()
		if err != nil {
			return nil, err
		}
		arg = e
	}

	var out symbolic.Expr
	switch name {
	case "sqrt":
		out = symbolic.Sqrt(arg)
	default:
		out = symbolic.FuncOf(name, arg)
	}
	if base != nil {
		out = symbolic.Div(out, symbolic.FuncOf("log", base))
	}
	if power != nil {
		out = symbolic.PowOf(out, power)
	}
	return out, nil
}
