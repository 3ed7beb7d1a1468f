package parser

import (
	"sort"
	"strconv"
	"strings"
	"unicode"
)

type tokenKind int

const (
	tokEOF tokenKind = iota
	tokNum
	tokName     // single-letter symbol or constant
	tokFunc     // built-in function name
	tokUserFunc // f, g, h or an unknown name applied with parentheses
	tokOp
)

type token struct {
	kind tokenKind
	text string
	pos  int
}

// knownNames are matched greedily inside runs of letters, longest first.
var knownNames = []string{
	"arcsin", "arccos", "arctan", "arcsinh", "arccosh", "arctanh",
	"asin", "acos", "atan", "asinh", "acosh", "atanh",
	"sinh", "cosh", "tanh", "sech", "csch", "coth", "sqrt",
	"sin", "cos", "tan", "sec", "csc", "cot", "exp", "log", "abs",
	"ln", "pi",
}

func init() {
	sort.SliceStable(knownNames, func(i, j int) bool {
		return len(knownNames[i]) > len(knownNames[j])
	})
}

// funcAliases maps accepted spellings to kernel function names.
var funcAliases = map[string]string{
	"arcsin":  "asin",
	"arccos":  "acos",
	"arctan":  "atan",
	"arcsinh": "asinh",
	"arccosh": "acosh",
	"arctanh": "atanh",
	"ln":      "log",
}

var userFuncs = map[string]bool{"f": true, "g": true, "h": true}

// Sanitize maps calculator glyphs onto plain ASCII notation and normalizes
// Python-style powers.
func Sanitize(s string) string {
	r := strings.NewReplacer(
		"×", "*",
		"÷", "/",
		"·", "*",
		"−", "-",
		"π", " pi ",
		"√", " sqrt ",
		"**", "^",
	)
	return strings.TrimSpace(r.Replace(s))
}

func lex(input string) ([]token, error) {
	rs := []rune(input)
	var toks []token
	for i := 0; i < len(rs); {
		c := rs[i]
		switch {
		case unicode.IsSpace(c):
			i++
		case unicode.IsDigit(c) || (c == '.' && i+1 < len(rs) && unicode.IsDigit(rs[i+1])):
			start := i
			seenDot := false
			for i < len(rs) && (unicode.IsDigit(rs[i]) || (rs[i] == '.' && !seenDot)) {
				if rs[i] == '.' {
					seenDot = true
				}
				i++
			}
			if i < len(rs) && rs[i] == '.' {
				return nil, &SyntaxError{Pos: i, Msg: "malformed number " + strconv.Quote(string(rs[start:i+1])), Input: input}
			}
			toks = append(toks, token{kind: tokNum, text: string(rs[start:i]), pos: start})
		case isLetter(c):
			start := i
			for i < len(rs) && isLetter(rs[i]) {
				i++
			}
			toks = append(toks, splitLetters(string(rs[start:i]), start, i < len(rs) && rs[i] == '(')...)
		case strings.ContainsRune("+-*/^(),|", c):
			toks = append(toks, token{kind: tokOp, text: string(c), pos: i})
			i++
		default:
			return nil, &SyntaxError{Pos: i, Msg: "unexpected character " + quoteRune(c), Input: input}
		}
	}
	toks = append(toks, token{kind: tokEOF, pos: len(rs)})
	return toks, nil
}

func isLetter(c rune) bool {
	return c < unicode.MaxASCII && unicode.IsLetter(c)
}

// splitLetters breaks a run of letters into function names and single
// letter symbols. parenNext reports whether "(" follows the run; in that
// case two or more trailing letters that match no known name are kept
// together as an opaque function name, so "erf(x)" is not e*r*f(x).
func splitLetters(run string, pos int, parenNext bool) []token {
	out := greedyLetters(run, pos, parenNext)
	if !parenNext {
		return out
	}
	k := len(out)
	for k > 0 && len(out[k-1].text) == 1 && out[k-1].kind != tokFunc {
		k--
	}
	if len(out)-k < 2 {
		return out
	}
	name := run[out[k].pos-pos:]
	return append(out[:k], token{kind: tokUserFunc, text: name, pos: out[k].pos})
}

func greedyLetters(run string, pos int, parenNext bool) []token {
	var out []token
	for i := 0; i < len(run); {
		matched := ""
		for _, name := range knownNames {
			if strings.HasPrefix(run[i:], name) {
				matched = name
				break
			}
		}
		switch {
		case matched == "pi":
			out = append(out, token{kind: tokName, text: "pi", pos: pos + i})
		case matched != "":
			out = append(out, token{kind: tokFunc, text: matched, pos: pos + i})
		default:
			matched = run[i : i+1]
			last := i+1 == len(run)
			kind := tokName
			if last && parenNext && userFuncs[matched] {
				kind = tokUserFunc
			}
			out = append(out, token{kind: kind, text: matched, pos: pos + i})
		}
		i += len(matched)
	}
	return out
}

func quoteRune(c rune) string { return "'" + string(c) + "'" }
