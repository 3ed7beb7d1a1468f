// Package typeset turns expressions into positioned drawing primitives:
// superscripts, stacked fractions, a sized integral sign, bounds and dx
// boxes, on a gridded canvas.
package typeset

import (
	"regexp"
	"strings"
)

var superscripts = map[rune]rune{
	'0': '⁰', '1': '¹', '2': '²', '3': '³', '4': '⁴',
	'5': '⁵', '6': '⁶', '7': '⁷', '8': '⁸', '9': '⁹',
}

var powerDigits = regexp.MustCompile(`(\^|\*\*)(\d+)`)

// MathNotation rewrites ^digits (or **digits) as Unicode superscripts and *
// as a centred dot.
func MathNotation(s string) string {
	s = powerDigits.ReplaceAllStringFunc(s, func(m string) string {
		digits := strings.TrimLeft(m, "^*")
		var b strings.Builder
		for _, r := range digits {
			b.WriteRune(superscripts[r])
		}
		return b.String()
	})
	return strings.ReplaceAll(s, "*", "·")
}
