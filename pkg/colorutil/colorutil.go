// Package colorutil provides the shared palette of the integral calculator.
package colorutil

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Palette used by the window, the equation canvas and exported images.
var (
	Black       = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	White       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Transparent = color.RGBA{}

	Cream     = MustHex("#F5F5DC") // window background
	RoyalBlue = MustHex("#4169E1") // buttons and accents
	Ink       = MustHex("#333333") // equation text
	Muted     = MustHex("#666666")
	Faint     = MustHex("#999999")
	Grid      = MustHex("#F0F0F0")
	SkyBlue   = MustHex("#87CEEB") // canvas border
	Alert     = MustHex("#FF6B6B") // edge-case dialog
	BoxFill   = MustHex("#E0E0E0") // placeholder bounds
	BoxStroke = MustHex("#CCCCCC")
)

// ParseHex parses "#RRGGBB" or "#RRGGBBAA".
func ParseHex(s string) (color.RGBA, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) != 6 && len(h) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}
	if len(h) == 6 {
		v = v<<8 | 0xFF
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// MustHex is ParseHex for constants; it panics on malformed input.
func MustHex(s string) color.RGBA {
	c, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return c
}
