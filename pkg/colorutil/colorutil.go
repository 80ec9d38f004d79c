// Package colorutil provides shared color utilities for the sprite analyzer.
package colorutil

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Canonical colors recognized by Name and Parse.
var (
	Black = color.NRGBA{R: 0, G: 0, B: 0, A: 255}
	White = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	Red   = color.NRGBA{R: 255, G: 0, B: 0, A: 255}
	Green = color.NRGBA{R: 0, G: 255, B: 0, A: 255}
	Blue  = color.NRGBA{R: 0, G: 0, B: 255, A: 255}
)

var named = []struct {
	name    string
	r, g, b float64
}{
	{"black", 0, 0, 0},
	{"white", 1, 1, 1},
	{"red", 1, 0, 0},
	{"green", 0, 1, 0},
	{"blue", 0, 0, 1},
}

// Name returns the canonical name of an exact canonical color, or an
// "R:0.50 G:0.25 B:1.00" description for anything else.
func Name(r, g, b float64) string {
	for _, n := range named {
		if r == n.r && g == n.g && b == n.b {
			return n.name
		}
	}
	return fmt.Sprintf("R:%.2f G:%.2f B:%.2f", r, g, b)
}

// Parse accepts a canonical color name or a hex triplet ("#ff8000", "#f80")
// and returns channels in [0,1].
func Parse(s string) (r, g, b float64, err error) {
	s = strings.TrimSpace(s)
	lower := strings.ToLower(s)
	for _, n := range named {
		if lower == n.name {
			return n.r, n.g, n.b, nil
		}
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return c.R, c.G, c.B, nil
}

// Hex formats channels in [0,1] as "#rrggbb".
func Hex(r, g, b float64) string {
	return colorful.Color{R: r, G: g, B: b}.Clamped().Hex()
}
