// Package palette groups sprite colors into tolerance buckets and answers
// dominance queries over the resulting occupancy report.
package palette

import (
	"image/color"

	"sprite-analyzer/pkg/colorutil"
)

// DefaultAlphaCutoff is the alpha below which a sample is invisible.
const DefaultAlphaCutoff = 0.1

// Color is a non-premultiplied RGBA color with channels in [0,1].
type Color struct {
	R, G, B, A float64
}

// RGB returns a fully opaque color.
func RGB(r, g, b float64) Color {
	return Color{R: r, G: g, B: b, A: 1}
}

// FromColor converts any image/color value, undoing alpha premultiplication.
func FromColor(c color.Color) Color {
	n := color.NRGBA64Model.Convert(c).(color.NRGBA64)
	return Color{
		R: float64(n.R) / 0xffff,
		G: float64(n.G) / 0xffff,
		B: float64(n.B) / 0xffff,
		A: float64(n.A) / 0xffff,
	}
}

// Opaque returns c with alpha forced to 1.
func (c Color) Opaque() Color {
	c.A = 1
	return c
}

// Visible reports whether c's alpha is at or above cutoff.
func (c Color) Visible(cutoff float64) bool {
	return c.A >= cutoff
}

// NRGBA converts to an 8-bit color, clamping out-of-range channels.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: to8(c.R), G: to8(c.G), B: to8(c.B), A: to8(c.A)}
}

// Hex returns "#rrggbb".
func (c Color) Hex() string {
	return colorutil.Hex(c.R, c.G, c.B)
}

func (c Color) String() string {
	return colorutil.Name(c.R, c.G, c.B)
}

func to8(v float64) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}

// VisibleOpaque drops samples with alpha below cutoff and forces the rest
// to full opacity. Sample order is preserved.
func VisibleOpaque(samples []Color, cutoff float64) []Color {
	out := make([]Color, 0, len(samples))
	for _, c := range samples {
		if !c.Visible(cutoff) {
			continue
		}
		out = append(out, c.Opaque())
	}
	return out
}
