package gavui

import "math"

// Color represents an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

var (
	ColorWhite  = Color{1, 1, 1, 1}
	ColorBlack  = Color{0, 0, 0, 1}
	ColorRed    = Color{1, 0, 0, 1}
	ColorCyan   = Color{0, 1, 1, 1}
	ColorIndigo = Color{75.0 / 255, 0, 130.0 / 255, 1}
)

// RGB builds an opaque color from 8-bit channels.
func RGB(r, g, b uint8) Color {
	return Color{float64(r) / 255, float64(g) / 255, float64(b) / 255, 1}
}

// WithAlpha returns c with its alpha replaced by a, clamped to [0, 1].
func (c Color) WithAlpha(a float64) Color {
	c.A = Clamp01(a)
	return c
}

// Invert returns the RGB complement of c, keeping alpha.
func (c Color) Invert() Color {
	return Color{1 - c.R, 1 - c.G, 1 - c.B, c.A}
}

// Brighten moves every channel toward white by amount. When the color is
// already saturated in every channel it is darkened instead so hover feedback
// stays visible.
func (c Color) Brighten(amount float64) Color {
	amount = Clamp01(amount)
	if c.R >= 1 && c.G >= 1 && c.B >= 1 {
		return Color{
			Clamp01(c.R - amount), Clamp01(c.G - amount), Clamp01(c.B - amount), c.A,
		}
	}
	return Color{
		Clamp01(c.R + amount), Clamp01(c.G + amount), Clamp01(c.B + amount), c.A,
	}
}

// Similarity is the normalised RGB distance between c and o: 0 for identical
// colors, 1 for black against white. Alpha is ignored.
func (c Color) Similarity(o Color) float64 {
	d := math.Abs(c.R-o.R) + math.Abs(c.G-o.G) + math.Abs(c.B-o.B)
	return d / 3
}

// RGBA8 returns the color as 8-bit channels.
func (c Color) RGBA8() (r, g, b, a uint8) {
	return to8(c.R), to8(c.G), to8(c.B), to8(c.A)
}

func to8(v float64) uint8 {
	return uint8(math.Round(Clamp01(v) * 255))
}

// readableText picks a text color that stands out against bg, starting from
// the preferred foreground.
func readableText(fg, bg Color) Color {
	if fg.Similarity(bg) < contrastLimit {
		fg = fg.Invert()
		if fg.Similarity(bg) < contrastLimit {
			fg = ColorWhite
		}
	}
	return fg
}
