// Package termhost runs a gavui.Screen in a terminal through tcell. Logical
// coordinates map onto character cells of CellWidth by CellHeight units, so
// a default 100x10 widget with its 2 unit gap occupies one row.
package termhost

import (
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/mattn/go-runewidth"

	"github.com/phanxgames/gavui"
)

// Size of one terminal cell in logical units.
const (
	CellWidth  = 6
	CellHeight = 12
)

// Surface paints widgets into a tcell.Screen.
type Surface struct {
	ts tcell.Screen
}

var _ gavui.Surface = (*Surface)(nil)

// NewSurface wraps ts.
func NewSurface(ts tcell.Screen) *Surface { return &Surface{ts: ts} }

// cells returns the half-open cell range covered by box.
func cells(box gavui.Box) (x0, y0, x1, y1 int) {
	x0 = int(math.Floor(float64(box.X1()) / CellWidth))
	y0 = int(math.Floor(float64(box.Y1()) / CellHeight))
	x1 = int(math.Ceil(float64(box.X2()) / CellWidth))
	y1 = int(math.Ceil(float64(box.Y2()) / CellHeight))
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return
}

// DrawFilledBox blends c over the background of every covered cell and
// blanks their content.
func (s *Surface) DrawFilledBox(box gavui.Box, c gavui.Color) {
	x0, y0, x1, y1 := cells(box)
	w, h := s.ts.Size()
	for y := max(y0, 0); y < min(y1, h); y++ {
		for x := max(x0, 0); x < min(x1, w); x++ {
			_, _, st, _ := s.ts.GetContent(x, y)
			_, bg, _ := st.Decompose()
			s.ts.SetContent(x, y, ' ', nil, tcell.StyleDefault.Background(blend(bg, c)))
		}
	}
}

// DrawOutline draws box-drawing edges. Boxes thinner than three cells in
// either direction leave no room for a frame and are skipped.
func (s *Surface) DrawOutline(box gavui.Box, c gavui.Color) {
	x0, y0, x1, y1 := cells(box)
	if x1-x0 < 3 || y1-y0 < 3 {
		return
	}
	put := func(x, y int, r rune) {
		_, _, st, _ := s.ts.GetContent(x, y)
		_, bg, _ := st.Decompose()
		s.ts.SetContent(x, y, r, nil, tcell.StyleDefault.Foreground(toTcell(c)).Background(bg))
	}
	for x := x0 + 1; x < x1-1; x++ {
		put(x, y0, '─')
		put(x, y1-1, '─')
	}
	for y := y0 + 1; y < y1-1; y++ {
		put(x0, y, '│')
		put(x1-1, y, '│')
	}
	put(x0, y0, '┌')
	put(x1-1, y0, '┐')
	put(x0, y1-1, '└')
	put(x1-1, y1-1, '┘')
}

// DrawText writes str on the row containing y, keeping each cell's
// background. A shadow is rendered as bold.
func (s *Surface) DrawText(str string, x, y float32, c gavui.Color, shadow bool) {
	col := int(math.Round(float64(x) / CellWidth))
	row := int(math.Floor(float64(y) / CellHeight))
	w, h := s.ts.Size()
	if row < 0 || row >= h {
		return
	}
	for _, r := range str {
		rw := runewidth.RuneWidth(r)
		if rw == 0 {
			continue
		}
		if col >= 0 && col < w {
			_, _, st, _ := s.ts.GetContent(col, row)
			_, bg, _ := st.Decompose()
			style := tcell.StyleDefault.Foreground(toTcell(c)).Background(bg).Bold(shadow)
			s.ts.SetContent(col, row, r, nil, style)
		}
		col += rw
	}
}

// MeasureTextWidth returns the display width of str in logical units.
func (s *Surface) MeasureTextWidth(str string) float32 {
	return float32(runewidth.StringWidth(str) * CellWidth)
}

func toTcell(c gavui.Color) tcell.Color {
	r, g, b, _ := c.RGBA8()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// blend mixes c over the existing cell color by c's alpha. The terminal
// default background counts as black.
func blend(under tcell.Color, c gavui.Color) tcell.Color {
	base := colorful.Color{}
	if under != tcell.ColorDefault {
		r, g, b := under.RGB()
		base = colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	}
	top := colorful.Color{R: c.R, G: c.G, B: c.B}
	mixed := base.BlendRgb(top, gavui.Clamp01(c.A)).Clamped()
	r, g, b := mixed.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}
