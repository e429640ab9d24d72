// Package ebitenhost runs a gavui.Screen inside an Ebitengine window. It
// supplies the Surface, the pointer polling, screenshot capture and a click
// sound.
package ebitenhost

import (
	"image/color"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/phanxgames/gavui"
)

// basicfont only carries ASCII, so the widget glyphs get stand-ins.
var glyphs = strings.NewReplacer(
	gavui.SymbolArrowRight, ">",
	gavui.SymbolArrowDown, "v",
	gavui.SymbolLocked, "#",
	gavui.SymbolChecked, "[x]",
	gavui.SymbolUnchecked, "[ ]",
)

// Surface draws widgets onto an ebiten.Image with vector shapes and the
// 7x13 bitmap font.
type Surface struct {
	dst         *ebiten.Image
	face        text.Face
	borderWidth float32
}

var _ gavui.Surface = (*Surface)(nil)

// NewSurface returns a Surface using the bundled bitmap face. Outlines are
// borderWidth pixels wide; values below 1 draw hairlines.
func NewSurface(borderWidth float32) *Surface {
	if borderWidth < 1 {
		borderWidth = 1
	}
	return &Surface{
		face:        text.NewGoXFace(basicfont.Face7x13),
		borderWidth: borderWidth,
	}
}

// SetTarget sets the image the next draw calls land on.
func (s *Surface) SetTarget(dst *ebiten.Image) { s.dst = dst }

func (s *Surface) DrawFilledBox(box gavui.Box, c gavui.Color) {
	if s.dst == nil {
		return
	}
	vector.DrawFilledRect(s.dst, box.X1(), box.Y1(), box.Width(), box.Height(), toNRGBA(c), false)
}

func (s *Surface) DrawOutline(box gavui.Box, c gavui.Color) {
	if s.dst == nil {
		return
	}
	vector.StrokeRect(s.dst, box.X1(), box.Y1(), box.Width(), box.Height(), s.borderWidth, toNRGBA(c), false)
}

func (s *Surface) DrawText(str string, x, y float32, c gavui.Color, shadow bool) {
	if s.dst == nil || str == "" {
		return
	}
	str = glyphs.Replace(str)
	if shadow {
		s.drawString(str, x+1, y+1, gavui.ColorBlack.WithAlpha(c.A))
	}
	s.drawString(str, x, y, c)
}

func (s *Surface) drawString(str string, x, y float32, c gavui.Color) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(toNRGBA(c))
	text.Draw(s.dst, str, s.face, op)
}

func (s *Surface) MeasureTextWidth(str string) float32 {
	return float32(text.Advance(glyphs.Replace(str), s.face))
}

func toNRGBA(c gavui.Color) color.NRGBA {
	r, g, b, a := c.RGBA8()
	return color.NRGBA{R: r, G: g, B: b, A: a}
}
