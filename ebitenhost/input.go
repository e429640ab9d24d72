package ebitenhost

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/phanxgames/gavui"
)

var buttons = [...]struct {
	eb ebiten.MouseButton
	ui gavui.MouseButton
}{
	{ebiten.MouseButtonLeft, gavui.MouseButtonPrimary},
	{ebiten.MouseButtonRight, gavui.MouseButtonSecondary},
	{ebiten.MouseButtonMiddle, gavui.MouseButtonMiddle},
}

// pointerSample is one frame of mouse state in logical coordinates.
type pointerSample struct {
	x, y         float32
	pressed      [len(buttons)]bool
	justPressed  [len(buttons)]bool
	justReleased [len(buttons)]bool
	wheel        float32
}

// pointer turns per-frame samples into Screen calls. It remembers the last
// position so drags carry a delta.
type pointer struct {
	lastX, lastY float32
	active       int // index into buttons of the held button, or -1
}

func newPointer() pointer { return pointer{active: -1} }

func readPointer() pointerSample {
	mx, my := ebiten.CursorPosition()
	_, wy := ebiten.Wheel()
	smp := pointerSample{x: float32(mx), y: float32(my), wheel: float32(wy)}
	for i, b := range buttons {
		smp.pressed[i] = ebiten.IsMouseButtonPressed(b.eb)
		smp.justPressed[i] = inpututil.IsMouseButtonJustPressed(b.eb)
		smp.justReleased[i] = inpututil.IsMouseButtonJustReleased(b.eb)
	}
	return smp
}

// apply forwards smp to s. Only the first pressed button drives a drag
// until it is released.
func (p *pointer) apply(s *gavui.Screen, smp pointerSample) {
	dx, dy := smp.x-p.lastX, smp.y-p.lastY
	p.lastX, p.lastY = smp.x, smp.y

	if p.active >= 0 {
		if smp.justReleased[p.active] || !smp.pressed[p.active] {
			s.MouseReleased(smp.x, smp.y, buttons[p.active].ui)
			p.active = -1
		} else if dx != 0 || dy != 0 {
			s.MouseDragged(smp.x, smp.y, buttons[p.active].ui, dx, dy)
		}
	}
	if p.active < 0 {
		for i := range buttons {
			if smp.justPressed[i] {
				s.MouseClicked(smp.x, smp.y, buttons[i].ui)
				p.active = i
				break
			}
		}
	}
	if smp.wheel != 0 {
		s.MouseScrolled(smp.x, smp.y, smp.wheel)
	}
}
