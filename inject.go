package gavui

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

type eventKind uint8

const (
	eventPress eventKind = iota
	eventMove
	eventRelease
	eventScroll
)

// syntheticEvent is a single queued pointer event in surface coordinates.
type syntheticEvent struct {
	kind   eventKind
	x, y   float32
	button MouseButton
	amount float32
}

// InjectPress queues a press of button at (x, y). Events are delivered one
// per Update call.
func (s *Screen) InjectPress(x, y float32, button MouseButton) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: eventPress, x: x, y: y, button: button})
}

// InjectMove queues a pointer move with button held. Use it between
// InjectPress and InjectRelease to simulate a drag.
func (s *Screen) InjectMove(x, y float32, button MouseButton) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: eventMove, x: x, y: y, button: button})
}

// InjectRelease queues a release of button at (x, y).
func (s *Screen) InjectRelease(x, y float32, button MouseButton) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: eventRelease, x: x, y: y, button: button})
}

// InjectClick queues a primary press followed by a release at the same
// point. Consumes two frames.
func (s *Screen) InjectClick(x, y float32) {
	s.InjectPress(x, y, MouseButtonPrimary)
	s.InjectRelease(x, y, MouseButtonPrimary)
}

// InjectRightClick is InjectClick with the secondary button.
func (s *Screen) InjectRightClick(x, y float32) {
	s.InjectPress(x, y, MouseButtonSecondary)
	s.InjectRelease(x, y, MouseButtonSecondary)
}

// InjectScroll queues a wheel step at (x, y). Positive amounts scroll up.
func (s *Screen) InjectScroll(x, y, amount float32) {
	s.injectQueue = append(s.injectQueue, syntheticEvent{kind: eventScroll, x: x, y: y, amount: amount})
}

// InjectDrag queues a full primary drag: press at (fromX, fromY), frames-2
// moves along an ease-in-out path starting at the press point, and release
// at (toX, toY). Minimum frames is 2 (press + release).
func (s *Screen) InjectDrag(fromX, fromY, toX, toY float32, frames int) {
	if frames < 2 {
		frames = 2
	}
	s.InjectPress(fromX, fromY, MouseButtonPrimary)
	steps := frames - 2
	tw := gween.New(0, 1, float32(steps), ease.InOutQuad)
	for i := 0; i < steps; i++ {
		dt := float32(1)
		if i == 0 {
			dt = 0
		}
		t, _ := tw.Update(dt)
		s.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t, MouseButtonPrimary)
	}
	s.InjectRelease(toX, toY, MouseButtonPrimary)
}

// Pending returns the number of queued scripted events.
func (s *Screen) Pending() int { return len(s.injectQueue) }

// processInjectedInput pops one event and feeds it through the same entry
// points a host uses. Returns true if an event was delivered.
func (s *Screen) processInjectedInput() bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	switch evt.kind {
	case eventPress:
		s.MouseClicked(evt.x, evt.y, evt.button)
	case eventMove:
		prev := s.pointer
		s.MouseDragged(evt.x, evt.y, evt.button, evt.x-prev.X, evt.y-prev.Y)
	case eventRelease:
		if s.held && Pt(evt.x, evt.y) != s.pointer {
			prev := s.pointer
			s.MouseDragged(evt.x, evt.y, evt.button, evt.x-prev.X, evt.y-prev.Y)
		}
		s.MouseReleased(evt.x, evt.y, evt.button)
	case eventScroll:
		s.MouseScrolled(evt.x, evt.y, evt.amount)
	}
	return true
}
