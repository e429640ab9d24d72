package gavui

// Screen is the top-level object a host drives. It owns the widget tree, the
// input routing state and the ordered list of root widgets.
type Screen struct {
	Title string

	tree    *Tree
	routing Routing
	roots   []Handle
	overlay *Color
	width   float32
	height  float32
	debug   bool

	// Scripted input
	injectQueue []syntheticEvent
	testRunner  *TestRunner
	pointer     Point
	held        bool
	screenshots []string
}

// NewScreen creates an empty screen with its own tree. A nil theme selects
// DefaultTheme.
func NewScreen(title string, theme Theme) *Screen {
	return &Screen{
		Title: title,
		tree:  NewTree(theme),
	}
}

// Tree returns the arena widgets for this screen are built in.
func (s *Screen) Tree() *Tree { return s.tree }

// Routing returns the screen's input routing state.
func (s *Screen) Routing() *Routing { return &s.routing }

// SetSize records the host surface size used for the overlay.
func (s *Screen) SetSize(width, height float32) {
	s.width, s.height = width, height
}

// SetOverlay sets a color drawn over the whole surface before any widget.
// Nil removes it.
func (s *Screen) SetOverlay(c *Color) { s.overlay = c }

// SetDebugMode enables or disables debug mode. When enabled, dispatch
// decisions and tree depth or child count warnings are printed to stderr.
func (s *Screen) SetDebugMode(enabled bool) {
	s.debug = enabled
	s.tree.debug = enabled
}

// Add appends w as a root. Roots added later draw on top and are offered
// input first. Panics if w is nil, built in another tree, or has a parent.
func (s *Screen) Add(w *Widget) {
	if w == nil {
		panic("gavui: cannot add nil root")
	}
	if w.tree != s.tree {
		panic("gavui: root belongs to a different tree")
	}
	if s.debug {
		debugCheckDisposed(w, "Add")
	}
	if w.parent != 0 {
		panic("gavui: root already has a parent")
	}
	s.Remove(w)
	s.roots = append(s.roots, w.handle)
}

// Remove drops w from the roots. The widget stays in the tree.
func (s *Screen) Remove(w *Widget) {
	for i, h := range s.roots {
		if h == w.handle {
			s.roots = append(s.roots[:i], s.roots[i+1:]...)
			return
		}
	}
}

// Roots returns the root widgets in render order.
func (s *Screen) Roots() []*Widget {
	out := make([]*Widget, 0, len(s.roots))
	for _, h := range s.roots {
		if w := s.tree.Get(h); w != nil {
			out = append(out, w)
		}
	}
	return out
}

func (s *Screen) rootsTopFirst() []*Widget {
	rs := s.Roots()
	for i, j := 0, len(rs)-1; i < j; i, j = i+1, j-1 {
		rs[i], rs[j] = rs[j], rs[i]
	}
	return rs
}

// Render draws the overlay and then every root in order.
func (s *Screen) Render(surf Surface, mx, my, dt float32) {
	if s.overlay != nil && s.width > 0 && s.height > 0 {
		surf.DrawFilledBox(BoxAt(0, 0, s.width, s.height), *s.overlay)
	}
	for _, w := range s.Roots() {
		w.Render(surf, mx, my, dt)
	}
}

// MouseClicked starts a new click: drag capture and the clicked marker are
// cleared, then the roots are offered the click until one consumes it.
func (s *Screen) MouseClicked(x, y float32, button MouseButton) bool {
	s.pointer = Pt(x, y)
	s.held = true
	s.routing.beginClick()
	for _, w := range s.rootsTopFirst() {
		if w.MouseClicked(&s.routing, x, y, button) {
			if s.debug {
				debugLogf("click %s at (%.1f, %.1f) -> %s", button, x, y,
					widgetLabel(s.tree.Lookup(s.routing.Clicked())))
			}
			return true
		}
	}
	if s.debug {
		debugLogf("click %s at (%.1f, %.1f) not consumed", button, x, y)
	}
	return false
}

// MouseDragged offers a drag step to the capture holder first, then to the
// roots.
func (s *Screen) MouseDragged(x, y float32, button MouseButton, dx, dy float32) bool {
	s.pointer = Pt(x, y)
	if held := s.tree.Lookup(s.routing.Captured()); held != nil {
		if held.MouseDragged(&s.routing, x, y, button, dx, dy) {
			return true
		}
	}
	for _, w := range s.rootsTopFirst() {
		if w.MouseDragged(&s.routing, x, y, button, dx, dy) {
			if s.debug {
				debugLogf("drag capture -> %s", widgetLabel(s.tree.Lookup(s.routing.Captured())))
			}
			return true
		}
	}
	return false
}

// MouseScrolled offers a wheel step to every root. Reports whether any root
// consumed it.
func (s *Screen) MouseScrolled(x, y, amount float32) bool {
	consumed := false
	for _, w := range s.rootsTopFirst() {
		if w.MouseScrolled(&s.routing, x, y, amount) {
			consumed = true
		}
	}
	return consumed
}

// MouseReleased ends any drag: capture is released and every root clears
// its dragging flag.
func (s *Screen) MouseReleased(x, y float32, button MouseButton) {
	s.pointer = Pt(x, y)
	s.held = false
	s.routing.Release()
	for _, w := range s.Roots() {
		w.SetDragging(false)
	}
}

// Reset returns every root to its construction position and closes menus.
func (s *Screen) Reset() {
	s.routing.Release()
	for _, w := range s.Roots() {
		w.ResetPosition()
		w.SetDragging(false)
	}
}

// Update advances scripted input by one frame. It reports whether a
// scripted event was delivered, in which case the host should skip its own
// pointer input for this frame.
func (s *Screen) Update() bool {
	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	return s.processInjectedInput()
}

// Screenshot queues a labeled capture request. Hosts that can read back
// their frame drain the queue with TakeScreenshots after rendering.
func (s *Screen) Screenshot(label string) {
	s.screenshots = append(s.screenshots, label)
}

// TakeScreenshots returns and clears the queued screenshot labels.
func (s *Screen) TakeScreenshots() []string {
	if len(s.screenshots) == 0 {
		return nil
	}
	out := s.screenshots
	s.screenshots = nil
	return out
}
