package gavui

import (
	"github.com/google/uuid"
)

// --- Capability components ---

// Clickable dispatches a primary click inside the widget to its callbacks.
// OnClick runs first, then Callback.
type Clickable struct {
	OnClick  func(*Widget)
	Callback func(*Widget)
}

// Draggable lets the widget follow the pointer. A frozen widget ignores drags.
type Draggable struct {
	Frozen bool
}

// Openable is the dropdown state machine: a header that shows or hides its
// children, laid out in Direction.
type Openable struct {
	Open      bool
	Direction Direction
}

// Paginated windows the children of an Openable into pages of MaxVisible.
type Paginated struct {
	Page       int
	MaxVisible int
}

// ToggleState is the value of a Toggle widget.
type ToggleState struct {
	On bool
}

// CycleState is the value of a Cycle widget. Index is always in [0, Size).
type CycleState struct {
	Index int
	Size  int
}

// SliderState is the value of a Slider widget, in [0, 1] with two decimals.
type SliderState struct {
	Value float32
}

// --- Widget ---

// Widget is the single node type of the tree. A flat struct is used for all
// variants: Kind selects behaviour and the capability pointers are nil unless
// the variant carries that capability.
type Widget struct {
	// Identity
	ID   uuid.UUID
	Kind Kind
	Key  string // stable lookup key, e.g. a translation key

	// Appearance
	Title        string
	Symbol       string // optional glyph drawn right-aligned; menus and toggles compute their own
	SymbolOffset Point
	Background   *Color  // nil falls back to the theme
	Opacity      float64 // in (0, 1]; zero or negative uses the theme alpha
	Hoverable    bool
	DrawBorder   bool
	IsParent     bool // category header: drawn with the category color

	// Capabilities
	Click *Clickable
	Drag  *Draggable
	Menu  *Openable
	Pages *Paginated

	// Values
	Toggle *ToggleState
	Cycle  *CycleState
	Slider *SliderState

	// RenderCallback runs every frame before the widget draws, so the widget
	// can resynchronise its state from whatever it represents.
	RenderCallback func(*Widget)

	UserData any

	box        Box
	defaultBox Box
	visible    bool
	dragging   bool

	tree     *Tree
	handle   Handle
	parent   Handle
	children []Handle
	disposed bool
}

// --- Geometry ---

func (w *Widget) Box() Box        { return w.box }
func (w *Widget) DefaultBox() Box { return w.defaultBox }
func (w *Widget) X() float32      { return w.box.X1() }
func (w *Widget) Y() float32      { return w.box.Y1() }
func (w *Widget) X2() float32     { return w.box.X2() }
func (w *Widget) Y2() float32     { return w.box.Y2() }
func (w *Widget) Width() float32  { return w.box.Width() }
func (w *Widget) Height() float32 { return w.box.Height() }

// Position returns the top-left corner.
func (w *Widget) Position() Point { return w.box.TopLeft() }

// SetPosition moves the widget so its top-left corner is p. Descendants move
// by the same offset.
func (w *Widget) SetPosition(p Point) {
	w.translate(p.Sub(w.box.TopLeft()))
}

// SetMidPoint moves the widget so its centre is p.
func (w *Widget) SetMidPoint(p Point) {
	target := w.box
	target.SetMiddle(p)
	w.translate(target.TopLeft().Sub(w.box.TopLeft()))
}

// SetWidth resizes the widget horizontally.
func (w *Widget) SetWidth(width float32) {
	w.box.SetSize(width, w.box.Height())
}

// SetHeight resizes the widget vertically.
func (w *Widget) SetHeight(height float32) {
	w.box.SetSize(w.box.Width(), height)
}

// SetDefaultPosition replaces the box ResetPosition restores.
func (w *Widget) SetDefaultPosition(b Box) {
	w.defaultBox = b.Copy()
}

func (w *Widget) translate(d Point) {
	if d == (Point{}) {
		return
	}
	w.box.SetTopLeft(w.box.TopLeft().Add(d))
	for _, c := range w.Children() {
		c.translate(d)
	}
}

// ResetPosition restores the box captured at construction. Menus also close
// and lay their children out again relative to the restored header.
func (w *Widget) ResetPosition() {
	d := w.defaultBox.TopLeft().Sub(w.box.TopLeft())
	w.box = w.defaultBox.Copy()
	for _, c := range w.Children() {
		c.translate(d)
	}
	if w.Menu != nil {
		w.Menu.Open = false
		w.hideChildren()
		w.settle()
	}
}

// --- Visibility & state ---

// Visible reports whether the widget is shown.
func (w *Widget) Visible() bool { return w.visible }

// Hide hides the widget and every descendant.
func (w *Widget) Hide() { w.setVisible(false) }

// Show shows the widget and every descendant, including descendants that
// were hidden individually before.
func (w *Widget) Show() { w.setVisible(true) }

func (w *Widget) setVisible(v bool) {
	w.visible = v
	for _, c := range w.Children() {
		c.setVisible(v)
	}
}

func (w *Widget) hideChildren() {
	for _, c := range w.Children() {
		c.Hide()
	}
}

func (w *Widget) showChildren() {
	for _, c := range w.Children() {
		c.Show()
	}
}

// Dragging reports the local drag flag.
func (w *Widget) Dragging() bool { return w.dragging }

// SetDragging sets the local drag flag on the widget and all descendants.
func (w *Widget) SetDragging(v bool) {
	w.dragging = v
	for _, c := range w.Children() {
		c.SetDragging(v)
	}
}

// IsOpen reports whether a menu widget is open. Always false for widgets
// without the Openable capability.
func (w *Widget) IsOpen() bool { return w.Menu != nil && w.Menu.Open }

// IsFrozen reports whether a draggable widget is frozen in place.
func (w *Widget) IsFrozen() bool { return w.Drag != nil && w.Drag.Frozen }

// IsDisposed reports whether the widget was released from its tree.
func (w *Widget) IsDisposed() bool { return w.disposed }

// Equal reports whether w and o are the same widget. Geometry and content are
// not compared.
func (w *Widget) Equal(o *Widget) bool {
	if w == nil || o == nil {
		return w == o
	}
	return w.ID == o.ID
}

// --- Hierarchy ---

// Tree returns the arena that owns the widget.
func (w *Widget) Tree() *Tree { return w.tree }

// Handle returns the widget's handle in its tree.
func (w *Widget) Handle() Handle { return w.handle }

// Parent returns the containing widget, or nil for a root.
func (w *Widget) Parent() *Widget {
	if w.tree == nil {
		return nil
	}
	return w.tree.Get(w.parent)
}

// Children resolves the child handles in render order. The returned slice is
// freshly allocated.
func (w *Widget) Children() []*Widget {
	if len(w.children) == 0 {
		return nil
	}
	out := make([]*Widget, 0, len(w.children))
	for _, h := range w.children {
		if c := w.tree.Get(h); c != nil {
			out = append(out, c)
		}
	}
	return out
}

// NumChildren returns the number of children.
func (w *Widget) NumChildren() int { return len(w.children) }

// ChildAt returns the child at index i in render order.
func (w *Widget) ChildAt(i int) *Widget { return w.tree.Get(w.children[i]) }

// HasChildren reports whether the widget has any children.
func (w *Widget) HasChildren() bool { return len(w.children) > 0 }

// AddElement appends child and lays it out. Plain containers stack children
// below each other starting just under the header; menus and scroll lists
// apply their own layout. Panics if child is nil, belongs to another tree,
// or is an ancestor of w.
func (w *Widget) AddElement(child *Widget) {
	w.attach(child)
	switch {
	case w.Pages != nil:
		w.addPaged(child)
	case w.Menu != nil:
		w.addMenuItem(child)
	default:
		w.stack(child)
	}
	child.defaultBox = child.box.Copy()
	if w.tree.debug {
		debugCheckTreeDepth(child)
		debugCheckChildCount(w)
	}
}

func (w *Widget) attach(child *Widget) {
	if child == nil {
		panic("gavui: cannot add nil child")
	}
	if child.tree != w.tree {
		panic("gavui: child belongs to a different tree")
	}
	if child.disposed || w.disposed {
		panic("gavui: cannot add disposed widget")
	}
	if isAncestor(child, w) {
		panic("gavui: adding child would create a cycle")
	}
	if p := child.Parent(); p != nil {
		p.removeChild(child.handle)
	}
	child.parent = w.handle
	w.children = append(w.children, child.handle)
}

// stack places the last child directly under its predecessor, or at the
// content origin below the header when it is the first child.
func (w *Widget) stack(child *Widget) {
	n := len(w.children)
	if n < 2 {
		child.SetPosition(Pt(w.X(), w.Y2()+spacing))
		return
	}
	prev := w.tree.Get(w.children[n-2])
	child.SetPosition(Pt(w.X(), prev.Y2()+spacing))
}

// ClearChildren detaches every child. Detached widgets stay in the arena.
func (w *Widget) ClearChildren() {
	for _, c := range w.Children() {
		c.parent = 0
	}
	w.children = w.children[:0]
	if w.Pages != nil {
		w.Pages.Page = 0
	}
}

func (w *Widget) removeChild(h Handle) {
	for i, c := range w.children {
		if c == h {
			copy(w.children[i:], w.children[i+1:])
			w.children = w.children[:len(w.children)-1]
			return
		}
	}
}

// isAncestor reports whether candidate is node or one of its ancestors.
func isAncestor(candidate, node *Widget) bool {
	for p := node; p != nil; p = p.Parent() {
		if p == candidate {
			return true
		}
	}
	return false
}

// --- Hit testing ---

// MouseWithinGui reports whether (x, y) is over the widget. An open menu also
// counts its visible children, so an open list keeps hover and click
// precedence over whatever lies beneath it. Hidden widgets never contain the
// pointer.
func (w *Widget) MouseWithinGui(x, y float32) bool {
	if !w.visible || w.disposed {
		return false
	}
	if w.box.Contains(x, y) {
		return true
	}
	if w.IsOpen() {
		for _, c := range w.Children() {
			if c.MouseWithinGui(x, y) {
				return true
			}
		}
	}
	return false
}

// childUnder reports whether any visible child contains (x, y).
func (w *Widget) childUnder(x, y float32) bool {
	for _, c := range w.Children() {
		if c.MouseWithinGui(x, y) {
			return true
		}
	}
	return false
}

// --- Input dispatch ---

// MouseClicked offers a click to the widget and reports whether it was
// consumed. Containers offer it to their children first, last-added first.
func (w *Widget) MouseClicked(r *Routing, x, y float32, button MouseButton) bool {
	if !w.visible || w.disposed {
		return false
	}
	switch w.Kind {
	case KindClick:
		return w.clickButton(r, x, y, button)
	case KindDraggable:
		return w.clickDraggable(r, x, y, button)
	case KindDropdown:
		return w.clickDropdown(r, x, y, button)
	case KindScroll:
		return w.clickScroll(r, x, y, button)
	case KindToggle:
		return w.clickToggle(r, x, y, button)
	case KindCycle:
		return w.clickCycle(r, x, y, button)
	case KindSlider:
		return w.clickSlider(r, x, y, button)
	default:
		return w.clickChildren(r, x, y, button) != nil
	}
}

// MouseDragged offers a drag step to the widget and reports whether it was
// consumed.
func (w *Widget) MouseDragged(r *Routing, x, y float32, button MouseButton, dx, dy float32) bool {
	if !w.visible || w.disposed {
		return false
	}
	switch w.Kind {
	case KindDraggable:
		if w.dragChildren(r, x, y, button, dx, dy) {
			return true
		}
		if !w.canDrag(r, x, y, button) {
			return false
		}
		w.applyDrag(r, x, y)
		return true
	case KindDropdown, KindScroll:
		return w.dragMenu(r, x, y, button, dx, dy)
	case KindSlider:
		return w.dragSlider(r, x, y, button)
	default:
		return w.dragChildren(r, x, y, button, dx, dy)
	}
}

// MouseScrolled offers a wheel step to the widget. Positive amounts scroll
// up.
func (w *Widget) MouseScrolled(r *Routing, x, y, amount float32) bool {
	if !w.visible || w.disposed {
		return false
	}
	if w.Kind == KindScroll {
		return w.scrollPaged(r, x, y, amount)
	}
	for _, c := range w.childrenTopFirst() {
		if c.MouseScrolled(r, x, y, amount) {
			return true
		}
	}
	return false
}

// childrenTopFirst returns the visible children in hit-test order: the last
// added child is on top.
func (w *Widget) childrenTopFirst() []*Widget {
	cs := w.Children()
	out := make([]*Widget, 0, len(cs))
	for i := len(cs) - 1; i >= 0; i-- {
		if cs[i].visible {
			out = append(out, cs[i])
		}
	}
	return out
}

// clickChildren offers a click to the visible children, topmost first, and
// returns the child that consumed it.
func (w *Widget) clickChildren(r *Routing, x, y float32, button MouseButton) *Widget {
	for _, c := range w.childrenTopFirst() {
		if c.MouseClicked(r, x, y, button) {
			w.closeOtherMenus(c)
			return c
		}
	}
	return nil
}

func (w *Widget) dragChildren(r *Routing, x, y float32, button MouseButton, dx, dy float32) bool {
	for _, c := range w.childrenTopFirst() {
		if c.MouseDragged(r, x, y, button, dx, dy) {
			return true
		}
	}
	return false
}

// layout repositions children for the variants that own their layout.
func (w *Widget) layout() {
	switch {
	case w.Pages != nil:
		w.layoutPage()
	case w.Menu != nil:
		w.layoutMenu()
	}
}
