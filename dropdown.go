package gavui

// Open shows the children of a menu widget. No-op for other widgets.
func (w *Widget) Open() {
	if w.Menu == nil || w.Menu.Open {
		return
	}
	w.Menu.Open = true
	w.showChildren()
	w.layout()
}

// Close hides the children of a menu widget. No-op for other widgets.
func (w *Widget) Close() {
	if w.Menu == nil || !w.Menu.Open {
		return
	}
	w.Menu.Open = false
	w.hideChildren()
}

// ToggleMenu flips a menu between open and closed.
func (w *Widget) ToggleMenu() {
	if w.IsOpen() {
		w.Close()
	} else {
		w.Open()
	}
}

func (w *Widget) addMenuItem(child *Widget) {
	child.SetWidth(w.Width())
	if w.Menu.Open {
		child.Show()
	} else {
		child.Hide()
	}
	w.layoutMenu()
}

// listOrigin is where the first child of a menu goes.
func (w *Widget) listOrigin() Point {
	if w.Menu.Direction == DirectionRight {
		return Pt(w.X2()+rightOffset, w.Y())
	}
	return Pt(w.X(), w.Y2()+spacing)
}

// layoutMenu stacks every child from the list origin and keeps the children
// of a closed menu hidden.
func (w *Widget) layoutMenu() {
	p := w.listOrigin()
	for _, c := range w.Children() {
		c.SetPosition(p)
		c.layout()
		p.Y += c.Height() + spacing
		if !w.Menu.Open && c.visible {
			c.Hide()
		}
	}
}

// settle lays the children out and records their positions as defaults.
func (w *Widget) settle() {
	w.layout()
	for _, c := range w.Children() {
		c.defaultBox = c.box.Copy()
	}
}

// closeOtherMenus enforces that at most one menu among the siblings of
// opened is open.
func (w *Widget) closeOtherMenus(opened *Widget) {
	if !opened.IsOpen() {
		return
	}
	for _, c := range w.Children() {
		if c != opened && c.IsOpen() {
			c.Close()
		}
	}
}

// clickHeader handles a click on the header of a menu. The secondary button
// freezes draggable menus; the primary button opens or closes.
func (w *Widget) clickHeader(r *Routing, button MouseButton) bool {
	switch button {
	case MouseButtonSecondary:
		if w.Drag == nil {
			return false
		}
		w.Drag.Frozen = !w.Drag.Frozen
		r.MarkClicked(w)
		return true
	case MouseButtonPrimary:
		w.ToggleMenu()
		w.tree.playClick()
		w.fireClick(r)
		return true
	}
	return false
}

func (w *Widget) clickDropdown(r *Routing, x, y float32, button MouseButton) bool {
	if w.Menu.Open && w.clickChildren(r, x, y, button) != nil {
		return true
	}
	if !w.box.Contains(x, y) {
		return false
	}
	return w.clickHeader(r, button)
}

// dragMenu lets open children take the drag first. Dragging the header of an
// open menu closes it before moving.
func (w *Widget) dragMenu(r *Routing, x, y float32, button MouseButton, dx, dy float32) bool {
	if w.Menu.Open && !r.Holds(w) && w.dragChildren(r, x, y, button, dx, dy) {
		return true
	}
	if !w.canDrag(r, x, y, button) {
		return false
	}
	if w.Menu.Open {
		w.Close()
		w.settle()
	}
	w.applyDrag(r, x, y)
	return true
}
