package gavui

// fireClick runs the click callbacks and records w as the consumer.
func (w *Widget) fireClick(r *Routing) {
	r.MarkClicked(w)
	if w.Click == nil {
		return
	}
	if w.Click.OnClick != nil {
		w.Click.OnClick(w)
	}
	if w.Click.Callback != nil {
		w.Click.Callback(w)
	}
}

// clickButton handles a Clickable: a primary click inside the box.
func (w *Widget) clickButton(r *Routing, x, y float32, button MouseButton) bool {
	if w.clickChildren(r, x, y, button) != nil {
		return true
	}
	if button != MouseButtonPrimary || !w.box.Contains(x, y) {
		return false
	}
	w.tree.playClick()
	w.fireClick(r)
	return true
}

// clickDraggable handles a Draggable panel. The secondary button freezes or
// unfreezes it without running the click callbacks.
func (w *Widget) clickDraggable(r *Routing, x, y float32, button MouseButton) bool {
	if w.clickChildren(r, x, y, button) != nil {
		return true
	}
	if !w.box.Contains(x, y) {
		return false
	}
	if button == MouseButtonSecondary && w.Drag != nil {
		w.Drag.Frozen = !w.Drag.Frozen
		r.MarkClicked(w)
		return true
	}
	if button != MouseButtonPrimary {
		return false
	}
	w.tree.playClick()
	w.fireClick(r)
	return true
}

// canDrag reports whether a drag step may move w. A frozen widget never
// moves. Otherwise the widget must already hold capture, or the drag must
// start on its box while nobody else holds capture.
func (w *Widget) canDrag(r *Routing, x, y float32, button MouseButton) bool {
	if w.Drag == nil || w.Drag.Frozen || r.HeldByOther(w) {
		return false
	}
	if r.Holds(w) {
		return true
	}
	return button == MouseButtonPrimary && w.box.Contains(x, y)
}

// applyDrag centres w on the pointer and takes capture.
func (w *Widget) applyDrag(r *Routing, x, y float32) {
	r.Capture(w)
	w.SetDragging(true)
	w.SetMidPoint(Pt(x, y))
}
